package profile

type SaveProfileRequest struct {
	AgencyName      string `json:"agency_name" validate:"required,max=150"`
	Description     string `json:"description" validate:"max=2000"`
	ServicesOffered string `json:"services_offered" validate:"max=2000"`
	TourGuideInfo   string `json:"tour_guide_info" validate:"max=2000"`
	ContactEmail    string `json:"contact_email" validate:"omitempty,email"`
	ContactPhone    string `json:"contact_phone" validate:"max=30"`
	Address         string `json:"address" validate:"max=300"`
	ImageURL        string `json:"image_url" validate:"max=500"`
}
