package domain

import "time"

// AgencyProfile exists at most once per agency user. An agency must have one
// before it may publish tours.
type AgencyProfile struct {
	ID              int64     `json:"id"`
	AgencyUserID    string    `json:"agency_user_id" gorm:"uniqueIndex"`
	AgencyName      string    `json:"agency_name"`
	Description     string    `json:"description,omitempty" gorm:"type:text"`
	ServicesOffered string    `json:"services_offered,omitempty" gorm:"type:text"`
	TourGuideInfo   string    `json:"tour_guide_info,omitempty" gorm:"type:text"`
	ContactEmail    string    `json:"contact_email,omitempty"`
	ContactPhone    string    `json:"contact_phone,omitempty"`
	Address         string    `json:"address,omitempty"`
	ImageURL        string    `json:"image_url,omitempty"`
	CreatedAt       time.Time `json:"created_at"`
	UpdatedAt       time.Time `json:"updated_at"`
}
