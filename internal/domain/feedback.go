package domain

import "time"

// Feedback references exactly one booking. TourID and AgencyUserID are copied
// from the booking at submission time; the (booking, tourist) pair is unique.
type Feedback struct {
	ID           int64     `json:"id"`
	TouristID    string    `json:"tourist_id" gorm:"uniqueIndex:idx_feedback_booking_tourist"`
	BookingID    int64     `json:"booking_id" gorm:"uniqueIndex:idx_feedback_booking_tourist"`
	TourID       int64     `json:"tour_id"`
	AgencyUserID string    `json:"agency_user_id"`
	Rating       int       `json:"rating"`
	Comment      string    `json:"comment" gorm:"type:text"`
	CreatedAt    time.Time `json:"created_at"`

	Tour *Tour `json:"tour,omitempty" gorm:"foreignKey:TourID"`
}
