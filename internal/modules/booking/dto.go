package booking

import (
	"time"

	"tourbook/internal/domain"
)

type CreateBookingRequest struct {
	TourID            int64     `json:"tour_id" binding:"required"`
	ParticipantsCount int       `json:"participants_count"`
	TourDate          time.Time `json:"tour_date" binding:"required"`
}

// BookingView is a booking as listed to its owner. FeedbackSubmitted is only
// populated for tourist listings.
type BookingView struct {
	domain.Booking
	FeedbackSubmitted bool `json:"feedback_submitted"`
}
