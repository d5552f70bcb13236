package feedback

import (
	"context"

	"tourbook/internal/domain"
)

type FeedbackRepository interface {
	Create(ctx context.Context, f *domain.Feedback) error
	ExistsForBooking(ctx context.Context, bookingID int64, touristID string) (bool, error)
	ListByTourist(ctx context.Context, touristID string) ([]domain.Feedback, error)
	ListByAgency(ctx context.Context, agencyUserID string) ([]domain.Feedback, error)
}

// BookingGate loads the booking a submission targets, tour included, so the
// service can derive ownership fields from the authoritative record.
type BookingGate interface {
	GetByID(ctx context.Context, id int64) (*domain.Booking, error)
}
