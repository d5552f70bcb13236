package booking

import (
	"context"

	"tourbook/internal/domain"
)

// BookingRepository is the slice of the entity store the lifecycle engine
// needs. Cancel, MarkPaid and MarkCompleted apply their precondition and
// write as one atomic store operation and report whether a row transitioned.
type BookingRepository interface {
	Create(ctx context.Context, b *domain.Booking) error
	GetByID(ctx context.Context, id int64) (*domain.Booking, error)
	ListByTourist(ctx context.Context, touristID string) ([]domain.Booking, error)
	ListByAgency(ctx context.Context, agencyUserID string) ([]domain.Booking, error)
	Cancel(ctx context.Context, id int64) (bool, error)
	MarkPaid(ctx context.Context, id int64) (bool, error)
	MarkCompleted(ctx context.Context, id int64) (bool, error)
}

type TourReader interface {
	GetByID(ctx context.Context, id int64) (*domain.Tour, error)
}

// FeedbackReader lets tourist listings flag bookings that already have
// feedback, so clients can hide the submit action.
type FeedbackReader interface {
	ListByTourist(ctx context.Context, touristID string) ([]domain.Feedback, error)
}
