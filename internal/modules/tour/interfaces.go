package tour

import (
	"context"

	"tourbook/internal/domain"
)

type TourRepository interface {
	Create(ctx context.Context, t *domain.Tour) error
	GetByID(ctx context.Context, id int64) (*domain.Tour, error)
	ListAll(ctx context.Context) ([]domain.Tour, error)
	ListByAgency(ctx context.Context, agencyUserID string) ([]domain.Tour, error)
	Update(ctx context.Context, t *domain.Tour) error
	ReplaceDates(ctx context.Context, tourID int64, dates []domain.TourDate) error
	Delete(ctx context.Context, id int64) error
}

type BookingChecker interface {
	ExistsForTour(ctx context.Context, tourID int64) (bool, error)
}

type ProfileChecker interface {
	ExistsForUser(ctx context.Context, agencyUserID string) (bool, error)
}
