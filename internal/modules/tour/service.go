package tour

import (
	"context"
	"time"

	"github.com/shopspring/decimal"

	"tourbook/internal/domain"
	"tourbook/internal/repository"
)

var (
	minPrice = decimal.NewFromInt(1)
	maxPrice = decimal.NewFromInt(10000)
)

const (
	maxNameLength   = 150
	maxDescLength   = 2000
	maxGroupSizeCap = 500
)

type Service struct {
	tours    TourRepository
	bookings BookingChecker
	profiles ProfileChecker
}

func NewService(tours TourRepository, bookings BookingChecker, profiles ProfileChecker) *Service {
	return &Service{tours: tours, bookings: bookings, profiles: profiles}
}

// Create publishes a new tour for the agency. Requires an existing agency
// profile; field violations are accumulated.
func (s *Service) Create(ctx context.Context, actor domain.Actor, req SaveTourRequest) (*domain.Tour, error) {
	if actor.Role != domain.RoleAgency {
		return nil, ErrForbidden
	}

	hasProfile, err := s.profiles.ExistsForUser(ctx, actor.ID)
	if err != nil {
		return nil, err
	}
	if !hasProfile {
		return nil, ErrProfileRequired
	}

	if fields := validateTour(req); len(fields) > 0 {
		return nil, &ValidationError{Fields: fields}
	}

	t := &domain.Tour{
		Name:           req.Name,
		Description:    req.Description,
		Price:          req.Price,
		MaxGroupSize:   req.MaxGroupSize,
		DurationDays:   req.DurationDays,
		AgencyUserID:   actor.ID,
		AvailableDates: toTourDates(req.Dates),
	}

	if err := s.tours.Create(ctx, t); err != nil {
		return nil, err
	}
	return t, nil
}

// Update edits a tour the agency owns. A tour existing under another agency
// is Forbidden, not NotFound.
func (s *Service) Update(ctx context.Context, actor domain.Actor, tourID int64, req SaveTourRequest) (*domain.Tour, error) {
	t, err := s.ownedByAgency(ctx, actor, tourID)
	if err != nil {
		return nil, err
	}

	if fields := validateTour(req); len(fields) > 0 {
		return nil, &ValidationError{Fields: fields}
	}

	t.Name = req.Name
	t.Description = req.Description
	t.Price = req.Price
	t.MaxGroupSize = req.MaxGroupSize
	t.DurationDays = req.DurationDays

	if err := s.tours.Update(ctx, t); err != nil {
		return nil, err
	}
	if err := s.tours.ReplaceDates(ctx, t.ID, toTourDates(req.Dates)); err != nil {
		return nil, err
	}

	return s.tours.GetByID(ctx, t.ID)
}

// Delete removes a tour the agency owns, unless any booking references it.
func (s *Service) Delete(ctx context.Context, actor domain.Actor, tourID int64) error {
	t, err := s.ownedByAgency(ctx, actor, tourID)
	if err != nil {
		return err
	}

	booked, err := s.bookings.ExistsForTour(ctx, t.ID)
	if err != nil {
		return err
	}
	if booked {
		return ErrHasBookings
	}

	return s.tours.Delete(ctx, t.ID)
}

// List returns all tours to tourists and only the agency's own to agencies.
func (s *Service) List(ctx context.Context, actor domain.Actor) ([]domain.Tour, error) {
	switch actor.Role {
	case domain.RoleTourist:
		return s.tours.ListAll(ctx)
	case domain.RoleAgency:
		return s.tours.ListByAgency(ctx, actor.ID)
	}
	return nil, ErrForbidden
}

func (s *Service) Get(ctx context.Context, tourID int64) (*domain.Tour, error) {
	t, err := s.tours.GetByID(ctx, tourID)
	if err != nil {
		if repository.IsNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return t, nil
}

func (s *Service) ownedByAgency(ctx context.Context, actor domain.Actor, tourID int64) (*domain.Tour, error) {
	if actor.Role != domain.RoleAgency {
		return nil, ErrForbidden
	}

	t, err := s.tours.GetByID(ctx, tourID)
	if err != nil {
		if repository.IsNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	if t.AgencyUserID != actor.ID {
		return nil, ErrForbidden
	}
	return t, nil
}

func validateTour(req SaveTourRequest) map[string]string {
	fields := make(map[string]string)

	if req.Name == "" {
		fields["name"] = "Name is required."
	} else if len(req.Name) > maxNameLength {
		fields["name"] = "Name is too long."
	}
	if len(req.Description) > maxDescLength {
		fields["description"] = "Description is too long."
	}
	if req.Price.LessThan(minPrice) || req.Price.GreaterThan(maxPrice) {
		fields["price"] = "Price must be between 1 and 10000."
	}
	if req.MaxGroupSize < 1 || req.MaxGroupSize > maxGroupSizeCap {
		fields["max_group_size"] = "Max group size must be between 1 and 500."
	}
	if req.DurationDays < 0 {
		fields["duration_days"] = "Duration cannot be negative."
	}

	return fields
}

func toTourDates(dates []time.Time) []domain.TourDate {
	out := make([]domain.TourDate, 0, len(dates))
	for _, d := range dates {
		y, m, day := d.Date()
		out = append(out, domain.TourDate{Date: time.Date(y, m, day, 0, 0, 0, 0, time.UTC)})
	}
	return out
}
