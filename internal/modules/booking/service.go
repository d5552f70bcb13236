package booking

import (
	"context"
	"fmt"
	"time"

	"tourbook/internal/domain"
	"tourbook/internal/repository"
)

type Service struct {
	bookings BookingRepository
	tours    TourReader
	feedback FeedbackReader
}

func NewService(bookings BookingRepository, tours TourReader, feedback FeedbackReader) *Service {
	return &Service{bookings: bookings, tours: tours, feedback: feedback}
}

// Create validates the request against the tour's capacity and available
// dates and inserts a pending, unpaid booking. Violations are collected, not
// fail-fast, so the caller can correct every field at once. Tourist identity
// is denormalized from the actor's claims, never from the payload.
func (s *Service) Create(ctx context.Context, actor domain.Actor, req CreateBookingRequest) (*domain.Booking, error) {
	if actor.Role != domain.RoleTourist {
		return nil, ErrForbidden
	}

	tour, err := s.tours.GetByID(ctx, req.TourID)
	if err != nil {
		if repository.IsNotFound(err) {
			return nil, ErrTourNotFound
		}
		return nil, err
	}

	fields := make(map[string]string)

	if req.ParticipantsCount < 1 {
		fields["participants_count"] = "Participants must be at least 1."
	} else if req.ParticipantsCount > tour.MaxGroupSize {
		fields["participants_count"] = fmt.Sprintf("Maximum group size for this tour is %d.", tour.MaxGroupSize)
	}

	if !tour.HasDate(req.TourDate) {
		fields["tour_date"] = "Selected date is not available."
	}

	if len(fields) > 0 {
		return nil, &ValidationError{Fields: fields}
	}

	y, m, d := req.TourDate.Date()

	b := &domain.Booking{
		TourID:            tour.ID,
		TouristID:         actor.ID,
		TouristName:       actor.Name,
		TouristEmail:      actor.Email,
		ParticipantsCount: req.ParticipantsCount,
		TourDate:          time.Date(y, m, d, 0, 0, 0, 0, time.UTC),
		CreatedAt:         time.Now(),
		Status:            domain.BookingPending,
		PaymentStatus:     domain.PaymentUnpaid,
	}

	if err := s.bookings.Create(ctx, b); err != nil {
		return nil, err
	}
	return b, nil
}

// Cancel moves the booking to cancelled and refunds it if it was paid.
// Cancelling an already cancelled or completed booking is a no-op, not an
// error: users double-submit.
func (s *Service) Cancel(ctx context.Context, actor domain.Actor, bookingID int64) (*domain.Booking, error) {
	b, err := s.ownedByTourist(ctx, actor, bookingID)
	if err != nil {
		return nil, err
	}

	if b.Status.Terminal() {
		return b, nil
	}

	if _, err := s.bookings.Cancel(ctx, bookingID); err != nil {
		return nil, err
	}
	// Re-read regardless of the outcome: zero rows affected means a
	// concurrent transition won, and the current state is still the answer.
	return s.bookings.GetByID(ctx, bookingID)
}

// Pay confirms the booking and marks it paid. Paying a cancelled or
// already-paid booking is a no-op.
func (s *Service) Pay(ctx context.Context, actor domain.Actor, bookingID int64) (*domain.Booking, error) {
	b, err := s.ownedByTourist(ctx, actor, bookingID)
	if err != nil {
		return nil, err
	}

	if b.Status == domain.BookingCancelled || b.PaymentStatus == domain.PaymentPaid {
		return b, nil
	}

	if _, err := s.bookings.MarkPaid(ctx, bookingID); err != nil {
		return nil, err
	}
	return s.bookings.GetByID(ctx, bookingID)
}

// Complete marks the trip as finished. Only the agency owning the booking's
// tour may do so; completed is terminal and the call is idempotent.
func (s *Service) Complete(ctx context.Context, actor domain.Actor, bookingID int64) (*domain.Booking, error) {
	if actor.Role != domain.RoleAgency {
		return nil, ErrForbidden
	}

	b, err := s.bookings.GetByID(ctx, bookingID)
	if err != nil {
		if repository.IsNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	if b.Tour == nil || b.Tour.AgencyUserID != actor.ID {
		return nil, ErrForbidden
	}

	if b.Status.Terminal() {
		return b, nil
	}

	if _, err := s.bookings.MarkCompleted(ctx, bookingID); err != nil {
		return nil, err
	}
	return s.bookings.GetByID(ctx, bookingID)
}

// List returns the caller's bookings: a tourist sees their own, an agency
// sees bookings against its tours. Tourist views carry a flag for bookings
// that already received feedback.
func (s *Service) List(ctx context.Context, actor domain.Actor) ([]BookingView, error) {
	switch actor.Role {
	case domain.RoleTourist:
		bookings, err := s.bookings.ListByTourist(ctx, actor.ID)
		if err != nil {
			return nil, err
		}

		submitted := make(map[int64]bool)
		items, err := s.feedback.ListByTourist(ctx, actor.ID)
		if err != nil {
			return nil, err
		}
		for _, f := range items {
			submitted[f.BookingID] = true
		}

		out := make([]BookingView, 0, len(bookings))
		for _, b := range bookings {
			out = append(out, BookingView{Booking: b, FeedbackSubmitted: submitted[b.ID]})
		}
		return out, nil

	case domain.RoleAgency:
		bookings, err := s.bookings.ListByAgency(ctx, actor.ID)
		if err != nil {
			return nil, err
		}
		out := make([]BookingView, 0, len(bookings))
		for _, b := range bookings {
			out = append(out, BookingView{Booking: b})
		}
		return out, nil
	}

	return nil, ErrForbidden
}

// Get returns a single booking, readable by its tourist or by the agency
// owning its tour.
func (s *Service) Get(ctx context.Context, actor domain.Actor, bookingID int64) (*domain.Booking, error) {
	b, err := s.bookings.GetByID(ctx, bookingID)
	if err != nil {
		if repository.IsNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	if b.TouristID == actor.ID {
		return b, nil
	}
	if actor.Role == domain.RoleAgency && b.Tour != nil && b.Tour.AgencyUserID == actor.ID {
		return b, nil
	}
	return nil, ErrForbidden
}

// ownedByTourist loads the booking and enforces the mutation ownership rule:
// the record existing under another owner is Forbidden, not NotFound.
func (s *Service) ownedByTourist(ctx context.Context, actor domain.Actor, bookingID int64) (*domain.Booking, error) {
	if actor.Role != domain.RoleTourist {
		return nil, ErrForbidden
	}

	b, err := s.bookings.GetByID(ctx, bookingID)
	if err != nil {
		if repository.IsNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	if b.TouristID != actor.ID {
		return nil, ErrForbidden
	}
	return b, nil
}
