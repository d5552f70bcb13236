package feedback

import (
	"context"
	"time"

	"tourbook/internal/domain"
	"tourbook/internal/repository"
)

const maxCommentLength = 1000

type Service struct {
	feedback FeedbackRepository
	bookings BookingGate
}

func NewService(feedback FeedbackRepository, bookings BookingGate) *Service {
	return &Service{feedback: feedback, bookings: bookings}
}

// Submit creates feedback for a booking the actor owns. A booking is eligible
// once it is paid or the trip has concluded, and never when cancelled. Rule
// violations are accumulated so the caller sees them all at once; the storage
// uniqueness constraint backstops the duplicate check under concurrency.
// Tour and agency references are copied from the booking, never from the
// request.
func (s *Service) Submit(ctx context.Context, actor domain.Actor, req SubmitFeedbackRequest) (*domain.Feedback, error) {
	if actor.Role != domain.RoleTourist {
		return nil, ErrForbidden
	}

	b, err := s.bookings.GetByID(ctx, req.BookingID)
	if err != nil {
		if repository.IsNotFound(err) {
			return nil, ErrBookingNotFound
		}
		return nil, err
	}

	if b.TouristID != actor.ID {
		return nil, ErrForbidden
	}

	fields := make(map[string]string)

	if req.Rating < 1 || req.Rating > 5 {
		fields["rating"] = "Rating must be between 1 and 5."
	}
	if req.Comment == "" {
		fields["comment"] = "Comment is required."
	} else if len(req.Comment) > maxCommentLength {
		fields["comment"] = "Comment is too long."
	}

	if b.Status == domain.BookingCancelled {
		fields["booking"] = "Cannot leave feedback for a cancelled booking."
	}
	if b.PaymentStatus != domain.PaymentPaid && b.Status != domain.BookingCompleted {
		fields["payment"] = "Please pay (or complete tour) before leaving feedback."
	}

	exists, err := s.feedback.ExistsForBooking(ctx, b.ID, actor.ID)
	if err != nil {
		return nil, err
	}
	if exists {
		fields["feedback"] = "Feedback already submitted for this booking."
	}

	if len(fields) > 0 {
		return nil, &ValidationError{Fields: fields}
	}

	var agencyUserID string
	if b.Tour != nil {
		agencyUserID = b.Tour.AgencyUserID
	}

	f := &domain.Feedback{
		TouristID:    actor.ID,
		BookingID:    b.ID,
		TourID:       b.TourID,
		AgencyUserID: agencyUserID,
		Rating:       req.Rating,
		Comment:      req.Comment,
		CreatedAt:    time.Now(),
	}

	if err := s.feedback.Create(ctx, f); err != nil {
		if repository.IsUniqueViolation(err) {
			return nil, ErrConflict
		}
		return nil, err
	}
	return f, nil
}

// ListMine returns the feedback the tourist has submitted, newest first.
func (s *Service) ListMine(ctx context.Context, actor domain.Actor) ([]domain.Feedback, error) {
	if actor.Role != domain.RoleTourist {
		return nil, ErrForbidden
	}
	return s.feedback.ListByTourist(ctx, actor.ID)
}

// ListForAgency returns the feedback targeting the agency, newest first.
func (s *Service) ListForAgency(ctx context.Context, actor domain.Actor) ([]domain.Feedback, error) {
	if actor.Role != domain.RoleAgency {
		return nil, ErrForbidden
	}
	return s.feedback.ListByAgency(ctx, actor.ID)
}
