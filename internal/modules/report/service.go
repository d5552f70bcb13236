package report

import (
	"context"
	"errors"
	"sort"
	"time"

	"github.com/shopspring/decimal"

	"tourbook/internal/domain"
)

const (
	topToursLimit = 5
	recentLimit   = 10
)

var ErrForbidden = errors.New("forbidden")

type BookingReader interface {
	ListByTourist(ctx context.Context, touristID string) ([]domain.Booking, error)
	ListByAgency(ctx context.Context, agencyUserID string) ([]domain.Booking, error)
}

type Service struct {
	bookings BookingReader
}

func NewService(bookings BookingReader) *Service {
	return &Service{bookings: bookings}
}

// Generate builds the report over the caller's booking scope: an agency sees
// bookings against its tours, a tourist their own.
func (s *Service) Generate(ctx context.Context, actor domain.Actor) (*Report, error) {
	var (
		bookings []domain.Booking
		err      error
	)

	switch actor.Role {
	case domain.RoleAgency:
		bookings, err = s.bookings.ListByAgency(ctx, actor.ID)
	case domain.RoleTourist:
		bookings, err = s.bookings.ListByTourist(ctx, actor.ID)
	default:
		return nil, ErrForbidden
	}
	if err != nil {
		return nil, err
	}

	r := Build(bookings)
	r.Role = string(actor.Role)
	r.GeneratedAt = time.Now()
	return r, nil
}

// Build is a pure, deterministic aggregation over an already-scoped booking
// set. Revenue counts only paid bookings; ranking and recency use stable
// tie-breaks so equal inputs always produce equal output.
func Build(bookings []domain.Booking) *Report {
	r := &Report{
		TotalBookings:  len(bookings),
		TotalRevenue:   decimal.Zero,
		TopTours:       []TopTourRow{},
		RecentBookings: []RecentBookingRow{},
	}

	groups := make(map[int64]*TopTourRow)

	for _, b := range bookings {
		switch b.Status {
		case domain.BookingPending:
			r.PendingBookings++
		case domain.BookingConfirmed:
			r.ConfirmedBookings++
		case domain.BookingCancelled:
			r.CancelledBookings++
		case domain.BookingCompleted:
			r.CompletedBookings++
		}

		switch b.PaymentStatus {
		case domain.PaymentUnpaid:
			r.UnpaidBookings++
		case domain.PaymentPaid:
			r.PaidBookings++
		case domain.PaymentRefunded:
			r.RefundedBookings++
		}

		g, ok := groups[b.TourID]
		if !ok {
			g = &TopTourRow{
				TourID:      b.TourID,
				TourName:    tourName(b),
				PaidRevenue: decimal.Zero,
			}
			groups[b.TourID] = g
		}
		g.BookingsCount++

		if b.PaymentStatus == domain.PaymentPaid && b.Tour != nil {
			amount := b.Tour.Price.Mul(decimal.NewFromInt(int64(b.ParticipantsCount)))
			r.TotalRevenue = r.TotalRevenue.Add(amount)
			g.PaidRevenue = g.PaidRevenue.Add(amount)
		}
	}

	top := make([]TopTourRow, 0, len(groups))
	for _, g := range groups {
		top = append(top, *g)
	}
	sort.Slice(top, func(i, j int) bool {
		if top[i].BookingsCount != top[j].BookingsCount {
			return top[i].BookingsCount > top[j].BookingsCount
		}
		if cmp := top[i].PaidRevenue.Cmp(top[j].PaidRevenue); cmp != 0 {
			return cmp > 0
		}
		return top[i].TourID < top[j].TourID
	})
	if len(top) > topToursLimit {
		top = top[:topToursLimit]
	}
	r.TopTours = top

	recent := make([]domain.Booking, len(bookings))
	copy(recent, bookings)
	sort.Slice(recent, func(i, j int) bool {
		if !recent[i].CreatedAt.Equal(recent[j].CreatedAt) {
			return recent[i].CreatedAt.After(recent[j].CreatedAt)
		}
		return recent[i].ID > recent[j].ID
	})
	if len(recent) > recentLimit {
		recent = recent[:recentLimit]
	}
	for _, b := range recent {
		r.RecentBookings = append(r.RecentBookings, RecentBookingRow{
			BookingID:     b.ID,
			TourName:      tourName(b),
			TourDate:      b.TourDate,
			Participants:  b.ParticipantsCount,
			Status:        b.Status.String(),
			PaymentStatus: b.PaymentStatus.String(),
			CreatedAt:     b.CreatedAt,
		})
	}

	return r
}
