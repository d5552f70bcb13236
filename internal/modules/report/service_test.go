package report

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"tourbook/internal/domain"
)

type MockBookingReader struct {
	mock.Mock
}

func (m *MockBookingReader) ListByTourist(ctx context.Context, touristID string) ([]domain.Booking, error) {
	args := m.Called(ctx, touristID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Booking), args.Error(1)
}

func (m *MockBookingReader) ListByAgency(ctx context.Context, agencyUserID string) ([]domain.Booking, error) {
	args := m.Called(ctx, agencyUserID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Booking), args.Error(1)
}

func booking(id, tourID int64, price int64, participants int, status domain.BookingStatus, payment domain.PaymentStatus) domain.Booking {
	return domain.Booking{
		ID:                id,
		TourID:            tourID,
		ParticipantsCount: participants,
		Status:            status,
		PaymentStatus:     payment,
		CreatedAt:         time.Date(2024, 5, 1, 0, 0, 0, 0, time.UTC).Add(time.Duration(id) * time.Hour),
		Tour: &domain.Tour{
			ID:    tourID,
			Name:  "Tour",
			Price: decimal.NewFromInt(price),
		},
	}
}

func TestBuild_Empty(t *testing.T) {
	r := Build(nil)

	assert.Equal(t, 0, r.TotalBookings)
	assert.True(t, r.TotalRevenue.IsZero())
	assert.Empty(t, r.TopTours)
	assert.Empty(t, r.RecentBookings)
}

func TestBuild_StatusAndPaymentCounts(t *testing.T) {
	r := Build([]domain.Booking{
		booking(1, 1, 100, 1, domain.BookingPending, domain.PaymentUnpaid),
		booking(2, 1, 100, 1, domain.BookingConfirmed, domain.PaymentPaid),
		booking(3, 1, 100, 1, domain.BookingCancelled, domain.PaymentRefunded),
		booking(4, 1, 100, 1, domain.BookingCompleted, domain.PaymentPaid),
	})

	assert.Equal(t, 4, r.TotalBookings)
	assert.Equal(t, 1, r.PendingBookings)
	assert.Equal(t, 1, r.ConfirmedBookings)
	assert.Equal(t, 1, r.CancelledBookings)
	assert.Equal(t, 1, r.CompletedBookings)
	assert.Equal(t, 2, r.PaidBookings)
	assert.Equal(t, 1, r.UnpaidBookings)
	assert.Equal(t, 1, r.RefundedBookings)
}

func TestBuild_RevenueCountsOnlyPaid(t *testing.T) {
	r := Build([]domain.Booking{
		booking(1, 1, 100, 2, domain.BookingConfirmed, domain.PaymentPaid),  // 200
		booking(2, 1, 50, 3, domain.BookingPending, domain.PaymentUnpaid),   // ignored
		booking(3, 1, 80, 1, domain.BookingCancelled, domain.PaymentRefunded), // ignored
	})

	assert.True(t, r.TotalRevenue.Equal(decimal.NewFromInt(200)),
		"got %s", r.TotalRevenue)
}

func TestBuild_TopToursOrderedByCountThenRevenue(t *testing.T) {
	r := Build([]domain.Booking{
		// tour 1: 2 bookings, 100 paid revenue
		booking(1, 1, 100, 1, domain.BookingConfirmed, domain.PaymentPaid),
		booking(2, 1, 100, 1, domain.BookingPending, domain.PaymentUnpaid),
		// tour 2: 2 bookings, 300 paid revenue — same count, more revenue
		booking(3, 2, 150, 1, domain.BookingConfirmed, domain.PaymentPaid),
		booking(4, 2, 150, 1, domain.BookingConfirmed, domain.PaymentPaid),
		// tour 3: 1 booking
		booking(5, 3, 999, 1, domain.BookingConfirmed, domain.PaymentPaid),
	})

	assert.Len(t, r.TopTours, 3)
	assert.Equal(t, int64(2), r.TopTours[0].TourID)
	assert.Equal(t, int64(1), r.TopTours[1].TourID)
	assert.Equal(t, int64(3), r.TopTours[2].TourID)
	assert.True(t, r.TopTours[0].PaidRevenue.Equal(decimal.NewFromInt(300)))
}

func TestBuild_TopToursTieBrokenByTourID(t *testing.T) {
	r := Build([]domain.Booking{
		booking(1, 9, 100, 1, domain.BookingConfirmed, domain.PaymentPaid),
		booking(2, 3, 100, 1, domain.BookingConfirmed, domain.PaymentPaid),
	})

	// Identical count and revenue: the lower id comes first.
	assert.Equal(t, int64(3), r.TopTours[0].TourID)
	assert.Equal(t, int64(9), r.TopTours[1].TourID)
}

func TestBuild_TopToursCappedAtFive(t *testing.T) {
	var bookings []domain.Booking
	for i := int64(1); i <= 7; i++ {
		bookings = append(bookings, booking(i, i, 100, 1, domain.BookingPending, domain.PaymentUnpaid))
	}

	r := Build(bookings)

	assert.Len(t, r.TopTours, 5)
}

func TestBuild_RecentNewestFirstCappedAtTen(t *testing.T) {
	var bookings []domain.Booking
	for i := int64(1); i <= 12; i++ {
		bookings = append(bookings, booking(i, 1, 100, 1, domain.BookingPending, domain.PaymentUnpaid))
	}

	r := Build(bookings)

	assert.Len(t, r.RecentBookings, 10)
	assert.Equal(t, int64(12), r.RecentBookings[0].BookingID)
	assert.Equal(t, int64(3), r.RecentBookings[9].BookingID)
}

func TestBuild_RecentTieBrokenByID(t *testing.T) {
	same := time.Date(2024, 5, 1, 0, 0, 0, 0, time.UTC)
	b1 := booking(1, 1, 100, 1, domain.BookingPending, domain.PaymentUnpaid)
	b2 := booking(2, 1, 100, 1, domain.BookingPending, domain.PaymentUnpaid)
	b1.CreatedAt = same
	b2.CreatedAt = same

	r := Build([]domain.Booking{b1, b2})

	assert.Equal(t, int64(2), r.RecentBookings[0].BookingID)
	assert.Equal(t, int64(1), r.RecentBookings[1].BookingID)
}

func TestBuild_Deterministic(t *testing.T) {
	bookings := []domain.Booking{
		booking(1, 4, 100, 2, domain.BookingConfirmed, domain.PaymentPaid),
		booking(2, 2, 100, 1, domain.BookingPending, domain.PaymentUnpaid),
		booking(3, 4, 100, 1, domain.BookingCompleted, domain.PaymentPaid),
		booking(4, 1, 100, 1, domain.BookingCancelled, domain.PaymentRefunded),
	}

	first := Build(bookings)
	second := Build(bookings)

	assert.Equal(t, first, second)
}

func TestGenerate_AgencyScope(t *testing.T) {
	bookings := new(MockBookingReader)
	service := NewService(bookings)

	bookings.On("ListByAgency", mock.Anything, "agency-1").Return([]domain.Booking{
		booking(1, 1, 100, 2, domain.BookingConfirmed, domain.PaymentPaid),
	}, nil)

	r, err := service.Generate(context.Background(), domain.Actor{ID: "agency-1", Role: domain.RoleAgency})

	assert.NoError(t, err)
	assert.Equal(t, "agency", r.Role)
	assert.Equal(t, 1, r.TotalBookings)
	assert.True(t, r.TotalRevenue.Equal(decimal.NewFromInt(200)))
	bookings.AssertNotCalled(t, "ListByTourist", mock.Anything, mock.Anything)
}

func TestGenerate_TouristScope(t *testing.T) {
	bookings := new(MockBookingReader)
	service := NewService(bookings)

	bookings.On("ListByTourist", mock.Anything, "tourist-1").Return([]domain.Booking{}, nil)

	r, err := service.Generate(context.Background(), domain.Actor{ID: "tourist-1", Role: domain.RoleTourist})

	assert.NoError(t, err)
	assert.Equal(t, "tourist", r.Role)
	assert.False(t, r.GeneratedAt.IsZero())
}

func TestGenerate_UnknownRoleForbidden(t *testing.T) {
	service := NewService(new(MockBookingReader))

	_, err := service.Generate(context.Background(), domain.Actor{ID: "x", Role: "admin"})

	assert.ErrorIs(t, err, ErrForbidden)
}
