package report

import (
	"time"

	"github.com/shopspring/decimal"

	"tourbook/internal/domain"
)

type Report struct {
	Role        string    `json:"role"`
	GeneratedAt time.Time `json:"generated_at"`

	TotalBookings     int `json:"total_bookings"`
	PendingBookings   int `json:"pending_bookings"`
	ConfirmedBookings int `json:"confirmed_bookings"`
	CancelledBookings int `json:"cancelled_bookings"`
	CompletedBookings int `json:"completed_bookings"`
	PaidBookings      int `json:"paid_bookings"`
	UnpaidBookings    int `json:"unpaid_bookings"`
	RefundedBookings  int `json:"refunded_bookings"`

	TotalRevenue decimal.Decimal `json:"total_revenue"`

	TopTours       []TopTourRow       `json:"top_tours"`
	RecentBookings []RecentBookingRow `json:"recent_bookings"`
}

type TopTourRow struct {
	TourID        int64           `json:"tour_id"`
	TourName      string          `json:"tour_name"`
	BookingsCount int             `json:"bookings_count"`
	PaidRevenue   decimal.Decimal `json:"paid_revenue"`
}

type RecentBookingRow struct {
	BookingID     int64     `json:"booking_id"`
	TourName      string    `json:"tour_name"`
	TourDate      time.Time `json:"tour_date"`
	Participants  int       `json:"participants"`
	Status        string    `json:"status"`
	PaymentStatus string    `json:"payment_status"`
	CreatedAt     time.Time `json:"created_at"`
}

func tourName(b domain.Booking) string {
	if b.Tour != nil {
		return b.Tour.Name
	}
	return "Tour"
}
