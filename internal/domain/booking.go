package domain

import "time"

// BookingStatus and PaymentStatus are persisted as integers; the numeric
// values are part of the storage contract and must not be reordered.
type BookingStatus int

const (
	BookingPending   BookingStatus = 0
	BookingConfirmed BookingStatus = 1
	BookingCancelled BookingStatus = 2
	BookingCompleted BookingStatus = 3
)

func (s BookingStatus) String() string {
	switch s {
	case BookingPending:
		return "pending"
	case BookingConfirmed:
		return "confirmed"
	case BookingCancelled:
		return "cancelled"
	case BookingCompleted:
		return "completed"
	}
	return "unknown"
}

// Terminal reports whether no lifecycle transition may leave s.
func (s BookingStatus) Terminal() bool {
	return s == BookingCancelled || s == BookingCompleted
}

func (s BookingStatus) MarshalJSON() ([]byte, error) {
	return []byte(`"` + s.String() + `"`), nil
}

type PaymentStatus int

const (
	PaymentUnpaid   PaymentStatus = 0
	PaymentPaid     PaymentStatus = 1
	PaymentRefunded PaymentStatus = 2
)

func (s PaymentStatus) String() string {
	switch s {
	case PaymentUnpaid:
		return "unpaid"
	case PaymentPaid:
		return "paid"
	case PaymentRefunded:
		return "refunded"
	}
	return "unknown"
}

func (s PaymentStatus) MarshalJSON() ([]byte, error) {
	return []byte(`"` + s.String() + `"`), nil
}

type Booking struct {
	ID     int64 `json:"id"`
	TourID int64 `json:"tour_id"`

	// TouristID is immutable after creation. Name and email are copied from
	// the authenticated claims at creation time, never from the payload.
	TouristID    string `json:"tourist_id"`
	TouristName  string `json:"tourist_name"`
	TouristEmail string `json:"tourist_email"`

	ParticipantsCount int       `json:"participants_count"`
	TourDate          time.Time `json:"tour_date"`
	CreatedAt         time.Time `json:"created_at"`

	Status        BookingStatus `json:"status"`
	PaymentStatus PaymentStatus `json:"payment_status"`

	Tour *Tour `json:"tour,omitempty" gorm:"foreignKey:TourID"`
}
