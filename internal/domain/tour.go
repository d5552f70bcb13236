package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

type Tour struct {
	ID           int64           `json:"id"`
	Name         string          `json:"name"`
	Description  string          `json:"description,omitempty" gorm:"type:text"`
	Price        decimal.Decimal `json:"price" gorm:"type:decimal(10,2)"`
	MaxGroupSize int             `json:"max_group_size"`
	DurationDays int             `json:"duration_days"`
	AgencyUserID string          `json:"agency_user_id"`

	AvailableDates []TourDate `json:"available_dates,omitempty" gorm:"foreignKey:TourID;constraint:OnDelete:CASCADE"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// HasDate reports whether day matches one of the tour's available dates,
// compared by calendar date rather than instant.
func (t *Tour) HasDate(day time.Time) bool {
	y, m, d := day.Date()
	for _, td := range t.AvailableDates {
		ty, tm, tdd := td.Date.Date()
		if ty == y && tm == m && tdd == d {
			return true
		}
	}
	return false
}

// TourDate belongs to exactly one tour and is cascade-deleted with it.
type TourDate struct {
	ID     int64     `json:"id"`
	TourID int64     `json:"tour_id"`
	Date   time.Time `json:"date"`
}
