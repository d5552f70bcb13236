package tour

import (
	"time"

	"github.com/shopspring/decimal"
)

type SaveTourRequest struct {
	Name         string          `json:"name" binding:"required"`
	Description  string          `json:"description"`
	Price        decimal.Decimal `json:"price"`
	MaxGroupSize int             `json:"max_group_size"`
	DurationDays int             `json:"duration_days"`
	Dates        []time.Time     `json:"dates"`
}
