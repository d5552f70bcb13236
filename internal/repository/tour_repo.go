package repository

import (
	"context"

	"gorm.io/gorm"

	"tourbook/internal/domain"
)

type TourRepository struct {
	db *gorm.DB
}

func NewTourRepository(db *gorm.DB) *TourRepository {
	return &TourRepository{db: db}
}

func (r *TourRepository) Create(ctx context.Context, t *domain.Tour) error {
	return r.db.WithContext(ctx).Create(t).Error
}

func (r *TourRepository) GetByID(ctx context.Context, id int64) (*domain.Tour, error) {
	var t domain.Tour
	err := r.db.WithContext(ctx).Preload("AvailableDates").First(&t, id).Error
	if err != nil {
		return nil, err
	}
	return &t, nil
}

func (r *TourRepository) ListAll(ctx context.Context) ([]domain.Tour, error) {
	var tours []domain.Tour
	err := r.db.WithContext(ctx).Preload("AvailableDates").Order("id").Find(&tours).Error
	return tours, err
}

func (r *TourRepository) ListByAgency(ctx context.Context, agencyUserID string) ([]domain.Tour, error) {
	var tours []domain.Tour
	err := r.db.WithContext(ctx).
		Preload("AvailableDates").
		Where("agency_user_id = ?", agencyUserID).
		Order("id").
		Find(&tours).Error
	return tours, err
}

func (r *TourRepository) Update(ctx context.Context, t *domain.Tour) error {
	return r.db.WithContext(ctx).Model(&domain.Tour{}).
		Where("id = ?", t.ID).
		Updates(map[string]interface{}{
			"name":           t.Name,
			"description":    t.Description,
			"price":          t.Price,
			"max_group_size": t.MaxGroupSize,
			"duration_days":  t.DurationDays,
		}).Error
}

// ReplaceDates swaps the tour's available dates for the given set.
func (r *TourRepository) ReplaceDates(ctx context.Context, tourID int64, dates []domain.TourDate) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("tour_id = ?", tourID).Delete(&domain.TourDate{}).Error; err != nil {
			return err
		}
		for i := range dates {
			dates[i].ID = 0
			dates[i].TourID = tourID
		}
		if len(dates) == 0 {
			return nil
		}
		return tx.Create(&dates).Error
	})
}

// Delete removes the tour and, via the cascade constraint, its dates.
func (r *TourRepository) Delete(ctx context.Context, id int64) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("tour_id = ?", id).Delete(&domain.TourDate{}).Error; err != nil {
			return err
		}
		return tx.Delete(&domain.Tour{}, id).Error
	})
}
