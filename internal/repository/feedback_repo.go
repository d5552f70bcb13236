package repository

import (
	"context"

	"gorm.io/gorm"

	"tourbook/internal/domain"
)

type FeedbackRepository struct {
	db *gorm.DB
}

func NewFeedbackRepository(db *gorm.DB) *FeedbackRepository {
	return &FeedbackRepository{db: db}
}

// Create inserts the feedback. The unique index on (booking_id, tourist_id)
// is the backstop against concurrent duplicate submissions; callers classify
// the error with IsUniqueViolation.
func (r *FeedbackRepository) Create(ctx context.Context, f *domain.Feedback) error {
	return r.db.WithContext(ctx).Omit("Tour").Create(f).Error
}

func (r *FeedbackRepository) ExistsForBooking(ctx context.Context, bookingID int64, touristID string) (bool, error) {
	var cnt int64
	err := r.db.WithContext(ctx).Model(&domain.Feedback{}).
		Where("booking_id = ? AND tourist_id = ?", bookingID, touristID).
		Count(&cnt).Error
	return cnt > 0, err
}

func (r *FeedbackRepository) ListByTourist(ctx context.Context, touristID string) ([]domain.Feedback, error) {
	var items []domain.Feedback
	err := r.db.WithContext(ctx).
		Preload("Tour").
		Where("tourist_id = ?", touristID).
		Order("created_at DESC, id DESC").
		Find(&items).Error
	return items, err
}

func (r *FeedbackRepository) ListByAgency(ctx context.Context, agencyUserID string) ([]domain.Feedback, error) {
	var items []domain.Feedback
	err := r.db.WithContext(ctx).
		Preload("Tour").
		Where("agency_user_id = ?", agencyUserID).
		Order("created_at DESC, id DESC").
		Find(&items).Error
	return items, err
}
