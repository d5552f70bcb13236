package repository

import (
	"context"

	"gorm.io/gorm"

	"tourbook/internal/domain"
)

type BookingRepository struct {
	db *gorm.DB
}

func NewBookingRepository(db *gorm.DB) *BookingRepository {
	return &BookingRepository{db: db}
}

func (r *BookingRepository) Create(ctx context.Context, b *domain.Booking) error {
	return r.db.WithContext(ctx).Omit("Tour").Create(b).Error
}

func (r *BookingRepository) GetByID(ctx context.Context, id int64) (*domain.Booking, error) {
	var b domain.Booking
	err := r.db.WithContext(ctx).Preload("Tour").First(&b, id).Error
	if err != nil {
		return nil, err
	}
	return &b, nil
}

func (r *BookingRepository) ListByTourist(ctx context.Context, touristID string) ([]domain.Booking, error) {
	var bookings []domain.Booking
	err := r.db.WithContext(ctx).
		Preload("Tour").
		Where("tourist_id = ?", touristID).
		Order("created_at DESC, id DESC").
		Find(&bookings).Error
	return bookings, err
}

func (r *BookingRepository) ListByAgency(ctx context.Context, agencyUserID string) ([]domain.Booking, error) {
	var bookings []domain.Booking
	err := r.db.WithContext(ctx).
		Preload("Tour").
		Joins("JOIN tours ON tours.id = bookings.tour_id").
		Where("tours.agency_user_id = ?", agencyUserID).
		Order("bookings.created_at DESC, bookings.id DESC").
		Find(&bookings).Error
	return bookings, err
}

// ExistsForTour reports whether any booking references the tour.
func (r *BookingRepository) ExistsForTour(ctx context.Context, tourID int64) (bool, error) {
	var cnt int64
	err := r.db.WithContext(ctx).Model(&domain.Booking{}).
		Where("tour_id = ?", tourID).
		Count(&cnt).Error
	return cnt > 0, err
}

// Cancel flips the booking to cancelled and refunds a paid booking in the
// same statement. The WHERE guard makes the precondition check and the write
// one atomic unit: a racing duplicate cancel affects zero rows and cannot
// refund twice. Returns whether a row transitioned.
func (r *BookingRepository) Cancel(ctx context.Context, id int64) (bool, error) {
	tx := r.db.WithContext(ctx).Model(&domain.Booking{}).
		Where("id = ? AND status NOT IN ?", id,
			[]int{int(domain.BookingCancelled), int(domain.BookingCompleted)}).
		Updates(map[string]interface{}{
			"status": int(domain.BookingCancelled),
			"payment_status": gorm.Expr(
				"CASE WHEN payment_status = ? THEN ? ELSE payment_status END",
				int(domain.PaymentPaid), int(domain.PaymentRefunded)),
		})
	if tx.Error != nil {
		return false, tx.Error
	}
	return tx.RowsAffected > 0, nil
}

// MarkPaid confirms the booking and marks it paid, guarded against cancelled
// and already-paid states. Returns whether a row transitioned.
func (r *BookingRepository) MarkPaid(ctx context.Context, id int64) (bool, error) {
	tx := r.db.WithContext(ctx).Model(&domain.Booking{}).
		Where("id = ? AND status <> ? AND payment_status <> ?", id,
			int(domain.BookingCancelled), int(domain.PaymentPaid)).
		Updates(map[string]interface{}{
			"status":         int(domain.BookingConfirmed),
			"payment_status": int(domain.PaymentPaid),
		})
	if tx.Error != nil {
		return false, tx.Error
	}
	return tx.RowsAffected > 0, nil
}

// MarkCompleted moves a non-terminal booking to the completed state.
func (r *BookingRepository) MarkCompleted(ctx context.Context, id int64) (bool, error) {
	tx := r.db.WithContext(ctx).Model(&domain.Booking{}).
		Where("id = ? AND status NOT IN ?", id,
			[]int{int(domain.BookingCancelled), int(domain.BookingCompleted)}).
		Update("status", int(domain.BookingCompleted))
	if tx.Error != nil {
		return false, tx.Error
	}
	return tx.RowsAffected > 0, nil
}
