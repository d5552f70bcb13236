package repository

import (
	"context"

	"gorm.io/gorm"

	"tourbook/internal/domain"
)

type AgencyProfileRepository struct {
	db *gorm.DB
}

func NewAgencyProfileRepository(db *gorm.DB) *AgencyProfileRepository {
	return &AgencyProfileRepository{db: db}
}

// Create relies on the unique index on agency_user_id for first-create-wins.
func (r *AgencyProfileRepository) Create(ctx context.Context, p *domain.AgencyProfile) error {
	return r.db.WithContext(ctx).Create(p).Error
}

func (r *AgencyProfileRepository) GetByUserID(ctx context.Context, agencyUserID string) (*domain.AgencyProfile, error) {
	var p domain.AgencyProfile
	err := r.db.WithContext(ctx).First(&p, "agency_user_id = ?", agencyUserID).Error
	if err != nil {
		return nil, err
	}
	return &p, nil
}

func (r *AgencyProfileRepository) ExistsForUser(ctx context.Context, agencyUserID string) (bool, error) {
	var cnt int64
	err := r.db.WithContext(ctx).Model(&domain.AgencyProfile{}).
		Where("agency_user_id = ?", agencyUserID).
		Count(&cnt).Error
	return cnt > 0, err
}

func (r *AgencyProfileRepository) Update(ctx context.Context, p *domain.AgencyProfile) error {
	return r.db.WithContext(ctx).Model(&domain.AgencyProfile{}).
		Where("id = ?", p.ID).
		Updates(map[string]interface{}{
			"agency_name":      p.AgencyName,
			"description":      p.Description,
			"services_offered": p.ServicesOffered,
			"tour_guide_info":  p.TourGuideInfo,
			"contact_email":    p.ContactEmail,
			"contact_phone":    p.ContactPhone,
			"address":          p.Address,
			"image_url":        p.ImageURL,
		}).Error
}
