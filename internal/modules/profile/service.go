package profile

import (
	"context"
	"time"

	"tourbook/internal/domain"
	"tourbook/internal/repository"
)

type ProfileRepository interface {
	Create(ctx context.Context, p *domain.AgencyProfile) error
	GetByUserID(ctx context.Context, agencyUserID string) (*domain.AgencyProfile, error)
	ExistsForUser(ctx context.Context, agencyUserID string) (bool, error)
	Update(ctx context.Context, p *domain.AgencyProfile) error
}

type Service struct {
	profiles ProfileRepository
}

func NewService(profiles ProfileRepository) *Service {
	return &Service{profiles: profiles}
}

// Create sets up the agency's profile. First create wins; the unique index
// on agency_user_id backstops a concurrent duplicate.
func (s *Service) Create(ctx context.Context, actor domain.Actor, req SaveProfileRequest) (*domain.AgencyProfile, error) {
	if actor.Role != domain.RoleAgency {
		return nil, ErrForbidden
	}

	exists, err := s.profiles.ExistsForUser(ctx, actor.ID)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, ErrAlreadyExists
	}

	p := &domain.AgencyProfile{
		AgencyUserID:    actor.ID,
		AgencyName:      req.AgencyName,
		Description:     req.Description,
		ServicesOffered: req.ServicesOffered,
		TourGuideInfo:   req.TourGuideInfo,
		ContactEmail:    req.ContactEmail,
		ContactPhone:    req.ContactPhone,
		Address:         req.Address,
		ImageURL:        req.ImageURL,
		CreatedAt:       time.Now(),
	}

	if err := s.profiles.Create(ctx, p); err != nil {
		if repository.IsUniqueViolation(err) {
			return nil, ErrAlreadyExists
		}
		return nil, err
	}
	return p, nil
}

func (s *Service) GetMine(ctx context.Context, actor domain.Actor) (*domain.AgencyProfile, error) {
	if actor.Role != domain.RoleAgency {
		return nil, ErrForbidden
	}

	p, err := s.profiles.GetByUserID(ctx, actor.ID)
	if err != nil {
		if repository.IsNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return p, nil
}

func (s *Service) Update(ctx context.Context, actor domain.Actor, req SaveProfileRequest) (*domain.AgencyProfile, error) {
	p, err := s.GetMine(ctx, actor)
	if err != nil {
		return nil, err
	}

	p.AgencyName = req.AgencyName
	p.Description = req.Description
	p.ServicesOffered = req.ServicesOffered
	p.TourGuideInfo = req.TourGuideInfo
	p.ContactEmail = req.ContactEmail
	p.ContactPhone = req.ContactPhone
	p.Address = req.Address
	p.ImageURL = req.ImageURL

	if err := s.profiles.Update(ctx, p); err != nil {
		return nil, err
	}
	return p, nil
}
