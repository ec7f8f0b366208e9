package services

import (
	"errors"
	"fmt"

	"github.com/johanmora/ganaderia-backend/internal/dto"
	"github.com/johanmora/ganaderia-backend/internal/models"
	"gorm.io/gorm"
)

var (
	ErrProfileNotFound = errors.New("profile not found")
	ErrInvalidRole     = errors.New("invalid role")
)

type ProfileService struct {
	db *gorm.DB
}

func NewProfileService(db *gorm.DB) *ProfileService {
	return &ProfileService{db: db}
}

func (s *ProfileService) GetByID(id string) (*models.Profile, error) {
	var profile models.Profile
	if err := s.db.First(&profile, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrProfileNotFound
		}
		return nil, fmt.Errorf("failed to fetch profile: %w", err)
	}
	return &profile, nil
}

// GetOrCreate returns the profile for an identity, creating it with the
// default role on first sign-in.
func (s *ProfileService) GetOrCreate(id, email, displayName string) (*models.Profile, error) {
	profile, err := s.GetByID(id)
	if err == nil {
		return profile, nil
	}
	if !errors.Is(err, ErrProfileNotFound) {
		return nil, err
	}

	created := models.Profile{
		ID:          id,
		Email:       email,
		DisplayName: displayName,
		Role:        models.DefaultRole,
	}
	if err := s.db.Create(&created).Error; err != nil {
		// Lost a create race with a concurrent first request; re-read.
		if existing, readErr := s.GetByID(id); readErr == nil {
			return existing, nil
		}
		return nil, fmt.Errorf("failed to create profile: %w", err)
	}
	return &created, nil
}

// EnsureRole upserts a profile so that its stored role matches the given
// one. Used by the role resolver's self-healing write for allow-listed
// admins; idempotent.
func (s *ProfileService) EnsureRole(id, email string, role models.Role) error {
	profile, err := s.GetByID(id)
	if errors.Is(err, ErrProfileNotFound) {
		return s.db.Create(&models.Profile{
			ID:    id,
			Email: email,
			Role:  role,
		}).Error
	}
	if err != nil {
		return err
	}
	if profile.Role == role {
		return nil
	}
	return s.db.Model(profile).Update("role", role).Error
}

func (s *ProfileService) List() ([]models.Profile, error) {
	var profiles []models.Profile
	if err := s.db.Order("created_at ASC").Find(&profiles).Error; err != nil {
		return nil, fmt.Errorf("failed to list profiles: %w", err)
	}
	return profiles, nil
}

func (s *ProfileService) UpdateDisplayName(id string, req *dto.UpdateProfileRequest) (*models.Profile, error) {
	profile, err := s.GetByID(id)
	if err != nil {
		return nil, err
	}
	if err := s.db.Model(profile).Update("display_name", req.DisplayName).Error; err != nil {
		return nil, fmt.Errorf("failed to update profile: %w", err)
	}
	return profile, nil
}

// UpdateRole assigns a role to a profile. Admin-only at the route layer.
func (s *ProfileService) UpdateRole(id string, role models.Role) (*models.Profile, error) {
	if !role.Valid() {
		return nil, ErrInvalidRole
	}
	profile, err := s.GetByID(id)
	if err != nil {
		return nil, err
	}
	if err := s.db.Model(profile).Update("role", role).Error; err != nil {
		return nil, fmt.Errorf("failed to update role: %w", err)
	}
	return profile, nil
}
