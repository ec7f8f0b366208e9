package services

import (
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/johanmora/ganaderia-backend/internal/dto"
	"github.com/johanmora/ganaderia-backend/internal/models"
	"gorm.io/gorm"
)

var (
	ErrFarmNotFound     = errors.New("farm not found")
	ErrFarmNameRequired = errors.New("farm name is required")
)

type FarmService struct {
	db *gorm.DB
}

func NewFarmService(db *gorm.DB) *FarmService {
	return &FarmService{db: db}
}

func (s *FarmService) Create(userID string, req *dto.FarmRequest) (*models.Farm, error) {
	if req.Name == "" {
		return nil, ErrFarmNameRequired
	}

	farm := models.Farm{
		Name:      req.Name,
		Location:  req.Location,
		AreaHa:    req.AreaHa,
		Capacity:  req.Capacity,
		Notes:     req.Notes,
		CreatedBy: userID,
	}
	if err := s.db.Create(&farm).Error; err != nil {
		return nil, fmt.Errorf("failed to create farm: %w", err)
	}
	return &farm, nil
}

func (s *FarmService) List() ([]models.Farm, error) {
	var farms []models.Farm
	if err := s.db.Order("name ASC").Find(&farms).Error; err != nil {
		return nil, fmt.Errorf("failed to list farms: %w", err)
	}
	return farms, nil
}

func (s *FarmService) Get(id uuid.UUID) (*models.Farm, error) {
	var farm models.Farm
	if err := s.db.First(&farm, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrFarmNotFound
		}
		return nil, fmt.Errorf("failed to fetch farm: %w", err)
	}
	return &farm, nil
}

func (s *FarmService) Update(id uuid.UUID, req *dto.FarmRequest) (*models.Farm, error) {
	if req.Name == "" {
		return nil, ErrFarmNameRequired
	}

	farm, err := s.Get(id)
	if err != nil {
		return nil, err
	}

	updates := map[string]interface{}{
		"name":     req.Name,
		"location": req.Location,
		"area_ha":  req.AreaHa,
		"capacity": req.Capacity,
		"notes":    req.Notes,
	}
	if err := s.db.Model(farm).Updates(updates).Error; err != nil {
		return nil, fmt.Errorf("failed to update farm: %w", err)
	}
	return farm, nil
}

func (s *FarmService) Delete(id uuid.UUID) error {
	result := s.db.Delete(&models.Farm{}, "id = ?", id)
	if result.Error != nil {
		return fmt.Errorf("failed to delete farm: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return ErrFarmNotFound
	}
	return nil
}
