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
	ErrItemNotFound     = errors.New("inventory item not found")
	ErrItemNameRequired = errors.New("item name is required")
	ErrNegativeQuantity = errors.New("quantity cannot be negative")
)

type InventoryService struct {
	db *gorm.DB
}

func NewInventoryService(db *gorm.DB) *InventoryService {
	return &InventoryService{db: db}
}

func (s *InventoryService) validate(req *dto.InventoryItemRequest) error {
	if req.Name == "" {
		return ErrItemNameRequired
	}
	if req.Quantity < 0 {
		return ErrNegativeQuantity
	}
	return nil
}

func (s *InventoryService) Create(req *dto.InventoryItemRequest) (*models.InventoryItem, error) {
	if err := s.validate(req); err != nil {
		return nil, err
	}

	item := models.InventoryItem{
		FarmID:   req.FarmID,
		Name:     req.Name,
		Category: req.Category,
		Quantity: req.Quantity,
		Unit:     req.Unit,
		MinStock: req.MinStock,
	}
	if err := s.db.Create(&item).Error; err != nil {
		return nil, fmt.Errorf("failed to create inventory item: %w", err)
	}
	return &item, nil
}

func (s *InventoryService) List() ([]models.InventoryItem, error) {
	var items []models.InventoryItem
	if err := s.db.Order("name ASC").Find(&items).Error; err != nil {
		return nil, fmt.Errorf("failed to list inventory: %w", err)
	}
	return items, nil
}

func (s *InventoryService) Get(id uuid.UUID) (*models.InventoryItem, error) {
	var item models.InventoryItem
	if err := s.db.First(&item, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrItemNotFound
		}
		return nil, fmt.Errorf("failed to fetch inventory item: %w", err)
	}
	return &item, nil
}

func (s *InventoryService) Update(id uuid.UUID, req *dto.InventoryItemRequest) (*models.InventoryItem, error) {
	if err := s.validate(req); err != nil {
		return nil, err
	}

	item, err := s.Get(id)
	if err != nil {
		return nil, err
	}

	updates := map[string]interface{}{
		"farm_id":   req.FarmID,
		"name":      req.Name,
		"category":  req.Category,
		"quantity":  req.Quantity,
		"unit":      req.Unit,
		"min_stock": req.MinStock,
	}
	if err := s.db.Model(item).Updates(updates).Error; err != nil {
		return nil, fmt.Errorf("failed to update inventory item: %w", err)
	}
	return item, nil
}

func (s *InventoryService) Delete(id uuid.UUID) error {
	result := s.db.Delete(&models.InventoryItem{}, "id = ?", id)
	if result.Error != nil {
		return fmt.Errorf("failed to delete inventory item: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return ErrItemNotFound
	}
	return nil
}
