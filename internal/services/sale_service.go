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
	ErrSaleNotFound   = errors.New("sale not found")
	ErrBuyerRequired  = errors.New("buyer is required")
	ErrInvalidAmounts = errors.New("quantity, weight and price must be positive")
)

type SaleService struct {
	db *gorm.DB
}

func NewSaleService(db *gorm.DB) *SaleService {
	return &SaleService{db: db}
}

func (s *SaleService) validate(req *dto.SaleRequest) error {
	if req.Buyer == "" {
		return ErrBuyerRequired
	}
	if req.Quantity <= 0 || req.TotalKg <= 0 || req.PricePerKg <= 0 {
		return ErrInvalidAmounts
	}
	return nil
}

func (s *SaleService) Create(req *dto.SaleRequest) (*models.Sale, error) {
	if err := s.validate(req); err != nil {
		return nil, err
	}

	sale := models.Sale{
		FarmID:     req.FarmID,
		Date:       req.Date,
		Buyer:      req.Buyer,
		Category:   req.Category,
		Quantity:   req.Quantity,
		TotalKg:    req.TotalKg,
		PricePerKg: req.PricePerKg,
		Total:      req.TotalKg * req.PricePerKg,
	}
	if err := s.db.Create(&sale).Error; err != nil {
		return nil, fmt.Errorf("failed to create sale: %w", err)
	}
	return &sale, nil
}

func (s *SaleService) List() ([]models.Sale, error) {
	var sales []models.Sale
	if err := s.db.Order("date DESC").Find(&sales).Error; err != nil {
		return nil, fmt.Errorf("failed to list sales: %w", err)
	}
	return sales, nil
}

func (s *SaleService) Get(id uuid.UUID) (*models.Sale, error) {
	var sale models.Sale
	if err := s.db.First(&sale, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrSaleNotFound
		}
		return nil, fmt.Errorf("failed to fetch sale: %w", err)
	}
	return &sale, nil
}

func (s *SaleService) Update(id uuid.UUID, req *dto.SaleRequest) (*models.Sale, error) {
	if err := s.validate(req); err != nil {
		return nil, err
	}

	sale, err := s.Get(id)
	if err != nil {
		return nil, err
	}

	updates := map[string]interface{}{
		"farm_id":      req.FarmID,
		"date":         req.Date,
		"buyer":        req.Buyer,
		"category":     req.Category,
		"quantity":     req.Quantity,
		"total_kg":     req.TotalKg,
		"price_per_kg": req.PricePerKg,
		"total":        req.TotalKg * req.PricePerKg,
	}
	if err := s.db.Model(sale).Updates(updates).Error; err != nil {
		return nil, fmt.Errorf("failed to update sale: %w", err)
	}
	return sale, nil
}

func (s *SaleService) Delete(id uuid.UUID) error {
	result := s.db.Delete(&models.Sale{}, "id = ?", id)
	if result.Error != nil {
		return fmt.Errorf("failed to delete sale: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return ErrSaleNotFound
	}
	return nil
}
