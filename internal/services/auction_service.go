package services

import (
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/johanmora/ganaderia-backend/internal/dto"
	"github.com/johanmora/ganaderia-backend/internal/models"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

var (
	ErrAuctionNotFound  = errors.New("auction not found")
	ErrLocationRequired = errors.New("auction location is required")
)

type AuctionService struct {
	db *gorm.DB
}

func NewAuctionService(db *gorm.DB) *AuctionService {
	return &AuctionService{db: db}
}

func (s *AuctionService) Create(req *dto.AuctionRequest) (*models.Auction, error) {
	if req.Location == "" {
		return nil, ErrLocationRequired
	}

	auction := models.Auction{
		Date:     req.Date,
		Location: req.Location,
		Lots:     datatypes.JSON(req.Lots),
		Quantity: req.Quantity,
		TotalKg:  req.TotalKg,
		Total:    req.Total,
	}
	if err := s.db.Create(&auction).Error; err != nil {
		return nil, fmt.Errorf("failed to create auction: %w", err)
	}
	return &auction, nil
}

func (s *AuctionService) List() ([]models.Auction, error) {
	var auctions []models.Auction
	if err := s.db.Order("date DESC").Find(&auctions).Error; err != nil {
		return nil, fmt.Errorf("failed to list auctions: %w", err)
	}
	return auctions, nil
}

func (s *AuctionService) Get(id uuid.UUID) (*models.Auction, error) {
	var auction models.Auction
	if err := s.db.First(&auction, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrAuctionNotFound
		}
		return nil, fmt.Errorf("failed to fetch auction: %w", err)
	}
	return &auction, nil
}

func (s *AuctionService) Update(id uuid.UUID, req *dto.AuctionRequest) (*models.Auction, error) {
	if req.Location == "" {
		return nil, ErrLocationRequired
	}

	auction, err := s.Get(id)
	if err != nil {
		return nil, err
	}

	updates := map[string]interface{}{
		"date":     req.Date,
		"location": req.Location,
		"quantity": req.Quantity,
		"total_kg": req.TotalKg,
		"total":    req.Total,
	}
	if req.Lots != nil {
		updates["lots"] = datatypes.JSON(req.Lots)
	}
	if err := s.db.Model(auction).Updates(updates).Error; err != nil {
		return nil, fmt.Errorf("failed to update auction: %w", err)
	}
	return auction, nil
}

func (s *AuctionService) Delete(id uuid.UUID) error {
	result := s.db.Delete(&models.Auction{}, "id = ?", id)
	if result.Error != nil {
		return fmt.Errorf("failed to delete auction: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return ErrAuctionNotFound
	}
	return nil
}
