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
	ErrTripNotFound      = errors.New("trip not found")
	ErrRouteRequired     = errors.New("origin and destination are required")
	ErrInvalidTripStatus = errors.New("invalid trip status")
)

func validTripStatus(status string) bool {
	switch status {
	case models.TripScheduled, models.TripEnRoute, models.TripCompleted:
		return true
	}
	return false
}

type TripService struct {
	db *gorm.DB
}

func NewTripService(db *gorm.DB) *TripService {
	return &TripService{db: db}
}

func (s *TripService) validate(req *dto.TripRequest) error {
	if req.Origin == "" || req.Destination == "" {
		return ErrRouteRequired
	}
	if req.Status != "" && !validTripStatus(req.Status) {
		return ErrInvalidTripStatus
	}
	return nil
}

func (s *TripService) Create(req *dto.TripRequest) (*models.Trip, error) {
	if err := s.validate(req); err != nil {
		return nil, err
	}

	status := req.Status
	if status == "" {
		status = models.TripScheduled
	}
	trip := models.Trip{
		Date:        req.Date,
		DriverID:    req.DriverID,
		Origin:      req.Origin,
		Destination: req.Destination,
		Cargo:       req.Cargo,
		Quantity:    req.Quantity,
		Status:      status,
	}
	if err := s.db.Create(&trip).Error; err != nil {
		return nil, fmt.Errorf("failed to create trip: %w", err)
	}
	return &trip, nil
}

func (s *TripService) List() ([]models.Trip, error) {
	var trips []models.Trip
	if err := s.db.Order("date DESC").Find(&trips).Error; err != nil {
		return nil, fmt.Errorf("failed to list trips: %w", err)
	}
	return trips, nil
}

func (s *TripService) Get(id uuid.UUID) (*models.Trip, error) {
	var trip models.Trip
	if err := s.db.First(&trip, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrTripNotFound
		}
		return nil, fmt.Errorf("failed to fetch trip: %w", err)
	}
	return &trip, nil
}

func (s *TripService) Update(id uuid.UUID, req *dto.TripRequest) (*models.Trip, error) {
	if err := s.validate(req); err != nil {
		return nil, err
	}

	trip, err := s.Get(id)
	if err != nil {
		return nil, err
	}

	updates := map[string]interface{}{
		"date":        req.Date,
		"driver_id":   req.DriverID,
		"origin":      req.Origin,
		"destination": req.Destination,
		"cargo":       req.Cargo,
		"quantity":    req.Quantity,
	}
	if req.Status != "" {
		updates["status"] = req.Status
	}
	if err := s.db.Model(trip).Updates(updates).Error; err != nil {
		return nil, fmt.Errorf("failed to update trip: %w", err)
	}
	return trip, nil
}

func (s *TripService) Delete(id uuid.UUID) error {
	result := s.db.Delete(&models.Trip{}, "id = ?", id)
	if result.Error != nil {
		return fmt.Errorf("failed to delete trip: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return ErrTripNotFound
	}
	return nil
}

// Summary counts trips by status and by driver.
func (s *TripService) Summary() (*dto.TripSummary, error) {
	var trips []models.Trip
	if err := s.db.Find(&trips).Error; err != nil {
		return nil, fmt.Errorf("failed to load trips: %w", err)
	}

	summary := &dto.TripSummary{
		ByStatus: make(map[string]int),
		ByDriver: make(map[string]int),
		Total:    len(trips),
	}
	for _, t := range trips {
		summary.ByStatus[t.Status]++
		if t.DriverID != "" {
			summary.ByDriver[t.DriverID]++
		}
	}
	return summary, nil
}
