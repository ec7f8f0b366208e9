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
	ErrEventNotFound = errors.New("event not found")
	ErrTitleRequired = errors.New("event title is required")
)

type EventService struct {
	db *gorm.DB
}

func NewEventService(db *gorm.DB) *EventService {
	return &EventService{db: db}
}

func (s *EventService) Create(userID string, req *dto.EventRequest) (*models.Event, error) {
	if req.Title == "" {
		return nil, ErrTitleRequired
	}

	event := models.Event{
		FarmID:    req.FarmID,
		Title:     req.Title,
		Date:      req.Date,
		Kind:      req.Kind,
		Notes:     req.Notes,
		CreatedBy: userID,
	}
	if err := s.db.Create(&event).Error; err != nil {
		return nil, fmt.Errorf("failed to create event: %w", err)
	}
	return &event, nil
}

func (s *EventService) List() ([]models.Event, error) {
	var events []models.Event
	if err := s.db.Order("date ASC").Find(&events).Error; err != nil {
		return nil, fmt.Errorf("failed to list events: %w", err)
	}
	return events, nil
}

func (s *EventService) Get(id uuid.UUID) (*models.Event, error) {
	var event models.Event
	if err := s.db.First(&event, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrEventNotFound
		}
		return nil, fmt.Errorf("failed to fetch event: %w", err)
	}
	return &event, nil
}

func (s *EventService) Update(id uuid.UUID, req *dto.EventRequest) (*models.Event, error) {
	if req.Title == "" {
		return nil, ErrTitleRequired
	}

	event, err := s.Get(id)
	if err != nil {
		return nil, err
	}

	updates := map[string]interface{}{
		"farm_id": req.FarmID,
		"title":   req.Title,
		"date":    req.Date,
		"kind":    req.Kind,
		"notes":   req.Notes,
	}
	if err := s.db.Model(event).Updates(updates).Error; err != nil {
		return nil, fmt.Errorf("failed to update event: %w", err)
	}
	return event, nil
}

func (s *EventService) Delete(id uuid.UUID) error {
	result := s.db.Delete(&models.Event{}, "id = ?", id)
	if result.Error != nil {
		return fmt.Errorf("failed to delete event: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return ErrEventNotFound
	}
	return nil
}
