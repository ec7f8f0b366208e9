package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Event is a calendar entry (vaccination, vet visit, auction date...).
type Event struct {
	ID        uuid.UUID      `gorm:"type:uuid;primaryKey" json:"id"`
	FarmID    *uuid.UUID     `gorm:"type:uuid;index" json:"farm_id,omitempty"`
	Title     string         `gorm:"size:255;not null" json:"title"`
	Date      time.Time      `gorm:"not null;index" json:"date"`
	Kind      string         `gorm:"size:50" json:"kind"`
	Notes     string         `gorm:"type:text" json:"notes"`
	CreatedBy string         `gorm:"size:128" json:"created_by"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`
}

func (e *Event) BeforeCreate(_ *gorm.DB) error {
	if e.ID == uuid.Nil {
		e.ID = uuid.New()
	}
	return nil
}
