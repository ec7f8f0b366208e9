package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Sale records a direct livestock sale. Total is derived from weight and
// price per kilo at write time and stored denormalized for reporting.
type Sale struct {
	ID         uuid.UUID      `gorm:"type:uuid;primaryKey" json:"id"`
	FarmID     uuid.UUID      `gorm:"type:uuid;index" json:"farm_id"`
	Date       time.Time      `gorm:"not null;index" json:"date"`
	Buyer      string         `gorm:"size:255;not null" json:"buyer"`
	Category   string         `gorm:"size:50" json:"category"`
	Quantity   int            `gorm:"not null" json:"quantity"`
	TotalKg    float64        `json:"total_kg"`
	PricePerKg float64        `json:"price_per_kg"`
	Total      float64        `json:"total"`
	CreatedAt  time.Time      `json:"created_at"`
	UpdatedAt  time.Time      `json:"updated_at"`
	DeletedAt  gorm.DeletedAt `gorm:"index" json:"-"`
}

func (s *Sale) BeforeCreate(_ *gorm.DB) error {
	if s.ID == uuid.Nil {
		s.ID = uuid.New()
	}
	return nil
}
