package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// Auction records a subasta event. Lots keeps the per-lot breakdown
// (category, head count, hammer price) as JSON; TotalKg and Total are the
// event-level figures used by summaries.
type Auction struct {
	ID        uuid.UUID      `gorm:"type:uuid;primaryKey" json:"id"`
	Date      time.Time      `gorm:"not null;index" json:"date"`
	Location  string         `gorm:"size:255" json:"location"`
	Lots      datatypes.JSON `json:"lots,omitempty"`
	Quantity  int            `json:"quantity"`
	TotalKg   float64        `json:"total_kg"`
	Total     float64        `json:"total"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`
}

func (a *Auction) BeforeCreate(_ *gorm.DB) error {
	if a.ID == uuid.Nil {
		a.ID = uuid.New()
	}
	return nil
}
