package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// InventoryItem is one warehouse (bodega) stock line, optionally tied to a
// farm. MinStock drives low-stock reporting on the client.
type InventoryItem struct {
	ID        uuid.UUID      `gorm:"type:uuid;primaryKey" json:"id"`
	FarmID    *uuid.UUID     `gorm:"type:uuid;index" json:"farm_id,omitempty"`
	Name      string         `gorm:"size:255;not null" json:"name"`
	Category  string         `gorm:"size:100" json:"category"`
	Quantity  float64        `gorm:"not null" json:"quantity"`
	Unit      string         `gorm:"size:20" json:"unit"`
	MinStock  float64        `json:"min_stock"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`
}

func (i *InventoryItem) BeforeCreate(_ *gorm.DB) error {
	if i.ID == uuid.Nil {
		i.ID = uuid.New()
	}
	return nil
}
