package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Trip statuses.
const (
	TripScheduled = "programado"
	TripEnRoute   = "en_ruta"
	TripCompleted = "completado"
)

// Trip is one transport run between farms (or farm and market). DriverID
// references the trucker's profile. Creation and mutation are admin-only;
// any authenticated user may read.
type Trip struct {
	ID          uuid.UUID      `gorm:"type:uuid;primaryKey" json:"id"`
	Date        time.Time      `gorm:"not null;index" json:"date"`
	DriverID    string         `gorm:"size:128;index" json:"driver_id"`
	Origin      string         `gorm:"size:255;not null" json:"origin"`
	Destination string         `gorm:"size:255;not null" json:"destination"`
	Cargo       string         `gorm:"size:255" json:"cargo"`
	Quantity    int            `json:"quantity"`
	Status      string         `gorm:"size:20;default:'programado'" json:"status"`
	CreatedAt   time.Time      `json:"created_at"`
	UpdatedAt   time.Time      `json:"updated_at"`
	DeletedAt   gorm.DeletedAt `gorm:"index" json:"-"`
}

func (t *Trip) BeforeCreate(_ *gorm.DB) error {
	if t.ID == uuid.Nil {
		t.ID = uuid.New()
	}
	return nil
}
