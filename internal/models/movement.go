package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// Movement kinds. Net head count per farm is the sum of inbound kinds minus
// outbound kinds; transfers are recorded as a salida on the origin farm and
// an entrada on the destination farm.
const (
	MovementEntrada    = "entrada"
	MovementSalida     = "salida"
	MovementNacimiento = "nacimiento"
	MovementMuerte     = "muerte"
)

// Movement is one animal-movement log entry for a farm. Details holds the
// per-animal breakdown (tag numbers, weights) as free-form JSON, matching
// the nested records the mobile client submits.
type Movement struct {
	ID          uuid.UUID      `gorm:"type:uuid;primaryKey" json:"id"`
	FarmID      uuid.UUID      `gorm:"type:uuid;not null;index" json:"farm_id"`
	Date        time.Time      `gorm:"not null;index" json:"date"`
	Kind        string         `gorm:"size:20;not null" json:"kind"`
	Category    string         `gorm:"size:50;not null" json:"category"`
	Quantity    int            `gorm:"not null" json:"quantity"`
	TotalKg     float64        `json:"total_kg"`
	Details     datatypes.JSON `json:"details,omitempty"`
	RecordedBy  string         `gorm:"size:128" json:"recorded_by"`
	CreatedAt   time.Time      `json:"created_at"`
	UpdatedAt   time.Time      `json:"updated_at"`
	DeletedAt   gorm.DeletedAt `gorm:"index" json:"-"`
}

func (m *Movement) BeforeCreate(_ *gorm.DB) error {
	if m.ID == uuid.Nil {
		m.ID = uuid.New()
	}
	return nil
}
