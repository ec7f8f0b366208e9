package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Farm struct {
	ID         uuid.UUID      `gorm:"type:uuid;primaryKey" json:"id"`
	Name       string         `gorm:"size:255;not null" json:"name"`
	Location   string         `gorm:"size:255" json:"location"`
	AreaHa     float64        `json:"area_ha"`
	Capacity   int            `json:"capacity"`
	Notes      string         `gorm:"type:text" json:"notes"`
	CreatedBy  string         `gorm:"size:128" json:"created_by"`
	CreatedAt  time.Time      `json:"created_at"`
	UpdatedAt  time.Time      `json:"updated_at"`
	DeletedAt  gorm.DeletedAt `gorm:"index" json:"-"`
}

func (f *Farm) BeforeCreate(_ *gorm.DB) error {
	if f.ID == uuid.Nil {
		f.ID = uuid.New()
	}
	return nil
}
