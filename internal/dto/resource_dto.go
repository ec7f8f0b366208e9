package dto

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
)

type FarmRequest struct {
	Name     string  `json:"name"`
	Location string  `json:"location"`
	AreaHa   float64 `json:"area_ha"`
	Capacity int     `json:"capacity"`
	Notes    string  `json:"notes"`
}

type MovementRequest struct {
	FarmID   uuid.UUID       `json:"farm_id"`
	Date     time.Time       `json:"date"`
	Kind     string          `json:"kind"`
	Category string          `json:"category"`
	Quantity int             `json:"quantity"`
	TotalKg  float64         `json:"total_kg"`
	Details  json.RawMessage `json:"details,omitempty"`
}

type InventoryItemRequest struct {
	FarmID   *uuid.UUID `json:"farm_id,omitempty"`
	Name     string     `json:"name"`
	Category string     `json:"category"`
	Quantity float64    `json:"quantity"`
	Unit     string     `json:"unit"`
	MinStock float64    `json:"min_stock"`
}

type SaleRequest struct {
	FarmID     uuid.UUID `json:"farm_id"`
	Date       time.Time `json:"date"`
	Buyer      string    `json:"buyer"`
	Category   string    `json:"category"`
	Quantity   int       `json:"quantity"`
	TotalKg    float64   `json:"total_kg"`
	PricePerKg float64   `json:"price_per_kg"`
}

type AuctionRequest struct {
	Date     time.Time       `json:"date"`
	Location string          `json:"location"`
	Lots     json.RawMessage `json:"lots,omitempty"`
	Quantity int             `json:"quantity"`
	TotalKg  float64         `json:"total_kg"`
	Total    float64         `json:"total"`
}

type TripRequest struct {
	Date        time.Time `json:"date"`
	DriverID    string    `json:"driver_id"`
	Origin      string    `json:"origin"`
	Destination string    `json:"destination"`
	Cargo       string    `json:"cargo"`
	Quantity    int       `json:"quantity"`
	Status      string    `json:"status"`
}

type EventRequest struct {
	FarmID *uuid.UUID `json:"farm_id,omitempty"`
	Title  string     `json:"title"`
	Date   time.Time  `json:"date"`
	Kind   string     `json:"kind"`
	Notes  string     `json:"notes"`
}
