package dto

import "github.com/google/uuid"

// LivestockSummaryRow is the net head count for one farm and animal category,
// folded from the movement log (entrada + nacimiento - salida - muerte).
type LivestockSummaryRow struct {
	FarmID   uuid.UUID `json:"farm_id"`
	FarmName string    `json:"farm_name"`
	Category string    `json:"category"`
	Head     int       `json:"head"`
	TotalKg  float64   `json:"total_kg"`
}

type LivestockSummary struct {
	Rows      []LivestockSummaryRow `json:"rows"`
	TotalHead int                   `json:"total_head"`
}

// TripSummary aggregates transport trips by status and by driver.
type TripSummary struct {
	ByStatus map[string]int `json:"by_status"`
	ByDriver map[string]int `json:"by_driver"`
	Total    int            `json:"total"`
}
