package services

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/johanmora/ganaderia-backend/internal/database"
	"github.com/johanmora/ganaderia-backend/internal/dto"
	"github.com/johanmora/ganaderia-backend/internal/models"
	"gorm.io/gorm"
)

func newMovementFixture(t *testing.T) (*MovementService, *FarmService, *gorm.DB) {
	t.Helper()
	db, err := database.OpenEphemeral()
	require.NoError(t, err)
	return NewMovementService(db), NewFarmService(db), db
}

func mustFarm(t *testing.T, farms *FarmService, name string) *models.Farm {
	t.Helper()
	farm, err := farms.Create("uid-test", &dto.FarmRequest{Name: name})
	require.NoError(t, err)
	return farm
}

func record(t *testing.T, movements *MovementService, farmID uuid.UUID, kind, category string, qty int, kg float64) {
	t.Helper()
	_, err := movements.Create("uid-test", &dto.MovementRequest{
		FarmID:   farmID,
		Date:     time.Now(),
		Kind:     kind,
		Category: category,
		Quantity: qty,
		TotalKg:  kg,
	})
	require.NoError(t, err)
}

func TestMovementCreateValidation(t *testing.T) {
	movements, farms, _ := newMovementFixture(t)
	farm := mustFarm(t, farms, "La Esperanza")

	cases := []struct {
		name string
		req  dto.MovementRequest
		want error
	}{
		{"missing farm", dto.MovementRequest{Kind: models.MovementEntrada, Category: "vacas", Quantity: 1}, ErrFarmRequired},
		{"bad kind", dto.MovementRequest{FarmID: farm.ID, Kind: "teleport", Category: "vacas", Quantity: 1}, ErrInvalidKind},
		{"missing category", dto.MovementRequest{FarmID: farm.ID, Kind: models.MovementEntrada, Quantity: 1}, ErrCategoryRequired},
		{"zero quantity", dto.MovementRequest{FarmID: farm.ID, Kind: models.MovementEntrada, Category: "vacas"}, ErrInvalidQuantity},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := movements.Create("uid-test", &tc.req)
			assert.ErrorIs(t, err, tc.want)
		})
	}
}

func TestMovementCreateUnknownFarm(t *testing.T) {
	movements, _, _ := newMovementFixture(t)

	_, err := movements.Create("uid-test", &dto.MovementRequest{
		FarmID:   uuid.New(),
		Kind:     models.MovementEntrada,
		Category: "vacas",
		Quantity: 3,
	})
	assert.ErrorIs(t, err, ErrFarmNotFound)
}

func TestMovementSummaryNetsHeadCounts(t *testing.T) {
	movements, farms, _ := newMovementFixture(t)
	esperanza := mustFarm(t, farms, "La Esperanza")
	porvenir := mustFarm(t, farms, "El Porvenir")

	record(t, movements, esperanza.ID, models.MovementEntrada, "vacas", 20, 8000)
	record(t, movements, esperanza.ID, models.MovementNacimiento, "terneros", 5, 150)
	record(t, movements, esperanza.ID, models.MovementSalida, "vacas", 4, 1700)
	record(t, movements, esperanza.ID, models.MovementMuerte, "terneros", 1, 30)
	record(t, movements, porvenir.ID, models.MovementEntrada, "toros", 2, 1400)

	summary, err := movements.Summary()
	require.NoError(t, err)

	// Sorted by farm name, then category.
	require.Len(t, summary.Rows, 3)
	assert.Equal(t, "El Porvenir", summary.Rows[0].FarmName)
	assert.Equal(t, "toros", summary.Rows[0].Category)
	assert.Equal(t, 2, summary.Rows[0].Head)

	assert.Equal(t, "La Esperanza", summary.Rows[1].FarmName)
	assert.Equal(t, "terneros", summary.Rows[1].Category)
	assert.Equal(t, 4, summary.Rows[1].Head)
	assert.InDelta(t, 120.0, summary.Rows[1].TotalKg, 0.001)

	assert.Equal(t, "vacas", summary.Rows[2].Category)
	assert.Equal(t, 16, summary.Rows[2].Head)
	assert.InDelta(t, 6300.0, summary.Rows[2].TotalKg, 0.001)

	assert.Equal(t, 22, summary.TotalHead)
}

func TestMovementSummaryEmptyLog(t *testing.T) {
	movements, _, _ := newMovementFixture(t)

	summary, err := movements.Summary()
	require.NoError(t, err)
	assert.Empty(t, summary.Rows)
	assert.Zero(t, summary.TotalHead)
}
