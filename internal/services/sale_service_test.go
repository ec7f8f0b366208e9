package services

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/johanmora/ganaderia-backend/internal/database"
	"github.com/johanmora/ganaderia-backend/internal/dto"
)

func newSaleService(t *testing.T) *SaleService {
	t.Helper()
	db, err := database.OpenEphemeral()
	require.NoError(t, err)
	return NewSaleService(db)
}

func TestSaleTotalIsDerived(t *testing.T) {
	sales := newSaleService(t)

	sale, err := sales.Create(&dto.SaleRequest{
		FarmID:     uuid.New(),
		Date:       time.Now(),
		Buyer:      "Frigorifico del Norte",
		Category:   "novillos",
		Quantity:   10,
		TotalKg:    4500,
		PricePerKg: 9800,
	})
	require.NoError(t, err)
	assert.InDelta(t, 44100000.0, sale.Total, 0.001)

	updated, err := sales.Update(sale.ID, &dto.SaleRequest{
		FarmID:     sale.FarmID,
		Date:       sale.Date,
		Buyer:      sale.Buyer,
		Category:   sale.Category,
		Quantity:   10,
		TotalKg:    4000,
		PricePerKg: 10000,
	})
	require.NoError(t, err)

	fetched, err := sales.Get(updated.ID)
	require.NoError(t, err)
	assert.InDelta(t, 40000000.0, fetched.Total, 0.001)
}

func TestSaleValidation(t *testing.T) {
	sales := newSaleService(t)

	_, err := sales.Create(&dto.SaleRequest{Quantity: 1, TotalKg: 100, PricePerKg: 10})
	assert.ErrorIs(t, err, ErrBuyerRequired)

	_, err = sales.Create(&dto.SaleRequest{Buyer: "x", Quantity: 0, TotalKg: 100, PricePerKg: 10})
	assert.ErrorIs(t, err, ErrInvalidAmounts)
}

func TestSaleDeleteMissing(t *testing.T) {
	sales := newSaleService(t)
	assert.ErrorIs(t, sales.Delete(uuid.New()), ErrSaleNotFound)
}
