package store

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSeed(t *testing.T) {
	s := setupStore(t)
	require.NoError(t, s.Seed())

	stores, err := s.ListStores()
	require.NoError(t, err)
	assert.Len(t, stores, 2)

	employees, err := s.ListEmployees()
	require.NoError(t, err)
	assert.Len(t, employees, 7)

	customers, err := s.ListCustomers()
	require.NoError(t, err)
	assert.Len(t, customers, 3)

	// Seeded orders went through the stock enforcer, so stock levels
	// reflect the seeded line items.
	p, err := s.GetProduct(1)
	require.NoError(t, err)
	assert.Equal(t, int64(117), p.Stock) // 120 - 2 - 1

	// The pivot facts are in place.
	pivot, err := s.PivotMonthlySales()
	require.NoError(t, err)
	assert.Equal(t, []string{"Jan", "Feb", "Mar"}, pivot.Columns)
	require.Len(t, pivot.Rows, 2)
	assert.Equal(t, []float64{5000, 7000, 8000}, pivot.Rows[0].Cells)
}

func TestSeedIsIdempotent(t *testing.T) {
	s := setupStore(t)
	require.NoError(t, s.Seed())
	require.NoError(t, s.Seed())

	customers, err := s.ListCustomers()
	require.NoError(t, err)
	assert.Len(t, customers, 3)

	summaries, err := s.OrderSummaries()
	require.NoError(t, err)
	assert.Len(t, summaries, 3)
}
