package store

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vinayagam-m-certainti/retailops/pkg/types"
)

// reportFixture places June 2025 orders at two stores and one order
// outside the window: store A sells 100, store B sells 250, July sells 40.
func reportFixture(t *testing.T, s *Store) (storeA, storeB int64) {
	t.Helper()
	storeA, err := s.AddStore("A", "", nil)
	require.NoError(t, err)
	storeB, err = s.AddStore("B", "", nil)
	require.NoError(t, err)
	customerID, err := s.AddCustomer("Kiran", "kiran@example.com", "100-200", "Pune")
	require.NoError(t, err)
	productID, err := s.AddProduct(types.Product{Name: "Rice", Price: 10, Stock: 1000})
	require.NoError(t, err)

	place := func(store int64, date time.Time, qty int64) {
		orderID, err := s.CreateOrder(customerID, &store, date)
		require.NoError(t, err)
		_, err = s.AddOrderItem(orderID, productID, qty, 10)
		require.NoError(t, err)
	}
	place(storeA, time.Date(2025, 6, 5, 0, 0, 0, 0, time.UTC), 10)  // 100
	place(storeB, time.Date(2025, 6, 12, 0, 0, 0, 0, time.UTC), 20) // 200
	place(storeB, time.Date(2025, 6, 30, 23, 0, 0, 0, time.UTC), 5) // 50
	place(storeA, time.Date(2025, 7, 1, 0, 0, 0, 0, time.UTC), 4)   // outside window
	return storeA, storeB
}

func TestGenerateSalesReport(t *testing.T) {
	s := setupStore(t)
	storeA, storeB := reportFixture(t, s)

	report, err := s.GenerateSalesReport(2025, time.June)
	require.NoError(t, err)
	require.Len(t, report, 2)

	// Descending by revenue.
	assert.Equal(t, storeB, report[0].StoreID)
	assert.InDelta(t, 250.0, report[0].Revenue, 1e-9)
	assert.Equal(t, storeA, report[1].StoreID)
	assert.InDelta(t, 100.0, report[1].Revenue, 1e-9)
}

// Stores without revenue in the window are omitted, not reported as zero.
func TestGenerateSalesReportOmitsZeroRevenueStores(t *testing.T) {
	s := setupStore(t)
	_, storeB := reportFixture(t, s)
	_, err := s.AddStore("Idle", "", nil)
	require.NoError(t, err)

	report, err := s.GenerateSalesReport(2025, time.July)
	require.NoError(t, err)
	require.Len(t, report, 1, "only the store with July revenue appears")
	assert.NotEqual(t, storeB, report[0].StoreID)
}

func TestGenerateSalesReportEmptyMonth(t *testing.T) {
	s := setupStore(t)
	reportFixture(t, s)

	report, err := s.GenerateSalesReport(2024, time.June)
	require.NoError(t, err)
	assert.Empty(t, report)
}

func TestRefreshMonthlySales(t *testing.T) {
	s := setupStore(t)
	storeA, storeB := reportFixture(t, s)

	require.NoError(t, s.RefreshMonthlySales(2025, time.June))

	table, err := s.PivotMonthlySales()
	require.NoError(t, err)
	require.Equal(t, []string{"Jun"}, table.Columns)
	require.Len(t, table.Rows, 2)
	assert.Equal(t, storeA, table.Rows[0].StoreID)
	assert.Equal(t, []float64{100}, table.Rows[0].Cells)
	assert.Equal(t, storeB, table.Rows[1].StoreID)
	assert.Equal(t, []float64{250}, table.Rows[1].Cells)

	// Refreshing again overwrites, it does not accumulate.
	require.NoError(t, s.RefreshMonthlySales(2025, time.June))
	table, err = s.PivotMonthlySales()
	require.NoError(t, err)
	assert.Equal(t, []float64{100}, table.Rows[0].Cells)
}

func TestSetMonthlySaleValidation(t *testing.T) {
	s := setupStore(t)
	assert.ErrorIs(t, s.SetMonthlySale(1, "", 100), types.ErrValidation)
}
