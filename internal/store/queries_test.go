package store

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vinayagam-m-certainti/retailops/pkg/types"
)

func TestOrderSummaries(t *testing.T) {
	s := setupStore(t)

	storeID, err := s.AddStore("Downtown", "12 Main St", nil)
	require.NoError(t, err)
	custID, err := s.AddCustomer("Kiran", "kiran@example.com", "100-200", "Pune")
	require.NoError(t, err)
	supID, err := s.AddSupplier("Fresh Farms", "G. Patel", "900-1", "Pune")
	require.NoError(t, err)
	prodID, err := s.AddProduct(types.Product{Name: "Rice", Category: "Grocery", Price: 10, Stock: 50, SupplierID: &supID})
	require.NoError(t, err)

	orderID, err := s.CreateOrder(custID, &storeID, time.Date(2025, 6, 3, 0, 0, 0, 0, time.UTC))
	require.NoError(t, err)
	_, err = s.AddOrderItem(orderID, prodID, 4, 10)
	require.NoError(t, err)

	// A second order with no items still appears, with zero revenue.
	emptyID, err := s.CreateOrder(custID, nil, time.Date(2025, 6, 4, 0, 0, 0, 0, time.UTC))
	require.NoError(t, err)

	summaries, err := s.OrderSummaries()
	require.NoError(t, err)
	require.Len(t, summaries, 2)

	assert.Equal(t, orderID, summaries[0].OrderID)
	assert.Equal(t, "Kiran", summaries[0].CustomerName)
	assert.Equal(t, "Downtown", summaries[0].StoreName)
	assert.Equal(t, types.OrderStatusPending, summaries[0].Status)
	assert.InDelta(t, 40.0, summaries[0].Revenue, 0.001)

	assert.Equal(t, emptyID, summaries[1].OrderID)
	assert.Empty(t, summaries[1].StoreName)
	assert.Zero(t, summaries[1].Revenue)
}

func TestReportingPairs(t *testing.T) {
	s := setupStore(t)

	root, err := s.AddEmployee(types.Employee{Name: "Priya", Role: "Director", Salary: 90000})
	require.NoError(t, err)
	_, err = s.AddEmployee(types.Employee{Name: "Arun", Role: "Manager", Salary: 60000, ManagerID: &root})
	require.NoError(t, err)

	pairs, err := s.ReportingPairs()
	require.NoError(t, err)
	assert.Equal(t, []ReportingPair{
		{EmployeeName: "Priya", ManagerName: ""},
		{EmployeeName: "Arun", ManagerName: "Priya"},
	}, pairs)
}

func TestCombineCities(t *testing.T) {
	s := setupStore(t)

	_, err := s.AddCustomer("Kiran", "kiran@example.com", "100-200", "Pune")
	require.NoError(t, err)
	_, err = s.AddCustomer("Divya", "divya@example.com", "100-300", "Mumbai")
	require.NoError(t, err)
	_, err = s.AddSupplier("Fresh Farms", "G. Patel", "900-1", "Pune")
	require.NoError(t, err)
	_, err = s.AddSupplier("Daily Goods", "R. Singh", "900-2", "Delhi")
	require.NoError(t, err)

	tests := []struct {
		op   string
		want []string
	}{
		{CitySetUnion, []string{"Delhi", "Mumbai", "Pune"}},
		{CitySetIntersect, []string{"Pune"}},
		{CitySetExcept, []string{"Mumbai"}},
	}
	for _, tt := range tests {
		t.Run(tt.op, func(t *testing.T) {
			got, err := s.CombineCities(tt.op)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestCombineCitiesUnknownOperator(t *testing.T) {
	s := setupStore(t)
	_, err := s.CombineCities("xor")
	assert.ErrorIs(t, err, types.ErrValidation)
}
