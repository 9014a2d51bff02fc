package store

import (
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vinayagam-m-certainti/retailops/pkg/types"
)

// orderFixture creates a customer, a stocked product, and a pending order.
func orderFixture(t *testing.T, s *Store, stock int64) (orderID, productID int64) {
	t.Helper()
	customerID, err := s.AddCustomer("Kiran", "kiran@example.com", "100-200", "Pune")
	require.NoError(t, err)
	productID, err = s.AddProduct(types.Product{Name: "Rice", Category: "Grocery", Price: 10, Stock: stock})
	require.NoError(t, err)
	orderID, err = s.CreateOrder(customerID, nil, time.Date(2025, 6, 5, 0, 0, 0, 0, time.UTC))
	require.NoError(t, err)
	return orderID, productID
}

func TestCreateOrderUnknownCustomer(t *testing.T) {
	s := setupStore(t)
	_, err := s.CreateOrder(42, nil, time.Now())
	assert.ErrorIs(t, err, types.ErrNotFound)
}

func TestAddOrderItemDecrementsStock(t *testing.T) {
	s := setupStore(t)
	orderID, productID := orderFixture(t, s, 10)

	_, err := s.AddOrderItem(orderID, productID, 4, 10)
	require.NoError(t, err)

	p, err := s.GetProduct(productID)
	require.NoError(t, err)
	assert.Equal(t, int64(6), p.Stock)

	o, err := s.GetOrder(orderID)
	require.NoError(t, err)
	assert.InDelta(t, 40.0, o.TotalAmount, 1e-9)

	items, err := s.ListOrderItems(orderID)
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, int64(4), items[0].Quantity)
}

func TestAddOrderItemInsufficientStock(t *testing.T) {
	s := setupStore(t)
	orderID, productID := orderFixture(t, s, 10)

	_, err := s.AddOrderItem(orderID, productID, 15, 10)
	assert.ErrorIs(t, err, types.ErrInsufficientStock)

	// Neither the counter nor the order changed.
	p, err := s.GetProduct(productID)
	require.NoError(t, err)
	assert.Equal(t, int64(10), p.Stock)

	items, err := s.ListOrderItems(orderID)
	require.NoError(t, err)
	assert.Empty(t, items)

	o, err := s.GetOrder(orderID)
	require.NoError(t, err)
	assert.Zero(t, o.TotalAmount)
}

func TestAddOrderItemExactStock(t *testing.T) {
	s := setupStore(t)
	orderID, productID := orderFixture(t, s, 10)

	_, err := s.AddOrderItem(orderID, productID, 10, 10)
	require.NoError(t, err)

	p, err := s.GetProduct(productID)
	require.NoError(t, err)
	assert.Zero(t, p.Stock)
}

func TestAddOrderItemValidation(t *testing.T) {
	s := setupStore(t)
	orderID, productID := orderFixture(t, s, 10)

	_, err := s.AddOrderItem(orderID, productID, 0, 10)
	assert.ErrorIs(t, err, types.ErrValidation)
	_, err = s.AddOrderItem(orderID, productID, 1, -1)
	assert.ErrorIs(t, err, types.ErrValidation)
}

func TestAddOrderItemUnknownProduct(t *testing.T) {
	s := setupStore(t)
	orderID, _ := orderFixture(t, s, 10)

	_, err := s.AddOrderItem(orderID, 999, 1, 10)
	assert.ErrorIs(t, err, types.ErrNotFound)
}

func TestAddOrderItemUnknownOrder(t *testing.T) {
	s := setupStore(t)
	_, err := s.AddOrderItem(999, 1, 1, 10)
	assert.ErrorIs(t, err, types.ErrNotFound)
}

func TestAddOrderItemTerminalOrder(t *testing.T) {
	s := setupStore(t)
	orderID, productID := orderFixture(t, s, 10)
	require.NoError(t, s.CompleteOrder(orderID))

	_, err := s.AddOrderItem(orderID, productID, 1, 10)
	assert.ErrorIs(t, err, types.ErrConflict)
}

// Concurrent items against one product must never oversell it: the
// conditional decrement admits exactly as many as the stock covers, the
// rest fail with the stock rejection and change nothing.
func TestAddOrderItemConcurrentStock(t *testing.T) {
	s := setupStore(t)
	orderID, productID := orderFixture(t, s, 10)

	const (
		workers = 5
		qty     = 3
	)
	errs := make([]error, workers)
	var wg sync.WaitGroup
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			_, errs[i] = s.AddOrderItem(orderID, productID, qty, 10)
		}(i)
	}
	wg.Wait()

	var succeeded int
	for _, err := range errs {
		if err == nil {
			succeeded++
		} else {
			assert.ErrorIs(t, err, types.ErrInsufficientStock)
		}
	}
	assert.Equal(t, 3, succeeded, "10 stock admits exactly three items of quantity 3")

	p, err := s.GetProduct(productID)
	require.NoError(t, err)
	assert.Equal(t, int64(10-3*qty), p.Stock)
}

func TestDeleteOrderCascadesToItems(t *testing.T) {
	s := setupStore(t)
	orderID, productID := orderFixture(t, s, 10)
	_, err := s.AddOrderItem(orderID, productID, 2, 10)
	require.NoError(t, err)
	_, err = s.AddOrderItem(orderID, productID, 3, 10)
	require.NoError(t, err)

	require.NoError(t, s.DeleteOrder(orderID))

	items, err := s.ListOrderItems(orderID)
	require.NoError(t, err)
	assert.Empty(t, items, "cascade should leave zero rows for the order")
}

func TestPayments(t *testing.T) {
	s := setupStore(t)
	orderID, _ := orderFixture(t, s, 10)

	_, err := s.AddPayment(orderID, 25, "card")
	require.NoError(t, err)
	_, err = s.AddPayment(orderID, -1, "card")
	assert.ErrorIs(t, err, types.ErrValidation)
	_, err = s.AddPayment(orderID, 10, "")
	assert.ErrorIs(t, err, types.ErrValidation)

	payments, err := s.ListPayments(orderID)
	require.NoError(t, err)
	require.Len(t, payments, 1)
	assert.Equal(t, "card", payments[0].Method)

	// Payments cascade away with their order.
	require.NoError(t, s.DeleteOrder(orderID))
	payments, err = s.ListPayments(orderID)
	require.NoError(t, err)
	assert.Empty(t, payments)
}

func TestCancelOrder(t *testing.T) {
	s := setupStore(t)
	orderID, _ := orderFixture(t, s, 10)

	require.NoError(t, s.CancelOrder(orderID))
	o, err := s.GetOrder(orderID)
	require.NoError(t, err)
	assert.Equal(t, types.OrderStatusCancelled, o.Status)

	assert.ErrorIs(t, s.CompleteOrder(999), types.ErrNotFound)
}
