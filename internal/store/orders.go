package store

import (
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/vinayagam-m-certainti/retailops/pkg/types"
)

// rowScanner covers *sql.Row and *sql.Rows.
type rowScanner interface {
	Scan(dest ...any) error
}

func scanOrder(r rowScanner) (*types.Order, error) {
	var (
		o       types.Order
		storeID sql.NullInt64
		date    string
	)
	if err := r.Scan(&o.OrderID, &o.CustomerID, &storeID, &date, &o.TotalAmount, &o.Status); err != nil {
		return nil, classifyError(err)
	}
	o.StoreID = int64Ptr(storeID)
	t, err := parseTime(date)
	if err != nil {
		return nil, err
	}
	o.OrderDate = t
	return &o, nil
}

// CreateOrder opens a pending order for a customer at a store (storeID may
// be nil for orders without a store). Returns the assigned order ID.
func (s *Store) CreateOrder(customerID int64, storeID *int64, date time.Time) (int64, error) {
	var id int64
	err := s.withTx(func(tx *sql.Tx) error {
		var exists int
		err := tx.QueryRow("SELECT 1 FROM customers WHERE customer_id = ?", customerID).Scan(&exists)
		if errors.Is(err, sql.ErrNoRows) {
			return fmt.Errorf("customer %d: %w", customerID, types.ErrNotFound)
		}
		if err != nil {
			return fmt.Errorf("create order for customer %d: %w", customerID, classifyError(err))
		}

		res, err := tx.Exec(
			"INSERT INTO orders (customer_id, store_id, order_date, status) VALUES (?, ?, ?, ?)",
			customerID, nullInt64(storeID), date.UTC().Format(timeFormat), types.OrderStatusPending,
		)
		if err != nil {
			return fmt.Errorf("create order for customer %d: %w", customerID, classifyError(err))
		}
		id, err = res.LastInsertId()
		if err != nil {
			return fmt.Errorf("create order for customer %d: %w", customerID, err)
		}
		return nil
	})
	if err != nil {
		return 0, err
	}
	return id, nil
}

// GetOrder retrieves an order by ID.
func (s *Store) GetOrder(id int64) (*types.Order, error) {
	o, err := scanOrder(s.db.QueryRow(
		"SELECT order_id, customer_id, store_id, order_date, total_amount, status FROM orders WHERE order_id = ?",
		id,
	))
	if err != nil {
		if errors.Is(err, types.ErrNotFound) || errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("order %d: %w", id, types.ErrNotFound)
		}
		return nil, fmt.Errorf("get order %d: %w", id, err)
	}
	return o, nil
}

// AddOrderItem adds a product line to an order, passing through the stock
// enforcer: the item insert, the stock decrement, and the order-total
// update commit together or not at all. A product whose stock is below the
// requested quantity rejects the item with types.ErrInsufficientStock and
// leaves every counter unchanged.
func (s *Store) AddOrderItem(orderID, productID, quantity int64, unitPrice float64) (int64, error) {
	item := types.OrderItem{OrderID: orderID, ProductID: productID, Quantity: quantity, UnitPrice: unitPrice}
	if err := item.Validate(); err != nil {
		return 0, fmt.Errorf("order %d: quantity must be positive and price non-negative: %w", orderID, err)
	}

	var itemID int64
	err := s.withTx(func(tx *sql.Tx) error {
		var status string
		err := tx.QueryRow("SELECT status FROM orders WHERE order_id = ?", orderID).Scan(&status)
		if errors.Is(err, sql.ErrNoRows) {
			return fmt.Errorf("order %d: %w", orderID, types.ErrNotFound)
		}
		if err != nil {
			return fmt.Errorf("order %d: %w", orderID, classifyError(err))
		}
		if types.TerminalOrderStatus(status) {
			return fmt.Errorf("order %d is %s: %w", orderID, status, types.ErrConflict)
		}

		// Check-then-decrement as one conditional update: the guard and
		// the mutation are a single statement, so two concurrent items
		// against the same product can never both pass on the same stock.
		res, err := tx.Exec(
			"UPDATE products SET stock = stock - ? WHERE product_id = ? AND stock >= ?",
			quantity, productID, quantity,
		)
		if err != nil {
			return fmt.Errorf("reserve stock for product %d: %w", productID, classifyError(err))
		}
		affected, err := res.RowsAffected()
		if err != nil {
			return fmt.Errorf("reserve stock for product %d: %w", productID, err)
		}
		if affected == 0 {
			var available int64
			err := tx.QueryRow("SELECT stock FROM products WHERE product_id = ?", productID).Scan(&available)
			if errors.Is(err, sql.ErrNoRows) {
				return fmt.Errorf("product %d: %w", productID, types.ErrNotFound)
			}
			if err != nil {
				return fmt.Errorf("product %d: %w", productID, classifyError(err))
			}
			return fmt.Errorf("product %d: requested %d, available %d: %w",
				productID, quantity, available, types.ErrInsufficientStock)
		}

		ins, err := tx.Exec(
			"INSERT INTO order_items (order_id, product_id, quantity, unit_price) VALUES (?, ?, ?, ?)",
			orderID, productID, quantity, unitPrice,
		)
		if err != nil {
			return fmt.Errorf("add item to order %d: %w", orderID, classifyError(err))
		}
		itemID, err = ins.LastInsertId()
		if err != nil {
			return fmt.Errorf("add item to order %d: %w", orderID, err)
		}

		_, err = tx.Exec(
			"UPDATE orders SET total_amount = total_amount + ? WHERE order_id = ?",
			float64(quantity)*unitPrice, orderID,
		)
		if err != nil {
			return fmt.Errorf("update total of order %d: %w", orderID, classifyError(err))
		}
		return nil
	})
	if err != nil {
		return 0, err
	}
	return itemID, nil
}

// ListOrderItems returns the line items of an order.
func (s *Store) ListOrderItems(orderID int64) ([]types.OrderItem, error) {
	rows, err := s.db.Query(
		`SELECT order_item_id, order_id, product_id, quantity, unit_price
		 FROM order_items WHERE order_id = ? ORDER BY order_item_id`,
		orderID,
	)
	if err != nil {
		return nil, fmt.Errorf("items of order %d: %w", orderID, classifyError(err))
	}
	defer rows.Close()

	var items []types.OrderItem
	for rows.Next() {
		var i types.OrderItem
		if err := rows.Scan(&i.OrderItemID, &i.OrderID, &i.ProductID, &i.Quantity, &i.UnitPrice); err != nil {
			return nil, fmt.Errorf("items of order %d: %w", orderID, err)
		}
		items = append(items, i)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("items of order %d: %w", orderID, classifyError(err))
	}
	return items, nil
}

// setOrderStatus moves an order into the given status.
func (s *Store) setOrderStatus(orderID int64, status string) error {
	res, err := s.db.Exec("UPDATE orders SET status = ? WHERE order_id = ?", status, orderID)
	if err != nil {
		return fmt.Errorf("set order %d %s: %w", orderID, status, classifyError(err))
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("set order %d %s: %w", orderID, status, err)
	}
	if affected == 0 {
		return fmt.Errorf("order %d: %w", orderID, types.ErrNotFound)
	}
	return nil
}

// CompleteOrder marks an order completed.
func (s *Store) CompleteOrder(orderID int64) error {
	return s.setOrderStatus(orderID, types.OrderStatusCompleted)
}

// CancelOrder marks an order cancelled.
func (s *Store) CancelOrder(orderID int64) error {
	return s.setOrderStatus(orderID, types.OrderStatusCancelled)
}

// DeleteOrder removes an order; its items and payments cascade away.
func (s *Store) DeleteOrder(orderID int64) error {
	res, err := s.db.Exec("DELETE FROM orders WHERE order_id = ?", orderID)
	if err != nil {
		return fmt.Errorf("delete order %d: %w", orderID, classifyError(err))
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("delete order %d: %w", orderID, err)
	}
	if affected == 0 {
		return fmt.Errorf("order %d: %w", orderID, types.ErrNotFound)
	}
	return nil
}

// AddPayment records a payment against an order.
func (s *Store) AddPayment(orderID int64, amount float64, method string) (int64, error) {
	p := types.Payment{OrderID: orderID, Amount: amount, Method: method}
	if err := p.Validate(); err != nil {
		return 0, fmt.Errorf("pay order %d: amount must be non-negative and method set: %w", orderID, err)
	}

	res, err := s.db.Exec(
		"INSERT INTO payments (order_id, amount, method, paid_at) VALUES (?, ?, ?, ?)",
		orderID, amount, method, time.Now().UTC().Format(timeFormat),
	)
	if err != nil {
		return 0, fmt.Errorf("pay order %d: %w", orderID, classifyError(err))
	}
	id, err := res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("pay order %d: %w", orderID, err)
	}
	return id, nil
}

// ListPayments returns the payments recorded against an order.
func (s *Store) ListPayments(orderID int64) ([]types.Payment, error) {
	rows, err := s.db.Query(
		"SELECT payment_id, order_id, amount, method, paid_at FROM payments WHERE order_id = ? ORDER BY payment_id",
		orderID,
	)
	if err != nil {
		return nil, fmt.Errorf("payments of order %d: %w", orderID, classifyError(err))
	}
	defer rows.Close()

	var payments []types.Payment
	for rows.Next() {
		var (
			p      types.Payment
			paidAt string
		)
		if err := rows.Scan(&p.PaymentID, &p.OrderID, &p.Amount, &p.Method, &paidAt); err != nil {
			return nil, fmt.Errorf("payments of order %d: %w", orderID, err)
		}
		t, err := parseTime(paidAt)
		if err != nil {
			return nil, fmt.Errorf("payments of order %d: %w", orderID, err)
		}
		p.PaidAt = t
		payments = append(payments, p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("payments of order %d: %w", orderID, classifyError(err))
	}
	return payments, nil
}
