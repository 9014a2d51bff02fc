package store

import (
	"database/sql"
	"errors"
	"fmt"

	"github.com/vinayagam-m-certainti/retailops/pkg/types"
)

// AddCustomer inserts a customer and returns the assigned ID. Duplicate
// email or phone surfaces as types.ErrValidation.
func (s *Store) AddCustomer(name, email, phone, city string) (int64, error) {
	c := types.Customer{Name: name, Email: email, Phone: phone, City: city}
	if err := c.Validate(); err != nil {
		return 0, fmt.Errorf("add customer: name, email and phone are required: %w", err)
	}

	res, err := s.db.Exec(
		"INSERT INTO customers (customer_name, email, phone, city) VALUES (?, ?, ?, ?)",
		name, email, phone, city,
	)
	if err != nil {
		return 0, fmt.Errorf("add customer %q: %w", name, classifyError(err))
	}
	id, err := res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("add customer %q: %w", name, err)
	}
	return id, nil
}

// GetCustomer retrieves a customer by ID.
func (s *Store) GetCustomer(id int64) (*types.Customer, error) {
	var c types.Customer
	err := s.db.QueryRow(
		"SELECT customer_id, customer_name, email, phone, city FROM customers WHERE customer_id = ?",
		id,
	).Scan(&c.CustomerID, &c.Name, &c.Email, &c.Phone, &c.City)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("customer %d: %w", id, types.ErrNotFound)
		}
		return nil, fmt.Errorf("get customer %d: %w", id, classifyError(err))
	}
	return &c, nil
}

// ListCustomers returns all customers ordered by ID.
func (s *Store) ListCustomers() ([]types.Customer, error) {
	rows, err := s.db.Query(
		"SELECT customer_id, customer_name, email, phone, city FROM customers ORDER BY customer_id",
	)
	if err != nil {
		return nil, fmt.Errorf("list customers: %w", classifyError(err))
	}
	defer rows.Close()

	var customers []types.Customer
	for rows.Next() {
		var c types.Customer
		if err := rows.Scan(&c.CustomerID, &c.Name, &c.Email, &c.Phone, &c.City); err != nil {
			return nil, fmt.Errorf("list customers: %w", err)
		}
		customers = append(customers, c)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list customers: %w", classifyError(err))
	}
	return customers, nil
}

// UpdateCustomer overwrites the customer's mutable fields named by upd.
// Nil fields keep their stored value. Returns types.ErrNotFound when the
// customer does not exist.
func (s *Store) UpdateCustomer(id int64, upd types.CustomerUpdate) error {
	if upd.Empty() {
		return fmt.Errorf("update customer %d: no fields to update: %w", id, types.ErrValidation)
	}

	return s.withTx(func(tx *sql.Tx) error {
		var cur types.Customer
		err := tx.QueryRow(
			"SELECT customer_name, email, phone, city FROM customers WHERE customer_id = ?",
			id,
		).Scan(&cur.Name, &cur.Email, &cur.Phone, &cur.City)
		if errors.Is(err, sql.ErrNoRows) {
			return fmt.Errorf("customer %d: %w", id, types.ErrNotFound)
		}
		if err != nil {
			return fmt.Errorf("update customer %d: %w", id, classifyError(err))
		}

		if upd.Name != nil {
			cur.Name = *upd.Name
		}
		if upd.Email != nil {
			cur.Email = *upd.Email
		}
		if upd.Phone != nil {
			cur.Phone = *upd.Phone
		}
		if upd.City != nil {
			cur.City = *upd.City
		}
		if err := cur.Validate(); err != nil {
			return fmt.Errorf("update customer %d: fields must not be cleared: %w", id, err)
		}

		_, err = tx.Exec(
			"UPDATE customers SET customer_name = ?, email = ?, phone = ?, city = ? WHERE customer_id = ?",
			cur.Name, cur.Email, cur.Phone, cur.City, id,
		)
		if err != nil {
			return fmt.Errorf("update customer %d: %w", id, classifyError(err))
		}
		return nil
	})
}

// DeleteCustomer removes a customer and, via cascade, its orders.
// Customers with orders outside a terminal status are protected: the
// delete fails with types.ErrConflict and nothing changes.
func (s *Store) DeleteCustomer(id int64) error {
	return s.withTx(func(tx *sql.Tx) error {
		var exists int
		err := tx.QueryRow("SELECT 1 FROM customers WHERE customer_id = ?", id).Scan(&exists)
		if errors.Is(err, sql.ErrNoRows) {
			return fmt.Errorf("customer %d: %w", id, types.ErrNotFound)
		}
		if err != nil {
			return fmt.Errorf("delete customer %d: %w", id, classifyError(err))
		}

		var active int
		err = tx.QueryRow(
			"SELECT COUNT(*) FROM orders WHERE customer_id = ? AND status NOT IN (?, ?)",
			id, types.OrderStatusCompleted, types.OrderStatusCancelled,
		).Scan(&active)
		if err != nil {
			return fmt.Errorf("delete customer %d: %w", id, classifyError(err))
		}
		if active > 0 {
			return fmt.Errorf("customer %d has %d active orders: %w", id, active, types.ErrConflict)
		}

		if _, err := tx.Exec("DELETE FROM customers WHERE customer_id = ?", id); err != nil {
			return fmt.Errorf("delete customer %d: %w", id, classifyError(err))
		}
		return nil
	})
}

// GetCustomerOrders returns the customer's orders in ascending date order.
// Returns types.ErrNotFound when the customer does not exist.
func (s *Store) GetCustomerOrders(id int64) ([]types.Order, error) {
	if _, err := s.GetCustomer(id); err != nil {
		return nil, err
	}

	rows, err := s.db.Query(
		`SELECT order_id, customer_id, store_id, order_date, total_amount, status
		 FROM orders WHERE customer_id = ? ORDER BY order_date, order_id`,
		id,
	)
	if err != nil {
		return nil, fmt.Errorf("orders for customer %d: %w", id, classifyError(err))
	}
	defer rows.Close()

	var orders []types.Order
	for rows.Next() {
		o, err := scanOrder(rows)
		if err != nil {
			return nil, fmt.Errorf("orders for customer %d: %w", id, err)
		}
		orders = append(orders, *o)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("orders for customer %d: %w", id, classifyError(err))
	}
	return orders, nil
}
