package store

import (
	"database/sql"
	"errors"
	"fmt"

	"github.com/vinayagam-m-certainti/retailops/pkg/types"
)

// AddSupplier inserts a supplier and returns the assigned ID.
func (s *Store) AddSupplier(name, contact, phone, city string) (int64, error) {
	sup := types.Supplier{Name: name, Contact: contact, Phone: phone, City: city}
	if err := sup.Validate(); err != nil {
		return 0, fmt.Errorf("add supplier: name is required: %w", err)
	}

	res, err := s.db.Exec(
		"INSERT INTO suppliers (supplier_name, contact_name, phone, city) VALUES (?, ?, ?, ?)",
		name, contact, phone, city,
	)
	if err != nil {
		return 0, fmt.Errorf("add supplier %q: %w", name, classifyError(err))
	}
	id, err := res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("add supplier %q: %w", name, err)
	}
	return id, nil
}

// DeleteSupplier removes a supplier; its products cascade away.
func (s *Store) DeleteSupplier(id int64) error {
	res, err := s.db.Exec("DELETE FROM suppliers WHERE supplier_id = ?", id)
	if err != nil {
		return fmt.Errorf("delete supplier %d: %w", id, classifyError(err))
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("delete supplier %d: %w", id, err)
	}
	if affected == 0 {
		return fmt.Errorf("supplier %d: %w", id, types.ErrNotFound)
	}
	return nil
}

// AddProduct inserts a product and returns the assigned ID.
func (s *Store) AddProduct(p types.Product) (int64, error) {
	if err := p.Validate(); err != nil {
		return 0, fmt.Errorf("add product: name required, price and stock non-negative: %w", err)
	}

	res, err := s.db.Exec(
		"INSERT INTO products (product_name, category, price, stock, supplier_id) VALUES (?, ?, ?, ?, ?)",
		p.Name, p.Category, p.Price, p.Stock, nullInt64(p.SupplierID),
	)
	if err != nil {
		return 0, fmt.Errorf("add product %q: %w", p.Name, classifyError(err))
	}
	id, err := res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("add product %q: %w", p.Name, err)
	}
	return id, nil
}

// GetProduct retrieves a product by ID.
func (s *Store) GetProduct(id int64) (*types.Product, error) {
	var (
		p          types.Product
		supplierID sql.NullInt64
	)
	err := s.db.QueryRow(
		"SELECT product_id, product_name, category, price, stock, supplier_id FROM products WHERE product_id = ?",
		id,
	).Scan(&p.ProductID, &p.Name, &p.Category, &p.Price, &p.Stock, &supplierID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("product %d: %w", id, types.ErrNotFound)
		}
		return nil, fmt.Errorf("get product %d: %w", id, classifyError(err))
	}
	p.SupplierID = int64Ptr(supplierID)
	return &p, nil
}

// ListProducts returns all products ordered by ID.
func (s *Store) ListProducts() ([]types.Product, error) {
	rows, err := s.db.Query(
		"SELECT product_id, product_name, category, price, stock, supplier_id FROM products ORDER BY product_id",
	)
	if err != nil {
		return nil, fmt.Errorf("list products: %w", classifyError(err))
	}
	defer rows.Close()

	var products []types.Product
	for rows.Next() {
		var (
			p          types.Product
			supplierID sql.NullInt64
		)
		if err := rows.Scan(&p.ProductID, &p.Name, &p.Category, &p.Price, &p.Stock, &supplierID); err != nil {
			return nil, fmt.Errorf("list products: %w", err)
		}
		p.SupplierID = int64Ptr(supplierID)
		products = append(products, p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list products: %w", classifyError(err))
	}
	return products, nil
}

// UpdateProductPrice sets a product's price.
func (s *Store) UpdateProductPrice(id int64, price float64) error {
	if price < 0 {
		return fmt.Errorf("product %d: price must be non-negative: %w", id, types.ErrValidation)
	}
	res, err := s.db.Exec("UPDATE products SET price = ? WHERE product_id = ?", price, id)
	if err != nil {
		return fmt.Errorf("update price of product %d: %w", id, classifyError(err))
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("update price of product %d: %w", id, err)
	}
	if affected == 0 {
		return fmt.Errorf("product %d: %w", id, types.ErrNotFound)
	}
	return nil
}
