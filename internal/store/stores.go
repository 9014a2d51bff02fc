package store

import (
	"database/sql"
	"errors"
	"fmt"

	"github.com/vinayagam-m-certainti/retailops/pkg/types"
)

// AddStore inserts a retail store and returns the assigned ID. ManagerID
// may be nil; when set, the referenced employee must exist.
func (s *Store) AddStore(name, location string, managerID *int64) (int64, error) {
	st := types.Store{Name: name, Location: location, ManagerID: managerID}
	if err := st.Validate(); err != nil {
		return 0, fmt.Errorf("add store: name is required: %w", err)
	}

	res, err := s.db.Exec(
		"INSERT INTO stores (store_name, location, manager_id) VALUES (?, ?, ?)",
		name, location, nullInt64(managerID),
	)
	if err != nil {
		return 0, fmt.Errorf("add store %q: %w", name, classifyError(err))
	}
	id, err := res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("add store %q: %w", name, err)
	}
	return id, nil
}

// GetStore retrieves a store by ID.
func (s *Store) GetStore(id int64) (*types.Store, error) {
	var (
		st        types.Store
		managerID sql.NullInt64
	)
	err := s.db.QueryRow(
		"SELECT store_id, store_name, location, manager_id FROM stores WHERE store_id = ?",
		id,
	).Scan(&st.StoreID, &st.Name, &st.Location, &managerID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("store %d: %w", id, types.ErrNotFound)
		}
		return nil, fmt.Errorf("get store %d: %w", id, classifyError(err))
	}
	st.ManagerID = int64Ptr(managerID)
	return &st, nil
}

// DeleteStore removes a store. Orders placed at it keep existing with a
// null store reference; its employees are likewise detached.
func (s *Store) DeleteStore(id int64) error {
	res, err := s.db.Exec("DELETE FROM stores WHERE store_id = ?", id)
	if err != nil {
		return fmt.Errorf("delete store %d: %w", id, classifyError(err))
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("delete store %d: %w", id, err)
	}
	if affected == 0 {
		return fmt.Errorf("store %d: %w", id, types.ErrNotFound)
	}
	return nil
}

// ListStores returns all stores ordered by ID.
func (s *Store) ListStores() ([]types.Store, error) {
	rows, err := s.db.Query("SELECT store_id, store_name, location, manager_id FROM stores ORDER BY store_id")
	if err != nil {
		return nil, fmt.Errorf("list stores: %w", classifyError(err))
	}
	defer rows.Close()

	var stores []types.Store
	for rows.Next() {
		var (
			st        types.Store
			managerID sql.NullInt64
		)
		if err := rows.Scan(&st.StoreID, &st.Name, &st.Location, &managerID); err != nil {
			return nil, fmt.Errorf("list stores: %w", err)
		}
		st.ManagerID = int64Ptr(managerID)
		stores = append(stores, st)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list stores: %w", classifyError(err))
	}
	return stores, nil
}
