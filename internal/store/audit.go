package store

import (
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/vinayagam-m-certainti/retailops/pkg/types"
)

// DeleteEmployee removes an employee, recording the pre-delete snapshot in
// the audit trail first. Snapshot and delete share one transaction, so a
// committed deletion always has exactly one audit row and a rolled-back
// deletion has none. Reports referencing the employee as a manager or a
// store manager are detached, not blocked.
func (s *Store) DeleteEmployee(id int64) error {
	return s.withTx(func(tx *sql.Tx) error {
		e, err := scanEmployee(tx.QueryRow(
			"SELECT employee_id, emp_name, role, store_id, salary, manager_id FROM employees WHERE employee_id = ?",
			id,
		))
		if errors.Is(err, sql.ErrNoRows) {
			return fmt.Errorf("employee %d: %w", id, types.ErrNotFound)
		}
		if err != nil {
			return fmt.Errorf("delete employee %d: %w", id, classifyError(err))
		}

		_, err = tx.Exec(
			`INSERT INTO employee_audit (employee_id, emp_name, role, store_id, salary, manager_id, deleted_at)
			 VALUES (?, ?, ?, ?, ?, ?, ?)`,
			e.EmployeeID, e.Name, e.Role, nullInt64(e.StoreID), e.Salary, nullInt64(e.ManagerID),
			time.Now().UTC().Format(timeFormat),
		)
		if err != nil {
			return fmt.Errorf("audit employee %d: %w", id, classifyError(err))
		}

		if _, err := tx.Exec("DELETE FROM employees WHERE employee_id = ?", id); err != nil {
			return fmt.Errorf("delete employee %d: %w", id, classifyError(err))
		}
		return nil
	})
}

// ListEmployeeAudit returns the audit trail, oldest first.
func (s *Store) ListEmployeeAudit() ([]types.EmployeeAudit, error) {
	rows, err := s.db.Query(
		`SELECT audit_id, employee_id, emp_name, role, store_id, salary, manager_id, deleted_at
		 FROM employee_audit ORDER BY audit_id`,
	)
	if err != nil {
		return nil, fmt.Errorf("list audit: %w", classifyError(err))
	}
	defer rows.Close()

	var records []types.EmployeeAudit
	for rows.Next() {
		var (
			a         types.EmployeeAudit
			storeID   sql.NullInt64
			managerID sql.NullInt64
			deletedAt string
		)
		if err := rows.Scan(&a.AuditID, &a.EmployeeID, &a.Name, &a.Role, &storeID, &a.Salary, &managerID, &deletedAt); err != nil {
			return nil, fmt.Errorf("list audit: %w", err)
		}
		a.StoreID = int64Ptr(storeID)
		a.ManagerID = int64Ptr(managerID)
		t, err := parseTime(deletedAt)
		if err != nil {
			return nil, fmt.Errorf("list audit: %w", err)
		}
		a.DeletedAt = t
		records = append(records, a)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list audit: %w", classifyError(err))
	}
	return records, nil
}

// ResetEmployeeAudit clears the audit trail. This is the only operation
// allowed to delete audit rows. Returns the number of rows removed.
func (s *Store) ResetEmployeeAudit() (int64, error) {
	res, err := s.db.Exec("DELETE FROM employee_audit")
	if err != nil {
		return 0, fmt.Errorf("reset audit: %w", classifyError(err))
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("reset audit: %w", err)
	}
	return affected, nil
}
