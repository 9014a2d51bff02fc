package store

import (
	"database/sql"
	"errors"
	"fmt"

	"github.com/vinayagam-m-certainti/retailops/pkg/types"
)

// AddEmployee inserts an employee and returns the assigned ID. ManagerID
// is nil for a root of the reporting forest. The manager graph is acyclic
// by construction: a manager reference must name an existing employee, so
// inserts alone cannot close a cycle (re-parenting updates are not part of
// the surface).
func (s *Store) AddEmployee(e types.Employee) (int64, error) {
	if err := e.Validate(); err != nil {
		return 0, fmt.Errorf("add employee: name required, salary non-negative: %w", err)
	}

	res, err := s.db.Exec(
		"INSERT INTO employees (emp_name, role, store_id, salary, manager_id) VALUES (?, ?, ?, ?, ?)",
		e.Name, e.Role, nullInt64(e.StoreID), e.Salary, nullInt64(e.ManagerID),
	)
	if err != nil {
		return 0, fmt.Errorf("add employee %q: %w", e.Name, classifyError(err))
	}
	id, err := res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("add employee %q: %w", e.Name, err)
	}
	return id, nil
}

func scanEmployee(r rowScanner) (*types.Employee, error) {
	var (
		e         types.Employee
		storeID   sql.NullInt64
		managerID sql.NullInt64
	)
	if err := r.Scan(&e.EmployeeID, &e.Name, &e.Role, &storeID, &e.Salary, &managerID); err != nil {
		return nil, err
	}
	e.StoreID = int64Ptr(storeID)
	e.ManagerID = int64Ptr(managerID)
	return &e, nil
}

// GetEmployee retrieves an employee by ID.
func (s *Store) GetEmployee(id int64) (*types.Employee, error) {
	e, err := scanEmployee(s.db.QueryRow(
		"SELECT employee_id, emp_name, role, store_id, salary, manager_id FROM employees WHERE employee_id = ?",
		id,
	))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("employee %d: %w", id, types.ErrNotFound)
		}
		return nil, fmt.Errorf("get employee %d: %w", id, classifyError(err))
	}
	return e, nil
}

// ListEmployees returns all employees ordered by ID.
func (s *Store) ListEmployees() ([]types.Employee, error) {
	rows, err := s.db.Query(
		"SELECT employee_id, emp_name, role, store_id, salary, manager_id FROM employees ORDER BY employee_id",
	)
	if err != nil {
		return nil, fmt.Errorf("list employees: %w", classifyError(err))
	}
	defer rows.Close()

	var employees []types.Employee
	for rows.Next() {
		e, err := scanEmployee(rows)
		if err != nil {
			return nil, fmt.Errorf("list employees: %w", err)
		}
		employees = append(employees, *e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list employees: %w", classifyError(err))
	}
	return employees, nil
}

// UpdateEmployeeSalary sets an employee's salary.
func (s *Store) UpdateEmployeeSalary(id int64, salary float64) error {
	if salary < 0 {
		return fmt.Errorf("employee %d: salary must be non-negative: %w", id, types.ErrValidation)
	}
	res, err := s.db.Exec("UPDATE employees SET salary = ? WHERE employee_id = ?", salary, id)
	if err != nil {
		return fmt.Errorf("update salary of employee %d: %w", id, classifyError(err))
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("update salary of employee %d: %w", id, err)
	}
	if affected == 0 {
		return fmt.Errorf("employee %d: %w", id, types.ErrNotFound)
	}
	return nil
}
