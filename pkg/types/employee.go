package types

import "time"

// Employee is a staff member. ManagerID is nil for the roots of the
// reporting forest; StoreID is nil when the employee's store was deleted.
type Employee struct {
	EmployeeID int64
	Name       string
	Role       string
	StoreID    *int64
	Salary     float64
	ManagerID  *int64
}

// Validate checks the writable fields of an employee.
func (e Employee) Validate() error {
	if e.Name == "" {
		return ErrValidation
	}
	if e.Salary < 0 {
		return ErrValidation
	}
	return nil
}

// EmployeeAudit is the pre-delete snapshot of an employee. Rows are
// appended exactly once per committed deletion and never updated; only an
// explicit audit reset removes them.
type EmployeeAudit struct {
	AuditID    int64
	EmployeeID int64
	Name       string
	Role       string
	StoreID    *int64
	Salary     float64
	ManagerID  *int64
	DeletedAt  time.Time
}
