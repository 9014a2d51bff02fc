package types

// Store is a retail outlet. ManagerID weakly references an employee and is
// nulled when that employee is deleted.
type Store struct {
	StoreID   int64
	Name      string
	Location  string
	ManagerID *int64
}

// Validate checks the required store fields.
func (s Store) Validate() error {
	if s.Name == "" {
		return ErrValidation
	}
	return nil
}

// MonthlySale is one fact of the derived monthly-sales table: total sales
// for one store in one labeled month. Populated by the reporting workflow
// and consumed by the pivot engine.
type MonthlySale struct {
	StoreID    int64
	Month      string
	TotalSales float64
}
