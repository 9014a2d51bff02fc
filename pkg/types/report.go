package types

// EmployeeLevel is one entry of the resolved reporting hierarchy: an
// employee annotated with its distance from the root of its tree.
type EmployeeLevel struct {
	Employee
	Level int
}

// StoreRevenue is one row of a monthly sales report: a store and its
// order-item revenue for the reporting window.
type StoreRevenue struct {
	StoreID   int64
	StoreName string
	Revenue   float64
}

// PivotTable is a cross-tabulated report: one row per store, one column
// per month label present in the fact data. Cells without a matching fact
// hold zero.
type PivotTable struct {
	Columns []string
	Rows    []PivotRow
}

// PivotRow is one store's row of a PivotTable. Cells align with the
// table's Columns.
type PivotRow struct {
	StoreID int64
	Cells   []float64
}
