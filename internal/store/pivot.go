package store

import (
	"fmt"
	"sort"
	"strings"

	"github.com/vinayagam-m-certainti/retailops/pkg/types"
)

// monthOrdinal positions the recognized three-letter month abbreviations
// chronologically. Unrecognized labels sort lexicographically after them.
var monthOrdinal = map[string]int{
	"Jan": 1, "Feb": 2, "Mar": 3, "Apr": 4, "May": 5, "Jun": 6,
	"Jul": 7, "Aug": 8, "Sep": 9, "Oct": 10, "Nov": 11, "Dec": 12,
}

// lessMonthLabel orders pivot columns: calendar order for recognized month
// abbreviations, then lexicographic for anything else.
func lessMonthLabel(a, b string) bool {
	oa, oka := monthOrdinal[a]
	ob, okb := monthOrdinal[b]
	switch {
	case oka && okb:
		return oa < ob
	case oka:
		return true
	case okb:
		return false
	default:
		return a < b
	}
}

// PivotMonthlySales cross-tabulates the monthly_sales fact table: one row
// per store, one column per distinct month label present in the data,
// cells summing the facts for that store and month. A store with no fact
// for a month reports zero. Column and row order are deterministic, so
// repeated runs over unchanged data render identically.
func (s *Store) PivotMonthlySales() (*types.PivotTable, error) {
	rows, err := s.db.Query("SELECT store_id, month, total_sales FROM monthly_sales")
	if err != nil {
		return nil, fmt.Errorf("pivot monthly sales: %w", classifyError(err))
	}
	defer rows.Close()

	cells := make(map[int64]map[string]float64)
	labels := make(map[string]bool)
	for rows.Next() {
		var f types.MonthlySale
		if err := rows.Scan(&f.StoreID, &f.Month, &f.TotalSales); err != nil {
			return nil, fmt.Errorf("pivot monthly sales: %w", err)
		}
		if cells[f.StoreID] == nil {
			cells[f.StoreID] = make(map[string]float64)
		}
		cells[f.StoreID][f.Month] += f.TotalSales
		labels[f.Month] = true
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("pivot monthly sales: %w", classifyError(err))
	}

	columns := make([]string, 0, len(labels))
	for l := range labels {
		columns = append(columns, l)
	}
	sort.Slice(columns, func(i, j int) bool { return lessMonthLabel(columns[i], columns[j]) })

	storeIDs := make([]int64, 0, len(cells))
	for id := range cells {
		storeIDs = append(storeIDs, id)
	}
	sort.Slice(storeIDs, func(i, j int) bool { return storeIDs[i] < storeIDs[j] })

	table := &types.PivotTable{Columns: columns}
	for _, id := range storeIDs {
		row := types.PivotRow{StoreID: id, Cells: make([]float64, len(columns))}
		for i, col := range columns {
			row.Cells[i] = cells[id][col]
		}
		table.Rows = append(table.Rows, row)
	}
	return table, nil
}

// RenderPivot formats a pivot table as aligned text, one line per store.
func RenderPivot(t *types.PivotTable) string {
	var b strings.Builder
	b.WriteString("store")
	for _, col := range t.Columns {
		fmt.Fprintf(&b, "\t%s", col)
	}
	b.WriteByte('\n')
	for _, row := range t.Rows {
		fmt.Fprintf(&b, "%d", row.StoreID)
		for _, cell := range row.Cells {
			fmt.Fprintf(&b, "\t%.2f", cell)
		}
		b.WriteByte('\n')
	}
	return b.String()
}
