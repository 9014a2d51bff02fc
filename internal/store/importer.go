package store

import (
	"encoding/csv"
	"fmt"
	"os"
	"strings"

	"github.com/xuri/excelize/v2"

	"github.com/vinayagam-m-certainti/retailops/pkg/types"
)

// importTargets maps an importable entity name to its table and the
// columns a file header may bind. Identifier columns are deliberately
// absent: imported rows always get system-assigned IDs.
var importTargets = map[string]struct {
	table   string
	columns map[string]bool
}{
	"customers":     {"customers", cols("customer_name", "email", "phone", "city")},
	"suppliers":     {"suppliers", cols("supplier_name", "contact_name", "phone", "city")},
	"stores":        {"stores", cols("store_name", "location", "manager_id")},
	"employees":     {"employees", cols("emp_name", "role", "store_id", "salary", "manager_id")},
	"products":      {"products", cols("product_name", "category", "price", "stock", "supplier_id")},
	"monthly_sales": {"monthly_sales", cols("store_id", "month", "total_sales")},
}

func cols(names ...string) map[string]bool {
	m := make(map[string]bool, len(names))
	for _, n := range names {
		m[n] = true
	}
	return m
}

// ImportTargets lists the entity names accepted by the bulk importers.
func ImportTargets() []string {
	names := make([]string, 0, len(importTargets))
	for n := range importTargets {
		names = append(names, n)
	}
	return names
}

// RowError records one rejected row of a bulk import.
type RowError struct {
	Row int // 1-based data row number, header excluded
	Err error
}

// ImportResult summarizes a bulk import. Row failures are isolated: a bad
// row is counted and reported, the rest of the batch still commits.
type ImportResult struct {
	Inserted  int
	Failed    int
	RowErrors []RowError
}

// ImportCSV bulk-inserts rows from a CSV file into the named entity's
// table, binding columns by the file's header line. Empty cells insert as
// SQL NULL so column defaults and constraints decide their fate.
func (s *Store) ImportCSV(path, entity string) (*ImportResult, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("import %s: %w", entity, err)
	}
	defer f.Close()

	r := csv.NewReader(f)
	r.FieldsPerRecord = -1
	records, err := r.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("import %s from %s: %w", entity, path, err)
	}
	return s.importRows(entity, records)
}

// ImportXLSX bulk-inserts rows from the first sheet of a spreadsheet,
// with the same header-binding and per-row failure semantics as ImportCSV.
func (s *Store) ImportXLSX(path, entity string) (*ImportResult, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, fmt.Errorf("import %s from %s: %w", entity, path, err)
	}
	defer f.Close()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return nil, fmt.Errorf("import %s from %s: workbook has no sheets: %w", entity, path, types.ErrValidation)
	}
	records, err := f.GetRows(sheets[0])
	if err != nil {
		return nil, fmt.Errorf("import %s from %s: %w", entity, path, err)
	}
	return s.importRows(entity, records)
}

// importRows validates the header against the target's column whitelist
// and inserts the data rows one statement each.
func (s *Store) importRows(entity string, records [][]string) (*ImportResult, error) {
	target, ok := importTargets[entity]
	if !ok {
		return nil, fmt.Errorf("unknown import target %q (valid: %s): %w",
			entity, strings.Join(ImportTargets(), ", "), types.ErrValidation)
	}
	if len(records) == 0 {
		return nil, fmt.Errorf("import %s: file has no header line: %w", entity, types.ErrValidation)
	}

	header := records[0]
	columns := make([]string, len(header))
	for i, h := range header {
		col := strings.ToLower(strings.TrimSpace(h))
		if !target.columns[col] {
			return nil, fmt.Errorf("import %s: unknown column %q: %w", entity, h, types.ErrValidation)
		}
		columns[i] = col
	}

	query := fmt.Sprintf("INSERT INTO %s (%s) VALUES (%s)",
		target.table,
		strings.Join(columns, ", "),
		strings.TrimSuffix(strings.Repeat("?, ", len(columns)), ", "),
	)

	result := &ImportResult{}
	for n, record := range records[1:] {
		rowNum := n + 1
		if len(record) != len(columns) {
			result.Failed++
			result.RowErrors = append(result.RowErrors, RowError{
				Row: rowNum,
				Err: fmt.Errorf("expected %d fields, got %d: %w", len(columns), len(record), types.ErrValidation),
			})
			continue
		}

		args := make([]any, len(record))
		for i, v := range record {
			if v == "" {
				args[i] = nil
			} else {
				args[i] = v
			}
		}
		if _, err := s.db.Exec(query, args...); err != nil {
			result.Failed++
			result.RowErrors = append(result.RowErrors, RowError{Row: rowNum, Err: classifyError(err)})
			continue
		}
		result.Inserted++
	}
	return result, nil
}
