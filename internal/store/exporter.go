package store

import (
	"encoding/csv"
	"fmt"
	"io"

	"github.com/xuri/excelize/v2"
)

// ExportCSV writes a result set as CSV with the caller-specified header
// line first.
func ExportCSV(w io.Writer, header []string, rows [][]string) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(header); err != nil {
		return fmt.Errorf("export csv header: %w", err)
	}
	for i, row := range rows {
		if err := cw.Write(row); err != nil {
			return fmt.Errorf("export csv row %d: %w", i+1, err)
		}
	}
	cw.Flush()
	return cw.Error()
}

// ExportXLSX writes a result set into a spreadsheet file, header line
// first, on the named sheet.
func ExportXLSX(path, sheet string, header []string, rows [][]string) error {
	f := excelize.NewFile()
	defer f.Close()

	if sheet != "" && sheet != "Sheet1" {
		if err := f.SetSheetName("Sheet1", sheet); err != nil {
			return fmt.Errorf("export xlsx: rename sheet: %w", err)
		}
	} else if sheet == "" {
		sheet = "Sheet1"
	}

	writeRow := func(rowNum int, values []string) error {
		cell, err := excelize.CoordinatesToCellName(1, rowNum)
		if err != nil {
			return err
		}
		row := make([]any, len(values))
		for i, v := range values {
			row[i] = v
		}
		return f.SetSheetRow(sheet, cell, &row)
	}

	if err := writeRow(1, header); err != nil {
		return fmt.Errorf("export xlsx header: %w", err)
	}
	for i, r := range rows {
		if err := writeRow(i+2, r); err != nil {
			return fmt.Errorf("export xlsx row %d: %w", i+1, err)
		}
	}

	if err := f.SaveAs(path); err != nil {
		return fmt.Errorf("export xlsx to %s: %w", path, err)
	}
	return nil
}
