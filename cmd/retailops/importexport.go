// Bulk import/export commands.
package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/vinayagam-m-certainti/retailops/internal/store"
)

var (
	exportFormat string
	exportOut    string
)

func init() {
	exportCmd.Flags().StringVar(&exportFormat, "format", "csv", "output format: csv or xlsx")
	exportCmd.Flags().StringVar(&exportOut, "out", "", "output file (default: stdout for csv, <entity>.xlsx for xlsx)")
}

var importCmd = &cobra.Command{
	Use:   "import <file> <entity>",
	Short: "Bulk-import a tabular file into an entity table",
	Long: `Insert one row per record of a CSV or XLSX file, binding columns by the
file's header line. A row that violates a constraint is reported and
skipped; the rest of the batch still loads. Valid entities: ` + strings.Join(store.ImportTargets(), ", ") + `.`,
	Args: cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		path, entity := args[0], args[1]
		return runOp("import", func() error {
			var (
				result *store.ImportResult
				err    error
			)
			if strings.EqualFold(filepath.Ext(path), ".xlsx") {
				result, err = db.ImportXLSX(path, entity)
			} else {
				result, err = db.ImportCSV(path, entity)
			}
			if err != nil {
				return err
			}
			for _, re := range result.RowErrors {
				log.WithFields(log.Fields{"operation": "import", "row": re.Row}).Warn(re.Err)
			}
			fmt.Printf("import %s: %d inserted, %d failed\n", entity, result.Inserted, result.Failed)
			return nil
		})
	},
}

var exportCmd = &cobra.Command{
	Use:   "export <entity>",
	Short: "Export an entity table as CSV or XLSX",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		entity := args[0]
		return runOp("export", func() error {
			header, rows, err := exportRows(entity)
			if err != nil {
				return err
			}

			switch exportFormat {
			case "csv":
				if exportOut == "" {
					return store.ExportCSV(os.Stdout, header, rows)
				}
				f, err := os.Create(exportOut)
				if err != nil {
					return fmt.Errorf("export %s: %w", entity, err)
				}
				defer f.Close()
				if err := store.ExportCSV(f, header, rows); err != nil {
					return err
				}
			case "xlsx":
				out := exportOut
				if out == "" {
					out = entity + ".xlsx"
				}
				if err := store.ExportXLSX(out, entity, header, rows); err != nil {
					return err
				}
			default:
				return fmt.Errorf("unknown export format %q (want csv or xlsx)", exportFormat)
			}
			fmt.Fprintf(os.Stderr, "exported %d %s rows\n", len(rows), entity)
			return nil
		})
	},
}

// exportRows materializes an entity table as header + string rows.
func exportRows(entity string) ([]string, [][]string, error) {
	fmtID := func(v *int64) string {
		if v == nil {
			return ""
		}
		return fmt.Sprintf("%d", *v)
	}

	switch entity {
	case "customers":
		customers, err := db.ListCustomers()
		if err != nil {
			return nil, nil, err
		}
		header := []string{"customer_id", "customer_name", "email", "phone", "city"}
		rows := make([][]string, 0, len(customers))
		for _, c := range customers {
			rows = append(rows, []string{
				fmt.Sprintf("%d", c.CustomerID), c.Name, c.Email, c.Phone, c.City,
			})
		}
		return header, rows, nil
	case "products":
		products, err := db.ListProducts()
		if err != nil {
			return nil, nil, err
		}
		header := []string{"product_id", "product_name", "category", "price", "stock", "supplier_id"}
		rows := make([][]string, 0, len(products))
		for _, p := range products {
			rows = append(rows, []string{
				fmt.Sprintf("%d", p.ProductID), p.Name, p.Category,
				fmt.Sprintf("%.2f", p.Price), fmt.Sprintf("%d", p.Stock), fmtID(p.SupplierID),
			})
		}
		return header, rows, nil
	case "employees":
		employees, err := db.ListEmployees()
		if err != nil {
			return nil, nil, err
		}
		header := []string{"employee_id", "emp_name", "role", "store_id", "salary", "manager_id"}
		rows := make([][]string, 0, len(employees))
		for _, e := range employees {
			rows = append(rows, []string{
				fmt.Sprintf("%d", e.EmployeeID), e.Name, e.Role,
				fmtID(e.StoreID), fmt.Sprintf("%.2f", e.Salary), fmtID(e.ManagerID),
			})
		}
		return header, rows, nil
	case "stores":
		stores, err := db.ListStores()
		if err != nil {
			return nil, nil, err
		}
		header := []string{"store_id", "store_name", "location", "manager_id"}
		rows := make([][]string, 0, len(stores))
		for _, st := range stores {
			rows = append(rows, []string{
				fmt.Sprintf("%d", st.StoreID), st.Name, st.Location, fmtID(st.ManagerID),
			})
		}
		return header, rows, nil
	default:
		return nil, nil, fmt.Errorf("unknown export entity %q (want customers, products, employees, or stores)", entity)
	}
}
