// Reporting commands: monthly sales, pivot, hierarchy, audit trail.
package main

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/vinayagam-m-certainti/retailops/internal/store"
)

var reportCmd = &cobra.Command{
	Use:   "report",
	Short: "Reports over the transactional data",
}

var (
	reportYear  int
	reportMonth int
)

func init() {
	reportCmd.AddCommand(reportSalesCmd)
	reportCmd.AddCommand(reportPivotCmd)
	reportCmd.AddCommand(reportHierarchyCmd)

	reportSalesCmd.Flags().IntVar(&reportYear, "year", time.Now().Year(), "report year")
	reportSalesCmd.Flags().IntVar(&reportMonth, "month", int(time.Now().Month()), "report month (1-12)")

	auditCmd.AddCommand(auditListCmd)
	auditCmd.AddCommand(auditResetCmd)
}

var reportSalesCmd = &cobra.Command{
	Use:   "sales",
	Short: "Per-store revenue for a month, descending",
	Long: `Aggregate order-item revenue per store for one calendar month, ordered by
revenue descending. Stores without revenue in the month are omitted. The
aggregates are also written into the monthly_sales fact table consumed by
the pivot report.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		if reportMonth < 1 || reportMonth > 12 {
			return fmt.Errorf("invalid month %d", reportMonth)
		}
		month := time.Month(reportMonth)
		return runOp("sales report", func() error {
			report, err := db.GenerateSalesReport(reportYear, month)
			if err != nil {
				return err
			}
			if err := db.RefreshMonthlySales(reportYear, month); err != nil {
				return err
			}
			if len(report) == 0 {
				fmt.Printf("no sales in %d-%02d\n", reportYear, reportMonth)
				return nil
			}
			for _, r := range report {
				fmt.Printf("%d\t%s\t%.2f\n", r.StoreID, r.StoreName, r.Revenue)
			}
			return nil
		})
	},
}

var reportPivotCmd = &cobra.Command{
	Use:   "pivot",
	Short: "Cross-tab of monthly sales: stores × months",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runOp("pivot report", func() error {
			table, err := db.PivotMonthlySales()
			if err != nil {
				return err
			}
			fmt.Print(store.RenderPivot(table))
			return nil
		})
	},
}

var reportHierarchyCmd = &cobra.Command{
	Use:   "hierarchy",
	Short: "Reporting tree of all employees, level by level",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runOp("hierarchy report", func() error {
			levels, err := db.Hierarchy()
			if err != nil {
				return err
			}
			for _, l := range levels {
				fmt.Printf("%s%d\t%s\t%s\n", strings.Repeat("  ", l.Level), l.EmployeeID, l.Name, l.Role)
			}
			return nil
		})
	},
}

var auditCmd = &cobra.Command{
	Use:   "audit",
	Short: "Employee-deletion audit trail",
}

var auditListCmd = &cobra.Command{
	Use:   "list",
	Short: "Show the audit trail, oldest first",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runOp("list audit", func() error {
			records, err := db.ListEmployeeAudit()
			if err != nil {
				return err
			}
			if len(records) == 0 {
				fmt.Println("audit trail is empty")
				return nil
			}
			for _, a := range records {
				fmt.Printf("%d\t%s\t%s\t%.2f\tdeleted %s\n",
					a.EmployeeID, a.Name, a.Role, a.Salary, a.DeletedAt.Format(time.RFC3339))
			}
			return nil
		})
	},
}

var auditResetCmd = &cobra.Command{
	Use:   "reset",
	Short: "Clear the audit trail (administrative)",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runOp("reset audit", func() error {
			n, err := db.ResetEmployeeAudit()
			if err != nil {
				return err
			}
			fmt.Printf("audit trail cleared (%d records)\n", n)
			return nil
		})
	},
}
