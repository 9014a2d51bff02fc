// Demonstration commands over the seeded dataset: joins, set
// combinations, updates, deletions, and the procedural operations.
package main

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/vinayagam-m-certainti/retailops/internal/store"
	"github.com/vinayagam-m-certainti/retailops/pkg/types"
)

var demoCmd = &cobra.Command{
	Use:   "demo",
	Short: "Demonstration queries over the sample data",
}

func init() {
	demoCmd.AddCommand(demoJoinsCmd)
	demoCmd.AddCommand(demoSetsCmd)
	demoCmd.AddCommand(demoUpdatesCmd)
	demoCmd.AddCommand(demoDeletesCmd)
	demoCmd.AddCommand(demoProcsCmd)
}

var demoJoinsCmd = &cobra.Command{
	Use:   "joins",
	Short: "Orders joined with customers/stores; employee-manager self-join",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runOp("demo joins", func() error {
			summaries, err := db.OrderSummaries()
			if err != nil {
				return err
			}
			fmt.Println("orders with customer, store and revenue:")
			for _, o := range summaries {
				storeName := o.StoreName
				if storeName == "" {
					storeName = "(no store)"
				}
				fmt.Printf("  order %d\t%s\t%s\t%s\t%.2f\n", o.OrderID, o.CustomerName, storeName, o.Status, o.Revenue)
			}

			pairs, err := db.ReportingPairs()
			if err != nil {
				return err
			}
			fmt.Println("employees with their managers:")
			for _, p := range pairs {
				mgr := p.ManagerName
				if mgr == "" {
					mgr = "(root)"
				}
				fmt.Printf("  %s -> %s\n", p.EmployeeName, mgr)
			}
			return nil
		})
	},
}

var demoSetsCmd = &cobra.Command{
	Use:   "sets",
	Short: "Union/intersect/except over customer and supplier cities",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runOp("demo sets", func() error {
			for _, op := range []string{store.CitySetUnion, store.CitySetIntersect, store.CitySetExcept} {
				cities, err := db.CombineCities(op)
				if err != nil {
					return err
				}
				fmt.Printf("%s: %v\n", op, cities)
			}
			return nil
		})
	},
}

var demoUpdatesCmd = &cobra.Command{
	Use:   "updates",
	Short: "Update a customer, a product price, and an employee salary",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runOp("demo updates", func() error {
			city := "Nashik"
			if err := db.UpdateCustomer(1, types.CustomerUpdate{City: &city}); err != nil {
				return err
			}
			fmt.Println("customer 1 moved to Nashik")

			if err := db.UpdateProductPrice(1, 13.00); err != nil {
				return err
			}
			fmt.Println("product 1 price set to 13.00")

			if err := db.UpdateEmployeeSalary(4, 33000); err != nil {
				return err
			}
			fmt.Println("employee 4 salary set to 33000")
			return nil
		})
	},
}

var demoDeletesCmd = &cobra.Command{
	Use:   "deletes",
	Short: "Delete an employee (audited) and show the cascade on orders",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runOp("demo deletes", func() error {
			// The clerk's snapshot lands in the audit trail before the row goes.
			if err := db.DeleteEmployee(7); err != nil {
				return err
			}
			records, err := db.ListEmployeeAudit()
			if err != nil {
				return err
			}
			fmt.Printf("employee 7 deleted; audit trail now holds %d records\n", len(records))

			if err := db.DeleteOrder(3); err != nil {
				return err
			}
			items, err := db.ListOrderItems(3)
			if err != nil {
				return err
			}
			fmt.Printf("order 3 deleted; %d line items remain for it\n", len(items))
			return nil
		})
	},
}

var demoProcsCmd = &cobra.Command{
	Use:   "procs",
	Short: "Walk the procedural operations end to end",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runOp("demo procs", func() error {
			id, err := db.AddCustomer("Demo Customer", "demo@example.com", "98100-99999", "Pune")
			if err != nil {
				return err
			}
			fmt.Printf("AddCustomer -> %d\n", id)

			shipment := store.NewShipmentID()
			if err := db.AddProductStock(1, 30, shipment); err != nil {
				return err
			}
			// Retried replenishment with the same shipment ID is a no-op.
			if err := db.AddProductStock(1, 30, shipment); err != nil {
				return err
			}
			p, err := db.GetProduct(1)
			if err != nil {
				return err
			}
			fmt.Printf("AddProductStock x2 (same shipment) -> product 1 stock %d\n", p.Stock)

			report, err := db.GenerateSalesReport(2025, time.June)
			if err != nil {
				return err
			}
			fmt.Printf("GenerateSalesReport(2025, June) -> %d stores\n", len(report))
			for _, r := range report {
				fmt.Printf("  %s\t%.2f\n", r.StoreName, r.Revenue)
			}
			return nil
		})
	},
}
