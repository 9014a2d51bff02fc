// Customer operations: add, update, delete, list orders.
package main

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/vinayagam-m-certainti/retailops/pkg/types"
)

var customerCmd = &cobra.Command{
	Use:   "customer",
	Short: "Customer operations",
}

var (
	custName  string
	custEmail string
	custPhone string
	custCity  string
)

func init() {
	customerCmd.AddCommand(customerAddCmd)
	customerCmd.AddCommand(customerUpdateCmd)
	customerCmd.AddCommand(customerDeleteCmd)
	customerCmd.AddCommand(customerOrdersCmd)

	customerAddCmd.Flags().StringVar(&custName, "name", "", "customer name (required)")
	customerAddCmd.Flags().StringVar(&custEmail, "email", "", "unique email (required)")
	customerAddCmd.Flags().StringVar(&custPhone, "phone", "", "unique phone (required)")
	customerAddCmd.Flags().StringVar(&custCity, "city", "", "city")

	customerUpdateCmd.Flags().StringVar(&custName, "name", "", "new name")
	customerUpdateCmd.Flags().StringVar(&custEmail, "email", "", "new email")
	customerUpdateCmd.Flags().StringVar(&custPhone, "phone", "", "new phone")
	customerUpdateCmd.Flags().StringVar(&custCity, "city", "", "new city")
}

// parseID parses a positional numeric identifier.
func parseID(arg, what string) (int64, error) {
	id, err := strconv.ParseInt(arg, 10, 64)
	if err != nil || id <= 0 {
		return 0, fmt.Errorf("invalid %s ID %q", what, arg)
	}
	return id, nil
}

var customerAddCmd = &cobra.Command{
	Use:   "add",
	Short: "Add a customer",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runOp("add customer", func() error {
			id, err := db.AddCustomer(custName, custEmail, custPhone, custCity)
			if err != nil {
				return err
			}
			fmt.Printf("customer %d added\n", id)
			return nil
		})
	},
}

var customerUpdateCmd = &cobra.Command{
	Use:   "update <id>",
	Short: "Update a customer's fields",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := parseID(args[0], "customer")
		if err != nil {
			return err
		}

		var upd types.CustomerUpdate
		if cmd.Flags().Changed("name") {
			upd.Name = &custName
		}
		if cmd.Flags().Changed("email") {
			upd.Email = &custEmail
		}
		if cmd.Flags().Changed("phone") {
			upd.Phone = &custPhone
		}
		if cmd.Flags().Changed("city") {
			upd.City = &custCity
		}

		return runOp("update customer", func() error {
			if err := db.UpdateCustomer(id, upd); err != nil {
				return err
			}
			fmt.Printf("customer %d updated\n", id)
			return nil
		})
	},
}

var customerDeleteCmd = &cobra.Command{
	Use:   "delete <id>",
	Short: "Delete a customer (blocked while active orders exist)",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := parseID(args[0], "customer")
		if err != nil {
			return err
		}
		return runOp("delete customer", func() error {
			if err := db.DeleteCustomer(id); err != nil {
				return err
			}
			fmt.Printf("customer %d deleted\n", id)
			return nil
		})
	},
}

var customerOrdersCmd = &cobra.Command{
	Use:   "orders <id>",
	Short: "List a customer's orders by date",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := parseID(args[0], "customer")
		if err != nil {
			return err
		}
		return runOp("customer orders", func() error {
			orders, err := db.GetCustomerOrders(id)
			if err != nil {
				return err
			}
			if len(orders) == 0 {
				fmt.Printf("customer %d has no orders\n", id)
				return nil
			}
			for _, o := range orders {
				fmt.Printf("order %d\t%s\t%.2f\t%s\n",
					o.OrderID, o.OrderDate.Format("2006-01-02"), o.TotalAmount, o.Status)
			}
			return nil
		})
	},
}
