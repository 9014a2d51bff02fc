// Order lifecycle and payment commands.
package main

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/vinayagam-m-certainti/retailops/internal/store"
)

var orderCmd = &cobra.Command{
	Use:   "order",
	Short: "Order operations",
}

var (
	orderStoreID int64
	orderDate    string
	itemQty      int64
	itemPrice    float64
	payAmount    float64
	payMethod    string
)

func init() {
	orderCmd.AddCommand(orderCreateCmd)
	orderCmd.AddCommand(orderItemCmd)
	orderCmd.AddCommand(orderCompleteCmd)
	orderCmd.AddCommand(orderCancelCmd)
	orderCmd.AddCommand(orderDeleteCmd)

	orderCreateCmd.Flags().Int64Var(&orderStoreID, "store", 0, "store ID (0 for none)")
	orderCreateCmd.Flags().StringVar(&orderDate, "date", "", "order date YYYY-MM-DD (default: today)")

	orderItemCmd.Flags().Int64Var(&itemQty, "qty", 1, "quantity")
	orderItemCmd.Flags().Float64Var(&itemPrice, "price", -1, "unit price (default: product price)")

	payCmd.Flags().Float64Var(&payAmount, "amount", 0, "payment amount")
	payCmd.Flags().StringVar(&payMethod, "method", "cash", "payment method")
}

var orderCreateCmd = &cobra.Command{
	Use:   "create <customer-id>",
	Short: "Open a pending order",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		customerID, err := parseID(args[0], "customer")
		if err != nil {
			return err
		}

		date := time.Now().UTC()
		if orderDate != "" {
			date, err = time.Parse("2006-01-02", orderDate)
			if err != nil {
				return fmt.Errorf("invalid date %q (want YYYY-MM-DD)", orderDate)
			}
		}
		var storeID *int64
		if orderStoreID > 0 {
			storeID = &orderStoreID
		}

		return runOp("create order", func() error {
			id, err := db.CreateOrder(customerID, storeID, date)
			if err != nil {
				return err
			}
			fmt.Printf("order %d created\n", id)
			return nil
		})
	},
}

var orderItemCmd = &cobra.Command{
	Use:   "item <order-id> <product-id>",
	Short: "Add a product line (stock-checked)",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		orderID, err := parseID(args[0], "order")
		if err != nil {
			return err
		}
		productID, err := parseID(args[1], "product")
		if err != nil {
			return err
		}

		return runOp("add order item", func() error {
			price := itemPrice
			if price < 0 {
				p, err := db.GetProduct(productID)
				if err != nil {
					return err
				}
				price = p.Price
			}
			id, err := db.AddOrderItem(orderID, productID, itemQty, price)
			if err != nil {
				return err
			}
			fmt.Printf("item %d added to order %d\n", id, orderID)
			return nil
		})
	},
}

func orderStatusCommand(use, short, opName string, apply func(*store.Store, int64) error) *cobra.Command {
	return &cobra.Command{
		Use:   use,
		Short: short,
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0], "order")
			if err != nil {
				return err
			}
			return runOp(opName, func() error {
				if err := apply(db, id); err != nil {
					return err
				}
				fmt.Printf("order %d: %s done\n", id, opName)
				return nil
			})
		},
	}
}

var orderCompleteCmd = orderStatusCommand("complete <order-id>", "Mark an order completed",
	"complete order", (*store.Store).CompleteOrder)

var orderCancelCmd = orderStatusCommand("cancel <order-id>", "Mark an order cancelled",
	"cancel order", (*store.Store).CancelOrder)

var orderDeleteCmd = orderStatusCommand("delete <order-id>", "Delete an order (items and payments cascade)",
	"delete order", (*store.Store).DeleteOrder)

var payCmd = &cobra.Command{
	Use:   "pay <order-id>",
	Short: "Record a payment against an order",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		orderID, err := parseID(args[0], "order")
		if err != nil {
			return err
		}
		return runOp("pay order", func() error {
			id, err := db.AddPayment(orderID, payAmount, payMethod)
			if err != nil {
				return err
			}
			fmt.Printf("payment %d recorded for order %d\n", id, orderID)
			return nil
		})
	},
}
