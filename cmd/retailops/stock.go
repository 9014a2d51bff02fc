// Stock replenishment command.
package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vinayagam-m-certainti/retailops/internal/store"
)

var stockCmd = &cobra.Command{
	Use:   "stock",
	Short: "Stock operations",
}

var (
	stockQty      int64
	stockShipment string
)

func init() {
	stockCmd.AddCommand(stockAddCmd)

	stockAddCmd.Flags().Int64Var(&stockQty, "qty", 0, "quantity to add (must be positive)")
	stockAddCmd.Flags().StringVar(&stockShipment, "shipment", "", "shipment ID for safe retries (default: generated)")
}

var stockAddCmd = &cobra.Command{
	Use:   "add <product-id>",
	Short: "Increase a product's stock",
	Long: `Increase a product's stock by a shipment. Passing the same --shipment ID
twice applies the increase only once, so a failed invocation can be retried
verbatim.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		productID, err := parseID(args[0], "product")
		if err != nil {
			return err
		}
		shipmentID := stockShipment
		if shipmentID == "" {
			shipmentID = store.NewShipmentID()
		}
		return runOp("add stock", func() error {
			if err := db.AddProductStock(productID, stockQty, shipmentID); err != nil {
				return err
			}
			fmt.Printf("product %d: +%d stock (shipment %s)\n", productID, stockQty, shipmentID)
			return nil
		})
	},
}
