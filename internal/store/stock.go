package store

import (
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/vinayagam-m-certainti/retailops/pkg/types"
)

// NewShipmentID generates an idempotency key for a stock replenishment.
func NewShipmentID() string {
	id, err := uuid.NewV7()
	if err != nil {
		return uuid.New().String()
	}
	return id.String()
}

// AddProductStock increases a product's stock by quantity, keyed by a
// shipment ID so retries are safe: replaying an already-applied shipment
// is a no-op success. The shipment-ledger insert and the stock increment
// share one transaction, so the increment is applied exactly once per
// shipment ID.
func (s *Store) AddProductStock(productID, quantity int64, shipmentID string) error {
	if quantity <= 0 {
		return fmt.Errorf("replenish product %d: quantity must be positive: %w", productID, types.ErrValidation)
	}
	if shipmentID == "" {
		return fmt.Errorf("replenish product %d: shipment ID required: %w", productID, types.ErrValidation)
	}

	err := s.withTx(func(tx *sql.Tx) error {
		// Increment before touching the ledger so an unknown product
		// surfaces as not-found rather than as the ledger's foreign-key
		// failure. The transaction is rolled back on a replay either way.
		res, err := tx.Exec("UPDATE products SET stock = stock + ? WHERE product_id = ?", quantity, productID)
		if err != nil {
			return fmt.Errorf("replenish product %d: %w", productID, classifyError(err))
		}
		affected, err := res.RowsAffected()
		if err != nil {
			return fmt.Errorf("replenish product %d: %w", productID, err)
		}
		if affected == 0 {
			return fmt.Errorf("product %d: %w", productID, types.ErrNotFound)
		}

		_, err = tx.Exec(
			"INSERT INTO shipments (shipment_id, product_id, quantity, received_at) VALUES (?, ?, ?, ?)",
			shipmentID, productID, quantity, time.Now().UTC().Format(timeFormat),
		)
		if err != nil {
			if isUniqueViolation(err) {
				return errShipmentApplied
			}
			return fmt.Errorf("record shipment %s: %w", shipmentID, classifyError(err))
		}
		return nil
	})
	if errors.Is(err, errShipmentApplied) {
		// Retry of a committed shipment; the stock already reflects it.
		return nil
	}
	return err
}

// errShipmentApplied signals inside AddProductStock that the shipment
// ledger already holds this ID.
var errShipmentApplied = errors.New("shipment already applied")
