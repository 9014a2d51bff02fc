package types

import "errors"

// Error taxonomy. Store operations wrap these sentinels with context
// (operation, offending identifiers) via fmt.Errorf and %w, so callers
// classify with errors.Is.
var (
	// ErrValidation reports a constraint or format violation on write:
	// duplicate unique value, missing required field, negative amount.
	ErrValidation = errors.New("validation failed")

	// ErrNotFound reports that a referenced entity does not exist.
	ErrNotFound = errors.New("entity not found")

	// ErrConflict reports a business rule blocking the operation, such as
	// deleting a customer that still has active orders.
	ErrConflict = errors.New("operation conflicts with existing state")

	// ErrInsufficientStock reports an order item rejected by the stock
	// enforcer. The wrapped message names the product, the requested
	// quantity, and the available stock.
	ErrInsufficientStock = errors.New("insufficient stock")

	// ErrTransient reports storage-layer contention (lock timeout, busy
	// database). The operation left no partial state and is safe to retry.
	ErrTransient = errors.New("transient storage failure")

	// ErrConnection reports that the storage engine cannot be reached.
	// Fatal for the whole run; never retried.
	ErrConnection = errors.New("cannot reach storage engine")
)
