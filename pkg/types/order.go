package types

import "time"

// Order statuses. An order starts pending and ends in a terminal status.
const (
	OrderStatusPending   = "pending"
	OrderStatusCompleted = "completed"
	OrderStatusCancelled = "cancelled"
)

// TerminalOrderStatus reports whether the status blocks nothing: customers
// with only terminal orders may be deleted.
func TerminalOrderStatus(status string) bool {
	return status == OrderStatusCompleted || status == OrderStatusCancelled
}

// Order is a customer purchase at a store. StoreID is nil when the store
// was deleted after the order was placed.
type Order struct {
	OrderID     int64
	CustomerID  int64
	StoreID     *int64
	OrderDate   time.Time
	TotalAmount float64
	Status      string
}

// OrderItem is one product line of an order. Creation passes through the
// stock enforcer: it commits together with the matching stock decrement or
// not at all.
type OrderItem struct {
	OrderItemID int64
	OrderID     int64
	ProductID   int64
	Quantity    int64
	UnitPrice   float64
}

// Validate checks the writable fields of an order item.
func (i OrderItem) Validate() error {
	if i.Quantity <= 0 {
		return ErrValidation
	}
	if i.UnitPrice < 0 {
		return ErrValidation
	}
	return nil
}

// Payment records money received against an order.
type Payment struct {
	PaymentID int64
	OrderID   int64
	Amount    float64
	Method    string
	PaidAt    time.Time
}

// Validate checks the writable fields of a payment.
func (p Payment) Validate() error {
	if p.Amount < 0 || p.Method == "" {
		return ErrValidation
	}
	return nil
}
