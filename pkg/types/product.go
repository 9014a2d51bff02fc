package types

// Supplier provides products. Deleting a supplier cascades to its products.
type Supplier struct {
	SupplierID int64
	Name       string
	Contact    string
	Phone      string
	City       string
}

// Validate checks the required supplier fields.
func (s Supplier) Validate() error {
	if s.Name == "" {
		return ErrValidation
	}
	return nil
}

// Product is a sellable item. Stock is mutated only by the stock enforcer
// (order-item creation) and by shipment-keyed replenishment; it never goes
// negative.
type Product struct {
	ProductID  int64
	Name       string
	Category   string
	Price      float64
	Stock      int64
	SupplierID *int64
}

// Validate checks the writable fields of a product.
func (p Product) Validate() error {
	if p.Name == "" {
		return ErrValidation
	}
	if p.Price < 0 || p.Stock < 0 {
		return ErrValidation
	}
	return nil
}
