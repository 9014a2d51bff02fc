package types

// Customer is a buyer. Email and Phone are unique across customers.
type Customer struct {
	CustomerID int64
	Name       string
	Email      string
	Phone      string
	City       string
}

// Validate checks the required customer fields. Uniqueness of email and
// phone is enforced by the store, not here.
func (c Customer) Validate() error {
	if c.Name == "" || c.Email == "" || c.Phone == "" {
		return ErrValidation
	}
	return nil
}

// CustomerUpdate names the mutable customer fields for a partial update.
// Nil fields are left unchanged.
type CustomerUpdate struct {
	Name  *string
	Email *string
	Phone *string
	City  *string
}

// Empty reports whether the update would change nothing.
func (u CustomerUpdate) Empty() bool {
	return u.Name == nil && u.Email == nil && u.Phone == nil && u.City == nil
}
