package domain

import "time"

// Customer represents a customer account that entries are recorded
// against.
type Customer struct {
	ID        string
	Name      string
	Phone     string
	Email     string
	Address   string
	GSTIN     string
	CreatedAt time.Time
	UpdatedAt time.Time
}
