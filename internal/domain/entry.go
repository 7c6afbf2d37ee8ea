package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// EntryType classifies a ledger entry. The set is closed; the statement
// fold switches over every value and unknown types are rejected at
// construction time.
type EntryType string

const (
	// EntryTypeDebit increases the amount the customer owes.
	EntryTypeDebit EntryType = "debit"

	// EntryTypeCredit reduces the amount the customer owes.
	EntryTypeCredit EntryType = "credit"

	// EntryTypeOrder is a debit recorded when an order is placed.
	EntryTypeOrder EntryType = "order"

	// EntryTypePayment is a credit recorded when a collection is made.
	EntryTypePayment EntryType = "payment"

	// EntryTypeAdjustment is a signed correction applied to the balance.
	EntryTypeAdjustment EntryType = "adjustment"

	// EntryTypeOpeningBalance resets the running balance instead of
	// accumulating onto it.
	EntryTypeOpeningBalance EntryType = "opening_balance"
)

var validEntryTypes = map[EntryType]bool{
	EntryTypeDebit:          true,
	EntryTypeCredit:         true,
	EntryTypeOrder:          true,
	EntryTypePayment:        true,
	EntryTypeAdjustment:     true,
	EntryTypeOpeningBalance: true,
}

// IsValid checks if the entry type is one of the closed set.
func (t EntryType) IsValid() bool {
	return validEntryTypes[t]
}

// AllowsSignedAmount reports whether entries of this type may carry a
// negative amount. Only adjustments and opening balances are signed;
// every other type gets its sign from the type itself.
func (t EntryType) AllowsSignedAmount() bool {
	return t == EntryTypeAdjustment || t == EntryTypeOpeningBalance
}

// Entry represents a single immutable financial event against a
// customer's account.
type Entry struct {
	ID          string
	CustomerID  string
	EntryDate   time.Time
	Description string
	Type        EntryType
	Amount      decimal.Decimal
	Reference   string
	CreatedAt   time.Time
}

// NewEntry constructs a validated entry. The amount sign rules and the
// type set are enforced here so the statement fold never sees a
// malformed entry.
func NewEntry(id, customerID string, entryDate time.Time, description string, entryType EntryType, amount decimal.Decimal, reference string, createdAt time.Time) (*Entry, error) {
	entry := &Entry{
		ID:          id,
		CustomerID:  customerID,
		EntryDate:   entryDate.UTC().Truncate(24 * time.Hour),
		Description: description,
		Type:        entryType,
		Amount:      amount,
		Reference:   reference,
		CreatedAt:   createdAt,
	}

	if err := entry.Validate(); err != nil {
		return nil, err
	}

	return entry, nil
}

// Validate checks the entry invariants.
func (e *Entry) Validate() error {
	if e.CustomerID == "" {
		return ErrMissingCustomerID
	}

	if !e.Type.IsValid() {
		return ErrInvalidEntryType
	}

	if e.Amount.IsNegative() && !e.Type.AllowsSignedAmount() {
		return ErrNegativeAmount
	}

	if e.EntryDate.IsZero() {
		return ErrMissingEntryDate
	}

	return nil
}

// Apply returns the running balance after this entry, given the balance
// before it. Debits and orders increase what the customer owes, credits
// and payments reduce it, adjustments add their signed amount, and an
// opening balance discards the prior accumulation.
func (e *Entry) Apply(balance decimal.Decimal) decimal.Decimal {
	switch e.Type {
	case EntryTypeDebit, EntryTypeOrder:
		return balance.Add(e.Amount)
	case EntryTypeCredit, EntryTypePayment:
		return balance.Sub(e.Amount)
	case EntryTypeAdjustment:
		return balance.Add(e.Amount)
	case EntryTypeOpeningBalance:
		return e.Amount
	default:
		// Unreachable for validated entries.
		return balance
	}
}

// DebitColumn reports whether the entry's amount belongs in the debit
// display column of a statement. Negative adjustments and negative
// opening balances display as credits.
func (e *Entry) DebitColumn() bool {
	switch e.Type {
	case EntryTypeDebit, EntryTypeOrder:
		return true
	case EntryTypeAdjustment, EntryTypeOpeningBalance:
		return !e.Amount.IsNegative()
	default:
		return false
	}
}
