package domain

import "errors"

var (
	// Customer errors
	ErrCustomerNotFound    = errors.New("customer not found")
	ErrInvalidCustomerName = errors.New("invalid customer name")

	// Entry errors
	ErrEntryNotFound     = errors.New("entry not found")
	ErrInvalidEntryType  = errors.New("invalid entry type")
	ErrNegativeAmount    = errors.New("amount must not be negative for this entry type")
	ErrMissingCustomerID = errors.New("entry must belong to a customer")
	ErrMissingEntryDate  = errors.New("entry date is required")
)
