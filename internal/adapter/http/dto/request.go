package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/iho/bizledger/internal/domain"
	"github.com/iho/bizledger/internal/usecase"
)

// entryDateLayout is the wire format for ledger entry dates.
const entryDateLayout = "2006-01-02"

// CreateCustomerRequest represents a request to create a customer.
type CreateCustomerRequest struct {
	Name    string `json:"name"`
	Phone   string `json:"phone,omitempty"`
	Email   string `json:"email,omitempty"`
	Address string `json:"address,omitempty"`
	GSTIN   string `json:"gstin,omitempty"`
}

// ToUseCaseInput converts to use case input.
func (r *CreateCustomerRequest) ToUseCaseInput() usecase.CreateCustomerInput {
	return usecase.CreateCustomerInput{
		Name:    r.Name,
		Phone:   r.Phone,
		Email:   r.Email,
		Address: r.Address,
		GSTIN:   r.GSTIN,
	}
}

// CreateEntryRequest represents a request to record a ledger entry.
type CreateEntryRequest struct {
	CustomerID  string          `json:"customer_id"`
	EntryDate   string          `json:"entry_date"`
	Description string          `json:"description,omitempty"`
	Type        string          `json:"type"`
	Amount      decimal.Decimal `json:"amount"`
	Reference   string          `json:"reference,omitempty"`
}

// ToUseCaseInput converts to use case input. The entry date must use
// the YYYY-MM-DD format.
func (r *CreateEntryRequest) ToUseCaseInput() (usecase.CreateEntryInput, error) {
	entryDate, err := time.Parse(entryDateLayout, r.EntryDate)
	if err != nil {
		return usecase.CreateEntryInput{}, err
	}

	return usecase.CreateEntryInput{
		CustomerID:  r.CustomerID,
		EntryDate:   entryDate,
		Description: r.Description,
		Type:        domain.EntryType(r.Type),
		Amount:      r.Amount,
		Reference:   r.Reference,
	}, nil
}

// CreateEntriesRequest represents a request to record multiple entries
// atomically.
type CreateEntriesRequest struct {
	Entries []CreateEntryRequest `json:"entries"`
}

// ToUseCaseInput converts to use case inputs.
func (r *CreateEntriesRequest) ToUseCaseInput() ([]usecase.CreateEntryInput, error) {
	inputs := make([]usecase.CreateEntryInput, len(r.Entries))
	for i, e := range r.Entries {
		input, err := e.ToUseCaseInput()
		if err != nil {
			return nil, err
		}
		inputs[i] = input
	}
	return inputs, nil
}
