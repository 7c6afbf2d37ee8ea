package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/iho/bizledger/internal/domain"
	"github.com/iho/bizledger/internal/usecase"
)

// CustomerResponse represents a customer in API responses.
type CustomerResponse struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Phone     string    `json:"phone,omitempty"`
	Email     string    `json:"email,omitempty"`
	Address   string    `json:"address,omitempty"`
	GSTIN     string    `json:"gstin,omitempty"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// CustomerFromDomain converts a domain customer to a response.
func CustomerFromDomain(c *domain.Customer) *CustomerResponse {
	return &CustomerResponse{
		ID:        c.ID,
		Name:      c.Name,
		Phone:     c.Phone,
		Email:     c.Email,
		Address:   c.Address,
		GSTIN:     c.GSTIN,
		CreatedAt: c.CreatedAt,
		UpdatedAt: c.UpdatedAt,
	}
}

// CustomersFromDomain converts domain customers to responses.
func CustomersFromDomain(customers []*domain.Customer) []*CustomerResponse {
	result := make([]*CustomerResponse, len(customers))
	for i, c := range customers {
		result[i] = CustomerFromDomain(c)
	}
	return result
}

// ListCustomersResponse represents a page of customers.
type ListCustomersResponse struct {
	Customers []*CustomerResponse `json:"customers"`
	Total     int64               `json:"total"`
}

// EntryResponse represents a ledger entry in API responses.
type EntryResponse struct {
	ID          string          `json:"id"`
	CustomerID  string          `json:"customer_id"`
	EntryDate   string          `json:"entry_date"`
	Description string          `json:"description,omitempty"`
	Type        string          `json:"type"`
	Amount      decimal.Decimal `json:"amount"`
	Reference   string          `json:"reference,omitempty"`
	CreatedAt   time.Time       `json:"created_at"`
}

// EntryFromDomain converts a domain entry to a response.
func EntryFromDomain(e *domain.Entry) *EntryResponse {
	return &EntryResponse{
		ID:          e.ID,
		CustomerID:  e.CustomerID,
		EntryDate:   e.EntryDate.Format(entryDateLayout),
		Description: e.Description,
		Type:        string(e.Type),
		Amount:      e.Amount,
		Reference:   e.Reference,
		CreatedAt:   e.CreatedAt,
	}
}

// EntriesFromDomain converts domain entries to responses.
func EntriesFromDomain(entries []*domain.Entry) []*EntryResponse {
	result := make([]*EntryResponse, len(entries))
	for i, e := range entries {
		result[i] = EntryFromDomain(e)
	}
	return result
}

// ListEntriesResponse represents a page of entries.
type ListEntriesResponse struct {
	Entries []*EntryResponse `json:"entries"`
	Total   int64            `json:"total"`
}

// StatementRowResponse represents a single statement line. Every entry
// shows in exactly one of the debit and credit columns.
type StatementRowResponse struct {
	Entry          *EntryResponse  `json:"entry"`
	Debit          decimal.Decimal `json:"debit"`
	Credit         decimal.Decimal `json:"credit"`
	RunningBalance decimal.Decimal `json:"running_balance"`
}

// StatementTotalsResponse represents statement totals.
type StatementTotalsResponse struct {
	Debits  decimal.Decimal `json:"debits"`
	Credits decimal.Decimal `json:"credits"`
	Balance decimal.Decimal `json:"balance"`
}

// StatementResponse represents a customer statement.
type StatementResponse struct {
	Customer *CustomerResponse       `json:"customer"`
	Rows     []*StatementRowResponse `json:"rows"`
	Totals   StatementTotalsResponse `json:"totals"`
	IsDebtor bool                    `json:"is_debtor"`
}

// StatementFromOutput converts a statement use case output to a response.
func StatementFromOutput(output *usecase.StatementOutput) *StatementResponse {
	rows := make([]*StatementRowResponse, len(output.Statement.Rows))
	for i, row := range output.Statement.Rows {
		rows[i] = &StatementRowResponse{
			Entry:          EntryFromDomain(row.Entry),
			Debit:          row.Debit,
			Credit:         row.Credit,
			RunningBalance: row.RunningBalance,
		}
	}

	return &StatementResponse{
		Customer: CustomerFromDomain(output.Customer),
		Rows:     rows,
		Totals: StatementTotalsResponse{
			Debits:  output.Statement.Totals.Debits,
			Credits: output.Statement.Totals.Credits,
			Balance: output.Statement.Totals.Balance,
		},
		IsDebtor: output.Statement.IsDebtor(),
	}
}

// BalanceResponse represents a single customer balance.
type BalanceResponse struct {
	CustomerID string          `json:"customer_id"`
	Name       string          `json:"name,omitempty"`
	Balance    decimal.Decimal `json:"balance"`
	IsDebtor   bool            `json:"is_debtor"`
}

// BalancesFromOutput converts use case balances to responses.
func BalancesFromOutput(balances []*usecase.CustomerBalance) []*BalanceResponse {
	result := make([]*BalanceResponse, len(balances))
	for i, b := range balances {
		result[i] = &BalanceResponse{
			CustomerID: b.CustomerID,
			Name:       b.Name,
			Balance:    b.Balance,
			IsDebtor:   b.Balance.IsPositive(),
		}
	}
	return result
}

// ListBalancesResponse represents all customer balances.
type ListBalancesResponse struct {
	Balances []*BalanceResponse `json:"balances"`
}

// ErrorResponse represents an error in API responses.
type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message,omitempty"`
}
