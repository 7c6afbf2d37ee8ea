package domain

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
)

func date(s string) time.Time {
	t, err := time.Parse("2006-01-02", s)
	if err != nil {
		panic(err)
	}
	return t
}

func TestNewEntry_Validation(t *testing.T) {
	tests := []struct {
		name       string
		customerID string
		entryType  EntryType
		amount     decimal.Decimal
		wantErr    error
	}{
		{
			name:       "valid debit",
			customerID: "cust-1",
			entryType:  EntryTypeDebit,
			amount:     decimal.NewFromInt(100),
		},
		{
			name:       "valid zero amount",
			customerID: "cust-1",
			entryType:  EntryTypeCredit,
			amount:     decimal.Zero,
		},
		{
			name:       "unknown type rejected",
			customerID: "cust-1",
			entryType:  EntryType("refund"),
			amount:     decimal.NewFromInt(10),
			wantErr:    ErrInvalidEntryType,
		},
		{
			name:       "negative debit rejected",
			customerID: "cust-1",
			entryType:  EntryTypeDebit,
			amount:     decimal.NewFromInt(-10),
			wantErr:    ErrNegativeAmount,
		},
		{
			name:       "negative payment rejected",
			customerID: "cust-1",
			entryType:  EntryTypePayment,
			amount:     decimal.NewFromInt(-10),
			wantErr:    ErrNegativeAmount,
		},
		{
			name:       "negative adjustment allowed",
			customerID: "cust-1",
			entryType:  EntryTypeAdjustment,
			amount:     decimal.NewFromInt(-10),
		},
		{
			name:       "negative opening balance allowed",
			customerID: "cust-1",
			entryType:  EntryTypeOpeningBalance,
			amount:     decimal.NewFromInt(-250),
		},
		{
			name:      "missing customer rejected",
			entryType: EntryTypeDebit,
			amount:    decimal.NewFromInt(10),
			wantErr:   ErrMissingCustomerID,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewEntry("e1", tt.customerID, date("2024-01-01"), "test", tt.entryType, tt.amount, "", time.Now())

			if tt.wantErr == nil && err != nil {
				t.Errorf("unexpected error: %v", err)
			}

			if tt.wantErr != nil && err != tt.wantErr {
				t.Errorf("expected %v, got %v", tt.wantErr, err)
			}
		})
	}
}

func TestNewEntry_MissingDate(t *testing.T) {
	_, err := NewEntry("e1", "cust-1", time.Time{}, "test", EntryTypeDebit, decimal.NewFromInt(10), "", time.Now())
	if err != ErrMissingEntryDate {
		t.Errorf("expected ErrMissingEntryDate, got %v", err)
	}
}

func TestEntry_Apply(t *testing.T) {
	tests := []struct {
		name      string
		entryType EntryType
		amount    int64
		before    int64
		want      int64
	}{
		{"debit adds", EntryTypeDebit, 100, 50, 150},
		{"order adds", EntryTypeOrder, 100, 50, 150},
		{"credit subtracts", EntryTypeCredit, 100, 50, -50},
		{"payment subtracts", EntryTypePayment, 100, 50, -50},
		{"adjustment adds", EntryTypeAdjustment, 25, 50, 75},
		{"negative adjustment subtracts", EntryTypeAdjustment, -25, 50, 25},
		{"opening balance overrides", EntryTypeOpeningBalance, 200, 50, 200},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			entry := &Entry{Type: tt.entryType, Amount: decimal.NewFromInt(tt.amount)}

			got := entry.Apply(decimal.NewFromInt(tt.before))

			if !got.Equal(decimal.NewFromInt(tt.want)) {
				t.Errorf("expected %d, got %s", tt.want, got)
			}
		})
	}
}

func TestEntry_DebitColumn(t *testing.T) {
	tests := []struct {
		entryType EntryType
		amount    int64
		want      bool
	}{
		{EntryTypeDebit, 100, true},
		{EntryTypeOrder, 100, true},
		{EntryTypeCredit, 100, false},
		{EntryTypePayment, 100, false},
		{EntryTypeAdjustment, 100, true},
		{EntryTypeAdjustment, -100, false},
		{EntryTypeOpeningBalance, 100, true},
		{EntryTypeOpeningBalance, -100, false},
	}

	for _, tt := range tests {
		entry := &Entry{Type: tt.entryType, Amount: decimal.NewFromInt(tt.amount)}
		if got := entry.DebitColumn(); got != tt.want {
			t.Errorf("%s amount=%d: expected DebitColumn=%v, got %v", tt.entryType, tt.amount, tt.want, got)
		}
	}
}
