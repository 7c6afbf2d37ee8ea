package domain

import (
	"sort"

	"github.com/shopspring/decimal"
)

// StatementRow is one line of an account statement: the entry, the
// amount split into its display column, and the balance immediately
// after the entry was applied.
type StatementRow struct {
	Entry          *Entry
	Debit          decimal.Decimal
	Credit         decimal.Decimal
	RunningBalance decimal.Decimal
}

// StatementTotals summarizes a statement. Balance always equals the
// last row's running balance; because opening balances override rather
// than accumulate, Debits minus Credits does not in general equal
// Balance.
type StatementTotals struct {
	Debits  decimal.Decimal
	Credits decimal.Decimal
	Balance decimal.Decimal
}

// Statement is the reconciled, display-ready view of a customer's
// entries in date order.
type Statement struct {
	Rows   []StatementRow
	Totals StatementTotals
}

// Balance returns the final running balance.
func (s *Statement) Balance() decimal.Decimal {
	return s.Totals.Balance
}

// IsDebtor reports whether the customer owes money.
func (s *Statement) IsDebtor() bool {
	return s.Totals.Balance.IsPositive()
}

// SortEntries returns a copy of entries ordered by entry date
// ascending, with ties broken by creation time and then ID. The key is
// fully deterministic so the fold result does not depend on the order
// entries arrive from storage.
func SortEntries(entries []*Entry) []*Entry {
	sorted := make([]*Entry, len(entries))
	copy(sorted, entries)

	sort.SliceStable(sorted, func(i, j int) bool {
		a, b := sorted[i], sorted[j]
		if !a.EntryDate.Equal(b.EntryDate) {
			return a.EntryDate.Before(b.EntryDate)
		}
		if !a.CreatedAt.Equal(b.CreatedAt) {
			return a.CreatedAt.Before(b.CreatedAt)
		}
		return a.ID < b.ID
	})

	return sorted
}

// ComputeStatement sorts entries and folds them into a statement in a
// single pass, capturing the running balance at every position. The
// fold is total: any sequence of valid entries, including the empty
// one, produces a statement (empty input yields a zero balance).
func ComputeStatement(entries []*Entry) *Statement {
	sorted := SortEntries(entries)

	statement := &Statement{
		Rows: make([]StatementRow, 0, len(sorted)),
		Totals: StatementTotals{
			Debits:  decimal.Zero,
			Credits: decimal.Zero,
			Balance: decimal.Zero,
		},
	}

	balance := decimal.Zero

	for _, entry := range sorted {
		balance = entry.Apply(balance)

		row := StatementRow{
			Entry:          entry,
			Debit:          decimal.Zero,
			Credit:         decimal.Zero,
			RunningBalance: balance,
		}

		if entry.DebitColumn() {
			row.Debit = entry.Amount.Abs()
			statement.Totals.Debits = statement.Totals.Debits.Add(row.Debit)
		} else {
			row.Credit = entry.Amount.Abs()
			statement.Totals.Credits = statement.Totals.Credits.Add(row.Credit)
		}

		statement.Rows = append(statement.Rows, row)
	}

	statement.Totals.Balance = balance

	return statement
}

// ComputeBalance folds entries to the final balance without building
// rows. Used where only the scalar is needed, e.g. per-customer balance
// listings.
func ComputeBalance(entries []*Entry) decimal.Decimal {
	balance := decimal.Zero
	for _, entry := range SortEntries(entries) {
		balance = entry.Apply(balance)
	}

	return balance
}
