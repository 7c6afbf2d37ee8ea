package domain

import (
	"strings"
	"time"
)

// EntryFilter selects entries for the query layer. Fields combine with
// logical AND; zero values mean "no constraint". CustomerID of ""
// scopes the query to all customers.
type EntryFilter struct {
	CustomerID string
	Text       string
	Date       *time.Time
	Type       EntryType
	Limit      int
	Offset     int
}

// Matches reports whether an entry (with its owning customer's name)
// satisfies the filter. Text is a case-insensitive substring match over
// description, reference and customer name; date and type are exact.
func (f EntryFilter) Matches(entry *Entry, customerName string) bool {
	if f.CustomerID != "" && entry.CustomerID != f.CustomerID {
		return false
	}

	if f.Type != "" && entry.Type != f.Type {
		return false
	}

	if f.Date != nil && !entry.EntryDate.Equal(f.Date.UTC().Truncate(24*time.Hour)) {
		return false
	}

	if f.Text != "" {
		needle := strings.ToLower(f.Text)
		if !strings.Contains(strings.ToLower(entry.Description), needle) &&
			!strings.Contains(strings.ToLower(entry.Reference), needle) &&
			!strings.Contains(strings.ToLower(customerName), needle) {
			return false
		}
	}

	return true
}
