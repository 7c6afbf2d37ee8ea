package postgres

import (
	"context"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"

	"github.com/iho/bizledger/internal/domain"
	"github.com/iho/bizledger/internal/usecase"
)

// EntryRepository implements usecase.EntryRepository.
type EntryRepository struct {
	db      dbConn
	retrier *Retrier
}

// NewEntryRepository creates a new EntryRepository.
func NewEntryRepository(pool *pgxpool.Pool) *EntryRepository {
	return newEntryRepositoryWithConn(pool)
}

func newEntryRepositoryWithConn(db dbConn) *EntryRepository {
	return &EntryRepository{
		db:      db,
		retrier: NewRetrier(),
	}
}

const insertEntrySQL = `
	INSERT INTO ledger_entries (id, customer_id, entry_date, description, type, amount, reference, created_at)
	VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
`

const selectEntryColumns = `
	e.id, e.customer_id, e.entry_date, e.description, e.type, e.amount, e.reference, e.created_at
`

// Create inserts a single entry.
func (r *EntryRepository) Create(ctx context.Context, entry *domain.Entry) error {
	return r.retrier.Retry(ctx, func() error {
		_, err := r.db.Exec(ctx, insertEntrySQL,
			entry.ID,
			entry.CustomerID,
			entry.EntryDate,
			entry.Description,
			string(entry.Type),
			decimalToNumeric(entry.Amount),
			entry.Reference,
			entry.CreatedAt,
		)

		return err
	})
}

// CreateTx inserts an entry within an existing transaction.
func (r *EntryRepository) CreateTx(ctx context.Context, tx usecase.Transaction, entry *domain.Entry) error {
	pgxTx := tx.(*Tx).PgxTx()

	_, err := pgxTx.Exec(ctx, insertEntrySQL,
		entry.ID,
		entry.CustomerID,
		entry.EntryDate,
		entry.Description,
		string(entry.Type),
		decimalToNumeric(entry.Amount),
		entry.Reference,
		entry.CreatedAt,
	)

	return err
}

// ListByCustomer retrieves all entries for a customer in statement order.
func (r *EntryRepository) ListByCustomer(ctx context.Context, customerID string) ([]*domain.Entry, error) {
	query := `
		SELECT ` + selectEntryColumns + `
		FROM ledger_entries e
		WHERE e.customer_id = $1
		ORDER BY e.entry_date, e.created_at, e.id
	`

	rows, err := r.db.Query(ctx, query, customerID)
	if err != nil {
		return nil, err
	}

	return scanEntries(rows)
}

// List retrieves entries matching the filter. Text matches are
// case-insensitive substrings over the description, the reference,
// and the customer name. A non-positive limit means no limit.
func (r *EntryRepository) List(ctx context.Context, filter domain.EntryFilter) ([]*domain.Entry, error) {
	var (
		conditions []string
		args       []any
	)

	arg := func(v any) string {
		args = append(args, v)
		return fmt.Sprintf("$%d", len(args))
	}

	if filter.CustomerID != "" {
		conditions = append(conditions, "e.customer_id = "+arg(filter.CustomerID))
	}

	if filter.Text != "" {
		p := arg("%" + filter.Text + "%")
		conditions = append(conditions,
			"(e.description ILIKE "+p+" OR e.reference ILIKE "+p+" OR c.name ILIKE "+p+")")
	}

	if filter.Date != nil {
		conditions = append(conditions, "e.entry_date = "+arg(*filter.Date))
	}

	if filter.Type != "" {
		conditions = append(conditions, "e.type = "+arg(string(filter.Type)))
	}

	query := `
		SELECT ` + selectEntryColumns + `
		FROM ledger_entries e
		JOIN customers c ON c.id = e.customer_id
	`

	if len(conditions) > 0 {
		query += " WHERE " + strings.Join(conditions, " AND ")
	}

	query += " ORDER BY e.entry_date, e.created_at, e.id"

	if filter.Limit > 0 {
		query += " LIMIT " + arg(filter.Limit) + " OFFSET " + arg(filter.Offset)
	}

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}

	return scanEntries(rows)
}

func scanEntries(rows pgx.Rows) ([]*domain.Entry, error) {
	defer rows.Close()

	entries := make([]*domain.Entry, 0)
	for rows.Next() {
		var (
			entry  domain.Entry
			typ    string
			amount pgtype.Numeric
		)

		if err := rows.Scan(
			&entry.ID,
			&entry.CustomerID,
			&entry.EntryDate,
			&entry.Description,
			&typ,
			&amount,
			&entry.Reference,
			&entry.CreatedAt,
		); err != nil {
			return nil, err
		}

		entry.Type = domain.EntryType(typ)
		entry.Amount = numericToDecimal(amount)
		entries = append(entries, &entry)
	}

	return entries, rows.Err()
}

func decimalToNumeric(d decimal.Decimal) pgtype.Numeric {
	var n pgtype.Numeric
	_ = n.Scan(d.String())
	return n
}

func numericToDecimal(n pgtype.Numeric) decimal.Decimal {
	if !n.Valid || n.Int == nil {
		return decimal.Zero
	}

	return decimal.NewFromBigInt(n.Int, n.Exp)
}
