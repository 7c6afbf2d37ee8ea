package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"github.com/iho/bizledger/internal/domain"
	"github.com/iho/bizledger/internal/infrastructure/metrics"
)

// EntryUseCase handles ledger entry business logic.
type EntryUseCase struct {
	entryRepo    EntryRepository
	customerRepo CustomerRepository
	txManager    TransactionManager
	idGen        IDGenerator
	cache        Cache
}

// NewEntryUseCase creates a new EntryUseCase.
func NewEntryUseCase(entryRepo EntryRepository, customerRepo CustomerRepository, txManager TransactionManager, idGen IDGenerator, cache Cache) *EntryUseCase {
	return &EntryUseCase{
		entryRepo:    entryRepo,
		customerRepo: customerRepo,
		txManager:    txManager,
		idGen:        idGen,
		cache:        cache,
	}
}

// CreateEntryInput represents input for creating a ledger entry.
type CreateEntryInput struct {
	CustomerID  string
	EntryDate   time.Time
	Description string
	Type        domain.EntryType
	Amount      decimal.Decimal
	Reference   string
}

// CreateEntry records a single ledger entry. The entry is validated at
// construction, persisted, and the customer's cached statement is
// invalidated so the next read reflects it.
func (uc *EntryUseCase) CreateEntry(ctx context.Context, input CreateEntryInput) (*domain.Entry, error) {
	if _, err := uc.customerRepo.GetByID(ctx, input.CustomerID); err != nil {
		return nil, err
	}

	entry, err := domain.NewEntry(
		uc.idGen.Generate(),
		input.CustomerID,
		input.EntryDate,
		input.Description,
		input.Type,
		input.Amount,
		input.Reference,
		time.Now().UTC(),
	)
	if err != nil {
		return nil, err
	}

	if err := uc.entryRepo.Create(ctx, entry); err != nil {
		return nil, err
	}

	uc.invalidateStatement(ctx, input.CustomerID)
	metrics.EntriesCreated.WithLabelValues(string(entry.Type)).Inc()

	return entry, nil
}

// CreateEntries records a batch of entries atomically. Used by imports
// and by flows that record several entries as one business event.
func (uc *EntryUseCase) CreateEntries(ctx context.Context, inputs []CreateEntryInput) ([]*domain.Entry, error) {
	if len(inputs) == 0 {
		return nil, nil
	}

	entries := make([]*domain.Entry, 0, len(inputs))
	customers := make(map[string]bool)

	for i, input := range inputs {
		if _, err := uc.customerRepo.GetByID(ctx, input.CustomerID); err != nil {
			return nil, fmt.Errorf("entry %d: %w", i, err)
		}

		entry, err := domain.NewEntry(
			uc.idGen.Generate(),
			input.CustomerID,
			input.EntryDate,
			input.Description,
			input.Type,
			input.Amount,
			input.Reference,
			time.Now().UTC(),
		)
		if err != nil {
			return nil, fmt.Errorf("entry %d: %w", i, err)
		}

		entries = append(entries, entry)
		customers[input.CustomerID] = true
	}

	tx, err := uc.txManager.Begin(ctx)
	if err != nil {
		return nil, err
	}

	for _, entry := range entries {
		if err := uc.entryRepo.CreateTx(ctx, tx, entry); err != nil {
			_ = tx.Rollback(ctx)
			return nil, err
		}
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, err
	}

	for customerID := range customers {
		uc.invalidateStatement(ctx, customerID)
	}

	for _, entry := range entries {
		metrics.EntriesCreated.WithLabelValues(string(entry.Type)).Inc()
	}

	return entries, nil
}

// ListEntries lists entries matching the filter. An empty result is not
// an error.
func (uc *EntryUseCase) ListEntries(ctx context.Context, filter domain.EntryFilter) ([]*domain.Entry, error) {
	filter.Limit, filter.Offset = domain.ValidatePagination(filter.Limit, filter.Offset)

	if filter.Type != "" && !filter.Type.IsValid() {
		return nil, domain.ErrInvalidEntryType
	}

	return uc.entryRepo.List(ctx, filter)
}

func (uc *EntryUseCase) invalidateStatement(ctx context.Context, customerID string) {
	if uc.cache == nil {
		return
	}

	// Best effort: a stale statement expires with its TTL anyway.
	_ = uc.cache.Delete(ctx, statementCacheKey(customerID))
}
