package usecase

import (
	"context"
	"encoding/json"
	"time"

	"github.com/shopspring/decimal"

	"github.com/iho/bizledger/internal/domain"
	"github.com/iho/bizledger/internal/infrastructure/metrics"
)

// StatementUseCase computes reconciled account statements. Computation
// is a pure fold over the customer's entries; this use case owns the
// fetch, the cache in front of it, and the all-customers aggregation.
type StatementUseCase struct {
	entryRepo    EntryRepository
	customerRepo CustomerRepository
	cache        Cache
	cacheTTL     time.Duration
}

// NewStatementUseCase creates a new StatementUseCase. cache may be nil
// to disable caching; ttl <= 0 falls back to the default.
func NewStatementUseCase(entryRepo EntryRepository, customerRepo CustomerRepository, cache Cache, cacheTTL time.Duration) *StatementUseCase {
	if cacheTTL <= 0 {
		cacheTTL = DefaultStatementCacheTTL
	}

	return &StatementUseCase{
		entryRepo:    entryRepo,
		customerRepo: customerRepo,
		cache:        cache,
		cacheTTL:     cacheTTL,
	}
}

// StatementOutput pairs a customer with their reconciled statement.
type StatementOutput struct {
	Customer  *domain.Customer  `json:"customer"`
	Statement *domain.Statement `json:"statement"`
}

// GetStatement returns the customer's reconciled statement, serving a
// cached copy when one is fresh.
func (uc *StatementUseCase) GetStatement(ctx context.Context, customerID string) (*StatementOutput, error) {
	if cached := uc.cachedStatement(ctx, customerID); cached != nil {
		return cached, nil
	}

	customer, err := uc.customerRepo.GetByID(ctx, customerID)
	if err != nil {
		return nil, err
	}

	entries, err := uc.entryRepo.ListByCustomer(ctx, customerID)
	if err != nil {
		return nil, err
	}

	output := &StatementOutput{
		Customer:  customer,
		Statement: domain.ComputeStatement(entries),
	}

	metrics.StatementsComputed.Inc()
	uc.storeStatement(ctx, customerID, output)

	return output, nil
}

// GetBalance returns the customer's current balance (the final running
// balance of their statement).
func (uc *StatementUseCase) GetBalance(ctx context.Context, customerID string) (decimal.Decimal, error) {
	if _, err := uc.customerRepo.GetByID(ctx, customerID); err != nil {
		return decimal.Zero, err
	}

	entries, err := uc.entryRepo.ListByCustomer(ctx, customerID)
	if err != nil {
		return decimal.Zero, err
	}

	return domain.ComputeBalance(entries), nil
}

// CustomerBalance is a customer's final balance for list views.
type CustomerBalance struct {
	CustomerID string          `json:"customer_id"`
	Name       string          `json:"name"`
	Balance    decimal.Decimal `json:"balance"`
}

// ListBalances computes the final balance for every customer. Each
// customer's fold is independent, so the per-customer grouping feeds
// the same engine the single-customer path uses.
func (uc *StatementUseCase) ListBalances(ctx context.Context) ([]*CustomerBalance, error) {
	limit, offset := domain.ValidatePagination(1000, 0)
	customers, err := uc.customerRepo.List(ctx, limit, offset)
	if err != nil {
		return nil, err
	}

	entries, err := uc.entryRepo.List(ctx, domain.EntryFilter{Limit: 0})
	if err != nil {
		return nil, err
	}

	byCustomer := make(map[string][]*domain.Entry)
	for _, entry := range entries {
		byCustomer[entry.CustomerID] = append(byCustomer[entry.CustomerID], entry)
	}

	balances := make([]*CustomerBalance, 0, len(customers))
	for _, customer := range customers {
		balances = append(balances, &CustomerBalance{
			CustomerID: customer.ID,
			Name:       customer.Name,
			Balance:    domain.ComputeBalance(byCustomer[customer.ID]),
		})
	}

	return balances, nil
}

func (uc *StatementUseCase) cachedStatement(ctx context.Context, customerID string) *StatementOutput {
	if uc.cache == nil {
		return nil
	}

	data, err := uc.cache.Get(ctx, statementCacheKey(customerID))
	if err != nil || len(data) == 0 {
		metrics.StatementCacheMisses.Inc()
		return nil
	}

	var output StatementOutput
	if err := json.Unmarshal(data, &output); err != nil {
		metrics.StatementCacheMisses.Inc()
		return nil
	}

	metrics.StatementCacheHits.Inc()

	return &output
}

func (uc *StatementUseCase) storeStatement(ctx context.Context, customerID string, output *StatementOutput) {
	if uc.cache == nil {
		return
	}

	data, err := json.Marshal(output)
	if err != nil {
		return
	}

	_ = uc.cache.Set(ctx, statementCacheKey(customerID), data, uc.cacheTTL)
}
