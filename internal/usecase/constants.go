package usecase

import "time"

const (
	// DefaultStatementCacheTTL is how long computed statements are cached
	// when no TTL is configured.
	DefaultStatementCacheTTL = 5 * time.Minute

	// IdempotencyKeyTTL is how long idempotency keys are cached
	IdempotencyKeyTTL = 24 * time.Hour
)

// statementCacheKey is the single place the cache key shape is defined
// so creation and invalidation cannot drift apart.
func statementCacheKey(customerID string) string {
	return "statement:" + customerID
}
