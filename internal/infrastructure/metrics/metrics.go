package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Application metrics. Registered against the default registry at init
// so use cases can record without carrying a metrics handle.
var (
	EntriesCreated = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "bizledger_entries_created_total",
			Help: "Total number of ledger entries created, by entry type",
		},
		[]string{"type"},
	)

	StatementsComputed = promauto.NewCounter(prometheus.CounterOpts{
		Name: "bizledger_statements_computed_total",
		Help: "Total number of account statements computed",
	})

	StatementCacheHits = promauto.NewCounter(prometheus.CounterOpts{
		Name: "bizledger_statement_cache_hits_total",
		Help: "Total number of statement reads served from cache",
	})

	StatementCacheMisses = promauto.NewCounter(prometheus.CounterOpts{
		Name: "bizledger_statement_cache_misses_total",
		Help: "Total number of statement reads that missed the cache",
	})

	CustomersCreated = promauto.NewCounter(prometheus.CounterOpts{
		Name: "bizledger_customers_created_total",
		Help: "Total number of customers created",
	})
)
