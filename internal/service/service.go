package service

import (
	"context"
	"sync/atomic"
	"time"

	"github.com/carson-networks/compta-server/internal/cache"
	"github.com/carson-networks/compta-server/internal/operator/actions"
	"github.com/carson-networks/compta-server/internal/storage"
)

// processor runs a write action through the operator queue.
type processor interface {
	Process(ctx context.Context, action actions.IAction) error
}

// Service holds all business logic services.
type Service struct {
	Transaction *TransactionService
	Account     *AccountService
	Report      *ReportService
}

type Options struct {
	ReportCacheSize int
	ReportCacheTTL  time.Duration
}

// NewService creates a new Service with the given storage and write pipeline.
func NewService(store *storage.Storage, op processor, opts Options) *Service {
	rev := &revision{}
	return &Service{
		Transaction: NewTransactionService(store, op, rev),
		Account:     NewAccountService(store, op, rev),
		Report:      NewReportService(store, rev, cache.NewLRU[dashboardKey, *Dashboard](opts.ReportCacheSize, opts.ReportCacheTTL)),
	}
}

// revision counts committed writes. Cached reports are keyed by it, and
// every bump runs the registered invalidation hooks.
type revision struct {
	n     atomic.Uint64
	hooks []func()
}

// onBump registers f. It must be called before the revision is shared.
func (r *revision) onBump(f func()) {
	r.hooks = append(r.hooks, f)
}

func (r *revision) bump() {
	r.n.Add(1)
	for _, f := range r.hooks {
		f()
	}
}

func (r *revision) current() uint64 {
	return r.n.Load()
}
