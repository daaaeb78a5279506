package service

import (
	"context"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/carson-networks/compta-server/internal/cache"
	"github.com/carson-networks/compta-server/internal/model"
	"github.com/carson-networks/compta-server/internal/report"
	"github.com/carson-networks/compta-server/internal/storage"
)

// ReportService composes the report engine over the stored transactions.
type ReportService struct {
	storage *storage.Storage
	rev     *revision
	cache   *cache.LRU[dashboardKey, *Dashboard]
}

type dashboardKey struct {
	rev    uint64
	scope  model.Scope
	period model.Period
}

// NewReportService empties dashboards on every write recorded by rev.
func NewReportService(store *storage.Storage, rev *revision, dashboards *cache.LRU[dashboardKey, *Dashboard]) *ReportService {
	rev.onBump(dashboards.Purge)
	return &ReportService{
		storage: store,
		rev:     rev,
		cache:   dashboards,
	}
}

// Dashboard computes, or returns the memoized, dashboard for scope and period.
func (s *ReportService) Dashboard(ctx context.Context, scope model.Scope, period model.Period) (*Dashboard, error) {
	key := dashboardKey{rev: s.rev.current(), scope: scope, period: period}
	if cached, ok := s.cache.Get(key); ok {
		return cached, nil
	}

	txs, reg, err := s.load(ctx)
	if err != nil {
		return nil, err
	}
	links := reg.EffectiveLinks()

	scoped := report.FilterByScope(txs, scope, links)
	inPeriod := report.FilterByDateRange(scoped, period)

	d := &Dashboard{
		Scope:         scope,
		Period:        period,
		Kpis:          report.ComputeKpis(inPeriod, scope),
		Categories:    report.ComputeCategoryBreakdown(inPeriod),
		Prelevements:  report.ComputePrelevementBreakdown(inPeriod),
		Monthly:       report.ComputeMonthlySeries(scoped, period.Year),
		Savings:       report.ComputeSavingsBySavingAccount(inPeriod, scope, links),
		Balances:      report.ComputeAccountBalances(txs, reg.Current, reg.Saving),
		CategoryNames: report.DrilldownCategories(inPeriod),
	}
	if period.HasMonth() {
		d.Daily = report.ComputeDailyNetSeries(scoped, period.Year, period.Month)
		d.DailyExpenses = report.ComputeDailyExpenses(inPeriod)
	}

	if s.rev.current() == key.rev {
		s.cache.Add(key, d)
	}
	return d, nil
}

// Drilldown lists the transactions of scope and period that match filter.
func (s *ReportService) Drilldown(ctx context.Context, scope model.Scope, period model.Period, filter report.DrilldownFilter) ([]model.Transaction, error) {
	txs, reg, err := s.load(ctx)
	if err != nil {
		return nil, err
	}
	scoped := report.FilterByScope(txs, scope, reg.EffectiveLinks())
	return report.FilterDrilldown(report.FilterByDateRange(scoped, period), filter), nil
}

// Archive indexes every stored transaction by year and month.
func (s *ReportService) Archive(ctx context.Context) ([]report.ArchiveYear, error) {
	rows, err := s.storage.Transactions.List(ctx, nil)
	if err != nil {
		return nil, err
	}
	return report.BuildArchive(transactionsFromRows(rows)), nil
}

func (s *ReportService) ArchiveMonth(ctx context.Context, year int, month time.Month) ([]model.Transaction, error) {
	rows, err := s.storage.Transactions.List(ctx, nil)
	if err != nil {
		return nil, err
	}
	return report.ArchiveMonth(transactionsFromRows(rows), year, month), nil
}

func (s *ReportService) load(ctx context.Context) ([]model.Transaction, model.Registry, error) {
	var (
		txs []model.Transaction
		reg model.Registry
	)
	group, gctx := errgroup.WithContext(ctx)
	group.Go(func() error {
		rows, err := s.storage.Transactions.List(gctx, nil)
		if err != nil {
			return err
		}
		txs = transactionsFromRows(rows)
		return nil
	})
	group.Go(func() error {
		var err error
		reg, err = loadRegistry(gctx, s.storage.Settings)
		return err
	})
	if err := group.Wait(); err != nil {
		return nil, model.Registry{}, err
	}
	return txs, reg, nil
}
