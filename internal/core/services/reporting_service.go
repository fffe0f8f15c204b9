package services

import (
	"context"
	"fmt"
	"log/slog"

	"golang.org/x/sync/errgroup"

	"github.com/SscSPs/property_ledger/internal/apperrors"
	"github.com/SscSPs/property_ledger/internal/core/domain"
	portsrepo "github.com/SscSPs/property_ledger/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/property_ledger/internal/core/ports/services"
	"github.com/SscSPs/property_ledger/internal/utils/accounting"
)

// LedgerCache caches rendered reports under versioned keys. Bump must be called
// after every change to the chart or the posting store.
type LedgerCache interface {
	BuildKey(ctx context.Context, parts ...string) (string, error)
	FetchJSON(ctx context.Context, key string, dest any, loader func(context.Context) (any, error)) error
	Bump(ctx context.Context) error
}

// reportingService implements the ReportingService interface
type reportingService struct {
	BaseService
	accountRepo portsrepo.AccountReader
	journalRepo portsrepo.JournalReader
	cache       LedgerCache
	convention  domain.IncomeSignConvention
}

// ReportingServiceOption is a functional option for configuring the reporting service
type ReportingServiceOption func(*reportingService)

// WithReportCache serves reports from the cache when the ledger has not changed.
func WithReportCache(cache LedgerCache) ReportingServiceOption {
	return func(s *reportingService) {
		s.cache = cache
	}
}

// WithIncomeSignConvention selects how income totals are signed.
func WithIncomeSignConvention(convention domain.IncomeSignConvention) ReportingServiceOption {
	return func(s *reportingService) {
		s.convention = convention
	}
}

// NewReportingService creates a new reporting service with the provided options
func NewReportingService(accountRepo portsrepo.AccountReader, journalRepo portsrepo.JournalReader, options ...ReportingServiceOption) portssvc.ReportingService {
	svc := &reportingService{
		accountRepo: accountRepo,
		journalRepo: journalRepo,
		convention:  domain.DefaultIncomeSignConvention,
	}
	for _, option := range options {
		option(svc)
	}
	return svc
}

var _ portssvc.ReportingService = (*reportingService)(nil)

func (s *reportingService) TrialBalance(ctx context.Context, filter domain.EntryFilter) (*domain.TrialBalance, error) {
	var out domain.TrialBalance
	err := s.render(ctx, "trial-balance", filter, &out, func(chart accounting.ChartIndex, entries []domain.JournalEntry) any {
		return accounting.ComputeTrialBalance(chart, entries, filter)
	})
	if err != nil {
		return nil, err
	}
	return &out, nil
}

func (s *reportingService) BalanceSheet(ctx context.Context, filter domain.EntryFilter) (*domain.BalanceSheet, error) {
	var out domain.BalanceSheet
	err := s.render(ctx, "balance-sheet", filter, &out, func(chart accounting.ChartIndex, entries []domain.JournalEntry) any {
		return accounting.ComputeBalanceSheet(chart, entries, filter)
	})
	if err != nil {
		return nil, err
	}
	if len(out.Unclassified) > 0 {
		s.LogInfo(ctx, "Balance sheet has unclassified accounts", slog.Any("account_codes", out.Unclassified))
	}
	return &out, nil
}

func (s *reportingService) IncomeStatement(ctx context.Context, filter domain.EntryFilter) (*domain.IncomeStatement, error) {
	var out domain.IncomeStatement
	err := s.render(ctx, "income-statement:"+string(s.convention), filter, &out, func(chart accounting.ChartIndex, entries []domain.JournalEntry) any {
		return accounting.ComputeIncomeStatement(chart, entries, filter, s.convention)
	})
	if err != nil {
		return nil, err
	}
	return &out, nil
}

func (s *reportingService) JournalListing(ctx context.Context, filter domain.EntryFilter) (*domain.JournalListing, error) {
	var out domain.JournalListing
	err := s.render(ctx, "journal", filter, &out, func(chart accounting.ChartIndex, entries []domain.JournalEntry) any {
		return accounting.ComputeJournalListing(chart, entries, filter)
	})
	if err != nil {
		return nil, err
	}
	return &out, nil
}

// render computes a report, going through the cache when one is configured.
func (s *reportingService) render(ctx context.Context, report string, filter domain.EntryFilter, dest any, compute func(accounting.ChartIndex, []domain.JournalEntry) any) error {
	if err := filter.Validate(); err != nil {
		return fmt.Errorf("%w: %v", apperrors.ErrValidation, err)
	}

	loader := func(ctx context.Context) (any, error) {
		chart, entries, err := s.load(ctx, filter)
		if err != nil {
			return nil, err
		}
		return compute(chart, entries), nil
	}

	cache := s.cache
	if cache == nil {
		cache = passthroughCache{}
	}
	key, err := cache.BuildKey(ctx, report, filter.CacheKey())
	if err != nil {
		// A broken cache must not take reporting down with it
		s.LogError(ctx, err, "Failed to build report cache key", slog.String("report", report))
		cache, key = passthroughCache{}, report
	}
	if err := cache.FetchJSON(ctx, key, dest, loader); err != nil {
		s.LogError(ctx, err, "Failed to generate report", slog.String("report", report), slog.String("filter", filter.CacheKey()))
		return fmt.Errorf("failed to generate %s report: %w", report, err)
	}

	s.LogDebug(ctx, "Report generated", slog.String("report", report), slog.String("filter", filter.CacheKey()))
	return nil
}

// load reads the chart and the matching entries concurrently.
func (s *reportingService) load(ctx context.Context, filter domain.EntryFilter) (accounting.ChartIndex, []domain.JournalEntry, error) {
	var (
		accounts []domain.Account
		entries  []domain.JournalEntry
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		accounts, err = s.accountRepo.ListAccounts(gctx)
		if err != nil {
			return fmt.Errorf("load chart of accounts: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		var err error
		entries, err = s.journalRepo.QueryEntries(gctx, filter)
		if err != nil {
			return fmt.Errorf("load journal entries: %w", err)
		}
		return nil
	})
	if err := g.Wait(); err != nil {
		return accounting.ChartIndex{}, nil, err
	}
	return accounting.IndexChart(accounts), entries, nil
}
