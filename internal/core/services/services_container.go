package services

import (
	portsrepo "github.com/SscSPs/property_ledger/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/property_ledger/internal/core/ports/services"
	"github.com/SscSPs/property_ledger/internal/platform/config"
)

// NewServiceContainer creates a new service container with properly initialized dependencies.
// cache may be nil, in which case reports are always computed.
func NewServiceContainer(cfg *config.Config, repos portsrepo.RepositoryProvider, cache LedgerCache) *portssvc.ServiceContainer {
	container := &portssvc.ServiceContainer{}

	accountOpts := []AccountServiceOption{}
	journalOpts := []JournalServiceOption{
		WithPeriodRepository(repos.PeriodRepo),
		WithPartyRepository(repos.PartyRepo),
		WithMinorUnits(cfg.CurrencyMinorUnits),
	}
	reportingOpts := []ReportingServiceOption{
		WithIncomeSignConvention(cfg.IncomeSignConvention),
	}
	if cache != nil {
		accountOpts = append(accountOpts, WithAccountCache(cache))
		journalOpts = append(journalOpts, WithJournalCache(cache))
		reportingOpts = append(reportingOpts, WithReportCache(cache))
	}

	container.Account = NewAccountService(repos.AccountRepo, accountOpts...)
	container.Journal = NewJournalService(repos.JournalRepo, repos.AccountRepo, journalOpts...)
	container.Reporting = NewReportingService(repos.AccountRepo, repos.JournalRepo, reportingOpts...)
	container.Period = NewPeriodService(repos.PeriodRepo)
	container.Party = NewPartyService(repos.PartyRepo)

	return container
}
