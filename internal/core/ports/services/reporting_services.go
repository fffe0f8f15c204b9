package services

import (
	"context"

	"github.com/SscSPs/property_ledger/internal/core/domain"
)

// ReportingService defines operations for generating financial reports.
// Every report is a function of the chart, the admitted entries and the filter.
type ReportingService interface {
	TrialBalance(ctx context.Context, filter domain.EntryFilter) (*domain.TrialBalance, error)
	BalanceSheet(ctx context.Context, filter domain.EntryFilter) (*domain.BalanceSheet, error)
	IncomeStatement(ctx context.Context, filter domain.EntryFilter) (*domain.IncomeStatement, error)
	JournalListing(ctx context.Context, filter domain.EntryFilter) (*domain.JournalListing, error)
}
