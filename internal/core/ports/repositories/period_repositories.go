package repositories

import (
	"context"
	"time"

	"github.com/SscSPs/property_ledger/internal/core/domain"
)

// PeriodRepositoryFacade defines persistence for accounting periods.
type PeriodRepositoryFacade interface {
	SavePeriod(ctx context.Context, period domain.AccountingPeriod) error
	FindPeriodByID(ctx context.Context, periodID string) (*domain.AccountingPeriod, error)
	// FindPeriodForDate returns the period whose [start, close) range contains date, or ErrNotFound.
	FindPeriodForDate(ctx context.Context, date time.Time) (*domain.AccountingPeriod, error)
	ListPeriods(ctx context.Context) ([]domain.AccountingPeriod, error)
	UpdatePeriod(ctx context.Context, period domain.AccountingPeriod) error
}
