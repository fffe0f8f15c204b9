package services

import (
	"context"

	"github.com/SscSPs/property_ledger/internal/core/domain"
	"github.com/SscSPs/property_ledger/internal/dto"
)

// PeriodSvcFacade defines operations on accounting periods
type PeriodSvcFacade interface {
	CreatePeriod(ctx context.Context, req dto.CreatePeriodRequest, userID string) (*domain.AccountingPeriod, error)
	GetPeriod(ctx context.Context, periodID string) (*domain.AccountingPeriod, error)
	ListPeriods(ctx context.Context) ([]domain.AccountingPeriod, error)
	// ClosePeriod prevents further entries dated inside the period.
	ClosePeriod(ctx context.Context, periodID string, userID string) (*domain.AccountingPeriod, error)
}
