package services

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/SscSPs/property_ledger/internal/apperrors"
	"github.com/SscSPs/property_ledger/internal/core/domain"
	portsrepo "github.com/SscSPs/property_ledger/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/property_ledger/internal/core/ports/services"
	"github.com/SscSPs/property_ledger/internal/dto"
)

type periodService struct {
	BaseService
	periodRepo portsrepo.PeriodRepositoryFacade
}

// NewPeriodService creates a new accounting period service.
func NewPeriodService(repo portsrepo.PeriodRepositoryFacade) portssvc.PeriodSvcFacade {
	return &periodService{periodRepo: repo}
}

var _ portssvc.PeriodSvcFacade = (*periodService)(nil)

func (s *periodService) CreatePeriod(ctx context.Context, req dto.CreatePeriodRequest, userID string) (*domain.AccountingPeriod, error) {
	start, err := time.Parse(domain.DateLayout, req.Start)
	if err != nil {
		return nil, fmt.Errorf("%w: invalid start date", apperrors.ErrValidation)
	}
	closeDate, err := time.Parse(domain.DateLayout, req.Close)
	if err != nil {
		return nil, fmt.Errorf("%w: invalid close date", apperrors.ErrValidation)
	}
	if !closeDate.After(start) {
		return nil, fmt.Errorf("%w: close date must be after start date", apperrors.ErrValidation)
	}

	// Overlapping periods would make the covering period of a date ambiguous
	existing, err := s.periodRepo.ListPeriods(ctx)
	if err != nil {
		return nil, err
	}
	for _, p := range existing {
		if start.Before(p.Close) && p.Start.Before(closeDate) {
			return nil, fmt.Errorf("%w: period overlaps %s", apperrors.ErrDuplicate, p.Name)
		}
	}

	name := req.Name
	if name == "" {
		name = fmt.Sprintf("%d-%02d", req.Year, req.Month)
	}

	period := domain.AccountingPeriod{
		ID:          uuid.NewString(),
		Year:        req.Year,
		Month:       req.Month,
		Name:        name,
		Start:       start,
		Close:       closeDate,
		State:       domain.PeriodOpen,
		AuditFields: newAuditFields(userID, time.Now().UTC()),
	}
	if err := s.periodRepo.SavePeriod(ctx, period); err != nil {
		s.LogError(ctx, err, "Failed to save accounting period", slog.String("period_name", name))
		return nil, err
	}

	s.LogInfo(ctx, "Accounting period created", slog.String("period_id", period.ID), slog.String("period_name", name))
	return &period, nil
}

func (s *periodService) GetPeriod(ctx context.Context, periodID string) (*domain.AccountingPeriod, error) {
	return s.periodRepo.FindPeriodByID(ctx, periodID)
}

func (s *periodService) ListPeriods(ctx context.Context) ([]domain.AccountingPeriod, error) {
	return s.periodRepo.ListPeriods(ctx)
}

func (s *periodService) ClosePeriod(ctx context.Context, periodID string, userID string) (*domain.AccountingPeriod, error) {
	period, err := s.periodRepo.FindPeriodByID(ctx, periodID)
	if err != nil {
		return nil, err
	}
	if period.State == domain.PeriodClosed {
		return period, nil
	}
	period.State = domain.PeriodClosed
	touch(&period.AuditFields, userID, time.Now().UTC())

	if err := s.periodRepo.UpdatePeriod(ctx, *period); err != nil {
		s.LogError(ctx, err, "Failed to close accounting period", slog.String("period_id", periodID))
		return nil, err
	}

	s.LogInfo(ctx, "Accounting period closed", slog.String("period_id", periodID))
	return period, nil
}
