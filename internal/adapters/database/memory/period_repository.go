package memory

import (
	"context"
	"fmt"
	"sort"
	"sync"
	"time"

	"github.com/SscSPs/property_ledger/internal/apperrors"
	"github.com/SscSPs/property_ledger/internal/core/domain"
	portsrepo "github.com/SscSPs/property_ledger/internal/core/ports/repositories"
)

// PeriodRepository keeps accounting periods in memory.
type PeriodRepository struct {
	mu      sync.RWMutex
	periods map[string]domain.AccountingPeriod
}

func NewPeriodRepository() *PeriodRepository {
	return &PeriodRepository{periods: make(map[string]domain.AccountingPeriod)}
}

var _ portsrepo.PeriodRepositoryFacade = (*PeriodRepository)(nil)

func (r *PeriodRepository) SavePeriod(_ context.Context, period domain.AccountingPeriod) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, p := range r.periods {
		if p.Year == period.Year && p.Month == period.Month {
			return fmt.Errorf("%w: period %d-%02d already exists", apperrors.ErrDuplicate, period.Year, period.Month)
		}
	}
	r.periods[period.ID] = period
	return nil
}

func (r *PeriodRepository) FindPeriodByID(_ context.Context, periodID string) (*domain.AccountingPeriod, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	p, ok := r.periods[periodID]
	if !ok {
		return nil, apperrors.ErrNotFound
	}
	return &p, nil
}

func (r *PeriodRepository) FindPeriodForDate(_ context.Context, date time.Time) (*domain.AccountingPeriod, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, p := range r.sortedLocked() {
		if p.Contains(date) {
			return &p, nil
		}
	}
	return nil, apperrors.ErrNotFound
}

func (r *PeriodRepository) ListPeriods(_ context.Context) ([]domain.AccountingPeriod, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.sortedLocked(), nil
}

func (r *PeriodRepository) UpdatePeriod(_ context.Context, period domain.AccountingPeriod) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.periods[period.ID]; !ok {
		return apperrors.ErrNotFound
	}
	r.periods[period.ID] = period
	return nil
}

func (r *PeriodRepository) sortedLocked() []domain.AccountingPeriod {
	out := make([]domain.AccountingPeriod, 0, len(r.periods))
	for _, p := range r.periods {
		out = append(out, p)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Start.Before(out[j].Start) })
	return out
}
