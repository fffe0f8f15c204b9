package memory

import (
	"context"
	"fmt"
	"sync"

	"github.com/SscSPs/property_ledger/internal/apperrors"
	"github.com/SscSPs/property_ledger/internal/core/domain"
	portsrepo "github.com/SscSPs/property_ledger/internal/core/ports/repositories"
)

// JournalRepository is an append-only, in-memory posting store.
// Entries are kept in insertion order; entry numbers start at 1.
type JournalRepository struct {
	mu      sync.RWMutex
	entries []domain.JournalEntry
	byID    map[string]int
}

// NewJournalRepository creates an empty posting store.
func NewJournalRepository() *JournalRepository {
	return &JournalRepository{byID: make(map[string]int)}
}

var _ portsrepo.JournalRepositoryFacade = (*JournalRepository)(nil)

func (r *JournalRepository) AppendEntry(_ context.Context, entry domain.JournalEntry) (domain.JournalEntry, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if entry.ID == "" {
		return domain.JournalEntry{}, fmt.Errorf("%w: entry id is required", apperrors.ErrValidation)
	}
	if _, exists := r.byID[entry.ID]; exists {
		return domain.JournalEntry{}, fmt.Errorf("%w: entry %s already appended", apperrors.ErrDuplicate, entry.ID)
	}
	stored := cloneEntry(entry)
	stored.EntryNumber = int64(len(r.entries) + 1)
	r.byID[stored.ID] = len(r.entries)
	r.entries = append(r.entries, stored)
	return cloneEntry(stored), nil
}

func (r *JournalRepository) FindEntryByID(_ context.Context, entryID string) (*domain.JournalEntry, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	idx, ok := r.byID[entryID]
	if !ok {
		return nil, apperrors.ErrNotFound
	}
	e := cloneEntry(r.entries[idx])
	return &e, nil
}

func (r *JournalRepository) QueryEntries(_ context.Context, filter domain.EntryFilter) ([]domain.JournalEntry, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]domain.JournalEntry, 0)
	for _, e := range r.entries {
		if filter.Matches(e) {
			out = append(out, cloneEntry(e))
		}
	}
	return out, nil
}

func (r *JournalRepository) ListEntries(_ context.Context, filter domain.EntryFilter, afterEntryNumber int64, limit int) ([]domain.JournalEntry, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]domain.JournalEntry, 0, limit)
	// entry numbers are dense, so entry n sits at index n-1
	start := afterEntryNumber
	if start < 0 {
		start = 0
	}
	for i := int(start); i < len(r.entries) && len(out) < limit; i++ {
		if filter.Matches(r.entries[i]) {
			out = append(out, cloneEntry(r.entries[i]))
		}
	}
	return out, nil
}

// Len returns the number of admitted entries.
func (r *JournalRepository) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.entries)
}

func cloneEntry(e domain.JournalEntry) domain.JournalEntry {
	e.Lines = append([]domain.PostingLine(nil), e.Lines...)
	return e
}
