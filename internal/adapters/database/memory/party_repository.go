package memory

import (
	"context"
	"fmt"
	"sort"
	"sync"

	"github.com/SscSPs/property_ledger/internal/apperrors"
	"github.com/SscSPs/property_ledger/internal/core/domain"
	portsrepo "github.com/SscSPs/property_ledger/internal/core/ports/repositories"
)

// PartyRepository keeps counterparties in memory.
type PartyRepository struct {
	mu      sync.RWMutex
	parties map[string]domain.Party
}

func NewPartyRepository() *PartyRepository {
	return &PartyRepository{parties: make(map[string]domain.Party)}
}

var _ portsrepo.PartyRepositoryFacade = (*PartyRepository)(nil)

func (r *PartyRepository) SaveParty(_ context.Context, party domain.Party) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, p := range r.parties {
		if p.IDNumber == party.IDNumber {
			return fmt.Errorf("%w: party with id number %s already exists", apperrors.ErrDuplicate, party.IDNumber)
		}
	}
	r.parties[party.PartyID] = party
	return nil
}

func (r *PartyRepository) FindPartyByID(_ context.Context, partyID string) (*domain.Party, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	p, ok := r.parties[partyID]
	if !ok {
		return nil, apperrors.ErrNotFound
	}
	return &p, nil
}

// ListParties returns active parties ordered by display name. An empty kind matches all.
func (r *PartyRepository) ListParties(_ context.Context, kind domain.PartyKind) ([]domain.Party, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]domain.Party, 0)
	for _, p := range r.parties {
		if !p.Active || (kind != "" && p.Kind != kind) {
			continue
		}
		out = append(out, p)
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].DisplayName != out[j].DisplayName {
			return out[i].DisplayName < out[j].DisplayName
		}
		return out[i].PartyID < out[j].PartyID
	})
	return out, nil
}

func (r *PartyRepository) UpdateParty(_ context.Context, party domain.Party) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.parties[party.PartyID]; !ok {
		return apperrors.ErrNotFound
	}
	r.parties[party.PartyID] = party
	return nil
}
