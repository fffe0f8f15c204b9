package repositories

import (
	"context"

	"github.com/SscSPs/property_ledger/internal/core/domain"
)

// PartyRepositoryFacade defines persistence for counterparties.
type PartyRepositoryFacade interface {
	SaveParty(ctx context.Context, party domain.Party) error
	FindPartyByID(ctx context.Context, partyID string) (*domain.Party, error)
	ListParties(ctx context.Context, kind domain.PartyKind) ([]domain.Party, error)
	UpdateParty(ctx context.Context, party domain.Party) error
}
