package services

import (
	"context"

	"github.com/SscSPs/property_ledger/internal/core/domain"
	"github.com/SscSPs/property_ledger/internal/dto"
)

// PartySvcFacade defines operations on counterparties
type PartySvcFacade interface {
	CreateParty(ctx context.Context, req dto.CreatePartyRequest, userID string) (*domain.Party, error)
	GetParty(ctx context.Context, partyID string) (*domain.Party, error)
	// ListParties returns active parties, optionally restricted to a kind.
	ListParties(ctx context.Context, kind domain.PartyKind) ([]domain.Party, error)
	DeactivateParty(ctx context.Context, partyID string, userID string) error
}
