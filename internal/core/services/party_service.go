package services

import (
	"context"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/SscSPs/property_ledger/internal/core/domain"
	portsrepo "github.com/SscSPs/property_ledger/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/property_ledger/internal/core/ports/services"
	"github.com/SscSPs/property_ledger/internal/dto"
)

type partyService struct {
	BaseService
	partyRepo portsrepo.PartyRepositoryFacade
}

// NewPartyService creates a new counterparty service.
func NewPartyService(repo portsrepo.PartyRepositoryFacade) portssvc.PartySvcFacade {
	return &partyService{partyRepo: repo}
}

var _ portssvc.PartySvcFacade = (*partyService)(nil)

func (s *partyService) CreateParty(ctx context.Context, req dto.CreatePartyRequest, userID string) (*domain.Party, error) {
	personType := req.PersonType
	if personType == "" {
		personType = "natural"
	}
	party := domain.Party{
		PartyID:     uuid.NewString(),
		Kind:        req.Kind,
		PersonType:  personType,
		IDType:      strings.TrimSpace(req.IDType),
		IDNumber:    strings.TrimSpace(req.IDNumber),
		DisplayName: strings.TrimSpace(req.DisplayName),
		Email:       strings.TrimSpace(req.Email),
		Phone:       strings.TrimSpace(req.Phone),
		Active:      true,
		AuditFields: newAuditFields(userID, time.Now().UTC()),
	}
	if err := s.partyRepo.SaveParty(ctx, party); err != nil {
		s.LogError(ctx, err, "Failed to save party", slog.String("id_number", party.IDNumber))
		return nil, err
	}

	s.LogInfo(ctx, "Party created", slog.String("party_id", party.PartyID), slog.String("kind", string(party.Kind)))
	return &party, nil
}

func (s *partyService) GetParty(ctx context.Context, partyID string) (*domain.Party, error) {
	return s.partyRepo.FindPartyByID(ctx, partyID)
}

func (s *partyService) ListParties(ctx context.Context, kind domain.PartyKind) ([]domain.Party, error) {
	return s.partyRepo.ListParties(ctx, kind)
}

func (s *partyService) DeactivateParty(ctx context.Context, partyID string, userID string) error {
	party, err := s.partyRepo.FindPartyByID(ctx, partyID)
	if err != nil {
		return err
	}
	if !party.Active {
		return nil
	}
	party.Active = false
	touch(&party.AuditFields, userID, time.Now().UTC())
	if err := s.partyRepo.UpdateParty(ctx, *party); err != nil {
		s.LogError(ctx, err, "Failed to deactivate party", slog.String("party_id", partyID))
		return err
	}
	s.LogInfo(ctx, "Party deactivated", slog.String("party_id", partyID))
	return nil
}
