package dto

import (
	"time"

	"github.com/SscSPs/property_ledger/internal/core/domain"
)

// CreatePartyRequest defines the data needed to register a counterparty.
type CreatePartyRequest struct {
	Kind        domain.PartyKind `json:"kind" binding:"required,oneof=OWNER TENANT SUPPLIER"`
	PersonType  string           `json:"personType" binding:"omitempty,oneof=natural legal"`
	IDType      string           `json:"idType" binding:"max=20"`
	IDNumber    string           `json:"idNumber" binding:"required,max=20"`
	DisplayName string           `json:"displayName" binding:"required,max=200"`
	Email       string           `json:"email" binding:"omitempty,email"`
	Phone       string           `json:"phone" binding:"max=20"`
}

// PartyResponse defines the data returned for a counterparty.
type PartyResponse struct {
	PartyID     string           `json:"partyID"`
	Kind        domain.PartyKind `json:"kind"`
	PersonType  string           `json:"personType"`
	IDType      string           `json:"idType"`
	IDNumber    string           `json:"idNumber"`
	DisplayName string           `json:"displayName"`
	Email       string           `json:"email,omitempty"`
	Phone       string           `json:"phone,omitempty"`
	Active      bool             `json:"active"`
	CreatedAt   time.Time        `json:"createdAt"`
}

// ToPartyResponse converts a domain.Party to its DTO.
func ToPartyResponse(p *domain.Party) PartyResponse {
	return PartyResponse{
		PartyID:     p.PartyID,
		Kind:        p.Kind,
		PersonType:  p.PersonType,
		IDType:      p.IDType,
		IDNumber:    p.IDNumber,
		DisplayName: p.DisplayName,
		Email:       p.Email,
		Phone:       p.Phone,
		Active:      p.Active,
		CreatedAt:   p.CreatedAt,
	}
}

// ToPartyResponses converts a slice of parties.
func ToPartyResponses(parties []domain.Party) []PartyResponse {
	out := make([]PartyResponse, len(parties))
	for i := range parties {
		out[i] = ToPartyResponse(&parties[i])
	}
	return out
}
