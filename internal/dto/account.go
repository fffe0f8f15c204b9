package dto

import (
	"time"

	"github.com/SscSPs/property_ledger/internal/core/domain"
)

// CreateAccountRequest defines the data needed to create a chart-of-accounts entry.
type CreateAccountRequest struct {
	Code               string `json:"code" binding:"required,accountcode"`
	Name               string `json:"name" binding:"required,max=200"`
	ClassName          string `json:"className" binding:"max=50"`
	IsDebitNormal      *bool  `json:"isDebitNormal"` // Optional; derived from the class when omitted
	TracksCounterparty bool   `json:"tracksCounterparty"`
}

// UpdateAccountRequest defines the fields an administrator may change.
// Code and level are immutable.
type UpdateAccountRequest struct {
	Name               *string `json:"name" binding:"omitempty,max=200"`
	ClassName          *string `json:"className" binding:"omitempty,max=50"`
	TracksCounterparty *bool   `json:"tracksCounterparty"`
}

// AccountResponse defines the data returned for an account.
type AccountResponse struct {
	Code               string              `json:"code"`
	Name               string              `json:"name"`
	ClassName          string              `json:"className"`
	Class              domain.AccountClass `json:"class"`
	Level              int                 `json:"level"`
	ParentCode         string              `json:"parentCode,omitempty"`
	IsDebitNormal      bool                `json:"isDebitNormal"`
	TracksCounterparty bool                `json:"tracksCounterparty"`
	Active             bool                `json:"active"`
	CreatedAt          time.Time           `json:"createdAt"`
	CreatedBy          string              `json:"createdBy"`
	LastUpdatedAt      time.Time           `json:"lastUpdatedAt"`
	LastUpdatedBy      string              `json:"lastUpdatedBy"`
}

// ToAccountResponse converts a domain.Account to AccountResponse DTO
func ToAccountResponse(acc *domain.Account) AccountResponse {
	return AccountResponse{
		Code:               acc.Code,
		Name:               acc.Name,
		ClassName:          acc.ClassName,
		Class:              acc.Class(),
		Level:              acc.Level,
		ParentCode:         acc.ParentCode(),
		IsDebitNormal:      acc.IsDebitNormal,
		TracksCounterparty: acc.TracksCounterparty,
		Active:             acc.Active,
		CreatedAt:          acc.CreatedAt,
		CreatedBy:          acc.CreatedBy,
		LastUpdatedAt:      acc.LastUpdatedAt,
		LastUpdatedBy:      acc.LastUpdatedBy,
	}
}

// ToAccountResponses converts a slice of accounts.
func ToAccountResponses(accounts []domain.Account) []AccountResponse {
	responses := make([]AccountResponse, len(accounts))
	for i := range accounts {
		responses[i] = ToAccountResponse(&accounts[i])
	}
	return responses
}
