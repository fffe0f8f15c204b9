package dto

import (
	"fmt"
	"strings"
	"time"

	"github.com/SscSPs/property_ledger/internal/apperrors"
	"github.com/SscSPs/property_ledger/internal/core/domain"
	"github.com/shopspring/decimal"
)

// JournalLineRequest is a single posting line of a create request.
type JournalLineRequest struct {
	AccountCode string `json:"accountCode" binding:"required"`
	PartyID     string `json:"partyID"`
	Description string `json:"description"`
	Debit       Amount `json:"debit"`
	Credit      Amount `json:"credit"`
}

// CreateJournalEntryRequest defines the data needed to admit a journal entry.
// An empty Lines slice is accepted here and rejected by the ledger validator.
type CreateJournalEntryRequest struct {
	Date           string               `json:"date" binding:"required,datetime=2006-01-02"`
	Description    string               `json:"description" binding:"required"`
	SourceDocument string               `json:"sourceDocument" binding:"max=20"`
	EntryType      domain.EntryType     `json:"entryType" binding:"omitempty,oneof=INCOME EXPENSE ADJUSTMENT"`
	Lines          []JournalLineRequest `json:"lines" binding:"dive"`
}

// ToProposedEntry converts the request into the validator's input.
func (r CreateJournalEntryRequest) ToProposedEntry() (domain.ProposedEntry, error) {
	date, err := time.Parse(domain.DateLayout, r.Date)
	if err != nil {
		return domain.ProposedEntry{}, fmt.Errorf("%w: invalid date %q", apperrors.ErrValidation, r.Date)
	}
	lines := make([]domain.ProposedLine, len(r.Lines))
	for i, l := range r.Lines {
		lines[i] = domain.ProposedLine{
			AccountCode: strings.TrimSpace(l.AccountCode),
			PartyID:     strings.TrimSpace(l.PartyID),
			Description: l.Description,
			Debit:       string(l.Debit),
			Credit:      string(l.Credit),
		}
	}
	return domain.ProposedEntry{
		Date:           date,
		Description:    r.Description,
		SourceDocument: r.SourceDocument,
		EntryType:      r.EntryType,
		Lines:          lines,
	}, nil
}

// PostingLineResponse defines the data returned for a posting line.
type PostingLineResponse struct {
	LineNo       int             `json:"lineNo"`
	AccountCode  string          `json:"accountCode"`
	AccountName  string          `json:"accountName,omitempty"`
	PartyID      string          `json:"partyID,omitempty"`
	Description  string          `json:"description,omitempty"`
	DebitAmount  decimal.Decimal `json:"debitAmount"`
	CreditAmount decimal.Decimal `json:"creditAmount"`
}

// JournalEntryResponse defines the data returned for a journal entry.
type JournalEntryResponse struct {
	ID              string                `json:"id"`
	EntryNumber     int64                 `json:"entryNumber"`
	Date            string                `json:"date"`
	Description     string                `json:"description"`
	SourceDocument  string                `json:"sourceDocument"`
	PeriodID        string                `json:"periodID,omitempty"`
	EntryType       domain.EntryType      `json:"entryType"`
	ReversesEntryID string                `json:"reversesEntryID,omitempty"`
	TotalDebit      decimal.Decimal       `json:"totalDebit"`
	TotalCredit     decimal.Decimal       `json:"totalCredit"`
	Lines           []PostingLineResponse `json:"lines"`
	CreatedAt       time.Time             `json:"createdAt"`
	CreatedBy       string                `json:"createdBy"`
}

// ToJournalEntryResponse converts a domain.JournalEntry to its DTO.
func ToJournalEntryResponse(e *domain.JournalEntry) JournalEntryResponse {
	lines := make([]PostingLineResponse, len(e.Lines))
	for i, l := range e.Lines {
		lines[i] = toPostingLineResponse(l, "")
	}
	return JournalEntryResponse{
		ID:              e.ID,
		EntryNumber:     e.EntryNumber,
		Date:            e.Date.Format(domain.DateLayout),
		Description:     e.Description,
		SourceDocument:  e.SourceDocument,
		PeriodID:        e.PeriodID,
		EntryType:       e.EntryType,
		ReversesEntryID: e.ReversesEntryID,
		TotalDebit:      e.TotalDebit,
		TotalCredit:     e.TotalCredit,
		Lines:           lines,
		CreatedAt:       e.CreatedAt,
		CreatedBy:       e.CreatedBy,
	}
}

func toPostingLineResponse(l domain.PostingLine, accountName string) PostingLineResponse {
	return PostingLineResponse{
		LineNo:       l.LineNo,
		AccountCode:  l.AccountCode,
		AccountName:  accountName,
		PartyID:      l.PartyID,
		Description:  l.Description,
		DebitAmount:  l.DebitAmount,
		CreditAmount: l.CreditAmount,
	}
}

// ListJournalEntriesParams holds the parameters for browsing admitted entries.
type ListJournalEntriesParams struct {
	Filter    domain.EntryFilter
	Limit     int
	NextToken *string
}

// ListJournalEntriesResponse is a page of admitted entries.
type ListJournalEntriesResponse struct {
	Entries   []JournalEntryResponse `json:"entries"`
	NextToken *string                `json:"nextToken,omitempty"`
}

// LedgerErrorResponse is the structured payload returned when an entry is rejected.
type LedgerErrorResponse struct {
	Error       string   `json:"error"`
	Kind        string   `json:"kind"`
	Codes       []string `json:"codes,omitempty"`
	TotalDebit  string   `json:"totalDebit,omitempty"`
	TotalCredit string   `json:"totalCredit,omitempty"`
}

// ToLedgerErrorResponse converts a validator rejection into its payload.
func ToLedgerErrorResponse(le *apperrors.LedgerError) LedgerErrorResponse {
	resp := LedgerErrorResponse{
		Error: le.Error(),
		Kind:  string(le.Kind),
		Codes: le.Codes,
	}
	if le.Kind == apperrors.KindUnbalancedEntry {
		resp.TotalDebit = le.FormatAmount(le.TotalDebit)
		resp.TotalCredit = le.FormatAmount(le.TotalCredit)
	}
	return resp
}
