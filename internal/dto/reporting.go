package dto

import (
	"fmt"
	"strings"
	"time"

	"github.com/SscSPs/property_ledger/internal/apperrors"
	"github.com/SscSPs/property_ledger/internal/core/domain"
	"github.com/shopspring/decimal"
)

// ExportFormat selects how a report is delivered.
type ExportFormat string

const (
	ExportNone        ExportFormat = "none"
	ExportSpreadsheet ExportFormat = "spreadsheet"
	ExportDocument    ExportFormat = "document"
)

// ReportQuery holds the query string shared by every report endpoint.
type ReportQuery struct {
	DateFrom    string       `form:"dateFrom"`
	DateTo      string       `form:"dateTo"`
	AccountCode string       `form:"accountCode"`
	PartyID     string       `form:"partyId"`
	Export      ExportFormat `form:"export" binding:"omitempty,oneof=none spreadsheet document"`
}

// ToFilter parses the query into an EntryFilter. Empty values mean "no constraint";
// a non-empty but malformed date is a validation error.
func (q ReportQuery) ToFilter() (domain.EntryFilter, error) {
	var f domain.EntryFilter
	var err error
	if f.DateFrom, err = parseOptionalDate("dateFrom", q.DateFrom); err != nil {
		return f, err
	}
	if f.DateTo, err = parseOptionalDate("dateTo", q.DateTo); err != nil {
		return f, err
	}
	f.AccountCode = strings.TrimSpace(q.AccountCode)
	f.PartyID = strings.TrimSpace(q.PartyID)
	if err := f.Validate(); err != nil {
		return f, fmt.Errorf("%w: %v", apperrors.ErrValidation, err)
	}
	return f, nil
}

func parseOptionalDate(name, raw string) (*time.Time, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return nil, nil
	}
	t, err := time.Parse(domain.DateLayout, raw)
	if err != nil {
		return nil, fmt.Errorf("%w: %s must be in YYYY-MM-DD format", apperrors.ErrValidation, name)
	}
	return &t, nil
}

// ReportFilterResponse echoes the applied filter.
type ReportFilterResponse struct {
	DateFrom    string `json:"dateFrom,omitempty"`
	DateTo      string `json:"dateTo,omitempty"`
	AccountCode string `json:"accountCode,omitempty"`
	PartyID     string `json:"partyId,omitempty"`
}

// ToReportFilterResponse converts a filter for echoing back to the client.
func ToReportFilterResponse(f domain.EntryFilter) ReportFilterResponse {
	resp := ReportFilterResponse{AccountCode: f.AccountCode, PartyID: f.PartyID}
	if f.DateFrom != nil {
		resp.DateFrom = f.DateFrom.Format(domain.DateLayout)
	}
	if f.DateTo != nil {
		resp.DateTo = f.DateTo.Format(domain.DateLayout)
	}
	return resp
}

// AccountBalanceResponse is the per-account entry of the trial balance map.
type AccountBalanceResponse struct {
	Name    string          `json:"name"`
	Debit   decimal.Decimal `json:"debit"`
	Credit  decimal.Decimal `json:"credit"`
	Balance decimal.Decimal `json:"balance"`
}

// TrialBalanceResponse represents the trial balance report response.
type TrialBalanceResponse struct {
	Filter      ReportFilterResponse              `json:"filter"`
	Rows        []domain.TrialBalanceRow          `json:"rows"`
	Accounts    map[string]AccountBalanceResponse `json:"accounts"`
	TotalDebit  decimal.Decimal                   `json:"totalDebit"`
	TotalCredit decimal.Decimal                   `json:"totalCredit"`
}

// ToTrialBalanceResponse converts a trial balance to its DTO.
func ToTrialBalanceResponse(f domain.EntryFilter, tb *domain.TrialBalance) TrialBalanceResponse {
	accounts := make(map[string]AccountBalanceResponse, len(tb.Rows))
	for _, r := range tb.Rows {
		accounts[r.Code] = AccountBalanceResponse{Name: r.Name, Debit: r.Debit, Credit: r.Credit, Balance: r.Balance}
	}
	rows := tb.Rows
	if rows == nil {
		rows = []domain.TrialBalanceRow{}
	}
	return TrialBalanceResponse{
		Filter:      ToReportFilterResponse(f),
		Rows:        rows,
		Accounts:    accounts,
		TotalDebit:  tb.TotalDebit,
		TotalCredit: tb.TotalCredit,
	}
}

// BalanceSheetResponse represents the balance sheet report response.
type BalanceSheetResponse struct {
	Filter       ReportFilterResponse       `json:"filter"`
	Summary      domain.BalanceSheetSummary `json:"summary"`
	Detail       []domain.TrialBalanceRow   `json:"detail"`
	Unclassified []string                   `json:"unclassified,omitempty"`
}

// ToBalanceSheetResponse converts a balance sheet to its DTO.
func ToBalanceSheetResponse(f domain.EntryFilter, bs *domain.BalanceSheet) BalanceSheetResponse {
	detail := bs.Detail
	if detail == nil {
		detail = []domain.TrialBalanceRow{}
	}
	return BalanceSheetResponse{
		Filter:       ToReportFilterResponse(f),
		Summary:      bs.Summary,
		Detail:       detail,
		Unclassified: bs.Unclassified,
	}
}

// IncomeStatementResponse represents the income statement report response.
type IncomeStatementResponse struct {
	Filter       ReportFilterResponse        `json:"filter"`
	TotalIncome  decimal.Decimal             `json:"totalIncome"`
	TotalExpense decimal.Decimal             `json:"totalExpense"`
	NetIncome    decimal.Decimal             `json:"netIncome"`
	Convention   domain.IncomeSignConvention `json:"convention"`
}

// ToIncomeStatementResponse converts an income statement to its DTO.
func ToIncomeStatementResponse(f domain.EntryFilter, is *domain.IncomeStatement) IncomeStatementResponse {
	return IncomeStatementResponse{
		Filter:       ToReportFilterResponse(f),
		TotalIncome:  is.TotalIncome,
		TotalExpense: is.TotalExpense,
		NetIncome:    is.NetIncome,
		Convention:   is.Convention,
	}
}

// ListedEntryResponse is a journal listing entry with expanded lines.
type ListedEntryResponse struct {
	ID             string                `json:"id"`
	EntryNumber    int64                 `json:"entryNumber"`
	Date           string                `json:"date"`
	Description    string                `json:"description"`
	SourceDocument string                `json:"sourceDocument"`
	EntryType      domain.EntryType      `json:"entryType"`
	Lines          []PostingLineResponse `json:"lines"`
}

// JournalListingResponse represents the journal listing report response.
type JournalListingResponse struct {
	Filter  ReportFilterResponse  `json:"filter"`
	Entries []ListedEntryResponse `json:"entries"`
}

// ToJournalListingResponse converts a journal listing to its DTO.
func ToJournalListingResponse(f domain.EntryFilter, jl *domain.JournalListing) JournalListingResponse {
	entries := make([]ListedEntryResponse, len(jl.Entries))
	for i, le := range jl.Entries {
		lines := make([]PostingLineResponse, len(le.Lines))
		for j, l := range le.Lines {
			lines[j] = toPostingLineResponse(l.PostingLine, l.AccountName)
		}
		entries[i] = ListedEntryResponse{
			ID:             le.Entry.ID,
			EntryNumber:    le.Entry.EntryNumber,
			Date:           le.Entry.Date.Format(domain.DateLayout),
			Description:    le.Entry.Description,
			SourceDocument: le.Entry.SourceDocument,
			EntryType:      le.Entry.EntryType,
			Lines:          lines,
		}
	}
	return JournalListingResponse{Filter: ToReportFilterResponse(f), Entries: entries}
}
