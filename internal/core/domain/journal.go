package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// EntryType classifies the business origin of a journal entry.
type EntryType string

const (
	EntryTypeIncome     EntryType = "INCOME"
	EntryTypeExpense    EntryType = "EXPENSE"
	EntryTypeAdjustment EntryType = "ADJUSTMENT"
)

// ProposedLine is a posting line as submitted by a client, before validation.
// Amounts are kept as entered so malformed values can be reported per account.
type ProposedLine struct {
	AccountCode string
	PartyID     string
	Description string
	Debit       string
	Credit      string
}

// ProposedEntry is a journal entry awaiting admission.
type ProposedEntry struct {
	Date           time.Time
	Description    string
	SourceDocument string
	PeriodID       string
	EntryType      EntryType
	Lines          []ProposedLine
}

// PostingLine is a single debit/credit line of an admitted journal entry.
type PostingLine struct {
	LineNo       int             `json:"lineNo"`
	AccountCode  string          `json:"accountCode"`
	PartyID      string          `json:"partyID,omitempty"`
	Description  string          `json:"description,omitempty"`
	DebitAmount  decimal.Decimal `json:"debitAmount"`
	CreditAmount decimal.Decimal `json:"creditAmount"`
}

// JournalEntry is an admitted, balanced journal entry. It is never mutated after append.
type JournalEntry struct {
	ID              string          `json:"id"`
	EntryNumber     int64           `json:"entryNumber"`
	Date            time.Time       `json:"date"`
	Description     string          `json:"description"`
	SourceDocument  string          `json:"sourceDocument"`
	PeriodID        string          `json:"periodID,omitempty"`
	EntryType       EntryType       `json:"entryType"`
	ReversesEntryID string          `json:"reversesEntryID,omitempty"`
	Lines           []PostingLine   `json:"lines"`
	TotalDebit      decimal.Decimal `json:"totalDebit"`
	TotalCredit     decimal.Decimal `json:"totalCredit"`
	AuditFields
}

// HasParty reports whether any line of the entry references the party.
func (e JournalEntry) HasParty(partyID string) bool {
	for _, l := range e.Lines {
		if l.PartyID == partyID {
			return true
		}
	}
	return false
}

// TouchesAccount reports whether any line of the entry posts to the account code.
func (e JournalEntry) TouchesAccount(code string) bool {
	for _, l := range e.Lines {
		if l.AccountCode == code {
			return true
		}
	}
	return false
}

// Reversal builds the offsetting entry for e: same lines with debit and credit swapped.
func (e JournalEntry) Reversal(date time.Time, description string) JournalEntry {
	lines := make([]PostingLine, len(e.Lines))
	for i, l := range e.Lines {
		lines[i] = PostingLine{
			LineNo:       i + 1,
			AccountCode:  l.AccountCode,
			PartyID:      l.PartyID,
			Description:  l.Description,
			DebitAmount:  l.CreditAmount,
			CreditAmount: l.DebitAmount,
		}
	}
	return JournalEntry{
		Date:            date,
		Description:     description,
		SourceDocument:  e.SourceDocument,
		EntryType:       EntryTypeAdjustment,
		ReversesEntryID: e.ID,
		Lines:           lines,
		TotalDebit:      e.TotalCredit,
		TotalCredit:     e.TotalDebit,
	}
}
