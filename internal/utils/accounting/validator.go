package accounting

import (
	"strings"

	"github.com/SscSPs/property_ledger/internal/apperrors"
	"github.com/SscSPs/property_ledger/internal/core/domain"
	"github.com/shopspring/decimal"
)

// DefaultMinorUnits is the number of decimal places of the ledger currency.
const DefaultMinorUnits int32 = 2

// ParsedEntry is a proposed entry whose amounts have been parsed and rounded,
// ready to be checked against a chart of accounts.
type ParsedEntry struct {
	entry      domain.ProposedEntry
	lines      []domain.PostingLine
	invalid    codeSet
	minorUnits int32
}

// ParseEntry parses and rounds the amounts of a proposed entry. It does not
// need the chart, so callers can run it before taking the admission lock.
// A line is invalid when an amount is malformed, negative, out of range, or
// when the line does not carry exactly one non-zero side.
func ParseEntry(entry domain.ProposedEntry, minorUnits int32) ParsedEntry {
	p := ParsedEntry{entry: entry, lines: make([]domain.PostingLine, len(entry.Lines)), minorUnits: minorUnits}
	for i, line := range entry.Lines {
		debit, okDebit := parseAmount(line.Debit)
		credit, okCredit := parseAmount(line.Credit)
		if !okDebit || !okCredit {
			p.invalid.add(line.AccountCode)
			continue
		}
		debit, credit = debit.Round(minorUnits), credit.Round(minorUnits)
		if debit.IsZero() == credit.IsZero() {
			p.invalid.add(line.AccountCode)
			continue
		}
		p.lines[i] = domain.PostingLine{
			LineNo:       i + 1,
			AccountCode:  line.AccountCode,
			PartyID:      line.PartyID,
			Description:  line.Description,
			DebitAmount:  debit,
			CreditAmount: credit,
		}
	}
	return p
}

// ValidateEntry checks a proposed entry against the chart of accounts and, on
// success, returns the entry with rounded amounts and computed totals. ID and
// EntryNumber are left for the posting store to assign.
func ValidateEntry(entry domain.ProposedEntry, chart ChartIndex, minorUnits int32) (domain.JournalEntry, error) {
	return ParseEntry(entry, minorUnits).Validate(chart)
}

// Validate runs the checks in order and reports the first failing one:
// empty line set, unknown or inactive accounts, invalid amounts, missing
// counterparty, and finally debits versus credits. Within a check every
// offending account code is collected.
func (p ParsedEntry) Validate(chart ChartIndex) (domain.JournalEntry, error) {
	entry := p.entry
	if len(entry.Lines) == 0 {
		return domain.JournalEntry{}, &apperrors.LedgerError{Kind: apperrors.KindEmptyEntry}
	}

	var unknown codeSet
	for _, line := range entry.Lines {
		if !chart.IsPostable(line.AccountCode) {
			unknown.add(line.AccountCode)
		}
	}
	if len(unknown.codes) > 0 {
		return domain.JournalEntry{}, &apperrors.LedgerError{Kind: apperrors.KindUnknownAccount, Codes: unknown.codes}
	}

	if len(p.invalid.codes) > 0 {
		return domain.JournalEntry{}, &apperrors.LedgerError{Kind: apperrors.KindInvalidAmount, Codes: p.invalid.codes}
	}

	var missingParty codeSet
	for _, line := range entry.Lines {
		acc, _ := chart.Lookup(line.AccountCode)
		if acc.TracksCounterparty && strings.TrimSpace(line.PartyID) == "" {
			missingParty.add(line.AccountCode)
		}
	}
	if len(missingParty.codes) > 0 {
		return domain.JournalEntry{}, &apperrors.LedgerError{Kind: apperrors.KindMissingCounterparty, Codes: missingParty.codes}
	}

	lines := append([]domain.PostingLine(nil), p.lines...)
	totalDebit, totalCredit := SumLines(lines)
	if !totalDebit.Equal(totalCredit) {
		return domain.JournalEntry{}, &apperrors.LedgerError{
			Kind:        apperrors.KindUnbalancedEntry,
			TotalDebit:  totalDebit,
			TotalCredit: totalCredit,
			MinorUnits:  p.minorUnits,
		}
	}

	entryType := entry.EntryType
	if entryType == "" {
		entryType = domain.EntryTypeAdjustment
	}

	return domain.JournalEntry{
		Date:           domain.TruncateToDate(entry.Date),
		Description:    entry.Description,
		SourceDocument: entry.SourceDocument,
		PeriodID:       entry.PeriodID,
		EntryType:      entryType,
		Lines:          lines,
		TotalDebit:     totalDebit,
		TotalCredit:    totalCredit,
	}, nil
}

// SumLines returns the total debit and credit of the lines.
func SumLines(lines []domain.PostingLine) (decimal.Decimal, decimal.Decimal) {
	debit, credit := decimal.Zero, decimal.Zero
	for _, l := range lines {
		debit = debit.Add(l.DebitAmount)
		credit = credit.Add(l.CreditAmount)
	}
	return debit, credit
}

// Bounds on textual amounts. Rounding a decimal with a huge exponent
// allocates a coefficient of that many digits.
const (
	maxAmountLength   = 32
	maxAmountExponent = 18
)

// parseAmount accepts an empty string as zero and rejects non-numeric,
// negative, or out of range values.
func parseAmount(raw string) (decimal.Decimal, bool) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return decimal.Zero, true
	}
	if len(raw) > maxAmountLength {
		return decimal.Zero, false
	}
	d, err := decimal.NewFromString(raw)
	if err != nil || d.IsNegative() {
		return decimal.Zero, false
	}
	if exp := d.Exponent(); exp > maxAmountExponent || exp < -maxAmountExponent {
		return decimal.Zero, false
	}
	return d, true
}

// codeSet collects account codes once each, in first-seen order.
type codeSet struct {
	codes []string
	seen  map[string]struct{}
}

func (s *codeSet) add(code string) {
	if s.seen == nil {
		s.seen = make(map[string]struct{})
	}
	if _, ok := s.seen[code]; ok {
		return
	}
	s.seen[code] = struct{}{}
	s.codes = append(s.codes, code)
}
