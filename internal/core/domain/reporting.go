package domain

import (
	"github.com/shopspring/decimal"
)

// TrialBalanceRow is the aggregated activity of one account.
type TrialBalanceRow struct {
	Code    string          `json:"code"`
	Name    string          `json:"name"`
	Class   AccountClass    `json:"class"`
	Debit   decimal.Decimal `json:"debit"`
	Credit  decimal.Decimal `json:"credit"`
	Balance decimal.Decimal `json:"balance"` // Debit - Credit
}

// TrialBalance lists every reported account in chart order.
type TrialBalance struct {
	Rows        []TrialBalanceRow `json:"rows"`
	TotalDebit  decimal.Decimal   `json:"totalDebit"`
	TotalCredit decimal.Decimal   `json:"totalCredit"`
}

// BalanceSheetSummary totals balances per balance-sheet class.
type BalanceSheetSummary struct {
	Asset     decimal.Decimal `json:"asset"`
	Liability decimal.Decimal `json:"liability"`
	Equity    decimal.Decimal `json:"equity"`
}

// BalanceSheet pairs the class summary with the per-account detail.
type BalanceSheet struct {
	Summary BalanceSheetSummary `json:"summary"`
	Detail  []TrialBalanceRow   `json:"detail"`
	// Unclassified lists codes whose class could not be determined; they are kept out of Summary.
	Unclassified []string `json:"unclassified"`
}

// IncomeSignConvention selects how income and expense totals are signed.
type IncomeSignConvention string

const (
	// SignDebitMinusCredit applies debit-credit to income and expense alike,
	// which leaves credit-normal income negative.
	SignDebitMinusCredit IncomeSignConvention = "debit_minus_credit"
	// SignNatural reports each class on its natural side (income as credit-debit).
	SignNatural IncomeSignConvention = "natural"
)

// DefaultIncomeSignConvention is the convention applied when none is configured.
const DefaultIncomeSignConvention = SignDebitMinusCredit

// IncomeStatement summarises income and expense activity.
type IncomeStatement struct {
	TotalIncome  decimal.Decimal      `json:"totalIncome"`
	TotalExpense decimal.Decimal      `json:"totalExpense"`
	NetIncome    decimal.Decimal      `json:"netIncome"` // TotalIncome - TotalExpense
	Convention   IncomeSignConvention `json:"convention"`
}

// ListedLine is a posting line expanded for display.
type ListedLine struct {
	PostingLine
	AccountName string `json:"accountName"`
}

// ListedEntry is a journal entry with its display lines.
type ListedEntry struct {
	Entry JournalEntry `json:"entry"`
	Lines []ListedLine `json:"lines"`
}

// JournalListing is the chronological list of filtered entries.
type JournalListing struct {
	Entries []ListedEntry `json:"entries"`
}

// Row returns the row for an account code.
func (tb TrialBalance) Row(code string) (TrialBalanceRow, bool) {
	for _, r := range tb.Rows {
		if r.Code == code {
			return r, true
		}
	}
	return TrialBalanceRow{}, false
}
