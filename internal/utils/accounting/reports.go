package accounting

import (
	"github.com/SscSPs/property_ledger/internal/core/domain"
	"github.com/shopspring/decimal"
)

type accountTotals struct {
	debit  decimal.Decimal
	credit decimal.Decimal
}

// aggregate sums debit and credit per account code over the entries that match the filter.
// Lines to codes missing from the chart are ignored.
func aggregate(chart ChartIndex, entries []domain.JournalEntry, filter domain.EntryFilter) []domain.TrialBalanceRow {
	totals := make(map[string]*accountTotals, chart.Len())
	for _, e := range entries {
		if !filter.Matches(e) {
			continue
		}
		for _, l := range e.Lines {
			t, ok := totals[l.AccountCode]
			if !ok {
				t = &accountTotals{debit: decimal.Zero, credit: decimal.Zero}
				totals[l.AccountCode] = t
			}
			t.debit = t.debit.Add(l.DebitAmount)
			t.credit = t.credit.Add(l.CreditAmount)
		}
	}

	rows := make([]domain.TrialBalanceRow, 0, chart.Len())
	for _, acc := range chart.Accounts() {
		if filter.AccountCode != "" && acc.Code != filter.AccountCode {
			continue
		}
		t, hasActivity := totals[acc.Code]
		// inactive accounts stay visible only while they carry postings in range
		if !acc.Active && !hasActivity {
			continue
		}
		row := domain.TrialBalanceRow{
			Code:    acc.Code,
			Name:    acc.Name,
			Class:   acc.Class(),
			Debit:   decimal.Zero,
			Credit:  decimal.Zero,
			Balance: decimal.Zero,
		}
		if hasActivity {
			row.Debit = t.debit
			row.Credit = t.credit
			row.Balance = t.debit.Sub(t.credit)
		}
		rows = append(rows, row)
	}
	return rows
}

// ComputeTrialBalance returns one row per active account (or only filter.AccountCode)
// in chart order, with balance = debit - credit. Accounts without activity report zeros.
func ComputeTrialBalance(chart ChartIndex, entries []domain.JournalEntry, filter domain.EntryFilter) domain.TrialBalance {
	rows := aggregate(chart, entries, filter)
	tb := domain.TrialBalance{
		Rows:        rows,
		TotalDebit:  decimal.Zero,
		TotalCredit: decimal.Zero,
	}
	for _, r := range rows {
		tb.TotalDebit = tb.TotalDebit.Add(r.Debit)
		tb.TotalCredit = tb.TotalCredit.Add(r.Credit)
	}
	return tb
}

// ComputeBalanceSheet groups per-account balances into Asset, Liability and Equity.
// Accounts of class Other are listed in Unclassified instead of being dropped silently.
func ComputeBalanceSheet(chart ChartIndex, entries []domain.JournalEntry, filter domain.EntryFilter) domain.BalanceSheet {
	rows := aggregate(chart, entries, filter)
	bs := domain.BalanceSheet{
		Summary: domain.BalanceSheetSummary{
			Asset:     decimal.Zero,
			Liability: decimal.Zero,
			Equity:    decimal.Zero,
		},
		Detail:       rows,
		Unclassified: []string{},
	}
	for _, r := range rows {
		switch r.Class {
		case domain.Asset:
			bs.Summary.Asset = bs.Summary.Asset.Add(r.Balance)
		case domain.Liability:
			bs.Summary.Liability = bs.Summary.Liability.Add(r.Balance)
		case domain.Equity:
			bs.Summary.Equity = bs.Summary.Equity.Add(r.Balance)
		case domain.Other:
			bs.Unclassified = append(bs.Unclassified, r.Code)
		}
	}
	return bs
}

// ComputeIncomeStatement sums debit - credit over Income and Expense accounts and
// returns netIncome = totalIncome - totalExpense. With SignNatural the income total
// is negated so that credit-normal income reads positive.
func ComputeIncomeStatement(chart ChartIndex, entries []domain.JournalEntry, filter domain.EntryFilter, convention domain.IncomeSignConvention) domain.IncomeStatement {
	if convention == "" {
		convention = domain.DefaultIncomeSignConvention
	}
	income, expense := decimal.Zero, decimal.Zero
	for _, r := range aggregate(chart, entries, filter) {
		switch r.Class {
		case domain.Income:
			income = income.Add(r.Balance)
		case domain.Expense:
			expense = expense.Add(r.Balance)
		}
	}
	if convention == domain.SignNatural {
		income = income.Neg()
	}
	return domain.IncomeStatement{
		TotalIncome:  income,
		TotalExpense: expense,
		NetIncome:    income.Sub(expense),
		Convention:   convention,
	}
}

// ComputeJournalListing returns the matching entries in insertion order, each
// expanded into its lines with the account name attached.
func ComputeJournalListing(chart ChartIndex, entries []domain.JournalEntry, filter domain.EntryFilter) domain.JournalListing {
	listing := domain.JournalListing{Entries: []domain.ListedEntry{}}
	for _, e := range entries {
		if !filter.Matches(e) {
			continue
		}
		lines := make([]domain.ListedLine, len(e.Lines))
		for i, l := range e.Lines {
			acc, _ := chart.Lookup(l.AccountCode)
			lines[i] = domain.ListedLine{PostingLine: l, AccountName: acc.Name}
		}
		listing.Entries = append(listing.Entries, domain.ListedEntry{Entry: e, Lines: lines})
	}
	return listing
}
