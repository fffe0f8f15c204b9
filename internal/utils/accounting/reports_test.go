package accounting_test

import (
	"testing"
	"time"

	"github.com/SscSPs/property_ledger/internal/core/domain"
	"github.com/SscSPs/property_ledger/internal/utils/accounting"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func posted(id string, date string, lines ...domain.PostingLine) domain.JournalEntry {
	d, err := time.Parse(domain.DateLayout, date)
	if err != nil {
		panic(err)
	}
	debit, credit := accounting.SumLines(lines)
	return domain.JournalEntry{ID: id, Date: d, Lines: lines, TotalDebit: debit, TotalCredit: credit}
}

func dr(code, amount string) domain.PostingLine {
	return domain.PostingLine{AccountCode: code, DebitAmount: dec(amount), CreditAmount: decimal.Zero}
}

func cr(code, amount string) domain.PostingLine {
	return domain.PostingLine{AccountCode: code, DebitAmount: decimal.Zero, CreditAmount: dec(amount)}
}

func withParty(l domain.PostingLine, partyID string) domain.PostingLine {
	l.PartyID = partyID
	return l
}

func assertDec(t *testing.T, want string, got decimal.Decimal) {
	t.Helper()
	assert.True(t, dec(want).Equal(got), "want %s, got %s", want, got)
}

func TestComputeTrialBalance_CashAgainstPayable(t *testing.T) {
	chart := testChart()
	entries := []domain.JournalEntry{posted("e1", "2024-01-10", dr("1105", "100.00"), cr("2205", "100.00"))}

	tb := accounting.ComputeTrialBalance(chart, entries, domain.EntryFilter{})

	cash, ok := tb.Row("1105")
	require.True(t, ok)
	assertDec(t, "100", cash.Debit)
	assertDec(t, "0", cash.Credit)
	assertDec(t, "100", cash.Balance)

	payable, ok := tb.Row("2205")
	require.True(t, ok)
	assertDec(t, "0", payable.Debit)
	assertDec(t, "100", payable.Credit)
	assertDec(t, "-100", payable.Balance)

	assertDec(t, "100", tb.TotalDebit)
	assertDec(t, "100", tb.TotalCredit)
}

func TestComputeTrialBalance_Completeness(t *testing.T) {
	chart := testChart()
	active := 0
	for _, acc := range chart.Accounts() {
		if acc.Active {
			active++
		}
	}

	tb := accounting.ComputeTrialBalance(chart, nil, domain.EntryFilter{})
	assert.Len(t, tb.Rows, active)

	// rows follow chart order
	codes := make([]string, 0, len(tb.Rows))
	for _, r := range tb.Rows {
		codes = append(codes, r.Code)
		assertDec(t, "0", r.Balance)
	}
	assert.Equal(t, []string{"1105", "1305", "2205", "4170", "5135"}, codes)
}

func TestComputeTrialBalance_InactiveAccountWithHistory(t *testing.T) {
	chart := testChart()
	entries := []domain.JournalEntry{posted("e1", "2024-01-10", dr("1110", "40"), cr("4170", "40"))}

	tb := accounting.ComputeTrialBalance(chart, entries, domain.EntryFilter{})
	row, ok := tb.Row("1110")
	require.True(t, ok, "postings to a deactivated account stay visible")
	assertDec(t, "40", row.Balance)
}

func TestComputeTrialBalance_Filters(t *testing.T) {
	chart := testChart()
	entries := []domain.JournalEntry{
		posted("e1", "2024-01-10", dr("1105", "100"), cr("4170", "100")),
		posted("e2", "2024-02-10", dr("5135", "30"), withParty(cr("2205", "30"), "supplier-1")),
		posted("e3", "2024-03-10", dr("1105", "10"), cr("4170", "10")),
	}

	from, _ := time.Parse(domain.DateLayout, "2024-02-01")
	to, _ := time.Parse(domain.DateLayout, "2024-03-10")

	tb := accounting.ComputeTrialBalance(chart, entries, domain.EntryFilter{DateFrom: &from, DateTo: &to})
	cash, _ := tb.Row("1105")
	assertDec(t, "10", cash.Debit)

	tb = accounting.ComputeTrialBalance(chart, entries, domain.EntryFilter{AccountCode: "4170"})
	require.Len(t, tb.Rows, 1)
	assertDec(t, "110", tb.Rows[0].Credit)

	tb = accounting.ComputeTrialBalance(chart, entries, domain.EntryFilter{PartyID: "supplier-1"})
	expense, _ := tb.Row("5135")
	assertDec(t, "30", expense.Debit) // party matches the entry, not only its own line
	cash, _ = tb.Row("1105")
	assertDec(t, "0", cash.Debit)
}

func TestComputeBalanceSheet(t *testing.T) {
	chart := accounting.IndexChart([]domain.Account{
		{Code: "1105", Name: "Caja", Active: true},
		{Code: "2205", Name: "Proveedores", Active: true},
		{Code: "3105", Name: "Capital", Active: true},
		{Code: "8105", Name: "Cuentas de orden", Active: true},
	})
	entries := []domain.JournalEntry{posted("e1", "2024-01-10", dr("1105", "100"), cr("2205", "100"))}

	bs := accounting.ComputeBalanceSheet(chart, entries, domain.EntryFilter{})

	assertDec(t, "100", bs.Summary.Asset)
	assertDec(t, "-100", bs.Summary.Liability)
	assertDec(t, "0", bs.Summary.Equity)
	assert.Len(t, bs.Detail, 4)
	assert.Equal(t, []string{"8105"}, bs.Unclassified)
}

func TestComputeIncomeStatement(t *testing.T) {
	chart := testChart()
	entries := []domain.JournalEntry{
		posted("e1", "2024-01-10", dr("1105", "500"), cr("4170", "500")),
		posted("e2", "2024-01-11", dr("5135", "200"), cr("1105", "200")),
	}

	observed := accounting.ComputeIncomeStatement(chart, entries, domain.EntryFilter{}, domain.SignDebitMinusCredit)
	assertDec(t, "-500", observed.TotalIncome)
	assertDec(t, "200", observed.TotalExpense)
	assertDec(t, "-700", observed.NetIncome)
	assert.Equal(t, domain.SignDebitMinusCredit, observed.Convention)

	natural := accounting.ComputeIncomeStatement(chart, entries, domain.EntryFilter{}, domain.SignNatural)
	assertDec(t, "500", natural.TotalIncome)
	assertDec(t, "200", natural.TotalExpense)
	assertDec(t, "300", natural.NetIncome)

	defaulted := accounting.ComputeIncomeStatement(chart, entries, domain.EntryFilter{}, "")
	assert.Equal(t, domain.DefaultIncomeSignConvention, defaulted.Convention)
}

func TestComputeJournalListing_AccountFilter(t *testing.T) {
	chart := testChart()
	entries := []domain.JournalEntry{
		posted("e1", "2024-01-10", dr("1105", "100"), cr("2205", "100")),
		posted("e2", "2024-01-11", dr("5135", "20"), cr("2205", "20")),
	}

	listing := accounting.ComputeJournalListing(chart, entries, domain.EntryFilter{AccountCode: "1105"})

	require.Len(t, listing.Entries, 1)
	assert.Equal(t, "e1", listing.Entries[0].Entry.ID)
	require.Len(t, listing.Entries[0].Lines, 2)
	assert.Equal(t, "Caja", listing.Entries[0].Lines[0].AccountName)
	assert.Equal(t, "Proveedores", listing.Entries[0].Lines[1].AccountName)
}

func TestReports_AreDeterministic(t *testing.T) {
	chart := testChart()
	entries := []domain.JournalEntry{
		posted("e1", "2024-01-10", dr("1105", "100"), cr("4170", "100")),
		posted("e2", "2024-01-11", dr("5135", "20"), cr("2205", "20")),
	}
	filter := domain.EntryFilter{AccountCode: "1105"}

	assert.Equal(t, accounting.ComputeTrialBalance(chart, entries, filter), accounting.ComputeTrialBalance(chart, entries, filter))
	assert.Equal(t, accounting.ComputeBalanceSheet(chart, entries, filter), accounting.ComputeBalanceSheet(chart, entries, filter))
	assert.Equal(t,
		accounting.ComputeIncomeStatement(chart, entries, filter, domain.SignNatural),
		accounting.ComputeIncomeStatement(chart, entries, filter, domain.SignNatural))
	assert.Equal(t, accounting.ComputeJournalListing(chart, entries, filter), accounting.ComputeJournalListing(chart, entries, filter))
}
