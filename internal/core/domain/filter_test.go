package domain_test

import (
	"testing"
	"time"

	"github.com/SscSPs/property_ledger/internal/core/domain"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func day(s string) time.Time {
	t, err := time.Parse(domain.DateLayout, s)
	if err != nil {
		panic(err)
	}
	return t
}

func TestEntryFilter_Matches(t *testing.T) {
	entry := domain.JournalEntry{
		Date: day("2024-03-15"),
		Lines: []domain.PostingLine{
			{AccountCode: "1105", DebitAmount: decimal.NewFromInt(100)},
			{AccountCode: "2205", PartyID: "p-1", CreditAmount: decimal.NewFromInt(100)},
		},
	}
	from, to := day("2024-03-15"), day("2024-03-15")
	later := day("2024-03-16")

	tests := []struct {
		name   string
		filter domain.EntryFilter
		want   bool
	}{
		{name: "empty filter", filter: domain.EntryFilter{}, want: true},
		{name: "inclusive bounds", filter: domain.EntryFilter{DateFrom: &from, DateTo: &to}, want: true},
		{name: "before range", filter: domain.EntryFilter{DateFrom: &later}, want: false},
		{name: "account on a line", filter: domain.EntryFilter{AccountCode: "2205"}, want: true},
		{name: "account absent", filter: domain.EntryFilter{AccountCode: "4170"}, want: false},
		{name: "party on any line", filter: domain.EntryFilter{PartyID: "p-1"}, want: true},
		{name: "party absent", filter: domain.EntryFilter{PartyID: "p-2"}, want: false},
		{name: "conjunction fails on one predicate", filter: domain.EntryFilter{AccountCode: "1105", PartyID: "p-2"}, want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.filter.Matches(entry))
		})
	}
}

func TestEntryFilter_Validate(t *testing.T) {
	from, to := day("2024-03-16"), day("2024-03-15")
	assert.Error(t, domain.EntryFilter{DateFrom: &from, DateTo: &to}.Validate())
	assert.NoError(t, domain.EntryFilter{DateFrom: &to, DateTo: &from}.Validate())
	assert.NoError(t, domain.EntryFilter{}.Validate())
}

func TestEntryFilter_CacheKey(t *testing.T) {
	from := day("2024-03-01")
	assert.Equal(t, `"2024-03-01"|""|"1105"|"p1"`, domain.EntryFilter{DateFrom: &from, AccountCode: "1105", PartyID: "p1"}.CacheKey())

	// separators inside values must not make distinct filters collide
	a := domain.EntryFilter{AccountCode: "1105|p1"}
	b := domain.EntryFilter{AccountCode: "1105", PartyID: "p1|"}
	assert.NotEqual(t, a.CacheKey(), b.CacheKey())
	assert.NotEqual(t, domain.EntryFilter{AccountCode: `a"|"b`}.CacheKey(), domain.EntryFilter{AccountCode: "a", PartyID: "b"}.CacheKey())
}

func TestJournalEntry_Reversal(t *testing.T) {
	original := domain.JournalEntry{
		ID:          "e-1",
		TotalDebit:  decimal.NewFromInt(50),
		TotalCredit: decimal.NewFromInt(50),
		Lines: []domain.PostingLine{
			{LineNo: 1, AccountCode: "1105", DebitAmount: decimal.NewFromInt(50), CreditAmount: decimal.Zero},
			{LineNo: 2, AccountCode: "4170", DebitAmount: decimal.Zero, CreditAmount: decimal.NewFromInt(50)},
		},
	}

	rev := original.Reversal(day("2024-04-01"), "Reversal of #1")

	assert.Equal(t, "e-1", rev.ReversesEntryID)
	assert.Equal(t, domain.EntryTypeAdjustment, rev.EntryType)
	assert.True(t, rev.Lines[0].CreditAmount.Equal(decimal.NewFromInt(50)))
	assert.True(t, rev.Lines[1].DebitAmount.Equal(decimal.NewFromInt(50)))
	assert.True(t, rev.TotalDebit.Equal(rev.TotalCredit))
}
