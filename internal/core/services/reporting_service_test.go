package services_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/SscSPs/property_ledger/internal/adapters/database/memory"
	"github.com/SscSPs/property_ledger/internal/apperrors"
	"github.com/SscSPs/property_ledger/internal/core/domain"
	"github.com/SscSPs/property_ledger/internal/core/services"
	"github.com/SscSPs/property_ledger/internal/platform/cache"
	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type ledgerFixture struct {
	accounts *memory.AccountRepository
	journal  *memory.JournalRepository
}

func newLedgerFixture(t *testing.T) ledgerFixture {
	t.Helper()
	f := ledgerFixture{accounts: memory.NewAccountRepository(), journal: memory.NewJournalRepository()}
	seedChart(t, f.accounts)
	return f
}

func TestReportingService_RentAndUtilities(t *testing.T) {
	ctx := context.Background()
	f := newLedgerFixture(t)
	journal := services.NewJournalService(f.journal, f.accounts)
	reports := services.NewReportingService(f.accounts, f.journal)

	_, err := journal.CreateEntry(ctx, entryRequest("2024-03-05", lineReq("1105", "1500000", ""), lineReq("4170", "", "1500000")), testUser)
	require.NoError(t, err)
	_, err = journal.CreateEntry(ctx, entryRequest("2024-03-20", lineReq("5135", "200000", ""), lineReq("1105", "", "200000")), testUser)
	require.NoError(t, err)

	tb, err := reports.TrialBalance(ctx, domain.EntryFilter{})
	require.NoError(t, err)
	assert.True(t, tb.TotalDebit.Equal(tb.TotalCredit))
	cash, ok := tb.Row("1105")
	require.True(t, ok)
	assert.Equal(t, "1300000", cash.Balance.String())
	_, ok = tb.Row("1110")
	assert.False(t, ok, "inactive account without activity is not listed")

	is, err := reports.IncomeStatement(ctx, domain.EntryFilter{})
	require.NoError(t, err)
	assert.Equal(t, "-1500000", is.TotalIncome.String())
	assert.Equal(t, "200000", is.TotalExpense.String())
	assert.Equal(t, "-1700000", is.NetIncome.String())

	bs, err := reports.BalanceSheet(ctx, domain.EntryFilter{})
	require.NoError(t, err)
	assert.Equal(t, "1300000", bs.Summary.Asset.String())

	from := time.Date(2024, 3, 10, 0, 0, 0, 0, time.UTC)
	listing, err := reports.JournalListing(ctx, domain.EntryFilter{DateFrom: &from})
	require.NoError(t, err)
	require.Len(t, listing.Entries, 1)
	assert.Equal(t, "Servicios", listing.Entries[0].Lines[0].AccountName)
}

func TestReportingService_NaturalSignConvention(t *testing.T) {
	ctx := context.Background()
	f := newLedgerFixture(t)
	journal := services.NewJournalService(f.journal, f.accounts)
	reports := services.NewReportingService(f.accounts, f.journal, services.WithIncomeSignConvention(domain.SignNatural))

	_, err := journal.CreateEntry(ctx, entryRequest("2024-03-05", lineReq("1105", "100", ""), lineReq("4170", "", "100")), testUser)
	require.NoError(t, err)

	is, err := reports.IncomeStatement(ctx, domain.EntryFilter{})
	require.NoError(t, err)
	assert.Equal(t, "100", is.TotalIncome.String())
	assert.Equal(t, "100", is.NetIncome.String())
	assert.Equal(t, domain.SignNatural, is.Convention)
}

func TestReportingService_InvertedRange(t *testing.T) {
	f := newLedgerFixture(t)
	reports := services.NewReportingService(f.accounts, f.journal)

	from := time.Date(2024, 4, 1, 0, 0, 0, 0, time.UTC)
	to := time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)
	_, err := reports.TrialBalance(context.Background(), domain.EntryFilter{DateFrom: &from, DateTo: &to})
	assert.ErrorIs(t, err, apperrors.ErrValidation)
}

func TestReportingService_CacheInvalidatedByAdmission(t *testing.T) {
	ctx := context.Background()
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = client.Close() })
	reportCache := cache.NewReportCache(client, time.Minute)

	f := newLedgerFixture(t)
	journal := services.NewJournalService(f.journal, f.accounts, services.WithJournalCache(reportCache))
	reports := services.NewReportingService(f.accounts, f.journal, services.WithReportCache(reportCache))

	_, err := journal.CreateEntry(ctx, entryRequest("2024-03-05", lineReq("1105", "100", ""), lineReq("4170", "", "100")), testUser)
	require.NoError(t, err)

	first, err := reports.TrialBalance(ctx, domain.EntryFilter{})
	require.NoError(t, err)
	assert.Equal(t, "100", first.TotalDebit.String())

	_, err = journal.CreateEntry(ctx, entryRequest("2024-03-06", lineReq("1105", "50", ""), lineReq("4170", "", "50")), testUser)
	require.NoError(t, err)

	second, err := reports.TrialBalance(ctx, domain.EntryFilter{})
	require.NoError(t, err)
	assert.Equal(t, "150", second.TotalDebit.String())
}

type failingJournal struct {
	*memory.JournalRepository
}

func (failingJournal) QueryEntries(context.Context, domain.EntryFilter) ([]domain.JournalEntry, error) {
	return nil, errors.New("connection reset")
}

func TestReportingService_LoadFailure(t *testing.T) {
	f := newLedgerFixture(t)
	reports := services.NewReportingService(f.accounts, failingJournal{f.journal})

	_, err := reports.BalanceSheet(context.Background(), domain.EntryFilter{})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "connection reset")
}
