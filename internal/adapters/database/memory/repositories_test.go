package memory_test

import (
	"context"
	"testing"

	"github.com/SscSPs/property_ledger/internal/adapters/database/memory"
	"github.com/SscSPs/property_ledger/internal/apperrors"
	"github.com/SscSPs/property_ledger/internal/core/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAccountRepository(t *testing.T) {
	ctx := context.Background()
	repo := memory.NewAccountRepository()

	require.NoError(t, repo.SaveAccount(ctx, domain.Account{Code: "4170", Name: "Arrendamientos", Active: true}))
	require.NoError(t, repo.SaveAccount(ctx, domain.Account{Code: "1105", Name: "Caja", Active: true}))
	assert.ErrorIs(t, repo.SaveAccount(ctx, domain.Account{Code: "1105"}), apperrors.ErrDuplicate)

	list, err := repo.ListAccounts(ctx)
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Equal(t, "1105", list[0].Code)

	acc, err := repo.FindAccountByCode(ctx, "1105")
	require.NoError(t, err)
	acc.Active = false
	require.NoError(t, repo.UpdateAccount(ctx, *acc))

	acc, err = repo.FindAccountByCode(ctx, "1105")
	require.NoError(t, err)
	assert.False(t, acc.Active)

	assert.ErrorIs(t, repo.UpdateAccount(ctx, domain.Account{Code: "9999"}), apperrors.ErrNotFound)
	_, err = repo.FindAccountByCode(ctx, "9999")
	assert.ErrorIs(t, err, apperrors.ErrNotFound)
}

func TestPeriodRepository(t *testing.T) {
	ctx := context.Background()
	repo := memory.NewPeriodRepository()

	jan := domain.AccountingPeriod{ID: "p-jan", Year: 2024, Month: 1, Start: day("2024-01-01"), Close: day("2024-02-01"), State: domain.PeriodOpen}
	feb := domain.AccountingPeriod{ID: "p-feb", Year: 2024, Month: 2, Start: day("2024-02-01"), Close: day("2024-03-01"), State: domain.PeriodOpen}
	require.NoError(t, repo.SavePeriod(ctx, feb))
	require.NoError(t, repo.SavePeriod(ctx, jan))
	assert.ErrorIs(t, repo.SavePeriod(ctx, domain.AccountingPeriod{ID: "dup", Year: 2024, Month: 1}), apperrors.ErrDuplicate)

	p, err := repo.FindPeriodForDate(ctx, day("2024-01-31"))
	require.NoError(t, err)
	assert.Equal(t, "p-jan", p.ID)

	p, err = repo.FindPeriodForDate(ctx, day("2024-02-01"))
	require.NoError(t, err)
	assert.Equal(t, "p-feb", p.ID)

	_, err = repo.FindPeriodForDate(ctx, day("2024-03-01"))
	assert.ErrorIs(t, err, apperrors.ErrNotFound)

	list, err := repo.ListPeriods(ctx)
	require.NoError(t, err)
	assert.Equal(t, "p-jan", list[0].ID)
}

func TestPartyRepository(t *testing.T) {
	ctx := context.Background()
	repo := memory.NewPartyRepository()

	require.NoError(t, repo.SaveParty(ctx, domain.Party{PartyID: "a", Kind: domain.PartyTenant, IDNumber: "100", DisplayName: "Zoe", Active: true}))
	require.NoError(t, repo.SaveParty(ctx, domain.Party{PartyID: "b", Kind: domain.PartyOwner, IDNumber: "200", DisplayName: "Ana", Active: true}))
	require.NoError(t, repo.SaveParty(ctx, domain.Party{PartyID: "c", Kind: domain.PartyTenant, IDNumber: "300", DisplayName: "Luis", Active: false}))
	assert.ErrorIs(t, repo.SaveParty(ctx, domain.Party{PartyID: "d", IDNumber: "100"}), apperrors.ErrDuplicate)

	all, err := repo.ListParties(ctx, "")
	require.NoError(t, err)
	require.Len(t, all, 2)
	assert.Equal(t, "Ana", all[0].DisplayName)

	tenants, err := repo.ListParties(ctx, domain.PartyTenant)
	require.NoError(t, err)
	require.Len(t, tenants, 1)
	assert.Equal(t, "a", tenants[0].PartyID)

	_, err = repo.FindPartyByID(ctx, "zzz")
	assert.ErrorIs(t, err, apperrors.ErrNotFound)
}
