package repositories

import (
	"context"

	"github.com/SscSPs/property_ledger/internal/core/domain"
)

// AccountReader defines read operations on the chart of accounts.
type AccountReader interface {
	// FindAccountByCode retrieves an account (active or not) by its code.
	FindAccountByCode(ctx context.Context, code string) (*domain.Account, error)

	// ListAccounts returns every account, active and inactive, in chart order.
	ListAccounts(ctx context.Context) ([]domain.Account, error)
}

// AccountWriter defines write operations on the chart of accounts.
// Accounts are never physically deleted.
type AccountWriter interface {
	SaveAccount(ctx context.Context, account domain.Account) error
	UpdateAccount(ctx context.Context, account domain.Account) error
}

// AccountRepositoryFacade combines all account repository interfaces.
type AccountRepositoryFacade interface {
	AccountReader
	AccountWriter
}
