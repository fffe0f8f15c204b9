package pgsql

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/SscSPs/property_ledger/internal/apperrors"
	"github.com/SscSPs/property_ledger/internal/core/domain"
	portsrepo "github.com/SscSPs/property_ledger/internal/core/ports/repositories"
)

const accountColumns = `code, name, class_name, level, is_debit_normal, tracks_counterparty, is_active,
	created_at, created_by, last_updated_at, last_updated_by`

// PgxAccountRepository stores the chart of accounts in PostgreSQL.
type PgxAccountRepository struct {
	BaseRepository
}

// NewPgxAccountRepository creates a new repository for account data.
func NewPgxAccountRepository(pool *pgxpool.Pool) *PgxAccountRepository {
	return &PgxAccountRepository{BaseRepository: NewBaseRepository(pool)}
}

var _ portsrepo.AccountRepositoryFacade = (*PgxAccountRepository)(nil)

// SaveAccount inserts a new account. An existing code maps to ErrDuplicate.
func (r *PgxAccountRepository) SaveAccount(ctx context.Context, account domain.Account) error {
	query := `
		INSERT INTO accounts (` + accountColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11);
	`
	_, err := r.Pool.Exec(ctx, query,
		account.Code,
		account.Name,
		account.ClassName,
		account.Level,
		account.IsDebitNormal,
		account.TracksCounterparty,
		account.Active,
		account.CreatedAt,
		account.CreatedBy,
		account.LastUpdatedAt,
		account.LastUpdatedBy,
	)
	return translate(err, "failed to save account %s", account.Code)
}

// UpdateAccount rewrites the mutable attributes of an account.
func (r *PgxAccountRepository) UpdateAccount(ctx context.Context, account domain.Account) error {
	query := `
		UPDATE accounts
		SET name = $2, class_name = $3, tracks_counterparty = $4, is_active = $5,
			last_updated_at = $6, last_updated_by = $7
		WHERE code = $1;
	`
	tag, err := r.Pool.Exec(ctx, query,
		account.Code,
		account.Name,
		account.ClassName,
		account.TracksCounterparty,
		account.Active,
		account.LastUpdatedAt,
		account.LastUpdatedBy,
	)
	if err != nil {
		return translate(err, "failed to update account %s", account.Code)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("account %s: %w", account.Code, apperrors.ErrNotFound)
	}
	return nil
}

// FindAccountByCode retrieves an account by its code.
func (r *PgxAccountRepository) FindAccountByCode(ctx context.Context, code string) (*domain.Account, error) {
	query := `SELECT ` + accountColumns + ` FROM accounts WHERE code = $1;`
	acc, err := scanAccount(r.Pool.QueryRow(ctx, query, code))
	if err != nil {
		return nil, translate(err, "failed to find account %s", code)
	}
	return &acc, nil
}

// ListAccounts returns the whole chart, ordered by code so parents precede children.
func (r *PgxAccountRepository) ListAccounts(ctx context.Context) ([]domain.Account, error) {
	query := `SELECT ` + accountColumns + ` FROM accounts ORDER BY code;`
	rows, err := r.Pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to query accounts: %w", err)
	}
	defer rows.Close()

	accounts := []domain.Account{}
	for rows.Next() {
		acc, err := scanAccount(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan account row: %w", err)
		}
		accounts = append(accounts, acc)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating account rows: %w", err)
	}
	return accounts, nil
}

func scanAccount(row pgx.Row) (domain.Account, error) {
	var acc domain.Account
	err := row.Scan(
		&acc.Code,
		&acc.Name,
		&acc.ClassName,
		&acc.Level,
		&acc.IsDebitNormal,
		&acc.TracksCounterparty,
		&acc.Active,
		&acc.CreatedAt,
		&acc.CreatedBy,
		&acc.LastUpdatedAt,
		&acc.LastUpdatedBy,
	)
	return acc, err
}
