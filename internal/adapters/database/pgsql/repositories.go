// Package pgsql implements the repository ports on PostgreSQL through pgx.
package pgsql

import (
	"github.com/jackc/pgx/v5/pgxpool"

	portsrepo "github.com/SscSPs/property_ledger/internal/core/ports/repositories"
)

// NewRepositoryProvider wires every PostgreSQL repository onto one pool.
func NewRepositoryProvider(pool *pgxpool.Pool) portsrepo.RepositoryProvider {
	return portsrepo.RepositoryProvider{
		AccountRepo: NewPgxAccountRepository(pool),
		JournalRepo: NewPgxJournalRepository(pool),
		PeriodRepo:  NewPgxPeriodRepository(pool),
		PartyRepo:   NewPgxPartyRepository(pool),
	}
}
