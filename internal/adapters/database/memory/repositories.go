// Package memory provides in-process implementations of the repository ports.
// They back the memory storage backend and the service tests.
package memory

import portsrepo "github.com/SscSPs/property_ledger/internal/core/ports/repositories"

// NewRepositoryProvider wires fresh in-memory repositories.
func NewRepositoryProvider() portsrepo.RepositoryProvider {
	return portsrepo.RepositoryProvider{
		AccountRepo: NewAccountRepository(),
		JournalRepo: NewJournalRepository(),
		PeriodRepo:  NewPeriodRepository(),
		PartyRepo:   NewPartyRepository(),
	}
}
