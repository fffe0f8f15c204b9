package repositories

import (
	"context"

	"github.com/SscSPs/property_ledger/internal/core/domain"
)

// JournalReader defines read operations on admitted journal entries.
type JournalReader interface {
	// FindEntryByID retrieves an entry with its lines.
	FindEntryByID(ctx context.Context, entryID string) (*domain.JournalEntry, error)

	// QueryEntries returns every entry matching all predicates of the filter, in insertion order.
	QueryEntries(ctx context.Context, filter domain.EntryFilter) ([]domain.JournalEntry, error)

	// ListEntries returns up to limit matching entries whose entry number is greater than afterEntryNumber.
	ListEntries(ctx context.Context, filter domain.EntryFilter, afterEntryNumber int64, limit int) ([]domain.JournalEntry, error)
}

// JournalWriter defines the append-only write side of the posting store.
type JournalWriter interface {
	// AppendEntry persists a validated entry and assigns the next entry number.
	// Callers must serialize appends; the returned entry carries the assigned number.
	AppendEntry(ctx context.Context, entry domain.JournalEntry) (domain.JournalEntry, error)
}

// JournalRepositoryFacade combines all journal repository interfaces.
type JournalRepositoryFacade interface {
	JournalReader
	JournalWriter
}
