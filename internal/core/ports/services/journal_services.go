package services

import (
	"context"

	"github.com/SscSPs/property_ledger/internal/core/domain"
	"github.com/SscSPs/property_ledger/internal/dto"
)

// JournalReaderSvc defines read operations on admitted journal entries
type JournalReaderSvc interface {
	// GetEntry retrieves an admitted entry by its ID.
	GetEntry(ctx context.Context, entryID string) (*domain.JournalEntry, error)

	// ListEntries returns a page of entries matching the filter, in insertion order.
	ListEntries(ctx context.Context, params dto.ListJournalEntriesParams) (*dto.ListJournalEntriesResponse, error)
}

// JournalWriterSvc defines the admission side of the ledger
type JournalWriterSvc interface {
	// CreateEntry validates a proposed entry against the chart and appends it.
	CreateEntry(ctx context.Context, req dto.CreateJournalEntryRequest, userID string) (*domain.JournalEntry, error)

	// ReverseEntry appends an entry that offsets an admitted one.
	ReverseEntry(ctx context.Context, entryID string, userID string) (*domain.JournalEntry, error)

	// RejectMutation returns ErrNotFound for unknown entries and ErrImmutable otherwise.
	RejectMutation(ctx context.Context, entryID string) error
}

// JournalSvcFacade combines all journal-related service interfaces
type JournalSvcFacade interface {
	JournalReaderSvc
	JournalWriterSvc
}
