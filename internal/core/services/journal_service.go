package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/SscSPs/property_ledger/internal/apperrors"
	"github.com/SscSPs/property_ledger/internal/core/domain"
	portsrepo "github.com/SscSPs/property_ledger/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/property_ledger/internal/core/ports/services"
	"github.com/SscSPs/property_ledger/internal/dto"
	"github.com/SscSPs/property_ledger/internal/utils/accounting"
	"github.com/SscSPs/property_ledger/internal/utils/pagination"
)

const (
	defaultJournalPageSize = 20
	maxJournalPageSize     = 100
)

// journalService admits entries into the posting store. Admission is a single
// critical section: the chart snapshot, validation and append happen under mu,
// so entry numbers follow admission order.
type journalService struct {
	BaseService
	journalRepo portsrepo.JournalRepositoryFacade
	accountRepo portsrepo.AccountReader
	periodRepo  portsrepo.PeriodRepositoryFacade
	partyRepo   portsrepo.PartyRepositoryFacade
	cache       LedgerCache
	minorUnits  int32
	now         func() time.Time

	mu sync.Mutex
}

// JournalServiceOption is a functional option for configuring the journal service
type JournalServiceOption func(*journalService)

// WithPeriodRepository enables the closed-period check and period tagging.
func WithPeriodRepository(repo portsrepo.PeriodRepositoryFacade) JournalServiceOption {
	return func(s *journalService) {
		s.periodRepo = repo
	}
}

// WithPartyRepository makes admission reject lines naming unknown parties.
func WithPartyRepository(repo portsrepo.PartyRepositoryFacade) JournalServiceOption {
	return func(s *journalService) {
		s.partyRepo = repo
	}
}

// WithJournalCache bumps the report cache version after every admission.
func WithJournalCache(cache LedgerCache) JournalServiceOption {
	return func(s *journalService) {
		s.cache = cache
	}
}

// WithMinorUnits sets the number of decimals amounts are rounded to before the balance check.
func WithMinorUnits(units int32) JournalServiceOption {
	return func(s *journalService) {
		s.minorUnits = units
	}
}

// WithClock overrides the time source used for audit fields.
func WithClock(now func() time.Time) JournalServiceOption {
	return func(s *journalService) {
		s.now = now
	}
}

// NewJournalService creates a new JournalService.
func NewJournalService(journalRepo portsrepo.JournalRepositoryFacade, accountRepo portsrepo.AccountReader, options ...JournalServiceOption) portssvc.JournalSvcFacade {
	svc := &journalService{
		journalRepo: journalRepo,
		accountRepo: accountRepo,
		minorUnits:  accounting.DefaultMinorUnits,
		now:         func() time.Time { return time.Now().UTC() },
	}
	for _, option := range options {
		option(svc)
	}
	return svc
}

var _ portssvc.JournalSvcFacade = (*journalService)(nil)

// CreateEntry validates the proposed entry against the current chart and appends it.
func (s *journalService) CreateEntry(ctx context.Context, req dto.CreateJournalEntryRequest, userID string) (*domain.JournalEntry, error) {
	proposed, err := req.ToProposedEntry()
	if err != nil {
		return nil, err
	}
	parsed := accounting.ParseEntry(proposed, s.minorUnits)

	s.mu.Lock()
	defer s.mu.Unlock()

	accounts, err := s.accountRepo.ListAccounts(ctx)
	if err != nil {
		s.LogError(ctx, err, "Failed to load chart of accounts")
		return nil, fmt.Errorf("failed to load chart of accounts: %w", err)
	}

	validated, err := parsed.Validate(accounting.IndexChart(accounts))
	if err != nil {
		if le, ok := apperrors.AsLedgerError(err); ok {
			s.LogWarn(ctx, err, "Journal entry rejected",
				slog.String("kind", string(le.Kind)),
				slog.Any("account_codes", le.Codes))
		}
		return nil, err
	}

	if err := s.checkParties(ctx, validated.Lines); err != nil {
		return nil, err
	}

	return s.appendLocked(ctx, validated, userID)
}

// ReverseEntry appends the offsetting entry of an admitted one, dated today.
func (s *journalService) ReverseEntry(ctx context.Context, entryID string, userID string) (*domain.JournalEntry, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	original, err := s.journalRepo.FindEntryByID(ctx, entryID)
	if err != nil {
		return nil, err
	}

	// Reversing a reversal, or reversing twice, is allowed: each is just another balanced entry.
	reversal := original.Reversal(domain.TruncateToDate(s.now()), fmt.Sprintf("Reversal of #%d", original.EntryNumber))
	reversed, err := s.appendLocked(ctx, reversal, userID)
	if err != nil {
		return nil, err
	}

	s.LogInfo(ctx, "Journal entry reversed",
		slog.String("entry_id", entryID),
		slog.String("reversal_entry_id", reversed.ID))
	return reversed, nil
}

// appendLocked applies the period policy, stamps identity and audit data, and
// appends. Callers must hold s.mu.
func (s *journalService) appendLocked(ctx context.Context, entry domain.JournalEntry, userID string) (*domain.JournalEntry, error) {
	if s.periodRepo != nil {
		period, err := s.periodRepo.FindPeriodForDate(ctx, entry.Date)
		switch {
		case errors.Is(err, apperrors.ErrNotFound):
			// No period defined for the date; admitted untagged
		case err != nil:
			s.LogError(ctx, err, "Failed to resolve accounting period", slog.String("date", entry.Date.Format(domain.DateLayout)))
			return nil, fmt.Errorf("failed to resolve accounting period: %w", err)
		case period.State == domain.PeriodClosed:
			return nil, fmt.Errorf("%w: %s", apperrors.ErrPeriodClosed, period.Name)
		default:
			entry.PeriodID = period.ID
		}
	}

	entry.ID = uuid.NewString()
	entry.AuditFields = newAuditFields(userID, s.now())

	appended, err := s.journalRepo.AppendEntry(ctx, entry)
	if err != nil {
		s.LogError(ctx, err, "Failed to append journal entry", slog.String("entry_id", entry.ID))
		return nil, err
	}

	if s.cache != nil {
		if err := s.cache.Bump(ctx); err != nil {
			s.LogError(ctx, err, "Failed to invalidate report cache", slog.String("entry_id", appended.ID))
		}
	}

	s.LogInfo(ctx, "Journal entry admitted",
		slog.String("entry_id", appended.ID),
		slog.Int64("entry_number", appended.EntryNumber),
		slog.String("total", appended.TotalDebit.String()))
	return &appended, nil
}

func (s *journalService) checkParties(ctx context.Context, lines []domain.PostingLine) error {
	if s.partyRepo == nil {
		return nil
	}
	seen := make(map[string]bool)
	var missing []string
	for _, l := range lines {
		if l.PartyID == "" || seen[l.PartyID] {
			continue
		}
		seen[l.PartyID] = true
		party, err := s.partyRepo.FindPartyByID(ctx, l.PartyID)
		if errors.Is(err, apperrors.ErrNotFound) || (err == nil && !party.Active) {
			missing = append(missing, l.PartyID)
			continue
		}
		if err != nil {
			return fmt.Errorf("failed to look up party %s: %w", l.PartyID, err)
		}
	}
	if len(missing) > 0 {
		return fmt.Errorf("%w: unknown or inactive parties: %s", apperrors.ErrValidation, strings.Join(missing, ", "))
	}
	return nil
}

func (s *journalService) GetEntry(ctx context.Context, entryID string) (*domain.JournalEntry, error) {
	entry, err := s.journalRepo.FindEntryByID(ctx, entryID)
	if err != nil {
		s.LogDebug(ctx, "Journal entry lookup failed", slog.String("entry_id", entryID), slog.String("error", err.Error()))
		return nil, err
	}
	return entry, nil
}

func (s *journalService) ListEntries(ctx context.Context, params dto.ListJournalEntriesParams) (*dto.ListJournalEntriesResponse, error) {
	limit := pagination.ClampLimit(params.Limit, defaultJournalPageSize, maxJournalPageSize)

	var after int64
	if params.NextToken != nil && *params.NextToken != "" {
		n, err := pagination.DecodeEntryToken(*params.NextToken)
		if err != nil {
			return nil, fmt.Errorf("%w: invalid nextToken", apperrors.ErrValidation)
		}
		after = n
	}

	// Fetch one extra to know whether another page exists
	entries, err := s.journalRepo.ListEntries(ctx, params.Filter, after, limit+1)
	if err != nil {
		s.LogError(ctx, err, "Failed to list journal entries")
		return nil, err
	}

	resp := &dto.ListJournalEntriesResponse{Entries: make([]dto.JournalEntryResponse, 0, limit)}
	if len(entries) > limit {
		entries = entries[:limit]
		token := pagination.EncodeEntryToken(entries[len(entries)-1].EntryNumber)
		resp.NextToken = &token
	}
	for i := range entries {
		resp.Entries = append(resp.Entries, dto.ToJournalEntryResponse(&entries[i]))
	}
	return resp, nil
}

// RejectMutation answers update and delete requests: entries are append-only.
func (s *journalService) RejectMutation(ctx context.Context, entryID string) error {
	if _, err := s.journalRepo.FindEntryByID(ctx, entryID); err != nil {
		return err
	}
	s.LogInfo(ctx, "Rejected mutation of admitted journal entry", slog.String("entry_id", entryID))
	return apperrors.ErrImmutable
}
