package pgsql

import (
	"context"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/SscSPs/property_ledger/internal/apperrors"
	"github.com/SscSPs/property_ledger/internal/core/domain"
	portsrepo "github.com/SscSPs/property_ledger/internal/core/ports/repositories"
)

// journalAppendLockKey is the advisory lock that serializes entry numbering across processes.
const journalAppendLockKey int64 = 0x6c6564676572

const entryColumns = `e.entry_id, e.entry_number, e.entry_date, e.description, e.source_document,
	COALESCE(e.period_id, ''), e.entry_type, COALESCE(e.reverses_entry_id, ''), e.total_debit, e.total_credit,
	e.created_at, e.created_by, e.last_updated_at, e.last_updated_by`

// PgxJournalRepository is the append-only posting store backed by PostgreSQL.
type PgxJournalRepository struct {
	BaseRepository
}

// NewPgxJournalRepository creates a new repository for journal entries and their lines.
func NewPgxJournalRepository(pool *pgxpool.Pool) *PgxJournalRepository {
	return &PgxJournalRepository{BaseRepository: NewBaseRepository(pool)}
}

var _ portsrepo.JournalRepositoryFacade = (*PgxJournalRepository)(nil)

// AppendEntry saves an entry and its lines within a DB transaction and assigns max(entry_number)+1.
// The advisory lock makes numbering dense even with several application instances.
func (r *PgxJournalRepository) AppendEntry(ctx context.Context, entry domain.JournalEntry) (domain.JournalEntry, error) {
	if entry.ID == "" {
		return domain.JournalEntry{}, fmt.Errorf("%w: entry id is required", apperrors.ErrValidation)
	}

	tx, err := r.Pool.Begin(ctx)
	if err != nil {
		return domain.JournalEntry{}, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer func() {
		_ = tx.Rollback(ctx) // no-op after commit
	}()

	if _, err := tx.Exec(ctx, `SELECT pg_advisory_xact_lock($1);`, journalAppendLockKey); err != nil {
		return domain.JournalEntry{}, fmt.Errorf("failed to acquire journal lock: %w", err)
	}

	var next int64
	if err := tx.QueryRow(ctx, `SELECT COALESCE(MAX(entry_number), 0) + 1 FROM journal_entries;`).Scan(&next); err != nil {
		return domain.JournalEntry{}, fmt.Errorf("failed to allocate entry number: %w", err)
	}
	entry.EntryNumber = next

	entryQuery := `
		INSERT INTO journal_entries (entry_id, entry_number, entry_date, description, source_document, period_id,
			entry_type, reverses_entry_id, total_debit, total_credit, created_at, created_by, last_updated_at, last_updated_by)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14);
	`
	_, err = tx.Exec(ctx, entryQuery,
		entry.ID,
		entry.EntryNumber,
		entry.Date,
		entry.Description,
		entry.SourceDocument,
		nullable(entry.PeriodID),
		entry.EntryType,
		nullable(entry.ReversesEntryID),
		entry.TotalDebit,
		entry.TotalCredit,
		entry.CreatedAt,
		entry.CreatedBy,
		entry.LastUpdatedAt,
		entry.LastUpdatedBy,
	)
	if err != nil {
		return domain.JournalEntry{}, translate(err, "failed to insert journal entry %s", entry.ID)
	}

	batch := &pgx.Batch{}
	lineQuery := `
		INSERT INTO posting_lines (entry_id, line_no, account_code, party_id, description, debit_amount, credit_amount)
		VALUES ($1, $2, $3, $4, $5, $6, $7);
	`
	for _, l := range entry.Lines {
		batch.Queue(lineQuery,
			entry.ID,
			l.LineNo,
			l.AccountCode,
			nullable(l.PartyID),
			l.Description,
			l.DebitAmount,
			l.CreditAmount,
		)
	}
	br := tx.SendBatch(ctx, batch)
	if err := br.Close(); err != nil {
		return domain.JournalEntry{}, translate(err, "failed to insert posting lines for entry %s", entry.ID)
	}

	if err := tx.Commit(ctx); err != nil {
		return domain.JournalEntry{}, fmt.Errorf("failed to commit journal entry %s: %w", entry.ID, err)
	}
	return entry, nil
}

// FindEntryByID retrieves an entry with its lines.
func (r *PgxJournalRepository) FindEntryByID(ctx context.Context, entryID string) (*domain.JournalEntry, error) {
	query := `SELECT ` + entryColumns + ` FROM journal_entries e WHERE e.entry_id = $1;`
	entry, err := scanEntry(r.Pool.QueryRow(ctx, query, entryID))
	if err != nil {
		return nil, translate(err, "failed to find journal entry %s", entryID)
	}
	entries := []domain.JournalEntry{entry}
	if err := r.attachLines(ctx, entries); err != nil {
		return nil, err
	}
	return &entries[0], nil
}

// QueryEntries returns every entry matching the filter, in entry-number order.
func (r *PgxJournalRepository) QueryEntries(ctx context.Context, filter domain.EntryFilter) ([]domain.JournalEntry, error) {
	where, args := filterClause(filter, 0)
	query := `SELECT ` + entryColumns + ` FROM journal_entries e` + where + ` ORDER BY e.entry_number;`
	return r.queryEntries(ctx, query, args...)
}

// ListEntries returns a page of matching entries after the given entry number.
func (r *PgxJournalRepository) ListEntries(ctx context.Context, filter domain.EntryFilter, afterEntryNumber int64, limit int) ([]domain.JournalEntry, error) {
	where, args := filterClause(filter, afterEntryNumber)
	args = append(args, limit)
	query := fmt.Sprintf(`SELECT %s FROM journal_entries e%s ORDER BY e.entry_number LIMIT $%d;`, entryColumns, where, len(args))
	return r.queryEntries(ctx, query, args...)
}

func (r *PgxJournalRepository) queryEntries(ctx context.Context, query string, args ...any) ([]domain.JournalEntry, error) {
	rows, err := r.Pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query journal entries: %w", err)
	}
	defer rows.Close()

	entries := []domain.JournalEntry{}
	for rows.Next() {
		e, err := scanEntry(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan journal entry row: %w", err)
		}
		entries = append(entries, e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating journal entry rows: %w", err)
	}
	if err := r.attachLines(ctx, entries); err != nil {
		return nil, err
	}
	return entries, nil
}

// attachLines loads the posting lines of every entry with a single query.
func (r *PgxJournalRepository) attachLines(ctx context.Context, entries []domain.JournalEntry) error {
	if len(entries) == 0 {
		return nil
	}
	ids := make([]string, len(entries))
	index := make(map[string]int, len(entries))
	for i, e := range entries {
		ids[i] = e.ID
		index[e.ID] = i
		entries[i].Lines = []domain.PostingLine{}
	}

	query := `
		SELECT entry_id, line_no, account_code, COALESCE(party_id, ''), description, debit_amount, credit_amount
		FROM posting_lines
		WHERE entry_id = ANY($1)
		ORDER BY entry_id, line_no;
	`
	rows, err := r.Pool.Query(ctx, query, ids)
	if err != nil {
		return fmt.Errorf("failed to query posting lines: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var entryID string
		var l domain.PostingLine
		if err := rows.Scan(&entryID, &l.LineNo, &l.AccountCode, &l.PartyID, &l.Description, &l.DebitAmount, &l.CreditAmount); err != nil {
			return fmt.Errorf("failed to scan posting line row: %w", err)
		}
		i := index[entryID]
		entries[i].Lines = append(entries[i].Lines, l)
	}
	if err := rows.Err(); err != nil {
		return fmt.Errorf("error iterating posting line rows: %w", err)
	}
	return nil
}

// filterClause renders the filter as a WHERE clause. afterEntryNumber > 0 adds a keyset bound.
func filterClause(filter domain.EntryFilter, afterEntryNumber int64) (string, []any) {
	var conds []string
	var args []any
	add := func(cond string, arg any) {
		args = append(args, arg)
		conds = append(conds, fmt.Sprintf(cond, len(args)))
	}
	if filter.DateFrom != nil {
		add("e.entry_date >= $%d", *filter.DateFrom)
	}
	if filter.DateTo != nil {
		add("e.entry_date <= $%d", *filter.DateTo)
	}
	if filter.AccountCode != "" {
		add("EXISTS (SELECT 1 FROM posting_lines pl WHERE pl.entry_id = e.entry_id AND pl.account_code = $%d)", filter.AccountCode)
	}
	if filter.PartyID != "" {
		add("EXISTS (SELECT 1 FROM posting_lines pl WHERE pl.entry_id = e.entry_id AND pl.party_id = $%d)", filter.PartyID)
	}
	if afterEntryNumber > 0 {
		add("e.entry_number > $%d", afterEntryNumber)
	}
	if len(conds) == 0 {
		return "", args
	}
	return " WHERE " + strings.Join(conds, " AND "), args
}

func scanEntry(row pgx.Row) (domain.JournalEntry, error) {
	var e domain.JournalEntry
	err := row.Scan(
		&e.ID,
		&e.EntryNumber,
		&e.Date,
		&e.Description,
		&e.SourceDocument,
		&e.PeriodID,
		&e.EntryType,
		&e.ReversesEntryID,
		&e.TotalDebit,
		&e.TotalCredit,
		&e.CreatedAt,
		&e.CreatedBy,
		&e.LastUpdatedAt,
		&e.LastUpdatedBy,
	)
	return e, err
}
