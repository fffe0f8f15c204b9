package pgsql

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/SscSPs/property_ledger/internal/apperrors"
	"github.com/SscSPs/property_ledger/internal/core/domain"
	portsrepo "github.com/SscSPs/property_ledger/internal/core/ports/repositories"
)

const periodColumns = `period_id, year, month, name, start_date, close_date, state,
	created_at, created_by, last_updated_at, last_updated_by`

// PgxPeriodRepository stores accounting periods in PostgreSQL.
type PgxPeriodRepository struct {
	BaseRepository
}

func NewPgxPeriodRepository(pool *pgxpool.Pool) *PgxPeriodRepository {
	return &PgxPeriodRepository{BaseRepository: NewBaseRepository(pool)}
}

var _ portsrepo.PeriodRepositoryFacade = (*PgxPeriodRepository)(nil)

// SavePeriod inserts a period; (year, month) is unique.
func (r *PgxPeriodRepository) SavePeriod(ctx context.Context, p domain.AccountingPeriod) error {
	query := `INSERT INTO accounting_periods (` + periodColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11);`
	_, err := r.Pool.Exec(ctx, query,
		p.ID, p.Year, p.Month, p.Name, p.Start, p.Close, p.State,
		p.CreatedAt, p.CreatedBy, p.LastUpdatedAt, p.LastUpdatedBy,
	)
	return translate(err, "failed to save period %d-%02d", p.Year, p.Month)
}

func (r *PgxPeriodRepository) FindPeriodByID(ctx context.Context, periodID string) (*domain.AccountingPeriod, error) {
	query := `SELECT ` + periodColumns + ` FROM accounting_periods WHERE period_id = $1;`
	p, err := scanPeriod(r.Pool.QueryRow(ctx, query, periodID))
	if err != nil {
		return nil, translate(err, "failed to find period %s", periodID)
	}
	return &p, nil
}

// FindPeriodForDate returns the period covering date, or ErrNotFound.
func (r *PgxPeriodRepository) FindPeriodForDate(ctx context.Context, date time.Time) (*domain.AccountingPeriod, error) {
	query := `SELECT ` + periodColumns + ` FROM accounting_periods
		WHERE start_date <= $1 AND close_date > $1
		ORDER BY start_date LIMIT 1;`
	p, err := scanPeriod(r.Pool.QueryRow(ctx, query, date))
	if err != nil {
		return nil, translate(err, "no period covers %s", date.Format(domain.DateLayout))
	}
	return &p, nil
}

func (r *PgxPeriodRepository) ListPeriods(ctx context.Context) ([]domain.AccountingPeriod, error) {
	rows, err := r.Pool.Query(ctx, `SELECT `+periodColumns+` FROM accounting_periods ORDER BY start_date;`)
	if err != nil {
		return nil, fmt.Errorf("failed to query periods: %w", err)
	}
	defer rows.Close()

	periods := []domain.AccountingPeriod{}
	for rows.Next() {
		p, err := scanPeriod(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan period row: %w", err)
		}
		periods = append(periods, p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating period rows: %w", err)
	}
	return periods, nil
}

func (r *PgxPeriodRepository) UpdatePeriod(ctx context.Context, p domain.AccountingPeriod) error {
	query := `UPDATE accounting_periods
		SET name = $2, state = $3, last_updated_at = $4, last_updated_by = $5
		WHERE period_id = $1;`
	tag, err := r.Pool.Exec(ctx, query, p.ID, p.Name, p.State, p.LastUpdatedAt, p.LastUpdatedBy)
	if err != nil {
		return translate(err, "failed to update period %s", p.ID)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("period %s: %w", p.ID, apperrors.ErrNotFound)
	}
	return nil
}

func scanPeriod(row pgx.Row) (domain.AccountingPeriod, error) {
	var p domain.AccountingPeriod
	err := row.Scan(&p.ID, &p.Year, &p.Month, &p.Name, &p.Start, &p.Close, &p.State,
		&p.CreatedAt, &p.CreatedBy, &p.LastUpdatedAt, &p.LastUpdatedBy)
	return p, err
}
