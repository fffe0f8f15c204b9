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

const partyColumns = `party_id, kind, person_type, id_type, id_number, display_name, email, phone, is_active,
	created_at, created_by, last_updated_at, last_updated_by`

// PgxPartyRepository stores counterparties in PostgreSQL.
type PgxPartyRepository struct {
	BaseRepository
}

func NewPgxPartyRepository(pool *pgxpool.Pool) *PgxPartyRepository {
	return &PgxPartyRepository{BaseRepository: NewBaseRepository(pool)}
}

var _ portsrepo.PartyRepositoryFacade = (*PgxPartyRepository)(nil)

// SaveParty inserts a party; the identification number is unique.
func (r *PgxPartyRepository) SaveParty(ctx context.Context, p domain.Party) error {
	query := `INSERT INTO parties (` + partyColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13);`
	_, err := r.Pool.Exec(ctx, query,
		p.PartyID, p.Kind, p.PersonType, p.IDType, p.IDNumber, p.DisplayName, p.Email, p.Phone, p.Active,
		p.CreatedAt, p.CreatedBy, p.LastUpdatedAt, p.LastUpdatedBy,
	)
	return translate(err, "failed to save party %s", p.IDNumber)
}

func (r *PgxPartyRepository) FindPartyByID(ctx context.Context, partyID string) (*domain.Party, error) {
	query := `SELECT ` + partyColumns + ` FROM parties WHERE party_id = $1;`
	p, err := scanParty(r.Pool.QueryRow(ctx, query, partyID))
	if err != nil {
		return nil, translate(err, "failed to find party %s", partyID)
	}
	return &p, nil
}

// ListParties returns active parties ordered by name; an empty kind lists every kind.
func (r *PgxPartyRepository) ListParties(ctx context.Context, kind domain.PartyKind) ([]domain.Party, error) {
	query := `SELECT ` + partyColumns + ` FROM parties
		WHERE is_active AND ($1::text = '' OR kind = $1::text)
		ORDER BY display_name;`
	rows, err := r.Pool.Query(ctx, query, string(kind))
	if err != nil {
		return nil, fmt.Errorf("failed to query parties: %w", err)
	}
	defer rows.Close()

	parties := []domain.Party{}
	for rows.Next() {
		p, err := scanParty(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan party row: %w", err)
		}
		parties = append(parties, p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating party rows: %w", err)
	}
	return parties, nil
}

func (r *PgxPartyRepository) UpdateParty(ctx context.Context, p domain.Party) error {
	query := `UPDATE parties
		SET display_name = $2, email = $3, phone = $4, is_active = $5, last_updated_at = $6, last_updated_by = $7
		WHERE party_id = $1;`
	tag, err := r.Pool.Exec(ctx, query, p.PartyID, p.DisplayName, p.Email, p.Phone, p.Active, p.LastUpdatedAt, p.LastUpdatedBy)
	if err != nil {
		return translate(err, "failed to update party %s", p.PartyID)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("party %s: %w", p.PartyID, apperrors.ErrNotFound)
	}
	return nil
}

func scanParty(row pgx.Row) (domain.Party, error) {
	var p domain.Party
	err := row.Scan(&p.PartyID, &p.Kind, &p.PersonType, &p.IDType, &p.IDNumber, &p.DisplayName, &p.Email, &p.Phone, &p.Active,
		&p.CreatedAt, &p.CreatedBy, &p.LastUpdatedAt, &p.LastUpdatedBy)
	return p, err
}
