package pgsql

import (
	"context"
	"errors"
	"fmt"

	"github.com/SscSPs/billing_ledger_app/internal/apperrors"
	"github.com/SscSPs/billing_ledger_app/internal/core/domain"
	portsrepo "github.com/SscSPs/billing_ledger_app/internal/core/ports/repositories"
	"github.com/SscSPs/billing_ledger_app/internal/models"
	"github.com/SscSPs/billing_ledger_app/internal/utils/mapping"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type PgxPartyRepository struct {
	BaseRepository
}

// newPgxPartyRepository creates a new repository for customer and supplier data.
func newPgxPartyRepository(pool *pgxpool.Pool) *PgxPartyRepository {
	return &PgxPartyRepository{
		BaseRepository: BaseRepository{Pool: pool},
	}
}

// Ensure implementation matches interface
var _ portsrepo.PartyReader = (*PgxPartyRepository)(nil)

// FindPartyByID retrieves a party of the given kind within a company.
func (r *PgxPartyRepository) FindPartyByID(ctx context.Context, companyID string, kind domain.PartyKind, partyID string) (*domain.Party, error) {
	query := `
		SELECT party_id, company_id, party_kind, name, opening_balance, opening_balance_orientation,
		       created_at, created_by, last_updated_at, last_updated_by
		FROM parties
		WHERE company_id = $1 AND party_kind = $2 AND party_id = $3;
	`
	var m models.Party
	err := r.Pool.QueryRow(ctx, query, companyID, string(kind), partyID).Scan(
		&m.PartyID,
		&m.CompanyID,
		&m.PartyKind,
		&m.Name,
		&m.OpeningBalance,
		&m.OpeningBalanceOrientation,
		&m.CreatedAt,
		&m.CreatedBy,
		&m.LastUpdatedAt,
		&m.LastUpdatedBy,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("%w: %s %s", apperrors.ErrPartyNotFound, kind, partyID)
		}
		return nil, fmt.Errorf("failed to find party %s: %w", partyID, err)
	}

	party := mapping.ToDomainParty(m)
	return &party, nil
}
