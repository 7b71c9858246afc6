package pgsql

import (
	"context"
	"fmt"

	"github.com/SscSPs/billing_ledger_app/internal/core/domain"
	portsrepo "github.com/SscSPs/billing_ledger_app/internal/core/ports/repositories"
	"github.com/SscSPs/billing_ledger_app/internal/models"
	"github.com/SscSPs/billing_ledger_app/internal/utils/mapping"
	"github.com/jackc/pgx/v5/pgxpool"
)

type PgxPaymentRepository struct {
	BaseRepository
}

// newPgxPaymentRepository creates a new repository for payment data.
func newPgxPaymentRepository(pool *pgxpool.Pool) *PgxPaymentRepository {
	return &PgxPaymentRepository{
		BaseRepository: BaseRepository{Pool: pool},
	}
}

var _ portsrepo.PaymentReader = (*PgxPaymentRepository)(nil)

// ListPaymentsByParty retrieves every payment of a party, oldest first.
func (r *PgxPaymentRepository) ListPaymentsByParty(ctx context.Context, companyID, partyID string) ([]domain.Payment, error) {
	query := `
		SELECT payment_id, company_id, party_id, payment_date, amount, payment_method,
		       created_at, created_by, last_updated_at, last_updated_by
		FROM payments
		WHERE company_id = $1 AND party_id = $2
		ORDER BY payment_date ASC, created_at ASC;
	`
	rows, err := r.Pool.Query(ctx, query, companyID, partyID)
	if err != nil {
		return nil, fmt.Errorf("error querying payments for party %s: %w", partyID, err)
	}
	defer rows.Close()

	var result []models.Payment
	for rows.Next() {
		var m models.Payment
		if err := rows.Scan(
			&m.PaymentID,
			&m.CompanyID,
			&m.PartyID,
			&m.PaymentDate,
			&m.Amount,
			&m.PaymentMethod,
			&m.CreatedAt,
			&m.CreatedBy,
			&m.LastUpdatedAt,
			&m.LastUpdatedBy,
		); err != nil {
			return nil, fmt.Errorf("error scanning payment row: %w", err)
		}
		result = append(result, m)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating payment rows: %w", err)
	}

	return mapping.ToDomainPayments(result), nil
}
