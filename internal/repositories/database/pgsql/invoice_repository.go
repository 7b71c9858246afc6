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

type PgxInvoiceRepository struct {
	BaseRepository
}

// newPgxInvoiceRepository creates a new repository for invoice data.
func newPgxInvoiceRepository(pool *pgxpool.Pool) *PgxInvoiceRepository {
	return &PgxInvoiceRepository{
		BaseRepository: BaseRepository{Pool: pool},
	}
}

var _ portsrepo.InvoiceReader = (*PgxInvoiceRepository)(nil)

// ListInvoicesByParty retrieves every invoice of a party, oldest first.
func (r *PgxInvoiceRepository) ListInvoicesByParty(ctx context.Context, companyID, partyID string) ([]domain.Invoice, error) {
	query := `
		SELECT invoice_id, company_id, party_id, invoice_number, issue_date, grand_total,
		       created_at, created_by, last_updated_at, last_updated_by
		FROM invoices
		WHERE company_id = $1 AND party_id = $2
		ORDER BY issue_date ASC, created_at ASC;
	`
	rows, err := r.Pool.Query(ctx, query, companyID, partyID)
	if err != nil {
		return nil, fmt.Errorf("error querying invoices for party %s: %w", partyID, err)
	}
	defer rows.Close()

	var result []models.Invoice
	for rows.Next() {
		var m models.Invoice
		if err := rows.Scan(
			&m.InvoiceID,
			&m.CompanyID,
			&m.PartyID,
			&m.InvoiceNumber,
			&m.IssueDate,
			&m.GrandTotal,
			&m.CreatedAt,
			&m.CreatedBy,
			&m.LastUpdatedAt,
			&m.LastUpdatedBy,
		); err != nil {
			return nil, fmt.Errorf("error scanning invoice row: %w", err)
		}
		result = append(result, m)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating invoice rows: %w", err)
	}

	return mapping.ToDomainInvoices(result), nil
}
