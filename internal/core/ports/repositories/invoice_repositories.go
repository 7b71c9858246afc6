package repositories

import (
	"context"

	"github.com/SscSPs/billing_ledger_app/internal/core/domain"
)

// InvoiceReader defines read operations for invoices issued to a party.
type InvoiceReader interface {
	// ListInvoicesByParty retrieves every invoice of a party, in any order.
	ListInvoicesByParty(ctx context.Context, companyID string, partyID string) ([]domain.Invoice, error)
}
