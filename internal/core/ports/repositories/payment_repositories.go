package repositories

import (
	"context"

	"github.com/SscSPs/billing_ledger_app/internal/core/domain"
)

// PaymentReader defines read operations for payments applied to a party's account.
type PaymentReader interface {
	// ListPaymentsByParty retrieves every payment of a party, in any order.
	ListPaymentsByParty(ctx context.Context, companyID string, partyID string) ([]domain.Payment, error)
}
