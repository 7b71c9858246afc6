package services

import (
	"context"

	"github.com/SscSPs/billing_ledger_app/internal/core/domain"
)

// LedgerSvc builds running-balance ledgers for parties.
type LedgerSvc interface {
	// GetLedger returns the full-history ledger of a party. The date range is
	// validated and echoed back but does not filter entries.
	GetLedger(ctx context.Context, companyID string, kind domain.PartyKind, partyID string, dateRange domain.DateRange) (*domain.PartyLedger, error)
}
