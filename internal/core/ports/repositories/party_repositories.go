package repositories

import (
	"context"

	"github.com/SscSPs/billing_ledger_app/internal/core/domain"
)

// PartyReader defines read operations for customer and supplier accounts.
type PartyReader interface {
	// FindPartyByID retrieves a party of the given kind within a company.
	// It returns apperrors.ErrPartyNotFound when no such party exists.
	FindPartyByID(ctx context.Context, companyID string, kind domain.PartyKind, partyID string) (*domain.Party, error)
}
