package services

import (
	"context"

	"github.com/SscSPs/billing_ledger_app/internal/core/domain"
)

// AgingSvc classifies a party's outstanding amounts into age buckets.
type AgingSvc interface {
	// GetAgingSummary settles payments against invoices oldest-first and buckets the remainder by age.
	GetAgingSummary(ctx context.Context, companyID string, kind domain.PartyKind, partyID string) (*domain.AgingSummary, error)
}

// AgingPublisher forwards computed aging summaries to downstream consumers.
type AgingPublisher interface {
	PublishAgingSummary(ctx context.Context, companyID string, summary domain.AgingSummary) error
}
