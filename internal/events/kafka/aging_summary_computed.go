package kafka

import (
	"time"

	"github.com/SscSPs/billing_ledger_app/internal/core/domain"
	"github.com/shopspring/decimal"
)

// AgingSummaryComputed is the payload emitted after a party's aging summary is computed.
type AgingSummaryComputed struct {
	CompanyID       string          `json:"company_id"`
	PartyID         string          `json:"party_id"`
	PartyKind       string          `json:"party_kind"`
	AsOf            string          `json:"as_of"`
	TotalInvoiced   decimal.Decimal `json:"total_invoiced"`
	TotalPaid       decimal.Decimal `json:"total_paid"`
	TotalReceivable decimal.Decimal `json:"total_receivable"`
	AdvanceCredit   decimal.Decimal `json:"advance_credit"`
	CurrentAmount   decimal.Decimal `json:"current_amount"`
	OverdueAmount   decimal.Decimal `json:"overdue_amount"`
	Buckets         []BucketAmount  `json:"buckets"`
	OccurredAt      time.Time       `json:"occurred_at"`
}

type BucketAmount struct {
	Label  string          `json:"label"`
	Amount decimal.Decimal `json:"amount"`
}

// NewAgingSummaryComputed builds the event for summary.
func NewAgingSummaryComputed(companyID string, summary domain.AgingSummary, occurredAt time.Time) AgingSummaryComputed {
	buckets := make([]BucketAmount, len(summary.Buckets))
	for i, b := range summary.Buckets {
		buckets[i] = BucketAmount{Label: string(b.Label), Amount: b.Amount}
	}
	return AgingSummaryComputed{
		CompanyID:       companyID,
		PartyID:         summary.Party.PartyID,
		PartyKind:       string(summary.Party.Kind),
		AsOf:            summary.AsOf.Format(time.DateOnly),
		TotalInvoiced:   summary.TotalInvoiced,
		TotalPaid:       summary.TotalPaid,
		TotalReceivable: summary.TotalReceivable,
		AdvanceCredit:   summary.AdvanceCredit,
		CurrentAmount:   summary.CurrentAmount,
		OverdueAmount:   summary.OverdueAmount,
		Buckets:         buckets,
		OccurredAt:      occurredAt.UTC(),
	}
}
