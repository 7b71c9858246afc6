package dto

import (
	"github.com/SscSPs/billing_ledger_app/internal/core/domain"
	"github.com/shopspring/decimal"
)

// AgingBucketResponse is the unsettled amount of one age window.
type AgingBucketResponse struct {
	Label  string          `json:"label"`
	Amount decimal.Decimal `json:"amount"`
}

// AgingSummaryResponse is the aging view of one customer or supplier.
type AgingSummaryResponse struct {
	PartyID         string                `json:"partyID"`
	PartyKind       string                `json:"partyKind"`
	PartyName       string                `json:"partyName"`
	AsOf            DateResponse          `json:"asOf"`
	TotalInvoiced   decimal.Decimal       `json:"totalInvoiced"`
	TotalPaid       decimal.Decimal       `json:"totalPaid"`
	TotalReceivable decimal.Decimal       `json:"totalReceivable"`
	AdvanceCredit   decimal.Decimal       `json:"advanceCredit"`
	CurrentAmount   decimal.Decimal       `json:"currentAmount"`
	OverdueAmount   decimal.Decimal       `json:"overdueAmount"`
	Buckets         []AgingBucketResponse `json:"buckets"`
	BreakevenDate   *DateResponse         `json:"breakevenDate,omitempty"`
}

// ToAgingSummaryResponse converts a domain AgingSummary to an AgingSummaryResponse.
func ToAgingSummaryResponse(s *domain.AgingSummary, cal CivilFormatter) AgingSummaryResponse {
	buckets := make([]AgingBucketResponse, len(s.Buckets))
	for i, b := range s.Buckets {
		buckets[i] = AgingBucketResponse{Label: string(b.Label), Amount: b.Amount}
	}

	resp := AgingSummaryResponse{
		PartyID:         s.Party.PartyID,
		PartyKind:       string(s.Party.Kind),
		PartyName:       s.Party.Name,
		AsOf:            ToDateResponse(s.AsOf, cal),
		TotalInvoiced:   s.TotalInvoiced,
		TotalPaid:       s.TotalPaid,
		TotalReceivable: s.TotalReceivable,
		AdvanceCredit:   s.AdvanceCredit,
		CurrentAmount:   s.CurrentAmount,
		OverdueAmount:   s.OverdueAmount,
		Buckets:         buckets,
	}
	if s.Settlement.Found {
		resp.BreakevenDate = toOptionalDate(&s.Settlement.BreakevenDate, cal)
	}
	return resp
}
