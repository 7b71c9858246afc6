package accounting

import (
	"github.com/SscSPs/billing_ledger_app/internal/core/domain"
	"github.com/shopspring/decimal"
)

// FindBreakeven walks date-ascending invoices and applies totalPaid to the oldest
// first. It records the first invoice at which the cumulative invoiced amount
// exceeds totalPaid and the part of that cumulative amount left unpaid.
// Payments are not linked to invoices; settlement is strictly oldest-first.
func FindBreakeven(invoices []domain.Invoice, totalPaid decimal.Decimal) domain.Settlement {
	settlement := domain.Settlement{SettlementIndex: -1, ResidualDue: decimal.Zero}
	cumulative := decimal.Zero
	for i, inv := range invoices {
		cumulative = cumulative.Add(inv.GrandTotal)
		if !settlement.Found && cumulative.GreaterThan(totalPaid) {
			settlement.Found = true
			settlement.BreakevenDate = inv.IssueDate
			settlement.ResidualDue = cumulative.Sub(totalPaid)
			settlement.SettlementIndex = i
		}
	}
	return settlement
}

// UnsettledTail lists the amounts still outstanding after settlement: the
// breakeven invoice's residual followed by every later invoice at full amount.
func UnsettledTail(invoices []domain.Invoice, settlement domain.Settlement) []domain.UnsettledItem {
	if !settlement.Found {
		return []domain.UnsettledItem{}
	}
	tail := make([]domain.UnsettledItem, 0, len(invoices)-settlement.SettlementIndex)
	tail = append(tail, domain.UnsettledItem{
		Date:      settlement.BreakevenDate,
		Amount:    settlement.ResidualDue,
		InvoiceID: invoices[settlement.SettlementIndex].InvoiceID,
	})
	for _, inv := range invoices[settlement.SettlementIndex+1:] {
		tail = append(tail, domain.UnsettledItem{
			Date:      inv.IssueDate,
			Amount:    inv.GrandTotal,
			InvoiceID: inv.InvoiceID,
		})
	}
	return tail
}
