package accounting

import (
	"sort"

	"github.com/SscSPs/billing_ledger_app/internal/core/domain"
	"github.com/shopspring/decimal"
)

const (
	invoiceLabelPrefix = "Invoice #"
	paymentLabelPrefix = "Payment "
	openingLabel       = "Opening Balance"
)

// SortInvoices orders invoices by issue date ascending. Invoices sharing a date keep their input order.
func SortInvoices(invoices []domain.Invoice) []domain.Invoice {
	sorted := make([]domain.Invoice, len(invoices))
	copy(sorted, invoices)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].IssueDate.Before(sorted[j].IssueDate)
	})
	return sorted
}

// SortPayments orders payments by payment date ascending. Payments sharing a date keep their input order.
func SortPayments(payments []domain.Payment) []domain.Payment {
	sorted := make([]domain.Payment, len(payments))
	copy(sorted, payments)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].PaymentDate.Before(sorted[j].PaymentDate)
	})
	return sorted
}

// NormalizeInvoices maps invoices to transactions. For customers an invoice is a debit,
// for suppliers it is a credit.
func NormalizeInvoices(invoices []domain.Invoice, kind domain.PartyKind) []domain.Transaction {
	txns := make([]domain.Transaction, 0, len(invoices))
	for _, inv := range invoices {
		txn := domain.Transaction{
			Date:   inv.IssueDate,
			Label:  invoiceLabelPrefix + inv.Number,
			Debit:  decimal.Zero,
			Credit: decimal.Zero,
			Source: domain.SourceInvoice,
			Ref:    inv.InvoiceID,
		}
		if kind == domain.Supplier {
			txn.Credit = inv.GrandTotal
		} else {
			txn.Debit = inv.GrandTotal
		}
		txns = append(txns, txn)
	}
	return txns
}

// NormalizePayments maps payments to transactions. For customers a payment is a credit,
// for suppliers it is a debit.
func NormalizePayments(payments []domain.Payment, kind domain.PartyKind) []domain.Transaction {
	txns := make([]domain.Transaction, 0, len(payments))
	for _, p := range payments {
		txn := domain.Transaction{
			Date:   p.PaymentDate,
			Label:  paymentLabelPrefix + p.Method,
			Debit:  decimal.Zero,
			Credit: decimal.Zero,
			Source: domain.SourcePayment,
			Ref:    p.PaymentID,
		}
		if kind == domain.Supplier {
			txn.Debit = p.Amount
		} else {
			txn.Credit = p.Amount
		}
		txns = append(txns, txn)
	}
	return txns
}

// MergeTransactions concatenates invoice transactions then payment transactions and
// stable-sorts them by date, so on a shared date invoices precede payments.
func MergeTransactions(invoiceTxns, paymentTxns []domain.Transaction) []domain.Transaction {
	merged := make([]domain.Transaction, 0, len(invoiceTxns)+len(paymentTxns))
	merged = append(merged, invoiceTxns...)
	merged = append(merged, paymentTxns...)
	sort.SliceStable(merged, func(i, j int) bool {
		return merged[i].Date.Before(merged[j].Date)
	})
	return merged
}

// SumInvoices returns the total invoiced amount.
func SumInvoices(invoices []domain.Invoice) decimal.Decimal {
	total := decimal.Zero
	for _, inv := range invoices {
		total = total.Add(inv.GrandTotal)
	}
	return total
}

// SumPayments returns the total paid amount.
func SumPayments(payments []domain.Payment) decimal.Decimal {
	total := decimal.Zero
	for _, p := range payments {
		total = total.Add(p.Amount)
	}
	return total
}
