package mapping

import (
	"github.com/SscSPs/billing_ledger_app/internal/core/domain"
	"github.com/SscSPs/billing_ledger_app/internal/models"
)

// ToDomainInvoice converts a model Invoice to a domain Invoice
func ToDomainInvoice(m models.Invoice) domain.Invoice {
	return domain.Invoice{
		InvoiceID:   m.InvoiceID,
		CompanyID:   m.CompanyID,
		PartyID:     m.PartyID,
		Number:      m.InvoiceNumber,
		IssueDate:   m.IssueDate,
		GrandTotal:  m.GrandTotal,
		AuditFields: ToDomainAuditFields(m.AuditFields),
	}
}

// ToDomainInvoices converts a slice of model Invoices. The result is never nil.
func ToDomainInvoices(ms []models.Invoice) []domain.Invoice {
	out := make([]domain.Invoice, len(ms))
	for i, m := range ms {
		out[i] = ToDomainInvoice(m)
	}
	return out
}
