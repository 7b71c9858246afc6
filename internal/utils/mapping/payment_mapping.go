package mapping

import (
	"github.com/SscSPs/billing_ledger_app/internal/core/domain"
	"github.com/SscSPs/billing_ledger_app/internal/models"
)

// ToDomainPayment converts a model Payment to a domain Payment
func ToDomainPayment(m models.Payment) domain.Payment {
	return domain.Payment{
		PaymentID:   m.PaymentID,
		CompanyID:   m.CompanyID,
		PartyID:     m.PartyID,
		PaymentDate: m.PaymentDate,
		Amount:      m.Amount,
		Method:      m.PaymentMethod,
		AuditFields: ToDomainAuditFields(m.AuditFields),
	}
}

// ToDomainPayments converts a slice of model Payments. The result is never nil.
func ToDomainPayments(ms []models.Payment) []domain.Payment {
	out := make([]domain.Payment, len(ms))
	for i, m := range ms {
		out[i] = ToDomainPayment(m)
	}
	return out
}
