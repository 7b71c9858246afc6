package mapping

import (
	"testing"
	"time"

	"github.com/SscSPs/billing_ledger_app/internal/core/domain"
	"github.com/SscSPs/billing_ledger_app/internal/models"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestToDomainParty_NormalizesOpeningBalance(t *testing.T) {
	m := models.Party{
		PartyID:                   "p-1",
		CompanyID:                 "c-1",
		PartyKind:                 "SUPPLIER",
		Name:                      "Northwind",
		OpeningBalance:            decimal.NewFromInt(-250),
		OpeningBalanceOrientation: "CREDIT",
	}

	d := ToDomainParty(m)

	assert.Equal(t, domain.Supplier, d.Kind)
	assert.True(t, d.OpeningBalance.Equal(decimal.NewFromInt(250)))
	assert.Equal(t, domain.Credit, d.OpeningBalanceOrientation)
	assert.True(t, d.SignedOpeningBalance().Equal(decimal.NewFromInt(-250)))
}

func TestToDomainParty_DefaultsToDebit(t *testing.T) {
	d := ToDomainParty(models.Party{PartyKind: "CUSTOMER", OpeningBalance: decimal.NewFromInt(10)})
	assert.Equal(t, domain.Debit, d.OpeningBalanceOrientation)
}

func TestToDomainInvoices_EmptyIsNotNil(t *testing.T) {
	assert.NotNil(t, ToDomainInvoices(nil))
	assert.NotNil(t, ToDomainPayments(nil))
}

func TestInvoiceAndPaymentFieldMapping(t *testing.T) {
	issued := time.Date(2024, 3, 20, 0, 0, 0, 0, time.UTC)
	inv := ToDomainInvoice(models.Invoice{InvoiceID: "i-1", InvoiceNumber: "1042", IssueDate: issued, GrandTotal: decimal.NewFromInt(900)})
	assert.Equal(t, "1042", inv.Number)
	assert.Equal(t, issued, inv.IssueDate)

	pay := ToDomainPayment(models.Payment{PaymentID: "pay-1", PaymentMethod: "Cheque", Amount: decimal.NewFromInt(400)})
	assert.Equal(t, "Cheque", pay.Method)
}

func TestToDomainAuditFields(t *testing.T) {
	created := time.Date(2024, 3, 20, 8, 0, 0, 0, time.UTC)
	d := ToDomainParty(models.Party{
		PartyKind:   "CUSTOMER",
		AuditFields: models.AuditFields{CreatedAt: created, CreatedBy: "importer", LastUpdatedAt: created, LastUpdatedBy: "importer"},
	})
	assert.Equal(t, created, d.CreatedAt)
	assert.Equal(t, "importer", d.CreatedBy)
	assert.Equal(t, "importer", d.LastUpdatedBy)
}
