package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Invoice represents a row of the invoices table.
type Invoice struct {
	InvoiceID     string          `db:"invoice_id"`
	CompanyID     string          `db:"company_id"`
	PartyID       string          `db:"party_id"`
	InvoiceNumber string          `db:"invoice_number"`
	IssueDate     time.Time       `db:"issue_date"`
	GrandTotal    decimal.Decimal `db:"grand_total"`
	AuditFields
}
