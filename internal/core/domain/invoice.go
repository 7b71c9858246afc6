package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// Invoice is one sales (customer) or purchase (supplier) document issued to a party.
// Invoices are immutable once issued.
type Invoice struct {
	InvoiceID  string          `json:"invoiceID"`
	CompanyID  string          `json:"companyID"`
	PartyID    string          `json:"partyID"`
	Number     string          `json:"number"` // Human readable label
	IssueDate  time.Time       `json:"issueDate"`
	GrandTotal decimal.Decimal `json:"grandTotal"`
	AuditFields
}
