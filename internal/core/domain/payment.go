package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// Payment is one amount applied against a party's account. Payments are not
// linked to a specific invoice.
type Payment struct {
	PaymentID   string          `json:"paymentID"`
	CompanyID   string          `json:"companyID"`
	PartyID     string          `json:"partyID"`
	PaymentDate time.Time       `json:"paymentDate"`
	Amount      decimal.Decimal `json:"amount"`
	Method      string          `json:"method"`
	AuditFields
}
