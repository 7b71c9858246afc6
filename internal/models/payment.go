package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Payment represents a row of the payments table.
type Payment struct {
	PaymentID     string          `db:"payment_id"`
	CompanyID     string          `db:"company_id"`
	PartyID       string          `db:"party_id"`
	PaymentDate   time.Time       `db:"payment_date"`
	Amount        decimal.Decimal `db:"amount"`
	PaymentMethod string          `db:"payment_method"`
	AuditFields
}
