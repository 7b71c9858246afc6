package models

import "github.com/shopspring/decimal"

// Party represents a row of the parties table.
type Party struct {
	PartyID                   string          `db:"party_id"`
	CompanyID                 string          `db:"company_id"`
	PartyKind                 string          `db:"party_kind"`
	Name                      string          `db:"name"`
	OpeningBalance            decimal.Decimal `db:"opening_balance"`
	OpeningBalanceOrientation string          `db:"opening_balance_orientation"`
	AuditFields
}
