package domain

import "github.com/shopspring/decimal"

// PartyKind distinguishes receivable accounts from payable accounts.
type PartyKind string

const (
	Customer PartyKind = "CUSTOMER"
	Supplier PartyKind = "SUPPLIER"
)

// Valid reports whether k is a known party kind.
func (k PartyKind) Valid() bool {
	return k == Customer || k == Supplier
}

// Orientation indicates which side of the account a balance sits on.
type Orientation string

const (
	Debit  Orientation = "DEBIT"
	Credit Orientation = "CREDIT"
)

// Party is a customer or supplier account owned by a company.
type Party struct {
	PartyID                   string          `json:"partyID"`
	CompanyID                 string          `json:"companyID"`
	Kind                      PartyKind       `json:"kind"`
	Name                      string          `json:"name"`
	OpeningBalance            decimal.Decimal `json:"openingBalance"` // Always non-negative
	OpeningBalanceOrientation Orientation     `json:"openingBalanceOrientation"`
	AuditFields
}

// SignedOpeningBalance returns the opening balance as a signed amount:
// positive on the debit side, negative on the credit side.
func (p Party) SignedOpeningBalance() decimal.Decimal {
	if p.OpeningBalanceOrientation == Credit {
		return p.OpeningBalance.Abs().Neg()
	}
	return p.OpeningBalance.Abs()
}
