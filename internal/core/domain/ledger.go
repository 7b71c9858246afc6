package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// LedgerEntry is one row of a party ledger. RunningBalance is always the
// magnitude of the cumulative balance; Orientation carries its sign.
type LedgerEntry struct {
	Date           time.Time         `json:"date"`
	Label          string            `json:"label"`
	Debit          decimal.Decimal   `json:"debit"`
	Credit         decimal.Decimal   `json:"credit"`
	RunningBalance decimal.Decimal   `json:"runningBalance"`
	Orientation    Orientation       `json:"orientation"`
	Source         TransactionSource `json:"source"`
	Ref            string            `json:"ref"`
}

// Ledger is the running-balance view over a party's full history.
// ClosingBalance is signed: positive is debit-side, negative is credit-side.
type Ledger struct {
	Entries        []LedgerEntry   `json:"entries"`
	ClosingBalance decimal.Decimal `json:"closingBalance"`
}

// ClosingOrientation returns the side the closing balance sits on.
func (l Ledger) ClosingOrientation() Orientation {
	return OrientationOf(l.ClosingBalance)
}

// OrientationOf maps a signed balance to its side. Zero counts as debit.
func OrientationOf(balance decimal.Decimal) Orientation {
	if balance.IsNegative() {
		return Credit
	}
	return Debit
}

// PartyLedger is the result of a ledger query for one party.
type PartyLedger struct {
	Party Party
	Range DateRange // Accepted from the caller, not applied
	Ledger
}
