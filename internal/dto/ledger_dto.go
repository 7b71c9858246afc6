package dto

import (
	"github.com/SscSPs/billing_ledger_app/internal/core/domain"
	"github.com/shopspring/decimal"
)

// LedgerQuery binds the optional date range of a ledger request.
type LedgerQuery struct {
	FromDate string `form:"fromDate" binding:"omitempty,datetime=2006-01-02"`
	ToDate   string `form:"toDate" binding:"omitempty,datetime=2006-01-02"`
}

// LedgerEntryResponse is one row of a party ledger.
type LedgerEntryResponse struct {
	Date           DateResponse    `json:"date"`
	Label          string          `json:"label"`
	Debit          decimal.Decimal `json:"debit"`
	Credit         decimal.Decimal `json:"credit"`
	RunningBalance decimal.Decimal `json:"runningBalance"`
	Orientation    string          `json:"orientation"`
	Source         string          `json:"source"`
	Ref            string          `json:"ref,omitempty"`
}

// LedgerResponse is the ledger of one customer or supplier.
type LedgerResponse struct {
	PartyID                   string                `json:"partyID"`
	PartyKind                 string                `json:"partyKind"`
	PartyName                 string                `json:"partyName"`
	OpeningBalance            decimal.Decimal       `json:"openingBalance"`
	OpeningBalanceOrientation string                `json:"openingBalanceOrientation"`
	FromDate                  *DateResponse         `json:"fromDate,omitempty"`
	ToDate                    *DateResponse         `json:"toDate,omitempty"`
	Entries                   []LedgerEntryResponse `json:"entries"`
	ClosingBalance            decimal.Decimal       `json:"closingBalance"` // Magnitude, side in ClosingOrientation
	ClosingOrientation        string                `json:"closingOrientation"`
}

// ToLedgerResponse converts a domain PartyLedger to a LedgerResponse.
func ToLedgerResponse(l *domain.PartyLedger, cal CivilFormatter) LedgerResponse {
	entries := make([]LedgerEntryResponse, len(l.Entries))
	for i, e := range l.Entries {
		entries[i] = LedgerEntryResponse{
			Date:           ToDateResponse(e.Date, cal),
			Label:          e.Label,
			Debit:          e.Debit,
			Credit:         e.Credit,
			RunningBalance: e.RunningBalance,
			Orientation:    string(e.Orientation),
			Source:         string(e.Source),
			Ref:            e.Ref,
		}
	}

	return LedgerResponse{
		PartyID:                   l.Party.PartyID,
		PartyKind:                 string(l.Party.Kind),
		PartyName:                 l.Party.Name,
		OpeningBalance:            l.Party.OpeningBalance,
		OpeningBalanceOrientation: string(l.Party.OpeningBalanceOrientation),
		FromDate:                  toOptionalDate(l.Range.From, cal),
		ToDate:                    toOptionalDate(l.Range.To, cal),
		Entries:                   entries,
		ClosingBalance:            l.ClosingBalance.Abs(),
		ClosingOrientation:        string(l.ClosingOrientation()),
	}
}
