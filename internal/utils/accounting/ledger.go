package accounting

import (
	"time"

	"github.com/SscSPs/billing_ledger_app/internal/core/domain"
	"github.com/shopspring/decimal"
)

// BuildLedger produces the running-balance ledger for a party from date-ordered
// transactions (see MergeTransactions).
//
// A non-zero opening balance becomes a synthetic first entry dated at openingDate,
// or at the first transaction's date when history predates openingDate, so the
// entries stay ordered. Its debit and credit columns stay zero; only its running
// balance carries the opening amount. Each entry's orientation is the side of
// the cumulative balance after it; zero counts as debit.
func BuildLedger(party domain.Party, txns []domain.Transaction, openingDate time.Time) domain.Ledger {
	entries := make([]domain.LedgerEntry, 0, len(txns)+1)
	balance := decimal.Zero

	if !party.OpeningBalance.IsZero() {
		if len(txns) > 0 && txns[0].Date.Before(openingDate) {
			openingDate = txns[0].Date
		}
		balance = party.SignedOpeningBalance()
		entries = append(entries, domain.LedgerEntry{
			Date:           openingDate,
			Label:          openingLabel,
			Debit:          decimal.Zero,
			Credit:         decimal.Zero,
			RunningBalance: balance.Abs(),
			Orientation:    domain.OrientationOf(balance),
			Source:         domain.SourceOpening,
		})
	}

	for _, txn := range txns {
		balance = balance.Add(txn.Debit).Sub(txn.Credit)
		entries = append(entries, domain.LedgerEntry{
			Date:           txn.Date,
			Label:          txn.Label,
			Debit:          txn.Debit,
			Credit:         txn.Credit,
			RunningBalance: balance.Abs(),
			Orientation:    domain.OrientationOf(balance),
			Source:         txn.Source,
			Ref:            txn.Ref,
		})
	}

	return domain.Ledger{
		Entries:        entries,
		ClosingBalance: balance,
	}
}
