package accounting_test

import (
	"fmt"
	"math/rand"
	"time"

	"github.com/SscSPs/billing_ledger_app/internal/core/domain"
	"github.com/SscSPs/billing_ledger_app/internal/platform/calendar"
	"github.com/shopspring/decimal"
)

var day0 = time.Date(2024, time.January, 10, 0, 0, 0, 0, time.UTC)

func onDay(n int) time.Time {
	return day0.AddDate(0, 0, n)
}

func invoice(id string, day int, amount int64) domain.Invoice {
	return domain.Invoice{InvoiceID: id, Number: id, IssueDate: onDay(day), GrandTotal: decimal.NewFromInt(amount)}
}

func payment(id string, day int, amount int64, method string) domain.Payment {
	return domain.Payment{PaymentID: id, PaymentDate: onDay(day), Amount: decimal.NewFromInt(amount), Method: method}
}

func customer(opening int64, orientation domain.Orientation) domain.Party {
	return domain.Party{
		PartyID:                   "cust-1",
		Kind:                      domain.Customer,
		Name:                      "Acme Trading",
		OpeningBalance:            decimal.NewFromInt(opening),
		OpeningBalanceOrientation: orientation,
	}
}

// calendarAt returns a UTC Jalali calendar whose today is day0 + n days.
func calendarAt(n int) calendar.CivilCalendar {
	now := onDay(n).Add(15 * time.Hour)
	return calendar.NewJalali(time.UTC, func() time.Time { return now })
}

func fixedAt(now time.Time) calendar.Clock {
	return func() time.Time { return now }
}

// randomHistory builds a reproducible invoice/payment history.
func randomHistory(seed int64) ([]domain.Invoice, []domain.Payment) {
	r := rand.New(rand.NewSource(seed))
	invoices := make([]domain.Invoice, r.Intn(12))
	for i := range invoices {
		invoices[i] = domain.Invoice{
			InvoiceID:  fmt.Sprintf("inv-%d-%d", seed, i),
			Number:     fmt.Sprintf("%d", 1000+i),
			IssueDate:  onDay(r.Intn(500)),
			GrandTotal: decimal.New(r.Int63n(500000)+1, -2),
		}
	}
	payments := make([]domain.Payment, r.Intn(10))
	for i := range payments {
		payments[i] = domain.Payment{
			PaymentID:   fmt.Sprintf("pay-%d-%d", seed, i),
			PaymentDate: onDay(r.Intn(500)),
			Amount:      decimal.New(r.Int63n(400000)+1, -2),
			Method:      []string{"Cash", "Cheque", "Transfer"}[r.Intn(3)],
		}
	}
	return invoices, payments
}
