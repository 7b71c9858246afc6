package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// TransactionSource records which record stream a normalized transaction came from.
type TransactionSource string

const (
	SourceInvoice TransactionSource = "INVOICE"
	SourcePayment TransactionSource = "PAYMENT"
	SourceOpening TransactionSource = "OPENING"
)

// Transaction is the common shape invoices and payments are normalized into.
// Exactly one of Debit and Credit is non-zero.
type Transaction struct {
	Date   time.Time         `json:"date"`
	Label  string            `json:"label"`
	Debit  decimal.Decimal   `json:"debit"`
	Credit decimal.Decimal   `json:"credit"`
	Source TransactionSource `json:"source"`
	Ref    string            `json:"ref"` // InvoiceID or PaymentID
}
