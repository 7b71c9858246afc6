package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// AgingBucketLabel names one age window.
type AgingBucketLabel string

const (
	BucketCurrent  AgingBucketLabel = "Current"
	Bucket30To60   AgingBucketLabel = "30-60"
	Bucket60To180  AgingBucketLabel = "60-180"
	Bucket180To360 AgingBucketLabel = "180-360"
	BucketOver360  AgingBucketLabel = ">360"
)

// AgingBucketLabels lists the buckets in ascending age order.
var AgingBucketLabels = []AgingBucketLabel{BucketCurrent, Bucket30To60, Bucket60To180, Bucket180To360, BucketOver360}

// AgingBucket holds the unsettled amount whose age falls in one window.
type AgingBucket struct {
	Label  AgingBucketLabel `json:"label"`
	Amount decimal.Decimal  `json:"amount"`
}

// UnsettledItem is one dated amount still outstanding after FIFO settlement.
type UnsettledItem struct {
	Date      time.Time       `json:"date"`
	Amount    decimal.Decimal `json:"amount"`
	InvoiceID string          `json:"invoiceID"`
}

// Settlement describes where cumulative payments were exhausted along the
// ascending invoice stream.
type Settlement struct {
	Found           bool            `json:"found"`
	BreakevenDate   time.Time       `json:"breakevenDate"`
	ResidualDue     decimal.Decimal `json:"residualDue"`
	SettlementIndex int             `json:"settlementIndex"` // -1 when not found
}

// AgingSummary is the aging view for one party. TotalReceivable is
// max(0, TotalInvoiced-TotalPaid); an overpayment is reported as AdvanceCredit.
type AgingSummary struct {
	Party           Party           `json:"party"`
	AsOf            time.Time       `json:"asOf"`
	TotalInvoiced   decimal.Decimal `json:"totalInvoiced"`
	TotalPaid       decimal.Decimal `json:"totalPaid"`
	TotalReceivable decimal.Decimal `json:"totalReceivable"`
	AdvanceCredit   decimal.Decimal `json:"advanceCredit"`
	CurrentAmount   decimal.Decimal `json:"currentAmount"`
	OverdueAmount   decimal.Decimal `json:"overdueAmount"`
	Buckets         []AgingBucket   `json:"buckets"`
	Settlement      Settlement      `json:"settlement"`
}
