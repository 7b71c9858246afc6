package accounting_test

import (
	"testing"
	"time"

	"github.com/SscSPs/billing_ledger_app/internal/core/domain"
	"github.com/SscSPs/billing_ledger_app/internal/platform/calendar"
	"github.com/SscSPs/billing_ledger_app/internal/utils/accounting"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func bucketAmounts(buckets []domain.AgingBucket) map[domain.AgingBucketLabel]string {
	out := make(map[domain.AgingBucketLabel]string, len(buckets))
	for _, b := range buckets {
		out[b.Label] = b.Amount.String()
	}
	return out
}

func TestBucketAging_Boundaries(t *testing.T) {
	cal := calendarAt(400)
	items := []domain.UnsettledItem{
		{Date: onDay(400), Amount: decimal.NewFromInt(1)},                       // age 0
		{Date: onDay(371), Amount: decimal.NewFromInt(2)},                       // age 29
		{Date: onDay(370), Amount: decimal.NewFromInt(4)},                       // age 30
		{Date: onDay(341), Amount: decimal.NewFromInt(8)},                       // age 59
		{Date: onDay(340), Amount: decimal.NewFromInt(16)},                      // age 60
		{Date: onDay(221), Amount: decimal.NewFromInt(32)},                      // age 179
		{Date: onDay(220), Amount: decimal.NewFromInt(64)},                      // age 180
		{Date: onDay(41), Amount: decimal.NewFromInt(128)},                      // age 359
		{Date: onDay(40), Amount: decimal.NewFromInt(256)},                      // age 360
		{Date: onDay(-100), Amount: decimal.NewFromInt(512)},                    // age 500
		{Date: onDay(405), Amount: decimal.NewFromInt(1024)},                    // future
		{Date: onDay(370).Add(23 * time.Hour), Amount: decimal.NewFromInt(2048)}, // late on the age-30 day
	}

	got := bucketAmounts(accounting.BucketAging(items, cal))
	assert.Equal(t, map[domain.AgingBucketLabel]string{
		domain.BucketCurrent:  "1027",
		domain.Bucket30To60:   "2060",
		domain.Bucket60To180:  "48",
		domain.Bucket180To360: "192",
		domain.BucketOver360:  "768",
	}, got)
}

func TestBucketAging_StoredDatesInAnyLocation(t *testing.T) {
	newYork := time.FixedZone("EST", -5*3600)
	tehran := time.FixedZone("IRST", 3*3600+1800)
	// Stored dates come back from the database as UTC midnight.
	stored := func(y int, m time.Month, d int) time.Time { return time.Date(y, m, d, 0, 0, 0, 0, time.UTC) }

	tests := []struct {
		name string
		cal  accounting.DayBoundaries
		date time.Time
		want domain.AgingBucketLabel
	}{
		{
			name: "gregorian new york age 29",
			cal:  calendar.NewGregorian(newYork, time.January, fixedAt(time.Date(2026, time.March, 1, 9, 0, 0, 0, newYork))),
			date: stored(2026, time.January, 31),
			want: domain.BucketCurrent,
		},
		{
			name: "gregorian new york age 30",
			cal:  calendar.NewGregorian(newYork, time.January, fixedAt(time.Date(2026, time.March, 1, 9, 0, 0, 0, newYork))),
			date: stored(2026, time.January, 30),
			want: domain.Bucket30To60,
		},
		{
			name: "jalali new york age 29",
			cal:  calendar.NewJalali(newYork, fixedAt(time.Date(2026, time.March, 1, 23, 0, 0, 0, newYork))),
			date: stored(2026, time.January, 31),
			want: domain.BucketCurrent,
		},
		{
			name: "jalali tehran age 29",
			cal:  calendar.NewJalali(tehran, fixedAt(time.Date(2026, time.March, 1, 1, 0, 0, 0, tehran))),
			date: stored(2026, time.January, 31),
			want: domain.BucketCurrent,
		},
		{
			name: "jalali tehran age 60",
			cal:  calendar.NewJalali(tehran, fixedAt(time.Date(2026, time.March, 1, 1, 0, 0, 0, tehran))),
			date: stored(2025, time.December, 31),
			want: domain.Bucket60To180,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			items := []domain.UnsettledItem{{Date: tt.date, Amount: decimal.NewFromInt(100)}}
			got := bucketAmounts(accounting.BucketAging(items, tt.cal))
			assert.Equal(t, "100", got[tt.want])
		})
	}
}

func TestBucketAging_OrderAndZeroes(t *testing.T) {
	buckets := accounting.BucketAging(nil, calendarAt(0))
	require.Len(t, buckets, 5)
	for i, label := range domain.AgingBucketLabels {
		assert.Equal(t, label, buckets[i].Label)
		assert.True(t, buckets[i].Amount.IsZero())
	}
}

func TestSummarize_Examples(t *testing.T) {
	t.Run("paid in full", func(t *testing.T) {
		summary := accounting.Summarize(customer(0, domain.Debit),
			[]domain.Invoice{invoice("A", 0, 1000)},
			[]domain.Payment{payment("P", 5, 1000, "Cash")},
			calendarAt(20))
		for _, b := range summary.Buckets {
			assert.True(t, b.Amount.IsZero(), b.Label)
		}
		assert.True(t, summary.TotalReceivable.IsZero())
		assert.False(t, summary.Settlement.Found)
	})

	t.Run("opening balance does not take part in settlement", func(t *testing.T) {
		summary := accounting.Summarize(customer(500, domain.Debit),
			[]domain.Invoice{invoice("A", 0, 1000)},
			[]domain.Payment{payment("P", 10, 300, "Cash")},
			calendarAt(20))
		assert.True(t, summary.Settlement.Found)
		assert.Equal(t, 0, summary.Settlement.SettlementIndex)
		assert.True(t, summary.Settlement.ResidualDue.Equal(decimal.NewFromInt(700)))
		assert.True(t, summary.TotalReceivable.Equal(decimal.NewFromInt(700)))
		assert.True(t, summary.CurrentAmount.Equal(decimal.NewFromInt(700)))
		assert.True(t, summary.OverdueAmount.IsZero())
	})

	t.Run("fully settled first invoice is excluded", func(t *testing.T) {
		summary := accounting.Summarize(customer(0, domain.Debit),
			[]domain.Invoice{invoice("B", 40, 500), invoice("A", 0, 500)},
			[]domain.Payment{payment("P", 0, 500, "Cash")},
			calendarAt(80))
		assert.Equal(t, 1, summary.Settlement.SettlementIndex)
		assert.Equal(t, map[domain.AgingBucketLabel]string{
			domain.BucketCurrent:  "0",
			domain.Bucket30To60:   "500",
			domain.Bucket60To180:  "0",
			domain.Bucket180To360: "0",
			domain.BucketOver360:  "0",
		}, bucketAmounts(summary.Buckets))
		assert.True(t, summary.OverdueAmount.Equal(decimal.NewFromInt(500)))
	})

	t.Run("overpayment is reported as advance credit", func(t *testing.T) {
		summary := accounting.Summarize(customer(0, domain.Debit),
			[]domain.Invoice{invoice("A", 0, 200)},
			[]domain.Payment{payment("P", 1, 350, "Cash")},
			calendarAt(3))
		assert.True(t, summary.TotalReceivable.IsZero())
		assert.True(t, summary.AdvanceCredit.Equal(decimal.NewFromInt(150)))
	})
}

func TestSummarize_Completeness(t *testing.T) {
	cal := calendarAt(520)
	for seed := int64(1); seed <= 200; seed++ {
		invoices, payments := randomHistory(seed)
		summary := accounting.Summarize(customer(0, domain.Debit), invoices, payments, cal)

		sum := decimal.Zero
		for _, b := range summary.Buckets {
			require.False(t, b.Amount.IsNegative(), "seed %d", seed)
			sum = sum.Add(b.Amount)
		}
		expected := decimal.Max(decimal.Zero, summary.TotalInvoiced.Sub(summary.TotalPaid))
		require.True(t, expected.Equal(sum), "seed %d: buckets %s != %s", seed, sum, expected)
		require.True(t, expected.Equal(summary.TotalReceivable), "seed %d", seed)
		require.True(t, sum.Equal(summary.CurrentAmount.Add(summary.OverdueAmount)), "seed %d", seed)

		again := accounting.Summarize(customer(0, domain.Debit), invoices, payments, cal)
		require.Equal(t, summary, again, "seed %d not deterministic", seed)
	}
}
