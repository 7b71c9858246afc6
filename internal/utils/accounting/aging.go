package accounting

import (
	"time"

	"github.com/SscSPs/billing_ledger_app/internal/core/domain"
	"github.com/shopspring/decimal"
)

// DayBoundaries is the part of a civil calendar the bucketer needs. Both the
// boundaries and the truncated transaction dates come from the same calendar.
type DayBoundaries interface {
	DaysAgo(n int) time.Time
	StartOfDay(t time.Time) time.Time
}

// AgingCalendar adds the reference day the summary is computed for.
type AgingCalendar interface {
	DayBoundaries
	Today() time.Time
}

// agingLimits are the lower age bounds, in days, of every bucket after Current.
var agingLimits = []struct {
	days  int
	label domain.AgingBucketLabel
}{
	{360, domain.BucketOver360},
	{180, domain.Bucket180To360},
	{60, domain.Bucket60To180},
	{30, domain.Bucket30To60},
}

// BucketAging sums unsettled amounts into the half-open age windows
// [0,30), [30,60), [60,180), [180,360) and [360,inf). Future-dated amounts count as Current.
// The buckets are returned in ascending age order.
func BucketAging(items []domain.UnsettledItem, cal DayBoundaries) []domain.AgingBucket {
	sums := make(map[domain.AgingBucketLabel]decimal.Decimal, len(domain.AgingBucketLabels))
	for _, label := range domain.AgingBucketLabels {
		sums[label] = decimal.Zero
	}

	boundaries := make([]time.Time, len(agingLimits))
	for i, limit := range agingLimits {
		boundaries[i] = cal.DaysAgo(limit.days)
	}

	for _, item := range items {
		label := ageLabel(cal.StartOfDay(item.Date), boundaries)
		sums[label] = sums[label].Add(item.Amount)
	}

	buckets := make([]domain.AgingBucket, 0, len(domain.AgingBucketLabels))
	for _, label := range domain.AgingBucketLabels {
		buckets = append(buckets, domain.AgingBucket{Label: label, Amount: sums[label]})
	}
	return buckets
}

// ageLabel finds the oldest window whose boundary the day is on or before.
func ageLabel(day time.Time, boundaries []time.Time) domain.AgingBucketLabel {
	for i, boundary := range boundaries {
		if !day.After(boundary) {
			return agingLimits[i].label
		}
	}
	return domain.BucketCurrent
}

// Summarize runs FIFO settlement and bucketing over a party's full history.
// Invoices and payments may arrive in any order.
func Summarize(party domain.Party, invoices []domain.Invoice, payments []domain.Payment, cal AgingCalendar) domain.AgingSummary {
	sorted := SortInvoices(invoices)
	totalInvoiced := SumInvoices(sorted)
	totalPaid := SumPayments(payments)

	settlement := FindBreakeven(sorted, totalPaid)
	buckets := BucketAging(UnsettledTail(sorted, settlement), cal)

	summary := domain.AgingSummary{
		Party:           party,
		AsOf:            cal.Today(),
		TotalInvoiced:   totalInvoiced,
		TotalPaid:       totalPaid,
		TotalReceivable: decimal.Zero,
		AdvanceCredit:   decimal.Zero,
		CurrentAmount:   decimal.Zero,
		OverdueAmount:   decimal.Zero,
		Buckets:         buckets,
		Settlement:      settlement,
	}

	net := totalInvoiced.Sub(totalPaid)
	if net.IsPositive() {
		summary.TotalReceivable = net
	} else {
		summary.AdvanceCredit = net.Neg()
	}

	for _, b := range buckets {
		if b.Label == domain.BucketCurrent {
			summary.CurrentAmount = summary.CurrentAmount.Add(b.Amount)
		} else {
			summary.OverdueAmount = summary.OverdueAmount.Add(b.Amount)
		}
	}
	return summary
}
