package kafka

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/SscSPs/billing_ledger_app/internal/core/domain"
	"github.com/segmentio/kafka-go"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type recordingWriter struct {
	messages []kafka.Message
	err      error
	closed   bool
}

func (w *recordingWriter) WriteMessages(_ context.Context, msgs ...kafka.Message) error {
	if w.err != nil {
		return w.err
	}
	w.messages = append(w.messages, msgs...)
	return nil
}

func (w *recordingWriter) Close() error {
	w.closed = true
	return nil
}

func sampleSummary() domain.AgingSummary {
	return domain.AgingSummary{
		Party:           domain.Party{PartyID: "7d7c3a64-0a7e-4c0b-9a43-2f2ad1f3a1b0", Kind: domain.Customer},
		AsOf:            time.Date(2024, 3, 20, 0, 0, 0, 0, time.UTC),
		TotalInvoiced:   decimal.NewFromInt(1000),
		TotalPaid:       decimal.NewFromInt(300),
		TotalReceivable: decimal.NewFromInt(700),
		AdvanceCredit:   decimal.Zero,
		CurrentAmount:   decimal.NewFromInt(700),
		OverdueAmount:   decimal.Zero,
		Buckets: []domain.AgingBucket{
			{Label: domain.BucketCurrent, Amount: decimal.NewFromInt(700)},
			{Label: domain.Bucket30To60, Amount: decimal.Zero},
		},
	}
}

func TestPublishAgingSummary_WritesKeyedMessage(t *testing.T) {
	w := &recordingWriter{}
	p := newPublisher(w)
	occurred := time.Date(2024, 3, 20, 8, 30, 0, 0, time.UTC)
	p.now = func() time.Time { return occurred }

	err := p.PublishAgingSummary(context.Background(), "company-1", sampleSummary())
	require.NoError(t, err)
	require.Len(t, w.messages, 1)

	msg := w.messages[0]
	assert.Equal(t, "7d7c3a64-0a7e-4c0b-9a43-2f2ad1f3a1b0", string(msg.Key))

	var event AgingSummaryComputed
	require.NoError(t, json.Unmarshal(msg.Value, &event))
	assert.Equal(t, "company-1", event.CompanyID)
	assert.Equal(t, "CUSTOMER", event.PartyKind)
	assert.Equal(t, "2024-03-20", event.AsOf)
	assert.True(t, event.TotalReceivable.Equal(decimal.NewFromInt(700)))
	assert.Equal(t, occurred, event.OccurredAt)
	require.Len(t, event.Buckets, 2)
	assert.Equal(t, "Current", event.Buckets[0].Label)
}

func TestPublishAgingSummary_WrapsWriterError(t *testing.T) {
	cause := errors.New("broker unavailable")
	p := newPublisher(&recordingWriter{err: cause})

	err := p.PublishAgingSummary(context.Background(), "company-1", sampleSummary())

	assert.ErrorIs(t, err, cause)
}

func TestClose_ClosesWriter(t *testing.T) {
	w := &recordingWriter{}
	require.NoError(t, newPublisher(w).Close())
	assert.True(t, w.closed)
}
