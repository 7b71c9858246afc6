package utils

import (
	"log/slog"
	"testing"

	"github.com/posthog/posthog-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// recordingPosthog captures enqueued messages in place of a network client.
type recordingPosthog struct {
	posthog.Client
	captured []posthog.Capture
	closed   bool
}

func (r *recordingPosthog) Enqueue(msg posthog.Message) error {
	if c, ok := msg.(posthog.Capture); ok {
		r.captured = append(r.captured, c)
	}
	return nil
}

func (r *recordingPosthog) Close() error {
	r.closed = true
	return nil
}

func newAnalyticsClientWith(client posthog.Client, logger *slog.Logger) *AnalyticsClient {
	return &AnalyticsClient{client: client, logger: logger}
}

func TestAnalyticsClient_DisabledWithoutKey(t *testing.T) {
	a := NewAnalyticsClient("", slog.Default())
	assert.False(t, a.Enabled())
	a.Track("user-1", "ledger_viewed", nil)
	a.Close()

	var nilClient *AnalyticsClient
	assert.False(t, nilClient.Enabled())
}

func TestAnalyticsClient_Track(t *testing.T) {
	rec := &recordingPosthog{}
	a := newAnalyticsClientWith(rec, slog.Default())

	a.Track("user-1", "aging_viewed", map[string]any{"party_kind": "CUSTOMER"})
	a.Close()

	require.Len(t, rec.captured, 1)
	assert.Equal(t, "user-1", rec.captured[0].DistinctId)
	assert.Equal(t, "aging_viewed", rec.captured[0].Event)
	assert.Equal(t, "CUSTOMER", rec.captured[0].Properties["party_kind"])
	assert.True(t, rec.closed)
}
