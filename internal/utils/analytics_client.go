// analytics_client.go wraps the posthog client so callers need not care whether analytics is configured.
package utils

import (
	"log/slog"

	"github.com/posthog/posthog-go"
)

const posthogEndpoint = "https://eu.i.posthog.com"

// AnalyticsClient forwards product analytics events to PostHog. A zero value is a no-op.
type AnalyticsClient struct {
	client posthog.Client
	logger *slog.Logger
}

// NewAnalyticsClient creates a client for apiKey. An empty key yields a disabled client.
func NewAnalyticsClient(apiKey string, logger *slog.Logger) *AnalyticsClient {
	if apiKey == "" {
		logger.Warn("Posthog API key is empty, report analytics disabled.")
		return &AnalyticsClient{}
	}
	client, err := posthog.NewWithConfig(apiKey, posthog.Config{Endpoint: posthogEndpoint})
	if err != nil {
		logger.Error("Failed to initialize posthog client", slog.String("error", err.Error()))
		return &AnalyticsClient{}
	}
	logger.Info("Posthog client initialized")
	return &AnalyticsClient{client: client, logger: logger}
}

func (a *AnalyticsClient) Enabled() bool {
	return a != nil && a.client != nil
}

// Track enqueues one event. Enqueue failures are logged, never returned.
func (a *AnalyticsClient) Track(distinctID, event string, properties map[string]any) {
	if !a.Enabled() {
		return
	}
	err := a.client.Enqueue(posthog.Capture{
		DistinctId: distinctID,
		Event:      event,
		Properties: properties,
	})
	if err != nil && a.logger != nil {
		a.logger.Warn("Failed to enqueue analytics event", slog.String("event", event), slog.String("error", err.Error()))
	}
}

func (a *AnalyticsClient) Close() {
	if !a.Enabled() {
		return
	}
	if err := a.client.Close(); err != nil && a.logger != nil {
		a.logger.Warn("Failed to close posthog client", slog.String("error", err.Error()))
	}
}
