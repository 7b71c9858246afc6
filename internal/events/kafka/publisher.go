package kafka

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/SscSPs/billing_ledger_app/internal/core/domain"
	portssvc "github.com/SscSPs/billing_ledger_app/internal/core/ports/services"
	"github.com/segmentio/kafka-go"
)

// messageWriter is the part of kafka.Writer the publisher uses.
type messageWriter interface {
	WriteMessages(ctx context.Context, msgs ...kafka.Message) error
	Close() error
}

type Publisher struct {
	writer messageWriter
	now    func() time.Time
}

var _ portssvc.AgingPublisher = (*Publisher)(nil)

// NewPublisher creates a publisher writing to topic on the given brokers.
func NewPublisher(brokers []string, topic string) *Publisher {
	return newPublisher(&kafka.Writer{
		Addr:                   kafka.TCP(brokers...),
		Topic:                  topic,
		Balancer:               &kafka.Hash{},
		AllowAutoTopicCreation: true,
	})
}

func newPublisher(writer messageWriter) *Publisher {
	return &Publisher{writer: writer, now: time.Now}
}

// PublishAgingSummary writes an AgingSummaryComputed message keyed by party id,
// so all summaries of one party land on the same partition.
func (p *Publisher) PublishAgingSummary(ctx context.Context, companyID string, summary domain.AgingSummary) error {
	data, err := json.Marshal(NewAgingSummaryComputed(companyID, summary, p.now()))
	if err != nil {
		return fmt.Errorf("failed to encode aging summary event: %w", err)
	}

	err = p.writer.WriteMessages(ctx, kafka.Message{
		Key:   []byte(summary.Party.PartyID),
		Value: data,
	})
	if err != nil {
		return fmt.Errorf("failed to write aging summary event: %w", err)
	}
	return nil
}

// Close flushes pending messages and releases the writer.
func (p *Publisher) Close() error {
	return p.writer.Close()
}
