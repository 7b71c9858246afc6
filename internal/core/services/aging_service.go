package services

import (
	"context"
	"log/slog"
	"time"

	"github.com/SscSPs/billing_ledger_app/internal/core/domain"
	portsrepo "github.com/SscSPs/billing_ledger_app/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/billing_ledger_app/internal/core/ports/services"
	"github.com/SscSPs/billing_ledger_app/internal/platform/calendar"
	"github.com/SscSPs/billing_ledger_app/internal/utils/accounting"
)

type agingService struct {
	BaseService
	aggregator     *TransactionAggregator
	calendar       calendar.CivilCalendar
	publisher      portssvc.AgingPublisher
	publishTimeout time.Duration
}

// AgingServiceOption is a functional option for configuring the aging service
type AgingServiceOption func(*agingService)

// WithAgingPublisher forwards every computed summary to publisher.
func WithAgingPublisher(publisher portssvc.AgingPublisher) AgingServiceOption {
	return func(s *agingService) {
		s.publisher = publisher
	}
}

// WithPublishTimeout bounds how long a publish may take. Zero means no bound beyond the request context.
func WithPublishTimeout(timeout time.Duration) AgingServiceOption {
	return func(s *agingService) {
		s.publishTimeout = timeout
	}
}

// NewAgingService creates a new aging service with the provided options
func NewAgingService(repos portsrepo.RepositoryProvider, cal calendar.CivilCalendar, options ...AgingServiceOption) portssvc.AgingSvc {
	svc := &agingService{
		aggregator: NewTransactionAggregator(repos),
		calendar:   cal,
	}

	for _, option := range options {
		option(svc)
	}

	return svc
}

var _ portssvc.AgingSvc = (*agingService)(nil)

func (s *agingService) GetAgingSummary(ctx context.Context, companyID string, kind domain.PartyKind, partyID string) (*domain.AgingSummary, error) {
	history, err := s.aggregator.Collect(ctx, companyID, kind, partyID)
	if err != nil {
		return nil, err
	}

	summary := accounting.Summarize(history.Party, history.Invoices, history.Payments, s.calendar)

	s.LogInfo(ctx, "Aging summary computed",
		slog.String("company_id", companyID),
		slog.String("party_id", partyID),
		slog.String("total_receivable", summary.TotalReceivable.String()),
		slog.String("overdue_amount", summary.OverdueAmount.String()))

	s.publish(ctx, companyID, summary)
	return &summary, nil
}

// publish hands the summary to the publisher, if any. Failures are logged only.
func (s *agingService) publish(ctx context.Context, companyID string, summary domain.AgingSummary) {
	if s.publisher == nil {
		return
	}
	if s.publishTimeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, s.publishTimeout)
		defer cancel()
	}
	if err := s.publisher.PublishAgingSummary(ctx, companyID, summary); err != nil {
		s.LogWarn(ctx, "Failed to publish aging summary",
			slog.String("error", err.Error()),
			slog.String("company_id", companyID),
			slog.String("party_id", summary.Party.PartyID))
	}
}
