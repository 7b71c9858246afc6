package services

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/SscSPs/billing_ledger_app/internal/apperrors"
	"github.com/SscSPs/billing_ledger_app/internal/core/domain"
	portsrepo "github.com/SscSPs/billing_ledger_app/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/billing_ledger_app/internal/core/ports/services"
	"github.com/SscSPs/billing_ledger_app/internal/platform/calendar"
	"github.com/SscSPs/billing_ledger_app/internal/utils/accounting"
)

type ledgerService struct {
	BaseService
	aggregator *TransactionAggregator
	calendar   calendar.CivilCalendar
}

// NewLedgerService creates a new ledger service.
func NewLedgerService(repos portsrepo.RepositoryProvider, cal calendar.CivilCalendar) portssvc.LedgerSvc {
	return &ledgerService{
		aggregator: NewTransactionAggregator(repos),
		calendar:   cal,
	}
}

var _ portssvc.LedgerSvc = (*ledgerService)(nil)

func (s *ledgerService) GetLedger(ctx context.Context, companyID string, kind domain.PartyKind, partyID string, dateRange domain.DateRange) (*domain.PartyLedger, error) {
	if dateRange.From != nil && dateRange.To != nil && dateRange.From.After(*dateRange.To) {
		return nil, fmt.Errorf("%w: fromDate %s is after toDate %s", apperrors.ErrValidation,
			dateRange.From.Format(time.DateOnly), dateRange.To.Format(time.DateOnly))
	}

	history, err := s.aggregator.Collect(ctx, companyID, kind, partyID)
	if err != nil {
		return nil, err
	}

	txns := accounting.MergeTransactions(
		accounting.NormalizeInvoices(history.Invoices, kind),
		accounting.NormalizePayments(history.Payments, kind),
	)
	ledger := accounting.BuildLedger(history.Party, txns, s.calendar.FiscalYearStart())

	if dateRange.IsSet() {
		s.LogDebug(ctx, "Date range supplied, returning full history",
			slog.String("party_id", partyID))
	}
	s.LogInfo(ctx, "Ledger built",
		slog.String("company_id", companyID),
		slog.String("party_id", partyID),
		slog.Int("entry_count", len(ledger.Entries)),
		slog.String("closing_balance", ledger.ClosingBalance.String()))

	return &domain.PartyLedger{
		Party:  history.Party,
		Range:  dateRange,
		Ledger: ledger,
	}, nil
}
