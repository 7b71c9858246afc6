package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/SscSPs/billing_ledger_app/internal/apperrors"
	"github.com/SscSPs/billing_ledger_app/internal/core/domain"
	portsrepo "github.com/SscSPs/billing_ledger_app/internal/core/ports/repositories"
	"github.com/SscSPs/billing_ledger_app/internal/utils/accounting"
	"github.com/go-playground/validator/v10"
	"golang.org/x/sync/errgroup"
)

// PartyHistory is the full invoice and payment history of one party, both
// sorted ascending by date.
type PartyHistory struct {
	Party    domain.Party
	Invoices []domain.Invoice
	Payments []domain.Payment
}

// TransactionAggregator collects a party and its records from the record stores.
type TransactionAggregator struct {
	BaseService
	partyRepo   portsrepo.PartyReader
	invoiceRepo portsrepo.InvoiceReader
	paymentRepo portsrepo.PaymentReader
	validate    *validator.Validate
}

// NewTransactionAggregator creates an aggregator over the given repositories.
func NewTransactionAggregator(repos portsrepo.RepositoryProvider) *TransactionAggregator {
	return &TransactionAggregator{
		partyRepo:   repos.PartyRepo,
		invoiceRepo: repos.InvoiceRepo,
		paymentRepo: repos.PaymentRepo,
		validate:    validator.New(),
	}
}

// ValidateIdentifiers checks the company and party ids and the party kind
// without touching any store.
func (a *TransactionAggregator) ValidateIdentifiers(companyID string, kind domain.PartyKind, partyID string) error {
	if err := a.validate.Var(companyID, "required,uuid"); err != nil {
		return fmt.Errorf("%w: company id %q", apperrors.ErrInvalidIdentifier, companyID)
	}
	if err := a.validate.Var(partyID, "required,uuid"); err != nil {
		return fmt.Errorf("%w: party id %q", apperrors.ErrInvalidIdentifier, partyID)
	}
	if !kind.Valid() {
		return fmt.Errorf("%w: unknown party kind %q", apperrors.ErrValidation, kind)
	}
	return nil
}

// Collect resolves the party and then fetches its invoices and payments
// concurrently. If either fetch fails the whole call fails.
func (a *TransactionAggregator) Collect(ctx context.Context, companyID string, kind domain.PartyKind, partyID string) (*PartyHistory, error) {
	if err := a.ValidateIdentifiers(companyID, kind, partyID); err != nil {
		return nil, err
	}

	party, err := a.partyRepo.FindPartyByID(ctx, companyID, kind, partyID)
	if err != nil {
		if errors.Is(err, apperrors.ErrPartyNotFound) {
			return nil, err
		}
		a.LogError(ctx, err, "Failed to fetch party",
			slog.String("company_id", companyID),
			slog.String("party_id", partyID))
		return nil, fmt.Errorf("%w: fetching party %s: %w", apperrors.ErrRepository, partyID, err)
	}
	if party == nil {
		return nil, fmt.Errorf("%w: %s", apperrors.ErrPartyNotFound, partyID)
	}

	var invoices []domain.Invoice
	var payments []domain.Payment

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		found, err := a.invoiceRepo.ListInvoicesByParty(gctx, companyID, partyID)
		if err != nil {
			return fmt.Errorf("%w: fetching invoices for party %s: %w", apperrors.ErrRepository, partyID, err)
		}
		invoices = found
		return nil
	})
	g.Go(func() error {
		found, err := a.paymentRepo.ListPaymentsByParty(gctx, companyID, partyID)
		if err != nil {
			return fmt.Errorf("%w: fetching payments for party %s: %w", apperrors.ErrRepository, partyID, err)
		}
		payments = found
		return nil
	})
	if err := g.Wait(); err != nil {
		a.LogError(ctx, err, "Failed to fetch party history",
			slog.String("company_id", companyID),
			slog.String("party_id", partyID))
		return nil, err
	}

	a.LogDebug(ctx, "Party history collected",
		slog.String("party_id", partyID),
		slog.Int("invoice_count", len(invoices)),
		slog.Int("payment_count", len(payments)))

	return &PartyHistory{
		Party:    *party,
		Invoices: accounting.SortInvoices(invoices),
		Payments: accounting.SortPayments(payments),
	}, nil
}
