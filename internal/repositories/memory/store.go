package memory

import (
	"context"
	"fmt"
	"sync"

	"github.com/SscSPs/billing_ledger_app/internal/apperrors"
	"github.com/SscSPs/billing_ledger_app/internal/core/domain"
	portsrepo "github.com/SscSPs/billing_ledger_app/internal/core/ports/repositories"
)

// Store is an in-memory implementation of the party, invoice and payment readers.
// It is safe for concurrent use and always hands out copies.
type Store struct {
	mu       sync.RWMutex
	parties  map[string]domain.Party
	invoices []domain.Invoice
	payments []domain.Payment
}

var (
	_ portsrepo.PartyReader   = (*Store)(nil)
	_ portsrepo.InvoiceReader = (*Store)(nil)
	_ portsrepo.PaymentReader = (*Store)(nil)
)

// NewStore creates an empty Store.
func NewStore() *Store {
	return &Store{
		parties:  make(map[string]domain.Party),
		invoices: make([]domain.Invoice, 0),
		payments: make([]domain.Payment, 0),
	}
}

// Provider exposes the store as a RepositoryProvider.
func (s *Store) Provider() portsrepo.RepositoryProvider {
	return portsrepo.RepositoryProvider{
		PartyRepo:   s,
		InvoiceRepo: s,
		PaymentRepo: s,
	}
}

func partyKey(companyID, partyID string) string {
	return companyID + "/" + partyID
}

// AddParty stores or replaces a party.
func (s *Store) AddParty(party domain.Party) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.parties[partyKey(party.CompanyID, party.PartyID)] = party
}

// AddInvoices appends invoices in the given order.
func (s *Store) AddInvoices(invoices ...domain.Invoice) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.invoices = append(s.invoices, invoices...)
}

// AddPayments appends payments in the given order.
func (s *Store) AddPayments(payments ...domain.Payment) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.payments = append(s.payments, payments...)
}

func (s *Store) FindPartyByID(ctx context.Context, companyID string, kind domain.PartyKind, partyID string) (*domain.Party, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	s.mu.RLock()
	defer s.mu.RUnlock()

	party, ok := s.parties[partyKey(companyID, partyID)]
	if !ok || party.Kind != kind {
		return nil, fmt.Errorf("%w: %s %s", apperrors.ErrPartyNotFound, kind, partyID)
	}
	return &party, nil
}

// ListInvoicesByParty returns the party's invoices in insertion order.
func (s *Store) ListInvoicesByParty(ctx context.Context, companyID, partyID string) ([]domain.Invoice, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	s.mu.RLock()
	defer s.mu.RUnlock()

	result := make([]domain.Invoice, 0)
	for _, inv := range s.invoices {
		if inv.CompanyID == companyID && inv.PartyID == partyID {
			result = append(result, inv)
		}
	}
	return result, nil
}

// ListPaymentsByParty returns the party's payments in insertion order.
func (s *Store) ListPaymentsByParty(ctx context.Context, companyID, partyID string) ([]domain.Payment, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	s.mu.RLock()
	defer s.mu.RUnlock()

	result := make([]domain.Payment, 0)
	for _, p := range s.payments {
		if p.CompanyID == companyID && p.PartyID == partyID {
			result = append(result, p)
		}
	}
	return result, nil
}
