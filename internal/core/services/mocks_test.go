package services_test

import (
	"context"

	"github.com/SscSPs/billing_ledger_app/internal/core/domain"
	"github.com/stretchr/testify/mock"
)

// --- Mock PartyReader ---
type MockPartyRepository struct {
	mock.Mock
}

func (m *MockPartyRepository) FindPartyByID(ctx context.Context, companyID string, kind domain.PartyKind, partyID string) (*domain.Party, error) {
	args := m.Called(ctx, companyID, kind, partyID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Party), args.Error(1)
}

// --- Mock InvoiceReader ---
type MockInvoiceRepository struct {
	mock.Mock
}

func (m *MockInvoiceRepository) ListInvoicesByParty(ctx context.Context, companyID, partyID string) ([]domain.Invoice, error) {
	args := m.Called(ctx, companyID, partyID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Invoice), args.Error(1)
}

// --- Mock PaymentReader ---
type MockPaymentRepository struct {
	mock.Mock
}

func (m *MockPaymentRepository) ListPaymentsByParty(ctx context.Context, companyID, partyID string) ([]domain.Payment, error) {
	args := m.Called(ctx, companyID, partyID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Payment), args.Error(1)
}

// --- Mock AgingPublisher ---
type MockAgingPublisher struct {
	mock.Mock
}

func (m *MockAgingPublisher) PublishAgingSummary(ctx context.Context, companyID string, summary domain.AgingSummary) error {
	args := m.Called(ctx, companyID, summary)
	return args.Error(0)
}
