package services_test

import (
	"context"
	"testing"
	"time"

	"github.com/SscSPs/billing_ledger_app/internal/apperrors"
	"github.com/SscSPs/billing_ledger_app/internal/core/domain"
	portssvc "github.com/SscSPs/billing_ledger_app/internal/core/ports/services"
	"github.com/SscSPs/billing_ledger_app/internal/core/services"
	"github.com/SscSPs/billing_ledger_app/internal/platform/calendar"
	"github.com/SscSPs/billing_ledger_app/internal/repositories/memory"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"
)

// day0 falls inside Jalali year 1403, which began on 2024-03-20.
var day0 = time.Date(2024, time.April, 1, 0, 0, 0, 0, time.UTC)

func onDay(n int) time.Time {
	return day0.AddDate(0, 0, n)
}

func fixedCalendar(todayOffset int) calendar.CivilCalendar {
	now := onDay(todayOffset).Add(9 * time.Hour)
	return calendar.NewJalali(time.UTC, func() time.Time { return now })
}

type LedgerServiceTestSuite struct {
	suite.Suite
	store     *memory.Store
	service   portssvc.LedgerSvc
	companyID string
	partyID   string
}

func (suite *LedgerServiceTestSuite) SetupTest() {
	suite.store = memory.NewStore()
	suite.service = services.NewLedgerService(suite.store.Provider(), fixedCalendar(60))
	suite.companyID = uuid.NewString()
	suite.partyID = uuid.NewString()
}

func (suite *LedgerServiceTestSuite) addParty(kind domain.PartyKind, opening int64, orientation domain.Orientation) {
	suite.store.AddParty(domain.Party{
		PartyID:                   suite.partyID,
		CompanyID:                 suite.companyID,
		Kind:                      kind,
		Name:                      "Acme Trading",
		OpeningBalance:            decimal.NewFromInt(opening),
		OpeningBalanceOrientation: orientation,
	})
}

func (suite *LedgerServiceTestSuite) addInvoice(number string, day int, amount int64) {
	suite.store.AddInvoices(domain.Invoice{
		InvoiceID:  uuid.NewString(),
		CompanyID:  suite.companyID,
		PartyID:    suite.partyID,
		Number:     number,
		IssueDate:  onDay(day),
		GrandTotal: decimal.NewFromInt(amount),
	})
}

func (suite *LedgerServiceTestSuite) addPayment(day int, amount int64, method string) {
	suite.store.AddPayments(domain.Payment{
		PaymentID:   uuid.NewString(),
		CompanyID:   suite.companyID,
		PartyID:     suite.partyID,
		PaymentDate: onDay(day),
		Amount:      decimal.NewFromInt(amount),
		Method:      method,
	})
}

func (suite *LedgerServiceTestSuite) TestGetLedger_SettledInvoice() {
	suite.addParty(domain.Customer, 0, domain.Debit)
	suite.addInvoice("1001", 0, 1000)
	suite.addPayment(5, 1000, "Cash")

	result, err := suite.service.GetLedger(context.Background(), suite.companyID, domain.Customer, suite.partyID, domain.DateRange{})

	suite.Require().NoError(err)
	suite.Require().Len(result.Entries, 2)
	suite.Equal("Invoice #1001", result.Entries[0].Label)
	suite.Equal("Payment Cash", result.Entries[1].Label)
	suite.True(result.ClosingBalance.IsZero())
	suite.Equal(domain.Debit, result.ClosingOrientation())
}

func (suite *LedgerServiceTestSuite) TestGetLedger_OpeningBalanceAtFiscalYearStart() {
	suite.addParty(domain.Customer, 500, domain.Debit)
	suite.addInvoice("1001", 0, 1000)
	suite.addPayment(10, 300, "Cheque")

	result, err := suite.service.GetLedger(context.Background(), suite.companyID, domain.Customer, suite.partyID, domain.DateRange{})

	suite.Require().NoError(err)
	suite.Require().Len(result.Entries, 3)
	opening := result.Entries[0]
	suite.Equal(domain.SourceOpening, opening.Source)
	suite.Equal(time.Date(2024, time.March, 20, 0, 0, 0, 0, time.UTC), opening.Date)
	suite.True(opening.RunningBalance.Equal(decimal.NewFromInt(500)))
	suite.True(result.ClosingBalance.Equal(decimal.NewFromInt(1200)))
	suite.Equal(domain.Debit, result.ClosingOrientation())
	suite.Equal("Acme Trading", result.Party.Name)
}

func (suite *LedgerServiceTestSuite) TestGetLedger_SupplierIsMirrored() {
	suite.addParty(domain.Supplier, 0, domain.Debit)
	suite.addInvoice("B-7", 0, 800)
	suite.addPayment(3, 200, "Transfer")

	result, err := suite.service.GetLedger(context.Background(), suite.companyID, domain.Supplier, suite.partyID, domain.DateRange{})

	suite.Require().NoError(err)
	suite.True(result.Entries[0].Credit.Equal(decimal.NewFromInt(800)))
	suite.True(result.ClosingBalance.Equal(decimal.NewFromInt(-600)))
	suite.Equal(domain.Credit, result.ClosingOrientation())
}

func (suite *LedgerServiceTestSuite) TestGetLedger_DateRangeEchoedNotApplied() {
	suite.addParty(domain.Customer, 0, domain.Debit)
	suite.addInvoice("1001", 0, 1000)
	suite.addInvoice("1002", 40, 250)
	from, to := onDay(30), onDay(50)

	result, err := suite.service.GetLedger(context.Background(), suite.companyID, domain.Customer, suite.partyID, domain.DateRange{From: &from, To: &to})

	suite.Require().NoError(err)
	suite.Len(result.Entries, 2)
	suite.Equal(&from, result.Range.From)
	suite.Equal(&to, result.Range.To)
}

func (suite *LedgerServiceTestSuite) TestGetLedger_InvertedRange() {
	from, to := onDay(10), onDay(1)

	result, err := suite.service.GetLedger(context.Background(), suite.companyID, domain.Customer, suite.partyID, domain.DateRange{From: &from, To: &to})

	suite.Nil(result)
	suite.ErrorIs(err, apperrors.ErrValidation)
}

func (suite *LedgerServiceTestSuite) TestGetLedger_UnknownParty() {
	result, err := suite.service.GetLedger(context.Background(), suite.companyID, domain.Customer, suite.partyID, domain.DateRange{})

	suite.Nil(result)
	suite.ErrorIs(err, apperrors.ErrPartyNotFound)
}

func (suite *LedgerServiceTestSuite) TestGetLedger_EmptyHistory() {
	suite.addParty(domain.Customer, 0, domain.Debit)

	result, err := suite.service.GetLedger(context.Background(), suite.companyID, domain.Customer, suite.partyID, domain.DateRange{})

	suite.Require().NoError(err)
	suite.NotNil(result.Entries)
	suite.Empty(result.Entries)
	suite.True(result.ClosingBalance.IsZero())
}

func TestLedgerServiceTestSuite(t *testing.T) {
	suite.Run(t, new(LedgerServiceTestSuite))
}
