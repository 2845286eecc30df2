package services_test

import (
	"context"
	"testing"

	"github.com/contazen/erp-ledger/internal/apperrors"
	"github.com/contazen/erp-ledger/internal/core/domain"
	portssvc "github.com/contazen/erp-ledger/internal/core/ports/services"
	"github.com/contazen/erp-ledger/internal/core/services"
	"github.com/contazen/erp-ledger/internal/dto"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

type SalesJournalServiceTestSuite struct {
	suite.Suite
	mockLedgerSvc *MockLedgerService
	mockAuditSvc  *MockAuditService
	service       portssvc.SalesJournalSvcFacade
	companyID     string
	userID        string
}

func (suite *SalesJournalServiceTestSuite) SetupTest() {
	suite.mockLedgerSvc = new(MockLedgerService)
	suite.mockAuditSvc = new(MockAuditService)
	suite.service = services.NewSalesJournalService(suite.mockLedgerSvc, suite.mockAuditSvc)
	suite.companyID = uuid.NewString()
	suite.userID = uuid.NewString()
}

func (suite *SalesJournalServiceTestSuite) expectPostedEntry() *domain.NewEntry {
	captured := &domain.NewEntry{}
	suite.mockLedgerSvc.On("CreateEntry", mock.Anything, mock.AnythingOfType("domain.NewEntry"), (*domain.CarrierPosting)(nil)).
		Run(func(args mock.Arguments) { *captured = args.Get(1).(domain.NewEntry) }).
		Return(&domain.LedgerEntry{EntryID: uuid.NewString()}, nil).Once()
	return captured
}

func (suite *SalesJournalServiceTestSuite) invoiceRequest() dto.CreateSalesInvoiceRequest {
	return dto.CreateSalesInvoiceRequest{
		CustomerRef:   "RO87654321",
		InvoiceNumber: "INV-2042",
		Amount:        decimal.NewFromInt(119),
		NetAmount:     decimal.NewFromInt(100),
		VATAmount:     decimal.NewFromInt(19),
		CurrencyCode:  "RON",
		Description:   "Consulting services",
	}
}

func lineByAccount(lines []domain.NewLine, accountCode string) (domain.NewLine, bool) {
	for _, line := range lines {
		if line.AccountCode == accountCode {
			return line, true
		}
	}
	return domain.NewLine{}, false
}

func (suite *SalesJournalServiceTestSuite) TestCreateSalesInvoiceEntry_Success() {
	ctx := context.Background()
	entry := suite.expectPostedEntry()
	suite.mockAuditSvc.On("Log", ctx, suite.userID, suite.companyID, domain.AuditCreate, "sales_invoice", "INV-2042", mock.Anything).Return().Once()

	created, err := suite.service.CreateSalesInvoiceEntry(ctx, suite.companyID, suite.invoiceRequest(), suite.userID)

	suite.Require().NoError(err)
	suite.NotNil(created)
	suite.Equal(domain.EntrySales, entry.EntryType)
	suite.Equal("INV-2042", entry.ReferenceNumber)

	suite.Require().Len(entry.Lines, 3)
	receivable, ok := lineByAccount(entry.Lines, "4111")
	suite.Require().True(ok)
	suite.True(decimal.NewFromInt(119).Equal(receivable.Debit))
	revenue, ok := lineByAccount(entry.Lines, "707")
	suite.Require().True(ok)
	suite.True(decimal.NewFromInt(100).Equal(revenue.Credit))
	vat, ok := lineByAccount(entry.Lines, "4427")
	suite.Require().True(ok)
	suite.True(decimal.NewFromInt(19).Equal(vat.Credit))
}

func (suite *SalesJournalServiceTestSuite) TestCreateCreditNoteEntry_MirrorsInvoice() {
	ctx := context.Background()
	entry := suite.expectPostedEntry()
	suite.mockAuditSvc.On("Log", ctx, suite.userID, suite.companyID, domain.AuditCreate, "credit_note", "INV-2042", mock.Anything).Return().Once()

	_, err := suite.service.CreateCreditNoteEntry(ctx, suite.companyID, suite.invoiceRequest(), suite.userID)

	suite.Require().NoError(err)
	suite.Require().Len(entry.Lines, 3)
	receivable, ok := lineByAccount(entry.Lines, "4111")
	suite.Require().True(ok)
	suite.True(decimal.NewFromInt(119).Equal(receivable.Credit))
	revenue, ok := lineByAccount(entry.Lines, "707")
	suite.Require().True(ok)
	suite.True(decimal.NewFromInt(100).Equal(revenue.Debit))
}

func (suite *SalesJournalServiceTestSuite) TestCreateSalesInvoiceEntry_VATExempt() {
	ctx := context.Background()
	entry := suite.expectPostedEntry()
	suite.mockAuditSvc.On("Log", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything).Return().Once()

	req := suite.invoiceRequest()
	req.Amount = decimal.NewFromInt(100)
	req.VATAmount = decimal.Zero

	_, err := suite.service.CreateSalesInvoiceEntry(ctx, suite.companyID, req, suite.userID)

	suite.Require().NoError(err)
	suite.Len(entry.Lines, 2)
}

func (suite *SalesJournalServiceTestSuite) TestCreateSalesInvoiceEntry_TotalsMismatch() {
	ctx := context.Background()
	req := suite.invoiceRequest()
	req.NetAmount = decimal.NewFromInt(90)

	_, err := suite.service.CreateSalesInvoiceEntry(ctx, suite.companyID, req, suite.userID)

	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.ErrorIs(err, services.ErrInvoiceTotalsMismatch)
	suite.mockLedgerSvc.AssertNotCalled(suite.T(), "CreateEntry", mock.Anything, mock.Anything, mock.Anything)
}

func (suite *SalesJournalServiceTestSuite) TestCreateCreditNoteEntry_NegativeVATRejected() {
	ctx := context.Background()
	req := suite.invoiceRequest()
	req.VATAmount = decimal.NewFromInt(-19)

	_, err := suite.service.CreateCreditNoteEntry(ctx, suite.companyID, req, suite.userID)

	suite.ErrorIs(err, apperrors.ErrValidation)
}

func TestSalesJournalServiceTestSuite(t *testing.T) {
	suite.Run(t, new(SalesJournalServiceTestSuite))
}
