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

type BankJournalServiceTestSuite struct {
	suite.Suite
	mockCarrierRepo *MockCarrierRepository
	mockLedgerSvc   *MockLedgerService
	mockAuditSvc    *MockAuditService
	service         portssvc.BankJournalSvcFacade
	companyID       string
	userID          string
	account         *domain.BankAccount
}

func (suite *BankJournalServiceTestSuite) SetupTest() {
	suite.mockCarrierRepo = new(MockCarrierRepository)
	suite.mockLedgerSvc = new(MockLedgerService)
	suite.mockAuditSvc = new(MockAuditService)
	suite.service = services.NewBankJournalService(suite.mockCarrierRepo, suite.mockLedgerSvc, suite.mockAuditSvc)

	suite.companyID = uuid.NewString()
	suite.userID = uuid.NewString()
	suite.account = &domain.BankAccount{
		BankAccountID:  uuid.NewString(),
		CompanyID:      suite.companyID,
		Name:           "Operational RON",
		IBAN:           "RO49AAAA1B31007593840000",
		CurrencyCode:   "RON",
		AccountCode:    "5121",
		CurrentBalance: decimal.NewFromInt(1000),
		IsActive:       true,
	}
}

// expectPostedEntry wires the ledger mock to accept one CreateEntry call,
// simulating what the repository does: filling the posting's entry link and
// running balances before returning the hydrated entry.
func (suite *BankJournalServiceTestSuite) expectPostedEntry(entryID string, balanceBefore decimal.Decimal) {
	suite.mockLedgerSvc.On("CreateEntry", mock.Anything, mock.AnythingOfType("domain.NewEntry"), mock.AnythingOfType("*domain.CarrierPosting")).
		Run(func(args mock.Arguments) {
			posting := args.Get(2).(*domain.CarrierPosting)
			suite.Require().NotNil(posting.Bank)
			posting.Bank.LedgerEntryID = entryID
			posting.Bank.BalanceBefore = balanceBefore
			posting.Bank.BalanceAfter = balanceBefore.Add(posting.Bank.Amount)
		}).
		Return(&domain.LedgerEntry{EntryID: entryID, EntryType: domain.EntryBank}, nil).Once()
}

func (suite *BankJournalServiceTestSuite) TestCreateBankAccount_DefaultsAccountCode() {
	ctx := context.Background()
	req := dto.CreateBankAccountRequest{
		Name:         "Payroll",
		IBAN:         "RO12BBBB1B31007593840001",
		CurrencyCode: "RON",
	}

	var saved domain.BankAccount
	suite.mockCarrierRepo.On("SaveBankAccount", ctx, mock.AnythingOfType("domain.BankAccount")).
		Run(func(args mock.Arguments) { saved = args.Get(1).(domain.BankAccount) }).
		Return(nil).Once()
	suite.mockAuditSvc.On("Log", ctx, suite.userID, suite.companyID, domain.AuditCreate, "bank_account", mock.Anything, mock.Anything).Return().Once()

	account, err := suite.service.CreateBankAccount(ctx, suite.companyID, req, suite.userID)

	suite.Require().NoError(err)
	suite.Equal("5121", account.AccountCode)
	suite.Equal("5121", saved.AccountCode)
	suite.True(account.IsActive)
}

func (suite *BankJournalServiceTestSuite) TestRecordBankTransaction_IncomingWithFee() {
	ctx := context.Background()
	entryID := uuid.NewString()

	suite.mockCarrierRepo.On("FindBankAccountByID", ctx, suite.account.BankAccountID).Return(suite.account, nil).Once()
	suite.expectPostedEntry(entryID, suite.account.CurrentBalance)
	suite.mockAuditSvc.On("Log", ctx, suite.userID, suite.companyID, domain.AuditCreate, "bank_transaction", mock.Anything, mock.Anything).Return().Once()

	txn, err := suite.service.RecordBankTransaction(ctx, suite.companyID, suite.account.BankAccountID, dto.RecordBankTransactionRequest{
		TransactionType: domain.BankIncomingPayment,
		Amount:          decimal.NewFromInt(100),
		Fees:            decimal.NewFromInt(5),
		Description:     "Card settlement",
	}, suite.userID)

	suite.Require().NoError(err)
	// The movement recorded on the carrier is the net of the fee.
	suite.True(decimal.NewFromInt(95).Equal(txn.Amount), "got %s", txn.Amount)
	suite.Equal(entryID, txn.LedgerEntryID)
	suite.True(decimal.NewFromInt(1000).Equal(txn.BalanceBefore))
	suite.True(decimal.NewFromInt(1095).Equal(txn.BalanceAfter))
	suite.mockLedgerSvc.AssertExpectations(suite.T())
}

func (suite *BankJournalServiceTestSuite) TestRecordBankTransaction_ZeroAmount() {
	ctx := context.Background()

	suite.mockCarrierRepo.On("FindBankAccountByID", ctx, suite.account.BankAccountID).Return(suite.account, nil).Once()

	_, err := suite.service.RecordBankTransaction(ctx, suite.companyID, suite.account.BankAccountID, dto.RecordBankTransactionRequest{
		TransactionType: domain.BankFee,
		Amount:          decimal.Zero,
		Description:     "Empty row",
	}, suite.userID)

	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.ErrorIs(err, services.ErrAmountZero)
	suite.mockLedgerSvc.AssertNotCalled(suite.T(), "CreateEntry", mock.Anything, mock.Anything, mock.Anything)
}

func (suite *BankJournalServiceTestSuite) TestRecordBankTransaction_NegativeFees() {
	ctx := context.Background()

	suite.mockCarrierRepo.On("FindBankAccountByID", ctx, suite.account.BankAccountID).Return(suite.account, nil).Once()

	_, err := suite.service.RecordBankTransaction(ctx, suite.companyID, suite.account.BankAccountID, dto.RecordBankTransactionRequest{
		TransactionType: domain.BankIncomingPayment,
		Amount:          decimal.NewFromInt(100),
		Fees:            decimal.NewFromInt(-5),
		Description:     "Bad statement row",
	}, suite.userID)

	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.ErrorIs(err, services.ErrFeesNegative)
}

func (suite *BankJournalServiceTestSuite) TestRecordBankTransaction_InactiveAccount() {
	ctx := context.Background()
	suite.account.IsActive = false

	suite.mockCarrierRepo.On("FindBankAccountByID", ctx, suite.account.BankAccountID).Return(suite.account, nil).Once()

	_, err := suite.service.RecordBankTransaction(ctx, suite.companyID, suite.account.BankAccountID, dto.RecordBankTransactionRequest{
		TransactionType: domain.BankIncomingPayment,
		Amount:          decimal.NewFromInt(50),
		Description:     "Late payment",
	}, suite.userID)

	suite.ErrorIs(err, apperrors.ErrConflict)
	suite.ErrorIs(err, services.ErrCarrierInactive)
}

func (suite *BankJournalServiceTestSuite) TestRecordBankTransaction_OtherCompanysAccount() {
	ctx := context.Background()
	suite.account.CompanyID = uuid.NewString()

	suite.mockCarrierRepo.On("FindBankAccountByID", ctx, suite.account.BankAccountID).Return(suite.account, nil).Once()

	_, err := suite.service.RecordBankTransaction(ctx, suite.companyID, suite.account.BankAccountID, dto.RecordBankTransactionRequest{
		TransactionType: domain.BankIncomingPayment,
		Amount:          decimal.NewFromInt(50),
		Description:     "Payment",
	}, suite.userID)

	suite.ErrorIs(err, apperrors.ErrNotFound)
}

func (suite *BankJournalServiceTestSuite) TestRecordTransfer_Success() {
	ctx := context.Background()

	destination := &domain.BankAccount{
		BankAccountID:  uuid.NewString(),
		CompanyID:      suite.companyID,
		Name:           "Payroll RON",
		CurrencyCode:   "RON",
		AccountCode:    "5121.PAYROLL",
		CurrentBalance: decimal.NewFromInt(200),
		IsActive:       true,
	}

	suite.mockCarrierRepo.On("FindBankAccountByID", ctx, suite.account.BankAccountID).Return(suite.account, nil).Once()
	suite.mockCarrierRepo.On("FindBankAccountByID", ctx, destination.BankAccountID).Return(destination, nil).Once()

	var postings []*domain.BankTransaction
	suite.mockLedgerSvc.On("CreateEntry", mock.Anything, mock.AnythingOfType("domain.NewEntry"), mock.AnythingOfType("*domain.CarrierPosting")).
		Run(func(args mock.Arguments) {
			posting := args.Get(2).(*domain.CarrierPosting)
			suite.Require().NotNil(posting.Bank)
			posting.Bank.LedgerEntryID = uuid.NewString()
			postings = append(postings, posting.Bank)
		}).
		Return(&domain.LedgerEntry{EntryID: uuid.NewString(), EntryType: domain.EntryBank}, nil).Twice()
	suite.mockAuditSvc.On("Log", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything).Return().Twice()

	legs, err := suite.service.RecordTransfer(ctx, suite.companyID, dto.RecordBankTransferRequest{
		FromBankAccountID: suite.account.BankAccountID,
		ToBankAccountID:   destination.BankAccountID,
		Amount:            decimal.NewFromInt(400),
		Description:       "Payroll funding",
	}, suite.userID)

	suite.Require().NoError(err)
	suite.Require().Len(legs, 2)
	suite.Require().Len(postings, 2)

	// Outgoing leg first, negative on the source; incoming positive on the
	// destination; both share one correlation reference.
	suite.True(decimal.NewFromInt(-400).Equal(legs[0].Amount))
	suite.Equal(suite.account.BankAccountID, legs[0].BankAccountID)
	suite.True(decimal.NewFromInt(400).Equal(legs[1].Amount))
	suite.Equal(destination.BankAccountID, legs[1].BankAccountID)
	suite.NotEmpty(legs[0].CorrelationRef)
	suite.Equal(legs[0].CorrelationRef, legs[1].CorrelationRef)
}

func (suite *BankJournalServiceTestSuite) TestRecordTransfer_SameAccount() {
	ctx := context.Background()
	accountID := uuid.NewString()

	_, err := suite.service.RecordTransfer(ctx, suite.companyID, dto.RecordBankTransferRequest{
		FromBankAccountID: accountID,
		ToBankAccountID:   accountID,
		Amount:            decimal.NewFromInt(100),
		Description:       "Loop",
	}, suite.userID)

	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.ErrorIs(err, services.ErrTransferSameLeg)
}

func (suite *BankJournalServiceTestSuite) TestRecordTransfer_CurrencyMismatch() {
	ctx := context.Background()

	destination := &domain.BankAccount{
		BankAccountID: uuid.NewString(),
		CompanyID:     suite.companyID,
		CurrencyCode:  "EUR",
		AccountCode:   "5124",
		IsActive:      true,
	}

	suite.mockCarrierRepo.On("FindBankAccountByID", ctx, suite.account.BankAccountID).Return(suite.account, nil).Once()
	suite.mockCarrierRepo.On("FindBankAccountByID", ctx, destination.BankAccountID).Return(destination, nil).Once()

	_, err := suite.service.RecordTransfer(ctx, suite.companyID, dto.RecordBankTransferRequest{
		FromBankAccountID: suite.account.BankAccountID,
		ToBankAccountID:   destination.BankAccountID,
		Amount:            decimal.NewFromInt(100),
		Description:       "Cross-currency",
	}, suite.userID)

	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.ErrorIs(err, services.ErrCurrencyMismatch)
	suite.mockLedgerSvc.AssertNotCalled(suite.T(), "CreateEntry", mock.Anything, mock.Anything, mock.Anything)
}

func TestBankJournalServiceTestSuite(t *testing.T) {
	suite.Run(t, new(BankJournalServiceTestSuite))
}
