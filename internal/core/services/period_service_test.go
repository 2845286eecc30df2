package services_test

import (
	"context"
	"testing"
	"time"

	"github.com/contazen/erp-ledger/internal/apperrors"
	"github.com/contazen/erp-ledger/internal/core/domain"
	portssvc "github.com/contazen/erp-ledger/internal/core/ports/services"
	"github.com/contazen/erp-ledger/internal/core/services"
	"github.com/contazen/erp-ledger/internal/dto"
	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

type PeriodServiceTestSuite struct {
	suite.Suite
	mockPeriodRepo *MockPeriodRepository
	mockAuditSvc   *MockAuditService
	service        portssvc.PeriodSvcFacade
	companyID      string
	userID         string
}

func (suite *PeriodServiceTestSuite) SetupTest() {
	suite.mockPeriodRepo = new(MockPeriodRepository)
	suite.mockAuditSvc = new(MockAuditService)
	suite.service = services.NewPeriodService(suite.mockPeriodRepo, suite.mockAuditSvc)

	suite.companyID = uuid.NewString()
	suite.userID = uuid.NewString()
}

func (suite *PeriodServiceTestSuite) periodWithStatus(status domain.PeriodStatus) *domain.AccountingPeriod {
	return &domain.AccountingPeriod{
		PeriodID:  uuid.NewString(),
		CompanyID: suite.companyID,
		StartDate: time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC),
		EndDate:   time.Date(2025, 3, 31, 0, 0, 0, 0, time.UTC),
		Status:    status,
	}
}

func (suite *PeriodServiceTestSuite) TestCanPost_OpenPeriod() {
	ctx := context.Background()
	date := time.Date(2025, 3, 15, 0, 0, 0, 0, time.UTC)

	suite.mockPeriodRepo.On("FindPeriodForDate", ctx, suite.companyID, date).
		Return(suite.periodWithStatus(domain.PeriodOpen), nil).Once()

	suite.NoError(suite.service.CanPost(ctx, suite.companyID, date))
}

func (suite *PeriodServiceTestSuite) TestCanPost_NoPeriodDeclared() {
	ctx := context.Background()
	date := time.Date(2025, 3, 15, 0, 0, 0, 0, time.UTC)

	suite.mockPeriodRepo.On("FindPeriodForDate", ctx, suite.companyID, date).
		Return(nil, apperrors.ErrNotFound).Once()

	// Companies without declared periods post freely.
	suite.NoError(suite.service.CanPost(ctx, suite.companyID, date))
}

func (suite *PeriodServiceTestSuite) TestCanPost_SoftClosedPeriod() {
	ctx := context.Background()
	date := time.Date(2025, 3, 15, 0, 0, 0, 0, time.UTC)

	suite.mockPeriodRepo.On("FindPeriodForDate", ctx, suite.companyID, date).
		Return(suite.periodWithStatus(domain.PeriodSoftClosed), nil).Once()

	err := suite.service.CanPost(ctx, suite.companyID, date)

	suite.ErrorIs(err, apperrors.ErrPeriodClosed)
	suite.Contains(err.Error(), "SOFT_CLOSED")
}

func (suite *PeriodServiceTestSuite) TestCanPost_LockedPeriod() {
	ctx := context.Background()
	date := time.Date(2025, 3, 15, 0, 0, 0, 0, time.UTC)

	suite.mockPeriodRepo.On("FindPeriodForDate", ctx, suite.companyID, date).
		Return(suite.periodWithStatus(domain.PeriodLocked), nil).Once()

	suite.ErrorIs(suite.service.CanPost(ctx, suite.companyID, date), apperrors.ErrPeriodClosed)
}

func (suite *PeriodServiceTestSuite) TestCreatePeriod_Success() {
	ctx := context.Background()
	req := dto.CreatePeriodRequest{
		StartDate: time.Date(2025, 4, 1, 0, 0, 0, 0, time.UTC),
		EndDate:   time.Date(2025, 4, 30, 0, 0, 0, 0, time.UTC),
	}

	suite.mockPeriodRepo.On("SavePeriod", ctx, mock.AnythingOfType("domain.AccountingPeriod")).Return(nil).Once()
	suite.mockAuditSvc.On("Log", ctx, suite.userID, suite.companyID, domain.AuditCreate, "accounting_period", mock.Anything, mock.Anything).Return().Once()

	period, err := suite.service.CreatePeriod(ctx, suite.companyID, req, suite.userID)

	suite.Require().NoError(err)
	suite.Equal(domain.PeriodOpen, period.Status)
	suite.Equal(suite.companyID, period.CompanyID)
	suite.NotEmpty(period.PeriodID)
	suite.mockPeriodRepo.AssertExpectations(suite.T())
}

func (suite *PeriodServiceTestSuite) TestCreatePeriod_EndBeforeStart() {
	ctx := context.Background()
	req := dto.CreatePeriodRequest{
		StartDate: time.Date(2025, 4, 30, 0, 0, 0, 0, time.UTC),
		EndDate:   time.Date(2025, 4, 1, 0, 0, 0, 0, time.UTC),
	}

	_, err := suite.service.CreatePeriod(ctx, suite.companyID, req, suite.userID)

	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.ErrorIs(err, services.ErrPeriodDatesInvalid)
	suite.mockPeriodRepo.AssertNotCalled(suite.T(), "SavePeriod", mock.Anything, mock.Anything)
}

func (suite *PeriodServiceTestSuite) TestClosePeriod_FromOpen() {
	ctx := context.Background()
	period := suite.periodWithStatus(domain.PeriodOpen)

	suite.mockPeriodRepo.On("FindPeriodByID", ctx, period.PeriodID).Return(period, nil).Once()
	suite.mockPeriodRepo.On("UpdatePeriodStatus", ctx, period.PeriodID, domain.PeriodSoftClosed, suite.userID, mock.AnythingOfType("time.Time")).Return(nil).Once()
	suite.mockAuditSvc.On("Log", ctx, suite.userID, suite.companyID, domain.AuditUpdate, "accounting_period", period.PeriodID, mock.Anything).Return().Once()

	suite.NoError(suite.service.ClosePeriod(ctx, suite.companyID, period.PeriodID, suite.userID))
	suite.mockPeriodRepo.AssertExpectations(suite.T())
}

func (suite *PeriodServiceTestSuite) TestClosePeriod_AlreadyClosed() {
	ctx := context.Background()
	period := suite.periodWithStatus(domain.PeriodSoftClosed)

	suite.mockPeriodRepo.On("FindPeriodByID", ctx, period.PeriodID).Return(period, nil).Once()

	err := suite.service.ClosePeriod(ctx, suite.companyID, period.PeriodID, suite.userID)

	suite.ErrorIs(err, apperrors.ErrConflict)
	suite.mockPeriodRepo.AssertNotCalled(suite.T(), "UpdatePeriodStatus", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func (suite *PeriodServiceTestSuite) TestLockPeriod_FromSoftClosed() {
	ctx := context.Background()
	period := suite.periodWithStatus(domain.PeriodSoftClosed)

	suite.mockPeriodRepo.On("FindPeriodByID", ctx, period.PeriodID).Return(period, nil).Once()
	suite.mockPeriodRepo.On("UpdatePeriodStatus", ctx, period.PeriodID, domain.PeriodLocked, suite.userID, mock.AnythingOfType("time.Time")).Return(nil).Once()
	suite.mockAuditSvc.On("Log", ctx, mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything).Return().Once()

	suite.NoError(suite.service.LockPeriod(ctx, suite.companyID, period.PeriodID, suite.userID))
}

func (suite *PeriodServiceTestSuite) TestReopenPeriod_FromSoftClosed() {
	ctx := context.Background()
	period := suite.periodWithStatus(domain.PeriodSoftClosed)

	suite.mockPeriodRepo.On("FindPeriodByID", ctx, period.PeriodID).Return(period, nil).Once()
	suite.mockPeriodRepo.On("UpdatePeriodStatus", ctx, period.PeriodID, domain.PeriodOpen, suite.userID, mock.AnythingOfType("time.Time")).Return(nil).Once()
	suite.mockAuditSvc.On("Log", ctx, mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything).Return().Once()

	suite.NoError(suite.service.ReopenPeriod(ctx, suite.companyID, period.PeriodID, suite.userID))
}

func (suite *PeriodServiceTestSuite) TestReopenPeriod_LockedIsFinal() {
	ctx := context.Background()
	period := suite.periodWithStatus(domain.PeriodLocked)

	suite.mockPeriodRepo.On("FindPeriodByID", ctx, period.PeriodID).Return(period, nil).Once()

	err := suite.service.ReopenPeriod(ctx, suite.companyID, period.PeriodID, suite.userID)

	suite.ErrorIs(err, apperrors.ErrConflict)
	suite.ErrorIs(err, services.ErrPeriodLocked)
	suite.mockPeriodRepo.AssertNotCalled(suite.T(), "UpdatePeriodStatus", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func (suite *PeriodServiceTestSuite) TestTransition_WrongCompany() {
	ctx := context.Background()
	period := suite.periodWithStatus(domain.PeriodOpen)
	period.CompanyID = uuid.NewString()

	suite.mockPeriodRepo.On("FindPeriodByID", ctx, period.PeriodID).Return(period, nil).Once()

	suite.ErrorIs(suite.service.ClosePeriod(ctx, suite.companyID, period.PeriodID, suite.userID), apperrors.ErrNotFound)
}

func TestPeriodServiceTestSuite(t *testing.T) {
	suite.Run(t, new(PeriodServiceTestSuite))
}
