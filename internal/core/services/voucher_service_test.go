package services_test

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/nileport/trading_erp/internal/apperrors"
	"github.com/nileport/trading_erp/internal/core/domain"
	portsrepo "github.com/nileport/trading_erp/internal/core/ports/repositories"
	portssvc "github.com/nileport/trading_erp/internal/core/ports/services"
	"github.com/nileport/trading_erp/internal/core/services"
	"github.com/nileport/trading_erp/internal/dto"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

// MockVoucherRepository is a mock type for the VoucherRepositoryFacade interface
type MockVoucherRepository struct {
	mock.Mock
}

func (m *MockVoucherRepository) FindVoucherByID(ctx context.Context, kind domain.VoucherKind, voucherID string) (*domain.Voucher, error) {
	args := m.Called(ctx, kind, voucherID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Voucher), args.Error(1)
}

func (m *MockVoucherRepository) ListVouchers(ctx context.Context, kind domain.VoucherKind, params portsrepo.ListVouchersParams) ([]domain.Voucher, *string, error) {
	args := m.Called(ctx, kind, params)
	var vouchers []domain.Voucher
	if args.Get(0) != nil {
		vouchers = args.Get(0).([]domain.Voucher)
	}
	var token *string
	if args.Get(1) != nil {
		token = args.Get(1).(*string)
	}
	return vouchers, token, args.Error(2)
}

func (m *MockVoucherRepository) SaveVoucher(ctx context.Context, voucher domain.Voucher, treasuryDelta decimal.Decimal) error {
	args := m.Called(ctx, voucher, treasuryDelta)
	return args.Error(0)
}

func (m *MockVoucherRepository) UpdateVoucher(ctx context.Context, voucher domain.Voucher, oldTreasuryID string, reverseDelta, applyDelta decimal.Decimal) error {
	args := m.Called(ctx, voucher, oldTreasuryID, reverseDelta, applyDelta)
	return args.Error(0)
}

func (m *MockVoucherRepository) DeleteVoucher(ctx context.Context, kind domain.VoucherKind, voucherID string, treasuryID string, reversalDelta decimal.Decimal, userID string, now time.Time) error {
	args := m.Called(ctx, kind, voucherID, treasuryID, reversalDelta, userID, now)
	return args.Error(0)
}

// --- Test Suite Setup ---

type VoucherServiceTestSuite struct {
	suite.Suite
	mockVoucherRepo  *MockVoucherRepository
	mockTreasuryRepo *MockTreasuryRepository
	service          portssvc.VoucherSvcFacade
}

func (suite *VoucherServiceTestSuite) SetupTest() {
	suite.mockVoucherRepo = new(MockVoucherRepository)
	suite.mockTreasuryRepo = new(MockTreasuryRepository)
	suite.service = services.NewVoucherService(suite.mockVoucherRepo, suite.mockTreasuryRepo, "EGP")
}

// --- Test Cases ---

func (suite *VoucherServiceTestSuite) TestCreateVoucher_ReceiptAppliesPositiveDelta() {
	ctx := context.Background()
	userID := uuid.NewString()
	treasuryID := uuid.NewString()
	req := dto.CreateVoucherRequest{
		VoucherNumber: "R-001",
		Date:          time.Now(),
		TreasuryID:    treasuryID,
		Amount:        decimal.NewFromInt(250),
	}

	suite.mockTreasuryRepo.On("FindTreasuryByID", ctx, treasuryID).Return(&domain.Treasury{TreasuryID: treasuryID}, nil).Once()
	suite.mockVoucherRepo.On("SaveVoucher", ctx, mock.MatchedBy(func(v domain.Voucher) bool {
		return v.Kind == domain.Receipt && v.Currency == "EGP" && v.ExchangeRate.Equal(decimal.NewFromInt(1))
	}), decimal.NewFromInt(250)).Return(nil).Once()
	suite.mockVoucherRepo.On("FindVoucherByID", ctx, domain.Receipt, mock.AnythingOfType("string")).
		Return(&domain.Voucher{Kind: domain.Receipt, Amount: req.Amount}, nil).Once()

	created, err := suite.service.CreateVoucher(ctx, domain.Receipt, req, userID)

	suite.Require().NoError(err)
	suite.Require().NotNil(created)
	suite.mockVoucherRepo.AssertExpectations(suite.T())
	suite.mockTreasuryRepo.AssertExpectations(suite.T())
}

func (suite *VoucherServiceTestSuite) TestCreateVoucher_PaymentAppliesNegativeDelta() {
	ctx := context.Background()
	treasuryID := uuid.NewString()
	req := dto.CreateVoucherRequest{
		VoucherNumber: "P-001",
		Date:          time.Now(),
		TreasuryID:    treasuryID,
		Amount:        decimal.NewFromInt(100),
	}

	suite.mockTreasuryRepo.On("FindTreasuryByID", ctx, treasuryID).Return(&domain.Treasury{TreasuryID: treasuryID}, nil).Once()
	suite.mockVoucherRepo.On("SaveVoucher", ctx, mock.AnythingOfType("domain.Voucher"), decimal.NewFromInt(-100)).Return(nil).Once()
	suite.mockVoucherRepo.On("FindVoucherByID", ctx, domain.Payment, mock.AnythingOfType("string")).
		Return(&domain.Voucher{Kind: domain.Payment, Amount: req.Amount}, nil).Once()

	created, err := suite.service.CreateVoucher(ctx, domain.Payment, req, uuid.NewString())

	suite.Require().NoError(err)
	suite.Require().NotNil(created)
	suite.mockVoucherRepo.AssertExpectations(suite.T())
}

func (suite *VoucherServiceTestSuite) TestCreateVoucher_RejectsNonPositiveAmount() {
	ctx := context.Background()
	req := dto.CreateVoucherRequest{
		VoucherNumber: "R-002",
		Date:          time.Now(),
		TreasuryID:    uuid.NewString(),
		Amount:        decimal.Zero,
	}

	created, err := suite.service.CreateVoucher(ctx, domain.Receipt, req, uuid.NewString())

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.Nil(created)
	suite.mockVoucherRepo.AssertNotCalled(suite.T(), "SaveVoucher")
}

func (suite *VoucherServiceTestSuite) TestCreateVoucher_UnknownTreasury() {
	ctx := context.Background()
	treasuryID := uuid.NewString()
	req := dto.CreateVoucherRequest{
		VoucherNumber: "R-003",
		Date:          time.Now(),
		TreasuryID:    treasuryID,
		Amount:        decimal.NewFromInt(50),
	}

	suite.mockTreasuryRepo.On("FindTreasuryByID", ctx, treasuryID).Return(nil, apperrors.ErrNotFound).Once()

	created, err := suite.service.CreateVoucher(ctx, domain.Receipt, req, uuid.NewString())

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrNotFound)
	suite.Nil(created)
	suite.mockVoucherRepo.AssertNotCalled(suite.T(), "SaveVoucher")
}

func (suite *VoucherServiceTestSuite) TestUpdateVoucher_AmountChangeReversesOldDelta() {
	ctx := context.Background()
	voucherID := uuid.NewString()
	treasuryID := uuid.NewString()
	existing := &domain.Voucher{
		VoucherID:    voucherID,
		Kind:         domain.Receipt,
		TreasuryID:   treasuryID,
		Amount:       decimal.NewFromInt(200),
		Currency:     "EGP",
		ExchangeRate: decimal.NewFromInt(1),
	}
	newAmount := decimal.NewFromInt(350)

	suite.mockVoucherRepo.On("FindVoucherByID", ctx, domain.Receipt, voucherID).Return(existing, nil).Once()
	// Old +200 is reversed with -200, then the new +350 applied.
	suite.mockVoucherRepo.On("UpdateVoucher", ctx, mock.AnythingOfType("domain.Voucher"), treasuryID, decimal.NewFromInt(-200), decimal.NewFromInt(350)).Return(nil).Once()
	suite.mockVoucherRepo.On("FindVoucherByID", ctx, domain.Receipt, voucherID).
		Return(&domain.Voucher{VoucherID: voucherID, Kind: domain.Receipt, Amount: newAmount}, nil).Once()

	updated, err := suite.service.UpdateVoucher(ctx, domain.Receipt, voucherID, dto.UpdateVoucherRequest{Amount: &newAmount}, uuid.NewString())

	suite.Require().NoError(err)
	suite.Require().NotNil(updated)
	suite.mockVoucherRepo.AssertExpectations(suite.T())
}

func (suite *VoucherServiceTestSuite) TestUpdateVoucher_TreasuryMoveShiftsBothBalances() {
	ctx := context.Background()
	voucherID := uuid.NewString()
	oldTreasuryID := uuid.NewString()
	newTreasuryID := uuid.NewString()
	existing := &domain.Voucher{
		VoucherID:    voucherID,
		Kind:         domain.Payment,
		TreasuryID:   oldTreasuryID,
		Amount:       decimal.NewFromInt(80),
		Currency:     "EGP",
		ExchangeRate: decimal.NewFromInt(1),
	}

	suite.mockVoucherRepo.On("FindVoucherByID", ctx, domain.Payment, voucherID).Return(existing, nil).Once()
	suite.mockTreasuryRepo.On("FindTreasuryByID", ctx, newTreasuryID).Return(&domain.Treasury{TreasuryID: newTreasuryID}, nil).Once()
	// Payment of 80: old treasury gets +80 back, new treasury takes -80.
	suite.mockVoucherRepo.On("UpdateVoucher", ctx, mock.MatchedBy(func(v domain.Voucher) bool {
		return v.TreasuryID == newTreasuryID
	}), oldTreasuryID, decimal.NewFromInt(80), decimal.NewFromInt(-80)).Return(nil).Once()
	suite.mockVoucherRepo.On("FindVoucherByID", ctx, domain.Payment, voucherID).
		Return(&domain.Voucher{VoucherID: voucherID, Kind: domain.Payment, TreasuryID: newTreasuryID}, nil).Once()

	updated, err := suite.service.UpdateVoucher(ctx, domain.Payment, voucherID, dto.UpdateVoucherRequest{TreasuryID: &newTreasuryID}, uuid.NewString())

	suite.Require().NoError(err)
	suite.Equal(newTreasuryID, updated.TreasuryID)
	suite.mockVoucherRepo.AssertExpectations(suite.T())
	suite.mockTreasuryRepo.AssertExpectations(suite.T())
}

func (suite *VoucherServiceTestSuite) TestDeleteVoucher_ReversesLedgerDelta() {
	ctx := context.Background()
	voucherID := uuid.NewString()
	treasuryID := uuid.NewString()
	userID := uuid.NewString()
	existing := &domain.Voucher{
		VoucherID:  voucherID,
		Kind:       domain.Receipt,
		TreasuryID: treasuryID,
		Amount:     decimal.NewFromInt(120),
	}

	suite.mockVoucherRepo.On("FindVoucherByID", ctx, domain.Receipt, voucherID).Return(existing, nil).Once()
	suite.mockVoucherRepo.On("DeleteVoucher", ctx, domain.Receipt, voucherID, treasuryID, decimal.NewFromInt(-120), userID, mock.AnythingOfType("time.Time")).Return(nil).Once()

	err := suite.service.DeleteVoucher(ctx, domain.Receipt, voucherID, userID)

	suite.Require().NoError(err)
	suite.mockVoucherRepo.AssertExpectations(suite.T())
}

func (suite *VoucherServiceTestSuite) TestListVouchers_DefaultsLimit() {
	ctx := context.Background()

	suite.mockVoucherRepo.On("ListVouchers", ctx, domain.Receipt, mock.MatchedBy(func(p portsrepo.ListVouchersParams) bool {
		return p.Limit == 20
	})).Return([]domain.Voucher{}, nil, nil).Once()

	vouchers, nextToken, err := suite.service.ListVouchers(ctx, domain.Receipt, dto.ListVouchersParams{})

	suite.Require().NoError(err)
	suite.NotNil(vouchers)
	suite.Nil(nextToken)
	suite.mockVoucherRepo.AssertExpectations(suite.T())
}

func (suite *VoucherServiceTestSuite) TestListVouchers_WidensEndDateToEndOfDay() {
	ctx := context.Background()
	dateFrom := time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC)
	dateTo := time.Date(2026, 3, 10, 0, 0, 0, 0, time.UTC)
	wantDateTo := time.Date(2026, 3, 10, 23, 59, 59, 999999999, time.UTC)

	suite.mockVoucherRepo.On("ListVouchers", ctx, domain.Receipt, mock.MatchedBy(func(p portsrepo.ListVouchersParams) bool {
		return p.DateFrom != nil && p.DateFrom.Equal(dateFrom) &&
			p.DateTo != nil && p.DateTo.Equal(wantDateTo)
	})).Return([]domain.Voucher{}, nil, nil).Once()

	_, _, err := suite.service.ListVouchers(ctx, domain.Receipt, dto.ListVouchersParams{
		DateFrom: &dateFrom,
		DateTo:   &dateTo,
	})

	suite.Require().NoError(err)
	suite.mockVoucherRepo.AssertExpectations(suite.T())
}

func TestVoucherServiceTestSuite(t *testing.T) {
	suite.Run(t, new(VoucherServiceTestSuite))
}
