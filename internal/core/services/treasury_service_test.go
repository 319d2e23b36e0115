package services_test

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/nileport/trading_erp/internal/apperrors"
	"github.com/nileport/trading_erp/internal/core/domain"
	portssvc "github.com/nileport/trading_erp/internal/core/ports/services"
	"github.com/nileport/trading_erp/internal/core/services"
	"github.com/nileport/trading_erp/internal/dto"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

// MockTreasuryRepository is a mock type for the TreasuryRepositoryFacade interface
type MockTreasuryRepository struct {
	mock.Mock
}

func (m *MockTreasuryRepository) FindTreasuryByID(ctx context.Context, treasuryID string) (*domain.Treasury, error) {
	args := m.Called(ctx, treasuryID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Treasury), args.Error(1)
}

func (m *MockTreasuryRepository) ListTreasuries(ctx context.Context) ([]domain.Treasury, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Treasury), args.Error(1)
}

func (m *MockTreasuryRepository) SaveTreasury(ctx context.Context, treasury domain.Treasury) error {
	args := m.Called(ctx, treasury)
	return args.Error(0)
}

func (m *MockTreasuryRepository) UpdateTreasury(ctx context.Context, treasury domain.Treasury) error {
	args := m.Called(ctx, treasury)
	return args.Error(0)
}

func (m *MockTreasuryRepository) DeleteTreasury(ctx context.Context, treasuryID string) error {
	args := m.Called(ctx, treasuryID)
	return args.Error(0)
}

func (m *MockTreasuryRepository) FindTreasuryByIDForUpdate(ctx context.Context, tx pgx.Tx, treasuryID string) (*domain.Treasury, error) {
	args := m.Called(ctx, tx, treasuryID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Treasury), args.Error(1)
}

func (m *MockTreasuryRepository) AdjustTreasuryBalanceInTx(ctx context.Context, tx pgx.Tx, treasuryID string, delta decimal.Decimal, userID string, now time.Time) error {
	args := m.Called(ctx, tx, treasuryID, delta, userID, now)
	return args.Error(0)
}

// --- Test Suite Setup ---

type TreasuryServiceTestSuite struct {
	suite.Suite
	mockRepo *MockTreasuryRepository
	service  portssvc.TreasurySvcFacade
}

func (suite *TreasuryServiceTestSuite) SetupTest() {
	suite.mockRepo = new(MockTreasuryRepository)
	suite.service = services.NewTreasuryService(suite.mockRepo)
}

// --- Test Cases ---

func (suite *TreasuryServiceTestSuite) TestCreateTreasury_Success() {
	ctx := context.Background()
	creatorUserID := uuid.NewString()
	req := dto.CreateTreasuryRequest{Name: "Main Safe"}

	suite.mockRepo.On("SaveTreasury", ctx, mock.AnythingOfType("domain.Treasury")).Return(nil).Once()

	created, err := suite.service.CreateTreasury(ctx, req, creatorUserID)

	suite.Require().NoError(err)
	suite.Require().NotNil(created)
	suite.NotEmpty(created.TreasuryID)
	suite.Equal(req.Name, created.Name)
	suite.True(created.Balance.IsZero())
	suite.Equal(creatorUserID, created.CreatedBy)
	suite.Equal(creatorUserID, created.LastUpdatedBy)
	suite.WithinDuration(time.Now(), created.CreatedAt, time.Second)

	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *TreasuryServiceTestSuite) TestCreateTreasury_SaveError() {
	ctx := context.Background()
	req := dto.CreateTreasuryRequest{Name: "Broken Safe"}

	suite.mockRepo.On("SaveTreasury", ctx, mock.AnythingOfType("domain.Treasury")).Return(assert.AnError).Once()

	created, err := suite.service.CreateTreasury(ctx, req, uuid.NewString())

	suite.Require().Error(err)
	suite.Nil(created)
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *TreasuryServiceTestSuite) TestCreateTreasury_DuplicateName() {
	ctx := context.Background()
	req := dto.CreateTreasuryRequest{Name: "Main Safe"}

	suite.mockRepo.On("SaveTreasury", ctx, mock.AnythingOfType("domain.Treasury")).Return(apperrors.ErrDuplicate).Once()

	created, err := suite.service.CreateTreasury(ctx, req, uuid.NewString())

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrDuplicate)
	suite.Nil(created)
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *TreasuryServiceTestSuite) TestGetTreasuryByID_Success() {
	ctx := context.Background()
	testID := uuid.NewString()
	expected := &domain.Treasury{
		TreasuryID: testID,
		Name:       "Found Safe",
		Balance:    decimal.NewFromInt(1000),
	}

	suite.mockRepo.On("FindTreasuryByID", ctx, testID).Return(expected, nil).Once()

	found, err := suite.service.GetTreasuryByID(ctx, testID)

	suite.Require().NoError(err)
	suite.Equal(expected, found)
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *TreasuryServiceTestSuite) TestGetTreasuryByID_NotFound() {
	ctx := context.Background()
	testID := uuid.NewString()

	suite.mockRepo.On("FindTreasuryByID", ctx, testID).Return(nil, apperrors.ErrNotFound).Once()

	found, err := suite.service.GetTreasuryByID(ctx, testID)

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrNotFound)
	suite.Nil(found)
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *TreasuryServiceTestSuite) TestListTreasuries_EmptyReturnsSlice() {
	ctx := context.Background()

	suite.mockRepo.On("ListTreasuries", ctx).Return(nil, nil).Once()

	treasuries, err := suite.service.ListTreasuries(ctx)

	suite.Require().NoError(err)
	suite.NotNil(treasuries)
	suite.Empty(treasuries)
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *TreasuryServiceTestSuite) TestUpdateTreasury_RenamesAndStampsAudit() {
	ctx := context.Background()
	testID := uuid.NewString()
	updaterID := uuid.NewString()
	existing := &domain.Treasury{
		TreasuryID: testID,
		Name:       "Old Name",
		Balance:    decimal.NewFromInt(500),
	}
	newName := "New Name"

	suite.mockRepo.On("FindTreasuryByID", ctx, testID).Return(existing, nil).Once()
	suite.mockRepo.On("UpdateTreasury", ctx, mock.MatchedBy(func(t domain.Treasury) bool {
		return t.Name == newName && t.LastUpdatedBy == updaterID
	})).Return(nil).Once()

	updated, err := suite.service.UpdateTreasury(ctx, testID, dto.UpdateTreasuryRequest{Name: &newName}, updaterID)

	suite.Require().NoError(err)
	suite.Equal(newName, updated.Name)
	// Balance is ledger-owned and must survive a rename untouched.
	suite.True(updated.Balance.Equal(decimal.NewFromInt(500)))
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *TreasuryServiceTestSuite) TestDeleteTreasury_ConflictWhenReferenced() {
	ctx := context.Background()
	testID := uuid.NewString()

	suite.mockRepo.On("DeleteTreasury", ctx, testID).Return(apperrors.ErrConflict).Once()

	err := suite.service.DeleteTreasury(ctx, testID, uuid.NewString())

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrConflict)
	suite.mockRepo.AssertExpectations(suite.T())
}

func TestTreasuryServiceTestSuite(t *testing.T) {
	suite.Run(t, new(TreasuryServiceTestSuite))
}
