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
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

// MockInventoryRepository is a mock type for the InventoryRepositoryFacade interface
type MockInventoryRepository struct {
	mock.Mock
}

func (m *MockInventoryRepository) FindInventoryItemByID(ctx context.Context, itemID string) (*domain.InventoryItem, error) {
	args := m.Called(ctx, itemID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.InventoryItem), args.Error(1)
}

func (m *MockInventoryRepository) FindInventoryItemByName(ctx context.Context, itemName string) (*domain.InventoryItem, error) {
	args := m.Called(ctx, itemName)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.InventoryItem), args.Error(1)
}

func (m *MockInventoryRepository) ListInventory(ctx context.Context, search *string, lowStock *int64) ([]domain.InventoryItem, error) {
	args := m.Called(ctx, search, lowStock)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.InventoryItem), args.Error(1)
}

func (m *MockInventoryRepository) SaveInventoryItem(ctx context.Context, item domain.InventoryItem) error {
	args := m.Called(ctx, item)
	return args.Error(0)
}

func (m *MockInventoryRepository) UpsertInventoryAdjustmentInTx(ctx context.Context, tx pgx.Tx, adj domain.InventoryAdjustment, userID string, now time.Time) error {
	args := m.Called(ctx, tx, adj, userID, now)
	return args.Error(0)
}

func (m *MockInventoryRepository) DecrementInventoryInTx(ctx context.Context, tx pgx.Tx, itemName string, units int64, enforceStock bool, userID string, now time.Time) error {
	args := m.Called(ctx, tx, itemName, units, enforceStock, userID, now)
	return args.Error(0)
}

// --- Test Suite Setup ---

type InventoryServiceTestSuite struct {
	suite.Suite
	mockRepo *MockInventoryRepository
	service  portssvc.InventorySvcFacade
}

func (suite *InventoryServiceTestSuite) SetupTest() {
	suite.mockRepo = new(MockInventoryRepository)
	suite.service = services.NewInventoryService(suite.mockRepo)
}

// --- Test Cases ---

func (suite *InventoryServiceTestSuite) TestRegisterInventoryItem_StartsWithZeroCounters() {
	ctx := context.Background()
	userID := uuid.NewString()
	barcode := "6221001234567"
	req := dto.CreateInventoryItemRequest{ItemName: "Blue Mugs", Barcode: &barcode}

	suite.mockRepo.On("SaveInventoryItem", ctx, mock.MatchedBy(func(item domain.InventoryItem) bool {
		return item.ItemName == "Blue Mugs" &&
			item.Barcode != nil && *item.Barcode == barcode &&
			item.TotalReceived == 0 &&
			item.TotalShipped == 0 &&
			item.Balance == 0 &&
			item.CreatedBy == userID
	})).Return(nil).Once()

	item, err := suite.service.RegisterInventoryItem(ctx, req, userID)

	suite.Require().NoError(err)
	suite.Require().NotNil(item)
	suite.NotEmpty(item.ItemID)
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *InventoryServiceTestSuite) TestRegisterInventoryItem_DuplicateName() {
	ctx := context.Background()
	req := dto.CreateInventoryItemRequest{ItemName: "Blue Mugs"}

	suite.mockRepo.On("SaveInventoryItem", ctx, mock.AnythingOfType("domain.InventoryItem")).
		Return(apperrors.ErrDuplicate).Once()

	item, err := suite.service.RegisterInventoryItem(ctx, req, uuid.NewString())

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrDuplicate)
	suite.Nil(item)
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *InventoryServiceTestSuite) TestListInventory_NilBecomesEmptySlice() {
	ctx := context.Background()

	suite.mockRepo.On("ListInventory", ctx, (*string)(nil), (*int64)(nil)).
		Return([]domain.InventoryItem(nil), nil).Once()

	items, err := suite.service.ListInventory(ctx, dto.ListInventoryParams{})

	suite.Require().NoError(err)
	suite.NotNil(items)
	suite.Empty(items)
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *InventoryServiceTestSuite) TestGetInventoryItemByID_NotFound() {
	ctx := context.Background()

	suite.mockRepo.On("FindInventoryItemByID", ctx, "missing").Return(nil, apperrors.ErrNotFound).Once()

	item, err := suite.service.GetInventoryItemByID(ctx, "missing")

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrNotFound)
	suite.Nil(item)
	suite.mockRepo.AssertExpectations(suite.T())
}

func TestInventoryServiceTestSuite(t *testing.T) {
	suite.Run(t, new(InventoryServiceTestSuite))
}
