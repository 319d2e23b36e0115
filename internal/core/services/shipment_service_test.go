package services_test

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/nileport/trading_erp/internal/apperrors"
	"github.com/nileport/trading_erp/internal/core/domain"
	portssvc "github.com/nileport/trading_erp/internal/core/ports/services"
	"github.com/nileport/trading_erp/internal/core/services"
	"github.com/nileport/trading_erp/internal/dto"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

// MockShipmentRepository is a mock type for the ShipmentRepositoryFacade interface
type MockShipmentRepository struct {
	mock.Mock
}

func (m *MockShipmentRepository) FindShipmentByID(ctx context.Context, shipmentID string) (*domain.Shipment, error) {
	args := m.Called(ctx, shipmentID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Shipment), args.Error(1)
}

func (m *MockShipmentRepository) ListShipments(ctx context.Context, limit int, offset int) ([]domain.Shipment, error) {
	args := m.Called(ctx, limit, offset)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Shipment), args.Error(1)
}

func (m *MockShipmentRepository) FindShipmentItemsByShipmentID(ctx context.Context, shipmentID string) ([]domain.ShipmentItem, error) {
	args := m.Called(ctx, shipmentID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.ShipmentItem), args.Error(1)
}

func (m *MockShipmentRepository) SaveShipment(ctx context.Context, shipment domain.Shipment, decrements []domain.InventoryAdjustment, enforceStock bool) error {
	args := m.Called(ctx, shipment, decrements, enforceStock)
	return args.Error(0)
}

func (m *MockShipmentRepository) DeleteShipment(ctx context.Context, shipmentID string, reversals []domain.InventoryAdjustment, userID string, now time.Time) error {
	args := m.Called(ctx, shipmentID, reversals, userID, now)
	return args.Error(0)
}

// MockCustomerRepository is a mock type for the CustomerRepositoryFacade interface
type MockCustomerRepository struct {
	mock.Mock
}

func (m *MockCustomerRepository) FindCustomerByID(ctx context.Context, customerID string) (*domain.Customer, error) {
	args := m.Called(ctx, customerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Customer), args.Error(1)
}

func (m *MockCustomerRepository) ListCustomers(ctx context.Context) ([]domain.Customer, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Customer), args.Error(1)
}

func (m *MockCustomerRepository) SaveCustomer(ctx context.Context, customer domain.Customer) error {
	args := m.Called(ctx, customer)
	return args.Error(0)
}

func (m *MockCustomerRepository) UpdateCustomer(ctx context.Context, customer domain.Customer) error {
	args := m.Called(ctx, customer)
	return args.Error(0)
}

func (m *MockCustomerRepository) DeleteCustomer(ctx context.Context, customerID string) error {
	args := m.Called(ctx, customerID)
	return args.Error(0)
}

// --- Test Suite Setup ---

type ShipmentServiceTestSuite struct {
	suite.Suite
	mockShipmentRepo  *MockShipmentRepository
	mockReceivingRepo *MockReceivingRepository
	mockCustomerRepo  *MockCustomerRepository
}

func (suite *ShipmentServiceTestSuite) SetupTest() {
	suite.mockShipmentRepo = new(MockShipmentRepository)
	suite.mockReceivingRepo = new(MockReceivingRepository)
	suite.mockCustomerRepo = new(MockCustomerRepository)
}

func (suite *ShipmentServiceTestSuite) newService(enforceStock bool) portssvc.ShipmentSvcFacade {
	return services.NewShipmentService(suite.mockShipmentRepo, suite.mockReceivingRepo, suite.mockCustomerRepo, enforceStock)
}

// --- Test Cases ---

func (suite *ShipmentServiceTestSuite) TestCreateShipment_DecrementsInventory() {
	ctx := context.Background()
	userID := uuid.NewString()
	customerID := uuid.NewString()
	receivingItemID := uuid.NewString()
	req := dto.CreateShipmentRequest{
		ReferenceNo: "SHP-001",
		Date:        time.Now(),
		CustomerID:  customerID,
		Items: []dto.ShipmentItemRequest{
			{ReceivingItemID: receivingItemID, ShippedUnits: 12},
		},
	}

	suite.mockCustomerRepo.On("FindCustomerByID", ctx, customerID).
		Return(&domain.Customer{CustomerID: customerID}, nil).Once()
	suite.mockReceivingRepo.On("FindReceivingItemByID", ctx, receivingItemID).
		Return(&domain.ReceivingItem{ReceivingItemID: receivingItemID, ItemName: "Blue Mugs"}, nil).Once()
	suite.mockShipmentRepo.On("SaveShipment", ctx, mock.AnythingOfType("domain.Shipment"), mock.MatchedBy(func(decrements []domain.InventoryAdjustment) bool {
		return len(decrements) == 1 &&
			decrements[0].ItemName == "Blue Mugs" &&
			decrements[0].ShippedDelta == 12 &&
			decrements[0].ReceivedDelta == 0
	}), false).Return(nil).Once()
	suite.mockShipmentRepo.On("FindShipmentByID", ctx, mock.AnythingOfType("string")).
		Return(&domain.Shipment{ReferenceNo: req.ReferenceNo}, nil).Once()

	shipment, err := suite.newService(false).CreateShipment(ctx, req, userID)

	suite.Require().NoError(err)
	suite.Require().NotNil(shipment)
	suite.mockShipmentRepo.AssertExpectations(suite.T())
	suite.mockCustomerRepo.AssertExpectations(suite.T())
}

func (suite *ShipmentServiceTestSuite) TestCreateShipment_StrictPolicyBlocksOverdraw() {
	ctx := context.Background()
	customerID := uuid.NewString()
	receivingItemID := uuid.NewString()
	req := dto.CreateShipmentRequest{
		ReferenceNo: "SHP-002",
		Date:        time.Now(),
		CustomerID:  customerID,
		Items: []dto.ShipmentItemRequest{
			{ReceivingItemID: receivingItemID, ShippedUnits: 999},
		},
	}

	suite.mockCustomerRepo.On("FindCustomerByID", ctx, customerID).
		Return(&domain.Customer{CustomerID: customerID}, nil).Once()
	suite.mockReceivingRepo.On("FindReceivingItemByID", ctx, receivingItemID).
		Return(&domain.ReceivingItem{ReceivingItemID: receivingItemID, ItemName: "Blue Mugs"}, nil).Once()
	suite.mockShipmentRepo.On("SaveShipment", ctx, mock.AnythingOfType("domain.Shipment"), mock.Anything, true).
		Return(apperrors.ErrInsufficientStock).Once()

	shipment, err := suite.newService(true).CreateShipment(ctx, req, uuid.NewString())

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrInsufficientStock)
	suite.Nil(shipment)
	suite.mockShipmentRepo.AssertExpectations(suite.T())
}

func (suite *ShipmentServiceTestSuite) TestCreateShipment_UnknownReceivingItem() {
	ctx := context.Background()
	customerID := uuid.NewString()
	receivingItemID := uuid.NewString()
	req := dto.CreateShipmentRequest{
		ReferenceNo: "SHP-003",
		Date:        time.Now(),
		CustomerID:  customerID,
		Items: []dto.ShipmentItemRequest{
			{ReceivingItemID: receivingItemID, ShippedUnits: 3},
		},
	}

	suite.mockCustomerRepo.On("FindCustomerByID", ctx, customerID).
		Return(&domain.Customer{CustomerID: customerID}, nil).Once()
	suite.mockReceivingRepo.On("FindReceivingItemByID", ctx, receivingItemID).
		Return(nil, apperrors.ErrNotFound).Once()

	shipment, err := suite.newService(false).CreateShipment(ctx, req, uuid.NewString())

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrNotFound)
	suite.Nil(shipment)
	suite.mockShipmentRepo.AssertNotCalled(suite.T(), "SaveShipment")
}

func (suite *ShipmentServiceTestSuite) TestCreateShipment_UnknownCustomer() {
	ctx := context.Background()
	customerID := uuid.NewString()
	req := dto.CreateShipmentRequest{
		ReferenceNo: "SHP-004",
		Date:        time.Now(),
		CustomerID:  customerID,
		Items: []dto.ShipmentItemRequest{
			{ReceivingItemID: uuid.NewString(), ShippedUnits: 1},
		},
	}

	suite.mockCustomerRepo.On("FindCustomerByID", ctx, customerID).Return(nil, apperrors.ErrNotFound).Once()

	shipment, err := suite.newService(false).CreateShipment(ctx, req, uuid.NewString())

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrNotFound)
	suite.Nil(shipment)
	suite.mockShipmentRepo.AssertNotCalled(suite.T(), "SaveShipment")
}

func (suite *ShipmentServiceTestSuite) TestDeleteShipment_RestoresInventory() {
	ctx := context.Background()
	shipmentID := uuid.NewString()
	userID := uuid.NewString()
	shipment := &domain.Shipment{
		ShipmentID: shipmentID,
		Items: []domain.ShipmentItem{
			{ShipmentItemID: uuid.NewString(), ItemName: "Blue Mugs", ShippedUnits: 12},
		},
	}

	suite.mockShipmentRepo.On("FindShipmentByID", ctx, shipmentID).Return(shipment, nil).Once()
	suite.mockShipmentRepo.On("DeleteShipment", ctx, shipmentID, mock.MatchedBy(func(reversals []domain.InventoryAdjustment) bool {
		return len(reversals) == 1 && reversals[0].ShippedDelta == -12
	}), userID, mock.AnythingOfType("time.Time")).Return(nil).Once()

	err := suite.newService(true).DeleteShipment(ctx, shipmentID, userID)

	suite.Require().NoError(err)
	suite.mockShipmentRepo.AssertExpectations(suite.T())
}

func TestShipmentServiceTestSuite(t *testing.T) {
	suite.Run(t, new(ShipmentServiceTestSuite))
}
