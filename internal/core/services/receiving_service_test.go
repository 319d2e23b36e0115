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

// MockReceivingRepository is a mock type for the ReceivingRepositoryFacade interface
type MockReceivingRepository struct {
	mock.Mock
}

func (m *MockReceivingRepository) FindReceivingInvoiceByID(ctx context.Context, invoiceID string) (*domain.ReceivingInvoice, error) {
	args := m.Called(ctx, invoiceID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.ReceivingInvoice), args.Error(1)
}

func (m *MockReceivingRepository) ListReceivingInvoices(ctx context.Context, limit int, offset int) ([]domain.ReceivingInvoice, error) {
	args := m.Called(ctx, limit, offset)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.ReceivingInvoice), args.Error(1)
}

func (m *MockReceivingRepository) FindReceivingItemsByInvoiceID(ctx context.Context, invoiceID string) ([]domain.ReceivingItem, error) {
	args := m.Called(ctx, invoiceID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.ReceivingItem), args.Error(1)
}

func (m *MockReceivingRepository) FindReceivingItemByID(ctx context.Context, receivingItemID string) (*domain.ReceivingItem, error) {
	args := m.Called(ctx, receivingItemID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.ReceivingItem), args.Error(1)
}

func (m *MockReceivingRepository) SaveReceivingInvoice(ctx context.Context, invoice domain.ReceivingInvoice, adjustments []domain.InventoryAdjustment) error {
	args := m.Called(ctx, invoice, adjustments)
	return args.Error(0)
}

func (m *MockReceivingRepository) DeleteReceivingInvoice(ctx context.Context, invoiceID string, reversals []domain.InventoryAdjustment, userID string, now time.Time) error {
	args := m.Called(ctx, invoiceID, reversals, userID, now)
	return args.Error(0)
}

// MockPurchaseRepository is a mock type for the PurchaseRepositoryFacade interface
type MockPurchaseRepository struct {
	mock.Mock
}

func (m *MockPurchaseRepository) FindPurchaseInvoiceByID(ctx context.Context, invoiceID string) (*domain.PurchaseInvoice, error) {
	args := m.Called(ctx, invoiceID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.PurchaseInvoice), args.Error(1)
}

func (m *MockPurchaseRepository) ListPurchaseInvoices(ctx context.Context, limit int, offset int) ([]domain.PurchaseInvoice, error) {
	args := m.Called(ctx, limit, offset)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.PurchaseInvoice), args.Error(1)
}

func (m *MockPurchaseRepository) FindPurchaseItemsByInvoiceID(ctx context.Context, invoiceID string) ([]domain.PurchaseItem, error) {
	args := m.Called(ctx, invoiceID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.PurchaseItem), args.Error(1)
}

func (m *MockPurchaseRepository) FindPurchaseItemsByIDs(ctx context.Context, purchaseItemIDs []string) (map[string]domain.PurchaseItem, error) {
	args := m.Called(ctx, purchaseItemIDs)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(map[string]domain.PurchaseItem), args.Error(1)
}

func (m *MockPurchaseRepository) SavePurchaseInvoice(ctx context.Context, invoice domain.PurchaseInvoice) error {
	args := m.Called(ctx, invoice)
	return args.Error(0)
}

func (m *MockPurchaseRepository) UpdatePurchaseInvoice(ctx context.Context, invoice domain.PurchaseInvoice) error {
	args := m.Called(ctx, invoice)
	return args.Error(0)
}

func (m *MockPurchaseRepository) DeletePurchaseInvoice(ctx context.Context, invoiceID string) error {
	args := m.Called(ctx, invoiceID)
	return args.Error(0)
}

// --- Test Suite Setup ---

type ReceivingServiceTestSuite struct {
	suite.Suite
	mockReceivingRepo *MockReceivingRepository
	mockPurchaseRepo  *MockPurchaseRepository
	service           portssvc.ReceivingSvcFacade
}

func (suite *ReceivingServiceTestSuite) SetupTest() {
	suite.mockReceivingRepo = new(MockReceivingRepository)
	suite.mockPurchaseRepo = new(MockPurchaseRepository)
	suite.service = services.NewReceivingService(suite.mockReceivingRepo, suite.mockPurchaseRepo)
}

// --- Test Cases ---

func (suite *ReceivingServiceTestSuite) TestCreateReceivingInvoice_IncrementsInventory() {
	ctx := context.Background()
	userID := uuid.NewString()
	purchaseID := uuid.NewString()
	purchaseItemID := uuid.NewString()
	req := dto.CreateReceivingInvoiceRequest{
		InvoiceNumber: "RCV-001",
		Date:          time.Now(),
		PurchaseID:    purchaseID,
		Items: []dto.ReceivingItemRequest{
			{PurchaseItemID: purchaseItemID, ReceivedUnits: 40, DamagedUnits: 2},
		},
	}

	suite.mockPurchaseRepo.On("FindPurchaseInvoiceByID", ctx, purchaseID).
		Return(&domain.PurchaseInvoice{InvoiceID: purchaseID}, nil).Once()
	suite.mockPurchaseRepo.On("FindPurchaseItemsByIDs", ctx, []string{purchaseItemID}).
		Return(map[string]domain.PurchaseItem{
			purchaseItemID: {PurchaseItemID: purchaseItemID, InvoiceID: purchaseID, ItemName: "Blue Mugs"},
		}, nil).Once()
	suite.mockReceivingRepo.On("SaveReceivingInvoice", ctx, mock.AnythingOfType("domain.ReceivingInvoice"), mock.MatchedBy(func(adjustments []domain.InventoryAdjustment) bool {
		return len(adjustments) == 1 &&
			adjustments[0].ItemName == "Blue Mugs" &&
			adjustments[0].ReceivedDelta == 40 &&
			adjustments[0].ShippedDelta == 0
	})).Return(nil).Once()
	suite.mockReceivingRepo.On("FindReceivingInvoiceByID", ctx, mock.AnythingOfType("string")).
		Return(&domain.ReceivingInvoice{InvoiceNumber: req.InvoiceNumber}, nil).Once()

	invoice, err := suite.service.CreateReceivingInvoice(ctx, req, userID)

	suite.Require().NoError(err)
	suite.Require().NotNil(invoice)
	suite.mockReceivingRepo.AssertExpectations(suite.T())
	suite.mockPurchaseRepo.AssertExpectations(suite.T())
}

func (suite *ReceivingServiceTestSuite) TestCreateReceivingInvoice_ZeroUnitLineIsNoOp() {
	ctx := context.Background()
	purchaseID := uuid.NewString()
	purchaseItemID := uuid.NewString()
	req := dto.CreateReceivingInvoiceRequest{
		InvoiceNumber: "RCV-004",
		Date:          time.Now(),
		PurchaseID:    purchaseID,
		Items: []dto.ReceivingItemRequest{
			{PurchaseItemID: purchaseItemID, ReceivedUnits: 0},
		},
	}

	suite.mockPurchaseRepo.On("FindPurchaseInvoiceByID", ctx, purchaseID).
		Return(&domain.PurchaseInvoice{InvoiceID: purchaseID}, nil).Once()
	suite.mockPurchaseRepo.On("FindPurchaseItemsByIDs", ctx, []string{purchaseItemID}).
		Return(map[string]domain.PurchaseItem{
			purchaseItemID: {PurchaseItemID: purchaseItemID, InvoiceID: purchaseID, ItemName: "Blue Mugs"},
		}, nil).Once()
	suite.mockReceivingRepo.On("SaveReceivingInvoice", ctx, mock.AnythingOfType("domain.ReceivingInvoice"), mock.MatchedBy(func(adjustments []domain.InventoryAdjustment) bool {
		return len(adjustments) == 1 &&
			adjustments[0].ItemName == "Blue Mugs" &&
			adjustments[0].ReceivedDelta == 0 &&
			adjustments[0].BalanceDelta() == 0
	})).Return(nil).Once()
	suite.mockReceivingRepo.On("FindReceivingInvoiceByID", ctx, mock.AnythingOfType("string")).
		Return(&domain.ReceivingInvoice{InvoiceNumber: req.InvoiceNumber}, nil).Once()

	invoice, err := suite.service.CreateReceivingInvoice(ctx, req, uuid.NewString())

	suite.Require().NoError(err)
	suite.Require().NotNil(invoice)
	suite.mockReceivingRepo.AssertExpectations(suite.T())
}

func (suite *ReceivingServiceTestSuite) TestCreateReceivingInvoice_UnknownPurchaseItem() {
	ctx := context.Background()
	purchaseID := uuid.NewString()
	unknownItemID := uuid.NewString()
	req := dto.CreateReceivingInvoiceRequest{
		InvoiceNumber: "RCV-002",
		Date:          time.Now(),
		PurchaseID:    purchaseID,
		Items: []dto.ReceivingItemRequest{
			{PurchaseItemID: unknownItemID, ReceivedUnits: 10},
		},
	}

	suite.mockPurchaseRepo.On("FindPurchaseInvoiceByID", ctx, purchaseID).
		Return(&domain.PurchaseInvoice{InvoiceID: purchaseID}, nil).Once()
	suite.mockPurchaseRepo.On("FindPurchaseItemsByIDs", ctx, []string{unknownItemID}).
		Return(map[string]domain.PurchaseItem{}, nil).Once()

	invoice, err := suite.service.CreateReceivingInvoice(ctx, req, uuid.NewString())

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrNotFound)
	suite.Nil(invoice)
	suite.mockReceivingRepo.AssertNotCalled(suite.T(), "SaveReceivingInvoice")
}

func (suite *ReceivingServiceTestSuite) TestCreateReceivingInvoice_ItemFromOtherPurchase() {
	ctx := context.Background()
	purchaseID := uuid.NewString()
	otherPurchaseID := uuid.NewString()
	purchaseItemID := uuid.NewString()
	req := dto.CreateReceivingInvoiceRequest{
		InvoiceNumber: "RCV-003",
		Date:          time.Now(),
		PurchaseID:    purchaseID,
		Items: []dto.ReceivingItemRequest{
			{PurchaseItemID: purchaseItemID, ReceivedUnits: 5},
		},
	}

	suite.mockPurchaseRepo.On("FindPurchaseInvoiceByID", ctx, purchaseID).
		Return(&domain.PurchaseInvoice{InvoiceID: purchaseID}, nil).Once()
	suite.mockPurchaseRepo.On("FindPurchaseItemsByIDs", ctx, []string{purchaseItemID}).
		Return(map[string]domain.PurchaseItem{
			purchaseItemID: {PurchaseItemID: purchaseItemID, InvoiceID: otherPurchaseID, ItemName: "Red Plates"},
		}, nil).Once()

	invoice, err := suite.service.CreateReceivingInvoice(ctx, req, uuid.NewString())

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.Nil(invoice)
	suite.mockReceivingRepo.AssertNotCalled(suite.T(), "SaveReceivingInvoice")
}

func (suite *ReceivingServiceTestSuite) TestDeleteReceivingInvoice_ReversesIncrements() {
	ctx := context.Background()
	invoiceID := uuid.NewString()
	userID := uuid.NewString()
	invoice := &domain.ReceivingInvoice{
		InvoiceID: invoiceID,
		Items: []domain.ReceivingItem{
			{ReceivingItemID: uuid.NewString(), ItemName: "Blue Mugs", ReceivedUnits: 40},
			{ReceivingItemID: uuid.NewString(), ItemName: "Red Plates", ReceivedUnits: 15},
		},
	}

	suite.mockReceivingRepo.On("FindReceivingInvoiceByID", ctx, invoiceID).Return(invoice, nil).Once()
	suite.mockReceivingRepo.On("DeleteReceivingInvoice", ctx, invoiceID, mock.MatchedBy(func(reversals []domain.InventoryAdjustment) bool {
		return len(reversals) == 2 &&
			reversals[0].ReceivedDelta == -40 &&
			reversals[1].ReceivedDelta == -15
	}), userID, mock.AnythingOfType("time.Time")).Return(nil).Once()

	err := suite.service.DeleteReceivingInvoice(ctx, invoiceID, userID)

	suite.Require().NoError(err)
	suite.mockReceivingRepo.AssertExpectations(suite.T())
}

func (suite *ReceivingServiceTestSuite) TestDeleteReceivingInvoice_ConflictWhenShipped() {
	ctx := context.Background()
	invoiceID := uuid.NewString()
	invoice := &domain.ReceivingInvoice{
		InvoiceID: invoiceID,
		Items:     []domain.ReceivingItem{{ReceivingItemID: uuid.NewString(), ItemName: "Blue Mugs", ReceivedUnits: 40}},
	}

	suite.mockReceivingRepo.On("FindReceivingInvoiceByID", ctx, invoiceID).Return(invoice, nil).Once()
	suite.mockReceivingRepo.On("DeleteReceivingInvoice", ctx, invoiceID, mock.Anything, mock.Anything, mock.Anything).
		Return(apperrors.ErrConflict).Once()

	err := suite.service.DeleteReceivingInvoice(ctx, invoiceID, uuid.NewString())

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrConflict)
	suite.mockReceivingRepo.AssertExpectations(suite.T())
}

func TestReceivingServiceTestSuite(t *testing.T) {
	suite.Run(t, new(ReceivingServiceTestSuite))
}
