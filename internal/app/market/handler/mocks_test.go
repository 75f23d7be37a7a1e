package handler

import (
	"context"

	"shopnet/internal/app/market/entity"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
)

// Моки сервисов для тестов handler

type MockBasketService struct {
	mock.Mock
}

func (m *MockBasketService) GetBasket(ctx context.Context, userID uuid.UUID) ([]entity.Order, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]entity.Order), args.Error(1)
}

func (m *MockBasketService) AddItems(ctx context.Context, userID uuid.UUID, itemsJSON string) (int, int, error) {
	args := m.Called(ctx, userID, itemsJSON)
	return args.Int(0), args.Int(1), args.Error(2)
}

func (m *MockBasketService) RemoveItems(ctx context.Context, userID uuid.UUID, itemsCSV string) (int64, error) {
	args := m.Called(ctx, userID, itemsCSV)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockBasketService) UpdateItems(ctx context.Context, userID uuid.UUID, itemsJSON string) (int64, error) {
	args := m.Called(ctx, userID, itemsJSON)
	return args.Get(0).(int64), args.Error(1)
}

type MockOrderService struct {
	mock.Mock
}

func (m *MockOrderService) GetOrders(ctx context.Context, userID uuid.UUID) ([]entity.Order, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]entity.Order), args.Error(1)
}

func (m *MockOrderService) GetShopOrders(ctx context.Context, ownerID uuid.UUID) ([]entity.Order, error) {
	args := m.Called(ctx, ownerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]entity.Order), args.Error(1)
}

func (m *MockOrderService) Checkout(ctx context.Context, userID uuid.UUID, email string, orderID uint, contactID uint) error {
	args := m.Called(ctx, userID, email, orderID, contactID)
	return args.Error(0)
}

type MockImportService struct {
	mock.Mock
}

func (m *MockImportService) ImportCatalog(ctx context.Context, userID uuid.UUID, rawURL string) (*entity.ImportSummary, error) {
	args := m.Called(ctx, userID, rawURL)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.ImportSummary), args.Error(1)
}

type MockShopService struct {
	mock.Mock
}

func (m *MockShopService) GetState(ctx context.Context, userID uuid.UUID) (*entity.Shop, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.Shop), args.Error(1)
}

func (m *MockShopService) SetState(ctx context.Context, userID uuid.UUID, state string) (bool, error) {
	args := m.Called(ctx, userID, state)
	return args.Bool(0), args.Error(1)
}

type MockCatalogService struct {
	mock.Mock
}

func (m *MockCatalogService) GetCategories(ctx context.Context) ([]entity.Category, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]entity.Category), args.Error(1)
}

func (m *MockCatalogService) GetShops(ctx context.Context) ([]entity.Shop, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]entity.Shop), args.Error(1)
}

func (m *MockCatalogService) QueryProducts(ctx context.Context, filter entity.ProductInfoFilter) ([]entity.ProductInfo, error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]entity.ProductInfo), args.Error(1)
}

type MockContactService struct {
	mock.Mock
}

func (m *MockContactService) ListContacts(ctx context.Context, userID uuid.UUID) ([]entity.Contact, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]entity.Contact), args.Error(1)
}

func (m *MockContactService) CreateContact(ctx context.Context, userID uuid.UUID, req *entity.ContactRequest) (*entity.Contact, error) {
	args := m.Called(ctx, userID, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.Contact), args.Error(1)
}

func (m *MockContactService) UpdateContact(ctx context.Context, userID uuid.UUID, req *entity.ContactRequest) error {
	args := m.Called(ctx, userID, req)
	return args.Error(0)
}

func (m *MockContactService) DeleteContacts(ctx context.Context, userID uuid.UUID, itemsCSV string) (int64, error) {
	args := m.Called(ctx, userID, itemsCSV)
	return args.Get(0).(int64), args.Error(1)
}
