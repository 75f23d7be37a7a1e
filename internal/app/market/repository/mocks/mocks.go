package mocks

import (
	"context"

	"shopnet/internal/app/market/entity"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
)

// MockShopRepository мок для ShopRepository
type MockShopRepository struct {
	mock.Mock
}

func (m *MockShopRepository) GetByUserID(ctx context.Context, userID uuid.UUID) (*entity.Shop, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.Shop), args.Error(1)
}

func (m *MockShopRepository) ListActive(ctx context.Context) ([]entity.Shop, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]entity.Shop), args.Error(1)
}

func (m *MockShopRepository) UpdateState(ctx context.Context, userID uuid.UUID, state bool) (int64, error) {
	args := m.Called(ctx, userID, state)
	return args.Get(0).(int64), args.Error(1)
}

// MockCatalogRepository мок для CatalogRepository
type MockCatalogRepository struct {
	mock.Mock
}

func (m *MockCatalogRepository) ReplaceShopCatalog(ctx context.Context, userID uuid.UUID, feed *entity.Feed) (*entity.ImportSummary, error) {
	args := m.Called(ctx, userID, feed)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.ImportSummary), args.Error(1)
}

func (m *MockCatalogRepository) ListCategories(ctx context.Context) ([]entity.Category, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]entity.Category), args.Error(1)
}

func (m *MockCatalogRepository) QueryProductInfo(ctx context.Context, filter entity.ProductInfoFilter) ([]entity.ProductInfo, error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]entity.ProductInfo), args.Error(1)
}

// MockOrderRepository мок для OrderRepository
type MockOrderRepository struct {
	mock.Mock
}

func (m *MockOrderRepository) GetBaskets(ctx context.Context, userID uuid.UUID) ([]entity.Order, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]entity.Order), args.Error(1)
}

func (m *MockOrderRepository) GetOrCreateBasket(ctx context.Context, userID uuid.UUID) (*entity.Order, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.Order), args.Error(1)
}

func (m *MockOrderRepository) FindBasket(ctx context.Context, userID uuid.UUID) (*entity.Order, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.Order), args.Error(1)
}

func (m *MockOrderRepository) ListByUser(ctx context.Context, userID uuid.UUID) ([]entity.Order, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]entity.Order), args.Error(1)
}

func (m *MockOrderRepository) ListByShopOwner(ctx context.Context, ownerID uuid.UUID) ([]entity.Order, error) {
	args := m.Called(ctx, ownerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]entity.Order), args.Error(1)
}

func (m *MockOrderRepository) Checkout(ctx context.Context, orderID uint, userID uuid.UUID, contactID uint) (int64, error) {
	args := m.Called(ctx, orderID, userID, contactID)
	return args.Get(0).(int64), args.Error(1)
}

// MockOrderItemRepository мок для OrderItemRepository
type MockOrderItemRepository struct {
	mock.Mock
}

func (m *MockOrderItemRepository) Create(ctx context.Context, item *entity.OrderItem) error {
	args := m.Called(ctx, item)
	return args.Error(0)
}

func (m *MockOrderItemRepository) DeleteByIDs(ctx context.Context, orderID uint, ids []uint) (int64, error) {
	args := m.Called(ctx, orderID, ids)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockOrderItemRepository) UpdateQuantity(ctx context.Context, orderID uint, itemID uint, quantity int) (int64, error) {
	args := m.Called(ctx, orderID, itemID, quantity)
	return args.Get(0).(int64), args.Error(1)
}

// MockContactRepository мок для ContactRepository
type MockContactRepository struct {
	mock.Mock
}

func (m *MockContactRepository) Create(ctx context.Context, contact *entity.Contact) error {
	args := m.Called(ctx, contact)
	return args.Error(0)
}

func (m *MockContactRepository) ListByUser(ctx context.Context, userID uuid.UUID) ([]entity.Contact, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]entity.Contact), args.Error(1)
}

func (m *MockContactRepository) Update(ctx context.Context, contact *entity.Contact) (int64, error) {
	args := m.Called(ctx, contact)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockContactRepository) DeleteByIDs(ctx context.Context, userID uuid.UUID, ids []uint) (int64, error) {
	args := m.Called(ctx, userID, ids)
	return args.Get(0).(int64), args.Error(1)
}

// MockMessagePublisher мок для MessagePublisher (Kafka)
type MockMessagePublisher struct {
	mock.Mock
	Messages [][]byte
}

func (m *MockMessagePublisher) PublishMessage(ctx context.Context, key string, value []byte) error {
	m.Messages = append(m.Messages, value)
	args := m.Called(ctx, key, value)
	return args.Error(0)
}

func (m *MockMessagePublisher) Close() error {
	args := m.Called()
	return args.Error(0)
}
