package repository

import (
	"context"
	"errors"

	"shopnet/internal/app/market/entity"

	"github.com/google/uuid"
)

// Стандартные ошибки репозиториев для обработки в service layer
var (
	ErrShopNotFound     = errors.New("shop not found")
	ErrShopNameTaken    = errors.New("shop name belongs to another user")
	ErrOrderNotFound    = errors.New("order not found")
	ErrItemAlreadyAdded = errors.New("order item already added")
	ErrContactNotFound  = errors.New("contact not found")
)

type ShopRepository interface {
	GetByUserID(ctx context.Context, userID uuid.UUID) (*entity.Shop, error)
	ListActive(ctx context.Context) ([]entity.Shop, error)
	UpdateState(ctx context.Context, userID uuid.UUID, state bool) (int64, error)
}

type CatalogRepository interface {
	// ReplaceShopCatalog выполняет сверку прайс-листа с каталогом в одной транзакции
	ReplaceShopCatalog(ctx context.Context, userID uuid.UUID, feed *entity.Feed) (*entity.ImportSummary, error)
	ListCategories(ctx context.Context) ([]entity.Category, error)
	QueryProductInfo(ctx context.Context, filter entity.ProductInfoFilter) ([]entity.ProductInfo, error)
}

type OrderRepository interface {
	// GetBaskets возвращает корзины пользователя с полной предзагрузкой, ничего не создавая
	GetBaskets(ctx context.Context, userID uuid.UUID) ([]entity.Order, error)
	GetOrCreateBasket(ctx context.Context, userID uuid.UUID) (*entity.Order, error)
	// FindBasket ищет корзину без создания, ErrOrderNotFound если корзины нет
	FindBasket(ctx context.Context, userID uuid.UUID) (*entity.Order, error)
	ListByUser(ctx context.Context, userID uuid.UUID) ([]entity.Order, error)
	ListByShopOwner(ctx context.Context, ownerID uuid.UUID) ([]entity.Order, error)
	// Checkout атомарно переводит заказ basket -> new и привязывает контакт,
	// возвращает число затронутых строк
	Checkout(ctx context.Context, orderID uint, userID uuid.UUID, contactID uint) (int64, error)
}

type OrderItemRepository interface {
	Create(ctx context.Context, item *entity.OrderItem) error
	DeleteByIDs(ctx context.Context, orderID uint, ids []uint) (int64, error)
	UpdateQuantity(ctx context.Context, orderID uint, itemID uint, quantity int) (int64, error)
}

type ContactRepository interface {
	Create(ctx context.Context, contact *entity.Contact) error
	ListByUser(ctx context.Context, userID uuid.UUID) ([]entity.Contact, error)
	Update(ctx context.Context, contact *entity.Contact) (int64, error)
	DeleteByIDs(ctx context.Context, userID uuid.UUID, ids []uint) (int64, error)
}
