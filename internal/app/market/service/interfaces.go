package service

import (
	"context"

	"shopnet/internal/app/market/entity"

	"github.com/google/uuid"
)

type ImportServiceInterface interface {
	ImportCatalog(ctx context.Context, userID uuid.UUID, rawURL string) (*entity.ImportSummary, error)
}

type CatalogServiceInterface interface {
	GetCategories(ctx context.Context) ([]entity.Category, error)
	GetShops(ctx context.Context) ([]entity.Shop, error)
	QueryProducts(ctx context.Context, filter entity.ProductInfoFilter) ([]entity.ProductInfo, error)
}

type ShopServiceInterface interface {
	GetState(ctx context.Context, userID uuid.UUID) (*entity.Shop, error)
	SetState(ctx context.Context, userID uuid.UUID, state string) (bool, error)
}

type BasketServiceInterface interface {
	GetBasket(ctx context.Context, userID uuid.UUID) ([]entity.Order, error)
	AddItems(ctx context.Context, userID uuid.UUID, itemsJSON string) (created int, conflicts int, err error)
	RemoveItems(ctx context.Context, userID uuid.UUID, itemsCSV string) (int64, error)
	UpdateItems(ctx context.Context, userID uuid.UUID, itemsJSON string) (int64, error)
}

type OrderServiceInterface interface {
	GetOrders(ctx context.Context, userID uuid.UUID) ([]entity.Order, error)
	GetShopOrders(ctx context.Context, ownerID uuid.UUID) ([]entity.Order, error)
	Checkout(ctx context.Context, userID uuid.UUID, email string, orderID uint, contactID uint) error
}

type ContactServiceInterface interface {
	ListContacts(ctx context.Context, userID uuid.UUID) ([]entity.Contact, error)
	CreateContact(ctx context.Context, userID uuid.UUID, req *entity.ContactRequest) (*entity.Contact, error)
	UpdateContact(ctx context.Context, userID uuid.UUID, req *entity.ContactRequest) error
	DeleteContacts(ctx context.Context, userID uuid.UUID, itemsCSV string) (int64, error)
}
