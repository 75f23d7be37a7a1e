package repository

import (
	"context"
	"errors"

	"shopnet/internal/app/market/entity"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type orderRepository struct {
	db *gorm.DB
}

// NewOrderRepository создает новый репозиторий заказов
func NewOrderRepository(db *gorm.DB) OrderRepository {
	return &orderRepository{db: db}
}

// withOrderGraph предзагружает позиции до товара, категории и характеристик,
// чтобы сборка ответа не делала запросов на каждую строку
func withOrderGraph(db *gorm.DB) *gorm.DB {
	return db.
		Preload("Items.ProductInfo.Product.Category").
		Preload("Items.ProductInfo.ProductParameters.Parameter")
}

// GetBaskets получает корзины пользователя с полным графом позиций
// Пустой список, если корзины нет: ничего не создается
func (r *orderRepository) GetBaskets(ctx context.Context, userID uuid.UUID) ([]entity.Order, error) {
	var orders []entity.Order
	result := withOrderGraph(r.db.WithContext(ctx)).
		Where("user_id = ? AND state = ?", userID, entity.OrderStateBasket).
		Find(&orders)

	if result.Error != nil {
		return nil, result.Error
	}

	return orders, nil
}

// GetOrCreateBasket находит корзину пользователя или создает новую
func (r *orderRepository) GetOrCreateBasket(ctx context.Context, userID uuid.UUID) (*entity.Order, error) {
	var order entity.Order
	result := r.db.WithContext(ctx).
		Where(entity.Order{UserID: userID, State: entity.OrderStateBasket}).
		FirstOrCreate(&order)

	if result.Error != nil {
		return nil, result.Error
	}

	return &order, nil
}

// FindBasket ищет корзину без создания
func (r *orderRepository) FindBasket(ctx context.Context, userID uuid.UUID) (*entity.Order, error) {
	var order entity.Order
	result := r.db.WithContext(ctx).
		First(&order, "user_id = ? AND state = ?", userID, entity.OrderStateBasket)

	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, ErrOrderNotFound
		}
		return nil, result.Error
	}

	return &order, nil
}

// ListByUser получает оформленные заказы пользователя с контактом доставки
func (r *orderRepository) ListByUser(ctx context.Context, userID uuid.UUID) ([]entity.Order, error) {
	var orders []entity.Order
	result := withOrderGraph(r.db.WithContext(ctx)).
		Preload("Contact").
		Where("user_id = ? AND state <> ?", userID, entity.OrderStateBasket).
		Order("created_at DESC").
		Find(&orders)

	if result.Error != nil {
		return nil, result.Error
	}

	return orders, nil
}

// ListByShopOwner получает оформленные заказы, содержащие хотя бы одну позицию
// из магазинов владельца
func (r *orderRepository) ListByShopOwner(ctx context.Context, ownerID uuid.UUID) ([]entity.Order, error) {
	matching := r.db.Model(&entity.OrderItem{}).
		Select("order_items.order_id").
		Joins("JOIN product_infos ON product_infos.id = order_items.product_info_id").
		Joins("JOIN shops ON shops.id = product_infos.shop_id").
		Where("shops.user_id = ?", ownerID)

	var orders []entity.Order
	result := withOrderGraph(r.db.WithContext(ctx)).
		Preload("Contact").
		Where("state <> ?", entity.OrderStateBasket).
		Where("id IN (?)", matching).
		Order("created_at DESC").
		Find(&orders)

	if result.Error != nil {
		return nil, result.Error
	}

	return orders, nil
}

// Checkout атомарно привязывает контакт и переводит заказ basket -> new
// Условие state = basket в WHERE гарантирует допустимость перехода
func (r *orderRepository) Checkout(ctx context.Context, orderID uint, userID uuid.UUID, contactID uint) (int64, error) {
	result := r.db.WithContext(ctx).Model(&entity.Order{}).
		Where("id = ? AND user_id = ? AND state = ?", orderID, userID, entity.OrderStateBasket).
		Updates(map[string]interface{}{
			"contact_id": contactID,
			"state":      entity.OrderStateNew,
		})

	if result.Error != nil {
		return 0, result.Error
	}

	return result.RowsAffected, nil
}
