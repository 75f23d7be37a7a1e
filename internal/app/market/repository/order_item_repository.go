package repository

import (
	"context"
	"errors"

	"shopnet/internal/app/market/entity"

	"gorm.io/gorm"
)

type orderItemRepository struct {
	db *gorm.DB
}

// NewOrderItemRepository создает новый репозиторий позиций заказа
func NewOrderItemRepository(db *gorm.DB) OrderItemRepository {
	return &orderItemRepository{db: db}
}

// Create создает позицию заказа
// Повторное добавление того же предложения в заказ нарушает уникальный
// индекс (order_id, product_info_id) и возвращает ErrItemAlreadyAdded
func (r *orderItemRepository) Create(ctx context.Context, item *entity.OrderItem) error {
	result := r.db.WithContext(ctx).Create(item)

	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrDuplicatedKey) {
			return ErrItemAlreadyAdded
		}
		return result.Error
	}

	return nil
}

// DeleteByIDs удаляет позиции заказа по списку ID, возвращает число удаленных
func (r *orderItemRepository) DeleteByIDs(ctx context.Context, orderID uint, ids []uint) (int64, error) {
	if len(ids) == 0 {
		return 0, nil
	}

	result := r.db.WithContext(ctx).
		Where("order_id = ? AND id IN ?", orderID, ids).
		Delete(&entity.OrderItem{})

	if result.Error != nil {
		return 0, result.Error
	}

	return result.RowsAffected, nil
}

// UpdateQuantity меняет количество позиции в заказе
// Возвращает число затронутых строк: 0 означает что позиции в заказе нет
func (r *orderItemRepository) UpdateQuantity(ctx context.Context, orderID uint, itemID uint, quantity int) (int64, error) {
	result := r.db.WithContext(ctx).Model(&entity.OrderItem{}).
		Where("order_id = ? AND id = ?", orderID, itemID).
		Update("quantity", quantity)

	if result.Error != nil {
		return 0, result.Error
	}

	return result.RowsAffected, nil
}
