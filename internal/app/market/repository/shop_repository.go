package repository

import (
	"context"
	"errors"

	"shopnet/internal/app/market/entity"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type shopRepository struct {
	db *gorm.DB // GORM DB для работы с PostgreSQL
}

// NewShopRepository создает новый репозиторий магазинов
func NewShopRepository(db *gorm.DB) ShopRepository {
	return &shopRepository{db: db}
}

// GetByUserID получает магазин владельца
func (r *shopRepository) GetByUserID(ctx context.Context, userID uuid.UUID) (*entity.Shop, error) {
	var shop entity.Shop
	result := r.db.WithContext(ctx).First(&shop, "user_id = ?", userID)

	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, ErrShopNotFound
		}
		return nil, result.Error
	}

	return &shop, nil
}

// ListActive получает все магазины, принимающие заказы
func (r *shopRepository) ListActive(ctx context.Context) ([]entity.Shop, error) {
	var shops []entity.Shop
	result := r.db.WithContext(ctx).
		Where("state = ?", true).
		Order("name").
		Find(&shops)

	if result.Error != nil {
		return nil, result.Error
	}

	return shops, nil
}

// UpdateState переключает состояние магазинов владельца
// Возвращает число затронутых строк: 0 означает что магазина у владельца нет
func (r *shopRepository) UpdateState(ctx context.Context, userID uuid.UUID, state bool) (int64, error) {
	result := r.db.WithContext(ctx).Model(&entity.Shop{}).
		Where("user_id = ?", userID).
		Update("state", state)

	if result.Error != nil {
		return 0, result.Error
	}

	return result.RowsAffected, nil
}
