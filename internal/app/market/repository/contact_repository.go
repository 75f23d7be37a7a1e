package repository

import (
	"context"

	"shopnet/internal/app/market/entity"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type contactRepository struct {
	db *gorm.DB
}

// NewContactRepository создает новый репозиторий адресов доставки
func NewContactRepository(db *gorm.DB) ContactRepository {
	return &contactRepository{db: db}
}

func (r *contactRepository) Create(ctx context.Context, contact *entity.Contact) error {
	result := r.db.WithContext(ctx).Create(contact)
	return result.Error
}

func (r *contactRepository) ListByUser(ctx context.Context, userID uuid.UUID) ([]entity.Contact, error) {
	var contacts []entity.Contact
	result := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("id").
		Find(&contacts)

	if result.Error != nil {
		return nil, result.Error
	}

	return contacts, nil
}

// Update обновляет адрес, принадлежащий пользователю
// Возвращает число затронутых строк: 0 означает чужой или несуществующий адрес
func (r *contactRepository) Update(ctx context.Context, contact *entity.Contact) (int64, error) {
	result := r.db.WithContext(ctx).Model(&entity.Contact{}).
		Where("id = ? AND user_id = ?", contact.ID, contact.UserID).
		Updates(map[string]interface{}{
			"city":      contact.City,
			"street":    contact.Street,
			"house":     contact.House,
			"structure": contact.Structure,
			"building":  contact.Building,
			"apartment": contact.Apartment,
			"phone":     contact.Phone,
		})

	if result.Error != nil {
		return 0, result.Error
	}

	return result.RowsAffected, nil
}

func (r *contactRepository) DeleteByIDs(ctx context.Context, userID uuid.UUID, ids []uint) (int64, error) {
	if len(ids) == 0 {
		return 0, nil
	}

	result := r.db.WithContext(ctx).
		Where("user_id = ? AND id IN ?", userID, ids).
		Delete(&entity.Contact{})

	if result.Error != nil {
		return 0, result.Error
	}

	return result.RowsAffected, nil
}
