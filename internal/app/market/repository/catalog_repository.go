package repository

import (
	"context"
	"errors"
	"fmt"

	"shopnet/internal/app/market/entity"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type catalogRepository struct {
	db *gorm.DB
}

// NewCatalogRepository создает новый репозиторий каталога
func NewCatalogRepository(db *gorm.DB) CatalogRepository {
	return &catalogRepository{db: db}
}

// ReplaceShopCatalog выполняет сверку прайс-листа с каталогом.
// Все шаги идут в одной транзакции: частично примененный импорт невозможен.
// 1. Магазин ищется или создается по (имя, владелец)
// 2. Категории прайс-листа создаются или переименовываются, магазин привязывается
// 3. Все предложения магазина удаляются целиком (характеристики каскадом)
// 4. Предложения и их характеристики создаются заново из прайс-листа
func (r *catalogRepository) ReplaceShopCatalog(ctx context.Context, userID uuid.UUID, feed *entity.Feed) (*entity.ImportSummary, error) {
	summary := &entity.ImportSummary{}

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		shop := entity.Shop{Name: feed.Shop, UserID: userID}
		if err := tx.Where(entity.Shop{Name: feed.Shop, UserID: userID}).
			Attrs(entity.Shop{State: true}).
			FirstOrCreate(&shop).Error; err != nil {
			if errors.Is(err, gorm.ErrDuplicatedKey) {
				// Имя магазина уже занято другим пользователем
				return ErrShopNameTaken
			}
			return fmt.Errorf("failed to resolve shop: %w", err)
		}
		summary.ShopID = shop.ID

		for _, fc := range feed.Categories {
			category := entity.Category{ID: fc.ID, Name: fc.Name}
			// Имя категории всегда перезаписывается значением из прайс-листа
			if err := tx.Clauses(clause.OnConflict{
				Columns:   []clause.Column{{Name: "id"}},
				DoUpdates: clause.AssignmentColumns([]string{"name"}),
			}).Create(&category).Error; err != nil {
				return fmt.Errorf("failed to upsert category %d: %w", fc.ID, err)
			}

			if err := tx.Model(&category).Association("Shops").Append(&shop); err != nil {
				return fmt.Errorf("failed to link category %d to shop: %w", fc.ID, err)
			}
			summary.Categories++
		}

		// Полная замена предложений магазина, характеристики удаляются каскадом
		if err := tx.Where("shop_id = ?", shop.ID).Delete(&entity.ProductInfo{}).Error; err != nil {
			return fmt.Errorf("failed to wipe shop listings: %w", err)
		}

		for _, good := range feed.Goods {
			product := entity.Product{Name: good.Name, CategoryID: good.Category}
			if err := tx.Where(entity.Product{Name: good.Name, CategoryID: good.Category}).
				FirstOrCreate(&product).Error; err != nil {
				return fmt.Errorf("failed to resolve product %q: %w", good.Name, err)
			}
			summary.Products++

			info := entity.ProductInfo{
				Model:      good.Model,
				ExternalID: good.ID,
				ProductID:  product.ID,
				ShopID:     shop.ID,
				Quantity:   good.Quantity,
				Price:      good.Price,
				PriceRRC:   good.PriceRRC,
			}
			if err := tx.Create(&info).Error; err != nil {
				return fmt.Errorf("failed to create listing %d: %w", good.ID, err)
			}
			summary.Listings++

			for name, value := range good.Parameters {
				parameter := entity.Parameter{Name: name}
				if err := tx.Where(entity.Parameter{Name: name}).
					FirstOrCreate(&parameter).Error; err != nil {
					return fmt.Errorf("failed to resolve parameter %q: %w", name, err)
				}

				pp := entity.ProductParameter{
					ProductInfoID: info.ID,
					ParameterID:   parameter.ID,
					Value:         value,
				}
				if err := tx.Create(&pp).Error; err != nil {
					return fmt.Errorf("failed to create parameter value %q: %w", name, err)
				}
				summary.Parameters++
			}
		}

		return nil
	})

	if err != nil {
		return nil, err
	}

	return summary, nil
}

// ListCategories получает все категории каталога
func (r *catalogRepository) ListCategories(ctx context.Context) ([]entity.Category, error) {
	var categories []entity.Category
	result := r.db.WithContext(ctx).Order("id").Find(&categories)

	if result.Error != nil {
		return nil, result.Error
	}

	return categories, nil
}

// QueryProductInfo получает предложения активных магазинов по фильтрам
// Товар с категорией и характеристики предзагружаются одним набором запросов
func (r *catalogRepository) QueryProductInfo(ctx context.Context, filter entity.ProductInfoFilter) ([]entity.ProductInfo, error) {
	query := r.db.WithContext(ctx).
		Joins("JOIN shops ON shops.id = product_infos.shop_id").
		Where("shops.state = ?", true).
		Preload("Product.Category").
		Preload("ProductParameters.Parameter")

	if filter.ShopID != 0 {
		query = query.Where("product_infos.shop_id = ?", filter.ShopID)
	}

	if filter.CategoryID != 0 {
		query = query.
			Joins("JOIN products ON products.id = product_infos.product_id").
			Where("products.category_id = ?", filter.CategoryID)
	}

	var infos []entity.ProductInfo
	result := query.Find(&infos)

	if result.Error != nil {
		return nil, result.Error
	}

	return infos, nil
}
