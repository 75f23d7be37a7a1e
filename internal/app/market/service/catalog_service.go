package service

import (
	"context"
	"fmt"
	"time"

	"shopnet/internal/app/market/entity"
	"shopnet/internal/app/market/repository"
	"shopnet/internal/app/market/util"
	"shopnet/pkg/logger"
)

const (
	categoriesCacheTTL = time.Hour
	shopsCacheTTL      = 10 * time.Minute
)

// CatalogService обрабатывает публичные запросы каталога
// Списки категорий и активных магазинов кешируются в Redis
type CatalogService struct {
	catalogRepo repository.CatalogRepository
	shopRepo    repository.ShopRepository
	cache       *util.RedisClient
}

// NewCatalogService создает новый сервис каталога с внедрением зависимостей
func NewCatalogService(
	catalogRepo repository.CatalogRepository,
	shopRepo repository.ShopRepository,
	cache *util.RedisClient,
) *CatalogService {
	return &CatalogService{
		catalogRepo: catalogRepo,
		shopRepo:    shopRepo,
		cache:       cache,
	}
}

// GetCategories получает все категории каталога с кешированием
func (s *CatalogService) GetCategories(ctx context.Context) ([]entity.Category, error) {
	categories, err := s.cache.GetCategories(ctx)
	if err == nil && len(categories) > 0 {
		return categories, nil
	}

	categories, err = s.catalogRepo.ListCategories(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to get categories: %w", err)
	}

	// Данные получены из БД, проблемы с кешем не критичны
	if err := s.cache.SetCategories(ctx, categories, categoriesCacheTTL); err != nil {
		logger.Warn().Err(err).Msg("failed to cache categories")
	}

	return categories, nil
}

// GetShops получает активные магазины с кешированием
func (s *CatalogService) GetShops(ctx context.Context) ([]entity.Shop, error) {
	shops, err := s.cache.GetShops(ctx)
	if err == nil && len(shops) > 0 {
		return shops, nil
	}

	shops, err = s.shopRepo.ListActive(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to get shops: %w", err)
	}

	if err := s.cache.SetShops(ctx, shops, shopsCacheTTL); err != nil {
		logger.Warn().Err(err).Msg("failed to cache shops")
	}

	return shops, nil
}

// QueryProducts получает предложения активных магазинов по фильтрам
func (s *CatalogService) QueryProducts(ctx context.Context, filter entity.ProductInfoFilter) ([]entity.ProductInfo, error) {
	infos, err := s.catalogRepo.QueryProductInfo(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("failed to query product infos: %w", err)
	}

	return infos, nil
}
