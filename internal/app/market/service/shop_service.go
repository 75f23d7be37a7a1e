package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"shopnet/internal/app/market/entity"
	"shopnet/internal/app/market/repository"
	"shopnet/internal/app/market/util"
	"shopnet/pkg/logger"

	"github.com/google/uuid"
)

// ShopService управляет состоянием магазина владельца
type ShopService struct {
	shopRepo repository.ShopRepository
	cache    *util.RedisClient
}

// NewShopService создает новый сервис магазина
func NewShopService(shopRepo repository.ShopRepository, cache *util.RedisClient) *ShopService {
	return &ShopService{shopRepo: shopRepo, cache: cache}
}

// GetState получает магазин владельца с текущим состоянием
func (s *ShopService) GetState(ctx context.Context, userID uuid.UUID) (*entity.Shop, error) {
	shop, err := s.shopRepo.GetByUserID(ctx, userID)
	if err != nil {
		if errors.Is(err, repository.ErrShopNotFound) {
			return nil, ErrShopNotFound
		}
		return nil, fmt.Errorf("failed to get shop: %w", err)
	}

	return shop, nil
}

// SetState переключает состояние магазина владельца
// Значение принимается как булево-подобная строка ("true"/"0"/"on"/...)
func (s *ShopService) SetState(ctx context.Context, userID uuid.UUID, state string) (bool, error) {
	value, err := parseBoolState(state)
	if err != nil {
		return false, ErrInvalidState
	}

	rows, err := s.shopRepo.UpdateState(ctx, userID, value)
	if err != nil {
		return false, fmt.Errorf("failed to update shop state: %w", err)
	}

	if rows == 0 {
		return false, ErrShopNotFound
	}

	// Список активных магазинов изменился, кеш устарел
	if err := s.cache.InvalidateCatalog(ctx); err != nil {
		logger.Warn().Err(err).Msg("failed to invalidate catalog cache after state change")
	}

	return value, nil
}

// parseBoolState разбирает булево-подобную строку состояния магазина
func parseBoolState(state string) (bool, error) {
	switch strings.ToLower(strings.TrimSpace(state)) {
	case "1", "t", "true", "y", "yes", "on":
		return true, nil
	case "0", "f", "false", "n", "no", "off":
		return false, nil
	default:
		return false, fmt.Errorf("invalid boolean value %q", state)
	}
}
