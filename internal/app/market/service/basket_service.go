package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"shopnet/internal/app/market/entity"
	"shopnet/internal/app/market/repository"
	"shopnet/pkg/logger"
	"shopnet/pkg/metrics"

	"github.com/google/uuid"
)

// BasketService обрабатывает операции с корзиной пользователя
// Корзина — это заказ в состоянии basket, не более одного на пользователя
type BasketService struct {
	orderRepo repository.OrderRepository
	itemRepo  repository.OrderItemRepository
}

// NewBasketService создает новый сервис корзины с внедрением зависимостей
func NewBasketService(orderRepo repository.OrderRepository, itemRepo repository.OrderItemRepository) *BasketService {
	return &BasketService{
		orderRepo: orderRepo,
		itemRepo:  itemRepo,
	}
}

// GetBasket получает корзину пользователя с развернутыми позициями
// Пустой список, если корзины нет: чтение ее не создает
func (s *BasketService) GetBasket(ctx context.Context, userID uuid.UUID) ([]entity.Order, error) {
	baskets, err := s.orderRepo.GetBaskets(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to get basket: %w", err)
	}

	return baskets, nil
}

// AddItems добавляет позиции в корзину из JSON массива {product_info, quantity}
// Нечитаемый JSON отклоняет весь запрос до любых записей. Дубликат пары
// (заказ, предложение) считается конфликтом, но не прерывает остальные позиции
func (s *BasketService) AddItems(ctx context.Context, userID uuid.UUID, itemsJSON string) (int, int, error) {
	var items []entity.BasketItemAdd
	if err := json.Unmarshal([]byte(itemsJSON), &items); err != nil {
		return 0, 0, ErrInvalidItemsFormat
	}
	if len(items) == 0 {
		return 0, 0, ErrNoItems
	}

	basket, err := s.orderRepo.GetOrCreateBasket(ctx, userID)
	if err != nil {
		return 0, 0, fmt.Errorf("failed to get or create basket: %w", err)
	}

	var created, conflicts int
	for _, item := range items {
		if item.ProductInfo == 0 || item.Quantity <= 0 {
			logger.Warn().
				Uint("product_info", item.ProductInfo).
				Int("quantity", item.Quantity).
				Msg("skipping invalid basket item")
			continue
		}

		orderItem := &entity.OrderItem{
			OrderID:       basket.ID,
			ProductInfoID: item.ProductInfo,
			Quantity:      item.Quantity,
		}

		if err := s.itemRepo.Create(ctx, orderItem); err != nil {
			if errors.Is(err, repository.ErrItemAlreadyAdded) {
				conflicts++
				continue
			}
			return created, conflicts, fmt.Errorf("failed to create order item: %w", err)
		}
		created++
	}

	metrics.BasketItemsAdded.Add(float64(created))
	return created, conflicts, nil
}

// RemoveItems удаляет позиции корзины по списку ID через запятую
// Нечисловые токены пропускаются. Если корзины нет, удалять нечего —
// и корзина при этом не создается
func (s *BasketService) RemoveItems(ctx context.Context, userID uuid.UUID, itemsCSV string) (int64, error) {
	ids := parseIDList(itemsCSV)
	if len(ids) == 0 {
		return 0, ErrNoItems
	}

	basket, err := s.orderRepo.FindBasket(ctx, userID)
	if err != nil {
		if errors.Is(err, repository.ErrOrderNotFound) {
			return 0, nil
		}
		return 0, fmt.Errorf("failed to find basket: %w", err)
	}

	deleted, err := s.itemRepo.DeleteByIDs(ctx, basket.ID, ids)
	if err != nil {
		return 0, fmt.Errorf("failed to delete order items: %w", err)
	}

	return deleted, nil
}

// UpdateItems меняет количества позиций корзины из JSON массива {id, quantity}
// Записи с нецелыми или неположительными значениями пропускаются
func (s *BasketService) UpdateItems(ctx context.Context, userID uuid.UUID, itemsJSON string) (int64, error) {
	var raws []json.RawMessage
	if err := json.Unmarshal([]byte(itemsJSON), &raws); err != nil {
		return 0, ErrInvalidItemsFormat
	}

	basket, err := s.orderRepo.FindBasket(ctx, userID)
	if err != nil {
		if errors.Is(err, repository.ErrOrderNotFound) {
			return 0, nil
		}
		return 0, fmt.Errorf("failed to find basket: %w", err)
	}

	var updated int64
	for _, raw := range raws {
		var item entity.BasketItemUpdate
		if err := json.Unmarshal(raw, &item); err != nil || item.ID <= 0 || item.Quantity <= 0 {
			continue
		}

		rows, err := s.itemRepo.UpdateQuantity(ctx, basket.ID, uint(item.ID), item.Quantity)
		if err != nil {
			return updated, fmt.Errorf("failed to update order item %d: %w", item.ID, err)
		}
		updated += rows
	}

	return updated, nil
}

// parseIDList разбирает список ID через запятую, пропуская нечисловые токены
func parseIDList(csv string) []uint {
	var ids []uint
	for _, token := range strings.Split(csv, ",") {
		id, err := strconv.ParseUint(strings.TrimSpace(token), 10, 64)
		if err != nil || id == 0 {
			continue
		}
		ids = append(ids, uint(id))
	}
	return ids
}
