package service

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"shopnet/internal/app/market/entity"
	"shopnet/internal/app/market/infrastructure"
	"shopnet/internal/app/market/repository"
	"shopnet/pkg/logger"
	"shopnet/pkg/metrics"

	"github.com/google/uuid"
)

const (
	checkoutNotificationTitle   = "Order status update"
	checkoutNotificationMessage = "Your order has been placed."
)

// OrderService обрабатывает оформленные заказы
// Оформление переводит корзину в состояние new и передает отложенное
// уведомление внешнему диспетчеру
type OrderService struct {
	orderRepo   repository.OrderRepository
	producer    infrastructure.MessagePublisher
	notifyDelay time.Duration
}

// NewOrderService создает новый сервис заказов с внедрением зависимостей
func NewOrderService(
	orderRepo repository.OrderRepository,
	producer infrastructure.MessagePublisher,
	notifyDelay time.Duration,
) *OrderService {
	return &OrderService{
		orderRepo:   orderRepo,
		producer:    producer,
		notifyDelay: notifyDelay,
	}
}

// GetOrders получает оформленные заказы пользователя с контактом и позициями
func (s *OrderService) GetOrders(ctx context.Context, userID uuid.UUID) ([]entity.Order, error) {
	orders, err := s.orderRepo.ListByUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to get user orders: %w", err)
	}

	return orders, nil
}

// GetShopOrders получает заказы, содержащие позиции магазинов владельца
func (s *OrderService) GetShopOrders(ctx context.Context, ownerID uuid.UUID) ([]entity.Order, error) {
	orders, err := s.orderRepo.ListByShopOwner(ctx, ownerID)
	if err != nil {
		return nil, fmt.Errorf("failed to get shop orders: %w", err)
	}

	return orders, nil
}

// Checkout оформляет заказ на контакт доставки
// Обновление идет одним UPDATE с условием владельца и состояния basket:
// ноль затронутых строк означает чужой или несуществующий заказ, и тогда
// никаких побочных эффектов не происходит
func (s *OrderService) Checkout(ctx context.Context, userID uuid.UUID, email string, orderID uint, contactID uint) error {
	rows, err := s.orderRepo.Checkout(ctx, orderID, userID, contactID)
	if err != nil {
		return fmt.Errorf("failed to checkout order: %w", err)
	}

	if rows == 0 {
		return ErrOrderNotFound
	}

	metrics.OrdersCheckedOut.Inc()
	s.enqueueNotification(ctx, email)

	return nil
}

// enqueueNotification передает отложенное уведомление диспетчеру
// Producer асинхронный, вызов не ждет доставки; ошибки только логируются —
// заказ уже оформлен
func (s *OrderService) enqueueNotification(ctx context.Context, email string) {
	event := entity.EmailNotificationEvent{
		Title:     checkoutNotificationTitle,
		Message:   checkoutNotificationMessage,
		Email:     email,
		SendAfter: time.Now().Add(s.notifyDelay),
		CreatedAt: time.Now(),
	}

	data, err := json.Marshal(event)
	if err != nil {
		metrics.NotificationsEnqueued.WithLabelValues("failed").Inc()
		logger.Error().Err(err).Msg("failed to marshal notification event")
		return
	}

	if err := s.producer.PublishMessage(ctx, email, data); err != nil {
		metrics.NotificationsEnqueued.WithLabelValues("failed").Inc()
		logger.Warn().Err(err).Str("email", email).Msg("failed to enqueue notification")
		return
	}

	metrics.NotificationsEnqueued.WithLabelValues("success").Inc()
}
