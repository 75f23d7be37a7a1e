package handler

import (
	"errors"
	"net/http"
	"time"

	"shopnet/internal/app/market/entity"
	"shopnet/internal/app/market/service"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
)

// OrderHandler обрабатывает HTTP запросы для заказов с использованием Gin
type OrderHandler struct {
	orderService service.OrderServiceInterface
	validator    *validator.Validate
}

// NewOrderHandler создает новый обработчик заказов
func NewOrderHandler(orderService service.OrderServiceInterface) *OrderHandler {
	return &OrderHandler{
		orderService: orderService,
		validator:    validator.New(),
	}
}

// GetOrders обрабатывает GET /orders
// Получает оформленные заказы пользователя с позициями и суммами
func (h *OrderHandler) GetOrders(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	orders, err := h.orderService.GetOrders(c.Request.Context(), userID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to get orders"})
		return
	}

	c.JSON(http.StatusOK, buildOrderResponses(orders))
}

// Checkout обрабатывает POST /orders
// Переводит корзину в состояние new с привязкой контакта доставки
func (h *OrderHandler) Checkout(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}
	email := c.GetString("email")

	var req entity.CheckoutRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, entity.StatusResponse{Status: false, Errors: "Invalid request body"})
		return
	}

	if err := h.validator.Struct(req); err != nil {
		c.JSON(http.StatusBadRequest, entity.StatusResponse{Status: false, Errors: formatValidationError(err)})
		return
	}

	if err := h.orderService.Checkout(c.Request.Context(), userID, email, req.ID, req.Contact); err != nil {
		if errors.Is(err, service.ErrOrderNotFound) {
			c.JSON(http.StatusBadRequest, entity.StatusResponse{Status: false, Errors: "Basket not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, entity.StatusResponse{Status: false, Errors: "Failed to checkout order"})
		return
	}

	c.JSON(http.StatusOK, entity.StatusResponse{Status: true, Message: "Order placed"})
}

// buildOrderResponses формирует ответы с заказами и итоговыми суммами
func buildOrderResponses(orders []entity.Order) []entity.OrderResponse {
	responses := make([]entity.OrderResponse, len(orders))
	for i := range orders {
		responses[i] = buildOrderResponse(&orders[i])
	}
	return responses
}

// buildOrderResponse формирует ответ с информацией о заказе
func buildOrderResponse(order *entity.Order) entity.OrderResponse {
	items := make([]entity.OrderItemResponse, len(order.Items))
	for i, item := range order.Items {
		items[i] = entity.OrderItemResponse{
			ID:          item.ID,
			ProductInfo: buildProductInfoResponse(&item.ProductInfo),
			Quantity:    item.Quantity,
		}
	}

	return entity.OrderResponse{
		ID:        order.ID,
		State:     order.State,
		CreatedAt: order.CreatedAt.Format(time.RFC3339),
		Contact:   order.Contact,
		Items:     items,
		TotalSum:  order.TotalSum(),
	}
}

// buildProductInfoResponse формирует ответ с предложением магазина
func buildProductInfoResponse(info *entity.ProductInfo) entity.ProductInfoResponse {
	parameters := make(map[string]string, len(info.ProductParameters))
	for _, p := range info.ProductParameters {
		parameters[p.Parameter.Name] = p.Value
	}

	return entity.ProductInfoResponse{
		ID:         info.ID,
		Model:      info.Model,
		ExternalID: info.ExternalID,
		Product:    info.Product.Name,
		Category:   info.Product.Category.Name,
		ShopID:     info.ShopID,
		Quantity:   info.Quantity,
		Price:      info.Price,
		PriceRRC:   info.PriceRRC,
		Parameters: parameters,
	}
}
