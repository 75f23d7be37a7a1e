package handler

import (
	"errors"
	"net/http"

	"shopnet/internal/app/market/entity"
	"shopnet/internal/app/market/service"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
)

// PartnerHandler обрабатывает HTTP запросы владельцев магазинов
// Все эндпоинты требуют аккаунт типа shop
type PartnerHandler struct {
	importService service.ImportServiceInterface
	shopService   service.ShopServiceInterface
	orderService  service.OrderServiceInterface
	validator     *validator.Validate
}

// NewPartnerHandler создает новый обработчик партнерских запросов
func NewPartnerHandler(
	importService service.ImportServiceInterface,
	shopService service.ShopServiceInterface,
	orderService service.OrderServiceInterface,
) *PartnerHandler {
	return &PartnerHandler{
		importService: importService,
		shopService:   shopService,
		orderService:  orderService,
		validator:     validator.New(),
	}
}

// ImportCatalog обрабатывает POST /partner/update
// Загружает прайс-лист по URL и пересоздает каталог магазина
func (h *PartnerHandler) ImportCatalog(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	var req entity.ImportRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, entity.StatusResponse{Status: false, Errors: "Invalid request body"})
		return
	}

	if err := h.validator.Struct(req); err != nil {
		c.JSON(http.StatusBadRequest, entity.StatusResponse{Status: false, Errors: formatValidationError(err)})
		return
	}

	summary, err := h.importService.ImportCatalog(c.Request.Context(), userID, req.URL)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrInvalidFeedURL):
			c.JSON(http.StatusBadRequest, entity.StatusResponse{Status: false, Errors: "Invalid url"})
		case errors.Is(err, service.ErrFeedUnavailable):
			c.JSON(http.StatusBadRequest, entity.StatusResponse{Status: false, Errors: "Failed to fetch price list"})
		case errors.Is(err, service.ErrInvalidFeed):
			c.JSON(http.StatusBadRequest, entity.StatusResponse{Status: false, Errors: "Invalid price list format"})
		case errors.Is(err, service.ErrShopNameTaken):
			c.JSON(http.StatusForbidden, entity.StatusResponse{Status: false, Errors: "Shop name belongs to another user"})
		default:
			c.JSON(http.StatusInternalServerError, entity.StatusResponse{Status: false, Errors: "Failed to import price list"})
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"Status":  true,
		"summary": summary,
	})
}

// GetState обрабатывает GET /partner/state
func (h *PartnerHandler) GetState(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	shop, err := h.shopService.GetState(c.Request.Context(), userID)
	if err != nil {
		if errors.Is(err, service.ErrShopNotFound) {
			c.JSON(http.StatusNotFound, entity.StatusResponse{Status: false, Errors: "Shop not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, entity.StatusResponse{Status: false, Errors: "Failed to get shop state"})
		return
	}

	c.JSON(http.StatusOK, shop)
}

// SetState обрабатывает POST /partner/state
// Состояние принимается как булево-подобная строка
func (h *PartnerHandler) SetState(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	var req entity.ShopStateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, entity.StatusResponse{Status: false, Errors: "Invalid request body"})
		return
	}

	if err := h.validator.Struct(req); err != nil {
		c.JSON(http.StatusBadRequest, entity.StatusResponse{Status: false, Errors: formatValidationError(err)})
		return
	}

	state, err := h.shopService.SetState(c.Request.Context(), userID, req.State)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrInvalidState):
			c.JSON(http.StatusBadRequest, entity.StatusResponse{Status: false, Errors: "Invalid state value"})
		case errors.Is(err, service.ErrShopNotFound):
			c.JSON(http.StatusNotFound, entity.StatusResponse{Status: false, Errors: "Shop not found"})
		default:
			c.JSON(http.StatusInternalServerError, entity.StatusResponse{Status: false, Errors: "Failed to update shop state"})
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"Status": true,
		"state":  state,
	})
}

// GetOrders обрабатывает GET /partner/orders
// Получает заказы, содержащие позиции магазинов владельца
func (h *PartnerHandler) GetOrders(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	orders, err := h.orderService.GetShopOrders(c.Request.Context(), userID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to get shop orders"})
		return
	}

	c.JSON(http.StatusOK, buildOrderResponses(orders))
}
