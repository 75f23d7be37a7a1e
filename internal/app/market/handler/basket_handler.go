package handler

import (
	"errors"
	"fmt"
	"net/http"

	"shopnet/internal/app/market/entity"
	"shopnet/internal/app/market/service"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
)

// BasketHandler обрабатывает HTTP запросы корзины с использованием Gin
type BasketHandler struct {
	basketService service.BasketServiceInterface
	validator     *validator.Validate
}

// NewBasketHandler создает новый обработчик корзины
func NewBasketHandler(basketService service.BasketServiceInterface) *BasketHandler {
	return &BasketHandler{
		basketService: basketService,
		validator:     validator.New(),
	}
}

// GetBasket обрабатывает GET /basket
// Получает корзину пользователя с позициями и итоговой суммой
func (h *BasketHandler) GetBasket(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	baskets, err := h.basketService.GetBasket(c.Request.Context(), userID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to get basket"})
		return
	}

	c.JSON(http.StatusOK, buildOrderResponses(baskets))
}

// AddItems обрабатывает POST /basket
// Поле items содержит JSON массив позиций {product_info, quantity} в виде строки
func (h *BasketHandler) AddItems(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	var req entity.BasketItemsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, entity.StatusResponse{Status: false, Errors: "Invalid request body"})
		return
	}

	if err := h.validator.Struct(req); err != nil {
		c.JSON(http.StatusBadRequest, entity.StatusResponse{Status: false, Errors: formatValidationError(err)})
		return
	}

	created, conflicts, err := h.basketService.AddItems(c.Request.Context(), userID, req.Items)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrInvalidItemsFormat):
			c.JSON(http.StatusBadRequest, entity.StatusResponse{Status: false, Errors: "Invalid items format"})
		case errors.Is(err, service.ErrNoItems):
			c.JSON(http.StatusBadRequest, entity.StatusResponse{Status: false, Errors: "No items to add"})
		default:
			c.JSON(http.StatusInternalServerError, entity.StatusResponse{Status: false, Errors: "Failed to add items"})
		}
		return
	}

	message := fmt.Sprintf("Created %d items", created)
	if conflicts > 0 {
		message = fmt.Sprintf("Created %d items, %d already in basket", created, conflicts)
	}

	c.JSON(http.StatusOK, entity.StatusResponse{Status: true, Message: message})
}

// RemoveItems обрабатывает DELETE /basket
// Поле items содержит список ID позиций через запятую
func (h *BasketHandler) RemoveItems(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	var req entity.BasketItemsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, entity.StatusResponse{Status: false, Errors: "Invalid request body"})
		return
	}

	deleted, err := h.basketService.RemoveItems(c.Request.Context(), userID, req.Items)
	if err != nil {
		if errors.Is(err, service.ErrNoItems) {
			c.JSON(http.StatusBadRequest, entity.StatusResponse{Status: false, Errors: "No items to delete"})
			return
		}
		c.JSON(http.StatusInternalServerError, entity.StatusResponse{Status: false, Errors: "Failed to delete items"})
		return
	}

	c.JSON(http.StatusOK, entity.StatusResponse{
		Status:  true,
		Message: fmt.Sprintf("Deleted %d items", deleted),
	})
}

// UpdateItems обрабатывает PUT /basket
// Поле items содержит JSON массив {id, quantity} в виде строки
func (h *BasketHandler) UpdateItems(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	var req entity.BasketItemsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, entity.StatusResponse{Status: false, Errors: "Invalid request body"})
		return
	}

	updated, err := h.basketService.UpdateItems(c.Request.Context(), userID, req.Items)
	if err != nil {
		if errors.Is(err, service.ErrInvalidItemsFormat) {
			c.JSON(http.StatusBadRequest, entity.StatusResponse{Status: false, Errors: "Invalid items format"})
			return
		}
		c.JSON(http.StatusInternalServerError, entity.StatusResponse{Status: false, Errors: "Failed to update items"})
		return
	}

	c.JSON(http.StatusOK, entity.StatusResponse{
		Status:  true,
		Message: fmt.Sprintf("Updated %d items", updated),
	})
}

// formatValidationError форматирует ошибки валидации
func formatValidationError(err error) string {
	if validationErrors, ok := err.(validator.ValidationErrors); ok {
		for _, fieldError := range validationErrors {
			return fieldError.Field() + " is " + fieldError.Tag()
		}
	}
	return "Validation failed"
}
