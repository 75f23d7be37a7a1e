package handler

import (
	"net/http"
	"strconv"

	"shopnet/internal/app/market/entity"
	"shopnet/internal/app/market/service"

	"github.com/gin-gonic/gin"
)

// CatalogHandler обрабатывает публичные HTTP запросы каталога
// Эндпоинты доступны без аутентификации
type CatalogHandler struct {
	catalogService service.CatalogServiceInterface
}

// NewCatalogHandler создает новый обработчик каталога
func NewCatalogHandler(catalogService service.CatalogServiceInterface) *CatalogHandler {
	return &CatalogHandler{catalogService: catalogService}
}

// GetCategories обрабатывает GET /categories
func (h *CatalogHandler) GetCategories(c *gin.Context) {
	categories, err := h.catalogService.GetCategories(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to get categories"})
		return
	}

	c.JSON(http.StatusOK, categories)
}

// GetShops обрабатывает GET /shops
// Возвращает только магазины, принимающие заказы
func (h *CatalogHandler) GetShops(c *gin.Context) {
	shops, err := h.catalogService.GetShops(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to get shops"})
		return
	}

	c.JSON(http.StatusOK, shops)
}

// GetProducts обрабатывает GET /products
// Фильтры shop_id и category_id опциональны и комбинируются через AND
func (h *CatalogHandler) GetProducts(c *gin.Context) {
	filter, err := parseProductFilter(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid filter parameters"})
		return
	}

	infos, err := h.catalogService.QueryProducts(c.Request.Context(), filter)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to get products"})
		return
	}

	responses := make([]entity.ProductInfoResponse, len(infos))
	for i := range infos {
		responses[i] = buildProductInfoResponse(&infos[i])
	}

	c.JSON(http.StatusOK, responses)
}

// parseProductFilter разбирает query-параметры фильтра предложений
func parseProductFilter(c *gin.Context) (entity.ProductInfoFilter, error) {
	var filter entity.ProductInfoFilter

	if raw := c.Query("shop_id"); raw != "" {
		id, err := strconv.ParseUint(raw, 10, 64)
		if err != nil {
			return filter, err
		}
		filter.ShopID = uint(id)
	}

	if raw := c.Query("category_id"); raw != "" {
		id, err := strconv.ParseUint(raw, 10, 64)
		if err != nil {
			return filter, err
		}
		filter.CategoryID = uint(id)
	}

	return filter, nil
}
