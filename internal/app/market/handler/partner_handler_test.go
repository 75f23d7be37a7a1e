package handler

import (
	"encoding/json"
	"net/http"
	"testing"

	"shopnet/internal/app/market/entity"
	"shopnet/internal/app/market/service"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func setupPartnerRouter(userID uuid.UUID, handler *PartnerHandler) *gin.Engine {
	router := gin.New()
	partner := router.Group("/partner", setUser(userID, "shop@example.com"))
	{
		partner.POST("/update", handler.ImportCatalog)
		partner.GET("/state", handler.GetState)
		partner.POST("/state", handler.SetState)
	}
	return router
}

func TestImportCatalogHandler_Success(t *testing.T) {
	// Arrange
	userID := uuid.New()
	importSvc := new(MockImportService)
	handler := NewPartnerHandler(importSvc, new(MockShopService), new(MockOrderService))

	summary := &entity.ImportSummary{ShopID: 7, Categories: 2, Products: 5, Listings: 5, Parameters: 12}
	importSvc.On("ImportCatalog", mock.Anything, userID, "https://example.com/feed.yaml").
		Return(summary, nil)

	router := setupPartnerRouter(userID, handler)

	// Act
	w := performJSON(router, http.MethodPost, "/partner/update",
		entity.ImportRequest{URL: "https://example.com/feed.yaml"})

	// Assert
	assert.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		Status  bool                 `json:"Status"`
		Summary entity.ImportSummary `json:"summary"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.True(t, resp.Status)
	assert.Equal(t, *summary, resp.Summary)

	importSvc.AssertExpectations(t)
}

func TestImportCatalogHandler_InvalidURL(t *testing.T) {
	userID := uuid.New()
	importSvc := new(MockImportService)
	handler := NewPartnerHandler(importSvc, new(MockShopService), new(MockOrderService))

	importSvc.On("ImportCatalog", mock.Anything, userID, "not-a-url").
		Return(nil, service.ErrInvalidFeedURL)

	router := setupPartnerRouter(userID, handler)

	// Act
	w := performJSON(router, http.MethodPost, "/partner/update", entity.ImportRequest{URL: "not-a-url"})

	// Assert
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

// Имя магазина из прайс-листа уже занято другим владельцем
func TestImportCatalogHandler_ShopNameTaken(t *testing.T) {
	userID := uuid.New()
	importSvc := new(MockImportService)
	handler := NewPartnerHandler(importSvc, new(MockShopService), new(MockOrderService))

	importSvc.On("ImportCatalog", mock.Anything, userID, "https://example.com/feed.yaml").
		Return(nil, service.ErrShopNameTaken)

	router := setupPartnerRouter(userID, handler)

	// Act
	w := performJSON(router, http.MethodPost, "/partner/update",
		entity.ImportRequest{URL: "https://example.com/feed.yaml"})

	// Assert
	assert.Equal(t, http.StatusForbidden, w.Code)
}

func TestImportCatalogHandler_MissingURL(t *testing.T) {
	importSvc := new(MockImportService)
	handler := NewPartnerHandler(importSvc, new(MockShopService), new(MockOrderService))

	router := setupPartnerRouter(uuid.New(), handler)

	// Act
	w := performJSON(router, http.MethodPost, "/partner/update", gin.H{})

	// Assert
	assert.Equal(t, http.StatusBadRequest, w.Code)
	importSvc.AssertNotCalled(t, "ImportCatalog")
}

func TestGetStateHandler_Success(t *testing.T) {
	// Arrange
	userID := uuid.New()
	shopSvc := new(MockShopService)
	handler := NewPartnerHandler(new(MockImportService), shopSvc, new(MockOrderService))

	shop := &entity.Shop{ID: 1, Name: "Связной", State: true}
	shopSvc.On("GetState", mock.Anything, userID).Return(shop, nil)

	router := setupPartnerRouter(userID, handler)

	// Act
	w := performJSON(router, http.MethodGet, "/partner/state", nil)

	// Assert
	assert.Equal(t, http.StatusOK, w.Code)

	var resp entity.Shop
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "Связной", resp.Name)
	assert.True(t, resp.State)
}

func TestGetStateHandler_NotFound(t *testing.T) {
	userID := uuid.New()
	shopSvc := new(MockShopService)
	handler := NewPartnerHandler(new(MockImportService), shopSvc, new(MockOrderService))

	shopSvc.On("GetState", mock.Anything, userID).Return(nil, service.ErrShopNotFound)

	router := setupPartnerRouter(userID, handler)

	// Act
	w := performJSON(router, http.MethodGet, "/partner/state", nil)

	// Assert
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestSetStateHandler_Success(t *testing.T) {
	// Arrange
	userID := uuid.New()
	shopSvc := new(MockShopService)
	handler := NewPartnerHandler(new(MockImportService), shopSvc, new(MockOrderService))

	shopSvc.On("SetState", mock.Anything, userID, "off").Return(false, nil)

	router := setupPartnerRouter(userID, handler)

	// Act
	w := performJSON(router, http.MethodPost, "/partner/state", entity.ShopStateRequest{State: "off"})

	// Assert
	assert.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		Status bool `json:"Status"`
		State  bool `json:"state"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.True(t, resp.Status)
	assert.False(t, resp.State)
}

func TestSetStateHandler_InvalidValue(t *testing.T) {
	userID := uuid.New()
	shopSvc := new(MockShopService)
	handler := NewPartnerHandler(new(MockImportService), shopSvc, new(MockOrderService))

	shopSvc.On("SetState", mock.Anything, userID, "maybe").Return(false, service.ErrInvalidState)

	router := setupPartnerRouter(userID, handler)

	// Act
	w := performJSON(router, http.MethodPost, "/partner/state", entity.ShopStateRequest{State: "maybe"})

	// Assert
	assert.Equal(t, http.StatusBadRequest, w.Code)
}
