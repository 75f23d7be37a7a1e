package service

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"shopnet/internal/app/market/entity"
	"shopnet/internal/app/market/repository"
	"shopnet/internal/app/market/repository/mocks"
	"shopnet/internal/app/market/util"

	"github.com/alicebob/miniredis/v2"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

const testFeedYAML = `
shop: Связной
categories:
  - id: 224
    name: Смартфоны
goods:
  - id: 4216292
    category: 224
    model: apple/iphone/xs-max
    name: Смартфон Apple iPhone XS Max 512GB (золотистый)
    price: 110000
    price_rrc: 116990
    quantity: 14
    parameters:
      "Диагональ (дюйм)": 6.5
      "Цвет": золотистый
`

// Хелперы для создания тестового окружения

func setupImportService(t *testing.T) (*ImportService, *mocks.MockCatalogRepository, *mocks.MockMessagePublisher, *miniredis.Miniredis) {
	mr := miniredis.RunT(t)

	cache, err := util.NewRedisClient(mr.Addr(), "", 0)
	require.NoError(t, err)
	t.Cleanup(func() { cache.Close() })

	catalogRepo := new(mocks.MockCatalogRepository)
	producer := new(mocks.MockMessagePublisher)

	svc := NewImportService(catalogRepo, cache, producer, 5*time.Second)
	return svc, catalogRepo, producer, mr
}

func newFeedServer(t *testing.T, status int, body string) *httptest.Server {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(status)
		_, _ = w.Write([]byte(body))
	}))
	t.Cleanup(srv.Close)
	return srv
}

func TestImportCatalog_Success(t *testing.T) {
	// Arrange
	svc, catalogRepo, producer, mr := setupImportService(t)
	srv := newFeedServer(t, http.StatusOK, testFeedYAML)
	userID := uuid.New()

	// Кеш каталога заполнен и должен сброситься после импорта
	mr.Set("catalog:categories", `[{"id":1,"name":"old"}]`)

	expected := &entity.ImportSummary{
		ShopID:     7,
		Categories: 1,
		Products:   1,
		Listings:   1,
		Parameters: 2,
	}

	catalogRepo.On("ReplaceShopCatalog", mock.Anything, userID, mock.MatchedBy(func(feed *entity.Feed) bool {
		return feed.Shop == "Связной" && len(feed.Goods) == 1
	})).Return(expected, nil)
	producer.On("PublishMessage", mock.Anything, "7", mock.Anything).Return(nil)

	// Act
	summary, err := svc.ImportCatalog(context.Background(), userID, srv.URL)

	// Assert
	require.NoError(t, err)
	assert.Equal(t, expected, summary)
	assert.False(t, mr.Exists("catalog:categories"), "catalog cache must be invalidated")

	// Событие CATALOG_IMPORTED опубликовано с итогами импорта
	require.Len(t, producer.Messages, 1)
	var event entity.CatalogImportEvent
	require.NoError(t, json.Unmarshal(producer.Messages[0], &event))
	assert.Equal(t, "CATALOG_IMPORTED", event.EventType)
	assert.Equal(t, uint(7), event.ShopID)
	assert.Equal(t, "Связной", event.Shop)
	assert.Equal(t, 1, event.Listings)

	catalogRepo.AssertExpectations(t)
	producer.AssertExpectations(t)
}

func TestImportCatalog_InvalidURL(t *testing.T) {
	svc, catalogRepo, _, _ := setupImportService(t)

	for _, rawURL := range []string{"", "not-a-url", "ftp://example.com/feed.yaml", "/relative/path"} {
		// Act
		summary, err := svc.ImportCatalog(context.Background(), uuid.New(), rawURL)

		// Assert
		assert.ErrorIs(t, err, ErrInvalidFeedURL, "url %q", rawURL)
		assert.Nil(t, summary)
	}

	catalogRepo.AssertNotCalled(t, "ReplaceShopCatalog")
}

func TestImportCatalog_FeedUnavailable(t *testing.T) {
	svc, catalogRepo, _, _ := setupImportService(t)
	srv := newFeedServer(t, http.StatusNotFound, "not found")

	// Act
	summary, err := svc.ImportCatalog(context.Background(), uuid.New(), srv.URL)

	// Assert
	assert.ErrorIs(t, err, ErrFeedUnavailable)
	assert.Nil(t, summary)
	catalogRepo.AssertNotCalled(t, "ReplaceShopCatalog")
}

func TestImportCatalog_MalformedYAML(t *testing.T) {
	svc, catalogRepo, _, _ := setupImportService(t)
	srv := newFeedServer(t, http.StatusOK, "{{ not yaml ]]")

	// Act
	summary, err := svc.ImportCatalog(context.Background(), uuid.New(), srv.URL)

	// Assert
	assert.ErrorIs(t, err, ErrInvalidFeed)
	assert.Nil(t, summary)
	catalogRepo.AssertNotCalled(t, "ReplaceShopCatalog")
}

func TestImportCatalog_IncompleteFeed(t *testing.T) {
	svc, catalogRepo, _, _ := setupImportService(t)

	// Прайс-лист без товарных позиций отклоняется до записи в каталог
	srv := newFeedServer(t, http.StatusOK, "shop: Test\ncategories:\n  - id: 1\n    name: Cat\n")

	// Act
	summary, err := svc.ImportCatalog(context.Background(), uuid.New(), srv.URL)

	// Assert
	assert.ErrorIs(t, err, ErrInvalidFeed)
	assert.Nil(t, summary)
	catalogRepo.AssertNotCalled(t, "ReplaceShopCatalog")
}

func TestImportCatalog_ShopNameTaken(t *testing.T) {
	// Arrange
	svc, catalogRepo, producer, _ := setupImportService(t)
	srv := newFeedServer(t, http.StatusOK, testFeedYAML)
	userID := uuid.New()

	catalogRepo.On("ReplaceShopCatalog", mock.Anything, userID, mock.Anything).
		Return(nil, repository.ErrShopNameTaken)

	// Act
	summary, err := svc.ImportCatalog(context.Background(), userID, srv.URL)

	// Assert
	assert.ErrorIs(t, err, ErrShopNameTaken)
	assert.Nil(t, summary)
	producer.AssertNotCalled(t, "PublishMessage")
	catalogRepo.AssertExpectations(t)
}
