package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"sync"
	"time"

	"shopnet/internal/app/market/entity"
	"shopnet/internal/app/market/infrastructure"
	"shopnet/internal/app/market/repository"
	"shopnet/internal/app/market/util"
	"shopnet/pkg/logger"
	"shopnet/pkg/metrics"

	"github.com/google/uuid"
	"gopkg.in/yaml.v3"
)

const maxFeedSize = 10 << 20 // Прайс-листы больше 10 МБ отклоняются

// ImportService выполняет импорт прайс-листа магазина
// Сверка с каталогом идет в одной транзакции, импорты одного владельца
// сериализуются локальным мьютексом
type ImportService struct {
	catalogRepo repository.CatalogRepository
	cache       *util.RedisClient
	producer    infrastructure.MessagePublisher
	client      *http.Client

	mu    sync.Mutex
	locks map[uuid.UUID]*sync.Mutex
}

// NewImportService создает новый сервис импорта с внедрением зависимостей
func NewImportService(
	catalogRepo repository.CatalogRepository,
	cache *util.RedisClient,
	producer infrastructure.MessagePublisher,
	fetchTimeout time.Duration,
) *ImportService {
	return &ImportService{
		catalogRepo: catalogRepo,
		cache:       cache,
		producer:    producer,
		client:      &http.Client{Timeout: fetchTimeout},
		locks:       make(map[uuid.UUID]*sync.Mutex),
	}
}

// ImportCatalog загружает прайс-лист по URL и сверяет его с каталогом
// 1. Проверяет URL до любых сетевых вызовов
// 2. Скачивает и разбирает YAML документ
// 3. Заменяет каталог магазина в одной транзакции
// 4. Сбрасывает кеш публичных списков и публикует событие CATALOG_IMPORTED
func (s *ImportService) ImportCatalog(ctx context.Context, userID uuid.UUID, rawURL string) (*entity.ImportSummary, error) {
	feedURL, err := url.ParseRequestURI(rawURL)
	if err != nil || feedURL.Host == "" || (feedURL.Scheme != "http" && feedURL.Scheme != "https") {
		return nil, ErrInvalidFeedURL
	}

	body, err := s.fetchFeed(ctx, rawURL)
	if err != nil {
		metrics.CatalogImports.WithLabelValues("failed").Inc()
		return nil, fmt.Errorf("%w: %v", ErrFeedUnavailable, err)
	}

	var feed entity.Feed
	if err := yaml.Unmarshal(body, &feed); err != nil {
		metrics.CatalogImports.WithLabelValues("failed").Inc()
		return nil, fmt.Errorf("%w: %v", ErrInvalidFeed, err)
	}

	if err := feed.Validate(); err != nil {
		metrics.CatalogImports.WithLabelValues("failed").Inc()
		return nil, fmt.Errorf("%w: %v", ErrInvalidFeed, err)
	}

	// Два одновременных импорта одного владельца не должны чередовать
	// фазы удаления и пересоздания предложений
	unlock := s.lockOwner(userID)
	defer unlock()

	summary, err := s.catalogRepo.ReplaceShopCatalog(ctx, userID, &feed)
	if err != nil {
		metrics.CatalogImports.WithLabelValues("failed").Inc()
		if errors.Is(err, repository.ErrShopNameTaken) {
			return nil, ErrShopNameTaken
		}
		return nil, fmt.Errorf("failed to replace shop catalog: %w", err)
	}

	metrics.CatalogImports.WithLabelValues("success").Inc()
	metrics.CatalogListingsImported.Add(float64(summary.Listings))

	// Импорт уже зафиксирован, проблемы с кешем и Kafka не критичны
	if err := s.cache.InvalidateCatalog(ctx); err != nil {
		logger.Warn().Err(err).Msg("failed to invalidate catalog cache after import")
	}

	s.publishImportEvent(ctx, feed.Shop, summary)

	return summary, nil
}

// fetchFeed скачивает тело прайс-листа с ограничением размера
func (s *ImportService) fetchFeed(ctx context.Context, rawURL string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, nil)
	if err != nil {
		return nil, err
	}

	resp, err := s.client.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("feed responded with status %d", resp.StatusCode)
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxFeedSize))
	if err != nil {
		return nil, err
	}

	return body, nil
}

// lockOwner берет мьютекс импорта для владельца магазина
func (s *ImportService) lockOwner(userID uuid.UUID) func() {
	s.mu.Lock()
	lock, exists := s.locks[userID]
	if !exists {
		lock = &sync.Mutex{}
		s.locks[userID] = lock
	}
	s.mu.Unlock()

	lock.Lock()
	return lock.Unlock
}

// publishImportEvent отправляет событие об импорте, ошибки только логируются
func (s *ImportService) publishImportEvent(ctx context.Context, shopName string, summary *entity.ImportSummary) {
	event := entity.CatalogImportEvent{
		EventType:  "CATALOG_IMPORTED",
		ShopID:     summary.ShopID,
		Shop:       shopName,
		Categories: summary.Categories,
		Listings:   summary.Listings,
		Timestamp:  time.Now(),
	}

	data, err := json.Marshal(event)
	if err != nil {
		logger.Error().Err(err).Msg("failed to marshal catalog import event")
		return
	}

	if err := s.producer.PublishMessage(ctx, fmt.Sprint(summary.ShopID), data); err != nil {
		logger.Warn().Err(err).Uint("shop_id", summary.ShopID).Msg("failed to publish catalog import event")
	}
}
