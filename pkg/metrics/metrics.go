package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// =============================================================================
// HTTP Метрики
// =============================================================================

// HttpRequestsTotal - счётчик всех HTTP запросов
// Пример запроса PromQL: rate(http_requests_total{path="/basket"}[5m])
var HttpRequestsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Name: "http_requests_total",
		Help: "Total number of HTTP requests",
	},
	[]string{"method", "path", "status"},
)

// HttpRequestDuration - гистограмма времени ответа
// Пример: histogram_quantile(0.95, rate(http_request_duration_seconds_bucket[5m]))
var HttpRequestDuration = promauto.NewHistogramVec(
	prometheus.HistogramOpts{
		Name:    "http_request_duration_seconds",
		Help:    "Duration of HTTP requests in seconds",
		Buckets: []float64{0.001, 0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1, 2.5, 5, 10},
	},
	[]string{"method", "path"},
)

// HttpRequestsInFlight - текущее количество обрабатываемых запросов
var HttpRequestsInFlight = promauto.NewGauge(
	prometheus.GaugeOpts{
		Name: "http_requests_in_flight",
		Help: "Current number of HTTP requests being processed",
	},
)

// =============================================================================
// Redis Метрики
// =============================================================================

var RedisCacheHits = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Name: "redis_cache_hits_total",
		Help: "Total number of Redis cache hits",
	},
	[]string{"key"},
)

var RedisCacheMisses = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Name: "redis_cache_misses_total",
		Help: "Total number of Redis cache misses",
	},
	[]string{"key"},
)

var RedisErrors = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Name: "redis_errors_total",
		Help: "Total number of Redis errors",
	},
	[]string{"operation"},
)

// =============================================================================
// Kafka Метрики
// =============================================================================

var KafkaMessagesProduced = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Name: "kafka_messages_produced_total",
		Help: "Total number of messages produced to Kafka",
	},
	[]string{"topic"},
)

var KafkaProduceDuration = promauto.NewHistogramVec(
	prometheus.HistogramOpts{
		Name:    "kafka_produce_duration_seconds",
		Help:    "Duration of Kafka produce operations in seconds",
		Buckets: []float64{0.001, 0.005, 0.01, 0.05, 0.1, 0.5, 1, 5},
	},
	[]string{"topic"},
)

var KafkaErrors = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Name: "kafka_errors_total",
		Help: "Total number of Kafka errors",
	},
	[]string{"topic", "operation"},
)

// =============================================================================
// Бизнес-метрики
// =============================================================================

// CatalogImports - импорты прайс-листов по результату
var CatalogImports = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Name: "catalog_imports_total",
		Help: "Total number of catalog feed imports",
	},
	[]string{"status"}, // success, failed
)

// CatalogListingsImported - количество предложений, записанных импортом
var CatalogListingsImported = promauto.NewCounter(
	prometheus.CounterOpts{
		Name: "catalog_listings_imported_total",
		Help: "Total number of product listings written by imports",
	},
)

// BasketItemsAdded - позиции, добавленные в корзины
var BasketItemsAdded = promauto.NewCounter(
	prometheus.CounterOpts{
		Name: "basket_items_added_total",
		Help: "Total number of items added to baskets",
	},
)

// OrdersCheckedOut - оформленные заказы (переход basket -> new)
var OrdersCheckedOut = promauto.NewCounter(
	prometheus.CounterOpts{
		Name: "orders_checked_out_total",
		Help: "Total number of orders checked out",
	},
)

// NotificationsEnqueued - уведомления, переданные диспетчеру
var NotificationsEnqueued = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Name: "notifications_enqueued_total",
		Help: "Total number of notifications handed to the dispatcher",
	},
	[]string{"status"}, // success, failed
)
