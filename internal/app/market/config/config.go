package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"
)

// Config содержит все настройки приложения Market Service
// Включает конфигурацию HTTP сервера, PostgreSQL, Redis, Kafka, JWT и импорта
type Config struct {
	Server   ServerConfig
	Database DatabaseConfig
	Redis    RedisConfig
	Kafka    KafkaConfig
	JWT      JWTConfig
	Import   ImportConfig
}

// ServerConfig - настройки HTTP сервера
type ServerConfig struct {
	Host string // Адрес хоста (по умолчанию 0.0.0.0)
	Port string // Порт сервера (по умолчанию 8080)
}

// DatabaseConfig - настройки подключения к PostgreSQL
type DatabaseConfig struct {
	Host     string // Хост PostgreSQL
	Port     string // Порт PostgreSQL
	User     string // Имя пользователя БД
	Password string // Пароль БД
	DBName   string // Имя базы данных
	SSLMode  string // Режим SSL (disable/require/verify-full)
}

// RedisConfig - настройки подключения к Redis для кеширования
// Кешируются список категорий и список активных магазинов
type RedisConfig struct {
	Host     string // Хост Redis
	Port     string // Порт Redis
	Password string // Пароль Redis (опционально)
	DB       int    // Номер БД Redis (0-15)
}

// KafkaConfig - настройки Kafka для отправки событий
// Отдельные топики для email-уведомлений и событий каталога
type KafkaConfig struct {
	Brokers            []string // Список брокеров Kafka (формат: host:port)
	NotificationsTopic string   // Топик отложенных email-уведомлений
	CatalogTopic       string   // Топик событий CATALOG_IMPORTED
}

// JWTConfig - настройки для проверки JWT токенов
// Токены выпускает внешний сервис аутентификации
type JWTConfig struct {
	Secret string // Секретный ключ для проверки JWT токенов
}

// ImportConfig - настройки импорта прайс-листов
type ImportConfig struct {
	FeedTimeout       time.Duration // Таймаут загрузки прайс-листа по URL
	NotificationDelay time.Duration // Отсрочка email-уведомления после оформления заказа
}

// Load загружает конфигурацию из переменных окружения
// Возвращает ошибку, если не удалось распарсить значения
func Load() (*Config, error) {
	redisDB, err := strconv.Atoi(getEnv("REDIS_DB", "0"))
	if err != nil {
		return nil, fmt.Errorf("invalid REDIS_DB value: %w", err)
	}

	feedTimeout, err := time.ParseDuration(getEnv("IMPORT_FEED_TIMEOUT", "30s"))
	if err != nil {
		return nil, fmt.Errorf("invalid IMPORT_FEED_TIMEOUT value: %w", err)
	}

	notificationDelay, err := time.ParseDuration(getEnv("ORDER_NOTIFICATION_DELAY", "5m"))
	if err != nil {
		return nil, fmt.Errorf("invalid ORDER_NOTIFICATION_DELAY value: %w", err)
	}

	return &Config{
		Server: ServerConfig{
			Host: getEnv("SERVER_HOST", "0.0.0.0"),
			Port: getEnv("SERVER_PORT", "8080"),
		},
		Database: DatabaseConfig{
			Host:     getEnv("DB_HOST", "localhost"),
			Port:     getEnv("DB_PORT", "5432"),
			User:     getEnv("DB_USER", "postgres"),
			Password: getEnv("DB_PASSWORD", "postgres"),
			DBName:   getEnv("DB_NAME", "market_service"),
			SSLMode:  getEnv("DB_SSLMODE", "disable"),
		},
		Redis: RedisConfig{
			Host:     getEnv("REDIS_HOST", "localhost"),
			Port:     getEnv("REDIS_PORT", "6379"),
			Password: getEnv("REDIS_PASSWORD", ""),
			DB:       redisDB,
		},
		Kafka: KafkaConfig{
			Brokers:            strings.Split(getEnv("KAFKA_BROKERS", "localhost:9092"), ","),
			NotificationsTopic: getEnv("KAFKA_NOTIFICATIONS_TOPIC", "email_notifications"),
			CatalogTopic:       getEnv("KAFKA_CATALOG_TOPIC", "catalog_events"),
		},
		JWT: JWTConfig{
			Secret: getEnv("JWT_SECRET", "your-secret-key-change-this-in-production"),
		},
		Import: ImportConfig{
			FeedTimeout:       feedTimeout,
			NotificationDelay: notificationDelay,
		},
	}, nil
}

// DSN возвращает строку подключения к PostgreSQL в формате libpq
func (c *DatabaseConfig) DSN() string {
	return fmt.Sprintf(
		"host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		c.Host, c.Port, c.User, c.Password, c.DBName, c.SSLMode,
	)
}

// Address возвращает адрес сервера в формате host:port для HTTP сервера
func (c *ServerConfig) Address() string {
	return c.Host + ":" + c.Port
}

// Address возвращает адрес Redis в формате host:port для подключения
func (c *RedisConfig) Address() string {
	return c.Host + ":" + c.Port
}

// getEnv получает значение переменной окружения или возвращает значение по умолчанию
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
