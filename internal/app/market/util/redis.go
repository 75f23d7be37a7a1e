package util

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"shopnet/internal/app/market/entity"
	"shopnet/pkg/metrics"

	"github.com/redis/go-redis/v9"
)

const (
	categoriesCacheKey = "catalog:categories"
	shopsCacheKey      = "catalog:shops:active"
)

// RedisClient кеширует публичные списки каталога
// Кеш инвалидируется при импорте прайс-листа и смене состояния магазина
type RedisClient struct {
	client *redis.Client
}

func NewRedisClient(addr, password string, db int) (*RedisClient, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: password,
		DB:       db,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("failed to connect to redis: %w", err)
	}

	return &RedisClient{client: client}, nil
}

func (r *RedisClient) SetCategories(ctx context.Context, categories []entity.Category, ttl time.Duration) error {
	return r.setJSON(ctx, categoriesCacheKey, categories, ttl)
}

func (r *RedisClient) GetCategories(ctx context.Context) ([]entity.Category, error) {
	var categories []entity.Category
	if err := r.getJSON(ctx, categoriesCacheKey, &categories); err != nil {
		return nil, err
	}
	return categories, nil
}

func (r *RedisClient) SetShops(ctx context.Context, shops []entity.Shop, ttl time.Duration) error {
	return r.setJSON(ctx, shopsCacheKey, shops, ttl)
}

func (r *RedisClient) GetShops(ctx context.Context) ([]entity.Shop, error) {
	var shops []entity.Shop
	if err := r.getJSON(ctx, shopsCacheKey, &shops); err != nil {
		return nil, err
	}
	return shops, nil
}

// InvalidateCatalog сбрасывает оба списка после изменения каталога
func (r *RedisClient) InvalidateCatalog(ctx context.Context) error {
	if err := r.client.Del(ctx, categoriesCacheKey, shopsCacheKey).Err(); err != nil {
		metrics.RedisErrors.WithLabelValues("del").Inc()
		return fmt.Errorf("failed to invalidate catalog cache: %w", err)
	}
	return nil
}

func (r *RedisClient) Close() error {
	return r.client.Close()
}

func (r *RedisClient) setJSON(ctx context.Context, key string, value interface{}, ttl time.Duration) error {
	data, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("failed to marshal %s: %w", key, err)
	}

	if err := r.client.Set(ctx, key, data, ttl).Err(); err != nil {
		metrics.RedisErrors.WithLabelValues("set").Inc()
		return fmt.Errorf("failed to set %s in cache: %w", key, err)
	}

	return nil
}

// getJSON читает ключ из кеша, (nil, nil) при промахе
func (r *RedisClient) getJSON(ctx context.Context, key string, dest interface{}) error {
	data, err := r.client.Get(ctx, key).Bytes()
	if err != nil {
		if err == redis.Nil {
			metrics.RedisCacheMisses.WithLabelValues(key).Inc()
			return nil
		}
		metrics.RedisErrors.WithLabelValues("get").Inc()
		return fmt.Errorf("failed to get %s from cache: %w", key, err)
	}

	if err := json.Unmarshal(data, dest); err != nil {
		return fmt.Errorf("failed to unmarshal %s: %w", key, err)
	}

	metrics.RedisCacheHits.WithLabelValues(key).Inc()
	return nil
}
