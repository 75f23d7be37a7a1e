package util

import (
	"context"
	"testing"
	"time"

	"shopnet/internal/app/market/entity"

	"github.com/alicebob/miniredis/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupCache(t *testing.T) (*RedisClient, *miniredis.Miniredis) {
	mr := miniredis.RunT(t)

	cache, err := NewRedisClient(mr.Addr(), "", 0)
	require.NoError(t, err)
	t.Cleanup(func() { cache.Close() })

	return cache, mr
}

func TestCategoriesCache_RoundTrip(t *testing.T) {
	cache, _ := setupCache(t)
	ctx := context.Background()

	categories := []entity.Category{
		{ID: 224, Name: "Смартфоны"},
		{ID: 15, Name: "Аксессуары"},
	}

	require.NoError(t, cache.SetCategories(ctx, categories, time.Hour))

	got, err := cache.GetCategories(ctx)
	require.NoError(t, err)
	assert.Equal(t, categories, got)
}

// Промах кеша - это (nil, nil), не ошибка
func TestCategoriesCache_Miss(t *testing.T) {
	cache, _ := setupCache(t)

	got, err := cache.GetCategories(context.Background())
	require.NoError(t, err)
	assert.Nil(t, got)
}

func TestShopsCache_RoundTrip(t *testing.T) {
	cache, _ := setupCache(t)
	ctx := context.Background()

	shops := []entity.Shop{{ID: 1, Name: "Связной", State: true}}

	require.NoError(t, cache.SetShops(ctx, shops, 10*time.Minute))

	got, err := cache.GetShops(ctx)
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "Связной", got[0].Name)
}

func TestCache_TTLExpiry(t *testing.T) {
	cache, mr := setupCache(t)
	ctx := context.Background()

	require.NoError(t, cache.SetCategories(ctx, []entity.Category{{ID: 1, Name: "Cat"}}, time.Minute))

	// Продвигаем часы miniredis за TTL
	mr.FastForward(2 * time.Minute)

	got, err := cache.GetCategories(ctx)
	require.NoError(t, err)
	assert.Nil(t, got)
}

func TestInvalidateCatalog(t *testing.T) {
	cache, mr := setupCache(t)
	ctx := context.Background()

	require.NoError(t, cache.SetCategories(ctx, []entity.Category{{ID: 1, Name: "Cat"}}, time.Hour))
	require.NoError(t, cache.SetShops(ctx, []entity.Shop{{ID: 1, Name: "Shop"}}, time.Hour))

	require.NoError(t, cache.InvalidateCatalog(ctx))

	assert.False(t, mr.Exists("catalog:categories"))
	assert.False(t, mr.Exists("catalog:shops:active"))
}
