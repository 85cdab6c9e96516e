package repository

import (
	"context"
	"testing"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/shenikar/neo_risk_system/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCacheKey(t *testing.T) {
	assert.Equal(t, "asteroid:2099942", cacheKey("2099942"))
}

// unreachableRedis возвращает клиента, который сразу получает отказ в соединении
func unreachableRedis(t *testing.T) *redis.Client {
	client := redis.NewClient(&redis.Options{
		Addr:        "127.0.0.1:1",
		DialTimeout: 100 * time.Millisecond,
		MaxRetries:  -1,
	})
	t.Cleanup(func() { _ = client.Close() })
	return client
}

func TestCache_WrapsRedisErrors(t *testing.T) {
	repo := &AsteroidRepository{redisClient: unreachableRedis(t), cacheTTL: time.Minute}
	ctx := context.Background()

	asteroid, err := repo.GetAsteroidFromCache(ctx, "2099942")
	require.Error(t, err)
	assert.Nil(t, asteroid)
	assert.Contains(t, err.Error(), "failed to get asteroid from cache")

	err = repo.SetAsteroidCache(ctx, &models.Asteroid{NeoID: "2099942"})
	assert.ErrorContains(t, err, "failed to set asteroid in cache")

	err = repo.InvalidateAsteroidCache(ctx, "2099942")
	assert.ErrorContains(t, err, "failed to invalidate asteroid cache")
}
