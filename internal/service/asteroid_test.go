package service_test

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/jonboulle/clockwork"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/shenikar/neo_risk_system/internal/catalog"
	"github.com/shenikar/neo_risk_system/internal/models"
	"github.com/shenikar/neo_risk_system/internal/observability"
	"github.com/shenikar/neo_risk_system/internal/service"
	"github.com/shenikar/neo_risk_system/internal/service/mocks"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

var testNow = time.Date(2029, 4, 1, 9, 30, 0, 0, time.UTC)

func ptr(v float64) *float64 {
	return &v
}

func newTestLogger() *logrus.Logger {
	logger := logrus.New()
	logger.SetOutput(&bytes.Buffer{}) // Отключаем вывод логов в тестах
	return logger
}

type asteroidFixture struct {
	service service.AsteroidService
	repo    *mocks.MockAsteroidRepository
	catalog *mocks.MockCatalogClient
	metrics *observability.Metrics
}

// newTestAsteroidService создает сервис с моками репозитория и каталога
func newTestAsteroidService(t *testing.T) asteroidFixture {
	ctrl := gomock.NewController(t)
	repoMock := mocks.NewMockAsteroidRepository(ctrl)
	catalogMock := mocks.NewMockCatalogClient(ctrl)
	metrics := observability.NewMetricsForTesting()

	svc := service.NewAsteroidService(repoMock, catalogMock, newTestLogger(), metrics, clockwork.NewFakeClockAt(testNow))
	return asteroidFixture{service: svc, repo: repoMock, catalog: catalogMock, metrics: metrics}
}

func TestGetAsteroid_Success_FromCache(t *testing.T) {
	// Подготовка
	f := newTestAsteroidService(t)
	ctx := context.Background()
	expected := &models.Asteroid{NeoID: "2099942", Name: "99942 Apophis"}

	// Ожидания
	f.repo.EXPECT().
		GetAsteroidFromCache(ctx, "2099942").
		Return(expected, nil).
		Times(1)

	// Действие
	asteroid, err := f.service.GetAsteroid(ctx, "2099942")

	// Проверки
	require.NoError(t, err)
	assert.Equal(t, expected, asteroid)
	assert.Equal(t, 1.0, testutil.ToFloat64(f.metrics.AsteroidCache.WithLabelValues("hit")))
}

func TestGetAsteroid_Success_FromDB(t *testing.T) {
	// Подготовка
	f := newTestAsteroidService(t)
	ctx := context.Background()
	expected := &models.Asteroid{NeoID: "2099942", Name: "99942 Apophis"}

	// Ожидания
	// 1. Промах кеша
	f.repo.EXPECT().GetAsteroidFromCache(ctx, "2099942").Return(nil, nil)
	// 2. Попадание в БД
	f.repo.EXPECT().GetByNeoID(ctx, "2099942").Return(expected, nil)
	// 3. Запись в кеш
	f.repo.EXPECT().SetAsteroidCache(ctx, expected).Return(nil)

	// Действие
	asteroid, err := f.service.GetAsteroid(ctx, "2099942")

	// Проверки
	require.NoError(t, err)
	assert.Equal(t, expected, asteroid)
	assert.Equal(t, 1.0, testutil.ToFloat64(f.metrics.AsteroidCache.WithLabelValues("miss")))
}

func TestGetAsteroid_CacheErrorFallsThrough(t *testing.T) {
	f := newTestAsteroidService(t)
	ctx := context.Background()
	expected := &models.Asteroid{NeoID: "3542519"}

	f.repo.EXPECT().GetAsteroidFromCache(ctx, "3542519").Return(nil, errors.New("redis down"))
	f.repo.EXPECT().GetByNeoID(ctx, "3542519").Return(expected, nil)
	f.repo.EXPECT().SetAsteroidCache(ctx, expected).Return(errors.New("redis down"))

	asteroid, err := f.service.GetAsteroid(ctx, "3542519")

	require.NoError(t, err)
	assert.Equal(t, expected, asteroid)
}

func TestGetAsteroid_Success_FromCatalog(t *testing.T) {
	// Подготовка
	f := newTestAsteroidService(t)
	ctx := context.Background()
	fromCatalog := &models.Asteroid{NeoID: "2099942", DiameterMinM: ptr(340)}

	// Ожидания
	gomock.InOrder(
		f.repo.EXPECT().GetAsteroidFromCache(ctx, "2099942").Return(nil, nil),
		f.repo.EXPECT().GetByNeoID(ctx, "2099942").
			Return(nil, fmt.Errorf("asteroid 2099942: %w", service.ErrAsteroidNotFound)),
		f.catalog.EXPECT().Lookup(ctx, "2099942").Return(fromCatalog, nil),
		f.repo.EXPECT().Upsert(ctx, fromCatalog).Return(nil),
		f.repo.EXPECT().SetAsteroidCache(ctx, fromCatalog).Return(nil),
	)

	// Действие
	asteroid, err := f.service.GetAsteroid(ctx, "2099942")

	// Проверки
	require.NoError(t, err)
	assert.Equal(t, fromCatalog, asteroid)
}

func TestGetAsteroid_NotFoundAnywhere(t *testing.T) {
	f := newTestAsteroidService(t)
	ctx := context.Background()

	f.repo.EXPECT().GetAsteroidFromCache(ctx, "404").Return(nil, nil)
	f.repo.EXPECT().GetByNeoID(ctx, "404").Return(nil, service.ErrAsteroidNotFound)
	f.catalog.EXPECT().Lookup(ctx, "404").Return(nil, fmt.Errorf("lookup: %w", catalog.ErrNotFound))

	asteroid, err := f.service.GetAsteroid(ctx, "404")

	require.ErrorIs(t, err, service.ErrAsteroidNotFound)
	assert.Nil(t, asteroid)
}

func TestGetAsteroid_DatabaseError(t *testing.T) {
	f := newTestAsteroidService(t)
	ctx := context.Background()

	f.repo.EXPECT().GetAsteroidFromCache(ctx, "1").Return(nil, nil)
	f.repo.EXPECT().GetByNeoID(ctx, "1").Return(nil, errors.New("connection refused"))

	_, err := f.service.GetAsteroid(ctx, "1")

	require.Error(t, err)
	assert.NotErrorIs(t, err, service.ErrAsteroidNotFound)
	assert.ErrorContains(t, err, "could not get asteroid")
}

func TestListAsteroids_NormalizesPaging(t *testing.T) {
	tests := []struct {
		page, pageSize         int
		wantPage, wantPageSize int
	}{
		{0, 0, 1, 20},
		{-3, 500, 1, 20},
		{2, 50, 2, 50},
	}

	for _, tt := range tests {
		f := newTestAsteroidService(t)
		ctx := context.Background()
		f.repo.EXPECT().ListAsteroids(ctx, tt.wantPage, tt.wantPageSize).Return([]*models.Asteroid{}, nil)

		asteroids, err := f.service.ListAsteroids(ctx, tt.page, tt.pageSize)

		require.NoError(t, err)
		assert.Empty(t, asteroids)
	}
}

func TestSyncFeed_DefaultRange(t *testing.T) {
	// Подготовка
	f := newTestAsteroidService(t)
	ctx := context.Background()
	today := time.Date(2029, 4, 1, 0, 0, 0, 0, time.UTC)
	batch := []*models.Asteroid{{NeoID: "a"}, {NeoID: "b"}, {NeoID: "c"}}

	// Ожидания
	f.catalog.EXPECT().Feed(ctx, today, today.AddDate(0, 0, 7)).Return(batch, nil)
	f.repo.EXPECT().Upsert(ctx, batch[0]).Return(nil)
	f.repo.EXPECT().Upsert(ctx, batch[1]).Return(errors.New("constraint violation"))
	f.repo.EXPECT().Upsert(ctx, batch[2]).Return(nil)
	f.repo.EXPECT().InvalidateAsteroidCache(ctx, "a").Return(nil)
	f.repo.EXPECT().InvalidateAsteroidCache(ctx, "c").Return(errors.New("redis down"))

	// Действие
	result, err := f.service.SyncFeed(ctx, time.Time{}, time.Time{})

	// Проверки
	require.NoError(t, err)
	assert.Equal(t, &service.SyncResult{
		StartDate: "2029-04-01",
		EndDate:   "2029-04-08",
		Fetched:   3,
		Stored:    2,
		Failed:    1,
	}, result)
}

func TestSyncFeed_InvalidRange(t *testing.T) {
	f := newTestAsteroidService(t)
	ctx := context.Background()
	start := time.Date(2029, 4, 10, 0, 0, 0, 0, time.UTC)

	_, err := f.service.SyncFeed(ctx, start, start.AddDate(0, 0, -1))
	assert.ErrorIs(t, err, service.ErrInvalidDateRange)

	_, err = f.service.SyncFeed(ctx, start, start.AddDate(0, 0, 32))
	assert.ErrorIs(t, err, service.ErrInvalidDateRange)
}

func TestSyncFeed_CatalogFailure(t *testing.T) {
	f := newTestAsteroidService(t)
	ctx := context.Background()
	start := time.Date(2029, 4, 10, 0, 0, 0, 0, time.UTC)

	f.catalog.EXPECT().Feed(ctx, start, start).Return(nil, errors.New("all windows failed"))

	_, err := f.service.SyncFeed(ctx, start, start)

	assert.ErrorContains(t, err, "could not fetch feed")
}

func TestGetStats(t *testing.T) {
	f := newTestAsteroidService(t)
	ctx := context.Background()

	f.repo.EXPECT().CountAsteroids(ctx).Return(120, 14, nil)

	stats, err := f.service.GetStats(ctx)

	require.NoError(t, err)
	assert.Equal(t, &service.Stats{TotalAsteroids: 120, HazardousAsteroids: 14, GeneratedAt: testNow}, stats)
}
