package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jonboulle/clockwork"
	"github.com/shenikar/neo_risk_system/internal/catalog"
	"github.com/shenikar/neo_risk_system/internal/models"
	"github.com/shenikar/neo_risk_system/internal/observability"
	"github.com/sirupsen/logrus"
)

const (
	defaultSyncDays = 7
	maxSyncDays     = 31
	dateLayout      = "2006-01-02"
)

// AsteroidRepository определяет контракт для хранилища записей каталога
//
//go:generate mockgen -source=asteroid.go -destination=mocks/asteroid_mock.go -package=mocks
type AsteroidRepository interface {
	Upsert(ctx context.Context, asteroid *models.Asteroid) error
	GetByNeoID(ctx context.Context, neoID string) (*models.Asteroid, error)
	ListAsteroids(ctx context.Context, page, pageSize int) ([]*models.Asteroid, error)
	ListHazardous(ctx context.Context, limit int) ([]*models.Asteroid, error)
	CountAsteroids(ctx context.Context) (total, hazardous int, err error)
	GetAsteroidFromCache(ctx context.Context, neoID string) (*models.Asteroid, error)
	SetAsteroidCache(ctx context.Context, asteroid *models.Asteroid) error
	InvalidateAsteroidCache(ctx context.Context, neoID string) error
}

// CatalogClient определяет контракт внешнего каталога NEO
type CatalogClient interface {
	Lookup(ctx context.Context, neoID string) (*models.Asteroid, error)
	Feed(ctx context.Context, start, end time.Time) ([]*models.Asteroid, error)
}

// AsteroidService определяет контракт для работы с каталогом астероидов
type AsteroidService interface {
	GetAsteroid(ctx context.Context, neoID string) (*models.Asteroid, error)
	ListAsteroids(ctx context.Context, page, pageSize int) ([]*models.Asteroid, error)
	SyncFeed(ctx context.Context, start, end time.Time) (*SyncResult, error)
	GetStats(ctx context.Context) (*Stats, error)
}

// SyncResult - итог синхронизации ленты сближений
type SyncResult struct {
	StartDate string `json:"start_date"`
	EndDate   string `json:"end_date"`
	Fetched   int    `json:"fetched"`
	Stored    int    `json:"stored"`
	Failed    int    `json:"failed"`
}

// Stats - сводка по локальной копии каталога
type Stats struct {
	TotalAsteroids     int       `json:"total_asteroids"`
	HazardousAsteroids int       `json:"hazardous_asteroids"`
	GeneratedAt        time.Time `json:"generated_at"`
}

type asteroidService struct {
	repo    AsteroidRepository
	catalog CatalogClient
	logger  *logrus.Logger
	metrics *observability.Metrics
	clock   clockwork.Clock
}

func NewAsteroidService(repo AsteroidRepository, catalog CatalogClient, logger *logrus.Logger, metrics *observability.Metrics, clock clockwork.Clock) AsteroidService {
	return &asteroidService{
		repo:    repo,
		catalog: catalog,
		logger:  logger,
		metrics: metrics,
		clock:   clock,
	}
}

// GetAsteroid ищет объект в кеше, затем в базе, затем во внешнем каталоге
func (s *asteroidService) GetAsteroid(ctx context.Context, neoID string) (*models.Asteroid, error) {
	log := s.logger.WithFields(logrus.Fields{
		"service": "asteroid",
		"method":  "GetAsteroid",
		"neo_id":  neoID,
	})
	log.Debug("Fetching asteroid")

	cached, err := s.repo.GetAsteroidFromCache(ctx, neoID)
	if err != nil {
		// Недоступный кеш не мешает ответу
		log.WithError(err).Warn("Failed to read asteroid from cache")
	}
	if cached != nil {
		s.metrics.AsteroidCache.WithLabelValues("hit").Inc()
		return cached, nil
	}
	s.metrics.AsteroidCache.WithLabelValues("miss").Inc()

	asteroid, err := s.repo.GetByNeoID(ctx, neoID)
	switch {
	case err == nil:
		s.cache(ctx, log, asteroid)
		return asteroid, nil
	case !errors.Is(err, ErrAsteroidNotFound):
		log.WithError(err).Error("Failed to get asteroid from repository")
		return nil, fmt.Errorf("service: could not get asteroid: %w", err)
	}

	asteroid, err = s.catalog.Lookup(ctx, neoID)
	if err != nil {
		if errors.Is(err, catalog.ErrNotFound) {
			log.Info("Asteroid not found in catalog")
			return nil, fmt.Errorf("service: asteroid %s: %w", neoID, ErrAsteroidNotFound)
		}
		log.WithError(err).Error("Failed to look up asteroid in catalog")
		return nil, fmt.Errorf("service: could not look up asteroid: %w", err)
	}

	if err := s.repo.Upsert(ctx, asteroid); err != nil {
		log.WithError(err).Warn("Failed to store catalog record")
	}
	s.cache(ctx, log, asteroid)

	log.Info("Asteroid fetched from catalog")
	return asteroid, nil
}

func (s *asteroidService) cache(ctx context.Context, log *logrus.Entry, asteroid *models.Asteroid) {
	if err := s.repo.SetAsteroidCache(ctx, asteroid); err != nil {
		log.WithError(err).Warn("Failed to cache asteroid")
	}
}

// ListAsteroids возвращает страницу локальной копии каталога
func (s *asteroidService) ListAsteroids(ctx context.Context, page, pageSize int) ([]*models.Asteroid, error) {
	if page < 1 {
		page = 1
	}

	if pageSize < 1 || pageSize > 100 {
		pageSize = 20
	}

	log := s.logger.WithFields(logrus.Fields{
		"service":   "asteroid",
		"method":    "ListAsteroids",
		"page":      page,
		"page_size": pageSize,
	})

	asteroids, err := s.repo.ListAsteroids(ctx, page, pageSize)
	if err != nil {
		log.WithError(err).Error("Failed to list asteroids from repository")
		return nil, fmt.Errorf("service: could not list asteroids: %w", err)
	}

	log.WithField("count", len(asteroids)).Debug("Asteroids listed successfully")
	return asteroids, nil
}

// SyncFeed загружает ленту сближений за интервал и сохраняет записи.
// Нулевые даты заменяются на сегодня и сегодня+7 дней.
func (s *asteroidService) SyncFeed(ctx context.Context, start, end time.Time) (*SyncResult, error) {
	if start.IsZero() {
		start = s.clock.Now()
	}
	start = startOfDay(start)
	if end.IsZero() {
		end = start.AddDate(0, 0, defaultSyncDays)
	}
	end = startOfDay(end)

	if end.Before(start) {
		return nil, fmt.Errorf("service: end date %s before start date %s: %w",
			end.Format(dateLayout), start.Format(dateLayout), ErrInvalidDateRange)
	}
	if end.Sub(start) > maxSyncDays*24*time.Hour {
		return nil, fmt.Errorf("service: range exceeds %d days: %w", maxSyncDays, ErrInvalidDateRange)
	}

	log := s.logger.WithFields(logrus.Fields{
		"service":    "asteroid",
		"method":     "SyncFeed",
		"start_date": start.Format(dateLayout),
		"end_date":   end.Format(dateLayout),
	})
	log.Info("Syncing close-approach feed")

	asteroids, err := s.catalog.Feed(ctx, start, end)
	if err != nil {
		log.WithError(err).Error("Failed to fetch feed from catalog")
		return nil, fmt.Errorf("service: could not fetch feed: %w", err)
	}

	result := &SyncResult{
		StartDate: start.Format(dateLayout),
		EndDate:   end.Format(dateLayout),
		Fetched:   len(asteroids),
	}
	for _, asteroid := range asteroids {
		if err := ctx.Err(); err != nil {
			return nil, fmt.Errorf("service: sync interrupted: %w", err)
		}
		if err := s.repo.Upsert(ctx, asteroid); err != nil {
			result.Failed++
			log.WithError(err).WithField("neo_id", asteroid.NeoID).Warn("Failed to store asteroid")
			continue
		}
		result.Stored++
		if err := s.repo.InvalidateAsteroidCache(ctx, asteroid.NeoID); err != nil {
			log.WithError(err).WithField("neo_id", asteroid.NeoID).Warn("Failed to invalidate asteroid cache")
		}
	}

	log.WithFields(logrus.Fields{
		"fetched": result.Fetched,
		"stored":  result.Stored,
		"failed":  result.Failed,
	}).Info("Feed sync completed")
	return result, nil
}

// GetStats возвращает количество записей в локальной копии каталога
func (s *asteroidService) GetStats(ctx context.Context) (*Stats, error) {
	total, hazardous, err := s.repo.CountAsteroids(ctx)
	if err != nil {
		s.logger.WithFields(logrus.Fields{
			"service": "asteroid",
			"method":  "GetStats",
		}).WithError(err).Error("Failed to count asteroids")
		return nil, fmt.Errorf("service: could not get stats: %w", err)
	}
	return &Stats{
		TotalAsteroids:     total,
		HazardousAsteroids: hazardous,
		GeneratedAt:        s.clock.Now().UTC(),
	}, nil
}

func startOfDay(t time.Time) time.Time {
	y, m, d := t.UTC().Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}
