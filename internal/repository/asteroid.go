package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/redis/go-redis/v9"
	"github.com/shenikar/neo_risk_system/internal/models"
	"github.com/shenikar/neo_risk_system/internal/service"
)

const asteroidColumns = `
	neo_id,
	name,
	nasa_jpl_url,
	absolute_magnitude_h,
	diameter_min_m,
	diameter_max_m,
	is_potentially_hazardous,
	close_approach_date,
	velocity_km_s,
	miss_distance_km,
	orbiting_body,
	eccentricity,
	semi_major_axis_au,
	inclination_deg,
	created_at,
	updated_at`

type AsteroidRepository struct {
	db          *pgxpool.Pool
	redisClient *redis.Client
	cacheTTL    time.Duration
}

func NewAsteroidRepository(db *pgxpool.Pool, redisClient *redis.Client, cacheTTL time.Duration) service.AsteroidRepository {
	return &AsteroidRepository{
		db:          db,
		redisClient: redisClient,
		cacheTTL:    cacheTTL,
	}
}

// Upsert сохраняет запись каталога. Известные орбитальные элементы
// не затираются, если в новой записи их нет (лента их не содержит).
func (r *AsteroidRepository) Upsert(ctx context.Context, a *models.Asteroid) error {
	query := `
		INSERT INTO asteroids (
			neo_id, name, nasa_jpl_url, absolute_magnitude_h, diameter_min_m, diameter_max_m,
			is_potentially_hazardous, close_approach_date, velocity_km_s, miss_distance_km,
			orbiting_body, eccentricity, semi_major_axis_au, inclination_deg
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14)
		ON CONFLICT (neo_id) DO UPDATE SET
			name = EXCLUDED.name,
			nasa_jpl_url = EXCLUDED.nasa_jpl_url,
			absolute_magnitude_h = COALESCE(EXCLUDED.absolute_magnitude_h, asteroids.absolute_magnitude_h),
			diameter_min_m = COALESCE(EXCLUDED.diameter_min_m, asteroids.diameter_min_m),
			diameter_max_m = COALESCE(EXCLUDED.diameter_max_m, asteroids.diameter_max_m),
			is_potentially_hazardous = EXCLUDED.is_potentially_hazardous,
			close_approach_date = COALESCE(EXCLUDED.close_approach_date, asteroids.close_approach_date),
			velocity_km_s = COALESCE(EXCLUDED.velocity_km_s, asteroids.velocity_km_s),
			miss_distance_km = COALESCE(EXCLUDED.miss_distance_km, asteroids.miss_distance_km),
			orbiting_body = EXCLUDED.orbiting_body,
			eccentricity = COALESCE(EXCLUDED.eccentricity, asteroids.eccentricity),
			semi_major_axis_au = COALESCE(EXCLUDED.semi_major_axis_au, asteroids.semi_major_axis_au),
			inclination_deg = COALESCE(EXCLUDED.inclination_deg, asteroids.inclination_deg),
			updated_at = NOW()
		RETURNING created_at, updated_at;
	`
	err := r.db.QueryRow(ctx, query,
		a.NeoID,
		a.Name,
		a.NasaJPLURL,
		a.AbsoluteMagnitude,
		a.DiameterMinM,
		a.DiameterMaxM,
		a.IsPotentiallyHazardous,
		a.CloseApproachDate,
		a.VelocityKmS,
		a.MissDistanceKm,
		a.OrbitingBody,
		a.Eccentricity,
		a.SemiMajorAxisAU,
		a.InclinationDeg,
	).Scan(&a.CreatedAt, &a.UpdatedAt)
	if err != nil {
		return fmt.Errorf("failed to upsert asteroid %s: %w", a.NeoID, err)
	}
	return nil
}

// GetByNeoID возвращает запись по идентификатору каталога
func (r *AsteroidRepository) GetByNeoID(ctx context.Context, neoID string) (*models.Asteroid, error) {
	query := `SELECT ` + asteroidColumns + ` FROM asteroids WHERE neo_id = $1;`

	asteroid, err := scanAsteroid(r.db.QueryRow(ctx, query, neoID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("asteroid %s: %w", neoID, service.ErrAsteroidNotFound)
		}
		return nil, fmt.Errorf("failed to get asteroid by neo_id: %w", err)
	}
	return asteroid, nil
}

// ListAsteroids возвращает записи с пагинацией, ближайшие сближения первыми
func (r *AsteroidRepository) ListAsteroids(ctx context.Context, page, pageSize int) ([]*models.Asteroid, error) {
	// рассчитываем смещение
	offset := (page - 1) * pageSize

	query := `
		SELECT ` + asteroidColumns + `
		FROM asteroids
		ORDER BY close_approach_date ASC NULLS LAST, neo_id
		LIMIT $1 OFFSET $2;
	`
	return r.queryAsteroids(ctx, "ListAsteroids", query, pageSize, offset)
}

// ListHazardous возвращает потенциально опасные объекты с известным диаметром, крупные первыми
func (r *AsteroidRepository) ListHazardous(ctx context.Context, limit int) ([]*models.Asteroid, error) {
	query := `
		SELECT ` + asteroidColumns + `
		FROM asteroids
		WHERE is_potentially_hazardous AND diameter_min_m IS NOT NULL
		ORDER BY diameter_min_m DESC
		LIMIT $1;
	`
	return r.queryAsteroids(ctx, "ListHazardous", query, limit)
}

// CountAsteroids возвращает общее число записей и число опасных объектов
func (r *AsteroidRepository) CountAsteroids(ctx context.Context) (total, hazardous int, err error) {
	query := `
		SELECT COUNT(*), COUNT(*) FILTER (WHERE is_potentially_hazardous)
		FROM asteroids;
	`
	if err := r.db.QueryRow(ctx, query).Scan(&total, &hazardous); err != nil {
		return 0, 0, fmt.Errorf("failed to count asteroids: %w", err)
	}
	return total, hazardous, nil
}

func (r *AsteroidRepository) queryAsteroids(ctx context.Context, op, query string, args ...any) ([]*models.Asteroid, error) {
	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query asteroids in %s: %w", op, err)
	}
	defer rows.Close()

	asteroids := make([]*models.Asteroid, 0)
	for rows.Next() {
		asteroid, err := scanAsteroid(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan asteroid row in %s: %w", op, err)
		}
		asteroids = append(asteroids, asteroid)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error list iteration in %s: %w", op, err)
	}
	return asteroids, nil
}

func scanAsteroid(row pgx.Row) (*models.Asteroid, error) {
	a := &models.Asteroid{}
	err := row.Scan(
		&a.NeoID,
		&a.Name,
		&a.NasaJPLURL,
		&a.AbsoluteMagnitude,
		&a.DiameterMinM,
		&a.DiameterMaxM,
		&a.IsPotentiallyHazardous,
		&a.CloseApproachDate,
		&a.VelocityKmS,
		&a.MissDistanceKm,
		&a.OrbitingBody,
		&a.Eccentricity,
		&a.SemiMajorAxisAU,
		&a.InclinationDeg,
		&a.CreatedAt,
		&a.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return a, nil
}

func cacheKey(neoID string) string {
	return fmt.Sprintf("asteroid:%s", neoID)
}

// GetAsteroidFromCache пытается получить запись из Redis, nil при промахе
func (r *AsteroidRepository) GetAsteroidFromCache(ctx context.Context, neoID string) (*models.Asteroid, error) {
	val, err := r.redisClient.Get(ctx, cacheKey(neoID)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get asteroid from cache: %w", err)
	}

	asteroid := &models.Asteroid{}
	if err := json.Unmarshal(val, asteroid); err != nil {
		return nil, fmt.Errorf("failed to unmarshal asteroid from cache: %w", err)
	}
	return asteroid, nil
}

// SetAsteroidCache сохраняет запись в Redis на cacheTTL
func (r *AsteroidRepository) SetAsteroidCache(ctx context.Context, asteroid *models.Asteroid) error {
	val, err := json.Marshal(asteroid)
	if err != nil {
		return fmt.Errorf("failed to marshal asteroid for cache: %w", err)
	}
	if err := r.redisClient.Set(ctx, cacheKey(asteroid.NeoID), val, r.cacheTTL).Err(); err != nil {
		return fmt.Errorf("failed to set asteroid in cache: %w", err)
	}
	return nil
}

// InvalidateAsteroidCache удаляет запись из кеша Redis
func (r *AsteroidRepository) InvalidateAsteroidCache(ctx context.Context, neoID string) error {
	if err := r.redisClient.Del(ctx, cacheKey(neoID)).Err(); err != nil {
		return fmt.Errorf("failed to invalidate asteroid cache: %w", err)
	}
	return nil
}
