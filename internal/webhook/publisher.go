package webhook

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/shenikar/neo_risk_system/internal/observability"
)

const (
	alertQueueKey = "impact_alerts"
)

// ImpactAlert - оповещение об опасной оценке риска
type ImpactAlert struct {
	EventID           string     `json:"event_id"`
	NeoID             string     `json:"neo_id"`
	Name              string     `json:"name"`
	TorinoScale       int        `json:"torino_scale"`
	PalermoScale      float64    `json:"palermo_scale"`
	ImpactProbability float64    `json:"impact_probability"`
	EnergyMegatons    float64    `json:"energy_megatons"`
	ThreatLevel       string     `json:"threat_level"`
	CloseApproachDate *time.Time `json:"close_approach_date,omitempty"`
	Timestamp         time.Time  `json:"timestamp"`
}

// AlertPublisher - интерфейс для публикации оповещений
//
//go:generate mockgen -source=publisher.go -destination=mocks/publisher_mock.go -package=mocks
type AlertPublisher interface {
	Publish(ctx context.Context, alert ImpactAlert) error
}

// RedisAlertPublisher - реализация AlertPublisher поверх списка Redis
type RedisAlertPublisher struct {
	redisClient *redis.Client
	metrics     *observability.Metrics
}

// NewRedisAlertPublisher создает новый RedisAlertPublisher
func NewRedisAlertPublisher(client *redis.Client, metrics *observability.Metrics) *RedisAlertPublisher {
	return &RedisAlertPublisher{
		redisClient: client,
		metrics:     metrics,
	}
}

// Publish кладет оповещение в очередь Redis
func (p *RedisAlertPublisher) Publish(ctx context.Context, alert ImpactAlert) error {
	payload, err := json.Marshal(alert)
	if err != nil {
		return fmt.Errorf("failed to marshal impact alert: %w", err)
	}

	// LPUSH слева, воркер забирает справа через BRPOP
	if err := p.redisClient.LPush(ctx, alertQueueKey, payload).Err(); err != nil {
		return fmt.Errorf("failed to publish impact alert to Redis: %w", err)
	}
	p.metrics.AlertsPublished.Inc()
	return nil
}
