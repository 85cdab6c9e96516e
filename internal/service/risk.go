package service

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/google/uuid"
	"github.com/jonboulle/clockwork"
	"github.com/shenikar/neo_risk_system/internal/catalog"
	"github.com/shenikar/neo_risk_system/internal/config"
	"github.com/shenikar/neo_risk_system/internal/models"
	"github.com/shenikar/neo_risk_system/internal/observability"
	"github.com/shenikar/neo_risk_system/internal/risk"
	"github.com/shenikar/neo_risk_system/internal/webhook"
	"github.com/sirupsen/logrus"
)

// RiskService определяет контракт оценки риска столкновения
//
//go:generate mockgen -source=risk.go -destination=mocks/risk_mock.go -package=mocks
type RiskService interface {
	AssessAsteroid(ctx context.Context, neoID string, overrides AssessOverrides) (*AsteroidAssessment, error)
	AssessObservation(ctx context.Context, obs risk.Observation) (*risk.RiskAssessment, error)
	PredictImpact(ctx context.Context, params PredictImpactParams) (*ImpactPrediction, error)
	ImpactSummary(ctx context.Context) (*ImpactSummary, error)
}

// AssessOverrides - параметры, заменяющие данные каталога при оценке
type AssessOverrides struct {
	DensityKgM3       *float64
	Material          risk.Material
	YearsToApproach   *float64
	PopulationDensity *float64
}

// AsteroidAssessment - оценка риска для записи каталога
type AsteroidAssessment struct {
	Asteroid    *models.Asteroid    `json:"asteroid"`
	Observation risk.Observation    `json:"observation"`
	Assessment  risk.RiskAssessment `json:"assessment"`
	AssessedAt  time.Time           `json:"assessed_at"`
}

type riskService struct {
	asteroids AsteroidService
	repo      AsteroidRepository
	engine    *risk.Engine
	publisher webhook.AlertPublisher
	logger    *logrus.Logger
	cfg       *config.Config
	metrics   *observability.Metrics
	clock     clockwork.Clock
}

func NewRiskService(
	asteroids AsteroidService,
	repo AsteroidRepository,
	engine *risk.Engine,
	publisher webhook.AlertPublisher,
	logger *logrus.Logger,
	cfg *config.Config,
	metrics *observability.Metrics,
	clock clockwork.Clock,
) RiskService {
	return &riskService{
		asteroids: asteroids,
		repo:      repo,
		engine:    engine,
		publisher: publisher,
		logger:    logger,
		cfg:       cfg,
		metrics:   metrics,
		clock:     clock,
	}
}

// AssessAsteroid оценивает риск для объекта каталога и публикует оповещение,
// если шкала Турина достигла порога.
func (s *riskService) AssessAsteroid(ctx context.Context, neoID string, overrides AssessOverrides) (*AsteroidAssessment, error) {
	log := s.logger.WithFields(logrus.Fields{
		"service": "risk",
		"method":  "AssessAsteroid",
		"neo_id":  neoID,
	})

	asteroid, err := s.asteroids.GetAsteroid(ctx, neoID)
	if err != nil {
		return nil, fmt.Errorf("service: could not assess asteroid: %w", err)
	}

	obs, err := catalog.ToObservation(asteroid)
	if err != nil {
		s.metrics.AssessmentFailures.WithLabelValues("incomplete").Inc()
		log.WithError(err).Warn("Catalog record cannot be assessed")
		return nil, fmt.Errorf("service: asteroid %s: %w: %w", neoID, ErrIncompleteRecord, err)
	}
	if err := applyOverrides(s.engine.Constants(), &obs, overrides); err != nil {
		return nil, err
	}

	assessment, err := s.assess(obs)
	if err != nil {
		log.WithError(err).Warn("Risk assessment rejected")
		return nil, fmt.Errorf("service: asteroid %s: %w", neoID, err)
	}

	log.WithFields(logrus.Fields{
		"torino_scale": assessment.TorinoScale,
		"threat_level": assessment.ThreatLevel,
	}).Info("Asteroid assessed")

	s.maybeAlert(ctx, log, asteroid, assessment)

	return &AsteroidAssessment{
		Asteroid:    asteroid,
		Observation: obs,
		Assessment:  assessment,
		AssessedAt:  s.clock.Now().UTC(),
	}, nil
}

// AssessObservation оценивает произвольное наблюдение без обращения к каталогу
func (s *riskService) AssessObservation(ctx context.Context, obs risk.Observation) (*risk.RiskAssessment, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	assessment, err := s.assess(obs)
	if err != nil {
		s.logger.WithFields(logrus.Fields{
			"service": "risk",
			"method":  "AssessObservation",
		}).WithError(err).Debug("Observation rejected")
		return nil, fmt.Errorf("service: %w", err)
	}
	return &assessment, nil
}

// assess вызывает движок и учитывает результат в метриках
func (s *riskService) assess(obs risk.Observation) (risk.RiskAssessment, error) {
	assessment, err := s.engine.AssessRisk(obs)
	if err != nil {
		s.metrics.AssessmentFailures.WithLabelValues(failureReason(err)).Inc()
		return risk.RiskAssessment{}, err
	}
	s.metrics.Assessments.WithLabelValues(strconv.Itoa(assessment.TorinoScale)).Inc()
	return assessment, nil
}

func (s *riskService) maybeAlert(ctx context.Context, log *logrus.Entry, asteroid *models.Asteroid, assessment risk.RiskAssessment) {
	if s.publisher == nil || assessment.TorinoScale < s.cfg.AlertTorinoThreshold {
		return
	}

	alert := webhook.ImpactAlert{
		EventID:           uuid.NewString(),
		NeoID:             asteroid.NeoID,
		Name:              asteroid.Name,
		TorinoScale:       assessment.TorinoScale,
		PalermoScale:      assessment.PalermoScale,
		ImpactProbability: assessment.ImpactProbability,
		EnergyMegatons:    assessment.ImpactEffects.EnergyMegatons,
		ThreatLevel:       assessment.ThreatLevel,
		CloseApproachDate: asteroid.CloseApproachDate,
		Timestamp:         s.clock.Now().UTC(),
	}
	// Ошибка публикации не влияет на ответ
	if err := s.publisher.Publish(ctx, alert); err != nil {
		log.WithError(err).Error("Failed to publish impact alert")
		return
	}
	log.WithField("event_id", alert.EventID).Info("Impact alert published")
}

func applyOverrides(c risk.Constants, obs *risk.Observation, o AssessOverrides) error {
	if o.Material != "" {
		density, ok := c.MaterialDensity(o.Material)
		if !ok {
			return fmt.Errorf("service: unknown material %q: %w", o.Material, ErrInvalidParams)
		}
		obs.DensityKgM3 = &density
	}
	if o.DensityKgM3 != nil {
		obs.DensityKgM3 = o.DensityKgM3
	}
	if o.YearsToApproach != nil {
		obs.YearsToApproach = o.YearsToApproach
	}
	if o.PopulationDensity != nil {
		obs.PopulationDensity = o.PopulationDensity
	}
	return nil
}

func failureReason(err error) string {
	switch {
	case errors.Is(err, risk.ErrInvalidInput):
		return "invalid_input"
	case errors.Is(err, risk.ErrDomain):
		return "domain"
	default:
		return "internal"
	}
}
