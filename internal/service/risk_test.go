package service_test

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/jonboulle/clockwork"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/shenikar/neo_risk_system/internal/config"
	"github.com/shenikar/neo_risk_system/internal/models"
	"github.com/shenikar/neo_risk_system/internal/observability"
	"github.com/shenikar/neo_risk_system/internal/risk"
	"github.com/shenikar/neo_risk_system/internal/service"
	"github.com/shenikar/neo_risk_system/internal/service/mocks"
	"github.com/shenikar/neo_risk_system/internal/webhook"
	webhook_mocks "github.com/shenikar/neo_risk_system/internal/webhook/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

type riskFixture struct {
	service   service.RiskService
	asteroids *mocks.MockAsteroidService
	repo      *mocks.MockAsteroidRepository
	publisher *webhook_mocks.MockAlertPublisher
	metrics   *observability.Metrics
}

// newTestRiskService создает сервис оценки риска с моками зависимостей
func newTestRiskService(t *testing.T) riskFixture {
	ctrl := gomock.NewController(t)
	asteroidsMock := mocks.NewMockAsteroidService(ctrl)
	repoMock := mocks.NewMockAsteroidRepository(ctrl)
	publisherMock := webhook_mocks.NewMockAlertPublisher(ctrl)
	metrics := observability.NewMetricsForTesting()

	cfg := &config.Config{
		AlertTorinoThreshold: 5,
		SummaryConcurrency:   4,
		SummaryLimit:         50,
	}

	svc := service.NewRiskService(
		asteroidsMock,
		repoMock,
		risk.NewEngine(risk.DefaultConstants()),
		publisherMock,
		newTestLogger(),
		cfg,
		metrics,
		clockwork.NewFakeClockAt(testNow),
	)
	return riskFixture{service: svc, asteroids: asteroidsMock, repo: repoMock, publisher: publisherMock, metrics: metrics}
}

func referenceAsteroid() *models.Asteroid {
	return &models.Asteroid{
		NeoID:           "ref-100",
		Name:            "Reference 100 m",
		DiameterMinM:    ptr(100),
		DiameterMaxM:    ptr(220),
		VelocityKmS:     ptr(17),
		Eccentricity:    ptr(0),
		SemiMajorAxisAU: ptr(1),
		InclinationDeg:  ptr(0),
	}
}

func impactorAsteroid() *models.Asteroid {
	return &models.Asteroid{
		NeoID:           "big-20km",
		Name:            "Planet killer",
		DiameterMinM:    ptr(20000),
		VelocityKmS:     ptr(20),
		Eccentricity:    ptr(0.9),
		SemiMajorAxisAU: ptr(600),
	}
}

func TestAssessAsteroid_ReferenceScenario(t *testing.T) {
	// Подготовка
	f := newTestRiskService(t)
	ctx := context.Background()
	asteroid := referenceAsteroid()

	// Ожидания
	f.asteroids.EXPECT().GetAsteroid(ctx, "ref-100").Return(asteroid, nil)
	// Torino 2 ниже порога, оповещения нет
	f.publisher.EXPECT().Publish(gomock.Any(), gomock.Any()).Times(0)

	// Действие
	result, err := f.service.AssessAsteroid(ctx, "ref-100", service.AssessOverrides{})

	// Проверки
	require.NoError(t, err)
	assert.Equal(t, asteroid, result.Asteroid)
	assert.Equal(t, 100.0, result.Observation.DiameterM)
	assert.InDelta(t, 17000.0, *result.Observation.VelocityMS, 1e-9)
	assert.Equal(t, 2, result.Assessment.TorinoScale)
	assert.Equal(t, "Moderate", result.Assessment.ThreatLevel)
	assert.InEpsilon(t, 54.249, result.Assessment.ImpactEffects.EnergyMegatons, 1e-3)
	assert.Equal(t, testNow, result.AssessedAt)
	assert.Equal(t, 1.0, testutil.ToFloat64(f.metrics.Assessments.WithLabelValues("2")))
}

func TestAssessAsteroid_Overrides(t *testing.T) {
	f := newTestRiskService(t)
	ctx := context.Background()

	f.asteroids.EXPECT().GetAsteroid(ctx, "ref-100").Return(referenceAsteroid(), nil)

	result, err := f.service.AssessAsteroid(ctx, "ref-100", service.AssessOverrides{
		Material:          risk.MaterialIron,
		YearsToApproach:   ptr(10),
		PopulationDensity: ptr(0),
	})

	require.NoError(t, err)
	assert.Equal(t, 7800.0, *result.Observation.DensityKgM3)
	assert.Equal(t, 10.0, result.Assessment.TemporalAssessment.YearsToApproach)
	assert.Zero(t, result.Assessment.CasualtyEstimate.DirectCasualties)
}

func TestAssessAsteroid_ExplicitDensityWinsOverMaterial(t *testing.T) {
	f := newTestRiskService(t)
	ctx := context.Background()

	f.asteroids.EXPECT().GetAsteroid(ctx, "ref-100").Return(referenceAsteroid(), nil)

	result, err := f.service.AssessAsteroid(ctx, "ref-100", service.AssessOverrides{
		Material:    risk.MaterialIce,
		DensityKgM3: ptr(2500),
	})

	require.NoError(t, err)
	assert.Equal(t, 2500.0, *result.Observation.DensityKgM3)
}

func TestAssessAsteroid_UnknownMaterial(t *testing.T) {
	f := newTestRiskService(t)
	ctx := context.Background()

	f.asteroids.EXPECT().GetAsteroid(ctx, "ref-100").Return(referenceAsteroid(), nil)

	_, err := f.service.AssessAsteroid(ctx, "ref-100", service.AssessOverrides{Material: "gold"})

	assert.ErrorIs(t, err, service.ErrInvalidParams)
}

func TestAssessAsteroid_PublishesAlertAboveThreshold(t *testing.T) {
	// Подготовка
	f := newTestRiskService(t)
	ctx := context.Background()
	asteroid := impactorAsteroid()

	// Ожидания
	f.asteroids.EXPECT().GetAsteroid(ctx, "big-20km").Return(asteroid, nil)

	var published webhook.ImpactAlert
	f.publisher.EXPECT().
		Publish(ctx, gomock.Any()).
		DoAndReturn(func(_ context.Context, alert webhook.ImpactAlert) error {
			published = alert
			return nil
		}).
		Times(1)

	// Действие
	result, err := f.service.AssessAsteroid(ctx, "big-20km", service.AssessOverrides{})

	// Проверки
	require.NoError(t, err)
	assert.GreaterOrEqual(t, result.Assessment.TorinoScale, 8)
	assert.Equal(t, "big-20km", published.NeoID)
	assert.Equal(t, result.Assessment.TorinoScale, published.TorinoScale)
	assert.Equal(t, "Severe", published.ThreatLevel)
	assert.NotEmpty(t, published.EventID)
	assert.Equal(t, testNow, published.Timestamp)
}

func TestAssessAsteroid_PublishFailureIsNotReturned(t *testing.T) {
	f := newTestRiskService(t)
	ctx := context.Background()

	f.asteroids.EXPECT().GetAsteroid(ctx, "big-20km").Return(impactorAsteroid(), nil)
	f.publisher.EXPECT().Publish(ctx, gomock.Any()).Return(errors.New("redis down"))

	result, err := f.service.AssessAsteroid(ctx, "big-20km", service.AssessOverrides{})

	require.NoError(t, err)
	assert.NotNil(t, result)
}

func TestAssessAsteroid_MissingDiameter(t *testing.T) {
	f := newTestRiskService(t)
	ctx := context.Background()

	f.asteroids.EXPECT().GetAsteroid(ctx, "no-size").Return(&models.Asteroid{NeoID: "no-size"}, nil)

	_, err := f.service.AssessAsteroid(ctx, "no-size", service.AssessOverrides{})

	require.ErrorIs(t, err, service.ErrIncompleteRecord)
	assert.Equal(t, 1.0, testutil.ToFloat64(f.metrics.AssessmentFailures.WithLabelValues("incomplete")))
}

func TestAssessAsteroid_InvalidCatalogValueIsNotMasked(t *testing.T) {
	f := newTestRiskService(t)
	ctx := context.Background()
	asteroid := referenceAsteroid()
	asteroid.VelocityKmS = ptr(-5)

	f.asteroids.EXPECT().GetAsteroid(ctx, "ref-100").Return(asteroid, nil)

	_, err := f.service.AssessAsteroid(ctx, "ref-100", service.AssessOverrides{})

	var inputErr *risk.InvalidInputError
	require.ErrorAs(t, err, &inputErr)
	assert.Equal(t, "velocity_m_s", inputErr.Field)
	assert.Equal(t, 1.0, testutil.ToFloat64(f.metrics.AssessmentFailures.WithLabelValues("invalid_input")))
}

func TestAssessAsteroid_NotFound(t *testing.T) {
	f := newTestRiskService(t)
	ctx := context.Background()

	f.asteroids.EXPECT().GetAsteroid(ctx, "404").Return(nil, service.ErrAsteroidNotFound)

	_, err := f.service.AssessAsteroid(ctx, "404", service.AssessOverrides{})

	assert.ErrorIs(t, err, service.ErrAsteroidNotFound)
}

func TestAssessObservation(t *testing.T) {
	f := newTestRiskService(t)

	assessment, err := f.service.AssessObservation(context.Background(), risk.Observation{DiameterM: 10})

	require.NoError(t, err)
	assert.Equal(t, 0, assessment.TorinoScale)
	assert.Equal(t, "Low", assessment.ThreatLevel)
}

func TestAssessObservation_InvalidInput(t *testing.T) {
	f := newTestRiskService(t)

	_, err := f.service.AssessObservation(context.Background(), risk.Observation{DiameterM: -1})

	assert.ErrorIs(t, err, risk.ErrInvalidInput)
}

func TestAssessObservation_ConcurrentCallsAgree(t *testing.T) {
	f := newTestRiskService(t)
	obs := risk.Observation{DiameterM: 300, VelocityMS: ptr(25000)}
	want, err := f.service.AssessObservation(context.Background(), obs)
	require.NoError(t, err)

	var wg sync.WaitGroup
	results := make([]*risk.RiskAssessment, 8)
	for i := range results {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			results[i], _ = f.service.AssessObservation(context.Background(), obs)
		}(i)
	}
	wg.Wait()

	for _, got := range results {
		assert.Equal(t, want, got)
	}
}

func TestPredictImpact_FromDiameter(t *testing.T) {
	// Подготовка
	f := newTestRiskService(t)

	// Действие
	prediction, err := f.service.PredictImpact(context.Background(), service.PredictImpactParams{
		VelocityKmS: 17,
		AngleDeg:    45,
		DiameterM:   100,
	})

	// Проверки
	require.NoError(t, err)
	assert.Equal(t, risk.MaterialRock, prediction.Composition)
	assert.Equal(t, 3000.0, prediction.DensityKgM3)
	assert.InEpsilon(t, 54.249, prediction.EnergyMegatons, 1e-3)
	assert.Equal(t, prediction.Effects.CraterDiameterKm, prediction.CraterDiameterKm)
	// 1000·E^0.25
	assert.InEpsilon(t, 2713.9, prediction.TsunamiHeightM, 1e-3)
	assert.Equal(t, 1e-6, prediction.ImpactProbability)
	assert.Equal(t, 2, prediction.TorinoScale)
	assert.Equal(t, testNow, prediction.FirstObservation)
	assert.Equal(t, testNow.Add(7*24*time.Hour), prediction.PredictedImpact)
	assert.Equal(t, "7 days", prediction.TimeUntilImpact)
}

func TestPredictImpact_FromMass(t *testing.T) {
	f := newTestRiskService(t)

	prediction, err := f.service.PredictImpact(context.Background(), service.PredictImpactParams{
		VelocityKmS: 0.001,
		AngleDeg:    90,
		DiameterM:   1,
		MassKg:      ptr(2 * 4.184e15),
		Composition: risk.MaterialIron,
	})

	require.NoError(t, err)
	assert.InEpsilon(t, 1.0, prediction.EnergyMegatons, 1e-12)
	assert.Equal(t, 7800.0, prediction.DensityKgM3)
}

func TestPredictImpact_Invalid(t *testing.T) {
	tests := []struct {
		name   string
		params service.PredictImpactParams
		target error
	}{
		{"zero angle", service.PredictImpactParams{VelocityKmS: 17, AngleDeg: 0, DiameterM: 100}, risk.ErrInvalidInput},
		{"steep angle", service.PredictImpactParams{VelocityKmS: 17, AngleDeg: 91, DiameterM: 100}, risk.ErrInvalidInput},
		{"negative velocity", service.PredictImpactParams{VelocityKmS: -17, AngleDeg: 45, DiameterM: 100}, risk.ErrInvalidInput},
		{"zero mass", service.PredictImpactParams{VelocityKmS: 17, AngleDeg: 45, DiameterM: 100, MassKg: ptr(0)}, risk.ErrInvalidInput},
		{"unknown composition", service.PredictImpactParams{VelocityKmS: 17, AngleDeg: 45, DiameterM: 100, Composition: "gold"}, service.ErrInvalidParams},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newTestRiskService(t)

			_, err := f.service.PredictImpact(context.Background(), tt.params)

			assert.ErrorIs(t, err, tt.target)
		})
	}
}
