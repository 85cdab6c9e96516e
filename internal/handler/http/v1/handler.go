package v1

import (
	"context"
	"errors"
	"net/http"
	"sort"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/shenikar/neo_risk_system/internal/catalog"
	"github.com/shenikar/neo_risk_system/internal/config"
	"github.com/shenikar/neo_risk_system/internal/risk"
	"github.com/shenikar/neo_risk_system/internal/service"
	"github.com/sirupsen/logrus"
)

const healthCheckTimeout = 2 * time.Second

// HealthCheck проверяет доступность зависимости
type HealthCheck func(ctx context.Context) error

type Handler struct {
	asteroidService service.AsteroidService
	riskService     service.RiskService
	logger          *logrus.Logger
	validate        *validator.Validate
	cfg             *config.Config
	constants       risk.Constants
	checks          map[string]HealthCheck
}

func NewHandler(
	asteroidService service.AsteroidService,
	riskService service.RiskService,
	logger *logrus.Logger,
	cfg *config.Config,
	checks map[string]HealthCheck,
) *Handler {
	return &Handler{
		asteroidService: asteroidService,
		riskService:     riskService,
		logger:          logger,
		validate:        validator.New(),
		cfg:             cfg,
		constants:       risk.DefaultConstants(),
		checks:          checks,
	}
}

// respondError переводит ошибку сервиса в HTTP-ответ
func (h *Handler) respondError(c *gin.Context, log *logrus.Entry, err error) {
	var inputErr *risk.InvalidInputError
	var statusErr *catalog.StatusError

	switch {
	case errors.As(err, &inputErr):
		log.WithError(err).Warn("Rejected invalid input")
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid input", Field: inputErr.Field, Details: inputErr.Error()})
	case errors.Is(err, service.ErrInvalidParams), errors.Is(err, service.ErrInvalidDateRange):
		log.WithError(err).Warn("Rejected invalid parameters")
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
	case errors.Is(err, service.ErrAsteroidNotFound):
		log.WithError(err).Info("Asteroid not found")
		c.JSON(http.StatusNotFound, ErrorResponse{Error: "asteroid not found"})
	case errors.Is(err, service.ErrIncompleteRecord):
		log.WithError(err).Warn("Asteroid record is incomplete")
		c.JSON(http.StatusUnprocessableEntity, ErrorResponse{Error: "asteroid record lacks data required for assessment"})
	case errors.Is(err, risk.ErrDomain):
		log.WithError(err).Warn("Computation out of domain")
		c.JSON(http.StatusUnprocessableEntity, ErrorResponse{Error: "computation out of domain", Details: err.Error()})
	case errors.As(err, &statusErr):
		log.WithError(err).Error("Catalog request failed")
		c.JSON(http.StatusBadGateway, ErrorResponse{Error: "asteroid catalog unavailable"})
	default:
		log.WithError(err).Error("Request failed")
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "internal server error"})
	}
}

// @Summary Get a list of asteroids
// @Description Get a paginated list of asteroids mirrored from the catalog, ordered by close approach date
// @Tags Asteroids
// @Accept json
// @Produce json
// @Param page query int false "Page number" default(1)
// @Param pageSize query int false "Number of items per page" default(20)
// @Success 200 {array} AsteroidResponse
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Router /asteroids [get]
func (h *Handler) listAsteroids(c *gin.Context) {
	log := h.logger.WithField("method", "listAsteroids")
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	pageSize, _ := strconv.Atoi(c.DefaultQuery("pageSize", "20"))

	asteroids, err := h.asteroidService.ListAsteroids(c.Request.Context(), page, pageSize)
	if err != nil {
		h.respondError(c, log, err)
		return
	}

	c.JSON(http.StatusOK, ModelsToAsteroidResponses(asteroids))
}

// @Summary Get asteroid by NEO ID
// @Description Get a single asteroid. Unknown objects are fetched from the catalog and mirrored.
// @Tags Asteroids
// @Accept json
// @Produce json
// @Param id path string true "NEO reference ID"
// @Success 200 {object} AsteroidResponse
// @Failure 404 {object} ErrorResponse "Asteroid not found"
// @Failure 502 {object} ErrorResponse "Catalog unavailable"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Router /asteroids/{id} [get]
func (h *Handler) getAsteroid(c *gin.Context) {
	id := c.Param("id")
	log := h.logger.WithField("method", "getAsteroid").WithField("neo_id", id)

	asteroid, err := h.asteroidService.GetAsteroid(c.Request.Context(), id)
	if err != nil {
		h.respondError(c, log, err)
		return
	}
	c.JSON(http.StatusOK, ModelToAsteroidResponse(asteroid))
}

// @Summary Assess impact risk of a catalogued asteroid
// @Description Run the risk model for an asteroid. Query parameters override catalog data.
// @Tags Risk
// @Accept json
// @Produce json
// @Param id path string true "NEO reference ID"
// @Param density_kg_m3 query number false "Bulk density, kg/m3"
// @Param material query string false "Composition preset" Enums(iron, rock, ice)
// @Param years_to_approach query number false "Years until the approach"
// @Param population_density query number false "People per km2 near the impact site"
// @Success 200 {object} AsteroidRiskResponse
// @Failure 400 {object} ErrorResponse "Invalid parameters"
// @Failure 404 {object} ErrorResponse "Asteroid not found"
// @Failure 422 {object} ErrorResponse "Record cannot be assessed"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Router /asteroids/{id}/risk [get]
func (h *Handler) getAsteroidRisk(c *gin.Context) {
	id := c.Param("id")
	log := h.logger.WithField("method", "getAsteroidRisk").WithField("neo_id", id)

	var query AssessRiskQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		log.WithError(err).Warn("Failed to bind query")
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid query parameters"})
		return
	}
	if err := h.validate.Struct(query); err != nil {
		log.WithError(err).Warn("Validation failed")
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		return
	}

	assessment, err := h.riskService.AssessAsteroid(c.Request.Context(), id, QueryToOverrides(query))
	if err != nil {
		h.respondError(c, log, err)
		return
	}
	c.JSON(http.StatusOK, AssessmentToRiskResponse(assessment))
}

// @Summary Sync close approach feed
// @Description Fetch the catalog feed for a date range and upsert it into the local mirror. Requires API key.
// @Tags Asteroids
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param range body SyncFeedRequest false "Date range, at most 31 days"
// @Success 200 {object} service.SyncResult
// @Failure 400 {object} ErrorResponse "Invalid date range"
// @Failure 401 {object} ErrorResponse "Unauthorized"
// @Failure 502 {object} ErrorResponse "Catalog unavailable"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Router /asteroids/sync [post]
func (h *Handler) syncFeed(c *gin.Context) {
	log := h.logger.WithField("method", "syncFeed")

	var input SyncFeedRequest
	if c.Request.ContentLength != 0 {
		if err := c.ShouldBindJSON(&input); err != nil {
			log.WithError(err).Warn("Failed to bind JSON")
			c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid request body"})
			return
		}
	}
	if err := h.validate.Struct(input); err != nil {
		log.WithError(err).Warn("Validation failed")
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		return
	}

	start, end, err := DTOToSyncRange(input)
	if err != nil {
		log.WithError(err).Warn("Failed to parse dates")
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid date format, expected YYYY-MM-DD"})
		return
	}

	result, err := h.asteroidService.SyncFeed(c.Request.Context(), start, end)
	if err != nil {
		h.respondError(c, log, err)
		return
	}
	log.WithFields(logrus.Fields{"fetched": result.Fetched, "stored": result.Stored}).Info("Feed synced")
	c.JSON(http.StatusOK, result)
}

// @Summary Assess an arbitrary observation
// @Description Run the risk model for a hypothetical object. Missing optional fields take model defaults.
// @Tags Risk
// @Accept json
// @Produce json
// @Param observation body AssessObservationRequest true "Observation"
// @Success 200 {object} risk.RiskAssessment
// @Failure 400 {object} ErrorResponse "Invalid request body or validation error"
// @Failure 422 {object} ErrorResponse "Computation out of domain"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Router /risk/assess [post]
func (h *Handler) assessObservation(c *gin.Context) {
	var input AssessObservationRequest
	log := h.logger.WithField("method", "assessObservation")

	if err := c.ShouldBindJSON(&input); err != nil {
		log.WithError(err).Warn("Failed to bind JSON")
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid request body"})
		return
	}

	if err := h.validate.Struct(input); err != nil {
		log.WithError(err).Warn("Validation failed")
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		return
	}

	assessment, err := h.riskService.AssessObservation(c.Request.Context(), DTOToObservation(input, h.constants))
	if err != nil {
		h.respondError(c, log, err)
		return
	}
	c.JSON(http.StatusOK, assessment)
}

// @Summary Predict impact consequences
// @Description Estimate energy, crater, fireball and tsunami for a hypothetical impact
// @Tags Risk
// @Accept json
// @Produce json
// @Param impact body PredictImpactRequest true "Impact parameters"
// @Success 200 {object} service.ImpactPrediction
// @Failure 400 {object} ErrorResponse "Invalid request body or validation error"
// @Failure 422 {object} ErrorResponse "Computation out of domain"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Router /predict-impact [post]
func (h *Handler) predictImpact(c *gin.Context) {
	var input PredictImpactRequest
	log := h.logger.WithField("method", "predictImpact")

	if err := c.ShouldBindJSON(&input); err != nil {
		log.WithError(err).Warn("Failed to bind JSON")
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid request body"})
		return
	}

	if err := h.validate.Struct(input); err != nil {
		log.WithError(err).Warn("Validation failed")
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		return
	}

	prediction, err := h.riskService.PredictImpact(c.Request.Context(), DTOToPredictParams(input))
	if err != nil {
		h.respondError(c, log, err)
		return
	}
	c.JSON(http.StatusOK, prediction)
}

// @Summary Hazardous asteroid impact summary
// @Description Assess every hazardous asteroid in the mirror and return them ordered by impact energy together with a Plotly figure
// @Tags Risk
// @Accept json
// @Produce json
// @Success 200 {object} service.ImpactSummary
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Router /impact-summary [get]
func (h *Handler) impactSummary(c *gin.Context) {
	log := h.logger.WithField("method", "impactSummary")

	summary, err := h.riskService.ImpactSummary(c.Request.Context())
	if err != nil {
		h.respondError(c, log, err)
		return
	}
	c.JSON(http.StatusOK, summary)
}

// @Summary Get catalog statistics
// @Description Get the number of mirrored asteroids and how many are potentially hazardous
// @Tags Admin
// @Accept json
// @Produce json
// @Success 200 {object} StatsResponse
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Router /stats [get]
func (h *Handler) getStats(c *gin.Context) {
	log := h.logger.WithField("method", "getStats")

	stats, err := h.asteroidService.GetStats(c.Request.Context())
	if err != nil {
		h.respondError(c, log, err)
		return
	}

	c.JSON(http.StatusOK, StatsToResponse(stats))
}

// @Summary Get application health status
// @Description Get health status of the application and its dependencies
// @Tags System
// @Accept json
// @Produce json
// @Success 200 {object} map[string]interface{} "Status OK"
// @Failure 503 {object} map[string]interface{} "A dependency is unavailable"
// @Router /system/health [get]
func (h *Handler) healthCheck(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), healthCheckTimeout)
	defer cancel()

	names := make([]string, 0, len(h.checks))
	for name := range h.checks {
		names = append(names, name)
	}
	sort.Strings(names)

	status := http.StatusOK
	components := make(map[string]string, len(names))
	for _, name := range names {
		if err := h.checks[name](ctx); err != nil {
			h.logger.WithError(err).WithField("component", name).Warn("Health check failed")
			components[name] = "unavailable"
			status = http.StatusServiceUnavailable
			continue
		}
		components[name] = "ok"
	}

	if status != http.StatusOK {
		c.JSON(status, gin.H{"status": "degraded", "components": components})
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "ok", "components": components})
}
