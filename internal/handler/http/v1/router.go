package v1

import (
	"github.com/gin-gonic/gin"
)

// RegisterRoutes регистрирует все маршруты API v1
func (h *Handler) RegisterRoutes(api *gin.RouterGroup) {
	// Зеркало каталога
	asteroids := api.Group("/asteroids")
	{
		asteroids.GET("", h.listAsteroids)
		asteroids.GET("/:id", h.getAsteroid)
		asteroids.GET("/:id/risk", h.getAsteroidRisk)
		// Синхронизация ходит во внешний API, поэтому только по ключу
		asteroids.POST("/sync", APIKeyAuthMiddleware(h.cfg, h.logger), h.syncFeed)
	}

	// Расчеты риска
	api.POST("/risk/assess", h.assessObservation)
	api.POST("/predict-impact", h.predictImpact)
	api.GET("/impact-summary", h.impactSummary)

	api.GET("/stats", h.getStats)

	// Маршрут Health-check
	api.GET("/system/health", h.healthCheck)
}
