package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os/signal"
	"syscall"

	"github.com/gin-gonic/gin"
	"github.com/jonboulle/clockwork"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/shenikar/neo_risk_system/internal/catalog"
	"github.com/shenikar/neo_risk_system/internal/config"
	v1 "github.com/shenikar/neo_risk_system/internal/handler/http/v1"
	"github.com/shenikar/neo_risk_system/internal/observability"
	"github.com/shenikar/neo_risk_system/internal/repository"
	"github.com/shenikar/neo_risk_system/internal/risk"
	"github.com/shenikar/neo_risk_system/internal/service"
	"github.com/shenikar/neo_risk_system/internal/webhook"
	"github.com/shenikar/neo_risk_system/pkg/logger"
	"github.com/shenikar/neo_risk_system/pkg/postgres"
	redisclient "github.com/shenikar/neo_risk_system/pkg/redis"
	"github.com/sirupsen/logrus"

	_ "github.com/shenikar/neo_risk_system/docs"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// @title NEO Risk System API
// @version 1.0
// @description Near-Earth object catalog mirror and impact risk assessment API.
// @host localhost:8080
// @BasePath /api/v1
// @securityDefinitions.apikey ApiKeyAuth
// @in header
// @name X-API-Key
func runMigrations(cfg *config.Config, log *logrus.Logger) error {
	log.Info("Running database migrations...")

	applied, err := postgres.RunMigrations(cfg.DatabaseURL, "migrations")
	if err != nil {
		return err
	}

	if applied {
		log.Info("Database migrations applied successfully")
	} else {
		log.Info("Database schema is up to date")
	}
	return nil
}

// riskConstants возвращает константы модели с умолчаниями из конфигурации
func riskConstants(cfg *config.Config) risk.Constants {
	c := risk.DefaultConstants()
	c.DefaultPopulationDensity = cfg.PopulationDensity
	c.DefaultYearsToApproach = cfg.YearsToApproach
	return c
}

func main() {
	// Загрузка конфигурации
	cfg, err := config.LoadConfig()
	if err != nil {
		logrus.Fatalf("Failed to load config: %v", err)
	}

	// Инициализация логгера
	log := logger.New(cfg.LogLevel, cfg.LogFormat)

	// Контекст для graceful shutdown
	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	// Запуск миграций
	if err := runMigrations(cfg, log); err != nil {
		log.Fatalf("Failed to run database migrations: %v", err)
	}

	// Подключение к PostgreSQL
	dbpool, err := postgres.NewPostgresDB(ctx, cfg.DatabaseURL, int32(cfg.DBMaxConns))
	if err != nil {
		log.Fatalf("Failed to connect to PostgreSQL: %v", err)
	}
	defer dbpool.Close()
	log.Info("Successfully connected to PostgreSQL")

	// Инициализация Redis клиента
	redisClient, err := redisclient.NewRedisClient(ctx, cfg.RedisAddr, cfg.RedisPass, cfg.RedisDB)
	if err != nil {
		log.Fatalf("Failed to connect to Redis: %v", err)
	}
	defer redisClient.Close()
	log.Info("Successfully connected to Redis")

	metrics := observability.NewMetrics()
	clock := clockwork.NewRealClock()

	// Инициализация издателя и воркера оповещений
	alertPublisher := webhook.NewRedisAlertPublisher(redisClient, metrics)
	alertWorker := webhook.NewAlertWorker(redisClient, log, cfg, metrics, clock)
	workerDone := alertWorker.Start(ctx)

	// Инициализация репозиториев и внешнего каталога
	asteroidRepo := repository.NewAsteroidRepository(dbpool, redisClient, cfg.CacheTTL)
	catalogClient := catalog.NewClient(cfg, log, metrics)
	engine := risk.NewEngine(riskConstants(cfg))

	// Инициализация сервисов
	asteroidService := service.NewAsteroidService(asteroidRepo, catalogClient, log, metrics, clock)
	riskService := service.NewRiskService(asteroidService, asteroidRepo, engine, alertPublisher, log, cfg, metrics, clock)

	// Инициализация хэндлеров
	handler := v1.NewHandler(asteroidService, riskService, log, cfg, map[string]v1.HealthCheck{
		"postgres": dbpool.Ping,
		"redis": func(ctx context.Context) error {
			return redisclient.Ping(ctx, redisClient)
		},
	})

	// Настройка Gin роутера
	router := gin.New()
	router.Use(gin.Recovery(), v1.RequestLogger(log))
	api := router.Group("/api/v1")
	handler.RegisterRoutes(api)

	// Метрики Prometheus и Swagger UI
	router.GET("/metrics", gin.WrapH(promhttp.Handler()))
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// Запуск HTTP-сервера
	serverAddr := fmt.Sprintf(":%s", cfg.HTTPPort)

	srv := &http.Server{
		Addr:    serverAddr,
		Handler: router,
	}

	// Запуск сервера в горутине
	go func() {
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Errorf("Error starting HTTP server: %v", err)
			cancel()
		}
	}()
	log.Infof("HTTP server started on port %s", cfg.HTTPPort)

	// Graceful shutdown
	<-ctx.Done()
	log.Info("Received shutdown signal, shutting down server...")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer shutdownCancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Errorf("Server forced to shutdown: %v", err)
	}

	// Ждем, пока воркер дочитает текущее оповещение
	select {
	case <-workerDone:
	case <-shutdownCtx.Done():
		log.Warn("Alert worker did not stop in time")
	}

	log.Info("Server gracefully stopped")
}
