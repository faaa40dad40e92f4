package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-migrate/migrate/v4"
	_ "github.com/golang-migrate/migrate/v4/database/pgx/v5"
	_ "github.com/golang-migrate/migrate/v4/source/file"
	"github.com/jonboulle/clockwork"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	goredis "github.com/redis/go-redis/v9"

	"github.com/shenikar/outage_reporting_system/internal/config"
	"github.com/shenikar/outage_reporting_system/internal/geocode"
	v1 "github.com/shenikar/outage_reporting_system/internal/handler/http/v1"
	"github.com/shenikar/outage_reporting_system/internal/observability"
	"github.com/shenikar/outage_reporting_system/internal/repository"
	"github.com/shenikar/outage_reporting_system/internal/service"
	"github.com/shenikar/outage_reporting_system/internal/webhook"
	"github.com/shenikar/outage_reporting_system/pkg/logger"
	mongoclient "github.com/shenikar/outage_reporting_system/pkg/mongo"
	"github.com/shenikar/outage_reporting_system/pkg/postgres"
	redisclient "github.com/shenikar/outage_reporting_system/pkg/redis"
	"github.com/sirupsen/logrus"

	_ "github.com/shenikar/outage_reporting_system/docs"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// @title Outage Reporting System API
// @version 1.0
// @description Outage reports (electricity, water, gas) with proximity search.
// @host localhost:8080
// @BasePath /api/v1
// @securityDefinitions.apikey ApiKeyAuth
// @in header
// @name X-API-Key
func runMigrations(cfg *config.Config, log *logrus.Logger) error {
	log.Info("Running database migrations...")

	migrationURL := cfg.DatabaseURL
	if !strings.HasPrefix(migrationURL, "pgx5://") {
		migrationURL = strings.Replace(migrationURL, "postgres://", "pgx5://", 1)
	}

	m, err := migrate.New(
		"file://migrations",
		migrationURL,
	)
	if err != nil {
		return fmt.Errorf("could not create migrate instance: %w", err)
	}
	defer m.Close()

	if err := m.Up(); err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return fmt.Errorf("failed to run migrations: %w", err)
	}

	log.Info("Database migrations applied successfully")
	return nil
}

// newOutageRepository выбирает хранилище по STORAGE_DRIVER.
// Возвращаемая функция закрывает соединения.
func newOutageRepository(ctx context.Context, cfg *config.Config, log *logrus.Logger) (service.OutageRepository, func(), error) {
	switch cfg.StorageDriver {
	case config.StorageDriverPostgres:
		if err := runMigrations(cfg, log); err != nil {
			return nil, nil, err
		}
		dbpool, err := postgres.NewPostgresDB(ctx, cfg)
		if err != nil {
			return nil, nil, err
		}
		log.Info("Successfully connected to PostgreSQL")
		return repository.NewOutageRepository(dbpool), dbpool.Close, nil

	case config.StorageDriverMongo:
		client, err := mongoclient.NewMongoClient(ctx, cfg.MongoURI)
		if err != nil {
			return nil, nil, err
		}
		collection := client.Database(cfg.MongoDatabase).Collection(cfg.MongoCollection)
		if err := repository.EnsureOutageIndexes(ctx, collection); err != nil {
			log.WithError(err).Warn("Failed to ensure MongoDB indexes")
		}
		log.Info("Successfully connected to MongoDB")
		closeFn := func() {
			disconnectCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer cancel()
			_ = client.Disconnect(disconnectCtx)
		}
		return repository.NewMongoOutageRepository(collection, clockwork.NewRealClock()), closeFn, nil

	default:
		log.Warn("Using in-memory storage, reports are lost on restart")
		return repository.NewMemoryOutageRepository(clockwork.NewRealClock()), func() {}, nil
	}
}

func main() {
	// Загрузка конфигурации
	cfg, err := config.LoadConfig()
	if err != nil {
		logrus.Fatalf("Failed to load config: %v", err)
	}

	// Инициализация логгера
	log := logger.New(cfg.LogLevel)
	metrics := observability.NewMetrics()

	// Контекст для graceful shutdown
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	outageRepo, closeRepo, err := newOutageRepository(ctx, cfg, log)
	if err != nil {
		log.Fatalf("Failed to initialize %s storage: %v", cfg.StorageDriver, err)
	}
	defer closeRepo()

	// Redis опционален: без него нет кеша и вебхуков
	var (
		outageCache      service.OutageCache
		webhookPublisher webhook.WebhookPublisher
		redisClient      *goredis.Client
	)
	if cfg.RedisAddr != "" {
		redisClient, err = redisclient.NewRedisClient(ctx, cfg.RedisAddr, cfg.RedisPass, cfg.RedisDB)
		if err != nil {
			log.Fatalf("Failed to connect to Redis: %v", err)
		}
		defer redisClient.Close()
		log.Info("Successfully connected to Redis")

		outageCache = repository.NewOutageCache(redisClient, cfg.CacheTTL)
		webhookPublisher = webhook.NewRedisWebhookPublisher(redisClient)

		// Инициализация и запуск воркера вебхуков
		webhookWorker := webhook.NewWebhookWorker(redisClient, log, cfg)
		webhookWorker.Start(ctx)
	}

	var geocoder service.Geocoder
	if cfg.MapboxToken != "" {
		geocoder = geocode.NewMapboxClient(cfg.MapboxToken, cfg.MapboxTimeout, log)
	}

	// Инициализация сервисов
	outageService := service.NewOutageService(outageRepo, outageCache, geocoder, webhookPublisher, metrics, log, cfg)

	// Инициализация хэндлеров
	handler := v1.NewHandler(outageService, log, cfg)

	// Настройка Gin роутера
	router := gin.Default()
	api := router.Group("/api/v1")
	handler.RegisterRoutes(api)

	router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	// Добавление маршрута для Swagger UI
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// Запуск HTTP-сервера
	serverAddr := fmt.Sprintf(":%s", cfg.HTTPPort)

	srv := &http.Server{
		Addr:              serverAddr,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	// Запуск сервера в горутине
	go func() {
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("Error starting HTTP server: %v", err)
		}
	}()
	log.Infof("HTTP server started on port %s", cfg.HTTPPort)

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Info("Received shutdown signal, shutting down server...")
	cancel()

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer shutdownCancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Errorf("Server forced to shutdown: %v", err)
	}

	log.Info("Server gracefully stopped")
}
