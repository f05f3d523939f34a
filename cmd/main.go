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
	"github.com/redis/go-redis/v9"

	"github.com/shenikar/safeguard_backend/internal/app"
	"github.com/shenikar/safeguard_backend/internal/config"
	"github.com/shenikar/safeguard_backend/internal/directions"
	"github.com/shenikar/safeguard_backend/internal/repository"
	"github.com/shenikar/safeguard_backend/internal/webhook"
	"github.com/shenikar/safeguard_backend/pkg/logger"
	"github.com/shenikar/safeguard_backend/pkg/mongodb"
	"github.com/shenikar/safeguard_backend/pkg/postgres"
	redisclient "github.com/shenikar/safeguard_backend/pkg/redis"
	"github.com/sirupsen/logrus"
)

// @title SafeGuard API
// @version 1.0
// @description Personal safety demo backend: detection, risk maps, route tracking and SOS alerts.
// @host localhost:8080
// @BasePath /api
// @securityDefinitions.apikey ApiKeyAuth
// @in header
// @name X-API-Key
func runMigrations(cfg *config.Config, log *logrus.Logger) error {
	log.Info("Running database migrations...")

	migrationURL := cfg.DatabaseURL
	if !strings.HasPrefix(migrationURL, "pgx5://") {
		migrationURL = strings.Replace(migrationURL, "postgres://", "pgx5://", 1)
	}

	m, err := migrate.New(cfg.MigrationsPath, migrationURL)
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

// openRepositories подключает хранилище документов выбранного драйвера.
// Возвращаемая функция закрывает соединение.
func openRepositories(ctx context.Context, cfg *config.Config, log *logrus.Logger) (repository.Repositories, func(), error) {
	switch cfg.StoreDriver {
	case config.StoreDriverPostgres:
		if err := runMigrations(cfg, log); err != nil {
			return repository.Repositories{}, nil, err
		}
		dbpool, err := postgres.NewPostgresDB(ctx, cfg.DatabaseURL)
		if err != nil {
			return repository.Repositories{}, nil, err
		}
		log.Info("Successfully connected to PostgreSQL")
		return repository.NewPostgresRepositories(dbpool), dbpool.Close, nil

	case config.StoreDriverMongo:
		client, err := mongodb.NewMongoClient(ctx, cfg.MongoURI)
		if err != nil {
			return repository.Repositories{}, nil, err
		}
		repos, err := repository.NewMongoRepositories(ctx, client.Database(cfg.MongoDatabase))
		if err != nil {
			_ = client.Disconnect(context.Background())
			return repository.Repositories{}, nil, err
		}
		log.Info("Successfully connected to MongoDB")
		return repos, func() { _ = client.Disconnect(context.Background()) }, nil

	default:
		log.Warn("Using in-memory storage, data is lost on restart")
		return repository.NewMemoryRepositories(), func() {}, nil
	}
}

func main() {
	// Загрузка конфигурации
	cfg, err := config.LoadConfig()
	if err != nil {
		logrus.Fatalf("Failed to load config: %v", err)
	}

	// Инициализация логгера
	log := logger.New(cfg.LogLevel, logger.WithAppName("safeguard"))

	// Контекст для graceful shutdown
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Хранилище документов
	repos, closeStore, err := openRepositories(ctx, cfg, log)
	if err != nil {
		log.Fatalf("Failed to open %s store: %v", cfg.StoreDriver, err)
	}
	defer closeStore()

	deps := app.Deps{Repos: repos}

	// Redis: кеш маршрутов и очередь уведомлений. В memory-режиме не нужен.
	if cfg.StoreDriver == config.StoreDriverMemory {
		deps.Publisher = webhook.NewLogPublisher(log)
	} else {
		var redisClient *redis.Client
		redisClient, err = redisclient.NewRedisClient(ctx, redisclient.Config{
			Addr:     cfg.RedisAddr,
			Password: cfg.RedisPass,
			DB:       cfg.RedisDB,
			PoolSize: cfg.RedisPoolSize,
		})
		if err != nil {
			log.Fatalf("Failed to connect to Redis: %v", err)
		}
		defer redisClient.Close()
		log.Info("Successfully connected to Redis")

		deps.Cache = repository.NewRouteCache(redisClient, cfg.RouteCacheTTL)
		deps.Publisher = webhook.NewRedisPublisher(redisClient)

		// Инициализация и запуск воркера уведомлений
		webhook.NewWorker(redisClient, log, cfg).Start(ctx)
	}

	// Навигатор для безопасных маршрутов
	if cfg.MapsAPIKey != "" {
		planner, err := directions.NewGooglePlanner(cfg.MapsAPIKey, log)
		if err != nil {
			log.Fatalf("Failed to create directions client: %v", err)
		}
		deps.Planner = planner
	}

	if strings.EqualFold(cfg.LogLevel, "debug") {
		gin.SetMode(gin.DebugMode)
	} else {
		gin.SetMode(gin.ReleaseMode)
	}

	services := app.NewServices(deps, cfg, log)
	router := app.NewRouter(services, cfg, log)

	// Запуск HTTP-сервера
	serverAddr := fmt.Sprintf(":%s", cfg.HTTPPort)

	srv := &http.Server{
		Addr:    serverAddr,
		Handler: router,
	}

	// Запуск сервера в горутине
	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
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
		log.Fatalf("Server forced to shutdown: %v", err)
	}

	log.Info("Server gracefully stopped")
}
