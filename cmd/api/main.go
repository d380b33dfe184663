package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	httptransport "github.com/spec-kit/commerce-api/internal/api/http"
	"github.com/spec-kit/commerce-api/internal/api/http/handlers"
	"github.com/spec-kit/commerce-api/internal/auth"
	"github.com/spec-kit/commerce-api/internal/config"
	"github.com/spec-kit/commerce-api/internal/events"
	"github.com/spec-kit/commerce-api/internal/observability"
	"github.com/spec-kit/commerce-api/internal/persistence"
	"github.com/spec-kit/commerce-api/internal/repository"
	"github.com/spec-kit/commerce-api/internal/service"
	"github.com/spec-kit/commerce-api/internal/worker"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	logger, err := observability.NewLogger(cfg.Logger)
	if err != nil {
		log.Fatalf("failed to init logger: %v", err)
	}
	defer logger.Sync() //nolint:errcheck

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	pg, err := persistence.NewPostgres(ctx, cfg.Postgres, logger)
	if err != nil {
		logger.Fatal("failed to connect postgres", zap.Error(err))
	}
	defer pg.Close()

	if cfg.Postgres.RunMigrations {
		if err := persistence.RunMigrations(ctx, pg.PoolHandle(), logger); err != nil {
			logger.Fatal("failed to run migrations", zap.Error(err))
		}
	}

	redis := persistence.NewRedis(cfg.Redis, logger)
	defer redis.Close()

	pool := pg.PoolHandle()
	customerRepo := repository.NewCustomerRepository(pool)
	if cfg.Cache.Enabled {
		customerRepo = repository.NewCachedCustomerRepository(customerRepo, redis.Client, cfg.Cache.TTL())
	}
	userRepo := repository.NewUserRepository(pool)

	dispatcher := events.NewInMemoryDispatcher()
	worker.StartAuditWorker(dispatcher, logger)

	tokens := auth.NewTokenManager(cfg.Auth.JWTSecret, cfg.Auth.Issuer, cfg.Auth.Audience, cfg.Auth.AccessTokenTTL())
	authMiddleware := auth.NewMiddleware(tokens)

	credentialService := service.NewCredentialService(userRepo, tokens, logger)
	customerService := service.NewCustomerService(customerRepo, dispatcher, logger)
	userService := service.NewUserService(userRepo, cfg.Auth.BcryptCost, dispatcher, logger)

	metrics := observability.NewMetrics()

	app := fiber.New(fiber.Config{AppName: cfg.App.Name})
	httptransport.RegisterMiddlewares(app, logger, metrics, cfg.App.RequestTimeout(), cfg.App.CORSAllowOrigins)

	httptransport.RegisterRoutes(app, httptransport.RouteConfig{
		Health:         handlers.NewHealthHandler(cfg.App.Name, cfg.App.Version, pg, redis),
		Auth:           handlers.NewAuthHandler(credentialService),
		Customers:      handlers.NewCrudHandler(customerService, "customerId"),
		Users:          handlers.NewCrudHandler(userService, "userId"),
		AuthMiddleware: authMiddleware,
	})

	go func() {
		if err := app.Listen(cfg.App.Addr()); err != nil {
			logger.Fatal("fiber listen", zap.Error(err))
		}
	}()

	waitForShutdown(logger)

	_ = app.Shutdown()
}

func waitForShutdown(logger *zap.Logger) {
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)

	sig := <-sigCh
	logger.Info("shutting down", zap.String("signal", sig.String()))
}
