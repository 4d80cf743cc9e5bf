package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	httptransport "github.com/spec-kit/campus-alert-service/internal/api/http"
	"github.com/spec-kit/campus-alert-service/internal/api/http/handlers"
	"github.com/spec-kit/campus-alert-service/internal/auth"
	"github.com/spec-kit/campus-alert-service/internal/config"
	"github.com/spec-kit/campus-alert-service/internal/events"
	"github.com/spec-kit/campus-alert-service/internal/observability"
	"github.com/spec-kit/campus-alert-service/internal/persistence"
	"github.com/spec-kit/campus-alert-service/internal/repository"
	"github.com/spec-kit/campus-alert-service/internal/service"
	"github.com/spec-kit/campus-alert-service/internal/worker"
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
	accountRepo := repository.NewAccountRepository(pool)
	notificationRepo := repository.NewNotificationRepository(pool)
	resetRepo := repository.NewPasswordResetRepository(pool)

	dispatcher := events.NewInMemoryDispatcher()

	authService := service.NewAuthService(*cfg, service.AuthDependencies{
		AccountRepo:       accountRepo,
		PasswordResetRepo: resetRepo,
	})
	accountService := service.NewAccountService(accountRepo, dispatcher, logger, cfg.Auth.BcryptCost)
	broadcastService := service.NewBroadcastService(service.BroadcastDependencies{
		AccountRepo:      accountRepo,
		NotificationRepo: notificationRepo,
		Guard:            redis,
		Dispatcher:       dispatcher,
		Logger:           logger,
		Cooldown:         cfg.Broadcast.Cooldown(),
	})
	statsService := service.NewStatsService(accountRepo, notificationRepo, cfg.Stats.Location())
	feedService := service.NewFeedService(notificationRepo)

	deliveryService := service.NewDeliveryService(dispatcher, logger, cfg.Broadcast)
	worker.StartDeliveryWorker(deliveryService)

	authMiddleware := auth.NewAuthMiddleware(authService.TokenManager(), accountRepo)

	app := fiber.New()
	metrics := observability.NewMetrics()
	httptransport.RegisterMiddlewares(app, logger, metrics, cfg.App.RequestTimeout())

	httptransport.RegisterRoutes(app, httptransport.RouteConfig{
		Health:         handlers.NewHealthHandler(cfg.App.Name, cfg.App.Version, pg, redis),
		Accounts:       handlers.NewAccountsHandler(authService, accountService),
		Notifications:  handlers.NewNotificationsHandler(feedService),
		Evacuation:     handlers.NewEvacuationHandler(broadcastService),
		Stats:          handlers.NewStatsHandler(statsService),
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
