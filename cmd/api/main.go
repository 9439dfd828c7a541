package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	httptransport "github.com/mitrokit/ventures-api/internal/api/http"
	"github.com/mitrokit/ventures-api/internal/api/http/handlers"
	"github.com/mitrokit/ventures-api/internal/auth"
	"github.com/mitrokit/ventures-api/internal/config"
	"github.com/mitrokit/ventures-api/internal/events"
	"github.com/mitrokit/ventures-api/internal/github"
	"github.com/mitrokit/ventures-api/internal/observability"
	"github.com/mitrokit/ventures-api/internal/persistence"
	"github.com/mitrokit/ventures-api/internal/ratelimit"
	"github.com/mitrokit/ventures-api/internal/repository"
	"github.com/mitrokit/ventures-api/internal/service"
	"github.com/mitrokit/ventures-api/internal/worker"
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

	if cfg.Auth.JWTSecret == config.DevJWTSecret {
		logger.Warn("AUTH_JWT_SECRET not set; using insecure development secret")
	}

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

	// Store selection happens once here, never per-request.
	var (
		userRepo       repository.UserRepository
		messageRepo    repository.MessageRepository
		subscriberRepo repository.SubscriberRepository
	)
	if pool := pg.PoolHandle(); pool != nil {
		userRepo = repository.NewUserRepository(pool)
		messageRepo = repository.NewMessageRepository(pool)
		subscriberRepo = repository.NewSubscriberRepository(pool)
	} else {
		seed, err := repository.DemoUsers(cfg.Auth.BcryptCost)
		if err != nil {
			logger.Fatal("failed to seed demo users", zap.Error(err))
		}
		userRepo = repository.NewMemoryUserRepository(seed)
		messageRepo = repository.NewMemoryMessageRepository()
		subscriberRepo = repository.NewMemorySubscriberRepository()
	}

	var limiter ratelimit.Limiter
	if redis.Client != nil {
		limiter = ratelimit.NewRedisLimiter(redis.Client, cfg.RateLimit.Limit, cfg.RateLimit.Window())
	} else {
		limiter = ratelimit.NewMemoryLimiter(cfg.RateLimit.Limit, cfg.RateLimit.Window())
	}

	dispatcher := events.NewInMemoryDispatcher()
	notificationService := service.NewNotificationService(dispatcher, logger, cfg.Notification)
	worker.StartNotificationWorker(notificationService)

	authService := service.NewAuthService(cfg.Auth, userRepo, dispatcher)
	contactService := service.NewContactService(messageRepo, limiter, dispatcher)
	subscribeService := service.NewSubscribeService(subscriberRepo, limiter, dispatcher)
	githubClient := github.NewClient(cfg.GitHub)

	authenticator := auth.NewAuthenticator(authService.TokenManager(), cfg.Auth.CookieName)
	gate := auth.NewRouteGate(authService.TokenManager(), cfg.Auth.CookieName,
		httptransport.PublicPrefixes, httptransport.ProtectedPrefixes)

	metrics := observability.NewMetrics()

	app := fiber.New()
	httptransport.RegisterMiddlewares(app, logger, metrics, cfg.App.RequestTimeout())

	httptransport.RegisterRoutes(app, httptransport.RouteConfig{
		Health:        handlers.NewHealthHandler(cfg.App.Name, cfg.App.Version, pg, redis),
		Auth:          handlers.NewAuthHandler(authService, cfg.Auth.CookieName, cfg.App.IsProduction()),
		Contact:       handlers.NewContactHandler(contactService),
		Subscribe:     handlers.NewSubscribeHandler(subscribeService),
		Repos:         handlers.NewReposHandler(githubClient),
		Admin:         handlers.NewAdminHandler(messageRepo, subscriberRepo, metrics),
		Gate:          gate,
		Authenticator: authenticator,
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
