package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	httptransport "github.com/spec-kit/myflix-service/internal/api/http"
	"github.com/spec-kit/myflix-service/internal/api/http/handlers"
	"github.com/spec-kit/myflix-service/internal/auth"
	"github.com/spec-kit/myflix-service/internal/config"
	"github.com/spec-kit/myflix-service/internal/events"
	"github.com/spec-kit/myflix-service/internal/observability"
	"github.com/spec-kit/myflix-service/internal/persistence"
	"github.com/spec-kit/myflix-service/internal/ratelimit"
	"github.com/spec-kit/myflix-service/internal/repository"
	"github.com/spec-kit/myflix-service/internal/service"
	"github.com/spec-kit/myflix-service/internal/worker"
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
	userRepo := repository.NewUserRepository(pool)
	movieRepo := repository.NewMovieRepository(pool)

	dispatcher := events.NewInMemoryDispatcher()
	notificationService := service.NewNotificationService(dispatcher, logger, cfg.Notification)
	worker.StartNotificationWorker(notificationService)

	authService := service.NewAuthService(cfg.Auth, userRepo, dispatcher)
	userService := service.NewUserService(userRepo, movieRepo, dispatcher, cfg.Auth.BcryptCost)
	movieService := service.NewMovieService(movieRepo)

	authMiddleware := auth.NewAuthMiddleware(authService.TokenManager(), userRepo)
	loginLimiter := ratelimit.NewLoginLimiter(redis, cfg.Auth.LoginAttemptLimit, cfg.Auth.LoginWindow(), logger)

	metrics := observability.NewMetrics()

	app := fiber.New()
	httptransport.RegisterMiddlewares(app, logger, metrics, cfg.App.RequestTimeout())

	healthHandler := handlers.NewHealthHandler(cfg.App.Name, cfg.App.Version, pg, redis)
	authHandler := handlers.NewAuthHandler(authService, loginLimiter, logger)
	usersHandler := handlers.NewUsersHandler(authService, userService)
	moviesHandler := handlers.NewMoviesHandler(movieService)

	httptransport.RegisterRoutes(app, httptransport.RouteConfig{
		Health:         healthHandler,
		Auth:           authHandler,
		Users:          usersHandler,
		Movies:         moviesHandler,
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
