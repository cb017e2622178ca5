package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"go.uber.org/multierr"

	"github.com/haneulsoft/weddingmoa-backend/api/controllers"
	"github.com/haneulsoft/weddingmoa-backend/api/routes"
	internalauth "github.com/haneulsoft/weddingmoa-backend/internal/auth"
	"github.com/haneulsoft/weddingmoa-backend/internal/catalog"
	"github.com/haneulsoft/weddingmoa-backend/internal/favorites"
	"github.com/haneulsoft/weddingmoa-backend/internal/invites"
	"github.com/haneulsoft/weddingmoa-backend/internal/registration"
	"github.com/haneulsoft/weddingmoa-backend/internal/reviews"
	"github.com/haneulsoft/weddingmoa-backend/internal/simulator"
	"github.com/haneulsoft/weddingmoa-backend/internal/users"
	"github.com/haneulsoft/weddingmoa-backend/pkg/auth/session"
	"github.com/haneulsoft/weddingmoa-backend/pkg/config"
	"github.com/haneulsoft/weddingmoa-backend/pkg/db"
	"github.com/haneulsoft/weddingmoa-backend/pkg/logger"
	"github.com/haneulsoft/weddingmoa-backend/pkg/metrics"
	"github.com/haneulsoft/weddingmoa-backend/pkg/migrate"
	"github.com/haneulsoft/weddingmoa-backend/pkg/redis"
)

const shutdownTimeout = 15 * time.Second

func main() {
	logg := logger.New(logger.Options{ServiceName: "api"})

	if err := godotenv.Load(); err != nil {
		logg.Warn(context.Background(), ".env file not found, relying on environment")
	}

	cfg, err := config.Load()
	if err != nil {
		logg.Error(context.Background(), "failed to load config", err)
		os.Exit(1)
	}

	logg = logger.New(logger.Options{
		ServiceName: "api",
		Level:       logger.ParseLevel(cfg.App.LogLevel),
		WarnStack:   cfg.App.LogWarnStack,
	})

	if err := run(cfg, logg); err != nil {
		logg.Error(context.Background(), "api exited with error", err)
		os.Exit(1)
	}
}

func run(cfg *config.Config, logg *logger.Logger) (err error) {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	dbClient, dbErr := db.New(ctx, cfg.DB, logg)
	if dbErr != nil {
		return dbErr
	}
	defer func() {
		err = multierr.Append(err, dbClient.Close())
	}()

	if migrateErr := migrate.MaybeRunDev(ctx, cfg, logg, dbClient); migrateErr != nil {
		return migrateErr
	}

	redisClient, redisErr := redis.New(ctx, cfg.Redis, logg)
	if redisErr != nil {
		return redisErr
	}
	defer func() {
		err = multierr.Append(err, redisClient.Close())
	}()

	sessionManager, smErr := session.NewManager(redisClient, cfg.JWT)
	if smErr != nil {
		return smErr
	}

	gormDB := dbClient.DB()

	catalogService, svcErr := catalog.NewService(
		catalog.NewRepository(gormDB),
		reviews.NewRepository(gormDB),
		logg,
	)
	if svcErr != nil {
		return svcErr
	}

	inviteService, svcErr := invites.NewService(invites.NewRepository(gormDB), cfg.App, cfg.Invite)
	if svcErr != nil {
		return svcErr
	}

	registrationService, svcErr := registration.NewService(registration.ServiceParams{
		TxRunner:       dbClient,
		PasswordConfig: cfg.Password,
	})
	if svcErr != nil {
		return svcErr
	}

	authService, svcErr := internalauth.NewService(internalauth.ServiceParams{
		UserRepo:       users.NewRepository(gormDB),
		SessionManager: sessionManager,
		JWTConfig:      cfg.JWT,
	})
	if svcErr != nil {
		return svcErr
	}

	favoritesService, svcErr := favorites.NewService(favorites.NewRepository(gormDB))
	if svcErr != nil {
		return svcErr
	}

	blobStore, storeErr := simulator.NewDiskStore(cfg.Media.UploadDir)
	if storeErr != nil {
		return storeErr
	}
	simulatorService, svcErr := simulator.NewService(simulator.NewRepository(gormDB), blobStore, cfg.Media)
	if svcErr != nil {
		return svcErr
	}

	registry := prometheus.NewRegistry()
	registry.MustRegister(collectors.NewGoCollector())
	httpMetrics := metrics.NewHTTPMetrics(registry)

	handler := routes.New(routes.Deps{
		Config:      cfg,
		Logger:      logg,
		Redis:       redisClient,
		Sessions:    sessionManager,
		Metrics:     httpMetrics,
		Registry:    registry,
		Health:      controllers.NewHealthController(dbClient, redisClient, logg),
		Vendors:     controllers.NewVendorsController(catalogService, logg),
		Invites:     controllers.NewInvitesController(inviteService, logg),
		Register:    controllers.NewRegisterController(registrationService, logg),
		Auth:        controllers.NewAuthController(authService, logg),
		Favorites:   controllers.NewFavoritesController(favoritesService, logg),
		Simulations: controllers.NewSimulationsController(simulatorService, logg),
	})

	port := os.Getenv("PORT")
	if port == "" {
		port = cfg.App.Port
	}
	addr := ":" + port

	server := &http.Server{
		Addr:              addr,
		Handler:           handler,
		ReadHeaderTimeout: 10 * time.Second,
	}

	serveErr := make(chan error, 1)
	go func() {
		startCtx := logg.WithFields(context.Background(), map[string]any{
			"env":  cfg.App.Env,
			"addr": addr,
		})
		logg.Info(startCtx, "starting api server")
		serveErr <- server.ListenAndServe()
	}()

	select {
	case <-ctx.Done():
		logg.Info(context.Background(), "shutdown signal received")
	case listenErr := <-serveErr:
		if listenErr != nil && !errors.Is(listenErr, http.ErrServerClosed) {
			return listenErr
		}
		return nil
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if shutdownErr := server.Shutdown(shutdownCtx); shutdownErr != nil {
		err = multierr.Append(err, shutdownErr)
	}
	return err
}
