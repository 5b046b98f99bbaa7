package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"github.com/pulsewatch/pulsewatch/internal/accounts"
	"github.com/pulsewatch/pulsewatch/internal/app"
	"github.com/pulsewatch/pulsewatch/internal/auth"
	"github.com/pulsewatch/pulsewatch/internal/graph"
	"github.com/pulsewatch/pulsewatch/internal/observability"
	"github.com/pulsewatch/pulsewatch/internal/platform/db"
	"github.com/pulsewatch/pulsewatch/internal/telemetry"
)

func main() {
	if app.InTestMode() {
		slog.Default().Info("test mode detected, skipping runtime startup")
		return
	}

	// A local .env file fills in anything the environment does not
	// already provide.
	_ = godotenv.Load()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	cfg, err := app.LoadConfig()
	if err != nil {
		slog.Default().Error("load config", slog.Any("error", err))
		os.Exit(1)
	}

	logger := app.NewLogger(cfg)

	// The gateway does not serve requests until the store is reachable.
	client, err := db.New(ctx, db.URI(cfg.MongoHost, cfg.MongoUser, cfg.MongoPassword, cfg.MongoDB))
	if err != nil {
		logger.Error("connect mongodb", slog.Any("error", err))
		os.Exit(1)
	}
	defer func() {
		if err := client.Disconnect(context.Background()); err != nil {
			logger.Warn("mongodb disconnect", slog.Any("error", err))
		}
	}()

	database := client.Database(cfg.MongoDB)

	telemetryRepo := telemetry.NewRepository(database)
	telemetryService := telemetry.NewService(telemetryRepo)

	accountsRepo := accounts.NewRepository(database)
	if err := accountsRepo.EnsureIndexes(ctx); err != nil {
		logger.Error("ensure indexes", slog.Any("error", err))
		os.Exit(1)
	}

	issuer := auth.NewIssuer([]byte(cfg.JWTSecret), cfg.TokenTTL)
	accountsService := accounts.NewService(accountsRepo, issuer)

	schema, err := graph.NewSchema(&graph.Resolver{
		Logger:    logger,
		Telemetry: telemetryService,
		Accounts:  accountsService,
	})
	if err != nil {
		logger.Error("build schema", slog.Any("error", err))
		os.Exit(1)
	}

	metrics := observability.NewMetrics()

	router := app.NewRouter(app.RouterParams{
		Logger:         logger,
		Config:         cfg,
		GraphQLHandler: graph.NewHandler(schema),
		MongoClient:    client,
		Metrics:        metrics,
	})

	server := &http.Server{
		Addr:         cfg.AppAddr,
		Handler:      router,
		ReadTimeout:  cfg.AppReadTimeout,
		WriteTimeout: cfg.AppWriteTimeout,
	}

	go func() {
		logger.Info("starting http server", slog.String("addr", cfg.AppAddr))
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Error("http server", slog.Any("error", err))
			stop()
		}
	}()

	<-ctx.Done()
	logger.Info("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		logger.Error("graceful shutdown", slog.Any("error", err))
	}
}
