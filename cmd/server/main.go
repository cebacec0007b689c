// Package main is the entry point for the flight fare service.
//
//	@title						Flight Fare API
//	@version					1.0.0
//	@description				A flight fare backend that syncs an airport reference table from a third-party flights API and serves priced itinerary searches with distance-based metadata.
//
//	@contact.name				API Support
//	@contact.url				https://github.com/skyfare/flight-fare-service/issues
//
//	@license.name				MIT
//	@license.url				https://opensource.org/licenses/MIT
//
//	@host						localhost:8001
//
//	@schemes					http https
//
//	@securityDefinitions.basic	BasicAuth
package main

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/labstack/echo/v4"
	"github.com/pressly/goose/v3"
	echoSwagger "github.com/swaggo/echo-swagger"

	// Import generated docs for swagger
	_ "github.com/skyfare/flight-fare-service/docs"

	// The pgx stdlib driver backs the migration runner.
	_ "github.com/jackc/pgx/v5/stdlib"

	farehttp "github.com/skyfare/flight-fare-service/internal/adapter/http"
	"github.com/skyfare/flight-fare-service/internal/adapter/http/middleware"
	"github.com/skyfare/flight-fare-service/internal/adapter/provider/flightsapi"
	"github.com/skyfare/flight-fare-service/internal/adapter/store/postgres"
	"github.com/skyfare/flight-fare-service/internal/config"
	"github.com/skyfare/flight-fare-service/internal/infrastructure/logger"
	"github.com/skyfare/flight-fare-service/internal/infrastructure/timeutil"
	"github.com/skyfare/flight-fare-service/internal/usecase"
	"github.com/skyfare/flight-fare-service/migrations"
)

const shutdownTimeout = 10 * time.Second

func main() {
	cfg := config.MustLoad()

	logger.Init(logger.Config{
		Level:       cfg.Logging.Level,
		Format:      cfg.Logging.Format,
		ServiceName: "flight-fare",
	})

	logger.Info().
		Str("env", cfg.App.Env).
		Int("port", cfg.Server.Port).
		Str("timezone", cfg.App.Timezone).
		Msg("Configuration loaded")

	ctx := context.Background()

	if err := runMigrations(ctx, cfg.Database.DSN()); err != nil {
		logger.Fatal().Err(err).Msg("Failed to run database migrations")
	}

	pool, err := pgxpool.New(ctx, cfg.Database.DSN())
	if err != nil {
		logger.Fatal().Err(err).Msg("Failed to create database pool")
	}
	defer pool.Close()

	if err := pool.Ping(ctx); err != nil {
		logger.Fatal().Err(err).Msg("Failed to reach database")
	}

	// Application layers
	store := postgres.NewAirportStore(pool)
	provider := flightsapi.New(flightsapi.Config{
		BaseURL:  cfg.Upstream.BaseURL,
		APIKey:   cfg.Upstream.APIKey,
		Username: cfg.Upstream.Username,
		Password: cfg.Upstream.Password,
		Timeout:  cfg.Upstream.Timeout,
	})

	airportUseCase := usecase.NewAirportUseCase(store, provider)
	searchUseCase := usecase.NewSearchUseCase(
		store,
		provider,
		cfg.Pricing.MinFeeTax,
		cfg.Search.MaxCombinations,
		timeutil.NewRealClock(),
		timeutil.MustGetLocation(cfg.App.Timezone),
	)
	handler := farehttp.NewHandler(airportUseCase, searchUseCase)

	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.Server.ReadTimeout = cfg.Server.ReadTimeout
	e.Server.WriteTimeout = cfg.Server.WriteTimeout

	middleware.Setup(e, logger.Global.Logger)
	farehttp.RegisterRoutes(e, handler,
		middleware.BasicAuth(cfg.Auth.Username, cfg.Auth.Password))

	// Swagger documentation endpoint
	e.GET("/swagger/*", echoSwagger.WrapHandler)

	addr := fmt.Sprintf(":%d", cfg.Server.Port)
	go func() {
		logger.Info().Str("address", addr).Msg("Starting server")
		if err := e.Start(addr); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Fatal().Err(err).Msg("Failed to start server")
		}
	}()

	gracefulShutdown(e)
}

// runMigrations applies any pending schema migrations before the pool is
// opened, so the server never serves against an out-of-date schema.
func runMigrations(ctx context.Context, dsn string) error {
	db, err := sql.Open("pgx", dsn)
	if err != nil {
		return fmt.Errorf("open migration connection: %w", err)
	}
	defer db.Close()

	provider, err := goose.NewProvider(goose.DialectPostgres, db, migrations.FS)
	if err != nil {
		return fmt.Errorf("create migration provider: %w", err)
	}

	results, err := provider.Up(ctx)
	if err != nil {
		return fmt.Errorf("apply migrations: %w", err)
	}
	for _, r := range results {
		logger.Info().
			Str("migration", r.Source.Path).
			Msg("Applied database migration")
	}
	return nil
}

// gracefulShutdown blocks until an interrupt signal arrives, then drains
// in-flight requests before exiting.
func gracefulShutdown(e *echo.Echo) {
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)

	<-quit
	logger.Info().Msg("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := e.Shutdown(ctx); err != nil {
		logger.Error().Err(err).Msg("Error during server shutdown")
	}

	logger.Info().Msg("Server stopped")
}
