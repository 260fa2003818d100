package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/aorbo/booking-api/internal/config"
	"github.com/aorbo/booking-api/internal/handler"
	homevisitHandler "github.com/aorbo/booking-api/internal/handler/homevisit"
	providerHandler "github.com/aorbo/booking-api/internal/handler/provider"
	schedulingHandler "github.com/aorbo/booking-api/internal/handler/scheduling"
	"github.com/aorbo/booking-api/internal/middleware"
	"github.com/aorbo/booking-api/internal/repository/postgres"
	"github.com/aorbo/booking-api/internal/router"
	eventService "github.com/aorbo/booking-api/internal/service/event"
	homevisitService "github.com/aorbo/booking-api/internal/service/homevisit"
	providerService "github.com/aorbo/booking-api/internal/service/provider"
	schedulingService "github.com/aorbo/booking-api/internal/service/scheduling"
	"github.com/aorbo/booking-api/pkg/logger"
	"github.com/aorbo/booking-api/pkg/metrics"
)

func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("failed to load configuration")
	}

	level, err := zerolog.ParseLevel(cfg.Logger.Level)
	if err != nil {
		level = zerolog.InfoLevel
	}
	appLogger := logger.NewLogger(&logger.Config{
		Level:      level,
		TimeFormat: time.RFC3339,
		Output:     os.Stdout,
	})

	db, err := postgres.NewDB(cfg.Database)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to connect to database")
	}
	defer db.Close()

	providerRepo := postgres.NewProviderRepository(db)
	bookingRepo := postgres.NewBookingRepository(db)
	homeVisitRepo := postgres.NewHomeVisitRepository(db)
	outboxRepo := postgres.NewOutboxRepository(db)

	m := metrics.NewMetrics(cfg.Metrics.Namespace)

	providerSvc := providerService.NewService(providerRepo)
	eventSvc := eventService.NewService(outboxRepo)
	schedulingSvc := schedulingService.NewService(providerSvc, bookingRepo, eventSvc, m, appLogger)
	homeVisitSvc := homevisitService.NewService(homeVisitRepo)

	h := handler.NewHandler()
	schedulingH := schedulingHandler.NewHandler(schedulingSvc)
	providerH := providerHandler.NewHandler(providerSvc)
	homeVisitH := homevisitHandler.NewHandler(homeVisitSvc)

	r := router.NewRouter(schedulingH, providerH, homeVisitH, h, router.Config{
		RateLimitRPS:  cfg.Server.RateLimitRPS,
		RateBurst:     cfg.Server.RateBurst,
		Timeout:       time.Duration(cfg.Server.TimeoutSeconds) * time.Second,
		CORSConfig:    middleware.DefaultCORSConfig(),
		MetricsPrefix: "http",
	})
	r.Setup()

	srv := &http.Server{
		Addr:    fmt.Sprintf(":%d", cfg.Server.Port),
		Handler: r.Engine(),
	}

	go func() {
		appLogger.Info("Starting server", "port", cfg.Server.Port)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal().Err(err).Msg("failed to start server")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	appLogger.Info("Shutting down server")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.Fatal().Err(err).Msg("server forced to shutdown")
	}

	appLogger.Info("Server exited properly")
}
