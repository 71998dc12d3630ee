package cmd

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"time"

	"github.com/Meerasha8/GeoMeet-Backend/internal/application/config"
	"github.com/Meerasha8/GeoMeet-Backend/internal/application/constant"
	"github.com/Meerasha8/GeoMeet-Backend/internal/application/metric"
	"github.com/Meerasha8/GeoMeet-Backend/internal/infra/adapters/foursquare"
	"github.com/Meerasha8/GeoMeet-Backend/internal/infra/adapters/memory"
	"github.com/Meerasha8/GeoMeet-Backend/internal/infra/adapters/openroute"
	"github.com/Meerasha8/GeoMeet-Backend/internal/infra/ports/http/handlers"
	"github.com/Meerasha8/GeoMeet-Backend/internal/infra/ports/http/server"
	"github.com/Meerasha8/GeoMeet-Backend/internal/usecase"
)

func runApp() {
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt)
	defer cancel()

	cfg, err := config.New()
	if err != nil {
		slog.Error("parse config", slog.Any(constant.Error, err))
		os.Exit(1)
	}

	logLevel := slog.LevelInfo
	if cfg.Debug {
		logLevel = slog.LevelDebug
	}

	slog.SetDefault(
		slog.New(
			slog.NewJSONHandler(
				os.Stdout,
				&slog.HandlerOptions{Level: logLevel},
			),
		),
	)

	roomRepo := memory.NewRoomRepository()
	placesClient := foursquare.NewClient(cfg.Foursquare)
	isochroneClient := openroute.NewClient(cfg.ORS)

	roomUsecase := usecase.NewRoomUsecase(roomRepo)
	venueUsecase := usecase.NewVenueUsecase(placesClient, isochroneClient, cfg.VenueLimit)

	roomHandler := handlers.NewRoomHandler(roomUsecase)
	venueHandler := handlers.NewVenueHandler(venueUsecase)

	echoSrv := server.New(roomHandler, venueHandler)

	metricsSrv := metric.NewServer()

	echoSrvCh := make(chan error, 1)
	metricsSrvCh := make(chan error, 1)

	// Запускаем HTTP сервер
	go func() {
		echoSrvCh <- echoSrv.Start(":" + cfg.Port)
	}()

	// Запускаем сервер метрик
	go func() {
		metricsSrvCh <- metricsSrv.Start(":" + cfg.MetricPort)
	}()

	// Ожидаем сигнал завершения или ошибку сервера
	select {
	case <-ctx.Done():
		slog.Info("Shutting down servers due to context cancel")
	case err := <-echoSrvCh:
		slog.Error(
			"HTTP server failed",
			slog.Any(constant.Error, err),
		)
		os.Exit(1)
	case err := <-metricsSrvCh:
		slog.Error(
			"Metrics server failed",
			slog.Any(constant.Error, err),
		)
		os.Exit(1)
	}

	// Graceful shutdown
	timeoutCtx, timeoutCancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer timeoutCancel()

	if err := echoSrv.Shutdown(timeoutCtx); err != nil {
		slog.Error("Failed to gracefully shutdown HTTP server", slog.Any(constant.Error, err))
	}

	if err := metricsSrv.Shutdown(timeoutCtx); err != nil {
		slog.Error("Failed to gracefully shutdown metric server", slog.Any(constant.Error, err))
	}
}
