package main

import (
	"fmt"
	"os"

	"github.com/AZS-FEFU/camera/internal/config"
	httphandler "github.com/AZS-FEFU/camera/internal/http"
	"github.com/AZS-FEFU/camera/internal/http/middleware"
	"github.com/AZS-FEFU/camera/internal/logger"
	"github.com/AZS-FEFU/camera/internal/service"
	"github.com/AZS-FEFU/camera/internal/stats"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load config: %v\n", err)
		os.Exit(1)
	}

	appLogger := logger.New(cfg.Environment)

	counters := stats.NewCounters()
	validationService := service.NewValidationService(counters, appLogger)

	handler := httphandler.NewHandler(validationService, appLogger)
	requestLogger := middleware.RequestLogger(appLogger)
	router := httphandler.NewRouter(handler, requestLogger, cfg.Environment)

	addr := fmt.Sprintf("%s:%d", cfg.HTTP.Host, cfg.HTTP.Port)
	appLogger.Info().Str("addr", addr).Msg("starting license plate service")

	if err := router.Run(addr); err != nil {
		appLogger.Error().Err(err).Msg("failed to start server")
		os.Exit(1)
	}
}
