package main

//
//  @title           payoutpulse API
//  @version         1.0
//  @description     Trade-ledger behavioral analysis for payout approval.
//  @termsOfService  https://github.com/guttosm/payoutpulse
//  @contact.name    API Support
//  @contact.url     https://github.com/guttosm/payoutpulse
//  @contact.email   support@example.com
//  @license.name    MIT
//  @license.url     https://opensource.org/licenses/MIT
//  @host            localhost:8080
//  @BasePath        /
//  @schemes         http
//
//  @tag.name        analysis
//  @tag.description Endpoints for analyzing uploaded trade ledgers
//
//  @tag.name        risk
//  @tag.description Endpoints for scoring payout requests
//
//  @tag.name        health
//  @tag.description Liveness and readiness probes

import (
	"context"
	"encoding/json"
	"errors"
	"flag"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/guttosm/payoutpulse/config"
	_ "github.com/guttosm/payoutpulse/docs" // swagger docs
	"github.com/guttosm/payoutpulse/internal/app"
	"github.com/guttosm/payoutpulse/internal/ingestion"
	"github.com/guttosm/payoutpulse/internal/logger"
	"github.com/guttosm/payoutpulse/internal/service"
)

// startServer initializes and starts the HTTP server in a separate goroutine.
//
// Parameters:
//   - router (http.Handler): The HTTP router (Gin Engine) configured with all routes.
//   - port (string): The port where the server will listen for incoming requests.
//
// Returns:
//   - *http.Server: The initialized HTTP server instance.
func startServer(router http.Handler, port string) *http.Server {
	server := &http.Server{
		Addr:              ":" + port,
		Handler:           router,
		ReadTimeout:       15 * time.Second,
		ReadHeaderTimeout: 10 * time.Second,
		WriteTimeout:      30 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	go func() {
		logger.L().Info().Str("port", port).Msg("server starting")
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.L().Fatal().Err(err).Msg("server failed to start")
		}
	}()

	return server
}

// gracefulShutdown gracefully terminates the HTTP server and cleans up
// resources when an OS interrupt signal (SIGINT, SIGTERM) is received.
func gracefulShutdown(ctx context.Context, server *http.Server, cleanup func()) {
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)

	<-quit
	logger.L().Info().Msg("shutting down server")

	shutdownCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		logger.L().Fatal().Err(err).Msg("server forced to shutdown")
	}

	cleanup()
	logger.L().Info().Msg("server exited gracefully")
}

// runAnalysis loads one or more CSV exports, runs the full analysis and
// prints the report as JSON to stdout.
func runAnalysis(ctx context.Context, files string, start, end string) error {
	cfg := config.AppConfig
	loc := cfg.Analysis.Location

	paths := strings.Split(files, ",")
	for i := range paths {
		paths[i] = strings.TrimSpace(paths[i])
	}

	trades, warnings, err := ingestion.LoadFiles(ctx, paths, loc)
	if err != nil {
		return err
	}

	var startDate, endDate *time.Time
	if start != "" {
		d, err := time.ParseInLocation("2006-01-02", start, loc)
		if err != nil {
			return err
		}
		startDate = &d
	}
	if end != "" {
		d, err := time.ParseInLocation("2006-01-02", end, loc)
		if err != nil {
			return err
		}
		endDate = &d
	}
	trades = ingestion.FilterRange(trades, startDate, endDate)

	svc := service.NewAnalyzer(service.Options{
		IntervalCeilings: cfg.Analysis.IntervalCeilings,
		MartingaleWindow: cfg.Analysis.MartingaleWindow,
	})
	report, err := svc.Run(ctx, trades, warnings)
	if err != nil {
		return err
	}

	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(report)
}

// main is the entry point of the payoutpulse application.
//
// Modes (selected via --mode flag):
//   - analyze: One-shot run over CSV export(s); prints the report as JSON.
//   - api:     Starts the REST API that analyzes uploaded ledgers.
//
// Flags:
//   - --mode:  Execution mode ("analyze" or "api"). Default: "analyze".
//   - --file:  CSV export path(s), comma-separated, for analyze mode.
//   - --start: Optional inclusive start date (YYYY-MM-DD) for analyze mode.
//   - --end:   Optional inclusive end date (YYYY-MM-DD) for analyze mode.
//   - --port:  Port for API mode. Defaults to value from config (SERVER_PORT).
func main() {
	ctx := context.Background()

	// Load configuration from environment or .env file
	config.LoadConfig()

	// Initialize JSON logger
	logger.Init()

	mode := flag.String("mode", "analyze", "Mode: analyze or api")
	file := flag.String("file", "", "CSV trade export path(s), comma-separated")
	start := flag.String("start", "", "Inclusive start date YYYY-MM-DD")
	end := flag.String("end", "", "Inclusive end date YYYY-MM-DD")
	port := flag.String("port", config.AppConfig.Server.Port, "Port for API mode")
	flag.Parse()

	switch *mode {
	case "analyze":
		logger.L().Info().Msg("running analysis")
		if *file == "" {
			logger.L().Fatal().Msg("--file is required in analyze mode")
		}
		if err := runAnalysis(ctx, *file, *start, *end); err != nil {
			logger.L().Fatal().Err(err).Msg("analysis failed")
		}
		logger.L().Info().Msg("analysis completed successfully")

	case "api":
		logger.L().Info().Msg("starting API server")

		router, cleanup, err := app.InitializeApp()
		if err != nil {
			logger.L().Fatal().Err(err).Msg("app init error")
		}

		server := startServer(router, *port)
		gracefulShutdown(ctx, server, cleanup)

	default:
		logger.L().Fatal().Str("mode", *mode).Msg("unknown mode")
	}
}
