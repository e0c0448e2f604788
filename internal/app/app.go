package app

import (
	"fmt"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/guttosm/payoutpulse/config"
	"github.com/guttosm/payoutpulse/internal/api"
	"github.com/guttosm/payoutpulse/internal/service"
)

// InitializeApp sets up all application dependencies and returns a fully
// configured Gin router, a cleanup function for graceful shutdown, and
// any error encountered during initialization.
//
// Responsibilities:
//   - Builds the analysis service from the configured tunables.
//   - Creates the HTTP handler layer to handle requests.
//   - Configures the Gin router with all API routes.
//   - Registers health and readiness probes.
func InitializeApp() (*gin.Engine, func(), error) {
	cfg := config.AppConfig

	if cfg.Analysis.Location == nil {
		return nil, nil, fmt.Errorf("feed timezone not resolved; call config.LoadConfig first")
	}

	// Analysis service (business logic)
	svc := service.NewAnalyzer(service.Options{
		IntervalCeilings: cfg.Analysis.IntervalCeilings,
		MartingaleWindow: cfg.Analysis.MartingaleWindow,
	})

	// HTTP handler layer (business logic to HTTP mapping)
	handler := api.NewHandler(svc, cfg.Analysis.Location)

	// Router with routes and middleware
	router := api.NewRouter(handler)

	// Health and readiness probes; readiness re-checks the timezone.
	healthHandler := api.NewHealthHandler(func() error {
		_, err := time.LoadLocation(cfg.Analysis.Timezone)
		return err
	})
	healthHandler.Register(router)

	// No external resources to release; cleanup kept for symmetry with
	// the server shutdown path.
	cleanup := func() {}

	return router, cleanup, nil
}
