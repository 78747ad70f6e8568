// internal/wire/wire.go
package wire

import (
	"flight-booking/internal/adaptor"
	"flight-booking/internal/data/repository"
	"flight-booking/internal/usecase"
	"flight-booking/pkg/auth"
	"flight-booking/pkg/middleware"
	"flight-booking/pkg/utils"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"
)

// Deps are the collaborators built in main and shared by the router
type Deps struct {
	Repo     *repository.Repository
	Backend  usecase.FlightBackend
	Sessions auth.SessionVerifier
	Roles    middleware.RoleResolver
}

// App holds the router and the metrics registry it serves
type App struct {
	Router   *chi.Mux
	Registry *prometheus.Registry
}

// Wiring builds services, handlers, the access gate and routes
func Wiring(deps Deps, config *utils.Config, logger *zap.Logger) *App {
	registry := prometheus.NewRegistry()
	registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	metrics := middleware.NewMetrics(registry, config.App.Name)

	service := usecase.NewService(deps.Repo, deps.Backend, config, logger)
	handler := adaptor.NewHandler(service, logger)

	gate := middleware.NewGate(
		middleware.DefaultRoutes.WithPublic(config.App.MetricsPath),
		deps.Sessions,
		deps.Roles,
		config.Routes,
		metrics,
		logger,
	)

	router := setupRouter(handler, gate, metrics, registry, config, logger)

	return &App{
		Router:   router,
		Registry: registry,
	}
}

// setupRouter configures the chi router. The gate runs for every route.
func setupRouter(
	handler *adaptor.Handler,
	gate *middleware.Gate,
	metrics *middleware.Metrics,
	registry *prometheus.Registry,
	config *utils.Config,
	logger *zap.Logger,
) *chi.Mux {
	r := chi.NewRouter()

	// Apply global middleware
	r.Use(middleware.RequestID)
	r.Use(middleware.Logger(logger))
	r.Use(middleware.Recover(logger))
	r.Use(metrics.Middleware)
	r.Use(gate.Handler)

	// Apply routes
	wireHealth(r, handler.Health)
	wireFlight(r, handler.Flight)
	wireBooking(r, handler.Booking)
	wireAdmin(r, handler.Booking, handler.Dashboard)

	r.Method("GET", config.App.MetricsPath, promhttp.HandlerFor(registry, promhttp.HandlerOpts{}))

	return r
}
