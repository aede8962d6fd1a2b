// Package apiserver provides the JSON API HTTP server
package apiserver

import (
	"context"
	"fmt"
	"net/http"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"go.uber.org/zap"

	"github.com/nutriplan/v2/internal/infrastructure/config"
	"github.com/nutriplan/v2/internal/infrastructure/monitoring"
	"github.com/nutriplan/v2/internal/ports/inbound"
	"github.com/nutriplan/v2/pkg/healthcheck"
)

// APIServer serves the plan generation API
type APIServer struct {
	config      *config.Config
	logger      *zap.Logger
	server      *http.Server
	router      *chi.Mux
	planService inbound.PlanService
	metrics     *monitoring.MetricsCollector
	health      *healthcheck.Registry
}

// NewAPIServer creates a new API server instance
func NewAPIServer(
	cfg *config.Config,
	log *zap.Logger,
	planService inbound.PlanService,
	metrics *monitoring.MetricsCollector,
	health *healthcheck.Registry,
) *APIServer {
	server := &APIServer{
		config:      cfg,
		logger:      log,
		planService: planService,
		metrics:     metrics,
		health:      health,
	}

	server.router = server.setupRoutes()
	server.server = &http.Server{
		Addr:         fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port),
		Handler:      server.router,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
	}

	return server
}

// setupRoutes configures the JSON API routes
func (s *APIServer) setupRoutes() *chi.Mux {
	r := chi.NewRouter()

	r.Use(chimiddleware.RequestID)
	r.Use(chimiddleware.RealIP)
	r.Use(Logger(s.logger, s.config.Monitoring.HealthCheckPath))
	r.Use(chimiddleware.Recoverer)
	r.Use(chimiddleware.Timeout(s.config.Server.RequestTimeout))
	r.Use(chimiddleware.Compress(5))
	if s.config.Monitoring.EnableMetrics {
		r.Use(Metrics(s.metrics))
	}

	r.Get(s.config.Monitoring.HealthCheckPath, s.handleHealthCheck)
	if s.config.Monitoring.EnableMetrics {
		r.Method(http.MethodGet, s.config.Monitoring.MetricsPath, s.metrics.Handler())
	}

	h := NewPlanHandlers(s.planService, s.logger)
	r.Route("/api/v1", func(r chi.Router) {
		r.Route("/plans", func(r chi.Router) {
			r.Post("/", h.GeneratePlan)
			r.Get("/{id}", h.GetPlan)
		})
		r.Get("/users/{userID}/plans", h.GetUserPlans)
	})

	return r
}

// Start starts the API server
func (s *APIServer) Start() error {
	s.logger.Info("Starting JSON API server",
		zap.String("address", s.server.Addr),
	)

	return s.server.ListenAndServe()
}

// Server returns the underlying HTTP server instance
func (s *APIServer) Server() *http.Server {
	return s.server
}

// Shutdown gracefully shuts down the API server
func (s *APIServer) Shutdown(ctx context.Context) error {
	s.logger.Info("Shutting down API server...")
	return s.server.Shutdown(ctx)
}

// handleHealthCheck runs the registered dependency checks
func (s *APIServer) handleHealthCheck(w http.ResponseWriter, r *http.Request) {
	report := s.health.Check(r.Context())

	status := http.StatusOK
	if report.Status != healthcheck.StatusHealthy {
		status = http.StatusServiceUnavailable
	}

	writeJSON(w, status, report)
}
