// Package healthcheck provides health and readiness check functionality
// Following the Health Check API pattern for cloud-native applications
package healthcheck

import (
	"context"
	"sync"
	"time"

	"go.uber.org/zap"
)

// Status represents the health status
type Status string

const (
	StatusHealthy   Status = "healthy"
	StatusUnhealthy Status = "unhealthy"
	StatusDegraded  Status = "degraded"
)

// Check represents the result of one dependency check
type Check struct {
	Name        string        `json:"name"`
	Status      Status        `json:"status"`
	Message     string        `json:"message,omitempty"`
	LastChecked time.Time     `json:"last_checked"`
	Duration    time.Duration `json:"duration_ms"`
}

// Report represents the aggregate health check response
type Report struct {
	Status        Status        `json:"status"`
	Version       string        `json:"version"`
	Timestamp     time.Time     `json:"timestamp"`
	Checks        []Check       `json:"checks"`
	TotalDuration time.Duration `json:"total_duration_ms"`
}

// Checker defines the interface for health checks
type Checker interface {
	Check(ctx context.Context) Check
}

// CheckFunc adapts a function to the Checker interface
type CheckFunc func(ctx context.Context) Check

// Check implements Checker
func (f CheckFunc) Check(ctx context.Context) Check {
	return f(ctx)
}

// Registry manages registered health checks
type Registry struct {
	version  string
	logger   *zap.Logger
	mu       sync.RWMutex
	order    []string
	checkers map[string]Checker
	timeout  time.Duration
}

// New creates a new health check registry
func New(version string, logger *zap.Logger) *Registry {
	return &Registry{
		version:  version,
		logger:   logger,
		checkers: make(map[string]Checker),
		timeout:  5 * time.Second,
	}
}

// Register registers a health checker under a name. Registration order is
// preserved in reports.
func (r *Registry) Register(name string, checker Checker) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.checkers[name]; !exists {
		r.order = append(r.order, name)
	}
	r.checkers[name] = checker
}

// SetTimeout sets the per-check timeout
func (r *Registry) SetTimeout(timeout time.Duration) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.timeout = timeout
}

// Check runs all registered checks and aggregates the results. The overall
// status is unhealthy if any check is unhealthy, degraded if any check is
// degraded, healthy otherwise.
func (r *Registry) Check(ctx context.Context) Report {
	r.mu.RLock()
	names := make([]string, len(r.order))
	copy(names, r.order)
	checkers := make(map[string]Checker, len(r.checkers))
	for name, c := range r.checkers {
		checkers[name] = c
	}
	timeout := r.timeout
	r.mu.RUnlock()

	start := time.Now()
	report := Report{
		Status:    StatusHealthy,
		Version:   r.version,
		Timestamp: start,
		Checks:    make([]Check, 0, len(names)),
	}

	for _, name := range names {
		checkCtx, cancel := context.WithTimeout(ctx, timeout)
		check := checkers[name].Check(checkCtx)
		cancel()

		check.Name = name
		report.Checks = append(report.Checks, check)

		switch check.Status {
		case StatusUnhealthy:
			report.Status = StatusUnhealthy
			r.logger.Warn("Health check failed",
				zap.String("check", name),
				zap.String("message", check.Message),
			)
		case StatusDegraded:
			if report.Status == StatusHealthy {
				report.Status = StatusDegraded
			}
		}
	}

	report.TotalDuration = time.Since(start)
	return report
}
