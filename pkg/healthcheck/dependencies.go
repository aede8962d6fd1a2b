package healthcheck

import (
	"context"
	"time"

	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

// Dependency checkers for the infrastructure the service relies on.

// NewDatabaseChecker pings the SQL connection behind a GORM handle.
func NewDatabaseChecker(db *gorm.DB) Checker {
	return CheckFunc(func(ctx context.Context) Check {
		start := time.Now()
		check := Check{
			Status:      StatusHealthy,
			LastChecked: start,
		}

		sqlDB, err := db.DB()
		if err != nil {
			check.Status = StatusUnhealthy
			check.Message = err.Error()
			check.Duration = time.Since(start)
			return check
		}
		if err := sqlDB.PingContext(ctx); err != nil {
			check.Status = StatusUnhealthy
			check.Message = err.Error()
		}

		check.Duration = time.Since(start)
		return check
	})
}

// KeyChecker is the slice of a cache repository the cache checker needs.
// Declared here so the checker works against any cache backend without
// depending on the application's ports.
type KeyChecker interface {
	Exists(ctx context.Context, key string) (bool, error)
}

// NewCacheChecker probes a cache backend with a key lookup. The key does not
// need to exist; only the round-trip has to succeed.
func NewCacheChecker(cache KeyChecker) Checker {
	return CheckFunc(func(ctx context.Context) Check {
		start := time.Now()
		check := Check{
			Status:      StatusHealthy,
			LastChecked: start,
		}

		if _, err := cache.Exists(ctx, "healthcheck:ping"); err != nil {
			check.Status = StatusUnhealthy
			check.Message = err.Error()
		}

		check.Duration = time.Since(start)
		return check
	})
}

// NewRedisChecker pings a Redis client.
func NewRedisChecker(client *redis.Client) Checker {
	return CheckFunc(func(ctx context.Context) Check {
		start := time.Now()
		check := Check{
			Status:      StatusHealthy,
			LastChecked: start,
		}

		if err := client.Ping(ctx).Err(); err != nil {
			check.Status = StatusUnhealthy
			check.Message = err.Error()
		}

		check.Duration = time.Since(start)
		return check
	})
}
