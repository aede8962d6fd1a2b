package healthcheck

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/suite"
)

type DependenciesTestSuite struct {
	suite.Suite
}

// stubCache implements KeyChecker with a canned result.
type stubCache struct {
	err error
}

func (s *stubCache) Exists(ctx context.Context, key string) (bool, error) {
	return s.err == nil, s.err
}

func (suite *DependenciesTestSuite) TestCacheChecker() {
	suite.Run("ReachableBackend_ShouldReportHealthy", func() {
		checker := NewCacheChecker(&stubCache{})

		check := checker.Check(context.Background())

		assert.Equal(suite.T(), StatusHealthy, check.Status)
		assert.Empty(suite.T(), check.Message)
	})

	suite.Run("FailingBackend_ShouldReportUnhealthy", func() {
		checker := NewCacheChecker(&stubCache{err: errors.New("connection reset")})

		check := checker.Check(context.Background())

		assert.Equal(suite.T(), StatusUnhealthy, check.Status)
		assert.Equal(suite.T(), "connection reset", check.Message)
	})
}

func (suite *DependenciesTestSuite) TestRedisChecker() {
	suite.Run("UnreachableServer_ShouldReportUnhealthy", func() {
		// Arrange: nothing listens on the target port.
		client := redis.NewClient(&redis.Options{
			Addr:        "127.0.0.1:1",
			DialTimeout: 100 * time.Millisecond,
			MaxRetries:  -1,
		})
		defer client.Close()

		ctx, cancel := context.WithTimeout(context.Background(), time.Second)
		defer cancel()

		// Act
		check := NewRedisChecker(client).Check(ctx)

		// Assert
		assert.Equal(suite.T(), StatusUnhealthy, check.Status)
		assert.NotEmpty(suite.T(), check.Message)
	})
}

func TestDependenciesTestSuite(t *testing.T) {
	suite.Run(t, new(DependenciesTestSuite))
}
