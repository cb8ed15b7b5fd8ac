package server

import (
	"context"
	"time"

	"github.com/labstack/echo/v4"
)

// redisHealthChecker is a minimal surface for readiness checks, so tests can
// run without a Redis client.
type redisHealthChecker interface {
	Ping(ctx context.Context) error
}

func (s *Server) handleLiveness(c echo.Context) error {
	uptime := time.Since(s.startTime).Seconds()
	return c.JSON(200, map[string]any{
		"status": "ok",
		"uptime": uptime,
	})
}

func (s *Server) handleReadiness(c echo.Context) error {
	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	if err := s.checkRedis(ctx); err != nil {
		return c.JSON(503, map[string]any{
			"status":       "unhealthy",
			"failed_check": "redis",
			"error":        err.Error(),
		})
	}

	return c.JSON(200, map[string]string{"status": "ready"})
}

func (s *Server) checkRedis(ctx context.Context) error {
	if s.redisHealthCheck != nil {
		return s.redisHealthCheck.Ping(ctx)
	}
	return s.redisClient.Ping(ctx).Err()
}
