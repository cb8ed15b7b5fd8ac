package server

import (
	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

func (s *Server) registerRoutes() {
	// Observability endpoints (no auth required)
	s.echo.GET("/health/live", s.handleLiveness)
	s.echo.GET("/health/ready", s.handleReadiness)
	s.echo.GET("/metrics", echo.WrapHandler(promhttp.Handler()))

	// Inventory API (shared bearer credential)
	v1 := s.echo.Group("/v1.0", s.requireAuth)
	v1.GET("/apps", s.handleListApps)
	v1.POST("/apps", s.handleAddApp)
	v1.POST("/apps/custom", s.handleCreateApp)
	v1.GET("/apps/search", s.handleSearchApps)
	v1.GET("/apps/known", s.handleListKnownApps)
	v1.GET("/apps/:id", s.handleGetApp)
	v1.PUT("/apps/:id", s.handleUpdateApp)
	v1.DELETE("/apps/:id", s.handleDeleteApp)
}
