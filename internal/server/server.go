package server

import (
	"context"
	"fmt"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	goredis "github.com/redis/go-redis/v9"

	"github.com/torsitano/torii-mock/internal/config"
	"github.com/torsitano/torii-mock/internal/domain"
	apperrors "github.com/torsitano/torii-mock/internal/errors"
)

type Server struct {
	echo        *echo.Echo
	config      *config.Config
	apps        domain.AppsService
	redisClient *goredis.Client
	validate    *validator.Validate
	startTime   time.Time

	// overrides redisClient in readiness checks when set
	redisHealthCheck redisHealthChecker
}

func NewServer(cfg *config.Config, apps domain.AppsService, redisClient *goredis.Client) *Server {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true

	e.Use(middleware.Logger())
	e.Use(middleware.Recover())
	e.Use(apperrors.Middleware())

	srv := &Server{
		echo:        e,
		config:      cfg,
		apps:        apps,
		redisClient: redisClient,
		validate:    validator.New(),
		startTime:   time.Now(),
	}

	srv.registerRoutes()

	return srv
}

func (s *Server) Start() error {
	return s.echo.Start(fmt.Sprintf(":%s", s.config.Port))
}

func (s *Server) Shutdown(ctx context.Context) error {
	return s.echo.Shutdown(ctx)
}
