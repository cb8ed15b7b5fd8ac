package server

import (
	"crypto/subtle"
	"log/slog"
	"net/http"

	"github.com/labstack/echo/v4"
)

// requireAuth gates the API behind the single shared bearer credential. The
// header must equal "Bearer <key>" exactly; comparison is constant-time.
func (s *Server) requireAuth(next echo.HandlerFunc) echo.HandlerFunc {
	expected := []byte("Bearer " + s.config.AuthAPIKey)

	return func(c echo.Context) error {
		header := c.Request().Header.Get(echo.HeaderAuthorization)
		if header == "" {
			slog.Warn("No authorization header provided", "path", c.Request().URL.Path)
			return echo.NewHTTPError(http.StatusUnauthorized, "unauthorized")
		}

		if subtle.ConstantTimeCompare([]byte(header), expected) != 1 {
			return echo.NewHTTPError(http.StatusUnauthorized, "unauthorized")
		}

		return next(c)
	}
}
