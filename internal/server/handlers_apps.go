package server

import (
	"fmt"
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/torsitano/torii-mock/internal/domain"
	apperrors "github.com/torsitano/torii-mock/internal/errors"
)

func (s *Server) handleGetApp(c echo.Context) error {
	id, err := parseAppID(c)
	if err != nil {
		return err
	}

	app, err := s.apps.GetApp(c.Request().Context(), id)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, app)
}

func (s *Server) handleAddApp(c echo.Context) error {
	var req domain.AddAppRequest
	if err := c.Bind(&req); err != nil {
		return apperrors.ValidationError("invalid request body")
	}

	app, err := s.apps.AddApp(c.Request().Context(), req)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusCreated, app)
}

func (s *Server) handleCreateApp(c echo.Context) error {
	var req domain.CreateAppRequest
	if err := c.Bind(&req); err != nil {
		return apperrors.ValidationError("invalid request body")
	}
	if err := s.validate.Struct(req); err != nil {
		return apperrors.ValidationError(fmt.Sprintf("invalid request: %v", err))
	}

	app, err := s.apps.CreateApp(c.Request().Context(), req)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusCreated, app)
}

func (s *Server) handleUpdateApp(c echo.Context) error {
	id, err := parseAppID(c)
	if err != nil {
		return err
	}

	var patch domain.UpdateAppRequest
	if err := c.Bind(&patch); err != nil {
		return apperrors.ValidationError("invalid request body")
	}
	if err := s.validate.Struct(patch); err != nil {
		return apperrors.ValidationError(fmt.Sprintf("invalid request: %v", err))
	}

	app, err := s.apps.UpdateApp(c.Request().Context(), id, patch)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, app)
}

func (s *Server) handleDeleteApp(c echo.Context) error {
	id, err := parseAppID(c)
	if err != nil {
		return err
	}

	if err := s.apps.DeleteApp(c.Request().Context(), id); err != nil {
		return err
	}

	return c.JSON(http.StatusOK, map[string]string{
		"message": fmt.Sprintf("App %d deleted", id),
	})
}

func (s *Server) handleListApps(c echo.Context) error {
	apps, err := s.apps.ListApps(c.Request().Context())
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, apps)
}

func (s *Server) handleSearchApps(c echo.Context) error {
	if !c.QueryParams().Has("query") {
		return apperrors.ValidationError("query parameter is required")
	}

	apps, err := s.apps.SearchApps(c.Request().Context(), c.QueryParam("query"))
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, apps)
}

func (s *Server) handleListKnownApps(c echo.Context) error {
	return c.JSON(http.StatusOK, s.apps.ListKnownApps(c.Request().Context()))
}

func parseAppID(c echo.Context) (uint16, error) {
	raw := c.Param("id")
	id, err := strconv.ParseUint(raw, 10, 16)
	if err != nil {
		return 0, apperrors.ValidationError(fmt.Sprintf("invalid app id %q", raw))
	}
	return uint16(id), nil
}
