package server

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"

	"github.com/torsitano/torii-mock/internal/config"
	"github.com/torsitano/torii-mock/internal/domain"
	apperrors "github.com/torsitano/torii-mock/internal/errors"
)

const testAPIKey = "test-api-key"

// --- Mock service ---

type mockAppsService struct {
	getAppFn        func(ctx context.Context, id uint16) (domain.App, error)
	addAppFn        func(ctx context.Context, req domain.AddAppRequest) (domain.App, error)
	createAppFn     func(ctx context.Context, req domain.CreateAppRequest) (domain.App, error)
	deleteAppFn     func(ctx context.Context, id uint16) error
	listAppsFn      func(ctx context.Context) ([]domain.App, error)
	listKnownAppsFn func(ctx context.Context) []domain.KnownApp
	searchAppsFn    func(ctx context.Context, query string) ([]domain.App, error)
	updateAppFn     func(ctx context.Context, id uint16, patch domain.UpdateAppRequest) (domain.App, error)
}

func (m *mockAppsService) GetApp(ctx context.Context, id uint16) (domain.App, error) {
	if m.getAppFn != nil {
		return m.getAppFn(ctx, id)
	}
	return domain.App{}, fmt.Errorf("not implemented")
}

func (m *mockAppsService) AddApp(ctx context.Context, req domain.AddAppRequest) (domain.App, error) {
	if m.addAppFn != nil {
		return m.addAppFn(ctx, req)
	}
	return domain.App{}, fmt.Errorf("not implemented")
}

func (m *mockAppsService) CreateApp(ctx context.Context, req domain.CreateAppRequest) (domain.App, error) {
	if m.createAppFn != nil {
		return m.createAppFn(ctx, req)
	}
	return domain.App{}, fmt.Errorf("not implemented")
}

func (m *mockAppsService) DeleteApp(ctx context.Context, id uint16) error {
	if m.deleteAppFn != nil {
		return m.deleteAppFn(ctx, id)
	}
	return fmt.Errorf("not implemented")
}

func (m *mockAppsService) ListApps(ctx context.Context) ([]domain.App, error) {
	if m.listAppsFn != nil {
		return m.listAppsFn(ctx)
	}
	return nil, fmt.Errorf("not implemented")
}

func (m *mockAppsService) ListKnownApps(ctx context.Context) []domain.KnownApp {
	if m.listKnownAppsFn != nil {
		return m.listKnownAppsFn(ctx)
	}
	return nil
}

func (m *mockAppsService) SearchApps(ctx context.Context, query string) ([]domain.App, error) {
	if m.searchAppsFn != nil {
		return m.searchAppsFn(ctx, query)
	}
	return nil, fmt.Errorf("not implemented")
}

func (m *mockAppsService) UpdateApp(ctx context.Context, id uint16, patch domain.UpdateAppRequest) (domain.App, error) {
	if m.updateAppFn != nil {
		return m.updateAppFn(ctx, id, patch)
	}
	return domain.App{}, fmt.Errorf("not implemented")
}

// --- Helpers ---

func newTestServer(t *testing.T, apps domain.AppsService) *Server {
	t.Helper()

	e := echo.New()
	// Install error middleware for tests to match production behavior
	e.Use(apperrors.Middleware())

	srv := &Server{
		echo:      e,
		config:    &config.Config{AuthAPIKey: testAPIKey, Port: "8080"},
		apps:      apps,
		validate:  validator.New(),
		startTime: time.Now(),
	}

	srv.registerRoutes()

	return srv
}

func callHandler(handler echo.HandlerFunc, c echo.Context) error {
	return apperrors.Middleware()(handler)(c)
}

func sampleApp(id uint16, name string) domain.App {
	now := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)
	return domain.App{
		ID:            id,
		Name:          name,
		State:         domain.StateDiscovered,
		URL:           "https://" + name + ".example.com",
		Category:      domain.CategoryOther,
		AddedBy:       domain.DefaultAddedBy,
		PrimaryOwner:  domain.DefaultPrimaryOwner,
		IsCustom:      true,
		CreationTime:  now,
		LastUpdatedAt: now,
	}
}
