// Package app provides the application service layer.
//
// Orchestrates the inventory use cases: catalog adds, custom creation with
// atomic ID issuance, partial updates, listing and search. Sits between HTTP
// handlers and the repository. Depends on domain interfaces, not concrete
// implementations.
package app

import (
	"context"
	"fmt"
	"strings"

	"github.com/jonboulle/clockwork"

	"github.com/torsitano/torii-mock/internal/catalog"
	"github.com/torsitano/torii-mock/internal/domain"
	apperrors "github.com/torsitano/torii-mock/internal/errors"
)

// Service implements domain.AppsService. It holds no mutable state: the
// registry is read-only and every request is a bounded set of store calls.
type Service struct {
	repo     domain.AppRepository
	registry *catalog.Registry
	clock    clockwork.Clock
}

var _ domain.AppsService = (*Service)(nil)

// NewService creates the apps service.
func NewService(repo domain.AppRepository, registry *catalog.Registry, clock clockwork.Clock) *Service {
	return &Service{
		repo:     repo,
		registry: registry,
		clock:    clock,
	}
}

// GetApp retrieves an app by id.
func (s *Service) GetApp(ctx context.Context, id uint16) (domain.App, error) {
	return s.repo.GetApp(ctx, id)
}

// AddApp adds a well-known catalog app to the inventory. The id must exist in
// the catalog registry; adding the same catalog app twice fails on the
// conditional insert.
func (s *Service) AddApp(ctx context.Context, req domain.AddAppRequest) (domain.App, error) {
	template, ok := s.registry.Lookup(req.IDApp)
	if !ok {
		return domain.App{}, apperrors.NotFoundError(
			fmt.Sprintf("App %d does not exist in the standard offering", req.IDApp)).
			WithField("app_id", req.IDApp)
	}

	now := s.clock.Now().UTC()
	template.CreationTime = now
	template.LastUpdatedAt = now

	return s.repo.PutNew(ctx, template)
}

// CreateApp creates a caller-defined custom app. Name uniqueness is enforced
// by a scan-based pre-check; the subsequent id-keyed conditional insert only
// guards against id collisions, so two concurrent creations with the same
// name can race past the check. Accepted gap, not a guarantee.
func (s *Service) CreateApp(ctx context.Context, req domain.CreateAppRequest) (domain.App, error) {
	existing, err := s.repo.ListApps(ctx)
	if err != nil {
		return domain.App{}, err
	}
	for _, other := range existing {
		if other.Name == req.Name {
			return domain.App{}, apperrors.ConflictError(fmt.Sprintf("Already exists: %s", req.Name)).
				WithField("name", req.Name)
		}
	}

	id, err := s.repo.NextID(ctx)
	if err != nil {
		return domain.App{}, err
	}

	now := s.clock.Now().UTC()
	app := domain.App{
		ID:            id,
		Name:          req.Name,
		State:         req.State,
		URL:           req.URL,
		Category:      req.Category,
		Tags:          req.Tags,
		IsCustom:      true,
		AddedBy:       domain.DefaultAddedBy,
		PrimaryOwner:  domain.DefaultPrimaryOwner,
		CreationTime:  now,
		LastUpdatedAt: now,
	}
	if req.Description != "" {
		app.Description = &req.Description
	}

	return s.repo.PutNew(ctx, app)
}

// DeleteApp removes an app by id.
func (s *Service) DeleteApp(ctx context.Context, id uint16) error {
	return s.repo.DeleteApp(ctx, id)
}

// ListApps returns every app in the inventory.
func (s *Service) ListApps(ctx context.Context) ([]domain.App, error) {
	return s.repo.ListApps(ctx)
}

// ListKnownApps returns the projection of the catalog registry.
func (s *Service) ListKnownApps(_ context.Context) []domain.KnownApp {
	return s.registry.All()
}

// SearchApps filters the full inventory by case-sensitive substring match on
// name. No index; O(n) over the table per search.
func (s *Service) SearchApps(ctx context.Context, query string) ([]domain.App, error) {
	apps, err := s.repo.ListApps(ctx)
	if err != nil {
		return nil, err
	}

	found := make([]domain.App, 0, len(apps))
	for _, app := range apps {
		if strings.Contains(app.Name, query) {
			found = append(found, app)
		}
	}

	return found, nil
}

// UpdateApp applies a partial update. Name, state, url and category overwrite
// only when the patch supplies them; description and tags are replaced
// wholesale, including to absent. State transitions are not validated - any
// state may be assigned over any other.
func (s *Service) UpdateApp(ctx context.Context, id uint16, patch domain.UpdateAppRequest) (domain.App, error) {
	app, err := s.repo.GetApp(ctx, id)
	if err != nil {
		return domain.App{}, err
	}

	if patch.Name != nil {
		app.Name = *patch.Name
	}
	if patch.State != nil {
		app.State = *patch.State
	}
	if patch.URL != nil {
		app.URL = *patch.URL
	}
	if patch.Category != nil {
		app.Category = *patch.Category
	}

	app.Description = patch.Description
	app.Tags = patch.Tags
	app.LastUpdatedAt = s.clock.Now().UTC()

	return s.repo.PutUpdate(ctx, app)
}
