package domain

import "context"

// AddAppRequest selects a catalog entry to add to the inventory.
type AddAppRequest struct {
	IDApp uint16 `json:"idApp"`
}

// CreateAppRequest creates a caller-defined custom app.
type CreateAppRequest struct {
	Name        string      `json:"name" validate:"required"`
	State       AppState    `json:"state" validate:"required"`
	URL         string      `json:"url" validate:"required,url"`
	Category    AppCategory `json:"category" validate:"required"`
	Description string      `json:"description"`
	Tags        *string     `json:"tags"`
}

// UpdateAppRequest is the partial-update patch for an existing app.
//
// Name, State, URL and Category overwrite only when present; absent fields
// retain their prior value. Description and Tags are replaced wholesale on
// every update - an absent field clears the stored value. The asymmetry is
// part of the API contract.
type UpdateAppRequest struct {
	Name        *string      `json:"name"`
	State       *AppState    `json:"state"`
	URL         *string      `json:"url" validate:"omitempty,url"`
	Category    *AppCategory `json:"category"`
	Description *string      `json:"description"`
	Tags        *string      `json:"tags"`
}

// AppRepository is the persistence contract against the key-value store.
// Consistency on concurrent writes is arbitrated entirely by the store's
// conditional-write semantics, never by in-process locking.
type AppRepository interface {
	// GetApp returns the app stored under id.
	GetApp(ctx context.Context, id uint16) (App, error)

	// PutNew inserts app conditioned on its key not already existing, so
	// concurrent creations of the same id cannot both succeed.
	PutNew(ctx context.Context, app App) (App, error)

	// PutUpdate unconditionally overwrites an existing app. Existence is
	// verified earlier by the service's read-before-write.
	PutUpdate(ctx context.Context, app App) (App, error)

	// DeleteApp removes the app conditioned on its key existing.
	DeleteApp(ctx context.Context, id uint16) error

	// ListApps returns every stored app, exhausting store-side pagination.
	// The reserved counter row is excluded. An empty table yields an empty
	// slice, not an error.
	ListApps(ctx context.Context) ([]App, error)

	// NextID atomically increments the ID counter row and returns the new
	// value. The counter row must already exist (EnsureCounter at startup).
	NextID(ctx context.Context) (uint16, error)

	// EnsureCounter idempotently seeds the ID counter row if absent.
	EnsureCounter(ctx context.Context) error
}

// AppsService orchestrates the repository and the catalog registry and owns
// all business rules.
type AppsService interface {
	GetApp(ctx context.Context, id uint16) (App, error)
	AddApp(ctx context.Context, req AddAppRequest) (App, error)
	CreateApp(ctx context.Context, req CreateAppRequest) (App, error)
	DeleteApp(ctx context.Context, id uint16) error
	ListApps(ctx context.Context) ([]App, error)
	ListKnownApps(ctx context.Context) []KnownApp
	SearchApps(ctx context.Context, query string) ([]App, error)
	UpdateApp(ctx context.Context, id uint16, patch UpdateAppRequest) (App, error)
}
