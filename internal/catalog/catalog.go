// Package catalog holds the static registry of well-known apps that can be
// added to the inventory in one step. The registry is built once at startup
// and never mutated; it is never persisted itself.
package catalog

import "github.com/torsitano/torii-mock/internal/domain"

// MaxID is the highest id in the registry. The custom-app ID counter must be
// seeded strictly above this value.
const MaxID uint16 = 1003

// Registry maps well-known app ids to complete templates with IsCustom=false.
type Registry struct {
	entries map[uint16]domain.App
}

// New constructs the registry with the fixed set of known apps.
func New() *Registry {
	entries := map[uint16]domain.App{
		1000: {
			ID:       1000,
			Name:     "Salesforce",
			Category: domain.CategorySalesMarketing,
			URL:      "salesforce.com",
			State:    domain.StateSanctioned,
		},
		1001: {
			ID:       1001,
			Name:     "Zoom",
			Category: domain.CategoryProductivity,
			URL:      "zoom.com",
			State:    domain.StateSanctioned,
		},
		1002: {
			ID:       1002,
			Name:     "GitHub",
			Category: domain.CategoryDeveloperTools,
			URL:      "github.com",
			State:    domain.StateSanctioned,
		},
		1003: {
			ID:       1003,
			Name:     "Cats",
			Category: domain.CategoryOther,
			URL:      "cats.com",
			State:    domain.StateSanctioned,
		},
	}

	for id, app := range entries {
		app.AddedBy = domain.DefaultAddedBy
		app.PrimaryOwner = domain.DefaultPrimaryOwner
		entries[id] = app
	}

	return &Registry{entries: entries}
}

// Lookup returns a copy of the template for id. Timestamps are zero; the
// caller stamps them at persistence time.
func (r *Registry) Lookup(id uint16) (domain.App, bool) {
	app, ok := r.entries[id]
	return app, ok
}

// All returns the id/name/category/url projection of every entry. Order is
// not stable.
func (r *Registry) All() []domain.KnownApp {
	known := make([]domain.KnownApp, 0, len(r.entries))
	for _, app := range r.entries {
		known = append(known, domain.KnownApp{
			ID:       app.ID,
			Name:     app.Name,
			Category: app.Category,
			URL:      app.URL,
		})
	}
	return known
}
