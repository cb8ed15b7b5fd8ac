package domain

import (
	"encoding/json"
	"fmt"
	"time"
)

// AppState is the lifecycle state of an app in the inventory.
type AppState string

const (
	StateDiscovered AppState = "Discovered"
	StateSanctioned AppState = "Sanctioned"
	StateClosed     AppState = "Closed"
)

// Valid reports whether s is one of the known states.
func (s AppState) Valid() bool {
	switch s {
	case StateDiscovered, StateSanctioned, StateClosed:
		return true
	}
	return false
}

// UnmarshalJSON rejects unknown state values at the decoding boundary.
func (s *AppState) UnmarshalJSON(data []byte) error {
	var raw string
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	state := AppState(raw)
	if !state.Valid() {
		return fmt.Errorf("unknown app state %q", raw)
	}
	*s = state
	return nil
}

// AppCategory is the business category of an app. The values are the
// human-readable display strings used on the wire.
type AppCategory string

const (
	CategoryOperations       AppCategory = "Operations"
	CategorySalesMarketing   AppCategory = "Sales & Marketing"
	CategoryDeveloperTools   AppCategory = "Developer Tools"
	CategoryDesign           AppCategory = "Design"
	CategoryProjectMgmt      AppCategory = "Project Management"
	CategoryCustomerSuccess  AppCategory = "Customer Success"
	CategoryHumanResources   AppCategory = "Human Resources"
	CategoryITSecurity       AppCategory = "IT & Security"
	CategoryFinance          AppCategory = "Finance"
	CategoryProductivity     AppCategory = "Productivity"
	CategoryAnalyticsBI      AppCategory = "Analytics & BI"
	CategoryOther            AppCategory = "Other"
)

// Valid reports whether c is one of the known categories.
func (c AppCategory) Valid() bool {
	switch c {
	case CategoryOperations, CategorySalesMarketing, CategoryDeveloperTools,
		CategoryDesign, CategoryProjectMgmt, CategoryCustomerSuccess,
		CategoryHumanResources, CategoryITSecurity, CategoryFinance,
		CategoryProductivity, CategoryAnalyticsBI, CategoryOther:
		return true
	}
	return false
}

// UnmarshalJSON rejects unknown category values at the decoding boundary.
func (c *AppCategory) UnmarshalJSON(data []byte) error {
	var raw string
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	category := AppCategory(raw)
	if !category.Valid() {
		return fmt.Errorf("unknown app category %q", raw)
	}
	*c = category
	return nil
}

// Default values applied to freshly created apps.
const (
	DefaultAddedBy      = "Default"
	DefaultPrimaryOwner = "N/A"
)

// App is the persisted inventory entity. ID is immutable after creation;
// CreationTime is set once and never mutated, LastUpdatedAt is refreshed on
// every update.
type App struct {
	ID            uint16      `json:"id"`
	IsHidden      bool        `json:"isHidden"`
	Name          string      `json:"name"`
	State         AppState    `json:"state"`
	URL           string      `json:"url"`
	ImageURL      *string     `json:"imageUrl"`
	Category      AppCategory `json:"category"`
	Users         *string     `json:"users"`
	Description   *string     `json:"description"`
	Tags          *string     `json:"tags"`
	CreationTime  time.Time   `json:"creationTime"`
	LastUpdatedAt time.Time   `json:"lastUpdatedAt"`
	LastUsageTime *time.Time  `json:"lastUsageTime"`
	AddedBy       string      `json:"addedBy"`
	PrimaryOwner  string      `json:"primaryOwner"`
	IsCustom      bool        `json:"isCustom"`
	Sources       *string     `json:"sources"`
}

// KnownApp is the read-only projection of a catalog entry. It is recomputed
// from the static registry on every request and never persisted.
type KnownApp struct {
	ID       uint16      `json:"id"`
	Name     string      `json:"name"`
	Category AppCategory `json:"category"`
	URL      string      `json:"url"`
}
