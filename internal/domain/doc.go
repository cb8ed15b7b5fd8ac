// Package domain defines the core domain types and interfaces.
//
// This package contains the App entity with its enumerated fields, the
// request/patch types handlers bind against, and the repository/service
// contracts. No implementation code - just data and contracts. Keeping the
// interfaces here lets the server depend on the service and the service on
// the repository without either importing a concrete adapter.
package domain
