// Package server implements the HTTP server using Echo framework.
//
// Routes live under the /v1.0 prefix behind a shared bearer-credential gate.
// Handlers are thin: parse and validate input, call the apps service, map the
// result to JSON. Error mapping happens in the errors middleware.
package server
