// Package routes wires the service's HTTP surface: the greeting endpoint
// goes through the API framework for typed operations and content
// negotiation, while the health probe is mounted on the router directly so
// its body stays byte-exact for orchestrator probes.
package routes

import (
	"github.com/danielgtaylor/huma/v2"
	"github.com/go-chi/chi/v5"

	"github.com/janisto/hello-service/internal/http/greeting"
	"github.com/janisto/hello-service/internal/http/health"
)

// Register wires all HTTP routes. The reported version flows from the build
// into the greeting payload.
func Register(router chi.Router, api huma.API, version string) {
	router.Get("/health", health.Handler)
	greeting.NewHandler(version).Register(api)
}
