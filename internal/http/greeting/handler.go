// Package greeting serves the root endpoint: a static greeting with the
// service version and a per-request timestamp.
package greeting

import (
	"context"
	"net/http"
	"time"

	"github.com/danielgtaylor/huma/v2"
	"go.uber.org/zap"

	applog "github.com/janisto/hello-service/internal/platform/logging"
	"github.com/janisto/hello-service/internal/platform/timeutil"
)

// Message is the constant greeting returned by the root endpoint.
const Message = "Hello World!"

// Handler serves the greeting route. The version is injected at construction
// so the build-time value flows from main without package-level state.
type Handler struct {
	version string
	now     func() time.Time
}

// NewHandler creates a greeting handler reporting the given version.
func NewHandler(version string) *Handler {
	return &Handler{version: version, now: time.Now}
}

// Register wires the greeting route into the provided API router.
func (h *Handler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "get-greeting",
		Method:      http.MethodGet,
		Path:        "/",
		Summary:     "Greeting with service version and timestamp",
	}, h.get)
}

func (h *Handler) get(ctx context.Context, _ *struct{}) (*Output, error) {
	applog.LogInfo(ctx, "greeting", zap.String("path", "/"))
	return &Output{Body: Data{
		Message:   Message,
		Version:   h.version,
		Timestamp: timeutil.FormatMillis(h.now()),
	}}, nil
}
