package rest

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/google/uuid"

	"github.com/folioview/backend/internal/config"
	"github.com/folioview/backend/internal/transport/middleware"
)

// TokenValidator resolves a Bearer token to a user id.
type TokenValidator interface {
	ValidateToken(ctx context.Context, token string) (uuid.UUID, error)
}

// RouterDeps carries everything the router needs.
type RouterDeps struct {
	Log       *slog.Logger
	Sessions  *SessionRegistry
	Health    *HealthHandler
	Validator TokenValidator
	CORS      config.CORSConfig
	RateLimit *middleware.RateLimiter

	// APIRequestsPerMinute limits each client IP on /api/v1 routes.
	// Zero disables rate limiting.
	APIRequestsPerMinute int
}

// NewRouter builds the HTTP handler: health probes unauthenticated, the
// /api/v1 surface behind request-id/logging/recovery/CORS/auth.
func NewRouter(deps RouterDeps) http.Handler {
	filters := NewFilterHandler(deps.Log, deps.Sessions)
	quick := NewQuickFilterHandler(deps.Log, deps.Sessions)
	presets := NewPresetHandler(deps.Log, deps.Sessions)

	api := http.NewServeMux()
	api.HandleFunc("GET /api/v1/filters", filters.Get)
	api.HandleFunc("PATCH /api/v1/filters", filters.Patch)
	api.HandleFunc("POST /api/v1/filters/reset", filters.Reset)

	api.HandleFunc("GET /api/v1/quick-filters", quick.List)
	api.HandleFunc("POST /api/v1/quick-filters/clear", quick.Clear)
	api.HandleFunc("POST /api/v1/quick-filters/{id}/toggle", quick.Toggle)

	api.HandleFunc("GET /api/v1/presets", presets.List)
	api.HandleFunc("POST /api/v1/presets", presets.Save)
	api.HandleFunc("POST /api/v1/presets/{id}/load", presets.Load)
	api.HandleFunc("DELETE /api/v1/presets/{id}", presets.Delete)

	apiMws := []middleware.Middleware{
		middleware.Auth(deps.Validator),
		middleware.RequireUser,
	}
	if deps.RateLimit != nil && deps.APIRequestsPerMinute > 0 {
		apiMws = append([]middleware.Middleware{deps.RateLimit.Limit(deps.APIRequestsPerMinute)}, apiMws...)
	}
	apiHandler := middleware.Chain(apiMws...)(api)

	root := http.NewServeMux()
	root.HandleFunc("GET /live", deps.Health.Live)
	root.HandleFunc("GET /ready", deps.Health.Ready)
	root.HandleFunc("GET /health", deps.Health.Health)
	root.Handle("/api/v1/", apiHandler)

	return middleware.Chain(
		middleware.RequestID,
		middleware.Logger(deps.Log),
		middleware.Recovery(deps.Log),
		middleware.CORS(deps.CORS),
	)(root)
}
