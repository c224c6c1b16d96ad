package rest

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/heartmarshall/echoplay-backend/internal/transport/middleware"
)

// Handlers groups every REST handler the router mounts.
type Handlers struct {
	Health     *HealthHandler
	Auth       *AuthHandler
	Favorites  *FavoriteHandler
	Categories *CategoryHandler
	Search     *SearchHandler
	Admin      *AdminHandler
}

// NewRouter registers all routes on a ServeMux. authLimit wraps the
// unauthenticated OAuth endpoints. The returned handler records request
// metrics by route pattern; outer middleware is applied by the caller.
func NewRouter(h Handlers, authLimit middleware.Middleware) http.Handler {
	mux := http.NewServeMux()

	mux.HandleFunc("GET /live", h.Health.Live)
	mux.HandleFunc("GET /ready", h.Health.Ready)
	mux.HandleFunc("GET /health", h.Health.Health)
	mux.Handle("GET /metrics", promhttp.Handler())

	mux.Handle("GET /auth/spotify", authLimit(http.HandlerFunc(h.Auth.Login)))
	mux.Handle("GET /auth/spotify/callback", authLimit(http.HandlerFunc(h.Auth.Callback)))
	mux.HandleFunc("POST /auth/logout", h.Auth.Logout)
	mux.HandleFunc("GET /api/me", h.Auth.Me)

	mux.HandleFunc("GET /api/favorites", h.Favorites.List)
	mux.HandleFunc("GET /api/favorites/grouped", h.Favorites.Grouped)
	mux.HandleFunc("GET /api/favorites/summary", h.Favorites.Summary)
	mux.HandleFunc("POST /api/favorites", h.Favorites.Add)
	mux.HandleFunc("DELETE /api/favorites/{id}", h.Favorites.Remove)
	mux.HandleFunc("PUT /api/favorites/{id}/move", h.Favorites.Move)

	mux.HandleFunc("GET /api/categories", h.Categories.List)
	mux.HandleFunc("GET /api/categories/{id}", h.Categories.Get)
	mux.HandleFunc("POST /api/categories", h.Categories.Create)
	mux.HandleFunc("PUT /api/categories/{id}", h.Categories.Update)
	mux.HandleFunc("DELETE /api/categories/{id}", h.Categories.Delete)

	mux.HandleFunc("GET /api/search-history", h.Search.Recent)
	mux.HandleFunc("POST /api/search-history", h.Search.Record)
	mux.HandleFunc("DELETE /api/search-history/{id}", h.Search.Delete)
	mux.HandleFunc("GET /api/search-history/all/{userId}", h.Admin.UserSearchHistory)

	return middleware.Metrics(mux)
}
