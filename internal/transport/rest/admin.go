package rest

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/google/uuid"

	"github.com/heartmarshall/echoplay-backend/internal/domain"
)

type searchAdminService interface {
	ListForUser(ctx context.Context, actor *domain.User, targetUserID uuid.UUID) ([]*domain.SearchEntry, error)
}

type userLookup interface {
	Get(ctx context.Context, userID uuid.UUID) (*domain.User, error)
}

// AdminHandler serves admin REST endpoints.
type AdminHandler struct {
	search   searchAdminService
	users    userResolver
	accounts userLookup
	log      *slog.Logger
}

// NewAdminHandler creates an AdminHandler.
func NewAdminHandler(search searchAdminService, users userResolver, accounts userLookup, logger *slog.Logger) *AdminHandler {
	return &AdminHandler{
		search:   search,
		users:    users,
		accounts: accounts,
		log:      logger.With("handler", "admin"),
	}
}

// UserSearchHistory returns every search entry of another user. An unknown
// userId is a 404 rather than an empty list.
// GET /api/search-history/all/{userId}
func (h *AdminHandler) UserSearchHistory(w http.ResponseWriter, r *http.Request) {
	targetID, err := pathID(r, "userId")
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	actor, ok := h.requireAdmin(w, r)
	if !ok {
		return
	}

	if _, err := h.accounts.Get(r.Context(), targetID); err != nil {
		handleError(h.log, w, r, err)
		return
	}

	entries, err := h.search.ListForUser(r.Context(), actor, targetID)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, toSearchEntryResponses(entries))
}

func (h *AdminHandler) requireAdmin(w http.ResponseWriter, r *http.Request) (*domain.User, bool) {
	actor, err := currentUser(r, h.users)
	if err != nil {
		handleError(h.log, w, r, err)
		return nil, false
	}
	if !actor.IsAdmin() {
		writeError(w, http.StatusForbidden, "admin access required")
		return nil, false
	}
	return actor, true
}
