package rest

import (
	"context"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/google/uuid"

	"github.com/heartmarshall/echoplay-backend/internal/domain"
	"github.com/heartmarshall/echoplay-backend/internal/service/favorite"
)

type favoriteService interface {
	Add(ctx context.Context, userID uuid.UUID, input favorite.AddInput) (*domain.Favorite, error)
	List(ctx context.Context, userID uuid.UUID, input favorite.ListInput) ([]*domain.Favorite, error)
	ListGrouped(ctx context.Context, userID uuid.UUID) ([]domain.FavoriteGroup, error)
	Remove(ctx context.Context, userID, favoriteID uuid.UUID) error
	Move(ctx context.Context, userID, favoriteID uuid.UUID, categoryID *uuid.UUID) error
}

type summaryService interface {
	Summarize(ctx context.Context, userID uuid.UUID) (*domain.Summary, error)
}

// FavoriteHandler serves /api/favorites.
type FavoriteHandler struct {
	svc     favoriteService
	summary summaryService
	users   userResolver
	log     *slog.Logger
}

// NewFavoriteHandler creates a FavoriteHandler.
func NewFavoriteHandler(svc favoriteService, summary summaryService, users userResolver, logger *slog.Logger) *FavoriteHandler {
	return &FavoriteHandler{svc: svc, summary: summary, users: users, log: logger.With("handler", "favorites")}
}

type moveRequest struct {
	CategoryID *uuid.UUID `json:"categoryId"`
}

// List handles GET /api/favorites. grouped=true switches to the grouped view.
func (h *FavoriteHandler) List(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	if raw := q.Get("grouped"); raw != "" {
		grouped, err := strconv.ParseBool(raw)
		if err != nil {
			handleError(h.log, w, r, domain.NewValidationError("grouped", "must be a boolean"))
			return
		}
		if grouped {
			h.Grouped(w, r)
			return
		}
	}

	var input favorite.ListInput
	if raw := q.Get("entityType"); raw != "" {
		kind, ok := domain.ParseEntityKind(raw)
		if !ok {
			handleError(h.log, w, r, domain.NewValidationError("entityType", "must be one of TRACK, ARTIST, ALBUM"))
			return
		}
		input.Kind = &kind
	}
	if raw := q.Get("categoryId"); raw != "" {
		id, err := uuid.Parse(raw)
		if err != nil {
			handleError(h.log, w, r, domain.NewValidationError("categoryId", "must be a UUID"))
			return
		}
		input.CategoryID = &id
	}

	user, err := currentUser(r, h.users)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	favorites, err := h.svc.List(r.Context(), user.ID, input)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, toFavoriteResponses(favorites))
}

// Grouped handles GET /api/favorites/grouped. Groups arrive ordered by label
// byte-wise, so "Uncategorized" sorts after upper-case names and before
// lower-case ones.
func (h *FavoriteHandler) Grouped(w http.ResponseWriter, r *http.Request) {
	user, err := currentUser(r, h.users)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	groups, err := h.svc.ListGrouped(r.Context(), user.ID)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, toGroupResponses(groups))
}

// Summary handles GET /api/favorites/summary.
func (h *FavoriteHandler) Summary(w http.ResponseWriter, r *http.Request) {
	user, err := currentUser(r, h.users)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	summary, err := h.summary.Summarize(r.Context(), user.ID)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, toSummaryResponse(summary))
}

// Add handles POST /api/favorites.
func (h *FavoriteHandler) Add(w http.ResponseWriter, r *http.Request) {
	user, err := currentUser(r, h.users)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	var input favorite.AddInput
	if err := decodeJSON(w, r, &input); err != nil {
		handleError(h.log, w, r, err)
		return
	}

	created, err := h.svc.Add(r.Context(), user.ID, input)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, toFavoriteResponse(created))
}

// Remove handles DELETE /api/favorites/{id}.
func (h *FavoriteHandler) Remove(w http.ResponseWriter, r *http.Request) {
	favoriteID, err := pathID(r, "id")
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	user, err := currentUser(r, h.users)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	if err := h.svc.Remove(r.Context(), user.ID, favoriteID); err != nil {
		handleError(h.log, w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// Move handles PUT /api/favorites/{id}/move. A null categoryId clears the link.
func (h *FavoriteHandler) Move(w http.ResponseWriter, r *http.Request) {
	favoriteID, err := pathID(r, "id")
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	user, err := currentUser(r, h.users)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	var req moveRequest
	if err := decodeJSON(w, r, &req); err != nil {
		handleError(h.log, w, r, err)
		return
	}

	if err := h.svc.Move(r.Context(), user.ID, favoriteID, req.CategoryID); err != nil {
		handleError(h.log, w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
