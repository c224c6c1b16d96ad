package rest

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/google/uuid"

	"github.com/heartmarshall/echoplay-backend/internal/domain"
	"github.com/heartmarshall/echoplay-backend/internal/service/search"
)

type searchService interface {
	Record(ctx context.Context, userID uuid.UUID, input search.RecordInput) (*domain.SearchEntry, error)
	Recent(ctx context.Context, userID uuid.UUID) ([]*domain.SearchEntry, error)
	Delete(ctx context.Context, userID, entryID uuid.UUID) error
}

// SearchHandler serves /api/search-history for the calling user.
type SearchHandler struct {
	svc   searchService
	users userResolver
	log   *slog.Logger
}

// NewSearchHandler creates a SearchHandler.
func NewSearchHandler(svc searchService, users userResolver, logger *slog.Logger) *SearchHandler {
	return &SearchHandler{svc: svc, users: users, log: logger.With("handler", "search")}
}

// Recent handles GET /api/search-history.
func (h *SearchHandler) Recent(w http.ResponseWriter, r *http.Request) {
	user, err := currentUser(r, h.users)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	entries, err := h.svc.Recent(r.Context(), user.ID)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, toSearchEntryResponses(entries))
}

// Record handles POST /api/search-history.
func (h *SearchHandler) Record(w http.ResponseWriter, r *http.Request) {
	user, err := currentUser(r, h.users)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	var input search.RecordInput
	if err := decodeJSON(w, r, &input); err != nil {
		handleError(h.log, w, r, err)
		return
	}

	entry, err := h.svc.Record(r.Context(), user.ID, input)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, toSearchEntryResponse(entry))
}

// Delete handles DELETE /api/search-history/{id}.
func (h *SearchHandler) Delete(w http.ResponseWriter, r *http.Request) {
	entryID, err := pathID(r, "id")
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	user, err := currentUser(r, h.users)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	if err := h.svc.Delete(r.Context(), user.ID, entryID); err != nil {
		handleError(h.log, w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
