package rest

import (
	"context"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/google/uuid"

	"github.com/heartmarshall/echoplay-backend/internal/domain"
	"github.com/heartmarshall/echoplay-backend/internal/service/category"
)

type categoryService interface {
	Create(ctx context.Context, userID uuid.UUID, input category.CreateInput) (*domain.Category, error)
	Get(ctx context.Context, userID, categoryID uuid.UUID) (*domain.Category, error)
	List(ctx context.Context, userID uuid.UUID) ([]*domain.Category, error)
	Update(ctx context.Context, userID, categoryID uuid.UUID, input category.UpdateInput) error
	Delete(ctx context.Context, userID, categoryID uuid.UUID, policy domain.CascadePolicy) error
}

// CategoryHandler serves /api/categories.
type CategoryHandler struct {
	svc   categoryService
	users userResolver
	log   *slog.Logger
}

// NewCategoryHandler creates a CategoryHandler.
func NewCategoryHandler(svc categoryService, users userResolver, logger *slog.Logger) *CategoryHandler {
	return &CategoryHandler{svc: svc, users: users, log: logger.With("handler", "categories")}
}

// List handles GET /api/categories.
func (h *CategoryHandler) List(w http.ResponseWriter, r *http.Request) {
	user, err := currentUser(r, h.users)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	categories, err := h.svc.List(r.Context(), user.ID)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, toCategoryResponses(categories))
}

// Get handles GET /api/categories/{id}.
func (h *CategoryHandler) Get(w http.ResponseWriter, r *http.Request) {
	categoryID, err := pathID(r, "id")
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	user, err := currentUser(r, h.users)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	c, err := h.svc.Get(r.Context(), user.ID, categoryID)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, toCategoryResponse(c))
}

// Create handles POST /api/categories.
func (h *CategoryHandler) Create(w http.ResponseWriter, r *http.Request) {
	user, err := currentUser(r, h.users)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	var input category.CreateInput
	if err := decodeJSON(w, r, &input); err != nil {
		handleError(h.log, w, r, err)
		return
	}

	c, err := h.svc.Create(r.Context(), user.ID, input)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, toCategoryResponse(c))
}

// Update handles PUT /api/categories/{id}.
func (h *CategoryHandler) Update(w http.ResponseWriter, r *http.Request) {
	categoryID, err := pathID(r, "id")
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	user, err := currentUser(r, h.users)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	var input category.UpdateInput
	if err := decodeJSON(w, r, &input); err != nil {
		handleError(h.log, w, r, err)
		return
	}

	if err := h.svc.Update(r.Context(), user.ID, categoryID, input); err != nil {
		handleError(h.log, w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// Delete handles DELETE /api/categories/{id}. moveFavoritesToUncategorized
// defaults to true; false deletes the linked favorites as well.
func (h *CategoryHandler) Delete(w http.ResponseWriter, r *http.Request) {
	categoryID, err := pathID(r, "id")
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	policy := domain.CascadeReassign
	if raw := r.URL.Query().Get("moveFavoritesToUncategorized"); raw != "" {
		move, err := strconv.ParseBool(raw)
		if err != nil {
			handleError(h.log, w, r, domain.NewValidationError("moveFavoritesToUncategorized", "must be a boolean"))
			return
		}
		if !move {
			policy = domain.CascadeDeleteFavorites
		}
	}

	user, err := currentUser(r, h.users)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	if err := h.svc.Delete(r.Context(), user.ID, categoryID, policy); err != nil {
		handleError(h.log, w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
