package rest

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/heartmarshall/echoplay-backend/internal/service/auth"
	"github.com/heartmarshall/echoplay-backend/pkg/ctxutil"
)

// authService defines the minimal interface needed by AuthHandler.
type authService interface {
	AuthorizeURL(ctx context.Context) (string, error)
	Callback(ctx context.Context, input auth.CallbackInput) (*auth.LoginResult, error)
	SuccessRedirect(token string) string
	ErrorRedirect(err error) string
	Logout(ctx context.Context) string
}

// AuthHandler serves the OAuth login endpoints and the current-user lookup.
type AuthHandler struct {
	svc   authService
	users userResolver
	log   *slog.Logger
}

// NewAuthHandler creates an AuthHandler.
func NewAuthHandler(svc authService, users userResolver, logger *slog.Logger) *AuthHandler {
	return &AuthHandler{svc: svc, users: users, log: logger.With("handler", "auth")}
}

// Login handles GET /auth/spotify.
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	target, err := h.svc.AuthorizeURL(r.Context())
	if err != nil {
		h.log.ErrorContext(r.Context(), "authorize url", slog.String("error", err.Error()))
		http.Redirect(w, r, h.svc.ErrorRedirect(err), http.StatusFound)
		return
	}
	http.Redirect(w, r, target, http.StatusFound)
}

// Callback handles GET /auth/spotify/callback. Both outcomes redirect to the
// frontend: success carries the token, failure carries an error code.
func (h *AuthHandler) Callback(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	result, err := h.svc.Callback(r.Context(), auth.CallbackInput{
		Code:  q.Get("code"),
		State: q.Get("state"),
		Error: q.Get("error"),
	})
	if err != nil {
		h.log.WarnContext(r.Context(), "oauth callback failed",
			slog.String("code", auth.CallbackErrorCode(err)),
			slog.String("error", err.Error()),
		)
		http.Redirect(w, r, h.svc.ErrorRedirect(err), http.StatusFound)
		return
	}
	http.Redirect(w, r, h.svc.SuccessRedirect(result.Token), http.StatusFound)
}

// Logout handles POST /auth/logout.
func (h *AuthHandler) Logout(w http.ResponseWriter, r *http.Request) {
	if _, ok := ctxutil.EmailFromCtx(r.Context()); !ok {
		writeError(w, http.StatusUnauthorized, "missing bearer token")
		return
	}
	writeJSON(w, http.StatusOK, messageResponse{Message: h.svc.Logout(r.Context())})
}

// Me handles GET /api/me.
func (h *AuthHandler) Me(w http.ResponseWriter, r *http.Request) {
	user, err := currentUser(r, h.users)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, toUserResponse(user))
}

