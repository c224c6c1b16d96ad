package rest

import (
	"context"
	"net/http"

	"github.com/heartmarshall/echoplay-backend/internal/domain"
	"github.com/heartmarshall/echoplay-backend/pkg/ctxutil"
)

// userResolver turns the verified email of the caller into a user.
type userResolver interface {
	Resolve(ctx context.Context, email string) (*domain.User, error)
}

// currentUser resolves the caller. Requests without a verified email claim
// yield domain.ErrIdentity.
func currentUser(r *http.Request, users userResolver) (*domain.User, error) {
	email, ok := ctxutil.EmailFromCtx(r.Context())
	if !ok {
		return nil, domain.ErrIdentity
	}
	return users.Resolve(r.Context(), email)
}
