// Package auth runs the Spotify authorization-code flow and issues session
// tokens bound to the caller's email.
package auth

import (
	"context"
	"log/slog"
	"net/url"
	"strings"
	"time"

	"github.com/heartmarshall/echoplay-backend/internal/auth"
	"github.com/heartmarshall/echoplay-backend/internal/config"
	"github.com/heartmarshall/echoplay-backend/internal/domain"
)

// stateStore issues and consumes single-use OAuth state values.
type stateStore interface {
	Issue(ctx context.Context) (string, error)
	Consume(ctx context.Context, state string) error
}

// oauthProvider is the external identity provider.
type oauthProvider interface {
	AuthCodeURL(state string) string
	Exchange(ctx context.Context, code string) (*auth.OAuthIdentity, error)
}

// identityResolver maps an email to a user, creating it on first sight.
type identityResolver interface {
	Resolve(ctx context.Context, email string) (*domain.User, error)
}

// tokenIssuer signs and verifies session tokens.
type tokenIssuer interface {
	Issue(email string) (string, error)
	Verify(token string) (*auth.Claims, error)
	TTL() time.Duration
}

// Service implements auth operations.
type Service struct {
	log        *slog.Logger
	states     stateStore
	provider   oauthProvider
	identities identityResolver
	tokens     tokenIssuer
	cfg        config.AuthConfig
}

// NewService creates a new auth service instance.
func NewService(
	logger *slog.Logger,
	states stateStore,
	provider oauthProvider,
	identities identityResolver,
	tokens tokenIssuer,
	cfg config.AuthConfig,
) *Service {
	return &Service{
		log:        logger.With("service", "auth"),
		states:     states,
		provider:   provider,
		identities: identities,
		tokens:     tokens,
		cfg:        cfg,
	}
}

// SuccessRedirect is the frontend page that receives a fresh session token.
func (s *Service) SuccessRedirect(token string) string {
	return s.frontend() + "/auth/success?token=" + url.QueryEscape(token)
}

// ErrorRedirect is the frontend page shown when the callback fails. The code
// comes from a *CallbackError, anything else is reported as server_error.
func (s *Service) ErrorRedirect(err error) string {
	return s.frontend() + "/auth/error?error=" + url.QueryEscape(CallbackErrorCode(err))
}

func (s *Service) frontend() string {
	return strings.TrimRight(s.cfg.FrontendBaseURL, "/")
}
