package auth

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/heartmarshall/echoplay-backend/internal/domain"
)

// CallbackInput holds the query parameters of the provider redirect.
type CallbackInput struct {
	Code  string
	State string
	Error string
}

// AuthorizeURL stores a fresh state value and returns the provider consent
// URL carrying it.
func (s *Service) AuthorizeURL(ctx context.Context) (string, error) {
	state, err := s.states.Issue(ctx)
	if err != nil {
		return "", fmt.Errorf("auth.AuthorizeURL issue state: %w", err)
	}
	return s.provider.AuthCodeURL(state), nil
}

// Callback completes the authorization-code flow: it consumes the state,
// exchanges the code for the provider identity, resolves that email to a user
// and issues a session token. Failures are *CallbackError values.
func (s *Service) Callback(ctx context.Context, input CallbackInput) (*LoginResult, error) {
	if input.Error != "" {
		return nil, callbackError(providerCode(input.Error), nil)
	}
	if input.Code == "" {
		return nil, callbackError(CodeNoCode, nil)
	}

	if err := s.states.Consume(ctx, input.State); err != nil {
		s.log.WarnContext(ctx, "oauth state rejected", slog.String("error", err.Error()))
		return nil, callbackError(CodeInvalidState, fmt.Errorf("%w: %w", ErrStateMismatch, err))
	}

	identity, err := s.provider.Exchange(ctx, input.Code)
	if err != nil {
		code := CodeExchange
		if errors.Is(err, domain.ErrIdentity) {
			code = CodeNoEmail
		}
		return nil, callbackError(code, err)
	}

	user, err := s.identities.Resolve(ctx, identity.Email)
	if err != nil {
		if errors.Is(err, domain.ErrIdentity) {
			return nil, callbackError(CodeNoEmail, err)
		}
		return nil, callbackError(CodeServerError, fmt.Errorf("resolve identity: %w", err))
	}

	token, err := s.tokens.Issue(user.Email)
	if err != nil {
		return nil, callbackError(CodeServerError, fmt.Errorf("issue token: %w", err))
	}

	s.log.InfoContext(ctx, "user logged in via spotify",
		slog.String("user_id", user.ID.String()),
		slog.String("provider_id", identity.ProviderID),
	)

	return &LoginResult{
		Token:     token,
		ExpiresAt: time.Now().Add(s.tokens.TTL()),
		User:      user,
	}, nil
}
