package auth

import (
	"context"
	"log/slog"

	"github.com/heartmarshall/echoplay-backend/internal/domain"
)

// LogoutMessage is returned to the client after logout.
const LogoutMessage = "Logged out successfully. Please discard your token."

// Logout acknowledges a logout. Tokens are stateless and stay valid until
// they expire, so the client is expected to discard its copy.
func (s *Service) Logout(ctx context.Context) string {
	s.log.InfoContext(ctx, "user logged out")
	return LogoutMessage
}

// ValidateToken verifies a session token and returns the email it is bound to.
// Returns ErrUnauthorized if the token is invalid or expired.
func (s *Service) ValidateToken(ctx context.Context, token string) (string, error) {
	claims, err := s.tokens.Verify(token)
	if err != nil {
		s.log.DebugContext(ctx, "token rejected", slog.String("error", err.Error()))
		return "", domain.ErrUnauthorized
	}
	return claims.Email, nil
}
