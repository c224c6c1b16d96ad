package auth

import (
	"errors"
	"fmt"
	"time"

	"github.com/heartmarshall/echoplay-backend/internal/domain"
)

// LoginResult is a successful callback: the session token and its owner.
type LoginResult struct {
	Token     string
	ExpiresAt time.Time
	User      *domain.User
}

// Callback failure codes shown to the frontend.
const (
	CodeNoCode       = "no_code"
	CodeInvalidState = "invalid_state"
	CodeExchange     = "token_exchange_failed"
	CodeNoEmail      = "no_email"
	CodeServerError  = "server_error"
)

const maxProviderCodeLen = 64

// CallbackError is a failed callback with the code reported to the frontend.
type CallbackError struct {
	Code string
	Err  error
}

func (e *CallbackError) Error() string {
	if e.Err == nil {
		return "oauth callback: " + e.Code
	}
	return fmt.Sprintf("oauth callback: %s: %v", e.Code, e.Err)
}

func (e *CallbackError) Unwrap() error { return e.Err }

// CallbackErrorCode extracts the frontend code from err.
func CallbackErrorCode(err error) string {
	var ce *CallbackError
	if errors.As(err, &ce) {
		return ce.Code
	}
	return CodeServerError
}

func callbackError(code string, err error) *CallbackError {
	return &CallbackError{Code: code, Err: err}
}

// providerCode keeps a provider-supplied error code printable and short.
func providerCode(code string) string {
	out := make([]rune, 0, len(code))
	for _, r := range code {
		if len(out) == maxProviderCodeLen {
			break
		}
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9', r == '_', r == '-':
			out = append(out, r)
		}
	}
	if len(out) == 0 {
		return CodeServerError
	}
	return string(out)
}

// ErrStateMismatch is wrapped when the callback state was never issued,
// already used or expired.
var ErrStateMismatch = fmt.Errorf("oauth state mismatch: %w", domain.ErrUnauthorized)
