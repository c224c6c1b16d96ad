// Package spotify adapts the Spotify Accounts service to the application's
// OAuth identity model: it builds authorization URLs, exchanges codes and
// fetches the profile of the authorizing user.
package spotify

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"time"

	"golang.org/x/oauth2"

	"github.com/heartmarshall/echoplay-backend/internal/auth"
	"github.com/heartmarshall/echoplay-backend/internal/domain"
)

const (
	defaultAuthURL  = "https://accounts.spotify.com/authorize"
	defaultTokenURL = "https://accounts.spotify.com/api/token"
	defaultBaseURL  = "https://api.spotify.com/v1"
)

// Scopes requested at authorization. user-read-email is required to bind
// the session to an email.
var Scopes = []string{"user-read-email", "user-read-private"}

// ErrNoEmail is returned when the Spotify profile has no email address.
var ErrNoEmail = fmt.Errorf("spotify: profile has no email: %w", domain.ErrIdentity)

// Config holds the OAuth client settings. Empty URLs fall back to the
// public Spotify endpoints.
type Config struct {
	ClientID     string
	ClientSecret string
	RedirectURL  string
	AuthURL      string
	TokenURL     string
	APIBaseURL   string
}

// Provider exchanges Spotify authorization codes for user identity.
type Provider struct {
	oauth      *oauth2.Config
	baseURL    string
	httpClient *http.Client
	log        *slog.Logger
}

// NewProvider creates a Spotify OAuth provider.
func NewProvider(cfg Config, logger *slog.Logger) *Provider {
	authURL := cfg.AuthURL
	if authURL == "" {
		authURL = defaultAuthURL
	}
	tokenURL := cfg.TokenURL
	if tokenURL == "" {
		tokenURL = defaultTokenURL
	}
	baseURL := cfg.APIBaseURL
	if baseURL == "" {
		baseURL = defaultBaseURL
	}

	return &Provider{
		oauth: &oauth2.Config{
			ClientID:     cfg.ClientID,
			ClientSecret: cfg.ClientSecret,
			RedirectURL:  cfg.RedirectURL,
			Scopes:       Scopes,
			Endpoint: oauth2.Endpoint{
				AuthURL:   authURL,
				TokenURL:  tokenURL,
				AuthStyle: oauth2.AuthStyleInHeader,
			},
		},
		baseURL:    baseURL,
		httpClient: &http.Client{Timeout: 10 * time.Second},
		log:        logger.With("adapter", "spotify_oauth"),
	}
}

// AuthCodeURL returns the Spotify consent page URL carrying state.
func (p *Provider) AuthCodeURL(state string) string {
	return p.oauth.AuthCodeURL(state, oauth2.AccessTypeOnline)
}

// profileResponse is the subset of GET /v1/me used here.
type profileResponse struct {
	ID          string `json:"id"`
	DisplayName string `json:"display_name"`
	Email       string `json:"email"`
}

// Exchange trades an authorization code for an access token and returns the
// identity of the Spotify user who granted it.
func (p *Provider) Exchange(ctx context.Context, code string) (*auth.OAuthIdentity, error) {
	ctx = context.WithValue(ctx, oauth2.HTTPClient, p.httpClient)

	token, err := p.oauth.Exchange(ctx, code)
	if err != nil {
		p.log.ErrorContext(ctx, "spotify token exchange failed", slog.String("error", err.Error()))
		return nil, fmt.Errorf("spotify token exchange: %w", err)
	}

	profile, err := p.fetchProfile(ctx, token)
	if err != nil {
		return nil, err
	}
	if profile.Email == "" {
		return nil, ErrNoEmail
	}

	identity := &auth.OAuthIdentity{
		Email:      profile.Email,
		ProviderID: profile.ID,
	}
	if profile.DisplayName != "" {
		identity.DisplayName = &profile.DisplayName
	}

	p.log.DebugContext(ctx, "spotify oauth success", slog.String("spotify_id", profile.ID))

	return identity, nil
}

func (p *Provider) fetchProfile(ctx context.Context, token *oauth2.Token) (*profileResponse, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, p.baseURL+"/me", nil)
	if err != nil {
		return nil, fmt.Errorf("create profile request: %w", err)
	}

	resp, err := p.oauth.Client(ctx, token).Do(req)
	if err != nil {
		p.log.ErrorContext(ctx, "spotify profile request failed", slog.String("error", err.Error()))
		return nil, fmt.Errorf("spotify profile: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 1024))
		p.log.ErrorContext(ctx, "spotify profile request failed",
			slog.Int("status", resp.StatusCode),
			slog.String("body", string(body)))
		return nil, fmt.Errorf("spotify profile: unexpected status %d", resp.StatusCode)
	}

	var profile profileResponse
	if err := json.NewDecoder(resp.Body).Decode(&profile); err != nil {
		return nil, fmt.Errorf("decode spotify profile: %w", err)
	}

	return &profile, nil
}
