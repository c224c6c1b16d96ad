package config

import (
	"fmt"
	"net/url"
	"regexp"
)

var hexColorRe = regexp.MustCompile(`^#[0-9a-fA-F]{6}$`)

// Validate performs business-rule validation on the loaded configuration.
// It must be called after loading; Load calls it automatically.
func (c *Config) Validate() error {
	if len(c.Auth.JWTSecret) < 32 {
		return fmt.Errorf("auth.jwt_secret must be at least 32 characters (got %d)", len(c.Auth.JWTSecret))
	}
	if c.Auth.TokenTTL <= 0 {
		return fmt.Errorf("auth.token_ttl must be > 0 (got %v)", c.Auth.TokenTTL)
	}
	if c.Auth.StateTTL <= 0 {
		return fmt.Errorf("auth.state_ttl must be > 0 (got %v)", c.Auth.StateTTL)
	}
	if !c.Auth.SpotifyConfigured() {
		return fmt.Errorf("auth.spotify_client_id and auth.spotify_client_secret must be configured")
	}
	if c.Auth.JWTIssuer == "" || c.Auth.JWTAudience == "" {
		return fmt.Errorf("auth.jwt_issuer and auth.jwt_audience are required")
	}
	if _, err := url.ParseRequestURI(c.Auth.FrontendBaseURL); err != nil {
		return fmt.Errorf("auth.frontend_base_url: %w", err)
	}

	if err := c.Favorites.validate(); err != nil {
		return fmt.Errorf("favorites: %w", err)
	}

	if c.RateLimit.AuthPerMinute <= 0 {
		return fmt.Errorf("rate_limit.auth_per_minute must be > 0 (got %d)", c.RateLimit.AuthPerMinute)
	}

	return nil
}

func (f *FavoritesConfig) validate() error {
	if !hexColorRe.MatchString(f.DefaultColor) {
		return fmt.Errorf("default_color must look like #RRGGBB (got %q)", f.DefaultColor)
	}
	if f.RecentSearchesLimit <= 0 {
		return fmt.Errorf("recent_searches_limit must be > 0 (got %d)", f.RecentSearchesLimit)
	}
	return nil
}
