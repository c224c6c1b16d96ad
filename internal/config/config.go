package config

import "time"

// Config is the root application configuration.
type Config struct {
	Server    ServerConfig    `yaml:"server"`
	Database  DatabaseConfig  `yaml:"database"`
	Auth      AuthConfig      `yaml:"auth"`
	Redis     RedisConfig     `yaml:"redis"`
	Favorites FavoritesConfig `yaml:"favorites"`
	Log       LogConfig       `yaml:"log"`
	CORS      CORSConfig      `yaml:"cors"`
	RateLimit RateLimitConfig `yaml:"rate_limit"`
}

// CORSConfig holds CORS settings.
type CORSConfig struct {
	AllowedOrigins   string `yaml:"allowed_origins"   env:"CORS_ALLOWED_ORIGINS"   env-default:"http://localhost:3000"`
	AllowedMethods   string `yaml:"allowed_methods"   env:"CORS_ALLOWED_METHODS"   env-default:"GET,POST,PUT,DELETE,OPTIONS"`
	AllowedHeaders   string `yaml:"allowed_headers"   env:"CORS_ALLOWED_HEADERS"   env-default:"Authorization,Content-Type"`
	AllowCredentials bool   `yaml:"allow_credentials" env:"CORS_ALLOW_CREDENTIALS" env-default:"true"`
	MaxAge           int    `yaml:"max_age"           env:"CORS_MAX_AGE"           env-default:"86400"`
}

// ServerConfig holds HTTP server settings.
type ServerConfig struct {
	Host            string        `yaml:"host"             env:"SERVER_HOST"             env-default:"0.0.0.0"`
	Port            int           `yaml:"port"             env:"SERVER_PORT"             env-default:"8080"`
	ReadTimeout     time.Duration `yaml:"read_timeout"     env:"SERVER_READ_TIMEOUT"     env-default:"10s"`
	WriteTimeout    time.Duration `yaml:"write_timeout"    env:"SERVER_WRITE_TIMEOUT"    env-default:"30s"`
	IdleTimeout     time.Duration `yaml:"idle_timeout"     env:"SERVER_IDLE_TIMEOUT"     env-default:"60s"`
	ShutdownTimeout time.Duration `yaml:"shutdown_timeout" env:"SERVER_SHUTDOWN_TIMEOUT" env-default:"10s"`
}

// DatabaseConfig holds PostgreSQL connection settings.
type DatabaseConfig struct {
	DSN             string        `yaml:"dsn"                env:"DATABASE_DSN"                env-required:"true"`
	MaxConns        int32         `yaml:"max_conns"          env:"DATABASE_MAX_CONNS"          env-default:"25"`
	MinConns        int32         `yaml:"min_conns"          env:"DATABASE_MIN_CONNS"          env-default:"5"`
	MaxConnLifetime time.Duration `yaml:"max_conn_lifetime"  env:"DATABASE_MAX_CONN_LIFETIME"  env-default:"1h"`
	MaxConnIdleTime time.Duration `yaml:"max_conn_idle_time" env:"DATABASE_MAX_CONN_IDLE_TIME" env-default:"30m"`
	MigrateOnStart  bool          `yaml:"migrate_on_start"   env:"DATABASE_MIGRATE_ON_START"   env-default:"false"`
}

// AuthConfig holds session token and Spotify OAuth settings.
type AuthConfig struct {
	JWTSecret           string        `yaml:"jwt_secret"            env:"AUTH_JWT_SECRET"            env-required:"true"`
	JWTIssuer           string        `yaml:"jwt_issuer"            env:"AUTH_JWT_ISSUER"            env-default:"EchoPlay"`
	JWTAudience         string        `yaml:"jwt_audience"          env:"AUTH_JWT_AUDIENCE"          env-default:"EchoPlay-Client"`
	TokenTTL            time.Duration `yaml:"token_ttl"             env:"AUTH_TOKEN_TTL"             env-default:"60m"`
	SpotifyClientID     string        `yaml:"spotify_client_id"     env:"AUTH_SPOTIFY_CLIENT_ID"`
	SpotifyClientSecret string        `yaml:"spotify_client_secret" env:"AUTH_SPOTIFY_CLIENT_SECRET"`
	SpotifyRedirectURI  string        `yaml:"spotify_redirect_uri"  env:"AUTH_SPOTIFY_REDIRECT_URI"  env-default:"http://localhost:8080/auth/spotify/callback"`
	FrontendBaseURL     string        `yaml:"frontend_base_url"     env:"AUTH_FRONTEND_BASE_URL"     env-default:"http://localhost:3000"`
	StateTTL            time.Duration `yaml:"state_ttl"             env:"AUTH_STATE_TTL"             env-default:"10m"`
}

// SpotifyConfigured reports whether both Spotify OAuth credentials are present.
func (c AuthConfig) SpotifyConfigured() bool {
	return c.SpotifyClientID != "" && c.SpotifyClientSecret != ""
}

// RedisConfig holds the connection settings for the OAuth state store.
type RedisConfig struct {
	Addr     string        `yaml:"addr"     env:"REDIS_ADDR"     env-default:"localhost:6379"`
	Password string        `yaml:"password" env:"REDIS_PASSWORD"`
	DB       int           `yaml:"db"       env:"REDIS_DB"       env-default:"0"`
	Timeout  time.Duration `yaml:"timeout"  env:"REDIS_TIMEOUT"  env-default:"3s"`
}

// FavoritesConfig holds favorites and search-history settings.
type FavoritesConfig struct {
	DefaultColor        string `yaml:"default_color"         env:"FAVORITES_DEFAULT_COLOR"         env-default:"#000000"`
	RecentSearchesLimit int    `yaml:"recent_searches_limit" env:"FAVORITES_RECENT_SEARCHES_LIMIT" env-default:"20"`
}

// LogConfig holds logging settings.
type LogConfig struct {
	Level  string `yaml:"level"  env:"LOG_LEVEL"  env-default:"info"`
	Format string `yaml:"format" env:"LOG_FORMAT" env-default:"json"`
}

// RateLimitConfig holds per-IP limits for the unauthenticated auth endpoints.
type RateLimitConfig struct {
	AuthPerMinute   int           `yaml:"auth_per_minute"  env:"RATE_LIMIT_AUTH_PER_MINUTE"  env-default:"20"`
	CleanupInterval time.Duration `yaml:"cleanup_interval" env:"RATE_LIMIT_CLEANUP_INTERVAL" env-default:"5m"`
}
