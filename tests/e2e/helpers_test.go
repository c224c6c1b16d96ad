//go:build e2e

package e2e_test

import (
	"bytes"
	"context"
	"crypto/rand"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/require"

	"github.com/heartmarshall/echoplay-backend/internal/adapter/postgres"
	categoryrepo "github.com/heartmarshall/echoplay-backend/internal/adapter/postgres/category"
	favoriterepo "github.com/heartmarshall/echoplay-backend/internal/adapter/postgres/favorite"
	searchrepo "github.com/heartmarshall/echoplay-backend/internal/adapter/postgres/search"
	"github.com/heartmarshall/echoplay-backend/internal/adapter/postgres/testhelper"
	userrepo "github.com/heartmarshall/echoplay-backend/internal/adapter/postgres/user"
	"github.com/heartmarshall/echoplay-backend/internal/adapter/provider/spotify"
	authpkg "github.com/heartmarshall/echoplay-backend/internal/auth"
	"github.com/heartmarshall/echoplay-backend/internal/config"
	"github.com/heartmarshall/echoplay-backend/internal/domain"
	"github.com/heartmarshall/echoplay-backend/internal/metrics"
	authsvc "github.com/heartmarshall/echoplay-backend/internal/service/auth"
	"github.com/heartmarshall/echoplay-backend/internal/service/category"
	"github.com/heartmarshall/echoplay-backend/internal/service/favorite"
	"github.com/heartmarshall/echoplay-backend/internal/service/identity"
	"github.com/heartmarshall/echoplay-backend/internal/service/search"
	"github.com/heartmarshall/echoplay-backend/internal/service/summary"
	"github.com/heartmarshall/echoplay-backend/internal/transport/middleware"
	"github.com/heartmarshall/echoplay-backend/internal/transport/rest"
)

const (
	frontendURL   = "http://frontend.test"
	spotifyCode   = "e2e_code"
	spotifyAccess = "e2e_access_token"
)

// ---------------------------------------------------------------------------
// testServer wraps the full-stack HTTP server for E2E tests.
// ---------------------------------------------------------------------------

type testServer struct {
	URL    string
	Client *http.Client
	Pool   *pgxpool.Pool
	tokens *authpkg.TokenIssuer
}

// testLogWriter adapts testing.T to io.Writer for slog.
type testLogWriter struct{ t *testing.T }

func (w testLogWriter) Write(p []byte) (int, error) {
	w.t.Helper()
	w.t.Log(string(p))
	return len(p), nil
}

// memoryStates is an in-process OAuth state store with the same single-use
// semantics as the Redis one.
type memoryStates struct {
	mu     sync.Mutex
	issued map[string]struct{}
}

func (m *memoryStates) Issue(_ context.Context) (string, error) {
	b := make([]byte, 16)
	if _, err := rand.Read(b); err != nil {
		return "", err
	}
	state := hex.EncodeToString(b)

	m.mu.Lock()
	defer m.mu.Unlock()
	m.issued[state] = struct{}{}
	return state, nil
}

func (m *memoryStates) Consume(_ context.Context, state string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.issued[state]; !ok {
		return domain.ErrUnauthorized
	}
	delete(m.issued, state)
	return nil
}

// newFakeSpotify serves the token endpoint and /v1/me for a fixed email.
func newFakeSpotify(t *testing.T, email string) *httptest.Server {
	t.Helper()

	mux := http.NewServeMux()
	mux.HandleFunc("POST /api/token", func(w http.ResponseWriter, r *http.Request) {
		if err := r.ParseForm(); err != nil || r.FormValue("code") != spotifyCode {
			w.Header().Set("Content-Type", "application/json")
			w.WriteHeader(http.StatusBadRequest)
			_, _ = w.Write([]byte(`{"error":"invalid_grant"}`))
			return
		}
		w.Header().Set("Content-Type", "application/json")
		_, _ = fmt.Fprintf(w, `{"access_token":%q,"token_type":"Bearer","expires_in":3600}`, spotifyAccess)
	})
	mux.HandleFunc("GET /v1/me", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(map[string]string{
			"id":           "spotify-user",
			"display_name": "E2E Listener",
			"email":        email,
		})
	})

	srv := httptest.NewServer(mux)
	t.Cleanup(srv.Close)
	return srv
}

// ---------------------------------------------------------------------------
// setupTestServer bootstraps the full application stack backed by
// a real PostgreSQL container (shared via testhelper). spotifyEmail is the
// email the fake provider reports for the OAuth flow.
// ---------------------------------------------------------------------------

func setupTestServer(t *testing.T, spotifyEmail string) *testServer {
	t.Helper()

	// 1. Get pool from testcontainers-backed helper.
	pool := testhelper.SetupTestDB(t)

	// 2. Infrastructure.
	logger := slog.New(slog.NewTextHandler(testLogWriter{t}, nil))
	txm := postgres.NewTxManager(pool)
	recorder := metrics.NewRecorder()

	// 3. Repositories.
	userRepo := userrepo.New(pool)
	favoriteRepo := favoriterepo.New(pool)
	categoryRepo := categoryrepo.New(pool)
	searchRepo := searchrepo.New(pool)

	// 4. Auth adapters.
	authCfg := config.AuthConfig{
		JWTSecret:       "test-secret-at-least-32-chars-long!!",
		JWTIssuer:       "EchoPlay",
		JWTAudience:     "EchoPlay-Client",
		TokenTTL:        15 * time.Minute,
		FrontendBaseURL: frontendURL,
		StateTTL:        time.Minute,
	}
	tokens := authpkg.NewTokenIssuer(authCfg.JWTSecret, authCfg.JWTIssuer, authCfg.JWTAudience, authCfg.TokenTTL)

	fake := newFakeSpotify(t, spotifyEmail)
	provider := spotify.NewProvider(spotify.Config{
		ClientID:     "e2e-client",
		ClientSecret: "e2e-secret",
		RedirectURL:  "http://api.test/auth/spotify/callback",
		AuthURL:      fake.URL + "/authorize",
		TokenURL:     fake.URL + "/api/token",
		APIBaseURL:   fake.URL + "/v1",
	}, logger)
	states := &memoryStates{issued: make(map[string]struct{})}

	// 5. Services.
	identityService := identity.NewService(logger, userRepo)
	authService := authsvc.NewService(logger, states, provider, identityService, tokens, authCfg)
	favoriteService := favorite.NewService(logger, favoriteRepo, categoryRepo, txm, recorder)
	categoryService := category.NewService(logger, categoryRepo, favoriteRepo, txm, recorder, "#000000")
	summaryService := summary.NewService(logger, favoriteRepo, categoryRepo)
	searchService := search.NewService(logger, searchRepo, txm, 20)

	// 6. Router + middleware chain.
	limiter := middleware.NewRateLimiter(time.Minute)
	t.Cleanup(limiter.Stop)

	router := rest.NewRouter(rest.Handlers{
		Health:     rest.NewHealthHandler(pool, nil, "test-version"),
		Auth:       rest.NewAuthHandler(authService, identityService, logger),
		Favorites:  rest.NewFavoriteHandler(favoriteService, summaryService, identityService, logger),
		Categories: rest.NewCategoryHandler(categoryService, identityService, logger),
		Search:     rest.NewSearchHandler(searchService, identityService, logger),
		Admin:      rest.NewAdminHandler(searchService, identityService, identityService, logger),
	}, limiter.Limit(1000))

	handler := middleware.Chain(
		middleware.RequestID(),
		middleware.Logger(logger),
		middleware.Recovery(logger),
		middleware.CORS(config.CORSConfig{
			AllowedOrigins:   "*",
			AllowedMethods:   "GET,POST,PUT,DELETE,OPTIONS",
			AllowedHeaders:   "Authorization,Content-Type",
			AllowCredentials: true,
			MaxAge:           86400,
		}),
		middleware.Auth(authService),
	)(router)

	// 7. httptest server. Redirects are returned to the test, not followed.
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	client := srv.Client()
	client.CheckRedirect = func(*http.Request, []*http.Request) error {
		return http.ErrUseLastResponse
	}

	return &testServer{
		URL:    srv.URL,
		Client: client,
		Pool:   pool,
		tokens: tokens,
	}
}

// tokenFor issues a session token for email. The user row is created on the
// first authenticated request.
func (ts *testServer) tokenFor(t *testing.T, email string) string {
	t.Helper()
	tok, err := ts.tokens.Issue(email)
	require.NoError(t, err)
	return tok
}

// uniqueEmail returns a fresh address so tests sharing the database do not
// see each other's rows.
func uniqueEmail(prefix string) string {
	return fmt.Sprintf("%s-%s@example.com", prefix, uuid.NewString()[:8])
}

// do sends a JSON request and returns the status code and raw body.
func (ts *testServer) do(t *testing.T, method, path string, body any, token string) (int, []byte) {
	t.Helper()

	var reader io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(raw)
	}

	req, err := http.NewRequest(method, ts.URL+path, reader)
	require.NoError(t, err)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := ts.Client.Do(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	return resp.StatusCode, raw
}

// doJSON is like do but decodes the response body into out.
func (ts *testServer) doJSON(t *testing.T, method, path string, body any, token string, out any) int {
	t.Helper()

	status, raw := ts.do(t, method, path, body, token)
	if out != nil && len(raw) > 0 {
		require.NoError(t, json.Unmarshal(raw, out), "body: %s", raw)
	}
	return status
}
