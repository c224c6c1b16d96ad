// Package app wires configuration, storage, services and the HTTP transport
// into a running server.
package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"strconv"

	"golang.org/x/sync/errgroup"

	"github.com/heartmarshall/echoplay-backend/internal/adapter/postgres"
	categoryrepo "github.com/heartmarshall/echoplay-backend/internal/adapter/postgres/category"
	favoriterepo "github.com/heartmarshall/echoplay-backend/internal/adapter/postgres/favorite"
	searchrepo "github.com/heartmarshall/echoplay-backend/internal/adapter/postgres/search"
	userrepo "github.com/heartmarshall/echoplay-backend/internal/adapter/postgres/user"
	"github.com/heartmarshall/echoplay-backend/internal/adapter/provider/spotify"
	"github.com/heartmarshall/echoplay-backend/internal/adapter/redis"
	"github.com/heartmarshall/echoplay-backend/internal/auth"
	"github.com/heartmarshall/echoplay-backend/internal/config"
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

// Run is the application entry point. It loads configuration, connects to
// PostgreSQL and Redis, builds the services and serves HTTP until ctx is
// cancelled, then shuts the server down gracefully.
func Run(ctx context.Context) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	logger := NewLogger(cfg.Log)

	logger.Info("starting application",
		slog.String("version", BuildVersion()),
		slog.String("log_level", cfg.Log.Level),
	)

	if cfg.Database.MigrateOnStart {
		applied, err := postgres.Migrate(ctx, cfg.Database.DSN)
		if err != nil {
			return fmt.Errorf("migrate: %w", err)
		}
		logger.Info("migrations applied", slog.Int("count", applied))
	}

	pool, err := postgres.NewPool(ctx, cfg.Database)
	if err != nil {
		return err
	}
	defer pool.Close()

	rdb, err := redis.Connect(ctx, cfg.Redis)
	if err != nil {
		return err
	}
	defer rdb.Close()

	// Adapters.
	states := redis.NewStateStore(rdb, cfg.Auth.StateTTL)
	tokens := auth.NewTokenIssuer(cfg.Auth.JWTSecret, cfg.Auth.JWTIssuer, cfg.Auth.JWTAudience, cfg.Auth.TokenTTL)
	provider := spotify.NewProvider(spotify.Config{
		ClientID:     cfg.Auth.SpotifyClientID,
		ClientSecret: cfg.Auth.SpotifyClientSecret,
		RedirectURL:  cfg.Auth.SpotifyRedirectURI,
	}, logger)

	txm := postgres.NewTxManager(pool)
	users := userrepo.New(pool)
	favorites := favoriterepo.New(pool)
	categories := categoryrepo.New(pool)
	searches := searchrepo.New(pool)
	recorder := metrics.NewRecorder()

	// Services.
	identitySvc := identity.NewService(logger, users)
	authService := authsvc.NewService(logger, states, provider, identitySvc, tokens, cfg.Auth)
	favoriteSvc := favorite.NewService(logger, favorites, categories, txm, recorder)
	categorySvc := category.NewService(logger, categories, favorites, txm, recorder, cfg.Favorites.DefaultColor)
	summarySvc := summary.NewService(logger, favorites, categories)
	searchSvc := search.NewService(logger, searches, txm, cfg.Favorites.RecentSearchesLimit)

	// Transport.
	limiter := middleware.NewRateLimiter(cfg.RateLimit.CleanupInterval)
	defer limiter.Stop()

	router := rest.NewRouter(rest.Handlers{
		Health:     rest.NewHealthHandler(pool, states, Version),
		Auth:       rest.NewAuthHandler(authService, identitySvc, logger),
		Favorites:  rest.NewFavoriteHandler(favoriteSvc, summarySvc, identitySvc, logger),
		Categories: rest.NewCategoryHandler(categorySvc, identitySvc, logger),
		Search:     rest.NewSearchHandler(searchSvc, identitySvc, logger),
		Admin:      rest.NewAdminHandler(searchSvc, identitySvc, identitySvc, logger),
	}, limiter.Limit(cfg.RateLimit.AuthPerMinute))

	handler := middleware.Chain(
		middleware.RequestID(),
		middleware.Logger(logger),
		middleware.Recovery(logger),
		middleware.CORS(cfg.CORS),
		middleware.Auth(authService),
	)(router)

	srv := &http.Server{
		Addr:         net.JoinHostPort(cfg.Server.Host, strconv.Itoa(cfg.Server.Port)),
		Handler:      handler,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
	}

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		logger.Info("http server listening", slog.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("http server: %w", err)
		}
		return nil
	})

	g.Go(func() error {
		<-gctx.Done()
		logger.Info("shutting down http server")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
		defer cancel()

		if err := srv.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("http shutdown: %w", err)
		}
		return nil
	})

	if err := g.Wait(); err != nil {
		return err
	}

	logger.Info("application stopped")
	return nil
}
