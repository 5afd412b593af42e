package main

import (
	"context"
	"database/sql"
	"errors"
	"log/slog"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	_ "github.com/jackc/pgx/v5/stdlib"

	"monfluxrss/internal/common/pagination"
	pgRepo "monfluxrss/internal/infra/adapter/persistence/postgres"
	"monfluxrss/internal/infra/db"
	"monfluxrss/internal/infra/pipeline"
	"monfluxrss/internal/observability/logging"

	artUC "monfluxrss/internal/usecase/article"
	srcUC "monfluxrss/internal/usecase/source"

	hhttp "monfluxrss/internal/handler/http"
	harticle "monfluxrss/internal/handler/http/article"
	hauth "monfluxrss/internal/handler/http/auth"
	"monfluxrss/internal/handler/http/requestid"
	hsrc "monfluxrss/internal/handler/http/source"
	authservice "monfluxrss/internal/service/auth"
)

func main() {
	logger := logging.NewLogger()
	validateAdminCredentials(logger)
	validateJWTSecret(logger)

	database := initDatabase(logger)
	defer func() {
		if err := database.Close(); err != nil {
			logger.Error("failed to close database", slog.Any("error", err))
		}
	}()

	version := getVersion()
	handler, tokenLimiter := setupServer(logger, database, version)

	runServer(logger, handler, tokenLimiter, version)
}

// validateAdminCredentials refuses to start without admin credentials.
// A server without them could never mint a token, so failing fast beats
// a confusing 401 at runtime.
func validateAdminCredentials(logger *slog.Logger) {
	if os.Getenv("ADMIN_USER") == "" || os.Getenv("ADMIN_USER_PASSWORD") == "" {
		logger.Error("ADMIN_USER and ADMIN_USER_PASSWORD must be set")
		os.Exit(1)
	}
}

// validateJWTSecret validates the JWT_SECRET environment variable for security requirements.
func validateJWTSecret(logger *slog.Logger) {
	secret := os.Getenv("JWT_SECRET")
	if secret == "" {
		logger.Error("JWT_SECRET must be set")
		os.Exit(1)
	}
	// Enforce at least 32 characters (256 bits)
	if len(secret) < 32 {
		logger.Error("JWT_SECRET must be at least 32 characters (256 bits)")
		os.Exit(1)
	}
	// Reject well-known weak secrets
	weakSecrets := []string{"secret", "password", "test", "admin", "default"}
	for _, weak := range weakSecrets {
		if secret == weak || secret == weak+"123" {
			logger.Error("JWT_SECRET must not be a common weak value", slog.String("weak_value", weak))
			os.Exit(1)
		}
	}
}

// initDatabase opens the database connection and runs migrations.
func initDatabase(logger *slog.Logger) *sql.DB {
	database := db.Open()
	if err := db.MigrateUp(database); err != nil {
		logger.Error("failed to migrate database", slog.Any("error", err))
		os.Exit(1)
	}
	return database
}

// getVersion returns the application version from environment or default.
func getVersion() string {
	version := os.Getenv("VERSION")
	if version == "" {
		version = "dev"
	}
	return version
}

// setupServer configures and returns the HTTP handler with all routes and
// middleware, plus the token endpoint rate limiter (the caller starts its
// cleanup goroutine).
func setupServer(logger *slog.Logger, database *sql.DB, version string) (http.Handler, *hauth.RateLimiter) {
	srcSvc := &srcUC.Service{Repo: pgRepo.NewSourceRepo(database)}
	artSvc := &artUC.Service{Repo: pgRepo.NewArticleRepo(database)}

	fetchSvc, err := pipeline.BuildFetchService(logger, database)
	if err != nil {
		logger.Error("failed to build fetch service", slog.Any("error", err))
		os.Exit(1)
	}

	// The token endpoint is the obvious brute-force target: 5 requests per
	// minute per client, small burst.
	tokenLimiter := hauth.NewRateLimiter(5, 5)

	weakPasswords := []string{"password", "123456", "admin", "test", "secret"}
	authProvider := hauth.NewBasicAuthProvider(12, weakPasswords)
	authService := authservice.NewAuthService(authProvider, hauth.PublicEndpoints)

	paginationCfg := pagination.LoadFromEnv()

	mux := http.NewServeMux()
	mux.Handle("POST /auth/token", tokenLimiter.Middleware(hauth.TokenHandler(authService)))

	mux.Handle("/health", &hhttp.HealthHandler{DB: database, Version: version})
	mux.Handle("/ready", &hhttp.ReadyHandler{DB: database})
	mux.Handle("/live", &hhttp.LiveHandler{})
	mux.Handle("/metrics", hhttp.MetricsHandler())

	hsrc.Register(mux, srcSvc)
	harticle.Register(mux, artSvc, fetchSvc, paginationCfg, logger)

	return applyMiddleware(logger, mux), tokenLimiter
}

// applyMiddleware wraps the mux with the middleware chain.
// Order (outermost first): Request ID → Recovery → Logging → Input
// Validation → Body Limit → Metrics → Timeout → Authorization → routes.
func applyMiddleware(logger *slog.Logger, handler http.Handler) http.Handler {
	chain := hauth.Authz(handler)
	chain = withRequestTimeout(15*time.Second, chain)
	chain = hhttp.MetricsMiddleware(chain)
	chain = hhttp.LimitRequestBody(1 << 20)(chain) // 1MB limit
	chain = hhttp.InputValidation()(chain)
	chain = hhttp.Logging(logger)(chain)
	chain = hhttp.Recover(logger)(chain)
	chain = requestid.Middleware(chain)
	return chain
}

// withRequestTimeout applies the per-request deadline to every route except
// the manual refresh trigger, which runs the full pipeline synchronously and
// sets its own deadline.
func withRequestTimeout(d time.Duration, next http.Handler) http.Handler {
	timed := hhttp.Timeout(d)(next)
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == "/api/update-articles" {
			next.ServeHTTP(w, r)
			return
		}
		timed.ServeHTTP(w, r)
	})
}

// runServer starts the HTTP server and handles graceful shutdown.
func runServer(logger *slog.Logger, handler http.Handler, tokenLimiter *hauth.RateLimiter, version string) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Evict idle token-endpoint clients in the background.
	tokenLimiter.StartCleanup(ctx, 5*time.Minute)

	addr := os.Getenv("API_ADDR")
	if addr == "" {
		addr = ":8080"
	}

	srv := &http.Server{
		Addr:              addr,
		Handler:           handler,
		ReadHeaderTimeout: 10 * time.Second, // Prevent Slowloris attacks
		BaseContext: func(_ net.Listener) context.Context {
			return ctx
		},
	}

	go func() {
		logger.Info("server starting",
			slog.String("addr", addr),
			slog.String("version", version))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("server failed", slog.Any("error", err))
			os.Exit(1)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Info("shutting down server...")

	cancel()

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer shutdownCancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("server shutdown failed", slog.Any("error", err))
	}
	logger.Info("server stopped")
}
