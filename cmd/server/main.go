// Package main initializes and starts the AuthKeeper HTTP server,
// setting up configuration, logging, the user store, services, and
// handlers.
package main

import (
	"cmp"
	"fmt"

	nethttp "net/http"

	"github.com/atinyakov/AuthKeeper/internal/config"
	"github.com/atinyakov/AuthKeeper/internal/db"
	"github.com/atinyakov/AuthKeeper/internal/hasher"
	"github.com/atinyakov/AuthKeeper/internal/logger"
	"github.com/atinyakov/AuthKeeper/internal/repository"
	"github.com/atinyakov/AuthKeeper/internal/server/handler/http"
	"github.com/atinyakov/AuthKeeper/internal/service"
	"go.uber.org/zap"
)

var (
	// version holds the build version set via ldflags.
	version string
	// buildDate holds the build timestamp set via ldflags.
	buildDate string
)

func main() {
	// Parse command-line and environment configuration.
	options := config.Parse()
	addr := options.Port

	// Print build metadata (or "N/A" if unset).
	fmt.Printf("Build version: %s\n", cmp.Or(version, "N/A"))
	fmt.Printf("Build date: %s\n", cmp.Or(buildDate, "N/A"))

	// Initialize structured logging.
	log := logger.New()
	defer func() { _ = log.Log.Sync() }()
	if err := log.Init("info"); err != nil {
		log.Log.Fatal("failed to init logger", zap.Error(err))
	}
	zapLogger := log.Log

	// Pick the user store: Postgres when a DSN is configured, the
	// in-memory store otherwise.
	var userRepo service.UserRepository
	if options.DatabaseDSN != "" {
		postgresDB, err := db.InitPostgres(options.DatabaseDSN)
		if err != nil {
			zapLogger.Fatal("cannot init database", zap.Error(err))
		}
		userRepo = repository.NewPostgresUserRepository(postgresDB)
		zapLogger.Info("using postgres user store")
	} else {
		userRepo = repository.NewMemoryUserRepository()
		zapLogger.Info("using in-memory user store")
	}

	// Initialize the business-logic service and its password hasher.
	authService := service.NewAuthService(userRepo, hasher.NewArgon2id())

	// Create the HTTP handler for auth endpoints.
	authHandler := &http.AuthHandler{AuthService: authService}

	// Build the router with middleware and routes.
	router := http.NewRouter(authHandler, zapLogger)

	zapLogger.Info("starting HTTP server", zap.String("addr", addr))
	if err := nethttp.ListenAndServe(addr, router); err != nil {
		zapLogger.Fatal("failed to start HTTP server", zap.Error(err))
	}
}
