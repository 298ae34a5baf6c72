// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

// evReg is a small event registration web application: visitors browse
// events, sign up as participants, leave feedback and talk to a rule-based
// chat assistant; an admin creates events and reviews sign-ups.
package main

import (
	"context"
	"database/sql"
	"errors"
	"flag"
	"fmt"
	"io/fs"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/joho/godotenv"
	"github.com/lmittmann/tint"

	"github.com/olegiv/evreg-go/internal/config"
	"github.com/olegiv/evreg-go/internal/handler"
	"github.com/olegiv/evreg-go/internal/logging"
	"github.com/olegiv/evreg-go/internal/metrics"
	"github.com/olegiv/evreg-go/internal/middleware"
	"github.com/olegiv/evreg-go/internal/render"
	"github.com/olegiv/evreg-go/internal/session"
	"github.com/olegiv/evreg-go/internal/store"
	"github.com/olegiv/evreg-go/internal/version"
	"github.com/olegiv/evreg-go/web"
)

// Version information - injected at build time via ldflags
var (
	appVersion   = "dev"
	appGitCommit = "unknown"
	appBuildTime = "unknown"
)

func main() {
	// Parse CLI flags
	showVersion := flag.Bool("version", false, "Show version information")
	flag.BoolVar(showVersion, "v", false, "Show version information (shorthand)")
	showHelp := flag.Bool("help", false, "Show help information")
	flag.BoolVar(showHelp, "h", false, "Show help information (shorthand)")

	flag.Usage = func() {
		_, _ = fmt.Fprintf(os.Stderr, "evReg - Event Registration\n\n")
		_, _ = fmt.Fprintf(os.Stderr, "Usage: %s [options]\n\n", os.Args[0])
		_, _ = fmt.Fprintf(os.Stderr, "Options:\n")
		flag.PrintDefaults()
		_, _ = fmt.Fprintf(os.Stderr, "\nEnvironment Variables:\n")
		_, _ = fmt.Fprintf(os.Stderr, "  EVREG_SESSION_SECRET   Session encryption key (required, min 32 bytes)\n")
		_, _ = fmt.Fprintf(os.Stderr, "  EVREG_ADMIN_PASSWORD   Admin area password (required, min 8 characters)\n")
		_, _ = fmt.Fprintf(os.Stderr, "  EVREG_DB_PATH          SQLite database path (default: ./data/evreg.db)\n")
		_, _ = fmt.Fprintf(os.Stderr, "  EVREG_SERVER_PORT      Server port (default: 8080)\n")
		_, _ = fmt.Fprintf(os.Stderr, "  EVREG_ENV              Environment: development|production (default: development)\n")
		_, _ = fmt.Fprintf(os.Stderr, "  EVREG_DO_SEED          Seed demo events on startup (default: false)\n")
	}

	flag.Parse()

	if *showHelp {
		flag.Usage()
		os.Exit(0)
	}

	if *showVersion {
		_, _ = fmt.Printf("evreg %s (commit: %s, built: %s)\n", appVersion, appGitCommit, appBuildTime)
		os.Exit(0)
	}

	if err := run(); err != nil {
		slog.Error("application error", "error", err)
		os.Exit(1)
	}
}

func run() error {
	// Load .env file if present (development)
	_ = godotenv.Load()

	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	versionInfo := version.Info{
		Version:   appVersion,
		GitCommit: appGitCommit,
		BuildTime: appBuildTime,
	}

	// Setup logger
	logLevel := slog.LevelInfo
	switch cfg.LogLevel {
	case "debug":
		logLevel = slog.LevelDebug
	case "warn":
		logLevel = slog.LevelWarn
	case "error":
		logLevel = slog.LevelError
	}

	var baseHandler slog.Handler
	if cfg.IsDevelopment() {
		baseHandler = tint.NewHandler(os.Stdout, &tint.Options{Level: logLevel})
	} else {
		baseHandler = slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: logLevel})
	}
	slog.SetDefault(slog.New(baseHandler))

	// Ensure data directory exists
	dbDir := filepath.Dir(cfg.DBPath)
	if err := os.MkdirAll(dbDir, 0755); err != nil {
		return fmt.Errorf("creating data directory: %w", err)
	}

	// Initialize database
	slog.Info("initializing database", "path", cfg.DBPath)
	db, err := store.NewDB(cfg.DBPath)
	if err != nil {
		return fmt.Errorf("initializing database: %w", err)
	}
	defer func(db *sql.DB) {
		if err := db.Close(); err != nil {
			slog.Error("error closing database connection", "error", err)
		}
	}(db)

	// Run migrations
	slog.Info("running database migrations")
	if err := store.Migrate(db); err != nil {
		return fmt.Errorf("running migrations: %w", err)
	}
	slog.Info("database ready")

	// Upgrade logger to also persist WARN and ERROR records to the logs table
	slog.SetDefault(slog.New(logging.NewDBHandler(baseHandler, db)))

	// Seed demo events if enabled
	ctx := context.Background()
	if err := store.Seed(ctx, db, cfg.DoSeed); err != nil {
		return fmt.Errorf("seeding database: %w", err)
	}

	// Session manager backed by the sessions table
	sessionManager := session.New(db, cfg.IsDevelopment())

	// Template renderer
	templatesFS, err := fs.Sub(web.Templates, "templates")
	if err != nil {
		return fmt.Errorf("getting templates fs: %w", err)
	}
	renderer, err := render.New(render.Config{
		TemplatesFS:    templatesFS,
		SessionManager: sessionManager,
		IsDev:          cfg.IsDevelopment(),
	})
	if err != nil {
		return fmt.Errorf("initializing renderer: %w", err)
	}

	// Handlers
	authHandler := handler.NewAuthHandler(db, renderer, sessionManager)
	eventHandler := handler.NewEventHandler(db, renderer, sessionManager)
	feedbackHandler := handler.NewFeedbackHandler(db, renderer, sessionManager)
	chatbotHandler := handler.NewChatbotHandler()
	adminHandler := handler.NewAdminHandler(db, renderer, sessionManager, cfg.AdminPassword)

	// Router
	r := chi.NewRouter()
	r.Use(chimw.RequestID)
	r.Use(chimw.RealIP)
	r.Use(chimw.Logger)
	r.Use(chimw.Recoverer)
	r.Use(chimw.Compress(5))
	r.Use(chimw.GetHead)
	r.Use(middleware.Timeout(30 * time.Second))
	r.Use(middleware.RequestPath)
	r.Use(sessionManager.LoadAndSave)

	csrfMiddleware := middleware.CSRF(middleware.DefaultCSRFConfig([]byte(cfg.SessionSecret), cfg.IsDevelopment()))

	// Public pages
	r.Group(func(r chi.Router) {
		r.Use(csrfMiddleware)

		r.Get(handler.RouteRoot, eventHandler.Splash)
		r.Get(handler.RouteHome, eventHandler.Home)
		r.Get(handler.RouteRegister, authHandler.RegisterForm)
		r.Post(handler.RouteRegister, authHandler.Register)
		r.Get(handler.RouteLogin, authHandler.LoginForm)
		r.Post(handler.RouteLogin, authHandler.Login)
		r.Get(handler.RouteLogout, authHandler.Logout)
		r.Get(handler.RouteEvents, eventHandler.List)
		r.Post(handler.RouteRegisterEvent, eventHandler.RegisterForEvent)
		r.Get(handler.RouteFeedback, feedbackHandler.Form)
		r.Post(handler.RouteFeedback, feedbackHandler.Submit)
		r.Post(handler.RouteChatbot, chatbotHandler.Reply)
		r.Get(handler.RouteAdminLogin, adminHandler.LoginForm)
		r.Post(handler.RouteAdminLogin, adminHandler.Login)
		r.Get(handler.RouteAdminLogout, adminHandler.Logout)
	})

	// Admin pages
	r.Group(func(r chi.Router) {
		r.Use(csrfMiddleware)
		r.Use(middleware.RequireAdmin(sessionManager))

		r.Get(handler.RouteAdminDashboard, adminHandler.Dashboard)
		r.Post(handler.RouteAdminCreateEvent, adminHandler.CreateEvent)
		r.Get(handler.RouteAdminParticipants, adminHandler.Participants)
	})

	// Prometheus metrics
	r.Handle("/metrics", metrics.Handler())

	// Static assets
	staticFS, err := fs.Sub(web.Static, "static")
	if err != nil {
		return fmt.Errorf("getting static fs: %w", err)
	}
	r.Handle("/static/*", http.StripPrefix("/static/", http.FileServer(http.FS(staticFS))))

	// Create server with appropriate timeouts
	srv := &http.Server{
		Addr:              cfg.ServerAddr(),
		Handler:           r,
		ReadTimeout:       15 * time.Second,
		ReadHeaderTimeout: 5 * time.Second,
		WriteTimeout:      60 * time.Second,
		IdleTimeout:       60 * time.Second,
		MaxHeaderBytes:    1 << 20,
	}

	// Start server in goroutine
	go func() {
		slog.Info("starting server",
			"addr", cfg.ServerAddr(),
			"env", cfg.Env,
			"version", versionInfo.Version,
		)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			slog.Error("server error", "error", err)
		}
	}()

	// Wait for interrupt signal
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	slog.Info("shutting down server...")

	// Graceful shutdown with timeout
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("server shutdown: %w", err)
	}

	slog.Info("server stopped")
	return nil
}
