// Command printquote-server exposes the pricing engine and quote history as
// a JSON HTTP API with session-cookie authentication.
package main

import (
	"fmt"
	"log/slog"
	"net/http"
	"os"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/printquote/printquote/internal/config"
	"github.com/printquote/printquote/internal/history"
	"github.com/printquote/printquote/internal/migrations"
)

type server struct {
	auth  *authService
	store *history.Store
	log   *slog.Logger
}

func main() {
	cfg, err := config.New()
	if err != nil {
		slog.Error("invalid configuration", slog.Any("error", err))
		os.Exit(1)
	}

	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: cfg.SlogLevel()}))
	slog.SetDefault(logger)

	db, err := history.Open(cfg.DBPath)
	if err != nil {
		logger.Error("failed to open database", slog.Any("error", err))
		os.Exit(1)
	}
	defer db.Close()

	if err := migrations.Up(db); err != nil {
		logger.Error("failed to run database migrations", slog.Any("error", err))
		os.Exit(1)
	}

	auth := newAuthService(db, cfg.SessionSecret)
	if err := auth.ensureAdminUser(cfg.Admin.Email, cfg.Admin.Password); err != nil {
		logger.Error("failed to ensure admin user", slog.Any("error", err))
		os.Exit(1)
	}

	srv := &server{
		auth:  auth,
		store: history.NewStore(db),
		log:   logger,
	}

	addr := fmt.Sprintf(":%d", cfg.Port)
	logger.Info("listening", slog.String("addr", addr))
	if err := http.ListenAndServe(addr, srv.routes()); err != nil {
		logger.Error("server stopped", slog.Any("error", err))
		os.Exit(1)
	}
}

func (s *server) routes() http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.Recoverer)

	r.Post("/api/login", s.handleLogin)
	r.Post("/api/logout", s.handleLogout)

	r.Group(func(r chi.Router) {
		r.Use(s.requireUser)
		r.Post("/api/calculate", s.handleCalculate)
		r.Post("/api/quotes", s.handleQuoteCreate)
		r.Get("/api/quotes", s.handleQuoteList)
		r.Get("/api/quotes/export.xlsx", s.handleQuoteExportXLSX)
		r.Get("/api/quotes/{id}/quote.pdf", s.handleQuotePDF)
		r.Delete("/api/quotes/{id}", s.handleQuoteDelete)
	})

	return r
}
