// Package httpapi exposes the recipe catalog as a JSON HTTP API.
package httpapi

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"

	"github.com/mesh-intelligence/recipebox/internal/catalog"
)

// Options tunes the HTTP server.
type Options struct {
	Addr            string
	ReadTimeout     time.Duration
	WriteTimeout    time.Duration
	ShutdownTimeout time.Duration
	AllowedOrigins  []string
}

// DefaultOptions returns the server defaults.
func DefaultOptions() Options {
	return Options{
		Addr:            "127.0.0.1:8080",
		ReadTimeout:     15 * time.Second,
		WriteTimeout:    15 * time.Second,
		ShutdownTimeout: 30 * time.Second,
		AllowedOrigins:  []string{"*"},
	}
}

// NewRouter wires the catalog routes and middleware.
func NewRouter(c *catalog.Catalog, logger *slog.Logger, allowedOrigins []string) http.Handler {
	h := &recipeHandler{catalog: c, logger: logger}

	r := chi.NewRouter()
	r.Use(chimiddleware.RequestID)
	r.Use(chimiddleware.RealIP)
	r.Use(requestLogger(logger))
	r.Use(chimiddleware.Recoverer)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: allowedOrigins,
		AllowedMethods: []string{"GET", "POST", "DELETE", "OPTIONS"},
		AllowedHeaders: []string{"Accept", "Content-Type"},
		MaxAge:         300,
	}))

	r.Get("/health", h.health)
	r.Get("/images/{name}", h.image)

	r.Route("/api", func(r chi.Router) {
		r.Get("/categories", h.categories)
		r.Route("/recipes", func(r chi.Router) {
			r.Get("/", h.list)
			r.Post("/", h.create)
			r.Get("/search", h.search)
			r.Get("/{position}", h.get)
			r.Delete("/{position}", h.delete)
		})
	})

	return r
}

// Serve runs the API until ctx is cancelled, then shuts down gracefully.
func Serve(ctx context.Context, c *catalog.Catalog, logger *slog.Logger, opts Options) error {
	srv := &http.Server{
		Addr:         opts.Addr,
		Handler:      NewRouter(c, logger, opts.AllowedOrigins),
		ReadTimeout:  opts.ReadTimeout,
		WriteTimeout: opts.WriteTimeout,
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Info("server listening", "address", opts.Addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	logger.Info("shutting down server")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), opts.ShutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return err
	}
	logger.Info("server stopped")
	return nil
}
