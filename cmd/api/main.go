package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/joho/godotenv"

	"github.com/vaultpass/passgen-go/internal/config"
	"github.com/vaultpass/passgen-go/internal/crypto"
	"github.com/vaultpass/passgen-go/internal/generator"
	"github.com/vaultpass/passgen-go/internal/handler"
	"github.com/vaultpass/passgen-go/internal/middleware"
	"github.com/vaultpass/passgen-go/internal/service"
)

func main() {
	if err := godotenv.Load(); err != nil {
		slog.Warn("no .env file found, using environment variables")
	}

	cfg := config.Load()
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: cfg.LogLevel})))

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	router, err := newRouter(ctx, cfg)
	if err != nil {
		slog.Error("building router", "error", err)
		os.Exit(1)
	}

	srv := &http.Server{
		Addr:              cfg.Addr(),
		Handler:           router,
		ReadHeaderTimeout: 5 * time.Second,
	}

	go func() {
		slog.Info("server starting", "addr", cfg.Addr(), "env", cfg.Env, "random_source", cfg.RandomSource)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			slog.Error("server error", "error", err)
			os.Exit(1)
		}
	}()

	<-ctx.Done()

	slog.Info("shutting down server")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		slog.Error("server forced shutdown", "error", err)
		os.Exit(1)
	}

	slog.Info("server stopped")
}

// newRouter wires the generator screen endpoints. ctx bounds the rate
// limiter's background cleanup.
func newRouter(ctx context.Context, cfg config.Config) (http.Handler, error) {
	source, err := generator.SourceByName(cfg.RandomSource)
	if err != nil {
		return nil, err
	}
	signer, err := crypto.NewSigner(cfg.StateSecret, cfg.StateExpiry)
	if err != nil {
		return nil, err
	}

	genService := service.NewGeneratorService(generator.New(source))
	genHandler := handler.NewGeneratorHandler(genService, signer)

	r := chi.NewRouter()
	r.Use(chimw.RequestID)
	r.Use(middleware.Logger)
	r.Use(chimw.Recoverer)

	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("ok"))
	})

	r.Group(func(r chi.Router) {
		r.Use(middleware.ScreenState(signer))

		r.Get("/api/v1/screen", genHandler.HandleScreen)
		r.Post("/api/v1/screen/toggle", genHandler.HandleToggle)
		r.Post("/api/v1/screen/reset", genHandler.HandleReset)

		r.With(middleware.RateLimit(ctx, cfg.RateLimitRPS, cfg.RateLimitBurst)).
			Post("/api/v1/generate", genHandler.HandleGenerate)
	})

	return r, nil
}
