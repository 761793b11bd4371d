package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"

	httpadapter "vantage/internal/adapters/http"
	pg "vantage/internal/adapters/postgres"
	"vantage/internal/config"
	"vantage/internal/ports"
	"vantage/internal/services/assist"
	"vantage/internal/services/records"
	regsvc "vantage/internal/services/register"
)

func main() {
	cfg, err := config.Load()
	log := newLogger(cfg.Env)
	if err != nil {
		log.Warn("config incomplete", "error", err)
	}
	if cfg.DatabaseURL == "" {
		log.Error("DATABASE_URL is required")
		os.Exit(1)
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	db, err := pg.Connect(ctx, cfg.DatabaseURL)
	if err != nil {
		log.Error("db connect failed", "error", err)
		os.Exit(1)
	}
	defer db.Close()
	if err := db.Migrate(ctx); err != nil {
		log.Error("migrations failed", "error", err)
		os.Exit(1)
	}

	register := regsvc.New(db, log)
	recs := records.New(db, log)

	var assistant ports.Assistant
	if cfg.OpenAIKey != "" {
		llm, err := assist.NewOpenAIClient(cfg.OpenAIKey, cfg.OpenAIModel)
		if err != nil {
			log.Error("openai client init failed", "error", err)
			os.Exit(1)
		}
		assistant = assist.New(llm, register, log)
	} else {
		log.Warn("OPENAI_API_KEY not set, assistant endpoints disabled")
	}

	srv := httpadapter.New(register, recs, assistant, log)
	r := chi.NewRouter()
	r.Mount("/", srv.Routes())

	httpSrv := &http.Server{
		Addr:              cfg.ListenAddr,
		Handler:           r,
		ReadHeaderTimeout: 5 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() { errCh <- httpSrv.ListenAndServe() }()
	log.Info("listening", "addr", cfg.ListenAddr, "env", cfg.Env)

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	select {
	case sig := <-sigCh:
		log.Info("shutting down", "signal", sig.String())
		shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer shutdownCancel()
		if err := httpSrv.Shutdown(shutdownCtx); err != nil {
			log.Error("shutdown error", "error", err)
		}
	case err := <-errCh:
		if err != nil && err != http.ErrServerClosed {
			log.Error("server error", "error", err)
			os.Exit(1)
		}
	}
}

func newLogger(env string) *slog.Logger {
	var handler slog.Handler
	if env == "production" {
		handler = slog.NewJSONHandler(os.Stderr, nil)
	} else {
		handler = slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelDebug})
	}
	log := slog.New(handler)
	slog.SetDefault(log)
	return log
}
