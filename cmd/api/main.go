package main

import (
	"context"
	"database/sql"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"virtual-pet/internal/adapters/auth/odin"
	pg "virtual-pet/internal/adapters/storage/postgres"
	"virtual-pet/internal/platform/config"
	"virtual-pet/internal/platform/logger"
	"virtual-pet/internal/ports/auth"
	"virtual-pet/internal/router"
)

// @title virtual-pet API
// @version 1.0
// @description Necesidades de la mascota virtual: decay, spirit, acciones y reparación del registro compartido.
// @BasePath /
func main() {
	log := logger.NewFromEnv()
	cfg := config.FromEnv()

	var db *sql.DB
	if cfg.DBDSN != "" {
		opened, err := pg.Open(cfg.DBDSN)
		if err != nil {
			log.Error("postgres unavailable", map[string]any{"error": err.Error()})
			os.Exit(1)
		}
		defer opened.Close()

		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		err = pg.Migrate(ctx, opened)
		cancel()
		if err != nil {
			log.Error("postgres migrate failed", map[string]any{"error": err.Error()})
			os.Exit(1)
		}
		db = opened
	} else {
		log.Warn("DB_DSN not set, using in-memory store", nil)
	}

	var verifier auth.AuthVerifier // nil => modo dev (X-Debug-User-ID)
	if cfg.OdinEnabled() {
		client, err := odin.NewClient(odin.Config{
			BaseURL: cfg.OdinBaseURL,
			APIKey:  cfg.OdinAPIKey,
			Timeout: cfg.OdinTimeout,
		})
		if err != nil {
			log.Error("odin config invalid", map[string]any{"error": err.Error()})
			os.Exit(1)
		}
		verifier = odin.NewVerifier(client)
	}

	r := router.NewRouter(router.Options{
		AuthVerifier: verifier,
		DB:           db,
		Logger:       log,
		Pets:         &cfg.Pets,
	})

	srv := &http.Server{
		Addr:         cfg.Addr(),
		Handler:      r,
		ReadTimeout:  5 * time.Second,
		WriteTimeout: 10 * time.Second,
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		_ = srv.Shutdown(shutdownCtx)
	}()

	log.Info("starting server", map[string]any{
		"addr":      cfg.Addr(),
		"postgres":  db != nil,
		"odin_auth": verifier != nil,
	})
	if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		log.Error("server error", map[string]any{"error": err.Error()})
		os.Exit(1)
	}
	log.Info("server stopped", nil)
}
