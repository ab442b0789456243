// vetd-lite is a self-contained development backend for the vet-system
// client. It serves the full REST contract from memory, so the CLI and
// client library can be exercised without a real deployment.
package main

import (
	"context"
	"flag"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/Duhandrade22/vet-system/cmd/vetd-lite/internal/api"
	"github.com/Duhandrade22/vet-system/cmd/vetd-lite/internal/store"
)

const defaultAddr = ":3000"

func main() {
	addr := flag.String("addr", envOr("VETD_ADDR", defaultAddr), "listen address")
	seedPath := flag.String("seed", os.Getenv("VETD_SEED"), "optional YAML fixture to load at startup")
	flag.Parse()

	logLevel := slog.LevelInfo
	if os.Getenv("DEBUG") == "true" {
		logLevel = slog.LevelDebug
	}
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: logLevel,
	}))
	slog.SetDefault(logger)

	logger.Info("Starting vetd-lite", slog.String("addr", *addr))

	st := store.New()
	if *seedPath != "" {
		if err := st.Seed(*seedPath); err != nil {
			logger.Error("Failed to load seed file",
				slog.String("path", *seedPath),
				slog.String("error", err.Error()),
			)
			os.Exit(1)
		}
		logger.Info("Seed data loaded", slog.String("path", *seedPath))
	}

	srv := &http.Server{
		Addr:         *addr,
		Handler:      api.NewRouter(st, logger),
		ReadTimeout:  30 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  time.Minute,
	}

	go func() {
		logger.Info("Server listening", slog.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Error("Server failed", slog.String("error", err.Error()))
			os.Exit(1)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	sig := <-quit

	logger.Info("Shutting down", slog.String("signal", sig.String()))

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		logger.Error("Shutdown failed", slog.String("error", err.Error()))
		os.Exit(1)
	}

	logger.Info("Server stopped")
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
