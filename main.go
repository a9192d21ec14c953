package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"guestbook/api"
	"guestbook/config"
	"guestbook/logger"
	"guestbook/metrics"
	"guestbook/store"
)

func main() {
	logger.Info("starting guestbook service")

	// Root context with cancellation for graceful shutdown
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	if err := store.Init(ctx); err != nil {
		log.Fatalf("mongo init failed: %v", err)
	}
	defer store.Close(context.Background())

	// Capture OS signals
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		<-sigCh
		logger.Info("shutdown signal received")
		cancel()
		// Allow a short drain period
		time.Sleep(500 * time.Millisecond)
		os.Exit(0)
	}()

	srv := api.NewServer(store.RepositoryAdapter{}, int64(config.ListLimit))

	mux := http.NewServeMux()
	mux.Handle("/", srv)
	mux.HandleFunc("/healthz", handleHealth)
	mux.HandleFunc("/readyz", handleReady)
	mux.HandleFunc("/metrics", metrics.Handler)

	logger.Info("http server listening", logger.FieldKV("port", config.ApiPort))
	if err := http.ListenAndServe(":"+config.ApiPort, mux); err != nil {
		logger.Error("http server error", err)
	}
}

// Health endpoint
func handleHealth(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusOK)
	w.Write([]byte("ok"))
}

// Readiness endpoint
func handleReady(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 1*time.Second)
	defer cancel()
	if err := store.Ping(ctx); err != nil {
		http.Error(w, "mongo not ready", http.StatusServiceUnavailable)
		return
	}
	w.WriteHeader(http.StatusOK)
	w.Write([]byte("ready"))
}
