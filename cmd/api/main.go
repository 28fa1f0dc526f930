package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/anthill-game/anthill/internal/config"
	"github.com/anthill-game/anthill/internal/handlers"
	"github.com/anthill-game/anthill/internal/logger"
	"github.com/anthill-game/anthill/internal/middleware"
	"github.com/anthill-game/anthill/internal/storage"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal(err)
	}

	log := logger.Setup(cfg)

	log.Info("Starting Anthill API",
		"port", cfg.Port,
		"environment", cfg.Environment,
		"data_dir", cfg.DataDir,
		"session_ttl", cfg.SessionTTL)

	store, err := storage.NewRedisStorage(cfg.RedisURL, cfg.DataDir, cfg.SessionTTL, log)
	if err != nil {
		log.Error("Failed to initialize storage", "error", err)
		os.Exit(1)
	}

	storageCtx, storageCancel := context.WithTimeout(context.Background(), 2*time.Minute)
	defer storageCancel()

	if err := store.WaitForConnection(storageCtx); err != nil {
		log.Error("Failed to connect to storage", "error", err)
		os.Exit(1)
	}

	// Load and validate the static game data once; every session
	// shares the same catalogs and town level.
	loadCtx, loadCancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer loadCancel()

	itemDefs, err := store.ItemDefs(loadCtx)
	if err != nil {
		log.Error("Failed to load item definitions", "error", err)
		os.Exit(1)
	}
	if err := itemDefs.Validate(); err != nil {
		log.Error("Invalid item definitions", "error", err)
		os.Exit(1)
	}

	npcDefs, err := store.NPCDefs(loadCtx)
	if err != nil {
		log.Error("Failed to load NPC definitions", "error", err)
		os.Exit(1)
	}
	if err := npcDefs.Validate(); err != nil {
		log.Error("Invalid NPC definitions", "error", err)
		os.Exit(1)
	}

	town, err := store.Level(loadCtx, "town")
	if err != nil {
		log.Error("Failed to load town level", "error", err)
		os.Exit(1)
	}
	if err := town.Validate(); err != nil {
		log.Error("Invalid town level", "error", err)
		os.Exit(1)
	}

	levels, err := store.ListLevels(loadCtx)
	if err != nil {
		log.Error("Failed to list levels", "error", err)
		os.Exit(1)
	}

	log.Info("Game data loaded",
		"item_defs", len(itemDefs),
		"npc_defs", len(npcDefs),
		"levels", levels)

	mux := http.NewServeMux()

	healthHandler := handlers.NewHealthHandler(store, log)
	mux.Handle("/health", healthHandler)

	sessionHandler := handlers.NewSessionHandler(log, store, itemDefs, npcDefs, town)
	mux.Handle("/v1/sessions", sessionHandler)
	mux.Handle("/v1/sessions/", sessionHandler)

	handler := middleware.Logger(mux)
	server := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      handler,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		log.Info("Server starting", "addr", server.Addr)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Error("Server failed to start", "error", err)
			os.Exit(1)
		}
	}()

	// Wait for interrupt signal to gracefully shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info("Server is shutting down...")

	// Close storage connection
	if err := store.Close(); err != nil {
		log.Error("Error closing storage connection", "error", err)
	}

	// Graceful shutdown with timeout
	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer shutdownCancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Error("Server forced to shutdown", "error", err)
		os.Exit(1)
	}

	log.Info("Server exited")
}
