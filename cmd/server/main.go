package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"vector3d-calc/internal/api"
	"vector3d-calc/internal/config"
	"vector3d-calc/internal/history"
	"vector3d-calc/internal/raster"
	"vector3d-calc/internal/scenecache"
)

func main() {
	configFile := flag.String("config", "", "Path to config.json file")
	listen := flag.String("listen", "", "Listen address (default :8080)")
	driver := flag.String("history", "", "History backend: memory, file or postgres")
	historyPath := flag.String("history-file", "", "History file for the file backend")
	dsn := flag.String("dsn", "", "Postgres DSN (default: $DATABASE_URL)")
	flag.Parse()

	cfg, err := config.LoadOptional(*configFile)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
		os.Exit(1)
	}
	cfg.Resolve(config.Flags{
		Listen:        *listen,
		HistoryDriver: *driver,
		HistoryPath:   *historyPath,
		DatabaseURL:   *dsn,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	store, err := history.Open(ctx, history.Options{
		Driver: cfg.HistoryDriver,
		Path:   cfg.HistoryPath,
		DSN:    cfg.DatabaseURL,
	})
	cancel()
	if err != nil {
		log.Fatalf("history: %v", err)
	}
	defer store.Close()

	render := raster.DefaultOptions()
	render.Width, render.Height = cfg.RenderSize, cfg.RenderSize
	render.Supersample = cfg.Supersample
	render.Perspective = cfg.Perspective

	scenes := scenecache.New(cfg.SceneCache, scenecache.Encoded)
	server := api.NewServer(store, scenes, api.Options{
		Render:       render,
		HistoryLimit: cfg.HistoryLimit,
	})

	httpServer := &http.Server{
		Addr:              cfg.Listen,
		Handler:           server.Handler(),
		ReadHeaderTimeout: 5 * time.Second,
	}

	go func() {
		log.Printf("Starting HTTP server on %s (history: %s)", cfg.Listen, cfg.HistoryDriver)
		if err := httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("HTTP server error: %v", err)
		}
	}()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, os.Interrupt, syscall.SIGTERM)
	<-sigCh

	log.Println("Shutting down...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := httpServer.Shutdown(shutdownCtx); err != nil {
		log.Printf("HTTP server shutdown error: %v", err)
	}

	size, hits, misses := scenes.Stats()
	log.Printf("Scene cache: %d entries, %d hits, %d misses", size, hits, misses)
	log.Println("Shutdown complete")
}
