package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"vector3d-calc/internal/config"
	"vector3d-calc/internal/export"
	"vector3d-calc/internal/history"
	"vector3d-calc/internal/imageio"
	"vector3d-calc/internal/raster"
)

func main() {
	configFile := flag.String("config", "", "Path to config.json file")
	user := flag.String("user", "", "User whose history to export (required)")
	limit := flag.Int("limit", 0, "Export only the newest N records (default: all listed, max 50)")
	workers := flag.Int("workers", 0, "Number of worker goroutines (default: NumCPU)")
	driver := flag.String("history", "", "History backend: memory, file or postgres (default: config, else file)")
	historyPath := flag.String("history-file", "", "History file for the file backend")
	dsn := flag.String("dsn", "", "Postgres DSN (default: $DATABASE_URL)")
	outputDir := flag.String("output", "", "Output directory (default: renders)")
	format := flag.String("format", "", "Image format: webp, tga or png")
	size := flag.Int("size", 0, "Image size (default: 512)")
	thumb := flag.Int("thumb", 0, "Also write thumbnails of this size (0 = none)")
	flag.Parse()

	if *user == "" {
		fmt.Fprintln(os.Stderr, "Error: -user is required")
		os.Exit(2)
	}

	cfg, err := config.LoadOptional(*configFile)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
		os.Exit(1)
	}
	cfg.Resolve(config.Flags{
		HistoryDriver: *driver,
		HistoryPath:   *historyPath,
		DatabaseURL:   *dsn,
		ImageFormat:   *format,
		OutputDir:     *outputDir,
		RenderSize:    *size,
		Workers:       *workers,

		DefaultHistoryDriver: history.DriverFile,
	})

	f, err := imageio.ParseFormat(cfg.ImageFormat)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	ctx := context.Background()
	store, err := history.Open(ctx, history.Options{
		Driver: cfg.HistoryDriver,
		Path:   cfg.HistoryPath,
		DSN:    cfg.DatabaseURL,
	})
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening history: %v\n", err)
		os.Exit(1)
	}
	defer store.Close()

	records, err := store.List(ctx, *user, *limit)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error listing history: %v\n", err)
		os.Exit(1)
	}
	if len(records) == 0 {
		fmt.Println("No records to export.")
		return
	}

	render := raster.DefaultOptions()
	render.Width, render.Height = cfg.RenderSize, cfg.RenderSize
	render.Supersample = cfg.Supersample
	render.Perspective = cfg.Perspective

	fmt.Printf("Vector history export → %s\n", f)
	fmt.Printf("Records: %d, Workers: %d\n", len(records), cfg.Workers)
	fmt.Printf("Output: %s\n", cfg.OutputDir)
	fmt.Println("------------------------------------------------------------")

	start := time.Now()
	results := export.Run(export.Config{
		OutputDir: cfg.OutputDir,
		Format:    f,
		Render:    render,
		Workers:   cfg.Workers,
		Thumb:     *thumb,
	}, records)

	fmt.Println("------------------------------------------------------------")
	fmt.Printf("Done in %.1fs\n", time.Since(start).Seconds())

	var failed []export.Result
	for _, r := range results {
		if !r.Success {
			failed = append(failed, r)
		}
	}
	fmt.Printf("Rendered: %d/%d\n", len(results)-len(failed), len(records))

	if len(failed) > 0 {
		fmt.Printf("\nFailed (%d):\n", len(failed))
		for _, e := range failed[:min(20, len(failed))] {
			fmt.Printf("  %s (%s): %s\n", e.ID, e.Kind, e.Error)
		}
	}

	manifestPath := filepath.Join(cfg.OutputDir, "manifest.json")
	if err := os.MkdirAll(cfg.OutputDir, 0755); err != nil {
		fmt.Fprintf(os.Stderr, "Warning: %v\n", err)
	}
	if err := export.WriteManifest(manifestPath, records, results); err != nil {
		fmt.Fprintf(os.Stderr, "Warning: manifest write failed: %v\n", err)
	} else {
		fmt.Printf("Manifest: %s\n", manifestPath)
	}

	if len(failed) > 0 {
		os.Exit(1)
	}
}
