// Package config loads service and tool settings from a JSON file and lets
// command-line flags override them.
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"runtime"
)

// Config holds storage, service and render settings.
type Config struct {
	// Service
	Listen string `json:"listen"`

	// History storage
	HistoryDriver string `json:"history_driver"` // memory, file or postgres
	HistoryPath   string `json:"history_path"`
	DatabaseURL   string `json:"database_url"`
	HistoryLimit  int    `json:"history_limit"`

	// Render settings
	RenderSize  int    `json:"render_size"`
	Supersample int    `json:"supersample"`
	ImageFormat string `json:"image_format"`
	Perspective bool   `json:"perspective"`
	Workers     int    `json:"workers"`
	OutputDir   string `json:"output_dir"`
	SceneCache  int    `json:"scene_cache"`
}

// Load reads a JSON config file and returns Config.
// Fields not set in the file keep their zero values.
func Load(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("config: read %s: %w", path, err)
	}

	var cfg Config
	if err := json.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("config: parse %s: %w", path, err)
	}

	return cfg, nil
}

// LoadOptional is Load, except that an empty path yields the zero Config.
func LoadOptional(path string) (Config, error) {
	if path == "" {
		return Config{}, nil
	}
	return Load(path)
}

// Flags holds CLI flag values that override config file settings.
type Flags struct {
	Listen        string
	HistoryDriver string
	HistoryPath   string
	DatabaseURL   string
	ImageFormat   string
	OutputDir     string
	RenderSize    int
	Workers       int

	// DefaultHistoryDriver replaces "memory" as the fallback driver when
	// neither the file nor the flags pick one. The one-shot tools use "file"
	// so history outlives the process.
	DefaultHistoryDriver string
}

// Resolve applies non-empty flags, then fills remaining empty fields with
// defaults. DATABASE_URL fills the Postgres DSN when neither the file nor
// the flags set one.
func (c *Config) Resolve(flags Flags) {
	if flags.Listen != "" {
		c.Listen = flags.Listen
	}
	if flags.HistoryDriver != "" {
		c.HistoryDriver = flags.HistoryDriver
	}
	if flags.HistoryPath != "" {
		c.HistoryPath = flags.HistoryPath
	}
	if flags.DatabaseURL != "" {
		c.DatabaseURL = flags.DatabaseURL
	}
	if flags.ImageFormat != "" {
		c.ImageFormat = flags.ImageFormat
	}
	if flags.OutputDir != "" {
		c.OutputDir = flags.OutputDir
	}
	if flags.RenderSize > 0 {
		c.RenderSize = flags.RenderSize
	}
	if flags.Workers > 0 {
		c.Workers = flags.Workers
	}

	if c.DatabaseURL == "" {
		c.DatabaseURL = os.Getenv("DATABASE_URL")
	}

	if c.Listen == "" {
		c.Listen = ":8080"
	}
	if c.HistoryDriver == "" {
		c.HistoryDriver = flags.DefaultHistoryDriver
	}
	if c.HistoryDriver == "" {
		c.HistoryDriver = "memory"
	}
	if c.HistoryPath == "" {
		c.HistoryPath = "history.json"
	}
	if c.HistoryLimit <= 0 || c.HistoryLimit > 50 {
		c.HistoryLimit = 50
	}
	if c.RenderSize <= 0 {
		c.RenderSize = 512
	}
	if c.Supersample <= 0 {
		c.Supersample = 2
	}
	if c.ImageFormat == "" {
		c.ImageFormat = "webp"
	}
	if c.Workers <= 0 {
		c.Workers = runtime.NumCPU()
	}
	if c.OutputDir == "" {
		c.OutputDir = "renders"
	}
	if c.SceneCache <= 0 {
		c.SceneCache = 64
	}
}
