// Package export renders saved calculations to image files with a worker pool.
package export

import (
	"fmt"
	"image"
	"os"
	"path/filepath"
	"sync"
	"sync/atomic"
	"time"

	"vector3d-calc/internal/history"
	"vector3d-calc/internal/imageio"
	"vector3d-calc/internal/postprocess"
	"vector3d-calc/internal/raster"
)

// Config holds the shared settings for an export run.
type Config struct {
	OutputDir string
	Format    imageio.Format
	Render    raster.Options
	Workers   int
	Thumb     int // thumbnail edge in pixels; 0 skips thumbnails
}

// Result holds the outcome of exporting one record.
type Result struct {
	ID      string       `json:"id"`
	Kind    history.Kind `json:"operation_type"`
	Image   string       `json:"image,omitempty"` // relative to OutputDir
	Thumb   string       `json:"thumb,omitempty"`
	Success bool         `json:"success"`
	Error   string       `json:"error,omitempty"`
}

// ImagePath is where a record's image goes, relative to the output directory.
func ImagePath(rec history.Record, f imageio.Format) string {
	return filepath.Join(string(rec.Kind), rec.ID+f.Ext())
}

// ThumbPath is ImagePath with a .thumb infix.
func ThumbPath(rec history.Record, f imageio.Format) string {
	return filepath.Join(string(rec.Kind), rec.ID+".thumb"+f.Ext())
}

// Run renders every record; results are in record order.
func Run(cfg Config, records []history.Record) []Result {
	if cfg.Workers <= 0 {
		cfg.Workers = 1
	}
	total := len(records)
	results := make([]Result, total)
	var processed atomic.Int64

	start := time.Now()

	done := make(chan struct{})
	go func() {
		ticker := time.NewTicker(2 * time.Second)
		defer ticker.Stop()
		for {
			select {
			case <-done:
				return
			case <-ticker.C:
				p := processed.Load()
				if p > 0 {
					rate := float64(p) / time.Since(start).Seconds()
					fmt.Printf("  [%d/%d] %.1f records/sec\n", p, total, rate)
				}
			}
		}
	}()

	recChan := make(chan int, cfg.Workers*2)
	var wg sync.WaitGroup

	for w := 0; w < cfg.Workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for idx := range recChan {
				results[idx] = processRecord(cfg, records[idx])
				processed.Add(1)
			}
		}()
	}

	for i := range records {
		recChan <- i
	}
	close(recChan)

	wg.Wait()
	close(done)

	return results
}

func processRecord(cfg Config, rec history.Record) Result {
	res := Result{ID: rec.ID, Kind: rec.Kind}

	arrows, err := Arrows(rec)
	if err != nil {
		res.Error = err.Error()
		return res
	}
	img := raster.RenderScene(arrows, cfg.Render)

	rel := ImagePath(rec, cfg.Format)
	outPath := filepath.Join(cfg.OutputDir, rel)
	if err := os.MkdirAll(filepath.Dir(outPath), 0755); err != nil {
		res.Error = err.Error()
		return res
	}

	if err := writeImage(outPath, img, cfg.Format); err != nil {
		res.Error = err.Error()
		return res
	}
	res.Image = filepath.ToSlash(rel)

	if cfg.Thumb > 0 {
		thumbRel := ThumbPath(rec, cfg.Format)
		thumb := postprocess.Thumbnail(img, cfg.Thumb)
		if err := writeImage(filepath.Join(cfg.OutputDir, thumbRel), thumb, cfg.Format); err != nil {
			os.Remove(outPath)
			res.Image = ""
			res.Error = err.Error()
			return res
		}
		res.Thumb = filepath.ToSlash(thumbRel)
	}

	res.Success = true
	return res
}

// writeImage encodes img to path. A failed encode or close leaves no file
// behind.
func writeImage(path string, img image.Image, format imageio.Format) (err error) {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := f.Close(); err == nil && cerr != nil {
			err = fmt.Errorf("export: close %s: %w", path, cerr)
		}
		if err != nil {
			os.Remove(path)
		}
	}()
	return imageio.Encode(f, img, format)
}
