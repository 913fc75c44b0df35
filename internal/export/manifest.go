package export

import (
	"encoding/json"
	"fmt"
	"os"
	"time"

	"vector3d-calc/internal/history"
)

// ManifestEntry describes one exported image.
type ManifestEntry struct {
	ID        string       `json:"id"`
	Kind      history.Kind `json:"operation_type"`
	Label     string       `json:"label"`
	CreatedAt time.Time    `json:"created_at"`
	Input     string       `json:"input"`
	Result    string       `json:"result"`
	Image     string       `json:"image"`
	Thumb     string       `json:"thumb,omitempty"`
}

// WriteManifest writes the successfully exported records to path as JSON.
// records and results must be index-aligned, as returned by Run.
func WriteManifest(path string, records []history.Record, results []Result) error {
	entries := make([]ManifestEntry, 0, len(results))
	for i, r := range results {
		if !r.Success {
			continue
		}
		rec := records[i]
		entries = append(entries, ManifestEntry{
			ID:        rec.ID,
			Kind:      rec.Kind,
			Label:     history.Label(rec.Kind),
			CreatedAt: rec.CreatedAt,
			Input:     history.Summary(rec.Input, 120),
			Result:    history.Summary(rec.Result, 120),
			Image:     r.Image,
			Thumb:     r.Thumb,
		})
	}

	data, err := json.MarshalIndent(entries, "", "  ")
	if err != nil {
		return fmt.Errorf("export: encode manifest: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("export: write %s: %w", path, err)
	}
	return nil
}
