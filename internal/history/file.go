package history

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"
)

// FileStore keeps all records in a single JSON document. Every mutation
// rewrites the document through a temp file and rename.
type FileStore struct {
	path string

	mu      sync.Mutex
	records []Record
	now     func() time.Time
}

// OpenFile loads path, or starts empty when it does not exist yet.
func OpenFile(path string) (*FileStore, error) {
	s := &FileStore{path: path, now: time.Now}
	data, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		return s, nil
	}
	if err != nil {
		return nil, fmt.Errorf("history: read %s: %w", path, err)
	}
	if len(data) > 0 {
		if err := json.Unmarshal(data, &s.records); err != nil {
			return nil, fmt.Errorf("history: parse %s: %w", path, err)
		}
	}
	return s, nil
}

func (s *FileStore) Save(ctx context.Context, userID string, kind Kind, input, result any) (Record, error) {
	rec, err := newRecord(userID, kind, input, result, s.now())
	if err != nil {
		return Record{}, err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	next := append(append([]Record(nil), s.records...), rec)
	if err := s.write(next); err != nil {
		return Record{}, err
	}
	s.records = next
	return rec, nil
}

func (s *FileStore) List(ctx context.Context, userID string, limit int) ([]Record, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return newestFirst(s.records, userID, clampLimit(limit)), nil
}

func (s *FileStore) Delete(ctx context.Context, userID, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	i := indexOf(s.records, userID, id)
	if i < 0 {
		return ErrNotFound
	}
	next := make([]Record, 0, len(s.records)-1)
	next = append(next, s.records[:i]...)
	next = append(next, s.records[i+1:]...)
	if err := s.write(next); err != nil {
		return err
	}
	s.records = next
	return nil
}

func (s *FileStore) Close() error { return nil }

func (s *FileStore) write(records []Record) error {
	data, err := json.MarshalIndent(records, "", "  ")
	if err != nil {
		return fmt.Errorf("history: encode %s: %w", s.path, err)
	}
	if dir := filepath.Dir(s.path); dir != "" {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("history: mkdir %s: %w", dir, err)
		}
	}
	tmp := s.path + ".tmp"
	if err := os.WriteFile(tmp, data, 0644); err != nil {
		return fmt.Errorf("history: write %s: %w", tmp, err)
	}
	if err := os.Rename(tmp, s.path); err != nil {
		return fmt.Errorf("history: rename %s: %w", tmp, err)
	}
	return nil
}
