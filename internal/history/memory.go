package history

import (
	"context"
	"sort"
	"sync"
	"time"
)

// MemoryStore keeps records in process memory.
type MemoryStore struct {
	mu      sync.RWMutex
	records []Record // insertion order
	now     func() time.Time
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{now: time.Now}
}

func (s *MemoryStore) Save(ctx context.Context, userID string, kind Kind, input, result any) (Record, error) {
	rec, err := newRecord(userID, kind, input, result, s.now())
	if err != nil {
		return Record{}, err
	}
	s.mu.Lock()
	s.records = append(s.records, rec)
	s.mu.Unlock()
	return rec, nil
}

func (s *MemoryStore) List(ctx context.Context, userID string, limit int) ([]Record, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return newestFirst(s.records, userID, clampLimit(limit)), nil
}

func (s *MemoryStore) Delete(ctx context.Context, userID, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	i := indexOf(s.records, userID, id)
	if i < 0 {
		return ErrNotFound
	}
	s.records = append(s.records[:i], s.records[i+1:]...)
	return nil
}

func (s *MemoryStore) Close() error { return nil }

// newestFirst filters records by user and orders them by CreatedAt
// descending; records saved later win ties.
func newestFirst(all []Record, userID string, limit int) []Record {
	out := make([]Record, 0, limit)
	for i := len(all) - 1; i >= 0; i-- {
		if all[i].UserID == userID {
			out = append(out, all[i])
		}
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].CreatedAt.After(out[j].CreatedAt)
	})
	if len(out) > limit {
		out = out[:limit]
	}
	return out
}

func indexOf(all []Record, userID, id string) int {
	for i, r := range all {
		if r.ID == id && r.UserID == userID {
			return i
		}
	}
	return -1
}
