package store

import (
	"context"
	"sync"
	"time"

	"github.com/PratikDhanave/satisfaction-survey-service/internal/models"
)

// MemoryStore keeps responses in process memory. Data is lost on restart.
type MemoryStore struct {
	mu     sync.RWMutex
	rows   []models.Response
	nextID int64
	now    func() time.Time
}

// NewMemoryStore returns an empty in-memory store.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{now: time.Now}
}

// InsertResponses appends rows atomically with respect to readers.
func (m *MemoryStore) InsertResponses(ctx context.Context, rows []models.Response) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	recordedAt := m.now().UTC()
	for _, r := range rows {
		m.nextID++
		r.ID = m.nextID
		r.RecordedAt = recordedAt
		m.rows = append(m.rows, r)
	}
	return nil
}

// ListResponses returns a snapshot copy of every stored row.
func (m *MemoryStore) ListResponses(ctx context.Context) ([]models.Response, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	m.mu.RLock()
	defer m.mu.RUnlock()

	out := make([]models.Response, len(m.rows))
	copy(out, m.rows)
	return out, nil
}

// Ping always succeeds.
func (m *MemoryStore) Ping(context.Context) error { return nil }

// Close is a no-op.
func (m *MemoryStore) Close() {}
