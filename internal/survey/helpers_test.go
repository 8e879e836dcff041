package survey

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/PratikDhanave/satisfaction-survey-service/internal/catalog"
	"github.com/PratikDhanave/satisfaction-survey-service/internal/models"
	"github.com/PratikDhanave/satisfaction-survey-service/internal/store"
)

var errDiskFull = errors.New("disk full")

// failingStore fails every call.
type failingStore struct{}

func (failingStore) InsertResponses(context.Context, []models.Response) error { return errDiskFull }
func (failingStore) ListResponses(context.Context) ([]models.Response, error) {
	return nil, errDiskFull
}

// steppingClock returns start, start+step, start+2*step, ...
func steppingClock(start time.Time, step time.Duration) func() time.Time {
	next := start
	return func() time.Time {
		t := next
		next = next.Add(step)
		return t
	}
}

func newTestService(t *testing.T, st Store) *Service {
	t.Helper()

	svc := NewService(st, catalog.Default(), ExportOptions{}, slog.New(slog.NewTextHandler(io.Discard, nil)))
	svc.ids = newIDGenerator(steppingClock(time.Date(2025, 3, 1, 10, 0, 0, 0, time.UTC), time.Second))
	return svc
}

func newMemoryService(t *testing.T) (*Service, *store.MemoryStore) {
	t.Helper()

	st := store.NewMemoryStore()
	return newTestService(t, st), st
}

func countRows(t *testing.T, st Store) int {
	t.Helper()

	rows, err := st.ListResponses(context.Background())
	if err != nil {
		t.Fatalf("list responses: %v", err)
	}
	return len(rows)
}

func fullBatch(value int) Batch {
	answers := make([]Answer, 0, 13)
	for id := 1; id <= 13; id++ {
		answers = append(answers, Answer{QuestionID: id, Value: value})
	}
	return Batch{Answers: answers}
}
