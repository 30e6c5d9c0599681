package repository

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/hunyar/focusflow-api/internal/models"
)

// memStore is an in-memory Store with an injectable save failure.
type memStore struct {
	payloads map[string][]byte
	saveErr  error
}

func newMemStore() *memStore {
	return &memStore{payloads: map[string][]byte{}}
}

func (s *memStore) Load(_ context.Context, namespace string) ([]byte, bool, error) {
	payload, ok := s.payloads[namespace]
	return payload, ok, nil
}

func (s *memStore) Save(_ context.Context, namespace string, payload []byte) error {
	if s.saveErr != nil {
		return s.saveErr
	}
	s.payloads[namespace] = payload
	return nil
}

func date(day int) time.Time {
	return time.Date(2025, time.March, day, 0, 0, 0, 0, time.UTC)
}

func TestTodoRepositoryPrependsNew(t *testing.T) {
	repo := NewTodoRepository(newMemStore(), zap.NewNop())
	ctx := context.Background()

	require.NoError(t, repo.Upsert(ctx, models.Todo{ID: "a", Text: "first"}))
	require.NoError(t, repo.Upsert(ctx, models.Todo{ID: "b", Text: "second"}))

	todos := repo.List(ctx)
	require.Len(t, todos, 2)
	assert.Equal(t, "b", todos[0].ID)
	assert.Equal(t, "a", todos[1].ID)
}

func TestTodoRepositoryUpsertReplacesInPlace(t *testing.T) {
	repo := NewTodoRepository(newMemStore(), zap.NewNop())
	ctx := context.Background()

	require.NoError(t, repo.Upsert(ctx, models.Todo{ID: "a", Text: "first"}))
	require.NoError(t, repo.Upsert(ctx, models.Todo{ID: "b", Text: "second"}))
	require.NoError(t, repo.Upsert(ctx, models.Todo{ID: "a", Text: "first", Completed: true}))

	todos := repo.List(ctx)
	require.Len(t, todos, 2)
	assert.Equal(t, "b", todos[0].ID)
	assert.True(t, todos[1].Completed)
}

func TestTodoRepositoryRemoveIdempotent(t *testing.T) {
	repo := NewTodoRepository(newMemStore(), zap.NewNop())
	ctx := context.Background()

	require.NoError(t, repo.Upsert(ctx, models.Todo{ID: "a", Text: "first"}))
	require.NoError(t, repo.Remove(ctx, "a"))
	require.NoError(t, repo.Remove(ctx, "a"))
	require.NoError(t, repo.Remove(ctx, "never-existed"))

	assert.Empty(t, repo.List(ctx))
	assert.False(t, repo.Dirty())
}

func TestMarkRepositorySortsByDateDescending(t *testing.T) {
	repo := NewMarkRepository(newMemStore(), zap.NewNop())
	ctx := context.Background()

	require.NoError(t, repo.Upsert(ctx, models.Mark{ID: "old", Subject: "Math", Date: date(1)}))
	require.NoError(t, repo.Upsert(ctx, models.Mark{ID: "new", Subject: "Math", Date: date(20)}))
	require.NoError(t, repo.Upsert(ctx, models.Mark{ID: "mid", Subject: "Math", Date: date(10)}))

	marks := repo.List(ctx)
	require.Len(t, marks, 3)
	assert.Equal(t, "new", marks[0].ID)
	assert.Equal(t, "mid", marks[1].ID)
	assert.Equal(t, "old", marks[2].ID)
}

func TestTimetableRepositorySortsByDayThenStart(t *testing.T) {
	repo := NewTimetableRepository(newMemStore(), zap.NewNop())
	ctx := context.Background()

	require.NoError(t, repo.Upsert(ctx, models.TimetableEntry{ID: "wed", Day: models.Wednesday, StartTime: "08:00", EndTime: "09:00"}))
	require.NoError(t, repo.Upsert(ctx, models.TimetableEntry{ID: "mon-late", Day: models.Monday, StartTime: "14:00", EndTime: "15:00"}))
	require.NoError(t, repo.Upsert(ctx, models.TimetableEntry{ID: "mon-early", Day: models.Monday, StartTime: "09:00", EndTime: "10:00"}))

	entries := repo.List(ctx)
	require.Len(t, entries, 3)
	assert.Equal(t, "mon-early", entries[0].ID)
	assert.Equal(t, "mon-late", entries[1].ID)
	assert.Equal(t, "wed", entries[2].ID)
}

func TestNoteRepositorySortsByUpdatedAtDescending(t *testing.T) {
	repo := NewNoteRepository(newMemStore(), zap.NewNop())
	ctx := context.Background()

	require.NoError(t, repo.Upsert(ctx, models.Note{ID: "stale", Title: "a", UpdatedAt: date(1)}))
	require.NoError(t, repo.Upsert(ctx, models.Note{ID: "fresh", Title: "b", UpdatedAt: date(15)}))

	notes := repo.List(ctx)
	require.Len(t, notes, 2)
	assert.Equal(t, "fresh", notes[0].ID)

	// Editing the stale note brings it to the front.
	require.NoError(t, repo.Upsert(ctx, models.Note{ID: "stale", Title: "a", UpdatedAt: date(30)}))
	notes = repo.List(ctx)
	assert.Equal(t, "stale", notes[0].ID)
}

func TestSubjectRepositoryFindByID(t *testing.T) {
	repo := NewSubjectRepository(newMemStore(), zap.NewNop())
	ctx := context.Background()

	require.NoError(t, repo.Upsert(ctx, models.Subject{ID: "s1", Name: "Physics", Color: "bg-red-500"}))

	found := repo.FindByID(ctx, "s1")
	require.NotNil(t, found)
	assert.Equal(t, "Physics", found.Name)
	assert.Nil(t, repo.FindByID(ctx, "missing"))
}

func TestTodoRepositoryConcurrentUpserts(t *testing.T) {
	repo := NewTodoRepository(newMemStore(), zap.NewNop())
	ctx := context.Background()

	const writers = 32
	var wg sync.WaitGroup
	wg.Add(writers)
	for i := 0; i < writers; i++ {
		go func(i int) {
			defer wg.Done()
			err := repo.Upsert(ctx, models.Todo{ID: fmt.Sprintf("todo-%d", i), Text: "study"})
			assert.NoError(t, err)
		}(i)
	}
	wg.Wait()

	// No write may overwrite another: all records survive.
	assert.Len(t, repo.List(ctx), writers)
}

func TestMarkRepositoryConcurrentMixedMutations(t *testing.T) {
	repo := NewMarkRepository(newMemStore(), zap.NewNop())
	ctx := context.Background()

	require.NoError(t, repo.Upsert(ctx, models.Mark{ID: "doomed", Subject: "Math", Date: date(1)}))

	const writers = 16
	var wg sync.WaitGroup
	wg.Add(writers + 1)
	for i := 0; i < writers; i++ {
		go func(i int) {
			defer wg.Done()
			err := repo.Upsert(ctx, models.Mark{ID: fmt.Sprintf("mark-%d", i), Subject: "Math", Date: date(2)})
			assert.NoError(t, err)
		}(i)
	}
	go func() {
		defer wg.Done()
		assert.NoError(t, repo.Remove(ctx, "doomed"))
	}()
	wg.Wait()

	marks := repo.List(ctx)
	assert.Len(t, marks, writers)
	for _, mark := range marks {
		assert.NotEqual(t, "doomed", mark.ID)
	}
}

func TestRepositoryDirtyAfterFailedSave(t *testing.T) {
	ms := newMemStore()
	repo := NewMarkRepository(ms, zap.NewNop())
	ctx := context.Background()

	require.NoError(t, repo.Upsert(ctx, models.Mark{ID: "ok", Subject: "Math", Date: date(1)}))
	assert.False(t, repo.Dirty())

	ms.saveErr = errors.New("disk full")
	err := repo.Upsert(ctx, models.Mark{ID: "lost", Subject: "Math", Date: date(2)})
	require.Error(t, err)
	assert.True(t, repo.Dirty())

	// The mutation remains visible in memory despite the failed write.
	assert.Len(t, repo.List(ctx), 2)
}
