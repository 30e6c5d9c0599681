package service

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hunyar/focusflow-api/internal/models"
	appErrors "github.com/hunyar/focusflow-api/pkg/errors"
)

type fakeTodoRepo struct {
	todos     []models.Todo
	upsertErr error
	removeErr error
	dirty     bool
}

func (f *fakeTodoRepo) List(_ context.Context) []models.Todo {
	return f.todos
}

func (f *fakeTodoRepo) FindByID(_ context.Context, id string) *models.Todo {
	for _, todo := range f.todos {
		if todo.ID == id {
			t := todo
			return &t
		}
	}
	return nil
}

func (f *fakeTodoRepo) Upsert(_ context.Context, todo models.Todo) error {
	if f.upsertErr != nil {
		return f.upsertErr
	}
	for i, existing := range f.todos {
		if existing.ID == todo.ID {
			f.todos[i] = todo
			return nil
		}
	}
	f.todos = append([]models.Todo{todo}, f.todos...)
	return nil
}

func (f *fakeTodoRepo) Remove(_ context.Context, id string) error {
	if f.removeErr != nil {
		return f.removeErr
	}
	kept := f.todos[:0]
	for _, todo := range f.todos {
		if todo.ID != id {
			kept = append(kept, todo)
		}
	}
	f.todos = kept
	return nil
}

func (f *fakeTodoRepo) Dirty() bool {
	return f.dirty
}

func errorCode(t *testing.T, err error) string {
	t.Helper()
	require.Error(t, err)
	return appErrors.FromError(err).Code
}

func TestTodoServiceCreate(t *testing.T) {
	repo := &fakeTodoRepo{}
	svc := NewTodoService(repo, nil, nil)

	todo, err := svc.Create(context.Background(), CreateTodoRequest{Text: "  revise chapter 4  ", Priority: models.PriorityHigh})
	require.NoError(t, err)
	assert.NotEmpty(t, todo.ID)
	assert.Equal(t, "revise chapter 4", todo.Text)
	assert.False(t, todo.Completed)
	require.Len(t, repo.todos, 1)
}

func TestTodoServiceCreateRejectsBlankText(t *testing.T) {
	repo := &fakeTodoRepo{}
	svc := NewTodoService(repo, nil, nil)

	_, err := svc.Create(context.Background(), CreateTodoRequest{Text: "   "})
	assert.Equal(t, appErrors.ErrValidation.Code, errorCode(t, err))
	assert.Empty(t, repo.todos)
}

func TestTodoServiceCreateRejectsUnknownPriority(t *testing.T) {
	svc := NewTodoService(&fakeTodoRepo{}, nil, nil)

	_, err := svc.Create(context.Background(), CreateTodoRequest{Text: "read", Priority: "Urgent"})
	assert.Equal(t, appErrors.ErrValidation.Code, errorCode(t, err))
}

func TestTodoServiceToggle(t *testing.T) {
	repo := &fakeTodoRepo{todos: []models.Todo{{ID: "a", Text: "read"}}}
	svc := NewTodoService(repo, nil, nil)

	todo, err := svc.Toggle(context.Background(), "a")
	require.NoError(t, err)
	assert.True(t, todo.Completed)

	todo, err = svc.Toggle(context.Background(), "a")
	require.NoError(t, err)
	assert.False(t, todo.Completed)
}

func TestTodoServiceToggleUnknown(t *testing.T) {
	svc := NewTodoService(&fakeTodoRepo{}, nil, nil)

	_, err := svc.Toggle(context.Background(), "missing")
	assert.Equal(t, appErrors.ErrNotFound.Code, errorCode(t, err))
}

func TestTodoServiceDeleteIdempotent(t *testing.T) {
	repo := &fakeTodoRepo{todos: []models.Todo{{ID: "a", Text: "read"}}}
	svc := NewTodoService(repo, nil, nil)

	require.NoError(t, svc.Delete(context.Background(), "a"))
	require.NoError(t, svc.Delete(context.Background(), "a"))
	assert.Empty(t, repo.todos)
}

func TestTodoServiceCreateSurfacesUnsyncedWrite(t *testing.T) {
	repo := &fakeTodoRepo{upsertErr: errors.New("disk full"), dirty: true}
	svc := NewTodoService(repo, nil, nil)

	todo, err := svc.Create(context.Background(), CreateTodoRequest{Text: "read"})
	assert.Equal(t, appErrors.ErrStoreUnsynced.Code, errorCode(t, err))
	// The created record is still returned so the caller can render it.
	require.NotNil(t, todo)
	assert.True(t, svc.Unsynced())
}
