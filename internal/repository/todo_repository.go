// Package repository exposes typed List/Upsert/Remove access to each feature
// namespace on top of the replace-all store collections. Removal is
// idempotent everywhere: removing an unknown id is a no-op.
package repository

import (
	"context"

	"go.uber.org/zap"

	"github.com/hunyar/focusflow-api/internal/models"
	"github.com/hunyar/focusflow-api/internal/store"
)

// TodoRepository handles persistence for the todos namespace.
type TodoRepository struct {
	collection *store.Collection[models.Todo]
}

// NewTodoRepository creates a repository over the todos namespace.
func NewTodoRepository(s store.Store, logger *zap.Logger) *TodoRepository {
	return &TodoRepository{collection: store.NewCollection[models.Todo](s, store.NamespaceTodos, logger)}
}

// List returns all todos, newest first.
func (r *TodoRepository) List(ctx context.Context) []models.Todo {
	return r.collection.LoadAll(ctx)
}

// FindByID returns the todo with the given id, or nil.
func (r *TodoRepository) FindByID(ctx context.Context, id string) *models.Todo {
	for _, todo := range r.collection.LoadAll(ctx) {
		if todo.ID == id {
			return &todo
		}
	}
	return nil
}

// Upsert inserts a new todo at the front or replaces an existing one in
// place.
func (r *TodoRepository) Upsert(ctx context.Context, todo models.Todo) error {
	return r.collection.Update(ctx, func(todos []models.Todo) ([]models.Todo, bool) {
		for i, existing := range todos {
			if existing.ID == todo.ID {
				todos[i] = todo
				return todos, true
			}
		}
		return append([]models.Todo{todo}, todos...), true
	})
}

// Remove deletes the todo with the given id if present.
func (r *TodoRepository) Remove(ctx context.Context, id string) error {
	return r.collection.Update(ctx, func(todos []models.Todo) ([]models.Todo, bool) {
		kept := todos[:0]
		for _, todo := range todos {
			if todo.ID != id {
				kept = append(kept, todo)
			}
		}
		return kept, len(kept) != len(todos)
	})
}

// Dirty reports whether in-memory state diverges from the persisted
// namespace.
func (r *TodoRepository) Dirty() bool {
	return r.collection.Dirty()
}
