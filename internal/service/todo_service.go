package service

import (
	"context"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/hunyar/focusflow-api/internal/models"
	appErrors "github.com/hunyar/focusflow-api/pkg/errors"
)

type todoRepository interface {
	List(ctx context.Context) []models.Todo
	FindByID(ctx context.Context, id string) *models.Todo
	Upsert(ctx context.Context, todo models.Todo) error
	Remove(ctx context.Context, id string) error
	Dirty() bool
}

// CreateTodoRequest captures fields for adding a todo.
type CreateTodoRequest struct {
	Text     string              `json:"text" validate:"required"`
	Category string              `json:"category"`
	DueDate  *time.Time          `json:"dueDate"`
	Priority models.TodoPriority `json:"priority"`
}

// TodoService handles the todo list workflows.
type TodoService struct {
	repo      todoRepository
	validator *validator.Validate
	logger    *zap.Logger
}

// NewTodoService creates a new todo service.
func NewTodoService(repo todoRepository, validate *validator.Validate, logger *zap.Logger) *TodoService {
	if validate == nil {
		validate = validator.New()
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &TodoService{repo: repo, validator: validate, logger: logger}
}

// List returns all todos, newest first.
func (s *TodoService) List(ctx context.Context) []models.Todo {
	return s.repo.List(ctx)
}

// Create validates and stores a new todo at the front of the list.
func (s *TodoService) Create(ctx context.Context, req CreateTodoRequest) (*models.Todo, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "invalid todo payload")
	}

	text := strings.TrimSpace(req.Text)
	if text == "" {
		return nil, appErrors.Clone(appErrors.ErrValidation, "todo text cannot be empty")
	}
	if req.Priority != "" && !req.Priority.Valid() {
		return nil, appErrors.Clone(appErrors.ErrValidation, "priority must be Low, Medium or High")
	}

	todo := models.Todo{
		ID:       uuid.NewString(),
		Text:     text,
		Category: strings.TrimSpace(req.Category),
		DueDate:  req.DueDate,
		Priority: req.Priority,
	}
	if err := s.repo.Upsert(ctx, todo); err != nil {
		return &todo, unsynced(err)
	}
	return &todo, nil
}

// Toggle flips the completed flag of a todo in place.
func (s *TodoService) Toggle(ctx context.Context, id string) (*models.Todo, error) {
	todo := s.repo.FindByID(ctx, id)
	if todo == nil {
		return nil, appErrors.Clone(appErrors.ErrNotFound, "todo not found")
	}
	todo.Completed = !todo.Completed
	if err := s.repo.Upsert(ctx, *todo); err != nil {
		return todo, unsynced(err)
	}
	return todo, nil
}

// Delete removes a todo by id. Removing an unknown id is a no-op.
func (s *TodoService) Delete(ctx context.Context, id string) error {
	if err := s.repo.Remove(ctx, id); err != nil {
		return unsynced(err)
	}
	return nil
}

// Unsynced reports whether the last write to the todos namespace failed.
func (s *TodoService) Unsynced() bool {
	return s.repo.Dirty()
}

// unsynced maps a failed collection write to the shared fail-open error. The
// mutation stays applied in memory; callers surface the divergence instead of
// rolling back.
func unsynced(err error) error {
	if err == nil {
		return nil
	}
	return appErrors.Clone(appErrors.ErrStoreUnsynced, "")
}
