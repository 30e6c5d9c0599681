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

type noteRepository interface {
	List(ctx context.Context) []models.Note
	FindByID(ctx context.Context, id string) *models.Note
	Upsert(ctx context.Context, note models.Note) error
	Remove(ctx context.Context, id string) error
	Dirty() bool
}

// CreateNoteRequest captures fields for adding a note.
type CreateNoteRequest struct {
	Title   string `json:"title" validate:"required"`
	Content string `json:"content"`
}

// UpdateNoteRequest modifies a note in place; notes are the only records
// edited rather than replaced.
type UpdateNoteRequest struct {
	Title   string `json:"title" validate:"required"`
	Content string `json:"content"`
}

// NoteService handles the notes workflows.
type NoteService struct {
	repo      noteRepository
	validator *validator.Validate
	logger    *zap.Logger
	now       func() time.Time
}

// NewNoteService creates a new note service.
func NewNoteService(repo noteRepository, validate *validator.Validate, logger *zap.Logger) *NoteService {
	if validate == nil {
		validate = validator.New()
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &NoteService{repo: repo, validator: validate, logger: logger, now: time.Now}
}

// List returns all notes, most recently updated first.
func (s *NoteService) List(ctx context.Context) []models.Note {
	return s.repo.List(ctx)
}

// Get returns a note by id.
func (s *NoteService) Get(ctx context.Context, id string) (*models.Note, error) {
	note := s.repo.FindByID(ctx, id)
	if note == nil {
		return nil, appErrors.Clone(appErrors.ErrNotFound, "note not found")
	}
	return note, nil
}

// Create validates and stores a new note. Content may be empty; the title
// may not.
func (s *NoteService) Create(ctx context.Context, req CreateNoteRequest) (*models.Note, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "invalid note payload")
	}

	title := strings.TrimSpace(req.Title)
	if title == "" {
		return nil, appErrors.Clone(appErrors.ErrValidation, "note title cannot be empty")
	}

	now := s.now()
	note := models.Note{
		ID:        uuid.NewString(),
		Title:     title,
		Content:   req.Content,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := s.repo.Upsert(ctx, note); err != nil {
		return &note, unsynced(err)
	}
	return &note, nil
}

// Update edits a note in place, refreshing its update timestamp and letting
// the repository restore the sort order.
func (s *NoteService) Update(ctx context.Context, id string, req UpdateNoteRequest) (*models.Note, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "invalid note payload")
	}

	title := strings.TrimSpace(req.Title)
	if title == "" {
		return nil, appErrors.Clone(appErrors.ErrValidation, "note title cannot be empty")
	}

	note := s.repo.FindByID(ctx, id)
	if note == nil {
		return nil, appErrors.Clone(appErrors.ErrNotFound, "note not found")
	}

	note.Title = title
	note.Content = req.Content
	note.UpdatedAt = s.now()
	if err := s.repo.Upsert(ctx, *note); err != nil {
		return note, unsynced(err)
	}
	return note, nil
}

// Delete removes a note by id. Removing an unknown id is a no-op.
func (s *NoteService) Delete(ctx context.Context, id string) error {
	if err := s.repo.Remove(ctx, id); err != nil {
		return unsynced(err)
	}
	return nil
}

// Unsynced reports whether the last write to the notes namespace failed.
func (s *NoteService) Unsynced() bool {
	return s.repo.Dirty()
}
