package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hunyar/focusflow-api/internal/models"
	appErrors "github.com/hunyar/focusflow-api/pkg/errors"
)

type fakeNoteRepo struct {
	notes []models.Note
	dirty bool
}

func (f *fakeNoteRepo) List(_ context.Context) []models.Note {
	return f.notes
}

func (f *fakeNoteRepo) FindByID(_ context.Context, id string) *models.Note {
	for _, note := range f.notes {
		if note.ID == id {
			n := note
			return &n
		}
	}
	return nil
}

func (f *fakeNoteRepo) Upsert(_ context.Context, note models.Note) error {
	for i, existing := range f.notes {
		if existing.ID == note.ID {
			f.notes[i] = note
			return nil
		}
	}
	f.notes = append(f.notes, note)
	return nil
}

func (f *fakeNoteRepo) Remove(_ context.Context, id string) error {
	kept := f.notes[:0]
	for _, note := range f.notes {
		if note.ID != id {
			kept = append(kept, note)
		}
	}
	f.notes = kept
	return nil
}

func (f *fakeNoteRepo) Dirty() bool {
	return f.dirty
}

func TestNoteServiceCreate(t *testing.T) {
	repo := &fakeNoteRepo{}
	svc := NewNoteService(repo, nil, nil)
	fixed := time.Date(2025, time.May, 5, 8, 0, 0, 0, time.UTC)
	svc.now = func() time.Time { return fixed }

	note, err := svc.Create(context.Background(), CreateNoteRequest{Title: "  Lecture 3  ", Content: ""})
	require.NoError(t, err)
	assert.Equal(t, "Lecture 3", note.Title)
	assert.Equal(t, fixed, note.CreatedAt)
	assert.Equal(t, fixed, note.UpdatedAt)
}

func TestNoteServiceCreateRejectsBlankTitle(t *testing.T) {
	repo := &fakeNoteRepo{}
	svc := NewNoteService(repo, nil, nil)

	_, err := svc.Create(context.Background(), CreateNoteRequest{Title: "   ", Content: "body"})
	assert.Equal(t, appErrors.ErrValidation.Code, errorCode(t, err))
	assert.Empty(t, repo.notes)
}

func TestNoteServiceUpdateRefreshesTimestamp(t *testing.T) {
	created := time.Date(2025, time.May, 5, 8, 0, 0, 0, time.UTC)
	repo := &fakeNoteRepo{notes: []models.Note{
		{ID: "n1", Title: "Lecture 3", Content: "old", CreatedAt: created, UpdatedAt: created},
	}}
	svc := NewNoteService(repo, nil, nil)
	edited := created.Add(48 * time.Hour)
	svc.now = func() time.Time { return edited }

	note, err := svc.Update(context.Background(), "n1", UpdateNoteRequest{Title: "Lecture 3 (revised)", Content: "new"})
	require.NoError(t, err)
	assert.Equal(t, "Lecture 3 (revised)", note.Title)
	assert.Equal(t, "new", note.Content)
	assert.Equal(t, created, note.CreatedAt)
	assert.Equal(t, edited, note.UpdatedAt)
}

func TestNoteServiceUpdateValidation(t *testing.T) {
	repo := &fakeNoteRepo{notes: []models.Note{{ID: "n1", Title: "keep", Content: "keep"}}}
	svc := NewNoteService(repo, nil, nil)

	_, err := svc.Update(context.Background(), "n1", UpdateNoteRequest{Title: " "})
	assert.Equal(t, appErrors.ErrValidation.Code, errorCode(t, err))
	assert.Equal(t, "keep", repo.notes[0].Title)

	_, err = svc.Update(context.Background(), "missing", UpdateNoteRequest{Title: "new"})
	assert.Equal(t, appErrors.ErrNotFound.Code, errorCode(t, err))
}

func TestNoteServiceDeleteIdempotent(t *testing.T) {
	repo := &fakeNoteRepo{notes: []models.Note{{ID: "n1", Title: "x"}}}
	svc := NewNoteService(repo, nil, nil)

	require.NoError(t, svc.Delete(context.Background(), "n1"))
	require.NoError(t, svc.Delete(context.Background(), "n1"))
	assert.Empty(t, repo.notes)
}
