package repository

import (
	"context"
	"sort"

	"go.uber.org/zap"

	"github.com/hunyar/focusflow-api/internal/models"
	"github.com/hunyar/focusflow-api/internal/store"
)

// NoteRepository handles persistence for the notes namespace. The collection
// is kept sorted by last update, newest first.
type NoteRepository struct {
	collection *store.Collection[models.Note]
}

// NewNoteRepository creates a repository over the notes namespace.
func NewNoteRepository(s store.Store, logger *zap.Logger) *NoteRepository {
	return &NoteRepository{collection: store.NewCollection[models.Note](s, store.NamespaceNotes, logger)}
}

// List returns all notes sorted by updatedAt descending.
func (r *NoteRepository) List(ctx context.Context) []models.Note {
	notes := r.collection.LoadAll(ctx)
	sortNotes(notes)
	return notes
}

// FindByID returns the note with the given id, or nil.
func (r *NoteRepository) FindByID(ctx context.Context, id string) *models.Note {
	for _, note := range r.collection.LoadAll(ctx) {
		if note.ID == id {
			return &note
		}
	}
	return nil
}

// Upsert inserts or replaces a note and restores the sort order.
func (r *NoteRepository) Upsert(ctx context.Context, note models.Note) error {
	return r.collection.Update(ctx, func(notes []models.Note) ([]models.Note, bool) {
		replaced := false
		for i, existing := range notes {
			if existing.ID == note.ID {
				notes[i] = note
				replaced = true
				break
			}
		}
		if !replaced {
			notes = append(notes, note)
		}
		sortNotes(notes)
		return notes, true
	})
}

// Remove deletes the note with the given id if present.
func (r *NoteRepository) Remove(ctx context.Context, id string) error {
	return r.collection.Update(ctx, func(notes []models.Note) ([]models.Note, bool) {
		kept := notes[:0]
		for _, note := range notes {
			if note.ID != id {
				kept = append(kept, note)
			}
		}
		return kept, len(kept) != len(notes)
	})
}

// Dirty reports whether in-memory state diverges from the persisted
// namespace.
func (r *NoteRepository) Dirty() bool {
	return r.collection.Dirty()
}

func sortNotes(notes []models.Note) {
	sort.SliceStable(notes, func(i, j int) bool {
		return notes[i].UpdatedAt.After(notes[j].UpdatedAt)
	})
}
