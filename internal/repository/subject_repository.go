package repository

import (
	"context"

	"go.uber.org/zap"

	"github.com/hunyar/focusflow-api/internal/models"
	"github.com/hunyar/focusflow-api/internal/store"
)

// SubjectRepository handles persistence for the subjects namespace. The
// timetable feature reads it as a foreign lookup and tolerates staleness.
type SubjectRepository struct {
	collection *store.Collection[models.Subject]
}

// NewSubjectRepository creates a repository over the subjects namespace.
func NewSubjectRepository(s store.Store, logger *zap.Logger) *SubjectRepository {
	return &SubjectRepository{collection: store.NewCollection[models.Subject](s, store.NamespaceSubjects, logger)}
}

// List returns all subjects in insertion order.
func (r *SubjectRepository) List(ctx context.Context) []models.Subject {
	return r.collection.LoadAll(ctx)
}

// FindByID returns the subject with the given id, or nil.
func (r *SubjectRepository) FindByID(ctx context.Context, id string) *models.Subject {
	for _, subject := range r.collection.LoadAll(ctx) {
		if subject.ID == id {
			return &subject
		}
	}
	return nil
}

// Upsert appends a new subject or replaces an existing one in place.
func (r *SubjectRepository) Upsert(ctx context.Context, subject models.Subject) error {
	return r.collection.Update(ctx, func(subjects []models.Subject) ([]models.Subject, bool) {
		for i, existing := range subjects {
			if existing.ID == subject.ID {
				subjects[i] = subject
				return subjects, true
			}
		}
		return append(subjects, subject), true
	})
}

// Remove deletes the subject with the given id if present. Timetable entries
// referencing it are left untouched and resolve as unknown afterwards.
func (r *SubjectRepository) Remove(ctx context.Context, id string) error {
	return r.collection.Update(ctx, func(subjects []models.Subject) ([]models.Subject, bool) {
		kept := subjects[:0]
		for _, subject := range subjects {
			if subject.ID != id {
				kept = append(kept, subject)
			}
		}
		return kept, len(kept) != len(subjects)
	})
}

// Dirty reports whether in-memory state diverges from the persisted
// namespace.
func (r *SubjectRepository) Dirty() bool {
	return r.collection.Dirty()
}
