package repository

import (
	"context"
	"sort"

	"go.uber.org/zap"

	"github.com/hunyar/focusflow-api/internal/models"
	"github.com/hunyar/focusflow-api/internal/store"
)

// MarkRepository handles persistence for the marks namespace. The collection
// is re-sorted by date descending on every mutation.
type MarkRepository struct {
	collection *store.Collection[models.Mark]
}

// NewMarkRepository creates a repository over the marks namespace.
func NewMarkRepository(s store.Store, logger *zap.Logger) *MarkRepository {
	return &MarkRepository{collection: store.NewCollection[models.Mark](s, store.NamespaceMarks, logger)}
}

// List returns all marks sorted by date descending.
func (r *MarkRepository) List(ctx context.Context) []models.Mark {
	marks := r.collection.LoadAll(ctx)
	sortMarks(marks)
	return marks
}

// Upsert inserts or replaces a mark and restores the date-descending order.
func (r *MarkRepository) Upsert(ctx context.Context, mark models.Mark) error {
	return r.collection.Update(ctx, func(marks []models.Mark) ([]models.Mark, bool) {
		replaced := false
		for i, existing := range marks {
			if existing.ID == mark.ID {
				marks[i] = mark
				replaced = true
				break
			}
		}
		if !replaced {
			marks = append(marks, mark)
		}
		sortMarks(marks)
		return marks, true
	})
}

// Remove deletes the mark with the given id if present.
func (r *MarkRepository) Remove(ctx context.Context, id string) error {
	return r.collection.Update(ctx, func(marks []models.Mark) ([]models.Mark, bool) {
		kept := marks[:0]
		for _, mark := range marks {
			if mark.ID != id {
				kept = append(kept, mark)
			}
		}
		return kept, len(kept) != len(marks)
	})
}

// Dirty reports whether in-memory state diverges from the persisted
// namespace.
func (r *MarkRepository) Dirty() bool {
	return r.collection.Dirty()
}

func sortMarks(marks []models.Mark) {
	sort.SliceStable(marks, func(i, j int) bool {
		return marks[i].Date.After(marks[j].Date)
	})
}
