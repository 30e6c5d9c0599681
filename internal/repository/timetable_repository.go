package repository

import (
	"context"
	"sort"

	"go.uber.org/zap"

	"github.com/hunyar/focusflow-api/internal/models"
	"github.com/hunyar/focusflow-api/internal/store"
)

// TimetableRepository handles persistence for the timetable namespace. The
// collection is kept sorted by (day index, start time).
type TimetableRepository struct {
	collection *store.Collection[models.TimetableEntry]
}

// NewTimetableRepository creates a repository over the timetable namespace.
func NewTimetableRepository(s store.Store, logger *zap.Logger) *TimetableRepository {
	return &TimetableRepository{collection: store.NewCollection[models.TimetableEntry](s, store.NamespaceTimetable, logger)}
}

// List returns all entries sorted by day then start time.
func (r *TimetableRepository) List(ctx context.Context) []models.TimetableEntry {
	entries := r.collection.LoadAll(ctx)
	sortEntries(entries)
	return entries
}

// Upsert inserts or replaces an entry and restores the sort order.
func (r *TimetableRepository) Upsert(ctx context.Context, entry models.TimetableEntry) error {
	return r.collection.Update(ctx, func(entries []models.TimetableEntry) ([]models.TimetableEntry, bool) {
		replaced := false
		for i, existing := range entries {
			if existing.ID == entry.ID {
				entries[i] = entry
				replaced = true
				break
			}
		}
		if !replaced {
			entries = append(entries, entry)
		}
		sortEntries(entries)
		return entries, true
	})
}

// Remove deletes the entry with the given id if present.
func (r *TimetableRepository) Remove(ctx context.Context, id string) error {
	return r.collection.Update(ctx, func(entries []models.TimetableEntry) ([]models.TimetableEntry, bool) {
		kept := entries[:0]
		for _, entry := range entries {
			if entry.ID != id {
				kept = append(kept, entry)
			}
		}
		return kept, len(kept) != len(entries)
	})
}

// Dirty reports whether in-memory state diverges from the persisted
// namespace.
func (r *TimetableRepository) Dirty() bool {
	return r.collection.Dirty()
}

func sortEntries(entries []models.TimetableEntry) {
	sort.SliceStable(entries, func(i, j int) bool {
		if entries[i].Day != entries[j].Day {
			return entries[i].Day.Index() < entries[j].Day.Index()
		}
		return entries[i].StartTime < entries[j].StartTime
	})
}
