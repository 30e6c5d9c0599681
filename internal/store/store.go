// Package store implements namespaced collection persistence. Each feature
// owns one namespace holding the JSON array of its full record collection;
// writes always replace the whole namespace. There is no partial update
// primitive at this layer.
package store

import "context"

// Namespace keys, one per feature collection. The values are the persisted
// storage keys and must not change without a data migration.
const (
	NamespaceTodos     = "todos-data"
	NamespaceMarks     = "marks-data"
	NamespaceSubjects  = "subjects-data"
	NamespaceTimetable = "timetable-data"
	NamespaceNotes     = "notes-data"
)

// Store persists raw namespace payloads. Load returns false when the
// namespace has never been written. Save overwrites the namespace in a single
// underlying write; there is no partial-failure recovery.
type Store interface {
	Load(ctx context.Context, namespace string) ([]byte, bool, error)
	Save(ctx context.Context, namespace string, payload []byte) error
}
