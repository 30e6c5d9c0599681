package models

import "time"

// TodoPriority enumerates the supported priority labels.
type TodoPriority string

const (
	PriorityLow    TodoPriority = "Low"
	PriorityMedium TodoPriority = "Medium"
	PriorityHigh   TodoPriority = "High"
)

// Valid reports whether the priority is one of the known labels.
func (p TodoPriority) Valid() bool {
	switch p {
	case PriorityLow, PriorityMedium, PriorityHigh:
		return true
	}
	return false
}

// Todo represents a single task on the todo list.
type Todo struct {
	ID        string       `json:"id"`
	Text      string       `json:"text"`
	Completed bool         `json:"completed"`
	Category  string       `json:"category,omitempty"`
	DueDate   *time.Time   `json:"dueDate,omitempty"`
	Priority  TodoPriority `json:"priority,omitempty"`
}
