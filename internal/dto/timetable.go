// Package dto holds the view-model shapes handlers return to the web client.
package dto

import "github.com/hunyar/focusflow-api/internal/models"

// UnknownSubjectName is rendered for entries whose subject was deleted.
const UnknownSubjectName = "Unknown Subject"

// ResolvedSubject is the result of looking up a timetable entry's subject
// reference. Resolved is false when the reference dangles; callers must not
// treat that as an error.
type ResolvedSubject struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Color    string `json:"color,omitempty"`
	Resolved bool   `json:"resolved"`
}

// TimetableEntryView pairs a timetable entry with its resolved subject.
type TimetableEntryView struct {
	models.TimetableEntry
	Subject ResolvedSubject `json:"subject"`
}

// TimetableCell is one day column within a slot row.
type TimetableCell struct {
	Day     models.Weekday       `json:"day"`
	Entries []TimetableEntryView `json:"entries"`
}

// TimetableRow is one hourly slot across the week.
type TimetableRow struct {
	Slot  string          `json:"slot"`
	Cells []TimetableCell `json:"cells"`
}

// TimetableGrid is the rendered weekly grid: fixed hourly slots by weekday.
type TimetableGrid struct {
	Days  []models.Weekday `json:"days"`
	Slots []string         `json:"slots"`
	Rows  []TimetableRow   `json:"rows"`
}
