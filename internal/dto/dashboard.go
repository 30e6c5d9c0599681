package dto

import "github.com/hunyar/focusflow-api/internal/aggregate"

// DashboardResponse is the landing-page view-model: counts across features,
// today's schedule, and the overall mark aggregate.
type DashboardResponse struct {
	OpenTodos      int                      `json:"openTodos"`
	CompletedTodos int                      `json:"completedTodos"`
	SubjectCount   int                      `json:"subjectCount"`
	NoteCount      int                      `json:"noteCount"`
	TodayEntries   []TimetableEntryView     `json:"todayEntries"`
	Overall        aggregate.OverallSummary `json:"overall"`
}
