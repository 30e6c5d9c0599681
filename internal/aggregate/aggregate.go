// Package aggregate contains the pure derivation functions shared by the
// marks and timetable features. Nothing here performs I/O; every function is
// deterministic over its inputs.
package aggregate

import (
	"fmt"
	"sort"

	"github.com/hunyar/focusflow-api/internal/models"
)

// SubjectSummary aggregates all marks sharing one subject name.
type SubjectSummary struct {
	Subject           string  `json:"subject"`
	TotalScored       float64 `json:"totalScored"`
	TotalPossible     float64 `json:"totalPossible"`
	AveragePercentage float64 `json:"averagePercentage"`
	Grade             string  `json:"grade"`
	TestCount         int     `json:"testCount"`
}

// OverallSummary aggregates every mark regardless of subject.
type OverallSummary struct {
	TotalScored       float64 `json:"totalScored"`
	TotalPossible     float64 `json:"totalPossible"`
	AveragePercentage float64 `json:"averagePercentage"`
	Grade             string  `json:"grade"`
	TestCount         int     `json:"testCount"`
}

// Grade maps a percentage to its letter band. Boundaries are inclusive on the
// lower bound of each band.
func Grade(percentage float64) string {
	switch {
	case percentage >= 90:
		return "A+"
	case percentage >= 80:
		return "A"
	case percentage >= 70:
		return "B"
	case percentage >= 60:
		return "C"
	case percentage >= 50:
		return "D"
	default:
		return "F"
	}
}

// SummarizeBySubject groups marks by exact subject string and returns one
// summary per group, ordered alphabetically by subject name.
//
// Grouping is case and whitespace sensitive: "Math" and "math" are distinct
// groups. That matches how marks are entered and displayed; normalising here
// would silently merge rows the user created separately.
func SummarizeBySubject(marks []models.Mark) []SubjectSummary {
	type bucket struct {
		scored   float64
		possible float64
		count    int
	}
	buckets := make(map[string]*bucket)
	for _, mark := range marks {
		b, ok := buckets[mark.Subject]
		if !ok {
			b = &bucket{}
			buckets[mark.Subject] = b
		}
		b.scored += mark.Score
		b.possible += mark.TotalMarks
		b.count++
	}

	summaries := make([]SubjectSummary, 0, len(buckets))
	for subject, b := range buckets {
		percentage := 0.0
		if b.possible > 0 {
			percentage = b.scored / b.possible * 100
		}
		summaries = append(summaries, SubjectSummary{
			Subject:           subject,
			TotalScored:       b.scored,
			TotalPossible:     b.possible,
			AveragePercentage: percentage,
			Grade:             Grade(percentage),
			TestCount:         b.count,
		})
	}

	sort.Slice(summaries, func(i, j int) bool {
		return summaries[i].Subject < summaries[j].Subject
	})
	return summaries
}

// SummarizeOverall sums score and total across all marks. The percentage is 0
// when no marks carry any possible points.
func SummarizeOverall(marks []models.Mark) OverallSummary {
	var summary OverallSummary
	for _, mark := range marks {
		summary.TotalScored += mark.Score
		summary.TotalPossible += mark.TotalMarks
		summary.TestCount++
	}
	if summary.TotalPossible > 0 {
		summary.AveragePercentage = summary.TotalScored / summary.TotalPossible * 100
	}
	summary.Grade = Grade(summary.AveragePercentage)
	return summary
}

// TimeSlots returns the fixed hourly rendering grid, "07:00" through "21:00".
func TimeSlots() []string {
	slots := make([]string, 0, 15)
	for hour := 7; hour <= 21; hour++ {
		slots = append(slots, fmt.Sprintf("%02d:00", hour))
	}
	return slots
}

// Occupancy returns the entries claiming the given day and slot. An entry
// claims slot t when startTime <= t < endTime, so an entry covering any part
// of an hour past its start claims that hour's cell, and an entry ending
// exactly on a slot boundary does not claim the following slot.
func Occupancy(entries []models.TimetableEntry, day models.Weekday, slot string) []models.TimetableEntry {
	var claimed []models.TimetableEntry
	for _, entry := range entries {
		if entry.Day != day {
			continue
		}
		if entry.StartTime <= slot && entry.EndTime > slot {
			claimed = append(claimed, entry)
		}
	}
	return claimed
}
