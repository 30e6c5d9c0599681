package models

import "time"

// Mark represents a single recorded test result.
//
// Marks reference subjects by free-text name, not by Subject.ID. Aggregation
// groups on the exact string, so "Math" and "math" are distinct subjects.
type Mark struct {
	ID         string    `json:"id"`
	Subject    string    `json:"subject"`
	TestName   string    `json:"testName"`
	Score      float64   `json:"score"`
	TotalMarks float64   `json:"totalMarks"`
	Date       time.Time `json:"date"`
}

// Percentage returns the score as a percentage of total marks, 0 when the
// total is 0.
func (m Mark) Percentage() float64 {
	if m.TotalMarks <= 0 {
		return 0
	}
	return m.Score / m.TotalMarks * 100
}
