package aggregate

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hunyar/focusflow-api/internal/models"
)

func TestGradeBands(t *testing.T) {
	cases := []struct {
		percentage float64
		grade      string
	}{
		{100, "A+"},
		{90, "A+"},
		{89.99, "A"},
		{80, "A"},
		{70, "B"},
		{60, "C"},
		{50, "D"},
		{49.99, "F"},
		{0, "F"},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.grade, Grade(tc.percentage), "percentage %v", tc.percentage)
	}
}

func TestGradeMonotonic(t *testing.T) {
	order := map[string]int{"A+": 0, "A": 1, "B": 2, "C": 3, "D": 4, "F": 5}
	prev := 0
	for p := 100.0; p >= 0; p -= 0.5 {
		rank, ok := order[Grade(p)]
		require.True(t, ok)
		assert.GreaterOrEqual(t, rank, prev, "grade must not improve as percentage drops (at %v)", p)
		prev = rank
	}
}

func TestSummarizeBySubject(t *testing.T) {
	now := time.Now()
	marks := []models.Mark{
		{ID: "1", Subject: "Math", TestName: "Midterm", Score: 45, TotalMarks: 50, Date: now},
		{ID: "2", Subject: "Math", TestName: "Quiz", Score: 30, TotalMarks: 50, Date: now},
		{ID: "3", Subject: "Biology", TestName: "Lab", Score: 18, TotalMarks: 20, Date: now},
	}

	summaries := SummarizeBySubject(marks)
	require.Len(t, summaries, 2)

	// Alphabetical order.
	assert.Equal(t, "Biology", summaries[0].Subject)
	assert.Equal(t, "Math", summaries[1].Subject)

	math := summaries[1]
	assert.Equal(t, 75.0, math.TotalScored)
	assert.Equal(t, 100.0, math.TotalPossible)
	assert.Equal(t, 75.0, math.AveragePercentage)
	assert.Equal(t, "B", math.Grade)
	assert.Equal(t, 2, math.TestCount)
}

func TestSummarizeBySubjectCaseSensitive(t *testing.T) {
	marks := []models.Mark{
		{ID: "1", Subject: "Math", Score: 10, TotalMarks: 10},
		{ID: "2", Subject: "math", Score: 5, TotalMarks: 10},
	}
	summaries := SummarizeBySubject(marks)
	require.Len(t, summaries, 2)
	assert.Equal(t, "Math", summaries[0].Subject)
	assert.Equal(t, "math", summaries[1].Subject)
}

func TestSummarizeOverall(t *testing.T) {
	marks := []models.Mark{
		{ID: "1", Subject: "Math", Score: 50, TotalMarks: 50},
		{ID: "2", Subject: "History", Score: 0, TotalMarks: 50},
	}
	overall := SummarizeOverall(marks)
	assert.Equal(t, 50.0, overall.TotalScored)
	assert.Equal(t, 100.0, overall.TotalPossible)
	assert.Equal(t, 50.0, overall.AveragePercentage)
	assert.Equal(t, "D", overall.Grade)
	assert.Equal(t, 2, overall.TestCount)
}

func TestSummarizeOverallEmpty(t *testing.T) {
	overall := SummarizeOverall(nil)
	assert.Equal(t, 0.0, overall.AveragePercentage)
	assert.Equal(t, "F", overall.Grade)
	assert.Equal(t, 0, overall.TestCount)
}

func TestPercentageBoundaries(t *testing.T) {
	full := models.Mark{Score: 50, TotalMarks: 50}
	assert.Equal(t, 100.0, full.Percentage())
	assert.Equal(t, "A+", Grade(full.Percentage()))

	zero := models.Mark{Score: 0, TotalMarks: 50}
	assert.Equal(t, 0.0, zero.Percentage())
	assert.Equal(t, "F", Grade(zero.Percentage()))
}

func TestTimeSlots(t *testing.T) {
	slots := TimeSlots()
	require.Len(t, slots, 15)
	assert.Equal(t, "07:00", slots[0])
	assert.Equal(t, "21:00", slots[14])
}

func TestOccupancyHalfOpen(t *testing.T) {
	entries := []models.TimetableEntry{
		{ID: "1", Day: models.Monday, StartTime: "09:00", EndTime: "10:00"},
	}

	assert.Len(t, Occupancy(entries, models.Monday, "09:00"), 1)
	assert.Empty(t, Occupancy(entries, models.Monday, "10:00"))
	assert.Empty(t, Occupancy(entries, models.Tuesday, "09:00"))
}

func TestOccupancyPartialHour(t *testing.T) {
	entries := []models.TimetableEntry{
		{ID: "1", Day: models.Friday, StartTime: "09:00", EndTime: "10:30"},
	}

	// The half hour past 10:00 still claims the whole 10:00 cell.
	assert.Len(t, Occupancy(entries, models.Friday, "10:00"), 1)
	assert.Empty(t, Occupancy(entries, models.Friday, "11:00"))
}
