package service

import (
	"context"
	"time"

	"go.uber.org/zap"

	"github.com/hunyar/focusflow-api/internal/dto"
	"github.com/hunyar/focusflow-api/internal/models"
)

type timetableViewProvider interface {
	List(ctx context.Context) []dto.TimetableEntryView
}

type todoLister interface {
	List(ctx context.Context) []models.Todo
}

type subjectLister interface {
	List(ctx context.Context) []models.Subject
}

type noteLister interface {
	List(ctx context.Context) []models.Note
}

// DashboardService composes the landing-page view-model from the feature
// services. It owns no state of its own; every read recomputes from the
// current collections.
type DashboardService struct {
	todos     todoLister
	subjects  subjectLister
	notes     noteLister
	timetable timetableViewProvider
	marks     summaryProvider
	logger    *zap.Logger
	now       func() time.Time
}

// NewDashboardService creates a new dashboard service.
func NewDashboardService(todos todoLister, subjects subjectLister, notes noteLister, timetable timetableViewProvider, marks summaryProvider, logger *zap.Logger) *DashboardService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &DashboardService{
		todos:     todos,
		subjects:  subjects,
		notes:     notes,
		timetable: timetable,
		marks:     marks,
		logger:    logger,
		now:       time.Now,
	}
}

// Overview builds the dashboard snapshot.
func (s *DashboardService) Overview(ctx context.Context) (*dto.DashboardResponse, error) {
	resp := &dto.DashboardResponse{}

	for _, todo := range s.todos.List(ctx) {
		if todo.Completed {
			resp.CompletedTodos++
		} else {
			resp.OpenTodos++
		}
	}
	resp.SubjectCount = len(s.subjects.List(ctx))
	resp.NoteCount = len(s.notes.List(ctx))

	today := weekdayOf(s.now())
	for _, entry := range s.timetable.List(ctx) {
		if entry.Day == today {
			resp.TodayEntries = append(resp.TodayEntries, entry)
		}
	}

	summaries, _, err := s.marks.Summaries(ctx)
	if err != nil {
		return nil, err
	}
	resp.Overall = summaries.Overall
	return resp, nil
}

func weekdayOf(t time.Time) models.Weekday {
	switch t.Weekday() {
	case time.Monday:
		return models.Monday
	case time.Tuesday:
		return models.Tuesday
	case time.Wednesday:
		return models.Wednesday
	case time.Thursday:
		return models.Thursday
	case time.Friday:
		return models.Friday
	case time.Saturday:
		return models.Saturday
	default:
		return models.Sunday
	}
}
