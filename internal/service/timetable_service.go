package service

import (
	"context"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/hunyar/focusflow-api/internal/aggregate"
	"github.com/hunyar/focusflow-api/internal/dto"
	"github.com/hunyar/focusflow-api/internal/models"
	appErrors "github.com/hunyar/focusflow-api/pkg/errors"
)

type timetableRepository interface {
	List(ctx context.Context) []models.TimetableEntry
	Upsert(ctx context.Context, entry models.TimetableEntry) error
	Remove(ctx context.Context, id string) error
	Dirty() bool
}

type subjectLookup interface {
	FindByID(ctx context.Context, id string) *models.Subject
}

// CreateTimetableEntryRequest captures fields for scheduling a block.
type CreateTimetableEntryRequest struct {
	Day       models.Weekday `json:"day" validate:"required"`
	StartTime string         `json:"startTime" validate:"required"`
	EndTime   string         `json:"endTime" validate:"required"`
	SubjectID string         `json:"subjectId" validate:"required"`
	Location  string         `json:"location"`
}

// TimetableService handles the weekly timetable workflows. It reads the
// subjects namespace as a foreign lookup and tolerates dangling references.
type TimetableService struct {
	repo      timetableRepository
	subjects  subjectLookup
	validator *validator.Validate
	logger    *zap.Logger
}

// NewTimetableService creates a new timetable service.
func NewTimetableService(repo timetableRepository, subjects subjectLookup, validate *validator.Validate, logger *zap.Logger) *TimetableService {
	if validate == nil {
		validate = validator.New()
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &TimetableService{repo: repo, subjects: subjects, validator: validate, logger: logger}
}

// List returns all entries sorted by (day, start time) with their subjects
// resolved.
func (s *TimetableService) List(ctx context.Context) []dto.TimetableEntryView {
	entries := s.repo.List(ctx)
	views := make([]dto.TimetableEntryView, 0, len(entries))
	for _, entry := range entries {
		views = append(views, dto.TimetableEntryView{
			TimetableEntry: entry,
			Subject:        s.resolveSubject(ctx, entry.SubjectID),
		})
	}
	return views
}

// Grid renders the weekly grid over the fixed hourly slots. Entries claim
// every slot they overlap, half-open on the end time.
func (s *TimetableService) Grid(ctx context.Context) *dto.TimetableGrid {
	entries := s.repo.List(ctx)
	grid := &dto.TimetableGrid{
		Days:  models.Weekdays,
		Slots: aggregate.TimeSlots(),
	}
	for _, slot := range grid.Slots {
		row := dto.TimetableRow{Slot: slot}
		for _, day := range grid.Days {
			cell := dto.TimetableCell{Day: day}
			for _, entry := range aggregate.Occupancy(entries, day, slot) {
				cell.Entries = append(cell.Entries, dto.TimetableEntryView{
					TimetableEntry: entry,
					Subject:        s.resolveSubject(ctx, entry.SubjectID),
				})
			}
			row.Cells = append(row.Cells, cell)
		}
		grid.Rows = append(grid.Rows, row)
	}
	return grid
}

// Create validates and schedules a new entry. The subject reference is not
// checked for existence; a dangling id renders as unknown, matching the
// delete-subject behaviour.
func (s *TimetableService) Create(ctx context.Context, req CreateTimetableEntryRequest) (*dto.TimetableEntryView, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "invalid timetable payload")
	}
	if !req.Day.Valid() {
		return nil, appErrors.Clone(appErrors.ErrValidation, "day must be Monday through Sunday")
	}
	if !validClockTime(req.StartTime) || !validClockTime(req.EndTime) {
		return nil, appErrors.Clone(appErrors.ErrValidation, "times must be in HH:MM format")
	}
	if req.EndTime <= req.StartTime {
		return nil, appErrors.Clone(appErrors.ErrValidation, "end time must be after start time")
	}

	entry := models.TimetableEntry{
		ID:        uuid.NewString(),
		Day:       req.Day,
		StartTime: req.StartTime,
		EndTime:   req.EndTime,
		SubjectID: req.SubjectID,
		Location:  req.Location,
	}
	view := &dto.TimetableEntryView{
		TimetableEntry: entry,
		Subject:        s.resolveSubject(ctx, entry.SubjectID),
	}
	if err := s.repo.Upsert(ctx, entry); err != nil {
		return view, unsynced(err)
	}
	return view, nil
}

// Delete removes an entry by id. Removing an unknown id is a no-op.
func (s *TimetableService) Delete(ctx context.Context, id string) error {
	if err := s.repo.Remove(ctx, id); err != nil {
		return unsynced(err)
	}
	return nil
}

// Unsynced reports whether the last write to the timetable namespace failed.
func (s *TimetableService) Unsynced() bool {
	return s.repo.Dirty()
}

func (s *TimetableService) resolveSubject(ctx context.Context, id string) dto.ResolvedSubject {
	if subject := s.subjects.FindByID(ctx, id); subject != nil {
		return dto.ResolvedSubject{ID: subject.ID, Name: subject.Name, Color: subject.Color, Resolved: true}
	}
	return dto.ResolvedSubject{ID: id, Name: dto.UnknownSubjectName}
}

func validClockTime(value string) bool {
	_, err := time.Parse("15:04", value)
	return err == nil && len(value) == 5
}
