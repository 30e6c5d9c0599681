package service

import (
	"context"
	"sync/atomic"

	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"

	"github.com/hunyar/focusflow-api/internal/ai"
	appErrors "github.com/hunyar/focusflow-api/pkg/errors"
)

type aiBridge interface {
	StudySuggestions(ctx context.Context, req ai.StudySuggestionsRequest) (*ai.StudySuggestionsResponse, error)
	MarkAnalysis(ctx context.Context, req ai.MarkAnalysisRequest) (*ai.MarkAnalysisResponse, error)
	Conceptor(ctx context.Context, req ai.ConceptorRequest) (*ai.ConceptorResponse, error)
}

type summaryProvider interface {
	Summaries(ctx context.Context) (*MarkSummaries, bool, error)
}

// InsightService fronts the model bridge for the three insight features. Each
// operation allows one request in flight at a time; a second submission while
// one is pending is rejected rather than queued, mirroring the submit-button
// lock in the client.
type InsightService struct {
	bridge      aiBridge
	marks       summaryProvider
	studentName string
	validator   *validator.Validate
	logger      *zap.Logger

	suggestionsBusy atomic.Bool
	analysisBusy    atomic.Bool
	conceptorBusy   atomic.Bool
}

// NewInsightService creates a new insight service.
func NewInsightService(bridge aiBridge, marks summaryProvider, studentName string, validate *validator.Validate, logger *zap.Logger) *InsightService {
	if validate == nil {
		validate = validator.New()
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &InsightService{bridge: bridge, marks: marks, studentName: studentName, validator: validate, logger: logger}
}

// StudySuggestions generates a study plan for the given subjects and topics.
func (s *InsightService) StudySuggestions(ctx context.Context, req ai.StudySuggestionsRequest) (*ai.StudySuggestionsResponse, error) {
	if s.bridge == nil {
		return nil, appErrors.Clone(appErrors.ErrAIUnavailable, "assistant is not configured")
	}
	if err := s.validator.Struct(req); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "subjects and exam topics are required")
	}
	if !s.suggestionsBusy.CompareAndSwap(false, true) {
		return nil, appErrors.Clone(appErrors.ErrConflict, "a suggestions request is already running")
	}
	defer s.suggestionsBusy.Store(false)

	return s.bridge.StudySuggestions(ctx, req)
}

// AnalyzeMarks snapshots the current mark aggregates and asks the advisor
// for a structured report. The response is transient view state and is never
// persisted.
func (s *InsightService) AnalyzeMarks(ctx context.Context) (*ai.MarkAnalysisResponse, error) {
	if s.bridge == nil {
		return nil, appErrors.Clone(appErrors.ErrAIUnavailable, "assistant is not configured")
	}
	if !s.analysisBusy.CompareAndSwap(false, true) {
		return nil, appErrors.Clone(appErrors.ErrConflict, "an analysis request is already running")
	}
	defer s.analysisBusy.Store(false)

	summaries, _, err := s.marks.Summaries(ctx)
	if err != nil {
		return nil, err
	}
	if summaries.Overall.TestCount == 0 {
		return nil, appErrors.Clone(appErrors.ErrValidation, "record some marks before requesting an analysis")
	}

	return s.bridge.MarkAnalysis(ctx, ai.MarkAnalysisRequest{
		StudentName:         s.studentName,
		SubjectPerformances: summaries.Subjects,
		OverallAverage:      summaries.Overall.AveragePercentage,
		OverallGrade:        summaries.Overall.Grade,
	})
}

// Conceptor answers a free-form question.
func (s *InsightService) Conceptor(ctx context.Context, req ai.ConceptorRequest) (*ai.ConceptorResponse, error) {
	if s.bridge == nil {
		return nil, appErrors.Clone(appErrors.ErrAIUnavailable, "assistant is not configured")
	}
	if err := s.validator.Struct(req); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "a question is required")
	}
	if !s.conceptorBusy.CompareAndSwap(false, true) {
		return nil, appErrors.Clone(appErrors.ErrConflict, "a question is already being answered")
	}
	defer s.conceptorBusy.Store(false)

	return s.bridge.Conceptor(ctx, req)
}
