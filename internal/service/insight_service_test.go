package service

import (
	"context"
	"runtime"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hunyar/focusflow-api/internal/ai"
	"github.com/hunyar/focusflow-api/internal/aggregate"
	appErrors "github.com/hunyar/focusflow-api/pkg/errors"
)

// fakeBridge blocks inside each call until released, so tests can hold a
// request in flight.
type fakeBridge struct {
	block   chan struct{}
	lastReq ai.MarkAnalysisRequest
}

func newFakeBridge() *fakeBridge {
	return &fakeBridge{block: make(chan struct{})}
}

func (f *fakeBridge) StudySuggestions(_ context.Context, _ ai.StudySuggestionsRequest) (*ai.StudySuggestionsResponse, error) {
	<-f.block
	return &ai.StudySuggestionsResponse{StudySuggestions: "# Plan"}, nil
}

func (f *fakeBridge) MarkAnalysis(_ context.Context, req ai.MarkAnalysisRequest) (*ai.MarkAnalysisResponse, error) {
	f.lastReq = req
	return &ai.MarkAnalysisResponse{AnalysisTitle: "Report", OverallFeedback: "Good work"}, nil
}

func (f *fakeBridge) Conceptor(_ context.Context, _ ai.ConceptorRequest) (*ai.ConceptorResponse, error) {
	return &ai.ConceptorResponse{Answer: "Because."}, nil
}

type fakeSummaries struct {
	summaries MarkSummaries
}

func (f *fakeSummaries) Summaries(_ context.Context) (*MarkSummaries, bool, error) {
	s := f.summaries
	return &s, false, nil
}

func TestInsightServiceRejectsConcurrentSuggestions(t *testing.T) {
	bridge := newFakeBridge()
	svc := NewInsightService(bridge, &fakeSummaries{}, "", nil, nil)
	ctx := context.Background()
	req := ai.StudySuggestionsRequest{Subjects: "Math", ExamTopics: "Algebra"}

	var wg sync.WaitGroup
	wg.Add(1)
	go func() {
		defer wg.Done()
		_, err := svc.StudySuggestions(ctx, req)
		assert.NoError(t, err)
	}()

	// Wait for the first call to take the slot, then submit a second one.
	for !svc.suggestionsBusy.Load() {
		runtime.Gosched()
	}
	_, err := svc.StudySuggestions(ctx, req)
	assert.Equal(t, appErrors.ErrConflict.Code, errorCode(t, err))

	close(bridge.block)
	wg.Wait()

	// The slot frees once the first call resolves.
	_, err = svc.StudySuggestions(ctx, req)
	assert.NoError(t, err)
}

func TestInsightServiceStudySuggestionsValidation(t *testing.T) {
	svc := NewInsightService(newFakeBridge(), &fakeSummaries{}, "", nil, nil)

	_, err := svc.StudySuggestions(context.Background(), ai.StudySuggestionsRequest{Subjects: "Math"})
	assert.Equal(t, appErrors.ErrValidation.Code, errorCode(t, err))
}

func TestInsightServiceConceptorValidation(t *testing.T) {
	svc := NewInsightService(newFakeBridge(), &fakeSummaries{}, "", nil, nil)

	_, err := svc.Conceptor(context.Background(), ai.ConceptorRequest{})
	assert.Equal(t, appErrors.ErrValidation.Code, errorCode(t, err))
}

func TestInsightServiceAnalyzeMarksSnapshotsSummaries(t *testing.T) {
	bridge := newFakeBridge()
	marks := &fakeSummaries{summaries: MarkSummaries{
		Subjects: []aggregate.SubjectSummary{
			{Subject: "Math", AveragePercentage: 75, Grade: "B", TestCount: 2},
		},
		Overall: aggregate.OverallSummary{AveragePercentage: 75, Grade: "B", TestCount: 2},
	}}
	svc := NewInsightService(bridge, marks, "Hun Yar", nil, nil)

	analysis, err := svc.AnalyzeMarks(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "Report", analysis.AnalysisTitle)
	assert.Equal(t, "Hun Yar", bridge.lastReq.StudentName)
	assert.InDelta(t, 75, bridge.lastReq.OverallAverage, 0.0001)
	assert.Equal(t, "B", bridge.lastReq.OverallGrade)
	require.Len(t, bridge.lastReq.SubjectPerformances, 1)
}

func TestInsightServiceAnalyzeMarksRequiresData(t *testing.T) {
	svc := NewInsightService(newFakeBridge(), &fakeSummaries{}, "", nil, nil)

	_, err := svc.AnalyzeMarks(context.Background())
	assert.Equal(t, appErrors.ErrValidation.Code, errorCode(t, err))
}

func TestInsightServiceWithoutBridge(t *testing.T) {
	svc := NewInsightService(nil, &fakeSummaries{}, "", nil, nil)
	ctx := context.Background()

	_, err := svc.StudySuggestions(ctx, ai.StudySuggestionsRequest{Subjects: "Math", ExamTopics: "Algebra"})
	assert.Equal(t, appErrors.ErrAIUnavailable.Code, errorCode(t, err))
	_, err = svc.AnalyzeMarks(ctx)
	assert.Equal(t, appErrors.ErrAIUnavailable.Code, errorCode(t, err))
	_, err = svc.Conceptor(ctx, ai.ConceptorRequest{Question: "why"})
	assert.Equal(t, appErrors.ErrAIUnavailable.Code, errorCode(t, err))
}
