package service

import (
	"context"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/hunyar/focusflow-api/internal/aggregate"
	"github.com/hunyar/focusflow-api/internal/models"
	appErrors "github.com/hunyar/focusflow-api/pkg/errors"
)

const markSummaryCacheKey = "summaries:marks"

type markRepository interface {
	List(ctx context.Context) []models.Mark
	Upsert(ctx context.Context, mark models.Mark) error
	Remove(ctx context.Context, id string) error
	Dirty() bool
}

// CreateMarkRequest captures fields for recording a test result.
type CreateMarkRequest struct {
	Subject    string    `json:"subject" validate:"required"`
	TestName   string    `json:"testName" validate:"required"`
	Score      float64   `json:"score"`
	TotalMarks float64   `json:"totalMarks"`
	Date       time.Time `json:"date"`
}

// MarkSummaries bundles the derived aggregates for the marks view.
type MarkSummaries struct {
	Subjects []aggregate.SubjectSummary `json:"subjects"`
	Overall  aggregate.OverallSummary   `json:"overall"`
}

// MarkService handles the marks workflows and their derived summaries.
type MarkService struct {
	repo      markRepository
	cache     *CacheService
	cacheTTL  time.Duration
	validator *validator.Validate
	logger    *zap.Logger
	now       func() time.Time
}

// NewMarkService creates a new mark service.
func NewMarkService(repo markRepository, cache *CacheService, cacheTTL time.Duration, validate *validator.Validate, logger *zap.Logger) *MarkService {
	if validate == nil {
		validate = validator.New()
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &MarkService{repo: repo, cache: cache, cacheTTL: cacheTTL, validator: validate, logger: logger, now: time.Now}
}

// List returns all marks sorted by date descending.
func (s *MarkService) List(ctx context.Context) []models.Mark {
	return s.repo.List(ctx)
}

// Create validates and records a new mark. Marks are never edited afterwards,
// only deleted.
func (s *MarkService) Create(ctx context.Context, req CreateMarkRequest) (*models.Mark, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "invalid mark payload")
	}

	subject := strings.TrimSpace(req.Subject)
	testName := strings.TrimSpace(req.TestName)
	if subject == "" || testName == "" {
		return nil, appErrors.Clone(appErrors.ErrValidation, "subject and test name cannot be empty")
	}
	if req.TotalMarks <= 0 {
		return nil, appErrors.Clone(appErrors.ErrValidation, "total marks must be greater than zero")
	}
	if req.Score < 0 || req.Score > req.TotalMarks {
		return nil, appErrors.Clone(appErrors.ErrValidation, "score must be between 0 and total marks")
	}

	date := req.Date
	if date.IsZero() {
		date = s.now()
	}

	mark := models.Mark{
		ID:         uuid.NewString(),
		Subject:    subject,
		TestName:   testName,
		Score:      req.Score,
		TotalMarks: req.TotalMarks,
		Date:       date,
	}
	err := s.repo.Upsert(ctx, mark)
	s.invalidateSummaries(ctx)
	if err != nil {
		return &mark, unsynced(err)
	}
	return &mark, nil
}

// Delete removes a mark by id. Removing an unknown id is a no-op.
func (s *MarkService) Delete(ctx context.Context, id string) error {
	err := s.repo.Remove(ctx, id)
	s.invalidateSummaries(ctx)
	if err != nil {
		return unsynced(err)
	}
	return nil
}

// Summaries computes the per-subject and overall aggregates, served from
// cache when available.
func (s *MarkService) Summaries(ctx context.Context) (*MarkSummaries, bool, error) {
	var cached MarkSummaries
	if hit, err := s.cache.Get(ctx, markSummaryCacheKey, &cached); err == nil && hit {
		return &cached, true, nil
	}

	marks := s.repo.List(ctx)
	summaries := &MarkSummaries{
		Subjects: aggregate.SummarizeBySubject(marks),
		Overall:  aggregate.SummarizeOverall(marks),
	}
	if err := s.cache.Set(ctx, markSummaryCacheKey, summaries, s.cacheTTL); err != nil {
		s.logger.Warn("store mark summaries in cache failed", zap.Error(err))
	}
	return summaries, false, nil
}

// Unsynced reports whether the last write to the marks namespace failed.
func (s *MarkService) Unsynced() bool {
	return s.repo.Dirty()
}

func (s *MarkService) invalidateSummaries(ctx context.Context) {
	if err := s.cache.Invalidate(ctx, "summaries:*"); err != nil {
		s.logger.Warn("invalidate mark summaries failed", zap.Error(err))
	}
}
