package service

import (
	"context"
	"math/rand"
	"net/url"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/hunyar/focusflow-api/internal/models"
	appErrors "github.com/hunyar/focusflow-api/pkg/errors"
)

type subjectRepository interface {
	List(ctx context.Context) []models.Subject
	FindByID(ctx context.Context, id string) *models.Subject
	Upsert(ctx context.Context, subject models.Subject) error
	Remove(ctx context.Context, id string) error
	Dirty() bool
}

// CreateSubjectRequest captures fields for adding a subject.
type CreateSubjectRequest struct {
	Name        string `json:"name" validate:"required"`
	Teacher     string `json:"teacher"`
	ResourceURL string `json:"resourceUrl"`
}

// SubjectService handles the subject roster workflows.
type SubjectService struct {
	repo      subjectRepository
	validator *validator.Validate
	logger    *zap.Logger
	pickColor func() string
}

// NewSubjectService creates a new subject service.
func NewSubjectService(repo subjectRepository, validate *validator.Validate, logger *zap.Logger) *SubjectService {
	if validate == nil {
		validate = validator.New()
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &SubjectService{
		repo:      repo,
		validator: validate,
		logger:    logger,
		pickColor: func() string {
			return models.SubjectColors[rand.Intn(len(models.SubjectColors))]
		},
	}
}

// List returns all subjects in insertion order.
func (s *SubjectService) List(ctx context.Context) []models.Subject {
	return s.repo.List(ctx)
}

// Get returns a subject by id.
func (s *SubjectService) Get(ctx context.Context, id string) (*models.Subject, error) {
	subject := s.repo.FindByID(ctx, id)
	if subject == nil {
		return nil, appErrors.Clone(appErrors.ErrNotFound, "subject not found")
	}
	return subject, nil
}

// Create validates and stores a new subject, drawing its color at random
// from the fixed palette.
func (s *SubjectService) Create(ctx context.Context, req CreateSubjectRequest) (*models.Subject, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "invalid subject payload")
	}

	name := strings.TrimSpace(req.Name)
	if name == "" {
		return nil, appErrors.Clone(appErrors.ErrValidation, "subject name cannot be empty")
	}

	resourceURL := strings.TrimSpace(req.ResourceURL)
	if resourceURL != "" {
		if _, err := url.ParseRequestURI(resourceURL); err != nil {
			return nil, appErrors.Clone(appErrors.ErrValidation, "resource URL is not a valid URL")
		}
	}

	subject := models.Subject{
		ID:          uuid.NewString(),
		Name:        name,
		Teacher:     strings.TrimSpace(req.Teacher),
		ResourceURL: resourceURL,
		Color:       s.pickColor(),
	}
	if err := s.repo.Upsert(ctx, subject); err != nil {
		return &subject, unsynced(err)
	}
	return &subject, nil
}

// Delete removes a subject by id. Timetable entries referencing the subject
// are deliberately left in place; they resolve as unknown on the next read.
func (s *SubjectService) Delete(ctx context.Context, id string) error {
	if err := s.repo.Remove(ctx, id); err != nil {
		return unsynced(err)
	}
	return nil
}

// Unsynced reports whether the last write to the subjects namespace failed.
func (s *SubjectService) Unsynced() bool {
	return s.repo.Dirty()
}
