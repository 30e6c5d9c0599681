package service

import (
	"context"
	"fmt"
	"strconv"

	"go.uber.org/zap"

	appErrors "github.com/hunyar/focusflow-api/pkg/errors"
	"github.com/hunyar/focusflow-api/pkg/export"
)

// Report formats.
const (
	ReportFormatCSV = "csv"
	ReportFormatPDF = "pdf"
)

// Report is a rendered marks report ready to stream to the client.
type Report struct {
	Filename    string
	ContentType string
	Content     []byte
}

// ReportService renders the subject summary table as a downloadable report.
type ReportService struct {
	marks  summaryProvider
	csv    *export.CSVExporter
	pdf    *export.PDFExporter
	logger *zap.Logger
}

// NewReportService creates a new report service.
func NewReportService(marks summaryProvider, logger *zap.Logger) *ReportService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &ReportService{
		marks:  marks,
		csv:    export.NewCSVExporter(),
		pdf:    export.NewPDFExporter(),
		logger: logger,
	}
}

// MarksReport renders the per-subject summaries plus an overall row in the
// requested format.
func (s *ReportService) MarksReport(ctx context.Context, format string) (*Report, error) {
	summaries, _, err := s.marks.Summaries(ctx)
	if err != nil {
		return nil, err
	}

	dataset := export.Dataset{
		Headers: []string{"Subject", "Tests", "Scored", "Possible", "Average %", "Grade"},
	}
	for _, summary := range summaries.Subjects {
		dataset.Rows = append(dataset.Rows, map[string]string{
			"Subject":   summary.Subject,
			"Tests":     strconv.Itoa(summary.TestCount),
			"Scored":    formatPoints(summary.TotalScored),
			"Possible":  formatPoints(summary.TotalPossible),
			"Average %": fmt.Sprintf("%.2f", summary.AveragePercentage),
			"Grade":     summary.Grade,
		})
	}
	dataset.Rows = append(dataset.Rows, map[string]string{
		"Subject":   "Overall",
		"Tests":     strconv.Itoa(summaries.Overall.TestCount),
		"Scored":    formatPoints(summaries.Overall.TotalScored),
		"Possible":  formatPoints(summaries.Overall.TotalPossible),
		"Average %": fmt.Sprintf("%.2f", summaries.Overall.AveragePercentage),
		"Grade":     summaries.Overall.Grade,
	})

	switch format {
	case ReportFormatCSV:
		content, err := s.csv.Render(dataset)
		if err != nil {
			return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to render CSV report")
		}
		return &Report{Filename: "marks-report.csv", ContentType: "text/csv", Content: content}, nil
	case ReportFormatPDF:
		content, err := s.pdf.Render(dataset, "Marks Report")
		if err != nil {
			return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to render PDF report")
		}
		return &Report{Filename: "marks-report.pdf", ContentType: "application/pdf", Content: content}, nil
	default:
		return nil, appErrors.Clone(appErrors.ErrValidation, "format must be csv or pdf")
	}
}

func formatPoints(value float64) string {
	return strconv.FormatFloat(value, 'f', -1, 64)
}
