package service

import (
	"bytes"
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hunyar/focusflow-api/internal/aggregate"
	appErrors "github.com/hunyar/focusflow-api/pkg/errors"
)

func reportSummaries() *fakeSummaries {
	return &fakeSummaries{summaries: MarkSummaries{
		Subjects: []aggregate.SubjectSummary{
			{Subject: "Math", TotalScored: 75, TotalPossible: 100, AveragePercentage: 75, Grade: "B", TestCount: 2},
			{Subject: "Physics", TotalScored: 45, TotalPossible: 50, AveragePercentage: 90, Grade: "A+", TestCount: 1},
		},
		Overall: aggregate.OverallSummary{TotalScored: 120, TotalPossible: 150, AveragePercentage: 80, Grade: "A", TestCount: 3},
	}}
}

func TestReportServiceCSV(t *testing.T) {
	svc := NewReportService(reportSummaries(), nil)

	report, err := svc.MarksReport(context.Background(), ReportFormatCSV)
	require.NoError(t, err)
	assert.Equal(t, "marks-report.csv", report.Filename)
	assert.Equal(t, "text/csv", report.ContentType)

	csv := string(report.Content)
	assert.Contains(t, csv, "Subject,Tests,Scored,Possible,Average %,Grade")
	assert.Contains(t, csv, "Math,2,75,100,75.00,B")
	assert.Contains(t, csv, "Overall,3,120,150,80.00,A")
}

func TestReportServicePDF(t *testing.T) {
	svc := NewReportService(reportSummaries(), nil)

	report, err := svc.MarksReport(context.Background(), ReportFormatPDF)
	require.NoError(t, err)
	assert.Equal(t, "marks-report.pdf", report.Filename)
	assert.Equal(t, "application/pdf", report.ContentType)
	assert.True(t, bytes.HasPrefix(report.Content, []byte("%PDF")))
}

func TestReportServiceUnknownFormat(t *testing.T) {
	svc := NewReportService(reportSummaries(), nil)

	_, err := svc.MarksReport(context.Background(), "xlsx")
	assert.Equal(t, appErrors.ErrValidation.Code, errorCode(t, err))
}
