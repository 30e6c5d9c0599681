// Package ai wraps the hosted language model behind the three insight
// operations the dashboard offers. The provider is a black box speaking the
// OpenAI chat-completions wire format; all real computation happens there.
//
// Every call is fire-and-forget from the caller's perspective: one request,
// one resolution. No retries, no streaming, no locally synthesised fallback.
package ai

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"

	"go.uber.org/zap"

	"github.com/hunyar/focusflow-api/internal/aggregate"
	"github.com/hunyar/focusflow-api/pkg/config"
	appErrors "github.com/hunyar/focusflow-api/pkg/errors"
)

// StudySuggestionsRequest asks for a study plan over free-text subjects and
// exam topics.
type StudySuggestionsRequest struct {
	Subjects   string `json:"subjects" validate:"required"`
	ExamTopics string `json:"examTopics" validate:"required"`
}

// StudySuggestionsResponse carries the generated plan as markdown.
type StudySuggestionsResponse struct {
	StudySuggestions string `json:"studySuggestions"`
}

// MarkAnalysisRequest snapshots the aggregation output for the advisor
// prompt.
type MarkAnalysisRequest struct {
	StudentName         string                     `json:"studentName,omitempty"`
	SubjectPerformances []aggregate.SubjectSummary `json:"subjectPerformances"`
	OverallAverage      float64                    `json:"overallAverage"`
	OverallGrade        string                     `json:"overallGrade"`
}

// SubjectSuggestion is one actionable tip for a single subject.
type SubjectSuggestion struct {
	SubjectName string `json:"subjectName"`
	Suggestion  string `json:"suggestion"`
}

// MarkAnalysisResponse is the structured advisor report.
type MarkAnalysisResponse struct {
	AnalysisTitle              string              `json:"analysisTitle"`
	OverallFeedback            string              `json:"overallFeedback"`
	SubjectSpecificSuggestions []SubjectSuggestion `json:"subjectSpecificSuggestions"`
	Encouragement              string              `json:"encouragement"`
}

// ConceptorRequest is a free-form question.
type ConceptorRequest struct {
	Question string `json:"question" validate:"required"`
}

// ConceptorResponse carries the markdown answer.
type ConceptorResponse struct {
	Answer string `json:"answer"`
}

type chatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type chatRequest struct {
	Model          string          `json:"model"`
	Messages       []chatMessage   `json:"messages"`
	ResponseFormat *responseFormat `json:"response_format,omitempty"`
}

type responseFormat struct {
	Type string `json:"type"`
}

type chatResponse struct {
	Choices []struct {
		Message chatMessage `json:"message"`
	} `json:"choices"`
}

// Client talks to the configured completion endpoint.
type Client struct {
	httpClient *http.Client
	baseURL    string
	apiKey     string
	model      string
	logger     *zap.Logger
}

// NewClient builds a client from config. The configured timeout is the only
// deadline applied; the application adds none of its own.
func NewClient(cfg config.AIConfig, logger *zap.Logger) *Client {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Client{
		httpClient: &http.Client{Timeout: cfg.Timeout},
		baseURL:    strings.TrimRight(cfg.BaseURL, "/"),
		apiKey:     cfg.APIKey,
		model:      cfg.Model,
		logger:     logger,
	}
}

// StudySuggestions generates a markdown study plan.
func (c *Client) StudySuggestions(ctx context.Context, req StudySuggestionsRequest) (*StudySuggestionsResponse, error) {
	prompt := fmt.Sprintf(
		"You are an expert study advisor. The student is taking these subjects: %s.\n"+
			"Upcoming exam topics: %s.\n\n"+
			"Provide personalized, practical study suggestions as markdown: a suggested "+
			"schedule, techniques per topic, and resources worth using.",
		req.Subjects, req.ExamTopics)

	content, err := c.complete(ctx, prompt, false)
	if err != nil {
		return nil, err
	}
	return &StudySuggestionsResponse{StudySuggestions: content}, nil
}

// MarkAnalysis generates the structured advisor report from aggregated mark
// summaries. The model is asked for a strict JSON object and the reply is
// validated on decode.
func (c *Client) MarkAnalysis(ctx context.Context, req MarkAnalysisRequest) (*MarkAnalysisResponse, error) {
	var sb strings.Builder
	name := req.StudentName
	if name == "" {
		name = "the student"
	}
	fmt.Fprintf(&sb, "You are an expert, friendly academic advisor. Provide constructive feedback and actionable study suggestions for %s.\n\n", name)
	fmt.Fprintf(&sb, "Overall average: %.2f%%\nOverall grade: %s\n\nSubject breakdown:\n", req.OverallAverage, req.OverallGrade)
	if len(req.SubjectPerformances) == 0 {
		sb.WriteString("- no subject data recorded\n")
	}
	for _, p := range req.SubjectPerformances {
		fmt.Fprintf(&sb, "- %s: average %.2f%%, grade %s, %d tests\n", p.Subject, p.AveragePercentage, p.Grade, p.TestCount)
	}
	sb.WriteString("\nRespond with a JSON object holding exactly these keys:\n" +
		`{"analysisTitle": "encouraging report title", ` +
		`"overallFeedback": "2-3 sentences of balanced feedback", ` +
		`"subjectSpecificSuggestions": [{"subjectName": "...", "suggestion": "2-3 sentences"}], ` +
		`"encouragement": "1-2 motivational sentences"}` + "\n" +
		"Prioritize suggestions for subjects graded C or below or averaging under 70%. " +
		"Cover 2-3 subjects; if all are strong, reinforce good habits for 1-2 of them.")

	content, err := c.complete(ctx, sb.String(), true)
	if err != nil {
		return nil, err
	}

	var analysis MarkAnalysisResponse
	if err := json.Unmarshal([]byte(content), &analysis); err != nil {
		c.logger.Warn("mark analysis reply was not valid JSON", zap.Error(err))
		return nil, appErrors.Clone(appErrors.ErrAIUnavailable, "could not read the analysis, please try again")
	}
	if analysis.AnalysisTitle == "" && analysis.OverallFeedback == "" {
		return nil, appErrors.Clone(appErrors.ErrAIUnavailable, "received an empty analysis, please try again")
	}
	return &analysis, nil
}

// Conceptor answers a free-form question in markdown.
func (c *Client) Conceptor(ctx context.Context, req ConceptorRequest) (*ConceptorResponse, error) {
	prompt := fmt.Sprintf(
		"You are Conceptor, a helpful AI that explains concepts clearly for students. "+
			"Answer the following question in markdown, concise but complete:\n\n%s",
		req.Question)

	content, err := c.complete(ctx, prompt, false)
	if err != nil {
		return nil, err
	}
	return &ConceptorResponse{Answer: content}, nil
}

func (c *Client) complete(ctx context.Context, prompt string, jsonOutput bool) (string, error) {
	body := chatRequest{
		Model:    c.model,
		Messages: []chatMessage{{Role: "user", Content: prompt}},
	}
	if jsonOutput {
		body.ResponseFormat = &responseFormat{Type: "json_object"}
	}

	payload, err := json.Marshal(body)
	if err != nil {
		return "", appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "encode completion request")
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/chat/completions", bytes.NewReader(payload))
	if err != nil {
		return "", appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "build completion request")
	}
	httpReq.Header.Set("Content-Type", "application/json")
	if c.apiKey != "" {
		httpReq.Header.Set("Authorization", "Bearer "+c.apiKey)
	}

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		c.logger.Warn("completion request failed", zap.Error(err))
		return "", appErrors.Wrap(err, appErrors.ErrAIUnavailable.Code, appErrors.ErrAIUnavailable.Status, appErrors.ErrAIUnavailable.Message)
	}
	defer resp.Body.Close() //nolint:errcheck

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", appErrors.Wrap(err, appErrors.ErrAIUnavailable.Code, appErrors.ErrAIUnavailable.Status, appErrors.ErrAIUnavailable.Message)
	}
	if resp.StatusCode != http.StatusOK {
		c.logger.Warn("completion request rejected",
			zap.Int("status", resp.StatusCode), zap.ByteString("body", truncate(raw, 512)))
		return "", appErrors.Clone(appErrors.ErrAIUnavailable, "")
	}

	var parsed chatResponse
	if err := json.Unmarshal(raw, &parsed); err != nil {
		return "", appErrors.Wrap(err, appErrors.ErrAIUnavailable.Code, appErrors.ErrAIUnavailable.Status, appErrors.ErrAIUnavailable.Message)
	}
	if len(parsed.Choices) == 0 || parsed.Choices[0].Message.Content == "" {
		return "", appErrors.Clone(appErrors.ErrAIUnavailable, "received an empty response, please try again")
	}
	return parsed.Choices[0].Message.Content, nil
}

func truncate(b []byte, max int) []byte {
	if len(b) <= max {
		return b
	}
	return b[:max]
}
