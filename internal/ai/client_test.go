package ai

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hunyar/focusflow-api/pkg/config"
	appErrors "github.com/hunyar/focusflow-api/pkg/errors"
)

func chatReply(content string) string {
	payload, _ := json.Marshal(map[string]interface{}{
		"choices": []map[string]interface{}{
			{"message": map[string]string{"role": "assistant", "content": content}},
		},
	})
	return string(payload)
}

func newTestClient(t *testing.T, handler http.HandlerFunc) *Client {
	t.Helper()
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)
	return NewClient(config.AIConfig{
		Enabled: true,
		BaseURL: server.URL,
		APIKey:  "test-key",
		Model:   "test-model",
		Timeout: 5 * time.Second,
	}, nil)
}

func TestClientStudySuggestions(t *testing.T) {
	var got chatRequest
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/chat/completions", r.URL.Path)
		assert.Equal(t, "Bearer test-key", r.Header.Get("Authorization"))
		require.NoError(t, json.NewDecoder(r.Body).Decode(&got))
		w.Write([]byte(chatReply("# Study plan"))) //nolint:errcheck
	})

	resp, err := client.StudySuggestions(context.Background(), StudySuggestionsRequest{
		Subjects:   "Math, Physics",
		ExamTopics: "Algebra",
	})
	require.NoError(t, err)
	assert.Equal(t, "# Study plan", resp.StudySuggestions)

	assert.Equal(t, "test-model", got.Model)
	require.Len(t, got.Messages, 1)
	assert.Contains(t, got.Messages[0].Content, "Math, Physics")
	assert.Nil(t, got.ResponseFormat)
}

func TestClientMarkAnalysis(t *testing.T) {
	var got chatRequest
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		require.NoError(t, json.NewDecoder(r.Body).Decode(&got))
		w.Write([]byte(chatReply(`{"analysisTitle":"Solid Term","overallFeedback":"Keep going","subjectSpecificSuggestions":[{"subjectName":"Math","suggestion":"Practice daily"}],"encouragement":"You can do it"}`))) //nolint:errcheck
	})

	resp, err := client.MarkAnalysis(context.Background(), MarkAnalysisRequest{OverallAverage: 75, OverallGrade: "B"})
	require.NoError(t, err)
	assert.Equal(t, "Solid Term", resp.AnalysisTitle)
	require.Len(t, resp.SubjectSpecificSuggestions, 1)
	assert.Equal(t, "Math", resp.SubjectSpecificSuggestions[0].SubjectName)

	require.NotNil(t, got.ResponseFormat)
	assert.Equal(t, "json_object", got.ResponseFormat.Type)
}

func TestClientMarkAnalysisRejectsMalformedReply(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, _ *http.Request) {
		w.Write([]byte(chatReply("sorry, I cannot produce JSON today"))) //nolint:errcheck
	})

	_, err := client.MarkAnalysis(context.Background(), MarkAnalysisRequest{})
	require.Error(t, err)
	assert.Equal(t, appErrors.ErrAIUnavailable.Code, appErrors.FromError(err).Code)
}

func TestClientConceptor(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, _ *http.Request) {
		w.Write([]byte(chatReply("Because entropy."))) //nolint:errcheck
	})

	resp, err := client.Conceptor(context.Background(), ConceptorRequest{Question: "Why does ice float?"})
	require.NoError(t, err)
	assert.Equal(t, "Because entropy.", resp.Answer)
}

func TestClientProviderErrors(t *testing.T) {
	t.Run("http error status", func(t *testing.T) {
		client := newTestClient(t, func(w http.ResponseWriter, _ *http.Request) {
			http.Error(w, "rate limited", http.StatusTooManyRequests)
		})
		_, err := client.Conceptor(context.Background(), ConceptorRequest{Question: "why"})
		require.Error(t, err)
		assert.Equal(t, appErrors.ErrAIUnavailable.Code, appErrors.FromError(err).Code)
	})

	t.Run("empty choices", func(t *testing.T) {
		client := newTestClient(t, func(w http.ResponseWriter, _ *http.Request) {
			w.Write([]byte(`{"choices":[]}`)) //nolint:errcheck
		})
		_, err := client.Conceptor(context.Background(), ConceptorRequest{Question: "why"})
		require.Error(t, err)
		assert.Equal(t, appErrors.ErrAIUnavailable.Code, appErrors.FromError(err).Code)
	})

	t.Run("unreachable endpoint", func(t *testing.T) {
		client := NewClient(config.AIConfig{
			BaseURL: "http://127.0.0.1:1",
			Model:   "test-model",
			Timeout: time.Second,
		}, nil)
		_, err := client.Conceptor(context.Background(), ConceptorRequest{Question: "why"})
		require.Error(t, err)
		assert.Equal(t, appErrors.ErrAIUnavailable.Code, appErrors.FromError(err).Code)
	})
}
