package textextractor

import (
	"billmind/internal/core/domain/logging"
	"billmind/internal/core/domain/reminder"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func completionResponse(content string) string {
	response := map[string]interface{}{
		"choices": []map[string]interface{}{
			{"message": map[string]interface{}{"content": content}},
		},
	}
	encoded, _ := json.Marshal(response)
	return string(encoded)
}

func newExtractor(t *testing.T, server *httptest.Server) *OpenRouterExtractor {
	t.Helper()
	baseURL, err := url.Parse(server.URL)
	require.NoError(t, err)
	return NewOpenRouterExtractor(
		logging.NewFakeLogger(),
		*baseURL,
		"test-api-key",
		"openai/gpt-3.5-turbo",
		time.Second,
	)
}

func TestExtractReminderReturnsCandidate(t *testing.T) {
	cases := []struct {
		id      string
		content string
	}{
		{
			id:      "raw-json",
			content: `{"task": "pay electricity bill", "date": "2025-08-15", "time": "18:00"}`,
		},
		{
			id:      "fenced-json",
			content: "```json\n{\"task\": \"pay electricity bill\", \"date\": \"2025-08-15\", \"time\": \"18:00\"}\n```",
		},
		{
			id:      "fenced-without-language",
			content: "```\n{\"task\": \"pay electricity bill\", \"date\": \"2025-08-15\", \"time\": \"18:00\"}\n```",
		},
		{
			id:      "repairable-json",
			content: `{"task": "pay electricity bill", "date": "2025-08-15", "time": "18:00",}`,
		},
	}
	for _, testcase := range cases {
		t.Run(testcase.id, func(t *testing.T) {
			server := httptest.NewServer(http.HandlerFunc(func(rw http.ResponseWriter, r *http.Request) {
				assert.Equal(t, http.MethodPost, r.Method)
				assert.Equal(t, "/chat/completions", r.URL.Path)
				assert.Equal(t, "Bearer test-api-key", r.Header.Get("Authorization"))

				request := map[string]interface{}{}
				require.NoError(t, json.NewDecoder(r.Body).Decode(&request))
				assert.Equal(t, "openai/gpt-3.5-turbo", request["model"])
				assert.Equal(t, 0.2, request["temperature"])

				rw.Header().Set("Content-Type", "application/json")
				rw.Write([]byte(completionResponse(testcase.content)))
			}))
			defer server.Close()

			candidate, err := newExtractor(t, server).ExtractReminder(
				context.Background(),
				"Remind me to pay electricity bill by 15th August at 6 PM",
			)

			require.NoError(t, err)
			assert.Equal(t, reminder.ExtractionCandidate{
				Task: "pay electricity bill",
				Date: "2025-08-15",
				Time: "18:00",
			}, candidate)
		})
	}
}

func TestExtractReminderFailures(t *testing.T) {
	cases := []struct {
		id      string
		status  int
		body    string
		content string
	}{
		{id: "provider-error-status", status: http.StatusTooManyRequests, body: `{"error": "quota"}`},
		{id: "empty-choices", status: http.StatusOK, body: `{"choices": []}`},
		{id: "not-json-content", status: http.StatusOK, content: "I could not parse that sentence."},
		{id: "missing-task-key", status: http.StatusOK, content: `{"date": "2025-08-15", "time": "18:00"}`},
		{id: "missing-date-key", status: http.StatusOK, content: `{"task": "pay bill", "time": "18:00"}`},
		{id: "missing-time-key", status: http.StatusOK, content: `{"task": "pay bill", "date": "2025-08-15"}`},
	}
	for _, testcase := range cases {
		t.Run(testcase.id, func(t *testing.T) {
			server := httptest.NewServer(http.HandlerFunc(func(rw http.ResponseWriter, r *http.Request) {
				rw.Header().Set("Content-Type", "application/json")
				rw.WriteHeader(testcase.status)
				if testcase.body != "" {
					rw.Write([]byte(testcase.body))
					return
				}
				rw.Write([]byte(completionResponse(testcase.content)))
			}))
			defer server.Close()

			_, err := newExtractor(t, server).ExtractReminder(context.Background(), "pay bill")

			require.ErrorIs(t, err, reminder.ErrTextExtraction)
		})
	}
}

func TestExtractReminderProviderUnreachable(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(rw http.ResponseWriter, r *http.Request) {}))
	server.Close()

	_, err := newExtractor(t, server).ExtractReminder(context.Background(), "pay bill")

	require.ErrorIs(t, err, reminder.ErrTextExtraction)
}
