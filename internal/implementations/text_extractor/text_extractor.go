package textextractor

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	e "billmind/internal/core/domain/errors"
	"billmind/internal/core/domain/logging"
	"billmind/internal/core/domain/reminder"

	"github.com/kaptinlin/jsonrepair"
)

const promptTemplate = `You are a reminder assistant. Extract the following fields from the sentence:
"%s"

Return ONLY raw JSON in this format:
{
  "task": "string",
  "date": "YYYY-MM-DD",
  "time": "HH:MM"
}`

// Low temperature keeps the provider's output close to deterministic.
const temperature = 0.2

type chatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type chatCompletionRequest struct {
	Model       string        `json:"model"`
	Messages    []chatMessage `json:"messages"`
	Temperature float64       `json:"temperature"`
}

type chatCompletionResponse struct {
	Choices []struct {
		Message struct {
			Content string `json:"content"`
		} `json:"message"`
	} `json:"choices"`
}

// OpenRouterExtractor asks an OpenRouter-hosted chat completion model to turn
// free text into an extraction candidate. Every expected failure mode comes
// back as an error wrapping reminder.ErrTextExtraction, so callers only ever
// see the two-outcome contract.
type OpenRouterExtractor struct {
	log        logging.Logger
	httpClient http.Client
	baseURL    url.URL
	apiKey     string
	model      string
}

func NewOpenRouterExtractor(
	log logging.Logger,
	baseURL url.URL,
	apiKey string,
	model string,
	timeout time.Duration,
) *OpenRouterExtractor {
	if log == nil {
		panic(e.NewNilArgumentError("log"))
	}
	return &OpenRouterExtractor{
		log:        log,
		httpClient: http.Client{Timeout: timeout},
		baseURL:    baseURL,
		apiKey:     apiKey,
		model:      model,
	}
}

func (c *OpenRouterExtractor) ExtractReminder(
	ctx context.Context,
	rawText string,
) (candidate reminder.ExtractionCandidate, err error) {
	content, err := c.complete(ctx, fmt.Sprintf(promptTemplate, rawText))
	if err != nil {
		return candidate, err
	}

	candidate, err = decodeCandidate(content)
	if err != nil {
		c.log.Warning(
			ctx,
			"Extraction provider returned unusable content.",
			logging.Entry("content", content),
			logging.Entry("err", err),
		)
		return candidate, err
	}
	return candidate, nil
}

func (c *OpenRouterExtractor) complete(ctx context.Context, prompt string) (string, error) {
	var body bytes.Buffer
	encoder := json.NewEncoder(&body)
	err := encoder.Encode(chatCompletionRequest{
		Model:       c.model,
		Messages:    []chatMessage{{Role: "user", Content: prompt}},
		Temperature: temperature,
	})
	if err != nil {
		return "", fmt.Errorf("encode completion request: %w", reminder.ErrTextExtraction)
	}

	endpoint := c.baseURL.JoinPath("chat", "completions")
	request, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint.String(), &body)
	if err != nil {
		return "", fmt.Errorf("build completion request: %w", reminder.ErrTextExtraction)
	}
	request.Header.Set("Content-Type", "application/json")
	request.Header.Set("Authorization", "Bearer "+c.apiKey)

	response, err := c.httpClient.Do(request)
	if err != nil {
		logging.Error(ctx, c.log, err)
		return "", fmt.Errorf("completion request failed: %w", reminder.ErrTextExtraction)
	}
	defer response.Body.Close()

	if response.StatusCode != http.StatusOK {
		responseBody, _ := io.ReadAll(response.Body)
		c.log.Warning(
			ctx,
			"Extraction provider returned unsuccessful status.",
			logging.Entry("status", response.StatusCode),
			logging.Entry("body", string(responseBody)),
		)
		return "", fmt.Errorf("completion status %d: %w", response.StatusCode, reminder.ErrTextExtraction)
	}

	completion := chatCompletionResponse{}
	decoder := json.NewDecoder(response.Body)
	if err := decoder.Decode(&completion); err != nil {
		return "", fmt.Errorf("decode completion response: %w", reminder.ErrTextExtraction)
	}
	if len(completion.Choices) == 0 {
		return "", fmt.Errorf("completion response has no choices: %w", reminder.ErrTextExtraction)
	}
	return completion.Choices[0].Message.Content, nil
}

func decodeCandidate(content string) (candidate reminder.ExtractionCandidate, err error) {
	content = stripCodeFence(strings.TrimSpace(content))

	if err := json.Unmarshal([]byte(content), &candidate); err != nil {
		repaired, repairErr := jsonrepair.JSONRepair(content)
		if repairErr != nil {
			return candidate, fmt.Errorf("content is not valid JSON: %w", reminder.ErrTextExtraction)
		}
		if err := json.Unmarshal([]byte(repaired), &candidate); err != nil {
			return candidate, fmt.Errorf("content is not valid JSON: %w", reminder.ErrTextExtraction)
		}
	}

	if candidate.Task == "" || candidate.Date == "" || candidate.Time == "" {
		return candidate, fmt.Errorf("required field missing in content: %w", reminder.ErrTextExtraction)
	}
	return candidate, nil
}

// stripCodeFence removes a fenced code block wrapper (```json ... ```) the
// model sometimes adds despite being asked for raw JSON.
func stripCodeFence(content string) string {
	if !strings.HasPrefix(content, "```") {
		return content
	}
	content = strings.TrimPrefix(content, "```json")
	content = strings.TrimPrefix(content, "```")
	content = strings.TrimSuffix(strings.TrimSpace(content), "```")
	return strings.TrimSpace(content)
}
