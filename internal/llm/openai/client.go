package openai

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"regexp"
	"strings"
	"time"

	openai "github.com/sashabaranov/go-openai"

	"restaurant-backend/internal/llm"
)

// Client implements llm.Client using an OpenAI-compatible chat completions
// endpoint.
type Client struct {
	api   *openai.Client
	model string
}

// NewClient constructs an OpenAI ranking client. baseURL may be empty for
// the default endpoint, or point at any compatible provider.
func NewClient(apiKey, model, baseURL string) (*Client, error) {
	if strings.TrimSpace(apiKey) == "" {
		return nil, fmt.Errorf("OPENAI_API_KEY is required")
	}
	if strings.TrimSpace(model) == "" {
		return nil, fmt.Errorf("LLM_MODEL is required")
	}
	cfg := openai.DefaultConfig(apiKey)
	if strings.TrimSpace(baseURL) != "" {
		cfg.BaseURL = baseURL
	}
	cfg.HTTPClient = &http.Client{Timeout: 60 * time.Second}
	return &Client{
		api:   openai.NewClientWithConfig(cfg),
		model: model,
	}, nil
}

// RankVenues sends the ranking prompt and returns the model reply reduced to
// its JSON payload. Transport errors, empty replies, and replies with no
// JSON array in them are all returned as errors; the caller decides how to
// degrade.
func (c *Client) RankVenues(ctx context.Context, input llm.RankInput) (json.RawMessage, error) {
	prompt := llm.BuildRankPrompt(input)

	resp, err := c.api.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model:       c.model,
		Temperature: 0.7,
		Messages: []openai.ChatCompletionMessage{
			{
				Role:    openai.ChatMessageRoleUser,
				Content: prompt,
			},
		},
	})
	if err != nil {
		return nil, fmt.Errorf("chat completion: %w", err)
	}
	if len(resp.Choices) == 0 {
		return nil, fmt.Errorf("no choices in model response")
	}

	raw := extractJSONArray(resp.Choices[0].Message.Content)
	if raw == "" {
		return nil, fmt.Errorf("no JSON array in model response")
	}
	return json.RawMessage(raw), nil
}

var fenceRe = regexp.MustCompile("(?s)```(?:json)?\\s*(.*?)\\s*```")

// extractJSONArray pulls the JSON array out of a model reply, tolerating
// markdown fences and surrounding prose.
func extractJSONArray(content string) string {
	content = strings.TrimSpace(content)
	if m := fenceRe.FindStringSubmatch(content); m != nil {
		content = strings.TrimSpace(m[1])
	}
	start := strings.Index(content, "[")
	end := strings.LastIndex(content, "]")
	if start == -1 || end == -1 || end < start {
		return ""
	}
	candidate := content[start : end+1]
	if !json.Valid([]byte(candidate)) {
		return ""
	}
	return candidate
}
