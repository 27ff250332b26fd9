package openrouter

import (
	"context"
	"fmt"
	"strings"

	"github.com/openai/openai-go"
	"github.com/openai/openai-go/option"
	"github.com/openai/openai-go/shared"
)

const (
	defaultBaseURL = "https://openrouter.ai/api/v1"

	// DefaultModel is the completion model used when config does not
	// override it.
	DefaultModel = "google/gemini-2.0-flash-lite-preview-02-05:free"
)

// Options are the static, deployment-level knobs for the client. The Referer
// and Title headers are descriptive metadata OpenRouter attributes requests
// with; they are never user-controlled.
type Options struct {
	BaseURL     string
	Model       string
	Referer     string
	Title       string
	Temperature float64
	TopP        float64
}

// Client talks to the OpenRouter chat-completions endpoint.
type Client struct {
	api         openai.Client
	model       string
	temperature float64
	topP        float64
}

func NewClient(apiKey string, opts Options) *Client {
	baseURL := opts.BaseURL
	if baseURL == "" {
		baseURL = defaultBaseURL
	}
	model := opts.Model
	if model == "" {
		model = DefaultModel
	}

	reqOpts := []option.RequestOption{
		option.WithBaseURL(baseURL),
		option.WithAPIKey(apiKey),
		// Exactly one remote call per roast; the SDK's default retry
		// policy would silently add more.
		option.WithMaxRetries(0),
	}
	if opts.Referer != "" {
		reqOpts = append(reqOpts, option.WithHeader("HTTP-Referer", opts.Referer))
	}
	if opts.Title != "" {
		reqOpts = append(reqOpts, option.WithHeader("X-Title", opts.Title))
	}

	return &Client{
		api:         openai.NewClient(reqOpts...),
		model:       model,
		temperature: opts.Temperature,
		topP:        opts.TopP,
	}
}

// Complete sends one two-message exchange (system + user) and returns the
// first choice's content, whitespace-trimmed. One remote call, no retry; the
// only timeout is whatever ctx carries.
func (c *Client) Complete(ctx context.Context, systemPrompt, userText string) (string, error) {
	params := openai.ChatCompletionNewParams{
		Model: shared.ChatModel(c.model),
		Messages: []openai.ChatCompletionMessageParamUnion{
			openai.SystemMessage(systemPrompt),
			openai.UserMessage(userText),
		},
	}
	if c.temperature > 0 {
		params.Temperature = openai.Float(c.temperature)
	}
	if c.topP > 0 {
		params.TopP = openai.Float(c.topP)
	}

	resp, err := c.api.Chat.Completions.New(ctx, params)
	if err != nil {
		return "", fmt.Errorf("chat completion: %w", err)
	}

	if resp == nil || len(resp.Choices) == 0 {
		return "", fmt.Errorf("chat completion: empty response")
	}

	return strings.TrimSpace(resp.Choices[0].Message.Content), nil
}
