package adformat

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"time"

	"github.com/sashabaranov/go-openai"
)

// OpenAIBackend implements Backend on any OpenAI-compatible chat completions
// endpoint (OpenAI, vLLM, LM Studio, DeepInfra).
type OpenAIBackend struct {
	client *openai.Client
	model  string
}

// OpenAIOption configures the OpenAIBackend.
type OpenAIOption func(*openAIOptions)

type openAIOptions struct {
	apiKey string
	client *http.Client
}

// WithOpenAIAPIKey overrides the API key read from OPENAI_API_KEY.
func WithOpenAIAPIKey(key string) OpenAIOption {
	return func(o *openAIOptions) {
		o.apiKey = key
	}
}

// WithOpenAIHTTPClient overrides the default HTTP client.
func WithOpenAIHTTPClient(c *http.Client) OpenAIOption {
	return func(o *openAIOptions) {
		o.client = c
	}
}

// NewOpenAIBackend creates a backend for baseURL (for example
// "https://api.openai.com/v1") and model.
func NewOpenAIBackend(baseURL, model string, opts ...OpenAIOption) *OpenAIBackend {
	o := &openAIOptions{
		apiKey: os.Getenv("OPENAI_API_KEY"),
		client: &http.Client{Timeout: 60 * time.Second},
	}
	for _, opt := range opts {
		opt(o)
	}

	cfg := openai.DefaultConfig(o.apiKey)
	if baseURL != "" {
		cfg.BaseURL = baseURL
	}
	cfg.HTTPClient = o.client

	return &OpenAIBackend{
		client: openai.NewClientWithConfig(cfg),
		model:  model,
	}
}

// Name returns the backend name.
func (*OpenAIBackend) Name() string {
	return "openai"
}

// Generate sends one chat completion request.
func (b *OpenAIBackend) Generate(
	ctx context.Context,
	req GenerateRequest,
) (GenerateResponse, error) {
	messages := []openai.ChatCompletionMessage{
		{Role: openai.ChatMessageRoleUser, Content: req.Prompt},
	}
	if req.SystemMsg != "" {
		messages = append([]openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleSystem, Content: req.SystemMsg},
		}, messages...)
	}

	resp, err := b.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model:       b.model,
		Messages:    messages,
		MaxTokens:   req.MaxTokens,
		Temperature: float32(req.Temperature),
	})
	if err != nil {
		return GenerateResponse{}, fmt.Errorf("calling openai-compatible API: %w", err)
	}

	if len(resp.Choices) == 0 {
		return GenerateResponse{}, fmt.Errorf("openai: %w", ErrEmptyResponse)
	}

	return GenerateResponse{
		Content: resp.Choices[0].Message.Content,
		Model:   resp.Model,
		Usage: TokenUsage{
			PromptTokens:     resp.Usage.PromptTokens,
			CompletionTokens: resp.Usage.CompletionTokens,
			TotalTokens:      resp.Usage.TotalTokens,
		},
		Truncated: resp.Choices[0].FinishReason == openai.FinishReasonLength,
	}, nil
}
