package adformat

import (
	"context"
	"errors"
	"net/http"
	"os"
	"strings"
	"time"
)

// Messages API defaults. The version header pins the wire format decoded
// below.
const (
	anthropicMessagesURL = "https://api.anthropic.com/v1/messages"
	anthropicModel       = "claude-3-5-haiku-latest"
	anthropicAPIVersion  = "2023-06-01"

	// anthropicCutOff is the stop_reason of a reply that hit max_tokens.
	anthropicCutOff = "max_tokens"
)

// AnthropicBackend formats ads with a Claude model through the Messages API.
// Each call sends the rendered prompt as a single user turn.
type AnthropicBackend struct {
	key    string
	model  string
	url    string
	client *http.Client
}

// AnthropicOption configures the AnthropicBackend.
type AnthropicOption func(*AnthropicBackend)

// WithAnthropicEndpoint points the backend at another Messages API URL, such
// as a proxy or tools/mock-llm.
func WithAnthropicEndpoint(url string) AnthropicOption {
	return func(b *AnthropicBackend) { b.url = url }
}

// WithAnthropicModel selects the model.
func WithAnthropicModel(model string) AnthropicOption {
	return func(b *AnthropicBackend) {
		if model != "" {
			b.model = model
		}
	}
}

// WithAnthropicAPIKey overrides the key read from ANTHROPIC_API_KEY.
func WithAnthropicAPIKey(key string) AnthropicOption {
	return func(b *AnthropicBackend) { b.key = key }
}

// WithAnthropicHTTPClient overrides the default HTTP client.
func WithAnthropicHTTPClient(c *http.Client) AnthropicOption {
	return func(b *AnthropicBackend) { b.client = c }
}

// NewAnthropicBackend returns a backend using ANTHROPIC_API_KEY unless
// WithAnthropicAPIKey says otherwise.
func NewAnthropicBackend(opts ...AnthropicOption) *AnthropicBackend {
	b := &AnthropicBackend{
		key:    os.Getenv("ANTHROPIC_API_KEY"),
		model:  anthropicModel,
		url:    anthropicMessagesURL,
		client: &http.Client{Timeout: 30 * time.Second},
	}
	for _, opt := range opts {
		opt(b)
	}
	return b
}

// Name returns the backend name.
func (*AnthropicBackend) Name() string {
	return "anthropic"
}

type messagesTurn struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type messagesRequest struct {
	Model       string         `json:"model"`
	MaxTokens   int            `json:"max_tokens"`
	System      string         `json:"system,omitempty"`
	Messages    []messagesTurn `json:"messages"`
	Temperature *float64       `json:"temperature,omitempty"`
}

type messagesReply struct {
	Model      string `json:"model"`
	StopReason string `json:"stop_reason"`
	Content    []struct {
		Type string `json:"type"`
		Text string `json:"text"`
	} `json:"content"`
	Usage struct {
		InputTokens  int `json:"input_tokens"`
		OutputTokens int `json:"output_tokens"`
	} `json:"usage"`
}

// adText returns the first non-blank text block. Other block types carry
// nothing ParseResponse can use.
func (r *messagesReply) adText() string {
	for _, c := range r.Content {
		if c.Type == "text" && strings.TrimSpace(c.Text) != "" {
			return c.Text
		}
	}
	return ""
}

// Generate sends one Messages request. A reply stopped by max_tokens is
// returned with Truncated set.
func (b *AnthropicBackend) Generate(ctx context.Context, req GenerateRequest) (GenerateResponse, error) {
	if b.key == "" {
		return GenerateResponse{}, errors.New("anthropic: ANTHROPIC_API_KEY is not set")
	}

	body := messagesRequest{
		Model:     b.model,
		MaxTokens: req.MaxTokens,
		System:    req.SystemMsg,
		Messages:  []messagesTurn{{Role: "user", Content: req.Prompt}},
	}
	if body.MaxTokens <= 0 {
		body.MaxTokens = defaultMaxTokens
	}
	if req.Temperature > 0 {
		body.Temperature = &req.Temperature
	}

	header := http.Header{}
	header.Set("x-api-key", b.key)
	header.Set("anthropic-version", anthropicAPIVersion)

	var reply messagesReply
	if err := postJSON(ctx, b.client, b.Name(), b.url, header, body, &reply); err != nil {
		return GenerateResponse{}, err
	}

	text := reply.adText()
	if text == "" {
		return GenerateResponse{}, ErrEmptyResponse
	}

	in, out := reply.Usage.InputTokens, reply.Usage.OutputTokens
	return GenerateResponse{
		Content:   text,
		Model:     reply.Model,
		Usage:     TokenUsage{PromptTokens: in, CompletionTokens: out, TotalTokens: in + out},
		Truncated: reply.StopReason == anthropicCutOff,
	}, nil
}
