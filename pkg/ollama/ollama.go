package ollama

import (
	"context"
	"fmt"
	"strings"

	"github.com/go-resty/resty/v2"
)

// Client talks to the Ollama HTTP API.
type Client struct {
	http  *resty.Client
	model string
}

// New creates a new Ollama client. No API key is needed.
func New(cfg Config) (*Client, error) {
	if cfg.BaseURL == "" {
		cfg.BaseURL = DefaultBaseURL
	}
	if cfg.Model == "" {
		cfg.Model = DefaultModel
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = DefaultTimeout
	}

	httpClient := resty.New().
		SetBaseURL(strings.TrimRight(cfg.BaseURL, "/")).
		SetTimeout(cfg.Timeout).
		SetHeader("Content-Type", "application/json")

	return &Client{http: httpClient, model: cfg.Model}, nil
}

// Model returns the configured model name.
func (c *Client) Model() string {
	return c.model
}

// Chat sends a non-streaming chat request.
func (c *Client) Chat(ctx context.Context, req *ChatRequest) (*ChatResponse, error) {
	if req.Model == "" {
		req.Model = c.model
	}
	req.Stream = false
	if req.Options == nil {
		req.Options = &Options{}
	}
	if req.Options.NumCtx == 0 {
		req.Options.NumCtx = DefaultNumCtx
	}
	if req.Options.RepeatPenalty == 0 {
		req.Options.RepeatPenalty = DefaultRepeatPenalty
	}

	var result ChatResponse
	var apiErr errorResponse
	resp, err := c.http.R().
		SetContext(ctx).
		SetBody(req).
		SetResult(&result).
		SetError(&apiErr).
		Post("/api/chat")
	if err != nil {
		return nil, fmt.Errorf("ollama: failed to send request: %w", err)
	}
	if resp.IsError() {
		if apiErr.Error != "" {
			return nil, fmt.Errorf("ollama: API error %d: %s", resp.StatusCode(), apiErr.Error)
		}
		return nil, fmt.Errorf("ollama: API error %d: %s", resp.StatusCode(), resp.String())
	}

	return &result, nil
}

// Ping checks /api/tags and that the configured model is present.
func (c *Client) Ping(ctx context.Context) error {
	var tags TagsResponse
	resp, err := c.http.R().SetContext(ctx).SetResult(&tags).Get("/api/tags")
	if err != nil {
		return fmt.Errorf("ollama: daemon unreachable: %w", err)
	}
	if resp.IsError() {
		return fmt.Errorf("ollama: API error %d", resp.StatusCode())
	}
	for _, m := range tags.Models {
		if m.Name == c.model || strings.TrimSuffix(m.Name, ":latest") == c.model {
			return nil
		}
	}
	return fmt.Errorf("ollama: model %s not pulled", c.model)
}
