package gemini

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/go-resty/resty/v2"
)

// Client is a Gemini REST client.
type Client struct {
	http  *resty.Client
	model string
}

// New builds a client. An API key is required.
func New(cfg Config) (*Client, error) {
	if cfg.APIKey == "" {
		return nil, errors.New("gemini: API key is required")
	}
	if cfg.Model == "" {
		cfg.Model = DefaultModel
	}
	if cfg.BaseURL == "" {
		cfg.BaseURL = DefaultBaseURL
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = DefaultTimeout
	}

	httpClient := resty.New().
		SetBaseURL(strings.TrimRight(cfg.BaseURL, "/")).
		SetTimeout(cfg.Timeout).
		SetHeader("Content-Type", "application/json").
		SetHeader(apiKeyHeader, cfg.APIKey)

	return &Client{http: httpClient, model: cfg.Model}, nil
}

// Model returns the configured model name.
func (c *Client) Model() string {
	return c.model
}

// GenerateContent posts one generateContent call and returns the first candidate.
func (c *Client) GenerateContent(ctx context.Context, req *Request) (*Response, error) {
	var result wireResponse
	resp, err := c.http.R().
		SetContext(ctx).
		SetPathParam("model", c.model).
		SetBody(toWire(req)).
		SetResult(&result).
		Post("/models/{model}:generateContent")
	if err != nil {
		return nil, fmt.Errorf("gemini: failed to call API: %w", err)
	}
	if resp.IsError() {
		return nil, fmt.Errorf("gemini: API error %d: %s", resp.StatusCode(), resp.String())
	}
	return fromWire(&result), nil
}
