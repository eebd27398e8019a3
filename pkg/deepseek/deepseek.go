package deepseek

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/go-resty/resty/v2"
)

// Client speaks the OpenAI chat/completions protocol. Any compatible
// endpoint can be reached by setting BaseURL.
type Client struct {
	http  *resty.Client
	model string
}

// New builds a client. An API key is required.
func New(cfg Config) (*Client, error) {
	if cfg.APIKey == "" {
		return nil, errors.New("deepseek: API key is required")
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
		SetAuthToken(cfg.APIKey)

	return &Client{http: httpClient, model: cfg.Model}, nil
}

// Model returns the configured model name.
func (c *Client) Model() string {
	return c.model
}

// GenerateContent posts one completion request. The request model
// defaults to the client's.
func (c *Client) GenerateContent(ctx context.Context, req *Request) (*Response, error) {
	if req.Model == "" {
		req.Model = c.model
	}

	var result Response
	var apiErr ErrorResponse
	resp, err := c.http.R().
		SetContext(ctx).
		SetBody(req).
		SetResult(&result).
		SetError(&apiErr).
		Post("/chat/completions")
	if err != nil {
		return nil, fmt.Errorf("deepseek: failed to send request: %w", err)
	}
	if resp.IsError() {
		if msg := apiErr.Error.Message; msg != "" {
			return nil, fmt.Errorf("deepseek: API error %d: %s", resp.StatusCode(), msg)
		}
		return nil, fmt.Errorf("deepseek: API error %d: %s", resp.StatusCode(), resp.String())
	}
	return &result, nil
}
