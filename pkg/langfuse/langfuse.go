// Package langfuse records chat traces in Langfuse through its public
// ingestion API.
package langfuse

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/go-resty/resty/v2"
	"github.com/google/uuid"
)

const (
	// DefaultHost is Langfuse Cloud
	DefaultHost = "https://cloud.langfuse.com"

	defaultTimeout   = 5 * time.Second
	ingestionPath    = "/api/public/ingestion"
	eventTraceCreate = "trace-create"
)

// ErrDisabled is returned by Record when the sink is not configured.
var ErrDisabled = errors.New("langfuse: disabled")

// Sink is the observability sink used by the chat usecase.
type Sink interface {
	Record(ctx context.Context, trace Trace) error
}

// Client posts traces to Langfuse.
type Client struct {
	http    *resty.Client
	enabled bool
	now     func() time.Time
}

var _ Sink = (*Client)(nil)

// New creates a Langfuse client. Missing keys disable it.
func New(cfg Config) *Client {
	if cfg.Host == "" {
		cfg.Host = DefaultHost
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = defaultTimeout
	}

	httpClient := resty.New().
		SetBaseURL(strings.TrimRight(cfg.Host, "/")).
		SetTimeout(cfg.Timeout).
		SetBasicAuth(cfg.PublicKey, cfg.SecretKey).
		SetHeader("Content-Type", "application/json")

	return &Client{
		http:    httpClient,
		enabled: cfg.Enabled && cfg.PublicKey != "" && cfg.SecretKey != "",
		now:     time.Now,
	}
}

// Enabled reports whether traces are sent.
func (c *Client) Enabled() bool {
	return c.enabled
}

// Record sends one trace-create event.
func (c *Client) Record(ctx context.Context, trace Trace) error {
	if !c.enabled {
		return ErrDisabled
	}

	ts := c.now().UTC().Format(time.RFC3339Nano)
	body := ingestionRequest{Batch: []ingestionEvent{{
		ID:        uuid.NewString(),
		Timestamp: ts,
		Type:      eventTraceCreate,
		Body: traceBody{
			ID:        uuid.NewString(),
			Timestamp: ts,
			Name:      trace.Name,
			SessionID: trace.SessionID,
			Input:     trace.Input,
			Output:    trace.Output,
			Metadata:  trace.Metadata,
			Tags:      trace.Tags,
		},
	}}}

	var result ingestionResponse
	resp, err := c.http.R().
		SetContext(ctx).
		SetBody(body).
		SetResult(&result).
		Post(ingestionPath)
	if err != nil {
		return fmt.Errorf("langfuse: ingestion request: %w", err)
	}
	if resp.IsError() {
		return fmt.Errorf("langfuse: ingestion returned %d: %s", resp.StatusCode(), resp.String())
	}
	if len(result.Errors) > 0 {
		return fmt.Errorf("langfuse: event rejected (%d): %s", result.Errors[0].Status, result.Errors[0].Message)
	}
	return nil
}
