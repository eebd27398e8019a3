package llmprovider

import (
	"context"
	"fmt"
	"time"

	"devflow/pkg/log"
	"devflow/pkg/metrics"
)

// Config controls how the Manager walks its providers.
type Config struct {
	FallbackEnabled bool
	RetryAttempts   int
	RetryDelay      time.Duration
	// MaxTotalTimeout bounds the whole walk. Zero means unbounded.
	MaxTotalTimeout time.Duration
}

// Manager is a Provider over a priority-ordered list of providers. Each
// provider is tried RetryAttempts times with a linearly growing delay
// before the next one is asked.
type Manager struct {
	providers []Provider
	cfg       Config
	l         log.Logger
}

var _ Provider = (*Manager)(nil)

// NewManager expects providers sorted by priority, as InitializeProviders returns them.
func NewManager(providers []Provider, cfg *Config, l log.Logger) *Manager {
	m := &Manager{providers: providers, l: l}
	if cfg != nil {
		m.cfg = *cfg
	}
	m.cfg.RetryAttempts = max(m.cfg.RetryAttempts, 1)
	return m
}

// Name identifies the manager as a provider.
func (m *Manager) Name() string {
	return "manager"
}

// Model returns the model of the highest-priority provider.
func (m *Manager) Model() string {
	if len(m.providers) == 0 {
		return ""
	}
	return m.providers[0].Model()
}

// Providers returns the providers in priority order.
func (m *Manager) Providers() []Provider {
	return m.providers
}

// GenerateContent returns the first successful response. When every
// provider allowed by FallbackEnabled has failed, the error wraps
// ErrAllProvidersFailed and the last ProviderError.
func (m *Manager) GenerateContent(ctx context.Context, req *Request) (*Response, error) {
	if req == nil {
		return nil, ErrInvalidRequest
	}
	if len(m.providers) == 0 {
		return nil, ErrNoProvidersConfigured
	}
	if m.cfg.MaxTotalTimeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, m.cfg.MaxTotalTimeout)
		defer cancel()
	}

	var lastErr error
	for i, p := range m.providers {
		if i > 0 && !m.cfg.FallbackEnabled {
			break
		}
		if err := ctx.Err(); err != nil {
			lastErr = err
			break
		}

		resp, attempts, err := m.attempt(ctx, p, req)
		if err == nil {
			m.succeeded(ctx, p, resp, attempts)
			return resp, nil
		}

		metrics.LLMRequestsTotal.WithLabelValues(p.Name(), metrics.StatusError).Inc()
		m.l.Warn(ctx, "llmprovider.Manager: provider failed",
			"provider", p.Name(),
			"model", p.Model(),
			"attempts", attempts,
			"error", err.Error(),
		)
		lastErr = &ProviderError{Provider: p.Name(), Attempts: attempts, Err: err}
	}

	return nil, fmt.Errorf("%w: %w", ErrAllProvidersFailed, lastErr)
}

// attempt calls p up to RetryAttempts times. The n-th retry waits n*RetryDelay.
func (m *Manager) attempt(ctx context.Context, p Provider, req *Request) (*Response, int, error) {
	var err error
	for n := 1; n <= m.cfg.RetryAttempts; n++ {
		if n > 1 {
			timer := time.NewTimer(time.Duration(n-1) * m.cfg.RetryDelay)
			select {
			case <-timer.C:
			case <-ctx.Done():
				timer.Stop()
				return nil, n - 1, ctx.Err()
			}
		}

		var resp *Response
		resp, err = p.GenerateContent(ctx, req)
		if err == nil && resp == nil {
			err = ErrEmptyResponse
		}
		if err == nil {
			return resp, n, nil
		}
		m.l.Debugf(ctx, "llmprovider.Manager: %s attempt %d/%d: %v", p.Name(), n, m.cfg.RetryAttempts, err)
	}
	return nil, m.cfg.RetryAttempts, err
}

func (m *Manager) succeeded(ctx context.Context, p Provider, resp *Response, attempts int) {
	if resp.ProviderName == "" {
		resp.ProviderName = p.Name()
	}
	usage := Usage{}
	if resp.Usage != nil {
		usage = *resp.Usage
	}

	metrics.LLMRequestsTotal.WithLabelValues(p.Name(), metrics.StatusSuccess).Inc()
	metrics.LLMTokensTotal.WithLabelValues(p.Name()).Add(float64(usage.TotalTokens))
	m.l.Info(ctx, "llmprovider.Manager: generation succeeded",
		"provider", p.Name(),
		"model", p.Model(),
		"attempts", attempts,
		"input_tokens", usage.InputTokens,
		"output_tokens", usage.OutputTokens,
	)
}
