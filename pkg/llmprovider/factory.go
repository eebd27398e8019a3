package llmprovider

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"time"

	"devflow/config"
	"devflow/pkg/deepseek"
	"devflow/pkg/gemini"
	"devflow/pkg/log"
	"devflow/pkg/ollama"
)

const (
	defaultRetryDelay      = time.Second
	defaultMaxTotalTimeout = 120 * time.Second
)

// InitializeProviders builds the enabled providers of cfg, lowest priority
// number first. A provider that cannot be built is skipped with a warning;
// the call fails only when none can be.
func InitializeProviders(cfg *config.LLMConfig, l log.Logger) ([]Provider, error) {
	if cfg == nil {
		return nil, ErrNoProvidersConfigured
	}

	var entries []config.ProviderConfig
	for _, p := range cfg.Providers {
		if p.Enabled {
			entries = append(entries, p)
		}
	}
	if len(entries) == 0 {
		return nil, ErrNoProvidersConfigured
	}
	sort.SliceStable(entries, func(i, j int) bool { return entries[i].Priority < entries[j].Priority })

	ctx := context.Background()
	providers := make([]Provider, 0, len(entries))
	var failures []error
	for _, e := range entries {
		p, err := newProvider(e)
		if err != nil {
			l.Warnf(ctx, "llmprovider.InitializeProviders: skipping %s (priority %d): %v", e.Name, e.Priority, err)
			failures = append(failures, err)
			continue
		}
		providers = append(providers, p)
	}

	if len(providers) == 0 {
		return nil, fmt.Errorf("%w: %w", ErrNoProvidersConfigured, errors.Join(failures...))
	}
	if len(failures) > 0 {
		l.Warnf(ctx, "llmprovider.InitializeProviders: running with %d of %d providers", len(providers), len(entries))
	}
	return providers, nil
}

// NewManagerConfig fills the manager defaults for unset durations.
func NewManagerConfig(cfg *config.LLMConfig) *Config {
	out := &Config{
		FallbackEnabled: cfg.FallbackEnabled,
		RetryAttempts:   max(cfg.RetryAttempts, 1),
		RetryDelay:      cfg.RetryDelay,
		MaxTotalTimeout: cfg.MaxTotalTimeout,
	}
	if out.RetryDelay <= 0 {
		out.RetryDelay = defaultRetryDelay
	}
	if out.MaxTotalTimeout <= 0 {
		out.MaxTotalTimeout = defaultMaxTotalTimeout
	}
	return out
}

func newProvider(e config.ProviderConfig) (Provider, error) {
	switch e.Name {
	case ProviderGemini:
		client, err := gemini.New(gemini.Config{APIKey: e.APIKey, Model: e.Model, BaseURL: e.BaseURL, Timeout: e.Timeout})
		if err != nil {
			return nil, err
		}
		return NewGeminiAdapter(client), nil

	case ProviderDeepSeek:
		client, err := deepseek.New(deepseek.Config{APIKey: e.APIKey, Model: e.Model, BaseURL: e.BaseURL, Timeout: e.Timeout})
		if err != nil {
			return nil, err
		}
		return NewDeepSeekAdapter(client), nil

	case ProviderOllama:
		client, err := ollama.New(ollama.Config{BaseURL: e.BaseURL, Model: e.Model, Timeout: e.Timeout})
		if err != nil {
			return nil, err
		}
		return NewOllamaAdapter(client), nil
	}
	return nil, fmt.Errorf("unknown provider %q", e.Name)
}
