package config

import (
	"errors"
	"fmt"
)

// Validate rejects configurations the service cannot start with.
func (c *Config) Validate() error {
	if err := c.LLM.validate(); err != nil {
		return fmt.Errorf("config: llm: %w", err)
	}
	if err := c.Session.validate(c.Redis); err != nil {
		return fmt.Errorf("config: session: %w", err)
	}
	if err := c.Agent.validate(); err != nil {
		return fmt.Errorf("config: agent: %w", err)
	}
	return nil
}

func (l LLMConfig) validate() error {
	if len(l.Providers) == 0 {
		return errors.New("no providers configured")
	}

	seen := make(map[int]string)
	enabled := 0
	for i, p := range l.Providers {
		switch p.Name {
		case ProviderGemini, ProviderDeepSeek, ProviderOllama:
		case "":
			return fmt.Errorf("provider %d: name is required", i)
		default:
			return fmt.Errorf("provider %d: unknown name %q", i, p.Name)
		}
		if p.Model == "" {
			return fmt.Errorf("provider %s: model is required", p.Name)
		}
		if !p.Enabled {
			continue
		}
		enabled++
		if p.Priority <= 0 {
			return fmt.Errorf("provider %s: priority must be positive", p.Name)
		}
		if other, dup := seen[p.Priority]; dup {
			return fmt.Errorf("provider %s: priority %d already used by %s", p.Name, p.Priority, other)
		}
		seen[p.Priority] = p.Name
	}
	if enabled == 0 {
		return errors.New("no enabled providers")
	}
	return nil
}

func (s SessionConfig) validate(r RedisConfig) error {
	switch s.Store {
	case SessionStoreMemory:
	case SessionStoreRedis:
		if r.Addr == "" {
			return errors.New("redis store requires redis.addr")
		}
	default:
		return fmt.Errorf("unknown store %q", s.Store)
	}
	if s.TTL <= 0 {
		return errors.New("ttl must be positive")
	}
	return nil
}

func (a AgentConfig) validate() error {
	if a.MaxIterations <= 0 {
		return errors.New("max_iterations must be positive")
	}
	if a.WorkingHoursStart < 0 || a.WorkingHoursEnd > 24 || a.WorkingHoursStart >= a.WorkingHoursEnd {
		return fmt.Errorf("working hours %d-%d are not a valid range", a.WorkingHoursStart, a.WorkingHoursEnd)
	}
	return nil
}
