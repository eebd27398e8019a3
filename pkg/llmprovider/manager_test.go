package llmprovider

import (
	"context"
	"errors"
	"testing"
	"time"
)

// scriptedProvider fails its first failures calls, then answers with reply.
// failures < 0 fails forever. block makes every call wait for ctx. silent
// makes every call return neither a response nor an error.
type scriptedProvider struct {
	name     string
	model    string
	failures int
	block    bool
	silent   bool
	reply    *Response
	calls    int
}

func (p *scriptedProvider) GenerateContent(ctx context.Context, req *Request) (*Response, error) {
	p.calls++
	if p.block {
		<-ctx.Done()
		return nil, ctx.Err()
	}
	if p.silent {
		return nil, nil
	}
	if p.failures < 0 || p.calls <= p.failures {
		return nil, errors.New(p.name + " unavailable")
	}
	if p.reply != nil {
		return p.reply, nil
	}
	return &Response{Content: Message{Role: RoleAssistant, Parts: []Part{{Text: "from " + p.name}}}}, nil
}

func (p *scriptedProvider) Name() string  { return p.name }
func (p *scriptedProvider) Model() string { return p.model }

// mockLogger records the messages of Info and Warn.
type mockLogger struct {
	infos []string
	warns []string
}

func (m *mockLogger) Debug(ctx context.Context, arg ...any)                   {}
func (m *mockLogger) Debugf(ctx context.Context, template string, arg ...any) {}
func (m *mockLogger) Info(ctx context.Context, arg ...any) {
	if msg, ok := first(arg); ok {
		m.infos = append(m.infos, msg)
	}
}
func (m *mockLogger) Infof(ctx context.Context, template string, arg ...any) {}
func (m *mockLogger) Warn(ctx context.Context, arg ...any) {
	if msg, ok := first(arg); ok {
		m.warns = append(m.warns, msg)
	}
}
func (m *mockLogger) Warnf(ctx context.Context, template string, arg ...any)   {}
func (m *mockLogger) Error(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Errorf(ctx context.Context, template string, arg ...any)  {}
func (m *mockLogger) DPanic(ctx context.Context, arg ...any)                   {}
func (m *mockLogger) DPanicf(ctx context.Context, template string, arg ...any) {}
func (m *mockLogger) Panic(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Panicf(ctx context.Context, template string, arg ...any)  {}
func (m *mockLogger) Fatal(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Fatalf(ctx context.Context, template string, arg ...any)  {}

func first(arg []any) (string, bool) {
	if len(arg) == 0 {
		return "", false
	}
	s, ok := arg[0].(string)
	return s, ok
}

func userRequest(text string) *Request {
	return &Request{Messages: []Message{{Role: RoleUser, Parts: []Part{{Text: text}}}}}
}

func TestManager_GenerateContent(t *testing.T) {
	tests := []struct {
		name      string
		cfg       Config
		primary   scriptedProvider
		secondary scriptedProvider
		wantText  string
		wantErr   error
		wantCalls [2]int
		wantWarns int
	}{
		{
			name:      "primary answers",
			cfg:       Config{FallbackEnabled: true, RetryAttempts: 3},
			primary:   scriptedProvider{name: "ollama"},
			secondary: scriptedProvider{name: "gemini"},
			wantText:  "from ollama",
			wantCalls: [2]int{1, 0},
		},
		{
			name:      "flaky primary recovers on retry",
			cfg:       Config{FallbackEnabled: true, RetryAttempts: 3, RetryDelay: time.Millisecond},
			primary:   scriptedProvider{name: "ollama", failures: 1},
			secondary: scriptedProvider{name: "gemini"},
			wantText:  "from ollama",
			wantCalls: [2]int{2, 0},
		},
		{
			name:      "falls back after retries are spent",
			cfg:       Config{FallbackEnabled: true, RetryAttempts: 2, RetryDelay: time.Millisecond},
			primary:   scriptedProvider{name: "ollama", failures: -1},
			secondary: scriptedProvider{name: "gemini"},
			wantText:  "from gemini",
			wantCalls: [2]int{2, 1},
			wantWarns: 1,
		},
		{
			name:      "fallback disabled stops at primary",
			cfg:       Config{RetryAttempts: 2, RetryDelay: time.Millisecond},
			primary:   scriptedProvider{name: "ollama", failures: -1},
			secondary: scriptedProvider{name: "gemini"},
			wantErr:   ErrAllProvidersFailed,
			wantCalls: [2]int{2, 0},
			wantWarns: 1,
		},
		{
			name:      "every provider fails",
			cfg:       Config{FallbackEnabled: true, RetryAttempts: 2, RetryDelay: time.Millisecond},
			primary:   scriptedProvider{name: "ollama", failures: -1},
			secondary: scriptedProvider{name: "gemini", failures: -1},
			wantErr:   ErrAllProvidersFailed,
			wantCalls: [2]int{2, 2},
			wantWarns: 2,
		},
		{
			name:      "zero attempts still tries once",
			cfg:       Config{},
			primary:   scriptedProvider{name: "ollama"},
			secondary: scriptedProvider{name: "gemini"},
			wantText:  "from ollama",
			wantCalls: [2]int{1, 0},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			primary, secondary := tt.primary, tt.secondary
			l := &mockLogger{}
			m := NewManager([]Provider{&primary, &secondary}, &tt.cfg, l)

			resp, err := m.GenerateContent(context.Background(), userRequest("what's on today?"))

			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Fatalf("err = %v, want %v", err, tt.wantErr)
				}
			} else {
				if err != nil {
					t.Fatalf("unexpected error: %v", err)
				}
				if got := resp.Content.Text(); got != tt.wantText {
					t.Errorf("text = %q, want %q", got, tt.wantText)
				}
				if len(l.infos) != 1 {
					t.Errorf("info logs = %d, want 1", len(l.infos))
				}
			}
			if got := [2]int{primary.calls, secondary.calls}; got != tt.wantCalls {
				t.Errorf("calls = %v, want %v", got, tt.wantCalls)
			}
			if len(l.warns) != tt.wantWarns {
				t.Errorf("warn logs = %d, want %d", len(l.warns), tt.wantWarns)
			}
		})
	}
}

func TestManager_StampsProviderName(t *testing.T) {
	p := &scriptedProvider{name: "ollama", model: "qwen2.5:7b"}
	m := NewManager([]Provider{p}, &Config{}, &mockLogger{})

	resp, err := m.GenerateContent(context.Background(), userRequest("hi"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if resp.ProviderName != "ollama" {
		t.Errorf("ProviderName = %q", resp.ProviderName)
	}
	if m.Model() != "qwen2.5:7b" {
		t.Errorf("Model() = %q", m.Model())
	}
}

func TestManager_ProviderErrorCarriesAttempts(t *testing.T) {
	p := &scriptedProvider{name: "gemini", failures: -1}
	m := NewManager([]Provider{p}, &Config{RetryAttempts: 3, RetryDelay: time.Millisecond}, &mockLogger{})

	_, err := m.GenerateContent(context.Background(), userRequest("hi"))

	var pe *ProviderError
	if !errors.As(err, &pe) {
		t.Fatalf("expected ProviderError, got %v", err)
	}
	if pe.Provider != "gemini" || pe.Attempts != 3 {
		t.Errorf("ProviderError = %+v", pe)
	}
}

func TestManager_TotalTimeoutStopsTheWalk(t *testing.T) {
	slow := &scriptedProvider{name: "ollama", block: true}
	next := &scriptedProvider{name: "gemini"}
	m := NewManager([]Provider{slow, next}, &Config{
		FallbackEnabled: true,
		RetryAttempts:   3,
		RetryDelay:      time.Millisecond,
		MaxTotalTimeout: 20 * time.Millisecond,
	}, &mockLogger{})

	_, err := m.GenerateContent(context.Background(), userRequest("hi"))

	if !errors.Is(err, ErrAllProvidersFailed) || !errors.Is(err, context.DeadlineExceeded) {
		t.Fatalf("err = %v", err)
	}
	if slow.calls != 1 {
		t.Errorf("slow provider calls = %d, want 1", slow.calls)
	}
	if next.calls != 0 {
		t.Errorf("fallback called after the deadline: %d", next.calls)
	}
}

func TestManager_RejectsBadInput(t *testing.T) {
	p := &scriptedProvider{name: "ollama"}

	if _, err := NewManager([]Provider{p}, nil, &mockLogger{}).GenerateContent(context.Background(), nil); !errors.Is(err, ErrInvalidRequest) {
		t.Errorf("nil request: err = %v", err)
	}
	if p.calls != 0 {
		t.Errorf("provider called %d times", p.calls)
	}

	empty := NewManager(nil, nil, &mockLogger{})
	if _, err := empty.GenerateContent(context.Background(), userRequest("hi")); !errors.Is(err, ErrNoProvidersConfigured) {
		t.Errorf("no providers: err = %v", err)
	}
	if empty.Model() != "" {
		t.Errorf("Model() = %q, want empty", empty.Model())
	}
}

func TestManager_NilUsage(t *testing.T) {
	p := &scriptedProvider{name: "ollama", reply: &Response{Content: Message{Role: RoleAssistant, Parts: []Part{{Text: "ok"}}}}}
	m := NewManager([]Provider{p}, &Config{}, &mockLogger{})

	resp, err := m.GenerateContent(context.Background(), userRequest("hi"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if resp.Content.Text() != "ok" {
		t.Errorf("text = %q", resp.Content.Text())
	}
}

func TestManager_NilResponseIsAFailure(t *testing.T) {
	tests := []struct {
		name     string
		fallback bool
		wantText string
		wantErr  bool
	}{
		{"falls back to the next provider", true, "from gemini", false},
		{"fails without fallback", false, "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			silent := &scriptedProvider{name: "ollama", silent: true}
			next := &scriptedProvider{name: "gemini"}
			m := NewManager([]Provider{silent, next}, &Config{
				FallbackEnabled: tt.fallback,
				RetryAttempts:   2,
				RetryDelay:      time.Millisecond,
			}, &mockLogger{})

			resp, err := m.GenerateContent(context.Background(), userRequest("hi"))
			if silent.calls != 2 {
				t.Errorf("silent provider calls = %d, want 2", silent.calls)
			}
			if tt.wantErr {
				if !errors.Is(err, ErrEmptyResponse) || !errors.Is(err, ErrAllProvidersFailed) {
					t.Fatalf("err = %v", err)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if resp.Content.Text() != tt.wantText || resp.ProviderName != "gemini" {
				t.Errorf("resp = %q from %q", resp.Content.Text(), resp.ProviderName)
			}
		})
	}
}
