package usecase

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"devflow/internal/agent/orchestrator"
	"devflow/internal/chat"
	"devflow/internal/chat/repository"
	"devflow/internal/chat/repository/memory"
	"devflow/internal/model"
	"devflow/internal/workload"
	"devflow/pkg/langfuse"
	"devflow/pkg/log"
)

type mockRunner struct {
	inputs []orchestrator.RunInput
	reply  string
	runErr error
	turn   error
	effort *workload.Analysis
}

func (m *mockRunner) Run(ctx context.Context, in orchestrator.RunInput) (orchestrator.RunOutput, error) {
	m.inputs = append(m.inputs, in)
	if m.runErr != nil {
		return orchestrator.RunOutput{}, m.runErr
	}
	conv := in.Conversation
	conv.Append(model.Message{Role: model.RoleUser, Content: in.Utterance})
	content := m.reply
	if m.turn != nil {
		content = orchestrator.ErrorMarker + m.turn.Error()
	}
	conv.Append(model.Message{Role: model.RoleAssistant, Content: content})
	return orchestrator.RunOutput{Conversation: conv, Err: m.turn, Effort: m.effort, Iterations: 1}, nil
}

func (m *mockRunner) ModelName() string { return "mock-model" }

type mockSink struct {
	mu     sync.Mutex
	traces []langfuse.Trace
	err    error
}

func (m *mockSink) Record(ctx context.Context, tr langfuse.Trace) error {
	if _, ok := ctx.Deadline(); !ok {
		return errors.New("trace without deadline")
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.traces = append(m.traces, tr)
	return m.err
}

type failingRepo struct{ repository.Repository }

func (failingRepo) GetSession(ctx context.Context, id string) (*model.Conversation, error) {
	return nil, repository.ErrFailedToGet
}

func newUseCase(runner *mockRunner, sink langfuse.Sink, services ...chat.Service) (*implUseCase, repository.Repository) {
	repo := memory.New(10, time.Hour, log.NewNop())
	uc := New(runner, repo, Config{Sink: sink, Services: services, CheckTimeout: 50 * time.Millisecond}, log.NewNop())
	uc.newID = func() string { return "generated" }
	return uc, repo
}

func TestChat_NewSession(t *testing.T) {
	runner := &mockRunner{reply: "✅ Task created"}
	sink := &mockSink{}
	uc, repo := newUseCase(runner, sink)

	out, err := uc.Chat(context.Background(), chat.ChatInput{Message: "add a task"})
	if err != nil {
		t.Fatalf("Chat() error = %v", err)
	}
	if out.SessionID != "generated" || out.Response != "✅ Task created" {
		t.Errorf("out = %+v", out)
	}
	if out.Classification != model.ClassificationSuccess {
		t.Errorf("classification = %s, want success", out.Classification)
	}
	if !runner.inputs[0].IncludeAnalysis {
		t.Error("analysis should default to on")
	}

	stored, _ := repo.GetSession(context.Background(), "generated")
	if stored == nil || len(stored.Messages) != 2 {
		t.Fatalf("stored = %+v", stored)
	}

	uc.Flush()
	if len(sink.traces) != 1 {
		t.Fatalf("traces = %d", len(sink.traces))
	}
	tr := sink.traces[0]
	if tr.Name != chat.TraceName || tr.SessionID != "generated" || tr.Metadata["model"] != "mock-model" {
		t.Errorf("trace = %+v", tr)
	}
}

func TestChat_ResumesStoredSession(t *testing.T) {
	runner := &mockRunner{reply: "Here you go"}
	uc, repo := newUseCase(runner, nil)
	ctx := context.Background()

	prev := model.NewConversation()
	prev.Append(model.Message{Role: model.RoleUser, Content: "earlier"})
	if err := repo.SaveSession(ctx, "s1", prev); err != nil {
		t.Fatal(err)
	}

	off := false
	out, err := uc.Chat(ctx, chat.ChatInput{Message: "next", SessionID: "s1", IncludeAnalysis: &off})
	if err != nil {
		t.Fatal(err)
	}
	if runner.inputs[0].IncludeAnalysis {
		t.Error("explicit include_analysis=false ignored")
	}
	if len(out.State.Messages) != 3 || out.State.Messages[0].Content != "earlier" {
		t.Errorf("state = %+v", out.State.Messages)
	}
}

func TestChat_SuppliedStateWins(t *testing.T) {
	runner := &mockRunner{reply: "ok"}
	uc, _ := newUseCase(runner, nil)
	uc.repo = failingRepo{}

	state := model.NewConversation()
	state.Append(model.Message{Role: model.RoleUser, Content: "from client"})

	out, err := uc.Chat(context.Background(), chat.ChatInput{Message: "hi", SessionID: "s", State: state})
	if err != nil {
		t.Fatalf("Chat() error = %v", err)
	}
	if out.State != state || len(state.Messages) != 3 {
		t.Errorf("supplied state not used in place")
	}
}

func TestChat_StoreFailure(t *testing.T) {
	uc, _ := newUseCase(&mockRunner{reply: "ok"}, nil)
	uc.repo = failingRepo{}

	if _, err := uc.Chat(context.Background(), chat.ChatInput{Message: "hi", SessionID: "s"}); !errors.Is(err, repository.ErrFailedToGet) {
		t.Errorf("error = %v", err)
	}
}

func TestChat_TurnFailure(t *testing.T) {
	turnErr := errors.Join(orchestrator.ErrModelInvocation, errors.New("quota exceeded"))
	runner := &mockRunner{turn: turnErr}
	sink := &mockSink{err: errors.New("langfuse down")}
	uc, repo := newUseCase(runner, sink)

	out, err := uc.Chat(context.Background(), chat.ChatInput{Message: "plan my day"})
	if !errors.Is(err, orchestrator.ErrModelInvocation) {
		t.Fatalf("error = %v", err)
	}
	if out.Classification != model.ClassificationError {
		t.Errorf("classification = %s", out.Classification)
	}
	if stored, _ := repo.GetSession(context.Background(), out.SessionID); stored == nil {
		t.Error("failed turn not stored")
	}

	uc.Flush()
	if len(sink.traces) != 1 || sink.traces[0].Metadata["error"] == nil {
		t.Errorf("traces = %+v", sink.traces)
	}
}

func TestChat_EmptyMessage(t *testing.T) {
	runner := &mockRunner{}
	uc, _ := newUseCase(runner, nil)

	if _, err := uc.Chat(context.Background(), chat.ChatInput{Message: "  "}); !errors.Is(err, chat.ErrEmptyMessage) {
		t.Errorf("error = %v", err)
	}
	if len(runner.inputs) != 0 {
		t.Error("runner called for an empty message")
	}
}

func TestStatus(t *testing.T) {
	uc, _ := newUseCase(&mockRunner{}, nil,
		chat.Service{Name: chat.ServiceModel, Check: func(ctx context.Context) error { return nil }},
		chat.Service{Name: chat.ServiceGoogle},
		chat.Service{Name: chat.ServiceGitHub, Check: func(ctx context.Context) error {
			<-ctx.Done()
			return ctx.Err()
		}},
	)

	out := uc.Status(context.Background())
	if out.Model != "mock-model" {
		t.Errorf("model = %q", out.Model)
	}
	if out.Healthy() {
		t.Error("status healthy with failing checks")
	}

	want := []chat.Check{
		{Name: chat.ServiceModel, OK: true},
		{Name: chat.ServiceGoogle, Reason: chat.ErrNotConfigured.Error()},
		{Name: chat.ServiceGitHub, Reason: context.DeadlineExceeded.Error()},
	}
	if len(out.Checks) != len(want) {
		t.Fatalf("checks = %+v", out.Checks)
	}
	for i := range want {
		if out.Checks[i] != want[i] {
			t.Errorf("check %d = %+v, want %+v", i, out.Checks[i], want[i])
		}
	}
}
