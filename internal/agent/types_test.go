package agent_test

import (
	"context"
	"errors"
	"slices"
	"testing"

	"devflow/internal/agent"
)

type stubTool struct {
	name string
	desc string
}

func (s stubTool) Name() string               { return s.name }
func (s stubTool) Description() string        { return s.desc }
func (s stubTool) Parameters() map[string]any { return map[string]any{"type": "object"} }
func (s stubTool) Execute(context.Context, map[string]any) (any, error) {
	return "ok", nil
}

type ruleSet []string

func (r ruleSet) Covers() []string { return r }

func newCatalog(t *testing.T, names ...string) *agent.Catalog {
	t.Helper()
	c := agent.NewCatalog()
	for _, n := range names {
		if err := c.Add(stubTool{name: n, desc: "does " + n}); err != nil {
			t.Fatalf("Add(%s) error = %v", n, err)
		}
	}
	return c
}

func TestCatalog_KeepsNamesSorted(t *testing.T) {
	c := newCatalog(t, "list_tasks", "create_event", "search_issues")

	want := []string{"create_event", "list_tasks", "search_issues"}
	if got := c.Names(); !slices.Equal(got, want) {
		t.Errorf("Names() = %v, want %v", got, want)
	}

	decl := c.Declarations()
	if len(decl) != 3 || decl[0].Name != "create_event" || decl[0].Description != "does create_event" {
		t.Errorf("Declarations() = %+v", decl)
	}
	if decl[2].Parameters["type"] != "object" {
		t.Errorf("parameters not carried: %+v", decl[2].Parameters)
	}

	tools := c.Tools()
	if tools[1].Name() != "list_tasks" {
		t.Errorf("Tools()[1] = %s", tools[1].Name())
	}
}

func TestCatalog_NamesIsACopy(t *testing.T) {
	c := newCatalog(t, "a", "b")
	names := c.Names()
	names[0] = "zzz"
	if c.Names()[0] != "a" {
		t.Error("Names() exposed internal slice")
	}
}

func TestCatalog_RejectsDuplicates(t *testing.T) {
	c := newCatalog(t, "list_tasks")
	if err := c.Add(stubTool{name: "list_tasks"}); !errors.Is(err, agent.ErrDuplicateTool) {
		t.Errorf("err = %v, want ErrDuplicateTool", err)
	}
	if len(c.Names()) != 1 {
		t.Errorf("duplicate added: %v", c.Names())
	}
}

func TestCatalog_Lookup(t *testing.T) {
	c := newCatalog(t, "list_tasks")
	if tool, ok := c.Lookup("list_tasks"); !ok || tool.Name() != "list_tasks" {
		t.Errorf("Lookup(list_tasks) = %v, %v", tool, ok)
	}
	if _, ok := c.Lookup("drop_tables"); ok {
		t.Error("Lookup found an unregistered action")
	}
}

func TestCatalog_CheckCoverage(t *testing.T) {
	c := newCatalog(t, "create_event", "create_task")

	tests := []struct {
		name    string
		rules   ruleSet
		missing string
	}{
		{"all covered", ruleSet{"create_event", "create_task"}, ""},
		{"empty", nil, ""},
		{"unknown rule", ruleSet{"create_event", "delete_event"}, "delete_event"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := c.CheckCoverage(tt.rules)
			if tt.missing == "" {
				if err != nil {
					t.Errorf("unexpected error: %v", err)
				}
				return
			}
			var uncovered *agent.UncoveredRuleError
			if !errors.As(err, &uncovered) || uncovered.Tool != tt.missing {
				t.Errorf("err = %v, want uncovered %s", err, tt.missing)
			}
		})
	}
}
