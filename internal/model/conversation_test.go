package model

import "testing"

func TestConversation_AppendOnly(t *testing.T) {
	c := NewConversation()
	if _, ok := c.Last(); ok {
		t.Fatal("empty conversation should have no last message")
	}
	if idx := c.LastAssistantIndex(); idx != -1 {
		t.Fatalf("LastAssistantIndex on empty = %d", idx)
	}

	c.Append(Message{Role: RoleUser, Content: "hi"})
	c.Append(Message{Role: RoleAssistant, Content: "hello"})
	c.Append(Message{Role: RoleTool, Content: "observation"})
	c.Record(ActionRecord{Name: "list_tasks", Status: ActionValid})

	last, ok := c.Last()
	if !ok || last.Role != RoleTool {
		t.Errorf("Last() = %+v, %v", last, ok)
	}
	if idx := c.LastAssistantIndex(); idx != 1 {
		t.Errorf("LastAssistantIndex() = %d, want 1", idx)
	}
	if len(c.ActionRecords) != 1 {
		t.Errorf("ActionRecords len = %d", len(c.ActionRecords))
	}
}
