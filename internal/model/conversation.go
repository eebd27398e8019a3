package model

import "time"

// Role identifies the author of a Message.
type Role string

const (
	RoleUser      Role = "user"
	RoleAssistant Role = "assistant"
	RoleSystem    Role = "system"
	// RoleTool marks an observation produced by executing an Action.
	RoleTool Role = "tool"
)

// Message is one entry of a conversation.
type Message struct {
	Role    Role     `json:"role"`
	Content string   `json:"content"`
	Actions []Action `json:"actions,omitempty"`

	// Set on RoleTool messages: the Action this observation answers.
	ActionID   string `json:"action_id,omitempty"`
	ActionName string `json:"action_name,omitempty"`
	// Result is the structured tool output, when there is one.
	Result any `json:"result,omitempty"`
}

// Action is a model-proposed invocation of a catalog entry.
type Action struct {
	ID     string         `json:"id"`
	Name   string         `json:"name"`
	Args   map[string]any `json:"args"`
	Valid  bool           `json:"valid"`
	Reason string         `json:"reason,omitempty"`
}

// ActionStatus is the validator verdict on an Action.
type ActionStatus string

const (
	ActionValid   ActionStatus = "valid"
	ActionInvalid ActionStatus = "invalid"
)

// ActionRecord is the immutable history entry for a proposed Action.
type ActionRecord struct {
	Name   string         `json:"name"`
	Args   map[string]any `json:"args"`
	Status ActionStatus   `json:"status"`
	Reason string         `json:"reason,omitempty"`
	At     time.Time      `json:"at"`
}

// Conversation is the state carried across turns of one session.
// Messages and ActionRecords are append-only.
type Conversation struct {
	Messages      []Message      `json:"messages"`
	ActionRecords []ActionRecord `json:"action_records"`
	Context       map[string]any `json:"context,omitempty"`
}

// NewConversation returns an empty conversation.
func NewConversation() *Conversation {
	return &Conversation{
		Messages:      []Message{},
		ActionRecords: []ActionRecord{},
		Context:       map[string]any{},
	}
}

// Append adds a message at the end of the history.
func (c *Conversation) Append(m Message) {
	c.Messages = append(c.Messages, m)
}

// Record adds an action record at the end of the history.
func (c *Conversation) Record(r ActionRecord) {
	c.ActionRecords = append(c.ActionRecords, r)
}

// Last returns the most recent message, if any.
func (c *Conversation) Last() (Message, bool) {
	if len(c.Messages) == 0 {
		return Message{}, false
	}
	return c.Messages[len(c.Messages)-1], true
}

// LastAssistantIndex returns the index of the latest assistant message, or -1.
func (c *Conversation) LastAssistantIndex() int {
	for i := len(c.Messages) - 1; i >= 0; i-- {
		if c.Messages[i].Role == RoleAssistant {
			return i
		}
	}
	return -1
}
