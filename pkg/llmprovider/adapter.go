package llmprovider

import (
	"encoding/json"
	"fmt"
)

// Each adapter translates the neutral conversation into one vendor's wire
// shape and back. Call IDs are the only state the translation has to
// invent: Gemini and Ollama do not issue them, but the orchestrator pairs
// observations with calls by ID.

// stableID returns fc.ID, or a positional ID when the vendor left it blank.
func stableID(fc *FunctionCall, position int) string {
	if fc.ID != "" {
		return fc.ID
	}
	return fmt.Sprintf("call_%d_%s", position, fc.Name)
}

// numberCalls gives every call part of msg a non-empty ID.
func numberCalls(msg *Message) {
	position := 0
	for i := range msg.Parts {
		fc := msg.Parts[i].FunctionCall
		if fc == nil {
			continue
		}
		fc.ID = stableID(fc, position)
		position++
	}
}

// resultText flattens a tool result for vendors whose tool messages only
// carry a string.
func resultText(v any) string {
	switch r := v.(type) {
	case string:
		return r
	case nil:
		return ""
	}
	raw, err := json.Marshal(v)
	if err != nil {
		return fmt.Sprint(v)
	}
	return string(raw)
}

// replyMessage assembles an assistant message from optional text followed
// by calls, the order every vendor reports them in.
func replyMessage(text string, calls []FunctionCall) Message {
	msg := Message{Role: RoleAssistant, Parts: []Part{}}
	if text != "" {
		msg.Parts = append(msg.Parts, Part{Text: text})
	}
	for i := range calls {
		if calls[i].Args == nil {
			calls[i].Args = map[string]any{}
		}
		msg.Parts = append(msg.Parts, Part{FunctionCall: &calls[i]})
	}
	numberCalls(&msg)
	return msg
}

// flatMessage is a vendor-neutral view of one OpenAI-style chat message,
// used by the adapters whose APIs split tool results into separate messages.
type flatMessage struct {
	role     string
	content  string
	calls    []FunctionCall
	callID   string
	toolName string
}

// flatten expands tool messages into one entry per result and prepends the
// system instruction, if any.
func flatten(system *Message, msgs []Message) []flatMessage {
	out := make([]flatMessage, 0, len(msgs)+1)
	if system != nil {
		out = append(out, flatMessage{role: RoleSystem, content: system.Text()})
	}
	for _, m := range msgs {
		if m.Role != RoleTool {
			calls := m.FunctionCalls()
			for i := range calls {
				calls[i].ID = stableID(&calls[i], i)
			}
			out = append(out, flatMessage{role: m.Role, content: m.Text(), calls: calls})
			continue
		}
		for _, p := range m.Parts {
			fr := p.FunctionResponse
			if fr == nil {
				continue
			}
			out = append(out, flatMessage{
				role:     RoleTool,
				content:  resultText(fr.Response),
				callID:   fr.ID,
				toolName: fr.Name,
			})
		}
	}
	return out
}
