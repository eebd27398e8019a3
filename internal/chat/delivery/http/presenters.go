package http

import (
	"strings"

	"devflow/internal/chat"
	"devflow/internal/model"
	"devflow/internal/workload"
)

// --- Request DTOs ---

type chatReq struct {
	Message         string              `json:"message"`
	SessionID       string              `json:"session_id,omitempty"`
	State           *model.Conversation `json:"state,omitempty"`
	IncludeAnalysis *bool               `json:"include_analysis,omitempty"`
}

func (r chatReq) validate() error {
	if strings.TrimSpace(r.Message) == "" {
		return chat.ErrEmptyMessage
	}
	return nil
}

func (r chatReq) toInput() chat.ChatInput {
	return chat.ChatInput{
		Message:         r.Message,
		SessionID:       r.SessionID,
		State:           r.State,
		IncludeAnalysis: r.IncludeAnalysis,
	}
}

// --- Response DTOs ---

type chatResp struct {
	Response       string                 `json:"response"`
	Classification string                 `json:"classification"`
	SessionID      string                 `json:"session_id"`
	State          *model.Conversation    `json:"state"`
	DailySummary   *workload.DailySummary `json:"daily_summary,omitempty"`
	Workload       *workload.Analysis     `json:"workload,omitempty"`
}

func newChatResp(o chat.ChatOutput) chatResp {
	return chatResp{
		Response:       o.Response,
		Classification: string(o.Classification),
		SessionID:      o.SessionID,
		State:          o.State,
		DailySummary:   o.DailySummary,
		Workload:       o.Workload,
	}
}

type checkResp struct {
	Name   string `json:"name"`
	OK     bool   `json:"ok"`
	Reason string `json:"reason,omitempty"`
}

type statusResp struct {
	Status string      `json:"status"`
	Model  string      `json:"model"`
	Checks []checkResp `json:"checks"`
}

func newStatusResp(o chat.StatusOutput) statusResp {
	resp := statusResp{
		Status: "ok",
		Model:  o.Model,
		Checks: make([]checkResp, 0, len(o.Checks)),
	}
	if !o.Healthy() {
		resp.Status = "degraded"
	}
	for _, c := range o.Checks {
		resp.Checks = append(resp.Checks, checkResp{Name: c.Name, OK: c.OK, Reason: c.Reason})
	}
	return resp
}
