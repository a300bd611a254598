package model

import (
	"context"
	"fmt"
	"sync"
)

// ToolCall is a function call proposed by the model, normalized across
// vendors. Arguments are already decoded from the provider's JSON encoding.
type ToolCall struct {
	ID        string         `json:"id"`
	Name      string         `json:"name"`
	Arguments map[string]any `json:"arguments"`
}

// ToolSpec declaratively exposes a callable capability to the model.
// Parameters is a minimal JSON Schema object.
type ToolSpec struct {
	Name        string         `json:"name"`
	Description string         `json:"description"`
	Parameters  map[string]any `json:"parameters"`
}

// Message is one turn of a conversation. Exactly one shape applies per role:
// user and assistant turns carry Text, an assistant turn may instead carry
// ToolCalls, and a tool turn carries the result for one prior call.
type Message struct {
	Role       string     `json:"role"` // "user", "assistant", "tool"
	Text       string     `json:"text,omitempty"`
	ToolCalls  []ToolCall `json:"tool_calls,omitempty"`
	ToolCallID string     `json:"tool_call_id,omitempty"`
	ToolName   string     `json:"tool_name,omitempty"`
}

// UserMessage builds a user turn.
func UserMessage(text string) Message { return Message{Role: "user", Text: text} }

// AssistantMessage builds a plain assistant text turn.
func AssistantMessage(text string) Message { return Message{Role: "assistant", Text: text} }

// AssistantToolCalls builds an assistant turn proposing tool calls.
func AssistantToolCalls(calls ...ToolCall) Message {
	return Message{Role: "assistant", ToolCalls: calls}
}

// ToolResult builds a tool turn carrying one call's result text.
func ToolResult(callID, name, text string) Message {
	return Message{Role: "tool", ToolCallID: callID, ToolName: name, Text: text}
}

// Request is the normalized model input: a system prompt, the conversation so
// far and the tool specs the model may call.
type Request struct {
	System   string     `json:"system,omitempty"`
	Messages []Message  `json:"messages"`
	Tools    []ToolSpec `json:"tools,omitempty"`
}

// Reply is one completed model turn: final text, or one or more proposed tool
// calls the caller must execute and feed back.
type Reply struct {
	Text         string     `json:"text,omitempty"`
	ToolCalls    []ToolCall `json:"tool_calls,omitempty"`
	FinishReason string     `json:"finish_reason,omitempty"`
}

// Info contains metadata about a model implementation.
type Info struct {
	Name          string `json:"name"`
	Provider      string `json:"provider"`
	SupportsTools bool   `json:"supports_tools"`
}

// Model is the minimal interface the engine needs to drive a tool-call loop.
type Model interface {
	// Complete runs one non-streaming turn of the conversation.
	Complete(ctx context.Context, req Request) (*Reply, error)

	// Info returns metadata about the model implementation.
	Info() Info
}

// MockModel is an in-memory Model scripting deterministic replies for tests:
// queued replies are returned in order, after which every turn echoes the
// last user message. Requests are recorded for assertions.
type MockModel struct {
	mu       sync.Mutex
	info     Info
	queue    []Reply
	requests []Request
}

// NewMockModel constructs a MockModel with tool support enabled.
func NewMockModel(name, provider string) *MockModel {
	return &MockModel{info: Info{Name: name, Provider: provider, SupportsTools: true}}
}

// Queue appends a scripted reply consumed by the next Complete call.
func (m *MockModel) Queue(replies ...Reply) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.queue = append(m.queue, replies...)
}

// Requests returns a copy of every request Complete has seen.
func (m *MockModel) Requests() []Request {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]Request, len(m.requests))
	copy(out, m.requests)
	return out
}

// Complete implements Model.
func (m *MockModel) Complete(ctx context.Context, req Request) (*Reply, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	m.requests = append(m.requests, req)

	if len(m.queue) > 0 {
		reply := m.queue[0]
		m.queue = m.queue[1:]
		return &reply, nil
	}

	var lastUser string
	for _, msg := range req.Messages {
		if msg.Role == "user" {
			lastUser = msg.Text
		}
	}
	return &Reply{Text: fmt.Sprintf("Mock response to: %s", lastUser), FinishReason: "stop"}, nil
}

// Info implements Model.
func (m *MockModel) Info() Info { return m.info }
