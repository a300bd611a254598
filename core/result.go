package core

import (
	"time"
)

// ActionStatus enumerates the lifecycle states of an action run. Exactly one
// holds at any time for a given run.
type ActionStatus string

const (
	// StatusPending marks a constructed but not yet started run.
	StatusPending ActionStatus = "pending"
	// StatusRunning marks a run currently inside Run.
	StatusRunning ActionStatus = "running"
	// StatusSuccess marks a fully successful run.
	StatusSuccess ActionStatus = "success"
	// StatusPartial marks a run where some steps succeeded.
	StatusPartial ActionStatus = "partial"
	// StatusFailed marks a failed run; the result carries an error message.
	StatusFailed ActionStatus = "failed"
	// StatusSkipped marks a run that decided not to execute.
	StatusSkipped ActionStatus = "skipped"
)

// ToolCallRecord is the immutable record of a single tool invocation. One is
// created per attempted call — including calls that returned an error — and
// appended to the owning run's trace in call order. Duration is always >= 0.
type ToolCallRecord struct {
	ToolName  string         `json:"tool_name"`
	Arguments map[string]any `json:"arguments"`
	Result    any            `json:"result,omitempty"`
	Error     string         `json:"error,omitempty"`
	Duration  time.Duration  `json:"duration"`
	Timestamp time.Time      `json:"timestamp"`
}

// ActionResult is the outcome of one action run with its full trace.
// Immutable once returned; owned by the caller of Run.
//
// Invariants:
//   - Status == StatusFailed implies Error is non-empty and Output is nil.
//   - Status == StatusSuccess implies Error is empty.
//   - ToolCalls is ordered by call sequence and is the single source of
//     truth for which tools were used.
type ActionResult struct {
	ExecutionID string           `json:"execution_id"`
	ActionName  string           `json:"action_name"`
	Status      ActionStatus     `json:"status"`
	Output      any              `json:"output,omitempty"`
	Error       string           `json:"error,omitempty"`
	ToolCalls   []ToolCallRecord `json:"tool_calls"`
	Duration    time.Duration    `json:"duration"`
	Timestamp   time.Time        `json:"timestamp"`
}

// ToolsUsed returns the tool names that were called, in call order.
func (r *ActionResult) ToolsUsed() []string {
	names := make([]string, len(r.ToolCalls))
	for i, tc := range r.ToolCalls {
		names[i] = tc.ToolName
	}
	return names
}
