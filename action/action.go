// Package action implements the execution framework for named, traceable
// workflows. An Action encapsulates a sequence of tool calls against an
// injected capability map; every run produces an ActionResult carrying the
// ordered tool-call trace, timing and a terminal status. The Run boundary is
// the principal failure-isolation seam: a defect inside one action's logic
// never propagates past it.
package action

import (
	"fmt"
	"time"

	"github.com/mailmind-ai/mailmind/core"
	"github.com/mailmind-ai/mailmind/logging"
)

// Action is the interface satisfied by every named workflow. Concrete
// implementations embed Base (which provides everything except Execute) and
// supply their own Execute.
//
// Execute builds its result via the Base Complete/Fail helpers, or returns an
// error to signal an uncaught logic failure; Run converts the latter into a
// failed ActionResult at exactly one seam.
type Action interface {
	// Name returns the unique action identifier (snake_case).
	Name() string

	// Description returns a human-readable description for discovery.
	Description() string

	// Tags returns category tags for discovery (e.g. "email", "calendar").
	Tags() []string

	// BindTools injects the capability map the action may invoke.
	BindTools(tools core.ToolMap)

	// SetLogger injects the logger used for run and tool-call logging.
	SetLogger(logger logging.Logger)

	// Execute performs the action's logic against the given context.
	Execute(ctx *core.ExecutionContext) (*core.ActionResult, error)

	// ActionBase exposes the embedded trace/tool base to the framework.
	ActionBase() *Base
}

// Base bundles the shared per-run machinery: the bound capability map, the
// tool-call trace, timing and the Complete/Fail result builders. Embed it in
// concrete actions and supply an Execute method to satisfy Action.
//
// A Base is owned by a single run at a time; Run resets it before Execute.
type Base struct {
	name        string
	description string
	tags        []string

	tools  core.ToolMap
	logger logging.Logger
	trace  []core.ToolCallRecord
	start  time.Time
}

// NewBase constructs a Base carrying the action's identity metadata.
func NewBase(name, description string, tags ...string) Base {
	return Base{
		name:        name,
		description: description,
		tags:        tags,
		logger:      logging.NoOpLogger{},
	}
}

// Name returns the action's unique identifier.
func (b *Base) Name() string { return b.name }

// Description returns the action's human-readable description.
func (b *Base) Description() string { return b.description }

// Tags returns the action's category tags.
func (b *Base) Tags() []string { return b.tags }

// BindTools injects the capability map. Called by the registry before Run.
func (b *Base) BindTools(tools core.ToolMap) { b.tools = tools }

// SetLogger injects the logger; nil falls back to a NoOpLogger.
func (b *Base) SetLogger(logger logging.Logger) {
	if logger == nil {
		logger = logging.NoOpLogger{}
	}
	b.logger = logger
}

// Logger returns the bound logger (never nil).
func (b *Base) Logger() logging.Logger { return b.logger }

// ActionBase exposes the embedded base; promoted onto concrete actions so the
// framework can reach the trace machinery through the Action interface.
func (b *Base) ActionBase() *Base { return b }

// CallTool invokes a named tool from the capability map, records a
// ToolCallRecord (including timing and any error) and appends it to the
// current run's trace. The record is created even when the tool errors; the
// error itself is returned to the caller, not swallowed. Unknown tool names
// fail before any timing starts and leave no trace entry.
//
// String results that look like JSON documents are decoded into structured
// values for both the returned value and the trace record.
func (b *Base) CallTool(name string, args map[string]any) (any, error) {
	fn, ok := b.tools[name]
	if !ok {
		return nil, &core.UnknownToolError{Tool: name, Available: b.tools.Names()}
	}
	if args == nil {
		args = map[string]any{}
	}

	rec := core.ToolCallRecord{ToolName: name, Arguments: args, Timestamp: time.Now().UTC()}
	start := time.Now()
	result, err := fn(args)
	rec.Duration = time.Since(start)

	if err != nil {
		rec.Error = err.Error()
		b.trace = append(b.trace, rec)
		b.logger.Error("tool.call.error", "tool", name, "action", b.name, "error", err.Error())
		return nil, err
	}

	decoded := core.DecodeResult(result)
	rec.Result = decoded
	b.trace = append(b.trace, rec)
	b.logger.Debug("tool.call.success", "tool", name, "action", b.name, "duration_ms", rec.Duration.Milliseconds())

	return decoded, nil
}

// CallToolMap invokes a tool and coerces the decoded result to a map,
// degrading to an empty map when the tool returned something else. Most
// capabilities return JSON documents, so this is the common access path.
func (b *Base) CallToolMap(name string, args map[string]any) (map[string]any, error) {
	result, err := b.CallTool(name, args)
	if err != nil {
		return nil, err
	}
	if m, ok := result.(map[string]any); ok {
		return m, nil
	}
	return map[string]any{}, nil
}

// Complete builds a successful result snapshotting the trace-so-far and
// elapsed time.
func (b *Base) Complete(output any) *core.ActionResult {
	return b.CompleteWithStatus(output, core.StatusSuccess)
}

// CompleteWithStatus builds a result with the caller's chosen status, used
// for partial-success signaling.
func (b *Base) CompleteWithStatus(output any, status core.ActionStatus) *core.ActionResult {
	return &core.ActionResult{
		ExecutionID: core.ShortID(),
		ActionName:  b.name,
		Status:      status,
		Output:      output,
		ToolCalls:   b.snapshotTrace(),
		Duration:    time.Since(b.start),
		Timestamp:   time.Now().UTC(),
	}
}

// Fail builds a failed result carrying the error message and the trace
// accumulated up to the failure point.
func (b *Base) Fail(message string) *core.ActionResult {
	return &core.ActionResult{
		ExecutionID: core.ShortID(),
		ActionName:  b.name,
		Status:      core.StatusFailed,
		Error:       message,
		ToolCalls:   b.snapshotTrace(),
		Duration:    time.Since(b.start),
		Timestamp:   time.Now().UTC(),
	}
}

// Failf builds a failed result from a format string.
func (b *Base) Failf(format string, args ...any) *core.ActionResult {
	return b.Fail(fmt.Sprintf(format, args...))
}

// reset clears the prior trace and starts the run timer.
func (b *Base) reset() {
	b.trace = nil
	b.start = time.Now()
}

func (b *Base) snapshotTrace() []core.ToolCallRecord {
	out := make([]core.ToolCallRecord, len(b.trace))
	copy(out, b.trace)
	return out
}

// Run executes an action with full tracing. It clears any prior trace,
// starts the timer, invokes Execute and normalizes every failure mode —
// returned error, nil result, even a panic in the action's logic — into a
// failed ActionResult. Run never panics and never returns nil.
func Run(a Action, ctx *core.ExecutionContext) (res *core.ActionResult) {
	b := a.ActionBase()
	b.reset()

	logger := b.Logger()
	logger.Info("action.run.start", "action", a.Name(), "session_id", ctx.SessionID)

	defer func() {
		if r := recover(); r != nil {
			logger.Error("action.run.panic", "action", a.Name(), "panic", fmt.Sprint(r))
			res = b.Failf("panic: %v", r)
		}
		logger.Info("action.run.done", "action", a.Name(), "status", string(res.Status), "tool_calls", len(res.ToolCalls), "duration_ms", res.Duration.Milliseconds())
	}()

	result, err := a.Execute(ctx)
	if err != nil {
		logger.Error("action.run.error", "action", a.Name(), "error", err.Error())
		return b.Fail(err.Error())
	}
	if result == nil {
		return b.Fail("action returned no result")
	}
	return result
}
