package engine

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/mailmind-ai/mailmind/action"
	"github.com/mailmind-ai/mailmind/briefing"
	"github.com/mailmind-ai/mailmind/core"
	"github.com/mailmind-ai/mailmind/logging"
	"github.com/mailmind-ai/mailmind/model"
	"github.com/mailmind-ai/mailmind/session"
)

// DefaultMaxIterations bounds the tool-call loop per chat turn.
const DefaultMaxIterations = 8

// IterationLimitError reports a model that kept requesting tools without
// producing a final answer.
type IterationLimitError struct {
	Limit int
}

func (e *IterationLimitError) Error() string {
	return fmt.Sprintf("model did not settle within %d tool-call iterations", e.Limit)
}

// Response is the outcome of one chat turn.
type Response struct {
	Text         string             `json:"text"`
	ToolsUsed    []string           `json:"tools_used,omitempty"`
	ActionResult *core.ActionResult `json:"action_result,omitempty"`
}

// Engine wires a model, the capability map and the action registry into the
// assistant's conversational surface.
type Engine struct {
	model         model.Model
	registry      *action.Registry
	tools         core.ToolMap
	specs         []model.ToolSpec
	history       *session.Log
	logger        logging.Logger
	systemPrompt  string
	maxIterations int
}

// Option customizes engine construction.
type Option func(*Engine)

// WithSystemPrompt overrides the default system prompt.
func WithSystemPrompt(prompt string) Option {
	return func(e *Engine) {
		if prompt != "" {
			e.systemPrompt = prompt
		}
	}
}

// WithMaxIterations bounds the per-turn tool-call loop.
func WithMaxIterations(n int) Option {
	return func(e *Engine) {
		if n > 0 {
			e.maxIterations = n
		}
	}
}

// WithLogger sets the engine's logger.
func WithLogger(logger logging.Logger) Option {
	return func(e *Engine) {
		if logger != nil {
			e.logger = logger
		}
	}
}

// WithHistory attaches an interaction log; every chat turn is appended to it.
func WithHistory(history *session.Log) Option {
	return func(e *Engine) { e.history = history }
}

// New constructs an engine over a model and an action registry. The
// capability map comes from the registry so chat tools and action tools are
// the same functions.
func New(m model.Model, registry *action.Registry, specs []model.ToolSpec, opts ...Option) *Engine {
	e := &Engine{
		model:         m,
		registry:      registry,
		tools:         registry.Tools(),
		specs:         specs,
		logger:        logging.NoOpLogger{},
		systemPrompt:  BuildSystemPrompt("", "", ""),
		maxIterations: DefaultMaxIterations,
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// BuildSystemPrompt renders the assistant's system prompt, optionally
// personalized with the user's identity.
func BuildSystemPrompt(name, email, department string) string {
	var b strings.Builder
	b.WriteString("You are a helpful personal assistant with access to the user's Exchange email and calendar data.\n\n")
	b.WriteString("IMPORTANT: You MUST use the available tools to answer questions about emails, meetings, or colleagues.\n")
	b.WriteString("NEVER make up or hallucinate data - always call the appropriate tool first.\n")
	if name != "" {
		fmt.Fprintf(&b, "\nThe user is: %s (%s) from %s.\n", name, email, department)
	}
	b.WriteString("\nWhen responding:\n")
	b.WriteString("- ALWAYS call a tool first to get real data\n")
	b.WriteString("- Summarize the tool results clearly\n")
	b.WriteString("- Be concise but informative\n")
	b.WriteString("- Highlight important/urgent items")
	return b.String()
}

// Chat processes one user turn. Action commands ("/run <name> [key=value]")
// dispatch through the registry; everything else goes through the model's
// tool-call loop.
func (e *Engine) Chat(ctx context.Context, query string) (*Response, error) {
	if name, vars, ok := parseCommand(query); ok {
		return e.runAction(query, name, vars)
	}
	return e.converse(ctx, query)
}

// RunAction executes a registered action directly, bypassing the model.
func (e *Engine) RunAction(name string, vars map[string]string) (*Response, error) {
	return e.runAction("/run "+name, name, vars)
}

func (e *Engine) runAction(query, name string, vars map[string]string) (*Response, error) {
	info := e.model.Info()
	ectx := core.NewExecutionContext(query, info.Name, info.Provider)
	for key, value := range vars {
		ectx.Set(key, value)
	}

	result, err := e.registry.Execute(name, ectx)
	if err != nil {
		return nil, err
	}

	resp := &Response{
		Text:         renderActionResult(result),
		ToolsUsed:    result.ToolsUsed(),
		ActionResult: result,
	}
	e.record(query, resp)
	return resp, nil
}

func (e *Engine) converse(ctx context.Context, query string) (*Response, error) {
	req := model.Request{
		System:   e.systemPrompt,
		Messages: []model.Message{model.UserMessage(query)},
		Tools:    e.specs,
	}

	var toolsUsed []string
	for i := 0; i < e.maxIterations; i++ {
		reply, err := e.model.Complete(ctx, req)
		if err != nil {
			return nil, err
		}

		if len(reply.ToolCalls) == 0 {
			resp := &Response{Text: reply.Text, ToolsUsed: toolsUsed}
			e.record(query, resp)
			return resp, nil
		}

		req.Messages = append(req.Messages, model.AssistantToolCalls(reply.ToolCalls...))
		for _, call := range reply.ToolCalls {
			toolsUsed = append(toolsUsed, call.Name)
			req.Messages = append(req.Messages, model.ToolResult(call.ID, call.Name, e.invokeTool(call)))
		}
	}

	return nil, &IterationLimitError{Limit: e.maxIterations}
}

// invokeTool executes one proposed call and renders its result as text for
// the model. Failures are fed back as error documents rather than aborting
// the turn, so the model can recover or explain.
func (e *Engine) invokeTool(call model.ToolCall) string {
	fn, ok := e.tools[call.Name]
	if !ok {
		e.logger.Warn("engine.tool.unknown", "tool", call.Name)
		return fmt.Sprintf(`{"error": "unknown tool: %s"}`, call.Name)
	}

	args := call.Arguments
	if args == nil {
		args = map[string]any{}
	}
	result, err := fn(args)
	if err != nil {
		e.logger.Error("engine.tool.error", "tool", call.Name, "error", err.Error())
		return fmt.Sprintf(`{"error": %q}`, err.Error())
	}

	if text, ok := result.(string); ok {
		return text
	}
	raw, err := json.Marshal(result)
	if err != nil {
		return fmt.Sprintf(`{"error": %q}`, err.Error())
	}
	return string(raw)
}

func (e *Engine) record(query string, resp *Response) {
	if e.history == nil {
		return
	}
	info := e.model.Info()
	e.history.Append(session.Interaction{
		Query:        query,
		Response:     resp.Text,
		Model:        info.Name,
		Provider:     info.Provider,
		ToolsUsed:    resp.ToolsUsed,
		ActionResult: resp.ActionResult,
	})
}

// parseCommand recognizes "/run <action> [key=value ...]" queries.
func parseCommand(query string) (name string, vars map[string]string, ok bool) {
	fields := strings.Fields(query)
	if len(fields) < 2 || fields[0] != "/run" {
		return "", nil, false
	}
	vars = map[string]string{}
	for _, field := range fields[2:] {
		key, value, found := strings.Cut(field, "=")
		if found && key != "" {
			vars[key] = value
		}
	}
	return fields[1], vars, true
}

// renderActionResult turns an action outcome into chat text: briefing
// documents use their print-ready rendering, everything else is formatted as
// indented JSON.
func renderActionResult(result *core.ActionResult) string {
	if result.Status == core.StatusFailed {
		return fmt.Sprintf("Action '%s' failed: %s", result.ActionName, result.Error)
	}
	if doc, ok := result.Output.(briefing.Document); ok && doc.PrintReady != "" {
		return doc.PrintReady
	}
	raw, err := json.MarshalIndent(result.Output, "", "  ")
	if err != nil {
		return fmt.Sprintf("%v", result.Output)
	}
	return string(raw)
}
