package core

import (
	"sync"

	"github.com/google/uuid"
)

// ExecutionContext is the mutable scratchpad carried through one action run
// (or a chain of actions composed by the caller). It holds the originating
// user query, model and provider identity, a session id and a key/value
// variable map actions use to hand intermediate values to subsequent steps.
//
// Contract:
//   - Created once per top-level interaction, passed by reference through
//     exactly one run; never persisted by the framework itself.
//   - Variable access is goroutine-safe so a hosting environment that runs
//     independent actions concurrently can still share read-mostly contexts
//     it composes deliberately.
type ExecutionContext struct {
	UserQuery string
	Model     string
	Provider  string
	SessionID string

	mu        sync.RWMutex
	variables map[string]any
}

// NewExecutionContext creates a context with a fresh short session id.
func NewExecutionContext(userQuery, model, provider string) *ExecutionContext {
	return &ExecutionContext{
		UserQuery: userQuery,
		Model:     model,
		Provider:  provider,
		SessionID: ShortID(),
		variables: map[string]any{},
	}
}

// Set stores a value for subsequent steps in the same run.
func (c *ExecutionContext) Set(key string, value any) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.variables == nil {
		c.variables = map[string]any{}
	}
	c.variables[key] = value
}

// Get retrieves a value previously stored with Set.
func (c *ExecutionContext) Get(key string) (any, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	v, ok := c.variables[key]
	return v, ok
}

// GetString retrieves a string variable, returning "" when absent or not a string.
func (c *ExecutionContext) GetString(key string) string {
	v, ok := c.Get(key)
	if !ok {
		return ""
	}
	s, _ := v.(string)
	return s
}

// Variables returns a shallow copy of the variable map for inspection.
func (c *ExecutionContext) Variables() map[string]any {
	c.mu.RLock()
	defer c.mu.RUnlock()
	out := make(map[string]any, len(c.variables))
	for k, v := range c.variables {
		out[k] = v
	}
	return out
}

// ShortID returns the 8-character prefix of a fresh UUID, the id format used
// for execution and session identifiers throughout the assistant.
func ShortID() string {
	return uuid.NewString()[:8]
}
