package core

import (
	"strings"

	"github.com/tidwall/gjson"
)

// ToolFunc is the contract every injected capability satisfies. Arguments are
// a flat name/value mapping; the return value is either a structured value or
// a text payload that callers may opportunistically decode (see DecodeResult).
//
// Implementations may block (network, disk); the framework imposes no
// timeouts or retries. A ToolFunc must be safe for concurrent invocation if
// the hosting environment parallelizes independent action runs.
type ToolFunc func(args map[string]any) (any, error)

// ToolMap is the injected capability set an action may invoke by name.
// It is read-only after setup and may be shared across concurrent runs.
type ToolMap map[string]ToolFunc

// Names returns the tool names in the map, sorted order not guaranteed.
func (m ToolMap) Names() []string {
	names := make([]string, 0, len(m))
	for name := range m {
		names = append(names, name)
	}
	return names
}

// DecodeResult attempts to interpret a tool result as a structured document.
// String payloads that look like JSON (object or array) are parsed into
// map[string]any / []any; anything else is returned unchanged. A tool's
// return value is therefore either an opaque success payload or text, never
// silently ambiguous to the caller.
func DecodeResult(v any) any {
	s, ok := v.(string)
	if !ok {
		return v
	}
	trimmed := strings.TrimSpace(s)
	if !strings.HasPrefix(trimmed, "{") && !strings.HasPrefix(trimmed, "[") {
		return v
	}
	if !gjson.Valid(trimmed) {
		return v
	}
	return gjson.Parse(trimmed).Value()
}
