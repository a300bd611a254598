package core

import (
	"fmt"
	"sort"
	"strings"
)

// UnknownToolError reports a tool name absent from the capability map. It is
// raised synchronously by the tool invoker before any call attempt, so no
// trace entry exists for it.
type UnknownToolError struct {
	Tool      string
	Available []string
}

func (e *UnknownToolError) Error() string {
	avail := append([]string(nil), e.Available...)
	sort.Strings(avail)
	return fmt.Sprintf("unknown tool: %s (available: %s)", e.Tool, strings.Join(avail, ", "))
}

// UnknownActionError reports an action name absent from the registry. It is
// the only error callers of Registry.Execute need to handle; everything else
// is normalized into the ActionResult status.
type UnknownActionError struct {
	Action string
}

func (e *UnknownActionError) Error() string {
	return fmt.Sprintf("unknown action: %s", e.Action)
}
