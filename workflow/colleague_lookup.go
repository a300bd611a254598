package workflow

import (
	"github.com/mailmind-ai/mailmind/action"
	"github.com/mailmind-ai/mailmind/core"
)

// ColleagueLookupAction resolves a colleague from the directory and collects
// their recent interactions: emails mentioning them and shared meetings.
type ColleagueLookupAction struct {
	action.Base
}

// NewColleagueLookupAction constructs the colleague_lookup action.
func NewColleagueLookupAction() action.Action {
	return &ColleagueLookupAction{
		Base: action.NewBase(
			"colleague_lookup",
			"Look up a colleague with recent interactions",
			"lookup", "email", "calendar",
		),
	}
}

func (a *ColleagueLookupAction) Execute(ctx *core.ExecutionContext) (*core.ActionResult, error) {
	name := ctx.GetString("colleague_name")
	if name == "" {
		return a.Fail("colleague_name required in context"), nil
	}

	colleague, err := a.CallToolMap("find_colleague", map[string]any{"name": name})
	if err != nil {
		return nil, err
	}
	if mapStr(colleague, "error") != "" || mapStr(colleague, "name") == "" {
		return a.Failf("Colleague not found: %s", name), nil
	}
	ctx.Set("colleague", colleague)

	emails, err := a.CallToolMap("search_emails", map[string]any{"query": name, "limit": 10})
	if err != nil {
		return nil, err
	}

	meetings, err := a.CallToolMap("search_meetings", map[string]any{"query": name, "limit": 5})
	if err != nil {
		return nil, err
	}

	return a.Complete(map[string]any{
		"colleague":       colleague,
		"recent_emails":   mapList(emails, "results"),
		"shared_meetings": mapList(meetings, "results"),
	}), nil
}
