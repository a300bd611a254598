package workflow

import (
	"fmt"

	"github.com/mailmind-ai/mailmind/action"
	"github.com/mailmind-ai/mailmind/core"
)

// InboxTriageAction splits the unread inbox into high-priority and other
// emails and produces a short recommendation on where to start.
type InboxTriageAction struct {
	action.Base
}

// NewInboxTriageAction constructs the inbox_triage action.
func NewInboxTriageAction() action.Action {
	return &InboxTriageAction{
		Base: action.NewBase(
			"inbox_triage",
			"Triage unread inbox by priority",
			"email", "summary",
		),
	}
}

func (a *InboxTriageAction) Execute(ctx *core.ExecutionContext) (*core.ActionResult, error) {
	me, err := a.CallToolMap("whoami", nil)
	if err != nil {
		return nil, err
	}
	ctx.Set("user", me)

	inbox, err := a.CallToolMap("get_inbox", map[string]any{"limit": 50, "unread_only": true})
	if err != nil {
		return nil, err
	}

	var highPriority, other []map[string]any
	for _, email := range mapList(inbox, "emails") {
		if mapStr(email, "importance") == "High" {
			highPriority = append(highPriority, email)
		} else {
			other = append(other, email)
		}
	}

	recommendation := "No urgent emails at this time."
	if len(highPriority) > 0 {
		recommendation = fmt.Sprintf("You have %d high-priority emails to address first.", len(highPriority))
	}

	return a.Complete(map[string]any{
		"total_unread":        mapInt(inbox, "unread_total"),
		"high_priority":       highPriority,
		"high_priority_count": len(highPriority),
		"other":               other,
		"recommendation":      recommendation,
	}), nil
}
