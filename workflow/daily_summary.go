package workflow

import (
	"github.com/mailmind-ai/mailmind/action"
	"github.com/mailmind-ai/mailmind/core"
)

// DailySummaryAction compiles a lightweight day-at-a-glance summary: the
// user's identity, today's meeting count and next meeting, and the unread
// high-priority emails.
type DailySummaryAction struct {
	action.Base
}

// NewDailySummaryAction constructs the daily_summary action.
func NewDailySummaryAction() action.Action {
	return &DailySummaryAction{
		Base: action.NewBase(
			"daily_summary",
			"Generate a daily summary of emails and meetings",
			"email", "calendar", "summary",
		),
	}
}

func (a *DailySummaryAction) Execute(ctx *core.ExecutionContext) (*core.ActionResult, error) {
	me, err := a.CallToolMap("whoami", nil)
	if err != nil {
		return nil, err
	}
	ctx.Set("user", me)

	meetings, err := a.CallToolMap("get_todays_meetings", nil)
	if err != nil {
		return nil, err
	}
	ctx.Set("meetings", meetings)

	inbox, err := a.CallToolMap("get_inbox", map[string]any{"limit": 20, "unread_only": true})
	if err != nil {
		return nil, err
	}
	ctx.Set("inbox", inbox)

	var highPriority []map[string]any
	for _, email := range mapList(inbox, "emails") {
		if mapStr(email, "importance") == "High" {
			highPriority = append(highPriority, email)
		}
	}

	var nextMeeting map[string]any
	if todays := mapList(meetings, "meetings"); len(todays) > 0 {
		nextMeeting = todays[0]
	}

	return a.Complete(map[string]any{
		"user":                 mapStr(me, "name"),
		"date":                 strOr(mapStr(meetings, "date"), "today"),
		"meetings_today":       mapInt(meetings, "count"),
		"unread_emails":        mapInt(inbox, "unread_total"),
		"high_priority_emails": highPriority,
		"next_meeting":         nextMeeting,
	}), nil
}
