package workflow

import (
	"fmt"

	"github.com/mailmind-ai/mailmind/action"
	"github.com/mailmind-ai/mailmind/core"
)

// MeetingPrepAction compiles background material for one meeting: the
// meeting record itself, topically related emails and the organizer's
// directory entry. Without an explicit meeting_id it preps the next upcoming
// meeting (today first, then the week ahead).
type MeetingPrepAction struct {
	action.Base
}

// NewMeetingPrepAction constructs the meeting_prep action.
func NewMeetingPrepAction() action.Action {
	return &MeetingPrepAction{
		Base: action.NewBase(
			"meeting_prep",
			"Prepare background info for a meeting",
			"calendar", "email", "lookup",
		),
	}
}

func (a *MeetingPrepAction) Execute(ctx *core.ExecutionContext) (*core.ActionResult, error) {
	meeting, failed, err := a.resolveMeeting(ctx.GetString("meeting_id"))
	if err != nil {
		return nil, err
	}
	if failed != nil {
		return failed, nil
	}
	ctx.Set("meeting", meeting)

	subject := mapStr(meeting, "subject")
	related, err := a.CallToolMap("search_emails", map[string]any{"query": subject, "limit": 5})
	if err != nil {
		return nil, err
	}

	var organizer map[string]any
	if name := mapStr(meeting, "organizer"); name != "" {
		organizer, err = a.CallToolMap("find_colleague", map[string]any{"name": name})
		if err != nil {
			return nil, err
		}
	}

	return a.Complete(map[string]any{
		"meeting":        meeting,
		"related_emails": mapList(related, "results"),
		"organizer_info": organizer,
		"prep_notes":     fmt.Sprintf("Meeting: %s", subject),
	}), nil
}

// resolveMeeting picks the meeting to prep. A non-nil *ActionResult signals a
// domain failure (nothing found) that should become the run's outcome.
func (a *MeetingPrepAction) resolveMeeting(meetingID string) (map[string]any, *core.ActionResult, error) {
	if meetingID != "" {
		found, err := a.CallToolMap("search_meetings", map[string]any{"query": meetingID, "limit": 1})
		if err != nil {
			return nil, nil, err
		}
		results := mapList(found, "results")
		if len(results) == 0 {
			return nil, a.Failf("Meeting not found: %s", meetingID), nil
		}
		return results[0], nil, nil
	}

	today, err := a.CallToolMap("get_todays_meetings", nil)
	if err != nil {
		return nil, nil, err
	}
	if meetings := mapList(today, "meetings"); len(meetings) > 0 {
		return meetings[0], nil, nil
	}

	week, err := a.CallToolMap("get_calendar", map[string]any{"days": 7})
	if err != nil {
		return nil, nil, err
	}
	if meetings := mapList(week, "meetings"); len(meetings) > 0 {
		return meetings[0], nil, nil
	}

	return nil, a.Fail("No upcoming meetings found"), nil
}
