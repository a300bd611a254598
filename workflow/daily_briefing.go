package workflow

import (
	"strings"
	"time"

	"github.com/mailmind-ai/mailmind/action"
	"github.com/mailmind-ai/mailmind/briefing"
	"github.com/mailmind-ai/mailmind/core"
)

const (
	briefingInboxLimit  = 50
	briefingSentLimit   = 30
	topicSearchKeywords = 3
	topicSearchLimit    = 10
)

// DailyBriefingAction compiles a printable meeting-intelligence briefing for
// today:
//
//  1. Resolve the user and today's meetings.
//  2. Pull a recent-email corpus from the inbox and sent folder.
//  3. Per meeting, gather attendee-linked and topic-searched emails into a
//     brief (collaborators, findings, agenda keywords).
//  4. Detect scheduling conflicts and rank delegate suggestions for each
//     side of every conflict.
//  5. Render the whole document as print-ready text.
//
// With no meetings today the action succeeds immediately with an empty
// briefing list and never runs the conflict detector.
type DailyBriefingAction struct {
	action.Base
}

// NewDailyBriefingAction constructs the daily_briefing action.
func NewDailyBriefingAction() action.Action {
	return &DailyBriefingAction{
		Base: action.NewBase(
			"daily_briefing",
			"Generate printable meeting intelligence briefing for today",
			"calendar", "email", "search", "prep", "briefing",
		),
	}
}

func (a *DailyBriefingAction) Execute(ctx *core.ExecutionContext) (*core.ActionResult, error) {
	me, err := a.CallToolMap("whoami", nil)
	if err != nil {
		return nil, err
	}
	ctx.Set("user", me)

	today, err := a.CallToolMap("get_todays_meetings", nil)
	if err != nil {
		return nil, err
	}
	date := strOr(mapStr(today, "date"), "today")
	meetings := briefing.MeetingsFromAny(today["meetings"])

	if len(meetings) == 0 {
		return a.Complete(briefing.Document{
			Date:      date,
			User:      mapStr(me, "name"),
			Message:   "No meetings scheduled for today.",
			Briefings: []briefing.Brief{},
		}), nil
	}
	ctx.Set("meetings_count", len(meetings))

	inbox, err := a.CallToolMap("get_inbox", map[string]any{"limit": briefingInboxLimit, "unread_only": false})
	if err != nil {
		return nil, err
	}
	sent, err := a.CallToolMap("get_sent", map[string]any{"limit": briefingSentLimit})
	if err != nil {
		return nil, err
	}
	corpus := append(briefing.EmailsFromAny(inbox["emails"]), briefing.EmailsFromAny(sent["emails"])...)
	ctx.Set("email_pool_size", len(corpus))

	briefs := make([]briefing.Brief, 0, len(meetings))
	for _, meeting := range meetings {
		brief, err := a.processMeeting(meeting, corpus)
		if err != nil {
			return nil, err
		}
		briefs = append(briefs, brief)
	}

	conflicts := briefing.DetectConflicts(meetings, corpus)

	doc := briefing.Document{
		Date:          date,
		User:          mapStr(me, "name"),
		GeneratedAt:   time.Now().UTC().Format(time.RFC3339),
		MeetingsCount: len(meetings),
		Conflicts:     conflicts,
		Briefings:     briefs,
	}
	doc.PrintReady = briefing.FormatPrintable(doc)

	return a.Complete(doc), nil
}

// processMeeting builds one meeting's brief: attendee-linked emails come from
// the local corpus, topic emails from a search over the meeting's top
// keywords.
func (a *DailyBriefingAction) processMeeting(meeting briefing.Meeting, corpus []briefing.EmailRecord) (briefing.Brief, error) {
	attendeeEmails := briefing.AttendeeEmails(meeting, corpus)

	var topicEmails []briefing.EmailRecord
	keywords := briefing.ExtractKeywords(meeting.Subject, meeting.Body)
	if len(keywords) > 0 {
		query := strings.Join(keywords[:min(len(keywords), topicSearchKeywords)], " ")
		search, err := a.CallToolMap("search_emails", map[string]any{"query": query, "limit": topicSearchLimit})
		if err != nil {
			return briefing.Brief{}, err
		}
		topicEmails = briefing.EmailsFromAny(search["results"])
	}

	return briefing.BuildBrief(meeting, attendeeEmails, topicEmails), nil
}
