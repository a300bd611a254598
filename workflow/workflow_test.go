package workflow

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mailmind-ai/mailmind/action"
	"github.com/mailmind-ai/mailmind/briefing"
	"github.com/mailmind-ai/mailmind/core"
	"github.com/mailmind-ai/mailmind/exchange"
)

var fixtureNow = time.Date(2025, 3, 10, 8, 0, 0, 0, time.UTC)

// fixtureRegistry wires all built-in actions over the sample dataset with a
// pinned clock, so "today" is stable.
func fixtureRegistry(shiftDays int) *action.Registry {
	now := fixtureNow.AddDate(0, 0, shiftDays)
	src := exchange.NewMockSource(exchange.SampleDataset(fixtureNow), exchange.WithClock(func() time.Time { return now }))
	reg := action.NewRegistry(exchange.Tools(src))
	Register(reg)
	return reg
}

func testCtx() *core.ExecutionContext {
	return core.NewExecutionContext("", "mock-model", "mock")
}

func TestRegister_AllActionsListed(t *testing.T) {
	reg := fixtureRegistry(0)

	infos := reg.List()
	require.Len(t, infos, 6)

	names := make([]string, len(infos))
	for i, info := range infos {
		names[i] = info.Name
	}
	assert.Equal(t, []string{
		"daily_summary", "get_email_thread", "meeting_prep",
		"colleague_lookup", "inbox_triage", "daily_briefing",
	}, names)

	assert.Len(t, reg.FindByTag("briefing"), 1)
}

func TestDailyBriefing_CompilesDocument(t *testing.T) {
	reg := fixtureRegistry(0)

	res, err := reg.Execute("daily_briefing", testCtx())
	require.NoError(t, err)
	require.Equal(t, core.StatusSuccess, res.Status)

	doc, ok := res.Output.(briefing.Document)
	require.True(t, ok, "output must be a briefing document")

	assert.Equal(t, "2025-03-10", doc.Date)
	assert.Equal(t, "Alex Morgan", doc.User)
	assert.Equal(t, 3, doc.MeetingsCount)
	require.Len(t, doc.Briefings, 3)

	// whoami, get_todays_meetings, get_inbox, get_sent, then one topic
	// search per meeting.
	tools := res.ToolsUsed()
	require.Len(t, tools, 7)
	assert.Equal(t, []string{"whoami", "get_todays_meetings", "get_inbox", "get_sent"}, tools[:4])
	for _, tool := range tools[4:] {
		assert.Equal(t, "search_emails", tool)
	}

	first := doc.Briefings[0]
	assert.Equal(t, "Spark Pipeline Sync", first.Meeting.Subject)
	assert.Equal(t, []string{"Alex Morgan", "Priya Patel", "Lena Fischer"}, first.Meeting.Attendees)
	assert.Contains(t, first.AgendaKeywords, "spark")
	assert.Contains(t, first.AgendaKeywords, "pipeline")
	assert.NotContains(t, first.AgendaKeywords, "sync", "meeting noise words are filtered")
	assert.NotEmpty(t, first.KeyCollaborators)
	assert.NotEmpty(t, first.RelatedFindings)
}

func TestDailyBriefing_DetectsConflictWithDelegates(t *testing.T) {
	reg := fixtureRegistry(0)

	res, err := reg.Execute("daily_briefing", testCtx())
	require.NoError(t, err)
	doc := res.Output.(briefing.Document)

	// Spark Pipeline Sync (10:00-10:30) overlaps Q3 Budget Review
	// (10:15-11:00); the handover at 14:00 conflicts with nothing.
	require.Len(t, doc.Conflicts, 1)
	conflict := doc.Conflicts[0]
	assert.Equal(t, "Spark Pipeline Sync", conflict.MeetingA)
	assert.Equal(t, "Q3 Budget Review", conflict.MeetingB)
	assert.Equal(t, "2025-03-10T10:00:00", conflict.TimeA)

	// Delegates for the sync: Marco (spark+pipeline in the upgrade email)
	// outranks Jess (pipeline in the dashboard email); the attendees Priya
	// and Lena are excluded despite their matching traffic.
	require.Len(t, conflict.AlternatesA, 2)
	assert.Equal(t, "Marco Ruiz", conflict.AlternatesA[0].Name)
	assert.Equal(t, 2, conflict.AlternatesA[0].Score)
	assert.Equal(t, []string{"spark", "pipeline"}, conflict.AlternatesA[0].Topics)
	assert.Equal(t, "Jess Chen", conflict.AlternatesA[1].Name)
	assert.Equal(t, 1, conflict.AlternatesA[1].Score)

	// Budget review side: only Marco's cluster email matches, and Sam (the
	// organizer-attendee) is excluded.
	require.Len(t, conflict.AlternatesB, 1)
	assert.Equal(t, "Marco Ruiz", conflict.AlternatesB[0].Name)
	assert.Equal(t, []string{"cluster"}, conflict.AlternatesB[0].Topics)
}

func TestDailyBriefing_PrintReadyLayout(t *testing.T) {
	reg := fixtureRegistry(0)

	res, err := reg.Execute("daily_briefing", testCtx())
	require.NoError(t, err)
	doc := res.Output.(briefing.Document)

	require.NotEmpty(t, doc.PrintReady)
	assert.Contains(t, doc.PrintReady, "DAILY BRIEFING - 2025-03-10")
	assert.Contains(t, doc.PrintReady, "Prepared for: Alex Morgan")
	assert.Contains(t, doc.PrintReady, "SCHEDULING CONFLICTS DETECTED:")
	assert.Contains(t, doc.PrintReady, "--- MEETING 1: Spark Pipeline Sync ---")
	assert.Contains(t, doc.PrintReady, "Generated for informed meeting participation.")
}

func TestDailyBriefing_NoMeetingsToday(t *testing.T) {
	// Shift the clock a month out so the fixture meetings all lie in the past.
	reg := fixtureRegistry(30)

	res, err := reg.Execute("daily_briefing", testCtx())
	require.NoError(t, err)
	require.Equal(t, core.StatusSuccess, res.Status)

	doc := res.Output.(briefing.Document)
	assert.Equal(t, "No meetings scheduled for today.", doc.Message)
	assert.Empty(t, doc.Briefings)
	assert.Empty(t, doc.Conflicts)

	// The corpus fetch and the detector never run on an empty day.
	assert.Equal(t, []string{"whoami", "get_todays_meetings"}, res.ToolsUsed())
}

func TestDailySummary(t *testing.T) {
	reg := fixtureRegistry(0)

	res, err := reg.Execute("daily_summary", testCtx())
	require.NoError(t, err)
	require.Equal(t, core.StatusSuccess, res.Status)

	out := res.Output.(map[string]any)
	assert.Equal(t, "Alex Morgan", out["user"])
	assert.Equal(t, "2025-03-10", out["date"])
	assert.Equal(t, 3, out["meetings_today"])
	assert.Equal(t, 4, out["unread_emails"])

	high := out["high_priority_emails"].([]map[string]any)
	assert.Len(t, high, 2)

	next := out["next_meeting"].(map[string]any)
	assert.Equal(t, "Spark Pipeline Sync", next["subject"])
}

func TestEmailThread(t *testing.T) {
	reg := fixtureRegistry(0)

	ctx := testCtx()
	ctx.Set("email_id", "e-2")

	res, err := reg.Execute("get_email_thread", ctx)
	require.NoError(t, err)
	require.Equal(t, core.StatusSuccess, res.Status)

	out := res.Output.(map[string]any)
	assert.Equal(t, "Re: Spark executor OOMs", out["subject"])
	assert.Equal(t, 1, out["thread_count"])

	// The reply prefix is stripped before searching.
	calls := res.ToolCalls
	require.Len(t, calls, 2)
	assert.Equal(t, "search_emails", calls[1].ToolName)
	assert.Equal(t, "Spark executor OOMs", calls[1].Arguments["query"])
}

func TestEmailThread_Failures(t *testing.T) {
	reg := fixtureRegistry(0)

	res, err := reg.Execute("get_email_thread", testCtx())
	require.NoError(t, err)
	assert.Equal(t, core.StatusFailed, res.Status)
	assert.Equal(t, "email_id required in context", res.Error)
	assert.Empty(t, res.ToolCalls)

	ctx := testCtx()
	ctx.Set("email_id", "e-404")
	res, err = reg.Execute("get_email_thread", ctx)
	require.NoError(t, err)
	assert.Equal(t, core.StatusFailed, res.Status)
	assert.Contains(t, res.Error, "e-404")
	assert.Len(t, res.ToolCalls, 1, "the failed read is still traced")
}

func TestMeetingPrep_NextMeetingDefault(t *testing.T) {
	reg := fixtureRegistry(0)

	res, err := reg.Execute("meeting_prep", testCtx())
	require.NoError(t, err)
	require.Equal(t, core.StatusSuccess, res.Status)

	out := res.Output.(map[string]any)
	meeting := out["meeting"].(map[string]any)
	assert.Equal(t, "Spark Pipeline Sync", meeting["subject"])

	organizer := out["organizer_info"].(map[string]any)
	assert.Equal(t, "Priya Patel", organizer["name"])
	assert.Equal(t, "Meeting: Spark Pipeline Sync", out["prep_notes"])
}

func TestMeetingPrep_ByQueryAndMissing(t *testing.T) {
	reg := fixtureRegistry(0)

	ctx := testCtx()
	ctx.Set("meeting_id", "budget")
	res, err := reg.Execute("meeting_prep", ctx)
	require.NoError(t, err)
	require.Equal(t, core.StatusSuccess, res.Status)
	meeting := res.Output.(map[string]any)["meeting"].(map[string]any)
	assert.Equal(t, "Q3 Budget Review", meeting["subject"])

	ctx = testCtx()
	ctx.Set("meeting_id", "offsite-2031")
	res, err = reg.Execute("meeting_prep", ctx)
	require.NoError(t, err)
	assert.Equal(t, core.StatusFailed, res.Status)
	assert.Contains(t, res.Error, "offsite-2031")
}

func TestColleagueLookup(t *testing.T) {
	reg := fixtureRegistry(0)

	ctx := testCtx()
	ctx.Set("colleague_name", "priya")

	res, err := reg.Execute("colleague_lookup", ctx)
	require.NoError(t, err)
	require.Equal(t, core.StatusSuccess, res.Status)

	out := res.Output.(map[string]any)
	colleague := out["colleague"].(map[string]any)
	assert.Equal(t, "Priya Patel", colleague["name"])
	assert.Len(t, out["recent_emails"], 2)
	assert.Len(t, out["shared_meetings"], 1)
}

func TestColleagueLookup_Failures(t *testing.T) {
	reg := fixtureRegistry(0)

	res, err := reg.Execute("colleague_lookup", testCtx())
	require.NoError(t, err)
	assert.Equal(t, core.StatusFailed, res.Status)
	assert.Equal(t, "colleague_name required in context", res.Error)

	ctx := testCtx()
	ctx.Set("colleague_name", "dracula")
	res, err = reg.Execute("colleague_lookup", ctx)
	require.NoError(t, err)
	assert.Equal(t, core.StatusFailed, res.Status)
	assert.Contains(t, res.Error, "dracula")
}

func TestInboxTriage(t *testing.T) {
	reg := fixtureRegistry(0)

	res, err := reg.Execute("inbox_triage", testCtx())
	require.NoError(t, err)
	require.Equal(t, core.StatusSuccess, res.Status)

	out := res.Output.(map[string]any)
	assert.Equal(t, 4, out["total_unread"])
	assert.Equal(t, 2, out["high_priority_count"])
	assert.Len(t, out["other"].([]map[string]any), 2)
	assert.Equal(t, "You have 2 high-priority emails to address first.", out["recommendation"])
}
