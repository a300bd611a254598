package briefing

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAttendeeEmails_MatchesSenderAndRecipients(t *testing.T) {
	meeting := Meeting{Attendees: []Attendee{{Name: "Priya Patel"}, {Name: "Marco Ruiz"}}}
	corpus := []EmailRecord{
		{Subject: "from priya", FromName: "Priya Patel"},
		{Subject: "unrelated", FromName: "Sam Okafor"},
		{Subject: "to marco", FromName: "Jess Chen", Recipients: []string{"Marco Ruiz", "Dana Scully"}},
		{Subject: "cc only", FromName: "Jess Chen", Recipients: []string{"Dana Scully"}},
	}

	got := AttendeeEmails(meeting, corpus)
	require.Len(t, got, 2)
	assert.Equal(t, "from priya", got[0].Subject)
	assert.Equal(t, "to marco", got[1].Subject)
}

func TestAttendeeEmails_NoAttendees(t *testing.T) {
	assert.Empty(t, AttendeeEmails(Meeting{}, delegateCorpus()))
}

func TestKeyCollaborators_RankedByFrequency(t *testing.T) {
	emails := []EmailRecord{
		{FromName: "Jess Chen"},
		{FromName: "Priya Patel"},
		{FromName: "Priya Patel"},
		{FromName: ""},
		{FromName: "Marco Ruiz"},
		{FromName: "Priya Patel"},
		{FromName: "Jess Chen"},
	}
	got := KeyCollaborators(emails)
	require.Len(t, got, 3)
	assert.Equal(t, Collaborator{Name: "Priya Patel", EmailCount: 3}, got[0])
	assert.Equal(t, Collaborator{Name: "Jess Chen", EmailCount: 2}, got[1])
	assert.Equal(t, Collaborator{Name: "Marco Ruiz", EmailCount: 1}, got[2])
}

func TestKeyCollaborators_CappedAtFive(t *testing.T) {
	var emails []EmailRecord
	for _, name := range []string{"a", "b", "c", "d", "e", "f", "g"} {
		emails = append(emails, EmailRecord{FromName: name})
	}
	assert.Len(t, KeyCollaborators(emails), 5)
}

func TestFindings_DedupeAndTruncate(t *testing.T) {
	long := strings.Repeat("x", 200)
	emails := []EmailRecord{
		{Subject: "standup notes", FromName: "Jess Chen", Date: "2025-03-09", Body: long},
		{Subject: "standup notes", FromName: "Jess Chen", Date: "2025-03-08", Body: "dup subject"},
		{Subject: "short one", FromName: "Marco Ruiz", Body: "tiny"},
	}

	got := Findings(emails)
	require.Len(t, got, 2)
	assert.Equal(t, "standup notes", got[0].Subject)
	assert.Len(t, got[0].Preview, previewLength+3)
	assert.True(t, strings.HasSuffix(got[0].Preview, "..."))
	assert.Equal(t, "tiny", got[1].Preview)
}

func TestFindings_PoolAndOutputCaps(t *testing.T) {
	var emails []EmailRecord
	for i := 0; i < 20; i++ {
		emails = append(emails, EmailRecord{Subject: strings.Repeat("s", i+1)})
	}
	got := Findings(emails)
	assert.Len(t, got, maxFindings)
}

func TestBuildBrief(t *testing.T) {
	meeting := Meeting{
		Subject:   "Spark Pipeline Sync",
		Start:     "2025-03-10T10:00:00",
		Organizer: "Dana Scully",
		Location:  "Room 4",
		Body:      "Throughput targets",
		Attendees: []Attendee{{Name: "Priya Patel"}},
	}
	attendeeEmails := []EmailRecord{{Subject: "a1", FromName: "Priya Patel"}}
	topicEmails := []EmailRecord{{Subject: "t1", FromName: "Marco Ruiz"}, {Subject: "t2", FromName: "Priya Patel"}}

	brief := BuildBrief(meeting, attendeeEmails, topicEmails)
	assert.Equal(t, "Spark Pipeline Sync", brief.Meeting.Subject)
	assert.Equal(t, []string{"Priya Patel"}, brief.Meeting.Attendees)
	assert.Equal(t, 1, brief.EmailCounts.FromAttendees)
	assert.Equal(t, 2, brief.EmailCounts.TopicRelated)
	assert.Contains(t, brief.AgendaKeywords, "spark")
	require.NotEmpty(t, brief.KeyCollaborators)
	assert.Equal(t, "Priya Patel", brief.KeyCollaborators[0].Name)
	assert.Equal(t, 2, brief.KeyCollaborators[0].EmailCount)
	assert.Len(t, brief.RelatedFindings, 3)
}

func TestFormatPrintable_ConflictsFirst(t *testing.T) {
	doc := Document{
		Date: "2025-03-10",
		User: "Dana Scully",
		Conflicts: []Conflict{{
			MeetingA: "Spark Review",
			MeetingB: "Budget Planning",
			TimeA:    "2025-03-10T10:00:00",
			TimeB:    "2025-03-10T10:00:00",
			AlternatesA: []DelegateCandidate{
				{Name: "Priya Patel", Topics: []string{"spark", "pipeline", "throughput"}},
			},
		}},
		Briefings: []Brief{{
			Meeting:        MeetingSummary{Subject: "Spark Review", Time: "2025-03-10T10:00:00", Organizer: "Dana Scully"},
			AgendaKeywords: []string{"spark"},
		}},
	}

	text := FormatPrintable(doc)
	assert.Contains(t, text, "DAILY BRIEFING - 2025-03-10")
	assert.Contains(t, text, "Prepared for: Dana Scully")
	assert.Contains(t, text, "SCHEDULING CONFLICTS DETECTED:")
	assert.Contains(t, text, "Priya Patel (discussed: spark, pipeline)")
	assert.Contains(t, text, "MEETING 1: Spark Review")
	assert.Contains(t, text, "Location: Not specified")
	assert.Contains(t, text, "TOPICS: spark")
	assert.Less(t, strings.Index(text, "SCHEDULING CONFLICTS"), strings.Index(text, "MEETING 1"))
}

func TestFormatPrintable_NoConflicts(t *testing.T) {
	doc := Document{Date: "2025-03-10", User: "Dana Scully"}
	text := FormatPrintable(doc)
	assert.NotContains(t, text, "SCHEDULING CONFLICTS")
}

func TestMeetingFromMap_GracefulDegradation(t *testing.T) {
	m := MeetingFromMap(map[string]any{
		"subject":   "Planning",
		"start":     "2025-03-10T09:00:00",
		"attendees": []any{map[string]any{"name": "Priya Patel", "email": "priya@contoso.com"}, "Marco Ruiz"},
	})
	assert.Equal(t, "Planning", m.Subject)
	assert.Equal(t, "", m.End)
	assert.Equal(t, "", m.Location)
	require.Len(t, m.Attendees, 2)
	assert.Equal(t, "Priya Patel", m.Attendees[0].Name)
	assert.Equal(t, "Marco Ruiz", m.Attendees[1].Name)
}

func TestEmailFromMap_SenderShapes(t *testing.T) {
	structured := EmailFromMap(map[string]any{
		"subject":     "hello",
		"from":        map[string]any{"name": "Priya Patel", "email": "priya@contoso.com"},
		"bodyPreview": "preview text",
		"received":    "2025-03-09",
		"to":          []any{"Dana Scully"},
	})
	assert.Equal(t, "Priya Patel", structured.FromName)
	assert.Equal(t, "priya@contoso.com", structured.FromEmail)
	assert.Equal(t, "preview text", structured.Body)
	assert.Equal(t, "2025-03-09", structured.Date)
	assert.Equal(t, []string{"Dana Scully"}, structured.Recipients)

	bare := EmailFromMap(map[string]any{"from": "Marco Ruiz", "body": "plain body", "sent": "2025-03-08"})
	assert.Equal(t, "Marco Ruiz", bare.FromName)
	assert.Equal(t, "", bare.FromEmail)
	assert.Equal(t, "plain body", bare.Body)
	assert.Equal(t, "2025-03-08", bare.Date)
}
