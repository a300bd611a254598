package briefing

import (
	"fmt"
	"strings"
)

// Attendee is a name/identity pair on a meeting invite.
type Attendee struct {
	Name  string `json:"name"`
	Email string `json:"email,omitempty"`
}

// Meeting is the read-only calendar record shape consumed by the detector
// and compiler. Start/End are kept as the backend's timestamp strings;
// ISO-style timestamps compare correctly as strings, which is what the
// overlap rule relies on.
type Meeting struct {
	Subject   string     `json:"subject"`
	Start     string     `json:"start"`
	End       string     `json:"end"`
	Organizer string     `json:"organizer"`
	Attendees []Attendee `json:"attendees"`
	Location  string     `json:"location"`
	Body      string     `json:"body"`
}

// AttendeeNames returns the attendee display names in invite order.
func (m Meeting) AttendeeNames() []string {
	names := make([]string, len(m.Attendees))
	for i, a := range m.Attendees {
		names[i] = a.Name
	}
	return names
}

// EmailRecord is the read-only mail record shape consumed by the scorer.
type EmailRecord struct {
	Subject    string   `json:"subject"`
	FromName   string   `json:"from"`
	FromEmail  string   `json:"from_email,omitempty"`
	Recipients []string `json:"to,omitempty"`
	Body       string   `json:"preview"`
	Date       string   `json:"date"`
}

// Conflict describes one overlapping meeting pair plus ranked delegate
// suggestions for each side. Derived per request, never persisted.
type Conflict struct {
	MeetingA     string              `json:"meeting1"`
	MeetingB     string              `json:"meeting2"`
	TimeA        string              `json:"time1"`
	TimeB        string              `json:"time2"`
	AlternatesA  []DelegateCandidate `json:"alternatives1"`
	AlternatesB  []DelegateCandidate `json:"alternatives2"`
}

// DelegateCandidate is a person inferred from email activity who could
// plausibly substitute for an attendee at a conflicting meeting. Score is
// the cumulative keyword-match count across the corpus; Topics reports the
// matched keywords capped at three.
type DelegateCandidate struct {
	Name   string   `json:"name"`
	Email  string   `json:"email"`
	Score  int      `json:"score"`
	Topics []string `json:"topics"`
}

// Collaborator is a ranked sender appearing across a meeting's related emails.
type Collaborator struct {
	Name       string `json:"name"`
	EmailCount int    `json:"email_count"`
}

// Finding is a deduplicated recent email snippet attached to a brief.
type Finding struct {
	Subject string `json:"subject"`
	From    string `json:"from"`
	Date    string `json:"date"`
	Preview string `json:"preview"`
}

// MeetingSummary is the header block of a per-meeting brief.
type MeetingSummary struct {
	Subject   string   `json:"subject"`
	Time      string   `json:"time"`
	Organizer string   `json:"organizer"`
	Attendees []string `json:"attendees"`
	Location  string   `json:"location"`
}

// EmailCounts breaks down how many related emails came from each channel.
type EmailCounts struct {
	FromAttendees int `json:"from_attendees"`
	TopicRelated  int `json:"topic_related"`
}

// Brief is the compiled intelligence summary for one meeting.
type Brief struct {
	Meeting          MeetingSummary `json:"meeting"`
	AgendaKeywords   []string       `json:"agenda_keywords"`
	KeyCollaborators []Collaborator `json:"key_collaborators"`
	RelatedFindings  []Finding      `json:"related_findings"`
	EmailCounts      EmailCounts    `json:"email_count"`
}

// Document is the full structured briefing for one day.
type Document struct {
	Date          string     `json:"date"`
	User          string     `json:"user"`
	GeneratedAt   string     `json:"generated_at,omitempty"`
	MeetingsCount int        `json:"meetings_count"`
	Message       string     `json:"message,omitempty"`
	Conflicts     []Conflict `json:"conflicts"`
	Briefings     []Brief    `json:"briefings"`
	PrintReady    string     `json:"print_ready,omitempty"`
}

// MeetingFromMap decodes a meeting record from a loosely shaped tool result.
// Missing or oddly typed fields degrade to zero values, never error.
func MeetingFromMap(m map[string]any) Meeting {
	return Meeting{
		Subject:   str(m["subject"]),
		Start:     str(m["start"]),
		End:       str(m["end"]),
		Organizer: str(m["organizer"]),
		Attendees: attendees(m["attendees"]),
		Location:  str(m["location"]),
		Body:      str(m["body"]),
	}
}

// MeetingsFromAny decodes a list of meeting records, skipping entries that
// are not objects.
func MeetingsFromAny(v any) []Meeting {
	items, ok := v.([]any)
	if !ok {
		return nil
	}
	out := make([]Meeting, 0, len(items))
	for _, item := range items {
		if m, ok := item.(map[string]any); ok {
			out = append(out, MeetingFromMap(m))
		}
	}
	return out
}

// EmailFromMap decodes an email record from a loosely shaped tool result.
// The sender may be an object ({name, email}) or a bare string; the body may
// live under "bodyPreview", "preview" or "body"; the timestamp under
// "received", "sent" or "date".
func EmailFromMap(m map[string]any) EmailRecord {
	rec := EmailRecord{
		Subject: str(m["subject"]),
		Date:    firstStr(m, "received", "sent", "date"),
		Body:    firstStr(m, "bodyPreview", "preview", "body"),
	}
	switch from := m["from"].(type) {
	case map[string]any:
		rec.FromName = str(from["name"])
		rec.FromEmail = str(from["email"])
	default:
		rec.FromName = str(from)
	}
	if to, ok := m["to"].([]any); ok {
		for _, r := range to {
			switch rv := r.(type) {
			case map[string]any:
				rec.Recipients = append(rec.Recipients, str(rv["name"]))
			default:
				rec.Recipients = append(rec.Recipients, str(rv))
			}
		}
	} else if s := str(m["to"]); s != "" {
		rec.Recipients = append(rec.Recipients, s)
	}
	return rec
}

// EmailsFromAny decodes a list of email records, skipping non-object entries.
func EmailsFromAny(v any) []EmailRecord {
	items, ok := v.([]any)
	if !ok {
		return nil
	}
	out := make([]EmailRecord, 0, len(items))
	for _, item := range items {
		if m, ok := item.(map[string]any); ok {
			out = append(out, EmailFromMap(m))
		}
	}
	return out
}

func attendees(v any) []Attendee {
	items, ok := v.([]any)
	if !ok {
		return nil
	}
	out := make([]Attendee, 0, len(items))
	for _, item := range items {
		switch a := item.(type) {
		case map[string]any:
			out = append(out, Attendee{Name: str(a["name"]), Email: str(a["email"])})
		default:
			if s := str(a); s != "" {
				out = append(out, Attendee{Name: s})
			}
		}
	}
	return out
}

func str(v any) string {
	switch s := v.(type) {
	case nil:
		return ""
	case string:
		return s
	default:
		return fmt.Sprint(s)
	}
}

func firstStr(m map[string]any, keys ...string) string {
	for _, key := range keys {
		if s := strings.TrimSpace(str(m[key])); s != "" {
			return s
		}
	}
	return ""
}
