package briefing

import (
	"sort"
	"strings"
)

const (
	maxCollaborators = 5
	maxFindings      = 5
	findingsPoolSize = 10
	previewLength    = 150
)

// AttendeeEmails returns the corpus emails whose sender name or recipient
// list textually contains an attendee's name (case-insensitive), preserving
// corpus order.
func AttendeeEmails(meeting Meeting, emails []EmailRecord) []EmailRecord {
	names := make([]string, 0, len(meeting.Attendees))
	for _, a := range meeting.Attendees {
		if a.Name != "" {
			names = append(names, strings.ToLower(a.Name))
		}
	}
	if len(names) == 0 {
		return nil
	}

	var out []EmailRecord
	for _, email := range emails {
		sender := strings.ToLower(email.FromName)
		involved := false
		for _, name := range names {
			if strings.Contains(sender, name) {
				involved = true
				break
			}
			for _, recipient := range email.Recipients {
				if strings.Contains(strings.ToLower(recipient), name) {
					involved = true
					break
				}
			}
			if involved {
				break
			}
		}
		if involved {
			out = append(out, email)
		}
	}
	return out
}

// KeyCollaborators ranks senders by frequency of appearance across the given
// emails, top five, ties broken by first appearance.
func KeyCollaborators(emails []EmailRecord) []Collaborator {
	counts := map[string]int{}
	var order []string
	for _, email := range emails {
		if email.FromName == "" {
			continue
		}
		if _, seen := counts[email.FromName]; !seen {
			order = append(order, email.FromName)
		}
		counts[email.FromName]++
	}

	out := make([]Collaborator, 0, len(order))
	for _, name := range order {
		out = append(out, Collaborator{Name: name, EmailCount: counts[name]})
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].EmailCount > out[j].EmailCount })
	if len(out) > maxCollaborators {
		out = out[:maxCollaborators]
	}
	return out
}

// Findings extracts up to five recent email snippets from the first ten
// emails, deduplicated by subject, with the body preview truncated to 150
// characters (a "..." suffix marks truncation).
func Findings(emails []EmailRecord) []Finding {
	pool := emails
	if len(pool) > findingsPoolSize {
		pool = pool[:findingsPoolSize]
	}

	var out []Finding
	seen := map[string]struct{}{}
	for _, email := range pool {
		if _, dup := seen[email.Subject]; dup {
			continue
		}
		seen[email.Subject] = struct{}{}
		out = append(out, Finding{
			Subject: email.Subject,
			From:    email.FromName,
			Date:    email.Date,
			Preview: truncate(email.Body, previewLength),
		})
	}
	if len(out) > maxFindings {
		out = out[:maxFindings]
	}
	return out
}

// BuildBrief assembles the per-meeting intelligence block from the meeting's
// attendee-matched emails merged with topic-search results (attendee matches
// first, preserving each list's order).
func BuildBrief(meeting Meeting, attendeeEmails, topicEmails []EmailRecord) Brief {
	merged := make([]EmailRecord, 0, len(attendeeEmails)+len(topicEmails))
	merged = append(merged, attendeeEmails...)
	merged = append(merged, topicEmails...)

	return Brief{
		Meeting: MeetingSummary{
			Subject:   meeting.Subject,
			Time:      meeting.Start,
			Organizer: meeting.Organizer,
			Attendees: meeting.AttendeeNames(),
			Location:  meeting.Location,
		},
		AgendaKeywords:   ExtractKeywords(meeting.Subject, meeting.Body),
		KeyCollaborators: KeyCollaborators(merged),
		RelatedFindings:  Findings(merged),
		EmailCounts: EmailCounts{
			FromAttendees: len(attendeeEmails),
			TopicRelated:  len(topicEmails),
		},
	}
}

func truncate(s string, limit int) string {
	if len(s) <= limit {
		return s
	}
	return s[:limit] + "..."
}
