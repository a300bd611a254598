package briefing

import (
	"fmt"
	"strings"
)

// FormatPrintable renders a briefing document as printable text: a header,
// the conflict block first when any conflicts exist, then one section per
// meeting with schedule details, key collaborators, recent findings and
// topic keywords.
func FormatPrintable(doc Document) string {
	rule := strings.Repeat("=", 60)
	divider := strings.Repeat("-", 60)

	lines := []string{
		rule,
		fmt.Sprintf("DAILY BRIEFING - %s", doc.Date),
		fmt.Sprintf("Prepared for: %s", orUnknown(doc.User)),
		rule,
		"",
	}

	if len(doc.Conflicts) > 0 {
		lines = append(lines, "SCHEDULING CONFLICTS DETECTED:", "")
		for _, conflict := range doc.Conflicts {
			lines = append(lines,
				fmt.Sprintf("  !! %s vs %s", clip(conflict.MeetingA, 25), clip(conflict.MeetingB, 25)),
				fmt.Sprintf("     Both at: %s", conflict.TimeA))
			lines = append(lines, delegateLines(conflict.MeetingA, conflict.AlternatesA)...)
			lines = append(lines, delegateLines(conflict.MeetingB, conflict.AlternatesB)...)
			lines = append(lines, "")
		}
		lines = append(lines, divider, "")
	}

	for i, brief := range doc.Briefings {
		meeting := brief.Meeting
		location := meeting.Location
		if location == "" {
			location = "Not specified"
		}
		attendees := meeting.Attendees
		suffix := ""
		if len(attendees) > 5 {
			attendees = attendees[:5]
			suffix = "..."
		}
		lines = append(lines,
			fmt.Sprintf("--- MEETING %d: %s ---", i+1, clip(meeting.Subject, 50)),
			fmt.Sprintf("Time: %s", meeting.Time),
			fmt.Sprintf("Organizer: %s", meeting.Organizer),
			fmt.Sprintf("Attendees: %s%s", strings.Join(attendees, ", "), suffix),
			fmt.Sprintf("Location: %s", location),
			"")

		if len(brief.KeyCollaborators) > 0 {
			lines = append(lines, "KEY COLLABORATORS (recent email activity):")
			for _, collab := range capCollaborators(brief.KeyCollaborators, 3) {
				lines = append(lines, fmt.Sprintf("  * %s (%d emails)", collab.Name, collab.EmailCount))
			}
			lines = append(lines, "")
		}

		if len(brief.RelatedFindings) > 0 {
			lines = append(lines, "RECENT RELEVANT CONVERSATIONS:")
			for _, finding := range capFindings(brief.RelatedFindings, 3) {
				lines = append(lines,
					fmt.Sprintf("  > %s", clip(finding.Subject, 45)),
					fmt.Sprintf("    From: %s | %s", finding.From, finding.Date),
					fmt.Sprintf("    %s", clip(finding.Preview, 100)),
					"")
			}
		}

		if len(brief.AgendaKeywords) > 0 {
			topics := brief.AgendaKeywords
			if len(topics) > 6 {
				topics = topics[:6]
			}
			lines = append(lines, fmt.Sprintf("TOPICS: %s", strings.Join(topics, ", ")))
		}

		lines = append(lines, "", divider, "")
	}

	lines = append(lines, "", "Generated for informed meeting participation.", rule)
	return strings.Join(lines, "\n")
}

func delegateLines(subject string, delegates []DelegateCandidate) []string {
	if len(delegates) == 0 {
		return nil
	}
	out := []string{fmt.Sprintf("     Possible delegates for '%s':", clip(subject, 20))}
	if len(delegates) > 2 {
		delegates = delegates[:2]
	}
	for _, delegate := range delegates {
		topics := delegate.Topics
		if len(topics) > 2 {
			topics = topics[:2]
		}
		out = append(out, fmt.Sprintf("       * %s (discussed: %s)", delegate.Name, strings.Join(topics, ", ")))
	}
	return out
}

func capCollaborators(collabs []Collaborator, n int) []Collaborator {
	if len(collabs) > n {
		return collabs[:n]
	}
	return collabs
}

func capFindings(findings []Finding, n int) []Finding {
	if len(findings) > n {
		return findings[:n]
	}
	return findings
}

func clip(s string, limit int) string {
	if len(s) <= limit {
		return s
	}
	return s[:limit]
}
