package briefing

import (
	"sort"
	"strings"
)

const (
	maxDelegates      = 3
	maxDelegateTopics = 3
)

// Overlaps reports whether two meetings collide. The half-open intervals
// [start, end) overlap iff startA < endB and startB < endA; a shared boundary
// is not a conflict. ISO-style timestamps make plain string comparison
// correct here. When either end time is missing the check degrades to exact
// start-time equality — a documented heuristic, not a general interval test.
func Overlaps(a, b Meeting) bool {
	if a.Start == "" || b.Start == "" {
		return false
	}
	if a.End != "" && b.End != "" {
		return a.Start < b.End && b.Start < a.End
	}
	return a.Start == b.Start
}

// DetectConflicts scans every unordered meeting pair (i<j in input order)
// for overlap and attaches ranked delegate suggestions for each side,
// computed independently from the email corpus. Conflicts are reported in
// pairwise-scan order: by the first meeting's position, then the second's.
func DetectConflicts(meetings []Meeting, emails []EmailRecord) []Conflict {
	var conflicts []Conflict
	for i, a := range meetings {
		for _, b := range meetings[i+1:] {
			if !Overlaps(a, b) {
				continue
			}
			conflicts = append(conflicts, Conflict{
				MeetingA:    orUnknown(a.Subject),
				MeetingB:    orUnknown(b.Subject),
				TimeA:       a.Start,
				TimeB:       b.Start,
				AlternatesA: FindAlternatives(a, emails, a.Attendees),
				AlternatesB: FindAlternatives(b, emails, b.Attendees),
			})
		}
	}
	return conflicts
}

// FindAlternatives proposes up to three delegates for a meeting: people whose
// recent email traffic matches the meeting's extracted keywords and who are
// not already on the invite.
//
// Scoring: for every email in the corpus, count how many keywords appear as
// substrings of its lowercased subject+body; zero-match emails are skipped.
// The match count accrues to the sender (by name, case-insensitively
// excluded when already attending); scores only grow within one pass.
// Candidates are ranked score-descending, ties broken by first-seen order in
// the corpus.
func FindAlternatives(meeting Meeting, emails []EmailRecord, exclude []Attendee) []DelegateCandidate {
	keywords := ExtractKeywords(meeting.Subject, meeting.Body)
	if len(keywords) == 0 {
		return nil
	}

	excluded := map[string]struct{}{}
	for _, a := range exclude {
		if a.Name != "" {
			excluded[strings.ToLower(a.Name)] = struct{}{}
		}
	}

	type candidate struct {
		DelegateCandidate
		topics map[string]struct{}
	}
	byName := map[string]*candidate{}
	var order []*candidate

	for _, email := range emails {
		text := strings.ToLower(email.Subject + " " + email.Body)

		var matched []string
		for _, kw := range keywords {
			if strings.Contains(text, kw) {
				matched = append(matched, kw)
			}
		}
		if len(matched) == 0 {
			continue
		}

		sender := email.FromName
		if sender == "" {
			continue
		}
		if _, skip := excluded[strings.ToLower(sender)]; skip {
			continue
		}

		cand, ok := byName[sender]
		if !ok {
			cand = &candidate{
				DelegateCandidate: DelegateCandidate{Name: sender, Email: email.FromEmail},
				topics:            map[string]struct{}{},
			}
			byName[sender] = cand
			order = append(order, cand)
		}
		cand.Score += len(matched)
		for _, kw := range matched {
			if _, dup := cand.topics[kw]; dup {
				continue
			}
			cand.topics[kw] = struct{}{}
			// Topics keep keyword-extraction order so the capped report is
			// deterministic.
			cand.Topics = append(cand.Topics, kw)
		}
	}

	sort.SliceStable(order, func(i, j int) bool { return order[i].Score > order[j].Score })
	if len(order) > maxDelegates {
		order = order[:maxDelegates]
	}

	out := make([]DelegateCandidate, len(order))
	for i, cand := range order {
		dc := cand.DelegateCandidate
		if len(dc.Topics) > maxDelegateTopics {
			dc.Topics = dc.Topics[:maxDelegateTopics]
		}
		out[i] = dc
	}
	return out
}

func orUnknown(s string) string {
	if s == "" {
		return "Unknown"
	}
	return s
}
