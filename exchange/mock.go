package exchange

import (
	"encoding/json"
	"fmt"
	"os"
	"sort"
	"strings"
	"time"

	"github.com/mailmind-ai/mailmind/logging"
)

// timeFormats covers the timestamp layouts observed in exported datasets.
var timeFormats = []string{
	"2006-01-02T15:04:05",
	"01/02/2006 03:04:05 PM",
	"2006-01-02 15:04:05",
}

// MockSource serves a Dataset loaded from a local JSON file. It is read-only
// after construction and safe for concurrent use.
type MockSource struct {
	data   *Dataset
	logger logging.Logger
	now    func() time.Time
}

// MockOption customizes MockSource construction.
type MockOption func(*MockSource)

// WithLogger sets the source's logger.
func WithLogger(logger logging.Logger) MockOption {
	return func(s *MockSource) {
		if logger != nil {
			s.logger = logger
		}
	}
}

// WithClock overrides the time source, pinning "today" in tests.
func WithClock(now func() time.Time) MockOption {
	return func(s *MockSource) {
		if now != nil {
			s.now = now
		}
	}
}

// NewMockSource constructs a source over an in-memory dataset.
func NewMockSource(data *Dataset, opts ...MockOption) *MockSource {
	if data == nil {
		data = &Dataset{}
	}
	s := &MockSource{data: data, logger: logging.NoOpLogger{}, now: time.Now}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// LoadMockSource reads a dataset JSON file and constructs a source over it.
func LoadMockSource(path string, opts ...MockOption) (*MockSource, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read dataset: %w", err)
	}
	// Exported files occasionally carry a UTF-8 BOM.
	raw = []byte(strings.TrimPrefix(string(raw), "\ufeff"))

	var data Dataset
	if err := json.Unmarshal(raw, &data); err != nil {
		return nil, fmt.Errorf("parse dataset %s: %w", path, err)
	}
	src := NewMockSource(&data, opts...)
	src.logger.Info("exchange.dataset.loaded", "path", path, "users", len(data.Users), "emails", len(data.Emails), "meetings", len(data.Meetings))
	return src, nil
}

// Me returns the protagonist, preferring the full directory entry when the
// protagonist id resolves in Users.
func (s *MockSource) Me() User {
	if s.data.Protagonist.ID != "" {
		if u, ok := s.data.Users[s.data.Protagonist.ID]; ok {
			return u
		}
	}
	return s.data.Protagonist
}

// UnreadCount returns the number of unread inbox emails.
func (s *MockSource) UnreadCount() int {
	count := 0
	for _, e := range s.data.Emails {
		if e.FolderPath == "Inbox" && !e.IsRead {
			count++
		}
	}
	return count
}

// Inbox returns inbox emails newest first, optionally unread only.
func (s *MockSource) Inbox(limit int, unreadOnly bool) []Email {
	var emails []Email
	for _, e := range s.data.Emails {
		if e.FolderPath != "Inbox" {
			continue
		}
		if unreadOnly && e.IsRead {
			continue
		}
		emails = append(emails, e)
	}
	sortEmailsNewestFirst(emails)
	return capEmails(emails, limit)
}

// Sent returns sent emails newest first.
func (s *MockSource) Sent(limit int) []Email {
	var emails []Email
	for _, e := range s.data.Emails {
		if e.FolderPath == "Sent Items" {
			emails = append(emails, e)
		}
	}
	sortEmailsNewestFirst(emails)
	return capEmails(emails, limit)
}

// EmailByID returns a single email and whether it was found.
func (s *MockSource) EmailByID(id string) (Email, bool) {
	e, ok := s.data.Emails[id]
	return e, ok
}

// Today returns the source's current date as YYYY-MM-DD.
func (s *MockSource) Today() string {
	return s.now().Format("2006-01-02")
}

// TodaysMeetings returns meetings starting today, ordered by start time.
func (s *MockSource) TodaysMeetings() []Meeting {
	today := s.Today()
	var meetings []Meeting
	for _, m := range s.data.Meetings {
		start, ok := parseTime(m.StartTime)
		if ok && start.Format("2006-01-02") == today {
			meetings = append(meetings, m)
		}
	}
	sortMeetingsByStart(meetings)
	return meetings
}

// Calendar returns meetings within the next days, ordered by start time.
func (s *MockSource) Calendar(days int) []Meeting {
	now := s.now()
	end := now.AddDate(0, 0, days)
	var meetings []Meeting
	for _, m := range s.data.Meetings {
		start, ok := parseTime(m.StartTime)
		if ok && !start.Before(now) && !start.After(end) {
			meetings = append(meetings, m)
		}
	}
	sortMeetingsByStart(meetings)
	return meetings
}

// SearchEmails returns emails matching the query as a case-insensitive
// substring of subject, body or sender, newest first. This is the fallback
// behavior used when no semantic index is configured.
func (s *MockSource) SearchEmails(query string, limit int) []Email {
	q := strings.ToLower(query)
	var emails []Email
	for _, e := range s.data.Emails {
		haystack := strings.ToLower(e.Subject + " " + e.Body + " " + e.FromName + " " + e.From)
		if strings.Contains(haystack, q) {
			emails = append(emails, e)
		}
	}
	sortEmailsNewestFirst(emails)
	return capEmails(emails, limit)
}

// SearchMeetings returns meetings matching the query as a case-insensitive
// substring of subject, body or organizer, ordered by start time.
func (s *MockSource) SearchMeetings(query string, limit int) []Meeting {
	q := strings.ToLower(query)
	var meetings []Meeting
	for _, m := range s.data.Meetings {
		haystack := strings.ToLower(m.Subject + " " + m.Body + " " + m.OrganizerName + " " + m.Organizer)
		if strings.Contains(haystack, q) {
			meetings = append(meetings, m)
		}
	}
	sortMeetingsByStart(meetings)
	if limit > 0 && len(meetings) > limit {
		meetings = meetings[:limit]
	}
	return meetings
}

// FindColleague looks a colleague up by name, email or department, skipping
// the protagonist. The alphabetically first display-name match wins so the
// lookup is deterministic across map iteration orders.
func (s *MockSource) FindColleague(query string) (User, bool) {
	q := strings.ToLower(query)
	myEmail := strings.ToLower(s.Me().Email)

	var matches []User
	for _, u := range s.data.Users {
		if strings.ToLower(u.Email) == myEmail {
			continue
		}
		if strings.Contains(strings.ToLower(u.DisplayName), q) ||
			strings.Contains(strings.ToLower(u.Email), q) ||
			strings.Contains(strings.ToLower(u.Department), q) {
			matches = append(matches, u)
		}
	}
	if len(matches) == 0 {
		return User{}, false
	}
	sort.Slice(matches, func(i, j int) bool { return matches[i].DisplayName < matches[j].DisplayName })
	return matches[0], true
}

// DisplayName resolves an email address to a directory display name.
func (s *MockSource) DisplayName(address string) string {
	needle := strings.ToLower(address)
	for _, u := range s.data.Users {
		if strings.ToLower(u.Email) == needle {
			return u.DisplayName
		}
	}
	return address
}

func sortEmailsNewestFirst(emails []Email) {
	sort.SliceStable(emails, func(i, j int) bool { return emails[i].ReceivedDate > emails[j].ReceivedDate })
}

func sortMeetingsByStart(meetings []Meeting) {
	sort.SliceStable(meetings, func(i, j int) bool { return meetings[i].StartTime < meetings[j].StartTime })
}

func capEmails(emails []Email, limit int) []Email {
	if limit > 0 && len(emails) > limit {
		return emails[:limit]
	}
	return emails
}

func parseTime(s string) (time.Time, bool) {
	if s == "" {
		return time.Time{}, false
	}
	for _, layout := range timeFormats {
		if t, err := time.Parse(layout, s); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}
