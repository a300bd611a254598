package exchange

// User is a directory entry in the dataset. Field names mirror the upstream
// Exchange export schema.
type User struct {
	ID          string `json:"Id"`
	DisplayName string `json:"DisplayName"`
	Email       string `json:"Email"`
	Department  string `json:"Department"`
	JobTitle    string `json:"JobTitle"`
}

// Email is a stored mail item. FolderPath distinguishes inbox from sent.
type Email struct {
	ID             string `json:"Id"`
	Subject        string `json:"Subject"`
	From           string `json:"From"`
	FromName       string `json:"FromName"`
	To             string `json:"To"`
	ToName         string `json:"ToName"`
	Body           string `json:"Body"`
	ReceivedDate   string `json:"ReceivedDate"`
	FolderPath     string `json:"FolderPath"`
	Importance     string `json:"Importance"`
	IsRead         bool   `json:"IsRead"`
	HasAttachments bool   `json:"HasAttachments"`
}

// Meeting is a stored calendar item. Attendees carries the invitees' email
// addresses; display names resolve through the user directory.
type Meeting struct {
	ID            string   `json:"Id"`
	Subject       string   `json:"Subject"`
	Organizer     string   `json:"Organizer"`
	OrganizerName string   `json:"OrganizerName"`
	StartTime     string   `json:"StartTime"`
	EndTime       string   `json:"EndTime"`
	Location      string   `json:"Location"`
	Body          string   `json:"Body"`
	Attendees     []string `json:"Attendees"`
}

// Dataset is the on-disk JSON shape served by the mock source.
type Dataset struct {
	Protagonist User               `json:"Protagonist"`
	Users       map[string]User    `json:"Users"`
	Emails      map[string]Email   `json:"Emails"`
	Meetings    map[string]Meeting `json:"Meetings"`
}

// Source is the read-only data contract the tool layer consumes. All methods
// degrade gracefully: missing data yields empty results, never an error,
// except where a lookup explicitly misses.
type Source interface {
	// Me returns the protagonist's directory entry.
	Me() User

	// UnreadCount returns the number of unread inbox emails.
	UnreadCount() int

	// Inbox returns inbox emails newest first, optionally unread only.
	Inbox(limit int, unreadOnly bool) []Email

	// Sent returns sent emails newest first.
	Sent(limit int) []Email

	// EmailByID returns a single email and whether it was found.
	EmailByID(id string) (Email, bool)

	// Today returns the source's current date as YYYY-MM-DD.
	Today() string

	// TodaysMeetings returns meetings starting today, ordered by start time.
	TodaysMeetings() []Meeting

	// Calendar returns meetings within the next days, ordered by start time.
	Calendar(days int) []Meeting

	// SearchEmails returns emails whose subject, body or sender contains the
	// query (case-insensitive substring match).
	SearchEmails(query string, limit int) []Email

	// SearchMeetings returns meetings whose subject, body or organizer
	// contains the query (case-insensitive substring match).
	SearchMeetings(query string, limit int) []Meeting

	// FindColleague looks a colleague up by name, email or department.
	FindColleague(query string) (User, bool)

	// DisplayName resolves an email address to a directory display name,
	// falling back to the address itself.
	DisplayName(address string) string
}
