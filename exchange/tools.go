package exchange

import (
	"encoding/json"
	"fmt"

	"github.com/mailmind-ai/mailmind/core"
)

const (
	defaultEmailLimit  = 10
	defaultSearchLimit = 10
	defaultCalendarDay = 7
	previewLength      = 150
)

// Tools adapts a Source into the capability map consumed by the action
// framework. Every capability returns a JSON document string; absent or
// oddly typed arguments fall back to defaults rather than erroring, matching
// the tolerant argument handling models need.
func Tools(src Source) core.ToolMap {
	return core.ToolMap{
		"whoami": func(map[string]any) (any, error) {
			me := src.Me()
			return marshal(map[string]any{
				"name":           me.DisplayName,
				"email":          me.Email,
				"department":     me.Department,
				"title":          me.JobTitle,
				"unread_emails":  src.UnreadCount(),
				"meetings_today": len(src.TodaysMeetings()),
			})
		},

		"get_inbox": func(args map[string]any) (any, error) {
			limit := intArg(args, "limit", defaultEmailLimit)
			unreadOnly := boolArg(args, "unread_only")
			emails := src.Inbox(limit, unreadOnly)
			items := make([]map[string]any, len(emails))
			for i, e := range emails {
				items[i] = inboxEmailJSON(e)
			}
			return marshal(map[string]any{
				"count":        len(items),
				"unread_total": src.UnreadCount(),
				"emails":       items,
			})
		},

		"get_sent": func(args map[string]any) (any, error) {
			limit := intArg(args, "limit", defaultEmailLimit)
			emails := src.Sent(limit)
			items := make([]map[string]any, len(emails))
			for i, e := range emails {
				items[i] = sentEmailJSON(e)
			}
			return marshal(map[string]any{"count": len(items), "emails": items})
		},

		"read_email": func(args map[string]any) (any, error) {
			id := strArg(args, "email_id")
			if id == "" {
				return marshal(map[string]any{"error": "Please provide an email_id"})
			}
			e, ok := src.EmailByID(id)
			if !ok {
				return marshal(map[string]any{"error": fmt.Sprintf("Email not found: %s", id)})
			}
			return marshal(map[string]any{
				"id":              e.ID,
				"subject":         e.Subject,
				"from":            senderJSON(e),
				"to":              orFallback(e.ToName, e.To),
				"date":            e.ReceivedDate,
				"body":            e.Body,
				"importance":      orFallback(e.Importance, "Normal"),
				"has_attachments": e.HasAttachments,
			})
		},

		"search_emails": func(args map[string]any) (any, error) {
			query := strArg(args, "query")
			if query == "" {
				return marshal(map[string]any{"error": "Please provide a search query"})
			}
			limit := intArg(args, "limit", defaultSearchLimit)
			emails := src.SearchEmails(query, limit)
			items := make([]map[string]any, len(emails))
			for i, e := range emails {
				items[i] = inboxEmailJSON(e)
			}
			return marshal(map[string]any{"query": query, "count": len(items), "results": items})
		},

		"get_todays_meetings": func(map[string]any) (any, error) {
			meetings := src.TodaysMeetings()
			items := make([]map[string]any, len(meetings))
			for i, m := range meetings {
				items[i] = meetingJSON(src, m)
			}
			return marshal(map[string]any{"date": src.Today(), "count": len(items), "meetings": items})
		},

		"get_calendar": func(args map[string]any) (any, error) {
			days := intArg(args, "days", defaultCalendarDay)
			meetings := src.Calendar(days)
			items := make([]map[string]any, len(meetings))
			for i, m := range meetings {
				items[i] = meetingJSON(src, m)
			}
			return marshal(map[string]any{"days_ahead": days, "count": len(items), "meetings": items})
		},

		"search_meetings": func(args map[string]any) (any, error) {
			query := strArg(args, "query")
			if query == "" {
				return marshal(map[string]any{"error": "Please provide a search query"})
			}
			limit := intArg(args, "limit", defaultSearchLimit)
			meetings := src.SearchMeetings(query, limit)
			items := make([]map[string]any, len(meetings))
			for i, m := range meetings {
				items[i] = meetingJSON(src, m)
			}
			return marshal(map[string]any{"query": query, "count": len(items), "results": items})
		},

		"find_colleague": func(args map[string]any) (any, error) {
			query := strArg(args, "name")
			if query == "" {
				query = strArg(args, "query")
			}
			if query == "" {
				return marshal(map[string]any{"error": "Please provide a name to search for"})
			}
			u, ok := src.FindColleague(query)
			if !ok {
				return marshal(map[string]any{"error": fmt.Sprintf("No colleague found matching: %s", query)})
			}
			return marshal(map[string]any{
				"name":       u.DisplayName,
				"email":      u.Email,
				"department": u.Department,
				"title":      u.JobTitle,
			})
		},
	}
}

func inboxEmailJSON(e Email) map[string]any {
	return map[string]any{
		"id":          e.ID,
		"subject":     e.Subject,
		"from":        senderJSON(e),
		"to":          []string{orFallback(e.ToName, e.To)},
		"received":    e.ReceivedDate,
		"is_read":     e.IsRead,
		"importance":  orFallback(e.Importance, "Normal"),
		"bodyPreview": preview(e.Body, previewLength),
	}
}

func sentEmailJSON(e Email) map[string]any {
	return map[string]any{
		"id":          e.ID,
		"subject":     e.Subject,
		"to":          []string{orFallback(e.ToName, e.To)},
		"date":        e.ReceivedDate,
		"bodyPreview": preview(e.Body, previewLength),
	}
}

func senderJSON(e Email) map[string]any {
	return map[string]any{
		"name":  orFallback(e.FromName, e.From),
		"email": e.From,
	}
}

func meetingJSON(src Source, m Meeting) map[string]any {
	attendees := make([]map[string]any, len(m.Attendees))
	for i, address := range m.Attendees {
		attendees[i] = map[string]any{"name": src.DisplayName(address), "email": address}
	}
	return map[string]any{
		"id":        m.ID,
		"subject":   m.Subject,
		"start":     m.StartTime,
		"end":       m.EndTime,
		"location":  m.Location,
		"organizer": orFallback(m.OrganizerName, m.Organizer),
		"attendees": attendees,
		"body":      m.Body,
	}
}

func marshal(v any) (any, error) {
	raw, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return nil, err
	}
	return string(raw), nil
}

func preview(body string, limit int) string {
	if len(body) > limit {
		return body[:limit] + "..."
	}
	return body
}

func orFallback(primary, fallback string) string {
	if primary != "" {
		return primary
	}
	return fallback
}

func strArg(args map[string]any, key string) string {
	if v, ok := args[key].(string); ok {
		return v
	}
	return ""
}

func intArg(args map[string]any, key string, fallback int) int {
	switch v := args[key].(type) {
	case int:
		return v
	case float64:
		return int(v)
	default:
		return fallback
	}
}

func boolArg(args map[string]any, key string) bool {
	v, _ := args[key].(bool)
	return v
}
