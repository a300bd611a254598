package exchange

import "github.com/mailmind-ai/mailmind/model"

// ToolSpecs describes the capability map for model tool calling. The spec
// list and the Tools map must stay in lockstep; Specs carries the JSON Schema
// the providers need, Tools the executable functions.
func ToolSpecs() []model.ToolSpec {
	object := func(properties map[string]any) map[string]any {
		return map[string]any{"type": "object", "properties": properties}
	}
	return []model.ToolSpec{
		{
			Name:        "whoami",
			Description: "Get the current user's profile, unread email count and today's meeting count",
			Parameters:  object(map[string]any{}),
		},
		{
			Name:        "get_inbox",
			Description: "Get inbox emails, newest first",
			Parameters: object(map[string]any{
				"limit":       map[string]any{"type": "integer", "description": "Maximum emails to return (default 10)"},
				"unread_only": map[string]any{"type": "boolean", "description": "Only return unread emails"},
			}),
		},
		{
			Name:        "get_sent",
			Description: "Get sent emails, newest first",
			Parameters: object(map[string]any{
				"limit": map[string]any{"type": "integer", "description": "Maximum emails to return (default 10)"},
			}),
		},
		{
			Name:        "read_email",
			Description: "Read a specific email by its id, including the full body",
			Parameters: object(map[string]any{
				"email_id": map[string]any{"type": "string", "description": "The email id to read"},
			}),
		},
		{
			Name:        "search_emails",
			Description: "Search emails by subject, body or sender",
			Parameters: object(map[string]any{
				"query": map[string]any{"type": "string", "description": "Search text"},
				"limit": map[string]any{"type": "integer", "description": "Maximum results (default 10)"},
			}),
		},
		{
			Name:        "get_todays_meetings",
			Description: "Get today's meetings ordered by start time",
			Parameters:  object(map[string]any{}),
		},
		{
			Name:        "get_calendar",
			Description: "Get upcoming meetings within the next days",
			Parameters: object(map[string]any{
				"days": map[string]any{"type": "integer", "description": "Days ahead to include (default 7)"},
			}),
		},
		{
			Name:        "search_meetings",
			Description: "Search meetings by subject, body or organizer",
			Parameters: object(map[string]any{
				"query": map[string]any{"type": "string", "description": "Search text"},
				"limit": map[string]any{"type": "integer", "description": "Maximum results (default 10)"},
			}),
		},
		{
			Name:        "find_colleague",
			Description: "Find a colleague by name, email or department",
			Parameters: object(map[string]any{
				"name": map[string]any{"type": "string", "description": "Name, email or department to look up"},
			}),
		},
	}
}
