package workflow

import (
	"strings"

	"github.com/mailmind-ai/mailmind/action"
	"github.com/mailmind-ai/mailmind/core"
)

var threadPrefixes = []string{"Re: ", "RE: ", "Fwd: ", "FWD: ", "Fw: "}

// EmailThreadAction reconstructs the conversation around one email: it reads
// the email by id, strips reply/forward prefixes from the subject and
// searches for the related messages.
type EmailThreadAction struct {
	action.Base
}

// NewEmailThreadAction constructs the get_email_thread action.
func NewEmailThreadAction() action.Action {
	return &EmailThreadAction{
		Base: action.NewBase(
			"get_email_thread",
			"Get full email thread for a given email",
			"email", "search",
		),
	}
}

func (a *EmailThreadAction) Execute(ctx *core.ExecutionContext) (*core.ActionResult, error) {
	emailID := ctx.GetString("email_id")
	if emailID == "" {
		return a.Fail("email_id required in context"), nil
	}

	email, err := a.CallToolMap("read_email", map[string]any{"email_id": emailID})
	if err != nil {
		return nil, err
	}
	if mapStr(email, "error") != "" {
		return a.Failf("Email not found: %s", emailID), nil
	}
	ctx.Set("original_email", email)

	subject := mapStr(email, "subject")
	cleaned := subject
	for _, prefix := range threadPrefixes {
		cleaned = strings.ReplaceAll(cleaned, prefix, "")
	}

	related, err := a.CallToolMap("search_emails", map[string]any{"query": cleaned, "limit": 10})
	if err != nil {
		return nil, err
	}

	return a.Complete(map[string]any{
		"original":     email,
		"subject":      subject,
		"thread_count": mapInt(related, "count"),
		"messages":     mapList(related, "results"),
	}), nil
}
