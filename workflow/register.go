package workflow

import "github.com/mailmind-ai/mailmind/action"

// Register wires every built-in action into the registry, in the order the
// CLI and engine list them.
func Register(reg *action.Registry) {
	reg.Register(NewDailySummaryAction)
	reg.Register(NewEmailThreadAction)
	reg.Register(NewMeetingPrepAction)
	reg.Register(NewColleagueLookupAction)
	reg.Register(NewInboxTriageAction)
	reg.Register(NewDailyBriefingAction)
}
