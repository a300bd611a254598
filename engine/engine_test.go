package engine

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mailmind-ai/mailmind/action"
	"github.com/mailmind-ai/mailmind/core"
	"github.com/mailmind-ai/mailmind/exchange"
	"github.com/mailmind-ai/mailmind/model"
	"github.com/mailmind-ai/mailmind/session"
	"github.com/mailmind-ai/mailmind/workflow"
)

func testEngine(opts ...Option) (*Engine, *model.MockModel) {
	now := time.Date(2025, 3, 10, 8, 0, 0, 0, time.UTC)
	src := exchange.NewMockSource(exchange.SampleDataset(now), exchange.WithClock(func() time.Time { return now }))
	reg := action.NewRegistry(exchange.Tools(src))
	workflow.Register(reg)

	mock := model.NewMockModel("mock-model", "mock")
	return New(mock, reg, exchange.ToolSpecs(), opts...), mock
}

func TestChat_PlainAnswer(t *testing.T) {
	history := session.NewLog(10)
	eng, _ := testEngine(WithHistory(history))

	resp, err := eng.Chat(context.Background(), "hello")
	require.NoError(t, err)
	assert.Equal(t, "Mock response to: hello", resp.Text)
	assert.Empty(t, resp.ToolsUsed)

	require.Equal(t, 1, history.Len())
	last, _ := history.Last()
	assert.Equal(t, "hello", last.Query)
	assert.Equal(t, "mock", last.Provider)
}

func TestChat_ToolCallLoop(t *testing.T) {
	eng, mock := testEngine()
	mock.Queue(
		model.Reply{ToolCalls: []model.ToolCall{{ID: "c1", Name: "whoami"}}},
		model.Reply{Text: "You are Alex Morgan.", FinishReason: "stop"},
	)

	resp, err := eng.Chat(context.Background(), "who am I?")
	require.NoError(t, err)
	assert.Equal(t, "You are Alex Morgan.", resp.Text)
	assert.Equal(t, []string{"whoami"}, resp.ToolsUsed)

	// Second model turn sees the assistant's call and the tool result.
	requests := mock.Requests()
	require.Len(t, requests, 2)
	msgs := requests[1].Messages
	require.Len(t, msgs, 3)
	assert.Equal(t, "assistant", msgs[1].Role)
	assert.Equal(t, "tool", msgs[2].Role)
	assert.Equal(t, "c1", msgs[2].ToolCallID)
	assert.Contains(t, msgs[2].Text, "Alex Morgan")
}

func TestChat_UnknownToolFedBack(t *testing.T) {
	eng, mock := testEngine()
	mock.Queue(
		model.Reply{ToolCalls: []model.ToolCall{{ID: "c1", Name: "teleport"}}},
		model.Reply{Text: "That tool does not exist.", FinishReason: "stop"},
	)

	resp, err := eng.Chat(context.Background(), "teleport me")
	require.NoError(t, err)
	assert.Equal(t, "That tool does not exist.", resp.Text)

	msgs := mock.Requests()[1].Messages
	assert.Contains(t, msgs[2].Text, "unknown tool: teleport")
}

func TestChat_IterationLimit(t *testing.T) {
	eng, mock := testEngine(WithMaxIterations(2))
	mock.Queue(
		model.Reply{ToolCalls: []model.ToolCall{{ID: "c1", Name: "whoami"}}},
		model.Reply{ToolCalls: []model.ToolCall{{ID: "c2", Name: "whoami"}}},
	)

	_, err := eng.Chat(context.Background(), "loop forever")
	require.Error(t, err)
	var limitErr *IterationLimitError
	require.ErrorAs(t, err, &limitErr)
	assert.Equal(t, 2, limitErr.Limit)
}

func TestChat_RunCommandDispatchesAction(t *testing.T) {
	history := session.NewLog(10)
	eng, mock := testEngine(WithHistory(history))

	resp, err := eng.Chat(context.Background(), "/run inbox_triage")
	require.NoError(t, err)
	require.NotNil(t, resp.ActionResult)
	assert.Equal(t, core.StatusSuccess, resp.ActionResult.Status)
	assert.Contains(t, resp.Text, "recommendation")
	assert.Empty(t, mock.Requests(), "action commands never reach the model")

	last, _ := history.Last()
	assert.Equal(t, "/run inbox_triage", last.Query)
	assert.NotNil(t, last.ActionResult)
}

func TestChat_RunCommandWithVars(t *testing.T) {
	eng, _ := testEngine()

	resp, err := eng.Chat(context.Background(), "/run colleague_lookup colleague_name=priya")
	require.NoError(t, err)
	require.NotNil(t, resp.ActionResult)
	assert.Equal(t, core.StatusSuccess, resp.ActionResult.Status)
	assert.Contains(t, resp.Text, "Priya Patel")
}

func TestChat_RunUnknownAction(t *testing.T) {
	eng, _ := testEngine()

	_, err := eng.Chat(context.Background(), "/run summon_demon")
	require.Error(t, err)
	var unknownErr *core.UnknownActionError
	assert.ErrorAs(t, err, &unknownErr)
}

func TestRunAction_BriefingPrintReady(t *testing.T) {
	eng, _ := testEngine()

	resp, err := eng.RunAction("daily_briefing", nil)
	require.NoError(t, err)
	assert.Contains(t, resp.Text, "DAILY BRIEFING - 2025-03-10")
	assert.Contains(t, resp.ToolsUsed, "get_todays_meetings")
}

func TestRunAction_FailedActionRendered(t *testing.T) {
	eng, _ := testEngine()

	resp, err := eng.RunAction("get_email_thread", nil)
	require.NoError(t, err)
	require.NotNil(t, resp.ActionResult)
	assert.Equal(t, core.StatusFailed, resp.ActionResult.Status)
	assert.Contains(t, resp.Text, "email_id required in context")
}

func TestParseCommand(t *testing.T) {
	name, vars, ok := parseCommand("/run meeting_prep meeting_id=budget")
	require.True(t, ok)
	assert.Equal(t, "meeting_prep", name)
	assert.Equal(t, map[string]string{"meeting_id": "budget"}, vars)

	_, _, ok = parseCommand("what is on my calendar?")
	assert.False(t, ok)

	_, _, ok = parseCommand("/run")
	assert.False(t, ok)
}

func TestBuildSystemPrompt(t *testing.T) {
	prompt := BuildSystemPrompt("Alex Morgan", "alex.morgan@contoso.com", "Data Platform")
	assert.Contains(t, prompt, "Alex Morgan")
	assert.Contains(t, prompt, "Data Platform")

	anonymous := BuildSystemPrompt("", "", "")
	assert.NotContains(t, anonymous, "The user is:")
}

func TestChat_ContextCancellation(t *testing.T) {
	eng, _ := testEngine()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := eng.Chat(ctx, "hello")
	require.Error(t, err)
	assert.True(t, errors.Is(err, context.Canceled))
}
