// Package mailmind provides a high-level façade over the assistant's
// components: the mock Exchange data source, the action registry, the
// interaction history and the model-driven chat engine. Most applications
// interact with this package by:
//  1. Creating an Assistant via New() with a dataset (or the built-in sample)
//  2. Running actions directly (RunAction) or through chat (Chat)
//  3. Inspecting History() for the session's interaction log
//
// The façade wires the built-in workflow actions automatically; the
// underlying packages stay usable on their own for finer control.
package mailmind

import (
	"context"
	"time"

	"github.com/mailmind-ai/mailmind/action"
	"github.com/mailmind-ai/mailmind/core"
	"github.com/mailmind-ai/mailmind/engine"
	"github.com/mailmind-ai/mailmind/exchange"
	"github.com/mailmind-ai/mailmind/logging"
	"github.com/mailmind-ai/mailmind/model"
	"github.com/mailmind-ai/mailmind/session"
	"github.com/mailmind-ai/mailmind/workflow"
)

// Options configures the Assistant instance.
type Options struct {
	// Source serves the email/calendar data. Defaults to the built-in
	// sample dataset when nil.
	Source *exchange.MockSource

	// Model drives the chat surface. Defaults to a MockModel; action
	// execution works without any model.
	Model model.Model

	// MaxIterations bounds the chat engine's per-turn tool-call loop.
	MaxIterations int

	// HistorySize bounds the in-memory interaction log.
	HistorySize int

	// Logger defaults to a NoOp logger if nil.
	Logger logging.Logger
}

// Assistant is the high-level façade aggregating the data source, the action
// registry and the chat engine.
type Assistant struct {
	source   *exchange.MockSource
	registry *action.Registry
	engine   *engine.Engine
	history  *session.Log
	logger   logging.Logger
}

// New creates an Assistant with optional overrides. Any unset component gets
// a safe in-memory default, so New() with no options yields a fully working
// assistant over the sample dataset.
func New(optFns ...func(o *Options)) *Assistant {
	opts := Options{Logger: logging.NoOpLogger{}}
	for _, fn := range optFns {
		fn(&opts)
	}
	if opts.Logger == nil {
		opts.Logger = logging.NoOpLogger{}
	}
	if opts.Source == nil {
		opts.Source = exchange.NewMockSource(exchange.SampleDataset(time.Now()), exchange.WithLogger(opts.Logger))
	}
	if opts.Model == nil {
		opts.Model = model.NewMockModel("mock-model", "mock")
	}

	registry := action.NewRegistry(exchange.Tools(opts.Source), action.WithLogger(opts.Logger))
	workflow.Register(registry)

	history := session.NewLog(opts.HistorySize)

	me := opts.Source.Me()
	eng := engine.New(opts.Model, registry, exchange.ToolSpecs(),
		engine.WithSystemPrompt(engine.BuildSystemPrompt(me.DisplayName, me.Email, me.Department)),
		engine.WithMaxIterations(opts.MaxIterations),
		engine.WithLogger(opts.Logger),
		engine.WithHistory(history),
	)

	return &Assistant{
		source:   opts.Source,
		registry: registry,
		engine:   eng,
		history:  history,
		logger:   opts.Logger,
	}
}

// Chat processes one user turn through the engine.
func (a *Assistant) Chat(ctx context.Context, query string) (*engine.Response, error) {
	return a.engine.Chat(ctx, query)
}

// RunAction executes a registered action by name with optional context
// variables, bypassing the model.
func (a *Assistant) RunAction(name string, vars map[string]string) (*core.ActionResult, error) {
	resp, err := a.engine.RunAction(name, vars)
	if err != nil {
		return nil, err
	}
	return resp.ActionResult, nil
}

// Actions returns metadata for all registered actions.
func (a *Assistant) Actions() []action.Info {
	return a.registry.List()
}

// Registry exposes the action registry for custom registrations.
func (a *Assistant) Registry() *action.Registry {
	return a.registry
}

// Source exposes the underlying data source.
func (a *Assistant) Source() *exchange.MockSource {
	return a.source
}

// History returns the session's interaction log.
func (a *Assistant) History() *session.Log {
	return a.history
}
