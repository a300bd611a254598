package action

import (
	"sync"

	"github.com/mailmind-ai/mailmind/core"
	"github.com/mailmind-ai/mailmind/logging"
)

// Constructor builds a fresh, unbound action instance. The registry invokes
// it once per Execute call so concurrent runs never share per-run state.
type Constructor func() Action

// Info is the discovery metadata for a registered action.
type Info struct {
	Name        string   `json:"name"`
	Description string   `json:"description"`
	Tags        []string `json:"tags"`
}

// Registry maps action names to constructors and executes actions by name
// against a shared, read-only capability map.
//
// Concurrency: registration is expected at process start; Execute may be
// called concurrently afterwards. Each Execute constructs its own action
// instance, so the only shared state is the capability map, which must not
// be mutated after setup.
type Registry struct {
	mu      sync.RWMutex
	order   []string
	actions map[string]Constructor
	tools   core.ToolMap
	logger  logging.Logger
}

// RegistryOption customizes registry construction.
type RegistryOption func(*Registry)

// WithLogger sets the logger handed to every constructed action.
func WithLogger(logger logging.Logger) RegistryOption {
	return func(r *Registry) {
		if logger != nil {
			r.logger = logger
		}
	}
}

// NewRegistry constructs a registry bound to the given capability map.
func NewRegistry(tools core.ToolMap, opts ...RegistryOption) *Registry {
	r := &Registry{
		actions: map[string]Constructor{},
		tools:   tools,
		logger:  logging.NoOpLogger{},
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Register adds an action constructor under the action's name. The last
// registration for a given name wins; an overwrite keeps the original
// registration order position and is logged.
func (r *Registry) Register(ctor Constructor) {
	meta := ctor()

	r.mu.Lock()
	defer r.mu.Unlock()

	name := meta.Name()
	if _, exists := r.actions[name]; exists {
		r.logger.Warn("registry.register.overwrite", "action", name)
	} else {
		r.order = append(r.order, name)
	}
	r.actions[name] = ctor
	r.logger.Debug("registry.register", "action", name)
}

// Execute runs a registered action by name. It constructs a fresh instance,
// binds the registry's capability map and logger, and delegates to Run. The
// only error surfaced here is UnknownActionError; every other failure is
// normalized into the returned ActionResult's status.
func (r *Registry) Execute(name string, ctx *core.ExecutionContext) (*core.ActionResult, error) {
	r.mu.RLock()
	ctor, ok := r.actions[name]
	tools := r.tools
	logger := r.logger
	r.mu.RUnlock()

	if !ok {
		return nil, &core.UnknownActionError{Action: name}
	}

	a := ctor()
	a.BindTools(tools)
	a.SetLogger(logger)

	return Run(a, ctx), nil
}

// List returns metadata for all registered actions in registration order.
func (r *Registry) List() []Info {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]Info, 0, len(r.order))
	for _, name := range r.order {
		meta := r.actions[name]()
		out = append(out, Info{Name: meta.Name(), Description: meta.Description(), Tags: meta.Tags()})
	}
	return out
}

// FindByTag returns metadata for actions whose tag set contains tag, in
// registration order.
func (r *Registry) FindByTag(tag string) []Info {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var out []Info
	for _, name := range r.order {
		meta := r.actions[name]()
		for _, t := range meta.Tags() {
			if t == tag {
				out = append(out, Info{Name: meta.Name(), Description: meta.Description(), Tags: meta.Tags()})
				break
			}
		}
	}
	return out
}

// Tools returns the capability map shared by all constructed actions.
func (r *Registry) Tools() core.ToolMap {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.tools
}
