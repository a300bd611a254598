package session

import (
	"sync"
	"time"

	"github.com/mailmind-ai/mailmind/core"
)

// DefaultCapacity bounds the interaction log when no capacity is given.
const DefaultCapacity = 200

// Interaction is one completed exchange: the user's query, the assistant's
// response and, when an action ran, its full result.
type Interaction struct {
	ID           string             `json:"id"`
	Timestamp    time.Time          `json:"timestamp"`
	Query        string             `json:"query"`
	Response     string             `json:"response"`
	Model        string             `json:"model,omitempty"`
	Provider     string             `json:"provider,omitempty"`
	ToolsUsed    []string           `json:"tools_used,omitempty"`
	ActionResult *core.ActionResult `json:"action_result,omitempty"`
}

// Log is a bounded, append-only in-memory interaction history. Safe for
// concurrent use; the oldest records are evicted once capacity is reached.
type Log struct {
	mu       sync.RWMutex
	capacity int
	entries  []Interaction
}

// NewLog constructs an empty log. A non-positive capacity falls back to
// DefaultCapacity.
func NewLog(capacity int) *Log {
	if capacity <= 0 {
		capacity = DefaultCapacity
	}
	return &Log{capacity: capacity}
}

// Append records an interaction, stamping its id and timestamp, and returns
// the stored record.
func (l *Log) Append(rec Interaction) Interaction {
	rec.ID = core.ShortID()
	rec.Timestamp = time.Now().UTC()

	l.mu.Lock()
	defer l.mu.Unlock()
	l.entries = append(l.entries, rec)
	if len(l.entries) > l.capacity {
		l.entries = l.entries[len(l.entries)-l.capacity:]
	}
	return rec
}

// List returns a copy of all retained interactions, oldest first.
func (l *Log) List() []Interaction {
	l.mu.RLock()
	defer l.mu.RUnlock()
	out := make([]Interaction, len(l.entries))
	copy(out, l.entries)
	return out
}

// Get returns the interaction with the given id.
func (l *Log) Get(id string) (Interaction, bool) {
	l.mu.RLock()
	defer l.mu.RUnlock()
	for _, rec := range l.entries {
		if rec.ID == id {
			return rec, true
		}
	}
	return Interaction{}, false
}

// Last returns the most recent interaction.
func (l *Log) Last() (Interaction, bool) {
	l.mu.RLock()
	defer l.mu.RUnlock()
	if len(l.entries) == 0 {
		return Interaction{}, false
	}
	return l.entries[len(l.entries)-1], true
}

// Len returns the number of retained interactions.
func (l *Log) Len() int {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return len(l.entries)
}

// Clear drops every retained interaction.
func (l *Log) Clear() {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.entries = nil
}
