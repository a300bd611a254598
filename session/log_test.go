package session

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLog_AppendStampsAndRetains(t *testing.T) {
	log := NewLog(10)

	rec := log.Append(Interaction{Query: "hello", Response: "hi", Model: "mock"})
	assert.Len(t, rec.ID, 8)
	assert.False(t, rec.Timestamp.IsZero())

	require.Equal(t, 1, log.Len())
	got, ok := log.Get(rec.ID)
	require.True(t, ok)
	assert.Equal(t, "hello", got.Query)

	last, ok := log.Last()
	require.True(t, ok)
	assert.Equal(t, rec.ID, last.ID)
}

func TestLog_EvictsOldestAtCapacity(t *testing.T) {
	log := NewLog(3)
	for i := 0; i < 5; i++ {
		log.Append(Interaction{Query: fmt.Sprintf("q%d", i)})
	}

	entries := log.List()
	require.Len(t, entries, 3)
	assert.Equal(t, "q2", entries[0].Query)
	assert.Equal(t, "q4", entries[2].Query)
}

func TestLog_ClearAndEmptyLookups(t *testing.T) {
	log := NewLog(0)
	log.Append(Interaction{Query: "q"})
	log.Clear()

	assert.Equal(t, 0, log.Len())
	_, ok := log.Last()
	assert.False(t, ok)
	_, ok = log.Get("missing")
	assert.False(t, ok)
}
