package matching

import (
	"cx-chat/domain"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
)

func TestSessionRegistry_CreateIndexesBothParticipants(t *testing.T) {
	req := require.New(t)
	registry := NewSessionRegistry()

	// When a customer and an agent get paired
	id := registry.Create(11, 22, time.Now().UTC())

	// Then the session is live and both participants are indexed to it
	session, ok := registry.Get(id)
	req.True(ok)
	req.EqualValues(11, session.CustomerID)
	req.EqualValues(22, session.AgentID)

	got, ok := registry.SessionOf(11)
	req.True(ok)
	req.Equal(id, got)
	got, ok = registry.SessionOf(22)
	req.True(ok)
	req.Equal(id, got)
	req.Equal(1, registry.Count())
}

func TestSessionRegistry_CreateGeneratesUniqueIDs(t *testing.T) {
	req := require.New(t)
	registry := NewSessionRegistry()

	seen := make(map[domain.SessionID]struct{})
	for i := 0; i < 100; i++ {
		id := registry.Create(domain.ParticipantID(i*2), domain.ParticipantID(i*2+1), time.Now().UTC())
		_, duplicate := seen[id]
		req.False(duplicate)
		seen[id] = struct{}{}
	}
}

func TestSessionRegistry_RemoveReturnsSnapshotAndUnindexes(t *testing.T) {
	req := require.New(t)
	registry := NewSessionRegistry()
	id := registry.Create(11, 22, time.Now().UTC())
	registry.Append(id, domain.Message{ID: uuid.New(), Session: id, SenderID: 11, Content: "hello"})

	// When the session is removed
	removed, ok := registry.Remove(id)

	// Then the snapshot carries the accumulated history
	req.True(ok)
	req.Len(removed.Messages, 1)

	// And nothing references the session anymore
	_, ok = registry.Get(id)
	req.False(ok)
	_, ok = registry.SessionOf(11)
	req.False(ok)
	_, ok = registry.SessionOf(22)
	req.False(ok)
	req.Zero(registry.Count())
}

func TestSessionRegistry_RemoveUnknownSessionIsNoOp(t *testing.T) {
	req := require.New(t)
	registry := NewSessionRegistry()

	_, ok := registry.Remove(domain.SessionID(404))
	req.False(ok)
}

func TestSessionRegistry_AppendAfterRemoveIsDropped(t *testing.T) {
	req := require.New(t)
	registry := NewSessionRegistry()
	id := registry.Create(11, 22, time.Now().UTC())

	_, ok := registry.Remove(id)
	req.True(ok)

	// A late message resolves to a drop, not an error
	appended := registry.Append(id, domain.Message{ID: uuid.New(), Session: id, SenderID: 11, Content: "too late"})
	req.False(appended)
}

func TestSessionRegistry_ConcurrentAppendsOnDistinctSessions(t *testing.T) {
	req := require.New(t)
	registry := NewSessionRegistry()
	first := registry.Create(1, 2, time.Now().UTC())
	second := registry.Create(3, 4, time.Now().UTC())

	const perSession = 50
	var wg sync.WaitGroup
	for _, id := range []domain.SessionID{first, second} {
		for i := 0; i < perSession; i++ {
			wg.Add(1)
			go func(target domain.SessionID) {
				defer wg.Done()
				registry.Append(target, domain.Message{ID: uuid.New(), Session: target, Content: "ping"})
			}(id)
		}
	}
	wg.Wait()

	session, ok := registry.Get(first)
	req.True(ok)
	req.Len(session.Messages, perSession)
	session, ok = registry.Get(second)
	req.True(ok)
	req.Len(session.Messages, perSession)
}

func TestSessionRegistry_AppendRacingRemoveNeverCorrupts(t *testing.T) {
	req := require.New(t)
	registry := NewSessionRegistry()
	id := registry.Create(1, 2, time.Now().UTC())

	var wg sync.WaitGroup
	appended := make([]bool, 100)
	for i := 0; i < len(appended); i++ {
		wg.Add(1)
		go func(n int) {
			defer wg.Done()
			appended[n] = registry.Append(id, domain.Message{ID: uuid.New(), Session: id, Content: "race"})
		}(i)
	}
	removed, ok := registry.Remove(id)
	wg.Wait()

	// Every append either landed before the removal and is in the snapshot,
	// or was dropped; the two tallies must agree.
	req.True(ok)
	landed := 0
	for _, in := range appended {
		if in {
			landed++
		}
	}
	req.Equal(landed, len(removed.Messages))

	// Late appends keep being dropped
	req.False(registry.Append(id, domain.Message{ID: uuid.New(), Session: id, Content: "after"}))
}
