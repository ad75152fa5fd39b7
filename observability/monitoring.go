package observability

import (
	"runtime"
	"sync"
	"sync/atomic"
	"time"
)

// Stats aggregates the metrics exposed to diagnostics surfaces.
type Stats struct {
	MatchesMade      uint64 `json:"matches_made"`
	WaitingNotices   uint64 `json:"waiting_notices"`
	MessagesRelayed  uint64 `json:"messages_relayed"`
	MessagesDropped  uint64 `json:"messages_dropped"`
	SessionsEnded    uint64 `json:"sessions_ended"`
	PersistFailures  uint64 `json:"persist_failures"`
	WaitingCustomers int    `json:"waiting_customers"`
	WaitingAgents    int    `json:"waiting_agents"`
	LiveSessions     int    `json:"live_sessions"`
	AllocMemMb       uint64 `json:"alloc_mem_mb"`
	NumGC            uint32 `json:"num_gc"`
}

// Monitor collects real-time counters from the matching pipeline.
// Counters are atomic; the gauge snapshot is refreshed by the health worker.
type Monitor struct {
	mu          sync.RWMutex
	latestStats Stats

	MatchesMade     uint64
	WaitingNotices  uint64
	MessagesRelayed uint64
	MessagesDropped uint64
	SessionsEnded   uint64
	PersistFailures uint64
	LastCheck       time.Time
}

func NewMonitor() *Monitor {
	return &Monitor{LastCheck: time.Now()}
}

func (m *Monitor) IncrMatchesMade()     { atomic.AddUint64(&m.MatchesMade, 1) }
func (m *Monitor) IncrWaitingNotices()  { atomic.AddUint64(&m.WaitingNotices, 1) }
func (m *Monitor) IncrMessagesRelayed() { atomic.AddUint64(&m.MessagesRelayed, 1) }
func (m *Monitor) IncrMessagesDropped() { atomic.AddUint64(&m.MessagesDropped, 1) }
func (m *Monitor) IncrSessionsEnded()   { atomic.AddUint64(&m.SessionsEnded, 1) }
func (m *Monitor) IncrPersistFailures() { atomic.AddUint64(&m.PersistFailures, 1) }

// Refresh recomputes the published snapshot from the counters, the queue
// gauges supplied by the caller, and the Go runtime.
func (m *Monitor) Refresh(waitingCustomers, waitingAgents, liveSessions int) {
	var mem runtime.MemStats
	runtime.ReadMemStats(&mem)

	m.mu.Lock()
	defer m.mu.Unlock()
	m.latestStats = Stats{
		MatchesMade:      atomic.LoadUint64(&m.MatchesMade),
		WaitingNotices:   atomic.LoadUint64(&m.WaitingNotices),
		MessagesRelayed:  atomic.LoadUint64(&m.MessagesRelayed),
		MessagesDropped:  atomic.LoadUint64(&m.MessagesDropped),
		SessionsEnded:    atomic.LoadUint64(&m.SessionsEnded),
		PersistFailures:  atomic.LoadUint64(&m.PersistFailures),
		WaitingCustomers: waitingCustomers,
		WaitingAgents:    waitingAgents,
		LiveSessions:     liveSessions,
		AllocMemMb:       mem.Alloc / 1024 / 1024,
		NumGC:            mem.NumGC,
	}
	m.LastCheck = time.Now()
}

func (m *Monitor) GetLatest() Stats {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.latestStats
}
