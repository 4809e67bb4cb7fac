package diag

import (
	"sync"

	"github.com/eapache/queue"
)

// History keeps the most recent reports, dropping the oldest once the limit
// is reached. It never aborts.
type History struct {
	mu    sync.Mutex
	q     *queue.Queue
	limit int
	total uint64
}

// NewHistory creates a history holding at most limit reports.
func NewHistory(limit int) *History {
	if limit <= 0 {
		limit = 1
	}
	return &History{q: queue.New(), limit: limit}
}

// Report implements Sink.
func (h *History) Report(r Report) bool {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.q.Add(r)
	h.total++
	for h.q.Length() > h.limit {
		h.q.Remove()
	}
	return false
}

// Recent returns the retained reports, oldest first.
func (h *History) Recent() []Report {
	h.mu.Lock()
	defer h.mu.Unlock()
	out := make([]Report, h.q.Length())
	for i := range out {
		out[i] = h.q.Get(i).(Report)
	}
	return out
}

// Len returns the number of retained reports.
func (h *History) Len() int {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.q.Length()
}

// Total returns the number of reports seen, including dropped ones.
func (h *History) Total() uint64 {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.total
}
