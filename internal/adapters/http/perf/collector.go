// Package perf collects request and query timings in a fixed-size ring
// buffer for the admin performance view. Writes are cheap and never block;
// aggregation happens only when a snapshot is taken.
package perf

import (
	"sort"
	"sync"
	"time"
)

// DefaultRingSize is the default capacity of the ring buffer.
const DefaultRingSize = 10000

// EntryKind distinguishes request vs query entries.
type EntryKind uint8

const (
	KindRequest EntryKind = iota
	KindQuery
)

// Entry is a single timing record stored in the ring buffer.
type Entry struct {
	Kind       EntryKind
	Path       string // HTTP "METHOD /path" or DB operation name
	StatusCode int    // HTTP status (0 for queries)
	DurationMs float64
	Timestamp  time.Time
}

// PathStats aggregates timings for one path.
type PathStats struct {
	Path       string  `json:"path"`
	Count      int     `json:"count"`
	TotalMs    float64 `json:"total_ms"`
	MaxMs      float64 `json:"max_ms"`
	AvgMs      float64 `json:"avg_ms"`
	ErrorCount int     `json:"error_count"` // HTTP status >= 500
}

// Snapshot is an aggregated view of the collected entries.
type Snapshot struct {
	Requests []PathStats `json:"requests"` // slowest average first
	Queries  []PathStats `json:"queries"`
}

// Collector is a fixed-size ring buffer for timing entries.
// When full, the oldest entries are overwritten.
type Collector struct {
	mu      sync.Mutex
	entries []Entry
	size    int
	pos     int
	filled  bool
}

// NewCollector creates a collector with the given ring buffer capacity.
// PRE: size > 0 (non-positive falls back to DefaultRingSize)
// POST: Returns a ready-to-use collector with pre-allocated storage
func NewCollector(size int) *Collector {
	if size <= 0 {
		size = DefaultRingSize
	}
	return &Collector{
		entries: make([]Entry, size),
		size:    size,
	}
}

// Record appends an entry to the ring buffer.
// PRE: e is a valid Entry
// POST: Entry stored; if buffer full, oldest entry overwritten
func (c *Collector) Record(e Entry) {
	c.mu.Lock()
	c.entries[c.pos] = e
	c.pos = (c.pos + 1) % c.size
	if c.pos == 0 {
		c.filled = true
	}
	c.mu.Unlock()
}

// Snapshot aggregates the buffered entries per path.
// PRE: none
// POST: returns per-path stats sorted by average duration descending
func (c *Collector) Snapshot() Snapshot {
	c.mu.Lock()
	n := c.pos
	if c.filled {
		n = c.size
	}
	entries := make([]Entry, n)
	if c.filled {
		copy(entries, c.entries[c.pos:])
		copy(entries[c.size-c.pos:], c.entries[:c.pos])
	} else {
		copy(entries, c.entries[:n])
	}
	c.mu.Unlock()

	requests := make(map[string]*PathStats)
	queries := make(map[string]*PathStats)
	for _, e := range entries {
		byPath := requests
		if e.Kind == KindQuery {
			byPath = queries
		}
		s, ok := byPath[e.Path]
		if !ok {
			s = &PathStats{Path: e.Path}
			byPath[e.Path] = s
		}
		s.Count++
		s.TotalMs += e.DurationMs
		if e.DurationMs > s.MaxMs {
			s.MaxMs = e.DurationMs
		}
		if e.StatusCode >= 500 {
			s.ErrorCount++
		}
	}

	return Snapshot{
		Requests: finalize(requests),
		Queries:  finalize(queries),
	}
}

// finalize computes averages and sorts slowest-average first.
func finalize(byPath map[string]*PathStats) []PathStats {
	list := make([]PathStats, 0, len(byPath))
	for _, s := range byPath {
		s.AvgMs = s.TotalMs / float64(s.Count)
		list = append(list, *s)
	}
	sort.Slice(list, func(i, j int) bool {
		return list[i].AvgMs > list[j].AvgMs
	})
	return list
}
