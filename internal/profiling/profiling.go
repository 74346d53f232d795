package profiling

import (
	"fmt"
	"sort"
	"strings"
	"sync"
	"time"
)

// Pipeline stage timings. Painter, mesher and drain record into one shared
// table that the driver prints and resets between reporting intervals.

// Stat is the accumulated cost of one named stage.
type Stat struct {
	Total time.Duration
	Count int
}

// Mean returns the average duration of a single call.
func (s Stat) Mean() time.Duration {
	if s.Count == 0 {
		return 0
	}
	return s.Total / time.Duration(s.Count)
}

var (
	mu     sync.Mutex
	totals = make(map[string]Stat)
)

// Track returns a stop function that records the elapsed time under the given name.
// Usage: defer profiling.Track("terrain.PaintZone")()
func Track(name string) func() {
	start := time.Now()
	return func() {
		d := time.Since(start)
		mu.Lock()
		s := totals[name]
		s.Total += d
		s.Count++
		totals[name] = s
		mu.Unlock()
	}
}

// Reset clears all accumulated stats.
func Reset() {
	mu.Lock()
	clear(totals)
	mu.Unlock()
}

// Snapshot returns a copy of the accumulated stats.
func Snapshot() map[string]Stat {
	mu.Lock()
	defer mu.Unlock()
	out := make(map[string]Stat, len(totals))
	for k, v := range totals {
		out[k] = v
	}
	return out
}

// TopN formats the n most expensive stages by total time.
// Example: "terrain.PaintZone:42.1ms/3, meshing.Build:12.0ms/48"
func TopN(n int) string {
	ss := Snapshot()
	names := make([]string, 0, len(ss))
	for k := range ss {
		names = append(names, k)
	}
	sort.Slice(names, func(i, j int) bool {
		if ss[names[i]].Total == ss[names[j]].Total {
			return names[i] < names[j]
		}
		return ss[names[i]].Total > ss[names[j]].Total
	})
	if n > len(names) {
		n = len(names)
	}
	parts := make([]string, 0, n)
	for _, name := range names[:n] {
		s := ss[name]
		ms := float64(s.Total.Microseconds()) / 1000.0
		parts = append(parts, fmt.Sprintf("%s:%.1fms/%d", name, ms, s.Count))
	}
	return strings.Join(parts, ", ")
}
