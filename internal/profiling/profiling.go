// Package profiling is a lightweight per-frame CPU profiler.
//
// Usage: defer profiling.Track("renderer.meshes")()
package profiling

import (
	"sort"
	"strconv"
	"strings"
	"sync"
	"time"
)

// historySize is the number of frames kept for rolling frame-time stats
const historySize = 120

var (
	mu          sync.Mutex
	frameTotals = make(map[string]time.Duration)

	history     [historySize]time.Duration
	historyLen  int
	historyNext int
)

// Track returns a stop function that records the elapsed time under name.
func Track(name string) func() {
	start := time.Now()
	return func() {
		d := time.Since(start)
		mu.Lock()
		frameTotals[name] += d
		mu.Unlock()
	}
}

// ResetFrame clears the current per-frame totals. Call at the start of each frame.
func ResetFrame() {
	mu.Lock()
	clear(frameTotals)
	mu.Unlock()
}

// Snapshot returns a copy of the current per-frame totals.
func Snapshot() map[string]time.Duration {
	mu.Lock()
	defer mu.Unlock()
	out := make(map[string]time.Duration, len(frameTotals))
	for k, v := range frameTotals {
		out[k] = v
	}
	return out
}

// SumWithPrefix totals every tracked name starting with prefix
func SumWithPrefix(prefix string) time.Duration {
	mu.Lock()
	defer mu.Unlock()
	var sum time.Duration
	for k, v := range frameTotals {
		if strings.HasPrefix(k, prefix) {
			sum += v
		}
	}
	return sum
}

// TopN formats the n largest totals of the current frame, largest first.
// Example: "renderer.meshes:4.2ms, renderer.hud:0.3ms"
func TopN(n int) string {
	ss := Snapshot()
	names := make([]string, 0, len(ss))
	for k := range ss {
		names = append(names, k)
	}
	sort.Slice(names, func(i, j int) bool {
		if ss[names[i]] != ss[names[j]] {
			return ss[names[i]] > ss[names[j]]
		}
		return names[i] < names[j]
	})
	n = min(n, len(names))
	parts := make([]string, 0, n)
	for _, name := range names[:n] {
		parts = append(parts, name+":"+formatMs(ss[name]))
	}
	return strings.Join(parts, ", ")
}

// RecordFrame appends a whole-frame duration to the rolling window.
func RecordFrame(d time.Duration) {
	mu.Lock()
	history[historyNext] = d
	historyNext = (historyNext + 1) % historySize
	if historyLen < historySize {
		historyLen++
	}
	mu.Unlock()
}

// FrameStats summarizes the rolling frame-time window
type FrameStats struct {
	Frames int
	Avg    time.Duration
	Min    time.Duration
	Max    time.Duration
}

// FPS is the average frame rate over the window, zero when empty
func (s FrameStats) FPS() float64 {
	if s.Avg <= 0 {
		return 0
	}
	return float64(time.Second) / float64(s.Avg)
}

// Stats returns the rolling frame-time summary.
func Stats() FrameStats {
	mu.Lock()
	defer mu.Unlock()
	if historyLen == 0 {
		return FrameStats{}
	}
	s := FrameStats{Frames: historyLen, Min: history[0], Max: history[0]}
	var total time.Duration
	for _, d := range history[:historyLen] {
		total += d
		s.Min = min(s.Min, d)
		s.Max = max(s.Max, d)
	}
	s.Avg = total / time.Duration(historyLen)
	return s
}

// ResetHistory drops the rolling window
func ResetHistory() {
	mu.Lock()
	historyLen, historyNext = 0, 0
	mu.Unlock()
}

// formatMs keeps one decimal and drops a trailing .0
func formatMs(d time.Duration) string {
	ms := float64(d.Microseconds()) / 1000.0
	return strings.TrimSuffix(strconv.FormatFloat(ms, 'f', 1, 64), ".0") + "ms"
}
