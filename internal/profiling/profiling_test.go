package profiling

import (
	"strings"
	"testing"
	"time"
)

func record(name string, d time.Duration) {
	mu.Lock()
	frameTotals[name] += d
	mu.Unlock()
}

func TestTrackAccumulates(t *testing.T) {
	ResetFrame()
	stop := Track("renderer.meshes")
	time.Sleep(time.Millisecond)
	stop()
	Track("renderer.meshes")()

	snap := Snapshot()
	if snap["renderer.meshes"] < time.Millisecond {
		t.Fatalf("got %v, want at least 1ms", snap["renderer.meshes"])
	}
	ResetFrame()
	if len(Snapshot()) != 0 {
		t.Fatalf("reset should clear totals")
	}
}

func TestTopNAndPrefix(t *testing.T) {
	ResetFrame()
	record("renderer.meshes", 4200*time.Microsecond)
	record("renderer.hud", 300*time.Microsecond)
	record("input.poll", 2*time.Millisecond)

	if got := TopN(2); got != "renderer.meshes:4.2ms, input.poll:2ms" {
		t.Errorf("TopN: got %q", got)
	}
	if got := TopN(10); strings.Count(got, ",") != 2 {
		t.Errorf("TopN over length: got %q", got)
	}
	if got := SumWithPrefix("renderer."); got != 4500*time.Microsecond {
		t.Errorf("SumWithPrefix: got %v", got)
	}
	ResetFrame()
}

func TestStatsWindow(t *testing.T) {
	ResetHistory()
	if (Stats() != FrameStats{}) || Stats().FPS() != 0 {
		t.Fatalf("empty window should be zero")
	}
	RecordFrame(10 * time.Millisecond)
	RecordFrame(30 * time.Millisecond)
	s := Stats()
	if s.Frames != 2 || s.Avg != 20*time.Millisecond || s.Min != 10*time.Millisecond || s.Max != 30*time.Millisecond {
		t.Fatalf("unexpected stats %+v", s)
	}
	if s.FPS() != 50 {
		t.Errorf("fps: got %v", s.FPS())
	}

	for i := 0; i < historySize+5; i++ {
		RecordFrame(5 * time.Millisecond)
	}
	s = Stats()
	if s.Frames != historySize || s.Max != 5*time.Millisecond {
		t.Errorf("window should roll over: %+v", s)
	}
	ResetHistory()
}
