package app

import (
	"testing"
	"time"
)

func TestFPSLimiterPaces(t *testing.T) {
	f := &FPSLimiter{Limit: func() int { return 100 }}
	start := time.Now()
	for range 5 {
		f.Wait()
	}
	if elapsed := time.Since(start); elapsed < 45*time.Millisecond {
		t.Fatalf("5 frames at 100 fps took %v, want about 50ms", elapsed)
	}
}

func TestFPSLimiterUnlimited(t *testing.T) {
	f := &FPSLimiter{Limit: func() int { return 0 }}
	start := time.Now()
	for range 1000 {
		f.Wait()
	}
	if elapsed := time.Since(start); elapsed > 50*time.Millisecond {
		t.Fatalf("unlimited waits took %v", elapsed)
	}
	if !f.next.IsZero() {
		t.Error("unlimited should clear the schedule")
	}
}
