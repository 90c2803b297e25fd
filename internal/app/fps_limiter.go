package app

import (
	"time"

	"planeviz/internal/config"
)

// spinWindow is how early the limiter stops sleeping and starts spinning
const spinWindow = 200 * time.Microsecond

// FPSLimiter provides high-precision frame rate limiting
type FPSLimiter struct {
	next time.Time

	// Limit returns the frame cap; zero or less disables limiting
	Limit func() int
}

// NewFPSLimiter creates a limiter following the runtime FPS setting
func NewFPSLimiter() *FPSLimiter {
	return &FPSLimiter{Limit: config.GetFPSLimit}
}

// Wait blocks until the next frame is due. Sleeps most of the interval and
// spins the rest for precision at high caps.
func (f *FPSLimiter) Wait() {
	limit := f.Limit()
	if limit <= 0 {
		f.next = time.Time{}
		return
	}

	target := time.Second / time.Duration(limit)
	if f.next.IsZero() {
		f.next = time.Now().Add(target)
	} else {
		f.next = f.next.Add(target)
	}

	for {
		remaining := time.Until(f.next)
		if remaining <= 0 {
			break
		}
		if remaining > spinWindow {
			time.Sleep(remaining - spinWindow)
		}
	}

	// Resync after a hitch instead of rushing to catch up
	if late := -time.Until(f.next); late > target {
		f.next = time.Now().Add(target)
	}
}
