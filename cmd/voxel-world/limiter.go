package main

import (
	"time"

	"voxel-world/internal/config"
)

// frameLimiter paces the viewer loop to config.GetFPSLimit()
type frameLimiter struct {
	next time.Time
}

// Wait blocks until the next frame is due. It sleeps most of the gap and
// spins the last few hundred microseconds.
func (f *frameLimiter) Wait() {
	limit := config.GetFPSLimit()
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
		if remaining > 200*time.Microsecond {
			time.Sleep(remaining - 200*time.Microsecond)
		}
	}

	// resync after a hitch instead of rushing to catch up
	if late := -time.Until(f.next); late > target {
		f.next = time.Now().Add(target)
	}
}
