package ooktx

import "time"

// Instant is a point on a monotonic timeline in microseconds. 64 bits of
// microseconds will not wrap for several hundred thousand years.
type Instant uint64

// Add returns i+d. Negative durations are treated as zero.
func (i Instant) Add(d time.Duration) Instant {
	if d <= 0 {
		return i
	}
	return i + Instant(d/time.Microsecond)
}

// Before reports whether i is strictly earlier than u.
func (i Instant) Before(u Instant) bool {
	return i < u
}

// Sub returns the duration i-u.
func (i Instant) Sub(u Instant) time.Duration {
	return time.Duration(int64(i)-int64(u)) * time.Microsecond
}

// Clock is a monotonic time source.
type Clock interface {
	Now() Instant
}

// ClockFunc adapts a plain function to the Clock interface.
type ClockFunc func() Instant

func (f ClockFunc) Now() Instant {
	return f()
}

// SysClock reads the Go runtime's monotonic clock.
type SysClock struct{}

var epoch = time.Now()

func (SysClock) Now() Instant {
	return Instant(time.Since(epoch) / time.Microsecond)
}
