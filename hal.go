package ooktx

import "time"

// OutputPin is a single digital output, e.g. the DATA line of a 433 MHz
// ASK/OOK transmitter module.
type OutputPin interface {
	High() error
	Low() error
}

// Delayer blocks for a number of microseconds.
type Delayer interface {
	DelayMicroseconds(us uint16)
}

// DelayFunc adapts a plain function to the Delayer interface.
type DelayFunc func(us uint16)

func (f DelayFunc) DelayMicroseconds(us uint16) {
	f(us)
}

// SleepDelay delays with time.Sleep. Accuracy depends on the scheduler.
type SleepDelay struct{}

func (SleepDelay) DelayMicroseconds(us uint16) {
	time.Sleep(time.Duration(us) * time.Microsecond)
}

// BusyDelay spins on Clock until the delay has elapsed, never yielding the
// CPU. A nil Clock means SysClock.
type BusyDelay struct {
	Clock Clock
}

func (b BusyDelay) DelayMicroseconds(us uint16) {
	clock := b.Clock
	if clock == nil {
		clock = SysClock{}
	}
	end := clock.Now() + Instant(us)
	for clock.Now() < end {
	}
}
