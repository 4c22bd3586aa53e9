package ooktx_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sparques/ooktx"
)

func TestFrameAppend(t *testing.T) {
	var f ooktx.Frame
	assert.Equal(t, 0, f.Len())

	f.Append(840, 1440)
	f.Append(724)
	require.Equal(t, 3, f.Len())
	assert.Equal(t, []uint16{840, 1440, 724}, f.Timings())
	assert.Equal(t, uint16(1440), f.At(1))
	assert.Equal(t, 3004*time.Microsecond, f.Duration())

	f.Reset()
	assert.Equal(t, 0, f.Len())
	assert.Empty(t, f.Timings())
}

func TestFrameCapacity(t *testing.T) {
	var f ooktx.Frame
	full := make([]uint16, ooktx.MaxFrameLen)
	f.Append(full...)
	assert.Equal(t, ooktx.MaxFrameLen, f.Len())

	assert.Panics(t, func() { f.Append(1) })
	assert.Equal(t, ooktx.MaxFrameLen, f.Len(), "failed append must not change the frame")
}

func TestFrameIsValue(t *testing.T) {
	var a ooktx.Frame
	a.Append(1, 2, 3)
	b := a
	b.Append(4)
	assert.Equal(t, 3, a.Len())
	assert.Equal(t, 4, b.Len())
}

func TestInstant(t *testing.T) {
	tests := []struct {
		name string
		from ooktx.Instant
		d    time.Duration
		want ooktx.Instant
	}{
		{"zero", 10, 0, 10},
		{"microseconds", 10, 5 * time.Microsecond, 15},
		{"milliseconds", 0, 2 * time.Millisecond, 2000},
		{"sub-microsecond truncates", 10, 999 * time.Nanosecond, 10},
		{"negative clamps", 10, -time.Second, 10},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.from.Add(tt.d))
		})
	}

	assert.True(t, ooktx.Instant(1).Before(2))
	assert.False(t, ooktx.Instant(2).Before(2))
	assert.Equal(t, 5*time.Microsecond, ooktx.Instant(15).Sub(10))
	assert.Equal(t, -5*time.Microsecond, ooktx.Instant(10).Sub(15))
}

func TestClockFunc(t *testing.T) {
	var now ooktx.Instant = 42
	c := ooktx.ClockFunc(func() ooktx.Instant { return now })
	assert.Equal(t, ooktx.Instant(42), c.Now())
	now = 43
	assert.Equal(t, ooktx.Instant(43), c.Now())
}

func TestSysClockMonotonic(t *testing.T) {
	var c ooktx.SysClock
	a := c.Now()
	time.Sleep(2 * time.Millisecond)
	b := c.Now()
	assert.True(t, a.Before(b))
	assert.GreaterOrEqual(t, b.Sub(a), 2*time.Millisecond)
}

func TestBusyDelay(t *testing.T) {
	var c ooktx.SysClock
	start := c.Now()
	ooktx.BusyDelay{Clock: c}.DelayMicroseconds(500)
	assert.GreaterOrEqual(t, c.Now().Sub(start), 500*time.Microsecond)

	start = c.Now()
	ooktx.BusyDelay{}.DelayMicroseconds(200)
	assert.GreaterOrEqual(t, c.Now().Sub(start), 200*time.Microsecond)
}

func TestDelayFunc(t *testing.T) {
	var got []uint16
	d := ooktx.DelayFunc(func(us uint16) { got = append(got, us) })
	d.DelayMicroseconds(3)
	d.DelayMicroseconds(7)
	assert.Equal(t, []uint16{3, 7}, got)
}
