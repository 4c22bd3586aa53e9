package ooktx_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sparques/ooktx"
	"github.com/sparques/ooktx/sim"
)

func newSim() (*ooktx.TxDevice, *sim.Pin, *sim.Clock) {
	clock := &sim.Clock{}
	pin := &sim.Pin{Clock: clock}
	return ooktx.NewTxDevice(pin, &sim.Delay{Clock: clock}), pin, clock
}

func frameOf(us ...uint16) *ooktx.Frame {
	var f ooktx.Frame
	f.Append(us...)
	return &f
}

func TestSendFrameLevels(t *testing.T) {
	tx, pin, clock := newSim()
	tx.SendFrame(frameOf(100, 200, 300))

	edges := pin.Edges()
	require.Len(t, edges, 4)
	assert.Equal(t, []sim.Edge{
		{High: false, At: 0},
		{High: true, At: 100},
		{High: false, At: 300},
		{High: false, At: 600},
	}, edges)
	assert.Equal(t, ooktx.Instant(600), clock.Now())
}

func TestSendFrameEndsLow(t *testing.T) {
	for _, n := range []int{1, 2, 3, 4, 89, 128} {
		tx, pin, _ := newSim()
		f := frameOf(make([]uint16, n)...)
		tx.SendFrame(f)
		assert.False(t, pin.Level(), "pin high after %d entry frame", n)
		assert.Len(t, pin.Edges(), n+1)
	}
}

func TestSendFrameRecoversWidths(t *testing.T) {
	tx, pin, _ := newSim()
	want := []uint16{840, 1440, 724, 292, 724, 804, 212}
	tx.SendFrames(frameOf(want...), frameOf(want...))

	frames := pin.Frames(len(want))
	require.Len(t, frames, 2)
	assert.Equal(t, want, frames[0])
	assert.Equal(t, want, frames[1])
}

func TestSendFrameIgnoresPinErrors(t *testing.T) {
	clock := &sim.Clock{}
	pin := &sim.Pin{Clock: clock, FailEvery: 2}
	tx := ooktx.NewTxDevice(pin, &sim.Delay{Clock: clock})

	want := []uint16{10, 20, 30, 40, 50}
	tx.SendFrame(frameOf(want...))

	assert.Equal(t, 3, pin.Failures())
	frames := pin.Frames(len(want))
	require.Len(t, frames, 1)
	assert.Equal(t, want, frames[0])
	assert.False(t, pin.Level())
}

type marshaller []uint16

func (m marshaller) MarshalFrame() ooktx.Frame {
	var f ooktx.Frame
	f.Append(m...)
	return f
}

func TestSendMarshaller(t *testing.T) {
	tx, pin, _ := newSim()
	tx.SendMarshaller(marshaller{5, 6, 7})
	assert.Equal(t, [][]uint16{{5, 6, 7}}, pin.Frames(3))
}

func TestRepeat(t *testing.T) {
	f := frameOf(400, 600) // 1ms per frame

	tests := []struct {
		name string
		d    time.Duration
		want int
	}{
		{"zero sends nothing", 0, 0},
		{"negative sends nothing", -time.Second, 0},
		{"below clock resolution sends nothing", 500 * time.Nanosecond, 0},
		{"shorter than a frame sends one", time.Microsecond, 1},
		{"exactly one frame", time.Millisecond, 1},
		{"just over one frame", time.Millisecond + time.Microsecond, 2},
		{"many frames", 10 * time.Millisecond, 10},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tx, pin, clock := newSim()
			got := tx.Repeat(clock, f, tt.d)
			assert.Equal(t, tt.want, got)
			assert.Len(t, pin.Frames(f.Len()), tt.want)
			assert.Len(t, pin.Edges(), tt.want*(f.Len()+1))
		})
	}
}

func TestRepeatOverrunBoundedByOneFrame(t *testing.T) {
	f := frameOf(3000, 4000) // 7ms per frame
	tx, _, clock := newSim()

	d := 20 * time.Millisecond
	sent := tx.Repeat(clock, f, d)
	elapsed := clock.Now().Sub(0)

	assert.Equal(t, 3, sent)
	assert.GreaterOrEqual(t, elapsed, d)
	assert.Less(t, elapsed, d+f.Duration())
}

func TestRepeatClockAlreadyPastDeadline(t *testing.T) {
	tx, pin, _ := newSim()
	// each read jumps a second ahead, so the first check is already late
	var now ooktx.Instant
	clock := ooktx.ClockFunc(func() ooktx.Instant {
		now += ooktx.Instant(time.Second / time.Microsecond)
		return now
	})
	assert.Equal(t, 0, tx.Repeat(clock, frameOf(1, 2), time.Millisecond))
	assert.Empty(t, pin.Edges())
}
