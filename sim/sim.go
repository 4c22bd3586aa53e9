package sim

import (
	"errors"
	"sync"
	"time"

	"github.com/sparques/ooktx"
)

// ErrInjected is returned by Pin when a failure has been injected.
var ErrInjected = errors.New("sim: injected pin failure")

// Clock is a virtual monotonic clock that only moves when told to.
type Clock struct {
	mu  sync.Mutex
	now ooktx.Instant
}

func (c *Clock) Now() ooktx.Instant {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.now
}

// Advance moves the clock forward by d.
func (c *Clock) Advance(d time.Duration) {
	c.mu.Lock()
	c.now = c.now.Add(d)
	c.mu.Unlock()
}

// Delay advances Clock instead of sleeping.
type Delay struct {
	Clock *Clock

	mu    sync.Mutex
	calls int
}

func (d *Delay) DelayMicroseconds(us uint16) {
	d.Clock.Advance(time.Duration(us) * time.Microsecond)
	d.mu.Lock()
	d.calls++
	d.mu.Unlock()
}

// Calls returns how many delays have been requested.
func (d *Delay) Calls() int {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.calls
}

// Edge is one call to Pin.High or Pin.Low.
type Edge struct {
	High bool
	At   ooktx.Instant
}

// Pin records the level it is set to, stamped with Clock. If FailEvery is
// non-zero every FailEvery'th set returns ErrInjected; the level is still
// recorded so the trace stays aligned with what the driver asked for.
type Pin struct {
	Clock     *Clock
	FailEvery int

	mu       sync.Mutex
	edges    []Edge
	failures int
}

func (p *Pin) High() error { return p.set(true) }
func (p *Pin) Low() error  { return p.set(false) }

func (p *Pin) set(high bool) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	var at ooktx.Instant
	if p.Clock != nil {
		at = p.Clock.Now()
	}
	p.edges = append(p.edges, Edge{High: high, At: at})
	if p.FailEvery > 0 && len(p.edges)%p.FailEvery == 0 {
		p.failures++
		return ErrInjected
	}
	return nil
}

// Level is the last level the pin was set to. A pin that was never set
// reads low.
func (p *Pin) Level() bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	if len(p.edges) == 0 {
		return false
	}
	return p.edges[len(p.edges)-1].High
}

// Edges returns a copy of everything recorded so far.
func (p *Pin) Edges() []Edge {
	p.mu.Lock()
	defer p.mu.Unlock()
	out := make([]Edge, len(p.edges))
	copy(out, p.edges)
	return out
}

// Failures returns the number of injected failures handed out.
func (p *Pin) Failures() int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.failures
}

// Reset forgets all recorded edges.
func (p *Pin) Reset() {
	p.mu.Lock()
	p.edges = p.edges[:0]
	p.failures = 0
	p.mu.Unlock()
}

// Frames splits the recording into frames. A frame of n pulse widths is
// driven as n level sets followed by one trailing low, so the recording is
// cut into chunks of n+1 edges and the widths are the gaps between them.
// A trailing partial chunk is dropped.
func (p *Pin) Frames(n int) [][]uint16 {
	edges := p.Edges()
	var frames [][]uint16
	for len(edges) >= n+1 {
		f := make([]uint16, n)
		for i := 0; i < n; i++ {
			f[i] = uint16(edges[i+1].At - edges[i].At)
		}
		frames = append(frames, f)
		edges = edges[n+1:]
	}
	return frames
}
