package ooktx

import "time"

// MaxFrameLen is the number of pulse widths a Frame can hold.
const MaxFrameLen = 128

// Frame is a fixed-capacity sequence of pulse widths in microseconds.
// Entries alternate between low and high, starting low. The backing array
// lives inside the Frame so building one never allocates.
type Frame struct {
	timings [MaxFrameLen]uint16
	n       int
}

// Append adds pulse widths to the end of the frame. It panics if the frame
// would grow past MaxFrameLen; frame layouts are fixed, so overflowing one
// is a bug in the encoder.
func (f *Frame) Append(us ...uint16) {
	if f.n+len(us) > MaxFrameLen {
		panic("ooktx: frame capacity exceeded")
	}
	f.n += copy(f.timings[f.n:], us)
}

// Len returns the number of pulse widths in the frame.
func (f *Frame) Len() int {
	return f.n
}

// At returns the i'th pulse width.
func (f *Frame) At(i int) uint16 {
	return f.Timings()[i]
}

// Timings returns the pulse widths as a slice backed by the frame.
func (f *Frame) Timings() []uint16 {
	return f.timings[:f.n]
}

// Duration is how long the frame takes on air.
func (f *Frame) Duration() time.Duration {
	var total time.Duration
	for _, us := range f.Timings() {
		total += time.Duration(us) * time.Microsecond
	}
	return total
}

// Reset empties the frame.
func (f *Frame) Reset() {
	f.n = 0
}

// FrameMarshaller defines an interface for marshalling data to a Frame.
type FrameMarshaller interface {
	MarshalFrame() Frame
}
