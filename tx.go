package ooktx

import "time"

// TxDevice drives an OutputPin through Frames.
type TxDevice struct {
	pin   OutputPin
	delay Delayer
}

func NewTxDevice(pin OutputPin, delay Delayer) *TxDevice {
	return &TxDevice{
		pin:   pin,
		delay: delay,
	}
}

// SendFrame walks the frame's pulse widths, starting low and toggling the
// pin after each one. The pin is left low afterwards no matter how many
// entries the frame has. Pin errors are ignored.
func (tx *TxDevice) SendFrame(f *Frame) {
	high := false
	for _, us := range f.Timings() {
		if high {
			_ = tx.pin.High()
		} else {
			_ = tx.pin.Low()
		}
		tx.delay.DelayMicroseconds(us)
		high = !high
	}
	_ = tx.pin.Low()
}

func (tx *TxDevice) SendFrames(frames ...*Frame) {
	for _, f := range frames {
		tx.SendFrame(f)
	}
}

func (tx *TxDevice) SendMarshaller(fm FrameMarshaller) {
	f := fm.MarshalFrame()
	tx.SendFrame(&f)
}

// Repeat sends f back to back until clock reaches now+d and returns the
// number of frames sent. The deadline is only checked between frames, so
// the last frame may run past it by up to f.Duration(). A d under one
// microsecond sends nothing. Otherwise at least one frame goes out unless
// the clock has already passed the deadline at the first check.
func (tx *TxDevice) Repeat(clock Clock, f *Frame, d time.Duration) int {
	deadline := clock.Now().Add(d)
	sent := 0
	for clock.Now().Before(deadline) {
		tx.SendFrame(f)
		sent++
	}
	return sent
}
