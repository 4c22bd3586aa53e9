package ch8803

import "errors"

var (
	ErrMissingPin   = errors.New("ch8803: transmitter needs an output pin")
	ErrMissingDelay = errors.New("ch8803: transmitter needs a delay")
	ErrMissingClock = errors.New("ch8803: transmitter needs a clock")
	ErrMissingID    = errors.New("ch8803: transmitter needs a device id")

	ErrInvalidChannel = errors.New("ch8803: invalid channel (valid range: 0-2)")
	ErrInvalidCommand = errors.New("ch8803: invalid command")

	// ErrFrameAlloc is returned when unmarshalling into a nil Message.
	ErrFrameAlloc  = errors.New("ch8803: tried to unmarshal to unallocated message")
	ErrFrameLength = errors.New("ch8803: wrong frame length")
	ErrBitPeriod   = errors.New("ch8803: bit pair does not add up to the pulse period")
	ErrChecksum    = errors.New("ch8803: checksum mismatch")
	ErrPadding     = errors.New("ch8803: padding bits not zero")
)
