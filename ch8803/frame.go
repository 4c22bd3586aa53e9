package ch8803

import (
	"fmt"

	"github.com/sparques/ooktx"
)

// Pulse widths in microseconds.
const (
	PulseLen = 1016
	ZeroLen  = 292
	OneLen   = 804
)

const (
	// PayloadBits is id(16) + channel(4) + command(4) + strength(8) +
	// checksum(8) + padding(2).
	PayloadBits = 42

	// FrameLen is the number of pulse widths in every frame.
	FrameLen = len(preamble) + 2*PayloadBits + len(trailer)

	// BitTolerance is how far, in microseconds, a decoded bit pair may
	// stray from PulseLen.
	BitTolerance = 100

	bitThreshold = (ZeroLen + OneLen) / 2
)

var (
	preamble = [...]uint16{840, 1440, PulseLen - ZeroLen}
	trailer  = [...]uint16{ZeroLen, 1476}
)

// Message is one command addressed to a collar.
type Message struct {
	ID       uint16
	Channel  Channel
	Command  Command
	Strength uint8
}

// Checksum is the byte sum of the high ID byte, the low ID byte, channel,
// command and strength, modulo 256.
func (m Message) Checksum() uint8 {
	sum := uint(m.ID>>8) + uint(m.ID&0xFF) + uint(m.Channel) + uint(m.Command) + uint(m.Strength)
	return uint8(sum % 256)
}

// MarshalFrame implements ooktx.FrameMarshaller.
func (m Message) MarshalFrame() ooktx.Frame {
	var f ooktx.Frame
	f.Append(preamble[:]...)
	appendBits(&f, uint32(m.ID), 16)
	appendBits(&f, uint32(m.Channel), 4)
	appendBits(&f, uint32(m.Command), 4)
	appendBits(&f, uint32(m.Strength), 8)
	appendBits(&f, uint32(m.Checksum()), 8)
	appendBits(&f, 0, 2)
	f.Append(trailer[:]...)
	return f
}

func (m Message) String() string {
	return fmt.Sprintf("%04X %v %v %d", m.ID, m.Channel, m.Command, m.Strength)
}

// Encode builds the frame for a single command.
func Encode(id uint16, ch Channel, cmd Command, strength uint8) ooktx.Frame {
	return Message{ID: id, Channel: ch, Command: cmd, Strength: strength}.MarshalFrame()
}

// appendBits appends the low bits of val, MSB first.
func appendBits(f *ooktx.Frame, val uint32, bits int) {
	for i := bits - 1; i >= 0; i-- {
		var w uint16 = ZeroLen
		if (val>>i)&1 == 1 {
			w = OneLen
		}
		f.Append(w, PulseLen-w)
	}
}

// Decode parses pulse widths back into a Message. It accepts anything
// MarshalFrame produces and tolerates up to BitTolerance of jitter per bit,
// which is enough for widths recovered from a logic analyser capture.
func Decode(timings []uint16) (Message, error) {
	if len(timings) != FrameLen {
		return Message{}, fmt.Errorf("%w: got %d, want %d", ErrFrameLength, len(timings), FrameLen)
	}

	bits := timings[len(preamble) : len(preamble)+2*PayloadBits]
	var buf uint64
	for i := 0; i < PayloadBits; i++ {
		on, off := int(bits[2*i]), int(bits[2*i+1])
		if d := on + off - PulseLen; d > BitTolerance || d < -BitTolerance {
			return Message{}, fmt.Errorf("%w: bit %d is %d+%d", ErrBitPeriod, i, on, off)
		}
		buf <<= 1
		if on > bitThreshold {
			buf |= 1
		}
	}

	if buf&0b11 != 0 {
		return Message{}, ErrPadding
	}
	buf >>= 2
	sum := uint8(buf)
	buf >>= 8
	strength := uint8(buf)
	buf >>= 8
	cmd, err := parseCommand(uint8(buf & 0xF))
	if err != nil {
		return Message{}, err
	}
	buf >>= 4
	ch, err := ParseChannel(uint8(buf & 0xF))
	if err != nil {
		return Message{}, err
	}
	buf >>= 4

	m := Message{
		ID:       uint16(buf),
		Channel:  ch,
		Command:  cmd,
		Strength: strength,
	}
	if got := m.Checksum(); got != sum {
		return Message{}, fmt.Errorf("%w: frame has %#02x, computed %#02x", ErrChecksum, sum, got)
	}
	return m, nil
}

// UnmarshalFrame decodes f into m.
func (m *Message) UnmarshalFrame(f *ooktx.Frame) error {
	if m == nil {
		return ErrFrameAlloc
	}
	dec, err := Decode(f.Timings())
	if err != nil {
		return err
	}
	*m = dec
	return nil
}
