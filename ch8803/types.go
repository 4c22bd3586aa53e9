package ch8803

import "fmt"

// Channel selects one of the three receiver bindings under a device ID.
// Its value is the 4-bit code sent on the wire.
type Channel uint8

const (
	Channel1 Channel = iota
	Channel2
	Channel3
)

// ChannelOf converts a raw channel number (0, 1 or 2) to a Channel. Any
// other value is a caller bug and panics.
func ChannelOf(raw uint8) Channel {
	ch, err := ParseChannel(raw)
	if err != nil {
		panic(err)
	}
	return ch
}

// ParseChannel is ChannelOf for untrusted input.
func ParseChannel(raw uint8) (Channel, error) {
	if raw > uint8(Channel3) {
		return 0, fmt.Errorf("%w: %d", ErrInvalidChannel, raw)
	}
	return Channel(raw), nil
}

func (c Channel) String() string {
	switch c {
	case Channel1, Channel2, Channel3:
		return fmt.Sprintf("channel%d", uint8(c)+1)
	}
	return fmt.Sprintf("Channel(%d)", uint8(c))
}

// Command is what the receiver should do. Its value is the 4-bit code sent
// on the wire.
type Command uint8

const (
	Shock Command = iota + 1
	Vibrate
	Beep
)

func parseCommand(raw uint8) (Command, error) {
	cmd := Command(raw)
	switch cmd {
	case Shock, Vibrate, Beep:
		return cmd, nil
	}
	return 0, fmt.Errorf("%w: %d", ErrInvalidCommand, raw)
}

func (c Command) String() string {
	switch c {
	case Shock:
		return "shock"
	case Vibrate:
		return "vibrate"
	case Beep:
		return "beep"
	}
	return fmt.Sprintf("Command(%d)", uint8(c))
}
