package ch8803

import (
	"errors"
	"log/slog"
	"sync"
	"time"

	"github.com/sparques/ooktx"
)

// Builder collects a Transmitter's dependencies. Pin, Delay, Clock and ID
// are all required.
type Builder struct {
	pin    ooktx.OutputPin
	delay  ooktx.Delayer
	clock  ooktx.Clock
	id     uint16
	hasID  bool
	logger *slog.Logger
}

func NewBuilder() *Builder {
	return &Builder{}
}

// Pin sets the pin wired to the DATA input of the transmitter module.
func (b *Builder) Pin(pin ooktx.OutputPin) *Builder {
	b.pin = pin
	return b
}

// Delay sets the microsecond delay used for pulse timing.
func (b *Builder) Delay(delay ooktx.Delayer) *Builder {
	b.delay = delay
	return b
}

// Clock sets the monotonic clock that bounds repeated transmissions.
func (b *Builder) Clock(clock ooktx.Clock) *Builder {
	b.clock = clock
	return b
}

// ID sets the device ID. Together with the channel it is what a collar
// pairs with.
func (b *Builder) ID(id uint16) *Builder {
	b.id = id
	b.hasID = true
	return b
}

// Logger enables debug logging of every command sent.
func (b *Builder) Logger(logger *slog.Logger) *Builder {
	b.logger = logger
	return b
}

func (b *Builder) Build() (*Transmitter, error) {
	var errs []error
	if b.pin == nil {
		errs = append(errs, ErrMissingPin)
	}
	if b.delay == nil {
		errs = append(errs, ErrMissingDelay)
	}
	if b.clock == nil {
		errs = append(errs, ErrMissingClock)
	}
	if !b.hasID {
		errs = append(errs, ErrMissingID)
	}
	if len(errs) > 0 {
		return nil, errors.Join(errs...)
	}
	return &Transmitter{
		tx:     ooktx.NewTxDevice(b.pin, b.delay),
		clock:  b.clock,
		id:     b.id,
		logger: b.logger,
	}, nil
}

// Transmitter owns the pin, delay and clock for one device ID.
type Transmitter struct {
	mu     sync.Mutex
	tx     *ooktx.TxDevice
	clock  ooktx.Clock
	id     uint16
	logger *slog.Logger
}

func (t *Transmitter) ID() uint16 {
	return t.id
}

// Channel binds the transmitter to ch. It blocks until no other Session is
// open, and the returned Session holds the transmitter until Close. A ch
// other than Channel1, Channel2 or Channel3 panics.
func (t *Transmitter) Channel(ch Channel) *Session {
	ch = ChannelOf(uint8(ch))
	t.mu.Lock()
	return &Session{t: t, ch: ch}
}

// TryChannel is Channel without blocking. It reports false if another
// Session is open.
func (t *Transmitter) TryChannel(ch Channel) (*Session, bool) {
	ch = ChannelOf(uint8(ch))
	if !t.mu.TryLock() {
		return nil, false
	}
	return &Session{t: t, ch: ch}, true
}

func (t *Transmitter) send(m Message, d time.Duration) {
	f := m.MarshalFrame()
	start := t.clock.Now()
	frames := t.tx.Repeat(t.clock, &f, d)
	if t.logger != nil {
		t.logger.Debug("ch8803: command sent",
			slog.String("channel", m.Channel.String()),
			slog.String("command", m.Command.String()),
			slog.Int("strength", int(m.Strength)),
			slog.Duration("requested", d),
			slog.Duration("elapsed", t.clock.Now().Sub(start)),
			slog.Int("frames", frames),
		)
	}
}

// Session sends commands on one channel. Only one Session per Transmitter
// can be open at a time, so two commands never interleave on the pin.
//
// Every command blocks for the whole requested duration, repeating the
// frame back to back. The last frame may overrun the duration by up to
// one frame (about 47ms). Durations are counted in whole microseconds, so
// zero or anything under 1µs sends nothing. Any longer duration sends at
// least one frame.
type Session struct {
	t  *Transmitter
	ch Channel
}

// Channel returns the channel the session is bound to.
func (s *Session) Channel() Channel {
	return s.ch
}

// Close releases the transmitter. Closing twice is a no-op.
func (s *Session) Close() {
	if s.t == nil {
		return
	}
	t := s.t
	s.t = nil
	t.mu.Unlock()
}

func (s *Session) send(cmd Command, strength uint8, d time.Duration) {
	if s.t == nil {
		panic("ch8803: command on closed session")
	}
	s.t.send(Message{
		ID:       s.t.id,
		Channel:  s.ch,
		Command:  cmd,
		Strength: strength,
	}, d)
}

// Shock sends a shock command at strength (0-99) for d.
func (s *Session) Shock(strength uint8, d time.Duration) {
	s.send(Shock, strength, d)
}

// ShockMs is Shock with the duration in milliseconds.
func (s *Session) ShockMs(strength uint8, ms uint32) {
	s.Shock(strength, time.Duration(ms)*time.Millisecond)
}

// Vibrate sends a vibration command at strength (0-99) for d.
func (s *Session) Vibrate(strength uint8, d time.Duration) {
	s.send(Vibrate, strength, d)
}

// VibrateMs is Vibrate with the duration in milliseconds.
func (s *Session) VibrateMs(strength uint8, ms uint32) {
	s.Vibrate(strength, time.Duration(ms)*time.Millisecond)
}

// Beep sends a beep command for d.
func (s *Session) Beep(d time.Duration) {
	s.send(Beep, 0, d)
}

// BeepMs is Beep with the duration in milliseconds.
func (s *Session) BeepMs(ms uint32) {
	s.Beep(time.Duration(ms) * time.Millisecond)
}
