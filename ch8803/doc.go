/*
Package ch8803 transmits commands to CH8803 style 433 MHz training collars.

These are the cheap collars sold with a three channel remote that has vibrate, beep and shock buttons. The remote talks to the collar
through a generic ASK/OOK transmitter; the collar decodes pulse widths. There is no return channel, so the remote (and this package)
simply repeats the same frame for as long as a button is held.

## Hardware

Any 433 MHz ASK/OOK transmitter module works (the FS1000A and friends). Connect its DATA pin to a GPIO and give it 3.3-5V. The module
keys its own carrier, so the GPIO is driven as a plain digital output.

## Protocol

Times are in microseconds. Every frame is 89 pulse widths. The first width is low, the second high and so on, alternating.

	| Part     | Widths                     |
	|^^^^^^^^^^|^^^^^^^^^^^^^^^^^^^^^^^^^^^^|
	| Preamble | 840, 1440, 724             |
	| Bits     | 42 pairs, see below        |
	| Trailer  | 292, 1476                  |

Each bit is a pair of widths that always adds up to 1016. A one is 804 then 212, a zero is 292 then 724. Because every bit has the
same length, the collar can track the bit clock no matter what is being sent.

The 42 bits are sent MSB first:

	| Field    | Bits | Notes                                   |
	|^^^^^^^^^^|^^^^^^|^^^^^^^^^^^^^^^^^^^^^^^^^^^^^^^^^^^^^^^^^^^^^|
	| ID       |   16 | pairs the remote with a collar          |
	| Channel  |    4 | 0, 1 or 2 for channels 1 to 3           |
	| Command  |    4 | 1 shock, 2 vibrate, 3 beep              |
	| Strength |    8 | 0-99 by convention, 0 for beep          |
	| Checksum |    8 | byte sum of the five bytes above        |
	| Padding  |    2 | always zero                             |

The checksum adds the high ID byte, the low ID byte, channel, command and strength, modulo 256.

A frame lasts about 47.4ms. Holding a button on the original remote just repeats the frame.

## Examples

### Beep every few seconds on an RP2040
```

	pin := ooktx.NewPin(machine.GPIO16)
	clock := ooktx.SysClock{}
	tx, err := ch8803.NewBuilder().
		Pin(pin).
		Delay(ooktx.BusyDelay{Clock: clock}).
		Clock(clock).
		ID(0x0D25).
		Build()
	if err != nil {
		panic(err)
	}

	for {
		s := tx.Channel(ch8803.Channel1)
		s.BeepMs(500)
		s.Close()
		time.Sleep(3 * time.Second)
	}

```

### Keying a carrier with a PWM pin

Bare RF stages and IR emitters have no oscillator of their own. ooktx.PWMPin turns a pulse into a burst of carrier instead of a
steady high level; everything else stays the same.
```

	pin, err := ooktx.NewPWMPin(machine.GPIO15, ooktx.Freq38Khz)
	if err != nil {
		panic(err)
	}
	clock := ooktx.SysClock{}
	tx, err := ch8803.NewBuilder().
		Pin(pin).
		Delay(ooktx.BusyDelay{Clock: clock}).
		Clock(clock).
		ID(0x0D25).
		Build()

```
*/
package ch8803
