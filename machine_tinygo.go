//go:build tinygo

package ooktx

import (
	"machine"

	"github.com/sparques/pwm"
)

// Pin is a machine.Pin used as a plain digital output. This is what a
// 433 MHz ASK/OOK module's DATA input wants.
type Pin struct {
	machine.Pin
}

func NewPin(pin machine.Pin) Pin {
	pin.Configure(machine.PinConfig{Mode: machine.PinOutput})
	pin.Low()
	return Pin{pin}
}

func (p Pin) High() error {
	p.Pin.High()
	return nil
}

func (p Pin) Low() error {
	p.Pin.Low()
	return nil
}

// Freq38Khz is the carrier most IR receivers demodulate.
const Freq38Khz = 38000

// PWMPin keys a carrier on a PWM capable pin: High turns on a 50% duty
// square wave at the configured frequency, Low turns it off. Use it for
// emitters that have no oscillator of their own.
type PWMPin struct {
	pin    machine.Pin
	pgroup pwm.Group
	ch     uint8
	duty   uint32
	freq   uint64
}

func NewPWMPin(pin machine.Pin, freq uint64) (*PWMPin, error) {
	pin.Configure(machine.PinConfig{Mode: machine.PinPWM})
	pgroup := pwm.Get(pin)
	pgroup.Configure(machine.PWMConfig{Period: uint64(1e9) / freq})
	ch, err := pgroup.Channel(pin)
	if err != nil {
		return nil, err
	}
	pgroup.Set(ch, 0)
	return &PWMPin{
		pin:    pin,
		pgroup: pgroup,
		ch:     ch,
		duty:   pgroup.Top() / 2,
		freq:   freq,
	}, nil
}

func (p *PWMPin) High() error {
	p.pgroup.Set(p.ch, p.duty)
	return nil
}

func (p *PWMPin) Low() error {
	p.pgroup.Set(p.ch, 0)
	return nil
}

// Freq returns the carrier frequency in Hz.
func (p *PWMPin) Freq() uint64 {
	return p.freq
}
