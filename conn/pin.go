package conn

import (
	"log"

	"periph.io/x/conn/v3/gpio"
)

// Pin drives a periph.io output pin.
//
// The driver treats pins as infallible. A failing Out is logged, it means the
// pin was not set up as an output.
type Pin struct {
	p gpio.PinOut
}

// NewPin wraps p.
func NewPin(p gpio.PinOut) *Pin {
	return &Pin{p: p}
}

func (p *Pin) String() string {
	return p.p.String()
}

// High drives the pin high.
func (p *Pin) High() {
	p.out(gpio.High)
}

// Low drives the pin low.
func (p *Pin) Low() {
	p.out(gpio.Low)
}

func (p *Pin) out(level gpio.Level) {
	if err := p.p.Out(level); err != nil {
		log.Printf("conn: %s: set %s: %v", p.p, level, err)
	}
}
