package st7735

import "time"

// Bus transmits bytes to the panel.
//
// It is satisfied by a periph.io spi.Conn and by a TinyGo drivers.SPI. The
// driver only writes, r is always nil. Bytes within one call are sent in order.
type Bus interface {
	Tx(w, r []byte) error
}

// OutputPin is a single-bit output, used for the data/command selector and the
// reset line. A TinyGo machine.Pin configured as output satisfies it.
type OutputPin interface {
	High()
	Low()
}

// Delayer blocks the caller for the given duration.
type Delayer interface {
	Sleep(time.Duration)
}

// DelayFunc adapts a function to a Delayer, e.g. DelayFunc(time.Sleep).
type DelayFunc func(time.Duration)

// Sleep calls f(d).
func (f DelayFunc) Sleep(d time.Duration) { f(d) }
