package conn

import (
	"tinygo.org/x/drivers"

	"github.com/BeatGlow/st7735"
)

// A TinyGo SPI bus is used as is; a machine.Pin configured as output is an
// st7735.OutputPin.
var _ st7735.Bus = drivers.SPI(nil)

// NewTinyGo returns a driver on a TinyGo SPI bus, using time.Sleep for delays.
func NewTinyGo(bus drivers.SPI, dc, rst st7735.OutputPin, config *st7735.Config) *st7735.Device {
	return st7735.NewWithConfig(bus, dc, rst, Sleep, config)
}
