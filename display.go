// Package st7735 drives ST7735 and ST7789 TFT panels over SPI.
//
// The driver translates pixel and region writes into the controller's
// command/parameter protocol. A data/command selector pin is driven low before
// every opcode and high before every parameter or pixel byte. All writes are
// transmitted immediately; there is no frame buffer.
//
// A Device owns its bus, pins and delay for its whole lifetime and is not safe
// for concurrent use.
package st7735

import (
	"errors"
	"fmt"
	"log"
)

// Errors
var (
	ErrWindow     = errors.New("st7735: window end lies before window start")
	ErrRegionSize = errors.New("st7735: pixel count does not match window size")
)

// Model selects the controller generation and therefore its bring-up sequence.
type Model uint8

// Supported controllers.
const (
	ST7735 Model = iota
	ST7789
)

func (m Model) String() string {
	switch m {
	case ST7789:
		return "ST7789"
	default:
		return "ST7735"
	}
}

// Config is the driver configuration.
type Config struct {
	// Model of the panel controller, defaults to ST7735.
	Model Model

	// RGB is true when the panel expects RGB channel order, false for BGR.
	RGB bool

	// Inverted enables display inversion during Init.
	Inverted bool

	// Debug logs every transaction.
	Debug bool
}

func (d *Device) logf(format string, args ...any) {
	if d.debug {
		log.Printf("st7735: "+format, args...)
	}
}

// txError wraps a bus failure with the command it interrupted.
func txError(op Opcode, err error) error {
	return fmt.Errorf("st7735: %s: %w", op, err)
}
