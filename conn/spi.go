// Package conn binds the driver to periph.io and TinyGo hardware.
package conn

import (
	"errors"
	"fmt"
	"time"

	"periph.io/x/conn/v3"
	"periph.io/x/conn/v3/gpio"
	"periph.io/x/conn/v3/physic"
	"periph.io/x/conn/v3/spi"
	"periph.io/x/conn/v3/spi/spireg"

	"github.com/BeatGlow/st7735"
)

// Conn errors.
var (
	ErrResetPin = errors.New("conn: reset GPIO pin is invalid")
	ErrDCPin    = errors.New("conn: data/command (DC) GPIO pin is invalid")
)

// defaultMaxTxSize is used when the connection does not report a limit.
const defaultMaxTxSize = 4096

// Sleep is the default delay, backed by time.Sleep.
var Sleep st7735.Delayer = st7735.DelayFunc(time.Sleep)

// SPIConfig describes the SPI bus configuration.
type SPIConfig struct {
	// Port is the spireg port name, empty for the first available port.
	Port string

	// SpeedHz is the SPI clock, it must be one of ValidSPISpeeds.
	SpeedHz uint32

	// Mode is the SPI mode, the panels sample on the rising edge (mode 0).
	Mode spi.Mode

	// Reset pin
	Reset gpio.PinOut

	// DC is the data/command selector pin.
	DC gpio.PinOut
}

// DefaultSPIConfig are the default configuration values.
var DefaultSPIConfig = SPIConfig{
	SpeedHz: 8_000_000,
	Mode:    spi.Mode0,
}

// ValidSPISpeeds are common valid SPI bus speeds.
var ValidSPISpeeds = []uint32{
	500_000,
	1_000_000,
	2_000_000,
	4_000_000,
	8_000_000,
	16_000_000,
	20_000_000,
	24_000_000,
	32_000_000,
	40_000_000,
}

// SPI is an open SPI port with the pins the driver needs.
type SPI struct {
	port  spi.PortCloser
	Bus   *Bus
	DC    *Pin
	Reset *Pin
}

// OpenSPI opens and connects the SPI port described by config. A nil config
// uses DefaultSPIConfig, which has no pins and therefore fails.
func OpenSPI(config *SPIConfig) (*SPI, error) {
	if config == nil {
		config = new(SPIConfig)
		*config = DefaultSPIConfig
	}

	if config.Reset == nil || config.Reset == gpio.INVALID {
		return nil, ErrResetPin
	}
	if config.DC == nil || config.DC == gpio.INVALID {
		return nil, ErrDCPin
	}

	if config.SpeedHz == 0 {
		config.SpeedHz = DefaultSPIConfig.SpeedHz
	}
	var valid bool
	for _, speed := range ValidSPISpeeds {
		if valid = speed == config.SpeedHz; valid {
			break
		}
	}
	if !valid {
		return nil, fmt.Errorf("conn: invalid SPI speed %dHz", config.SpeedHz)
	}

	p, err := spireg.Open(config.Port)
	if err != nil {
		return nil, err
	}

	c, err := p.Connect(physic.Frequency(config.SpeedHz)*physic.Hertz, config.Mode, 8)
	if err != nil {
		_ = p.Close()
		return nil, err
	}

	return &SPI{
		port:  p,
		Bus:   NewBus(c, 0),
		DC:    NewPin(config.DC),
		Reset: NewPin(config.Reset),
	}, nil
}

func (s *SPI) String() string {
	return fmt.Sprintf("SPI port %s", s.port)
}

// Close the SPI port.
func (s *SPI) Close() error {
	return s.port.Close()
}

// Bus writes to a periph.io connection, splitting writes larger than the
// connection allows.
type Bus struct {
	c         conn.Conn
	maxTxSize int
}

// NewBus wraps c. With maxTxSize 0 the limit reported by c is used, or 4096
// bytes if it reports none.
func NewBus(c conn.Conn, maxTxSize int) *Bus {
	if maxTxSize <= 0 {
		if limits, ok := c.(conn.Limits); ok {
			maxTxSize = limits.MaxTxSize()
		}
	}
	if maxTxSize <= 0 {
		maxTxSize = defaultMaxTxSize
	}
	return &Bus{c: c, maxTxSize: maxTxSize}
}

func (b *Bus) String() string {
	return b.c.String()
}

// Tx writes w in chunks of at most the transaction limit. Reads are passed
// through unsplit.
func (b *Bus) Tx(w, r []byte) error {
	if len(r) > 0 || len(w) <= b.maxTxSize {
		return b.c.Tx(w, r)
	}
	for len(w) > 0 {
		n := min(len(w), b.maxTxSize)
		if err := b.c.Tx(w[:n], nil); err != nil {
			return err
		}
		w = w[n:]
	}
	return nil
}
