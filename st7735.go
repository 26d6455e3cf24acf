package st7735

import (
	"encoding/binary"
	"fmt"
	"time"
)

// batchSize is the size of the scratch buffer used to stream pixel data.
const batchSize = 64

// resetPulse is how long the reset line is held low, and released, during a
// hardware reset.
const resetPulse = 10 * time.Millisecond

// command is one step of a bring-up sequence.
type command struct {
	op    Opcode
	data  []byte
	delay time.Duration
}

// commandSet holds the opcodes and calibration of one controller generation.
type commandSet struct {
	swreset, slpin, slpout Opcode
	invon, invoff          Opcode
	dispon, dispoff        Opcode
	caset, raset, ramwr    Opcode
	madctl, colmod         Opcode

	// colorMode is the COLMOD parameter, 16 bits per pixel.
	colorMode byte

	// settle delays after SWRESET, SLPIN/SLPOUT and DISPON
	resetDelay, sleepDelay, displayDelay time.Duration

	// configure runs between SLPOUT and the inversion setting.
	configure []command
}

var st7735Commands = commandSet{
	swreset: SWRESET, slpin: SLPIN, slpout: SLPOUT,
	invon: INVON, invoff: INVOFF,
	dispon: DISPON, dispoff: DISPOFF,
	caset: CASET, raset: RASET, ramwr: RAMWR,
	madctl: MADCTL, colmod: COLMOD,

	colorMode: 0x05, // 16-bits per pixel

	resetDelay:   50 * time.Millisecond,
	sleepDelay:   50 * time.Millisecond,
	displayDelay: 50 * time.Millisecond,

	// Calibration values for the 1.8" panels; power rails first, the later
	// entries depend on them.
	configure: []command{
		{op: FRMCTR1, data: []byte{0x01, 0x2C, 0x2D}},
		{op: FRMCTR2, data: []byte{0x01, 0x2C, 0x2D}},
		{op: FRMCTR3, data: []byte{0x01, 0x2C, 0x2D, 0x01, 0x2C, 0x2D}},
		{op: INVCTR, data: []byte{0x07}},
		{op: PWCTR1, data: []byte{0xA2, 0x02, 0x84}},
		{op: PWCTR2, data: []byte{0xC5}},
		{op: PWCTR3, data: []byte{0x0A, 0x00}},
		{op: PWCTR4, data: []byte{0x8A, 0x2A}},
		{op: PWCTR5, data: []byte{0x8A, 0xEE}},
		{op: VMCTR1, data: []byte{0x0E}},
	},
}

// Device is a handle to an ST7735 or ST7789 panel.
type Device struct {
	bus   Bus
	dc    OutputPin // low for commands, high for data
	rst   OutputPin // active low
	delay Delayer

	model    Model
	cmds     *commandSet
	rgb      bool
	inverted bool
	debug    bool

	cmdBuf [1]byte
	buf    [batchSize]byte
}

// New returns an ST7735 driver. It takes ownership of the bus, the
// data/command pin dc, the reset pin rst and the delay. No I/O is performed
// until Init is called.
//
// rgb selects RGB channel order (false for BGR), inverted enables display
// inversion.
func New(bus Bus, dc, rst OutputPin, delay Delayer, rgb, inverted bool) *Device {
	return NewWithConfig(bus, dc, rst, delay, &Config{
		Model:    ST7735,
		RGB:      rgb,
		Inverted: inverted,
	})
}

// NewWithConfig is like New, with the controller model and debugging taken from
// config. A nil config selects an ST7735 in BGR order without inversion.
func NewWithConfig(bus Bus, dc, rst OutputPin, delay Delayer, config *Config) *Device {
	if config == nil {
		config = new(Config)
	}

	d := &Device{
		bus:      bus,
		dc:       dc,
		rst:      rst,
		delay:    delay,
		model:    config.Model,
		cmds:     &st7735Commands,
		rgb:      config.RGB,
		inverted: config.Inverted,
		debug:    config.Debug,
	}
	if config.Model == ST7789 {
		d.cmds = &st7789Commands
	}
	return d
}

func (d *Device) String() string {
	order := "BGR"
	if d.rgb {
		order = "RGB"
	}
	return fmt.Sprintf("%s %s inverted=%t", d.model, order, d.inverted)
}

// Model returns the controller model.
func (d *Device) Model() Model {
	return d.model
}

// Init runs the bring-up sequence. It must be called once before any pixel
// operation. On error the panel state is unknown and the sequence has been
// aborted at the failing command.
func (d *Device) Init() (err error) {
	d.Reset()

	if err = d.command(d.cmds.swreset); err != nil {
		return
	}
	d.delay.Sleep(d.cmds.resetDelay)

	if err = d.command(d.cmds.slpout); err != nil {
		return
	}
	d.delay.Sleep(d.cmds.sleepDelay)

	if err = d.commands(d.cmds.configure); err != nil {
		return
	}

	if d.inverted {
		err = d.command(d.cmds.invon)
	} else {
		err = d.command(d.cmds.invoff)
	}
	if err != nil {
		return
	}

	madctl := MADCTL_RGB
	if !d.rgb {
		madctl = MADCTL_BGR
	}
	if err = d.command(d.cmds.madctl, madctl); err != nil {
		return
	}

	if err = d.command(d.cmds.colmod, d.cmds.colorMode); err != nil {
		return
	}

	if err = d.command(d.cmds.dispon); err != nil {
		return
	}
	d.delay.Sleep(d.cmds.displayDelay)

	d.logf("%s initialized", d)
	return
}

// Reset pulses the reset line, returning the controller to its power-on state.
// The panel stays blank until Init runs again.
func (d *Device) Reset() {
	d.rst.High()
	d.rst.Low()
	d.delay.Sleep(resetPulse)
	d.rst.High()
	d.delay.Sleep(resetPulse)
}

// SetOrientation sets the scan direction. The color order bit lives in the same
// register, so it is combined into the same write.
func (d *Device) SetOrientation(orientation Orientation) error {
	madctl := orientation.Byte()
	if !d.rgb {
		madctl |= MADCTL_BGR
	}
	d.logf("madctl %s -> %#02x", orientation, madctl)
	return d.command(d.cmds.madctl, madctl)
}

// SetPixel writes a single 16-bit color at (x, y).
func (d *Device) SetPixel(x, y, color uint16) error {
	if err := d.setAddressWindow(x, y, x, y); err != nil {
		return err
	}
	if err := d.command(d.cmds.ramwr); err != nil {
		return err
	}
	return d.writeWord(d.cmds.ramwr, color)
}

// FillRect fills the inclusive window (x0,y0)-(x1,y1) with one color.
func (d *Device) FillRect(x0, y0, x1, y1, color uint16) error {
	n, err := windowArea(x0, y0, x1, y1)
	if err != nil {
		return err
	}
	if err = d.setAddressWindow(x0, y0, x1, y1); err != nil {
		return err
	}
	if err = d.command(d.cmds.ramwr); err != nil {
		return err
	}

	k := min(n, batchSize/2)
	for i := 0; i < k; i++ {
		binary.BigEndian.PutUint16(d.buf[i*2:], color)
	}
	for n > 0 {
		k = min(n, batchSize/2)
		if err = d.writeData(d.cmds.ramwr, d.buf[:k*2]); err != nil {
			return err
		}
		n -= k
	}
	return nil
}

// WriteRegion streams colors into the inclusive window (x0,y0)-(x1,y1), row by
// row. len(colors) must match the window area.
func (d *Device) WriteRegion(x0, y0, x1, y1 uint16, colors []uint16) error {
	n, err := windowArea(x0, y0, x1, y1)
	if err != nil {
		return err
	}
	if n != len(colors) {
		return fmt.Errorf("%w: %d pixels for a %d pixel window", ErrRegionSize, len(colors), n)
	}
	if err = d.setAddressWindow(x0, y0, x1, y1); err != nil {
		return err
	}
	if err = d.command(d.cmds.ramwr); err != nil {
		return err
	}

	for len(colors) > 0 {
		k := min(len(colors), batchSize/2)
		for i, c := range colors[:k] {
			binary.BigEndian.PutUint16(d.buf[i*2:], c)
		}
		if err = d.writeData(d.cmds.ramwr, d.buf[:k*2]); err != nil {
			return err
		}
		colors = colors[k:]
	}
	return nil
}

// Show toggles the display on or off.
func (d *Device) Show(show bool) error {
	if show {
		return d.command(d.cmds.dispon)
	}
	return d.command(d.cmds.dispoff)
}

// Sleep enters or leaves sleep mode and waits for the panel to settle.
func (d *Device) Sleep(sleep bool) error {
	op := d.cmds.slpout
	if sleep {
		op = d.cmds.slpin
	}
	if err := d.command(op); err != nil {
		return err
	}
	d.delay.Sleep(d.cmds.sleepDelay)
	return nil
}

// Invert toggles display inversion.
func (d *Device) Invert(invert bool) error {
	if invert {
		return d.command(d.cmds.invon)
	}
	return d.command(d.cmds.invoff)
}

// setAddressWindow sets the inclusive column and row bounds of the next memory
// write. The window is set again before every write, the panel state is never
// assumed.
func (d *Device) setAddressWindow(x0, y0, x1, y1 uint16) error {
	if err := d.command(d.cmds.caset); err != nil {
		return err
	}
	if err := d.writeData(d.cmds.caset, putWords(d.buf[:4], x0, x1)); err != nil {
		return err
	}
	if err := d.command(d.cmds.raset); err != nil {
		return err
	}
	return d.writeData(d.cmds.raset, putWords(d.buf[:4], y0, y1))
}

func (d *Device) commands(commands []command) error {
	for _, c := range commands {
		if err := d.command(c.op, c.data...); err != nil {
			return err
		}
		if c.delay > 0 {
			d.delay.Sleep(c.delay)
		}
	}
	return nil
}

// command sends an opcode followed by its optional parameters.
func (d *Device) command(op Opcode, data ...byte) error {
	d.logf("%s % x", op, data)
	if err := d.writeCommand(op); err != nil {
		return err
	}
	if len(data) > 0 {
		return d.writeData(op, data)
	}
	return nil
}

func (d *Device) writeCommand(op Opcode) error {
	d.cmdBuf[0] = op.Byte()
	d.dc.Low()
	if err := d.bus.Tx(d.cmdBuf[:], nil); err != nil {
		return txError(op, err)
	}
	return nil
}

// writeData sends parameter or pixel bytes belonging to op.
func (d *Device) writeData(op Opcode, data []byte) error {
	d.dc.High()
	if err := d.bus.Tx(data, nil); err != nil {
		return txError(op, err)
	}
	return nil
}

// writeWord sends v most significant byte first.
func (d *Device) writeWord(op Opcode, v uint16) error {
	var word [2]byte
	binary.BigEndian.PutUint16(word[:], v)
	return d.writeData(op, word[:])
}

// putWords encodes each value big-endian into b, which must hold 2 bytes per
// value.
func putWords(b []byte, values ...uint16) []byte {
	for i, v := range values {
		binary.BigEndian.PutUint16(b[i*2:], v)
	}
	return b[:len(values)*2]
}

func windowArea(x0, y0, x1, y1 uint16) (int, error) {
	if x1 < x0 || y1 < y0 {
		return 0, ErrWindow
	}
	return (int(x1-x0) + 1) * (int(y1-y0) + 1), nil
}
