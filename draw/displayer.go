package draw

import (
	"image/color"

	"tinygo.org/x/drivers"

	"github.com/BeatGlow/st7735/pixel"
)

// Displayer exposes a Target as a TinyGo drivers.Displayer, so tinyfont,
// tinydraw and friends can render through it.
//
// SetPixel transmits immediately. The first failure is kept, further pixels are
// dropped, and Display reports it.
type Displayer struct {
	dst           Target
	width, height int16
	err           error
}

var _ drivers.Displayer = (*Displayer)(nil)

// NewDisplayer returns a Displayer of the given size writing to dst.
func NewDisplayer(dst Target, width, height int16) *Displayer {
	return &Displayer{dst: dst, width: width, height: height}
}

// Size returns the display size in pixels.
func (d *Displayer) Size() (x, y int16) {
	return d.width, d.height
}

// SetPixel writes one pixel. Coordinates outside the display are ignored.
func (d *Displayer) SetPixel(x, y int16, c color.RGBA) {
	if d.err != nil || x < 0 || y < 0 || x >= d.width || y >= d.height {
		return
	}
	d.err = d.dst.SetPixel(uint16(x), uint16(y), pixel.RGB565(c))
}

// Display returns the first error seen by SetPixel and clears it.
func (d *Displayer) Display() error {
	err := d.err
	d.err = nil
	return err
}
