// Package draw feeds pixel sequences into a panel one pixel at a time.
//
// Shapes and images are produced by iterators elsewhere; this package only
// forwards each (position, color) pair to the driver's pixel write, in order,
// and stops at the first failure. There is no clipping, buffering or batching.
package draw

import (
	"encoding/binary"
	"image"
	"iter"
	"math"
	"slices"

	"github.com/BeatGlow/st7735/pixel"
)

// Target is a device that writes single pixels, such as *st7735.Device.
type Target interface {
	SetPixel(x, y, color uint16) error
}

// Pixel is a position with a 16-bit 5-6-5 color.
type Pixel struct {
	X, Y  uint16
	Color uint16
}

// Pixels writes every pixel of seq to dst and returns the first error.
func Pixels(dst Target, seq iter.Seq[Pixel]) error {
	for p := range seq {
		if err := dst.SetPixel(p.X, p.Y, p.Color); err != nil {
			return err
		}
	}
	return nil
}

// Slice writes pixels to dst in order and returns the first error.
func Slice(dst Target, pixels []Pixel) error {
	return Pixels(dst, slices.Values(pixels))
}

// ImagePixels yields the pixels of src translated so that src.Bounds().Min
// lands on at. Pixels that fall outside the addressable 16-bit range are
// skipped.
func ImagePixels(src image.Image, at image.Point) iter.Seq[Pixel] {
	return func(yield func(Pixel) bool) {
		r := src.Bounds()
		for y := r.Min.Y; y < r.Max.Y; y++ {
			for x := r.Min.X; x < r.Max.X; x++ {
				px, py := x-r.Min.X+at.X, y-r.Min.Y+at.Y
				if !addressable(px, py) {
					continue
				}
				if !yield(Pixel{X: uint16(px), Y: uint16(py), Color: pixel.RGB565(src.At(x, y))}) {
					return
				}
			}
		}
	}
}

// RawPixels yields a w×h image stored as big-endian 5-6-5 words, row by row,
// with its top left corner at at. Trailing bytes that do not fill a whole
// image are ignored, as are pixels outside the addressable 16-bit range.
func RawPixels(data []byte, w, h int, at image.Point) iter.Seq[Pixel] {
	return func(yield func(Pixel) bool) {
		for i := 0; i < w*h && i*2+1 < len(data); i++ {
			px, py := at.X+i%w, at.Y+i/w
			if !addressable(px, py) {
				continue
			}
			p := Pixel{
				X:     uint16(px),
				Y:     uint16(py),
				Color: binary.BigEndian.Uint16(data[i*2:]),
			}
			if !yield(p) {
				return
			}
		}
	}
}

// addressable reports whether (x, y) fits a panel coordinate without wrapping.
func addressable(x, y int) bool {
	return x >= 0 && y >= 0 && x <= math.MaxUint16 && y <= math.MaxUint16
}
