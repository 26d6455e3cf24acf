package st7735

import (
	"errors"
	"strings"
)

// ErrOrientation is returned by ParseOrientation for unknown names.
var ErrOrientation = errors.New("st7735: unknown orientation")

// Orientation is the MADCTL scan direction of the panel.
type Orientation byte

// Supported orientations.
const (
	Portrait         Orientation = 0x00
	Landscape        Orientation = Orientation(MADCTL_MX | MADCTL_MV) // 0x60
	PortraitSwapped  Orientation = Orientation(MADCTL_MY | MADCTL_MX) // 0xC0
	LandscapeSwapped Orientation = Orientation(MADCTL_MY | MADCTL_MV) // 0xA0
)

// Orientations lists every supported orientation.
var Orientations = []Orientation{Portrait, Landscape, PortraitSwapped, LandscapeSwapped}

// Byte is the MADCTL control value, without the color order bit.
func (o Orientation) Byte() byte { return byte(o) }

func (o Orientation) String() string {
	switch o {
	case Portrait:
		return "portrait"
	case Landscape:
		return "landscape"
	case PortraitSwapped:
		return "portrait-swapped"
	case LandscapeSwapped:
		return "landscape-swapped"
	default:
		return "unknown"
	}
}

// ParseOrientation parses an orientation by name or by clockwise degrees.
func ParseOrientation(s string) (Orientation, error) {
	switch strings.ToLower(s) {
	case "", "portrait", "0", "no":
		return Portrait, nil
	case "landscape", "90", "right", "cw":
		return Landscape, nil
	case "portrait-swapped", "180", "flip":
		return PortraitSwapped, nil
	case "landscape-swapped", "270", "left", "ccw":
		return LandscapeSwapped, nil
	default:
		return 0, ErrOrientation
	}
}
