package st7735

import "time"

var st7789Commands = commandSet{
	swreset: ST7789_SWRESET, slpin: ST7789_SLPIN, slpout: ST7789_SLPOUT,
	invon: ST7789_INVON, invoff: ST7789_INVOFF,
	dispon: ST7789_DISPON, dispoff: ST7789_DISPOFF,
	caset: ST7789_CASET, raset: ST7789_RASET, ramwr: ST7789_RAMWR,
	madctl: ST7789_MADCTL, colmod: ST7789_COLMOD,

	colorMode: 0x55, // 65K colors, 16-bits per pixel

	resetDelay:   150 * time.Millisecond,
	sleepDelay:   150 * time.Millisecond,
	displayDelay: 100 * time.Millisecond,

	configure: []command{
		{op: ST7789_PORCTRL, data: []byte{0x0C, 0x0C, 0x00, 0x33, 0x33}}, // Porch Setting: default
		{op: ST7789_GCTRL, data: []byte{0x35}},                           // Gate Control: 13.26V / -10.43V
		{op: ST7789_VCOMS, data: []byte{0x1A}},                           // VCOM Setting: 0.75V
		{op: ST7789_LCMCTRL, data: []byte{0x2C}},                         // LCM Control: default
		{op: ST7789_VDVVRHEN, data: []byte{0x01}},                        // VDV and VRH Command Enable
		{op: ST7789_VRHS, data: []byte{0x0B}},                            // VRH Set
		{op: ST7789_VDVSET, data: []byte{0x20}},                          // VDV Set: 0V
		{op: ST7789_VCMOFSET, data: []byte{0x20}},                        // VCOM Offset Set: 0V
		{op: ST7789_FRCTRL2, data: []byte{0x0F}},                         // 60Hz
		{op: ST7789_PWCTRL1, data: []byte{0xA4, 0xA1}},                   // Power Control 1: default
		{op: ST7789_PVGAMCTRL, data: []byte{0x00, 0x19, 0x1E, 0x0A, 0x09, 0x15, 0x3D, 0x44, 0x51, 0x12, 0x03, 0x00, 0x3F, 0x3F}},
		{op: ST7789_NVGAMCTRL, data: []byte{0x00, 0x18, 0x1E, 0x0A, 0x09, 0x25, 0x3F, 0x43, 0x52, 0x33, 0x03, 0x00, 0x3F, 0x3F}},
		{op: ST7789_NORON, delay: 10 * time.Millisecond},
	},
}
