// Package pixel implements the 16-bit 5-6-5 color format written to ST77xx panels.
//
// The color type is compatible with Go's native [color.Color] and [color.Model]
// interfaces, so any [image.Image] can be converted to panel words.
package pixel
