package main

import (
	"flag"
	"fmt"
	"image"
	"image/color"
	"os"
	"strings"

	"golang.org/x/image/colornames"
	"periph.io/x/conn/v3/gpio/gpioreg"
	"periph.io/x/host/v3"

	"github.com/BeatGlow/st7735"
	"github.com/BeatGlow/st7735/conn"
	"github.com/BeatGlow/st7735/draw"
	"github.com/BeatGlow/st7735/pixel"
)

func main() {
	widthFlag := flag.Int("width", 160, "Display width")
	heightFlag := flag.Int("height", 128, "Display height")
	spiPortFlag := flag.String("spi", "", "SPI port (default: first available)")
	speedFlag := flag.Uint("speed", uint(conn.DefaultSPIConfig.SpeedHz), "SPI speed in Hz")
	resetPinFlag := flag.String("reset", "GPIO25", "Reset GPIO pin")
	dcPinFlag := flag.String("dc", "GPIO24", "Data/Command GPIO pin (DC)")
	rotateFlag := flag.String("rotate", "landscape", "Display orientation")
	rgbFlag := flag.Bool("rgb", false, "Panel uses RGB color order (default BGR)")
	invertFlag := flag.Bool("invert", false, "Panel needs color inversion")
	debugFlag := flag.Bool("debug", false, "Log every command")
	flag.Parse()

	if flag.NArg() != 1 {
		fmt.Fprintf(os.Stderr, "Usage: %s [flags] <st7735|st7789>\n", os.Args[0])
		os.Exit(1)
	}

	var model st7735.Model
	switch driver := strings.ToLower(flag.Arg(0)); driver {
	case "st7735":
		model = st7735.ST7735
	case "st7789":
		model = st7735.ST7789
	default:
		fatal(fmt.Errorf("unsupported driver %q", driver))
	}

	orientation, err := st7735.ParseOrientation(*rotateFlag)
	if err != nil {
		fatal(err)
	}

	if _, err = host.Init(); err != nil {
		fatal(err)
	}

	c, err := conn.OpenSPI(&conn.SPIConfig{
		Port:    *spiPortFlag,
		SpeedHz: uint32(*speedFlag),
		Mode:    conn.DefaultSPIConfig.Mode,
		Reset:   gpioreg.ByName(*resetPinFlag),
		DC:      gpioreg.ByName(*dcPinFlag),
	})
	if err != nil {
		fatal(err)
	}
	defer c.Close()
	fmt.Printf("using connection: %s\n", c)

	dev := st7735.NewWithConfig(c.Bus, c.DC, c.Reset, conn.Sleep, &st7735.Config{
		Model:    model,
		RGB:      *rgbFlag,
		Inverted: *invertFlag,
		Debug:    *debugFlag,
	})
	if err = dev.Init(); err != nil {
		fatal(err)
	}
	if err = dev.SetOrientation(orientation); err != nil {
		fatal(err)
	}
	fmt.Printf("using driver: %s, orientation %s\n", dev, orientation)

	w, h := uint16(*widthFlag), uint16(*heightFlag)
	if err = dev.FillRect(0, 0, w-1, h-1, pixel.RGB565(colornames.Black)); err != nil {
		fatal(err)
	}

	// Box around the edge, one pixel at a time
	border := pixel.RGB565(colornames.Orange)
	var edge []draw.Pixel
	for x := uint16(0); x < w; x++ {
		edge = append(edge, draw.Pixel{X: x, Y: 0, Color: border}, draw.Pixel{X: x, Y: h - 1, Color: border})
	}
	for y := uint16(1); y < h-1; y++ {
		edge = append(edge, draw.Pixel{X: 0, Y: y, Color: border}, draw.Pixel{X: w - 1, Y: y, Color: border})
	}
	if err = draw.Slice(dev, edge); err != nil {
		fatal(err)
	}

	// Gradient inside the box, streamed as one region
	gradient := make([]uint16, 0, int(w-2)*int(h-2))
	for y := 1; y < int(h)-1; y++ {
		for x := 1; x < int(w)-1; x++ {
			gradient = append(gradient, pixel.RGB565(color.RGBA{
				R: uint8(x + y),
				G: uint8(x - y),
				B: uint8(x * 2),
				A: 0xff,
			}))
		}
	}
	if err = dev.WriteRegion(1, 1, w-2, h-2, gradient); err != nil {
		fatal(err)
	}

	// Logo in the middle, through the image iterator
	logo := logoImage(image.Pt(int(w)/3, int(h)/3))
	at := image.Pt(int(w)/2-logo.Bounds().Dx()/2, int(h)/2-logo.Bounds().Dy()/2)
	if err = draw.Pixels(dev, draw.ImagePixels(logo, at)); err != nil {
		fatal(err)
	}
}

// logoImage renders a ring on a filled square.
func logoImage(size image.Point) image.Image {
	img := image.NewRGBA(image.Rectangle{Max: size})
	r := min(size.X, size.Y) / 2
	for y := 0; y < size.Y; y++ {
		for x := 0; x < size.X; x++ {
			dx, dy := x-size.X/2, y-size.Y/2
			d := dx*dx + dy*dy
			switch {
			case d <= r*r && d >= (r-3)*(r-3):
				img.Set(x, y, colornames.Gold)
			default:
				img.Set(x, y, colornames.Navy)
			}
		}
	}
	return img
}

func fatal(err error) {
	fmt.Fprintln(os.Stderr, "fatal: "+err.Error())
	os.Exit(1)
}
