package draw

import (
	"errors"
	"fmt"
	"image"
	"image/color"
	"testing"
	"time"

	"github.com/BeatGlow/st7735"
	"github.com/BeatGlow/st7735/pixel"
)

var errWrite = errors.New("write failed")

// target records SetPixel calls and fails the n-th one.
type target struct {
	calls  []Pixel
	failAt int
}

func (t *target) SetPixel(x, y, c uint16) error {
	t.calls = append(t.calls, Pixel{X: x, Y: y, Color: c})
	if len(t.calls) == t.failAt {
		return errWrite
	}
	return nil
}

func TestSliceStopsAtFirstFailure(t *testing.T) {
	dst := &target{failAt: 2}
	err := Slice(dst, []Pixel{{1, 1, 0xFFFF}, {2, 2, 0x0000}, {3, 3, 0x1234}})
	if !errors.Is(err, errWrite) {
		t.Fatalf("expected %v, got %v", errWrite, err)
	}
	if len(dst.calls) != 2 {
		t.Errorf("expected 2 calls, got %d", len(dst.calls))
	}
}

func TestSliceOrder(t *testing.T) {
	dst := new(target)
	pixels := []Pixel{{3, 1, 0x1}, {1, 2, 0x2}, {2, 0, 0x3}}
	if err := Slice(dst, pixels); err != nil {
		t.Fatal(err)
	}
	for i, p := range pixels {
		if dst.calls[i] != p {
			t.Errorf("call %d: expected %v, got %v", i, p, dst.calls[i])
		}
	}
}

// failingBus fails the n-th transmission.
type failingBus struct {
	txs    int
	failAt int
}

func (b *failingBus) Tx(w, r []byte) error {
	b.txs++
	if b.txs == b.failAt {
		return errWrite
	}
	return nil
}

type nopPin struct{}

func (nopPin) High() {}
func (nopPin) Low()  {}

func TestPixelsOnDevice(t *testing.T) {
	// Every pixel costs six transmissions: CASET, x, RASET, y, RAMWR, color.
	bus := &failingBus{failAt: 7}
	dev := st7735.New(bus, nopPin{}, nopPin{}, st7735.DelayFunc(func(time.Duration) {}), true, false)

	err := Slice(dev, []Pixel{{1, 1, 0xFFFF}, {2, 2, 0x0000}, {3, 3, 0xFFFF}})
	if !errors.Is(err, errWrite) {
		t.Fatalf("expected %v, got %v", errWrite, err)
	}
	if bus.txs != 7 {
		t.Errorf("expected 7 transmissions, got %d", bus.txs)
	}
}

func TestImagePixels(t *testing.T) {
	src := image.NewRGBA(image.Rect(10, 20, 12, 22))
	src.Set(10, 20, color.RGBA{0xff, 0, 0, 0xff})
	src.Set(11, 21, color.RGBA{0, 0, 0xff, 0xff})

	var got []Pixel
	for p := range ImagePixels(src, image.Pt(5, 6)) {
		got = append(got, p)
	}
	want := []Pixel{
		{5, 6, pixel.Red.V},
		{6, 6, 0},
		{5, 7, 0},
		{6, 7, pixel.Blue.V},
	}
	if fmt.Sprint(got) != fmt.Sprint(want) {
		t.Errorf("expected %v, got %v", want, got)
	}
}

func TestImagePixelsSkipsNegative(t *testing.T) {
	src := image.NewRGBA(image.Rect(0, 0, 2, 2))
	var n int
	for range ImagePixels(src, image.Pt(-1, 0)) {
		n++
	}
	if n != 2 {
		t.Errorf("expected 2 pixels, got %d", n)
	}
}

func TestImagePixelsSkipsOverflow(t *testing.T) {
	src := image.NewRGBA(image.Rect(0, 0, 2, 1))
	for _, at := range []image.Point{image.Pt(65541, 0), image.Pt(0, 65536), image.Pt(65535, 0)} {
		var got []Pixel
		for p := range ImagePixels(src, at) {
			got = append(got, p)
		}
		want := 0
		if at.X == 65535 {
			want = 1
		}
		if len(got) != want {
			t.Errorf("at %v: expected %d pixels, got %v", at, want, got)
		}
		if want == 1 && got[0].X != 65535 {
			t.Errorf("at %v: expected column 65535, got %d", at, got[0].X)
		}
	}
}

func TestRawPixelsSkipsNegative(t *testing.T) {
	data := []byte{0xF8, 0x00, 0x07, 0xE0}
	var got []Pixel
	for p := range RawPixels(data, 2, 1, image.Pt(-1, 0)) {
		got = append(got, p)
	}
	want := []Pixel{{X: 0, Y: 0, Color: 0x07E0}}
	if fmt.Sprint(got) != fmt.Sprint(want) {
		t.Errorf("expected %v, got %v", want, got)
	}

	got = got[:0]
	for p := range RawPixels(data, 1, 2, image.Pt(0, -1)) {
		got = append(got, p)
	}
	if fmt.Sprint(got) != fmt.Sprint(want) {
		t.Errorf("expected %v, got %v", want, got)
	}
}

func TestRawPixelsSkipsOverflow(t *testing.T) {
	data := []byte{0xF8, 0x00, 0x07, 0xE0}
	var got []Pixel
	for p := range RawPixels(data, 2, 1, image.Pt(65535, 7)) {
		got = append(got, p)
	}
	want := []Pixel{{X: 65535, Y: 7, Color: 0xF800}}
	if fmt.Sprint(got) != fmt.Sprint(want) {
		t.Errorf("expected %v, got %v", want, got)
	}

	for p := range RawPixels(data, 2, 1, image.Pt(65541, 0)) {
		t.Errorf("expected no pixels, got %v", p)
	}
}

func TestRawPixels(t *testing.T) {
	data := []byte{0xF8, 0x00, 0x07, 0xE0, 0x00, 0x1F, 0xFF, 0xFF, 0xAA}
	var got []Pixel
	for p := range RawPixels(data, 2, 2, image.Pt(40, 33)) {
		got = append(got, p)
	}
	want := []Pixel{
		{40, 33, 0xF800},
		{41, 33, 0x07E0},
		{40, 34, 0x001F},
		{41, 34, 0xFFFF},
	}
	if fmt.Sprint(got) != fmt.Sprint(want) {
		t.Errorf("expected %v, got %v", want, got)
	}
}

func TestRawPixelsShortData(t *testing.T) {
	var n int
	for range RawPixels([]byte{0x00, 0x01, 0x02}, 4, 4, image.Point{}) {
		n++
	}
	if n != 1 {
		t.Errorf("expected 1 pixel, got %d", n)
	}
}

func TestDisplayer(t *testing.T) {
	dst := &target{failAt: 2}
	d := NewDisplayer(dst, 160, 128)

	if x, y := d.Size(); x != 160 || y != 128 {
		t.Errorf("expected size 160x128, got %dx%d", x, y)
	}

	d.SetPixel(-1, 0, color.RGBA{})
	d.SetPixel(160, 0, color.RGBA{})
	d.SetPixel(0, 0, color.RGBA{0xff, 0xff, 0xff, 0xff})
	d.SetPixel(1, 0, color.RGBA{})
	d.SetPixel(2, 0, color.RGBA{})

	if len(dst.calls) != 2 {
		t.Errorf("expected 2 calls, got %d", len(dst.calls))
	}
	if dst.calls[0].Color != 0xFFFF {
		t.Errorf("expected first pixel to be white, got %#04x", dst.calls[0].Color)
	}
	if err := d.Display(); !errors.Is(err, errWrite) {
		t.Errorf("expected %v, got %v", errWrite, err)
	}
	if err := d.Display(); err != nil {
		t.Errorf("expected error to be cleared, got %v", err)
	}
}
