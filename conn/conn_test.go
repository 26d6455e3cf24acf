package conn

import (
	"errors"
	"testing"

	"periph.io/x/conn/v3/gpio"
	"periph.io/x/conn/v3/gpio/gpiotest"
	"periph.io/x/conn/v3/physic"
	"periph.io/x/conn/v3/spi"
	"periph.io/x/conn/v3/spi/spitest"
)

func TestPin(t *testing.T) {
	p := &gpiotest.Pin{N: "GPIO24"}
	pin := NewPin(p)

	pin.High()
	if p.L != gpio.High {
		t.Errorf("expected pin to be high, got %s", p.L)
	}
	pin.Low()
	if p.L != gpio.Low {
		t.Errorf("expected pin to be low, got %s", p.L)
	}
}

func TestBusChunks(t *testing.T) {
	r := &spitest.Record{}
	c, err := r.Connect(physic.MegaHertz, spi.Mode0, 8)
	if err != nil {
		t.Fatal(err)
	}

	bus := NewBus(c, 4)
	data := []byte{1, 2, 3, 4, 5, 6, 7, 8, 9, 10}
	if err = bus.Tx(data, nil); err != nil {
		t.Fatal(err)
	}

	want := [][]byte{{1, 2, 3, 4}, {5, 6, 7, 8}, {9, 10}}
	if len(r.Ops) != len(want) {
		t.Fatalf("expected %d transactions, got %d", len(want), len(r.Ops))
	}
	for i, op := range r.Ops {
		if string(op.W) != string(want[i]) {
			t.Errorf("transaction %d: expected % x, got % x", i, want[i], op.W)
		}
	}
}

func TestBusSmallWrite(t *testing.T) {
	r := &spitest.Record{}
	c, err := r.Connect(physic.MegaHertz, spi.Mode0, 8)
	if err != nil {
		t.Fatal(err)
	}

	bus := NewBus(c, 0)
	if bus.maxTxSize != defaultMaxTxSize {
		t.Errorf("expected default limit %d, got %d", defaultMaxTxSize, bus.maxTxSize)
	}
	if err = bus.Tx([]byte{0x2c}, nil); err != nil {
		t.Fatal(err)
	}
	if len(r.Ops) != 1 || len(r.Ops[0].W) != 1 || r.Ops[0].W[0] != 0x2c {
		t.Errorf("expected a single 0x2c write, got %v", r.Ops)
	}
}

func TestOpenSPIValidation(t *testing.T) {
	pin := &gpiotest.Pin{N: "GPIO25"}
	tests := []struct {
		name   string
		config *SPIConfig
		want   error
	}{
		{"default has no pins", nil, ErrResetPin},
		{"invalid reset", &SPIConfig{Reset: gpio.INVALID, DC: pin}, ErrResetPin},
		{"missing dc", &SPIConfig{Reset: pin}, ErrDCPin},
	}
	for _, test := range tests {
		t.Run(test.name, func(it *testing.T) {
			if _, err := OpenSPI(test.config); !errors.Is(err, test.want) {
				it.Errorf("expected %v, got %v", test.want, err)
			}
		})
	}

	if _, err := OpenSPI(&SPIConfig{Reset: pin, DC: pin, SpeedHz: 12345}); err == nil {
		t.Error("expected invalid speed to fail")
	}
}
