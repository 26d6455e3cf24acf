package st7735

import "fmt"

// Opcode is a single command byte understood by a panel controller.
type Opcode interface {
	// Byte is the value transmitted on the wire.
	Byte() byte

	String() string
}

// Instruction is an ST7735 command (from st7735.pdf).
type Instruction byte

// ST7735 instructions.
const (
	NOP     Instruction = 0x00
	SWRESET Instruction = 0x01 // Software Reset
	RDDID   Instruction = 0x04
	RDDST   Instruction = 0x09
	SLPIN   Instruction = 0x10 // Sleep In
	SLPOUT  Instruction = 0x11 // Sleep Out
	PTLON   Instruction = 0x12 // Partial Display Mode On
	NORON   Instruction = 0x13 // Normal Display Mode On
	INVOFF  Instruction = 0x20 // Display Inversion Off
	INVON   Instruction = 0x21 // Display Inversion On
	DISPOFF Instruction = 0x28 // Display Off
	DISPON  Instruction = 0x29 // Display On
	CASET   Instruction = 0x2A // Column Address Set
	RASET   Instruction = 0x2B // Row Address Set
	RAMWR   Instruction = 0x2C // Memory Write
	RAMRD   Instruction = 0x2E // Memory Read
	PTLAR   Instruction = 0x30
	MADCTL  Instruction = 0x36 // Memory Data Access Control
	COLMOD  Instruction = 0x3A // Interface Pixel Format
	FRMCTR1 Instruction = 0xB1 // Frame Rate Control (normal mode)
	FRMCTR2 Instruction = 0xB2 // Frame Rate Control (idle mode)
	FRMCTR3 Instruction = 0xB3 // Frame Rate Control (partial mode)
	INVCTR  Instruction = 0xB4 // Display Inversion Control
	DISSET5 Instruction = 0xB6
	PWCTR1  Instruction = 0xC0 // Power Control 1
	PWCTR2  Instruction = 0xC1
	PWCTR3  Instruction = 0xC2
	PWCTR4  Instruction = 0xC3
	PWCTR5  Instruction = 0xC4
	VMCTR1  Instruction = 0xC5 // VCOM Control 1
	RDID1   Instruction = 0xDA
	RDID2   Instruction = 0xDB
	RDID3   Instruction = 0xDC
	RDID4   Instruction = 0xDD
	GMCTRP1 Instruction = 0xE0 // Positive Gamma Correction
	GMCTRN1 Instruction = 0xE1 // Negative Gamma Correction
	PWCTR6  Instruction = 0xFC
)

var instructionNames = map[Instruction]string{
	NOP: "NOP", SWRESET: "SWRESET", RDDID: "RDDID", RDDST: "RDDST",
	SLPIN: "SLPIN", SLPOUT: "SLPOUT", PTLON: "PTLON", NORON: "NORON",
	INVOFF: "INVOFF", INVON: "INVON", DISPOFF: "DISPOFF", DISPON: "DISPON",
	CASET: "CASET", RASET: "RASET", RAMWR: "RAMWR", RAMRD: "RAMRD",
	PTLAR: "PTLAR", MADCTL: "MADCTL", COLMOD: "COLMOD",
	FRMCTR1: "FRMCTR1", FRMCTR2: "FRMCTR2", FRMCTR3: "FRMCTR3",
	INVCTR: "INVCTR", DISSET5: "DISSET5",
	PWCTR1: "PWCTR1", PWCTR2: "PWCTR2", PWCTR3: "PWCTR3", PWCTR4: "PWCTR4", PWCTR5: "PWCTR5",
	VMCTR1: "VMCTR1", RDID1: "RDID1", RDID2: "RDID2", RDID3: "RDID3", RDID4: "RDID4",
	GMCTRP1: "GMCTRP1", GMCTRN1: "GMCTRN1", PWCTR6: "PWCTR6",
}

func (i Instruction) Byte() byte { return byte(i) }

func (i Instruction) String() string {
	if name, ok := instructionNames[i]; ok {
		return name
	}
	return fmt.Sprintf("Instruction(%#02x)", byte(i))
}

// InstructionST7789 is an ST7789 command (from st7789.pdf).
type InstructionST7789 byte

// ST7789 instructions.
const (
	ST7789_NOP       InstructionST7789 = 0x00
	ST7789_SWRESET   InstructionST7789 = 0x01
	ST7789_RDDID     InstructionST7789 = 0x04
	ST7789_RDDST     InstructionST7789 = 0x09
	ST7789_SLPIN     InstructionST7789 = 0x10
	ST7789_SLPOUT    InstructionST7789 = 0x11
	ST7789_PTLON     InstructionST7789 = 0x12
	ST7789_NORON     InstructionST7789 = 0x13
	ST7789_INVOFF    InstructionST7789 = 0x20
	ST7789_INVON     InstructionST7789 = 0x21
	ST7789_DISPOFF   InstructionST7789 = 0x28
	ST7789_DISPON    InstructionST7789 = 0x29
	ST7789_CASET     InstructionST7789 = 0x2A
	ST7789_RASET     InstructionST7789 = 0x2B
	ST7789_RAMWR     InstructionST7789 = 0x2C
	ST7789_RAMRD     InstructionST7789 = 0x2E
	ST7789_PTLAR     InstructionST7789 = 0x30
	ST7789_MADCTL    InstructionST7789 = 0x36
	ST7789_COLMOD    InstructionST7789 = 0x3A
	ST7789_PORCTRL   InstructionST7789 = 0xB2 // Porch Setting
	ST7789_GCTRL     InstructionST7789 = 0xB7 // Gate Control
	ST7789_VCOMS     InstructionST7789 = 0xBB // VCOM Setting
	ST7789_LCMCTRL   InstructionST7789 = 0xC0 // LCM Control
	ST7789_VDVVRHEN  InstructionST7789 = 0xC2 // VDV and VRH Command Enable
	ST7789_VRHS      InstructionST7789 = 0xC3 // VRH Set
	ST7789_VDVSET    InstructionST7789 = 0xC4 // VDV Set
	ST7789_VCMOFSET  InstructionST7789 = 0xC5 // VCOM Offset Set
	ST7789_FRCTRL2   InstructionST7789 = 0xC6 // Frame Rate Control in Normal Mode
	ST7789_PWCTRL1   InstructionST7789 = 0xD0 // Power Control 1
	ST7789_RDID1     InstructionST7789 = 0xDA
	ST7789_RDID2     InstructionST7789 = 0xDB
	ST7789_RDID3     InstructionST7789 = 0xDC
	ST7789_RDID4     InstructionST7789 = 0xDD
	ST7789_PVGAMCTRL InstructionST7789 = 0xE0 // Positive Voltage Gamma Control
	ST7789_NVGAMCTRL InstructionST7789 = 0xE1 // Negative Voltage Gamma Control
)

var instructionST7789Names = map[InstructionST7789]string{
	ST7789_NOP: "NOP", ST7789_SWRESET: "SWRESET", ST7789_RDDID: "RDDID", ST7789_RDDST: "RDDST",
	ST7789_SLPIN: "SLPIN", ST7789_SLPOUT: "SLPOUT", ST7789_PTLON: "PTLON", ST7789_NORON: "NORON",
	ST7789_INVOFF: "INVOFF", ST7789_INVON: "INVON", ST7789_DISPOFF: "DISPOFF", ST7789_DISPON: "DISPON",
	ST7789_CASET: "CASET", ST7789_RASET: "RASET", ST7789_RAMWR: "RAMWR", ST7789_RAMRD: "RAMRD",
	ST7789_PTLAR: "PTLAR", ST7789_MADCTL: "MADCTL", ST7789_COLMOD: "COLMOD",
	ST7789_PORCTRL: "PORCTRL", ST7789_GCTRL: "GCTRL", ST7789_VCOMS: "VCOMS", ST7789_LCMCTRL: "LCMCTRL",
	ST7789_VDVVRHEN: "VDVVRHEN", ST7789_VRHS: "VRHS", ST7789_VDVSET: "VDVSET", ST7789_VCMOFSET: "VCMOFSET",
	ST7789_FRCTRL2: "FRCTRL2", ST7789_PWCTRL1: "PWCTRL1",
	ST7789_RDID1: "RDID1", ST7789_RDID2: "RDID2", ST7789_RDID3: "RDID3", ST7789_RDID4: "RDID4",
	ST7789_PVGAMCTRL: "PVGAMCTRL", ST7789_NVGAMCTRL: "NVGAMCTRL",
}

func (i InstructionST7789) Byte() byte { return byte(i) }

func (i InstructionST7789) String() string {
	if name, ok := instructionST7789Names[i]; ok {
		return name
	}
	return fmt.Sprintf("InstructionST7789(%#02x)", byte(i))
}

// Memory Data Access Control (MADCTL) bit fields.
const (
	_          byte = 1 << iota // D0: reserved
	_                           // D1: reserved
	MADCTL_MH                   // D2: display data latch order
	MADCTL_BGR                  // D3: RGB/BGR order
	MADCTL_ML                   // D4: line address order
	MADCTL_MV                   // D5: page/column order
	MADCTL_MX                   // D6: column address order
	MADCTL_MY                   // D7: page address order

	MADCTL_RGB byte = 0x00
)
