// Package regs holds the RA8876 register map and bit definitions shared by the
// driver packages and the simulator.
package regs

// Status register bits (read through the status port, not a register address).
const (
	StatusWriteFIFOFull  byte = 0x80
	StatusWriteFIFOEmpty byte = 0x40
	StatusReadFIFOFull   byte = 0x20
	StatusReadFIFOEmpty  byte = 0x10
	StatusCoreBusy       byte = 0x08
	StatusSDRAMReady     byte = 0x04
	StatusInhibit        byte = 0x02
)

// Chip configuration.
const (
	SRR   byte = 0x00 // software reset
	CCR   byte = 0x01 // chip configuration
	MACR  byte = 0x02 // memory access control
	ICR   byte = 0x03 // input control
	MRWDP byte = 0x04 // memory data read/write port
)

// ICR bits.
const (
	ICRTextMode  byte = 0x04
	ICRMemSelect byte = 0x03
)

// Interrupts.
const (
	INTEN byte = 0x0B
	INTF  byte = 0x0C
	MINTF byte = 0x0D
)

// Interrupt flag bits shared by INTEN and INTF.
const (
	IRQWakeup  byte = 0x80
	IRQExtern  byte = 0x40
	IRQIIC     byte = 0x20
	IRQVsync   byte = 0x10
	IRQPWM1    byte = 0x08
	IRQPWM0    byte = 0x04
	IRQCoreEnd byte = 0x02
	IRQSerial  byte = 0x01
)

// Display control and main window.
const (
	MPWCTR  byte = 0x10 // main/PIP window control
	PIPCDEP byte = 0x11 // PIP color depth
	DPCR    byte = 0x12 // display configuration

	MISA0  byte = 0x20 // main image start address, 4 bytes
	MIW0   byte = 0x24 // main image width, 2 bytes
	MWULX0 byte = 0x26 // main window upper-left X, 2 bytes
	MWULY0 byte = 0x28 // main window upper-left Y, 2 bytes
)

// DPCR bits.
const (
	DPCRDisplayOn byte = 0x40
	DPCRColorBar  byte = 0x20
)

// Canvas, active window and cursors.
const (
	CVSSA0    byte = 0x50 // canvas start address, 4 bytes
	CVSIMWTH0 byte = 0x54 // canvas image width, 2 bytes
	AWULX0    byte = 0x56 // active window upper-left X, 2 bytes
	AWULY0    byte = 0x58 // active window upper-left Y, 2 bytes
	AWWTH0    byte = 0x5A // active window width, 2 bytes
	AWHT0     byte = 0x5C // active window height, 2 bytes
	AWCOLOR   byte = 0x5E // canvas addressing mode and color depth
	CURH0     byte = 0x5F // graphic read/write cursor X, 2 bytes
	CURV0     byte = 0x61 // graphic read/write cursor Y, 2 bytes
	FCURX0    byte = 0x63 // text write cursor X, 2 bytes
	FCURY0    byte = 0x65 // text write cursor Y, 2 bytes
)

// AWCOLOR bits.
const (
	AWColorLinear    byte = 0x04
	AWColorDepthMask byte = 0x03
)

// Color depth codes used by AWCOLOR, MPWCTR, PIPCDEP and BTECOLR.
const (
	Depth8  byte = 0
	Depth16 byte = 1
	Depth24 byte = 2
)

// Geometric draw engine. Coordinates are 2 bytes each.
const (
	DCR0   byte = 0x67 // line and triangle control
	DLHSR0 byte = 0x68 // point 0 X
	DLVSR0 byte = 0x6A // point 0 Y
	DLHER0 byte = 0x6C // point 1 X
	DLVER0 byte = 0x6E // point 1 Y
	DTPH0  byte = 0x70 // triangle point 2 X
	DTPV0  byte = 0x72 // triangle point 2 Y
	DCR1   byte = 0x76 // ellipse, rectangle and rounded rectangle control
	ELLA0  byte = 0x77 // ellipse or corner X radius
	ELLB0  byte = 0x79 // ellipse or corner Y radius
	DEHR0  byte = 0x7B // ellipse center X
	DEVR0  byte = 0x7D // ellipse center Y
)

// DCR0 and DCR1 bits. Bit 7 starts a draw and reads back 1 while it runs.
const (
	DrawStart byte = 0x80
	DrawFill  byte = 0x40 // DCR1 fill

	DCR0Fill     byte = 0x20
	DCR0Triangle byte = 0x02

	DCR1Ellipse   byte = 0x00
	DCR1Rect      byte = 0x20
	DCR1RoundRect byte = 0x30
	DCR1ShapeMask byte = 0x30
)

// PWM timers.
const (
	PSCLR   byte = 0x84 // prescaler shared by both timers
	PMUXR   byte = 0x85 // clock dividers and output pin selection
	PCFGR   byte = 0x86 // start, auto reload and inverter bits
	TCMPB0L byte = 0x88 // timer 0 compare, 2 bytes
	TCNTB0L byte = 0x8A // timer 0 count, 2 bytes
	TCMPB1L byte = 0x8C // timer 1 compare, 2 bytes
	TCNTB1L byte = 0x8E // timer 1 count, 2 bytes
)

// PMUXR pin function for a PWM output when driven by its timer.
const PMUXTimerOutput byte = 0x02

// Block transfer engine.
const (
	BTECTRL0 byte = 0x90
	BTECTRL1 byte = 0x91
	BTECOLR  byte = 0x92
	S0STR0   byte = 0x93 // source 0 start address, 4 bytes
	S0WTH0   byte = 0x97 // source 0 image width, 2 bytes
	S0X0     byte = 0x99
	S0Y0     byte = 0x9B
	S1STR0   byte = 0x9D // source 1 start address, 4 bytes; constant color in S1 color mode
	S1WTH0   byte = 0xA1
	S1X0     byte = 0xA3
	S1Y0     byte = 0xA5
	DTSTR0   byte = 0xA7 // destination start address, 4 bytes
	DTWTH0   byte = 0xAB
	DTX0     byte = 0xAD
	DTY0     byte = 0xAF
	BTEWTH0  byte = 0xB1
	BTEHIG0  byte = 0xB3
	APBCTRL  byte = 0xB5 // alpha blending
)

// BTECTRL0 bits.
const (
	BTEEnable       byte = 0x10
	BTEPattern16x16 byte = 0x01
)

// BTE operation codes (BTECTRL1 low nibble).
const (
	OpMPUWriteROP          byte = 0
	OpMemoryCopyROP        byte = 2
	OpMPUWriteChroma       byte = 4
	OpMemoryCopyChroma     byte = 5
	OpPatternFillROP       byte = 6
	OpPatternFillChroma    byte = 7
	OpColorExpansion       byte = 8
	OpColorExpansionChroma byte = 9
	OpMemoryCopyOpacity    byte = 10
	OpMPUWriteOpacity      byte = 11
	OpSolidFill            byte = 12
)

// ExpansionBusWidth8 is the BTECTRL1 high nibble used by the color expansion
// operations to select an 8-bit MPU bus width with MSB-first bit order.
const ExpansionBusWidth8 byte = 7

// Foreground / background color registers (R, G, B).
const (
	FGCR byte = 0xD2
	FGCG byte = 0xD3
	FGCB byte = 0xD4
	BGCR byte = 0xD5
	BGCG byte = 0xD6
	BGCB byte = 0xD7
)

// DMA and serial flash.
const (
	DMACTRL   byte = 0xB6
	SFLCTRL   byte = 0xB7
	SPIDR     byte = 0xB8
	SPIMCR2   byte = 0xB9
	SPIMSR    byte = 0xBA
	SPIDIVSOR byte = 0xBB
	DMASSTR0  byte = 0xBC // serial flash source address, 4 bytes
	DMADX0    byte = 0xC0 // block: destination X, 2 bytes; linear: destination address, 4 bytes
	DMADY0    byte = 0xC2
	DMAWWTH0  byte = 0xC6 // block: width, 2 bytes; linear: byte count, 4 bytes
	DMAWHIGH0 byte = 0xC8
	DMASWTH0  byte = 0xCA // source picture width, 2 bytes
)

// DMACTRL bits.
const DMAStart byte = 0x01

// SFLCTRL bits.
const (
	SFLSelect1   byte = 0x80
	SFLModeDMA   byte = 0x40
	SFLAddr32    byte = 0x20
	SFLFollowStd byte = 0x10
	SFLFastRead8 byte = 0x04
)

// SPIMCR2 bits.
const (
	SPIMSelect1  byte = 0x20
	SPIMCSActive byte = 0x10
)

// Text engine.
const (
	CCR0   byte = 0xCC
	CCR1   byte = 0xCD
	GTFNT0 byte = 0xCE
	GTFNT1 byte = 0xCF
	FLDR   byte = 0xD0 // text line gap
	F2FSSR byte = 0xD1 // text character spacing
)

// MemSizeMax is the SDRAM arena size of the reference board.
const MemSizeMax = 32 * 1024 * 1024

// MaxCoord is the largest value a 16-bit coordinate or width register holds.
const MaxCoord = 0xFFFF

// Fits16 reports whether every v is in [0, MaxCoord].
func Fits16(vs ...int) bool {
	for _, v := range vs {
		if v < 0 || v > MaxCoord {
			return false
		}
	}
	return true
}
