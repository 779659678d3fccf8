package cpu

import "fmt"

// Status byte bit masks, bit 7 down to bit 0: N V 1 B D I Z C.
const (
	flagNegative  = uint8(0x80)
	flagOverflow  = uint8(0x40)
	flagUnused    = uint8(0x20) // Always reads as 1.
	flagBreak     = uint8(0x10)
	flagDecimal   = uint8(0x08)
	flagInterrupt = uint8(0x04)
	flagZero      = uint8(0x02)
	flagCarry     = uint8(0x01)
)

// StatusFlags is the 6502 processor status register P: seven
// independent condition-code bits plus the always-1 unused bit 5.
type StatusFlags struct {
	Carry            bool
	Zero             bool
	InterruptDisable bool
	Decimal          bool
	Break            bool
	Overflow         bool
	Negative         bool
}

// ToByte packs the seven flags into the status byte layout
// N V 1 B D I Z C, forcing bit 5 to 1.
func (f StatusFlags) ToByte() uint8 {
	var b uint8 = flagUnused
	if f.Carry {
		b |= flagCarry
	}
	if f.Zero {
		b |= flagZero
	}
	if f.InterruptDisable {
		b |= flagInterrupt
	}
	if f.Decimal {
		b |= flagDecimal
	}
	if f.Break {
		b |= flagBreak
	}
	if f.Overflow {
		b |= flagOverflow
	}
	if f.Negative {
		b |= flagNegative
	}
	return b
}

// FromByte unpacks b into a StatusFlags value. Bit 5 is ignored. The
// caller is responsible for clearing Break in the result when b came
// off the stack (see Chip.pullFlags) - FromByte on its own honors bit 4
// exactly as given.
func FromByte(b uint8) StatusFlags {
	return StatusFlags{
		Carry:            b&flagCarry != 0,
		Zero:             b&flagZero != 0,
		InterruptDisable: b&flagInterrupt != 0,
		Decimal:          b&flagDecimal != 0,
		Break:            b&flagBreak != 0,
		Overflow:         b&flagOverflow != 0,
		Negative:         b&flagNegative != 0,
	}
}

// Display renders the flags as the 8 character string "NV1BDIZC"
// where each position is '0' or '1' per its bit (the third character,
// the unused bit 5, is always '1').
func (f StatusFlags) Display() string {
	bit := func(set bool) byte {
		if set {
			return '1'
		}
		return '0'
	}
	return fmt.Sprintf("%c%c%c%c%c%c%c%c",
		bit(f.Negative),
		bit(f.Overflow),
		bit(true),
		bit(f.Break),
		bit(f.Decimal),
		bit(f.InterruptDisable),
		bit(f.Zero),
		bit(f.Carry),
	)
}
