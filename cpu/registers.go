package cpu

import "fmt"

// Registers is the 6502 architectural register file: the accumulator,
// the two index registers, the stack pointer (indexing into page 1),
// the program counter, and the processor status flags.
type Registers struct {
	A  uint8
	X  uint8
	Y  uint8
	SP uint8
	PC uint16
	P  StatusFlags
}

// NewRegisters returns a register file in its post-construction state:
// every numeric field zeroed except SP, which starts at 0xFF per the
// data model's construction invariant.
func NewRegisters() Registers {
	return Registers{SP: 0xFF}
}

// Display renders the registers as a header line followed by a data
// line showing PC, A, X, Y, SP, the status byte, and the flag string.
func (r Registers) Display() string {
	header := " PC  A  X  Y  SP  P  NV1BDIZC"
	data := fmt.Sprintf("%04X %02X %02X %02X %02X  %02X %s",
		r.PC, r.A, r.X, r.Y, r.SP, r.P.ToByte(), r.P.Display())
	return header + "\n" + data
}
