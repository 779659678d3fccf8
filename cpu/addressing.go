package cpu

import "github.com/jchacon-labs/go6502/memory"

// AddressingMode is the closed set of 6502 operand-addressing
// variants. The addressing unit below enforces exhaustiveness: adding
// a new mode to this enum without adding a case to effectiveAddress
// makes that mode panic instead of silently misbehaving.
type AddressingMode int

const (
	Accumulator AddressingMode = iota
	Implied
	Immediate
	Relative
	ZeroPage
	ZeroPageX
	ZeroPageY
	Absolute
	AbsoluteX
	AbsoluteY
	Indirect
	IndirectX
	IndirectY
)

// AddressingModeMisuse is panicked when code asks the addressing unit
// to derive an effective address for a mode that has none
// (Accumulator, Implied, Relative). Per spec this indicates a
// table/handler mismatch - an internal programmer error, not a
// runtime condition callers should handle - so the core aborts rather
// than continuing with undefined state.
type AddressingModeMisuse struct {
	Mode AddressingMode
}

func (e AddressingModeMisuse) Error() string {
	return "addressing mode misuse: no effective address for mode " + modeNames[e.Mode]
}

var modeNames = map[AddressingMode]string{
	Accumulator: "Accumulator",
	Implied:     "Implied",
	Immediate:   "Immediate",
	Relative:    "Relative",
	ZeroPage:    "ZeroPage",
	ZeroPageX:   "ZeroPageX",
	ZeroPageY:   "ZeroPageY",
	Absolute:    "Absolute",
	AbsoluteX:   "AbsoluteX",
	AbsoluteY:   "AbsoluteY",
	Indirect:    "Indirect",
	IndirectX:   "IndirectX",
	IndirectY:   "IndirectY",
}

// pageCrossed reports whether base and base+index fall in different
// 256 byte pages.
func pageCrossed(base uint16, index uint8) bool {
	return (base & 0xFF00) != ((base + uint16(index)) & 0xFF00)
}

// readZPPointer reads a 16 bit pointer stored at consecutive zero
// page addresses, wrapping the high byte fetch within zero page
// (addr 0xFF wraps to 0x00, not 0x100). This is the hardware-faithful
// wrap spec.md's open question adopts as contract.
func readZPPointer(m *memory.Memory, zp uint8) uint16 {
	lo := m.Read8(uint16(zp))
	hi := m.Read8(uint16(uint8(zp + 1)))
	return (uint16(hi) << 8) | uint16(lo)
}

// readIndirectBugged reads a 16 bit pointer the way NMOS JMP ($xxFF)
// does: the high byte is fetched from the start of the same page
// rather than the next page, reproducing the well known page-wrap
// bug rather than correcting it (see SPEC_FULL.md and DESIGN.md).
func readIndirectBugged(m *memory.Memory, ptr uint16) uint16 {
	lo := m.Read8(ptr)
	hiAddr := (ptr & 0xFF00) | uint16(uint8(ptr)+1)
	hi := m.Read8(hiAddr)
	return (uint16(hi) << 8) | uint16(lo)
}

// effectiveAddress computes the effective address for mode given the
// CPU state at PC (operand bytes live at PC+1 and, for 3 byte
// instructions, PC+2). It reports whether an indexed computation
// crossed a page boundary. Accumulator, Implied, and Relative have no
// effective address and panic with AddressingModeMisuse; Relative
// targets are computed by the branch handlers directly since they
// need the post-instruction PC, not a generic "address at PC+1".
func effectiveAddress(c *Chip, mode AddressingMode) (addr uint16, crossed bool) {
	m := c.Memory
	switch mode {
	case Immediate:
		return c.Registers.PC + 1, false
	case ZeroPage:
		return uint16(m.Read8(c.Registers.PC + 1)), false
	case ZeroPageX:
		zp := m.Read8(c.Registers.PC+1) + c.Registers.X
		return uint16(zp), false
	case ZeroPageY:
		zp := m.Read8(c.Registers.PC+1) + c.Registers.Y
		return uint16(zp), false
	case Absolute:
		return m.Read16(c.Registers.PC + 1), false
	case AbsoluteX:
		base := m.Read16(c.Registers.PC + 1)
		return base + uint16(c.Registers.X), pageCrossed(base, c.Registers.X)
	case AbsoluteY:
		base := m.Read16(c.Registers.PC + 1)
		return base + uint16(c.Registers.Y), pageCrossed(base, c.Registers.Y)
	case Indirect:
		ptr := m.Read16(c.Registers.PC + 1)
		return readIndirectBugged(m, ptr), false
	case IndirectX:
		zp := m.Read8(c.Registers.PC+1) + c.Registers.X
		return readZPPointer(m, zp), false
	case IndirectY:
		zp := m.Read8(c.Registers.PC + 1)
		base := readZPPointer(m, zp)
		return base + uint16(c.Registers.Y), pageCrossed(base, c.Registers.Y)
	case Accumulator, Implied, Relative:
		panic(AddressingModeMisuse{Mode: mode})
	default:
		panic(AddressingModeMisuse{Mode: mode})
	}
}

// loadOperand resolves mode to its operand value: for Accumulator
// that's the accumulator itself, otherwise the byte at the effective
// address. It returns the value, the effective address (0 for
// Accumulator, where none exists), and whether a page was crossed.
func loadOperand(c *Chip, mode AddressingMode) (val uint8, addr uint16, crossed bool) {
	if mode == Accumulator {
		return c.Registers.A, 0, false
	}
	addr, crossed = effectiveAddress(c, mode)
	return c.Memory.Read8(addr), addr, crossed
}

// branchTarget computes the target PC for a relative branch taken at
// an instruction whose opcode lives at pc: the signed 8 bit offset at
// pc+1 added to pc+2 (the address of the following instruction).
func branchTarget(c *Chip, pc uint16) uint16 {
	offset := c.Memory.Read8(pc + 1)
	return pc + 2 + uint16(int16(int8(offset)))
}
