// Package cpu implements the MOS 6502 instruction fetch/decode/execute
// cycle: the register file, the documented-legal instruction table,
// the addressing unit, and the per-instruction semantic handlers
// (including the binary-coded-decimal variants of ADC/SBC).
package cpu

import (
	"fmt"

	"github.com/jchacon-labs/go6502/memory"
)

// Reserved vector addresses, populated by the host before power-up.
const (
	NMIVector   = uint16(0xFFFA)
	ResetVector = uint16(0xFFFC)
	IRQVector   = uint16(0xFFFE)
)

// stackBase is the fixed page the stack lives in; SP indexes into it.
const stackBase = uint16(0x0100)

// UnknownOpcodeError is returned by ExecuteOpcode and disassemble.Opcode
// when the byte at the requested address has no InstructionTable entry.
// No state mutation occurs when this is returned.
type UnknownOpcodeError struct {
	Opcode uint8
	PC     uint16
}

func (e UnknownOpcodeError) Error() string {
	return fmt.Sprintf("unknown opcode 0x%02X at 0x%04X", e.Opcode, e.PC)
}

// ExecutionResult describes the observable effect of one ExecuteOpcode
// call: how many bytes the instruction occupied, how many clock
// periods it consumed, whether an indexed addressing mode crossed a
// page boundary, and whether the handler set PC directly (branches,
// jumps, calls, returns, BRK/RTI) rather than leaving it to be
// advanced by Bytes.
type ExecutionResult struct {
	Bytes       uint8
	Cycles      int
	PageCrossed bool
	SetPC       bool
}

// Chip is a complete 6502: its register file and the memory image it
// executes against.
type Chip struct {
	Registers Registers
	Memory    *memory.Memory
}

// New constructs a Chip, writes resetAddress little-endian into the
// reset vector, and returns it with default (zeroed, SP=0xFF)
// registers. Memory is zeroed.
func New(resetAddress uint16) *Chip {
	m := memory.New()
	m.Write16(ResetVector, resetAddress)
	return &Chip{
		Registers: NewRegisters(),
		Memory:    m,
	}
}

// PowerOn brings the chip out of reset: interrupts disabled, Break
// clear, stack pointer at 0xFF, PC loaded from the reset vector.
func (c *Chip) PowerOn() {
	c.Registers.P.InterruptDisable = true
	c.Registers.P.Break = false
	c.Registers.SP = 0xFF
	c.Registers.PC = c.Memory.Read16(ResetVector)
}

// ExecuteOpcode fetches the opcode at PC, executes it to completion,
// advances PC by the instruction's byte length unless the handler set
// PC directly, and returns a record of the execution. An unknown
// opcode leaves all state untouched and returns UnknownOpcodeError.
func (c *Chip) ExecuteOpcode() (ExecutionResult, error) {
	pc := c.Registers.PC
	op := c.Memory.Read8(pc)
	inst, ok := InstructionTable[op]
	if !ok {
		return ExecutionResult{}, UnknownOpcodeError{Opcode: op, PC: pc}
	}

	result := inst.Handler(c, inst)
	result.Bytes = inst.Bytes
	if result.Cycles == 0 {
		result.Cycles = inst.Cycles
	}
	if !result.SetPC {
		c.Registers.PC += uint16(inst.Bytes)
	}
	return result, nil
}

// pushStack pushes val onto the stack at 0x0100+SP and decrements SP,
// wrapping on underflow.
func (c *Chip) pushStack(val uint8) {
	c.Memory.Write8(stackBase+uint16(c.Registers.SP), val)
	c.Registers.SP--
}

// pullStack increments SP, wrapping on overflow, and returns the byte
// now addressed.
func (c *Chip) pullStack() uint8 {
	c.Registers.SP++
	return c.Memory.Read8(stackBase + uint16(c.Registers.SP))
}

// pushStack16 pushes a 16 bit value high-byte-first, as JSR and the
// interrupt sequences require.
func (c *Chip) pushStack16(val uint16) {
	c.pushStack(uint8(val >> 8))
	c.pushStack(uint8(val & 0xFF))
}

// pullStack16 pulls a 16 bit value low-byte-first.
func (c *Chip) pullStack16() uint16 {
	lo := uint16(c.pullStack())
	hi := uint16(c.pullStack())
	return (hi << 8) | lo
}

// pushFlags pushes P with bit 5 and, per the caller's request, bit 4
// (Break) forced, as PHP and BRK require.
func (c *Chip) pushFlags(breakBit bool) {
	p := c.Registers.P
	p.Break = breakBit
	c.pushStack(p.ToByte())
}

// pullFlags pulls a status byte off the stack and stores it into P,
// clearing Break in the resulting in-register flags regardless of the
// byte's bit 4, per the stack-pop invariant in spec.md 4.1/4.6.
func (c *Chip) pullFlags() {
	b := c.pullStack()
	flags := FromByte(b)
	flags.Break = false
	c.Registers.P = flags
}
