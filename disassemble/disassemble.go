// Package disassemble renders the instruction at a given address as a
// single line of text: address, raw bytes, mnemonic, and operand.
package disassemble

import (
	"fmt"
	"strings"

	"github.com/jchacon-labs/go6502/cpu"
)

// memReader is the subset of memory.Memory the disassembler needs.
// Accepting an interface rather than the concrete type keeps this
// package decoupled from memory's storage details.
type memReader interface {
	Read8(addr uint16) uint8
	Read16(addr uint16) uint16
}

// operand renders the addressing-mode-specific operand text for the
// instruction at pc, e.g. "#$FF" for Immediate or "$1234,X" for
// AbsoluteX.
func operand(m memReader, pc uint16, inst *cpu.Instruction) string {
	switch inst.Mode {
	case cpu.Accumulator:
		return "A"
	case cpu.Implied:
		return ""
	case cpu.Immediate:
		return fmt.Sprintf("#$%02X", m.Read8(pc+1))
	case cpu.Relative:
		offset := int8(m.Read8(pc + 1))
		target := pc + 2 + uint16(int16(offset))
		return fmt.Sprintf("$%04X", target)
	case cpu.ZeroPage:
		return fmt.Sprintf("$%02X", m.Read8(pc+1))
	case cpu.ZeroPageX:
		return fmt.Sprintf("$%02X,X", m.Read8(pc+1))
	case cpu.ZeroPageY:
		return fmt.Sprintf("$%02X,Y", m.Read8(pc+1))
	case cpu.Absolute:
		return fmt.Sprintf("$%04X", m.Read16(pc+1))
	case cpu.AbsoluteX:
		return fmt.Sprintf("$%04X,X", m.Read16(pc+1))
	case cpu.AbsoluteY:
		return fmt.Sprintf("$%04X,Y", m.Read16(pc+1))
	case cpu.Indirect:
		return fmt.Sprintf("($%04X)", m.Read16(pc+1))
	case cpu.IndirectX:
		return fmt.Sprintf("($%02X,X)", m.Read8(pc+1))
	case cpu.IndirectY:
		return fmt.Sprintf("($%02X),Y", m.Read8(pc+1))
	default:
		return ""
	}
}

// Opcode renders the instruction at pc as "LLLL BB BB BB MNE OPERAND":
// the four digit address, the instruction's raw bytes left-justified
// and padded to an eight character field, the mnemonic padded to four
// characters, then the operand. It returns the instruction's byte
// length alongside the rendered line. An opcode byte with no table
// entry is reported as cpu.UnknownOpcodeError.
func Opcode(m memReader, pc uint16) (string, int, error) {
	op := m.Read8(pc)
	inst, ok := cpu.InstructionTable[op]
	if !ok {
		return "", 0, cpu.UnknownOpcodeError{Opcode: op, PC: pc}
	}

	raw := make([]string, inst.Bytes)
	for i := uint8(0); i < inst.Bytes; i++ {
		raw[i] = fmt.Sprintf("%02X", m.Read8(pc+uint16(i)))
	}
	bytesField := strings.Join(raw, " ")

	line := fmt.Sprintf("%04X %-8s %-4s %s", pc, bytesField, inst.Mnemonic, operand(m, pc, inst))
	return strings.TrimRight(line, " "), int(inst.Bytes), nil
}
