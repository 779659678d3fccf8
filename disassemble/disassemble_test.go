package disassemble

import (
	"strings"
	"testing"

	"github.com/jchacon-labs/go6502/cpu"
	"github.com/jchacon-labs/go6502/memory"
)

func TestOpcodeImmediate(t *testing.T) {
	m := memory.New()
	m.Write8(0x8000, 0xA9) // LDA #$FF
	m.Write8(0x8001, 0xFF)

	line, n, err := Opcode(m, 0x8000)
	if err != nil {
		t.Fatalf("Opcode() error = %v", err)
	}
	if n != 2 {
		t.Errorf("bytes = %d, want 2", n)
	}
	if !strings.HasPrefix(line, "8000 A9 FF") {
		t.Errorf("line = %q, want prefix %q", line, "8000 A9 FF")
	}
	if !strings.Contains(line, "LDA") || !strings.Contains(line, "#$FF") {
		t.Errorf("line = %q, want mnemonic LDA and operand #$FF", line)
	}
}

func TestOpcodeAbsoluteIndexed(t *testing.T) {
	m := memory.New()
	m.Write8(0x8000, 0xBD) // LDA $1234,X
	m.Write16(0x8001, 0x1234)

	line, n, err := Opcode(m, 0x8000)
	if err != nil {
		t.Fatalf("Opcode() error = %v", err)
	}
	if n != 3 {
		t.Errorf("bytes = %d, want 3", n)
	}
	if !strings.Contains(line, "$1234,X") {
		t.Errorf("line = %q, want operand $1234,X", line)
	}
}

func TestOpcodeImplied(t *testing.T) {
	m := memory.New()
	m.Write8(0x8000, 0xEA) // NOP
	line, n, err := Opcode(m, 0x8000)
	if err != nil {
		t.Fatalf("Opcode() error = %v", err)
	}
	if n != 1 {
		t.Errorf("bytes = %d, want 1", n)
	}
	if !strings.Contains(line, "NOP") {
		t.Errorf("line = %q, want mnemonic NOP", line)
	}
}

func TestOpcodeUnknownReturnsError(t *testing.T) {
	m := memory.New()
	m.Write8(0x8000, 0x02) // undocumented, no table entry
	_, _, err := Opcode(m, 0x8000)
	if err == nil {
		t.Fatal("Opcode() error = nil, want UnknownOpcodeError")
	}
	if _, ok := err.(cpu.UnknownOpcodeError); !ok {
		t.Errorf("error type = %T, want cpu.UnknownOpcodeError", err)
	}
}
