package cpu

import (
	"strings"
	"testing"
)

func TestNewRegistersStackPointerDefault(t *testing.T) {
	r := NewRegisters()
	if r.SP != 0xFF {
		t.Errorf("NewRegisters().SP = %#02x, want 0xFF", r.SP)
	}
	if r.A != 0 || r.X != 0 || r.Y != 0 || r.PC != 0 {
		t.Errorf("NewRegisters() = %+v, want all other fields zero", r)
	}
}

func TestRegistersDisplayHasTwoLines(t *testing.T) {
	r := NewRegisters()
	r.A = 0xFF
	r.PC = 0x8000
	out := r.Display()
	lines := strings.Split(out, "\n")
	if len(lines) != 2 {
		t.Fatalf("Display() has %d lines, want 2", len(lines))
	}
	if !strings.Contains(lines[1], "8000") {
		t.Errorf("Display() data line %q missing PC 8000", lines[1])
	}
	if !strings.Contains(lines[1], "FF") {
		t.Errorf("Display() data line %q missing A FF", lines[1])
	}
}
