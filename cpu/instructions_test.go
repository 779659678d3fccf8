package cpu

import "testing"

func TestADCDecimalModeCarries(t *testing.T) {
	c := newRunningChip(0x8000)
	c.Registers.P.Decimal = true
	c.Registers.A = 0x99
	c.Memory.Write8(0x8000, 0x69) // ADC #$01
	c.Memory.Write8(0x8001, 0x01)

	if _, err := c.ExecuteOpcode(); err != nil {
		t.Fatalf("ExecuteOpcode() error = %v", err)
	}
	if c.Registers.A != 0x00 {
		t.Errorf("A = %#02x, want 0x00 (99 + 1 BCD rolls to 00)", c.Registers.A)
	}
	if !c.Registers.P.Carry {
		t.Error("C = false, want true")
	}
}

func TestSBCDecimalModeBorrows(t *testing.T) {
	c := newRunningChip(0x8000)
	c.Registers.P.Decimal = true
	c.Registers.P.Carry = true // no incoming borrow
	c.Registers.A = 0x00
	c.Memory.Write8(0x8000, 0xE9) // SBC #$01
	c.Memory.Write8(0x8001, 0x01)

	if _, err := c.ExecuteOpcode(); err != nil {
		t.Fatalf("ExecuteOpcode() error = %v", err)
	}
	if c.Registers.A != 0x99 {
		t.Errorf("A = %#02x, want 0x99 (00 - 01 BCD borrows to 99)", c.Registers.A)
	}
	if c.Registers.P.Carry {
		t.Error("C = true, want false (borrow occurred)")
	}
}

func TestSBCBinaryModeIsOnesComplementADC(t *testing.T) {
	c := newRunningChip(0x8000)
	c.Registers.P.Carry = true
	c.Registers.A = 0x05
	c.Memory.Write8(0x8000, 0xE9) // SBC #$03
	c.Memory.Write8(0x8001, 0x03)

	if _, err := c.ExecuteOpcode(); err != nil {
		t.Fatalf("ExecuteOpcode() error = %v", err)
	}
	if c.Registers.A != 0x02 {
		t.Errorf("A = %#02x, want 0x02", c.Registers.A)
	}
	if !c.Registers.P.Carry {
		t.Error("C = false, want true (no borrow)")
	}
}

func TestANDORAEOR(t *testing.T) {
	tests := []struct {
		op   uint8
		a, m uint8
		want uint8
	}{
		{0x29, 0xF0, 0x0F, 0x00}, // AND
		{0x09, 0xF0, 0x0F, 0xFF}, // ORA
		{0x49, 0xFF, 0x0F, 0xF0}, // EOR
	}
	for _, tc := range tests {
		c := newRunningChip(0x8000)
		c.Registers.A = tc.a
		c.Memory.Write8(0x8000, tc.op)
		c.Memory.Write8(0x8001, tc.m)
		if _, err := c.ExecuteOpcode(); err != nil {
			t.Fatalf("opcode %#02x: ExecuteOpcode() error = %v", tc.op, err)
		}
		if c.Registers.A != tc.want {
			t.Errorf("opcode %#02x: A = %#02x, want %#02x", tc.op, c.Registers.A, tc.want)
		}
	}
}

func TestINXWrapsAndSetsZero(t *testing.T) {
	c := newRunningChip(0x8000)
	c.Registers.X = 0xFF
	c.Memory.Write8(0x8000, 0xE8) // INX

	if _, err := c.ExecuteOpcode(); err != nil {
		t.Fatalf("ExecuteOpcode() error = %v", err)
	}
	if c.Registers.X != 0x00 {
		t.Errorf("X = %#02x, want 0x00", c.Registers.X)
	}
	if !c.Registers.P.Zero {
		t.Error("Z = false, want true")
	}
}

func TestDEYWrapsToNegative(t *testing.T) {
	c := newRunningChip(0x8000)
	c.Registers.Y = 0x00
	c.Memory.Write8(0x8000, 0x88) // DEY

	if _, err := c.ExecuteOpcode(); err != nil {
		t.Fatalf("ExecuteOpcode() error = %v", err)
	}
	if c.Registers.Y != 0xFF {
		t.Errorf("Y = %#02x, want 0xFF", c.Registers.Y)
	}
	if !c.Registers.P.Negative {
		t.Error("N = false, want true")
	}
}

func TestTransfers(t *testing.T) {
	c := newRunningChip(0x8000)
	c.Registers.A = 0x77
	c.Memory.Write8(0x8000, 0xAA) // TAX
	if _, err := c.ExecuteOpcode(); err != nil {
		t.Fatalf("TAX error = %v", err)
	}
	if c.Registers.X != 0x77 {
		t.Errorf("X after TAX = %#02x, want 0x77", c.Registers.X)
	}

	c.Registers.PC = 0x8000
	c.Registers.X = 0x42
	c.Memory.Write8(0x8000, 0x9A) // TXS
	if _, err := c.ExecuteOpcode(); err != nil {
		t.Fatalf("TXS error = %v", err)
	}
	if c.Registers.SP != 0x42 {
		t.Errorf("SP after TXS = %#02x, want 0x42", c.Registers.SP)
	}
}

func TestBITSetsNVFromMemoryNotResult(t *testing.T) {
	c := newRunningChip(0x8000)
	c.Registers.A = 0x00
	c.Memory.Write8(0x30, 0xC0) // bits 7 and 6 set
	c.Memory.Write8(0x8000, 0x24)
	c.Memory.Write8(0x8001, 0x30)

	if _, err := c.ExecuteOpcode(); err != nil {
		t.Fatalf("ExecuteOpcode() error = %v", err)
	}
	if !c.Registers.P.Negative {
		t.Error("N = false, want true")
	}
	if !c.Registers.P.Overflow {
		t.Error("V = false, want true")
	}
	if !c.Registers.P.Zero {
		t.Error("Z = false, want true (A&M = 0)")
	}
}

func TestRTIRestoresPCAndClearsBreak(t *testing.T) {
	c := newRunningChip(0x8000)
	c.Registers.SP = 0xFC
	c.Memory.Write8(0x01FD, StatusFlags{Break: true, Carry: true}.ToByte())
	c.Memory.Write8(0x01FE, 0x34)
	c.Memory.Write8(0x01FF, 0x12)
	c.Memory.Write8(0x8000, 0x40) // RTI

	res, err := c.ExecuteOpcode()
	if err != nil {
		t.Fatalf("ExecuteOpcode() error = %v", err)
	}
	if !res.SetPC {
		t.Error("SetPC = false, want true")
	}
	if c.Registers.PC != 0x1234 {
		t.Errorf("PC = %#04x, want 0x1234", c.Registers.PC)
	}
	if c.Registers.P.Break {
		t.Error("Break = true after RTI, want false")
	}
	if !c.Registers.P.Carry {
		t.Error("Carry = false after RTI, want true")
	}
	if c.Registers.SP != 0xFF {
		t.Errorf("SP = %#02x, want 0xFF", c.Registers.SP)
	}
}

func TestROLFeedsCarryInAndOut(t *testing.T) {
	c := newRunningChip(0x8000)
	c.Registers.A = 0x80
	c.Registers.P.Carry = true
	c.Memory.Write8(0x8000, 0x2A) // ROL A

	if _, err := c.ExecuteOpcode(); err != nil {
		t.Fatalf("ExecuteOpcode() error = %v", err)
	}
	if c.Registers.A != 0x01 {
		t.Errorf("A = %#02x, want 0x01", c.Registers.A)
	}
	if !c.Registers.P.Carry {
		t.Error("C = false, want true (old bit 7 was set)")
	}
}
