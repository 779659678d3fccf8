package cpu

// handlerFunc executes one instruction to completion. inst is the
// table entry being executed, so a shared handler (e.g. hLoad for all
// of LDA/LDX/LDY's addressing variants) can recover its addressing
// mode and static cycle count.
type handlerFunc func(c *Chip, inst *Instruction) ExecutionResult

// Instruction is one opcode's complete decode-time description: its
// mnemonic, operand layout, nominal timing, and the handler that
// carries out its semantics.
type Instruction struct {
	Opcode   uint8
	Mnemonic string
	Bytes    uint8
	Cycles   int
	Mode     AddressingMode
	Handler  handlerFunc
}

// InstructionTable maps each of the 151 documented-legal NMOS 6502
// opcodes to its Instruction descriptor. Opcode bytes with no entry
// are undocumented/illegal and are reported via UnknownOpcodeError.
var InstructionTable = buildInstructionTable()

func buildInstructionTable() map[uint8]*Instruction {
	t := make(map[uint8]*Instruction, 151)
	add := func(op uint8, mnemonic string, bytes uint8, cycles int, mode AddressingMode, h handlerFunc) {
		t[op] = &Instruction{Opcode: op, Mnemonic: mnemonic, Bytes: bytes, Cycles: cycles, Mode: mode, Handler: h}
	}

	regA := func(c *Chip) *uint8 { return &c.Registers.A }
	regX := func(c *Chip) *uint8 { return &c.Registers.X }
	regY := func(c *Chip) *uint8 { return &c.Registers.Y }
	regSP := func(c *Chip) *uint8 { return &c.Registers.SP }

	hLDA := hLoad(regA)
	hLDX := hLoad(regX)
	hLDY := hLoad(regY)
	hSTA := hStore(regA)
	hSTX := hStore(regX)
	hSTY := hStore(regY)
	hCompareA := hCompare(regA)
	hCompareX := hCompare(regX)
	hCompareY := hCompare(regY)
	hDEX := hIncDecReg(regX, 0xFF)
	hDEY := hIncDecReg(regY, 0xFF)
	hINX := hIncDecReg(regX, 0x01)
	hINY := hIncDecReg(regY, 0x01)
	hTAX := hTransfer(regA, regX, true)
	hTAY := hTransfer(regA, regY, true)
	hTSX := hTransfer(regSP, regX, true)
	hTXA := hTransfer(regX, regA, true)
	hTXS := hTransfer(regX, regSP, false)
	hTYA := hTransfer(regY, regA, true)

	// ADC
	add(0x69, "ADC", 2, 2, Immediate, hADC)
	add(0x65, "ADC", 2, 3, ZeroPage, hADC)
	add(0x75, "ADC", 2, 4, ZeroPageX, hADC)
	add(0x6D, "ADC", 3, 4, Absolute, hADC)
	add(0x7D, "ADC", 3, 4, AbsoluteX, hADC)
	add(0x79, "ADC", 3, 4, AbsoluteY, hADC)
	add(0x61, "ADC", 2, 6, IndirectX, hADC)
	add(0x71, "ADC", 2, 5, IndirectY, hADC)

	// AND
	hAND := hLogic(func(a, m uint8) uint8 { return a & m })
	add(0x29, "AND", 2, 2, Immediate, hAND)
	add(0x25, "AND", 2, 3, ZeroPage, hAND)
	add(0x35, "AND", 2, 4, ZeroPageX, hAND)
	add(0x2D, "AND", 3, 4, Absolute, hAND)
	add(0x3D, "AND", 3, 4, AbsoluteX, hAND)
	add(0x39, "AND", 3, 4, AbsoluteY, hAND)
	add(0x21, "AND", 2, 6, IndirectX, hAND)
	add(0x31, "AND", 2, 5, IndirectY, hAND)

	// ASL
	add(0x0A, "ASL", 1, 2, Accumulator, hASL)
	add(0x06, "ASL", 2, 5, ZeroPage, hASL)
	add(0x16, "ASL", 2, 6, ZeroPageX, hASL)
	add(0x0E, "ASL", 3, 6, Absolute, hASL)
	add(0x1E, "ASL", 3, 7, AbsoluteX, hASL)

	// Branches
	add(0x90, "BCC", 2, 2, Relative, hBranch(func(f StatusFlags) bool { return !f.Carry }))
	add(0xB0, "BCS", 2, 2, Relative, hBranch(func(f StatusFlags) bool { return f.Carry }))
	add(0xF0, "BEQ", 2, 2, Relative, hBranch(func(f StatusFlags) bool { return f.Zero }))
	add(0x30, "BMI", 2, 2, Relative, hBranch(func(f StatusFlags) bool { return f.Negative }))
	add(0xD0, "BNE", 2, 2, Relative, hBranch(func(f StatusFlags) bool { return !f.Zero }))
	add(0x10, "BPL", 2, 2, Relative, hBranch(func(f StatusFlags) bool { return !f.Negative }))
	add(0x50, "BVC", 2, 2, Relative, hBranch(func(f StatusFlags) bool { return !f.Overflow }))
	add(0x70, "BVS", 2, 2, Relative, hBranch(func(f StatusFlags) bool { return f.Overflow }))

	// BIT
	add(0x24, "BIT", 2, 3, ZeroPage, hBIT)
	add(0x2C, "BIT", 3, 4, Absolute, hBIT)

	// BRK has a one byte padding slot after its opcode (real hardware
	// advances PC by 2 when fetching past it even though nothing reads
	// the pad byte), so its table entry is 2 bytes wide.
	add(0x00, "BRK", 2, 7, Implied, hBRK)

	// Flag instructions
	add(0x18, "CLC", 1, 2, Implied, hFlag(func(p *StatusFlags) { p.Carry = false }))
	add(0xD8, "CLD", 1, 2, Implied, hFlag(func(p *StatusFlags) { p.Decimal = false }))
	add(0x58, "CLI", 1, 2, Implied, hFlag(func(p *StatusFlags) { p.InterruptDisable = false }))
	add(0xB8, "CLV", 1, 2, Implied, hFlag(func(p *StatusFlags) { p.Overflow = false }))
	add(0x38, "SEC", 1, 2, Implied, hFlag(func(p *StatusFlags) { p.Carry = true }))
	add(0xF8, "SED", 1, 2, Implied, hFlag(func(p *StatusFlags) { p.Decimal = true }))
	add(0x78, "SEI", 1, 2, Implied, hFlag(func(p *StatusFlags) { p.InterruptDisable = true }))

	// CMP/CPX/CPY
	add(0xC9, "CMP", 2, 2, Immediate, hCompareA)
	add(0xC5, "CMP", 2, 3, ZeroPage, hCompareA)
	add(0xD5, "CMP", 2, 4, ZeroPageX, hCompareA)
	add(0xCD, "CMP", 3, 4, Absolute, hCompareA)
	add(0xDD, "CMP", 3, 4, AbsoluteX, hCompareA)
	add(0xD9, "CMP", 3, 4, AbsoluteY, hCompareA)
	add(0xC1, "CMP", 2, 6, IndirectX, hCompareA)
	add(0xD1, "CMP", 2, 5, IndirectY, hCompareA)

	add(0xE0, "CPX", 2, 2, Immediate, hCompareX)
	add(0xE4, "CPX", 2, 3, ZeroPage, hCompareX)
	add(0xEC, "CPX", 3, 4, Absolute, hCompareX)

	add(0xC0, "CPY", 2, 2, Immediate, hCompareY)
	add(0xC4, "CPY", 2, 3, ZeroPage, hCompareY)
	add(0xCC, "CPY", 3, 4, Absolute, hCompareY)

	// DEC/INC memory
	add(0xC6, "DEC", 2, 5, ZeroPage, hDECMem)
	add(0xD6, "DEC", 2, 6, ZeroPageX, hDECMem)
	add(0xCE, "DEC", 3, 6, Absolute, hDECMem)
	add(0xDE, "DEC", 3, 7, AbsoluteX, hDECMem)

	add(0xE6, "INC", 2, 5, ZeroPage, hINCMem)
	add(0xF6, "INC", 2, 6, ZeroPageX, hINCMem)
	add(0xEE, "INC", 3, 6, Absolute, hINCMem)
	add(0xFE, "INC", 3, 7, AbsoluteX, hINCMem)

	// DEX/DEY/INX/INY
	add(0xCA, "DEX", 1, 2, Implied, hDEX)
	add(0x88, "DEY", 1, 2, Implied, hDEY)
	add(0xE8, "INX", 1, 2, Implied, hINX)
	add(0xC8, "INY", 1, 2, Implied, hINY)

	// EOR
	hEOR := hLogic(func(a, m uint8) uint8 { return a ^ m })
	add(0x49, "EOR", 2, 2, Immediate, hEOR)
	add(0x45, "EOR", 2, 3, ZeroPage, hEOR)
	add(0x55, "EOR", 2, 4, ZeroPageX, hEOR)
	add(0x4D, "EOR", 3, 4, Absolute, hEOR)
	add(0x5D, "EOR", 3, 4, AbsoluteX, hEOR)
	add(0x59, "EOR", 3, 4, AbsoluteY, hEOR)
	add(0x41, "EOR", 2, 6, IndirectX, hEOR)
	add(0x51, "EOR", 2, 5, IndirectY, hEOR)

	// JMP/JSR/RTS
	add(0x4C, "JMP", 3, 3, Absolute, hJMP)
	add(0x6C, "JMP", 3, 5, Indirect, hJMP)
	add(0x20, "JSR", 3, 6, Absolute, hJSR)
	add(0x60, "RTS", 1, 6, Implied, hRTS)
	add(0x40, "RTI", 1, 6, Implied, hRTI)

	// LDA/LDX/LDY
	add(0xA9, "LDA", 2, 2, Immediate, hLDA)
	add(0xA5, "LDA", 2, 3, ZeroPage, hLDA)
	add(0xB5, "LDA", 2, 4, ZeroPageX, hLDA)
	add(0xAD, "LDA", 3, 4, Absolute, hLDA)
	add(0xBD, "LDA", 3, 4, AbsoluteX, hLDA)
	add(0xB9, "LDA", 3, 4, AbsoluteY, hLDA)
	add(0xA1, "LDA", 2, 6, IndirectX, hLDA)
	add(0xB1, "LDA", 2, 5, IndirectY, hLDA)

	add(0xA2, "LDX", 2, 2, Immediate, hLDX)
	add(0xA6, "LDX", 2, 3, ZeroPage, hLDX)
	add(0xB6, "LDX", 2, 4, ZeroPageY, hLDX)
	add(0xAE, "LDX", 3, 4, Absolute, hLDX)
	add(0xBE, "LDX", 3, 4, AbsoluteY, hLDX)

	add(0xA0, "LDY", 2, 2, Immediate, hLDY)
	add(0xA4, "LDY", 2, 3, ZeroPage, hLDY)
	add(0xB4, "LDY", 2, 4, ZeroPageX, hLDY)
	add(0xAC, "LDY", 3, 4, Absolute, hLDY)
	add(0xBC, "LDY", 3, 4, AbsoluteX, hLDY)

	// LSR
	add(0x4A, "LSR", 1, 2, Accumulator, hLSR)
	add(0x46, "LSR", 2, 5, ZeroPage, hLSR)
	add(0x56, "LSR", 2, 6, ZeroPageX, hLSR)
	add(0x4E, "LSR", 3, 6, Absolute, hLSR)
	add(0x5E, "LSR", 3, 7, AbsoluteX, hLSR)

	// NOP
	add(0xEA, "NOP", 1, 2, Implied, hNOP)

	// ORA
	hORA := hLogic(func(a, m uint8) uint8 { return a | m })
	add(0x09, "ORA", 2, 2, Immediate, hORA)
	add(0x05, "ORA", 2, 3, ZeroPage, hORA)
	add(0x15, "ORA", 2, 4, ZeroPageX, hORA)
	add(0x0D, "ORA", 3, 4, Absolute, hORA)
	add(0x1D, "ORA", 3, 4, AbsoluteX, hORA)
	add(0x19, "ORA", 3, 4, AbsoluteY, hORA)
	add(0x01, "ORA", 2, 6, IndirectX, hORA)
	add(0x11, "ORA", 2, 5, IndirectY, hORA)

	// Stack instructions
	add(0x48, "PHA", 1, 3, Implied, hPHA)
	add(0x08, "PHP", 1, 3, Implied, hPHP)
	add(0x68, "PLA", 1, 4, Implied, hPLA)
	add(0x28, "PLP", 1, 4, Implied, hPLP)

	// ROL/ROR
	add(0x2A, "ROL", 1, 2, Accumulator, hROL)
	add(0x26, "ROL", 2, 5, ZeroPage, hROL)
	add(0x36, "ROL", 2, 6, ZeroPageX, hROL)
	add(0x2E, "ROL", 3, 6, Absolute, hROL)
	add(0x3E, "ROL", 3, 7, AbsoluteX, hROL)

	add(0x6A, "ROR", 1, 2, Accumulator, hROR)
	add(0x66, "ROR", 2, 5, ZeroPage, hROR)
	add(0x76, "ROR", 2, 6, ZeroPageX, hROR)
	add(0x6E, "ROR", 3, 6, Absolute, hROR)
	add(0x7E, "ROR", 3, 7, AbsoluteX, hROR)

	// SBC
	add(0xE9, "SBC", 2, 2, Immediate, hSBC)
	add(0xE5, "SBC", 2, 3, ZeroPage, hSBC)
	add(0xF5, "SBC", 2, 4, ZeroPageX, hSBC)
	add(0xED, "SBC", 3, 4, Absolute, hSBC)
	add(0xFD, "SBC", 3, 4, AbsoluteX, hSBC)
	add(0xF9, "SBC", 3, 4, AbsoluteY, hSBC)
	add(0xE1, "SBC", 2, 6, IndirectX, hSBC)
	add(0xF1, "SBC", 2, 5, IndirectY, hSBC)

	// STA/STX/STY
	add(0x85, "STA", 2, 3, ZeroPage, hSTA)
	add(0x95, "STA", 2, 4, ZeroPageX, hSTA)
	add(0x8D, "STA", 3, 4, Absolute, hSTA)
	add(0x9D, "STA", 3, 5, AbsoluteX, hSTA)
	add(0x99, "STA", 3, 5, AbsoluteY, hSTA)
	add(0x81, "STA", 2, 6, IndirectX, hSTA)
	add(0x91, "STA", 2, 6, IndirectY, hSTA)

	add(0x86, "STX", 2, 3, ZeroPage, hSTX)
	add(0x96, "STX", 2, 4, ZeroPageY, hSTX)
	add(0x8E, "STX", 3, 4, Absolute, hSTX)

	add(0x84, "STY", 2, 3, ZeroPage, hSTY)
	add(0x94, "STY", 2, 4, ZeroPageX, hSTY)
	add(0x8C, "STY", 3, 4, Absolute, hSTY)

	// Register transfers
	add(0xAA, "TAX", 1, 2, Implied, hTAX)
	add(0xA8, "TAY", 1, 2, Implied, hTAY)
	add(0xBA, "TSX", 1, 2, Implied, hTSX)
	add(0x8A, "TXA", 1, 2, Implied, hTXA)
	add(0x9A, "TXS", 1, 2, Implied, hTXS)
	add(0x98, "TYA", 1, 2, Implied, hTYA)

	if len(t) != 151 {
		panic("instruction table does not contain exactly 151 entries")
	}
	return t
}
