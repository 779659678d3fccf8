package cpu

// Instruction handlers. Each handler is shared across every addressing
// mode variant of its mnemonic; inst.Mode tells it how to resolve its
// operand. Handlers never touch Bytes or the default Cycles - those
// are filled in by ExecuteOpcode from the table entry. A handler only
// sets result.Cycles when the instruction's actual cycle count departs
// from the table's static figure (branches, and reads that land on a
// page-crossing indexed address), and only sets result.SetPC when it
// has written PC itself.

// regSelector locates a register field on whichever Chip is passed to
// a handler at call time, letting a single handler closure built once
// at table-construction time serve every Chip instance rather than
// capturing a field of one fixed instance.
type regSelector func(c *Chip) *uint8

// hLoad implements LDA/LDX/LDY: load the selected register from the
// resolved operand, set Z/N from the loaded value, and report a
// page-crossing bonus cycle for indexed reads that crossed a page.
func hLoad(dst regSelector) handlerFunc {
	return func(c *Chip, inst *Instruction) ExecutionResult {
		val, _, crossed := loadOperand(c, inst.Mode)
		*dst(c) = val
		setZN(&c.Registers.P, val)
		res := ExecutionResult{PageCrossed: crossed}
		if crossed {
			res.Cycles = inst.Cycles + 1
		}
		return res
	}
}

// hStore implements STA/STX/STY: write the selected register to the
// resolved effective address. Stores never take a page-crossing bonus
// cycle on real hardware, so PageCrossed is reported (the addressing
// unit's result is always accurate) but never added to Cycles.
func hStore(src regSelector) handlerFunc {
	return func(c *Chip, inst *Instruction) ExecutionResult {
		addr, crossed := effectiveAddress(c, inst.Mode)
		c.Memory.Write8(addr, *src(c))
		return ExecutionResult{PageCrossed: crossed}
	}
}

// hTransfer implements the register-to-register moves (TAX, TAY, TSX,
// TXA, TXS, TYA). setFlags is false only for TXS, which does not
// affect Z/N.
func hTransfer(src, dst regSelector, setFlags bool) handlerFunc {
	return func(c *Chip, inst *Instruction) ExecutionResult {
		v := *src(c)
		*dst(c) = v
		if setFlags {
			setZN(&c.Registers.P, v)
		}
		return ExecutionResult{}
	}
}

// adcCore performs binary-mode ADC math: r = A + M + C, flags from
// the standard ALU identities.
func adcCore(c *Chip, m uint8) {
	p := &c.Registers.P
	var carry uint16
	if p.Carry {
		carry = 1
	}
	a := c.Registers.A
	r := uint16(a) + uint16(m) + carry
	res := uint8(r)
	setOverflow(p, a, m, res)
	setCarry(p, r)
	setZN(p, res)
	c.Registers.A = res
}

// adcDecimal performs BCD-corrected ADC math: the low nibble is
// corrected first, then the full byte. N and V are derived from the
// nibble-corrected intermediate, Z from the uncorrected binary sum,
// and C from the fully corrected sum, matching real 6502 decimal-mode
// ALU behavior.
func adcDecimal(c *Chip, m uint8) {
	p := &c.Registers.P
	var carry uint8
	if p.Carry {
		carry = 1
	}
	a := c.Registers.A

	lo := (a & 0x0F) + (m & 0x0F) + carry
	if lo >= 0x0A {
		lo = ((lo + 0x06) & 0x0F) + 0x10
	}
	sum := uint16(a&0xF0) + uint16(m&0xF0) + uint16(lo)
	nibbleCorrected := uint8(a&0xF0) + uint8(m&0xF0) + lo
	if sum >= 0xA0 {
		sum += 0x60
	}
	bin := a + m + carry

	setOverflow(p, a, m, nibbleCorrected)
	setCarry(p, sum)
	setNegative(p, nibbleCorrected)
	setZero(p, bin)
	c.Registers.A = uint8(sum)
}

// hADC implements ADC across both binary and decimal mode.
func hADC(c *Chip, inst *Instruction) ExecutionResult {
	m, _, crossed := loadOperand(c, inst.Mode)
	if c.Registers.P.Decimal {
		adcDecimal(c, m)
	} else {
		adcCore(c, m)
	}
	res := ExecutionResult{PageCrossed: crossed}
	if crossed {
		res.Cycles = inst.Cycles + 1
	}
	return res
}

// sbcDecimal performs BCD-corrected SBC math. N/Z/V/C are derived
// from the binary (ones-complement-and-add) result, matching hardware
// behavior: only the stored accumulator value is nibble-corrected.
func sbcDecimal(c *Chip, m uint8) {
	p := &c.Registers.P
	var carry uint8
	if p.Carry {
		carry = 1
	}
	a := c.Registers.A

	lo := int16(a&0x0F) - int16(m&0x0F) - int16(1-carry)
	if lo < 0 {
		lo = ((lo - 0x06) & 0x0F) - 0x10
	}
	sum := int16(a&0xF0) - int16(m&0xF0) + lo
	if sum < 0 {
		sum -= 0x60
	}
	res := uint8(sum)

	bin := a + ^m + carry
	setOverflow(p, a, ^m, bin)
	setCarry(p, uint16(a)+uint16(^m)+uint16(carry))
	setZN(p, bin)
	c.Registers.A = res
}

// hSBC implements SBC across both binary and decimal mode. Binary
// mode reuses adcCore with the ones complement of the operand, which
// is the standard identity A-M-(1-C) == A+^M+C.
func hSBC(c *Chip, inst *Instruction) ExecutionResult {
	m, _, crossed := loadOperand(c, inst.Mode)
	if c.Registers.P.Decimal {
		sbcDecimal(c, m)
	} else {
		adcCore(c, ^m)
	}
	res := ExecutionResult{PageCrossed: crossed}
	if crossed {
		res.Cycles = inst.Cycles + 1
	}
	return res
}

// hLogic implements AND/ORA/EOR: combine the operand into A with op,
// then set Z/N from the result.
func hLogic(op func(a, m uint8) uint8) handlerFunc {
	return func(c *Chip, inst *Instruction) ExecutionResult {
		m, _, crossed := loadOperand(c, inst.Mode)
		c.Registers.A = op(c.Registers.A, m)
		setZN(&c.Registers.P, c.Registers.A)
		res := ExecutionResult{PageCrossed: crossed}
		if crossed {
			res.Cycles = inst.Cycles + 1
		}
		return res
	}
}

// writeResult stores val back to where the operand came from: the
// accumulator for Accumulator mode, memory otherwise.
func writeResult(c *Chip, mode AddressingMode, addr uint16, val uint8) {
	if mode == Accumulator {
		c.Registers.A = val
		return
	}
	c.Memory.Write8(addr, val)
}

// hASL implements ASL for both Accumulator and memory targets: shift
// left one bit, old bit 7 into C, Z/N from the result.
func hASL(c *Chip, inst *Instruction) ExecutionResult {
	val, addr, _ := loadOperand(c, inst.Mode)
	p := &c.Registers.P
	p.Carry = val&0x80 != 0
	res := val << 1
	setZN(p, res)
	writeResult(c, inst.Mode, addr, res)
	return ExecutionResult{}
}

// hLSR implements LSR: shift right one bit, old bit 0 into C, Z/N
// from the result (N is always false since bit 7 is always 0 after a
// right shift, but we derive it uniformly for consistency).
func hLSR(c *Chip, inst *Instruction) ExecutionResult {
	val, addr, _ := loadOperand(c, inst.Mode)
	p := &c.Registers.P
	p.Carry = val&0x01 != 0
	res := val >> 1
	setZN(p, res)
	writeResult(c, inst.Mode, addr, res)
	return ExecutionResult{}
}

// hROL implements ROL: shift left one bit with the incoming C fed
// into bit 0, old bit 7 becomes the new C.
func hROL(c *Chip, inst *Instruction) ExecutionResult {
	val, addr, _ := loadOperand(c, inst.Mode)
	p := &c.Registers.P
	var carryIn uint8
	if p.Carry {
		carryIn = 1
	}
	p.Carry = val&0x80 != 0
	res := (val << 1) | carryIn
	setZN(p, res)
	writeResult(c, inst.Mode, addr, res)
	return ExecutionResult{}
}

// hROR implements ROR: shift right one bit with the incoming C fed
// into bit 7, old bit 0 becomes the new C.
func hROR(c *Chip, inst *Instruction) ExecutionResult {
	val, addr, _ := loadOperand(c, inst.Mode)
	p := &c.Registers.P
	var carryIn uint8
	if p.Carry {
		carryIn = 0x80
	}
	p.Carry = val&0x01 != 0
	res := (val >> 1) | carryIn
	setZN(p, res)
	writeResult(c, inst.Mode, addr, res)
	return ExecutionResult{}
}

// hBIT implements BIT: Z from A&M, N and V copied directly from bits
// 7 and 6 of the memory operand (not of A&M).
func hBIT(c *Chip, inst *Instruction) ExecutionResult {
	m, _, _ := loadOperand(c, inst.Mode)
	p := &c.Registers.P
	p.Zero = c.Registers.A&m == 0
	p.Negative = m&0x80 != 0
	p.Overflow = m&0x40 != 0
	return ExecutionResult{}
}

// hINCMem implements INC: add one to the memory operand, set Z/N.
func hINCMem(c *Chip, inst *Instruction) ExecutionResult {
	val, addr, _ := loadOperand(c, inst.Mode)
	res := val + 1
	setZN(&c.Registers.P, res)
	c.Memory.Write8(addr, res)
	return ExecutionResult{}
}

// hDECMem implements DEC: subtract one from the memory operand, set
// Z/N.
func hDECMem(c *Chip, inst *Instruction) ExecutionResult {
	val, addr, _ := loadOperand(c, inst.Mode)
	res := val - 1
	setZN(&c.Registers.P, res)
	c.Memory.Write8(addr, res)
	return ExecutionResult{}
}

// hIncDecReg implements INX/INY/DEX/DEY: add delta to the selected
// register, set Z/N.
func hIncDecReg(reg regSelector, delta uint8) handlerFunc {
	return func(c *Chip, inst *Instruction) ExecutionResult {
		r := reg(c)
		*r += delta
		setZN(&c.Registers.P, *r)
		return ExecutionResult{}
	}
}

// compare implements the shared CMP/CPX/CPY semantics: treat the
// subtraction as unsigned, C set when reg >= m (no borrow needed).
func compare(p *StatusFlags, reg, m uint8) {
	diff := reg - m
	p.Zero = diff == 0
	p.Negative = diff&0x80 != 0
	p.Carry = reg >= m
}

// hCompare implements CMP/CPX/CPY against the selected register.
func hCompare(reg regSelector) handlerFunc {
	return func(c *Chip, inst *Instruction) ExecutionResult {
		m, _, crossed := loadOperand(c, inst.Mode)
		compare(&c.Registers.P, *reg(c), m)
		res := ExecutionResult{PageCrossed: crossed}
		if crossed {
			res.Cycles = inst.Cycles + 1
		}
		return res
	}
}

// hJMP implements JMP for both Absolute and (bugged) Indirect modes.
func hJMP(c *Chip, inst *Instruction) ExecutionResult {
	addr, _ := effectiveAddress(c, inst.Mode)
	c.Registers.PC = addr
	return ExecutionResult{SetPC: true}
}

// hJSR implements JSR: push the address of the last byte of the JSR
// instruction itself (PC+2, not PC+3), then jump.
func hJSR(c *Chip, inst *Instruction) ExecutionResult {
	target, _ := effectiveAddress(c, inst.Mode)
	c.pushStack16(c.Registers.PC + 2)
	c.Registers.PC = target
	return ExecutionResult{SetPC: true}
}

// hRTS implements RTS: pull the return address and add one, undoing
// JSR's off-by-one push.
func hRTS(c *Chip, inst *Instruction) ExecutionResult {
	addr := c.pullStack16()
	c.Registers.PC = addr + 1
	return ExecutionResult{SetPC: true}
}

// hBRK implements the software interrupt: push PC+2 (skipping BRK's
// padding byte), push flags with Break set, set InterruptDisable, and
// load PC from the IRQ/BRK vector.
func hBRK(c *Chip, inst *Instruction) ExecutionResult {
	c.pushStack16(c.Registers.PC + 2)
	c.pushFlags(true)
	c.Registers.P.InterruptDisable = true
	c.Registers.PC = c.Memory.Read16(IRQVector)
	return ExecutionResult{SetPC: true}
}

// hRTI implements return-from-interrupt: pull flags (clearing Break
// per the stack-pop invariant), then pull PC with no return-address
// adjustment (unlike RTS, the pushed value was never an instruction
// byte to skip past).
func hRTI(c *Chip, inst *Instruction) ExecutionResult {
	c.pullFlags()
	c.Registers.PC = c.pullStack16()
	return ExecutionResult{SetPC: true}
}

// hPHA/hPHP/hPLA/hPLP implement the stack instructions.
func hPHA(c *Chip, inst *Instruction) ExecutionResult {
	c.pushStack(c.Registers.A)
	return ExecutionResult{}
}

func hPHP(c *Chip, inst *Instruction) ExecutionResult {
	c.pushFlags(true)
	return ExecutionResult{}
}

func hPLA(c *Chip, inst *Instruction) ExecutionResult {
	c.Registers.A = c.pullStack()
	setZN(&c.Registers.P, c.Registers.A)
	return ExecutionResult{}
}

func hPLP(c *Chip, inst *Instruction) ExecutionResult {
	c.pullFlags()
	return ExecutionResult{}
}

// hFlag implements the single-bit flag instructions CLC/SEC/CLI/SEI/
// CLD/SED/CLV.
func hFlag(set func(p *StatusFlags)) handlerFunc {
	return func(c *Chip, inst *Instruction) ExecutionResult {
		set(&c.Registers.P)
		return ExecutionResult{}
	}
}

// hNOP implements NOP.
func hNOP(c *Chip, inst *Instruction) ExecutionResult {
	return ExecutionResult{}
}

// hBranch implements all eight conditional branches. Cycle count is
// 2 when not taken, 3 when taken within the same page, 4 when taken
// and the branch target lands on a different page than the
// instruction following the branch.
func hBranch(cond func(f StatusFlags) bool) handlerFunc {
	return func(c *Chip, inst *Instruction) ExecutionResult {
		pc := c.Registers.PC
		if !cond(c.Registers.P) {
			c.Registers.PC = pc + 2
			return ExecutionResult{SetPC: true, Cycles: 2}
		}
		target := branchTarget(c, pc)
		crossed := (pc+2)&0xFF00 != target&0xFF00
		cycles := 3
		if crossed {
			cycles = 4
		}
		c.Registers.PC = target
		return ExecutionResult{SetPC: true, Cycles: cycles, PageCrossed: crossed}
	}
}
