package cpu

// execute carries out the semantics of one decoded instruction against its
// already-resolved operand address, returning any cycles beyond the
// decoder's base Cycles count (only branches and their page-cross/taken
// bonus ever contribute here).
func (c *CPU) execute(inst Instruction, addr uint16, pageCrossed bool) (extra uint64) {
	switch inst.Mnemonic {
	case "NOP":
		// Illegal-opcode slots and the documented NOPs alike: touch
		// nothing but the operand fetch already performed above.

	case "LDA":
		c.A = c.read(addr)
		c.P.updateZN(c.A)
	case "LDX":
		c.X = c.read(addr)
		c.P.updateZN(c.X)
	case "LDY":
		c.Y = c.read(addr)
		c.P.updateZN(c.Y)
	case "STA":
		c.write(addr, c.A)
	case "STX":
		c.write(addr, c.X)
	case "STY":
		c.write(addr, c.Y)

	case "TAX":
		c.X = c.A
		c.P.updateZN(c.X)
	case "TAY":
		c.Y = c.A
		c.P.updateZN(c.Y)
	case "TXA":
		c.A = c.X
		c.P.updateZN(c.A)
	case "TYA":
		c.A = c.Y
		c.P.updateZN(c.A)
	case "TSX":
		c.X = c.SP
		c.P.updateZN(c.X)
	case "TXS":
		c.SP = c.X

	case "PHA":
		c.push(c.A)
	case "PHP":
		c.push(c.P.pushed(true))
	case "PLA":
		c.A = c.pull()
		c.P.updateZN(c.A)
	case "PLP":
		c.P.pulled(c.pull())

	case "AND":
		c.A &= c.read(addr)
		c.P.updateZN(c.A)
	case "ORA":
		c.A |= c.read(addr)
		c.P.updateZN(c.A)
	case "EOR":
		c.A ^= c.read(addr)
		c.P.updateZN(c.A)
	case "BIT":
		v := c.read(addr)
		c.P.Set(Zero, c.A&v == 0)
		c.P.Set(Overflow, v&0x40 != 0)
		c.P.Set(Negative, v&0x80 != 0)

	case "ADC":
		c.add(c.read(addr))
	case "SBC":
		c.add(c.read(addr) ^ 0xFF)

	case "CMP":
		c.compare(c.A, c.read(addr))
	case "CPX":
		c.compare(c.X, c.read(addr))
	case "CPY":
		c.compare(c.Y, c.read(addr))

	case "INC":
		v := c.read(addr) + 1
		c.write(addr, v)
		c.P.updateZN(v)
	case "DEC":
		v := c.read(addr) - 1
		c.write(addr, v)
		c.P.updateZN(v)
	case "INX":
		c.X++
		c.P.updateZN(c.X)
	case "INY":
		c.Y++
		c.P.updateZN(c.Y)
	case "DEX":
		c.X--
		c.P.updateZN(c.X)
	case "DEY":
		c.Y--
		c.P.updateZN(c.Y)

	case "ASL":
		if inst.Mode == Accumulator {
			c.A = c.shiftLeft(c.A)
			return 0
		}
		v := c.read(addr)
		c.write(addr, c.shiftLeft(v))
	case "LSR":
		if inst.Mode == Accumulator {
			c.A = c.shiftRight(c.A)
			return 0
		}
		v := c.read(addr)
		c.write(addr, c.shiftRight(v))
	case "ROL":
		if inst.Mode == Accumulator {
			c.A = c.rotateLeft(c.A)
			return 0
		}
		v := c.read(addr)
		c.write(addr, c.rotateLeft(v))
	case "ROR":
		if inst.Mode == Accumulator {
			c.A = c.rotateRight(c.A)
			return 0
		}
		v := c.read(addr)
		c.write(addr, c.rotateRight(v))

	case "JMP":
		c.PC = addr
	case "JSR":
		c.pushAddress(c.PC - 1)
		c.PC = addr
	case "RTS":
		c.PC = c.pullAddress() + 1
	case "RTI":
		c.P.pulled(c.pull())
		c.PC = c.pullAddress()
	case "BRK":
		// BRK is one opcode byte followed by a padding byte that RTI should
		// skip on return; resolveAddress(Implied) never advances PC, so do
		// it here before pushing.
		c.PC++
		c.interruptSequence(irqVector, true)

	case "BCC":
		return c.branch(addr, !c.P.Get(Carry), pageCrossed)
	case "BCS":
		return c.branch(addr, c.P.Get(Carry), pageCrossed)
	case "BEQ":
		return c.branch(addr, c.P.Get(Zero), pageCrossed)
	case "BNE":
		return c.branch(addr, !c.P.Get(Zero), pageCrossed)
	case "BMI":
		return c.branch(addr, c.P.Get(Negative), pageCrossed)
	case "BPL":
		return c.branch(addr, !c.P.Get(Negative), pageCrossed)
	case "BVC":
		return c.branch(addr, !c.P.Get(Overflow), pageCrossed)
	case "BVS":
		return c.branch(addr, c.P.Get(Overflow), pageCrossed)

	case "CLC":
		c.P.Set(Carry, false)
	case "SEC":
		c.P.Set(Carry, true)
	case "CLI":
		c.P.Set(InterruptDisable, false)
	case "SEI":
		c.P.Set(InterruptDisable, true)
	case "CLD":
		c.P.Set(Decimal, false)
	case "SED":
		c.P.Set(Decimal, true)
	case "CLV":
		c.P.Set(Overflow, false)
	}

	return 0
}

// add implements ADC; SBC calls it with its operand ones-complemented, the
// standard trick that makes subtraction reuse the same carry/overflow logic.
func (c *CPU) add(v byte) {
	a := uint16(c.A)
	m := uint16(v)
	carry := uint16(0)
	if c.P.Get(Carry) {
		carry = 1
	}

	sum := a + m + carry
	c.P.Set(Carry, sum&0x100 != 0)
	c.P.Set(Overflow, (a^sum)&(m^sum)&0x80 != 0)

	c.A = byte(sum)
	c.P.updateZN(c.A)
}

func (c *CPU) compare(reg, v byte) {
	c.P.Set(Carry, reg >= v)
	c.P.updateZN(reg - v)
}

func (c *CPU) shiftLeft(v byte) byte {
	c.P.Set(Carry, v&0x80 != 0)
	v <<= 1
	c.P.updateZN(v)
	return v
}

func (c *CPU) shiftRight(v byte) byte {
	c.P.Set(Carry, v&0x01 != 0)
	v >>= 1
	c.P.updateZN(v)
	return v
}

func (c *CPU) rotateLeft(v byte) byte {
	carryIn := byte(0)
	if c.P.Get(Carry) {
		carryIn = 1
	}
	c.P.Set(Carry, v&0x80 != 0)
	v = v<<1 | carryIn
	c.P.updateZN(v)
	return v
}

func (c *CPU) rotateRight(v byte) byte {
	carryIn := byte(0)
	if c.P.Get(Carry) {
		carryIn = 0x80
	}
	c.P.Set(Carry, v&0x01 != 0)
	v = v>>1 | carryIn
	c.P.updateZN(v)
	return v
}

// branch applies a relative jump when taken is true, returning the extra
// cycles spent: 1 for a taken branch, plus 1 more if it lands on a different
// page than the following instruction would have started on.
func (c *CPU) branch(addr uint16, taken, pageCrossed bool) uint64 {
	if !taken {
		return 0
	}
	c.PC = addr
	if pageCrossed {
		return 2
	}
	return 1
}
