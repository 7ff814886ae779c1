package cpu

// resolveAddress consumes an instruction's operand bytes from PC and returns
// the effective address (or, for Immediate, the address of the immediate
// byte itself) together with whether resolving it crossed a page boundary.
// Implied and Accumulator instructions return (0, false); their mnemonic
// handlers never consult the operand.
func (c *CPU) resolveAddress(inst Instruction) (addr uint16, pageCrossed bool) {
	switch inst.Mode {
	case Implied, Accumulator:
		return 0, false

	case Immediate:
		addr = c.PC
		c.PC++
		return addr, false

	case ZeroPage:
		return uint16(c.fetch()), false

	case ZeroPageX:
		base := c.fetch()
		return uint16(base + c.X), false // wraps within page zero

	case ZeroPageY:
		base := c.fetch()
		return uint16(base + c.Y), false // wraps within page zero

	case Absolute:
		lo := c.fetch()
		hi := c.fetch()
		return uint16(hi)<<8 | uint16(lo), false

	case AbsoluteX:
		lo := c.fetch()
		hi := c.fetch()
		base := uint16(hi)<<8 | uint16(lo)
		return base + uint16(c.X), crossed(base, c.X)

	case AbsoluteY:
		lo := c.fetch()
		hi := c.fetch()
		base := uint16(hi)<<8 | uint16(lo)
		return base + uint16(c.Y), crossed(base, c.Y)

	case Relative:
		offset := int8(c.fetch())
		base := c.PC
		target := uint16(int32(base) + int32(offset))
		return target, (base & 0xFF00) != (target & 0xFF00)

	case Indirect:
		lo := c.fetch()
		hi := c.fetch()
		pointer := uint16(hi)<<8 | uint16(lo)

		// NES 6502 indirect-JMP bug: the high byte is fetched from
		// pointer with only the low byte incremented, so a pointer on a
		// page boundary ($xxFF) wraps within that page instead of
		// crossing into the next one.
		rlo := c.read(pointer)
		rhi := c.read(pointer&0xFF00 | uint16(byte(pointer)+1))
		return uint16(rhi)<<8 | uint16(rlo), false

	case IndexedIndirect:
		base := c.fetch()
		pointer := base + c.X // wraps within page zero
		lo := c.read(uint16(pointer))
		hi := c.read(uint16(pointer + 1))
		return uint16(hi)<<8 | uint16(lo), false

	case IndirectIndexed:
		pointer := c.fetch()
		lo := c.read(uint16(pointer))
		hi := c.read(uint16(pointer + 1))
		base := uint16(hi)<<8 | uint16(lo)
		return base + uint16(c.Y), crossed(base, c.Y)
	}

	return 0, false
}
