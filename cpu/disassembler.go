package cpu

import (
	"fmt"
	"strings"
)

// disassemble renders one nestest-style trace line for the instruction at
// pc: address, raw bytes, mnemonic plus operand, then register state. Used
// only when Trace is set; has no effect on execution.
func (c *CPU) disassemble(pc uint16, inst Instruction, operand uint16) string {
	var b strings.Builder

	fmt.Fprintf(&b, "%04X  ", pc)

	switch inst.Bytes {
	case 1:
		fmt.Fprintf(&b, "%02X      ", c.bus.Read(pc))
	case 2:
		fmt.Fprintf(&b, "%02X %02X   ", c.bus.Read(pc), c.bus.Read(pc+1))
	case 3:
		fmt.Fprintf(&b, "%02X %02X %02X", c.bus.Read(pc), c.bus.Read(pc+1), c.bus.Read(pc+2))
	}

	if inst.Illegal {
		b.WriteString(" *")
	} else {
		b.WriteString("  ")
	}

	b.WriteString(inst.Mnemonic)
	b.WriteByte(' ')

	switch inst.Mode {
	case Accumulator:
		b.WriteString("A")
	case Implied:
	case Relative:
		fmt.Fprintf(&b, addressingFormats[inst.Mode], operand)
	default:
		raw := uint16(c.bus.Read(pc + 1))
		if inst.Bytes == 3 {
			raw |= uint16(c.bus.Read(pc+2)) << 8
		}
		fmt.Fprintf(&b, addressingFormats[inst.Mode], raw)
	}

	line := b.String()
	if pad := 48 - len(line); pad > 0 {
		line += strings.Repeat(" ", pad)
	}

	return fmt.Sprintf("%sA:%02X X:%02X Y:%02X P:%02X SP:%02X CYC:%d",
		line, c.A, c.X, c.Y, byte(c.P), c.SP, c.Cycles)
}

var addressingFormats = map[Mode]string{
	Immediate:       "#$%02X",
	Absolute:        "$%04X",
	ZeroPage:        "$%02X",
	Indirect:        "($%04X)",
	AbsoluteX:       "$%04X,X",
	AbsoluteY:       "$%04X,Y",
	ZeroPageX:       "$%02X,X",
	ZeroPageY:       "$%02X,Y",
	IndexedIndirect: "($%02X,X)",
	IndirectIndexed: "($%02X),Y",
	Relative:        "$%04X",
}
