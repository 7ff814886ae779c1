package cpu

// Mode identifies how an instruction's operand bytes resolve to an
// effective address or value.
type Mode byte

const (
	Implied Mode = iota
	Accumulator
	Immediate
	ZeroPage
	ZeroPageX
	ZeroPageY
	Relative
	Absolute
	AbsoluteX
	AbsoluteY
	Indirect
	IndexedIndirect // (zp,X)
	IndirectIndexed // (zp),Y
)

// Instruction is one entry of the 256-slot opcode decode table.
type Instruction struct {
	Mnemonic string
	Mode     Mode
	Bytes    byte
	Cycles   byte // base cycle count, including any unconditional store penalty
	// PageCross reports whether this instruction pays one extra cycle when
	// its effective address crosses a page boundary. Only ever true for
	// read-kind AbsoluteX/AbsoluteY/IndirectIndexed instructions and for
	// relative branches (taken across a page). Write and read-modify-write
	// instructions in indexed modes already have the penalty folded into
	// Cycles and carry PageCross=false.
	PageCross bool
	Illegal   bool
}

// illegalNop is what every one of the 105 undocumented opcode slots decodes
// to: a one-byte, two-cycle no-op. No illegal-opcode semantics (SLO, RLA,
// LAX, and the rest) are modeled.
var illegalNop = Instruction{Mnemonic: "NOP", Mode: Implied, Bytes: 1, Cycles: 2, Illegal: true}

// decodeTable is the full 256-entry opcode decoder: the 151 documented NMOS
// 6502 opcodes plus 105 illegal slots collapsed to illegalNop.
var decodeTable = [256]Instruction{
	0x00: {Mnemonic: "BRK", Mode: Implied, Bytes: 2, Cycles: 7},
	0x01: {Mnemonic: "ORA", Mode: IndexedIndirect, Bytes: 2, Cycles: 6},
	0x05: {Mnemonic: "ORA", Mode: ZeroPage, Bytes: 2, Cycles: 3},
	0x06: {Mnemonic: "ASL", Mode: ZeroPage, Bytes: 2, Cycles: 5},
	0x08: {Mnemonic: "PHP", Mode: Implied, Bytes: 1, Cycles: 3},
	0x09: {Mnemonic: "ORA", Mode: Immediate, Bytes: 2, Cycles: 2},
	0x0A: {Mnemonic: "ASL", Mode: Accumulator, Bytes: 1, Cycles: 2},
	0x0D: {Mnemonic: "ORA", Mode: Absolute, Bytes: 3, Cycles: 4},
	0x0E: {Mnemonic: "ASL", Mode: Absolute, Bytes: 3, Cycles: 6},
	0x10: {Mnemonic: "BPL", Mode: Relative, Bytes: 2, Cycles: 2, PageCross: true},
	0x11: {Mnemonic: "ORA", Mode: IndirectIndexed, Bytes: 2, Cycles: 5, PageCross: true},
	0x15: {Mnemonic: "ORA", Mode: ZeroPageX, Bytes: 2, Cycles: 4},
	0x16: {Mnemonic: "ASL", Mode: ZeroPageX, Bytes: 2, Cycles: 6},
	0x18: {Mnemonic: "CLC", Mode: Implied, Bytes: 1, Cycles: 2},
	0x19: {Mnemonic: "ORA", Mode: AbsoluteY, Bytes: 3, Cycles: 4, PageCross: true},
	0x1D: {Mnemonic: "ORA", Mode: AbsoluteX, Bytes: 3, Cycles: 4, PageCross: true},
	0x1E: {Mnemonic: "ASL", Mode: AbsoluteX, Bytes: 3, Cycles: 7},
	0x20: {Mnemonic: "JSR", Mode: Absolute, Bytes: 3, Cycles: 6},
	0x21: {Mnemonic: "AND", Mode: IndexedIndirect, Bytes: 2, Cycles: 6},
	0x24: {Mnemonic: "BIT", Mode: ZeroPage, Bytes: 2, Cycles: 3},
	0x25: {Mnemonic: "AND", Mode: ZeroPage, Bytes: 2, Cycles: 3},
	0x26: {Mnemonic: "ROL", Mode: ZeroPage, Bytes: 2, Cycles: 5},
	0x28: {Mnemonic: "PLP", Mode: Implied, Bytes: 1, Cycles: 4},
	0x29: {Mnemonic: "AND", Mode: Immediate, Bytes: 2, Cycles: 2},
	0x2A: {Mnemonic: "ROL", Mode: Accumulator, Bytes: 1, Cycles: 2},
	0x2C: {Mnemonic: "BIT", Mode: Absolute, Bytes: 3, Cycles: 4},
	0x2D: {Mnemonic: "AND", Mode: Absolute, Bytes: 3, Cycles: 4},
	0x2E: {Mnemonic: "ROL", Mode: Absolute, Bytes: 3, Cycles: 6},
	0x30: {Mnemonic: "BMI", Mode: Relative, Bytes: 2, Cycles: 2, PageCross: true},
	0x31: {Mnemonic: "AND", Mode: IndirectIndexed, Bytes: 2, Cycles: 5, PageCross: true},
	0x35: {Mnemonic: "AND", Mode: ZeroPageX, Bytes: 2, Cycles: 4},
	0x36: {Mnemonic: "ROL", Mode: ZeroPageX, Bytes: 2, Cycles: 6},
	0x38: {Mnemonic: "SEC", Mode: Implied, Bytes: 1, Cycles: 2},
	0x39: {Mnemonic: "AND", Mode: AbsoluteY, Bytes: 3, Cycles: 4, PageCross: true},
	0x3D: {Mnemonic: "AND", Mode: AbsoluteX, Bytes: 3, Cycles: 4, PageCross: true},
	0x3E: {Mnemonic: "ROL", Mode: AbsoluteX, Bytes: 3, Cycles: 7},
	0x40: {Mnemonic: "RTI", Mode: Implied, Bytes: 1, Cycles: 6},
	0x41: {Mnemonic: "EOR", Mode: IndexedIndirect, Bytes: 2, Cycles: 6},
	0x45: {Mnemonic: "EOR", Mode: ZeroPage, Bytes: 2, Cycles: 3},
	0x46: {Mnemonic: "LSR", Mode: ZeroPage, Bytes: 2, Cycles: 5},
	0x48: {Mnemonic: "PHA", Mode: Implied, Bytes: 1, Cycles: 3},
	0x49: {Mnemonic: "EOR", Mode: Immediate, Bytes: 2, Cycles: 2},
	0x4A: {Mnemonic: "LSR", Mode: Accumulator, Bytes: 1, Cycles: 2},
	0x4C: {Mnemonic: "JMP", Mode: Absolute, Bytes: 3, Cycles: 3},
	0x4D: {Mnemonic: "EOR", Mode: Absolute, Bytes: 3, Cycles: 4},
	0x4E: {Mnemonic: "LSR", Mode: Absolute, Bytes: 3, Cycles: 6},
	0x50: {Mnemonic: "BVC", Mode: Relative, Bytes: 2, Cycles: 2, PageCross: true},
	0x51: {Mnemonic: "EOR", Mode: IndirectIndexed, Bytes: 2, Cycles: 5, PageCross: true},
	0x55: {Mnemonic: "EOR", Mode: ZeroPageX, Bytes: 2, Cycles: 4},
	0x56: {Mnemonic: "LSR", Mode: ZeroPageX, Bytes: 2, Cycles: 6},
	0x58: {Mnemonic: "CLI", Mode: Implied, Bytes: 1, Cycles: 2},
	0x59: {Mnemonic: "EOR", Mode: AbsoluteY, Bytes: 3, Cycles: 4, PageCross: true},
	0x5D: {Mnemonic: "EOR", Mode: AbsoluteX, Bytes: 3, Cycles: 4, PageCross: true},
	0x5E: {Mnemonic: "LSR", Mode: AbsoluteX, Bytes: 3, Cycles: 7},
	0x60: {Mnemonic: "RTS", Mode: Implied, Bytes: 1, Cycles: 6},
	0x61: {Mnemonic: "ADC", Mode: IndexedIndirect, Bytes: 2, Cycles: 6},
	0x65: {Mnemonic: "ADC", Mode: ZeroPage, Bytes: 2, Cycles: 3},
	0x66: {Mnemonic: "ROR", Mode: ZeroPage, Bytes: 2, Cycles: 5},
	0x68: {Mnemonic: "PLA", Mode: Implied, Bytes: 1, Cycles: 4},
	0x69: {Mnemonic: "ADC", Mode: Immediate, Bytes: 2, Cycles: 2},
	0x6A: {Mnemonic: "ROR", Mode: Accumulator, Bytes: 1, Cycles: 2},
	0x6C: {Mnemonic: "JMP", Mode: Indirect, Bytes: 3, Cycles: 5},
	0x6D: {Mnemonic: "ADC", Mode: Absolute, Bytes: 3, Cycles: 4},
	0x6E: {Mnemonic: "ROR", Mode: Absolute, Bytes: 3, Cycles: 6},
	0x70: {Mnemonic: "BVS", Mode: Relative, Bytes: 2, Cycles: 2, PageCross: true},
	0x71: {Mnemonic: "ADC", Mode: IndirectIndexed, Bytes: 2, Cycles: 5, PageCross: true},
	0x75: {Mnemonic: "ADC", Mode: ZeroPageX, Bytes: 2, Cycles: 4},
	0x76: {Mnemonic: "ROR", Mode: ZeroPageX, Bytes: 2, Cycles: 6},
	0x78: {Mnemonic: "SEI", Mode: Implied, Bytes: 1, Cycles: 2},
	0x79: {Mnemonic: "ADC", Mode: AbsoluteY, Bytes: 3, Cycles: 4, PageCross: true},
	0x7D: {Mnemonic: "ADC", Mode: AbsoluteX, Bytes: 3, Cycles: 4, PageCross: true},
	0x7E: {Mnemonic: "ROR", Mode: AbsoluteX, Bytes: 3, Cycles: 7},
	0x81: {Mnemonic: "STA", Mode: IndexedIndirect, Bytes: 2, Cycles: 6},
	0x84: {Mnemonic: "STY", Mode: ZeroPage, Bytes: 2, Cycles: 3},
	0x85: {Mnemonic: "STA", Mode: ZeroPage, Bytes: 2, Cycles: 3},
	0x86: {Mnemonic: "STX", Mode: ZeroPage, Bytes: 2, Cycles: 3},
	0x88: {Mnemonic: "DEY", Mode: Implied, Bytes: 1, Cycles: 2},
	0x8A: {Mnemonic: "TXA", Mode: Implied, Bytes: 1, Cycles: 2},
	0x8C: {Mnemonic: "STY", Mode: Absolute, Bytes: 3, Cycles: 4},
	0x8D: {Mnemonic: "STA", Mode: Absolute, Bytes: 3, Cycles: 4},
	0x8E: {Mnemonic: "STX", Mode: Absolute, Bytes: 3, Cycles: 4},
	0x90: {Mnemonic: "BCC", Mode: Relative, Bytes: 2, Cycles: 2, PageCross: true},
	0x91: {Mnemonic: "STA", Mode: IndirectIndexed, Bytes: 2, Cycles: 6},
	0x94: {Mnemonic: "STY", Mode: ZeroPageX, Bytes: 2, Cycles: 4},
	0x95: {Mnemonic: "STA", Mode: ZeroPageX, Bytes: 2, Cycles: 4},
	0x96: {Mnemonic: "STX", Mode: ZeroPageY, Bytes: 2, Cycles: 4},
	0x98: {Mnemonic: "TYA", Mode: Implied, Bytes: 1, Cycles: 2},
	0x99: {Mnemonic: "STA", Mode: AbsoluteY, Bytes: 3, Cycles: 5},
	0x9A: {Mnemonic: "TXS", Mode: Implied, Bytes: 1, Cycles: 2},
	0x9D: {Mnemonic: "STA", Mode: AbsoluteX, Bytes: 3, Cycles: 5},
	0xA0: {Mnemonic: "LDY", Mode: Immediate, Bytes: 2, Cycles: 2},
	0xA1: {Mnemonic: "LDA", Mode: IndexedIndirect, Bytes: 2, Cycles: 6},
	0xA2: {Mnemonic: "LDX", Mode: Immediate, Bytes: 2, Cycles: 2},
	0xA4: {Mnemonic: "LDY", Mode: ZeroPage, Bytes: 2, Cycles: 3},
	0xA5: {Mnemonic: "LDA", Mode: ZeroPage, Bytes: 2, Cycles: 3},
	0xA6: {Mnemonic: "LDX", Mode: ZeroPage, Bytes: 2, Cycles: 3},
	0xA8: {Mnemonic: "TAY", Mode: Implied, Bytes: 1, Cycles: 2},
	0xA9: {Mnemonic: "LDA", Mode: Immediate, Bytes: 2, Cycles: 2},
	0xAA: {Mnemonic: "TAX", Mode: Implied, Bytes: 1, Cycles: 2},
	0xAC: {Mnemonic: "LDY", Mode: Absolute, Bytes: 3, Cycles: 4},
	0xAD: {Mnemonic: "LDA", Mode: Absolute, Bytes: 3, Cycles: 4},
	0xAE: {Mnemonic: "LDX", Mode: Absolute, Bytes: 3, Cycles: 4},
	0xB0: {Mnemonic: "BCS", Mode: Relative, Bytes: 2, Cycles: 2, PageCross: true},
	0xB1: {Mnemonic: "LDA", Mode: IndirectIndexed, Bytes: 2, Cycles: 5, PageCross: true},
	0xB4: {Mnemonic: "LDY", Mode: ZeroPageX, Bytes: 2, Cycles: 4},
	0xB5: {Mnemonic: "LDA", Mode: ZeroPageX, Bytes: 2, Cycles: 4},
	0xB6: {Mnemonic: "LDX", Mode: ZeroPageY, Bytes: 2, Cycles: 4},
	0xB8: {Mnemonic: "CLV", Mode: Implied, Bytes: 1, Cycles: 2},
	0xB9: {Mnemonic: "LDA", Mode: AbsoluteY, Bytes: 3, Cycles: 4, PageCross: true},
	0xBA: {Mnemonic: "TSX", Mode: Implied, Bytes: 1, Cycles: 2},
	0xBC: {Mnemonic: "LDY", Mode: AbsoluteX, Bytes: 3, Cycles: 4, PageCross: true},
	0xBD: {Mnemonic: "LDA", Mode: AbsoluteX, Bytes: 3, Cycles: 4, PageCross: true},
	0xBE: {Mnemonic: "LDX", Mode: AbsoluteY, Bytes: 3, Cycles: 4, PageCross: true},
	0xC0: {Mnemonic: "CPY", Mode: Immediate, Bytes: 2, Cycles: 2},
	0xC1: {Mnemonic: "CMP", Mode: IndexedIndirect, Bytes: 2, Cycles: 6},
	0xC4: {Mnemonic: "CPY", Mode: ZeroPage, Bytes: 2, Cycles: 3},
	0xC5: {Mnemonic: "CMP", Mode: ZeroPage, Bytes: 2, Cycles: 3},
	0xC6: {Mnemonic: "DEC", Mode: ZeroPage, Bytes: 2, Cycles: 5},
	0xC8: {Mnemonic: "INY", Mode: Implied, Bytes: 1, Cycles: 2},
	0xC9: {Mnemonic: "CMP", Mode: Immediate, Bytes: 2, Cycles: 2},
	0xCA: {Mnemonic: "DEX", Mode: Implied, Bytes: 1, Cycles: 2},
	0xCC: {Mnemonic: "CPY", Mode: Absolute, Bytes: 3, Cycles: 4},
	0xCD: {Mnemonic: "CMP", Mode: Absolute, Bytes: 3, Cycles: 4},
	0xCE: {Mnemonic: "DEC", Mode: Absolute, Bytes: 3, Cycles: 6},
	0xD0: {Mnemonic: "BNE", Mode: Relative, Bytes: 2, Cycles: 2, PageCross: true},
	0xD1: {Mnemonic: "CMP", Mode: IndirectIndexed, Bytes: 2, Cycles: 5, PageCross: true},
	0xD5: {Mnemonic: "CMP", Mode: ZeroPageX, Bytes: 2, Cycles: 4},
	0xD6: {Mnemonic: "DEC", Mode: ZeroPageX, Bytes: 2, Cycles: 6},
	0xD8: {Mnemonic: "CLD", Mode: Implied, Bytes: 1, Cycles: 2},
	0xD9: {Mnemonic: "CMP", Mode: AbsoluteY, Bytes: 3, Cycles: 4, PageCross: true},
	0xDD: {Mnemonic: "CMP", Mode: AbsoluteX, Bytes: 3, Cycles: 4, PageCross: true},
	0xDE: {Mnemonic: "DEC", Mode: AbsoluteX, Bytes: 3, Cycles: 7},
	0xE0: {Mnemonic: "CPX", Mode: Immediate, Bytes: 2, Cycles: 2},
	0xE1: {Mnemonic: "SBC", Mode: IndexedIndirect, Bytes: 2, Cycles: 6},
	0xE4: {Mnemonic: "CPX", Mode: ZeroPage, Bytes: 2, Cycles: 3},
	0xE5: {Mnemonic: "SBC", Mode: ZeroPage, Bytes: 2, Cycles: 3},
	0xE6: {Mnemonic: "INC", Mode: ZeroPage, Bytes: 2, Cycles: 5},
	0xE8: {Mnemonic: "INX", Mode: Implied, Bytes: 1, Cycles: 2},
	0xE9: {Mnemonic: "SBC", Mode: Immediate, Bytes: 2, Cycles: 2},
	0xEA: {Mnemonic: "NOP", Mode: Implied, Bytes: 1, Cycles: 2},
	0xEC: {Mnemonic: "CPX", Mode: Absolute, Bytes: 3, Cycles: 4},
	0xED: {Mnemonic: "SBC", Mode: Absolute, Bytes: 3, Cycles: 4},
	0xEE: {Mnemonic: "INC", Mode: Absolute, Bytes: 3, Cycles: 6},
	0xF0: {Mnemonic: "BEQ", Mode: Relative, Bytes: 2, Cycles: 2, PageCross: true},
	0xF1: {Mnemonic: "SBC", Mode: IndirectIndexed, Bytes: 2, Cycles: 5, PageCross: true},
	0xF5: {Mnemonic: "SBC", Mode: ZeroPageX, Bytes: 2, Cycles: 4},
	0xF6: {Mnemonic: "INC", Mode: ZeroPageX, Bytes: 2, Cycles: 6},
	0xF8: {Mnemonic: "SED", Mode: Implied, Bytes: 1, Cycles: 2},
	0xF9: {Mnemonic: "SBC", Mode: AbsoluteY, Bytes: 3, Cycles: 4, PageCross: true},
	0xFD: {Mnemonic: "SBC", Mode: AbsoluteX, Bytes: 3, Cycles: 4, PageCross: true},
	0xFE: {Mnemonic: "INC", Mode: AbsoluteX, Bytes: 3, Cycles: 7},
}

// decode returns the decode table entry for opcode, substituting illegalNop
// for any of the 105 slots the table above leaves zero-valued.
func decode(opcode byte) Instruction {
	inst := decodeTable[opcode]
	if inst.Mnemonic == "" {
		return illegalNop
	}
	return inst
}
