package mapper

// NROM implements mapper 0: PRG ROM mapped flat (or mirrored twice if only
// one 16KiB bank is present) into $8000-$FFFF, no bank switching. It is the
// simplest real NES mapper and the one nearly every test ROM ships as. CHR
// data is parsed by ParseINES but not retained here: the PPU stub exposes
// only its register window, never pattern-table memory.
type NROM struct {
	prg []byte
	ram [0x2000]byte // $6000-$7FFF PRG RAM, present whether or not SaveRAM is set
}

// NewNROM constructs an NROM cartridge from a parsed iNES image.
func NewNROM(rom *INES) *NROM {
	return &NROM{prg: rom.PRG}
}

func (m *NROM) PRGRead(addr uint16) byte {
	switch {
	case addr >= 0x8000:
		return m.prg[int(addr-0x8000)%len(m.prg)]
	case addr >= 0x6000:
		return m.ram[addr-0x6000]
	default:
		return 0
	}
}

func (m *NROM) PRGWrite(addr uint16, v byte) {
	switch {
	case addr >= 0x8000:
		// PRG ROM: not writable, NROM has no bank-select registers.
	case addr >= 0x6000:
		m.ram[addr-0x6000] = v
	}
}
