// Package mapper supplements the core with a minimal iNES loader and a
// mapper 0 (NROM) implementation of cartridge.Cartridge, so a program ROM
// can actually be loaded and run end to end. Neither the cpu nor bus package
// imports this one; they only ever bind to cartridge.Cartridge.
package mapper

import (
	"bytes"
	"encoding/binary"
	"errors"
	"fmt"
	"io"

	"github.com/corvid6502/nescpu/cartridge"
)

const (
	trainerLen = 512
	prgBankLen = 16 * 1024
	chrBankLen = 8 * 1024
)

const (
	ctrl1Vertical   = 1 << iota // mirroring: 0 horizontal, 1 vertical
	ctrl1SaveRAM                // battery-backed PRG RAM present
	ctrl1Trainer                // 512-byte trainer precedes PRG data
	ctrl1FourScreen             // ignore mirroring bit, four-screen VRAM
)

var (
	inesMagic = [4]byte{'N', 'E', 'S', 0x1A}

	// ErrBadHeader is returned when the first four bytes aren't the iNES
	// magic number.
	ErrBadHeader = errors.New("mapper: missing iNES magic header")
	// ErrShortROM is returned when the file ends before the header's
	// declared PRG/CHR/trainer sizes are satisfied.
	ErrShortROM = errors.New("mapper: truncated ROM data")
	// ErrUnsupportedMapper is returned by Load for any mapper number this
	// package has no implementation for.
	ErrUnsupportedMapper = errors.New("mapper: unsupported mapper number")
)

// Mirroring describes how the PPU's two physical nametables are mapped onto
// its four logical ones.
type Mirroring int

const (
	Horizontal Mirroring = iota
	Vertical
	FourScreen
)

type header struct {
	Magic       [4]byte
	PRGBanks    byte
	CHRBanks    byte
	Ctrl1       byte
	Ctrl2       byte
	PRGRAMBanks byte
	_           [7]byte
}

// INES is a parsed iNES-format ROM image, independent of any particular
// mapper's addressing behavior.
type INES struct {
	Mapper    byte
	Mirroring Mirroring
	SaveRAM   bool
	Trainer   []byte
	PRG       []byte
	CHR       []byte
	hasCHRRAM bool
}

// ParseINES reads and validates an iNES header and the PRG/CHR data that
// follows it. It does not select or construct a mapper.
func ParseINES(r io.Reader) (*INES, error) {
	var h header
	if err := binary.Read(r, binary.LittleEndian, &h); err != nil {
		return nil, fmt.Errorf("%w: %s", ErrShortROM, err)
	}

	if !bytes.Equal(h.Magic[:], inesMagic[:]) {
		return nil, ErrBadHeader
	}

	var trainer []byte
	if h.Ctrl1&ctrl1Trainer != 0 {
		trainer = make([]byte, trainerLen)
		if _, err := io.ReadFull(r, trainer); err != nil {
			return nil, fmt.Errorf("%w: trainer: %s", ErrShortROM, err)
		}
	}

	prg := make([]byte, int(h.PRGBanks)*prgBankLen)
	if _, err := io.ReadFull(r, prg); err != nil {
		return nil, fmt.Errorf("%w: PRG: %s", ErrShortROM, err)
	}

	var chr []byte
	hasCHRRAM := h.CHRBanks == 0
	if hasCHRRAM {
		chr = make([]byte, chrBankLen)
	} else {
		chr = make([]byte, int(h.CHRBanks)*chrBankLen)
		if _, err := io.ReadFull(r, chr); err != nil {
			return nil, fmt.Errorf("%w: CHR: %s", ErrShortROM, err)
		}
	}

	mirroring := Horizontal
	if h.Ctrl1&ctrl1Vertical != 0 {
		mirroring = Vertical
	}
	if h.Ctrl1&ctrl1FourScreen != 0 {
		mirroring = FourScreen
	}

	return &INES{
		Mapper:    h.Ctrl1>>4 | h.Ctrl2&0xF0,
		Mirroring: mirroring,
		SaveRAM:   h.Ctrl1&ctrl1SaveRAM != 0,
		Trainer:   trainer,
		PRG:       prg,
		CHR:       chr,
		hasCHRRAM: hasCHRRAM,
	}, nil
}

// Load parses r as an iNES image and constructs the matching mapper
// implementation.
func Load(r io.Reader) (cartridge.Cartridge, error) {
	rom, err := ParseINES(r)
	if err != nil {
		return nil, err
	}

	switch rom.Mapper {
	case 0:
		return NewNROM(rom), nil
	default:
		return nil, fmt.Errorf("%w: %d", ErrUnsupportedMapper, rom.Mapper)
	}
}
