// Package bus implements the NES CPU's 16-bit memory map: RAM mirroring,
// the PPU/APU/controller register windows, OAM DMA, and cartridge
// passthrough.
package bus

import "github.com/corvid6502/nescpu/cartridge"

// PPU is the register-window surface the bus dispatches $2000-$3FFF (and the
// $4014 OAM DMA trigger) to.
type PPU interface {
	ReadRegister(n uint8) byte
	WriteRegister(n uint8, v byte)
	// DMA copies 256 bytes starting at page (the operand written to $4014)
	// into OAM, given a page-read callback into CPU-visible memory.
	DMA(page byte, read func(addr uint16) byte)
}

// APU is the register-window surface the bus dispatches $4000-$4013, $4015
// and $4017 to.
type APU interface {
	ReadRegister(addr uint16) byte
	WriteRegister(addr uint16, v byte)
}

// Controller implements the $4016/$4017 strobe and shift-register protocol.
type Controller interface {
	Read() byte
	Write(v byte)
}

const (
	ramEnd  = 0x1FFF
	ppuLo   = 0x2000
	ppuHi   = 0x3FFF
	ioLo    = 0x4000
	ioHi    = 0x4017
	testHi  = 0x401F
	oamDMA  = 0x4014
	ctrl1   = 0x4016
	ctrl2   = 0x4017
	apuStat = 0x4015

	// openBus is what an unmapped read yields, matching the floating-bus
	// value commonly observed on real NES hardware.
	openBus = 0xAA
)

// Bus wires RAM, the PPU/APU register stubs, both controllers and a
// cartridge onto one 64KiB CPU address space.
type Bus struct {
	RAM         *RAM
	PPU         PPU
	APU         APU
	Controller1 Controller
	Controller2 Controller
	Cartridge   cartridge.Cartridge

	dmaStall uint64
	cycles   uint64
}

func New(ram *RAM, ppu PPU, apu APU, ctrl1, ctrl2 Controller, cart cartridge.Cartridge) *Bus {
	return &Bus{RAM: ram, PPU: ppu, APU: apu, Controller1: ctrl1, Controller2: ctrl2, Cartridge: cart}
}

func (b *Bus) Read(addr uint16) byte {
	b.cycles++
	switch {
	case addr <= ramEnd:
		return b.RAM.Read(addr)
	case addr >= ppuLo && addr <= ppuHi:
		return b.PPU.ReadRegister(uint8((addr - ppuLo) % 8))
	case addr == apuStat:
		return b.APU.ReadRegister(addr)
	case addr == ctrl1:
		return b.Controller1.Read()
	case addr == ctrl2:
		return b.Controller2.Read()
	case addr >= ioLo && addr <= ioHi:
		return b.APU.ReadRegister(addr)
	case addr > ioHi && addr <= testHi:
		return openBus
	default:
		return b.Cartridge.PRGRead(addr)
	}
}

func (b *Bus) Write(addr uint16, v byte) {
	b.cycles++
	switch {
	case addr <= ramEnd:
		b.RAM.Write(addr, v)
	case addr >= ppuLo && addr <= ppuHi:
		b.PPU.WriteRegister(uint8((addr-ppuLo)%8), v)
	case addr == oamDMA:
		b.triggerDMA(v)
	case addr == ctrl1:
		b.Controller1.Write(v)
	case addr == ctrl2:
		b.Controller2.Write(v)
		b.APU.WriteRegister(addr, v)
	case addr >= ioLo && addr <= ioHi:
		b.APU.WriteRegister(addr, v)
	case addr > ioHi && addr <= testHi:
		// test-mode registers, ignored
	default:
		b.Cartridge.PRGWrite(addr, v)
	}
}

// triggerDMA copies the 256-byte page page<<8 into OAM and records the CPU
// stall: 513 cycles, or 514 when the bus's own count of reads and writes is
// odd after the copy. That count includes the 256 DMA reads; it is not the
// CPU's cycle counter, which the bus does not see.
func (b *Bus) triggerDMA(page byte) {
	b.PPU.DMA(page, b.Read)

	stall := uint64(513)
	if b.cycles%2 == 1 {
		stall = 514
	}
	b.dmaStall += stall
}

// TakeDMAStall returns and clears any OAM DMA stall accrued since the last
// call. The cpu package polls this (via an optional-interface check) after
// every instruction so a $4014 write charges the CPU for the DMA stall.
func (b *Bus) TakeDMAStall() uint64 {
	stall := b.dmaStall
	b.dmaStall = 0
	return stall
}
