// Package console wires RAM, a CPU, a cartridge, the PPU/APU stubs, and two
// controllers onto one bus.Bus, the same way a real NES motherboard does.
package console

import (
	"io"

	"github.com/corvid6502/nescpu/apu"
	"github.com/corvid6502/nescpu/bus"
	"github.com/corvid6502/nescpu/cartridge"
	"github.com/corvid6502/nescpu/controller"
	"github.com/corvid6502/nescpu/cpu"
	"github.com/corvid6502/nescpu/ppu"
)

// Console owns every component of a playable (if silent and blank) NES and
// exposes the CPU's inspection surface for drivers and the debugger.
type Console struct {
	CPU         *cpu.CPU
	RAM         *bus.RAM
	PPU         *ppu.Stub
	APU         *apu.Stub
	Controller1 *controller.Controller
	Controller2 *controller.Controller
	Bus         *bus.Bus
}

// New builds a Console around cart. Call Reset before driving it.
func New(cart cartridge.Cartridge, trace io.Writer) *Console {
	ram := bus.NewRAM()
	p := ppu.NewStub()
	a := apu.NewStub()
	c1 := &controller.Controller{}
	c2 := &controller.Controller{}

	b := bus.New(ram, p, a, c1, c2, cart)
	chip := cpu.NewCPU(b)
	chip.Trace = trace

	return &Console{
		CPU:         chip,
		RAM:         ram,
		PPU:         p,
		APU:         a,
		Controller1: c1,
		Controller2: c2,
		Bus:         b,
	}
}

// Reset drives the CPU's RESET sequence.
func (c *Console) Reset() {
	c.CPU.Reset()
}

// StepInstruction executes one CPU instruction and returns its cycle cost.
func (c *Console) StepInstruction() int {
	return c.CPU.StepInstruction()
}

// AdvanceCycles runs whole instructions until at least n cycles have
// elapsed.
func (c *Console) AdvanceCycles(n uint64) uint64 {
	return c.CPU.AdvanceCycles(n)
}

// Read and Write expose the CPU's address space directly, for tests and the
// debugger to inspect or poke memory without going through instruction
// execution.
func (c *Console) Read(addr uint16) byte      { return c.Bus.Read(addr) }
func (c *Console) Write(addr uint16, v byte) { c.Bus.Write(addr, v) }
