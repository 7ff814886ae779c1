package cpu

import (
	"testing"

	"github.com/davecgh/go-spew/spew"
)

// flatMemory is a 64KiB flat address space implementing Bus, the simplest
// harness a CPU test needs: no mirroring, no register windows.
type flatMemory struct {
	mem [65536]byte
}

func (m *flatMemory) Read(addr uint16) byte     { return m.mem[addr] }
func (m *flatMemory) Write(addr uint16, v byte) { m.mem[addr] = v }

func (m *flatMemory) loadAt(addr uint16, program ...byte) {
	copy(m.mem[addr:], program)
}

func (m *flatMemory) setResetVector(addr uint16) {
	m.mem[0xFFFC] = byte(addr)
	m.mem[0xFFFD] = byte(addr >> 8)
}

func newTestCPU(program ...byte) (*CPU, *flatMemory) {
	mem := &flatMemory{}
	mem.loadAt(0x8000, program...)
	mem.setResetVector(0x8000)
	c := NewCPU(mem)
	c.Reset()
	return c, mem
}

func dump(t *testing.T, c *CPU) {
	t.Helper()
	t.Logf("cpu state:\n%s", spew.Sdump(c))
}

func TestResetState(t *testing.T) {
	c, _ := newTestCPU()
	if c.PC != 0x8000 {
		t.Errorf("PC = $%04X, want $8000", c.PC)
	}
	if c.SP != 0xFD {
		t.Errorf("SP = $%02X, want $FD", c.SP)
	}
	if !c.P.Get(InterruptDisable) {
		t.Error("InterruptDisable not set after reset")
	}
}

func TestLoadStoreRoundTrip(t *testing.T) {
	// LDA #$42; STA $0010; LDA $0010
	c, mem := newTestCPU(0xA9, 0x42, 0x8D, 0x10, 0x00, 0xAD, 0x10, 0x00)

	c.StepInstruction()
	if c.A != 0x42 {
		dump(t, c)
		t.Fatalf("A = $%02X after LDA#, want $42", c.A)
	}

	c.StepInstruction()
	if got := mem.Read(0x0010); got != 0x42 {
		dump(t, c)
		t.Fatalf("mem[$0010] = $%02X after STA, want $42", got)
	}

	c.A = 0
	c.StepInstruction()
	if c.A != 0x42 {
		dump(t, c)
		t.Fatalf("A = $%02X after LDA $0010, want $42", c.A)
	}
}

func TestZeroAndNegativeFlags(t *testing.T) {
	tests := []struct {
		name     string
		value    byte
		wantZero bool
		wantNeg  bool
	}{
		{"zero", 0x00, true, false},
		{"positive", 0x01, false, false},
		{"negative", 0x80, false, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, _ := newTestCPU(0xA9, tt.value)
			c.StepInstruction()
			if got := c.P.Get(Zero); got != tt.wantZero {
				dump(t, c)
				t.Errorf("Zero = %v, want %v", got, tt.wantZero)
			}
			if got := c.P.Get(Negative); got != tt.wantNeg {
				dump(t, c)
				t.Errorf("Negative = %v, want %v", got, tt.wantNeg)
			}
		})
	}
}

func TestBranchSamePage(t *testing.T) {
	// CLC; BCC +2 (lands two bytes later, same page)
	c, _ := newTestCPU(0x18, 0x90, 0x02)
	c.StepInstruction()
	cycles := c.StepInstruction()
	if cycles != 3 {
		dump(t, c)
		t.Fatalf("branch cycles = %d, want 3 (2 base + 1 taken)", cycles)
	}
	if c.PC != 0x8005 {
		dump(t, c)
		t.Fatalf("PC = $%04X, want $8005", c.PC)
	}
}

func TestBranchCrossesPage(t *testing.T) {
	// CLC at $80FC, BCC #$01 straddling the end of page $80: after fetching
	// the branch's two bytes PC sits at $80FF, and +1 lands at $8100.
	mem := &flatMemory{}
	mem.loadAt(0x80FC, 0x18)
	mem.loadAt(0x80FD, 0x90, 0x01)
	mem.setResetVector(0x80FC)
	c := NewCPU(mem)
	c.Reset()

	c.StepInstruction()
	cycles := c.StepInstruction()
	if cycles != 4 {
		dump(t, c)
		t.Fatalf("cross-page branch cycles = %d, want 4 (2 base + 1 taken + 1 page cross)", cycles)
	}
}

func TestBranchNotTaken(t *testing.T) {
	// SEC; BCC +2 (carry set, so BCC does not branch)
	c, _ := newTestCPU(0x38, 0x90, 0x02)
	c.StepInstruction()
	cycles := c.StepInstruction()
	if cycles != 2 {
		dump(t, c)
		t.Fatalf("not-taken branch cycles = %d, want 2", cycles)
	}
	if c.PC != 0x8003 {
		dump(t, c)
		t.Fatalf("PC = $%04X, want $8003 (fell through)", c.PC)
	}
}

func TestBRKSkipsPaddingByteAndRTIReturnsPastIt(t *testing.T) {
	// $8000: BRK (opcode 0x00); $8001: padding byte, never executed;
	// $8002: LDA #$42, the real next instruction. The IRQ vector points at
	// an RTI that should land exactly on $8002, not $8001.
	mem := &flatMemory{}
	mem.loadAt(0x8000, 0x00, 0xFF, 0xA9, 0x42)
	mem.mem[0xFFFE] = 0x00
	mem.mem[0xFFFF] = 0x90 // IRQ/BRK vector -> $9000
	mem.loadAt(0x9000, 0x40) // RTI
	mem.setResetVector(0x8000)

	c := NewCPU(mem)
	c.Reset()

	c.StepInstruction() // BRK
	if c.PC != 0x9000 {
		dump(t, c)
		t.Fatalf("PC after BRK = $%04X, want $9000", c.PC)
	}

	c.StepInstruction() // RTI
	if c.PC != 0x8002 {
		dump(t, c)
		t.Fatalf("PC after RTI = $%04X, want $8002 (past BRK's padding byte)", c.PC)
	}

	c.StepInstruction() // LDA #$42
	if c.A != 0x42 {
		dump(t, c)
		t.Fatalf("A = $%02X, want $42", c.A)
	}
}

func TestJSRReturnsWithRTS(t *testing.T) {
	// JSR $8005; BRK (filler); ... ; $8005: RTS
	c, _ := newTestCPU(0x20, 0x05, 0x80, 0x00, 0x00, 0x60)

	c.StepInstruction()
	if c.PC != 0x8005 {
		dump(t, c)
		t.Fatalf("PC after JSR = $%04X, want $8005", c.PC)
	}

	c.StepInstruction()
	if c.PC != 0x8003 {
		dump(t, c)
		t.Fatalf("PC after RTS = $%04X, want $8003 (instruction after JSR)", c.PC)
	}
}

func TestIndirectJMPPageWrapBug(t *testing.T) {
	mem := &flatMemory{}
	// JMP ($80FF), placed away from $8000-$81FF so filling in the pointer's
	// target bytes can't clobber the instruction itself. On real hardware
	// the high byte is fetched from $8000, not $8100, because the pointer
	// fetch wraps within its own page instead of crossing into the next.
	mem.loadAt(0x9000, 0x6C, 0xFF, 0x80)
	mem.mem[0x80FF] = 0x00
	mem.mem[0x8000] = 0x12 // wrongly-wrapped-to byte, should be read as hi
	mem.mem[0x8100] = 0x34 // correct-but-unused-by-hardware hi byte
	mem.setResetVector(0x9000)

	c := NewCPU(mem)
	c.Reset()
	c.StepInstruction()

	if c.PC != 0x1200 {
		dump(t, c)
		t.Fatalf("PC after indirect JMP = $%04X, want $1200 (page-wrap bug)", c.PC)
	}
}

func TestADCOverflow(t *testing.T) {
	// LDA #$7F; CLC; ADC #$01 -> 0x80, signed overflow from positive+positive=negative
	c, _ := newTestCPU(0xA9, 0x7F, 0x18, 0x69, 0x01)
	c.StepInstruction()
	c.StepInstruction()
	c.StepInstruction()

	if c.A != 0x80 {
		dump(t, c)
		t.Fatalf("A = $%02X, want $80", c.A)
	}
	if !c.P.Get(Overflow) {
		dump(t, c)
		t.Error("Overflow not set for $7F + $01")
	}
	if c.P.Get(Carry) {
		dump(t, c)
		t.Error("Carry unexpectedly set for $7F + $01")
	}
}

func TestSBCBorrow(t *testing.T) {
	// SEC; LDA #$00; SBC #$01 -> $FF, borrow occurred so Carry clears
	c, _ := newTestCPU(0x38, 0xA9, 0x00, 0xE9, 0x01)
	c.StepInstruction()
	c.StepInstruction()
	c.StepInstruction()

	if c.A != 0xFF {
		dump(t, c)
		t.Fatalf("A = $%02X, want $FF", c.A)
	}
	if c.P.Get(Carry) {
		dump(t, c)
		t.Error("Carry unexpectedly set after borrow")
	}
}

func TestStackPushPull(t *testing.T) {
	// LDA #$55; PHA; LDA #$00; PLA
	c, _ := newTestCPU(0xA9, 0x55, 0x48, 0xA9, 0x00, 0x68)
	for i := 0; i < 4; i++ {
		c.StepInstruction()
	}
	if c.A != 0x55 {
		dump(t, c)
		t.Fatalf("A = $%02X after PLA, want $55", c.A)
	}
}

func TestAdvanceCyclesCarriesOvershoot(t *testing.T) {
	// NOPs (2 cycles each) driven 3 cycles at a time over three calls should
	// still run in lockstep: total cycles spent across calls must track total
	// requested, with overshoot credited forward rather than dropped.
	c, _ := newTestCPU(0xEA, 0xEA, 0xEA, 0xEA, 0xEA, 0xEA)

	total := uint64(0)
	for i := 0; i < 3; i++ {
		total += c.AdvanceCycles(3)
	}
	if c.Cycles != total {
		dump(t, c)
		t.Fatalf("c.Cycles = %d, sum of AdvanceCycles returns = %d", c.Cycles, total)
	}
	if c.Cycles < 9 {
		dump(t, c)
		t.Fatalf("c.Cycles = %d, want at least 9", c.Cycles)
	}
}

func TestIllegalOpcodeIsOneByteTwoCycleNop(t *testing.T) {
	// $02 is undocumented on NMOS 6502; this core treats every illegal
	// opcode uniformly rather than modeling per-opcode illegal behavior.
	c, _ := newTestCPU(0x02, 0xEA)
	before := c.PC
	cycles := c.StepInstruction()
	if cycles != 2 {
		dump(t, c)
		t.Fatalf("illegal opcode cycles = %d, want 2", cycles)
	}
	if c.PC != before+1 {
		dump(t, c)
		t.Fatalf("PC advanced by %d, want 1", c.PC-before)
	}
}

func TestNMITakesPriorityOverIRQ(t *testing.T) {
	mem := &flatMemory{}
	mem.loadAt(0x8000, 0xEA) // NOP, interrupts are serviced before fetch
	mem.mem[0xFFFA] = 0x00
	mem.mem[0xFFFB] = 0x90 // NMI vector -> $9000
	mem.mem[0xFFFE] = 0x00
	mem.mem[0xFFFF] = 0xA0 // IRQ vector -> $A000
	mem.setResetVector(0x8000)

	c := NewCPU(mem)
	c.Reset()
	c.P.Set(InterruptDisable, false)
	c.SetNMI()
	c.SetIRQLine(true)

	cycles := c.StepInstruction()
	if c.PC != 0x9000 {
		dump(t, c)
		t.Fatalf("PC = $%04X, want $9000 (NMI vector)", c.PC)
	}
	if cycles != 7 {
		dump(t, c)
		t.Fatalf("cycles = %d, want 7 (servicing the interrupt must not also fetch/execute its handler)", cycles)
	}

	// The handler's own first instruction (whatever byte sits at $9000; in
	// this zeroed harness, $00) has not run yet; the vector landed on it but
	// a separate step is required.
	before := c.PC
	c.StepInstruction()
	if before != 0x9000 {
		dump(t, c)
		t.Fatalf("PC moved before the handler's first instruction ran")
	}
}

func TestIRQIgnoredWhenDisabled(t *testing.T) {
	mem := &flatMemory{}
	mem.loadAt(0x8000, 0xEA)
	mem.mem[0xFFFE] = 0x00
	mem.mem[0xFFFF] = 0xA0
	mem.setResetVector(0x8000)

	c := NewCPU(mem)
	c.Reset() // leaves InterruptDisable set
	c.SetIRQLine(true)

	c.StepInstruction()
	if c.PC == 0xA000 {
		dump(t, c)
		t.Fatal("IRQ serviced despite InterruptDisable being set")
	}
}
