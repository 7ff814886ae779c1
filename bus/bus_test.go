package bus

import "testing"

type fakePPU struct {
	regs      [8]byte
	dmaPage   byte
	dmaCalled bool
	oam       [256]byte
}

func (p *fakePPU) ReadRegister(n uint8) byte  { return p.regs[n] }
func (p *fakePPU) WriteRegister(n uint8, v byte) { p.regs[n] = v }
func (p *fakePPU) DMA(page byte, read func(addr uint16) byte) {
	p.dmaCalled = true
	p.dmaPage = page
	base := uint16(page) << 8
	for i := 0; i < 256; i++ {
		p.oam[i] = read(base + uint16(i))
	}
}

type fakeAPU struct {
	regs map[uint16]byte
}

func newFakeAPU() *fakeAPU { return &fakeAPU{regs: map[uint16]byte{}} }

func (a *fakeAPU) ReadRegister(addr uint16) byte  { return a.regs[addr] }
func (a *fakeAPU) WriteRegister(addr uint16, v byte) { a.regs[addr] = v }

type fakeController struct {
	readValue byte
	written   []byte
}

func (c *fakeController) Read() byte     { return c.readValue }
func (c *fakeController) Write(v byte) { c.written = append(c.written, v) }

type fakeCartridge struct {
	mem [0xC000]byte // covers $4020-$FFFF
}

func (c *fakeCartridge) PRGRead(addr uint16) byte     { return c.mem[addr-0x4020] }
func (c *fakeCartridge) PRGWrite(addr uint16, v byte) { c.mem[addr-0x4020] = v }

func newTestBus() (*Bus, *fakePPU, *fakeAPU, *fakeController, *fakeController, *fakeCartridge) {
	ram := NewRAM()
	ppu := &fakePPU{}
	apu := newFakeAPU()
	c1 := &fakeController{}
	c2 := &fakeController{}
	cart := &fakeCartridge{}
	return New(ram, ppu, apu, c1, c2, cart), ppu, apu, c1, c2, cart
}

func TestRAMMirroring(t *testing.T) {
	b, _, _, _, _, _ := newTestBus()
	b.Write(0x0000, 0x42)
	for _, mirror := range []uint16{0x0000, 0x0800, 0x1000, 0x1800} {
		if got := b.Read(mirror); got != 0x42 {
			t.Errorf("Read($%04X) = $%02X, want $42 (RAM mirror)", mirror, got)
		}
	}
}

func TestPPURegisterWindowMirrorsEvery8Bytes(t *testing.T) {
	b, ppu, _, _, _, _ := newTestBus()
	b.Write(0x2000, 0x11)
	if ppu.regs[0] != 0x11 {
		t.Fatalf("PPU reg 0 = $%02X, want $11", ppu.regs[0])
	}
	b.Write(0x2008, 0x22) // mirrors register 0 again
	if ppu.regs[0] != 0x22 {
		t.Fatalf("PPU reg 0 = $%02X after $2008 write, want $22 (mirrored)", ppu.regs[0])
	}
	if b.Read(0x3FF8) != ppu.regs[0] {
		t.Fatalf("Read($3FF8) did not mirror register 0 at the top of the window")
	}
}

func TestControllerDispatch(t *testing.T) {
	b, _, _, c1, c2, _ := newTestBus()
	c1.readValue = 0x01
	c2.readValue = 0x00

	if got := b.Read(0x4016); got != 0x01 {
		t.Errorf("Read($4016) = $%02X, want $01", got)
	}
	if got := b.Read(0x4017); got != 0x00 {
		t.Errorf("Read($4017) = $%02X, want $00", got)
	}

	b.Write(0x4016, 0x01)
	if len(c1.written) != 1 || c1.written[0] != 0x01 {
		t.Errorf("controller 1 did not receive strobe write: %v", c1.written)
	}
}

func TestTestModeRangeReturnsOpenBus(t *testing.T) {
	b, _, _, _, _, _ := newTestBus()
	if got := b.Read(0x4018); got != openBus {
		t.Errorf("Read($4018) = $%02X, want open-bus $%02X", got, byte(openBus))
	}
	if got := b.Read(0x401F); got != openBus {
		t.Errorf("Read($401F) = $%02X, want open-bus $%02X", got, byte(openBus))
	}
}

func TestCartridgePassthrough(t *testing.T) {
	b, _, _, _, _, _ := newTestBus()
	b.Write(0x8000, 0x99)
	if got := b.Read(0x8000); got != 0x99 {
		t.Errorf("Read($8000) = $%02X, want $99", got)
	}
}

func TestOAMDMACopiesPageAndStalls(t *testing.T) {
	b, ppu, _, _, _, _ := newTestBus()
	b.RAM.Write(0x0000, 0xAB)

	b.Write(0x4014, 0x00) // page 0, triggers DMA from $0000
	if !ppu.dmaCalled {
		t.Fatal("OAM DMA was not triggered")
	}
	if ppu.oam[0] != 0xAB {
		t.Errorf("OAM[0] = $%02X after DMA, want $AB", ppu.oam[0])
	}

	stall := b.TakeDMAStall()
	if stall != 513 && stall != 514 {
		t.Fatalf("DMA stall = %d, want 513 or 514", stall)
	}
	if b.TakeDMAStall() != 0 {
		t.Error("TakeDMAStall did not drain the accrued stall")
	}
}
