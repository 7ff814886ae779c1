// Command nescycle drives a headless CPU core for N cycles against a program
// loaded from stdin, printing every byte written to $FFFF. It runs whole
// instructions only, so the last one may carry the count past N.
package main

import (
	"bufio"
	"flag"
	"fmt"
	"io"
	"os"
	"runtime/pprof"
	"strconv"

	"github.com/corvid6502/nescpu/cartridge"
	"github.com/corvid6502/nescpu/console"
)

const prgSize = 16 * 1024

// stdoutCart is a 16KiB flat PRG ROM mirrored across $8000-$FFFF, with a
// RESET vector forced to $8000 and every write to $FFFF forwarded to an
// observer instead of being silently dropped.
type stdoutCart struct {
	prg    [prgSize]byte
	onWrite func(byte)
}

func (c *stdoutCart) PRGRead(addr uint16) byte {
	if addr < 0x8000 {
		return 0
	}
	return c.prg[(addr-0x8000)%prgSize]
}

func (c *stdoutCart) PRGWrite(addr uint16, v byte) {
	if addr == 0xFFFF && c.onWrite != nil {
		c.onWrite(v)
	}
}

var _ cartridge.Cartridge = (*stdoutCart)(nil)

func run(n uint64, cpuprofile string) error {
	if cpuprofile != "" {
		f, err := os.Create(cpuprofile)
		if err != nil {
			return fmt.Errorf("nescycle: unable to create cpu profile: %w", err)
		}
		defer f.Close()
		if err := pprof.StartCPUProfile(f); err != nil {
			return fmt.Errorf("nescycle: unable to start cpu profile: %w", err)
		}
		defer pprof.StopCPUProfile()
	}

	cart := &stdoutCart{}
	out := bufio.NewWriter(os.Stdout)
	defer out.Flush()
	cart.onWrite = func(v byte) {
		fmt.Fprintf(out, "%02X\n", v)
	}

	prg := make([]byte, prgSize)
	read, err := io.ReadFull(os.Stdin, prg)
	if err != nil && err != io.ErrUnexpectedEOF && err != io.EOF {
		return fmt.Errorf("nescycle: reading program from stdin: %w", err)
	}
	copy(cart.prg[:], prg[:read])

	// Force the RESET vector ($FFFC/$FFFD) to point at the start of PRG
	// ROM regardless of what the supplied bytes contain there.
	cart.prg[(0xFFFC-0x8000)%prgSize] = 0x00
	cart.prg[(0xFFFD-0x8000)%prgSize] = 0x80

	con := console.New(cart, nil)
	con.Reset()
	con.AdvanceCycles(n)

	return nil
}

func main() {
	cpuprofile := flag.String("cpuprofile", "", "write cpu profile to file")
	flag.Parse()

	if flag.NArg() != 1 {
		fmt.Fprintln(os.Stderr, "usage: nescycle <cycles>")
		os.Exit(1)
	}

	n, err := strconv.ParseUint(flag.Arg(0), 10, 64)
	if err != nil {
		fmt.Fprintf(os.Stderr, "nescycle: bad cycle count %q: %s\n", flag.Arg(0), err)
		os.Exit(1)
	}

	if err := run(n, *cpuprofile); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
