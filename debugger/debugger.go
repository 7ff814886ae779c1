// Package debugger implements a small command shell over a running CPU's
// inspection surface: breakpoints, single-stepping, and register/memory
// read and write. It never reaches into unexported CPU state.
package debugger

import (
	"fmt"
	"sort"
	"strconv"
	"strings"

	"github.com/corvid6502/nescpu/cpu"
)

// Memory is the address space a Debugger can peek and poke, independent of
// whatever owns it (console.Console satisfies this).
type Memory interface {
	Read(addr uint16) byte
	Write(addr uint16, v byte)
}

// Debugger wraps a CPU and a Memory with a breakpoint list and a command
// interpreter.
type Debugger struct {
	CPU *cpu.CPU
	Mem Memory

	breakpoints map[uint16]bool
}

func New(c *cpu.CPU, mem Memory) *Debugger {
	return &Debugger{CPU: c, Mem: mem, breakpoints: map[uint16]bool{}}
}

// Execute runs one command line and returns its textual output. quit
// reports whether the line was "exit".
func (d *Debugger) Execute(line string) (output string, quit bool, err error) {
	fields := strings.Fields(line)
	if len(fields) == 0 {
		return "", false, nil
	}

	cmd, args := fields[0], fields[1:]
	switch cmd {
	case "help":
		return helpText, false, nil

	case "step":
		cycles := d.CPU.StepInstruction()
		return fmt.Sprintf("stepped %d cycles, PC=$%04X", cycles, d.CPU.PC), false, nil

	case "continue":
		return d.cont(), false, nil

	case "break":
		addr, err := parseAddr(args)
		if err != nil {
			return "", false, err
		}
		d.breakpoints[addr] = true
		return fmt.Sprintf("breakpoint set at $%04X", addr), false, nil

	case "delete":
		addr, err := parseAddr(args)
		if err != nil {
			return "", false, err
		}
		delete(d.breakpoints, addr)
		return fmt.Sprintf("breakpoint cleared at $%04X", addr), false, nil

	case "list":
		return d.list(), false, nil

	case "clear":
		d.breakpoints = map[uint16]bool{}
		return "all breakpoints cleared", false, nil

	case "registers":
		return d.registers(), false, nil

	case "set":
		return d.set(args)

	case "read":
		return d.read(args)

	case "write":
		return d.write(args)

	case "exit":
		return "", true, nil

	default:
		return "", false, fmt.Errorf("unknown command %q, try help", cmd)
	}
}

// cont single-steps until a breakpoint's address is reached as PC, or until
// a generous instruction cap is hit (a safety bound, not a spec'd limit).
func (d *Debugger) cont() string {
	const maxInstructions = 1_000_000
	for i := 0; i < maxInstructions; i++ {
		d.CPU.StepInstruction()
		if d.breakpoints[d.CPU.PC] {
			return fmt.Sprintf("hit breakpoint at $%04X", d.CPU.PC)
		}
	}
	return "stopped: instruction limit reached without hitting a breakpoint"
}

func (d *Debugger) list() string {
	if len(d.breakpoints) == 0 {
		return "no breakpoints set"
	}
	addrs := make([]uint16, 0, len(d.breakpoints))
	for a := range d.breakpoints {
		addrs = append(addrs, a)
	}
	sort.Slice(addrs, func(i, j int) bool { return addrs[i] < addrs[j] })

	var b strings.Builder
	for _, a := range addrs {
		fmt.Fprintf(&b, "$%04X\n", a)
	}
	return strings.TrimRight(b.String(), "\n")
}

func (d *Debugger) registers() string {
	return fmt.Sprintf("PC:$%04X SP:$%02X A:$%02X X:$%02X Y:$%02X P:$%02X",
		d.CPU.PC, d.CPU.SP, d.CPU.A, d.CPU.X, d.CPU.Y, byte(d.CPU.P))
}

func (d *Debugger) set(args []string) (string, bool, error) {
	if len(args) != 2 {
		return "", false, fmt.Errorf("usage: set <register> <value>")
	}
	v, err := strconv.ParseUint(strings.TrimPrefix(args[1], "$"), 16, 16)
	if err != nil {
		return "", false, fmt.Errorf("bad value %q: %w", args[1], err)
	}

	switch strings.ToUpper(args[0]) {
	case "PC":
		d.CPU.PC = uint16(v)
	case "SP":
		d.CPU.SP = byte(v)
	case "A":
		d.CPU.A = byte(v)
	case "X":
		d.CPU.X = byte(v)
	case "Y":
		d.CPU.Y = byte(v)
	case "P":
		d.CPU.P = cpu.Status(v)
	default:
		return "", false, fmt.Errorf("unknown register %q", args[0])
	}
	return d.registers(), false, nil
}

func (d *Debugger) read(args []string) (string, bool, error) {
	if len(args) < 1 {
		return "", false, fmt.Errorf("usage: read <addr> [n]")
	}
	addr, err := parseAddr(args[:1])
	if err != nil {
		return "", false, err
	}

	n := 1
	if len(args) > 1 {
		n, err = strconv.Atoi(args[1])
		if err != nil {
			return "", false, fmt.Errorf("bad byte count %q: %w", args[1], err)
		}
	}

	var b strings.Builder
	for i := 0; i < n; i++ {
		if i > 0 && i%16 == 0 {
			b.WriteByte('\n')
		}
		fmt.Fprintf(&b, "%02X ", d.Mem.Read(addr+uint16(i)))
	}
	return strings.TrimRight(b.String(), " "), false, nil
}

func (d *Debugger) write(args []string) (string, bool, error) {
	if len(args) < 2 {
		return "", false, fmt.Errorf("usage: write <addr> <data...>")
	}
	addr, err := parseAddr(args[:1])
	if err != nil {
		return "", false, err
	}

	for i, tok := range args[1:] {
		v, err := strconv.ParseUint(strings.TrimPrefix(tok, "$"), 16, 8)
		if err != nil {
			return "", false, fmt.Errorf("bad byte %q: %w", tok, err)
		}
		d.Mem.Write(addr+uint16(i), byte(v))
	}
	return fmt.Sprintf("wrote %d byte(s) at $%04X", len(args)-1, addr), false, nil
}

func parseAddr(args []string) (uint16, error) {
	if len(args) != 1 {
		return 0, fmt.Errorf("expected a single address")
	}
	v, err := strconv.ParseUint(strings.TrimPrefix(args[0], "$"), 16, 16)
	if err != nil {
		return 0, fmt.Errorf("bad address %q: %w", args[0], err)
	}
	return uint16(v), nil
}

const helpText = `commands:
  help                    show this text
  step                    execute one instruction
  continue                run until a breakpoint is hit
  break <addr>            set a breakpoint
  delete <addr>           clear a breakpoint
  list                    list breakpoints
  clear                   clear all breakpoints
  registers               print PC/SP/A/X/Y/P
  set <reg> <value>       set a register (PC, SP, A, X, Y, P)
  read <addr> [n]         dump n bytes (default 1) starting at addr
  write <addr> <data...>  write one or more hex bytes starting at addr
  exit                    leave the debugger`
