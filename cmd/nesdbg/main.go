// Command nesdbg is an interactive terminal front end for the debugger
// package: a scrolling command log over a text box, backed by the same
// break/step/continue/registers/read/write grammar the package exposes.
package main

import (
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/davecgh/go-spew/spew"

	"github.com/corvid6502/nescpu/console"
	"github.com/corvid6502/nescpu/debugger"
	"github.com/corvid6502/nescpu/mapper"
)

var (
	promptStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("6"))
	errorStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("1"))
	regsStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
)

type model struct {
	dbg     *debugger.Debugger
	console *console.Console
	input   string
	history []string
	quit    bool
	fatal   error
}

func (m model) Init() tea.Cmd {
	return nil
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.Type {
		case tea.KeyCtrlC, tea.KeyEsc:
			return m, tea.Quit

		case tea.KeyEnter:
			line := m.input
			m.input = ""
			out, quit, err := m.dbg.Execute(line)
			if err != nil {
				m.history = append(m.history, promptStyle.Render("> "+line), errorStyle.Render(err.Error()))
			} else {
				m.history = append(m.history, promptStyle.Render("> "+line), out)
			}
			if quit {
				m.quit = true
				return m, tea.Quit
			}

		case tea.KeyBackspace:
			if len(m.input) > 0 {
				m.input = m.input[:len(m.input)-1]
			}

		default:
			m.input += msg.String()
		}
	}
	return m, nil
}

func (m model) View() string {
	var b string
	for _, line := range m.history {
		b += line + "\n"
	}
	b += regsStyle.Render(fmt.Sprintf("PC:$%04X A:$%02X X:$%02X Y:$%02X SP:$%02X P:$%02X",
		m.dbg.CPU.PC, m.dbg.CPU.A, m.dbg.CPU.X, m.dbg.CPU.Y, m.dbg.CPU.SP, byte(m.dbg.CPU.P)))
	b += "\n" + promptStyle.Render("> "+m.input)
	return b
}

func main() {
	if len(os.Args) != 2 {
		fmt.Fprintln(os.Stderr, "usage: nesdbg <rom.nes>")
		os.Exit(1)
	}

	f, err := os.Open(os.Args[1])
	if err != nil {
		fmt.Fprintln(os.Stderr, "nesdbg:", err)
		os.Exit(1)
	}
	defer f.Close()

	cart, err := mapper.Load(f)
	if err != nil {
		fmt.Fprintln(os.Stderr, "nesdbg:", err)
		os.Exit(1)
	}

	con := console.New(cart, nil)
	con.Reset()
	dbg := debugger.New(con.CPU, con)

	p := tea.NewProgram(model{dbg: dbg, console: con})
	finalModel, err := p.Run()
	if err != nil {
		fmt.Fprintln(os.Stderr, "nesdbg:", err)
		os.Exit(1)
	}

	if m, ok := finalModel.(model); ok && m.fatal != nil {
		fmt.Fprintln(os.Stderr, spew.Sdump(m.console.CPU))
		os.Exit(1)
	}
}
