package vm

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/davecgh/go-spew/spew"

	"picvm/flash"
	"picvm/inst"
)

// model is the bubbletea model backing Debug, adapted from cpu.Debug's
// model: same space/j-steps-one-instruction, q-quits shape, but showing PC,
// W, STATUS flags, the bank, the call-stack depth, and a window of program
// memory around PC instead of 6502 registers.
type model struct {
	vm     *VM
	prevPC uint16
	fault  error
}

// Init performs no setup; the VM is already constructed by the time Debug
// is called.
func (m model) Init() tea.Cmd { return nil }

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q":
			return m, tea.Quit
		case " ", "j":
			m.prevPC = m.vm.pc
			if err := m.vm.Step(NopTicker{}); err != nil {
				m.fault = err
				return m, nil
			}
		}
	}
	return m, nil
}

func (m model) renderFlash(start uint16) string {
	s := fmt.Sprintf("%04x | ", start)
	for i := uint16(0); i < 16 && int(start)+int(i) < flash.Size; i++ {
		addr := start + i
		b := m.vm.flash.Byte(addr)
		if addr == m.vm.pc {
			s += fmt.Sprintf("[%02x] ", b)
		} else {
			s += fmt.Sprintf(" %02x  ", b)
		}
	}
	return s
}

func (m model) flashWindow() string {
	header := "addr | "
	for b := range 16 {
		header += fmt.Sprintf("  %01x  ", b)
	}
	rows := []string{header}
	base := m.vm.pc - (m.vm.pc % 16)
	for i := 0; i < 4; i++ {
		start := int(base) + i*16
		if start < 0 || start >= flash.Size {
			continue
		}
		rows = append(rows, m.renderFlash(uint16(start)))
	}
	return strings.Join(rows, "\n")
}

func (m model) status() string {
	st := m.vm.reg.Status()
	var flags string
	for _, flag := range []bool{st.IRP(), st.TO(), st.PD(), st.Z(), st.DC(), st.C()} {
		if flag {
			flags += "/ "
		} else {
			flags += "  "
		}
	}
	return fmt.Sprintf(`
PC: 0x%04x (0x%04x)
 W: 0x%02x
BANK: %d
CALLS: %d
IRP TO PD Z DC C
`,
		m.vm.pc,
		m.prevPC,
		m.vm.w,
		st.Bank(),
		len(m.vm.stack.frames),
	) + flags
}

func (m model) View() string {
	body := lipgloss.JoinVertical(
		lipgloss.Left,
		lipgloss.JoinHorizontal(
			lipgloss.Top,
			m.flashWindow(),
			m.status(),
		),
		"",
	)

	if m.vm.pc < pcLimit-1 {
		word := m.vm.flash.Word(m.vm.pc)
		if in, ok := inst.Decode(word); ok {
			body = lipgloss.JoinVertical(lipgloss.Left, body, in.String())
		} else {
			body = lipgloss.JoinVertical(lipgloss.Left, body, spew.Sdump(word))
		}
	}

	if m.fault != nil {
		body = lipgloss.JoinVertical(lipgloss.Left, body, m.fault.Error())
	}

	return body
}

// Debug starts an interactive TUI over v, stepping one instruction per
// space/j keypress until q quits. A fault is shown under the view and the
// VM does not advance past it; Debug returns the last fault on exit.
func (v *VM) Debug() error {
	final, err := tea.NewProgram(model{vm: v}).Run()
	if err != nil {
		return err
	}
	m := final.(model)
	return m.fault
}
