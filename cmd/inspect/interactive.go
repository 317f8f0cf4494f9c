package main

import (
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#FAFAFA")).
			Background(lipgloss.Color("#7D56F4")).
			Padding(0, 1)

	resultStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#90EE90"))

	trapStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FF6B6B"))

	dumpStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#87CEEB"))

	helpStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#666666"))
)

const historyLines = 12

type inspectModel struct {
	session *session
	input   textinput.Model
	history []string
}

func newInspectModel(s *session) *inspectModel {
	ti := textinput.New()
	ti.Placeholder = "set 32 0 0xdeadbeef"
	ti.Focus()
	ti.CharLimit = 128
	ti.Width = 64
	return &inspectModel{session: s, input: ti}
}

func (m *inspectModel) Init() tea.Cmd {
	return textinput.Blink
}

func (m *inspectModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "esc":
			return m, tea.Quit

		case "enter":
			line := strings.TrimSpace(m.input.Value())
			m.input.SetValue("")
			if line == "" {
				return m, nil
			}
			if line == "quit" || line == "q" {
				return m, tea.Quit
			}
			m.push("> " + line)
			out := m.session.eval(line)
			for _, l := range strings.Split(out, "\n") {
				m.push(styleOutput(l))
			}
			return m, nil
		}
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m *inspectModel) push(line string) {
	m.history = append(m.history, line)
	if len(m.history) > historyLines {
		m.history = m.history[len(m.history)-historyLines:]
	}
}

func styleOutput(line string) string {
	switch {
	case strings.HasPrefix(line, "trap:"):
		return trapStyle.Render(line)
	case strings.HasPrefix(line, "0"):
		return dumpStyle.Render(line)
	default:
		return resultStyle.Render(line)
	}
}

func (m *inspectModel) View() string {
	var b strings.Builder
	b.WriteString(titleStyle.Render("wabt-gepix inspector"))
	b.WriteString("\n\n")
	for _, line := range m.history {
		b.WriteString(line)
		b.WriteByte('\n')
	}
	b.WriteString("\n")
	b.WriteString(m.input.View())
	b.WriteString("\n")
	b.WriteString(helpStyle.Render("enter to run, help for commands, esc to quit"))
	b.WriteString("\n")
	return b.String()
}

func runInteractive(s *session) error {
	p := tea.NewProgram(newInspectModel(s))
	_, err := p.Run()
	return err
}
