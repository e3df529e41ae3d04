package main

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/objpath/objpath/errors"
	"github.com/objpath/objpath/factory"
)

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#FAFAFA")).
			Background(lipgloss.Color("#7D56F4")).
			Padding(0, 1)

	foundStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#98FB98"))

	missStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#666666"))

	resultStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#90EE90"))

	errorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FF6B6B"))

	helpStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#666666"))
)

type doctorModel struct {
	home     string
	dir      string
	inputs   []textinput.Model
	focusIdx int
	state    modelState

	probes   []factory.ProbeResult
	resolved string
	loadInfo string
	loadErr  error
}

type modelState int

const (
	stateEditKey modelState = iota
	stateShowReport
)

type reportMsg struct {
	probes   []factory.ProbeResult
	resolved string
	loadInfo string
	loadErr  error
}

func newDoctorModel(home, dir string) *doctorModel {
	key := textinput.New()
	key.Prompt = "key: "
	key.SetValue(factory.FactoryNameProperty)
	key.Width = 48
	key.Focus()

	fallback := textinput.New()
	fallback.Prompt = "fallback: "
	fallback.SetValue(factory.DefaultFactoryName)
	fallback.Width = 48

	return &doctorModel{
		home:   home,
		dir:    dir,
		inputs: []textinput.Model{key, fallback},
		state:  stateEditKey,
	}
}

func (m *doctorModel) Init() tea.Cmd {
	return textinput.Blink
}

func (m *doctorModel) resolve() tea.Msg {
	key := strings.TrimSpace(m.inputs[0].Value())
	fallback := strings.TrimSpace(m.inputs[1].Value())

	r := newResolver(m.home, m.dir, false)
	msg := reportMsg{
		probes:   r.Probe(key, fallback),
		resolved: r.Resolve(key, fallback),
	}

	f, err := factory.Load(msg.resolved)
	if err != nil {
		msg.loadErr = err
	} else {
		msg.loadInfo = fmt.Sprintf("%T", f)
	}
	return msg
}

func (m *doctorModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "q":
			if m.state == stateShowReport || msg.String() == "ctrl+c" {
				return m, tea.Quit
			}

		case "enter":
			return m, m.resolve

		case "tab":
			if m.state == stateEditKey {
				m.inputs[m.focusIdx].Blur()
				m.focusIdx = (m.focusIdx + 1) % len(m.inputs)
				m.inputs[m.focusIdx].Focus()
			}

		case "esc":
			if m.state == stateShowReport {
				m.state = stateEditKey
				m.probes = nil
			}
		}

	case reportMsg:
		m.probes = msg.probes
		m.resolved = msg.resolved
		m.loadInfo = msg.loadInfo
		m.loadErr = msg.loadErr
		m.state = stateShowReport
	}

	if m.state == stateEditKey {
		var cmds []tea.Cmd
		for i := range m.inputs {
			var cmd tea.Cmd
			m.inputs[i], cmd = m.inputs[i].Update(msg)
			cmds = append(cmds, cmd)
		}
		return m, tea.Batch(cmds...)
	}

	return m, nil
}

func (m *doctorModel) View() string {
	var b strings.Builder

	b.WriteString(titleStyle.Render("objpath-doctor"))
	b.WriteString("\n\n")

	switch m.state {
	case stateEditKey:
		for _, input := range m.inputs {
			b.WriteString(input.View())
			b.WriteByte('\n')
		}
		b.WriteString("\n")
		b.WriteString(helpStyle.Render("enter: resolve · tab: switch field · ctrl+c: quit"))

	case stateShowReport:
		for _, pr := range m.probes {
			b.WriteString(renderProbe(pr, true))
			b.WriteByte('\n')
		}
		b.WriteString("\n")
		b.WriteString("Resolved: ")
		b.WriteString(resultStyle.Render(m.resolved))
		b.WriteByte('\n')

		switch {
		case errors.IsConfiguration(m.loadErr):
			b.WriteString(errorStyle.Render(fmt.Sprintf("Load: %v", m.loadErr)))
			b.WriteByte('\n')
		case m.loadErr != nil:
			b.WriteString(errorStyle.Render(fmt.Sprintf("Error: %v", m.loadErr)))
			b.WriteByte('\n')
		default:
			b.WriteString(fmt.Sprintf("Load: ok (%s)\n", m.loadInfo))
		}

		b.WriteString("\n")
		b.WriteString(helpStyle.Render("enter: re-resolve · esc: edit key · q: quit"))
	}

	b.WriteByte('\n')
	return b.String()
}

func runInteractive(home, dir string) error {
	p := tea.NewProgram(newDoctorModel(home, dir))
	_, err := p.Run()
	return err
}
