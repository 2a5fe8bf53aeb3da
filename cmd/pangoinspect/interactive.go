package main

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/wippyai/pangobind/pango"
)

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#FAFAFA")).
			Background(lipgloss.Color("#7D56F4")).
			Padding(0, 1)

	actionStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#98FB98"))

	selectedStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FAFAFA")).
			Background(lipgloss.Color("#7D56F4"))

	errorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FF6B6B"))

	helpStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#666666"))
)

// action is one inspection offered by the menu. An empty prompt runs
// without input.
type action struct {
	name        string
	prompt      string
	placeholder string
	run         func(b *pango.Binding, input string) (string, error)
}

func actions() []action {
	st := colorStyles()
	return []action{
		{
			name: "families",
			run: func(b *pango.Binding, _ string) (string, error) {
				var out strings.Builder
				err := listFamilies(&out, st, b)
				return out.String(), err
			},
		},
		{
			name:        "describe",
			prompt:      "font: ",
			placeholder: "Sans Bold Italic 12",
			run: func(b *pango.Binding, in string) (string, error) {
				var out strings.Builder
				err := describeFont(&out, st, b, in)
				return out.String(), err
			},
		},
		{
			name:        "coverage",
			prompt:      "characters: ",
			placeholder: "Hello, 世界",
			run: func(b *pango.Binding, in string) (string, error) {
				var out strings.Builder
				err := showCoverage(&out, st, b, options{chars: in, level: "exact"})
				return out.String(), err
			},
		},
	}
}

type modelState int

const (
	stateSelect modelState = iota
	stateInput
	stateShowResult
)

type interactiveModel struct {
	err      error
	binding  *pango.Binding
	source   string
	result   string
	actions  []action
	input    textinput.Model
	selected int
	state    modelState
}

type resultMsg struct {
	err    error
	result string
}

func newInteractiveModel(b *pango.Binding, source string) *interactiveModel {
	if source == "" {
		source = "builtin"
	}
	return &interactiveModel{
		binding: b,
		source:  source,
		actions: actions(),
		state:   stateSelect,
	}
}

func (m *interactiveModel) Init() tea.Cmd { return nil }

func (m *interactiveModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c":
			return m, tea.Quit

		case "q":
			if m.state != stateInput {
				return m, tea.Quit
			}

		case "up", "k":
			if m.state == stateSelect && m.selected > 0 {
				m.selected--
			}

		case "down", "j":
			if m.state == stateSelect && m.selected < len(m.actions)-1 {
				m.selected++
			}

		case "enter":
			switch m.state {
			case stateSelect:
				a := m.actions[m.selected]
				if a.prompt == "" {
					return m, m.runAction("")
				}
				m.input = textinput.New()
				m.input.Prompt = a.prompt
				m.input.Placeholder = a.placeholder
				m.input.Width = 40
				m.input.Focus()
				m.state = stateInput
				return m, textinput.Blink

			case stateInput:
				return m, m.runAction(m.input.Value())

			case stateShowResult:
				m.reset()
			}
			return m, nil

		case "esc":
			if m.state != stateSelect {
				m.reset()
			}
			return m, nil
		}

	case resultMsg:
		m.result = msg.result
		m.err = msg.err
		m.state = stateShowResult
		return m, nil
	}

	if m.state == stateInput {
		var cmd tea.Cmd
		m.input, cmd = m.input.Update(msg)
		return m, cmd
	}
	return m, nil
}

func (m *interactiveModel) reset() {
	m.state = stateSelect
	m.result = ""
	m.err = nil
}

// runAction calls the binding on the Update goroutine. Commands run
// concurrently and must not touch it.
func (m *interactiveModel) runAction(input string) tea.Cmd {
	res, err := m.actions[m.selected].run(m.binding, input)
	return func() tea.Msg { return resultMsg{result: res, err: err} }
}

func (m *interactiveModel) View() string {
	var b strings.Builder

	b.WriteString(titleStyle.Render("Pango Inspector"))
	b.WriteString(" ")
	b.WriteString(m.source)
	b.WriteString("\n\n")

	switch m.state {
	case stateSelect:
		b.WriteString("Select an inspection:\n\n")
		for i, a := range m.actions {
			if i == m.selected {
				b.WriteString(selectedStyle.Render("> " + a.name))
			} else {
				b.WriteString("  " + actionStyle.Render(a.name))
			}
			b.WriteString("\n")
		}
		b.WriteString("\n")
		b.WriteString(helpStyle.Render("↑/↓ select • enter run • q quit"))

	case stateInput:
		fmt.Fprintf(&b, "%s\n\n", actionStyle.Render(m.actions[m.selected].name))
		b.WriteString(m.input.View())
		b.WriteString("\n\n")
		b.WriteString(helpStyle.Render("enter run • esc back"))

	case stateShowResult:
		fmt.Fprintf(&b, "Result of %s:\n\n", actionStyle.Render(m.actions[m.selected].name))
		if m.err != nil {
			b.WriteString(errorStyle.Render(fmt.Sprintf("Error: %v", m.err)))
		} else {
			b.WriteString(m.result)
		}
		b.WriteString("\n\n")
		b.WriteString(helpStyle.Render("enter continue • q quit"))
	}

	return b.String()
}

func runInteractive(b *pango.Binding, source string) error {
	p := tea.NewProgram(newInteractiveModel(b, source), tea.WithAltScreen())
	_, err := p.Run()
	return err
}
