// Package ui holds the interactive Bubble Tea front end for medgen.
package ui

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"

	"medgen/internal/campaign"
)

// ErrPromptCanceled is returned when the user aborts the count prompt.
var ErrPromptCanceled = errors.New("prompt canceled")

var (
	promptTitleStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("6"))
	promptLabelStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("7"))
	promptErrStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("1"))
	promptHintStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
)

type countPrompt struct {
	inputs   [2]textinput.Model
	labels   [2]string
	defaults [2]uint8
	counts   [2]uint8
	focus    int
	errLine  string
	width    int
	done     bool
	canceled bool
}

func newCountPrompt(defHandlers, defProperties uint8) *countPrompt {
	m := &countPrompt{
		labels:   [2]string{"handler contracts", "property contracts"},
		defaults: [2]uint8{defHandlers, defProperties},
		width:    80,
	}
	for i := range m.inputs {
		ti := textinput.New()
		ti.Placeholder = strconv.Itoa(int(m.defaults[i]))
		ti.CharLimit = 2
		ti.Width = 4
		ti.Prompt = "> "
		m.inputs[i] = ti
	}
	m.inputs[0].Focus()
	return m
}

func (m *countPrompt) Init() tea.Cmd {
	return textinput.Blink
}

func (m *countPrompt) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		if msg.Width > 0 {
			m.width = msg.Width
		}
		return m, nil
	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "esc":
			m.canceled = true
			return m, tea.Quit
		case "tab", "shift+tab", "up", "down":
			// Two fields, so cycling works the same in both directions.
			m.focus = (m.focus + 1) % len(m.inputs)
			m.refocus()
			return m, nil
		case "enter":
			if m.focus < len(m.inputs)-1 {
				m.focus++
				m.refocus()
				return m, nil
			}
			counts, err := m.parse()
			if err != nil {
				m.errLine = err.Error()
				return m, nil
			}
			m.counts = counts
			m.done = true
			return m, tea.Quit
		}
	}
	var cmd tea.Cmd
	m.inputs[m.focus], cmd = m.inputs[m.focus].Update(msg)
	return m, cmd
}

func (m *countPrompt) View() string {
	if m.done || m.canceled {
		return ""
	}
	var b strings.Builder
	b.WriteString(promptTitleStyle.Render("medgen: campaign size"))
	b.WriteString("\n\n")
	for i := range m.inputs {
		b.WriteString(fmt.Sprintf("  %s\n  %s\n", promptLabelStyle.Render(m.labels[i]), m.inputs[i].View()))
	}
	b.WriteString("\n")
	if m.errLine != "" {
		b.WriteString("  ")
		b.WriteString(promptErrStyle.Render(truncate(m.errLine, m.width-4)))
		b.WriteString("\n")
	}
	b.WriteString(promptHintStyle.Render(fmt.Sprintf("  enter to confirm, esc to cancel (1-%d per family)", campaign.MaxLeaves)))
	b.WriteString("\n")
	return b.String()
}

func (m *countPrompt) refocus() {
	for i := range m.inputs {
		if i == m.focus {
			m.inputs[i].Focus()
		} else {
			m.inputs[i].Blur()
		}
	}
}

func (m *countPrompt) parse() ([2]uint8, error) {
	var counts [2]uint8
	for i := range m.inputs {
		raw := strings.TrimSpace(m.inputs[i].Value())
		if raw == "" {
			counts[i] = m.defaults[i]
			continue
		}
		n, err := strconv.ParseUint(raw, 10, 8)
		if err != nil {
			return counts, fmt.Errorf("%s: %q is not a number", m.labels[i], raw)
		}
		if n < 1 || n > campaign.MaxLeaves {
			return counts, fmt.Errorf("%s: must be between 1 and %d", m.labels[i], campaign.MaxLeaves)
		}
		counts[i] = uint8(n)
	}
	return counts, nil
}

func truncate(value string, width int) string {
	if width <= 0 {
		return value
	}
	if runewidth.StringWidth(value) <= width {
		return value
	}
	if width <= 3 {
		return runewidth.Truncate(value, width, "")
	}
	return runewidth.Truncate(value, width-3, "...")
}

// PromptCounts asks interactively for the handler and property counts,
// seeded with the current defaults. Empty answers keep the defaults.
func PromptCounts(defHandlers, defProperties uint8) (handlers, properties uint8, err error) {
	model := newCountPrompt(defHandlers, defProperties)
	final, err := tea.NewProgram(model).Run()
	if err != nil {
		return 0, 0, fmt.Errorf("count prompt failed: %w", err)
	}
	m, ok := final.(*countPrompt)
	if !ok || m.canceled || !m.done {
		return 0, 0, ErrPromptCanceled
	}
	return m.counts[0], m.counts[1], nil
}
