// SPDX-License-Identifier: MIT

// Package tui provides the optional full-screen menu picker and the lipgloss
// styles used by the interactive session.
package tui

import (
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

// ErrCancelled is returned by Chooser.Choose when the user quits the picker.
var ErrCancelled = errors.New("tui: selection cancelled")

// Picker is a bubbletea model for choosing one entry of a numbered list.
// Arrow keys move the cursor, enter selects, and a digit selects directly.
type Picker struct {
	title  string
	items  []string
	cursor int
	chosen int // 1-based; 0 while undecided
	quit   bool
	keys   KeyMap
}

// NewPicker creates a picker over items.
func NewPicker(title string, items []string) Picker {
	return Picker{title: title, items: items, keys: DefaultKeyMap()}
}

// Chosen returns the 1-based selection and whether one was made.
func (m Picker) Chosen() (int, bool) { return m.chosen, m.chosen > 0 }

// Cursor returns the highlighted 0-based index.
func (m Picker) Cursor() int { return m.cursor }

// Init implements tea.Model.
func (m Picker) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model.
func (m Picker) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKeyPress(msg)
	}

	return m, nil
}

func (m Picker) handleKeyPress(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		m.quit = true
		return m, tea.Quit
	case key.Matches(msg, m.keys.Up):
		m.cursor = (m.cursor - 1 + len(m.items)) % len(m.items)
	case key.Matches(msg, m.keys.Down):
		m.cursor = (m.cursor + 1) % len(m.items)
	case key.Matches(msg, m.keys.Select):
		m.chosen = m.cursor + 1
		return m, tea.Quit
	default:
		if n, err := strconv.Atoi(msg.String()); err == nil && n >= 1 && n <= len(m.items) {
			m.cursor = n - 1
			m.chosen = n
			return m, tea.Quit
		}
	}

	return m, nil
}

// View implements tea.Model.
func (m Picker) View() string {
	if m.chosen > 0 || m.quit {
		return ""
	}

	var b strings.Builder
	b.WriteString(TitleStyle.Render(m.title))
	b.WriteString("\n\n")
	for i, it := range m.items {
		line := fmt.Sprintf("%d. %s", i+1, it)
		if i == m.cursor {
			b.WriteString(SelectedItemStyle.Render("> " + line))
		} else {
			b.WriteString(ItemStyle.Render("  " + line))
		}
		b.WriteByte('\n')
	}
	b.WriteByte('\n')
	b.WriteString(m.renderHelpBar())

	return b.String()
}

func (m Picker) renderHelpBar() string {
	parts := make([]string, 0, 4)
	for _, k := range m.keys.help() {
		h := k.Help()
		parts = append(parts, h.Key+" "+h.Desc)
	}

	return HelpStyle.Render(strings.Join(parts, " • "))
}

// Chooser runs a Picker program per question.
type Chooser struct {
	in   io.Reader
	out  io.Writer
	opts []tea.ProgramOption
}

// NewChooser binds the picker to in/out; extra program options are appended.
func NewChooser(in io.Reader, out io.Writer, opts ...tea.ProgramOption) *Chooser {
	return &Chooser{in: in, out: out, opts: opts}
}

// Choose shows title and items and returns the 1-based selection.
func (c *Chooser) Choose(title string, items []string) (int, error) {
	if len(items) == 0 {
		return 0, fmt.Errorf("tui: %q: no items", title)
	}
	opts := append([]tea.ProgramOption{tea.WithInput(c.in), tea.WithOutput(c.out)}, c.opts...)
	final, err := tea.NewProgram(NewPicker(title, items), opts...).Run()
	if err != nil {
		return 0, fmt.Errorf("tui: %w", err)
	}
	if n, ok := final.(Picker).Chosen(); ok {
		return n, nil
	}

	return 0, ErrCancelled
}
