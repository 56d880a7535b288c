package terminal

import (
	"context"
	"fmt"
	"io"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// confirmModel is a yes/no dialog. No is selected initially.
type confirmModel struct {
	title     string
	message   string
	yes       bool
	confirmed bool
	done      bool
}

func (m confirmModel) Init() tea.Cmd { return nil }

func (m confirmModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	key, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}
	switch key.String() {
	case "left", "h":
		m.yes = true
	case "right", "l":
		m.yes = false
	case "y":
		m.yes, m.confirmed, m.done = true, true, true
		return m, tea.Quit
	case "n", "esc", "q", "ctrl+c":
		m.yes, m.confirmed, m.done = false, false, true
		return m, tea.Quit
	case "enter":
		m.confirmed, m.done = m.yes, true
		return m, tea.Quit
	}
	return m, nil
}

func (m confirmModel) View() string {
	if m.done {
		return ""
	}
	var b strings.Builder
	b.WriteString(titleStyle.Render(m.title))
	b.WriteString("\n\n")
	b.WriteString(m.message)
	b.WriteString("\n\n")

	yes, no := inactiveButtonStyle.Render("Continue"), activeButtonStyle.Render("Cancel")
	if m.yes {
		yes, no = activeButtonStyle.Render("Continue"), inactiveButtonStyle.Render("Cancel")
	}
	b.WriteString(lipgloss.JoinHorizontal(lipgloss.Left, yes, "  ", no))
	b.WriteString("\n\n")
	b.WriteString(mutedStyle.Render("←/→ choose • enter confirm • esc cancel"))
	return boxStyle.Render(b.String())
}

// Confirmer shows the confirmation dialog as a bubbletea program.
type Confirmer struct {
	in  io.Reader
	out io.Writer
	// AssumeYes skips the dialog.
	AssumeYes bool
}

// NewConfirmer returns a Confirmer reading keys from in.
func NewConfirmer(in io.Reader, out io.Writer) *Confirmer {
	return &Confirmer{in: in, out: out}
}

func (c *Confirmer) Confirm(ctx context.Context, title, message string) (bool, error) {
	if c.AssumeYes {
		return true, nil
	}
	program := tea.NewProgram(
		confirmModel{title: title, message: message},
		tea.WithContext(ctx),
		tea.WithInput(c.in),
		tea.WithOutput(c.out),
	)
	final, err := program.Run()
	if err != nil {
		return false, fmt.Errorf("confirmation dialog failed: %w", err)
	}
	m, ok := final.(confirmModel)
	return ok && m.confirmed, nil
}
