package terminal

import (
	"fmt"
	"io"
)

// Notifier prints toasts as single styled lines.
type Notifier struct {
	out io.Writer
}

// NewNotifier returns a Notifier writing to out.
func NewNotifier(out io.Writer) *Notifier {
	return &Notifier{out: out}
}

func (n *Notifier) Success(message string) {
	fmt.Fprintln(n.out, successStyle.Render("✓ ")+message)
}

func (n *Notifier) Error(message string) {
	fmt.Fprintln(n.out, dangerStyle.Render("✗ ")+message)
}
