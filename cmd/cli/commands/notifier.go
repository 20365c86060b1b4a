package commands

import (
	"fmt"
	"io"
)

// terminalNotifier renders form toasts as lines on the terminal.
type terminalNotifier struct {
	out    io.Writer
	errOut io.Writer
}

func (n *terminalNotifier) Warn(message string) {
	fmt.Fprintln(n.errOut, message)
}

func (n *terminalNotifier) Pending(message string) {
	fmt.Fprintln(n.out, message)
}

func (n *terminalNotifier) Success(message string) {
	fmt.Fprintln(n.out, message)
}

func (n *terminalNotifier) Error(message string) {
	fmt.Fprintln(n.errOut, message)
}
