// SPDX-License-Identifier: MIT

package tui

import (
	"io"

	"github.com/charmbracelet/x/term"
)

// IsTerminal reports whether r is a file descriptor attached to a terminal.
// The picker takes over the whole reader, so it is only usable on a terminal;
// scripted or piped input has to stay with the line prompter.
func IsTerminal(r io.Reader) bool {
	f, ok := r.(interface{ Fd() uintptr })
	if !ok {
		return false
	}

	return term.IsTerminal(f.Fd())
}
