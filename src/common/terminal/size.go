// Package terminal provides terminal detection and symbol sets
package terminal

import (
	"os"

	"golang.org/x/term"
)

// Size represents terminal dimensions
type Size struct {
	Cols int
	Rows int
}

var (
	isTerminalFunc = term.IsTerminal
	getSizeFunc    = term.GetSize
)

// GetSize returns the current terminal size, 80x24 when it cannot be read
func GetSize() Size {
	cols, rows, err := getSizeFunc(int(os.Stdout.Fd()))
	if err != nil || cols == 0 {
		cols = 80
	}
	if err != nil || rows == 0 {
		rows = 24
	}
	return Size{Cols: cols, Rows: rows}
}

// IsTerminal returns true if stdout is a terminal
func IsTerminal() bool {
	return isTerminalFunc(int(os.Stdout.Fd()))
}

// IsInteractive returns true if both stdin and stdout are terminals
func IsInteractive() bool {
	return isTerminalFunc(int(os.Stdin.Fd())) && isTerminalFunc(int(os.Stdout.Fd()))
}
