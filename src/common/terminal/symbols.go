package terminal

import (
	"os"
	"strings"
)

// Symbols provides status symbols with Unicode/ASCII fallback
type Symbols struct {
	Success string
	Error   string
	Warning string
	Bullet  string
	Left    string
	Right   string
}

// UnicodeSymbols for modern terminals
var UnicodeSymbols = Symbols{
	Success: "✓",
	Error:   "✗",
	Warning: "⚠",
	Bullet:  "•",
	Left:    "↙",
	Right:   "↘",
}

// ASCIISymbols for limited terminals
var ASCIISymbols = Symbols{
	Success: "[OK]",
	Error:   "[ERR]",
	Warning: "[WARN]",
	Bullet:  "*",
	Left:    "L",
	Right:   "R",
}

// GetSymbols returns the symbol set matching the terminal's capabilities
func GetSymbols() Symbols {
	if supportsUnicode() {
		return UnicodeSymbols
	}
	return ASCIISymbols
}

// supportsUnicode checks if the terminal likely supports Unicode
func supportsUnicode() bool {
	for _, env := range []string{"LC_ALL", "LC_CTYPE", "LANG"} {
		val := strings.ToLower(os.Getenv(env))
		if strings.Contains(val, "utf-8") || strings.Contains(val, "utf8") {
			return true
		}
	}

	term := os.Getenv("TERM")
	for _, t := range []string{"xterm", "rxvt", "screen", "tmux", "linux", "konsole", "gnome", "alacritty", "kitty"} {
		if strings.Contains(term, t) {
			return true
		}
	}

	// Default to ASCII for safety
	return false
}
