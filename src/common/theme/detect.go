package theme

import (
	"os"
	"os/exec"
	"runtime"
	"strings"
)

var (
	// goos and query are swapped out in tests
	goos  = runtime.GOOS
	query = func(name string, args ...string) (string, error) {
		out, err := exec.Command(name, args...).Output()
		return strings.TrimSpace(string(out)), err
	}
)

// DetectSystemDark reports whether the desktop prefers a dark color scheme.
// Anything that cannot be read counts as dark.
func DetectSystemDark() bool {
	switch goos {
	case "darwin":
		// AppleInterfaceStyle is unset in light mode
		out, err := query("defaults", "read", "-g", "AppleInterfaceStyle")
		return err == nil && out == "Dark"
	case "windows":
		out, err := query("reg", "query",
			`HKEY_CURRENT_USER\Software\Microsoft\Windows\CurrentVersion\Themes\Personalize`,
			"/v", "AppsUseLightTheme")
		return err != nil || !strings.Contains(out, "0x1")
	case "linux":
		return detectLinuxDark()
	default:
		return true
	}
}

func detectLinuxDark() bool {
	if out, err := query("gsettings", "get", "org.gnome.desktop.interface", "color-scheme"); err == nil {
		switch {
		case strings.Contains(out, "dark"):
			return true
		case strings.Contains(out, "light"):
			return false
		}
	}
	if gtk := os.Getenv("GTK_THEME"); gtk != "" {
		return strings.Contains(strings.ToLower(gtk), "dark")
	}
	return true
}

// GetSystemTheme returns the theme matching the system preference
func GetSystemTheme() Theme {
	if DetectSystemDark() {
		return Dark
	}
	return Light
}
