// Package paths provides CLI directory and file path resolution.
// Linux and macOS follow XDG-style locations, Windows uses APPDATA/LOCALAPPDATA.
package paths

import (
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"strings"
)

const (
	projectOrg  = "apimgr"
	projectName = "courseplanner"
)

// ConfigDir returns the CLI config directory
// Linux: ~/.config/apimgr/courseplanner/
// Windows: %APPDATA%\apimgr\courseplanner\
func ConfigDir() string {
	if runtime.GOOS == "windows" {
		return filepath.Join(os.Getenv("APPDATA"), projectOrg, projectName)
	}
	home, _ := os.UserHomeDir()
	return filepath.Join(home, ".config", projectOrg, projectName)
}

// DataDir returns the directory searched for catalog files
// Linux: ~/.local/share/apimgr/courseplanner/
// Windows: %LOCALAPPDATA%\apimgr\courseplanner\data\
func DataDir() string {
	if runtime.GOOS == "windows" {
		return filepath.Join(os.Getenv("LOCALAPPDATA"), projectOrg, projectName, "data")
	}
	home, _ := os.UserHomeDir()
	return filepath.Join(home, ".local", "share", projectOrg, projectName)
}

// LogDir returns the CLI log directory
// Linux: ~/.local/log/apimgr/courseplanner/
// Windows: %LOCALAPPDATA%\apimgr\courseplanner\log\
func LogDir() string {
	if runtime.GOOS == "windows" {
		return filepath.Join(os.Getenv("LOCALAPPDATA"), projectOrg, projectName, "log")
	}
	home, _ := os.UserHomeDir()
	return filepath.Join(home, ".local", "log", projectOrg, projectName)
}

// ConfigFile returns the CLI config file path
func ConfigFile() string {
	return filepath.Join(ConfigDir(), "cli.yml")
}

// LogFile returns the CLI log file path
func LogFile() string {
	return filepath.Join(LogDir(), "cli.log")
}

// EnsureDirs creates the CLI directories with owner-only permissions.
// Called on every startup before any file operations.
func EnsureDirs() error {
	dirs := []string{
		ConfigDir(),
		DataDir(),
		LogDir(),
	}

	for _, dir := range dirs {
		if err := os.MkdirAll(dir, 0700); err != nil {
			return fmt.Errorf("create dir %s: %w", dir, err)
		}
		// Ensure permissions even if dir existed
		if err := os.Chmod(dir, 0700); err != nil {
			return fmt.Errorf("chmod dir %s: %w", dir, err)
		}
	}
	return nil
}

// EnsureFile creates the parent dirs of path
func EnsureFile(path string) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0700); err != nil {
		return fmt.Errorf("create parent dir: %w", err)
	}
	return nil
}

// ExpandHome replaces a leading ~ with the user's home directory
func ExpandHome(path string) string {
	if path == "~" || strings.HasPrefix(path, "~/") {
		home, _ := os.UserHomeDir()
		return filepath.Join(home, path[1:])
	}
	return path
}

// ResolveSource finds the catalog file to load.
// Absolute paths and paths that exist relative to the working directory
// are used as-is; otherwise a file of that name in DataDir wins. When
// neither exists the expanded path is returned so the load reports it.
func ResolveSource(source string) string {
	source = ExpandHome(source)
	if filepath.IsAbs(source) {
		return source
	}
	if _, err := os.Stat(source); err == nil {
		return source
	}
	candidate := filepath.Join(DataDir(), source)
	if _, err := os.Stat(candidate); err == nil {
		return candidate
	}
	return source
}

// ResolveConfigPath resolves the --config flag to a file path.
// Relative names are taken from ConfigDir; a missing extension becomes .yml.
func ResolveConfigPath(configFlag string) (string, error) {
	if configFlag == "" {
		return ConfigFile(), nil
	}

	configFlag = ExpandHome(configFlag)

	if filepath.IsAbs(configFlag) {
		return addExtIfNeeded(configFlag)
	}

	fullPath := filepath.Join(ConfigDir(), configFlag)
	return addExtIfNeeded(fullPath)
}

// addExtIfNeeded adds .yml extension if no extension provided
func addExtIfNeeded(path string) (string, error) {
	ext := filepath.Ext(path)
	if ext == ".yml" || ext == ".yaml" {
		return path, nil
	}

	// No extension - try .yml first, then .yaml
	if ext == "" {
		ymlPath := path + ".yml"
		if _, err := os.Stat(ymlPath); err == nil {
			return ymlPath, nil
		}
		yamlPath := path + ".yaml"
		if _, err := os.Stat(yamlPath); err == nil {
			return yamlPath, nil
		}
		return ymlPath, nil
	}

	return path, nil
}
