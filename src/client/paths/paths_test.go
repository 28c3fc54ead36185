package paths

import (
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"testing"
)

func setHome(t *testing.T) string {
	t.Helper()
	home := t.TempDir()
	t.Setenv("HOME", home)
	t.Setenv("APPDATA", filepath.Join(home, "AppData", "Roaming"))
	t.Setenv("LOCALAPPDATA", filepath.Join(home, "AppData", "Local"))
	return home
}

func TestDirsContainProject(t *testing.T) {
	dirs := map[string]string{
		"ConfigDir": ConfigDir(),
		"DataDir":   DataDir(),
		"LogDir":    LogDir(),
	}

	for name, dir := range dirs {
		t.Run(name, func(t *testing.T) {
			if dir == "" {
				t.Fatalf("%s() returned empty string", name)
			}
			if !strings.Contains(dir, projectOrg) || !strings.Contains(dir, projectName) {
				t.Errorf("%s() = %q, should contain %q and %q", name, dir, projectOrg, projectName)
			}
		})
	}
}

func TestConfigDirPlatformSpecific(t *testing.T) {
	dir := ConfigDir()

	if runtime.GOOS == "windows" {
		appdata := os.Getenv("APPDATA")
		if appdata != "" && !strings.HasPrefix(dir, appdata) {
			t.Errorf("ConfigDir() on Windows should use APPDATA, got %q", dir)
		}
	} else if !strings.Contains(dir, ".config") {
		t.Errorf("ConfigDir() on %s should use .config, got %q", runtime.GOOS, dir)
	}
}

func TestAllDirsAreDifferent(t *testing.T) {
	seen := map[string]string{}
	for name, dir := range map[string]string{"config": ConfigDir(), "data": DataDir(), "log": LogDir()} {
		if other, ok := seen[dir]; ok {
			t.Errorf("%s and %s share directory %q", name, other, dir)
		}
		seen[dir] = name
	}
}

func TestFiles(t *testing.T) {
	if got := filepath.Base(ConfigFile()); got != "cli.yml" {
		t.Errorf("ConfigFile() base = %q, want cli.yml", got)
	}
	if filepath.Dir(ConfigFile()) != ConfigDir() {
		t.Errorf("ConfigFile() = %q, not in ConfigDir()", ConfigFile())
	}
	if got := filepath.Base(LogFile()); got != "cli.log" {
		t.Errorf("LogFile() base = %q, want cli.log", got)
	}
	if filepath.Dir(LogFile()) != LogDir() {
		t.Errorf("LogFile() = %q, not in LogDir()", LogFile())
	}
}

func TestEnsureDirs(t *testing.T) {
	setHome(t)

	if err := EnsureDirs(); err != nil {
		t.Fatalf("EnsureDirs() error = %v", err)
	}

	for _, dir := range []string{ConfigDir(), DataDir(), LogDir()} {
		info, err := os.Stat(dir)
		if err != nil {
			t.Errorf("directory %q not created: %v", dir, err)
			continue
		}
		if !info.IsDir() {
			t.Errorf("%q is not a directory", dir)
		}
		if runtime.GOOS != "windows" && info.Mode().Perm() != 0700 {
			t.Errorf("%q mode = %o, want 0700", dir, info.Mode().Perm())
		}
	}

	// second call on existing dirs is fine
	if err := EnsureDirs(); err != nil {
		t.Errorf("EnsureDirs() second call error = %v", err)
	}
}

func TestEnsureFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "a", "b", "cli.log")

	if err := EnsureFile(path); err != nil {
		t.Fatalf("EnsureFile() error = %v", err)
	}
	if _, err := os.Stat(filepath.Dir(path)); err != nil {
		t.Errorf("parent dir not created: %v", err)
	}
}

func TestExpandHome(t *testing.T) {
	home := setHome(t)

	tests := []struct {
		in   string
		want string
	}{
		{"~", home},
		{"~/courses.csv", filepath.Join(home, "courses.csv")},
		{"/abs/courses.csv", "/abs/courses.csv"},
		{"courses.csv", "courses.csv"},
		{"~other/courses.csv", "~other/courses.csv"},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			if got := ExpandHome(tt.in); got != tt.want {
				t.Errorf("ExpandHome(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestResolveSource(t *testing.T) {
	setHome(t)
	if err := EnsureDirs(); err != nil {
		t.Fatalf("EnsureDirs() error = %v", err)
	}

	work := t.TempDir()
	t.Chdir(work)

	// only in the data dir
	dataOnly := filepath.Join(DataDir(), "data-only.csv")
	if err := os.WriteFile(dataOnly, []byte("A,B\n"), 0600); err != nil {
		t.Fatal(err)
	}
	if got := ResolveSource("data-only.csv"); got != dataOnly {
		t.Errorf("ResolveSource(data-only.csv) = %q, want %q", got, dataOnly)
	}

	// working directory wins over data dir
	if err := os.WriteFile("both.csv", []byte("A,B\n"), 0600); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(DataDir(), "both.csv"), []byte("A,B\n"), 0600); err != nil {
		t.Fatal(err)
	}
	if got := ResolveSource("both.csv"); got != "both.csv" {
		t.Errorf("ResolveSource(both.csv) = %q, want both.csv", got)
	}

	// missing everywhere comes back unchanged
	if got := ResolveSource("missing.csv"); got != "missing.csv" {
		t.Errorf("ResolveSource(missing.csv) = %q, want missing.csv", got)
	}

	abs := filepath.Join(work, "nowhere.csv")
	if got := ResolveSource(abs); got != abs {
		t.Errorf("ResolveSource(%q) = %q", abs, got)
	}
}

func TestResolveConfigPath(t *testing.T) {
	home := setHome(t)

	got, err := ResolveConfigPath("")
	if err != nil || got != ConfigFile() {
		t.Errorf("ResolveConfigPath(\"\") = %q, %v; want %q", got, err, ConfigFile())
	}

	got, _ = ResolveConfigPath("/etc/courseplanner/custom.yaml")
	if got != "/etc/courseplanner/custom.yaml" {
		t.Errorf("absolute path changed: %q", got)
	}

	got, _ = ResolveConfigPath("~/planner")
	if want := filepath.Join(home, "planner.yml"); got != want {
		t.Errorf("ResolveConfigPath(~/planner) = %q, want %q", got, want)
	}

	got, _ = ResolveConfigPath("work")
	if want := filepath.Join(ConfigDir(), "work.yml"); got != want {
		t.Errorf("ResolveConfigPath(work) = %q, want %q", got, want)
	}
}

func TestAddExtIfNeeded(t *testing.T) {
	dir := t.TempDir()

	yamlBase := filepath.Join(dir, "existing")
	if err := os.WriteFile(yamlBase+".yaml", nil, 0600); err != nil {
		t.Fatal(err)
	}

	tests := []struct {
		in   string
		want string
	}{
		{filepath.Join(dir, "a.yml"), filepath.Join(dir, "a.yml")},
		{filepath.Join(dir, "a.yaml"), filepath.Join(dir, "a.yaml")},
		{filepath.Join(dir, "a"), filepath.Join(dir, "a.yml")},
		{yamlBase, yamlBase + ".yaml"},
		{filepath.Join(dir, "a.toml"), filepath.Join(dir, "a.toml")},
	}

	for _, tt := range tests {
		got, err := addExtIfNeeded(tt.in)
		if err != nil {
			t.Errorf("addExtIfNeeded(%q) error = %v", tt.in, err)
		}
		if got != tt.want {
			t.Errorf("addExtIfNeeded(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}
