package cmd

import (
	"bytes"
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/spf13/viper"

	"github.com/apimgr/courseplanner/src/catalog"
)

const sampleCatalog = `CSCI300,Introduction to Algorithms,CSCI200,MATH201
CSCI100,Introduction to Computer Science
CSCI200,Data Structures,CSCI101
MATH201,Discrete Mathematics
CSCI101,Introduction to Programming in C++,CSCI100
`

// execute runs the root command in a clean environment and returns stdout and stderr
func execute(t *testing.T, stdin string, args ...string) (string, string, error) {
	t.Helper()

	viper.Reset()
	cfgFile, source, output, noColor, tuiMode = "", "", "", false, false
	setup = nil

	t.Setenv("HOME", t.TempDir())
	t.Setenv("COURSEPLANNER_CATALOG_SOURCE", "")
	t.Setenv("LC_ALL", "")
	t.Setenv("LC_CTYPE", "")
	t.Setenv("LANG", "C")
	t.Setenv("TERM", "dumb")

	var out, errOut bytes.Buffer
	rootCmd.SetArgs(args)
	rootCmd.SetIn(strings.NewReader(stdin))
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&errOut)

	err := rootCmd.Execute()
	return out.String(), errOut.String(), err
}

func writeSource(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "courses.csv")
	if err := os.WriteFile(path, []byte(content), 0600); err != nil {
		t.Fatalf("write source: %v", err)
	}
	return path
}

func TestDefaultRunsMenu(t *testing.T) {
	src := writeSource(t, sampleCatalog)

	out, _, err := execute(t, "1\n2\n3\nCSCI300\n9\n", "--source", src)
	if err != nil {
		t.Fatalf("Execute() error = %v", err)
	}

	wants := []string{
		"Courses loaded successfully.",
		"CSCI100, Introduction to Computer Science\nCSCI101, Introduction to Programming in C++\nCSCI200, Data Structures\nCSCI300, Introduction to Algorithms\nMATH201, Discrete Mathematics\n",
		"Course Number: CSCI300, Course Name: Introduction to Algorithms\nPrerequisites: CSCI200 MATH201\n",
		"Thank you for using the course planner!",
	}
	for _, want := range wants {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q\n%s", want, out)
		}
	}
}

func TestMenuCommand(t *testing.T) {
	out, _, err := execute(t, "5\n9\n", "menu")
	if err != nil {
		t.Fatalf("Execute() error = %v", err)
	}
	if !strings.Contains(out, "5 is not a valid option.") {
		t.Errorf("output = %q", out)
	}
}

func TestSetupCalled(t *testing.T) {
	called := false
	viper.Reset()
	cfgFile, source, output, noColor, tuiMode = "", "", "", false, false
	t.Setenv("HOME", t.TempDir())

	setup = func() error {
		called = true
		return nil
	}
	defer func() { setup = nil }()

	rootCmd.SetArgs([]string{"version"})
	rootCmd.SetOut(&bytes.Buffer{})
	if err := rootCmd.Execute(); err != nil {
		t.Fatalf("Execute() error = %v", err)
	}
	if !called {
		t.Error("setup was not called")
	}
}

func TestSetupError(t *testing.T) {
	viper.Reset()
	t.Setenv("HOME", t.TempDir())

	boom := errors.New("boom")
	setup = func() error { return boom }
	defer func() { setup = nil }()

	rootCmd.SetArgs([]string{"version"})
	rootCmd.SetOut(&bytes.Buffer{})
	rootCmd.SetErr(&bytes.Buffer{})
	if err := rootCmd.Execute(); !errors.Is(err, boom) {
		t.Errorf("Execute() error = %v, want %v", err, boom)
	}
}

func TestListTable(t *testing.T) {
	src := writeSource(t, sampleCatalog)

	out, _, err := execute(t, "", "list", "--source", src)
	if err != nil {
		t.Fatalf("Execute() error = %v", err)
	}

	lines := strings.Split(out, "\n")
	if !strings.HasPrefix(lines[0], "NUMBER") {
		t.Errorf("first line = %q, want header", lines[0])
	}
	if !strings.HasPrefix(lines[1], "CSCI100") || !strings.HasPrefix(lines[5], "MATH201") {
		t.Errorf("rows out of order:\n%s", out)
	}
	if !strings.Contains(out, "Total: 5 courses") {
		t.Errorf("output missing total:\n%s", out)
	}
}

func TestListPlain(t *testing.T) {
	src := writeSource(t, "CSCI200,Data Structures,CSCI100\nCSCI100,Intro to CS\n")

	out, _, err := execute(t, "", "list", "--source", src, "--output", "plain")
	if err != nil {
		t.Fatalf("Execute() error = %v", err)
	}

	want := "CSCI100, Intro to CS\nCSCI200, Data Structures\n"
	if out != want {
		t.Errorf("output = %q, want %q", out, want)
	}
}

func TestListJSON(t *testing.T) {
	src := writeSource(t, "CSCI200,Data Structures,CSCI100\nCSCI100,Intro to CS\n")

	out, _, err := execute(t, "", "list", "--source", src, "-o", "json")
	if err != nil {
		t.Fatalf("Execute() error = %v", err)
	}

	var courses []catalog.Course
	if err := json.Unmarshal([]byte(out), &courses); err != nil {
		t.Fatalf("invalid JSON: %v\n%s", err, out)
	}
	if len(courses) != 2 || courses[0].Number != "CSCI100" || courses[1].Prerequisites[0] != "CSCI100" {
		t.Errorf("courses = %+v", courses)
	}
}

func TestListEmpty(t *testing.T) {
	src := writeSource(t, "ONLYONEFIELD\n")

	tests := []struct {
		format string
		want   string
	}{
		{"table", "No courses loaded.\n"},
		{"plain", "No courses loaded.\n"},
		{"json", "[]\n"},
	}

	for _, tt := range tests {
		t.Run(tt.format, func(t *testing.T) {
			out, errOut, err := execute(t, "", "list", "--source", src, "-o", tt.format)
			if err != nil {
				t.Fatalf("Execute() error = %v", err)
			}
			if out != tt.want {
				t.Errorf("output = %q, want %q", out, tt.want)
			}
			if !strings.Contains(errOut, "line 1") {
				t.Errorf("stderr missing rejected line: %q", errOut)
			}
		})
	}
}

func TestListMissingSource(t *testing.T) {
	missing := filepath.Join(t.TempDir(), "missing.csv")

	_, _, err := execute(t, "", "list", "--source", missing)
	if !errors.Is(err, catalog.ErrSourceUnreadable) {
		t.Errorf("Execute() error = %v, want ErrSourceUnreadable", err)
	}
}

func TestSourceFromEnvironment(t *testing.T) {
	src := writeSource(t, "ENV100,From the environment\n")

	viper.Reset()
	cfgFile, source, output, noColor, tuiMode = "", "", "", false, false
	t.Setenv("HOME", t.TempDir())
	t.Setenv("COURSEPLANNER_CATALOG_SOURCE", src)

	var out bytes.Buffer
	rootCmd.SetArgs([]string{"list", "-o", "plain"})
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&bytes.Buffer{})
	if err := rootCmd.Execute(); err != nil {
		t.Fatalf("Execute() error = %v", err)
	}
	if out.String() != "ENV100, From the environment\n" {
		t.Errorf("output = %q", out.String())
	}
}

func TestSourceFromConfigFile(t *testing.T) {
	src := writeSource(t, "CFG100,From the config file\n")
	cfg := filepath.Join(t.TempDir(), "planner.yml")
	if err := os.WriteFile(cfg, []byte("catalog:\n  source: "+src+"\n"), 0600); err != nil {
		t.Fatal(err)
	}

	out, _, err := execute(t, "", "list", "--config", cfg, "-o", "plain")
	if err != nil {
		t.Fatalf("Execute() error = %v", err)
	}
	if out != "CFG100, From the config file\n" {
		t.Errorf("output = %q", out)
	}
}

func TestShow(t *testing.T) {
	src := writeSource(t, sampleCatalog)

	tests := []struct {
		number string
		want   string
	}{
		{"CSCI200", "Course Number: CSCI200, Course Name: Data Structures\nPrerequisites: CSCI101\n"},
		{"MATH201", "Course Number: MATH201, Course Name: Discrete Mathematics\nNo prerequisites\n"},
	}

	for _, tt := range tests {
		t.Run(tt.number, func(t *testing.T) {
			out, _, err := execute(t, "", "show", tt.number, "--source", src)
			if err != nil {
				t.Fatalf("Execute() error = %v", err)
			}
			if out != tt.want {
				t.Errorf("output = %q, want %q", out, tt.want)
			}
		})
	}
}

func TestShowNotFound(t *testing.T) {
	src := writeSource(t, sampleCatalog)

	_, errOut, err := execute(t, "", "show", "csci200", "--source", src)
	if err == nil {
		t.Fatal("Execute() should fail for a missing course")
	}
	if !strings.Contains(errOut, "course not found: csci200") {
		t.Errorf("stderr = %q", errOut)
	}
}

func TestShowJSON(t *testing.T) {
	src := writeSource(t, sampleCatalog)

	out, _, err := execute(t, "", "show", "CSCI300", "--source", src, "-o", "json")
	if err != nil {
		t.Fatalf("Execute() error = %v", err)
	}

	var c catalog.Course
	if err := json.Unmarshal([]byte(out), &c); err != nil {
		t.Fatalf("invalid JSON: %v", err)
	}
	if c.Name != "Introduction to Algorithms" || len(c.Prerequisites) != 2 {
		t.Errorf("course = %+v", c)
	}
}

func TestLoadCommand(t *testing.T) {
	src := writeSource(t, sampleCatalog)

	out, _, err := execute(t, "", "load", "--source", src)
	if err != nil {
		t.Fatalf("Execute() error = %v", err)
	}
	if !strings.Contains(out, "[OK] 5 of 5 lines loaded from "+src) {
		t.Errorf("output = %q", out)
	}
}

func TestLoadCommandRejected(t *testing.T) {
	src := writeSource(t, "CSCI100,Intro to CS\nBROKEN\n")

	out, _, err := execute(t, "", "load", "--source", src)
	if err == nil || !strings.Contains(err.Error(), "1 of 2 lines rejected") {
		t.Errorf("Execute() error = %v", err)
	}
	if !strings.Contains(out, "[ERR] line 2: invalid course data format") {
		t.Errorf("output = %q", out)
	}
	if !strings.Contains(out, `"BROKEN"`) {
		t.Errorf("output should quote the rejected line: %q", out)
	}
	if !strings.Contains(out, "[WARN] 1 of 2 lines loaded") {
		t.Errorf("output = %q", out)
	}
}

func TestLoadCommandJSON(t *testing.T) {
	src := writeSource(t, "CSCI100,Intro to CS\nBROKEN\n")

	out, _, _ := execute(t, "", "load", "--source", src, "-o", "json")

	var summary loadSummary
	if err := json.Unmarshal([]byte(out), &summary); err != nil {
		t.Fatalf("invalid JSON: %v\n%s", err, out)
	}
	if summary.Accepted != 1 || summary.Lines != 2 || len(summary.Rejected) != 1 || summary.Rejected[0].Line != 2 {
		t.Errorf("summary = %+v", summary)
	}
	if summary.Height != 1 {
		t.Errorf("Height = %d, want 1", summary.Height)
	}
}

func TestTreeCommand(t *testing.T) {
	src := writeSource(t, "B,Second\nA,First\nC,Third\nC,Third again\n")

	out, _, err := execute(t, "", "tree", "--source", src)
	if err != nil {
		t.Fatalf("Execute() error = %v", err)
	}

	for _, want := range []string{"B, Second", "L A, First", "R C, Third", "R C, Third again", "4 courses, height 3"} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q\n%s", want, out)
		}
	}
	if strings.Index(out, "A, First") > strings.Index(out, "C, Third") {
		t.Errorf("left branch should print before right branch\n%s", out)
	}
}

func TestTreeCommandEmpty(t *testing.T) {
	src := writeSource(t, "")

	out, _, err := execute(t, "", "tree", "--source", src)
	if err != nil {
		t.Fatalf("Execute() error = %v", err)
	}
	if out != "No courses loaded.\n" {
		t.Errorf("output = %q", out)
	}
}

func TestTUIWithoutTerminal(t *testing.T) {
	orig := isInteractive
	defer func() { isInteractive = orig }()
	isInteractive = func() bool { return false }

	_, _, err := execute(t, "", "tui")
	if !errors.Is(err, errNoTerminal) {
		t.Errorf("Execute() error = %v, want errNoTerminal", err)
	}

	_, _, err = execute(t, "", "--tui")
	if !errors.Is(err, errNoTerminal) {
		t.Errorf("Execute(--tui) error = %v, want errNoTerminal", err)
	}
}

func TestTUIUnknownTheme(t *testing.T) {
	orig := isInteractive
	defer func() { isInteractive = orig }()
	isInteractive = func() bool { return true }

	t.Setenv("COURSEPLANNER_OUTPUT_THEME", "solarized")
	_, _, err := execute(t, "", "tui")
	if err == nil || !strings.Contains(err.Error(), "unknown theme") {
		t.Errorf("Execute() error = %v, want unknown theme", err)
	}
}

func TestGetOutputFormat(t *testing.T) {
	viper.Reset()
	output = ""
	if got := getOutputFormat(); got != "table" {
		t.Errorf("getOutputFormat() = %q, want table", got)
	}

	viper.Set("output.format", "plain")
	if got := getOutputFormat(); got != "plain" {
		t.Errorf("getOutputFormat() = %q, want plain", got)
	}

	output = "json"
	defer func() { output = "" }()
	if got := getOutputFormat(); got != "json" {
		t.Errorf("getOutputFormat() = %q, want json", got)
	}
}

func TestUseColor(t *testing.T) {
	viper.Reset()
	noColor = false
	t.Setenv("NO_COLOR", "")

	if !useColor() {
		t.Error("useColor() = false by default")
	}

	viper.Set("output.color", "never")
	if useColor() {
		t.Error("useColor() = true with output.color=never")
	}

	viper.Reset()
	t.Setenv("NO_COLOR", "1")
	if useColor() {
		t.Error("useColor() = true with NO_COLOR set")
	}
}
