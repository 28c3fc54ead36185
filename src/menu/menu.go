// Package menu implements the numbered text menu over a course catalog
package menu

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/apimgr/courseplanner/src/catalog"
)

// Menu choices
const (
	ChoiceLoad = "1"
	ChoiceList = "2"
	ChoiceShow = "3"
	ChoiceExit = "9"
)

const (
	menuTitle   = "Course Planner"
	menuPrompt  = "What would you like to do? "
	numberInput = "Enter course number: "
)

// Shell is a blocking read-evaluate loop bound to one catalog.
// It only stops on the exit choice or when its input runs dry.
type Shell struct {
	catalog *catalog.Catalog
	source  string
	in      *bufio.Scanner
	out     io.Writer
	logger  *slog.Logger
}

// Option configures a Shell
type Option func(*Shell)

// WithLogger sets the logger; slog.Default() is used otherwise
func WithLogger(l *slog.Logger) Option {
	return func(s *Shell) {
		s.logger = l
	}
}

// New returns a shell that loads source on the load choice
func New(c *catalog.Catalog, source string, in io.Reader, out io.Writer, opts ...Option) *Shell {
	s := &Shell{
		catalog: c,
		source:  source,
		in:      bufio.NewScanner(in),
		out:     out,
		logger:  slog.Default(),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Run loops until the exit choice is read.
// Running out of input also ends the loop; the returned error is only
// set when reading the input failed.
func (s *Shell) Run() error {
	for {
		s.printMenu()

		choice, ok := s.readChoice()
		if !ok {
			s.logger.Info("menu input closed")
			return s.in.Err()
		}

		switch choice {
		case ChoiceLoad:
			s.Load()
		case ChoiceList:
			s.PrintCourseList()
		case ChoiceShow:
			fmt.Fprint(s.out, numberInput)
			number, ok := s.readLine()
			if !ok {
				s.logger.Info("menu input closed")
				return s.in.Err()
			}
			s.PrintCourse(number)
		case ChoiceExit:
			fmt.Fprintln(s.out, "Thank you for using the course planner!")
			return nil
		default:
			s.logger.Info("invalid menu choice", "input", choice)
			fmt.Fprintf(s.out, "%s is not a valid option.\n", choice)
		}
	}
}

func (s *Shell) printMenu() {
	fmt.Fprintf(s.out, "\n%s\n", menuTitle)
	fmt.Fprintln(s.out, "1. Load Data Structure.")
	fmt.Fprintln(s.out, "2. Print Course List.")
	fmt.Fprintln(s.out, "3. Print Course.")
	fmt.Fprintln(s.out, "9. Exit")
	fmt.Fprintf(s.out, "\n%s", menuPrompt)
}

// readChoice skips blank lines, like a prompt waiting for a token
func (s *Shell) readChoice() (string, bool) {
	for {
		line, ok := s.readLine()
		if !ok {
			return "", false
		}
		if line != "" {
			return line, true
		}
	}
}

func (s *Shell) readLine() (string, bool) {
	if !s.in.Scan() {
		return "", false
	}
	return strings.TrimSpace(s.in.Text()), true
}

// Load loads the configured source into the catalog and reports the outcome
func (s *Shell) Load() {
	s.logger.Info("loading catalog", "source", s.source)

	report, err := s.catalog.Load(s.source)
	if err != nil {
		s.logger.Error("catalog load failed", "source", s.source, "error", err)
		if errors.Is(err, catalog.ErrSourceUnreadable) {
			fmt.Fprintln(s.out, "Error: Could not open the file.")
			return
		}
		fmt.Fprintf(s.out, "Error: %v\n", err)
		return
	}

	for _, le := range report.Rejected {
		s.logger.Warn("rejected catalog line", "source", s.source, "line", le.Line, "text", le.Text, "error", le.Err)
		fmt.Fprintf(s.out, "Error: Invalid course data format (line %d)\n", le.Line)
	}

	s.logger.Info("catalog loaded",
		"source", s.source,
		"accepted", report.Accepted,
		"rejected", len(report.Rejected),
		"total", s.catalog.Len(),
	)
	fmt.Fprintln(s.out, "Courses loaded successfully.")
}

// PrintCourseList prints every course as "<number>, <name>" in ascending order
func (s *Shell) PrintCourseList() {
	if s.catalog.Empty() {
		fmt.Fprintln(s.out, "No courses loaded.")
		return
	}
	for c := range s.catalog.All() {
		fmt.Fprintln(s.out, c.String())
	}
}

// PrintCourse prints the detail of one course
func (s *Shell) PrintCourse(number string) {
	c, ok := s.catalog.Lookup(number)
	if !ok {
		s.logger.Debug("course not found", "number", number)
		fmt.Fprintln(s.out, "Course not found.")
		return
	}
	fmt.Fprint(s.out, Detail(c))
}

// Detail renders the course detail block, newline terminated
func Detail(c catalog.Course) string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "Course Number: %s, Course Name: %s\n", c.Number, c.Name)
	if c.HasPrerequisites() {
		fmt.Fprintf(&sb, "Prerequisites: %s\n", c.PrerequisiteList())
	} else {
		sb.WriteString("No prerequisites\n")
	}
	return sb.String()
}
