package catalog

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/go-playground/validator/v10"
)

// Delimiter separates the fields of a catalog line.
// Fields cannot contain it; there is no quoting.
const Delimiter = ","

// maxLineSize bounds a single catalog line
const maxLineSize = 1024 * 1024

var validate = validator.New()

// LoadReport summarises one load
type LoadReport struct {
	Source   string
	Lines    int
	Accepted int
	Rejected []*LineError
}

// OK reports whether every line was accepted
func (r *LoadReport) OK() bool {
	return len(r.Rejected) == 0
}

// Parse reads catalog lines of the form "number,name[,prereq...]".
//
// Every line is parsed on its own. A line missing the number or the name
// (blank lines included) is returned as a LineError wrapping ErrInvalidFormat
// and parsing carries on with the next line. Accepted courses come back in
// file order. The error result is only set when r itself fails.
func Parse(r io.Reader) ([]Course, []*LineError, error) {
	var (
		courses  []Course
		rejected []*LineError
	)

	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), maxLineSize)

	line := 0
	for sc.Scan() {
		line++
		text := sc.Text()

		course, err := parseLine(text)
		if err != nil {
			rejected = append(rejected, &LineError{Line: line, Text: text, Err: err})
			continue
		}
		courses = append(courses, course)
	}
	if err := sc.Err(); err != nil {
		return courses, rejected, fmt.Errorf("read line %d: %w", line+1, err)
	}

	return courses, rejected, nil
}

func parseLine(text string) (Course, error) {
	fields := strings.Split(text, Delimiter)
	for i := range fields {
		fields[i] = strings.TrimSpace(fields[i])
	}

	var number, name string
	number = fields[0]
	if len(fields) > 1 {
		name = fields[1]
	}

	var prereqs []string
	if len(fields) > 2 {
		for _, p := range fields[2:] {
			// "A,B,,C" and trailing commas leave empty tokens behind
			if p != "" {
				prereqs = append(prereqs, p)
			}
		}
	}

	course := NewCourse(number, name, prereqs)
	if err := validate.Struct(course); err != nil {
		return Course{}, invalidFormat(err)
	}
	return course, nil
}

func invalidFormat(err error) error {
	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) {
		var fields []string
		for _, fe := range verrs {
			fields = append(fields, fe.Field()+" ("+fe.Tag()+")")
		}
		return fmt.Errorf("%w: validation failed on %s", ErrInvalidFormat, strings.Join(fields, ", "))
	}
	return fmt.Errorf("%w: %v", ErrInvalidFormat, err)
}
