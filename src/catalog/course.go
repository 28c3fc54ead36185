// Package catalog provides the in-memory course catalog: course records,
// the binary search tree that orders them and the two-pass file loader
package catalog

import "strings"

// Course is one catalog entry.
// Values are immutable once built; use NewCourse to construct them.
// Courses read back from a Tree carry their own prerequisite slice, so
// changing it never reaches the stored record.
type Course struct {
	Number        string   `json:"number" validate:"required"`
	Name          string   `json:"name" validate:"required"`
	Prerequisites []string `json:"prerequisites,omitempty"`
}

// NewCourse builds a Course. It never fails: validation is the loader's job.
// The prerequisite slice is copied so later changes by the caller are not seen.
func NewCourse(number, name string, prereqs []string) Course {
	var p []string
	if len(prereqs) > 0 {
		p = make([]string, len(prereqs))
		copy(p, prereqs)
	}
	return Course{
		Number:        number,
		Name:          name,
		Prerequisites: p,
	}
}

// clone returns c with a private copy of its prerequisites
func (c Course) clone() Course {
	return NewCourse(c.Number, c.Name, c.Prerequisites)
}

// Prereqs returns a copy of the prerequisite course numbers in file order
func (c Course) Prereqs() []string {
	if len(c.Prerequisites) == 0 {
		return nil
	}
	p := make([]string, len(c.Prerequisites))
	copy(p, c.Prerequisites)
	return p
}

// HasPrerequisites reports whether the course lists any prerequisite
func (c Course) HasPrerequisites() bool {
	return len(c.Prerequisites) > 0
}

// String returns the listing form "<number>, <name>"
func (c Course) String() string {
	return c.Number + ", " + c.Name
}

// PrerequisiteList joins the prerequisites with single spaces
func (c Course) PrerequisiteList() string {
	return strings.Join(c.Prerequisites, " ")
}
