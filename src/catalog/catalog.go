package catalog

import (
	"fmt"
	"io"
	"iter"
	"os"
)

// DefaultSource is the catalog file loaded when nothing else is configured
const DefaultSource = "CS 300 ABCU_Advising_Program_Input.csv"

// Catalog owns the course tree.
// Loads are cumulative: every successful load inserts into the same tree
// and nothing is ever removed. Loading the same file twice therefore holds
// every course twice, and lookups keep returning the first copy.
//
// The zero value is an empty catalog ready to use.
type Catalog struct {
	tree Tree
}

// New returns an empty catalog
func New() *Catalog {
	return &Catalog{}
}

// Load reads the catalog file at path in two passes: every line is parsed
// and validated first, then the accepted courses are inserted in file order.
// When the file cannot be opened or read the error wraps ErrSourceUnreadable
// and the tree is not modified.
func (c *Catalog) Load(path string) (*LoadReport, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrSourceUnreadable, err)
	}
	defer f.Close()

	return c.LoadFrom(f, path)
}

// LoadFrom is Load on an already open reader; source names it in the report
func (c *Catalog) LoadFrom(r io.Reader, source string) (*LoadReport, error) {
	// Pass 1: parse and validate
	courses, rejected, err := Parse(r)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %w", ErrSourceUnreadable, source, err)
	}

	// Pass 2: insert in arrival order; the order decides the tree shape
	for _, course := range courses {
		c.tree.Insert(course)
	}

	return &LoadReport{
		Source:   source,
		Lines:    len(courses) + len(rejected),
		Accepted: len(courses),
		Rejected: rejected,
	}, nil
}

// Lookup finds a course by number
func (c *Catalog) Lookup(number string) (Course, bool) {
	return c.tree.Lookup(number)
}

// All yields the courses in ascending number order
func (c *Catalog) All() iter.Seq[Course] {
	return c.tree.All()
}

// Len returns how many courses are held, duplicates included
func (c *Catalog) Len() int {
	return c.tree.Len()
}

// Empty reports whether no course has been loaded yet
func (c *Catalog) Empty() bool {
	return c.tree.Empty()
}

// Tree exposes the underlying tree for read-only inspection
func (c *Catalog) Tree() *Tree {
	return &c.tree
}
