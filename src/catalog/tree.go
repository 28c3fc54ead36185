package catalog

import "iter"

// none marks an absent child. The root always sits at index 0 and is never
// the child of another node, so 0 is free to use as the sentinel.
const none int32 = 0

type node struct {
	course Course
	left   int32
	right  int32
}

// Tree is an unbalanced binary search tree of courses keyed by course number.
//
// Nodes are kept in one slice and link to their children by index; each
// node is owned by the slot in its parent that points at it, and the
// slice is owned by the Tree. Keys compare byte-wise. A key equal to the
// node's key is routed right, so inserting an existing number adds a
// second node instead of replacing the first one.
//
// All operations are iterative. Sorted input degrades the tree to a list
// and the walks to O(n), without growing the call stack.
//
// The zero value is an empty tree ready to use. A Tree is not safe for
// concurrent use.
type Tree struct {
	nodes []node
}

// NewTree returns an empty tree
func NewTree() *Tree {
	return &Tree{}
}

// Insert adds a copy of c as a new leaf
func (t *Tree) Insert(c Course) {
	c = c.clone()
	idx := int32(len(t.nodes))
	t.nodes = append(t.nodes, node{course: c})
	if idx == 0 {
		return
	}

	cur := int32(0)
	for {
		n := &t.nodes[cur]
		if c.Number < n.course.Number {
			if n.left == none {
				n.left = idx
				return
			}
			cur = n.left
		} else {
			if n.right == none {
				n.right = idx
				return
			}
			cur = n.right
		}
	}
}

// Lookup returns the course stored under number.
// When the number was inserted more than once, the first-inserted course
// is returned: later copies always sit in the right subtree of the first.
func (t *Tree) Lookup(number string) (Course, bool) {
	n, ok := t.Find(number)
	if !ok {
		return Course{}, false
	}
	return n.Course(), true
}

// Find returns the node that Lookup would stop at
func (t *Tree) Find(number string) (Node, bool) {
	if len(t.nodes) == 0 {
		return Node{}, false
	}

	cur := int32(0)
	for {
		n := &t.nodes[cur]
		if n.course.Number == number {
			return Node{tree: t, idx: cur}, true
		}
		next := n.right
		if number < n.course.Number {
			next = n.left
		}
		if next == none {
			return Node{}, false
		}
		cur = next
	}
}

// All yields every course in ascending number order.
// Each call starts a fresh in-order walk; breaking out of the loop early is fine.
func (t *Tree) All() iter.Seq[Course] {
	return func(yield func(Course) bool) {
		if len(t.nodes) == 0 {
			return
		}

		stack := make([]int32, 0, 32)
		cur, ok := int32(0), true
		for ok || len(stack) > 0 {
			for ok {
				stack = append(stack, cur)
				left := t.nodes[cur].left
				cur, ok = left, left != none
			}

			cur = stack[len(stack)-1]
			stack = stack[:len(stack)-1]
			if !yield(t.nodes[cur].course.clone()) {
				return
			}

			right := t.nodes[cur].right
			cur, ok = right, right != none
		}
	}
}

// Len returns the number of nodes, duplicates included
func (t *Tree) Len() int {
	return len(t.nodes)
}

// Empty reports whether nothing has been inserted
func (t *Tree) Empty() bool {
	return len(t.nodes) == 0
}

// Height returns the number of nodes on the longest root-to-leaf path.
// An empty tree has height 0.
func (t *Tree) Height() int {
	if len(t.nodes) == 0 {
		return 0
	}

	height := 0
	level := []int32{0}
	for len(level) > 0 {
		height++
		var next []int32
		for _, i := range level {
			if l := t.nodes[i].left; l != none {
				next = append(next, l)
			}
			if r := t.nodes[i].right; r != none {
				next = append(next, r)
			}
		}
		level = next
	}
	return height
}

// Root returns the root node
func (t *Tree) Root() (Node, bool) {
	if len(t.nodes) == 0 {
		return Node{}, false
	}
	return Node{tree: t, idx: 0}, true
}

// Node is a read-only handle on one tree node.
// It stays valid while the tree lives; inserts never move existing nodes
// out of their parent slot.
type Node struct {
	tree *Tree
	idx  int32
}

// Course returns a copy of the course held by the node
func (n Node) Course() Course {
	return n.tree.nodes[n.idx].course.clone()
}

// Left returns the left child
func (n Node) Left() (Node, bool) {
	return n.child(n.tree.nodes[n.idx].left)
}

// Right returns the right child
func (n Node) Right() (Node, bool) {
	return n.child(n.tree.nodes[n.idx].right)
}

func (n Node) child(idx int32) (Node, bool) {
	if idx == none {
		return Node{}, false
	}
	return Node{tree: n.tree, idx: idx}, true
}
