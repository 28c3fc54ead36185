package cmd

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"
	"github.com/xlab/treeprint"

	"github.com/apimgr/courseplanner/src/catalog"
	"github.com/apimgr/courseplanner/src/common/terminal"
)

var treeCmd = &cobra.Command{
	Use:   "tree",
	Short: "Print the shape of the course search tree",
	Long: `Print the binary search tree built from the catalog file.
Left children sort before their parent; right children sort after it or
carry the same course number.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		c, _, err := loadCatalog(cmd)
		if err != nil {
			return err
		}
		printTree(cmd.OutOrStdout(), c.Tree(), terminal.GetSymbols())
		return nil
	},
}

type pending struct {
	branch treeprint.Tree
	node   catalog.Node
}

// printTree renders t with one branch per child, left before right.
// The walk keeps its own stack; sorted catalogs make the tree as deep as
// it is long.
func printTree(w io.Writer, t *catalog.Tree, sym terminal.Symbols) {
	root, ok := t.Root()
	if !ok {
		fmt.Fprintln(w, "No courses loaded.")
		return
	}

	out := treeprint.NewWithRoot(root.Course().String())
	stack := []pending{{branch: out, node: root}}
	for len(stack) > 0 {
		p := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		if left, ok := p.node.Left(); ok {
			b := p.branch.AddBranch(sym.Left + " " + left.Course().String())
			stack = append(stack, pending{branch: b, node: left})
		}
		if right, ok := p.node.Right(); ok {
			b := p.branch.AddBranch(sym.Right + " " + right.Course().String())
			stack = append(stack, pending{branch: b, node: right})
		}
	}

	fmt.Fprint(w, out.String())
	fmt.Fprintf(w, "\n%d courses, height %d\n", t.Len(), t.Height())
}
