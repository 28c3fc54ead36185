package cmd

import (
	"encoding/json"
	"fmt"
	"io"
	"slices"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/apimgr/courseplanner/src/catalog"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "Print all courses in course number order",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		c, _, err := loadCatalog(cmd)
		if err != nil {
			return err
		}
		return printList(cmd.OutOrStdout(), c, getOutputFormat())
	},
}

func printList(w io.Writer, c *catalog.Catalog, format string) error {
	switch format {
	case "json":
		courses := slices.Collect(c.All())
		if courses == nil {
			courses = []catalog.Course{}
		}
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(courses)
	case "plain":
		if c.Empty() {
			fmt.Fprintln(w, "No courses loaded.")
			return nil
		}
		for course := range c.All() {
			fmt.Fprintln(w, course.String())
		}
	default:
		if c.Empty() {
			fmt.Fprintln(w, "No courses loaded.")
			return nil
		}
		tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
		fmt.Fprintf(tw, "NUMBER\tNAME\tPREREQUISITES\n")
		for course := range c.All() {
			prereqs := strings.Join(course.Prerequisites, ", ")
			if prereqs == "" {
				prereqs = "-"
			}
			fmt.Fprintf(tw, "%s\t%s\t%s\n", course.Number, course.Name, prereqs)
		}
		tw.Flush()
		fmt.Fprintf(w, "\nTotal: %d courses\n", c.Len())
	}
	return nil
}
