package cmd

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"strings"

	"github.com/spf13/cobra"

	"github.com/apimgr/courseplanner/src/catalog"
	"github.com/apimgr/courseplanner/src/menu"
)

var showCmd = &cobra.Command{
	Use:   "show <number>",
	Short: "Print one course and its prerequisites",
	Long: `Print one course and its prerequisites.
Course numbers are case-sensitive. Exits with code 1 if the course is not found.`,
	Args:              cobra.ExactArgs(1),
	ValidArgsFunction: completeCourseNumbers,
	RunE: func(cmd *cobra.Command, args []string) error {
		c, _, err := loadCatalog(cmd)
		if err != nil {
			return err
		}

		course, ok := c.Lookup(args[0])
		if !ok {
			slog.Debug("course not found", "number", args[0])
			return fmt.Errorf("course not found: %s", args[0])
		}

		w := cmd.OutOrStdout()
		switch getOutputFormat() {
		case "json":
			enc := json.NewEncoder(w)
			enc.SetIndent("", "  ")
			return enc.Encode(course)
		default:
			fmt.Fprint(w, menu.Detail(course))
		}
		return nil
	},
}

// completeCourseNumbers offers the numbers of the configured catalog,
// each once, with the course name as description
func completeCourseNumbers(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
	if len(args) > 0 {
		return nil, cobra.ShellCompDirectiveNoFileComp
	}

	c := catalog.New()
	if _, err := c.Load(getSource()); err != nil {
		return nil, cobra.ShellCompDirectiveNoFileComp
	}

	var (
		numbers []string
		last    string
	)
	for course := range c.All() {
		if course.Number == last || !strings.HasPrefix(course.Number, toComplete) {
			continue
		}
		last = course.Number
		numbers = append(numbers, course.Number+"\t"+course.Name)
	}
	return numbers, cobra.ShellCompDirectiveNoFileComp
}
