package cmd

import (
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/apimgr/courseplanner/src/catalog"
	"github.com/apimgr/courseplanner/src/menu"
)

var menuCmd = &cobra.Command{
	Use:   "menu",
	Short: "Start the numbered menu (default)",
	Long: `Start the numbered menu on stdin/stdout.

  1  load the catalog file
  2  print all courses in course number order
  3  print one course
  9  exit`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runMenu(cmd)
	},
}

func runMenu(cmd *cobra.Command) error {
	src := getSource()
	slog.Info("starting menu", "source", src)

	shell := menu.New(catalog.New(), src, cmd.InOrStdin(), cmd.OutOrStdout())
	return shell.Run()
}
