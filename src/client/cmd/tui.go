package cmd

import (
	"errors"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/apimgr/courseplanner/src/catalog"
	"github.com/apimgr/courseplanner/src/client/tui"
	"github.com/apimgr/courseplanner/src/common/terminal"
	"github.com/apimgr/courseplanner/src/common/theme"
)

var errNoTerminal = errors.New("tui needs a terminal; use the menu or list commands instead")

var isInteractive = terminal.IsInteractive

var tuiCmd = &cobra.Command{
	Use:   "tui",
	Short: "Launch interactive TUI mode",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runTUI(cmd)
	},
}

func runTUI(cmd *cobra.Command) error {
	if !isInteractive() {
		return errNoTerminal
	}
	th, err := theme.Resolve(viper.GetString("output.theme"))
	if err != nil {
		return err
	}
	return tui.Run(catalog.New(), getSource(), tui.Options{Plain: !useColor(), Theme: th})
}
