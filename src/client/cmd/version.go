package cmd

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/apimgr/courseplanner/src/common/version"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Show version information",
	RunE: func(cmd *cobra.Command, args []string) error {
		info := version.Get()
		w := cmd.OutOrStdout()

		if getOutputFormat() == "json" {
			enc := json.NewEncoder(w)
			enc.SetIndent("", "  ")
			return enc.Encode(info)
		}

		fmt.Fprintf(w, "%s %s\n", getBinaryName(), info)
		fmt.Fprintf(w, "\nBuild Info:\n")
		fmt.Fprintf(w, "  Go: %s\n", info.GoVersion)
		fmt.Fprintf(w, "  OS/Arch: %s/%s\n", info.OS, info.Arch)
		fmt.Fprintf(w, "  Commit: %s\n", info.Commit)
		fmt.Fprintf(w, "  Date: %s\n", info.BuildDate)
		return nil
	},
}
