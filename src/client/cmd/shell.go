package cmd

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"
)

var shells = []string{"bash", "zsh", "fish", "powershell", "pwsh"}

// initLines are the rc-file snippets that load the completion script
var initLines = map[string]string{
	"bash":       "source <(%s shell completions bash)\n",
	"zsh":        "source <(%s shell completions zsh)\n",
	"fish":       "%s shell completions fish | source\n",
	"powershell": "Invoke-Expression (& %s shell completions powershell)\n",
}

var shellCmd = &cobra.Command{
	Use:   "shell",
	Short: "Shell integration commands",
}

var completionsCmd = &cobra.Command{
	Use:   "completions [bash|zsh|fish|powershell]",
	Short: "Generate shell completions",
	Long: `Generate the completion script for a shell, detected from $SHELL when omitted.
Completing "show" offers the course numbers of the configured catalog.

Example:
  ` + getBinaryName() + ` shell completions zsh > ~/.zsh/completions/_` + getBinaryName(),
	Args:      cobra.MaximumNArgs(1),
	ValidArgs: shells,
	RunE: func(cmd *cobra.Command, args []string) error {
		return printCompletions(cmd.OutOrStdout(), shellArg(args))
	},
}

var initCmd = &cobra.Command{
	Use:   "init [bash|zsh|fish|powershell]",
	Short: "Generate shell init command",
	Long: `Print the line that enables completions, for eval in a shell rc file:
  eval "$(` + getBinaryName() + ` shell init)"`,
	Args:      cobra.MaximumNArgs(1),
	ValidArgs: shells,
	RunE: func(cmd *cobra.Command, args []string) error {
		return printInit(cmd.OutOrStdout(), shellArg(args))
	},
}

func init() {
	shellCmd.AddCommand(completionsCmd)
	shellCmd.AddCommand(initCmd)
}

func shellArg(args []string) string {
	if len(args) > 0 {
		return args[0]
	}
	return detectShell()
}

// detectShell reads the shell name from $SHELL, bash when unset
func detectShell() string {
	shellPath := os.Getenv("SHELL")
	if shellPath == "" {
		return "bash"
	}
	// $SHELL may hold a Windows path on any host
	base := filepath.Base(shellPath)
	if idx := strings.LastIndex(base, "\\"); idx >= 0 {
		base = base[idx+1:]
	}
	return base
}

func unsupportedShell(shell string) error {
	return fmt.Errorf("unsupported shell: %s\nSupported: bash, zsh, fish, powershell", shell)
}

func printCompletions(w io.Writer, shell string) error {
	switch shell {
	case "bash":
		return rootCmd.GenBashCompletionV2(w, true)
	case "zsh":
		return rootCmd.GenZshCompletion(w)
	case "fish":
		return rootCmd.GenFishCompletion(w, true)
	case "powershell", "pwsh":
		return rootCmd.GenPowerShellCompletionWithDesc(w)
	}
	return unsupportedShell(shell)
}

func printInit(w io.Writer, shell string) error {
	if shell == "pwsh" {
		shell = "powershell"
	}
	line, ok := initLines[shell]
	if !ok {
		return unsupportedShell(shell)
	}
	fmt.Fprintf(w, line, getBinaryName())
	return nil
}
