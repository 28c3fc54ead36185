// Package cmd implements the courseplanner commands
package cmd

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/lithammer/dedent"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/apimgr/courseplanner/src/catalog"
	"github.com/apimgr/courseplanner/src/client/paths"
)

const envPrefix = "COURSEPLANNER"

var (
	cfgFile string
	source  string
	output  string
	noColor bool
	tuiMode bool

	// setup runs once the config is read, before any command body
	setup func() error
)

var rootCmd = &cobra.Command{
	Use:   getBinaryName(),
	Short: "Browse a course catalog",
	Long: strings.TrimSpace(dedent.Dedent(`
		courseplanner loads a course catalog from a comma separated file and
		answers listing and lookup queries about it.

		Run without a command it starts the numbered menu on stdin/stdout.
		Each catalog line reads: number,name[,prerequisite...]`)),
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		if setup == nil {
			return nil
		}
		return setup()
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		if tuiMode {
			return runTUI(cmd)
		}
		return runMenu(cmd)
	},
}

// Execute runs the root command. prepare is called after the config file
// is read and before the selected command runs.
func Execute(prepare func() error) error {
	setup = prepare
	return rootCmd.Execute()
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().StringVarP(&cfgFile, "config", "c", "", "config file path")
	rootCmd.PersistentFlags().StringVarP(&source, "source", "s", "", "catalog file (default from config, then "+catalog.DefaultSource+")")
	rootCmd.PersistentFlags().StringVarP(&output, "output", "o", "", "output format: table, plain, json")
	rootCmd.PersistentFlags().BoolVar(&noColor, "no-color", false, "disable colored output")
	rootCmd.PersistentFlags().BoolVar(&tuiMode, "tui", false, "launch TUI mode")

	rootCmd.AddCommand(menuCmd)
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(showCmd)
	rootCmd.AddCommand(loadCmd)
	rootCmd.AddCommand(treeCmd)
	rootCmd.AddCommand(configCmd)
	rootCmd.AddCommand(versionCmd)
	rootCmd.AddCommand(tuiCmd)
	rootCmd.AddCommand(shellCmd)
}

func initConfig() {
	if cfgFile != "" {
		path, err := paths.ResolveConfigPath(cfgFile)
		if err != nil {
			path = cfgFile
		}
		viper.SetConfigFile(path)
	} else {
		viper.AddConfigPath(paths.ConfigDir())
		viper.SetConfigName("cli")
		viper.SetConfigType("yaml")
	}

	setDefaults()

	// COURSEPLANNER_CATALOG_SOURCE overrides catalog.source
	viper.SetEnvPrefix(envPrefix)
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv()

	viper.ReadInConfig()
}

func setDefaults() {
	viper.SetDefault("catalog.source", catalog.DefaultSource)
	viper.SetDefault("output.format", "table")
	viper.SetDefault("output.color", "auto")
	viper.SetDefault("output.theme", "auto")
	viper.SetDefault("logging.level", "warn")
	viper.SetDefault("logging.file", "")
	viper.SetDefault("logging.max_size", 10)
	viper.SetDefault("logging.max_files", 5)
}

func getBinaryName() string {
	return filepath.Base(os.Args[0])
}

func getOutputFormat() string {
	if output != "" {
		return output
	}
	if f := viper.GetString("output.format"); f != "" {
		return f
	}
	return "table"
}

// getSource returns the catalog file to load: --source, then config
func getSource() string {
	src := source
	if src == "" {
		src = viper.GetString("catalog.source")
	}
	if src == "" {
		src = catalog.DefaultSource
	}
	return paths.ResolveSource(src)
}

// useColor decides whether styled output is wanted
func useColor() bool {
	if noColor || os.Getenv("NO_COLOR") != "" {
		return false
	}
	switch viper.GetString("output.color") {
	case "never", "false", "off":
		return false
	default:
		return true
	}
}

// loadCatalog loads the configured source into a fresh catalog.
// Rejected lines are reported on the command's stderr; an unreadable
// source is an error.
func loadCatalog(cmd *cobra.Command) (*catalog.Catalog, *catalog.LoadReport, error) {
	src := getSource()

	c := catalog.New()
	report, err := c.Load(src)
	if err != nil {
		return nil, nil, fmt.Errorf("load %s: %w", src, err)
	}

	for _, le := range report.Rejected {
		fmt.Fprintf(cmd.ErrOrStderr(), "Warning: %s: %v\n", src, le)
	}
	return c, report, nil
}
