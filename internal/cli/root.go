package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

const version = "0.3.0"

// Exit codes
const (
	ExitSuccess    = 0
	ExitDiff       = 1
	ExitUsageError = 2
	ExitIOError    = 3
	ExitDataError  = 4
)

var rootCmd = &cobra.Command{
	Use:   "procon",
	Short: "Convert between properties, YAML, JSON and TOML",
	Long: "Procon converts configuration files between Java-style .properties, YAML and JSON, " +
		"and can emit TOML. Dotted property keys become nested structures and back.",
	SilenceUsage: true,
}

// Run executes the root command and returns an exit code.
func Run() int {
	rootCmd.AddCommand(propertiesCmd)
	rootCmd.AddCommand(jsonCmd)
	rootCmd.AddCommand(yamlCmd)
	rootCmd.AddCommand(tomlCmd)
	rootCmd.AddCommand(configCmd)
	rootCmd.AddCommand(versionCmd)

	if err := rootCmd.Execute(); err != nil {
		// Cobra already prints the error
		return ExitUsageError
	}

	return exitCode
}

// exitCode is set by command handlers to control the process exit code.
var exitCode = ExitSuccess

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print procon version",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Fprintf(cmd.OutOrStdout(), "procon version %s\n", version)
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "", "Log level (debug, info, warn, error)")
	rootCmd.PersistentFlags().BoolVar(&flagNoColor, "no-color", false, "Disable coloured output")
}
