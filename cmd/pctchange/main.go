// Pctchange is an interactive percent change calculator for the terminal.
//
// It shows three fields, "initial", "final" and "percent change". Typing
// numbers into the first two fills in the third as (final - initial) / |initial|.
// Characters that would not leave a valid number are dropped as you type.
//
// Usage:
//
//	pctchange [command] [flags]
//
// Running without arguments launches the interactive calculator. Tab and
// Shift+Tab move between fields, Esc quits and prints the input values.
// See 'pctchange --help' for available commands.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/muurk/pctchange/internal/logging"
	"github.com/muurk/pctchange/internal/version"
)

func main() {
	err := rootCmd.Execute()
	logging.Sync()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "pctchange",
	Short: "Interactive percent change calculator",
	Long: `An interactive terminal calculator for percent change.

Enter an initial and a final value; the percent change field updates as
you type. The result is a ratio: 100 -> 150 shows 0.5.

Keys:
  tab        next field
  shift+tab  previous field
  esc        quit and print the initial and final values`,
	Version:       version.Version,
	SilenceUsage:  true,
	SilenceErrors: true,
	Args:          cobra.NoArgs,
	RunE:          runCalculator,
}

func init() {
	// Disable automatic completion command generation
	rootCmd.CompletionOptions.DisableDefaultCmd = true

	rootCmd.AddCommand(versionCmd)
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Fprintf(cmd.OutOrStdout(), "pctchange %s\n", version.Full())
	},
}
