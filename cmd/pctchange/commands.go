package main

import (
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/muurk/pctchange/internal/calculator"
	"github.com/muurk/pctchange/internal/config"
	"github.com/muurk/pctchange/internal/logging"
	"github.com/muurk/pctchange/internal/numeric"
	"github.com/muurk/pctchange/internal/ui"
)

// Command flags
var (
	configPath   string
	logLevel     string
	logFile      string
	noColor      bool
	initialValue string
	finalValue   string
	outputFormat string
	forceInit    bool
)

func init() {
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "Preferences file (default: OS config dir)")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "", "Log level: debug, info, warn, error (default: silent)")
	rootCmd.PersistentFlags().StringVar(&logFile, "log-file", "", "Log file path (default: pctchange.log in the config dir)")
	rootCmd.PersistentFlags().BoolVar(&noColor, "no-color", false, "Disable colors")

	rootCmd.Flags().StringVar(&initialValue, "initial", "", "Prefill the initial value")
	rootCmd.Flags().StringVar(&finalValue, "final", "", "Prefill the final value")

	rootCmd.AddCommand(computeCmd)
	rootCmd.AddCommand(configCmd)
}

// setup loads preferences and configures logging and colors.
// Flags take precedence over PCTCHANGE_LOG_LEVEL, which takes precedence
// over the preferences file.
func setup() (*config.Preferences, error) {
	prefs, err := config.Load(configPath)
	if err != nil {
		return nil, fmt.Errorf("failed to load preferences: %w", err)
	}

	level := logLevel
	if level == "" {
		level = os.Getenv(logging.LogLevelEnvVar)
	}
	if err := logging.CheckLevel(level); err != nil {
		return nil, err
	}
	if level == "" {
		level = prefs.Logging.Level
	}

	file := logFile
	if file == "" {
		file = prefs.Logging.File
	}
	if file == "" && level != "" {
		if file, err = config.DefaultLogPath(); err != nil {
			return nil, err
		}
	}

	if err := logging.Initialize(level, file); err != nil {
		return nil, err
	}

	if noColor {
		lipgloss.SetColorProfile(termenv.Ascii)
	}

	return prefs, nil
}

func runCalculator(cmd *cobra.Command, args []string) error {
	prefs, err := setup()
	if err != nil {
		return err
	}

	model, err := calculator.New(calculator.Options{
		Theme:      prefs.Theme,
		FieldWidth: prefs.Display.FieldWidth,
		Initial:    initialValue,
		Final:      finalValue,
	})
	if err != nil {
		return err
	}

	logging.LogSession("start",
		zap.String("initial", initialValue),
		zap.String("final", finalValue),
	)

	p := tea.NewProgram(model, tea.WithAltScreen(), tea.WithMouseCellMotion())
	finalModel, err := p.Run()
	if err != nil {
		logging.Error("Calculator terminated", zap.Error(err))
		return fmt.Errorf("calculator error: %w", err)
	}

	result, ok := finalModel.(calculator.Model)
	if !ok {
		return fmt.Errorf("calculator error: unexpected model %T", finalModel)
	}

	return result.Report(cmd.OutOrStdout())
}

// computeCmd calculates percent change without the interactive UI
var computeCmd = &cobra.Command{
	Use:   "compute <initial> <final>",
	Short: "Print the percent change between two values",
	Long: `Compute the percent change between two values and print it.

Uses the same number rules and formatting as the interactive calculator:
the result is (final - initial) / |initial|, not multiplied by 100, and an
initial value of 0 gives +Inf, -Inf or NaN.`,
	Example: `  # 100 -> 150 prints 0.5
  pctchange compute 100 150

  # Negative values need "--" so they are not read as flags
  pctchange compute -- -20 -10

  # Styled result box
  pctchange compute 80 100 --format box`,
	Args: cobra.ExactArgs(2),
	RunE: runCompute,
}

func init() {
	computeCmd.Flags().StringVar(&outputFormat, "format", "plain", "Output format (plain, box)")
}

func runCompute(cmd *cobra.Command, args []string) error {
	if _, err := setup(); err != nil {
		return err
	}

	if outputFormat != "plain" && outputFormat != "box" {
		return fmt.Errorf("unknown format %q (expected plain or box)", outputFormat)
	}

	result, err := numeric.Compute(args[0], args[1])

	if outputFormat == "plain" {
		if err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), result)
		return nil
	}

	printer := ui.NewPrinter(cmd.OutOrStdout())
	if err != nil {
		printer.PrintResult(ui.NewFailureResult("Cannot compute percent change", err))
		return err
	}
	printer.PrintResult(ui.NewSuccessResult("Percent change",
		ui.Detail{Key: "Initial", Value: args[0]},
		ui.Detail{Key: "Final", Value: args[1]},
		ui.Detail{Key: "Percent change", Value: result},
	))
	return nil
}

// configCmd groups preferences file commands
var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Manage the preferences file",
}

var configInitCmd = &cobra.Command{
	Use:   "init",
	Short: "Write a default preferences file",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		path, err := config.CreateDefaultConfig(configPath, forceInit)
		if err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Wrote %s\n", path)
		return nil
	},
}

var configPathCmd = &cobra.Command{
	Use:   "path",
	Short: "Print the preferences file location",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		path, err := config.ResolvePath(configPath)
		if err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), path)
		return nil
	},
}

var configShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Print the effective preferences",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		prefs, err := setup()
		if err != nil {
			return err
		}
		data, err := prefs.Marshal()
		if err != nil {
			return err
		}
		fmt.Fprint(cmd.OutOrStdout(), string(data))
		return nil
	},
}

func init() {
	configInitCmd.Flags().BoolVar(&forceInit, "force", false, "Overwrite an existing file")

	configCmd.AddCommand(configInitCmd)
	configCmd.AddCommand(configPathCmd)
	configCmd.AddCommand(configShowCmd)
}
