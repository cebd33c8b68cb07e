package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/notecalc/notecalc"
	"github.com/notecalc/notecalc/cmd/notecalc/config"
	"github.com/notecalc/notecalc/currency"
)

var ratesPath string
var settingsPath string

var rootCmd = &cobra.Command{
	Use:   "notecalc [file]",
	Short: "notecalc - a notepad calculator for prose, units, and currency",
	Long: `notecalc evaluates a free-form document line by line: headings and
prose pass through untouched, expressions and assignments are computed
against bindings made by earlier lines in the same document.

Examples:
  notecalc                         Start the interactive REPL
  notecalc budget.nc                Open a file in the editor
  notecalc eval calc.nc              Evaluate a file and print results
  notecalc eval < input.nc           Evaluate from stdin
  notecalc convert doc.nc --to=html  Convert to HTML`,
	Args: cobra.MaximumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		if len(args) > 0 {
			runEdit(args[0])
			return
		}
		runREPL()
	},
}

// Execute runs the root command.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.CompletionOptions.DisableDefaultCmd = true
	rootCmd.PersistentFlags().StringVar(&ratesPath, "rates", "", "path to an exchange-rates.json snapshot")
	rootCmd.PersistentFlags().StringVar(&settingsPath, "settings", "", "path to a notecalc.yaml settings file")
}

// loadSettings builds notecalc.Settings from --settings, if given, or
// from the defaults otherwise.
func loadSettings() notecalc.Settings {
	if settingsPath == "" {
		return notecalc.DefaultSettings().Normalize()
	}
	s, err := config.LoadSettingsFile(settingsPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "notecalc: %v, using defaults\n", err)
		return notecalc.DefaultSettings().Normalize()
	}
	return s
}

// outputOptions builds export.Options from the loaded host config.
func outputOptions() (verbose, includeErrors bool) {
	cfg, err := config.Load()
	if err != nil || cfg == nil {
		return false, true
	}
	return cfg.Formatter.Verbose, cfg.Formatter.IncludeErrors
}

// loadRates reads --rates, if given, into a currency.Rates snapshot.
// A missing flag is not an error: currency conversion then fails
// per-line with ExchangeRateUnavailable rather than at startup.
func loadRates(base string) (*currency.Rates, error) {
	if ratesPath == "" {
		return nil, nil
	}
	data, err := os.ReadFile(ratesPath)
	if err != nil {
		return nil, fmt.Errorf("read rates file: %w", err)
	}
	return notecalc.LoadRates(data, base)
}
