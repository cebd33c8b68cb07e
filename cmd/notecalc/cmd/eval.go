package cmd

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/notecalc/notecalc"
	"github.com/notecalc/notecalc/export"
)

var evalVerbose bool

var evalCmd = &cobra.Command{
	Use:   "eval [file.nc]",
	Short: "Evaluate notecalc source and print the result",
	Long: `Evaluate a notecalc file or stdin and print one result per line.

Examples:
  notecalc eval calc.nc           Evaluate file and print result
  notecalc eval -v calc.nc        Evaluate with source lines interleaved
  echo "x = 10" | notecalc eval    Evaluate from stdin`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return runEval(args)
	},
}

func init() {
	evalCmd.Flags().BoolVarP(&evalVerbose, "verbose", "v", false, "Interleave source lines with results")
	rootCmd.AddCommand(evalCmd)
}

func runEval(args []string) error {
	var input string

	if len(args) > 0 {
		filename := args[0]
		if err := validateFilePath(filename); err != nil {
			return fmt.Errorf("invalid file: %w", err)
		}
		b, err := os.ReadFile(filename)
		if err != nil {
			return fmt.Errorf("read file: %w", err)
		}
		input = string(b)
	} else {
		b, err := io.ReadAll(os.Stdin)
		if err != nil {
			return fmt.Errorf("read stdin: %w", err)
		}
		input = string(b)
		if strings.TrimSpace(input) == "" {
			return fmt.Errorf("no input provided")
		}
	}

	rates, err := loadRates("USD")
	if err != nil {
		return err
	}

	doc := notecalc.Calculate(input, loadSettings(), rates)

	_, includeErrors := outputOptions()
	formatter := export.GetFormatter("text", "")
	opts := export.Options{Verbose: evalVerbose, IncludeErrors: includeErrors}

	if err := formatter.Format(os.Stdout, doc, opts); err != nil {
		return fmt.Errorf("format error: %w", err)
	}

	return nil
}
