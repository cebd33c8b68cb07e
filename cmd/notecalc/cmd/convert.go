package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/notecalc/notecalc"
	"github.com/notecalc/notecalc/export"
)

var (
	convertFormat string
	convertOutput string
)

var convertCmd = &cobra.Command{
	Use:   "convert <file.nc>",
	Short: "Convert notecalc source to another format",
	Long: `Convert a notecalc file to HTML, Markdown, JSON, or text.

Examples:
  notecalc convert doc.nc --to=html              Convert to HTML (stdout)
  notecalc convert doc.nc --to=md -o doc.md      Convert to Markdown file
  notecalc convert doc.nc --to=json              Convert to JSON`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return runConvert(args[0])
	},
}

func init() {
	convertCmd.Flags().StringVarP(&convertFormat, "to", "t", "", "Output format: html, md, json, text (required)")
	convertCmd.Flags().StringVarP(&convertOutput, "output", "o", "", "Write to file instead of stdout")
	_ = convertCmd.MarkFlagRequired("to")
	rootCmd.AddCommand(convertCmd)
}

func runConvert(filename string) error {
	if err := validateFilePath(filename); err != nil {
		return fmt.Errorf("invalid file: %w", err)
	}

	content, err := os.ReadFile(filename)
	if err != nil {
		return fmt.Errorf("read file: %w", err)
	}

	validFormats := map[string]bool{"html": true, "md": true, "json": true, "text": true}
	if !validFormats[convertFormat] {
		return fmt.Errorf("unknown format: %s (valid: html, md, json, text)", convertFormat)
	}

	rates, err := loadRates("USD")
	if err != nil {
		return err
	}
	doc := notecalc.Calculate(string(content), loadSettings(), rates)

	formatter := export.GetFormatter(convertFormat, convertOutput)

	var out *os.File
	if convertOutput != "" {
		out, err = os.Create(convertOutput)
		if err != nil {
			return fmt.Errorf("create output file: %w", err)
		}
		defer out.Close()
	} else {
		out = os.Stdout
	}

	verbose, includeErrors := outputOptions()
	opts := export.Options{Verbose: verbose, IncludeErrors: includeErrors}
	if err := formatter.Format(out, doc, opts); err != nil {
		return fmt.Errorf("format error: %w", err)
	}

	return nil
}
