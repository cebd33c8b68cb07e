package cmd

import (
	"github.com/spf13/cobra"
)

var editCmd = &cobra.Command{
	Use:   "edit [file.nc]",
	Short: "Open the notecalc document editor",
	Long: `Open the split-pane document editor for working with notecalc files.

The editor shows source on the left and computed results on the right.

Examples:
  notecalc edit                Open editor with an empty document
  notecalc edit budget.nc      Open a specific file in the editor`,
	Args: cobra.MaximumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		if len(args) > 0 {
			runEdit(args[0])
		} else {
			runEdit("")
		}
	},
}

func init() {
	rootCmd.AddCommand(editCmd)
}
