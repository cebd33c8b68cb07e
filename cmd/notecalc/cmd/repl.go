package cmd

import (
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/notecalc/notecalc/cmd/notecalc/tui"
)

func runREPL() {
	rates, err := loadRates("USD")
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	m := tui.New("", loadSettings(), rates)
	runTUI(m)
}

func runEdit(filename string) {
	rates, err := loadRates("USD")
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	var m tui.Model
	if filename != "" {
		if err := validateFilePath(filename); err != nil {
			fmt.Fprintf(os.Stderr, "Error loading file: %v\n", err)
			os.Exit(1)
		}
		content, err := os.ReadFile(filename)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error reading file: %v\n", err)
			os.Exit(1)
		}
		m = tui.NewWithFile(filename, string(content), loadSettings(), rates)
	} else {
		m = tui.New("", loadSettings(), rates)
	}

	runTUI(m)
}

func runTUI(m tui.Model) {
	p := tea.NewProgram(m, tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		fmt.Fprintf(os.Stderr, "TUI error: %v\n", err)
		os.Exit(1)
	}
}
