package main

import (
	"github.com/spf13/cobra"

	"mixmaster/internal/tui"
)

var tuiCmd = &cobra.Command{
	Use:   "tui",
	Short: "Browse recipes in the interactive terminal UI",
	Long: `Open the full-screen terminal UI: live name/spirit search, spirit and
favorites filters, a detail pane with scaled ingredients and advisor
notes, card export, and a surprise picker.

Session logs go to the logs directory under the state dir; colors can
be overridden through theme.yaml there.`,
	Run: runTUI,
}

func init() {
	rootCmd.AddCommand(tuiCmd)
}

func runTUI(cmd *cobra.Command, args []string) {
	// Logs must not write to the terminal the TUI owns
	logger := newLogger(formatFlag)
	engine := mustGetEngine(logger)
	defer engine.Close()

	app, err := tui.New(engine, getConfig())
	if err != nil {
		fail(err)
	}
	if err := app.Run(); err != nil {
		fail(err)
	}
}
