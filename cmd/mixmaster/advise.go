package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var adviseCmd = &cobra.Command{
	Use:   "advise <name>",
	Short: "Serving and tasting notes for a recipe",
	Long: `Generate serving guidance (strength band, safety reminders, sugar
warnings) and tasting notes (spirit profile, flavor tag descriptions)
for a recipe.

Examples:
  mixmaster advise negroni
  mixmaster advise "Espresso Martini" --format json`,
	Args: cobra.ExactArgs(1),
	Run:  runAdvise,
}

func init() {
	rootCmd.AddCommand(adviseCmd)
}

func runAdvise(cmd *cobra.Command, args []string) {
	logger := newLogger(formatFlag)
	engine := mustGetEngine(logger)

	response, err := engine.Advise(args[0])
	if err != nil {
		fail(err)
	}

	text, err := FormatResponse(response, OutputFormat(formatFlag))
	if err != nil {
		fail(err)
	}
	fmt.Println(text)
}
