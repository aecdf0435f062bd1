package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var showTotalOz float64

var showCmd = &cobra.Command{
	Use:   "show <name>",
	Short: "Show one recipe scaled to a drink volume",
	Long: `Look a recipe up by name (case-insensitive) and print it with part
ratios scaled to the requested pour.

Examples:
  mixmaster show daiquiri
  mixmaster show "Whiskey Sour" --total-oz 4.5`,
	Args: cobra.ExactArgs(1),
	Run:  runShow,
}

func init() {
	showCmd.Flags().Float64Var(&showTotalOz, "total-oz", 0, "Drink volume in ounces (default: config)")
	rootCmd.AddCommand(showCmd)
}

func runShow(cmd *cobra.Command, args []string) {
	logger := newLogger(formatFlag)
	engine := mustGetEngine(logger)

	response, err := engine.Show(args[0], showTotalOz)
	if err != nil {
		fail(err)
	}

	text, err := FormatResponse(response, OutputFormat(formatFlag))
	if err != nil {
		fail(err)
	}
	fmt.Println(text)
}
