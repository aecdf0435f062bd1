package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var (
	surpriseSpirit string
	surpriseTag    string
)

var surpriseCmd = &cobra.Command{
	Use:   "surprise",
	Short: "Pick a random recipe",
	Long: `Pick one recipe at random, optionally narrowed by base spirit and
flavor tag. A filter that matches nothing falls back to the whole
dataset rather than failing.

Examples:
  mixmaster surprise
  mixmaster surprise --spirit rum --tag refreshing`,
	Run: runSurprise,
}

func init() {
	surpriseCmd.Flags().StringVar(&surpriseSpirit, "spirit", "", "Base spirit filter")
	surpriseCmd.Flags().StringVar(&surpriseTag, "tag", "", "Flavor tag filter")
	rootCmd.AddCommand(surpriseCmd)
}

func runSurprise(cmd *cobra.Command, args []string) {
	logger := newLogger(formatFlag)
	engine := mustGetEngine(logger)

	response, err := engine.Surprise(surpriseSpirit, surpriseTag)
	if err != nil {
		fail(err)
	}

	text, err := FormatResponse(response, OutputFormat(formatFlag))
	if err != nil {
		fail(err)
	}
	fmt.Println(text)
}
