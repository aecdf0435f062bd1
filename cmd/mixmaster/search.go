package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"mixmaster/internal/dataset"
)

var (
	searchHave       []string
	searchInventory  string
	searchMaxMissing int
	searchMinMatched int
	searchMinScore   float64
	searchLimit      int
)

var searchCmd = &cobra.Command{
	Use:   "search",
	Short: "Find recipes you can make with what you have",
	Long: `Score every recipe against your available ingredients and list the
closest matches.

Names go through alias normalization, so "Fresh Lime Juice" and
"lime_juice" both count as lime juice. Results are sorted by match
score, highest first.

Examples:
  mixmaster search --have "white rum" --have "lime juice" --have "simple syrup"
  mixmaster search --inventory bar.toml --max-missing 1
  mixmaster search --have gin --min-score 0.5 --limit 5`,
	Run: runSearch,
}

func init() {
	searchCmd.Flags().StringArrayVar(&searchHave, "have", nil, "An ingredient you have (repeatable)")
	searchCmd.Flags().StringVar(&searchInventory, "inventory", "", "Bar inventory TOML listing your shelf")
	searchCmd.Flags().IntVar(&searchMaxMissing, "max-missing", -1, "Most missing ingredients allowed (default: config)")
	searchCmd.Flags().IntVar(&searchMinMatched, "min-matched", -1, "Fewest matched ingredients required (default: config)")
	searchCmd.Flags().Float64Var(&searchMinScore, "min-score", -1, "Score floor between 0 and 1 (default: config)")
	searchCmd.Flags().IntVar(&searchLimit, "limit", -1, "Maximum number of results (default: config)")
	rootCmd.AddCommand(searchCmd)
}

func runSearch(cmd *cobra.Command, args []string) {
	logger := newLogger(formatFlag)

	if len(searchHave) == 0 && searchInventory == "" {
		fail(fmt.Errorf("nothing to search with: pass --have or --inventory"))
	}

	engine := mustGetEngine(logger)
	opts := resolveSearchOptions(engine.SearchOptions())

	response, err := engine.Search(searchHave, searchInventory, opts)
	if err != nil {
		fail(err)
	}

	text, err := FormatResponse(response, OutputFormat(formatFlag))
	if err != nil {
		fail(err)
	}
	fmt.Println(text)
}

// resolveSearchOptions overlays set flags on the config defaults. The
// flags default to -1 so that zero stays expressible.
func resolveSearchOptions(opts dataset.SearchOptions) dataset.SearchOptions {
	if searchMaxMissing >= 0 {
		opts.MaxMissing = searchMaxMissing
	}
	if searchMinMatched >= 0 {
		opts.MinMatched = searchMinMatched
	}
	if searchMinScore >= 0 {
		opts.MinScore = searchMinScore
	}
	if searchLimit >= 0 {
		opts.Limit = searchLimit
	}
	return opts
}
