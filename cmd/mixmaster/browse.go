package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"mixmaster/internal/mix"
)

var (
	browseSpirit    string
	browseTag       string
	browseQuery     string
	browseFavorites bool
)

var browseCmd = &cobra.Command{
	Use:   "browse",
	Short: "List recipes by spirit, tag or name",
	Long: `List recipes, optionally narrowed by base spirit, flavor tag, a name
substring, or your favorites. Filters combine; an unknown spirit or tag
simply yields an empty list.

Examples:
  mixmaster browse
  mixmaster browse --spirit gin
  mixmaster browse --tag sour --favorites
  mixmaster browse --query marg`,
	Run: runBrowse,
}

func init() {
	browseCmd.Flags().StringVar(&browseSpirit, "spirit", "", "Base spirit filter (case-insensitive)")
	browseCmd.Flags().StringVar(&browseTag, "tag", "", "Flavor tag filter (case-insensitive)")
	browseCmd.Flags().StringVar(&browseQuery, "query", "", "Name or spirit substring filter")
	browseCmd.Flags().BoolVar(&browseFavorites, "favorites", false, "Only bookmarked recipes")
	rootCmd.AddCommand(browseCmd)
}

func runBrowse(cmd *cobra.Command, args []string) {
	logger := newLogger(formatFlag)
	engine := mustGetEngine(logger)

	response, err := engine.Browse(mix.BrowseOptions{
		Spirit:        browseSpirit,
		Tag:           browseTag,
		Query:         browseQuery,
		FavoritesOnly: browseFavorites,
	})
	if err != nil {
		fail(err)
	}

	text, err := FormatResponse(response, OutputFormat(formatFlag))
	if err != nil {
		fail(err)
	}
	fmt.Println(text)
}
