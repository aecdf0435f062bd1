package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var favoriteRemove bool

var favoriteCmd = &cobra.Command{
	Use:   "favorite <name>",
	Short: "Bookmark a recipe",
	Long: `Bookmark a recipe by name, or remove a bookmark with --remove.
Favorites persist in the state database and surface in browse, the TUI
and status.

Examples:
  mixmaster favorite negroni
  mixmaster favorite negroni --remove
  mixmaster favorite list`,
	Args: cobra.ExactArgs(1),
	Run:  runFavorite,
}

var favoriteListCmd = &cobra.Command{
	Use:   "list",
	Short: "List bookmarked recipes",
	Run:   runFavoriteList,
}

func init() {
	favoriteCmd.Flags().BoolVar(&favoriteRemove, "remove", false, "Remove the bookmark instead")
	favoriteCmd.AddCommand(favoriteListCmd)
	rootCmd.AddCommand(favoriteCmd)
}

func runFavorite(cmd *cobra.Command, args []string) {
	logger := newLogger(formatFlag)
	engine := mustGetEngine(logger)

	op := engine.Favorite
	if favoriteRemove {
		op = engine.Unfavorite
	}
	response, err := op(args[0])
	if err != nil {
		fail(err)
	}

	text, err := FormatResponse(response, OutputFormat(formatFlag))
	if err != nil {
		fail(err)
	}
	fmt.Println(text)
}

func runFavoriteList(cmd *cobra.Command, args []string) {
	logger := newLogger(formatFlag)
	engine := mustGetEngine(logger)

	response, err := engine.FavoriteNames()
	if err != nil {
		fail(err)
	}

	text, err := FormatResponse(response, OutputFormat(formatFlag))
	if err != nil {
		fail(err)
	}
	fmt.Println(text)
}
