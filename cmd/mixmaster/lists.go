package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var spiritsCmd = &cobra.Command{
	Use:   "spirits",
	Short: "List the base spirits in the dataset",
	Run: func(cmd *cobra.Command, args []string) {
		printList(func() interface{} { return mustGetEngine(newLogger(formatFlag)).Spirits() })
	},
}

var tagsCmd = &cobra.Command{
	Use:   "tags",
	Short: "List the flavor tags in the dataset",
	Run: func(cmd *cobra.Command, args []string) {
		printList(func() interface{} { return mustGetEngine(newLogger(formatFlag)).Tags() })
	},
}

var stylesCmd = &cobra.Command{
	Use:   "styles",
	Short: "List the available generation styles",
	Run: func(cmd *cobra.Command, args []string) {
		printList(func() interface{} { return mustGetEngine(newLogger(formatFlag)).Styles() })
	},
}

func init() {
	rootCmd.AddCommand(spiritsCmd)
	rootCmd.AddCommand(tagsCmd)
	rootCmd.AddCommand(stylesCmd)
}

func printList(fetch func() interface{}) {
	text, err := FormatResponse(fetch(), OutputFormat(formatFlag))
	if err != nil {
		fail(err)
	}
	fmt.Println(text)
}
