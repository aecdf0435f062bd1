package main

import (
	"github.com/spf13/cobra"

	"mixmaster/internal/version"
)

var (
	// dataFlag overrides the configured dataset path
	dataFlag string
	// formatFlag selects json or human output
	formatFlag string
	// logLevelFlag adjusts logger verbosity
	logLevelFlag string
	// stylesFlag points at a style template override file
	stylesFlag string
	// seedFlag pins the random source for reproducible picks
	seedFlag int64
)

var rootCmd = &cobra.Command{
	Use:   "mixmaster",
	Short: "MixMaster - cocktail lookup and generation",
	Long: `MixMaster is a cocktail recipe tool over a local JSON dataset: search by
the ingredients you have, browse by spirit or flavor tag, generate new
recipes from ratio templates, and export recipes as PNG cards.`,
	Version: version.Version,
}

func init() {
	rootCmd.SetVersionTemplate("MixMaster version {{.Version}}\n")
	rootCmd.PersistentFlags().StringVar(&dataFlag, "data", "",
		"Dataset path (default: config, then data/cocktails.json)")
	rootCmd.PersistentFlags().StringVar(&formatFlag, "format", "human",
		"Output format (json, human)")
	rootCmd.PersistentFlags().StringVar(&logLevelFlag, "log-level", "",
		"Log level: debug, info, warn, error (default: config)")
	rootCmd.PersistentFlags().StringVar(&stylesFlag, "styles", "",
		"Style template TOML overriding the built-in generation styles")
	rootCmd.PersistentFlags().Int64Var(&seedFlag, "seed", 0,
		"Random seed for generate/surprise (0 = clock)")
}
