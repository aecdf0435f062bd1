package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"mixmaster/internal/mix"
	"mixmaster/internal/recipe"
)

var (
	generateBase    string
	generateStyle   string
	generateHint    string
	generateTotalOz float64
	generateExport  bool
)

var generateCmd = &cobra.Command{
	Use:   "generate",
	Short: "Generate a new recipe from a ratio template",
	Long: `Build a new recipe for a base spirit using a style template. The
template fixes the pour ratios; the non-base slots are filled from
ingredient pools, optionally steered by a flavor hint.

Styles: sour (2/1/1), spirit_forward (2.5/0.5), highball (2/4). An
unknown style falls back to sour. Pass --seed for a reproducible pick.

Examples:
  mixmaster generate --base gin --style sour
  mixmaster generate --base mezcal --style highball --hint fruity
  mixmaster generate --base rum --seed 42 --export`,
	Run: runGenerate,
}

func init() {
	generateCmd.Flags().StringVar(&generateBase, "base", "", "Base spirit (required)")
	generateCmd.Flags().StringVar(&generateStyle, "style", "", "Style template (default: sour)")
	generateCmd.Flags().StringVar(&generateHint, "hint", "", "Flavor hint steering pool choice")
	generateCmd.Flags().Float64Var(&generateTotalOz, "total-oz", 0, "Drink volume in ounces (default: config)")
	generateCmd.Flags().BoolVar(&generateExport, "export", false, "Also export the result as a PNG card")
	generateCmd.MarkFlagRequired("base")
	rootCmd.AddCommand(generateCmd)
}

func runGenerate(cmd *cobra.Command, args []string) {
	logger := newLogger(formatFlag)
	engine := mustGetEngine(logger)

	response, err := engine.Generate(generateBase, generateStyle, generateHint, generateTotalOz)
	if err != nil {
		fail(err)
	}

	text, err := FormatResponse(response, OutputFormat(formatFlag))
	if err != nil {
		fail(err)
	}
	fmt.Println(text)

	if generateExport {
		export, err := engine.ExportRecipes(
			[]recipe.Cocktail{*response.Cocktail},
			mix.ExportOptions{TotalOz: generateTotalOz},
		)
		if err != nil {
			fail(err)
		}
		fmt.Printf("Saved card to %s\n", export.Cards[0].Path)
	}
}
