package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"mixmaster/internal/mix"
)

var (
	exportSpirit  string
	exportOut     string
	exportBundle  string
	exportTotalOz float64
)

var exportCmd = &cobra.Command{
	Use:   "export [name]",
	Short: "Export recipe cards as PNG files",
	Long: `Render recipes as 900x1400 PNG cards. Export one recipe by name, or
every recipe with a base spirit via --spirit. With --bundle the cards
plus a recipes.json snapshot go into a single zstd-compressed tar
archive instead of individual files.

Examples:
  mixmaster export daiquiri
  mixmaster export "Old Fashioned" --out ~/cards --total-oz 4
  mixmaster export --spirit gin
  mixmaster export --spirit rum --bundle rum-deck.tar.zst`,
	Args: cobra.MaximumNArgs(1),
	Run:  runExport,
}

func init() {
	exportCmd.Flags().StringVar(&exportSpirit, "spirit", "", "Export every recipe with this base spirit")
	exportCmd.Flags().StringVar(&exportOut, "out", "", "Output directory for cards (default: config)")
	exportCmd.Flags().StringVar(&exportBundle, "bundle", "", "Write a .tar.zst deck instead of loose files")
	exportCmd.Flags().Float64Var(&exportTotalOz, "total-oz", 0, "Drink volume for the ingredient table")
	rootCmd.AddCommand(exportCmd)
}

func runExport(cmd *cobra.Command, args []string) {
	logger := newLogger(formatFlag)

	if len(args) == 0 && exportSpirit == "" {
		fail(fmt.Errorf("nothing to export: pass a recipe name or --spirit"))
	}
	if len(args) == 1 && exportSpirit != "" {
		fail(fmt.Errorf("pass a recipe name or --spirit, not both"))
	}

	engine := mustGetEngine(logger)
	opts := mix.ExportOptions{
		OutputDir: exportOut,
		Bundle:    exportBundle,
		TotalOz:   exportTotalOz,
	}

	var (
		response *mix.ExportResponse
		err      error
	)
	if len(args) == 1 {
		response, err = engine.ExportCard(args[0], opts)
	} else {
		response, err = engine.ExportBySpirit(exportSpirit, opts)
	}
	if err != nil {
		fail(err)
	}

	text, err := FormatResponse(response, OutputFormat(formatFlag))
	if err != nil {
		fail(err)
	}
	fmt.Println(text)
}
