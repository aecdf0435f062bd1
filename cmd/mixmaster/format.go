package main

import (
	"fmt"
	"strings"

	"mixmaster/internal/mix"
	"mixmaster/internal/output"
	"mixmaster/internal/recipe"
)

// OutputFormat represents the output format type
type OutputFormat string

const (
	FormatJSON  OutputFormat = "json"
	FormatHuman OutputFormat = "human"
)

// FormatResponse formats a response according to the specified format
func FormatResponse(resp interface{}, format OutputFormat) (string, error) {
	switch format {
	case FormatJSON:
		return formatJSON(resp)
	case FormatHuman:
		return formatHuman(resp)
	default:
		return "", fmt.Errorf("unsupported format: %s", format)
	}
}

// formatJSON encodes the response deterministically so output is
// byte-stable across runs with the same inputs.
func formatJSON(resp interface{}) (string, error) {
	data, err := output.DeterministicEncodeIndented(resp, "  ")
	if err != nil {
		return "", fmt.Errorf("failed to marshal JSON: %w", err)
	}
	return string(data), nil
}

// formatHuman formats the response in human-readable format
func formatHuman(resp interface{}) (string, error) {
	switch v := resp.(type) {
	case *mix.SearchResponse:
		return formatSearchHuman(v), nil
	case *mix.BrowseResponse:
		return formatBrowseHuman(v), nil
	case *mix.ShowResponse:
		return formatShowHuman(v), nil
	case *mix.GenerateResponse:
		return formatGenerateHuman(v), nil
	case *mix.ExportResponse:
		return formatExportHuman(v), nil
	case *mix.FavoriteResponse:
		return formatFavoriteHuman(v), nil
	case *mix.ListResponse:
		return formatListHuman(v), nil
	case *mix.AdviseResponse:
		return formatAdviseHuman(v), nil
	case *mix.StatusResponse:
		return formatStatusHuman(v), nil
	default:
		// For unknown types, fall back to JSON
		return formatJSON(resp)
	}
}

func formatSearchHuman(resp *mix.SearchResponse) string {
	var b strings.Builder

	fmt.Fprintf(&b, "You have: %s\n\n", strings.Join(resp.Available, ", "))
	if len(resp.Matches) == 0 {
		b.WriteString("No recipes match what you have.\n")
		return b.String()
	}

	for i, m := range resp.Matches {
		fmt.Fprintf(&b, "%2d. %s (%s) - %.0f%% match\n", i+1, m.Name, m.Spirit, m.Score*100)
		if len(m.Missing) > 0 {
			fmt.Fprintf(&b, "    missing: %s\n", strings.Join(m.Missing, ", "))
		}
	}
	return b.String()
}

func formatBrowseHuman(resp *mix.BrowseResponse) string {
	var b strings.Builder

	if len(resp.Cocktails) == 0 {
		b.WriteString("No recipes found.\n")
		return b.String()
	}
	for _, c := range resp.Cocktails {
		marker := "  "
		if c.Favorite {
			marker = "* "
		}
		fmt.Fprintf(&b, "%s%-24s %-10s %s\n", marker, c.Name, c.Spirit, strings.Join(c.Tags, ", "))
	}
	fmt.Fprintf(&b, "\n%d recipe(s)\n", len(resp.Cocktails))
	return b.String()
}

func formatShowHuman(resp *mix.ShowResponse) string {
	var b strings.Builder

	c := resp.Cocktail
	fmt.Fprintf(&b, "%s\n", c.Name)
	fmt.Fprintf(&b, "(base: %s)\n", c.Spirit)
	if resp.Favorite {
		b.WriteString("* favorite\n")
	}
	if len(c.Tags) > 0 {
		fmt.Fprintf(&b, "Tags: %s\n", strings.Join(c.Tags, ", "))
	}
	if c.Difficulty != "" {
		fmt.Fprintf(&b, "Difficulty: %s\n", c.Difficulty)
	}

	fmt.Fprintf(&b, "\nIngredients (%s oz pour):\n", output.FormatAmount(resp.TotalOz, 2))
	b.WriteString(formatLines(resp.Lines))

	if c.Instructions != "" {
		fmt.Fprintf(&b, "\nInstructions:\n  %s\n", c.Instructions)
	}
	return b.String()
}

func formatGenerateHuman(resp *mix.GenerateResponse) string {
	var b strings.Builder

	c := resp.Cocktail
	fmt.Fprintf(&b, "%s  [%s style, %s parts total]\n", c.Name, resp.Style, output.FormatAmount(resp.TotalParts, 2))
	fmt.Fprintf(&b, "(base: %s)\n", c.Spirit)
	b.WriteString("\nIngredients:\n")
	b.WriteString(formatLines(resp.Lines))
	if c.Instructions != "" {
		fmt.Fprintf(&b, "\nInstructions:\n  %s\n", c.Instructions)
	}
	return b.String()
}

func formatLines(lines []recipe.ScaledIngredient) string {
	var b strings.Builder
	for _, line := range lines {
		if line.Accent != "" {
			fmt.Fprintf(&b, "  %-24s %s\n", line.Name, line.Accent)
		} else {
			fmt.Fprintf(&b, "  %-24s %5s oz  %6s ml\n",
				line.Name,
				output.FormatAmount(line.Oz, 2),
				output.FormatAmount(line.Ml, 1))
		}
	}
	return b.String()
}

func formatExportHuman(resp *mix.ExportResponse) string {
	var b strings.Builder

	if resp.Bundle != "" {
		fmt.Fprintf(&b, "Bundled %d card(s) into %s\n", len(resp.Cards), resp.Bundle)
		return b.String()
	}
	for _, card := range resp.Cards {
		fmt.Fprintf(&b, "Saved %s -> %s\n", card.Recipe, card.Path)
	}
	if len(resp.Cards) == 0 {
		b.WriteString("Nothing to export.\n")
	}
	return b.String()
}

func formatFavoriteHuman(resp *mix.FavoriteResponse) string {
	switch {
	case resp.Removed && resp.Changed:
		return fmt.Sprintf("Removed %s from favorites\n", resp.Name)
	case resp.Removed:
		return fmt.Sprintf("%s was not a favorite\n", resp.Name)
	case resp.Changed:
		return fmt.Sprintf("Added %s to favorites\n", resp.Name)
	default:
		return fmt.Sprintf("%s is already a favorite\n", resp.Name)
	}
}

func formatListHuman(resp *mix.ListResponse) string {
	var b strings.Builder

	if len(resp.Names) == 0 {
		fmt.Fprintf(&b, "No %s.\n", resp.Kind)
		return b.String()
	}
	for _, name := range resp.Names {
		fmt.Fprintf(&b, "  %s\n", name)
	}
	fmt.Fprintf(&b, "\n%d %s\n", len(resp.Names), resp.Kind)
	return b.String()
}

func formatAdviseHuman(resp *mix.AdviseResponse) string {
	var b strings.Builder

	fmt.Fprintf(&b, "%s\n\nServing notes:\n", resp.Name)
	for _, n := range resp.Serving {
		fmt.Fprintf(&b, "  [%s] %s\n", n.Severity, n.Text)
	}
	b.WriteString("\nTasting notes:\n")
	for _, n := range resp.Tasting {
		fmt.Fprintf(&b, "  [%s] %s\n", n.Severity, n.Text)
	}
	return b.String()
}

func formatStatusHuman(resp *mix.StatusResponse) string {
	var b strings.Builder

	fmt.Fprintf(&b, "MixMaster v%s\n", resp.Version)
	b.WriteString(strings.Repeat("=", 50) + "\n")
	fmt.Fprintf(&b, "Dataset:     %s (fingerprint %s)\n", resp.Dataset, resp.Fingerprint)
	fmt.Fprintf(&b, "Recipes:     %d (%d spirits, %d tags)\n", resp.Recipes, resp.Spirits, resp.Tags)
	fmt.Fprintf(&b, "Styles:      %s\n", strings.Join(resp.Styles, ", "))
	fmt.Fprintf(&b, "Favorites:   %d\n", resp.Favorites)
	fmt.Fprintf(&b, "Exports:     %d\n", resp.Exports)
	fmt.Fprintf(&b, "State dir:   %s\n", resp.StateDir)
	fmt.Fprintf(&b, "Database:    %s\n", resp.Database)
	return b.String()
}
