package mix

import (
	"path/filepath"
	"time"

	"mixmaster/internal/cards"
	"mixmaster/internal/errors"
	"mixmaster/internal/paths"
	"mixmaster/internal/recipe"
	"mixmaster/internal/storage"
)

// ExportOptions control card export. Zero values defer to the config.
type ExportOptions struct {
	OutputDir string  // directory for single cards
	Bundle    string  // when set, write one .tar.zst deck instead
	TotalOz   float64 // drink volume for the ingredient table
}

// ExportCard renders one recipe, looked up by name, to a PNG card.
func (e *Engine) ExportCard(name string, opts ExportOptions) (*ExportResponse, error) {
	c, err := e.dataset.FindByName(name)
	if err != nil {
		return nil, err
	}
	return e.ExportRecipes([]recipe.Cocktail{*c}, opts)
}

// ExportBySpirit renders a card for every recipe with the given base
// spirit. An unknown spirit exports nothing and is not an error.
func (e *Engine) ExportBySpirit(spirit string, opts ExportOptions) (*ExportResponse, error) {
	return e.ExportRecipes(e.dataset.BySpirit(spirit), opts)
}

// ExportRecipes renders the given recipes to individual PNG cards, or
// to a single zstd-compressed deck when opts.Bundle is set. Every
// written card lands in the export history.
func (e *Engine) ExportRecipes(cocktails []recipe.Cocktail, opts ExportOptions) (*ExportResponse, error) {
	start := time.Now()

	if opts.Bundle != "" {
		return e.exportDeck(cocktails, opts, start)
	}

	outDir := opts.OutputDir
	if outDir == "" {
		outDir = e.cfg.Cards.OutputDir
	}
	outDir = paths.ExpandUser(outDir)

	resp := &ExportResponse{Cards: make([]ExportedCard, 0, len(cocktails))}
	for i := range cocktails {
		c := &cocktails[i]
		path := filepath.Join(outDir, cards.CardFileName(c.Name))
		if err := e.renderer.WritePNG(c, path, e.totalOz(opts.TotalOz)); err != nil {
			return nil, err
		}
		e.recordExport(c, path)
		resp.Cards = append(resp.Cards, ExportedCard{Recipe: c.Name, Path: path})
	}

	e.logger.Info("Cards exported", map[string]interface{}{
		"count": len(resp.Cards),
		"dir":   outDir,
	})

	resp.Meta = e.meta(start)
	return resp, nil
}

func (e *Engine) exportDeck(cocktails []recipe.Cocktail, opts ExportOptions, start time.Time) (*ExportResponse, error) {
	if len(cocktails) == 0 {
		return nil, errors.NewMixError(errors.BundleFailed, "nothing to bundle", nil, nil)
	}

	bundle := paths.ExpandUser(opts.Bundle)
	if err := e.renderer.WriteDeck(cocktails, bundle, e.totalOz(opts.TotalOz)); err != nil {
		return nil, err
	}

	resp := &ExportResponse{Bundle: bundle, Cards: make([]ExportedCard, 0, len(cocktails))}
	for i := range cocktails {
		c := &cocktails[i]
		e.recordExport(c, bundle)
		resp.Cards = append(resp.Cards, ExportedCard{Recipe: c.Name, Path: bundle})
	}

	e.logger.Info("Deck exported", map[string]interface{}{
		"count":  len(resp.Cards),
		"bundle": bundle,
	})

	resp.Meta = e.meta(start)
	return resp, nil
}

// recordExport writes history bookkeeping. Failures are logged, not
// surfaced; the card on disk is what the user asked for.
func (e *Engine) recordExport(c *recipe.Cocktail, path string) {
	err := e.history.Record(&storage.ExportRecord{
		Recipe:    c.Name,
		Path:      path,
		Generated: c.Generated,
	})
	if err != nil {
		e.logger.Warn("Failed to record export", map[string]interface{}{
			"recipe": c.Name,
			"error":  err.Error(),
		})
	}
}
