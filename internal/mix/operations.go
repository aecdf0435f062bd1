package mix

import (
	"strings"
	"time"

	"mixmaster/internal/dataset"
	"mixmaster/internal/inventory"
	"mixmaster/internal/output"
	"mixmaster/internal/recipe"
	"mixmaster/internal/version"
)

// SearchOptions resolves the matching knobs against the config defaults.
func (e *Engine) SearchOptions() dataset.SearchOptions {
	return dataset.SearchOptions{
		MaxMissing: e.cfg.Matching.MaxMissing,
		MinMatched: e.cfg.Matching.MinMatched,
		MinScore:   e.cfg.Matching.MinScore,
		Limit:      e.cfg.Matching.Limit,
	}
}

// Search scores the dataset against the available ingredients. When
// inventoryPath is set, the shelf file's ingredients are added to the
// explicitly listed ones.
func (e *Engine) Search(available []string, inventoryPath string, opts dataset.SearchOptions) (*SearchResponse, error) {
	start := time.Now()

	names := make([]string, 0, len(available))
	names = append(names, available...)
	if inventoryPath != "" {
		shelf, err := inventory.Load(inventoryPath)
		if err != nil {
			return nil, err
		}
		names = append(names, shelf.Ingredients...)
	}

	keys := make([]string, 0, len(names))
	for key := range recipe.NormalizeSet(names) {
		keys = append(keys, key)
	}
	output.SortNames(keys)

	matches := e.dataset.SearchByIngredients(names, opts)

	e.logger.Debug("Ingredient search done", map[string]interface{}{
		"available": len(keys),
		"matches":   len(matches),
	})

	return &SearchResponse{
		Available: keys,
		Matches:   matches,
		Meta:      e.meta(start),
	}, nil
}

// BrowseOptions narrow a recipe listing. All filters are optional and
// combine conjunctively.
type BrowseOptions struct {
	Spirit        string
	Tag           string
	Query         string
	FavoritesOnly bool
}

// Browse lists recipes matching the filters, sorted by name. Unknown
// spirits or tags yield an empty listing, not an error.
func (e *Engine) Browse(opts BrowseOptions) (*BrowseResponse, error) {
	start := time.Now()

	favs, err := e.favoriteSet()
	if err != nil {
		return nil, err
	}

	wantSpirit := strings.ToLower(strings.TrimSpace(opts.Spirit))
	query := strings.ToLower(strings.TrimSpace(opts.Query))

	var summaries []Summary
	for _, c := range e.dataset.All() {
		if wantSpirit != "" && c.Spirit != wantSpirit {
			continue
		}
		if opts.Tag != "" && !c.HasTag(opts.Tag) {
			continue
		}
		if query != "" && !strings.Contains(strings.ToLower(c.Name), query) && !strings.Contains(c.Spirit, query) {
			continue
		}
		fav := favs[strings.ToLower(c.Name)]
		if opts.FavoritesOnly && !fav {
			continue
		}
		summaries = append(summaries, Summary{
			Name:       c.Name,
			Spirit:     c.Spirit,
			Tags:       c.Tags,
			Difficulty: c.Difficulty,
			Favorite:   fav,
		})
	}
	if err := output.MultiFieldSort(&summaries, []output.SortCriteria{{Field: "Name"}}); err != nil {
		return nil, err
	}

	return &BrowseResponse{
		Spirit:    wantSpirit,
		Tag:       strings.ToLower(strings.TrimSpace(opts.Tag)),
		Query:     query,
		Favorites: opts.FavoritesOnly,
		Cocktails: summaries,
		Meta:      e.meta(start),
	}, nil
}

// Show looks a recipe up by name and scales it for display.
func (e *Engine) Show(name string, totalOz float64) (*ShowResponse, error) {
	start := time.Now()

	c, err := e.dataset.FindByName(name)
	if err != nil {
		return nil, err
	}
	return e.showResponse(c, totalOz, start)
}

// Surprise picks a random recipe, optionally narrowed by spirit and
// tag. A filter matching nothing falls back to the whole dataset.
func (e *Engine) Surprise(spirit, tag string) (*ShowResponse, error) {
	start := time.Now()

	c := e.dataset.Random(e.rng, spirit, tag)
	return e.showResponse(c, 0, start)
}

func (e *Engine) showResponse(c *recipe.Cocktail, totalOz float64, start time.Time) (*ShowResponse, error) {
	oz := e.totalOz(totalOz)
	fav, err := e.favorites.IsFavorite(c.Name)
	if err != nil {
		return nil, err
	}
	lines := recipe.Scale(c, oz)
	return &ShowResponse{
		Cocktail: c,
		Lines:    lines,
		TotalOz:  recipe.ScaledOzTotal(lines),
		Favorite: fav,
		Meta:     e.meta(start),
	}, nil
}

// Generate builds a new recipe from a style template and scales it for
// display.
func (e *Engine) Generate(base, style, hint string, totalOz float64) (*GenerateResponse, error) {
	start := time.Now()

	c, err := e.generator.Generate(base, style, hint)
	if err != nil {
		return nil, err
	}

	totalParts := 0.0
	for _, ing := range c.Ingredients {
		if ing.Unit == recipe.UnitPart {
			totalParts += ing.Amount
		}
	}

	e.logger.Debug("Recipe generated", map[string]interface{}{
		"name":  c.Name,
		"style": c.Tags[0],
	})

	return &GenerateResponse{
		Style:      c.Tags[0],
		TotalParts: totalParts,
		Cocktail:   c,
		Lines:      recipe.Scale(c, e.totalOz(totalOz)),
		Meta:       e.meta(start),
	}, nil
}

// Favorite bookmarks a recipe by its dataset name, resolved
// case-insensitively. Bookmarking twice reports Changed=false.
func (e *Engine) Favorite(name string) (*FavoriteResponse, error) {
	start := time.Now()

	c, err := e.dataset.FindByName(name)
	if err != nil {
		return nil, err
	}
	changed, err := e.favorites.Add(c.Name)
	if err != nil {
		return nil, err
	}
	return &FavoriteResponse{Name: c.Name, Changed: changed, Meta: e.meta(start)}, nil
}

// Unfavorite removes a bookmark.
func (e *Engine) Unfavorite(name string) (*FavoriteResponse, error) {
	start := time.Now()

	c, err := e.dataset.FindByName(name)
	if err != nil {
		return nil, err
	}
	changed, err := e.favorites.Remove(c.Name)
	if err != nil {
		return nil, err
	}
	return &FavoriteResponse{Name: c.Name, Removed: true, Changed: changed, Meta: e.meta(start)}, nil
}

// FavoriteNames lists the bookmarked recipes.
func (e *Engine) FavoriteNames() (*ListResponse, error) {
	start := time.Now()

	favs, err := e.favorites.List()
	if err != nil {
		return nil, err
	}
	names := make([]string, 0, len(favs))
	for _, f := range favs {
		names = append(names, f.Name)
	}
	return &ListResponse{Kind: "favorites", Names: names, Meta: e.meta(start)}, nil
}

// IsFavorite reports whether a recipe is bookmarked.
func (e *Engine) IsFavorite(name string) bool {
	fav, err := e.favorites.IsFavorite(name)
	if err != nil {
		return false
	}
	return fav
}

// Spirits lists the distinct base spirits in the dataset.
func (e *Engine) Spirits() *ListResponse {
	start := time.Now()
	return &ListResponse{Kind: "spirits", Names: e.dataset.Spirits(), Meta: e.meta(start)}
}

// Tags lists the distinct flavor tags in the dataset.
func (e *Engine) Tags() *ListResponse {
	start := time.Now()
	return &ListResponse{Kind: "tags", Names: e.dataset.Tags(), Meta: e.meta(start)}
}

// Styles lists the available generation styles.
func (e *Engine) Styles() *ListResponse {
	start := time.Now()
	return &ListResponse{Kind: "styles", Names: e.generator.Styles(), Meta: e.meta(start)}
}

// Advise generates serving and tasting notes for a recipe.
func (e *Engine) Advise(name string) (*AdviseResponse, error) {
	start := time.Now()

	c, err := e.dataset.FindByName(name)
	if err != nil {
		return nil, err
	}
	return &AdviseResponse{
		Name:    c.Name,
		Serving: e.advisor.ServingNotes(c),
		Tasting: e.advisor.TastingNotes(c),
		Meta:    e.meta(start),
	}, nil
}

// AdviseCocktail generates notes for a recipe value the dataset does
// not hold, such as generator output.
func (e *Engine) AdviseCocktail(c *recipe.Cocktail) *AdviseResponse {
	start := time.Now()
	return &AdviseResponse{
		Name:    c.Name,
		Serving: e.advisor.ServingNotes(c),
		Tasting: e.advisor.TastingNotes(c),
		Meta:    e.meta(start),
	}
}

// Status summarizes the loaded dataset and the local state database.
func (e *Engine) Status() (*StatusResponse, error) {
	start := time.Now()

	favorites, err := e.favorites.Count()
	if err != nil {
		return nil, err
	}
	exports, err := e.history.Count()
	if err != nil {
		return nil, err
	}

	return &StatusResponse{
		Version:     version.Version,
		Dataset:     e.dataset.Path(),
		Fingerprint: e.dataset.Fingerprint(),
		Recipes:     e.dataset.Count(),
		Spirits:     len(e.dataset.Spirits()),
		Tags:        len(e.dataset.Tags()),
		Styles:      e.generator.Styles(),
		Favorites:   favorites,
		Exports:     exports,
		StateDir:    e.stateDir,
		Database:    e.db.Path(),
		Meta:        e.meta(start),
	}, nil
}

// favoriteSet returns the bookmarked names keyed lowercase.
func (e *Engine) favoriteSet() (map[string]bool, error) {
	favs, err := e.favorites.List()
	if err != nil {
		return nil, err
	}
	set := make(map[string]bool, len(favs))
	for _, f := range favs {
		set[strings.ToLower(f.Name)] = true
	}
	return set, nil
}
