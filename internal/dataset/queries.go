package dataset

import (
	"fmt"
	"math/rand"
	"sort"
	"strings"

	"mixmaster/internal/errors"
	"mixmaster/internal/output"
	"mixmaster/internal/recipe"
)

// SearchOptions bound an ingredient search.
type SearchOptions struct {
	MaxMissing int
	MinMatched int
	MinScore   float64
	Limit      int
}

// DefaultSearchOptions mirrors the config defaults: up to two missing
// ingredients, at least one matched, no score floor, no limit.
func DefaultSearchOptions() SearchOptions {
	return SearchOptions{MaxMissing: 2, MinMatched: 1}
}

// SearchByIngredients scores every cocktail against the available
// ingredient names and returns the matches that clear the option
// thresholds, sorted by score descending with name tiebreak.
func (d *Dataset) SearchByIngredients(available []string, opts SearchOptions) []output.Match {
	have := recipe.NormalizeSet(available)
	matches := make([]output.Match, 0, len(d.cocktails))
	for i := range d.cocktails {
		c := &d.cocktails[i]
		matched, missing, score := c.MatchScore(have)
		if len(matched) < opts.MinMatched {
			continue
		}
		if len(missing) > opts.MaxMissing {
			continue
		}
		if score < opts.MinScore {
			continue
		}
		matches = append(matches, output.Match{
			Name:    c.Name,
			Spirit:  c.Spirit,
			Score:   score,
			Matched: matched,
			Missing: missing,
		})
	}
	output.SortMatches(matches)
	if opts.Limit > 0 && len(matches) > opts.Limit {
		matches = matches[:opts.Limit]
	}
	return matches
}

// FindByName looks a cocktail up by exact name, case-insensitive.
func (d *Dataset) FindByName(name string) (*recipe.Cocktail, error) {
	i, ok := d.byName[strings.ToLower(strings.TrimSpace(name))]
	if !ok {
		return nil, errors.NewMixError(
			errors.RecipeNotFound,
			fmt.Sprintf("no cocktail named %q", name),
			nil,
			errors.GetSuggestedFixes(errors.RecipeNotFound),
		)
	}
	return &d.cocktails[i], nil
}

// BySpirit returns cocktails whose base spirit equals the given one,
// compared case-insensitively, sorted by name. Unknown spirits yield
// an empty result, not an error.
func (d *Dataset) BySpirit(spirit string) []recipe.Cocktail {
	want := strings.ToLower(strings.TrimSpace(spirit))
	var hits []recipe.Cocktail
	for _, c := range d.cocktails {
		if c.Spirit == want {
			hits = append(hits, c)
		}
	}
	sortByName(hits)
	return hits
}

// ByTag returns cocktails carrying the given tag, compared
// case-insensitively, sorted by name.
func (d *Dataset) ByTag(tag string) []recipe.Cocktail {
	var hits []recipe.Cocktail
	for _, c := range d.cocktails {
		if c.HasTag(tag) {
			hits = append(hits, c)
		}
	}
	sortByName(hits)
	return hits
}

// FilterByName returns cocktails whose name or spirit contains the
// query substring, case-insensitive, sorted by name. An empty query
// returns the whole collection.
func (d *Dataset) FilterByName(query string) []recipe.Cocktail {
	q := strings.ToLower(strings.TrimSpace(query))
	var hits []recipe.Cocktail
	for _, c := range d.cocktails {
		if q == "" || strings.Contains(strings.ToLower(c.Name), q) || strings.Contains(c.Spirit, q) {
			hits = append(hits, c)
		}
	}
	sortByName(hits)
	return hits
}

// Spirits returns the distinct base spirits in the dataset, sorted.
func (d *Dataset) Spirits() []string {
	seen := make(map[string]bool)
	var spirits []string
	for _, c := range d.cocktails {
		if !seen[c.Spirit] {
			seen[c.Spirit] = true
			spirits = append(spirits, c.Spirit)
		}
	}
	output.SortNames(spirits)
	return spirits
}

// Tags returns the distinct tags in the dataset, lowercased and sorted.
func (d *Dataset) Tags() []string {
	seen := make(map[string]bool)
	var tags []string
	for _, c := range d.cocktails {
		for _, tag := range c.Tags {
			key := strings.ToLower(tag)
			if !seen[key] {
				seen[key] = true
				tags = append(tags, key)
			}
		}
	}
	output.SortNames(tags)
	return tags
}

// Random picks one cocktail, optionally narrowed by spirit and tag. A
// narrow filter that matches nothing falls back to the whole dataset
// rather than failing.
func (d *Dataset) Random(rng *rand.Rand, spirit, tag string) *recipe.Cocktail {
	want := strings.ToLower(strings.TrimSpace(spirit))
	idx := make([]int, 0, len(d.cocktails))
	for i, c := range d.cocktails {
		if want != "" && c.Spirit != want {
			continue
		}
		if tag != "" && !c.HasTag(tag) {
			continue
		}
		idx = append(idx, i)
	}
	if len(idx) == 0 {
		return &d.cocktails[rng.Intn(len(d.cocktails))]
	}
	return &d.cocktails[idx[rng.Intn(len(idx))]]
}

func sortByName(cocktails []recipe.Cocktail) {
	sort.SliceStable(cocktails, func(i, j int) bool {
		a, b := strings.ToLower(cocktails[i].Name), strings.ToLower(cocktails[j].Name)
		if a == b {
			return cocktails[i].Name < cocktails[j].Name
		}
		return a < b
	})
}
