// Package recipe defines the cocktail domain model: ingredients with
// measured units, normalization of free-form ingredient names, and
// ratio-to-volume scaling for display.
package recipe

import (
	"strings"
)

// Unit values for Ingredient.Unit.
const (
	// UnitPart is a relative ratio, scaled against the drink's total volume
	UnitPart = "part"
	// UnitOz is an absolute ounce measure, passed through unscaled
	UnitOz = "oz"
	// UnitMl is an absolute milliliter measure, passed through unscaled
	UnitMl = "ml"
	// UnitDash is an accent measure (bitters)
	UnitDash = "dash"
	// UnitBarspoon is an accent measure (rich syrups, liqueur floats)
	UnitBarspoon = "barspoon"
	// UnitPiece is an accent count (garnishes, leaves, wedges)
	UnitPiece = "piece"
	// UnitTop means fill to the top, no fixed amount
	UnitTop = "top"
)

// KnownUnits enumerates every valid Ingredient.Unit value.
var KnownUnits = map[string]bool{
	UnitPart:     true,
	UnitOz:       true,
	UnitMl:       true,
	UnitDash:     true,
	UnitBarspoon: true,
	UnitPiece:    true,
	UnitTop:      true,
}

// IsAccent reports whether a unit is an accent measure that is never
// scaled or converted to volume.
func IsAccent(unit string) bool {
	switch unit {
	case UnitDash, UnitBarspoon, UnitPiece, UnitTop:
		return true
	}
	return false
}

// IsScaled reports whether a unit participates in volume scaling.
func IsScaled(unit string) bool {
	return unit == UnitPart
}

// Ingredient is a single measured recipe line
type Ingredient struct {
	Name   string  `json:"name" validate:"required"`
	Amount float64 `json:"amount" validate:"gte=0"`
	Unit   string  `json:"unit" validate:"required,oneof=part oz ml dash barspoon piece top"`
}

// Cocktail is one recipe. Ingredients keep their dataset order.
type Cocktail struct {
	Name         string       `json:"name" validate:"required"`
	Spirit       string       `json:"spirit" validate:"required"`
	Ingredients  []Ingredient `json:"ingredients" validate:"required,min=1,dive"`
	Tags         []string     `json:"tags,omitempty"`
	Instructions string       `json:"instructions,omitempty"`
	Difficulty   string       `json:"difficulty,omitempty"`
	Generated    bool         `json:"generated,omitempty"`
	ID           string       `json:"id,omitempty"`
}

// IngredientKeys returns the distinct normalized ingredient names in
// recipe order.
func (c *Cocktail) IngredientKeys() []string {
	keys := make([]string, 0, len(c.Ingredients))
	seen := make(map[string]bool, len(c.Ingredients))
	for _, ing := range c.Ingredients {
		key := Normalize(ing.Name)
		if key == "" || seen[key] {
			continue
		}
		seen[key] = true
		keys = append(keys, key)
	}
	return keys
}

// HasTag reports whether the cocktail carries a tag, compared
// case-insensitively.
func (c *Cocktail) HasTag(tag string) bool {
	want := strings.ToLower(strings.TrimSpace(tag))
	for _, t := range c.Tags {
		if strings.ToLower(t) == want {
			return true
		}
	}
	return false
}

// MatchScore compares the recipe against a set of available normalized
// ingredient keys. It returns the matched and missing keys in recipe
// order, and score = matched / |recipe keys|.
func (c *Cocktail) MatchScore(available map[string]bool) (matched, missing []string, score float64) {
	keys := c.IngredientKeys()
	if len(keys) == 0 {
		return nil, nil, 0
	}

	for _, key := range keys {
		if available[key] {
			matched = append(matched, key)
		} else {
			missing = append(missing, key)
		}
	}

	score = float64(len(matched)) / float64(len(keys))
	return matched, missing, score
}
