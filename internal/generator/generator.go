// Package generator builds new cocktails from ratio templates. Styles
// ship embedded in the binary and can be replaced by a user TOML file.
package generator

import (
	_ "embed"
	"fmt"
	"math/rand"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/google/uuid"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"mixmaster/internal/errors"
	"mixmaster/internal/output"
	"mixmaster/internal/recipe"
)

//go:embed styles.toml
var embeddedStyles string

// DefaultStyle is used when the requested style is empty or unknown.
const DefaultStyle = "sour"

// BaseSlot is the slot name filled by the requested spirit.
const BaseSlot = "base"

// Slot is one pour position in a style template. Non-base slots carry
// ingredient pools keyed by flavor hint.
type Slot struct {
	Name        string              `toml:"name"`
	Parts       float64             `toml:"parts"`
	DefaultPool string              `toml:"default_pool"`
	Pools       map[string][]string `toml:"pools"`
}

// Style is a ratio template plus its naming and serving text.
type Style struct {
	NamePattern  string `toml:"name_pattern"`
	Instructions string `toml:"instructions"`
	Slots        []Slot `toml:"slots"`
}

// TotalParts returns the declared ratio total of the template.
func (s Style) TotalParts() float64 {
	total := 0.0
	for _, slot := range s.Slots {
		total += slot.Parts
	}
	return total
}

type stylesFile struct {
	Styles map[string]Style `toml:"styles"`
}

// Generator creates cocktails from style templates using an injectable
// random source.
type Generator struct {
	styles map[string]Style
	rng    *rand.Rand
}

// New builds a generator over the embedded style templates.
func New(rng *rand.Rand) (*Generator, error) {
	styles, err := decodeStyles(embeddedStyles)
	if err != nil {
		return nil, err
	}
	return &Generator{styles: styles, rng: rng}, nil
}

// NewFromFile builds a generator from a user style file instead of the
// embedded templates.
func NewFromFile(path string, rng *rand.Rand) (*Generator, error) {
	var file stylesFile
	if _, err := toml.DecodeFile(path, &file); err != nil {
		return nil, errors.NewMixError(
			errors.InternalError,
			fmt.Sprintf("style file not usable at %s", path),
			err,
			nil,
		)
	}
	styles, err := validateStyles(file.Styles)
	if err != nil {
		return nil, err
	}
	return &Generator{styles: styles, rng: rng}, nil
}

// Styles returns the available style names, sorted.
func (g *Generator) Styles() []string {
	names := make([]string, 0, len(g.styles))
	for name := range g.styles {
		names = append(names, name)
	}
	output.SortNames(names)
	return names
}

// Generate builds a recipe for the base spirit in the given style. An
// empty or unknown style falls back to the default rather than failing,
// and hints only steer slots that declare a matching pool.
func (g *Generator) Generate(base, style, hint string) (*recipe.Cocktail, error) {
	base = strings.ToLower(strings.TrimSpace(base))
	if base == "" {
		return nil, errors.NewMixError(errors.InternalError, "generation needs a base spirit", nil, nil)
	}

	style = strings.ToLower(strings.TrimSpace(style))
	if style == "" {
		style = DefaultStyle
	}
	def, ok := g.styles[style]
	if !ok {
		style = DefaultStyle
		def = g.styles[DefaultStyle]
	}
	hint = strings.ToLower(strings.TrimSpace(hint))

	ingredients := make([]recipe.Ingredient, 0, len(def.Slots))
	for _, slot := range def.Slots {
		name := base
		if slot.Name != BaseSlot {
			pool := slot.Pools[slot.DefaultPool]
			if hint != "" {
				if alt, ok := slot.Pools[hint]; ok {
					pool = alt
				}
			}
			name = displayName(pool[g.rng.Intn(len(pool))])
		}
		ingredients = append(ingredients, recipe.Ingredient{
			Name:   name,
			Amount: slot.Parts,
			Unit:   recipe.UnitPart,
		})
	}

	tags := []string{style}
	if hint != "" {
		tags = append(tags, hint)
	}

	return &recipe.Cocktail{
		Name:         strings.ReplaceAll(def.NamePattern, "{base}", cases.Title(language.English).String(base)),
		Spirit:       base,
		Ingredients:  ingredients,
		Tags:         tags,
		Instructions: def.Instructions,
		Difficulty:   "easy",
		Generated:    true,
		ID:           uuid.New().String(),
	}, nil
}

// displayName turns a pool key into the ingredient name form used by
// dataset recipes.
func displayName(key string) string {
	return strings.ReplaceAll(key, "_", " ")
}

func decodeStyles(data string) (map[string]Style, error) {
	var file stylesFile
	if _, err := toml.Decode(data, &file); err != nil {
		return nil, errors.NewMixError(errors.InternalError, "embedded style templates are invalid", err, nil)
	}
	return validateStyles(file.Styles)
}

func validateStyles(styles map[string]Style) (map[string]Style, error) {
	if len(styles) == 0 {
		return nil, styleErr("no styles defined")
	}
	if _, ok := styles[DefaultStyle]; !ok {
		return nil, styleErr(fmt.Sprintf("default style %q is missing", DefaultStyle))
	}
	for name, style := range styles {
		if style.NamePattern == "" {
			return nil, styleErr(fmt.Sprintf("style %q has no name_pattern", name))
		}
		if len(style.Slots) == 0 {
			return nil, styleErr(fmt.Sprintf("style %q has no slots", name))
		}
		hasBase := false
		for _, slot := range style.Slots {
			if slot.Parts <= 0 {
				return nil, styleErr(fmt.Sprintf("style %q slot %q needs positive parts", name, slot.Name))
			}
			if slot.Name == BaseSlot {
				hasBase = true
				continue
			}
			if len(slot.Pools[slot.DefaultPool]) == 0 {
				return nil, styleErr(fmt.Sprintf("style %q slot %q has no usable default pool", name, slot.Name))
			}
		}
		if !hasBase {
			return nil, styleErr(fmt.Sprintf("style %q has no base slot", name))
		}
	}
	return styles, nil
}

func styleErr(message string) error {
	return errors.NewMixError(errors.InternalError, "style templates: "+message, nil, nil)
}
