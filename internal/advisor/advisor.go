// Package advisor generates serving and tasting notes for recipes.
//
// Notes are deliberately one-liners so the CLI, the TUI detail pane, and
// the JSON output can all render the same list. Rotating lines (safety
// reminders, verdicts) draw from the injected rand source so callers can
// pin a seed in tests.
package advisor

import (
	"fmt"
	"math/rand"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"mixmaster/internal/output"
	"mixmaster/internal/recipe"
)

// Strength bands on the summed scaled oz of a standard pour.
const (
	strongOz   = 3.0
	moderateOz = 2.0
)

var safetyReminders = []string{
	"Never drink and drive. Arrange safe transportation.",
	"Alcohol can interact with medications.",
	"Don't drink on an empty stomach.",
	"Alternate with water to stay hydrated.",
}

var spiritProfiles = map[string]string{
	"vodka":   "Vodka base: clean and neutral, lets the other flavors shine.",
	"gin":     "Gin base: botanical notes with juniper, complex and aromatic.",
	"rum":     "Rum base: sweet molasses with Caribbean warmth.",
	"tequila": "Tequila base: earthy agave with a peppery kick.",
	"whiskey": "Whiskey base: rich oak and caramel notes.",
	"bourbon": "Bourbon base: vanilla and toasted oak.",
	"mezcal":  "Mezcal base: smoky and bold.",
}

var tagDescriptions = map[string]string{
	"sweet":  "Sweet and balanced.",
	"sour":   "Tart and refreshing.",
	"bitter": "Pleasant bitterness.",
	"spicy":  "Has a kick.",
	"fruity": "Fruit-forward and vibrant.",
	"herbal": "Herbal and botanical.",
	"citrus": "Bright citrus zing.",
}

var verdicts = []string{
	"Highly recommended.",
	"Solid choice.",
	"Really tasty.",
}

var occasions = []string{
	"Perfect for party vibes.",
	"Best enjoyed on a summer afternoon.",
	"Great when you want to relax.",
}

// Advisor produces serving and tasting notes for a recipe
type Advisor struct {
	rng *rand.Rand
}

// New creates an advisor drawing rotating lines from rng
func New(rng *rand.Rand) *Advisor {
	return &Advisor{rng: rng}
}

// ServingNotes returns health and serving guidance for a standard pour.
// The strength band comes from the summed scaled oz: above strongOz the
// drink is flagged strong, above moderateOz moderate, otherwise light.
func (a *Advisor) ServingNotes(c *recipe.Cocktail) []output.Note {
	lines := recipe.Scale(c, 0)
	total := recipe.ScaledOzTotal(lines)

	var notes []output.Note
	switch {
	case total > strongOz:
		notes = append(notes, output.Note{
			Severity: "warning",
			Text:     fmt.Sprintf("High alcohol content (%.2f oz poured). Limit to 1-2 per occasion.", total),
		})
	case total > moderateOz:
		notes = append(notes, output.Note{
			Severity: "info",
			Text:     fmt.Sprintf("Moderate strength (%.2f oz poured). Stick to 2-3 drinks max.", total),
		})
	default:
		notes = append(notes, output.Note{
			Severity: "info",
			Text:     fmt.Sprintf("Lighter option (%.2f oz poured). Moderation is still key.", total),
		})
	}

	notes = append(notes, output.Note{
		Severity: "tip",
		Text:     safetyReminders[a.rng.Intn(len(safetyReminders))],
	})

	if hasSugar(c) {
		notes = append(notes, output.Note{
			Severity: "warning",
			Text:     "Contains added sugar. Worth knowing if you are watching your intake.",
		})
	}

	notes = append(notes, output.Note{
		Severity: "warning",
		Text:     "Not for pregnant people, anyone under legal drinking age, or anyone driving.",
	})

	return notes
}

// TastingNotes returns flavor guidance: the spirit profile, descriptions
// for the first three tags, and a fresh-ingredient callout when one applies.
func (a *Advisor) TastingNotes(c *recipe.Cocktail) []output.Note {
	var notes []output.Note

	if profile, ok := spiritProfiles[strings.ToLower(c.Spirit)]; ok {
		notes = append(notes, output.Note{Severity: "info", Text: profile})
	}

	caser := cases.Title(language.English)
	tags := c.Tags
	if len(tags) > 3 {
		tags = tags[:3]
	}
	for _, tag := range tags {
		text, ok := tagDescriptions[strings.ToLower(tag)]
		if !ok {
			text = caser.String(tag) + "."
		}
		notes = append(notes, output.Note{Severity: "info", Text: text})
	}

	if callout := freshCallout(c); callout != "" {
		notes = append(notes, output.Note{Severity: "info", Text: callout})
	}

	notes = append(notes, output.Note{
		Severity: "info",
		Text:     verdicts[a.rng.Intn(len(verdicts))],
	})
	notes = append(notes, output.Note{
		Severity: "tip",
		Text:     occasions[a.rng.Intn(len(occasions))],
	})

	return notes
}

// hasSugar reports whether any ingredient reads as a sugar or syrup
func hasSugar(c *recipe.Cocktail) bool {
	for _, ing := range c.Ingredients {
		name := strings.ToLower(ing.Name)
		if strings.Contains(name, "sugar") || strings.Contains(name, "syrup") {
			return true
		}
	}
	return false
}

// freshCallout returns the first citrus or mint callout, in recipe order
func freshCallout(c *recipe.Cocktail) string {
	for _, ing := range c.Ingredients {
		name := strings.ToLower(ing.Name)
		switch {
		case strings.Contains(name, "lime"), strings.Contains(name, "lemon"):
			return "Citrus brightens everything."
		case strings.Contains(name, "mint"):
			return "Fresh mint adds coolness."
		}
	}
	return ""
}
