package recipe

import "mixmaster/internal/output"

// MlPerOz converts fluid ounces to milliliters.
const MlPerOz = 29.57

// DefaultTotalOz is the target part total when the caller does not ask
// for a specific drink volume.
const DefaultTotalOz = 3.0

// ScaledIngredient is one display line of a scaled recipe. Volumetric
// units carry both oz and ml; accent units carry preformatted text
// instead.
type ScaledIngredient struct {
	Name   string  `json:"name"`
	Amount float64 `json:"amount"`
	Unit   string  `json:"unit"`
	Oz     float64 `json:"oz,omitempty"`
	Ml     float64 `json:"ml,omitempty"`
	Accent string  `json:"accent,omitempty"`
}

// Scale converts a recipe's ingredient list into display lines. Part
// amounts share totalOz in proportion to their ratio, oz and ml amounts
// pass through with the counterpart unit derived, and accent units are
// rendered as text. Ounces round to 2 decimals, milliliters to 1, with
// ml always derived from the unrounded ounce value.
func Scale(c *Cocktail, totalOz float64) []ScaledIngredient {
	if totalOz <= 0 {
		totalOz = DefaultTotalOz
	}
	totalParts := 0.0
	for _, ing := range c.Ingredients {
		if ing.Unit == UnitPart {
			totalParts += ing.Amount
		}
	}
	lines := make([]ScaledIngredient, 0, len(c.Ingredients))
	for _, ing := range c.Ingredients {
		line := ScaledIngredient{Name: ing.Name, Amount: ing.Amount, Unit: ing.Unit}
		switch ing.Unit {
		case UnitPart:
			if totalParts > 0 {
				oz := totalOz * ing.Amount / totalParts
				line.Oz = output.RoundTo(oz, 2)
				line.Ml = output.RoundTo(oz*MlPerOz, 1)
			}
		case UnitOz:
			line.Oz = output.RoundTo(ing.Amount, 2)
			line.Ml = output.RoundTo(ing.Amount*MlPerOz, 1)
		case UnitMl:
			line.Ml = output.RoundTo(ing.Amount, 1)
			line.Oz = output.RoundTo(ing.Amount/MlPerOz, 2)
		default:
			line.Accent = FormatAccent(ing)
		}
		lines = append(lines, line)
	}
	return lines
}

// ScaledOzTotal sums the ounce volume of scaled lines. Accent units
// contribute nothing.
func ScaledOzTotal(lines []ScaledIngredient) float64 {
	total := 0.0
	for _, line := range lines {
		total += line.Oz
	}
	return output.RoundTo(total, 2)
}

// FormatAccent renders a non-volumetric amount as display text, such as
// "2 dashes" or "top".
func FormatAccent(ing Ingredient) string {
	switch ing.Unit {
	case UnitTop:
		return "top"
	case UnitDash:
		return countNoun(ing.Amount, "dash", "dashes")
	case UnitBarspoon:
		return countNoun(ing.Amount, "barspoon", "barspoons")
	case UnitPiece:
		return countNoun(ing.Amount, "piece", "pieces")
	}
	return output.FormatAmount(ing.Amount, 2) + " " + ing.Unit
}

func countNoun(amount float64, singular, plural string) string {
	noun := plural
	if amount == 1 {
		noun = singular
	}
	return output.FormatAmount(amount, 2) + " " + noun
}
