package recipe

import "strings"

// aliasTable maps common free-form ingredient spellings to canonical
// dataset keys. Keys are compared after lowercasing and whitespace
// folding, so "Lime Juice", "lime-juice" and "lime_juice" all land on
// the same entry.
var aliasTable = map[string]string{
	"lemon juice":         "lemon_juice",
	"lemon":               "lemon_juice",
	"lime juice":          "lime_juice",
	"lime":                "lime_juice",
	"grapefruit juice":    "grapefruit_juice",
	"grapefruit":          "grapefruit_juice",
	"simple syrup":        "simple_syrup",
	"sugar syrup":         "simple_syrup",
	"syrup":               "simple_syrup",
	"honey syrup":         "honey_syrup",
	"ginger syrup":        "ginger_syrup",
	"agave":               "agave_syrup",
	"agave syrup":         "agave_syrup",
	"grenadine":           "grenadine",
	"orgeat":              "orgeat_syrup",
	"orgeat syrup":        "orgeat_syrup",
	"ginger beer":         "ginger_beer",
	"soda":                "soda_water",
	"soda water":          "soda_water",
	"club soda":           "soda_water",
	"tonic":               "tonic_water",
	"tonic water":         "tonic_water",
	"dry vermouth":        "dry_vermouth",
	"sweet vermouth":      "sweet_vermouth",
	"white rum":           "white_rum",
	"orange liqueur":      "orange_liqueur",
	"triple sec":          "triple_sec",
	"aperol":              "aperol",
	"amaro nonino":        "amaro_nonino",
	"elderflower liqueur": "elderflower_liqueur",
	"st germain":          "elderflower_liqueur",
	"maraschino":          "maraschino_liqueur",
	"maraschino liqueur":  "maraschino_liqueur",
	"coffee liqueur":      "coffee_liqueur",
	"chartreuse":          "green_chartreuse",
	"green chartreuse":    "green_chartreuse",
	// Coarse, but helpful for casual users typing "whiskey".
	"whiskey":             "bourbon",
	"orange juice":        "orange_juice",
	"oj":                  "orange_juice",
	"pineapple juice":     "pineapple_juice",
	"pineapple":           "pineapple_juice",
	"cranberry juice":     "cranberry_juice",
	"cranberry":           "cranberry_juice",
	"apple juice":         "apple_juice",
	"apple":               "apple_juice",
	"pear juice":          "pear_juice",
	"mango juice":         "mango_juice",
	"mango puree":         "mango_puree",
	"passion fruit juice": "passionfruit_juice",
	"passionfruit juice":  "passionfruit_juice",
	"grape juice":         "grape_juice",
	"lychee juice":        "lychee_juice",
	"cola":                "cola",
	"coke":                "cola",
	"diet coke":           "cola",
	"lemon lime soda":     "lemon_lime_soda",
	"sprite":              "lemon_lime_soda",
	"7up":                 "lemon_lime_soda",
	"ginger ale":          "ginger_ale",
	"hojicha":             "hojicha_tea",
	"hojicha tea":         "hojicha_tea",
	"roasted green tea":   "hojicha_tea",
	"matcha":              "matcha",
	"matcha syrup":        "matcha_syrup",
	"earl grey":           "earl_grey_tea",
	"earl grey tea":       "earl_grey_tea",
	"oolong":              "oolong_tea",
	"oolong tea":          "oolong_tea",
	"jasmine tea":         "jasmine_tea",
	"black tea":           "black_tea",
	"english breakfast":   "black_tea",
	"espresso":            "espresso",
	"cold brew":           "cold_brew_coffee",
	"coffee":              "coffee",
	"mocha":               "mocha_syrup",
	"chocolate syrup":     "chocolate_syrup",
}

// spaceFolder turns dash and underscore separators into spaces so that
// alias lookup only has to deal with space-separated words.
var spaceFolder = strings.NewReplacer("-", " ", "_", " ")

// Normalize canonicalizes a free-form ingredient name to the snake_case
// key used throughout the dataset. Names without an alias entry fall
// back to a direct snake_case conversion, so unknown ingredients still
// match themselves.
func Normalize(name string) string {
	key := strings.ToLower(strings.TrimSpace(name))
	key = spaceFolder.Replace(key)
	key = strings.Join(strings.Fields(key), " ")
	if canonical, ok := aliasTable[key]; ok {
		return canonical
	}
	return strings.ReplaceAll(key, " ", "_")
}

// NormalizeSet normalizes a list of ingredient names into a lookup set.
// Blank entries are dropped.
func NormalizeSet(names []string) map[string]bool {
	set := make(map[string]bool, len(names))
	for _, name := range names {
		key := Normalize(name)
		if key == "" {
			continue
		}
		set[key] = true
	}
	return set
}
