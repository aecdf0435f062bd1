// Package inventory parses the user's bar declaration file, a TOML
// list of on-hand ingredients usable in place of --have flags.
package inventory

import (
	"fmt"
	"os"

	toml "github.com/pelletier/go-toml/v2"

	"mixmaster/internal/errors"
	"mixmaster/internal/recipe"
)

// DefaultFileName is the conventional shelf declaration filename.
const DefaultFileName = "bar.toml"

// Shelf is a user-authored list of on-hand ingredients.
type Shelf struct {
	Name        string   `toml:"name"`
	Ingredients []string `toml:"ingredients"`
}

// Load parses a shelf declaration from path.
func Load(path string) (*Shelf, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, invalid(fmt.Sprintf("inventory not readable at %s", path), err)
	}

	var shelf Shelf
	if err := toml.Unmarshal(data, &shelf); err != nil {
		return nil, invalid(fmt.Sprintf("inventory is not valid TOML: %s", path), err)
	}
	if len(shelf.Ingredients) == 0 {
		return nil, invalid(fmt.Sprintf("inventory %s declares no ingredients", path), nil)
	}
	if shelf.Name == "" {
		shelf.Name = "bar"
	}

	return &shelf, nil
}

// Keys returns the shelf's ingredients as normalized dataset keys,
// deduplicated, in declaration order.
func (s *Shelf) Keys() []string {
	keys := make([]string, 0, len(s.Ingredients))
	seen := make(map[string]bool, len(s.Ingredients))
	for _, name := range s.Ingredients {
		key := recipe.Normalize(name)
		if key == "" || seen[key] {
			continue
		}
		seen[key] = true
		keys = append(keys, key)
	}
	return keys
}

func invalid(message string, cause error) error {
	return errors.NewMixError(
		errors.InventoryInvalid,
		message,
		cause,
		errors.GetSuggestedFixes(errors.InventoryInvalid),
	)
}
