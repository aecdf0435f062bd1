// Package dataset loads the cocktail collection from JSON once and
// serves read-only queries over it.
package dataset

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"os"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/goccy/go-json"

	"mixmaster/internal/errors"
	"mixmaster/internal/recipe"
)

// DefaultDifficulty is applied to records that omit the field.
const DefaultDifficulty = "medium"

// validate is shared across loads. Validator instances cache struct
// metadata, so one instance is the cheap path.
var validate = validator.New(validator.WithRequiredStructEnabled())

// Dataset is the in-memory cocktail collection. Read-only after Load.
type Dataset struct {
	path        string
	fingerprint string
	cocktails   []recipe.Cocktail
	byName      map[string]int
}

// Load reads, validates and indexes a cocktail dataset. The file must
// be a JSON array of cocktail records with unique names.
func Load(path string) (*Dataset, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.NewMixError(
			errors.DatasetMissing,
			fmt.Sprintf("dataset not readable at %s", path),
			err,
			errors.GetSuggestedFixes(errors.DatasetMissing),
		)
	}

	var cocktails []recipe.Cocktail
	if err := json.Unmarshal(data, &cocktails); err != nil {
		return nil, invalid("dataset is not a valid cocktail JSON array", err)
	}
	if len(cocktails) == 0 {
		return nil, invalid("dataset contains no cocktails", nil)
	}

	d := &Dataset{
		path:        path,
		fingerprint: fingerprintBytes(data),
		cocktails:   cocktails,
		byName:      make(map[string]int, len(cocktails)),
	}

	for i := range d.cocktails {
		c := &d.cocktails[i]
		if err := validateCocktail(c); err != nil {
			return nil, err
		}
		// Spirits are matched lowercase; difficulty defaults when omitted.
		c.Spirit = strings.ToLower(strings.TrimSpace(c.Spirit))
		if c.Difficulty == "" {
			c.Difficulty = DefaultDifficulty
		}
		key := strings.ToLower(c.Name)
		if _, dup := d.byName[key]; dup {
			return nil, invalid(fmt.Sprintf("duplicate cocktail name %q", c.Name), nil)
		}
		d.byName[key] = i
	}

	return d, nil
}

func validateCocktail(c *recipe.Cocktail) error {
	if err := validate.Struct(c); err != nil {
		return invalid(fmt.Sprintf("invalid cocktail record %q: %s", c.Name, validationDetail(err)), err)
	}
	// Struct tags cannot express amount-vs-unit coupling.
	for _, ing := range c.Ingredients {
		if recipe.IsScaled(ing.Unit) && ing.Amount <= 0 {
			return invalid(fmt.Sprintf("cocktail %q: ingredient %q needs a positive part amount", c.Name, ing.Name), nil)
		}
	}
	return nil
}

func validationDetail(err error) string {
	fieldErrs, ok := err.(validator.ValidationErrors)
	if !ok {
		return err.Error()
	}
	parts := make([]string, 0, len(fieldErrs))
	for _, fe := range fieldErrs {
		parts = append(parts, fmt.Sprintf("%s failed %s", fe.Namespace(), fe.Tag()))
	}
	return strings.Join(parts, "; ")
}

func invalid(message string, cause error) error {
	return errors.NewMixError(
		errors.DatasetInvalid,
		message,
		cause,
		errors.GetSuggestedFixes(errors.DatasetInvalid),
	)
}

// fingerprintBytes returns a short stable hash of the raw dataset
// bytes, surfaced in status output so users can tell datasets apart.
func fingerprintBytes(data []byte) string {
	sum := sha256.Sum256(data)
	return hex.EncodeToString(sum[:8])
}

// Path returns the file the dataset was loaded from.
func (d *Dataset) Path() string { return d.path }

// Fingerprint returns the short content hash computed at load time.
func (d *Dataset) Fingerprint() string { return d.fingerprint }

// Count returns the number of cocktails.
func (d *Dataset) Count() int { return len(d.cocktails) }

// All returns every cocktail in load order. Callers must not mutate
// the returned slice.
func (d *Dataset) All() []recipe.Cocktail { return d.cocktails }
