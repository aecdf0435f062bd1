package generator

import (
	"math/rand"
	"os"
	"path/filepath"
	"reflect"
	"testing"

	"mixmaster/internal/errors"
	"mixmaster/internal/recipe"
)

func newTestGenerator(t *testing.T, seed int64) *Generator {
	t.Helper()
	g, err := New(rand.New(rand.NewSource(seed)))
	if err != nil {
		t.Fatalf("New() failed: %v", err)
	}
	return g
}

func oneOf(t *testing.T, got string, allowed ...string) {
	t.Helper()
	for _, a := range allowed {
		if got == a {
			return
		}
	}
	t.Errorf("%q not in %v", got, allowed)
}

func TestStyles(t *testing.T) {
	g := newTestGenerator(t, 1)
	got := g.Styles()
	want := []string{"highball", "sour", "spirit_forward"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Styles() = %v, want %v", got, want)
	}
}

func TestGenerate_Sour(t *testing.T) {
	g := newTestGenerator(t, 1)

	c, err := g.Generate("gin", "sour", "")
	if err != nil {
		t.Fatalf("Generate() failed: %v", err)
	}

	if c.Name != "Custom Gin Sour" {
		t.Errorf("name = %q, want %q", c.Name, "Custom Gin Sour")
	}
	if c.Spirit != "gin" {
		t.Errorf("spirit = %q, want gin", c.Spirit)
	}
	if len(c.Ingredients) != 3 {
		t.Fatalf("got %d ingredients, want 3", len(c.Ingredients))
	}

	base := c.Ingredients[0]
	if base.Name != "gin" || base.Amount != 2 || base.Unit != recipe.UnitPart {
		t.Errorf("base ingredient = %+v, want gin 2 part", base)
	}
	oneOf(t, c.Ingredients[1].Name, "lime juice", "lemon juice")
	if c.Ingredients[1].Amount != 1 {
		t.Errorf("sour amount = %v, want 1", c.Ingredients[1].Amount)
	}
	oneOf(t, c.Ingredients[2].Name, "simple syrup", "honey syrup")

	if !reflect.DeepEqual(c.Tags, []string{"sour"}) {
		t.Errorf("tags = %v, want [sour]", c.Tags)
	}
	if c.Difficulty != "easy" {
		t.Errorf("difficulty = %q, want easy", c.Difficulty)
	}
	if !c.Generated {
		t.Error("Generated = false, want true")
	}
	if len(c.ID) != 36 {
		t.Errorf("ID = %q, want a uuid", c.ID)
	}
	if c.Instructions == "" {
		t.Error("instructions are empty")
	}
}

func TestGenerate_Hints(t *testing.T) {
	tests := []struct {
		name    string
		style   string
		hint    string
		slot    int
		allowed []string
	}{
		{name: "sour tropical", style: "sour", hint: "tropical", slot: 1, allowed: []string{"pineapple juice", "passionfruit puree"}},
		{name: "sour orange", style: "sour", hint: "orange", slot: 2, allowed: []string{"triple sec", "orange curacao"}},
		{name: "sour unknown hint keeps defaults", style: "sour", hint: "smoky", slot: 1, allowed: []string{"lime juice", "lemon juice"}},
		{name: "spirit forward herbal", style: "spirit_forward", hint: "", slot: 1, allowed: []string{"sweet vermouth", "dry vermouth"}},
		{name: "spirit forward bitter", style: "spirit_forward", hint: "bitter", slot: 1, allowed: []string{"campari", "aperol"}},
		{name: "highball bubbly", style: "highball", hint: "", slot: 1, allowed: []string{"soda water", "tonic water", "ginger beer"}},
		{name: "highball soft", style: "highball", hint: "soft", slot: 1, allowed: []string{"cola", "ginger ale"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g := newTestGenerator(t, 7)
			for i := 0; i < 10; i++ {
				c, err := g.Generate("rum", tt.style, tt.hint)
				if err != nil {
					t.Fatalf("Generate() failed: %v", err)
				}
				oneOf(t, c.Ingredients[tt.slot].Name, tt.allowed...)
			}
		})
	}
}

func TestGenerate_HintLandsInTags(t *testing.T) {
	g := newTestGenerator(t, 3)
	c, err := g.Generate("rum", "sour", "tropical")
	if err != nil {
		t.Fatalf("Generate() failed: %v", err)
	}
	if !reflect.DeepEqual(c.Tags, []string{"sour", "tropical"}) {
		t.Errorf("tags = %v, want [sour tropical]", c.Tags)
	}
}

func TestGenerate_NamePatterns(t *testing.T) {
	g := newTestGenerator(t, 5)

	tests := []struct {
		base  string
		style string
		want  string
	}{
		{"gin", "sour", "Custom Gin Sour"},
		{"white rum", "sour", "Custom White Rum Sour"},
		{"bourbon", "spirit_forward", "Bourbon House Mix"},
		{"vodka", "highball", "Vodka Highball"},
	}

	for _, tt := range tests {
		c, err := g.Generate(tt.base, tt.style, "")
		if err != nil {
			t.Fatalf("Generate(%s, %s) failed: %v", tt.base, tt.style, err)
		}
		if c.Name != tt.want {
			t.Errorf("Generate(%s, %s) name = %q, want %q", tt.base, tt.style, c.Name, tt.want)
		}
	}
}

func TestGenerate_UnknownStyleFallsBack(t *testing.T) {
	g := newTestGenerator(t, 2)

	for _, style := range []string{"disco", "", "  "} {
		c, err := g.Generate("gin", style, "")
		if err != nil {
			t.Fatalf("Generate(%q) failed: %v", style, err)
		}
		if c.Name != "Custom Gin Sour" {
			t.Errorf("Generate(%q) name = %q, want the default style shape", style, c.Name)
		}
		if !reflect.DeepEqual(c.Tags, []string{"sour"}) {
			t.Errorf("Generate(%q) tags = %v, want [sour]", style, c.Tags)
		}
	}
}

func TestGenerate_RatiosSumToTemplateTotal(t *testing.T) {
	g := newTestGenerator(t, 11)

	for _, style := range g.Styles() {
		c, err := g.Generate("tequila", style, "")
		if err != nil {
			t.Fatalf("Generate(%s) failed: %v", style, err)
		}
		sum := 0.0
		for _, ing := range c.Ingredients {
			if ing.Unit != recipe.UnitPart {
				t.Errorf("%s: ingredient %q unit = %q, want part", style, ing.Name, ing.Unit)
			}
			sum += ing.Amount
		}
		if want := g.styles[style].TotalParts(); sum != want {
			t.Errorf("%s: ratio sum = %v, want %v", style, sum, want)
		}
	}
}

func TestGenerate_DeterministicWithSeed(t *testing.T) {
	a := newTestGenerator(t, 42)
	b := newTestGenerator(t, 42)

	for i := 0; i < 5; i++ {
		ca, err := a.Generate("gin", "sour", "")
		if err != nil {
			t.Fatalf("Generate() failed: %v", err)
		}
		cb, err := b.Generate("gin", "sour", "")
		if err != nil {
			t.Fatalf("Generate() failed: %v", err)
		}
		// IDs are random uuids; everything else must line up.
		ca.ID, cb.ID = "", ""
		if !reflect.DeepEqual(ca, cb) {
			t.Fatalf("generation %d differs:\n%+v\n%+v", i, ca, cb)
		}
	}
}

func TestGenerate_FreshIDs(t *testing.T) {
	g := newTestGenerator(t, 13)
	a, err := g.Generate("gin", "sour", "")
	if err != nil {
		t.Fatalf("Generate() failed: %v", err)
	}
	b, err := g.Generate("gin", "sour", "")
	if err != nil {
		t.Fatalf("Generate() failed: %v", err)
	}
	if a.ID == b.ID {
		t.Errorf("consecutive generations share ID %q", a.ID)
	}
}

func TestGenerate_EmptyBase(t *testing.T) {
	g := newTestGenerator(t, 1)
	if _, err := g.Generate("", "sour", ""); err == nil {
		t.Fatal("expected error for empty base")
	}
}

func TestNewFromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "styles.toml")
	content := `
[styles.sour]
name_pattern = "Test {base}"
instructions = "Test method."

[[styles.sour.slots]]
name = "base"
parts = 1.0

[[styles.sour.slots]]
name = "sour"
parts = 2.0
default_pool = "only"

[styles.sour.slots.pools]
only = ["lime_juice"]
`
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write styles: %v", err)
	}

	g, err := NewFromFile(path, rand.New(rand.NewSource(1)))
	if err != nil {
		t.Fatalf("NewFromFile() failed: %v", err)
	}

	c, err := g.Generate("rum", "sour", "")
	if err != nil {
		t.Fatalf("Generate() failed: %v", err)
	}
	if c.Name != "Test Rum" {
		t.Errorf("name = %q, want %q", c.Name, "Test Rum")
	}
	if len(c.Ingredients) != 2 || c.Ingredients[1].Name != "lime juice" {
		t.Errorf("ingredients = %+v, want rum + lime juice", c.Ingredients)
	}
}

func TestNewFromFile_Errors(t *testing.T) {
	tests := []struct {
		name    string
		content string
	}{
		{name: "invalid toml", content: `[styles`},
		{
			name: "missing default style",
			content: `
[styles.highball]
name_pattern = "{base} Highball"

[[styles.highball.slots]]
name = "base"
parts = 2.0
`,
		},
		{
			name: "no base slot",
			content: `
[styles.sour]
name_pattern = "Custom {base} Sour"

[[styles.sour.slots]]
name = "sour"
parts = 1.0
default_pool = "only"

[styles.sour.slots.pools]
only = ["lime_juice"]
`,
		},
		{
			name: "zero parts",
			content: `
[styles.sour]
name_pattern = "Custom {base} Sour"

[[styles.sour.slots]]
name = "base"
parts = 0.0
`,
		},
		{
			name: "pool slot without pools",
			content: `
[styles.sour]
name_pattern = "Custom {base} Sour"

[[styles.sour.slots]]
name = "base"
parts = 2.0

[[styles.sour.slots]]
name = "sour"
parts = 1.0
default_pool = "citrus"
`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "styles.toml")
			if err := os.WriteFile(path, []byte(tt.content), 0o644); err != nil {
				t.Fatalf("write styles: %v", err)
			}
			_, err := NewFromFile(path, rand.New(rand.NewSource(1)))
			if err == nil {
				t.Fatal("expected error, got nil")
			}
			mixErr, ok := err.(*errors.MixError)
			if !ok {
				t.Fatalf("error type = %T, want *errors.MixError", err)
			}
			if mixErr.Code != errors.InternalError {
				t.Errorf("error code = %s, want %s", mixErr.Code, errors.InternalError)
			}
		})
	}
}

func TestNewFromFile_Missing(t *testing.T) {
	_, err := NewFromFile(filepath.Join(t.TempDir(), "nope.toml"), rand.New(rand.NewSource(1)))
	if err == nil {
		t.Fatal("expected error, got nil")
	}
}
