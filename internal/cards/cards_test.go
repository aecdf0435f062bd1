package cards

import (
	"image/png"
	"os"
	"path/filepath"
	"testing"

	"mixmaster/internal/errors"
	"mixmaster/internal/recipe"
)

func testCocktail() *recipe.Cocktail {
	return &recipe.Cocktail{
		Name:   "Daiquiri",
		Spirit: "rum",
		Ingredients: []recipe.Ingredient{
			{Name: "white rum", Amount: 2, Unit: recipe.UnitPart},
			{Name: "lime juice", Amount: 1, Unit: recipe.UnitPart},
			{Name: "simple syrup", Amount: 0.75, Unit: recipe.UnitPart},
			{Name: "angostura bitters", Amount: 2, Unit: recipe.UnitDash},
		},
		Tags:         []string{"sour", "classic"},
		Instructions: "Shake with ice and double strain into a chilled coupe.",
		Difficulty:   "easy",
	}
}

func newTestRenderer(t *testing.T) *Renderer {
	t.Helper()
	r, err := NewRenderer()
	if err != nil {
		t.Fatalf("NewRenderer() failed: %v", err)
	}
	return r
}

func TestRender_Dimensions(t *testing.T) {
	r := newTestRenderer(t)

	img, err := r.Render(testCocktail(), 0)
	if err != nil {
		t.Fatalf("Render() failed: %v", err)
	}

	bounds := img.Bounds()
	if bounds.Dx() != CardWidth || bounds.Dy() != CardHeight {
		t.Errorf("canvas = %dx%d, want %dx%d", bounds.Dx(), bounds.Dy(), CardWidth, CardHeight)
	}
}

func TestRender_EmptyRecipe(t *testing.T) {
	r := newTestRenderer(t)

	_, err := r.Render(&recipe.Cocktail{Name: "Nothing"}, 0)
	if err == nil {
		t.Fatal("expected error for empty recipe")
	}
	mixErr, ok := err.(*errors.MixError)
	if !ok || mixErr.Code != errors.CardRenderFailed {
		t.Errorf("error = %v, want code %s", err, errors.CardRenderFailed)
	}
}

func TestWritePNG(t *testing.T) {
	r := newTestRenderer(t)
	path := filepath.Join(t.TempDir(), "out", "daiquiri.png")

	if err := r.WritePNG(testCocktail(), path, 0); err != nil {
		t.Fatalf("WritePNG() failed: %v", err)
	}

	info, err := os.Stat(path)
	if err != nil {
		t.Fatalf("stat card: %v", err)
	}
	if info.Size() == 0 {
		t.Error("card file is empty")
	}

	f, err := os.Open(path)
	if err != nil {
		t.Fatalf("open card: %v", err)
	}
	defer f.Close()
	cfg, err := png.DecodeConfig(f)
	if err != nil {
		t.Fatalf("card is not a valid PNG: %v", err)
	}
	if cfg.Width != CardWidth || cfg.Height != CardHeight {
		t.Errorf("PNG size = %dx%d, want %dx%d", cfg.Width, cfg.Height, CardWidth, CardHeight)
	}
}

func TestCardFileName(t *testing.T) {
	tests := []struct {
		name string
		want string
	}{
		{"Daiquiri", "daiquiri.png"},
		{"Gin & Tonic", "gin_tonic.png"},
		{"  Custom Rum Sour  ", "custom_rum_sour.png"},
		{"Mojito #2", "mojito_2.png"},
		{"***", "recipe.png"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := CardFileName(tt.name); got != tt.want {
				t.Errorf("CardFileName(%q) = %q, want %q", tt.name, got, tt.want)
			}
		})
	}
}
