package recipe

import (
	"math"
	"testing"
)

func margarita() *Cocktail {
	return &Cocktail{
		Name:   "Margarita",
		Spirit: "tequila",
		Ingredients: []Ingredient{
			{Name: "tequila", Amount: 2, Unit: UnitPart},
			{Name: "lime juice", Amount: 1, Unit: UnitPart},
			{Name: "triple sec", Amount: 1, Unit: UnitPart},
		},
	}
}

func TestScale_Parts(t *testing.T) {
	lines := Scale(margarita(), 3.0)
	if len(lines) != 3 {
		t.Fatalf("Scale() returned %d lines, want 3", len(lines))
	}

	want := []struct {
		name string
		oz   float64
		ml   float64
	}{
		{"tequila", 1.5, 44.4},
		{"lime juice", 0.75, 22.2},
		{"triple sec", 0.75, 22.2},
	}

	for i, w := range want {
		line := lines[i]
		if line.Name != w.name {
			t.Errorf("line %d name = %q, want %q", i, line.Name, w.name)
		}
		if line.Oz != w.oz {
			t.Errorf("%s oz = %v, want %v", w.name, line.Oz, w.oz)
		}
		if line.Ml != w.ml {
			t.Errorf("%s ml = %v, want %v", w.name, line.Ml, w.ml)
		}
		if line.Accent != "" {
			t.Errorf("%s accent = %q, want empty", w.name, line.Accent)
		}
	}
}

func TestScale_CustomTotal(t *testing.T) {
	lines := Scale(margarita(), 6.0)
	if lines[0].Oz != 3.0 || lines[1].Oz != 1.5 || lines[2].Oz != 1.5 {
		t.Errorf("oz = %v, %v, %v, want 3, 1.5, 1.5", lines[0].Oz, lines[1].Oz, lines[2].Oz)
	}
	if lines[0].Ml != 88.7 {
		t.Errorf("ml = %v, want 88.7", lines[0].Ml)
	}
}

func TestScale_ZeroTotalUsesDefault(t *testing.T) {
	got := Scale(margarita(), 0)
	want := Scale(margarita(), DefaultTotalOz)
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("line %d = %+v, want %+v", i, got[i], want[i])
		}
	}
}

func TestScale_AbsoluteUnits(t *testing.T) {
	c := &Cocktail{
		Name:   "Espresso Highball",
		Spirit: "coffee",
		Ingredients: []Ingredient{
			{Name: "espresso", Amount: 1.5, Unit: UnitOz},
			{Name: "matcha", Amount: 30, Unit: UnitMl},
		},
	}

	lines := Scale(c, 3.0)

	if lines[0].Oz != 1.5 {
		t.Errorf("oz line oz = %v, want 1.5", lines[0].Oz)
	}
	if lines[0].Ml != 44.4 {
		t.Errorf("oz line ml = %v, want 44.4", lines[0].Ml)
	}
	if lines[1].Ml != 30 {
		t.Errorf("ml line ml = %v, want 30", lines[1].Ml)
	}
	if lines[1].Oz != 1.01 {
		t.Errorf("ml line oz = %v, want 1.01", lines[1].Oz)
	}
}

func TestScale_Accents(t *testing.T) {
	c := &Cocktail{
		Name:   "Whiskey Sour",
		Spirit: "bourbon",
		Ingredients: []Ingredient{
			{Name: "bourbon", Amount: 2, Unit: UnitPart},
			{Name: "lemon juice", Amount: 1, Unit: UnitPart},
			{Name: "simple syrup", Amount: 1, Unit: UnitPart},
			{Name: "angostura bitters", Amount: 2, Unit: UnitDash},
			{Name: "soda water", Amount: 0, Unit: UnitTop},
		},
	}

	lines := Scale(c, 3.0)

	// Accent lines pass through untouched and part scaling ignores them.
	if lines[0].Oz != 1.5 {
		t.Errorf("bourbon oz = %v, want 1.5", lines[0].Oz)
	}
	if lines[3].Accent != "2 dashes" {
		t.Errorf("bitters accent = %q, want %q", lines[3].Accent, "2 dashes")
	}
	if lines[3].Oz != 0 || lines[3].Ml != 0 {
		t.Errorf("bitters volume = %v oz / %v ml, want 0 / 0", lines[3].Oz, lines[3].Ml)
	}
	if lines[4].Accent != "top" {
		t.Errorf("soda accent = %q, want %q", lines[4].Accent, "top")
	}
}

func TestScale_PartTotalProperty(t *testing.T) {
	c := &Cocktail{
		Name:   "Uneven",
		Spirit: "gin",
		Ingredients: []Ingredient{
			{Name: "gin", Amount: 2, Unit: UnitPart},
			{Name: "lemon juice", Amount: 1, Unit: UnitPart},
			{Name: "honey syrup", Amount: 0.5, Unit: UnitPart},
		},
	}

	for _, total := range []float64{2.0, 3.0, 4.5, 6.0} {
		lines := Scale(c, total)
		sum := ScaledOzTotal(lines)
		// Per-line rounding can drift by at most half a hundredth per line.
		if math.Abs(sum-total) > 0.02 {
			t.Errorf("total %v: scaled oz sum = %v", total, sum)
		}
		for _, line := range lines {
			if line.Oz <= 0 {
				t.Errorf("total %v: %s oz = %v, want > 0", total, line.Name, line.Oz)
			}
			// Both sides are independently rounded, so allow a small gap.
			if math.Abs(line.Ml-line.Oz*MlPerOz) > 0.25 {
				t.Errorf("total %v: %s ml = %v, oz %v does not convert", total, line.Name, line.Ml, line.Oz)
			}
		}
	}
}

func TestScaledOzTotal(t *testing.T) {
	if got := ScaledOzTotal(Scale(margarita(), 3.0)); got != 3.0 {
		t.Errorf("ScaledOzTotal() = %v, want 3", got)
	}
	if got := ScaledOzTotal(nil); got != 0 {
		t.Errorf("ScaledOzTotal(nil) = %v, want 0", got)
	}
}

func TestFormatAccent(t *testing.T) {
	tests := []struct {
		name string
		ing  Ingredient
		want string
	}{
		{name: "plural dashes", ing: Ingredient{Amount: 2, Unit: UnitDash}, want: "2 dashes"},
		{name: "single dash", ing: Ingredient{Amount: 1, Unit: UnitDash}, want: "1 dash"},
		{name: "single barspoon", ing: Ingredient{Amount: 1, Unit: UnitBarspoon}, want: "1 barspoon"},
		{name: "fractional barspoon", ing: Ingredient{Amount: 0.5, Unit: UnitBarspoon}, want: "0.5 barspoons"},
		{name: "pieces", ing: Ingredient{Amount: 8, Unit: UnitPiece}, want: "8 pieces"},
		{name: "top ignores amount", ing: Ingredient{Amount: 0, Unit: UnitTop}, want: "top"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := FormatAccent(tt.ing); got != tt.want {
				t.Errorf("FormatAccent(%+v) = %q, want %q", tt.ing, got, tt.want)
			}
		})
	}
}
