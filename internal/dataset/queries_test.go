package dataset

import (
	"math/rand"
	"reflect"
	"strings"
	"testing"

	"mixmaster/internal/errors"
)

func TestSearchByIngredients(t *testing.T) {
	d := loadTestData(t)

	tests := []struct {
		name      string
		available []string
		opts      SearchOptions
		wantNames []string
	}{
		{
			name:      "rum shelf with defaults",
			available: []string{"white rum", "lime", "simple syrup"},
			opts:      DefaultSearchOptions(),
			wantNames: []string{"Daiquiri", "Mojito", "Gin & Tonic", "Margarita"},
		},
		{
			name:      "min score floor",
			available: []string{"white rum", "lime", "simple syrup"},
			opts:      SearchOptions{MaxMissing: 2, MinMatched: 1, MinScore: 0.5},
			wantNames: []string{"Daiquiri", "Mojito"},
		},
		{
			name:      "exact matches only",
			available: []string{"white rum", "lime", "simple syrup"},
			opts:      SearchOptions{MaxMissing: 0, MinMatched: 1},
			wantNames: []string{"Daiquiri"},
		},
		{
			name:      "limit caps results",
			available: []string{"white rum", "lime", "simple syrup"},
			opts:      SearchOptions{MaxMissing: 2, MinMatched: 1, Limit: 2},
			wantNames: []string{"Daiquiri", "Mojito"},
		},
		{
			name:      "aliases resolve before matching",
			available: []string{"Lime Juice", "WHITE RUM", "sugar syrup"},
			opts:      SearchOptions{MaxMissing: 0, MinMatched: 1},
			wantNames: []string{"Daiquiri"},
		},
		{
			name:      "nothing available",
			available: nil,
			opts:      DefaultSearchOptions(),
			wantNames: []string{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			matches := d.SearchByIngredients(tt.available, tt.opts)
			got := make([]string, 0, len(matches))
			for _, m := range matches {
				got = append(got, m.Name)
			}
			if !reflect.DeepEqual(got, tt.wantNames) {
				t.Errorf("result names = %v, want %v", got, tt.wantNames)
			}
		})
	}
}

func TestSearchByIngredients_Scores(t *testing.T) {
	d := loadTestData(t)
	matches := d.SearchByIngredients([]string{"white rum", "lime", "simple syrup"}, DefaultSearchOptions())

	wantScores := map[string]float64{
		"Daiquiri":    1,
		"Mojito":      0.6,
		"Gin & Tonic": 1.0 / 3.0,
		"Margarita":   1.0 / 3.0,
	}
	for _, m := range matches {
		want, ok := wantScores[m.Name]
		if !ok {
			t.Errorf("unexpected match %q", m.Name)
			continue
		}
		if m.Score != want {
			t.Errorf("%s score = %v, want %v", m.Name, m.Score, want)
		}
	}

	// The top hit matched every recipe ingredient.
	if len(matches) == 0 || len(matches[0].Missing) != 0 {
		t.Fatalf("top match = %+v, want a complete match first", matches)
	}
}

func TestSearchByIngredients_PerfectScoreMeansNothingMissing(t *testing.T) {
	d := loadTestData(t)
	matches := d.SearchByIngredients(
		[]string{"white rum", "lime juice", "simple syrup", "gin", "tonic water"},
		SearchOptions{MaxMissing: 5, MinMatched: 1, MinScore: 1.0},
	)

	if len(matches) == 0 {
		t.Fatal("no matches at threshold 1.0")
	}
	for _, m := range matches {
		if m.Score < 1.0 {
			t.Errorf("%s score = %v, want >= 1.0", m.Name, m.Score)
		}
		if len(m.Missing) != 0 {
			t.Errorf("%s missing = %v, want none at threshold 1.0", m.Name, m.Missing)
		}
	}
}

func TestSearchByIngredients_Sorted(t *testing.T) {
	d := loadTestData(t)
	matches := d.SearchByIngredients(
		[]string{"lime juice", "gin", "white rum", "simple syrup"},
		SearchOptions{MaxMissing: 5, MinMatched: 1},
	)

	if len(matches) < 3 {
		t.Fatalf("got %d matches, want a spread to check ordering", len(matches))
	}
	for i := 1; i < len(matches); i++ {
		prev, cur := matches[i-1], matches[i]
		if cur.Score > prev.Score {
			t.Errorf("score order violated at %d: %s (%v) after %s (%v)", i, cur.Name, cur.Score, prev.Name, prev.Score)
		}
		if cur.Score == prev.Score && strings.ToLower(cur.Name) < strings.ToLower(prev.Name) {
			t.Errorf("name tiebreak violated at %d: %s after %s", i, cur.Name, prev.Name)
		}
	}
}

func TestFindByName(t *testing.T) {
	d := loadTestData(t)

	for _, name := range []string{"Negroni", "negroni", "NEGRONI", " negroni "} {
		c, err := d.FindByName(name)
		if err != nil {
			t.Fatalf("FindByName(%q) failed: %v", name, err)
		}
		if c.Name != "Negroni" {
			t.Errorf("FindByName(%q) = %q, want Negroni", name, c.Name)
		}
	}

	_, err := d.FindByName("Zombie")
	wantCode(t, err, errors.RecipeNotFound)
}

func TestBySpirit(t *testing.T) {
	d := loadTestData(t)

	tests := []struct {
		spirit    string
		wantNames []string
	}{
		{"gin", []string{"Gin & Tonic", "Negroni"}},
		{"GIN", []string{"Gin & Tonic", "Negroni"}},
		{"rum", []string{"Daiquiri", "Mojito"}},
		{"absinthe", nil},
	}

	for _, tt := range tests {
		t.Run(tt.spirit, func(t *testing.T) {
			var got []string
			for _, c := range d.BySpirit(tt.spirit) {
				got = append(got, c.Name)
			}
			if !reflect.DeepEqual(got, tt.wantNames) {
				t.Errorf("BySpirit(%q) = %v, want %v", tt.spirit, got, tt.wantNames)
			}
		})
	}
}

func TestByTag(t *testing.T) {
	d := loadTestData(t)

	var got []string
	for _, c := range d.ByTag("CLASSIC") {
		got = append(got, c.Name)
	}
	want := []string{"Daiquiri", "Margarita", "Negroni", "Old Fashioned"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("ByTag(CLASSIC) = %v, want %v", got, want)
	}

	if hits := d.ByTag("nonexistent"); len(hits) != 0 {
		t.Errorf("ByTag(nonexistent) = %d hits, want none", len(hits))
	}
}

func TestFilterByName(t *testing.T) {
	d := loadTestData(t)

	tests := []struct {
		query     string
		wantNames []string
	}{
		{"mar", []string{"Espresso Martini", "Margarita"}},
		{"rum", []string{"Daiquiri", "Mojito"}},
		{"ZZZ", nil},
	}

	for _, tt := range tests {
		t.Run(tt.query, func(t *testing.T) {
			var got []string
			for _, c := range d.FilterByName(tt.query) {
				got = append(got, c.Name)
			}
			if !reflect.DeepEqual(got, tt.wantNames) {
				t.Errorf("FilterByName(%q) = %v, want %v", tt.query, got, tt.wantNames)
			}
		})
	}

	if all := d.FilterByName(""); len(all) != d.Count() {
		t.Errorf("FilterByName(\"\") = %d hits, want %d", len(all), d.Count())
	}
}

func TestSpirits(t *testing.T) {
	d := loadTestData(t)
	got := d.Spirits()
	want := []string{"bourbon", "gin", "rum", "tequila", "vodka"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Spirits() = %v, want %v", got, want)
	}
}

func TestTags(t *testing.T) {
	d := loadTestData(t)
	got := d.Tags()
	want := []string{
		"after-dinner", "bitter", "classic", "coffee", "highball",
		"refreshing", "sour", "spirit-forward", "stirred",
	}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Tags() = %v, want %v", got, want)
	}
}

func TestRandom(t *testing.T) {
	d := loadTestData(t)
	rng := rand.New(rand.NewSource(42))

	for i := 0; i < 10; i++ {
		c := d.Random(rng, "gin", "")
		if c.Spirit != "gin" {
			t.Fatalf("Random(gin) = %q with spirit %q", c.Name, c.Spirit)
		}
	}
	for i := 0; i < 10; i++ {
		c := d.Random(rng, "", "classic")
		if !c.HasTag("classic") {
			t.Fatalf("Random(classic) = %q without the tag", c.Name)
		}
	}
	for i := 0; i < 10; i++ {
		c := d.Random(rng, "rum", "sour")
		if c.Spirit != "rum" || !c.HasTag("sour") {
			t.Fatalf("Random(rum, sour) = %q (%s, %v)", c.Name, c.Spirit, c.Tags)
		}
	}
}

func TestRandom_FallsBackWhenFilterMatchesNothing(t *testing.T) {
	d := loadTestData(t)
	rng := rand.New(rand.NewSource(7))

	c := d.Random(rng, "absinthe", "")
	if c == nil {
		t.Fatal("Random() = nil, want a fallback pick")
	}
	if _, err := d.FindByName(c.Name); err != nil {
		t.Errorf("fallback pick %q is not in the dataset", c.Name)
	}
}

func TestRandom_DeterministicWithSeed(t *testing.T) {
	d := loadTestData(t)

	a := rand.New(rand.NewSource(99))
	b := rand.New(rand.NewSource(99))
	for i := 0; i < 5; i++ {
		if got, want := d.Random(a, "", "").Name, d.Random(b, "", "").Name; got != want {
			t.Fatalf("pick %d differs: %q vs %q", i, got, want)
		}
	}
}
