package output

import (
	"testing"
)

func TestMultiFieldSort(t *testing.T) {
	type row struct {
		Name   string
		Spirit string
		Score  float64
	}

	rows := []row{
		{"Mojito", "rum", 0.6},
		{"Daiquiri", "rum", 1.0},
		{"Negroni", "gin", 0.6},
		{"Martini", "gin", 1.0},
	}

	err := MultiFieldSort(&rows, []SortCriteria{
		{Field: "Score", Descending: true},
		{Field: "Name"},
	})
	if err != nil {
		t.Fatalf("MultiFieldSort() error = %v", err)
	}

	wantOrder := []string{"Daiquiri", "Martini", "Mojito", "Negroni"}
	for i, want := range wantOrder {
		if rows[i].Name != want {
			t.Errorf("rows[%d].Name = %q, want %q", i, rows[i].Name, want)
		}
	}
}

func TestMultiFieldSort_StringField(t *testing.T) {
	type row struct {
		Name   string
		Spirit string
	}

	rows := []row{
		{"Whiskey Sour", "bourbon"},
		{"Gimlet", "gin"},
		{"Old Fashioned", "bourbon"},
	}

	err := MultiFieldSort(&rows, []SortCriteria{
		{Field: "Spirit"},
		{Field: "Name"},
	})
	if err != nil {
		t.Fatalf("MultiFieldSort() error = %v", err)
	}

	wantOrder := []string{"Old Fashioned", "Whiskey Sour", "Gimlet"}
	for i, want := range wantOrder {
		if rows[i].Name != want {
			t.Errorf("rows[%d].Name = %q, want %q", i, rows[i].Name, want)
		}
	}
}

func TestMultiFieldSort_Errors(t *testing.T) {
	type row struct{ Name string }

	tests := []struct {
		name     string
		slice    interface{}
		criteria []SortCriteria
	}{
		{"not a pointer", []row{{"a"}}, []SortCriteria{{Field: "Name"}}},
		{"not a slice", &row{"a"}, []SortCriteria{{Field: "Name"}}},
		{"no criteria", &[]row{{"a"}}, nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if err := MultiFieldSort(tt.slice, tt.criteria); err == nil {
				t.Error("MultiFieldSort() should return error")
			}
		})
	}
}

func TestMultiFieldSort_Stable(t *testing.T) {
	type row struct {
		Name  string
		Score float64
	}

	// Equal scores keep insertion order when only Score is compared
	rows := []row{
		{"first", 0.5},
		{"second", 0.5},
		{"third", 0.5},
	}

	err := MultiFieldSort(&rows, []SortCriteria{{Field: "Score", Descending: true}})
	if err != nil {
		t.Fatalf("MultiFieldSort() error = %v", err)
	}

	wantOrder := []string{"first", "second", "third"}
	for i, want := range wantOrder {
		if rows[i].Name != want {
			t.Errorf("rows[%d].Name = %q, want %q", i, rows[i].Name, want)
		}
	}
}
