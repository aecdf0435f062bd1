package output

import (
	"testing"
)

func TestRoundTo(t *testing.T) {
	tests := []struct {
		name   string
		input  float64
		places int
		want   float64
	}{
		{"two places down", 1.114, 2, 1.11},
		{"two places up", 1.125, 2, 1.13},
		{"one place", 29.574, 1, 29.6},
		{"zero places", 2.5, 0, 3},
		{"already exact", 2.25, 2, 2.25},
		{"negative", -1.005, 1, -1.0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := RoundTo(tt.input, tt.places); got != tt.want {
				t.Errorf("RoundTo(%v, %d) = %v, want %v", tt.input, tt.places, got, tt.want)
			}
		})
	}
}

func TestRoundFloat(t *testing.T) {
	tests := []struct {
		name  string
		input float64
		want  float64
	}{
		{"truncates to 6 places", 0.123456789, 0.123457},
		{"exact value unchanged", 0.5, 0.5},
		{"zero", 0, 0},
		{"integer", 42, 42},
		{"repeating third", 1.0 / 3.0, 0.333333},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := RoundFloat(tt.input); got != tt.want {
				t.Errorf("RoundFloat(%v) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}

func TestFormatFloat(t *testing.T) {
	tests := []struct {
		name  string
		input float64
		want  string
	}{
		{"no trailing zeros", 0.5, "0.5"},
		{"integer value", 3.0, "3"},
		{"six places", 0.123456789, "0.123457"},
		{"zero", 0, "0"},
		{"negative", -1.25, "-1.25"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := FormatFloat(tt.input); got != tt.want {
				t.Errorf("FormatFloat(%v) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestFormatAmount(t *testing.T) {
	tests := []struct {
		name   string
		input  float64
		places int
		want   string
	}{
		{"whole ounces trimmed", 2.00, 2, "2"},
		{"half ounce", 1.50, 2, "1.5"},
		{"quarter ounce", 0.75, 2, "0.75"},
		{"milliliters one place", 44.355, 1, "44.4"},
		{"zero", 0, 2, "0"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := FormatAmount(tt.input, tt.places); got != tt.want {
				t.Errorf("FormatAmount(%v, %d) = %q, want %q", tt.input, tt.places, got, tt.want)
			}
		})
	}
}
