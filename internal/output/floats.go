package output

import (
	"math"
	"strconv"
	"strings"
)

// RoundTo rounds a float to the given number of decimal places
func RoundTo(f float64, places int) float64 {
	multiplier := math.Pow(10, float64(places))
	return math.Round(f*multiplier) / multiplier
}

// RoundFloat rounds a float to max 6 decimal places (score precision)
func RoundFloat(f float64) float64 {
	return RoundTo(f, 6)
}

// FormatFloat formats a float with no trailing zeros
func FormatFloat(f float64) string {
	// Round to 6 decimal places first
	rounded := RoundFloat(f)

	// Format with 6 decimal places
	str := strconv.FormatFloat(rounded, 'f', 6, 64)

	// Remove trailing zeros
	str = strings.TrimRight(str, "0")

	// Remove trailing decimal point if no decimals remain
	str = strings.TrimRight(str, ".")

	return str
}

// FormatAmount formats a measure to the given precision, trimming
// trailing zeros ("2.00" -> "2", "1.50" -> "1.5").
func FormatAmount(f float64, places int) string {
	str := strconv.FormatFloat(RoundTo(f, places), 'f', places, 64)
	if strings.Contains(str, ".") {
		str = strings.TrimRight(str, "0")
		str = strings.TrimRight(str, ".")
	}
	return str
}
