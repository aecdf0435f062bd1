package output

// Match represents a recipe matched against available ingredients
type Match struct {
	Name    string   `json:"name"`
	Spirit  string   `json:"spirit"`
	Score   float64  `json:"score"`
	Matched []string `json:"matched,omitempty"`
	Missing []string `json:"missing,omitempty"`
}

// Note represents an advisory message attached to a recipe
type Note struct {
	Severity string `json:"severity"`
	Text     string `json:"text"`
}

// Meta carries response provenance. GeneratedAt and ElapsedMs vary
// between runs and are excluded from snapshot comparisons.
type Meta struct {
	Dataset     string `json:"dataset,omitempty"`
	Recipes     int    `json:"recipes,omitempty"`
	GeneratedAt string `json:"generatedAt,omitempty"`
	ElapsedMs   int64  `json:"elapsedMs,omitempty"`
}
