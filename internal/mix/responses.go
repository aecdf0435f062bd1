package mix

import (
	"mixmaster/internal/output"
	"mixmaster/internal/recipe"
)

// Summary is the list-view slice of a cocktail.
type Summary struct {
	Name       string   `json:"name"`
	Spirit     string   `json:"spirit"`
	Tags       []string `json:"tags,omitempty"`
	Difficulty string   `json:"difficulty,omitempty"`
	Favorite   bool     `json:"favorite,omitempty"`
}

// SearchResponse carries scored ingredient-search results.
type SearchResponse struct {
	Available []string       `json:"available"`
	Matches   []output.Match `json:"matches"`
	Meta      output.Meta    `json:"meta"`
}

// BrowseResponse carries a filtered recipe listing.
type BrowseResponse struct {
	Spirit    string      `json:"spirit,omitempty"`
	Tag       string      `json:"tag,omitempty"`
	Query     string      `json:"query,omitempty"`
	Favorites bool        `json:"favorites,omitempty"`
	Cocktails []Summary   `json:"cocktails"`
	Meta      output.Meta `json:"meta"`
}

// ShowResponse carries one recipe with its scaled display lines.
type ShowResponse struct {
	Cocktail *recipe.Cocktail          `json:"cocktail"`
	Lines    []recipe.ScaledIngredient `json:"lines"`
	TotalOz  float64                   `json:"totalOz"`
	Favorite bool                      `json:"favorite,omitempty"`
	Meta     output.Meta               `json:"meta"`
}

// GenerateResponse carries a generated recipe.
type GenerateResponse struct {
	Style      string                    `json:"style"`
	TotalParts float64                   `json:"totalParts"`
	Cocktail   *recipe.Cocktail          `json:"cocktail"`
	Lines      []recipe.ScaledIngredient `json:"lines"`
	Meta       output.Meta               `json:"meta"`
}

// ExportedCard names one written card file.
type ExportedCard struct {
	Recipe string `json:"recipe"`
	Path   string `json:"path"`
}

// ExportResponse lists the cards written by an export operation.
type ExportResponse struct {
	Cards  []ExportedCard `json:"cards"`
	Bundle string         `json:"bundle,omitempty"`
	Meta   output.Meta    `json:"meta"`
}

// FavoriteResponse reports a favorites mutation.
type FavoriteResponse struct {
	Name    string      `json:"name"`
	Removed bool        `json:"removed,omitempty"`
	Changed bool        `json:"changed"`
	Meta    output.Meta `json:"meta"`
}

// ListResponse carries a plain name listing (spirits, tags, styles,
// favorites).
type ListResponse struct {
	Kind  string      `json:"kind"`
	Names []string    `json:"names"`
	Meta  output.Meta `json:"meta"`
}

// AdviseResponse carries generated serving and tasting notes.
type AdviseResponse struct {
	Name    string        `json:"name"`
	Serving []output.Note `json:"serving"`
	Tasting []output.Note `json:"tasting"`
	Meta    output.Meta   `json:"meta"`
}

// StatusResponse summarizes the loaded dataset and local state.
type StatusResponse struct {
	Version     string      `json:"version"`
	Dataset     string      `json:"dataset"`
	Fingerprint string      `json:"fingerprint"`
	Recipes     int         `json:"recipes"`
	Spirits     int         `json:"spirits"`
	Tags        int         `json:"tags"`
	Styles      []string    `json:"styles"`
	Favorites   int         `json:"favorites"`
	Exports     int         `json:"exports"`
	StateDir    string      `json:"stateDir"`
	Database    string      `json:"database"`
	Meta        output.Meta `json:"meta"`
}
