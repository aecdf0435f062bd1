// Package theme holds the terminal UI color scheme. The defaults work
// on light and dark terminals; users can override individual colors
// through a YAML file in the state directory.
package theme

import (
	"fmt"
	"os"

	"github.com/gdamore/tcell/v2"
	"github.com/rivo/tview"
	"gopkg.in/yaml.v3"
)

// Theme is the resolved color scheme.
type Theme struct {
	TextColor    tcell.Color
	MutedColor   tcell.Color
	TitleColor   tcell.Color
	LabelColor   tcell.Color
	WarningColor tcell.Color
	SuccessColor tcell.Color
	ErrorColor   tcell.Color

	FavoriteColor     tcell.Color
	TableHeaderColor  tcell.Color
	BorderColor       tcell.Color
	FocusBorderColor  tcell.Color
	LegendColor       tcell.Color
	BackgroundColor   tcell.Color
}

// fileTheme is the YAML override shape. Values are W3C color names or
// #rrggbb strings; empty fields keep the default.
type fileTheme struct {
	Text        string `yaml:"text"`
	Muted       string `yaml:"muted"`
	Title       string `yaml:"title"`
	Label       string `yaml:"label"`
	Warning     string `yaml:"warning"`
	Success     string `yaml:"success"`
	Error       string `yaml:"error"`
	Favorite    string `yaml:"favorite"`
	TableHeader string `yaml:"tableHeader"`
	Border      string `yaml:"border"`
	FocusBorder string `yaml:"focusBorder"`
	Legend      string `yaml:"legend"`
	Background  string `yaml:"background"`
}

// Default returns the built-in scheme.
func Default() *Theme {
	return &Theme{
		TextColor:    tcell.ColorDefault,
		MutedColor:   tcell.ColorGray,
		TitleColor:   tcell.ColorPurple,
		LabelColor:   tcell.ColorYellow,
		WarningColor: tcell.ColorYellow,
		SuccessColor: tcell.ColorGreen,
		ErrorColor:   tcell.ColorRed,

		FavoriteColor:    tcell.ColorYellow,
		TableHeaderColor: tcell.ColorBlue,
		BorderColor:      tcell.ColorGray,
		FocusBorderColor: tcell.ColorPurple,
		LegendColor:      tcell.ColorDefault,
		BackgroundColor:  tcell.ColorDefault,
	}
}

// Load returns the default scheme with overrides applied from the YAML
// file at path. A missing file is not an error; a malformed one is.
func Load(path string) (*Theme, error) {
	t := Default()
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return t, nil
		}
		return nil, fmt.Errorf("failed to read theme %s: %w", path, err)
	}

	var f fileTheme
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("failed to parse theme %s: %w", path, err)
	}

	apply := func(dst *tcell.Color, name string) {
		if name != "" {
			*dst = tcell.GetColor(name)
		}
	}
	apply(&t.TextColor, f.Text)
	apply(&t.MutedColor, f.Muted)
	apply(&t.TitleColor, f.Title)
	apply(&t.LabelColor, f.Label)
	apply(&t.WarningColor, f.Warning)
	apply(&t.SuccessColor, f.Success)
	apply(&t.ErrorColor, f.Error)
	apply(&t.FavoriteColor, f.Favorite)
	apply(&t.TableHeaderColor, f.TableHeader)
	apply(&t.BorderColor, f.Border)
	apply(&t.FocusBorderColor, f.FocusBorder)
	apply(&t.LegendColor, f.Legend)
	apply(&t.BackgroundColor, f.Background)

	return t, nil
}

// ApplyGlobalStyles maps the scheme onto tview's global styles.
func (t *Theme) ApplyGlobalStyles() {
	tview.Styles.PrimitiveBackgroundColor = t.BackgroundColor
	tview.Styles.BorderColor = t.BorderColor
	tview.Styles.TitleColor = t.TitleColor
	tview.Styles.PrimaryTextColor = t.TextColor
	tview.Styles.SecondaryTextColor = t.MutedColor
}
