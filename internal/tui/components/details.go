package components

import (
	"fmt"
	"strings"

	"github.com/rivo/tview"

	"mixmaster/internal/mix"
	"mixmaster/internal/output"
	"mixmaster/internal/tui/theme"
)

// Details renders the selected recipe: scaled ingredients,
// instructions, and optionally the advisor's notes.
type Details struct {
	view  *tview.TextView
	theme *theme.Theme
}

func NewDetails(theme *theme.Theme) *Details {
	d := &Details{
		view:  tview.NewTextView(),
		theme: theme,
	}
	d.view.SetDynamicColors(true)
	d.view.SetBorder(true)
	d.view.SetTitle("Recipe")
	d.view.SetTitleColor(theme.TitleColor)
	d.view.SetBorderColor(theme.BorderColor)
	d.view.SetBorderPadding(0, 0, 1, 1)
	return d
}

// ShowRecipe fills the pane from a show response, plus advisor notes
// when given.
func (d *Details) ShowRecipe(resp *mix.ShowResponse, notes *mix.AdviseResponse) {
	var b strings.Builder
	c := resp.Cocktail

	fmt.Fprintf(&b, "[::b]%s[-:-:-]\n", c.Name)
	fmt.Fprintf(&b, "[gray](base: %s)[-]\n\n", c.Spirit)

	if len(c.Tags) > 0 {
		fmt.Fprintf(&b, "Tags: %s\n", strings.Join(c.Tags, ", "))
	}
	if c.Difficulty != "" {
		fmt.Fprintf(&b, "Difficulty: %s\n", c.Difficulty)
	}
	fmt.Fprintf(&b, "\n[::b]Ingredients[-:-:-] (%.2g oz pour)\n", resp.TotalOz)
	for _, line := range resp.Lines {
		if line.Accent != "" {
			fmt.Fprintf(&b, "  %-24s %s\n", line.Name, line.Accent)
		} else {
			fmt.Fprintf(&b, "  %-24s %5s oz  %6s ml\n",
				line.Name,
				output.FormatAmount(line.Oz, 2),
				output.FormatAmount(line.Ml, 1))
		}
	}

	if c.Instructions != "" {
		fmt.Fprintf(&b, "\n[::b]Instructions[-:-:-]\n%s\n", c.Instructions)
	}

	if notes != nil {
		fmt.Fprintf(&b, "\n[::b]Notes[-:-:-]\n")
		for _, n := range append(notes.Serving, notes.Tasting...) {
			fmt.Fprintf(&b, "  %s %s\n", severityMark(n.Severity), n.Text)
		}
	}

	d.view.SetText(b.String())
	d.view.ScrollToBeginning()
}

// ShowMessage replaces the pane content with a single line.
func (d *Details) ShowMessage(text string) {
	d.view.SetText(text)
}

func severityMark(severity string) string {
	switch severity {
	case "warning":
		return "[yellow]![-]"
	case "tip":
		return "[green]>[-]"
	default:
		return "-"
	}
}

func (d *Details) View() *tview.TextView {
	return d.view
}
