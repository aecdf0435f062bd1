package components

import (
	"github.com/rivo/tview"

	"mixmaster/internal/tui/theme"
)

// Legend is the one-line key binding reminder at the bottom.
type Legend struct {
	view  *tview.TextView
	theme *theme.Theme
}

func NewLegend(theme *theme.Theme) *Legend {
	l := &Legend{
		view:  tview.NewTextView(),
		theme: theme,
	}
	l.view.SetDynamicColors(true)
	l.view.SetTextAlign(tview.AlignCenter)
	l.view.SetText(
		"[::b]/[-:-:-] search  " +
			"[::b]b[-:-:-] spirit  " +
			"[::b]o[-:-:-] favorites  " +
			"[::b]f[-:-:-] toggle fav  " +
			"[::b]s[-:-:-] surprise  " +
			"[::b]e[-:-:-] export  " +
			"[::b]a[-:-:-] notes  " +
			"[::b]?[-:-:-] help  " +
			"[::b]q[-:-:-] quit")
	return l
}

func (l *Legend) View() *tview.TextView {
	return l.view
}
