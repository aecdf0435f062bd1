package components

import (
	"github.com/rivo/tview"

	"mixmaster/internal/tui/theme"
)

const helpText = `[::b]MixMaster[-:-:-]

Navigation
  Up/Down, j/k     move through the recipe list
  /                focus the search field (Enter or Esc to leave)
  Esc              close this screen

Filters
  b                cycle the base spirit filter
  o                show favorites only
  (search text matches recipe names and spirits)

Actions
  f                bookmark / unbookmark the selected recipe
  s                surprise me: jump to a random recipe
  e                export the selected recipe as a PNG card
  a                toggle serving and tasting notes in the detail pane

Other
  ?                this screen
  q, Ctrl-C        quit

Cards land in the configured output directory. Favorites persist in
the state database between sessions.`

// HelpScreen is the full-screen key binding reference.
type HelpScreen struct {
	view  *tview.TextView
	theme *theme.Theme
}

func NewHelpScreen(theme *theme.Theme) *HelpScreen {
	h := &HelpScreen{
		view:  tview.NewTextView(),
		theme: theme,
	}
	h.view.SetDynamicColors(true)
	h.view.SetBorder(true)
	h.view.SetTitle("Help")
	h.view.SetTitleColor(theme.TitleColor)
	h.view.SetBorderColor(theme.FocusBorderColor)
	h.view.SetBorderPadding(1, 1, 2, 2)
	h.view.SetText(helpText)
	return h
}

func (h *HelpScreen) View() *tview.TextView {
	return h.view
}
