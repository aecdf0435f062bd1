// Package components provides the building blocks of the MixMaster
// terminal UI.
package components

import (
	"fmt"

	"github.com/rivo/tview"

	"mixmaster/internal/tui/theme"
)

// Header shows the application name, version and loaded dataset.
type Header struct {
	view  *tview.TextView
	theme *theme.Theme
}

func NewHeader(theme *theme.Theme) *Header {
	h := &Header{
		view:  tview.NewTextView(),
		theme: theme,
	}
	h.view.SetDynamicColors(true)
	h.view.SetTextAlign(tview.AlignLeft)
	return h
}

// Update fills in the dataset summary line.
func (h *Header) Update(version, datasetPath string, recipes int) {
	h.view.SetText(fmt.Sprintf(
		"[::b]MixMaster[-:-:-] v%s  |  %s (%d recipes)",
		version, datasetPath, recipes,
	))
}

func (h *Header) View() *tview.TextView {
	return h.view
}
