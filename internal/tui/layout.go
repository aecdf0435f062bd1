// Package tui is the terminal front-end: a live-filtered recipe list
// with a detail pane, backed by the same engine as the CLI.
package tui

import (
	"github.com/rivo/tview"

	"mixmaster/internal/tui/components"
	"mixmaster/internal/tui/theme"
)

// Layout owns the UI components and arranges them into the root grid.
type Layout struct {
	grid       *tview.Grid
	header     *components.Header
	search     *components.Search
	table      *components.Table
	details    *components.Details
	legend     *components.Legend
	notifier   *components.Notifier
	helpScreen *components.HelpScreen
	theme      *theme.Theme
}

func NewLayout(th *theme.Theme) *Layout {
	return &Layout{
		grid:       tview.NewGrid(),
		header:     components.NewHeader(th),
		search:     components.NewSearch(th),
		table:      components.NewTable(th),
		details:    components.NewDetails(th),
		legend:     components.NewLegend(th),
		notifier:   components.NewNotifier(th),
		helpScreen: components.NewHelpScreen(th),
		theme:      th,
	}
}

// Setup arranges the components: header and notifier on top, search
// row, the list beside the detail pane, legend at the bottom.
func (l *Layout) Setup() {
	headerRow := tview.NewFlex().SetDirection(tview.FlexColumn).
		AddItem(l.header.View(), 0, 2, false).
		AddItem(l.notifier.View(), 0, 1, false)

	searchRow := tview.NewFlex().SetDirection(tview.FlexColumn).
		AddItem(l.search.Field(), 0, 3, false).
		AddItem(l.search.Counter(), 0, 1, false)

	mainRow := tview.NewFlex().SetDirection(tview.FlexColumn).
		AddItem(l.table.View(), 0, 3, true).
		AddItem(l.details.View(), 0, 2, false)

	l.grid.
		SetRows(1, 3, 0, 1).
		SetColumns(0).
		AddItem(headerRow, 0, 0, 1, 1, 0, 0, false).
		AddItem(searchRow, 1, 0, 1, 1, 0, 0, false).
		AddItem(mainRow, 2, 0, 1, 1, 0, 0, true).
		AddItem(l.legend.View(), 3, 0, 1, 1, 0, 0, false)
}

// Root returns the top-level primitive.
func (l *Layout) Root() tview.Primitive {
	return l.grid
}

func (l *Layout) Header() *components.Header         { return l.header }
func (l *Layout) Search() *components.Search         { return l.search }
func (l *Layout) Table() *components.Table           { return l.table }
func (l *Layout) Details() *components.Details       { return l.details }
func (l *Layout) Notifier() *components.Notifier     { return l.notifier }
func (l *Layout) HelpScreen() *components.HelpScreen { return l.helpScreen }
