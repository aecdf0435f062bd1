package components

import (
	"strings"

	"github.com/gdamore/tcell/v2"
	"github.com/rivo/tview"

	"mixmaster/internal/mix"
	"mixmaster/internal/tui/theme"
)

// Table lists the filtered recipes, one row per cocktail.
type Table struct {
	view  *tview.Table
	theme *theme.Theme
	rows  []mix.Summary
}

func NewTable(theme *theme.Theme) *Table {
	t := &Table{
		view:  tview.NewTable(),
		theme: theme,
	}
	t.view.SetBorders(false)
	t.view.SetSelectable(true, false)
	t.view.SetFixed(1, 0)
	// Reverse video keeps the selection visible on any terminal theme
	t.view.SetSelectedStyle(tcell.StyleDefault.Reverse(true))
	return t
}

// SetRows replaces the table content. The header row stays fixed.
func (t *Table) SetRows(rows []mix.Summary) {
	t.view.Clear()
	t.rows = rows

	headers := []string{" ", "Name", "Spirit", "Tags", "Difficulty"}
	for col, text := range headers {
		cell := tview.NewTableCell(text).
			SetTextColor(t.theme.TableHeaderColor).
			SetSelectable(false).
			SetAttributes(tcell.AttrBold)
		t.view.SetCell(0, col, cell)
	}

	for i, row := range rows {
		marker := " "
		markerColor := t.theme.MutedColor
		if row.Favorite {
			marker = "*"
			markerColor = t.theme.FavoriteColor
		}
		t.view.SetCell(i+1, 0, tview.NewTableCell(marker).SetTextColor(markerColor))
		t.view.SetCell(i+1, 1, tview.NewTableCell(row.Name).SetTextColor(t.theme.TextColor).SetExpansion(2))
		t.view.SetCell(i+1, 2, tview.NewTableCell(row.Spirit).SetTextColor(t.theme.TextColor).SetExpansion(1))
		t.view.SetCell(i+1, 3, tview.NewTableCell(strings.Join(row.Tags, ", ")).SetTextColor(t.theme.MutedColor).SetExpansion(2))
		t.view.SetCell(i+1, 4, tview.NewTableCell(row.Difficulty).SetTextColor(t.theme.MutedColor).SetExpansion(1))
	}

	if len(rows) > 0 {
		t.view.Select(1, 0)
	}
}

// Selected returns the summary behind the current selection.
func (t *Table) Selected() (mix.Summary, bool) {
	row, _ := t.view.GetSelection()
	idx := row - 1
	if idx < 0 || idx >= len(t.rows) {
		return mix.Summary{}, false
	}
	return t.rows[idx], true
}

// SelectName moves the selection to the named recipe if present.
func (t *Table) SelectName(name string) bool {
	for i, row := range t.rows {
		if row.Name == name {
			t.view.Select(i+1, 0)
			return true
		}
	}
	return false
}

// SetSelectionChangedFunc wires the selection callback.
func (t *Table) SetSelectionChangedFunc(handler func(row, column int)) {
	t.view.SetSelectionChangedFunc(handler)
}

func (t *Table) Count() int {
	return len(t.rows)
}

func (t *Table) View() *tview.Table {
	return t.view
}
