package components

import (
	"fmt"

	"github.com/gdamore/tcell/v2"
	"github.com/rivo/tview"

	"mixmaster/internal/tui/theme"
)

// Search is the live name/spirit filter input with a result counter.
type Search struct {
	field   *tview.InputField
	counter *tview.TextView
	theme   *theme.Theme
}

func NewSearch(th *theme.Theme) *Search {
	s := &Search{
		field:   tview.NewInputField(),
		counter: tview.NewTextView(),
		theme:   th,
	}

	s.field.SetTitle("Search")
	s.field.SetTitleColor(th.TitleColor)
	s.field.SetTitleAlign(tview.AlignLeft)
	s.field.SetFieldBackgroundColor(th.BackgroundColor)
	s.field.SetFieldTextColor(th.TextColor)
	s.field.SetBorder(true)
	s.field.SetBorderColor(th.BorderColor)
	s.field.SetFocusFunc(func() {
		s.field.SetBorderColor(th.FocusBorderColor)
	})
	s.field.SetBlurFunc(func() {
		s.field.SetBorderColor(th.BorderColor)
	})

	s.counter.SetDynamicColors(true)
	s.counter.SetTextAlign(tview.AlignRight)
	s.counter.SetBorderPadding(1, 0, 0, 1)
	return s
}

// SetHandlers wires the input callbacks.
func (s *Search) SetHandlers(done func(key tcell.Key), changed func(text string)) {
	s.field.SetDoneFunc(done)
	s.field.SetChangedFunc(changed)
}

// SetFilterLabel surfaces the active spirit/favorites filters in the
// field title.
func (s *Search) SetFilterLabel(label string) {
	if label == "" {
		s.field.SetTitle("Search")
		return
	}
	s.field.SetTitle(fmt.Sprintf("Search (%s)", label))
}

// UpdateCounter shows how many recipes survived the filters.
func (s *Search) UpdateCounter(total, filtered int) {
	s.counter.SetText(fmt.Sprintf("Total: %d | Shown: %d", total, filtered))
}

func (s *Search) Text() string {
	return s.field.GetText()
}

func (s *Search) Field() *tview.InputField {
	return s.field
}

func (s *Search) Counter() *tview.TextView {
	return s.counter
}
