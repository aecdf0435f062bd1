package components

import (
	"fmt"
	"time"

	"github.com/rivo/tview"

	"mixmaster/internal/tui/theme"
)

// notificationTimeout is how long a message stays visible.
const notificationTimeout = 4 * time.Second

// Notifier flashes transient status messages in the header row.
type Notifier struct {
	view  *tview.TextView
	theme *theme.Theme
	seq   int
}

func NewNotifier(theme *theme.Theme) *Notifier {
	n := &Notifier{
		view:  tview.NewTextView(),
		theme: theme,
	}
	n.view.SetDynamicColors(true)
	n.view.SetTextAlign(tview.AlignRight)
	return n
}

func (n *Notifier) ShowSuccess(app *tview.Application, format string, args ...interface{}) {
	n.show(app, "green", fmt.Sprintf(format, args...))
}

func (n *Notifier) ShowWarning(app *tview.Application, format string, args ...interface{}) {
	n.show(app, "yellow", fmt.Sprintf(format, args...))
}

func (n *Notifier) ShowError(app *tview.Application, format string, args ...interface{}) {
	n.show(app, "red", fmt.Sprintf(format, args...))
}

// show displays the message and clears it after the timeout unless a
// newer message replaced it.
func (n *Notifier) show(app *tview.Application, color, text string) {
	n.seq++
	seq := n.seq
	n.view.SetText(fmt.Sprintf("[%s]%s[-]", color, text))

	time.AfterFunc(notificationTimeout, func() {
		app.QueueUpdateDraw(func() {
			if n.seq == seq {
				n.view.SetText("")
			}
		})
	})
}

func (n *Notifier) View() *tview.TextView {
	return n.view
}
