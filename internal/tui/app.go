package tui

import (
	"io"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/gdamore/tcell/v2"
	"github.com/rivo/tview"

	"mixmaster/internal/config"
	"mixmaster/internal/mix"
	"mixmaster/internal/paths"
	"mixmaster/internal/slogutil"
	"mixmaster/internal/tui/theme"
	"mixmaster/internal/version"
)

const (
	pageMain = "main"
	pageHelp = "help"
)

// sessionLogMaxSize bounds the TUI session log before rotation.
const sessionLogMaxSize = "5MB"

// App drives the terminal UI event loop over a mix.Engine.
type App struct {
	app    *tview.Application
	pages  *tview.Pages
	layout *Layout
	engine *mix.Engine
	cfg    *config.Config

	log       *slog.Logger
	logCloser io.Closer

	spirits       []string
	spiritIdx     int // 0 means no spirit filter
	favoritesOnly bool
	showNotes     bool
}

// New builds the TUI over an already-constructed engine. The theme
// override and session log live in the engine's state directory.
func New(engine *mix.Engine, cfg *config.Config) (*App, error) {
	th, err := theme.Load(filepath.Join(engine.StateDir(), paths.ThemeFileName))
	if err != nil {
		return nil, err
	}
	th.ApplyGlobalStyles()

	logDir := filepath.Join(engine.StateDir(), paths.LogsDirName)
	if err := os.MkdirAll(logDir, 0o755); err != nil {
		return nil, err
	}
	log, closer, err := slogutil.NewFileLoggerWithRotation(
		filepath.Join(logDir, "tui.log"),
		slogutil.LevelFromString(cfg.Logging.Level),
		sessionLogMaxSize,
		3,
	)
	if err != nil {
		return nil, err
	}

	a := &App{
		app:       tview.NewApplication(),
		pages:     tview.NewPages(),
		layout:    NewLayout(th),
		engine:    engine,
		cfg:       cfg,
		log:       log,
		logCloser: closer,
		showNotes: true,
	}
	a.spirits = append([]string{""}, engine.Spirits().Names...)
	return a, nil
}

// Run builds the screen and enters the event loop. It blocks until the
// user quits.
func (a *App) Run() error {
	defer a.logCloser.Close()

	a.layout.Setup()
	a.pages.AddPage(pageMain, a.layout.Root(), true, true)
	a.pages.AddPage(pageHelp, a.layout.HelpScreen().View(), true, false)

	a.layout.Header().Update(version.Version, a.engine.Dataset().Path(), a.engine.Dataset().Count())

	a.layout.Search().SetHandlers(
		func(key tcell.Key) { a.app.SetFocus(a.layout.Table().View()) },
		func(text string) { a.refresh() },
	)
	a.layout.Table().SetSelectionChangedFunc(func(row, column int) {
		a.updateDetails()
	})
	a.app.SetInputCapture(a.handleKey)

	a.log.Info("session started",
		"dataset", a.engine.Dataset().Path(),
		"recipes", a.engine.Dataset().Count())

	a.refresh()
	return a.app.SetRoot(a.pages, true).SetFocus(a.layout.Table().View()).Run()
}

// handleKey routes global key bindings. Keys only act on the list when
// the search field is not focused.
func (a *App) handleKey(event *tcell.EventKey) *tcell.EventKey {
	if name, _ := a.pages.GetFrontPage(); name == pageHelp {
		if event.Key() == tcell.KeyEscape || event.Rune() == 'q' || event.Rune() == '?' {
			a.pages.SwitchToPage(pageMain)
			a.app.SetFocus(a.layout.Table().View())
			return nil
		}
		return event
	}

	if a.app.GetFocus() == a.layout.Search().Field() {
		return event
	}

	switch event.Rune() {
	case '/':
		a.app.SetFocus(a.layout.Search().Field())
		return nil
	case 'q':
		a.quit()
		return nil
	case 'b':
		a.spiritIdx = (a.spiritIdx + 1) % len(a.spirits)
		a.refresh()
		return nil
	case 'o':
		a.favoritesOnly = !a.favoritesOnly
		a.refresh()
		return nil
	case 'f':
		a.toggleFavorite()
		return nil
	case 's':
		a.surprise()
		return nil
	case 'e':
		a.exportCard()
		return nil
	case 'a':
		a.showNotes = !a.showNotes
		a.updateDetails()
		return nil
	case '?':
		a.pages.SwitchToPage(pageHelp)
		return nil
	case 'j':
		return tcell.NewEventKey(tcell.KeyDown, 0, tcell.ModNone)
	case 'k':
		return tcell.NewEventKey(tcell.KeyUp, 0, tcell.ModNone)
	}
	if event.Key() == tcell.KeyCtrlC {
		a.quit()
		return nil
	}
	return event
}

func (a *App) quit() {
	a.log.Info("session ended")
	a.app.Stop()
}

// refresh re-runs the browse query with the active filters and redraws
// the list.
func (a *App) refresh() {
	resp, err := a.engine.Browse(mix.BrowseOptions{
		Spirit:        a.spirits[a.spiritIdx],
		Query:         a.layout.Search().Text(),
		FavoritesOnly: a.favoritesOnly,
	})
	if err != nil {
		a.log.Error("browse failed", "error", err.Error())
		a.layout.Notifier().ShowError(a.app, "browse failed: %v", err)
		return
	}

	a.layout.Table().SetRows(resp.Cocktails)
	a.layout.Search().UpdateCounter(a.engine.Dataset().Count(), len(resp.Cocktails))
	a.layout.Search().SetFilterLabel(a.filterLabel())
	a.updateDetails()
}

func (a *App) filterLabel() string {
	label := ""
	if spirit := a.spirits[a.spiritIdx]; spirit != "" {
		label = spirit
	}
	if a.favoritesOnly {
		if label != "" {
			label += ", "
		}
		label += "favorites"
	}
	return label
}

// updateDetails redraws the detail pane for the current selection.
func (a *App) updateDetails() {
	selected, ok := a.layout.Table().Selected()
	if !ok {
		a.layout.Details().ShowMessage("No recipe selected.")
		return
	}

	resp, err := a.engine.Show(selected.Name, 0)
	if err != nil {
		a.log.Error("show failed", "recipe", selected.Name, "error", err.Error())
		a.layout.Details().ShowMessage("Failed to load recipe.")
		return
	}

	var notes *mix.AdviseResponse
	if a.showNotes {
		notes = a.engine.AdviseCocktail(resp.Cocktail)
	}
	a.layout.Details().ShowRecipe(resp, notes)
}

// surprise jumps the selection to a random recipe under the current
// spirit filter, clearing filters that would hide it.
func (a *App) surprise() {
	resp, err := a.engine.Surprise(a.spirits[a.spiritIdx], "")
	if err != nil {
		a.layout.Notifier().ShowError(a.app, "surprise failed: %v", err)
		return
	}

	if !a.layout.Table().SelectName(resp.Cocktail.Name) {
		// Hidden by search text or favorites filter; reset and retry
		a.favoritesOnly = false
		a.layout.Search().Field().SetText("")
		a.refresh()
		a.layout.Table().SelectName(resp.Cocktail.Name)
	}
	a.layout.Notifier().ShowSuccess(a.app, "How about a %s?", resp.Cocktail.Name)
	a.log.Info("surprise pick", "recipe", resp.Cocktail.Name)
}

func (a *App) toggleFavorite() {
	selected, ok := a.layout.Table().Selected()
	if !ok {
		return
	}

	var err error
	if a.engine.IsFavorite(selected.Name) {
		_, err = a.engine.Unfavorite(selected.Name)
		if err == nil {
			a.layout.Notifier().ShowWarning(a.app, "Removed %s from favorites", selected.Name)
		}
	} else {
		_, err = a.engine.Favorite(selected.Name)
		if err == nil {
			a.layout.Notifier().ShowSuccess(a.app, "Added %s to favorites", selected.Name)
		}
	}
	if err != nil {
		a.log.Error("favorite toggle failed", "recipe", selected.Name, "error", err.Error())
		a.layout.Notifier().ShowError(a.app, "favorite failed: %v", err)
		return
	}

	name := selected.Name
	a.refresh()
	a.layout.Table().SelectName(name)
}

func (a *App) exportCard() {
	selected, ok := a.layout.Table().Selected()
	if !ok {
		return
	}

	resp, err := a.engine.ExportCard(selected.Name, mix.ExportOptions{})
	if err != nil {
		a.log.Error("export failed", "recipe", selected.Name, "error", err.Error())
		a.layout.Notifier().ShowError(a.app, "export failed: %v", err)
		return
	}
	a.log.Info("card exported", "recipe", selected.Name, "path", resp.Cards[0].Path)
	a.layout.Notifier().ShowSuccess(a.app, "Card saved to %s", resp.Cards[0].Path)
}
