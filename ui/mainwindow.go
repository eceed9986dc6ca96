package ui

import (
	"context"
	"errors"
	"log"
	"math"

	"github.com/chefolio/chefolio/backend"
	"github.com/chefolio/chefolio/backend/portfolio"
	"github.com/chefolio/chefolio/ui/controller"
	"github.com/chefolio/chefolio/ui/shortcuts"
	"github.com/chefolio/chefolio/ui/theme"
	"github.com/chefolio/chefolio/ui/widgets"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/lang"
)

type MainWindow struct {
	Window fyne.Window

	App        *backend.App
	Controller *controller.Controller

	theme          *theme.MyTheme
	displayAppName string
	page           *PortfolioPage
	loading        *widgets.LoadingDots
	toasts         *ToastOverlay
	view           *fyne.Container
	loadCancel     context.CancelFunc
}

func NewMainWindow(fyneApp fyne.App, displayAppName, appVersion string, app *backend.App, size fyne.Size) *MainWindow {
	m := &MainWindow{
		App:            app,
		Window:         fyneApp.NewWindow(displayAppName),
		displayAppName: displayAppName,
		loading:        widgets.NewLoadingDots(),
		toasts:         NewToastOverlay(),
	}
	m.theme = theme.NewMyTheme(&app.Config.Theme, app.ThemesDir(), app.Appearance)
	fyneApp.Settings().SetTheme(m.theme)

	m.Controller = &controller.Controller{
		AppVersion: appVersion,
		MainWindow: m.Window,
		App:        app,
		Theme:      m.theme,
		ReloadFunc: m.Reload,
	}

	m.view = container.NewStack(container.NewCenter(m.loading))
	m.Window.SetContent(container.NewStack(m.view, m.toasts))
	m.Window.Resize(size)
	m.addShortcuts()
	return m
}

// LoadPortfolio loads the portfolio in the background and shows it,
// or the error view if it cannot be loaded.
func (m *MainWindow) LoadPortfolio() {
	m.load(false)
}

// Reload loads the portfolio again, replacing the current page.
func (m *MainWindow) Reload() {
	m.load(true)
}

// WatchDataSource reloads the page whenever the local data file changes.
func (m *MainWindow) WatchDataSource() {
	err := m.App.WatchDataSource(func() { fyne.Do(m.Reload) })
	if err != nil && !errors.Is(err, backend.ErrNotWatchable) {
		log.Printf("failed to watch data source: %v", err)
	}
}

func (m *MainWindow) load(isReload bool) {
	if m.loadCancel != nil {
		m.loadCancel()
	}
	ctx, cancel := context.WithCancel(context.Background())
	m.loadCancel = cancel
	if m.page == nil {
		m.loading.Start()
	}
	go func() {
		p, err := m.App.LoadPortfolio(ctx)
		fyne.Do(func() {
			if ctx.Err() != nil {
				return // superseded by a newer load
			}
			m.loading.Stop()
			if err != nil {
				m.showError(isReload)
			} else {
				m.showPortfolio(p, isReload)
			}
		})
	}()
}

func (m *MainWindow) showPortfolio(p *portfolio.Portfolio, isReload bool) {
	if m.page != nil {
		m.page.Unload()
	}
	m.page = NewPortfolioPage(p, m.App.ImageManager, m.Controller.ShowDishDetail)
	m.page.Header.OnToggleTheme = m.toggleTheme
	m.page.Header.UpdateThemeIcon(m.theme.Variant())
	m.setView(m.page)
	m.SetTitle(p.WindowTitle())
	if isReload {
		m.toasts.ShowSuccessToast(lang.L("Portfolio reloaded"))
	}
}

func (m *MainWindow) showError(isReload bool) {
	if m.page != nil {
		m.page.Unload()
		m.page = nil
	}
	m.setView(widgets.NewErrorView(m.App.DataSource()))
	m.SetTitle(m.displayAppName)
	if isReload {
		m.toasts.ShowErrorToast(lang.L("Could not reload portfolio"))
	}
}

func (m *MainWindow) setView(o fyne.CanvasObject) {
	m.view.Objects = []fyne.CanvasObject{o}
	m.view.Refresh()
}

func (m *MainWindow) toggleTheme() {
	m.Controller.ToggleAppearance()
	if m.page != nil {
		m.page.Header.UpdateThemeIcon(m.theme.Variant())
	}
}

func (m *MainWindow) addShortcuts() {
	if shortcuts.QuitShortcut != nil {
		m.Canvas().AddShortcut(shortcuts.QuitShortcut, func(_ fyne.Shortcut) {
			m.Quit()
		})
	}
	m.Canvas().AddShortcut(&shortcuts.ShortcutReload, func(_ fyne.Shortcut) {
		m.Reload()
	})
	m.Canvas().AddShortcut(&shortcuts.ShortcutToggleTheme, func(_ fyne.Shortcut) {
		m.toggleTheme()
	})
	m.Canvas().AddShortcut(&shortcuts.ShortcutCloseWindow, func(_ fyne.Shortcut) {
		m.Quit()
	})
	for i, ns := range shortcuts.NavShortcuts {
		m.Canvas().AddShortcut(&ns, func(a Anchor) func(fyne.Shortcut) {
			return func(fyne.Shortcut) {
				if m.page != nil && !m.Controller.HaveModal() {
					m.page.ScrollTo(a)
				}
			}
		}(Anchor(i)))
	}

	m.Canvas().SetOnTypedKey(func(e *fyne.KeyEvent) {
		switch e.Name {
		case fyne.KeyEscape:
			m.Controller.CloseEscapablePopUp()
		case fyne.KeyUp:
			if m.page != nil {
				m.page.ScrollUp()
			}
		case fyne.KeyDown:
			if m.page != nil {
				m.page.ScrollDown()
			}
		}
	})
}

func (m *MainWindow) Show() {
	m.Window.Show()
}

func (m *MainWindow) Canvas() fyne.Canvas {
	return m.Window.Canvas()
}

func (m *MainWindow) SetTitle(title string) {
	m.Window.SetTitle(title)
}

func (m *MainWindow) Quit() {
	m.SaveWindowSize()
	fyne.CurrentApp().Quit()
}

func (m *MainWindow) SaveWindowSize() {
	// round sizes to even to avoid Wayland issues with 2x scaling factor
	size := m.Window.Canvas().Size()
	m.App.SetWindowSize(int(math.RoundToEven(float64(size.Width))), int(math.RoundToEven(float64(size.Height))))
}
