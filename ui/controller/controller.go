package controller

import (
	"log"
	"net/url"

	"github.com/chefolio/chefolio/backend"
	"github.com/chefolio/chefolio/backend/portfolio"
	"github.com/chefolio/chefolio/ui/dialogs"
	myTheme "github.com/chefolio/chefolio/ui/theme"
	"github.com/chefolio/chefolio/ui/widgets"

	"fyne.io/fyne/v2"
)

type ReloadFunc func()

type Controller struct {
	AppVersion string
	MainWindow fyne.Window
	App        *backend.App
	Theme      *myTheme.MyTheme
	ReloadFunc ReloadFunc

	escapableClose   func()
	haveModal        bool
	runOnModalClosed func()
}

// CloseOnEscape registers the close func of the modal that Escape should dismiss.
func (c *Controller) CloseOnEscape(close func()) {
	c.escapableClose = close
}

func (c *Controller) CloseEscapablePopUp() {
	if c.escapableClose != nil {
		close := c.escapableClose
		c.escapableClose = nil
		close()
	}
}

// If there is currently no modal popup managed by the Controller visible,
// then run f (which should create and show a modal dialog) immediately.
// else run f when the current modal dialog workflow has ended.
func (c *Controller) QueueShowModalFunc(f func()) {
	if c.haveModal {
		c.runOnModalClosed = f
	} else {
		f()
	}
}

func (c *Controller) HaveModal() bool {
	return c.haveModal
}

// ShowDishDetail opens the detail modal for a dish over the page.
// It closes from its Close button, on Escape, or by tapping the backdrop.
func (c *Controller) ShowDishDetail(dish *portfolio.Dish) {
	c.QueueShowModalFunc(func() {
		dlg := dialogs.NewDishDetailDialog(dish, c.App.ImageManager)
		cv := c.MainWindow.Canvas()
		backdrop := widgets.NewModalBackdrop(dlg, dlg.Dismiss)
		closed := false
		dlg.OnDismiss = func() {
			if closed {
				return
			}
			closed = true
			cv.Overlays().Remove(backdrop)
			c.escapableClose = nil
			c.doModalClosed()
		}
		c.CloseOnEscape(dlg.Dismiss)
		c.haveModal = true
		backdrop.Resize(cv.Size())
		cv.Overlays().Add(backdrop)
	})
}

// ToggleAppearance flips between the light and dark theme, resolving
// Auto against the current OS variant, and persists the choice.
func (c *Controller) ToggleAppearance() {
	appearance := myTheme.ToggledAppearance(c.Theme.Variant())
	c.App.SetAppearance(appearance)
	fyne.CurrentApp().Settings().SetTheme(c.Theme)
}

func (c *Controller) OpenURL(u *url.URL) {
	if u == nil {
		return
	}
	if err := fyne.CurrentApp().OpenURL(u); err != nil {
		log.Printf("failed to open url %s: %v", u.String(), err)
	}
}

func (c *Controller) doModalClosed() {
	c.haveModal = false
	if f := c.runOnModalClosed; f != nil {
		c.runOnModalClosed = nil
		f()
	}
}
