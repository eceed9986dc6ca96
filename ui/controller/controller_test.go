package controller

import (
	"testing"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/test"
	"fyne.io/fyne/v2/widget"

	"github.com/chefolio/chefolio/backend"
	"github.com/chefolio/chefolio/backend/portfolio"
	"github.com/chefolio/chefolio/ui/dialogs"
	myTheme "github.com/chefolio/chefolio/ui/theme"
	"github.com/chefolio/chefolio/ui/widgets"
)

func newTestController(t *testing.T) *Controller {
	a := test.NewTempApp(t)
	cfg := &backend.ThemeConfig{Appearance: backend.AppearanceLight}
	a.Settings().SetTheme(myTheme.NewMyTheme(cfg, t.TempDir(), func() string { return cfg.Appearance }))
	w := test.NewWindow(widget.NewLabel("page"))
	t.Cleanup(w.Close)
	w.Resize(fyne.NewSize(800, 600))
	return &Controller{MainWindow: w, App: &backend.App{}}
}

func topDialog(t *testing.T, c *Controller) (*widgets.ModalBackdrop, *dialogs.DishDetailDialog) {
	t.Helper()
	top := c.MainWindow.Canvas().Overlays().Top()
	backdrop, ok := top.(*widgets.ModalBackdrop)
	if !ok {
		t.Fatalf("top overlay is %T, want *widgets.ModalBackdrop", top)
	}
	return backdrop, backdrop.Content().(*dialogs.DishDetailDialog)
}

func TestShowDishDetailCloseOnEscape(t *testing.T) {
	c := newTestController(t)
	c.ShowDishDetail(&portfolio.Dish{Name: "Paella"})
	if !c.HaveModal() {
		t.Fatal("expected a modal")
	}
	_, dlg := topDialog(t, c)
	if dlg.Dish().Name != "Paella" {
		t.Errorf("dialog shows %q", dlg.Dish().Name)
	}

	c.CloseEscapablePopUp()
	if c.HaveModal() || c.MainWindow.Canvas().Overlays().Top() != nil {
		t.Error("Escape did not close the dialog")
	}
	c.CloseEscapablePopUp()
}

func TestShowDishDetailCloseOnBackdrop(t *testing.T) {
	c := newTestController(t)
	c.ShowDishDetail(&portfolio.Dish{Name: "Paella"})
	backdrop, dlg := topDialog(t, c)

	dlg.Tapped(&fyne.PointEvent{})
	if !c.HaveModal() {
		t.Fatal("tapping the dialog itself closed it")
	}
	backdrop.Tapped(&fyne.PointEvent{})
	if c.HaveModal() || c.MainWindow.Canvas().Overlays().Top() != nil {
		t.Error("tapping the backdrop did not close the dialog")
	}
}

func TestShowDishDetailQueuesWhileOpen(t *testing.T) {
	c := newTestController(t)
	c.ShowDishDetail(&portfolio.Dish{Name: "First"})
	c.ShowDishDetail(&portfolio.Dish{Name: "Second"})
	if n := len(c.MainWindow.Canvas().Overlays().List()); n != 1 {
		t.Fatalf("%d overlays open, want 1", n)
	}

	_, dlg := topDialog(t, c)
	dlg.Dismiss()
	_, dlg = topDialog(t, c)
	if dlg.Dish().Name != "Second" || !c.HaveModal() {
		t.Errorf("queued dialog not shown, top is %q", dlg.Dish().Name)
	}
}
