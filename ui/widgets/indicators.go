package widgets

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/driver/desktop"
	"fyne.io/fyne/v2/lang"
	"fyne.io/fyne/v2/layout"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"
	ttwidget "github.com/dweymouth/fyne-tooltip/widget"

	myTheme "github.com/chefolio/chefolio/ui/theme"
)

// Indicators is the row of dots below a carousel, one per dish.
// The dot for the active page is highlighted; tapping a dot jumps to it.
type Indicators struct {
	widget.BaseWidget

	OnSelected func(index int)

	active    int
	dots      []*indicatorDot
	container *fyne.Container
}

func NewIndicators(count int) *Indicators {
	ind := &Indicators{container: container.NewHBox()}
	ind.ExtendBaseWidget(ind)
	for i := 0; i < count; i++ {
		idx := i
		d := newIndicatorDot(func() {
			if ind.OnSelected != nil {
				ind.OnSelected(idx)
			}
		})
		d.SetToolTip(lang.L("Go to slide {{.Number}}", map[string]any{"Number": i + 1}))
		ind.dots = append(ind.dots, d)
		ind.container.Add(d)
	}
	ind.SetActive(0)
	return ind
}

func (ind *Indicators) Count() int {
	return len(ind.dots)
}

func (ind *Indicators) Active() int {
	return ind.active
}

func (ind *Indicators) SetActive(index int) {
	ind.active = index
	for i, d := range ind.dots {
		d.setActive(i == index)
	}
}

func (ind *Indicators) CreateRenderer() fyne.WidgetRenderer {
	return widget.NewSimpleRenderer(container.NewCenter(ind.container))
}

type indicatorDot struct {
	ttwidget.ToolTipWidget

	onTapped func()
	active   bool
	circle   *canvas.Circle
}

var (
	_ fyne.Tappable      = (*indicatorDot)(nil)
	_ desktop.Cursorable = (*indicatorDot)(nil)
)

func newIndicatorDot(onTapped func()) *indicatorDot {
	d := &indicatorDot{onTapped: onTapped, circle: canvas.NewCircle(nil)}
	d.ExtendBaseWidget(d)
	return d
}

func (d *indicatorDot) setActive(active bool) {
	if d.active != active {
		d.active = active
		d.Refresh()
	}
}

func (d *indicatorDot) Tapped(*fyne.PointEvent) {
	if d.onTapped != nil {
		d.onTapped()
	}
}

func (d *indicatorDot) Cursor() desktop.Cursor {
	return desktop.PointerCursor
}

func (d *indicatorDot) MinSize() fyne.Size {
	return fyne.NewSquareSize(theme.IconInlineSize() * 0.75)
}

func (d *indicatorDot) Refresh() {
	th := d.Theme()
	v := fyne.CurrentApp().Settings().ThemeVariant()
	if d.active {
		d.circle.FillColor = th.Color(theme.ColorNamePrimary, v)
	} else {
		d.circle.FillColor = th.Color(myTheme.ColorNameIndicator, v)
	}
	d.circle.Refresh()
}

func (d *indicatorDot) CreateRenderer() fyne.WidgetRenderer {
	d.Refresh()
	// dots are drawn smaller than their tappable area
	pad := theme.IconInlineSize() * 0.2
	return widget.NewSimpleRenderer(container.New(
		layout.NewCustomPaddedLayout(pad, pad, pad, pad), d.circle))
}
