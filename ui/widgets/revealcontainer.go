package widgets

import (
	"image/color"
	"time"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"

	myTheme "github.com/chefolio/chefolio/ui/theme"
)

const (
	RevealDuration = 600 * time.Millisecond
	RevealStagger  = 100 * time.Millisecond
)

// RevealContainer starts with its content hidden behind a cover in the
// page background color. Reveal fades the cover away once; later calls
// do nothing.
type RevealContainer struct {
	widget.BaseWidget

	content  fyne.CanvasObject
	cover    *canvas.Rectangle
	revealed bool
	anim     *fyne.Animation
}

func NewRevealContainer(content fyne.CanvasObject) *RevealContainer {
	r := &RevealContainer{content: content, cover: canvas.NewRectangle(nil)}
	r.ExtendBaseWidget(r)
	r.updateCover()
	return r
}

func (r *RevealContainer) Revealed() bool {
	return r.revealed
}

// Reveal fades the content in after the given delay.
func (r *RevealContainer) Reveal(delay time.Duration) {
	if r.revealed {
		return
	}
	r.revealed = true
	start := r.backgroundColor()
	end := color.NRGBAModel.Convert(start).(color.NRGBA)
	end.A = 0
	r.anim = canvas.NewColorRGBAAnimation(start, end, RevealDuration, func(c color.Color) {
		r.cover.FillColor = c
		r.cover.Refresh()
	})
	r.anim.Curve = fyne.AnimationEaseOut
	if delay <= 0 {
		r.anim.Start()
		return
	}
	time.AfterFunc(delay, func() { fyne.Do(r.anim.Start) })
}

// backgroundColor is the page background, or the toolkit background
// under a theme that does not define one.
func (r *RevealContainer) backgroundColor() color.Color {
	th := r.Theme()
	v := fyne.CurrentApp().Settings().ThemeVariant()
	if c := th.Color(myTheme.ColorNamePageBackground, v); c != nil {
		return c
	}
	if c := th.Color(theme.ColorNameBackground, v); c != nil {
		return c
	}
	return color.Transparent
}

func (r *RevealContainer) updateCover() {
	r.cover.FillColor = r.backgroundColor()
}

func (r *RevealContainer) Refresh() {
	// after the reveal the cover is left fully transparent
	if !r.revealed {
		r.updateCover()
	}
	r.BaseWidget.Refresh()
}

func (r *RevealContainer) CreateRenderer() fyne.WidgetRenderer {
	return widget.NewSimpleRenderer(container.NewStack(r.content, r.cover))
}
