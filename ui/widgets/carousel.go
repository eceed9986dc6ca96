package widgets

import (
	"time"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/driver/desktop"
	"fyne.io/fyne/v2/driver/mobile"
	"fyne.io/fyne/v2/lang"
	"fyne.io/fyne/v2/layout"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"

	"github.com/chefolio/chefolio/backend/portfolio"
	"github.com/chefolio/chefolio/ui/carousel"
	"github.com/chefolio/chefolio/ui/layouts"
)

const carouselHeight float32 = 380

// Carousel is the paged strip of dish cards for one cuisine, with
// previous/next buttons overlaid on its edges. The page indicators are
// built alongside and placed by the caller via Indicators().
// All paging decisions are delegated to the carousel.Controller.
type Carousel struct {
	widget.BaseWidget

	OnDishTapped func(*portfolio.Dish)

	ctrl       *carousel.Controller
	track      *carouselTrack
	prev       *IconButton
	next       *IconButton
	indicators *Indicators
}

func NewCarousel(cuisine *portfolio.Cuisine, ctrl *carousel.Controller, images CardImageSource) *Carousel {
	c := &Carousel{ctrl: ctrl}
	c.ExtendBaseWidget(c)

	c.track = newCarouselTrack(c, cuisine.Dishes, images)
	c.prev = NewIconButton(theme.NavigateBackIcon(), func() { c.changeSlide(-1) })
	c.prev.Round = true
	c.prev.SetToolTip(lang.L("Previous slide"))
	c.next = NewIconButton(theme.NavigateNextIcon(), func() { c.changeSlide(1) })
	c.next.Round = true
	c.next.SetToolTip(lang.L("Next slide"))
	c.indicators = NewIndicators(ctrl.ItemCount())
	c.indicators.OnSelected = func(i int) {
		c.ctrl.GoToSlide(i)
		c.Render()
	}
	return c
}

func (c *Carousel) Controller() *carousel.Controller {
	return c.ctrl
}

// Indicators returns the dot row that tracks this carousel's page.
func (c *Carousel) Indicators() *Indicators {
	return c.indicators
}

// Render applies the controller's current page to the strip offset,
// the indicators and the enabled state of the navigation buttons.
// It does nothing for an empty cuisine or before the carousel is laid out.
func (c *Carousel) Render() {
	state, ok := c.ctrl.Render(c.track.itemWidth())
	if !ok {
		c.prev.Disable()
		c.next.Disable()
		return
	}
	c.track.setOffset(state.Offset)
	c.indicators.SetActive(state.ActiveIndicator)
	c.prev.SetDisabled(state.PrevDisabled)
	c.next.SetDisabled(state.NextDisabled)
}

// Unload cancels image loads of all cards.
func (c *Carousel) Unload() {
	for _, card := range c.track.cards {
		card.Unload()
	}
}

func (c *Carousel) changeSlide(delta int) {
	c.ctrl.ChangeSlide(delta)
	c.Render()
}

func (c *Carousel) MinSize() fyne.Size {
	return fyne.NewSize(c.next.MinSize().Width*2, carouselHeight)
}

func (c *Carousel) CreateRenderer() fyne.WidgetRenderer {
	buttons := container.NewBorder(nil, nil,
		container.NewCenter(c.prev), container.NewCenter(c.next), layout.NewSpacer())
	inset := theme.Padding() * 2
	return widget.NewSimpleRenderer(container.NewStack(c.track,
		container.New(layout.NewCustomPaddedLayout(0, 0, inset, inset), buttons)))
}

// carouselTrack is the visible window onto the strip of cards.
// It turns pointer and touch input into controller gesture calls.
type carouselTrack struct {
	widget.BaseWidget

	owner  *Carousel
	cards  []*DishCard
	taps   []carousel.TapTracker
	layout *layouts.StripLayout
	strip  *fyne.Container

	now func() time.Time
}

var (
	_ desktop.Mouseable = (*carouselTrack)(nil)
	_ desktop.Hoverable = (*carouselTrack)(nil)
	_ fyne.Draggable    = (*carouselTrack)(nil)
	_ fyne.Tappable     = (*carouselTrack)(nil)
	_ mobile.Touchable  = (*carouselTrack)(nil)
)

func newCarouselTrack(owner *Carousel, dishes []*portfolio.Dish, images CardImageSource) *carouselTrack {
	t := &carouselTrack{
		owner:  owner,
		taps:   make([]carousel.TapTracker, len(dishes)),
		layout: &layouts.StripLayout{Gap: carousel.ItemGap, Clip: true},
		now:    time.Now,
	}
	t.ExtendBaseWidget(t)
	t.strip = container.New(t.layout)
	for _, d := range dishes {
		card := NewDishCard(images)
		card.Update(d)
		t.cards = append(t.cards, card)
		t.strip.Add(card)
	}
	return t
}

func (t *carouselTrack) itemWidth() float32 {
	w := t.Size().Width
	if w <= 0 {
		return 0
	}
	return layouts.ItemWidthFor(w, t.owner.ctrl.VisibleCount(), carousel.ItemGap)
}

func (t *carouselTrack) setOffset(offset float32) {
	t.layout.ItemWidth = t.itemWidth()
	t.layout.Offset = offset
	t.strip.Refresh()
}

func (t *carouselTrack) Resize(size fyne.Size) {
	changed := size != t.Size()
	t.BaseWidget.Resize(size)
	if changed {
		t.owner.Render()
	}
}

// cardAt returns the index of the card under x, or -1 for a gap or empty space.
func (t *carouselTrack) cardAt(x float32) int {
	w := t.layout.ItemWidth
	if w <= 0 {
		return -1
	}
	rel := x - t.layout.Offset
	if rel < 0 {
		return -1
	}
	stride := w + t.layout.Gap
	idx := int(rel / stride)
	if idx >= len(t.cards) || rel-float32(idx)*stride >= w {
		return -1
	}
	return idx
}

func (t *carouselTrack) pressCard(pos fyne.Position) {
	if idx := t.cardAt(pos.X); idx >= 0 {
		t.taps[idx].Press(t.now(), pos.X, pos.Y)
	}
}

func (t *carouselTrack) endGesture(changed bool) {
	if changed {
		t.owner.Render()
	}
}

func (t *carouselTrack) MouseDown(e *desktop.MouseEvent) {
	if e.Button != desktop.MouseButtonPrimary {
		return
	}
	t.owner.ctrl.MouseDown(e.AbsolutePosition.X)
	t.pressCard(e.Position)
}

func (t *carouselTrack) MouseUp(*desktop.MouseEvent) {
	t.endGesture(t.owner.ctrl.MouseUp())
}

func (t *carouselTrack) MouseIn(*desktop.MouseEvent) {}

func (t *carouselTrack) MouseMoved(e *desktop.MouseEvent) {
	t.owner.ctrl.MouseMove(e.AbsolutePosition.X)
}

// MouseOut ends a drag when the pointer leaves the carousel.
func (t *carouselTrack) MouseOut() {
	t.endGesture(t.owner.ctrl.MouseUp())
}

func (t *carouselTrack) Dragged(e *fyne.DragEvent) {
	// the desktop driver reports pointer motion during a press as drags
	t.owner.ctrl.MouseMove(e.AbsolutePosition.X)
	t.owner.ctrl.TouchMove(e.AbsolutePosition.X)
}

func (t *carouselTrack) DragEnd() {
	t.endGesture(t.owner.ctrl.MouseUp())
}

func (t *carouselTrack) TouchDown(e *mobile.TouchEvent) {
	t.owner.ctrl.TouchStart(e.AbsolutePosition.X)
	t.pressCard(e.Position)
}

func (t *carouselTrack) TouchUp(*mobile.TouchEvent) {
	t.endGesture(t.owner.ctrl.TouchEnd())
}

func (t *carouselTrack) TouchCancel(*mobile.TouchEvent) {}

func (t *carouselTrack) Tapped(e *fyne.PointEvent) {
	idx := t.cardAt(e.Position.X)
	if idx < 0 {
		return
	}
	isTap := t.taps[idx].Release(t.now(), e.Position.X, e.Position.Y)
	t.taps[idx] = carousel.TapTracker{}
	if isTap && t.owner.OnDishTapped != nil {
		t.owner.OnDishTapped(t.cards[idx].Dish())
	}
}

func (t *carouselTrack) MinSize() fyne.Size {
	return t.strip.MinSize()
}

func (t *carouselTrack) CreateRenderer() fyne.WidgetRenderer {
	return widget.NewSimpleRenderer(t.strip)
}
