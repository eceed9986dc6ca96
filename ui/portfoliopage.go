package ui

import (
	"time"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"

	"github.com/chefolio/chefolio/backend/portfolio"
	"github.com/chefolio/chefolio/ui/carousel"
	"github.com/chefolio/chefolio/ui/layouts"
	"github.com/chefolio/chefolio/ui/util"
	"github.com/chefolio/chefolio/ui/widgets"
)

const (
	resizeSettleDelay    = 250 * time.Millisecond
	anchorScrollDuration = 400 * time.Millisecond
	keyScrollAmount      = 75

	contentMaxWidth float32 = 1200
	contentPadX     float32 = 24
)

// PortfolioPage is the whole scrolling page for one loaded portfolio.
// It owns one carousel controller per cuisine; a reload builds a new page.
type PortfolioPage struct {
	widget.BaseWidget

	Header *Header

	portfolio *portfolio.Portfolio
	hero      *Hero
	sections  []*CuisineSection
	footer    fyne.CanvasObject
	scroll    *container.Scroll
	container *fyne.Container

	reveal        *util.RevealTracker
	resizeSettled func()
	scrollAnim    *fyne.Animation
}

func NewPortfolioPage(p *portfolio.Portfolio, images widgets.CardImageSource, onDishTapped func(*portfolio.Dish)) *PortfolioPage {
	page := &PortfolioPage{portfolio: p}
	page.ExtendBaseWidget(page)

	viewport := carousel.ViewportFunc(func() float32 { return page.Size().Width })
	page.Header = NewHeader(p.Chef.Name)
	page.Header.OnNavigate = page.ScrollTo
	page.hero = NewHero(&p.Chef, images)

	body := container.NewVBox(page.hero)
	for _, c := range p.Cuisines {
		s := NewCuisineSection(c, viewport, images, onDishTapped)
		page.sections = append(page.sections, s)
		body.Add(s.Reveal)
	}
	page.reveal = util.NewRevealTracker(len(page.sections), func(i int) {
		page.sections[i].Reveal.Reveal(time.Duration(i) * widgets.RevealStagger)
	})
	page.footer = NewFooter(&p.Chef)

	page.scroll = container.NewVScroll(container.NewVBox(
		container.New(&layouts.ContentLayout{MaxWidth: contentMaxWidth, PadX: contentPadX}, body),
		page.footer,
	))
	page.scroll.OnScrolled = func(fyne.Position) { page.updateReveal() }
	page.resizeSettled = util.NewDebouncer(resizeSettleDelay, func() {
		fyne.Do(page.RecomputeOnResize)
	})

	page.container = container.NewBorder(page.Header, nil, nil, nil, page.scroll)
	return page
}

func (p *PortfolioPage) Portfolio() *portfolio.Portfolio {
	return p.portfolio
}

func (p *PortfolioPage) Sections() []*CuisineSection {
	return p.sections
}

// Resize re-pages the carousels once the width stops changing. The first
// layout is applied at once so the page never shows with unclamped carousels.
func (p *PortfolioPage) Resize(size fyne.Size) {
	old := p.Size()
	p.BaseWidget.Resize(size)
	if size.Width != old.Width {
		if old.Width == 0 {
			p.RecomputeOnResize()
		} else {
			p.resizeSettled()
		}
	}
	p.updateReveal()
}

// RecomputeOnResize re-clamps every carousel to the current viewport width.
func (p *PortfolioPage) RecomputeOnResize() {
	for _, s := range p.sections {
		s.RecomputeOnResize()
	}
}

// ScrollTo smoothly scrolls the page so the given anchor is at the top.
func (p *PortfolioPage) ScrollTo(a Anchor) {
	var target float32
	switch a {
	case AnchorDishes:
		if len(p.sections) > 0 {
			target = p.contentY(p.sections[0].Reveal)
		}
	case AnchorContact:
		target = p.contentY(p.footer)
	}
	p.animateScrollTo(target)
}

// ScrollBy scrolls the page by amount without animation.
func (p *PortfolioPage) ScrollBy(amount float32) {
	p.setScrollOffset(p.scroll.Offset.Y + amount)
}

func (p *PortfolioPage) ScrollUp() {
	p.ScrollBy(-keyScrollAmount)
}

func (p *PortfolioPage) ScrollDown() {
	p.ScrollBy(keyScrollAmount)
}

// Unload cancels all pending image loads of the page.
func (p *PortfolioPage) Unload() {
	if p.scrollAnim != nil {
		p.scrollAnim.Stop()
	}
	p.hero.Image.Unload()
	for _, s := range p.sections {
		s.Carousel.Unload()
	}
}

func (p *PortfolioPage) animateScrollTo(target float32) {
	if p.scrollAnim != nil {
		p.scrollAnim.Stop()
	}
	start := p.scroll.Offset.Y
	target = p.clampScroll(target)
	p.scrollAnim = fyne.NewAnimation(anchorScrollDuration, func(f float32) {
		p.setScrollOffset(start + (target-start)*f)
	})
	p.scrollAnim.Curve = fyne.AnimationEaseInOut
	p.scrollAnim.Start()
}

func (p *PortfolioPage) setScrollOffset(y float32) {
	p.scroll.Offset.Y = p.clampScroll(y)
	p.scroll.Refresh()
	p.updateReveal()
}

func (p *PortfolioPage) clampScroll(y float32) float32 {
	maxY := fyne.Max(0, p.scroll.Content.MinSize().Height-p.scroll.Size().Height)
	return fyne.Min(fyne.Max(y, 0), maxY)
}

func (p *PortfolioPage) updateReveal() {
	p.reveal.Update(p.scroll.Offset.Y, p.scroll.Size().Height, func(i int) (float32, float32) {
		obj := p.sections[i].Reveal
		return p.contentY(obj), obj.Size().Height
	})
}

// contentY is the top of o in the coordinates of the scrolled content.
func (p *PortfolioPage) contentY(o fyne.CanvasObject) float32 {
	d := fyne.CurrentApp().Driver()
	return d.AbsolutePositionForObject(o).Y - d.AbsolutePositionForObject(p.scroll.Content).Y
}

func (p *PortfolioPage) CreateRenderer() fyne.WidgetRenderer {
	return widget.NewSimpleRenderer(p.container)
}
