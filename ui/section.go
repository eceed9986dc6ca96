package ui

import (
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/layout"
	"fyne.io/fyne/v2/widget"

	"github.com/chefolio/chefolio/backend/portfolio"
	"github.com/chefolio/chefolio/ui/carousel"
	myTheme "github.com/chefolio/chefolio/ui/theme"
	"github.com/chefolio/chefolio/ui/widgets"
)

// CuisineSection is one cuisine's title, carousel and indicators.
// Its canvas object is Reveal, which keeps it hidden until scrolled into view.
type CuisineSection struct {
	Reveal   *widgets.RevealContainer
	Carousel *widgets.Carousel
}

func NewCuisineSection(c *portfolio.Cuisine, viewport carousel.Viewport, images widgets.CardImageSource, onDishTapped func(*portfolio.Dish)) *CuisineSection {
	ctrl := carousel.NewController(len(c.Dishes), viewport)
	car := widgets.NewCarousel(c, ctrl, images)
	car.OnDishTapped = onDishTapped

	title := widget.NewRichTextWithText(c.Title())
	title.Segments[0].(*widget.TextSegment).Style.TextStyle.Bold = true
	title.Segments[0].(*widget.TextSegment).Style.SizeName = myTheme.SizeNameSectionText

	content := container.New(layout.NewCustomPaddedVBoxLayout(8),
		title,
		car,
		car.Indicators(),
	)
	return &CuisineSection{
		Reveal: widgets.NewRevealContainer(
			container.New(layout.NewCustomPaddedLayout(20, 20, 0, 0), content)),
		Carousel: car,
	}
}

// RecomputeOnResize re-clamps the carousel page for the current viewport and redraws it.
func (s *CuisineSection) RecomputeOnResize() {
	s.Carousel.Controller().RecomputeOnResize()
	s.Carousel.Render()
}
