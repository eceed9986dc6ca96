package ui

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/layout"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"

	"github.com/chefolio/chefolio/backend/portfolio"
	myTheme "github.com/chefolio/chefolio/ui/theme"
	"github.com/chefolio/chefolio/ui/util"
	"github.com/chefolio/chefolio/ui/widgets"
)

const profileImageSize float32 = 220

// Hero is the introduction at the top of the page.
type Hero struct {
	widget.BaseWidget

	Image *widgets.FadeImage

	name      *canvas.Text
	container *fyne.Container
}

func NewHero(chef *portfolio.Chef, images util.ImageFetcher) *Hero {
	h := &Hero{}
	h.ExtendBaseWidget(h)

	h.Image = widgets.NewFadeImage(images, fyne.NewSquareSize(profileImageSize))
	h.Image.Load(chef.ProfileImage)

	h.name = canvas.NewText(chef.Name, theme.Color(theme.ColorNameForeground))
	h.name.TextStyle.Bold = true
	h.name.Alignment = fyne.TextAlignCenter

	tagline := widget.NewLabel(chef.Tagline)
	tagline.Alignment = fyne.TextAlignCenter
	tagline.Importance = widget.HighImportance
	tagline.Wrapping = fyne.TextWrapWord
	tagline.Hidden = chef.Tagline == ""

	bio := widget.NewLabel(chef.Bio)
	bio.Alignment = fyne.TextAlignCenter
	bio.Wrapping = fyne.TextWrapWord
	bio.Hidden = chef.Bio == ""

	h.container = container.New(layout.NewCustomPaddedLayout(30, 30, 0, 0),
		container.NewVBox(
			container.NewCenter(h.Image),
			h.name,
			tagline,
			bio,
		))
	h.applyTheme()
	return h
}

func (h *Hero) applyTheme() {
	h.name.Color = theme.Color(theme.ColorNameForeground)
	h.name.TextSize = h.Theme().Size(myTheme.SizeNameHeroText)
}

func (h *Hero) Refresh() {
	h.applyTheme()
	h.name.Refresh()
	h.BaseWidget.Refresh()
}

func (h *Hero) CreateRenderer() fyne.WidgetRenderer {
	return widget.NewSimpleRenderer(h.container)
}
