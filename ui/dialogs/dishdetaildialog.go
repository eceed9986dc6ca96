package dialogs

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/lang"
	"fyne.io/fyne/v2/layout"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"

	"github.com/chefolio/chefolio/backend/portfolio"
	myTheme "github.com/chefolio/chefolio/ui/theme"
	"github.com/chefolio/chefolio/ui/util"
	"github.com/chefolio/chefolio/ui/widgets"
)

// DishDetailDialog shows everything about one dish: its image, name,
// full description and all of its tags.
type DishDetailDialog struct {
	widget.BaseWidget

	OnDismiss func()

	dish    *portfolio.Dish
	image   *widgets.FadeImage
	content fyne.CanvasObject
}

var _ fyne.Tappable = (*DishDetailDialog)(nil)

func NewDishDetailDialog(dish *portfolio.Dish, images util.ImageFetcher) *DishDetailDialog {
	d := &DishDetailDialog{dish: dish}
	d.ExtendBaseWidget(d)

	d.image = widgets.NewFadeImage(images, fyne.NewSize(400, 260))
	d.image.Load(dish.Image)

	title := widget.NewRichTextWithText(dish.Name)
	title.Segments[0].(*widget.TextSegment).Style.TextStyle.Bold = true
	title.Segments[0].(*widget.TextSegment).Style.SizeName = theme.SizeNameSubHeadingText

	desc := widget.NewLabel(dish.FullDescription)
	desc.Wrapping = fyne.TextWrapWord

	closeBtn := widget.NewButton(lang.L("Close"), d.Dismiss)
	closeBtn.Importance = widget.HighImportance

	bg := myTheme.NewThemedRectangle(myTheme.ColorNameCard)
	bg.CornerRadiusName = myTheme.SizeNameCardRadius

	d.content = container.NewStack(bg,
		container.New(layout.NewCustomPaddedLayout(15, 10, 15, 15),
			container.NewVBox(
				d.image,
				title,
				desc,
				widgets.NewTagList(dish.Tags),
				widget.NewSeparator(),
				container.NewHBox(layout.NewSpacer(), closeBtn),
			)))
	return d
}

func (d *DishDetailDialog) Dish() *portfolio.Dish {
	return d.dish
}

// Tapped swallows taps on the dialog so they do not reach the backdrop.
func (d *DishDetailDialog) Tapped(*fyne.PointEvent) {}

// Dismiss stops the image load and calls OnDismiss.
func (d *DishDetailDialog) Dismiss() {
	d.image.Unload()
	if d.OnDismiss != nil {
		d.OnDismiss()
	}
}

func (d *DishDetailDialog) MinSize() fyne.Size {
	return fyne.NewSize(550, d.BaseWidget.MinSize().Height)
}

func (d *DishDetailDialog) CreateRenderer() fyne.WidgetRenderer {
	return widget.NewSimpleRenderer(d.content)
}
