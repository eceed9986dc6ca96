package widgets

import (
	"image"
	"image/color"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/layout"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"

	"github.com/boxes-ltd/imaging"
	"github.com/chefolio/chefolio/backend/portfolio"
	myTheme "github.com/chefolio/chefolio/ui/theme"
	"github.com/chefolio/chefolio/ui/util"
)

const (
	dishImageHeight float32 = 200

	// width:height of the image area of a card at the widest breakpoint
	dishImageAspect = 1.4
)

// CardImageSource loads dish images and their dominant colour.
// impl: backend.ImageManager
type CardImageSource interface {
	util.ImageFetcher
	DominantColor(ref string) (color.RGBA, bool)
}

var _ fyne.Widget = (*DishCard)(nil)

// DishCard shows one dish in a carousel: its image with the name over a
// tinted gradient, the short description and up to two tags.
// The card itself does not handle input; the carousel hit-tests taps.
type DishCard struct {
	widget.BaseWidget

	dish   *portfolio.Dish
	images CardImageSource
	loader *util.ThumbnailLoader

	bg          *myTheme.ThemedRectangle
	placeholder *myTheme.ThemedRectangle
	img         *canvas.Image
	gradient    *canvas.LinearGradient
	title       *canvas.Text
	description *widget.Label
	tags        *fyne.Container
	container   *fyne.Container
}

func NewDishCard(images CardImageSource) *DishCard {
	d := &DishCard{images: images}
	d.ExtendBaseWidget(d)

	d.bg = myTheme.NewThemedRectangle(myTheme.ColorNameCard)
	d.bg.CornerRadiusName = myTheme.SizeNameCardRadius
	d.placeholder = myTheme.NewThemedRectangle(theme.ColorNameInputBackground)
	d.img = &canvas.Image{FillMode: canvas.ImageFillContain, ScaleMode: canvas.ImageScaleFastest}
	d.img.SetMinSize(fyne.NewSize(0, dishImageHeight))
	d.gradient = canvas.NewVerticalGradient(color.Transparent, myTheme.OverlayTint(nil))
	d.title = canvas.NewText("", color.White)
	d.title.TextStyle.Bold = true
	d.title.TextSize = theme.TextSubHeadingSize()
	d.description = widget.NewLabel("")
	d.description.Wrapping = fyne.TextWrapWord
	d.description.Truncation = fyne.TextTruncateEllipsis
	d.tags = NewTagList(nil)

	if images != nil {
		d.loader = util.NewThumbnailLoader(images, d.onImageLoaded)
		d.loader.OnBeforeLoad = func() { d.onImageLoaded(nil) }
	}

	titleBar := container.NewStack(d.gradient,
		container.New(layout.NewCustomPaddedLayout(24, 8, 12, 12), d.title))
	picture := container.NewStack(d.placeholder, d.img,
		container.NewBorder(nil, titleBar, nil, nil))
	body := container.New(layout.NewCustomPaddedVBoxLayout(0), d.description, d.tags)
	d.container = container.NewStack(d.bg,
		container.NewBorder(picture, nil, nil, nil,
			container.New(layout.NewCustomPaddedLayout(0, 12, 4, 4), body)))
	return d
}

// Update shows the given dish, starting an image load if needed.
func (d *DishCard) Update(dish *portfolio.Dish) {
	d.dish = dish
	d.title.Text = dish.Name
	d.description.SetText(dish.ShortDescription)
	d.tags.RemoveAll()
	for _, t := range dish.CardTags() {
		d.tags.Add(NewTagChip(t))
	}
	if d.loader != nil {
		d.loader.Load(dish.Image)
	}
	d.Refresh()
}

func (d *DishCard) Dish() *portfolio.Dish {
	return d.dish
}

func (d *DishCard) onImageLoaded(img image.Image) {
	d.img.Image = coverCrop(img, dishImageAspect)
	var tint color.Color
	if img != nil && d.dish != nil {
		if c, ok := d.images.DominantColor(d.dish.Image); ok {
			tint = c
		}
	}
	d.gradient.EndColor = myTheme.OverlayTint(tint)
	d.img.Refresh()
	d.gradient.Refresh()
}

// coverCrop cuts the largest centered region of img with the given
// width:height ratio, so a contained image fills the card edge to edge.
func coverCrop(img image.Image, aspect float64) image.Image {
	if img == nil {
		return nil
	}
	b := img.Bounds()
	w, h := b.Dx(), int(float64(b.Dx())/aspect)
	if h > b.Dy() {
		w, h = int(float64(b.Dy())*aspect), b.Dy()
	}
	if w <= 0 || h <= 0 || (w == b.Dx() && h == b.Dy()) {
		return img
	}
	return imaging.CropCenter(img, w, h)
}

// Unload cancels a pending image load and drops the current image.
func (d *DishCard) Unload() {
	if d.loader != nil {
		d.loader.Cancel()
	}
	d.img.Image = nil
}

func (d *DishCard) CreateRenderer() fyne.WidgetRenderer {
	return widget.NewSimpleRenderer(d.container)
}
