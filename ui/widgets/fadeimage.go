package widgets

import (
	"image"
	"time"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"

	"github.com/chefolio/chefolio/ui/util"
)

const imageFadeDuration = 600 * time.Millisecond

// FadeImage displays an image loaded by reference, fading it in
// once it arrives. An image found in the cache is shown at once.
type FadeImage struct {
	widget.BaseWidget

	img     *canvas.Image
	loader  *util.ThumbnailLoader
	minSize fyne.Size
	anim    *fyne.Animation
	pending bool
}

func NewFadeImage(images util.ImageFetcher, minSize fyne.Size) *FadeImage {
	f := &FadeImage{minSize: minSize}
	f.ExtendBaseWidget(f)
	f.img = &canvas.Image{FillMode: canvas.ImageFillContain}
	f.img.SetMinSize(minSize)
	f.loader = util.NewThumbnailLoader(images, f.setImage)
	f.loader.OnBeforeLoad = func() {
		f.pending = true
		f.img.Image = nil
		f.img.Refresh()
	}
	return f
}

// Load starts loading the image with the given reference.
func (f *FadeImage) Load(ref string) {
	f.pending = false
	f.loader.Load(ref)
}

func (f *FadeImage) Image() image.Image {
	return f.img.Image
}

func (f *FadeImage) setImage(img image.Image) {
	if f.anim != nil {
		f.anim.Stop()
		f.anim = nil
	}
	f.img.Image = img
	if img == nil || !f.pending {
		f.img.Translucency = 0
		f.img.Refresh()
		return
	}
	f.pending = false
	f.img.Translucency = 1
	f.anim = fyne.NewAnimation(imageFadeDuration, func(p float32) {
		f.img.Translucency = float64(1 - p)
		f.img.Refresh()
	})
	f.anim.Curve = fyne.AnimationEaseOut
	f.anim.Start()
}

func (f *FadeImage) Unload() {
	f.loader.Cancel()
}

func (f *FadeImage) MinSize() fyne.Size {
	return f.minSize
}

func (f *FadeImage) CreateRenderer() fyne.WidgetRenderer {
	return widget.NewSimpleRenderer(container.NewStack(f.img))
}
