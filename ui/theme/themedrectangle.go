package theme

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/widget"
)

// ThemedRectangle is a rectangle whose fill, border and corner radius
// follow named theme values, so it restyles itself on theme changes.
type ThemedRectangle struct {
	widget.BaseWidget

	rect *canvas.Rectangle

	ColorName        fyne.ThemeColorName
	CornerRadiusName fyne.ThemeSizeName
	BorderWidth      float32
	BorderColorName  fyne.ThemeColorName
}

func NewThemedRectangle(colorName fyne.ThemeColorName) *ThemedRectangle {
	t := &ThemedRectangle{
		ColorName: colorName,
		rect:      canvas.NewRectangle(nil),
	}
	t.ExtendBaseWidget(t)
	t.applyTheme()
	return t
}

func (t *ThemedRectangle) applyTheme() {
	settings := fyne.CurrentApp().Settings()
	th := settings.Theme()
	v := settings.ThemeVariant()
	t.rect.FillColor = th.Color(t.ColorName, v)
	t.rect.StrokeWidth = t.BorderWidth
	if t.BorderColorName != "" {
		t.rect.StrokeColor = th.Color(t.BorderColorName, v)
	}
	if t.CornerRadiusName != "" {
		t.rect.CornerRadius = th.Size(t.CornerRadiusName)
	}
}

func (t *ThemedRectangle) Refresh() {
	t.applyTheme()
	t.BaseWidget.Refresh()
}

func (t *ThemedRectangle) CreateRenderer() fyne.WidgetRenderer {
	return widget.NewSimpleRenderer(t.rect)
}
