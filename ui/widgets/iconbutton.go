package widgets

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/driver/desktop"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"
	ttwidget "github.com/dweymouth/fyne-tooltip/widget"

	myTheme "github.com/chefolio/chefolio/ui/theme"
)

type IconButtonSize int

const (
	IconButtonSizeNormal IconButtonSize = iota
	IconButtonSizeBigger
)

// IconButton is a borderless button showing only an icon, with a tooltip
// that doubles as its accessible label. With Round set it is drawn on a
// circular backdrop, as used by the carousel navigation.
type IconButton struct {
	ttwidget.ToolTipWidget

	IconSize IconButtonSize
	Round    bool
	OnTapped func()

	icon     fyne.Resource
	focused  bool
	hovered  bool
	disabled bool

	themed *theme.ThemedResource
	img    *canvas.Image
	circle *canvas.Circle
}

var (
	_ fyne.Tappable      = (*IconButton)(nil)
	_ fyne.Focusable     = (*IconButton)(nil)
	_ fyne.Disableable   = (*IconButton)(nil)
	_ desktop.Hoverable  = (*IconButton)(nil)
	_ desktop.Cursorable = (*IconButton)(nil)
)

func NewIconButton(icon fyne.Resource, onTapped func()) *IconButton {
	i := &IconButton{icon: icon, OnTapped: onTapped}
	i.ExtendBaseWidget(i)
	return i
}

func (i *IconButton) SetIcon(icon fyne.Resource) {
	i.icon = icon
	if i.img != nil {
		i.themed = theme.NewThemedResource(icon)
		i.img.Resource = i.themed
		i.Refresh()
	}
}

func (i *IconButton) Disable() {
	if !i.disabled {
		i.disabled = true
		i.Refresh()
	}
}

func (i *IconButton) Enable() {
	if i.disabled {
		i.disabled = false
		i.Refresh()
	}
}

// SetDisabled enables or disables the button.
func (i *IconButton) SetDisabled(disabled bool) {
	if disabled {
		i.Disable()
	} else {
		i.Enable()
	}
}

func (i *IconButton) Disabled() bool {
	return i.disabled
}

func (i *IconButton) Tapped(*fyne.PointEvent) {
	if !i.disabled && i.OnTapped != nil {
		i.OnTapped()
	}
}

func (i *IconButton) Cursor() desktop.Cursor {
	if i.disabled {
		return desktop.DefaultCursor
	}
	return desktop.PointerCursor
}

func (i *IconButton) FocusGained() {
	if !i.focused {
		defer i.Refresh()
	}
	i.focused = true
}

func (i *IconButton) FocusLost() {
	if i.focused {
		defer i.Refresh()
	}
	i.focused = false
}

func (i *IconButton) TypedKey(e *fyne.KeyEvent) {
	if !i.disabled && (e.Name == fyne.KeySpace || e.Name == fyne.KeyReturn) {
		i.Tapped(nil)
	}
}

func (i *IconButton) TypedRune(r rune) {
}

func (i *IconButton) MouseIn(e *desktop.MouseEvent) {
	i.ToolTipWidget.MouseIn(e)
	if i.disabled {
		return
	}

	if !i.hovered {
		defer i.Refresh()
	}
	i.hovered = true
}

func (i *IconButton) MouseOut() {
	i.ToolTipWidget.MouseOut()
	if i.hovered {
		defer i.Refresh()
	}
	i.hovered = false
}

func (i *IconButton) MouseMoved(e *desktop.MouseEvent) {
	i.ToolTipWidget.MouseMoved(e)
}

func (i *IconButton) MinSize() fyne.Size {
	if i.Round {
		return i.iconSize().AddWidthHeight(theme.Padding()*3, theme.Padding()*3)
	}
	return i.iconSize()
}

func (i *IconButton) iconSize() fyne.Size {
	switch i.IconSize {
	case IconButtonSizeBigger:
		return fyne.NewSquareSize(theme.IconInlineSize() * 1.6)
	default:
		return fyne.NewSquareSize(theme.IconInlineSize() * 1.3333)
	}
}

func (i *IconButton) updateColor() {
	if i.disabled {
		i.themed.ColorName = theme.ColorNameDisabled
	} else if i.hovered || i.focused {
		i.themed.ColorName = myTheme.ColorNameHoveredIconButton
	} else {
		i.themed.ColorName = myTheme.ColorNameIconButton
	}
	if i.circle != nil {
		th := i.Theme()
		v := fyne.CurrentApp().Settings().ThemeVariant()
		i.circle.Hidden = !i.Round
		i.circle.FillColor = th.Color(myTheme.ColorNameNavButton, v)
		i.circle.StrokeColor = th.Color(theme.ColorNameShadow, v)
		i.circle.StrokeWidth = 1
	}
}

func (i *IconButton) Refresh() {
	if i.img == nil {
		return
	}
	i.updateColor()
	i.img.SetMinSize(i.iconSize())
	i.img.Refresh()
	i.circle.Refresh()
}

func (i *IconButton) CreateRenderer() fyne.WidgetRenderer {
	if i.img == nil {
		i.themed = theme.NewThemedResource(i.icon)
		i.img = canvas.NewImageFromResource(i.themed)
		i.img.FillMode = canvas.ImageFillContain
		i.img.SetMinSize(i.iconSize())
		i.circle = canvas.NewCircle(nil)
		i.updateColor()
	}
	return widget.NewSimpleRenderer(container.NewStack(i.circle, container.NewCenter(i.img)))
}
