package ui

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/lang"
	"fyne.io/fyne/v2/layout"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"

	myTheme "github.com/chefolio/chefolio/ui/theme"
	"github.com/chefolio/chefolio/ui/widgets"
)

// Anchor names a spot on the page the header can scroll to.
type Anchor int

const (
	AnchorTop Anchor = iota
	AnchorDishes
	AnchorContact
)

// Header is the bar pinned above the scrolling page, with the chef's name,
// links to the page sections and the light/dark toggle.
type Header struct {
	widget.BaseWidget

	OnNavigate    func(Anchor)
	OnToggleTheme func()

	name        *canvas.Text
	themeToggle *widgets.IconButton
	container   *fyne.Container
}

func NewHeader(chefName string) *Header {
	h := &Header{}
	h.ExtendBaseWidget(h)

	h.name = canvas.NewText(chefName, theme.Color(theme.ColorNameForeground))
	h.name.TextStyle.Bold = true
	h.name.TextSize = theme.TextSubHeadingSize()

	dishes := widget.NewButton(lang.L("Dishes"), func() { h.navigate(AnchorDishes) })
	dishes.Importance = widget.LowImportance
	contact := widget.NewButton(lang.L("Contact"), func() { h.navigate(AnchorContact) })
	contact.Importance = widget.LowImportance

	h.themeToggle = widgets.NewIconButton(myTheme.DarkIcon, func() {
		if h.OnToggleTheme != nil {
			h.OnToggleTheme()
		}
	})
	h.themeToggle.SetToolTip(lang.L("Toggle theme"))

	bg := myTheme.NewThemedRectangle(myTheme.ColorNamePageHeader)
	h.container = container.NewStack(bg,
		container.New(layout.NewCustomPaddedLayout(4, 4, 16, 16),
			container.NewBorder(nil, nil,
				container.NewCenter(h.name),
				container.NewHBox(dishes, contact, container.NewCenter(h.themeToggle)))))
	return h
}

// UpdateThemeIcon shows the icon of the appearance the toggle switches to.
func (h *Header) UpdateThemeIcon(current fyne.ThemeVariant) {
	if current == theme.VariantDark {
		h.themeToggle.SetIcon(myTheme.LightIcon)
	} else {
		h.themeToggle.SetIcon(myTheme.DarkIcon)
	}
}

func (h *Header) Refresh() {
	h.name.Color = theme.Color(theme.ColorNameForeground)
	h.name.Refresh()
	h.BaseWidget.Refresh()
}

func (h *Header) navigate(a Anchor) {
	if h.OnNavigate != nil {
		h.OnNavigate(a)
	}
}

func (h *Header) CreateRenderer() fyne.WidgetRenderer {
	return widget.NewSimpleRenderer(h.container)
}
