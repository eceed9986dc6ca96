package widgets

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"

	myTheme "github.com/chefolio/chefolio/ui/theme"
)

var _ fyne.Tappable = (*ModalBackdrop)(nil)

// ModalBackdrop is a full-canvas overlay that dims the page behind
// a centered dialog. Tapping the dimmed area calls OnDismiss.
// Taps on the content are not dismissals as long as the content
// itself is Tappable.
type ModalBackdrop struct {
	widget.BaseWidget

	OnDismiss func()

	content fyne.CanvasObject
	shade   *canvas.Rectangle
}

func NewModalBackdrop(content fyne.CanvasObject, onDismiss func()) *ModalBackdrop {
	m := &ModalBackdrop{content: content, OnDismiss: onDismiss, shade: canvas.NewRectangle(nil)}
	m.ExtendBaseWidget(m)
	return m
}

func (m *ModalBackdrop) Content() fyne.CanvasObject {
	return m.content
}

func (m *ModalBackdrop) Tapped(*fyne.PointEvent) {
	if m.OnDismiss != nil {
		m.OnDismiss()
	}
}

func (m *ModalBackdrop) Refresh() {
	m.shade.FillColor = m.Theme().Color(myTheme.ColorNameModalBackdrop, fyne.CurrentApp().Settings().ThemeVariant())
	m.BaseWidget.Refresh()
}

func (m *ModalBackdrop) CreateRenderer() fyne.WidgetRenderer {
	m.shade.FillColor = m.Theme().Color(myTheme.ColorNameModalBackdrop, fyne.CurrentApp().Settings().ThemeVariant())
	return widget.NewSimpleRenderer(container.NewStack(m.shade, container.NewCenter(m.content)))
}
