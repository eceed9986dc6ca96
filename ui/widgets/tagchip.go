package widgets

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/layout"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"

	"github.com/chefolio/chefolio/sharedutil"
	"github.com/chefolio/chefolio/ui/layouts"
	myTheme "github.com/chefolio/chefolio/ui/theme"
)

// TagChip is a small rounded label for a dish tag.
type TagChip struct {
	widget.BaseWidget

	Text string

	bg    *myTheme.ThemedRectangle
	label *canvas.Text
}

func NewTagChip(text string) *TagChip {
	t := &TagChip{Text: text}
	t.ExtendBaseWidget(t)
	return t
}

func (t *TagChip) Refresh() {
	if t.label != nil {
		t.updateLabel()
	}
	t.BaseWidget.Refresh()
}

func (t *TagChip) updateLabel() {
	th := t.Theme()
	t.label.Text = t.Text
	t.label.TextSize = th.Size(myTheme.SizeNameTagText)
	t.label.Color = th.Color(theme.ColorNameForeground, fyne.CurrentApp().Settings().ThemeVariant())
}

func (t *TagChip) CreateRenderer() fyne.WidgetRenderer {
	t.bg = myTheme.NewThemedRectangle(myTheme.ColorNameTag)
	t.bg.CornerRadiusName = theme.SizeNameInputRadius
	t.label = canvas.NewText(t.Text, nil)
	t.updateLabel()
	pad := layout.NewCustomPaddedLayout(2, 2, 8, 8)
	return widget.NewSimpleRenderer(container.NewStack(t.bg, container.New(pad, t.label)))
}

// NewTagList returns a wrapping row of chips for the given tags.
func NewTagList(tags []string) *fyne.Container {
	chips := sharedutil.MapSlice(tags, func(tag string) fyne.CanvasObject {
		return NewTagChip(tag)
	})
	return container.New(&layouts.FlowLayout{Spacing: 6}, chips...)
}
