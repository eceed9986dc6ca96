package widgets

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/lang"
	"fyne.io/fyne/v2/layout"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"
)

// NewInfoMessage returns a centered heading with an icon, and an optional
// wrapped message underneath.
func NewInfoMessage(icon fyne.Resource, title, subtitle string) fyne.CanvasObject {
	c := container.New(layout.NewCustomPaddedVBoxLayout(-10),
		container.NewCenter(
			container.NewBorder(nil, nil,
				widget.NewIcon(icon), nil,
				widget.NewRichText(&widget.TextSegment{
					Text:  title,
					Style: widget.RichTextStyleSubHeading,
				}))),
	)
	if subtitle != "" {
		msg := widget.NewLabel(subtitle)
		msg.Alignment = fyne.TextAlignCenter
		msg.Wrapping = fyne.TextWrapWord
		c.Add(msg)
	}
	return c
}

// NewErrorView is shown in place of the portfolio when its data
// could not be loaded from source.
func NewErrorView(source string) fyne.CanvasObject {
	msg := lang.L("Error loading data. Please check if {{.Source}} exists.", map[string]any{"Source": source})
	return container.NewCenter(container.New(layout.NewCustomPaddedLayout(0, 0, 40, 40),
		NewInfoMessage(theme.ErrorIcon(), lang.L("Oops!"), msg)))
}
