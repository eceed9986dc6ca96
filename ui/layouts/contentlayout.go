package layouts

import "fyne.io/fyne/v2"

var _ fyne.Layout = (*ContentLayout)(nil)

// ContentLayout pads its objects and caps their width at MaxWidth,
// centering them horizontally when the container is wider.
// A MaxWidth of zero means no cap.
type ContentLayout struct {
	MaxWidth float32
	PadX     float32
	PadY     float32
}

func (c *ContentLayout) MinSize(objects []fyne.CanvasObject) fyne.Size {
	var min fyne.Size
	for _, o := range objects {
		if o.Visible() {
			min = min.Max(o.MinSize())
		}
	}
	return min.Add(fyne.NewSize(c.PadX*2, c.PadY*2))
}

func (c *ContentLayout) Layout(objects []fyne.CanvasObject, size fyne.Size) {
	w := size.Width - c.PadX*2
	if c.MaxWidth > 0 && w > c.MaxWidth {
		w = c.MaxWidth
	}
	pos := fyne.NewPos((size.Width-w)/2, c.PadY)
	objSize := fyne.NewSize(w, size.Height-c.PadY*2)
	for _, child := range objects {
		if !child.Visible() {
			continue
		}
		child.Move(pos)
		child.Resize(objSize)
	}
}
