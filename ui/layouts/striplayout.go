package layouts

import "fyne.io/fyne/v2"

var _ fyne.Layout = (*StripLayout)(nil)

// StripLayout lays out objects in a single row of equal-width
// items separated by Gap, shifted horizontally by Offset.
// Items are stretched to the full height of the container.
// With Clip set, objects not lying entirely inside the container
// are hidden, since Fyne only clips inside scroll containers.
type StripLayout struct {
	ItemWidth float32
	Gap       float32
	Offset    float32
	Clip      bool
}

// ItemWidthFor returns the width of each item so that exactly
// visible items plus the gaps between them fill totalWidth.
func ItemWidthFor(totalWidth float32, visible int, gap float32) float32 {
	if visible < 1 {
		visible = 1
	}
	w := (totalWidth - gap*float32(visible-1)) / float32(visible)
	return fyne.Max(w, 0)
}

func (s *StripLayout) MinSize(objects []fyne.CanvasObject) fyne.Size {
	var h float32
	for _, o := range objects {
		h = fyne.Max(h, o.MinSize().Height)
	}
	return fyne.NewSize(0, h)
}

func (s *StripLayout) Layout(objects []fyne.CanvasObject, size fyne.Size) {
	x := s.Offset
	for _, o := range objects {
		o.Move(fyne.NewPos(x, 0))
		o.Resize(fyne.NewSize(s.ItemWidth, size.Height))
		if s.Clip {
			// allow for float rounding at the right edge
			inside := x >= -0.5 && x+s.ItemWidth <= size.Width+0.5
			if inside && !o.Visible() {
				o.Show()
			} else if !inside && o.Visible() {
				o.Hide()
			}
		}
		x += s.ItemWidth + s.Gap
	}
}
