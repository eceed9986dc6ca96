package layouts

import "fyne.io/fyne/v2"

var _ fyne.Layout = (*FlowLayout)(nil)

// FlowLayout places objects left to right at their minimum size,
// wrapping onto a new row when the next object would not fit.
// The min height reflects the row count at the last laid-out width.
type FlowLayout struct {
	Spacing float32

	lastWidth float32
}

func (f *FlowLayout) MinSize(objects []fyne.CanvasObject) fyne.Size {
	var widest float32
	for _, o := range objects {
		if o.Visible() {
			widest = fyne.Max(widest, o.MinSize().Width)
		}
	}
	w := fyne.Max(f.lastWidth, widest)
	_, h := f.place(objects, w, false)
	return fyne.NewSize(widest, h)
}

func (f *FlowLayout) Layout(objects []fyne.CanvasObject, size fyne.Size) {
	f.lastWidth = size.Width
	f.place(objects, size.Width, true)
}

// place computes (and if move is set, applies) positions for width,
// returning the number of rows and the total height.
func (f *FlowLayout) place(objects []fyne.CanvasObject, width float32, move bool) (rows int, height float32) {
	var x, y, rowH float32
	for _, o := range objects {
		if !o.Visible() {
			continue
		}
		min := o.MinSize()
		if x > 0 && x+min.Width > width {
			x = 0
			y += rowH + f.Spacing
			rowH = 0
		}
		if x == 0 {
			rows++
		}
		if move {
			o.Move(fyne.NewPos(x, y))
			o.Resize(min)
		}
		x += min.Width + f.Spacing
		rowH = fyne.Max(rowH, min.Height)
	}
	if rows == 0 {
		return 0, 0
	}
	return rows, y + rowH
}
