package layouts

import (
	"testing"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
)

func rects(n int, size fyne.Size) []fyne.CanvasObject {
	objs := make([]fyne.CanvasObject, n)
	for i := range objs {
		r := canvas.NewRectangle(nil)
		r.SetMinSize(size)
		objs[i] = r
	}
	return objs
}

func TestItemWidthFor(t *testing.T) {
	tests := []struct {
		total   float32
		visible int
		want    float32
	}{
		{1176, 4, 276},
		{600, 2, 288},
		{300, 1, 300},
		{300, 0, 300},
		{10, 4, 0},
	}
	for _, tt := range tests {
		if got := ItemWidthFor(tt.total, tt.visible, 24); got != tt.want {
			t.Errorf("ItemWidthFor(%v, %d) = %v, want %v", tt.total, tt.visible, got, tt.want)
		}
	}
}

func TestStripLayout(t *testing.T) {
	objs := rects(3, fyne.NewSize(10, 50))
	l := &StripLayout{ItemWidth: 276, Gap: 24, Offset: -300}
	if min := l.MinSize(objs); min.Height != 50 || min.Width != 0 {
		t.Errorf("got min size %v, want 0x50", min)
	}
	l.Layout(objs, fyne.NewSize(1176, 400))
	wantX := []float32{-300, 0, 300}
	for i, o := range objs {
		if o.Position().X != wantX[i] {
			t.Errorf("item %d at x=%v, want %v", i, o.Position().X, wantX[i])
		}
		if o.Size() != fyne.NewSize(276, 400) {
			t.Errorf("item %d size %v, want 276x400", i, o.Size())
		}
	}
}

func TestStripLayoutClip(t *testing.T) {
	objs := rects(4, fyne.NewSize(10, 50))
	l := &StripLayout{ItemWidth: 276, Gap: 24, Offset: -300, Clip: true}
	l.Layout(objs, fyne.NewSize(576, 400))
	for i, want := range []bool{false, true, true, false} {
		if objs[i].Visible() != want {
			t.Errorf("item %d visible = %v, want %v", i, objs[i].Visible(), want)
		}
	}

	l.Offset = 0
	l.Layout(objs, fyne.NewSize(576, 400))
	for i, want := range []bool{true, true, false, false} {
		if objs[i].Visible() != want {
			t.Errorf("after paging back: item %d visible = %v, want %v", i, objs[i].Visible(), want)
		}
	}
}

func TestContentLayout(t *testing.T) {
	objs := rects(1, fyne.NewSize(100, 40))
	l := &ContentLayout{MaxWidth: 1000, PadX: 20, PadY: 10}
	if min := l.MinSize(objs); min != fyne.NewSize(140, 60) {
		t.Errorf("got min size %v, want 140x60", min)
	}

	l.Layout(objs, fyne.NewSize(1400, 500))
	if p, s := objs[0].Position(), objs[0].Size(); p != fyne.NewPos(200, 10) || s != fyne.NewSize(1000, 480) {
		t.Errorf("wide: got pos %v size %v", p, s)
	}
	l.Layout(objs, fyne.NewSize(600, 500))
	if p, s := objs[0].Position(), objs[0].Size(); p != fyne.NewPos(20, 10) || s != fyne.NewSize(560, 480) {
		t.Errorf("narrow: got pos %v size %v", p, s)
	}
}

func TestFlowLayout(t *testing.T) {
	objs := rects(3, fyne.NewSize(40, 20))
	l := &FlowLayout{Spacing: 5}
	l.Layout(objs, fyne.NewSize(100, 100))

	// two fit on the first row (40 + 5 + 40), the third wraps
	if p := objs[1].Position(); p != fyne.NewPos(45, 0) {
		t.Errorf("second item at %v, want (45, 0)", p)
	}
	if p := objs[2].Position(); p != fyne.NewPos(0, 25) {
		t.Errorf("third item at %v, want (0, 25)", p)
	}
	if min := l.MinSize(objs); min.Height != 45 {
		t.Errorf("got min height %v, want 45", min.Height)
	}
}
