package carousel

import (
	"math/rand"
	"testing"
)

type fakeViewport struct {
	width float32
}

func (f *fakeViewport) Width() float32 { return f.width }

func TestVisibleCount(t *testing.T) {
	tests := []struct {
		width float32
		want  int
	}{
		{0, 1},
		{639, 1},
		{640, 2},
		{1023, 2},
		{1024, 3},
		{1279, 3},
		{1280, 4},
		{2560, 4},
	}
	for _, tt := range tests {
		if got := VisibleCount(tt.width); got != tt.want {
			t.Errorf("VisibleCount(%v): got %d, want %d", tt.width, got, tt.want)
		}
	}
}

func TestMaxPage(t *testing.T) {
	tests := []struct {
		items, visible, want int
	}{
		{10, 4, 6},
		{3, 4, 0},
		{4, 4, 0},
		{0, 1, 0},
		{1, 1, 0},
		{10, 1, 9},
	}
	for _, tt := range tests {
		if got := MaxPage(tt.items, tt.visible); got != tt.want {
			t.Errorf("MaxPage(%d, %d): got %d, want %d", tt.items, tt.visible, got, tt.want)
		}
	}
}

func TestPageInvariantHoldsForRandomOperations(t *testing.T) {
	rnd := rand.New(rand.NewSource(42))
	widths := []float32{320, 639, 640, 800, 1024, 1100, 1280, 1920}
	for _, items := range []int{0, 1, 2, 3, 4, 5, 10, 25} {
		vp := &fakeViewport{width: 1300}
		c := NewController(items, vp)
		for i := 0; i < 2000; i++ {
			switch rnd.Intn(4) {
			case 0:
				c.ChangeSlide(1)
			case 1:
				c.ChangeSlide(-1)
			case 2:
				c.GoToSlide(rnd.Intn(40) - 10)
			case 3:
				vp.width = widths[rnd.Intn(len(widths))]
				c.RecomputeOnResize()
			}
			if p := c.CurrentPage(); p < 0 || p > c.MaxPage() {
				t.Fatalf("items=%d step=%d: page %d outside [0, %d]", items, i, p, c.MaxPage())
			}
		}
	}
}

func TestChangeSlideConvergesAtBoundaries(t *testing.T) {
	c := NewController(10, &fakeViewport{width: 1300})
	for i := 0; i < 20; i++ {
		c.ChangeSlide(1)
	}
	if got := c.CurrentPage(); got != 6 {
		t.Errorf("after advancing: got page %d, want 6", got)
	}
	if c.ChangeSlide(1) {
		t.Error("advancing past the last page should be a no-op")
	}
	for i := 0; i < 20; i++ {
		c.ChangeSlide(-1)
	}
	if got := c.CurrentPage(); got != 0 {
		t.Errorf("after rewinding: got page %d, want 0", got)
	}
	if c.ChangeSlide(-1) {
		t.Error("rewinding past the first page should be a no-op")
	}
}

func TestChangeSlideReadsViewportEachCall(t *testing.T) {
	vp := &fakeViewport{width: 1300}
	c := NewController(10, vp)
	c.GoToSlide(6)
	// narrowing the window raises the max page even before a resize is processed
	vp.width = 500
	c.ChangeSlide(1)
	if got := c.CurrentPage(); got != 7 {
		t.Errorf("got page %d, want 7", got)
	}
}

func TestResizeScenario(t *testing.T) {
	vp := &fakeViewport{width: 1300}
	c := NewController(10, vp)
	if got := c.MaxPage(); got != 6 {
		t.Fatalf("max page at 1300px: got %d, want 6", got)
	}
	c.GoToSlide(9)
	if got := c.CurrentPage(); got != 6 {
		t.Errorf("GoToSlide(9): got page %d, want 6", got)
	}

	vp.width = 700
	c.RecomputeOnResize()
	if got := c.MaxPage(); got != 8 {
		t.Errorf("max page at 700px: got %d, want 8", got)
	}
	if got := c.CurrentPage(); got != 6 {
		t.Errorf("page at 700px: got %d, want 6", got)
	}

	vp.width = 500
	c.RecomputeOnResize()
	if got := c.MaxPage(); got != 9 {
		t.Errorf("max page at 500px: got %d, want 9", got)
	}
	if got := c.CurrentPage(); got != 6 {
		t.Errorf("page at 500px: got %d, want 6", got)
	}
}

func TestResizeWideningClampsPage(t *testing.T) {
	vp := &fakeViewport{width: 500}
	c := NewController(10, vp)
	c.GoToSlide(9)
	vp.width = 1024
	if !c.RecomputeOnResize() {
		t.Error("expected the page to be clamped")
	}
	if got, want := c.CurrentPage(), c.MaxPage(); got != want {
		t.Errorf("got page %d, want %d", got, want)
	}
}

func TestFewItemsDisablesNavigation(t *testing.T) {
	c := NewController(3, &fakeViewport{width: 1300})
	if got := c.MaxPage(); got != 0 {
		t.Fatalf("got max page %d, want 0", got)
	}
	for _, d := range []int{1, 1, -1, 1, -1, -1} {
		c.ChangeSlide(d)
		s, ok := c.Render(280)
		if !ok {
			t.Fatal("expected render to succeed")
		}
		if !s.PrevDisabled || !s.NextDisabled {
			t.Errorf("after ChangeSlide(%d): want both nav buttons disabled, got %+v", d, s)
		}
	}
}

func TestRender(t *testing.T) {
	c := NewController(10, &fakeViewport{width: 1300})
	s, ok := c.Render(276)
	if !ok {
		t.Fatal("expected render to succeed")
	}
	want := ViewState{Offset: 0, ActiveIndicator: 0, PrevDisabled: true, NextDisabled: false}
	if s != want {
		t.Errorf("got %+v, want %+v", s, want)
	}

	c.GoToSlide(2)
	s, _ = c.Render(276)
	want = ViewState{Offset: -600, ActiveIndicator: 2, PrevDisabled: false, NextDisabled: false}
	if s != want {
		t.Errorf("got %+v, want %+v", s, want)
	}

	c.GoToSlide(6)
	s, _ = c.Render(276)
	want = ViewState{Offset: -1800, ActiveIndicator: 6, PrevDisabled: false, NextDisabled: true}
	if s != want {
		t.Errorf("got %+v, want %+v", s, want)
	}
}

func TestRenderNoItems(t *testing.T) {
	c := NewController(0, &fakeViewport{width: 1300})
	if _, ok := c.Render(100); ok {
		t.Error("render with no items should report nothing to draw")
	}
}

func TestNilControllerIsNoOp(t *testing.T) {
	var c *Controller
	if c.ChangeSlide(1) || c.GoToSlide(3) || c.RecomputeOnResize() || c.TouchEnd() || c.MouseUp() {
		t.Error("operations on a nil controller should report no change")
	}
	c.TouchStart(10)
	c.MouseDown(10)
	c.MouseMove(200)
	if _, ok := c.Render(100); ok {
		t.Error("render on a nil controller should report nothing to draw")
	}
	if c.ItemCount() != 0 || c.CurrentPage() != 0 || c.MaxPage() != 0 || c.Dragging() {
		t.Error("nil controller should report zero state")
	}
}

func TestControllersAreIndependent(t *testing.T) {
	vp := &fakeViewport{width: 700}
	a := NewController(10, vp)
	b := NewController(10, vp)

	a.MouseDown(400)
	b.MouseDown(100)
	a.MouseMove(200)
	b.MouseMove(110)
	a.MouseUp()
	b.MouseUp()

	if a.CurrentPage() != 1 {
		t.Errorf("a: got page %d, want 1", a.CurrentPage())
	}
	if b.CurrentPage() != 0 {
		t.Errorf("b: got page %d, want 0", b.CurrentPage())
	}
}
