package carousel

import (
	"testing"
	"time"
)

func TestSwipeDirection(t *testing.T) {
	tests := []struct {
		delta float32
		want  int
	}{
		{0, 0},
		{75, 0},
		{-75, 0},
		{76, 1},
		{-76, -1},
		{300, 1},
		{-300, -1},
	}
	for _, tt := range tests {
		if got := SwipeDirection(tt.delta); got != tt.want {
			t.Errorf("SwipeDirection(%v): got %d, want %d", tt.delta, got, tt.want)
		}
	}
}

func TestTouchSwipe(t *testing.T) {
	tests := []struct {
		name       string
		start, end float32
		want       int
	}{
		{"exactly threshold", 300, 225, 0},
		{"past threshold left", 300, 224, 1},
		{"past threshold right", 300, 376, 0},
		{"tap", 300, 300, 0},
	}
	for _, tt := range tests {
		c := NewController(10, &fakeViewport{width: 700})
		c.TouchStart(tt.start)
		c.TouchMove((tt.start + tt.end) / 2)
		c.TouchMove(tt.end)
		c.TouchEnd()
		if got := c.CurrentPage(); got != tt.want {
			t.Errorf("%s: got page %d, want %d", tt.name, got, tt.want)
		}
	}
}

func TestTouchSwipeBackward(t *testing.T) {
	c := NewController(10, &fakeViewport{width: 700})
	c.GoToSlide(3)
	c.TouchStart(100)
	c.TouchMove(200)
	if !c.TouchEnd() {
		t.Error("expected a page change")
	}
	if got := c.CurrentPage(); got != 2 {
		t.Errorf("got page %d, want 2", got)
	}
}

func TestTouchWithoutMoveDoesNothing(t *testing.T) {
	c := NewController(10, &fakeViewport{width: 700})
	c.TouchStart(500)
	if c.TouchEnd() {
		t.Error("a touch without movement should not change the page")
	}
}

func TestMouseDrag(t *testing.T) {
	c := NewController(10, &fakeViewport{width: 700})
	c.MouseDown(400)
	if !c.Dragging() {
		t.Fatal("expected drag in progress")
	}
	c.MouseMove(324)
	if !c.MouseUp() {
		t.Error("expected a page change for a 76px drag")
	}
	if c.Dragging() {
		t.Error("release should end the drag")
	}
	// a second release (e.g. pointer leaving after the button was released) is ignored
	if c.MouseUp() {
		t.Error("release without a press should be ignored")
	}
	if got := c.CurrentPage(); got != 1 {
		t.Errorf("got page %d, want 1", got)
	}
}

func TestMouseDragAtThresholdDoesNothing(t *testing.T) {
	c := NewController(10, &fakeViewport{width: 700})
	c.MouseDown(400)
	c.MouseMove(325)
	if c.MouseUp() {
		t.Error("a 75px drag should not change the page")
	}
}

func TestMouseMoveWithoutPressIgnored(t *testing.T) {
	c := NewController(10, &fakeViewport{width: 700})
	c.MouseMove(100)
	c.MouseMove(400)
	if c.MouseUp() {
		t.Error("moves without a press should be ignored")
	}
}

func TestMousePressAtZeroIsNotADrag(t *testing.T) {
	c := NewController(10, &fakeViewport{width: 700})
	c.MouseDown(0)
	c.MouseMove(-200)
	if c.Dragging() || c.MouseUp() {
		t.Error("a press recorded at x=0 is treated as not dragging")
	}
}

func TestIsTap(t *testing.T) {
	tests := []struct {
		duration time.Duration
		distance float32
		want     bool
	}{
		{250 * time.Millisecond, 5, true},
		{350 * time.Millisecond, 3, false},
		{100 * time.Millisecond, 40, false},
		{299 * time.Millisecond, 9.9, true},
		{300 * time.Millisecond, 0, false},
		{0, 10, false},
	}
	for _, tt := range tests {
		if got := IsTap(tt.duration, tt.distance); got != tt.want {
			t.Errorf("IsTap(%v, %v): got %v, want %v", tt.duration, tt.distance, got, tt.want)
		}
	}
}

func TestTapTracker(t *testing.T) {
	t0 := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)
	tests := []struct {
		name     string
		after    time.Duration
		dx, dy   float32
		wantOpen bool
	}{
		{"quick still tap", 250 * time.Millisecond, 3, 4, true},
		{"long press", 350 * time.Millisecond, 3, 0, false},
		{"quick drag", 100 * time.Millisecond, 40, 0, false},
		{"diagonal drift", 100 * time.Millisecond, 6, 8, false},
	}
	for _, tt := range tests {
		var tap TapTracker
		tap.Press(t0, 100, 100)
		if got := tap.Release(t0.Add(tt.after), 100+tt.dx, 100+tt.dy); got != tt.wantOpen {
			t.Errorf("%s: got %v, want %v", tt.name, got, tt.wantOpen)
		}
	}

	var unpressed TapTracker
	if unpressed.Release(t0, 0, 0) {
		t.Error("release with no press should not be a tap")
	}
}
