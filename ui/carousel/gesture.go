package carousel

import (
	"math"
	"time"
)

// SwipeThreshold is the horizontal distance, in pixels, a touch swipe or
// mouse drag must strictly exceed to change the page.
const SwipeThreshold float32 = 75

// A press and release on a card is a tap only if it is shorter than
// TapMaxDuration and the pointer moved less than TapMaxDistance pixels.
const (
	TapMaxDuration         = 300 * time.Millisecond
	TapMaxDistance float32 = 10
)

// SwipeDirection maps a horizontal delta (start X minus end X) to a page change.
// A positive delta means the pointer moved left, which advances the strip.
func SwipeDirection(delta float32) int {
	if float32(math.Abs(float64(delta))) <= SwipeThreshold {
		return 0
	}
	if delta > 0 {
		return 1
	}
	return -1
}

type touchTracker struct {
	startX, endX float32
}

func (t *touchTracker) start(x float32) {
	t.startX = x
	t.endX = x
}

func (t *touchTracker) move(x float32) {
	t.endX = x
}

func (t *touchTracker) end() int {
	return SwipeDirection(t.startX - t.endX)
}

// A start X of zero means no drag is in progress.
type dragTracker struct {
	startX, endX float32
}

func (d *dragTracker) dragging() bool {
	return d.startX != 0
}

func (d *dragTracker) press(x float32) {
	d.startX = x
	d.endX = x
}

func (d *dragTracker) move(x float32) {
	if d.dragging() {
		d.endX = x
	}
}

func (d *dragTracker) release() int {
	if !d.dragging() {
		return 0
	}
	dir := SwipeDirection(d.startX - d.endX)
	d.startX = 0
	return dir
}

func (c *Controller) TouchStart(x float32) {
	if c != nil {
		c.touch.start(x)
	}
}

func (c *Controller) TouchMove(x float32) {
	if c != nil {
		c.touch.move(x)
	}
}

// TouchEnd finishes a touch swipe and reports whether the page changed.
func (c *Controller) TouchEnd() bool {
	if c == nil {
		return false
	}
	if dir := c.touch.end(); dir != 0 {
		return c.ChangeSlide(dir)
	}
	return false
}

func (c *Controller) MouseDown(x float32) {
	if c != nil {
		c.drag.press(x)
	}
}

func (c *Controller) MouseMove(x float32) {
	if c != nil {
		c.drag.move(x)
	}
}

// MouseUp finishes a mouse drag, either on button release or when the
// pointer leaves the carousel. Reports whether the page changed.
func (c *Controller) MouseUp() bool {
	if c == nil {
		return false
	}
	if dir := c.drag.release(); dir != 0 {
		return c.ChangeSlide(dir)
	}
	return false
}

// Dragging reports whether a mouse drag is in progress.
func (c *Controller) Dragging() bool {
	return c != nil && c.drag.dragging()
}

// IsTap reports whether a press/release pair is short and still enough to
// count as a selection rather than the tail end of a drag.
func IsTap(duration time.Duration, distance float32) bool {
	return duration < TapMaxDuration && distance < TapMaxDistance
}

// TapTracker distinguishes taps on a single card from drag releases over it.
type TapTracker struct {
	pressedAt time.Time
	x, y      float32
}

func (t *TapTracker) Press(at time.Time, x, y float32) {
	t.pressedAt = at
	t.x, t.y = x, y
}

// Release reports whether the release at the given time and position completes a tap.
// A release with no recorded press is never a tap.
func (t *TapTracker) Release(at time.Time, x, y float32) bool {
	if t.pressedAt.IsZero() {
		return false
	}
	dx, dy := float64(x-t.x), float64(y-t.y)
	return IsTap(at.Sub(t.pressedAt), float32(math.Hypot(dx, dy)))
}
