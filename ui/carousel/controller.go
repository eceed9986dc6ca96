// Package carousel holds the paging state of a single cuisine's dish strip.
// It has no knowledge of widgets: the view asks it for a ViewState and applies that.
package carousel

// Viewport reports the current width of the window a carousel is shown in.
type Viewport interface {
	Width() float32
}

// ViewportFunc adapts a plain function to a Viewport.
type ViewportFunc func() float32

func (f ViewportFunc) Width() float32 { return f() }

// ViewState is everything the view needs to draw a strip for the current page.
type ViewState struct {
	// Offset is the horizontal translation of the strip, <= 0.
	Offset          float32
	ActiveIndicator int
	PrevDisabled    bool
	NextDisabled    bool
}

// Controller owns the current page of one carousel along with the transient
// gesture state of the touch and mouse drag handlers attached to it.
// It is not thread-safe; all calls are expected on the UI goroutine.
// A nil *Controller is valid and every operation on it is a no-op.
type Controller struct {
	itemCount int
	viewport  Viewport
	page      int

	touch touchTracker
	drag  dragTracker
}

func NewController(itemCount int, viewport Viewport) *Controller {
	return &Controller{itemCount: max(0, itemCount), viewport: viewport}
}

func (c *Controller) ItemCount() int {
	if c == nil {
		return 0
	}
	return c.itemCount
}

func (c *Controller) CurrentPage() int {
	if c == nil {
		return 0
	}
	return c.page
}

// VisibleCount is the number of cards that fit in the current viewport.
func (c *Controller) VisibleCount() int {
	if c == nil || c.viewport == nil {
		return VisibleCount(0)
	}
	return VisibleCount(c.viewport.Width())
}

// MaxPage is computed from the viewport on every call and never cached,
// since the window may have been resized since the last call.
func (c *Controller) MaxPage() int {
	if c == nil {
		return 0
	}
	return MaxPage(c.itemCount, c.VisibleCount())
}

// ChangeSlide moves delta pages forward (or backward, if negative),
// stopping at either end of the strip. Reports whether the page changed.
func (c *Controller) ChangeSlide(delta int) bool {
	if c == nil {
		return false
	}
	return c.setPage(c.page + delta)
}

// GoToSlide jumps to the given page, clamping out-of-range requests.
// Reports whether the page changed.
func (c *Controller) GoToSlide(index int) bool {
	if c == nil {
		return false
	}
	return c.setPage(index)
}

// RecomputeOnResize clamps the current page to the max page of the current viewport.
// Reports whether the page changed.
func (c *Controller) RecomputeOnResize() bool {
	if c == nil {
		return false
	}
	return c.setPage(c.page)
}

// Render derives the view state for the current page given the measured
// width of one card. ok is false when there is nothing to draw.
func (c *Controller) Render(itemWidth float32) (state ViewState, ok bool) {
	if c == nil || c.itemCount == 0 {
		return ViewState{}, false
	}
	maxPage := c.MaxPage()
	// the page may be stale if a resize has not yet been processed
	page := min(c.page, maxPage)
	return ViewState{
		Offset:          -float32(page) * (itemWidth + ItemGap),
		ActiveIndicator: page,
		PrevDisabled:    page == 0,
		NextDisabled:    page >= maxPage,
	}, true
}

func (c *Controller) setPage(p int) bool {
	p = clamp(p, 0, c.MaxPage())
	if p == c.page {
		return false
	}
	c.page = p
	return true
}

func clamp(i, lo, hi int) int {
	if i < lo {
		i = lo
	} else if i > hi {
		i = hi
	}
	return i
}
