package util

// A section is revealed the first time at least RevealThreshold of its height
// lies inside the viewport, with the bottom RevealBottomMargin pixels of the
// viewport not counting as inside.
const (
	RevealThreshold    float32 = 0.1
	RevealBottomMargin float32 = 50
)

// VisibleFraction returns the fraction of the span [top, top+height) that
// overlaps [viewTop, viewTop+viewHeight).
func VisibleFraction(top, height, viewTop, viewHeight float32) float32 {
	if height <= 0 || viewHeight <= 0 {
		return 0
	}
	overlap := min(top+height, viewTop+viewHeight) - max(top, viewTop)
	if overlap <= 0 {
		return 0
	}
	return overlap / height
}

// ShouldReveal reports whether a section at [top, top+height) in content
// coordinates should be revealed for a scroll viewport at viewTop.
func ShouldReveal(top, height, viewTop, viewHeight float32) bool {
	f := VisibleFraction(top, height, viewTop, viewHeight-RevealBottomMargin)
	return f > 0 && f >= RevealThreshold
}

// RevealTracker remembers which of a fixed set of sections have already
// been revealed. Reveal is one-shot: a section never hides again.
type RevealTracker struct {
	revealed []bool

	// OnReveal is called once per section, in index order within an Update.
	OnReveal func(idx int)
}

func NewRevealTracker(n int, onReveal func(int)) *RevealTracker {
	return &RevealTracker{revealed: make([]bool, n), OnReveal: onReveal}
}

// Update checks every not-yet-revealed section against the viewport.
// bounds returns the top and height of section i in content coordinates.
func (r *RevealTracker) Update(viewTop, viewHeight float32, bounds func(i int) (top, height float32)) {
	for i, done := range r.revealed {
		if done {
			continue
		}
		if top, h := bounds(i); ShouldReveal(top, h, viewTop, viewHeight) {
			r.revealed[i] = true
			if r.OnReveal != nil {
				r.OnReveal(i)
			}
		}
	}
}

func (r *RevealTracker) Revealed(idx int) bool {
	return idx >= 0 && idx < len(r.revealed) && r.revealed[idx]
}
