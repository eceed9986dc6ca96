package carousel

// Viewport width breakpoints at which another dish card fits on screen.
const (
	BreakpointSmall  float32 = 640
	BreakpointMedium float32 = 1024
	BreakpointLarge  float32 = 1280
)

// ItemGap is the horizontal space between two cards in a strip.
const ItemGap float32 = 24

// VisibleCount returns how many cards are shown at once for a viewport of the given width.
func VisibleCount(viewportWidth float32) int {
	switch {
	case viewportWidth >= BreakpointLarge:
		return 4
	case viewportWidth >= BreakpointMedium:
		return 3
	case viewportWidth >= BreakpointSmall:
		return 2
	default:
		return 1
	}
}

// MaxPage is the highest valid page for a strip of itemCount cards
// when visibleCount of them fit on screen. It is never negative.
func MaxPage(itemCount, visibleCount int) int {
	return max(0, itemCount-visibleCount)
}
