package util

import "testing"

func TestVisibleFraction(t *testing.T) {
	tests := []struct {
		top, height, viewTop, viewHeight float32
		want                             float32
	}{
		{0, 100, 0, 500, 1},
		{450, 100, 0, 500, 0.5},
		{600, 100, 0, 500, 0},
		{-50, 100, 0, 500, 0.5},
		{0, 0, 0, 500, 0},
		{0, 100, 0, 0, 0},
	}
	for _, tt := range tests {
		if got := VisibleFraction(tt.top, tt.height, tt.viewTop, tt.viewHeight); got != tt.want {
			t.Errorf("VisibleFraction(%v, %v, %v, %v): got %v, want %v",
				tt.top, tt.height, tt.viewTop, tt.viewHeight, got, tt.want)
		}
	}
}

func TestShouldReveal_BottomMargin(t *testing.T) {
	// 400px section starting 20px above the effective bottom edge (500 - 50):
	// only 5% visible, below the threshold
	if ShouldReveal(430, 400, 0, 500) {
		t.Error("section 5% inside the viewport should not be revealed")
	}
	// 60px inside the effective viewport is 15% of the section
	if !ShouldReveal(390, 400, 0, 500) {
		t.Error("section 15% inside the viewport should be revealed")
	}
	// fully inside the bottom margin
	if ShouldReveal(460, 400, 0, 500) {
		t.Error("section only inside the bottom margin should not be revealed")
	}
}

func TestRevealTracker_OneShot(t *testing.T) {
	tops := []float32{0, 900, 1600}
	var got []int
	r := NewRevealTracker(len(tops), func(i int) { got = append(got, i) })
	bounds := func(i int) (float32, float32) { return tops[i], 400 }

	r.Update(0, 800, bounds)
	if len(got) != 1 || got[0] != 0 {
		t.Fatalf("after first update: got %v, want [0]", got)
	}
	r.Update(1000, 800, bounds)
	if len(got) != 3 || got[1] != 1 || got[2] != 2 {
		t.Fatalf("after scrolling: got %v, want [0 1 2]", got)
	}
	r.Update(0, 800, bounds)
	if len(got) != 3 {
		t.Errorf("sections should only be revealed once, got %v", got)
	}
	if !r.Revealed(2) || r.Revealed(3) {
		t.Error("unexpected Revealed result")
	}
}
