package widgets

import (
	"image"
	"testing"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/test"
	"fyne.io/fyne/v2/theme"

	"github.com/chefolio/chefolio/backend"
	"github.com/chefolio/chefolio/backend/portfolio"
	myTheme "github.com/chefolio/chefolio/ui/theme"
)

// newThemedTestApp starts a test app running the portfolio theme.
func newThemedTestApp(t *testing.T) {
	t.Helper()
	a := test.NewTempApp(t)
	cfg := &backend.ThemeConfig{Appearance: backend.AppearanceLight}
	a.Settings().SetTheme(myTheme.NewMyTheme(cfg, t.TempDir(), func() string { return cfg.Appearance }))
}

func TestIndicators(t *testing.T) {
	newThemedTestApp(t)
	var selected = -1
	ind := NewIndicators(5)
	ind.OnSelected = func(i int) { selected = i }
	if ind.Count() != 5 || !ind.dots[0].active {
		t.Fatalf("expected 5 dots with the first active")
	}
	ind.SetActive(3)
	for i, d := range ind.dots {
		if d.active != (i == 3) {
			t.Errorf("dot %d active = %v", i, d.active)
		}
	}
	ind.dots[1].Tapped(nil)
	if selected != 1 {
		t.Errorf("selected = %d, want 1", selected)
	}
}

func TestIconButtonDisabled(t *testing.T) {
	newThemedTestApp(t)
	taps := 0
	b := NewIconButton(theme.NavigateNextIcon(), func() { taps++ })
	b.Tapped(nil)
	b.Disable()
	b.Tapped(nil)
	b.TypedKey(&fyne.KeyEvent{Name: fyne.KeySpace})
	b.SetDisabled(false)
	b.TypedKey(&fyne.KeyEvent{Name: fyne.KeyReturn})
	if taps != 2 {
		t.Errorf("taps = %d, want 2", taps)
	}
}

func TestModalBackdropDismiss(t *testing.T) {
	newThemedTestApp(t)
	dismissed := 0
	m := NewModalBackdrop(NewTagChip("x"), func() { dismissed++ })
	m.Tapped(&fyne.PointEvent{})
	if dismissed != 1 {
		t.Errorf("dismissed = %d, want 1", dismissed)
	}
}

func TestRevealContainerOneShot(t *testing.T) {
	for name, setup := range map[string]func(*testing.T){
		"portfolio theme": newThemedTestApp,
		"default theme":   func(t *testing.T) { test.NewTempApp(t) },
	} {
		t.Run(name, func(t *testing.T) {
			setup(t)
			r := NewRevealContainer(NewTagChip("x"))
			if r.Revealed() {
				t.Fatal("revealed before Reveal")
			}
			if r.cover.FillColor == nil {
				t.Fatal("cover has no fill color")
			}
			r.Reveal(0)
			anim := r.anim
			r.Reveal(0)
			if !r.Revealed() || r.anim != anim {
				t.Error("second Reveal should do nothing")
			}
		})
	}
}

func TestDishCardShowsTwoTags(t *testing.T) {
	newThemedTestApp(t)
	c := NewDishCard(nil)
	c.Update(&portfolio.Dish{Name: "Risotto", ShortDescription: "creamy", Tags: []string{"rice", "cheese", "comfort"}})
	if c.title.Text != "Risotto" || c.description.Text != "creamy" {
		t.Errorf("title %q description %q", c.title.Text, c.description.Text)
	}
	if n := len(c.tags.Objects); n != 2 {
		t.Errorf("card shows %d tags, want 2", n)
	}
}

func TestTagList(t *testing.T) {
	newThemedTestApp(t)
	l := NewTagList([]string{"a", "b", "c"})
	if len(l.Objects) != 3 {
		t.Errorf("got %d chips, want 3", len(l.Objects))
	}
}

func TestCoverCrop(t *testing.T) {
	tests := []struct {
		w, h         int
		wantW, wantH int
	}{
		{600, 600, 600, 428},
		{700, 300, 420, 300},
		{700, 500, 700, 500},
	}
	for _, tt := range tests {
		got := coverCrop(image.NewRGBA(image.Rect(0, 0, tt.w, tt.h)), dishImageAspect).Bounds()
		if got.Dx() != tt.wantW || got.Dy() != tt.wantH {
			t.Errorf("coverCrop(%dx%d) = %dx%d, want %dx%d", tt.w, tt.h, got.Dx(), got.Dy(), tt.wantW, tt.wantH)
		}
	}
	if coverCrop(nil, dishImageAspect) != nil {
		t.Error("coverCrop(nil) should be nil")
	}
}
